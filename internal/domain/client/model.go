package client

import "time"

// Stage is the pipeline state of a client. The order here is the
// board's column order.
type Stage string

const (
	StageNew         Stage = "new"
	StageContacted   Stage = "contacted"
	StageNegotiating Stage = "negotiating"
	StageWon         Stage = "won"
	StageLost        Stage = "lost"
)

// Stages returns all stages in display order.
func Stages() []Stage {
	return []Stage{StageNew, StageContacted, StageNegotiating, StageWon, StageLost}
}

// ParseStage validates a stage value.
func ParseStage(s string) (Stage, error) {
	for _, stage := range Stages() {
		if string(stage) == s {
			return stage, nil
		}
	}
	return "", ErrInvalidStage
}

// Lead sources.
const (
	SourceReferral  = "referral"
	SourceWebsite   = "website"
	SourceInstagram = "instagram"
	SourceWhatsapp  = "whatsapp"
	SourceAds       = "ads"
	SourceEvent     = "event"
	SourceOther     = "other"
)

// Contact holds how to reach a client.
type Contact struct {
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	Whatsapp bool   `json:"whatsapp"`
}

// Client represents a lead or client in the pipeline.
type Client struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	Name        string    `json:"name"`
	Company     string    `json:"company,omitempty"`
	Stage       Stage     `json:"stage"`
	Source      string    `json:"source,omitempty"`
	Budget      *float64  `json:"budget,omitempty"`
	Contact     Contact   `json:"contact"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
