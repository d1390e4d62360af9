package activity

import "time"

// Type represents the kind of touchpoint recorded.
type Type string

const (
	TypeWhatsapp Type = "whatsapp"
	TypeCall     Type = "call"
	TypeEmail    Type = "email"
	TypeNote     Type = "note"
	TypeMeeting  Type = "meeting"
)

// Entry represents a recorded touchpoint with a client or project.
type Entry struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	ClientID    string    `json:"client_id,omitempty"`
	ProjectID   string    `json:"project_id,omitempty"`
	Type        Type      `json:"type"`
	Summary     string    `json:"summary"`
	EventDate   string    `json:"event_date,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
