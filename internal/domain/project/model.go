package project

import "time"

// Status of a project.
type Status string

const (
	StatusActive Status = "active"
	StatusOnHold Status = "on_hold"
	StatusDone   Status = "done"
)

// Project represents client work tracked in a workspace.
type Project struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	ClientID    string    `json:"client_id"`
	Name        string    `json:"name"`
	Status      Status    `json:"status"`
	StartDate   string    `json:"start_date,omitempty"`
	DueDate     string    `json:"due_date,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
