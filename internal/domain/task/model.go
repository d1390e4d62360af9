package task

import "time"

// Status of a task.
type Status string

const (
	StatusInbox    Status = "inbox"
	StatusTodo     Status = "todo"
	StatusDoing    Status = "doing"
	StatusDone     Status = "done"
	StatusArchived Status = "archived"
)

// Task priorities.
const (
	PriorityHigh   = 1
	PriorityNormal = 2
	PriorityLow    = 3
)

// Task represents a unit of work, optionally tied to a client or project.
type Task struct {
	ID            string     `json:"id"`
	WorkspaceID   string     `json:"workspace_id"`
	ClientID      string     `json:"client_id,omitempty"`
	ProjectID     string     `json:"project_id,omitempty"`
	Title         string     `json:"title"`
	Status        Status     `json:"status"`
	Priority      int        `json:"priority"`
	ScheduledDate string     `json:"scheduled_date,omitempty"`
	DueDate       string     `json:"due_date,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
