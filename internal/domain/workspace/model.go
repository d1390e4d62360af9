package workspace

import "time"

// Workspace is the tenancy boundary: one CRM account's data partition.
type Workspace struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Member roles.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleMember Role = "member"
)

// Member ties an external identity to a workspace.
type Member struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	UserID      string    `json:"user_id"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}
