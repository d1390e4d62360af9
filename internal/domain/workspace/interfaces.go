package workspace

import "context"

// Repository provides persistence for workspaces, members and API keys.
type Repository interface {
	Create(ctx context.Context, ws *Workspace) error
	Get(ctx context.Context, id string) (*Workspace, error)
	AddMember(ctx context.Context, member *Member) error
	ListMembers(ctx context.Context, workspaceID string) ([]Member, error)
	SaveAPIKey(ctx context.Context, keyHash, workspaceID, description string) error
	ResolveAPIKey(ctx context.Context, keyHash string) (string, error)
}
