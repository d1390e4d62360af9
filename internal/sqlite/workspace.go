package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rioverde/pipedesk/internal/domain/workspace"
)

// WorkspaceRepository implements workspace.Repository for SQLite
type WorkspaceRepository struct {
	db *DB
}

// NewWorkspaceRepository creates a new WorkspaceRepository
func NewWorkspaceRepository(db *DB) *WorkspaceRepository {
	return &WorkspaceRepository{db: db}
}

// Create creates a new workspace
func (r *WorkspaceRepository) Create(ctx context.Context, ws *workspace.Workspace) error {
	query := `
		INSERT INTO workspaces (id, name, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query, ws.ID, ws.Name, ws.CreatedAt, ws.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create workspace: %w", err)
	}
	return nil
}

// Get retrieves a workspace by ID
func (r *WorkspaceRepository) Get(ctx context.Context, id string) (*workspace.Workspace, error) {
	query := `SELECT id, name, created_at, updated_at FROM workspaces WHERE id = ?`

	var ws workspace.Workspace
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&ws.ID,
		&ws.Name,
		&ws.CreatedAt,
		&ws.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, workspace.ErrWorkspaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	return &ws, nil
}

// AddMember records a workspace membership
func (r *WorkspaceRepository) AddMember(ctx context.Context, member *workspace.Member) error {
	query := `
		INSERT INTO workspace_members (id, workspace_id, user_id, role, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		member.ID,
		member.WorkspaceID,
		member.UserID,
		member.Role,
		member.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return workspace.ErrMemberExists
		}
		if isForeignKeyViolation(err) {
			return workspace.ErrWorkspaceNotFound
		}
		return fmt.Errorf("failed to add member: %w", err)
	}
	return nil
}

// ListMembers returns a workspace's members
func (r *WorkspaceRepository) ListMembers(ctx context.Context, workspaceID string) ([]workspace.Member, error) {
	query := `
		SELECT id, workspace_id, user_id, role, created_at
		FROM workspace_members
		WHERE workspace_id = ?
		ORDER BY created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []workspace.Member
	for rows.Next() {
		var m workspace.Member
		if err := rows.Scan(&m.ID, &m.WorkspaceID, &m.UserID, &m.Role, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", err)
	}
	return members, nil
}

// SaveAPIKey stores a hashed API key for a workspace
func (r *WorkspaceRepository) SaveAPIKey(ctx context.Context, keyHash, workspaceID, description string) error {
	query := `
		INSERT INTO api_keys (key_hash, workspace_id, description)
		VALUES (?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query, keyHash, workspaceID, description)
	if err != nil {
		return fmt.Errorf("failed to save api key: %w", err)
	}
	return nil
}

// ResolveAPIKey maps a hashed API key to its workspace
func (r *WorkspaceRepository) ResolveAPIKey(ctx context.Context, keyHash string) (string, error) {
	var workspaceID string
	err := r.db.QueryRowContext(ctx,
		`SELECT workspace_id FROM api_keys WHERE key_hash = ?`,
		keyHash,
	).Scan(&workspaceID)
	if err == sql.ErrNoRows {
		return "", workspace.ErrWorkspaceNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve api key: %w", err)
	}
	return workspaceID, nil
}
