package workspace

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service handles workspace onboarding and membership.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new workspace service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// OnboardRequest defines workspace creation inputs.
type OnboardRequest struct {
	Name        string
	OwnerUserID string
}

// OnboardResult is the outcome of creating a workspace. The API key
// is returned exactly once; only its hash is stored.
type OnboardResult struct {
	Workspace *Workspace `json:"workspace"`
	APIKey    string     `json:"api_key"`
}

// Onboard creates a workspace, records the owner as a member and
// issues the workspace's first API key.
func (s *Service) Onboard(ctx context.Context, req OnboardRequest) (*OnboardResult, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.OwnerUserID) == "" {
		return nil, fmt.Errorf("%w: name and owner_user_id are required", ErrInvalidInput)
	}

	now := time.Now().UTC()
	ws := &Workspace{
		ID:        uuid.NewString(),
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, ws); err != nil {
		return nil, fmt.Errorf("creating workspace: %w", err)
	}

	if err := s.repo.AddMember(ctx, &Member{
		ID:          uuid.NewString(),
		WorkspaceID: ws.ID,
		UserID:      req.OwnerUserID,
		Role:        RoleOwner,
		CreatedAt:   now,
	}); err != nil {
		return nil, fmt.Errorf("adding owner: %w", err)
	}

	key, err := s.IssueAPIKey(ctx, ws.ID, "onboarding key")
	if err != nil {
		return nil, err
	}

	s.logger.Info("workspace created", "workspace_id", ws.ID)
	return &OnboardResult{Workspace: ws, APIKey: key}, nil
}

// Get fetches a workspace by ID.
func (s *Service) Get(ctx context.Context, id string) (*Workspace, error) {
	ws, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return ws, nil
}

// AddMember adds a user to a workspace.
func (s *Service) AddMember(ctx context.Context, workspaceID, userID string, role Role) (*Member, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	if role != RoleOwner && role != RoleMember {
		return nil, fmt.Errorf("%w: role must be owner or member", ErrInvalidInput)
	}

	member := &Member{
		ID:          uuid.NewString(),
		WorkspaceID: workspaceID,
		UserID:      userID,
		Role:        role,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.AddMember(ctx, member); err != nil {
		if errors.Is(err, ErrMemberExists) {
			return nil, ErrMemberExists
		}
		return nil, fmt.Errorf("adding member: %w", err)
	}
	return member, nil
}

// ListMembers returns a workspace's members.
func (s *Service) ListMembers(ctx context.Context, workspaceID string) ([]Member, error) {
	return s.repo.ListMembers(ctx, workspaceID)
}

// IssueAPIKey mints a bearer key for the workspace and stores its hash.
func (s *Service) IssueAPIKey(ctx context.Context, workspaceID, description string) (string, error) {
	key := "pk_" + uuid.NewString()
	if err := s.repo.SaveAPIKey(ctx, HashKey(key), workspaceID, description); err != nil {
		return "", fmt.Errorf("saving api key: %w", err)
	}
	return key, nil
}

// HashKey returns the stored form of an API key.
func HashKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}
