package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rioverde/pipedesk/internal/store"
)

// Service handles project operations.
type Service struct {
	store  store.Interface
	logger *slog.Logger
}

// NewService creates a new project service.
func NewService(st store.Interface, logger *slog.Logger) *Service {
	return &Service{store: st, logger: logger}
}

// CreateRequest defines project creation inputs.
type CreateRequest struct {
	ClientID  string
	Name      string
	Status    Status
	StartDate string
	DueDate   string
	Tags      []string
}

// UpdateRequest defines a partial project update.
type UpdateRequest struct {
	Name      *string
	Status    *Status
	StartDate *string
	DueDate   *string
	Tags      []string
}

// ListOptions narrows List results.
type ListOptions struct {
	ClientID string
	Status   Status
}

// Create creates a new project. The referenced client must exist in
// the same workspace.
func (s *Service) Create(ctx context.Context, sess store.Session, req CreateRequest) (*Project, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.ClientID) == "" {
		return nil, fmt.Errorf("%w: name and client_id are required", ErrInvalidInput)
	}

	if _, err := s.store.Get(ctx, sess, store.KindClient, req.ClientID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("checking client: %w", err)
	}

	fields := store.Fields{
		"client_id": req.ClientID,
		"name":      req.Name,
	}
	if req.Status != "" {
		fields["status"] = string(req.Status)
	}
	if req.StartDate != "" {
		fields["start_date"] = req.StartDate
	}
	if req.DueDate != "" {
		fields["due_date"] = req.DueDate
	}
	if req.Tags != nil {
		fields["tags"] = req.Tags
	}

	id, err := s.store.Create(ctx, sess, store.KindProject, fields)
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}
	return s.Get(ctx, sess, id)
}

// Get fetches a project by ID.
func (s *Service) Get(ctx context.Context, sess store.Session, id string) (*Project, error) {
	doc, err := s.store.Get(ctx, sess, store.KindProject, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return fromFields(doc), nil
}

// List returns the workspace's projects.
func (s *Service) List(ctx context.Context, sess store.Session, opts ListOptions) ([]Project, error) {
	var filters []store.Filter
	if opts.ClientID != "" {
		filters = append(filters, store.Eq("client_id", opts.ClientID))
	}
	if opts.Status != "" {
		filters = append(filters, store.Eq("status", string(opts.Status)))
	}

	docs, err := s.store.List(ctx, sess, store.KindProject, filters...)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	projects := make([]Project, 0, len(docs))
	for _, doc := range docs {
		projects = append(projects, *fromFields(doc))
	}
	return projects, nil
}

// Update merges the given fields into a project.
func (s *Service) Update(ctx context.Context, sess store.Session, id string, req UpdateRequest) (*Project, error) {
	fields := store.Fields{}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
		}
		fields["name"] = *req.Name
	}
	if req.Status != nil {
		fields["status"] = string(*req.Status)
	}
	if req.StartDate != nil {
		fields["start_date"] = *req.StartDate
	}
	if req.DueDate != nil {
		fields["due_date"] = *req.DueDate
	}
	if req.Tags != nil {
		fields["tags"] = req.Tags
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	if err := s.store.Update(ctx, sess, store.KindProject, id, fields); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("updating project: %w", err)
	}
	return s.Get(ctx, sess, id)
}

// Delete removes a project. Tasks that reference it keep their soft
// reference.
func (s *Service) Delete(ctx context.Context, sess store.Session, id string) error {
	if err := s.store.Delete(ctx, sess, store.KindProject, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

func fromFields(f store.Fields) *Project {
	return &Project{
		ID:          f.String("id"),
		WorkspaceID: f.String("workspace_id"),
		ClientID:    f.String("client_id"),
		Name:        f.String("name"),
		Status:      Status(f.String("status")),
		StartDate:   f.String("start_date"),
		DueDate:     f.String("due_date"),
		Tags:        f.StringList("tags"),
		CreatedAt:   f.Time("created_at"),
		UpdatedAt:   f.Time("updated_at"),
	}
}
