package activity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rioverde/pipedesk/internal/store"
)

// Service handles activity log operations.
type Service struct {
	store  store.Interface
	logger *slog.Logger
}

// NewService creates a new activity service.
func NewService(st store.Interface, logger *slog.Logger) *Service {
	return &Service{store: st, logger: logger}
}

// CreateRequest defines activity creation inputs.
type CreateRequest struct {
	ClientID  string
	ProjectID string
	Type      Type
	Summary   string
	EventDate string
}

// ListOptions narrows List results.
type ListOptions struct {
	ClientID  string
	ProjectID string
	Type      Type
}

// Log records a new activity entry.
func (s *Service) Log(ctx context.Context, sess store.Session, req CreateRequest) (*Entry, error) {
	if strings.TrimSpace(req.Summary) == "" || req.Type == "" {
		return nil, fmt.Errorf("%w: type and summary are required", ErrInvalidInput)
	}

	fields := store.Fields{
		"type":    string(req.Type),
		"summary": req.Summary,
	}
	if req.ClientID != "" {
		fields["client_id"] = req.ClientID
	}
	if req.ProjectID != "" {
		fields["project_id"] = req.ProjectID
	}
	if req.EventDate != "" {
		fields["event_date"] = req.EventDate
	}

	id, err := s.store.Create(ctx, sess, store.KindActivity, fields)
	if err != nil {
		return nil, fmt.Errorf("logging activity: %w", err)
	}
	return s.Get(ctx, sess, id)
}

// Get fetches an activity entry by ID.
func (s *Service) Get(ctx context.Context, sess store.Session, id string) (*Entry, error) {
	doc, err := s.store.Get(ctx, sess, store.KindActivity, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("getting activity: %w", err)
	}
	return fromFields(doc), nil
}

// List returns the workspace's activity entries.
func (s *Service) List(ctx context.Context, sess store.Session, opts ListOptions) ([]Entry, error) {
	var filters []store.Filter
	if opts.ClientID != "" {
		filters = append(filters, store.Eq("client_id", opts.ClientID))
	}
	if opts.ProjectID != "" {
		filters = append(filters, store.Eq("project_id", opts.ProjectID))
	}
	if opts.Type != "" {
		filters = append(filters, store.Eq("type", string(opts.Type)))
	}

	docs, err := s.store.List(ctx, sess, store.KindActivity, filters...)
	if err != nil {
		return nil, fmt.Errorf("listing activity: %w", err)
	}

	entries := make([]Entry, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, *fromFields(doc))
	}
	return entries, nil
}

// Delete removes an activity entry.
func (s *Service) Delete(ctx context.Context, sess store.Session, id string) error {
	if err := s.store.Delete(ctx, sess, store.KindActivity, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrEntryNotFound
		}
		return fmt.Errorf("deleting activity: %w", err)
	}
	return nil
}

func fromFields(f store.Fields) *Entry {
	return &Entry{
		ID:          f.String("id"),
		WorkspaceID: f.String("workspace_id"),
		ClientID:    f.String("client_id"),
		ProjectID:   f.String("project_id"),
		Type:        Type(f.String("type")),
		Summary:     f.String("summary"),
		EventDate:   f.String("event_date"),
		CreatedAt:   f.Time("created_at"),
		UpdatedAt:   f.Time("updated_at"),
	}
}
