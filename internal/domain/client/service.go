package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rioverde/pipedesk/internal/metrics"
	"github.com/rioverde/pipedesk/internal/store"
)

// Service handles client business logic.
type Service struct {
	store  store.Interface
	logger *slog.Logger
}

// NewService creates a new client service.
func NewService(st store.Interface, logger *slog.Logger) *Service {
	return &Service{store: st, logger: logger}
}

// CreateRequest describes a client creation request.
type CreateRequest struct {
	Name    string
	Company string
	Stage   Stage
	Source  string
	Budget  *float64
	Contact Contact
	Tags    []string
}

// UpdateRequest describes a partial client update. Nil fields are
// left untouched. Stage changes go through UpdateStage.
type UpdateRequest struct {
	Name    *string
	Company *string
	Source  *string
	Budget  *float64
	Contact *Contact
	Tags    []string
}

// ListOptions narrows List results.
type ListOptions struct {
	Stage Stage
}

// Create creates a new client. New clients land in the "new" stage
// unless the request says otherwise.
func (s *Service) Create(ctx context.Context, sess store.Session, req CreateRequest) (*Client, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	stage := req.Stage
	if stage == "" {
		stage = StageNew
	}
	if _, err := ParseStage(string(stage)); err != nil {
		return nil, err
	}

	fields := store.Fields{
		"name":     req.Name,
		"stage":    string(stage),
		"whatsapp": req.Contact.Whatsapp,
	}
	if req.Company != "" {
		fields["company"] = req.Company
	}
	if req.Source != "" {
		fields["source"] = req.Source
	}
	if req.Budget != nil {
		fields["budget"] = *req.Budget
	}
	if req.Contact.Phone != "" {
		fields["phone"] = req.Contact.Phone
	}
	if req.Contact.Email != "" {
		fields["email"] = req.Contact.Email
	}
	if req.Tags != nil {
		fields["tags"] = req.Tags
	}

	id, err := s.store.Create(ctx, sess, store.KindClient, fields)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return s.Get(ctx, sess, id)
}

// Get returns a client by ID.
func (s *Service) Get(ctx context.Context, sess store.Session, id string) (*Client, error) {
	doc, err := s.store.Get(ctx, sess, store.KindClient, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("getting client: %w", err)
	}
	return fromFields(doc), nil
}

// List returns the workspace's clients, optionally filtered by stage.
func (s *Service) List(ctx context.Context, sess store.Session, opts ListOptions) ([]Client, error) {
	var filters []store.Filter
	if opts.Stage != "" {
		if _, err := ParseStage(string(opts.Stage)); err != nil {
			return nil, err
		}
		filters = append(filters, store.Eq("stage", string(opts.Stage)))
	}

	docs, err := s.store.List(ctx, sess, store.KindClient, filters...)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}

	clients := make([]Client, 0, len(docs))
	for _, doc := range docs {
		clients = append(clients, *fromFields(doc))
	}
	return clients, nil
}

// Update merges the given fields into a client.
func (s *Service) Update(ctx context.Context, sess store.Session, id string, req UpdateRequest) (*Client, error) {
	fields := store.Fields{}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
		}
		fields["name"] = *req.Name
	}
	if req.Company != nil {
		fields["company"] = *req.Company
	}
	if req.Source != nil {
		fields["source"] = *req.Source
	}
	if req.Budget != nil {
		fields["budget"] = *req.Budget
	}
	if req.Contact != nil {
		fields["phone"] = req.Contact.Phone
		fields["email"] = req.Contact.Email
		fields["whatsapp"] = req.Contact.Whatsapp
	}
	if req.Tags != nil {
		fields["tags"] = req.Tags
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	if err := s.update(ctx, sess, id, fields); err != nil {
		return nil, err
	}
	return s.Get(ctx, sess, id)
}

// UpdateStage moves a client to a new pipeline stage with a single
// merge write. Any stage is reachable from any other stage.
func (s *Service) UpdateStage(ctx context.Context, sess store.Session, id string, stage Stage) error {
	if _, err := ParseStage(string(stage)); err != nil {
		return err
	}
	if err := s.update(ctx, sess, id, store.Fields{"stage": string(stage)}); err != nil {
		return err
	}
	metrics.ObserveStageTransition(string(stage))
	return nil
}

// Delete removes a client. Projects, tasks and activities that point
// at it keep their references; there is no cascade.
func (s *Service) Delete(ctx context.Context, sess store.Session, id string) error {
	if err := s.store.Delete(ctx, sess, store.KindClient, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrClientNotFound
		}
		return fmt.Errorf("deleting client: %w", err)
	}
	return nil
}

func (s *Service) update(ctx context.Context, sess store.Session, id string, fields store.Fields) error {
	if err := s.store.Update(ctx, sess, store.KindClient, id, fields); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrClientNotFound
		}
		return fmt.Errorf("updating client: %w", err)
	}
	return nil
}
