package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rioverde/pipedesk/internal/store"
)

// Service handles task operations.
type Service struct {
	store  store.Interface
	logger *slog.Logger
}

// NewService creates a new task service.
func NewService(st store.Interface, logger *slog.Logger) *Service {
	return &Service{store: st, logger: logger}
}

// CreateRequest defines task creation inputs.
type CreateRequest struct {
	ClientID      string
	ProjectID     string
	Title         string
	Status        Status
	Priority      int
	ScheduledDate string
	DueDate       string
}

// UpdateRequest defines a partial task update.
type UpdateRequest struct {
	Title         *string
	Status        *Status
	Priority      *int
	ScheduledDate *string
	DueDate       *string
}

// ListOptions narrows List results.
type ListOptions struct {
	ClientID  string
	ProjectID string
	Status    Status
}

// Create creates a new task. Tasks land in the inbox with normal
// priority unless the request says otherwise.
func (s *Service) Create(ctx context.Context, sess store.Session, req CreateRequest) (*Task, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	fields := store.Fields{"title": req.Title}
	if req.ClientID != "" {
		fields["client_id"] = req.ClientID
	}
	if req.ProjectID != "" {
		fields["project_id"] = req.ProjectID
	}
	if req.Status != "" {
		fields["status"] = string(req.Status)
	}
	if req.Priority != 0 {
		fields["priority"] = req.Priority
	}
	if req.ScheduledDate != "" {
		fields["scheduled_date"] = req.ScheduledDate
	}
	if req.DueDate != "" {
		fields["due_date"] = req.DueDate
	}

	id, err := s.store.Create(ctx, sess, store.KindTask, fields)
	if err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}
	return s.Get(ctx, sess, id)
}

// Get fetches a task by ID.
func (s *Service) Get(ctx context.Context, sess store.Session, id string) (*Task, error) {
	doc, err := s.store.Get(ctx, sess, store.KindTask, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("getting task: %w", err)
	}
	return fromFields(doc), nil
}

// List returns the workspace's tasks.
func (s *Service) List(ctx context.Context, sess store.Session, opts ListOptions) ([]Task, error) {
	var filters []store.Filter
	if opts.ClientID != "" {
		filters = append(filters, store.Eq("client_id", opts.ClientID))
	}
	if opts.ProjectID != "" {
		filters = append(filters, store.Eq("project_id", opts.ProjectID))
	}
	if opts.Status != "" {
		filters = append(filters, store.Eq("status", string(opts.Status)))
	}

	docs, err := s.store.List(ctx, sess, store.KindTask, filters...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	tasks := make([]Task, 0, len(docs))
	for _, doc := range docs {
		tasks = append(tasks, *fromFields(doc))
	}
	return tasks, nil
}

// Update merges the given fields into a task. Moving into "done"
// stamps the completion time; moving out of it clears the stamp.
func (s *Service) Update(ctx context.Context, sess store.Session, id string, req UpdateRequest) (*Task, error) {
	fields := store.Fields{}
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
		}
		fields["title"] = *req.Title
	}
	if req.Status != nil {
		fields["status"] = string(*req.Status)
	}
	if req.Priority != nil {
		fields["priority"] = *req.Priority
	}
	if req.ScheduledDate != nil {
		fields["scheduled_date"] = *req.ScheduledDate
	}
	if req.DueDate != nil {
		fields["due_date"] = *req.DueDate
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	if req.Status != nil {
		current, err := s.Get(ctx, sess, id)
		if err != nil {
			return nil, err
		}
		if *req.Status == StatusDone && current.Status != StatusDone {
			fields["completed_at"] = time.Now().UTC().Format(time.RFC3339Nano)
		}
		if *req.Status != StatusDone && current.CompletedAt != nil {
			fields["completed_at"] = nil
		}
	}

	if err := s.store.Update(ctx, sess, store.KindTask, id, fields); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("updating task: %w", err)
	}
	return s.Get(ctx, sess, id)
}

// Delete removes a task.
func (s *Service) Delete(ctx context.Context, sess store.Session, id string) error {
	if err := s.store.Delete(ctx, sess, store.KindTask, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

func fromFields(f store.Fields) *Task {
	return &Task{
		ID:            f.String("id"),
		WorkspaceID:   f.String("workspace_id"),
		ClientID:      f.String("client_id"),
		ProjectID:     f.String("project_id"),
		Title:         f.String("title"),
		Status:        Status(f.String("status")),
		Priority:      int(f.Int("priority")),
		ScheduledDate: f.String("scheduled_date"),
		DueDate:       f.String("due_date"),
		CompletedAt:   f.TimePtr("completed_at"),
		CreatedAt:     f.Time("created_at"),
		UpdatedAt:     f.Time("updated_at"),
	}
}
