package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rioverde/pipedesk/internal/domain/client"
	"github.com/rioverde/pipedesk/internal/store"
)

// Service renders the board and applies drag-and-drop gestures. It
// tracks at most one active drag per workspace; concurrent Move calls
// are independent attempt-once updates with last-write-wins on the
// backend.
type Service struct {
	clients ClientService
	logger  *slog.Logger

	mu     sync.Mutex
	active map[string]string // workspace id -> dragged client id
}

// NewService creates a new pipeline service.
func NewService(clients ClientService, logger *slog.Logger) *Service {
	return &Service{
		clients: clients,
		logger:  logger,
		active:  make(map[string]string),
	}
}

// Board returns the workspace's clients partitioned into stage columns.
func (s *Service) Board(ctx context.Context, sess store.Session) (Board, error) {
	clients, err := s.clients.List(ctx, sess, client.ListOptions{})
	if err != nil {
		return Board{}, fmt.Errorf("loading board: %w", err)
	}
	return Partition(clients), nil
}

// BeginDrag marks a card as the workspace's active drag.
func (s *Service) BeginDrag(sess store.Session, clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active[sess.WorkspaceID] = clientID
}

// ActiveDrag returns the workspace's active drag, if any.
func (s *Service) ActiveDrag(sess store.Session) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.active[sess.WorkspaceID]
	return id, ok
}

// MoveResult reports what a gesture did.
type MoveResult struct {
	Moved bool         `json:"moved"`
	From  client.Stage `json:"from,omitempty"`
	To    client.Stage `json:"to,omitempty"`
}

// Move applies a completed drag gesture. The active-drag mark is
// cleared as soon as the target is resolved, before the stage update
// is issued; the board the caller sees next may briefly show the card
// in its old column until the refreshed list arrives. A gesture whose
// target doesn't resolve, or that lands in the card's own column,
// issues no write at all.
func (s *Service) Move(ctx context.Context, sess store.Session, g Gesture) (MoveResult, error) {
	clients, err := s.clients.List(ctx, sess, client.ListOptions{})
	if err != nil {
		return MoveResult{}, fmt.Errorf("loading board: %w", err)
	}

	s.clearDrag(sess)

	target, ok := resolveTarget(g, clients)
	if !ok {
		return MoveResult{}, nil
	}

	var dragged *client.Client
	for i := range clients {
		if clients[i].ID == g.ClientID {
			dragged = &clients[i]
			break
		}
	}
	if dragged == nil {
		return MoveResult{}, ErrCardNotFound
	}

	if dragged.Stage == target {
		// Reordering within a column is not persisted.
		return MoveResult{}, nil
	}

	if err := s.clients.UpdateStage(ctx, sess, dragged.ID, target); err != nil {
		return MoveResult{}, fmt.Errorf("moving card: %w", err)
	}

	s.logger.Info("card moved",
		"workspace_id", sess.WorkspaceID,
		"client_id", dragged.ID,
		"from", dragged.Stage,
		"to", target,
	)
	return MoveResult{Moved: true, From: dragged.Stage, To: target}, nil
}

func (s *Service) clearDrag(sess store.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, sess.WorkspaceID)
}
