package pipeline

import (
	"context"

	"github.com/rioverde/pipedesk/internal/domain/client"
	"github.com/rioverde/pipedesk/internal/store"
)

// ClientService provides the client operations the board needs.
type ClientService interface {
	List(ctx context.Context, sess store.Session, opts client.ListOptions) ([]client.Client, error)
	UpdateStage(ctx context.Context, sess store.Session, id string, stage client.Stage) error
}
