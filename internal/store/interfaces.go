package store

import "context"

// Interface is the document-layer contract domain services depend on.
type Interface interface {
	List(ctx context.Context, sess Session, kind Kind, filters ...Filter) ([]Fields, error)
	Get(ctx context.Context, sess Session, kind Kind, id string) (Fields, error)
	Create(ctx context.Context, sess Session, kind Kind, fields Fields) (string, error)
	Update(ctx context.Context, sess Session, kind Kind, id string, fields Fields) error
	Delete(ctx context.Context, sess Session, kind Kind, id string) error
}

var _ Interface = (*Store)(nil)
