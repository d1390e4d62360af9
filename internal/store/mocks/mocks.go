// Package mocks provides testify mocks for the store interface.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rioverde/pipedesk/internal/store"
)

// Store is a mock for store.Interface.
type Store struct {
	mock.Mock
}

func (m *Store) List(ctx context.Context, sess store.Session, kind store.Kind, filters ...store.Filter) ([]store.Fields, error) {
	callArgs := []any{ctx, sess, kind}
	for _, f := range filters {
		callArgs = append(callArgs, f)
	}
	args := m.Called(callArgs...)
	if docs, ok := args.Get(0).([]store.Fields); ok {
		return docs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) Get(ctx context.Context, sess store.Session, kind store.Kind, id string) (store.Fields, error) {
	args := m.Called(ctx, sess, kind, id)
	if doc, ok := args.Get(0).(store.Fields); ok {
		return doc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) Create(ctx context.Context, sess store.Session, kind store.Kind, fields store.Fields) (string, error) {
	args := m.Called(ctx, sess, kind, fields)
	return args.String(0), args.Error(1)
}

func (m *Store) Update(ctx context.Context, sess store.Session, kind store.Kind, id string, fields store.Fields) error {
	args := m.Called(ctx, sess, kind, id, fields)
	return args.Error(0)
}

func (m *Store) Delete(ctx context.Context, sess store.Session, kind store.Kind, id string) error {
	args := m.Called(ctx, sess, kind, id)
	return args.Error(0)
}
