package activity_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rioverde/pipedesk/internal/domain/activity"
	"github.com/rioverde/pipedesk/internal/store"
	"github.com/rioverde/pipedesk/internal/store/mocks"
)

func TestActivityService_Log(t *testing.T) {
	ctx := context.Background()
	sess := store.Session{WorkspaceID: "ws1"}

	st := &mocks.Store{}
	st.On("Create", ctx, sess, store.KindActivity, mock.MatchedBy(func(f store.Fields) bool {
		return f["type"] == "call" && f["summary"] == "Quoted the website project" && f["client_id"] == "c1"
	})).Return("a1", nil)
	st.On("Get", ctx, sess, store.KindActivity, "a1").Return(store.Fields{
		"id": "a1", "workspace_id": "ws1", "client_id": "c1",
		"type": "call", "summary": "Quoted the website project",
	}, nil)

	svc := activity.NewService(st, slog.Default())
	entry, err := svc.Log(ctx, sess, activity.CreateRequest{
		ClientID: "c1",
		Type:     activity.TypeCall,
		Summary:  "Quoted the website project",
	})
	require.NoError(t, err)
	require.Equal(t, "a1", entry.ID)
	require.Equal(t, activity.TypeCall, entry.Type)
	st.AssertExpectations(t)
}

func TestActivityService_LogValidation(t *testing.T) {
	ctx := context.Background()
	sess := store.Session{WorkspaceID: "ws1"}

	svc := activity.NewService(&mocks.Store{}, slog.Default())

	_, err := svc.Log(ctx, sess, activity.CreateRequest{Type: activity.TypeCall})
	require.ErrorIs(t, err, activity.ErrInvalidInput)

	_, err = svc.Log(ctx, sess, activity.CreateRequest{Summary: "note without a type"})
	require.ErrorIs(t, err, activity.ErrInvalidInput)
}

func TestActivityService_ListByClient(t *testing.T) {
	ctx := context.Background()
	sess := store.Session{WorkspaceID: "ws1"}

	st := &mocks.Store{}
	st.On("List", ctx, sess, store.KindActivity, store.Eq("client_id", "c1")).Return([]store.Fields{
		{"id": "a1", "workspace_id": "ws1", "client_id": "c1", "type": "whatsapp", "summary": "Sent quote"},
		{"id": "a2", "workspace_id": "ws1", "client_id": "c1", "type": "meeting", "summary": "Kickoff"},
	}, nil)

	svc := activity.NewService(st, slog.Default())
	entries, err := svc.List(ctx, sess, activity.ListOptions{ClientID: "c1"})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	st.AssertExpectations(t)
}

func TestActivityService_DeleteNotFound(t *testing.T) {
	ctx := context.Background()
	sess := store.Session{WorkspaceID: "ws1"}

	st := &mocks.Store{}
	st.On("Delete", ctx, sess, store.KindActivity, "missing").Return(store.ErrNotFound)

	svc := activity.NewService(st, slog.Default())
	err := svc.Delete(ctx, sess, "missing")
	require.ErrorIs(t, err, activity.ErrEntryNotFound)
}
