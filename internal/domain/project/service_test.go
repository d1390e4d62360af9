package project_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rioverde/pipedesk/internal/domain/project"
	"github.com/rioverde/pipedesk/internal/store"
	"github.com/rioverde/pipedesk/internal/store/mocks"
)

func TestProjectService_CreateChecksClient(t *testing.T) {
	ctx := context.Background()
	sess := store.Session{WorkspaceID: "ws1"}

	st := &mocks.Store{}
	st.On("Get", ctx, sess, store.KindClient, "c1").Return(store.Fields{
		"id": "c1", "workspace_id": "ws1", "name": "Acme",
	}, nil)
	st.On("Create", ctx, sess, store.KindProject, mock.MatchedBy(func(f store.Fields) bool {
		return f["client_id"] == "c1" && f["name"] == "Website"
	})).Return("p1", nil)
	st.On("Get", ctx, sess, store.KindProject, "p1").Return(store.Fields{
		"id": "p1", "workspace_id": "ws1", "client_id": "c1",
		"name": "Website", "status": "active",
	}, nil)

	svc := project.NewService(st, slog.Default())
	p, err := svc.Create(ctx, sess, project.CreateRequest{ClientID: "c1", Name: "Website"})
	require.NoError(t, err)
	require.Equal(t, "p1", p.ID)
	require.Equal(t, project.StatusActive, p.Status)
	st.AssertExpectations(t)
}

func TestProjectService_CreateUnknownClient(t *testing.T) {
	ctx := context.Background()
	sess := store.Session{WorkspaceID: "ws1"}

	st := &mocks.Store{}
	st.On("Get", ctx, sess, store.KindClient, "ghost").Return(nil, store.ErrNotFound)

	svc := project.NewService(st, slog.Default())
	_, err := svc.Create(ctx, sess, project.CreateRequest{ClientID: "ghost", Name: "Website"})
	require.ErrorIs(t, err, project.ErrClientNotFound)
	st.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProjectService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	sess := store.Session{WorkspaceID: "ws1"}

	svc := project.NewService(&mocks.Store{}, slog.Default())

	_, err := svc.Create(ctx, sess, project.CreateRequest{Name: "Website"})
	require.ErrorIs(t, err, project.ErrInvalidInput)

	_, err = svc.Create(ctx, sess, project.CreateRequest{ClientID: "c1"})
	require.ErrorIs(t, err, project.ErrInvalidInput)
}

func TestProjectService_ListFilters(t *testing.T) {
	ctx := context.Background()
	sess := store.Session{WorkspaceID: "ws1"}

	st := &mocks.Store{}
	st.On("List", ctx, sess, store.KindProject,
		store.Eq("client_id", "c1"), store.Eq("status", "active")).Return([]store.Fields{
		{"id": "p1", "workspace_id": "ws1", "client_id": "c1", "name": "Website", "status": "active"},
	}, nil)

	svc := project.NewService(st, slog.Default())
	projects, err := svc.List(ctx, sess, project.ListOptions{ClientID: "c1", Status: project.StatusActive})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	st.AssertExpectations(t)
}

func TestProjectService_UpdateNotFound(t *testing.T) {
	ctx := context.Background()
	sess := store.Session{WorkspaceID: "ws1"}

	st := &mocks.Store{}
	st.On("Update", ctx, sess, store.KindProject, "missing", mock.Anything).Return(store.ErrNotFound)

	svc := project.NewService(st, slog.Default())
	name := "Renamed"
	_, err := svc.Update(ctx, sess, "missing", project.UpdateRequest{Name: &name})
	require.ErrorIs(t, err, project.ErrProjectNotFound)
}
