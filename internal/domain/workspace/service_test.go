package workspace_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rioverde/pipedesk/internal/domain/workspace"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, ws *workspace.Workspace) error {
	args := m.Called(ctx, ws)
	return args.Error(0)
}

func (m *mockRepo) Get(ctx context.Context, id string) (*workspace.Workspace, error) {
	args := m.Called(ctx, id)
	if ws, ok := args.Get(0).(*workspace.Workspace); ok {
		return ws, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) AddMember(ctx context.Context, member *workspace.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *mockRepo) ListMembers(ctx context.Context, workspaceID string) ([]workspace.Member, error) {
	args := m.Called(ctx, workspaceID)
	if members, ok := args.Get(0).([]workspace.Member); ok {
		return members, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) SaveAPIKey(ctx context.Context, keyHash, workspaceID, description string) error {
	args := m.Called(ctx, keyHash, workspaceID, description)
	return args.Error(0)
}

func (m *mockRepo) ResolveAPIKey(ctx context.Context, keyHash string) (string, error) {
	args := m.Called(ctx, keyHash)
	return args.String(0), args.Error(1)
}

func TestWorkspaceService_Onboard(t *testing.T) {
	ctx := context.Background()

	repo := &mockRepo{}
	repo.On("Create", ctx, mock.MatchedBy(func(ws *workspace.Workspace) bool {
		return ws.ID != "" && ws.Name == "Studio Rio"
	})).Return(nil)
	repo.On("AddMember", ctx, mock.MatchedBy(func(m *workspace.Member) bool {
		return m.UserID == "user1" && m.Role == workspace.RoleOwner
	})).Return(nil)
	repo.On("SaveAPIKey", ctx, mock.Anything, mock.Anything, "onboarding key").Return(nil)

	svc := workspace.NewService(repo, slog.Default())
	result, err := svc.Onboard(ctx, workspace.OnboardRequest{Name: "Studio Rio", OwnerUserID: "user1"})
	require.NoError(t, err)
	require.NotEmpty(t, result.Workspace.ID)
	require.True(t, strings.HasPrefix(result.APIKey, "pk_"), "keys carry the pk_ prefix")
	repo.AssertExpectations(t)
}

func TestWorkspaceService_OnboardValidation(t *testing.T) {
	ctx := context.Background()
	svc := workspace.NewService(&mockRepo{}, slog.Default())

	_, err := svc.Onboard(ctx, workspace.OnboardRequest{Name: "  ", OwnerUserID: "user1"})
	require.ErrorIs(t, err, workspace.ErrInvalidInput)

	_, err = svc.Onboard(ctx, workspace.OnboardRequest{Name: "Studio"})
	require.ErrorIs(t, err, workspace.ErrInvalidInput)
}

func TestWorkspaceService_AddMemberValidation(t *testing.T) {
	ctx := context.Background()
	svc := workspace.NewService(&mockRepo{}, slog.Default())

	_, err := svc.AddMember(ctx, "ws1", "", workspace.RoleMember)
	require.ErrorIs(t, err, workspace.ErrInvalidInput)

	_, err = svc.AddMember(ctx, "ws1", "user1", "admin")
	require.ErrorIs(t, err, workspace.ErrInvalidInput)
}

func TestWorkspaceService_AddMemberConflict(t *testing.T) {
	ctx := context.Background()

	repo := &mockRepo{}
	repo.On("AddMember", ctx, mock.Anything).Return(workspace.ErrMemberExists)

	svc := workspace.NewService(repo, slog.Default())
	_, err := svc.AddMember(ctx, "ws1", "user1", workspace.RoleMember)
	require.ErrorIs(t, err, workspace.ErrMemberExists)
}

func TestHashKey_Deterministic(t *testing.T) {
	a := workspace.HashKey("pk_abc")
	b := workspace.HashKey("pk_abc")
	require.Equal(t, a, b)
	require.NotEqual(t, a, workspace.HashKey("pk_other"))
	require.Len(t, a, 64)
	require.NotContains(t, a, "pk_", "stored form never contains the raw key")
}
