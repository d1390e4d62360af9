package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rioverde/pipedesk/internal/domain/workspace"
)

func seedWorkspace(t *testing.T, repo *WorkspaceRepository, id, name string) *workspace.Workspace {
	t.Helper()

	now := time.Now().UTC()
	ws := &workspace.Workspace{
		ID:        id,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.Create(context.Background(), ws))
	return ws
}

func TestWorkspaceRepository_CreateAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewWorkspaceRepository(db)
	ctx := context.Background()

	seedWorkspace(t, repo, "ws1", "Studio Rio")

	retrieved, err := repo.Get(ctx, "ws1")
	require.NoError(t, err)
	require.Equal(t, "ws1", retrieved.ID)
	require.Equal(t, "Studio Rio", retrieved.Name)

	_, err = repo.Get(ctx, "nonexistent")
	require.ErrorIs(t, err, workspace.ErrWorkspaceNotFound)
}

func TestWorkspaceRepository_AddMember(t *testing.T) {
	db := NewTestDB(t)
	repo := NewWorkspaceRepository(db)
	ctx := context.Background()

	seedWorkspace(t, repo, "ws1", "Studio Rio")

	member := &workspace.Member{
		ID:          "m1",
		WorkspaceID: "ws1",
		UserID:      "user1",
		Role:        workspace.RoleOwner,
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, repo.AddMember(ctx, member))

	// Same user twice is rejected.
	dup := &workspace.Member{
		ID:          "m2",
		WorkspaceID: "ws1",
		UserID:      "user1",
		Role:        workspace.RoleMember,
		CreatedAt:   time.Now().UTC(),
	}
	err := repo.AddMember(ctx, dup)
	require.ErrorIs(t, err, workspace.ErrMemberExists)

	// Unknown workspace is rejected by the foreign key.
	orphan := &workspace.Member{
		ID:          "m3",
		WorkspaceID: "nope",
		UserID:      "user2",
		Role:        workspace.RoleMember,
		CreatedAt:   time.Now().UTC(),
	}
	err = repo.AddMember(ctx, orphan)
	require.ErrorIs(t, err, workspace.ErrWorkspaceNotFound)
}

func TestWorkspaceRepository_ListMembers(t *testing.T) {
	db := NewTestDB(t)
	repo := NewWorkspaceRepository(db)
	ctx := context.Background()

	seedWorkspace(t, repo, "ws1", "Studio Rio")
	seedWorkspace(t, repo, "ws2", "Other")

	base := time.Now().UTC()
	for i, userID := range []string{"alice", "bob"} {
		require.NoError(t, repo.AddMember(ctx, &workspace.Member{
			ID:          userID,
			WorkspaceID: "ws1",
			UserID:      userID,
			Role:        workspace.RoleMember,
			CreatedAt:   base.Add(time.Duration(i) * time.Second),
		}))
	}
	require.NoError(t, repo.AddMember(ctx, &workspace.Member{
		ID:          "other",
		WorkspaceID: "ws2",
		UserID:      "carol",
		Role:        workspace.RoleOwner,
		CreatedAt:   base,
	}))

	members, err := repo.ListMembers(ctx, "ws1")
	require.NoError(t, err)
	require.Len(t, members, 2)
	require.Equal(t, "alice", members[0].UserID)
	require.Equal(t, "bob", members[1].UserID)
}

func TestWorkspaceRepository_APIKeys(t *testing.T) {
	db := NewTestDB(t)
	repo := NewWorkspaceRepository(db)
	ctx := context.Background()

	seedWorkspace(t, repo, "ws1", "Studio Rio")

	require.NoError(t, repo.SaveAPIKey(ctx, "hash-abc", "ws1", "test key"))

	workspaceID, err := repo.ResolveAPIKey(ctx, "hash-abc")
	require.NoError(t, err)
	require.Equal(t, "ws1", workspaceID)

	_, err = repo.ResolveAPIKey(ctx, "hash-unknown")
	require.ErrorIs(t, err, workspace.ErrWorkspaceNotFound)
}
