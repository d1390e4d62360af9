package transport_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rioverde/pipedesk/internal/auth"
	"github.com/rioverde/pipedesk/internal/domain/activity"
	"github.com/rioverde/pipedesk/internal/domain/client"
	"github.com/rioverde/pipedesk/internal/domain/pipeline"
	"github.com/rioverde/pipedesk/internal/domain/project"
	"github.com/rioverde/pipedesk/internal/domain/task"
	"github.com/rioverde/pipedesk/internal/domain/workspace"
	"github.com/rioverde/pipedesk/internal/sqlite"
	"github.com/rioverde/pipedesk/internal/store"
	"github.com/rioverde/pipedesk/internal/transport"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() {
		db.Close()
	})

	logger := slog.Default()
	repo := sqlite.NewWorkspaceRepository(db)
	st := store.New(db, logger)

	clientSvc := client.NewService(st, logger)
	router := transport.NewRouter(transport.Services{
		Workspaces: workspace.NewService(repo, logger),
		Clients:    clientSvc,
		Projects:   project.NewService(st, logger),
		Tasks:      task.NewService(st, logger),
		Activities: activity.NewService(st, logger),
		Pipeline:   pipeline.NewService(clientSvc, logger),
	}, auth.NewResolver(repo, nil), logger)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func onboard(t *testing.T, server *httptest.Server, name string) (workspaceID, apiKey string) {
	t.Helper()

	resp := doJSON(t, http.MethodPost, server.URL+"/v1/workspaces", "", map[string]string{
		"name":          name,
		"owner_user_id": "owner",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var result struct {
		Workspace struct {
			ID string `json:"id"`
		} `json:"workspace"`
		APIKey string `json:"api_key"`
	}
	decode(t, resp, &result)
	require.NotEmpty(t, result.Workspace.ID)
	require.NotEmpty(t, result.APIKey)
	return result.Workspace.ID, result.APIKey
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthRequired(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/v1/clients")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, server.URL+"/v1/clients", "pk_bogus", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestClientLifecycle(t *testing.T) {
	server := newTestServer(t)
	_, key := onboard(t, server, "Studio Rio")

	resp := doJSON(t, http.MethodPost, server.URL+"/v1/clients", key, map[string]any{
		"name":    "Acme",
		"company": "Acme Co",
		"source":  "referral",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created client.Client
	decode(t, resp, &created)
	require.NotEmpty(t, created.ID)
	require.Equal(t, client.StageNew, created.Stage, "new clients land in the first column")

	resp = doJSON(t, http.MethodGet, server.URL+"/v1/clients", key, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var clients []client.Client
	decode(t, resp, &clients)
	require.Len(t, clients, 1)

	resp = doJSON(t, http.MethodPatch, server.URL+"/v1/clients/"+created.ID, key, map[string]any{
		"stage": "contacted",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated client.Client
	decode(t, resp, &updated)
	require.Equal(t, client.StageContacted, updated.Stage)

	resp = doJSON(t, http.MethodDelete, server.URL+"/v1/clients/"+created.ID, key, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, server.URL+"/v1/clients/"+created.ID, key, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestWorkspaceIsolation(t *testing.T) {
	server := newTestServer(t)
	_, key1 := onboard(t, server, "Studio One")
	_, key2 := onboard(t, server, "Studio Two")

	resp := doJSON(t, http.MethodPost, server.URL+"/v1/clients", key1, map[string]any{"name": "Mine"})
	var created client.Client
	decode(t, resp, &created)

	// The other workspace sees neither the list entry nor the document.
	resp = doJSON(t, http.MethodGet, server.URL+"/v1/clients", key2, nil)
	var clients []client.Client
	decode(t, resp, &clients)
	require.Empty(t, clients)

	resp = doJSON(t, http.MethodGet, server.URL+"/v1/clients/"+created.ID, key2, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProjectRequiresClient(t *testing.T) {
	server := newTestServer(t)
	_, key := onboard(t, server, "Studio Rio")

	resp := doJSON(t, http.MethodPost, server.URL+"/v1/projects", key, map[string]any{
		"client_id": "ghost",
		"name":      "Website",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPipelineMove(t *testing.T) {
	server := newTestServer(t)
	_, key := onboard(t, server, "Studio Rio")

	resp := doJSON(t, http.MethodPost, server.URL+"/v1/clients", key, map[string]any{"name": "Acme"})
	var created client.Client
	decode(t, resp, &created)

	resp = doJSON(t, http.MethodPost, server.URL+"/v1/pipeline/drag", key, map[string]string{
		"client_id": created.ID,
	})
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, server.URL+"/v1/pipeline/move", key, map[string]string{
		"client_id": created.ID,
		"stage":     "negotiating",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var result pipeline.MoveResult
	decode(t, resp, &result)
	require.True(t, result.Moved)
	require.Equal(t, client.StageNegotiating, result.To)

	resp = doJSON(t, http.MethodGet, server.URL+"/v1/pipeline", key, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var board pipeline.Board
	decode(t, resp, &board)
	require.Len(t, board.Columns, 5)
	require.Len(t, board.Columns[2].Cards, 1)
	require.Equal(t, created.ID, board.Columns[2].Cards[0].ID)
}

func TestActivityLog(t *testing.T) {
	server := newTestServer(t)
	_, key := onboard(t, server, "Studio Rio")

	resp := doJSON(t, http.MethodPost, server.URL+"/v1/activities", key, map[string]string{
		"type":    "whatsapp",
		"summary": "Sent the quote",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var entry activity.Entry
	decode(t, resp, &entry)
	require.Equal(t, activity.TypeWhatsapp, entry.Type)

	// Malformed type is rejected before it reaches storage.
	resp = doJSON(t, http.MethodPost, server.URL+"/v1/activities", key, map[string]string{
		"type":    "carrier-pigeon",
		"summary": "nope",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
