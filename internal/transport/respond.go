package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rioverde/pipedesk/internal/domain/activity"
	"github.com/rioverde/pipedesk/internal/domain/client"
	"github.com/rioverde/pipedesk/internal/domain/pipeline"
	"github.com/rioverde/pipedesk/internal/domain/project"
	"github.com/rioverde/pipedesk/internal/domain/task"
	"github.com/rioverde/pipedesk/internal/domain/workspace"
	"github.com/rioverde/pipedesk/internal/store"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// respondError maps domain errors onto HTTP statuses. Backend
// failures collapse to a generic message; callers own retry and
// user-facing wording.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case isNotFound(err):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, store.ErrUnauthorized), errors.Is(err, ErrUnauthorized):
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	case errors.Is(err, workspace.ErrMemberExists):
		respondJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case isBadRequest(err):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "operation failed"})
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound) ||
		errors.Is(err, client.ErrClientNotFound) ||
		errors.Is(err, project.ErrProjectNotFound) ||
		errors.Is(err, task.ErrTaskNotFound) ||
		errors.Is(err, activity.ErrEntryNotFound) ||
		errors.Is(err, workspace.ErrWorkspaceNotFound) ||
		errors.Is(err, pipeline.ErrCardNotFound)
}

func isBadRequest(err error) bool {
	return errors.Is(err, store.ErrInvalidInput) ||
		errors.Is(err, store.ErrUnknownKind) ||
		errors.Is(err, store.ErrInvalidFilter) ||
		errors.Is(err, client.ErrInvalidInput) ||
		errors.Is(err, client.ErrInvalidStage) ||
		errors.Is(err, project.ErrInvalidInput) ||
		errors.Is(err, project.ErrClientNotFound) ||
		errors.Is(err, task.ErrInvalidInput) ||
		errors.Is(err, activity.ErrInvalidInput) ||
		errors.Is(err, workspace.ErrInvalidInput)
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Join(store.ErrInvalidInput, err)
	}
	return nil
}
