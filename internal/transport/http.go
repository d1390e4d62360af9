package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rioverde/pipedesk/internal/domain/activity"
	"github.com/rioverde/pipedesk/internal/domain/client"
	"github.com/rioverde/pipedesk/internal/domain/pipeline"
	"github.com/rioverde/pipedesk/internal/domain/project"
	"github.com/rioverde/pipedesk/internal/domain/task"
	"github.com/rioverde/pipedesk/internal/domain/workspace"
	"github.com/rioverde/pipedesk/internal/metrics"
)

// Services bundles everything the HTTP layer dispatches to.
type Services struct {
	Workspaces *workspace.Service
	Clients    *client.Service
	Projects   *project.Service
	Tasks      *task.Service
	Activities *activity.Service
	Pipeline   *pipeline.Service
}

// Server wires HTTP handlers.
type Server struct {
	svc    Services
	logger *slog.Logger
}

// NewRouter creates the HTTP router with middleware.
func NewRouter(svc Services, resolver WorkspaceResolver, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(metrics.HTTPMiddleware)

	srv := &Server{svc: svc, logger: logger}

	r.Get("/health", srv.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	// Onboarding happens before the caller has any credentials.
	r.Post("/v1/workspaces", srv.handleOnboard)

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(resolver))

		r.Get("/v1/workspace", srv.handleGetWorkspace)
		r.Get("/v1/workspace/members", srv.handleListMembers)
		r.Post("/v1/workspace/members", srv.handleAddMember)

		r.Route("/v1/clients", func(r chi.Router) {
			r.Get("/", srv.handleListClients)
			r.Post("/", srv.handleCreateClient)
			r.Get("/{id}", srv.handleGetClient)
			r.Patch("/{id}", srv.handleUpdateClient)
			r.Delete("/{id}", srv.handleDeleteClient)
		})

		r.Route("/v1/projects", func(r chi.Router) {
			r.Get("/", srv.handleListProjects)
			r.Post("/", srv.handleCreateProject)
			r.Get("/{id}", srv.handleGetProject)
			r.Patch("/{id}", srv.handleUpdateProject)
			r.Delete("/{id}", srv.handleDeleteProject)
		})

		r.Route("/v1/tasks", func(r chi.Router) {
			r.Get("/", srv.handleListTasks)
			r.Post("/", srv.handleCreateTask)
			r.Get("/{id}", srv.handleGetTask)
			r.Patch("/{id}", srv.handleUpdateTask)
			r.Delete("/{id}", srv.handleDeleteTask)
		})

		r.Route("/v1/activities", func(r chi.Router) {
			r.Get("/", srv.handleListActivities)
			r.Post("/", srv.handleLogActivity)
			r.Get("/{id}", srv.handleGetActivity)
			r.Delete("/{id}", srv.handleDeleteActivity)
		})

		r.Route("/v1/pipeline", func(r chi.Router) {
			r.Get("/", srv.handleBoard)
			r.Post("/drag", srv.handleBeginDrag)
			r.Post("/move", srv.handleMove)
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
