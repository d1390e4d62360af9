package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rioverde/pipedesk/internal/domain/activity"
	"github.com/rioverde/pipedesk/internal/domain/client"
	"github.com/rioverde/pipedesk/internal/domain/pipeline"
	"github.com/rioverde/pipedesk/internal/domain/project"
	"github.com/rioverde/pipedesk/internal/domain/task"
	"github.com/rioverde/pipedesk/internal/domain/workspace"
)

// Workspaces

type onboardRequest struct {
	Name        string `json:"name"`
	OwnerUserID string `json:"owner_user_id"`
}

func (s *Server) handleOnboard(w http.ResponseWriter, r *http.Request) {
	var req onboardRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	result, err := s.svc.Workspaces.Onboard(r.Context(), workspace.OnboardRequest{
		Name:        req.Name,
		OwnerUserID: req.OwnerUserID,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, result)
}

func (s *Server) handleGetWorkspace(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromRequest(r)
	ws, err := s.svc.Workspaces.Get(r.Context(), sess.WorkspaceID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ws)
}

type addMemberRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

func (s *Server) handleAddMember(w http.ResponseWriter, r *http.Request) {
	var req addMemberRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	sess := sessionFromRequest(r)
	role := workspace.Role(req.Role)
	if role == "" {
		role = workspace.RoleMember
	}
	member, err := s.svc.Workspaces.AddMember(r.Context(), sess.WorkspaceID, req.UserID, role)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, member)
}

func (s *Server) handleListMembers(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromRequest(r)
	members, err := s.svc.Workspaces.ListMembers(r.Context(), sess.WorkspaceID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, members)
}

// Clients

type clientRequest struct {
	Name    *string         `json:"name"`
	Company *string         `json:"company"`
	Stage   *string         `json:"stage"`
	Source  *string         `json:"source"`
	Budget  *float64        `json:"budget"`
	Contact *client.Contact `json:"contact"`
	Tags    []string        `json:"tags"`
}

func (s *Server) handleCreateClient(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	create := client.CreateRequest{Tags: req.Tags}
	if req.Name != nil {
		create.Name = *req.Name
	}
	if req.Company != nil {
		create.Company = *req.Company
	}
	if req.Stage != nil {
		create.Stage = client.Stage(*req.Stage)
	}
	if req.Source != nil {
		create.Source = *req.Source
	}
	create.Budget = req.Budget
	if req.Contact != nil {
		create.Contact = *req.Contact
	}
	c, err := s.svc.Clients.Create(r.Context(), sessionFromRequest(r), create)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, c)
}

func (s *Server) handleListClients(w http.ResponseWriter, r *http.Request) {
	opts := client.ListOptions{Stage: client.Stage(r.URL.Query().Get("stage"))}
	clients, err := s.svc.Clients.List(r.Context(), sessionFromRequest(r), opts)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, clients)
}

func (s *Server) handleGetClient(w http.ResponseWriter, r *http.Request) {
	c, err := s.svc.Clients.Get(r.Context(), sessionFromRequest(r), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (s *Server) handleUpdateClient(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	sess := sessionFromRequest(r)
	id := chi.URLParam(r, "id")

	// Stage changes are a dedicated single-field write, matching the
	// pipeline board's behavior.
	if req.Stage != nil {
		if err := s.svc.Clients.UpdateStage(r.Context(), sess, id, client.Stage(*req.Stage)); err != nil {
			respondError(w, err)
			return
		}
	}

	update := client.UpdateRequest{
		Name:    req.Name,
		Company: req.Company,
		Source:  req.Source,
		Budget:  req.Budget,
		Contact: req.Contact,
		Tags:    req.Tags,
	}
	if update.Name == nil && update.Company == nil && update.Source == nil &&
		update.Budget == nil && update.Contact == nil && update.Tags == nil {
		c, err := s.svc.Clients.Get(r.Context(), sess, id)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, c)
		return
	}

	c, err := s.svc.Clients.Update(r.Context(), sess, id, update)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (s *Server) handleDeleteClient(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Clients.Delete(r.Context(), sessionFromRequest(r), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// Projects

type projectRequest struct {
	ClientID  *string  `json:"client_id"`
	Name      *string  `json:"name"`
	Status    *string  `json:"status"`
	StartDate *string  `json:"start_date"`
	DueDate   *string  `json:"due_date"`
	Tags      []string `json:"tags"`
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	create := project.CreateRequest{Tags: req.Tags}
	if req.ClientID != nil {
		create.ClientID = *req.ClientID
	}
	if req.Name != nil {
		create.Name = *req.Name
	}
	if req.Status != nil {
		create.Status = project.Status(*req.Status)
	}
	if req.StartDate != nil {
		create.StartDate = *req.StartDate
	}
	if req.DueDate != nil {
		create.DueDate = *req.DueDate
	}
	p, err := s.svc.Projects.Create(r.Context(), sessionFromRequest(r), create)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, p)
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	opts := project.ListOptions{
		ClientID: r.URL.Query().Get("client_id"),
		Status:   project.Status(r.URL.Query().Get("status")),
	}
	projects, err := s.svc.Projects.List(r.Context(), sessionFromRequest(r), opts)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, projects)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	p, err := s.svc.Projects.Get(r.Context(), sessionFromRequest(r), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	update := project.UpdateRequest{
		Name:      req.Name,
		StartDate: req.StartDate,
		DueDate:   req.DueDate,
		Tags:      req.Tags,
	}
	if req.Status != nil {
		status := project.Status(*req.Status)
		update.Status = &status
	}
	p, err := s.svc.Projects.Update(r.Context(), sessionFromRequest(r), chi.URLParam(r, "id"), update)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Projects.Delete(r.Context(), sessionFromRequest(r), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// Tasks

type taskRequest struct {
	ClientID      *string `json:"client_id"`
	ProjectID     *string `json:"project_id"`
	Title         *string `json:"title"`
	Status        *string `json:"status"`
	Priority      *int    `json:"priority"`
	ScheduledDate *string `json:"scheduled_date"`
	DueDate       *string `json:"due_date"`
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	create := task.CreateRequest{}
	if req.ClientID != nil {
		create.ClientID = *req.ClientID
	}
	if req.ProjectID != nil {
		create.ProjectID = *req.ProjectID
	}
	if req.Title != nil {
		create.Title = *req.Title
	}
	if req.Status != nil {
		create.Status = task.Status(*req.Status)
	}
	if req.Priority != nil {
		create.Priority = *req.Priority
	}
	if req.ScheduledDate != nil {
		create.ScheduledDate = *req.ScheduledDate
	}
	if req.DueDate != nil {
		create.DueDate = *req.DueDate
	}
	t, err := s.svc.Tasks.Create(r.Context(), sessionFromRequest(r), create)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, t)
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	opts := task.ListOptions{
		ClientID:  r.URL.Query().Get("client_id"),
		ProjectID: r.URL.Query().Get("project_id"),
		Status:    task.Status(r.URL.Query().Get("status")),
	}
	tasks, err := s.svc.Tasks.List(r.Context(), sessionFromRequest(r), opts)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	t, err := s.svc.Tasks.Get(r.Context(), sessionFromRequest(r), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, t)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	update := task.UpdateRequest{
		Title:         req.Title,
		Priority:      req.Priority,
		ScheduledDate: req.ScheduledDate,
		DueDate:       req.DueDate,
	}
	if req.Status != nil {
		status := task.Status(*req.Status)
		update.Status = &status
	}
	t, err := s.svc.Tasks.Update(r.Context(), sessionFromRequest(r), chi.URLParam(r, "id"), update)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, t)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Tasks.Delete(r.Context(), sessionFromRequest(r), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// Activities

type activityRequest struct {
	ClientID  string `json:"client_id"`
	ProjectID string `json:"project_id"`
	Type      string `json:"type"`
	Summary   string `json:"summary"`
	EventDate string `json:"event_date"`
}

func (s *Server) handleLogActivity(w http.ResponseWriter, r *http.Request) {
	var req activityRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	entry, err := s.svc.Activities.Log(r.Context(), sessionFromRequest(r), activity.CreateRequest{
		ClientID:  req.ClientID,
		ProjectID: req.ProjectID,
		Type:      activity.Type(req.Type),
		Summary:   req.Summary,
		EventDate: req.EventDate,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	opts := activity.ListOptions{
		ClientID:  r.URL.Query().Get("client_id"),
		ProjectID: r.URL.Query().Get("project_id"),
		Type:      activity.Type(r.URL.Query().Get("type")),
	}
	entries, err := s.svc.Activities.List(r.Context(), sessionFromRequest(r), opts)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

func (s *Server) handleGetActivity(w http.ResponseWriter, r *http.Request) {
	entry, err := s.svc.Activities.Get(r.Context(), sessionFromRequest(r), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entry)
}

func (s *Server) handleDeleteActivity(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Activities.Delete(r.Context(), sessionFromRequest(r), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// Pipeline

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	board, err := s.svc.Pipeline.Board(r.Context(), sessionFromRequest(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, board)
}

type dragRequest struct {
	ClientID string `json:"client_id"`
}

func (s *Server) handleBeginDrag(w http.ResponseWriter, r *http.Request) {
	var req dragRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	s.svc.Pipeline.BeginDrag(sessionFromRequest(r), req.ClientID)
	respondJSON(w, http.StatusNoContent, nil)
}

type moveRequest struct {
	ClientID string `json:"client_id"`
	Stage    string `json:"stage"`
	OverID   string `json:"over_id"`
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	result, err := s.svc.Pipeline.Move(r.Context(), sessionFromRequest(r), pipeline.Gesture{
		ClientID: req.ClientID,
		Stage:    client.Stage(req.Stage),
		OverID:   req.OverID,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
