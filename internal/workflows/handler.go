package workflows

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/foremanhq/foreman/pkg/handlers"
	"github.com/foremanhq/foreman/pkg/pagination"
	"github.com/foremanhq/foreman/pkg/routes"
)

// Handler provides HTTP endpoints for workflow operations.
type Handler struct {
	sys           System
	logger        *slog.Logger
	pagination    pagination.Config
	sequenceLimit int
}

// SearchRequest combines pagination and filter criteria for the search endpoint.
type SearchRequest struct {
	pagination.PageRequest
	Filters
}

// BatchRequest lists the projects to sequence in one call.
type BatchRequest struct {
	ProjectIDs []uuid.UUID `json:"project_ids"`
}

// NewHandler creates a Handler with the given system, logger, pagination
// config, and batch concurrency limit.
func NewHandler(
	sys System,
	logger *slog.Logger,
	pagination pagination.Config,
	sequenceLimit int,
) *Handler {
	return &Handler{
		sys:           sys,
		logger:        logger.With("handler", "workflows"),
		pagination:    pagination,
		sequenceLimit: sequenceLimit,
	}
}

// Routes returns the route group definition for workflow endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/workflows",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "GET", Pattern: "/{id}/workorder", Handler: h.WorkOrder},
			{Method: "GET", Pattern: "/project/{projectId}", Handler: h.FindByProject},
			{Method: "POST", Pattern: "/search", Handler: h.Search},
			{Method: "POST", Pattern: "/plan", Handler: h.Plan},
			{Method: "POST", Pattern: "/batch", Handler: h.SequenceBatch},
			{Method: "POST", Pattern: "/project/{projectId}", Handler: h.Sequence},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete},
		},
	}
}

// List returns a paginated list of workflows with optional query parameter filters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find returns a single workflow by its UUID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	wf, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, wf)
}

// FindByProject returns the workflow stored for a project, if any.
func (h *Handler) FindByProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(r.PathValue("projectId"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	wf, err := h.sys.FindByProject(r.Context(), projectID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, wf)
}

// Search accepts a JSON body with pagination and filter criteria and returns matching workflows.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	req.PageRequest.Normalize(h.pagination)

	result, err := h.sys.List(r.Context(), req.PageRequest, req.Filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Sequence runs the sequencing engine over a project's line items and stores
// the resulting workflow.
func (h *Handler) Sequence(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(r.PathValue("projectId"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	wf, err := h.sys.Sequence(r.Context(), projectID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, wf)
}

// SequenceBatch sequences multiple projects concurrently and reports a
// per-project outcome list.
func (h *Handler) SequenceBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	if len(req.ProjectIDs) == 0 {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	results := h.sys.SequenceBatch(r.Context(), req.ProjectIDs, h.sequenceLimit)
	handlers.RespondJSON(w, http.StatusOK, results)
}

// WorkOrder renders and returns the plain-text work order for a workflow.
func (h *Handler) WorkOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	text, err := h.sys.WorkOrder(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondText(w, http.StatusOK, text)
}

// Plan produces a sequencing preview from a prose project description
// without persisting anything. Responses always carry the plan envelope.
func (h *Handler) Plan(w http.ResponseWriter, r *http.Request) {
	var req PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondPlanError(w, ErrInvalidPlan)
		return
	}

	plan, err := BuildPlan(req)
	if err != nil {
		h.respondPlanError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, plan)
}

// Delete removes a workflow by its UUID path parameter.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	if err := h.sys.Delete(r.Context(), id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondPlanError(w http.ResponseWriter, err error) {
	h.logger.Warn("plan request rejected", "error", err)
	handlers.RespondJSON(w, MapHTTPStatus(err), PlanResponse{
		Error:     err.Error(),
		RequestID: uuid.NewString(),
	})
}
