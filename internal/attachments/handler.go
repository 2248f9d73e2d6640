package attachments

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/foremanhq/foreman/pkg/handlers"
	"github.com/foremanhq/foreman/pkg/pagination"
	"github.com/foremanhq/foreman/pkg/routes"
)

// Handler provides HTTP endpoints for attachment operations.
type Handler struct {
	sys           System
	logger        *slog.Logger
	pagination    pagination.Config
	maxUploadSize int64
}

// SearchRequest combines pagination and filter criteria for the search endpoint.
type SearchRequest struct {
	pagination.PageRequest
	Filters
}

// NewHandler creates a Handler with the given system, logger, pagination config, and upload size limit.
func NewHandler(
	sys System,
	logger *slog.Logger,
	pagination pagination.Config,
	maxUploadSize int64,
) *Handler {
	return &Handler{
		sys:           sys,
		logger:        logger.With("handler", "attachments"),
		pagination:    pagination,
		maxUploadSize: maxUploadSize,
	}
}

// Routes returns the route group definition for attachment endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/attachments",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "GET", Pattern: "/{id}/download", Handler: h.Download},
			{Method: "POST", Pattern: "", Handler: h.Upload},
			{Method: "POST", Pattern: "/search", Handler: h.Search},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete},
		},
	}
}

// List returns a paginated list of attachments with optional query parameter filters.
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

// Find returns a single attachment's metadata by its UUID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidFile)
		return
	}

	a, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, a)
}

// Search accepts a JSON body with pagination and filter criteria and returns matching attachments.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidFile)
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

// Upload processes a multipart form upload containing a file, project id, and
// optional category. Extracts PDF page count automatically for PDF files
// using pdfcpu.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, ErrFileTooLarge)
		return
	}

	projectID, err := uuid.Parse(r.FormValue("project_id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidFile)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidFile)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidFile)
		return
	}

	contentType := detectContentType(header.Header.Get("Content-Type"), data)
	pageCount := extractPDFPageCount(h.logger, data, contentType)

	cmd := CreateCommand{
		ProjectID:   projectID,
		Data:        data,
		Filename:    header.Filename,
		ContentType: contentType,
		Category:    r.FormValue("category"),
		PageCount:   pageCount,
	}

	a, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, a)
}

// Download streams the attachment's file content with its stored content type
// and a download disposition.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidFile)
		return
	}

	a, body, err := h.sys.Download(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	defer body.Close()

	w.Header().Set("Content-Type", a.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(a.SizeBytes, 10))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", a.Filename))
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, body); err != nil {
		h.logger.Warn("attachment stream interrupted", "id", a.ID, "error", err)
	}
}

// Delete removes an attachment by its UUID path parameter.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidFile)
		return
	}

	if err := h.sys.Delete(r.Context(), id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func detectContentType(header string, data []byte) string {
	header = strings.TrimSpace(header)
	if header != "" && header != "application/octet-stream" {
		return header
	}
	return http.DetectContentType(data)
}

func extractPDFPageCount(logger *slog.Logger, data []byte, contentType string) *int {
	if contentType != "application/pdf" {
		return nil
	}

	count, err := api.PageCount(bytes.NewReader(data), nil)
	if err != nil {
		logger.Warn("failed to extract PDF page count", "error", err)
		return nil
	}

	return &count
}
