package projects_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/foremanhq/foreman/internal/projects"
	"github.com/foremanhq/foreman/pkg/pagination"
	"github.com/foremanhq/foreman/pkg/routes"
)

type stubSystem struct {
	project *projects.Project
	err     error
}

func (s *stubSystem) Handler() *projects.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return projects.NewHandler(s, logger, pagination.Config{DefaultPageSize: 20, MaxPageSize: 100})
}

func (s *stubSystem) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters projects.Filters,
) (*pagination.PageResult[projects.Project], error) {
	if s.err != nil {
		return nil, s.err
	}
	result := pagination.NewPageResult([]projects.Project{*s.project}, 1, page.Page, page.PageSize)
	return &result, nil
}

func (s *stubSystem) Find(ctx context.Context, id uuid.UUID) (*projects.Project, error) {
	return s.project, s.err
}

func (s *stubSystem) Create(ctx context.Context, cmd projects.CreateCommand) (*projects.Project, error) {
	return s.project, s.err
}

func (s *stubSystem) Update(ctx context.Context, id uuid.UUID, cmd projects.UpdateCommand) (*projects.Project, error) {
	return s.project, s.err
}

func (s *stubSystem) Delete(ctx context.Context, id uuid.UUID) error {
	return s.err
}

func serveRoutes(sys projects.System) *http.ServeMux {
	mux := http.NewServeMux()
	routes.Register(mux, sys.Handler().Routes())
	return mux
}

func sampleProject() *projects.Project {
	return &projects.Project{
		ID:     uuid.New(),
		Name:   "Hall Bath Remodel",
		Trade:  "General",
		Status: projects.StatusDraft,
	}
}

func TestHandlerFind(t *testing.T) {
	p := sampleProject()
	mux := serveRoutes(&stubSystem{project: p})

	req := httptest.NewRequest("GET", "/projects/"+p.ID.String(), nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got projects.Project
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got.ID != p.ID || got.Name != p.Name {
		t.Errorf("project = %+v, want %+v", got, p)
	}
}

func TestHandlerFindNotFound(t *testing.T) {
	mux := serveRoutes(&stubSystem{err: projects.ErrNotFound})

	req := httptest.NewRequest("GET", "/projects/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandlerCreate(t *testing.T) {
	p := sampleProject()
	mux := serveRoutes(&stubSystem{project: p})

	body := `{"name": "Hall Bath Remodel", "line_items": [{"description": "Demo existing bath"}]}`
	req := httptest.NewRequest("POST", "/projects", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
}

func TestHandlerCreateInvalid(t *testing.T) {
	mux := serveRoutes(&stubSystem{err: projects.ErrInvalidProject})

	req := httptest.NewRequest("POST", "/projects", strings.NewReader(`{"name": ""}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandlerUpdateInvalidID(t *testing.T) {
	mux := serveRoutes(&stubSystem{project: sampleProject()})

	req := httptest.NewRequest("PUT", "/projects/not-a-uuid", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandlerDelete(t *testing.T) {
	mux := serveRoutes(&stubSystem{})

	req := httptest.NewRequest("DELETE", "/projects/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
}

func TestFiltersFromQuery(t *testing.T) {
	values := map[string][]string{
		"name":   {"bath"},
		"status": {"draft"},
	}

	f := projects.FiltersFromQuery(values)

	if f.Name == nil || *f.Name != "bath" {
		t.Errorf("Name = %v", f.Name)
	}
	if f.Status == nil || *f.Status != "draft" {
		t.Errorf("Status = %v", f.Status)
	}
	if f.Trade != nil {
		t.Errorf("Trade = %v, want nil", f.Trade)
	}
}
