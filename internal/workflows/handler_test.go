package workflows_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/foremanhq/foreman/internal/workflows"
	"github.com/foremanhq/foreman/pkg/pagination"
	"github.com/foremanhq/foreman/pkg/routes"
)

type stubSystem struct {
	workflow  *workflows.Workflow
	workOrder string
	err       error
	batch     []workflows.BatchResult
}

func (s *stubSystem) Handler(sequenceLimit int) *workflows.Handler {
	return workflows.NewHandler(s, testLogger(), testPagination(), sequenceLimit)
}

func (s *stubSystem) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters workflows.Filters,
) (*pagination.PageResult[workflows.Workflow], error) {
	if s.err != nil {
		return nil, s.err
	}
	result := pagination.NewPageResult([]workflows.Workflow{*s.workflow}, 1, page.Page, page.PageSize)
	return &result, nil
}

func (s *stubSystem) Find(ctx context.Context, id uuid.UUID) (*workflows.Workflow, error) {
	return s.workflow, s.err
}

func (s *stubSystem) FindByProject(ctx context.Context, projectID uuid.UUID) (*workflows.Workflow, error) {
	return s.workflow, s.err
}

func (s *stubSystem) Sequence(ctx context.Context, projectID uuid.UUID) (*workflows.Workflow, error) {
	return s.workflow, s.err
}

func (s *stubSystem) SequenceBatch(ctx context.Context, projectIDs []uuid.UUID, limit int) []workflows.BatchResult {
	return s.batch
}

func (s *stubSystem) WorkOrder(ctx context.Context, id uuid.UUID) (string, error) {
	return s.workOrder, s.err
}

func (s *stubSystem) Delete(ctx context.Context, id uuid.UUID) error {
	return s.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testPagination() pagination.Config {
	return pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}
}

func serveRoutes(sys workflows.System) *http.ServeMux {
	mux := http.NewServeMux()
	routes.Register(mux, sys.Handler(4).Routes())
	return mux
}

func sampleWorkflow() *workflows.Workflow {
	return &workflows.Workflow{
		ID:            uuid.New(),
		ProjectID:     uuid.New(),
		ProjectName:   "Kitchen Remodel",
		TotalDuration: 5.5,
		CriticalPath:  []int{1, 4, 5},
	}
}

func TestHandlerFind(t *testing.T) {
	wf := sampleWorkflow()
	mux := serveRoutes(&stubSystem{workflow: wf})

	req := httptest.NewRequest("GET", "/workflows/"+wf.ID.String(), nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got workflows.Workflow
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got.ID != wf.ID {
		t.Errorf("ID = %s, want %s", got.ID, wf.ID)
	}
}

func TestHandlerFindInvalidID(t *testing.T) {
	mux := serveRoutes(&stubSystem{workflow: sampleWorkflow()})

	req := httptest.NewRequest("GET", "/workflows/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandlerFindNotFound(t *testing.T) {
	mux := serveRoutes(&stubSystem{err: workflows.ErrNotFound})

	req := httptest.NewRequest("GET", "/workflows/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandlerSequence(t *testing.T) {
	wf := sampleWorkflow()
	mux := serveRoutes(&stubSystem{workflow: wf})

	req := httptest.NewRequest("POST", "/workflows/project/"+wf.ProjectID.String(), nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
}

func TestHandlerSequenceNoLineItems(t *testing.T) {
	mux := serveRoutes(&stubSystem{err: workflows.ErrNoLineItems})

	req := httptest.NewRequest("POST", "/workflows/project/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandlerSequenceBatch(t *testing.T) {
	id := uuid.New()
	mux := serveRoutes(&stubSystem{
		batch: []workflows.BatchResult{{ProjectID: id, Error: "project has no line items to sequence"}},
	})

	body, _ := json.Marshal(workflows.BatchRequest{ProjectIDs: []uuid.UUID{id}})
	req := httptest.NewRequest("POST", "/workflows/batch", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var results []workflows.BatchResult
	if err := json.NewDecoder(rec.Body).Decode(&results); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(results) != 1 || results[0].ProjectID != id {
		t.Errorf("results = %+v", results)
	}
}

func TestHandlerSequenceBatchEmpty(t *testing.T) {
	mux := serveRoutes(&stubSystem{})

	req := httptest.NewRequest("POST", "/workflows/batch", strings.NewReader(`{"project_ids":[]}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandlerWorkOrder(t *testing.T) {
	mux := serveRoutes(&stubSystem{workOrder: "WORK ORDER WO-1\nProject: Kitchen Remodel\n"})

	req := httptest.NewRequest("GET", "/workflows/"+uuid.NewString()+"/workorder", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("content-type = %q, want text/plain", ct)
	}
	if !strings.Contains(rec.Body.String(), "WORK ORDER WO-1") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestHandlerPlan(t *testing.T) {
	mux := serveRoutes(&stubSystem{})

	body := `{"projectDescription": "full kitchen renovation"}`
	req := httptest.NewRequest("POST", "/workflows/plan", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var plan workflows.PlanResponse
	if err := json.NewDecoder(rec.Body).Decode(&plan); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !plan.Success {
		t.Error("Success = false, want true")
	}
	if plan.Data == nil || plan.Data.Project != "Kitchen Renovation" {
		t.Errorf("Data = %+v", plan.Data)
	}
}

func TestHandlerPlanInvalid(t *testing.T) {
	mux := serveRoutes(&stubSystem{})

	req := httptest.NewRequest("POST", "/workflows/plan", strings.NewReader(`{"projectDescription": ""}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var plan workflows.PlanResponse
	if err := json.NewDecoder(rec.Body).Decode(&plan); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if plan.Success {
		t.Error("Success = true, want false")
	}
	if plan.Error == "" {
		t.Error("Error is empty")
	}
	if plan.RequestID == "" {
		t.Error("RequestID is empty")
	}
}

func TestHandlerDelete(t *testing.T) {
	mux := serveRoutes(&stubSystem{})

	req := httptest.NewRequest("DELETE", "/workflows/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
}
