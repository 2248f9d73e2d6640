package workflows

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/foremanhq/foreman/internal/projects"
	"github.com/foremanhq/foreman/pkg/pagination"
	"github.com/foremanhq/foreman/pkg/query"
	"github.com/foremanhq/foreman/pkg/repository"
	"github.com/foremanhq/foreman/pkg/storage"
	"github.com/foremanhq/foreman/sequencing"
)

type repo struct {
	db         *sql.DB
	storage    storage.System
	projects   projects.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a workflow repository implementing the System interface.
func New(
	db *sql.DB,
	store storage.System,
	projectSys projects.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		storage:    store,
		projects:   projectSys,
		logger:     logger.With("system", "workflows"),
		pagination: pagination,
	}
}

func (r *repo) Handler(sequenceLimit int) *Handler {
	return NewHandler(r, r.logger, r.pagination, sequenceLimit)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Workflow], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "ProjectName")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count workflows: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	wfs, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanWorkflow)
	if err != nil {
		return nil, fmt.Errorf("query workflows: %w", err)
	}

	result := pagination.NewPageResult(wfs, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Workflow, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	w, err := repository.QueryOne(ctx, r.db, q, args, scanWorkflow)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &w, nil
}

func (r *repo) FindByProject(ctx context.Context, projectID uuid.UUID) (*Workflow, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ProjectID", projectID)

	w, err := repository.QueryOne(ctx, r.db, q, args, scanWorkflow)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &w, nil
}

// Sequence runs the sequencing engine over the project's line items and
// stores the result. Re-sequencing replaces the existing workflow and clears
// any stale work order; the project is marked sequenced in the same
// transaction.
func (r *repo) Sequence(ctx context.Context, projectID uuid.UUID) (*Workflow, error) {
	p, err := r.projects.Find(ctx, projectID)
	if err != nil {
		if errors.Is(err, projects.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, projectID)
		}
		return nil, fmt.Errorf("find project: %w", err)
	}

	if len(p.LineItems) == 0 {
		return nil, ErrNoLineItems
	}

	result := sequencing.Sequence(p.Name, p.LineItems)

	criticalPath, err := json.Marshal(result.CriticalPath)
	if err != nil {
		return nil, fmt.Errorf("encode critical path: %w", err)
	}
	phases, err := json.Marshal(result.Phases)
	if err != nil {
		return nil, fmt.Errorf("encode phases: %w", err)
	}
	notifications, err := json.Marshal(result.Notifications)
	if err != nil {
		return nil, fmt.Errorf("encode notifications: %w", err)
	}

	q := `
		INSERT INTO workflows(id, project_id, project_name, total_duration, critical_path, phases, notifications)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (project_id) DO UPDATE
		SET project_name = EXCLUDED.project_name,
			total_duration = EXCLUDED.total_duration,
			critical_path = EXCLUDED.critical_path,
			phases = EXCLUDED.phases,
			notifications = EXCLUDED.notifications,
			work_order_key = NULL,
			sequenced_at = now(),
			updated_at = now()
		RETURNING id, project_id, project_name, total_duration, critical_path, phases, notifications, work_order_key, sequenced_at, updated_at`

	insertArgs := []any{
		uuid.New(),
		p.ID,
		p.Name,
		result.TotalDuration,
		criticalPath,
		phases,
		notifications,
	}

	w, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Workflow, error) {
		w, err := repository.QueryOne(ctx, tx, q, insertArgs, scanWorkflow)
		if err != nil {
			return w, err
		}

		if err := repository.ExecExpectOne(
			ctx, tx,
			"UPDATE projects SET status = $2, updated_at = now() WHERE id = $1",
			p.ID, projects.StatusSequenced,
		); err != nil {
			return w, err
		}

		return w, nil
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info(
		"project sequenced",
		"workflow_id", w.ID,
		"project_id", p.ID,
		"phases", len(w.Phases),
		"total_duration", w.TotalDuration,
	)
	return &w, nil
}

// SequenceBatch sequences the given projects with at most limit running
// concurrently. Failures are reported per project; one bad project does not
// abort the batch.
func (r *repo) SequenceBatch(ctx context.Context, projectIDs []uuid.UUID, limit int) []BatchResult {
	if limit < 1 {
		limit = 1
	}

	results := make([]BatchResult, len(projectIDs))

	var g errgroup.Group
	g.SetLimit(limit)

	for i, id := range projectIDs {
		g.Go(func() error {
			res := BatchResult{ProjectID: id}

			w, err := r.Sequence(ctx, id)
			if err != nil {
				res.Error = err.Error()
			} else {
				res.Workflow = w
			}

			results[i] = res
			return nil
		})
	}

	g.Wait()
	return results
}

// WorkOrder renders the workflow as a plain-text checklist, uploads it to
// blob storage, records the storage key, and returns the rendered text.
func (r *repo) WorkOrder(ctx context.Context, id uuid.UUID) (string, error) {
	w, err := r.Find(ctx, id)
	if err != nil {
		return "", err
	}

	number := workOrderNumber(w.ID)
	text := sequencing.RenderWorkOrder(toSequenced(w), number)

	key := fmt.Sprintf("workorders/%s/%s.txt", w.ID, strings.ToLower(number))
	if err := r.storage.Upload(ctx, key, strings.NewReader(text), "text/plain; charset=utf-8"); err != nil {
		return "", fmt.Errorf("upload work order: %w", err)
	}

	_, err = repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"UPDATE workflows SET work_order_key = $2, updated_at = now() WHERE id = $1",
			w.ID, key,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		if delErr := r.storage.Delete(ctx, key); delErr != nil {
			r.logger.Warn("compensating blob delete failed", "key", key, "error", delErr)
		}
		return "", repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("work order rendered", "workflow_id", w.ID, "key", key)
	return text, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	w, err := r.Find(ctx, id)
	if err != nil {
		return err
	}

	_, err = repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM workflows WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if w.WorkOrderKey != nil {
		if delErr := r.storage.Delete(ctx, *w.WorkOrderKey); delErr != nil {
			r.logger.Warn(
				"blob delete failed after DB delete",
				"key", *w.WorkOrderKey,
				"error", delErr,
			)
		}
	}

	r.logger.Info("workflow deleted", "id", id)
	return nil
}

func toSequenced(w *Workflow) sequencing.SequencedWorkflow {
	return sequencing.SequencedWorkflow{
		ProjectName:   w.ProjectName,
		Phases:        w.Phases,
		TotalDuration: w.TotalDuration,
		CriticalPath:  w.CriticalPath,
		Notifications: w.Notifications,
	}
}

func workOrderNumber(id uuid.UUID) string {
	return "WO-" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
}
