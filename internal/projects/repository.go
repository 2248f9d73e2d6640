package projects

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/foremanhq/foreman/pkg/pagination"
	"github.com/foremanhq/foreman/pkg/query"
	"github.com/foremanhq/foreman/pkg/repository"
	"github.com/foremanhq/foreman/sequencing"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a project repository implementing the System interface.
func New(
	db *sql.DB,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "projects"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Project], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name", "Description")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count projects: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	prjs, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanProject)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}

	result := pagination.NewPageResult(prjs, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Project, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	p, err := repository.QueryOne(ctx, r.db, q, args, scanProject)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &p, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Project, error) {
	if err := validateCommand(cmd.Name, cmd.LineItems); err != nil {
		return nil, err
	}

	items, err := marshalLineItems(cmd.LineItems)
	if err != nil {
		return nil, fmt.Errorf("encode line items: %w", err)
	}

	q := `
		INSERT INTO projects(id, name, description, trade, status, line_items)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, description, trade, status, line_items, created_at, updated_at`

	insertArgs := []any{
		uuid.New(),
		strings.TrimSpace(cmd.Name),
		cmd.Description,
		cmd.Trade,
		StatusDraft,
		items,
	}

	p, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Project, error) {
		return repository.QueryOne(ctx, tx, q, insertArgs, scanProject)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("project created", "id", p.ID, "name", p.Name)
	return &p, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Project, error) {
	if err := validateCommand(cmd.Name, cmd.LineItems); err != nil {
		return nil, err
	}

	items, err := marshalLineItems(cmd.LineItems)
	if err != nil {
		return nil, fmt.Errorf("encode line items: %w", err)
	}

	// Any edit invalidates a previously generated workflow, so the project
	// drops back to draft until it is sequenced again.
	q := `
		UPDATE projects
		SET name = $2, description = $3, trade = $4, line_items = $5,
			status = $6, updated_at = now()
		WHERE id = $1
		RETURNING id, name, description, trade, status, line_items, created_at, updated_at`

	updateArgs := []any{
		id,
		strings.TrimSpace(cmd.Name),
		cmd.Description,
		cmd.Trade,
		items,
		StatusDraft,
	}

	p, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Project, error) {
		return repository.QueryOne(ctx, tx, q, updateArgs, scanProject)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("project updated", "id", p.ID)
	return &p, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM projects WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("project deleted", "id", id)
	return nil
}

func validateCommand(name string, items []sequencing.LineItem) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProject)
	}
	for i, item := range items {
		if strings.TrimSpace(item.Description) == "" {
			return fmt.Errorf("%w: line item %d has no description", ErrInvalidProject, i)
		}
	}
	return nil
}

func marshalLineItems(items []sequencing.LineItem) ([]byte, error) {
	if items == nil {
		items = []sequencing.LineItem{}
	}
	return json.Marshal(items)
}
