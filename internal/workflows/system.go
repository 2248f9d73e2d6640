package workflows

import (
	"context"

	"github.com/google/uuid"

	"github.com/foremanhq/foreman/pkg/pagination"
)

// System defines the public contract for workflow domain operations.
type System interface {
	Handler(sequenceLimit int) *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Workflow], error)

	Find(ctx context.Context, id uuid.UUID) (*Workflow, error)
	FindByProject(ctx context.Context, projectID uuid.UUID) (*Workflow, error)
	Sequence(ctx context.Context, projectID uuid.UUID) (*Workflow, error)
	SequenceBatch(ctx context.Context, projectIDs []uuid.UUID, limit int) []BatchResult
	WorkOrder(ctx context.Context, id uuid.UUID) (string, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
