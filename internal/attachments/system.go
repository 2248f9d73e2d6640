package attachments

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/foremanhq/foreman/pkg/pagination"
)

// System defines the public contract for attachment domain operations.
type System interface {
	Handler(maxUploadSize int64) *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Attachment], error)

	Find(ctx context.Context, id uuid.UUID) (*Attachment, error)
	Create(ctx context.Context, cmd CreateCommand) (*Attachment, error)
	Download(ctx context.Context, id uuid.UUID) (*Attachment, io.ReadCloser, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
