package attachments

import (
	"net/url"

	"github.com/google/uuid"

	"github.com/foremanhq/foreman/pkg/query"
	"github.com/foremanhq/foreman/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "attachments", "a").
	Project("id", "ID").
	Project("project_id", "ProjectID").
	Project("filename", "Filename").
	Project("content_type", "ContentType").
	Project("size_bytes", "SizeBytes").
	Project("page_count", "PageCount").
	Project("category", "Category").
	Project("storage_key", "StorageKey").
	Project("uploaded_at", "UploadedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "UploadedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for attachment queries.
// Nil fields are ignored. ProjectID, Category, and ContentType use exact
// matching; Filename uses case-insensitive contains matching.
type Filters struct {
	ProjectID   *uuid.UUID `json:"project_id,omitempty"`
	Filename    *string    `json:"filename,omitempty"`
	Category    *string    `json:"category,omitempty"`
	ContentType *string    `json:"content_type,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("ProjectID", f.ProjectID).
		WhereContains("Filename", f.Filename).
		WhereEquals("Category", f.Category).
		WhereEquals("ContentType", f.ContentType)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if pid := values.Get("project_id"); pid != "" {
		if id, err := uuid.Parse(pid); err == nil {
			f.ProjectID = &id
		}
	}

	if fn := values.Get("filename"); fn != "" {
		f.Filename = &fn
	}

	if c := values.Get("category"); c != "" {
		f.Category = &c
	}

	if ct := values.Get("content_type"); ct != "" {
		f.ContentType = &ct
	}

	return f
}

func scanAttachment(s repository.Scanner) (Attachment, error) {
	var a Attachment
	err := s.Scan(
		&a.ID,
		&a.ProjectID,
		&a.Filename,
		&a.ContentType,
		&a.SizeBytes,
		&a.PageCount,
		&a.Category,
		&a.StorageKey,
		&a.UploadedAt,
		&a.UpdatedAt,
	)
	return a, err
}
