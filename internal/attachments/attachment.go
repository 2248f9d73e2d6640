// Package attachments implements project file attachments: plans, permits,
// receipts, and photos uploaded against a project and held in blob storage.
package attachments

import (
	"time"

	"github.com/google/uuid"
)

// Attachment categories.
const (
	CategoryPlan    = "plan"
	CategoryPermit  = "permit"
	CategoryReceipt = "receipt"
	CategoryPhoto   = "photo"
	CategoryOther   = "other"
)

// Attachment represents a file uploaded against a project.
type Attachment struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   uuid.UUID `json:"project_id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	PageCount   *int      `json:"page_count,omitempty"`
	Category    string    `json:"category"`
	StorageKey  string    `json:"storage_key"`
	UploadedAt  time.Time `json:"uploaded_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateCommand carries the data needed to store a new attachment.
type CreateCommand struct {
	ProjectID   uuid.UUID
	Data        []byte
	Filename    string
	ContentType string
	Category    string
	PageCount   *int
}

func validCategory(category string) bool {
	switch category {
	case CategoryPlan, CategoryPermit, CategoryReceipt, CategoryPhoto, CategoryOther:
		return true
	}
	return false
}
