// Package workflows implements sequenced workflow generation and persistence.
// A workflow is the stored output of running the sequencing engine over a
// project's line items: its phases, notifications, critical path, and total
// duration, plus an optional rendered work order held in blob storage.
package workflows

import (
	"time"

	"github.com/google/uuid"

	"github.com/foremanhq/foreman/sequencing"
)

// Workflow is a persisted sequencing result for a single project. A project
// has at most one workflow; re-sequencing replaces it in place.
type Workflow struct {
	ID            uuid.UUID                         `json:"id"`
	ProjectID     uuid.UUID                         `json:"project_id"`
	ProjectName   string                            `json:"project_name"`
	TotalDuration float64                           `json:"total_duration"`
	CriticalPath  []int                             `json:"critical_path"`
	Phases        []sequencing.WorkflowPhase        `json:"phases"`
	Notifications []sequencing.WorkflowNotification `json:"notifications"`
	WorkOrderKey  *string                           `json:"work_order_key,omitempty"`
	SequencedAt   time.Time                         `json:"sequenced_at"`
	UpdatedAt     time.Time                         `json:"updated_at"`
}

// BatchResult reports the outcome of sequencing a single project within a
// batch request. Exactly one of Workflow and Error is set.
type BatchResult struct {
	ProjectID uuid.UUID `json:"project_id"`
	Workflow  *Workflow `json:"workflow,omitempty"`
	Error     string    `json:"error,omitempty"`
}
