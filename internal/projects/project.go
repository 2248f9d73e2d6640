// Package projects implements the project domain for Foreman. It provides
// types, data access, and business logic for contractor projects and their
// estimate line items, the raw input to the sequencing engine.
package projects

import (
	"time"

	"github.com/google/uuid"

	"github.com/foremanhq/foreman/sequencing"
)

// Project statuses. A project starts as a draft and becomes sequenced once
// a workflow has been generated and stored for it.
const (
	StatusDraft     = "draft"
	StatusSequenced = "sequenced"
)

// Project represents a contractor project with its ordered estimate line
// items.
type Project struct {
	ID          uuid.UUID             `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Trade       string                `json:"trade"`
	Status      string                `json:"status"`
	LineItems   []sequencing.LineItem `json:"line_items"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// CreateCommand carries the data needed to register a new project.
type CreateCommand struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Trade       string                `json:"trade"`
	LineItems   []sequencing.LineItem `json:"line_items"`
}

// UpdateCommand carries the data for a full project update. Updating line
// items resets the project to draft; any stored workflow is stale until the
// project is re-sequenced.
type UpdateCommand struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Trade       string                `json:"trade"`
	LineItems   []sequencing.LineItem `json:"line_items"`
}
