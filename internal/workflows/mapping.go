package workflows

import (
	"encoding/json"
	"net/url"

	"github.com/google/uuid"

	"github.com/foremanhq/foreman/pkg/query"
	"github.com/foremanhq/foreman/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "workflows", "w").
	Project("id", "ID").
	Project("project_id", "ProjectID").
	Project("project_name", "ProjectName").
	Project("total_duration", "TotalDuration").
	Project("critical_path", "CriticalPath").
	Project("phases", "Phases").
	Project("notifications", "Notifications").
	Project("work_order_key", "WorkOrderKey").
	Project("sequenced_at", "SequencedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "SequencedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for workflow queries.
// Nil fields are ignored. ProjectID uses exact matching; ProjectName uses
// case-insensitive contains matching.
type Filters struct {
	ProjectID   *uuid.UUID `json:"project_id,omitempty"`
	ProjectName *string    `json:"project_name,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("ProjectID", f.ProjectID).
		WhereContains("ProjectName", f.ProjectName)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if pid := values.Get("project_id"); pid != "" {
		if id, err := uuid.Parse(pid); err == nil {
			f.ProjectID = &id
		}
	}

	if pn := values.Get("project_name"); pn != "" {
		f.ProjectName = &pn
	}

	return f
}

func scanWorkflow(s repository.Scanner) (Workflow, error) {
	var (
		w             Workflow
		criticalPath  []byte
		phases        []byte
		notifications []byte
	)

	err := s.Scan(
		&w.ID,
		&w.ProjectID,
		&w.ProjectName,
		&w.TotalDuration,
		&criticalPath,
		&phases,
		&notifications,
		&w.WorkOrderKey,
		&w.SequencedAt,
		&w.UpdatedAt,
	)
	if err != nil {
		return w, err
	}

	if err := json.Unmarshal(criticalPath, &w.CriticalPath); err != nil {
		return w, err
	}
	if err := json.Unmarshal(phases, &w.Phases); err != nil {
		return w, err
	}
	if err := json.Unmarshal(notifications, &w.Notifications); err != nil {
		return w, err
	}

	return w, nil
}
