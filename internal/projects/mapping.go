package projects

import (
	"encoding/json"
	"net/url"

	"github.com/foremanhq/foreman/pkg/query"
	"github.com/foremanhq/foreman/pkg/repository"
	"github.com/foremanhq/foreman/sequencing"
)

var projection = query.
	NewProjectionMap("public", "projects", "p").
	Project("id", "ID").
	Project("name", "Name").
	Project("description", "Description").
	Project("trade", "Trade").
	Project("status", "Status").
	Project("line_items", "LineItems").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for project queries.
// Nil fields are ignored. Trade and Status use exact matching; Name uses
// case-insensitive contains matching.
type Filters struct {
	Name   *string `json:"name,omitempty"`
	Trade  *string `json:"trade,omitempty"`
	Status *string `json:"status,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereContains("Name", f.Name).
		WhereEquals("Trade", f.Trade).
		WhereEquals("Status", f.Status)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if n := values.Get("name"); n != "" {
		f.Name = &n
	}

	if t := values.Get("trade"); t != "" {
		f.Trade = &t
	}

	if s := values.Get("status"); s != "" {
		f.Status = &s
	}

	return f
}

func scanProject(s repository.Scanner) (Project, error) {
	var (
		p     Project
		items []byte
	)

	err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Trade,
		&p.Status,
		&items,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return p, err
	}

	if len(items) > 0 {
		if err := json.Unmarshal(items, &p.LineItems); err != nil {
			return p, err
		}
	}
	if p.LineItems == nil {
		p.LineItems = []sequencing.LineItem{}
	}

	return p, nil
}
