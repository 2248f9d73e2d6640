package api

import (
	"github.com/foremanhq/foreman/internal/attachments"
	"github.com/foremanhq/foreman/internal/projects"
	"github.com/foremanhq/foreman/internal/workflows"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Projects    projects.System
	Workflows   workflows.System
	Attachments attachments.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	projectsSystem := projects.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	workflowsSystem := workflows.New(
		runtime.Database.Connection(),
		runtime.Storage,
		projectsSystem,
		runtime.Logger,
		runtime.Pagination,
	)

	attachmentsSystem := attachments.New(
		runtime.Database.Connection(),
		runtime.Storage,
		projectsSystem,
		runtime.Logger,
		runtime.Pagination,
	)

	return &Domain{
		Projects:    projectsSystem,
		Workflows:   workflowsSystem,
		Attachments: attachmentsSystem,
	}
}
