package api

import (
	"net/http"

	"github.com/foremanhq/foreman/internal/config"
	"github.com/foremanhq/foreman/pkg/openapi"
)

func buildSpec(cfg *config.Config) *openapi.Spec {
	spec := openapi.NewSpec("Foreman API", cfg.Version)
	spec.SetDescription("Construction task sequencing service: projects, sequenced workflows, work orders, and attachments.")
	spec.AddServer(cfg.API.BasePath)

	spec.Components.AddSchemas(map[string]*openapi.Schema{
		"Project": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"name":        {Type: "string"},
				"description": {Type: "string"},
				"trade":       {Type: "string"},
				"status":      {Type: "string", Enum: []any{"draft", "sequenced"}},
				"line_items": {
					Type: "array",
					Items: &openapi.Schema{
						Type: "object",
						Properties: map[string]*openapi.Schema{
							"description": {Type: "string"},
							"quantity":    {Type: "number"},
							"rate":        {Type: "number"},
						},
						Required: []string{"description"},
					},
				},
				"created_at": {Type: "string", Format: "date-time"},
				"updated_at": {Type: "string", Format: "date-time"},
			},
		},
		"Workflow": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":             {Type: "string", Format: "uuid"},
				"project_id":     {Type: "string", Format: "uuid"},
				"project_name":   {Type: "string"},
				"total_duration": {Type: "number", Description: "Sum of phase durations in days"},
				"critical_path":  {Type: "array", Items: &openapi.Schema{Type: "integer"}},
				"phases":         {Type: "array", Items: &openapi.Schema{Type: "object"}},
				"notifications":  {Type: "array", Items: &openapi.Schema{Type: "object"}},
				"work_order_key": {Type: "string"},
				"sequenced_at":   {Type: "string", Format: "date-time"},
				"updated_at":     {Type: "string", Format: "date-time"},
			},
		},
		"Attachment": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":           {Type: "string", Format: "uuid"},
				"project_id":   {Type: "string", Format: "uuid"},
				"filename":     {Type: "string"},
				"content_type": {Type: "string"},
				"size_bytes":   {Type: "integer"},
				"page_count":   {Type: "integer"},
				"category":     {Type: "string", Enum: []any{"plan", "permit", "receipt", "photo", "other"}},
				"storage_key":  {Type: "string"},
				"uploaded_at":  {Type: "string", Format: "date-time"},
				"updated_at":   {Type: "string", Format: "date-time"},
			},
		},
		"PlanRequest": {
			Type:     "object",
			Required: []string{"projectDescription"},
			Properties: map[string]*openapi.Schema{
				"projectDescription": {Type: "string", Example: "full kitchen renovation with new cabinets"},
				"squareFootage":      {Type: "number"},
				"projectType":        {Type: "string"},
				"location":           {Type: "string"},
				"includePermits":     {Type: "boolean"},
				"includeInspections": {Type: "boolean"},
			},
		},
		"PlanResponse": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"success":   {Type: "boolean"},
				"data":      {Type: "object"},
				"error":     {Type: "string"},
				"requestId": {Type: "string", Format: "uuid"},
			},
		},
		"BatchRequest": {
			Type:     "object",
			Required: []string{"project_ids"},
			Properties: map[string]*openapi.Schema{
				"project_ids": {Type: "array", Items: &openapi.Schema{Type: "string", Format: "uuid"}},
			},
		},
	})

	addProjectPaths(spec)
	addWorkflowPaths(spec)
	addAttachmentPaths(spec)

	return spec
}

func addProjectPaths(spec *openapi.Spec) {
	spec.Paths["/projects"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List projects",
			Tags:    []string{"projects"},
			Parameters: []*openapi.Parameter{
				openapi.QueryParam("page", "integer", "Page number", false),
				openapi.QueryParam("page_size", "integer", "Results per page", false),
				openapi.QueryParam("search", "string", "Search name and description", false),
				openapi.QueryParam("status", "string", "Filter by status", false),
				openapi.QueryParam("trade", "string", "Filter by trade", false),
			},
			Responses: map[int]*openapi.Response{
				http.StatusOK: openapi.ResponseJSON("Paginated projects", "Project"),
			},
		},
		Post: &openapi.Operation{
			Summary:     "Create project",
			Tags:        []string{"projects"},
			RequestBody: openapi.RequestBodyJSON("Project", true),
			Responses: map[int]*openapi.Response{
				http.StatusCreated:    openapi.ResponseJSON("Created project", "Project"),
				http.StatusBadRequest: openapi.ResponseRef("BadRequest"),
			},
		},
	}

	spec.Paths["/projects/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Find project",
			Tags:       []string{"projects"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Project id")},
			Responses: map[int]*openapi.Response{
				http.StatusOK:       openapi.ResponseJSON("Project", "Project"),
				http.StatusNotFound: openapi.ResponseRef("NotFound"),
			},
		},
		Put: &openapi.Operation{
			Summary:     "Update project",
			Tags:        []string{"projects"},
			Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Project id")},
			RequestBody: openapi.RequestBodyJSON("Project", true),
			Responses: map[int]*openapi.Response{
				http.StatusOK:       openapi.ResponseJSON("Updated project", "Project"),
				http.StatusNotFound: openapi.ResponseRef("NotFound"),
			},
		},
		Delete: &openapi.Operation{
			Summary:    "Delete project",
			Tags:       []string{"projects"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Project id")},
			Responses: map[int]*openapi.Response{
				http.StatusNoContent: {Description: "Deleted"},
				http.StatusNotFound:  openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/projects/search"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Search projects",
			Tags:        []string{"projects"},
			RequestBody: openapi.RequestBodyJSON("PageRequest", true),
			Responses: map[int]*openapi.Response{
				http.StatusOK: openapi.ResponseJSON("Paginated projects", "Project"),
			},
		},
	}
}

func addWorkflowPaths(spec *openapi.Spec) {
	spec.Paths["/workflows"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List workflows",
			Tags:    []string{"workflows"},
			Parameters: []*openapi.Parameter{
				openapi.QueryParam("page", "integer", "Page number", false),
				openapi.QueryParam("page_size", "integer", "Results per page", false),
				openapi.QueryParam("search", "string", "Search project name", false),
				openapi.QueryParam("project_id", "string", "Filter by project", false),
			},
			Responses: map[int]*openapi.Response{
				http.StatusOK: openapi.ResponseJSON("Paginated workflows", "Workflow"),
			},
		},
	}

	spec.Paths["/workflows/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Find workflow",
			Tags:       []string{"workflows"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Workflow id")},
			Responses: map[int]*openapi.Response{
				http.StatusOK:       openapi.ResponseJSON("Workflow", "Workflow"),
				http.StatusNotFound: openapi.ResponseRef("NotFound"),
			},
		},
		Delete: &openapi.Operation{
			Summary:    "Delete workflow",
			Tags:       []string{"workflows"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Workflow id")},
			Responses: map[int]*openapi.Response{
				http.StatusNoContent: {Description: "Deleted"},
				http.StatusNotFound:  openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/workflows/{id}/workorder"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:     "Render work order",
			Description: "Renders the workflow as a plain-text checklist, stores it, and returns the text.",
			Tags:        []string{"workflows"},
			Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Workflow id")},
			Responses: map[int]*openapi.Response{
				http.StatusOK: {
					Description: "Work order text",
					Content: map[string]*openapi.MediaType{
						"text/plain": {Schema: &openapi.Schema{Type: "string"}},
					},
				},
				http.StatusNotFound: openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/workflows/project/{projectId}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Find workflow by project",
			Tags:       []string{"workflows"},
			Parameters: []*openapi.Parameter{openapi.PathParam("projectId", "Project id")},
			Responses: map[int]*openapi.Response{
				http.StatusOK:       openapi.ResponseJSON("Workflow", "Workflow"),
				http.StatusNotFound: openapi.ResponseRef("NotFound"),
			},
		},
		Post: &openapi.Operation{
			Summary:     "Sequence project",
			Description: "Runs the sequencing engine over the project's line items and stores the resulting workflow.",
			Tags:        []string{"workflows"},
			Parameters:  []*openapi.Parameter{openapi.PathParam("projectId", "Project id")},
			Responses: map[int]*openapi.Response{
				http.StatusCreated:    openapi.ResponseJSON("Sequenced workflow", "Workflow"),
				http.StatusBadRequest: openapi.ResponseRef("BadRequest"),
				http.StatusNotFound:   openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/workflows/batch"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Sequence projects in batch",
			Tags:        []string{"workflows"},
			RequestBody: openapi.RequestBodyJSON("BatchRequest", true),
			Responses: map[int]*openapi.Response{
				http.StatusOK: {Description: "Per-project sequencing results"},
			},
		},
	}

	spec.Paths["/workflows/plan"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Quick plan from description",
			Description: "Detects a project archetype from a prose description and returns a sequencing preview without persisting anything.",
			Tags:        []string{"workflows"},
			RequestBody: openapi.RequestBodyJSON("PlanRequest", true),
			Responses: map[int]*openapi.Response{
				http.StatusOK:         openapi.ResponseJSON("Plan preview", "PlanResponse"),
				http.StatusBadRequest: openapi.ResponseJSON("Invalid plan request", "PlanResponse"),
			},
		},
	}

	spec.Paths["/workflows/search"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Search workflows",
			Tags:        []string{"workflows"},
			RequestBody: openapi.RequestBodyJSON("PageRequest", true),
			Responses: map[int]*openapi.Response{
				http.StatusOK: openapi.ResponseJSON("Paginated workflows", "Workflow"),
			},
		},
	}
}

func addAttachmentPaths(spec *openapi.Spec) {
	spec.Paths["/attachments"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List attachments",
			Tags:    []string{"attachments"},
			Parameters: []*openapi.Parameter{
				openapi.QueryParam("page", "integer", "Page number", false),
				openapi.QueryParam("page_size", "integer", "Results per page", false),
				openapi.QueryParam("project_id", "string", "Filter by project", false),
				openapi.QueryParam("category", "string", "Filter by category", false),
			},
			Responses: map[int]*openapi.Response{
				http.StatusOK: openapi.ResponseJSON("Paginated attachments", "Attachment"),
			},
		},
		Post: &openapi.Operation{
			Summary:     "Upload attachment",
			Description: "Multipart form upload with file, project_id, and optional category fields.",
			Tags:        []string{"attachments"},
			Responses: map[int]*openapi.Response{
				http.StatusCreated:    openapi.ResponseJSON("Created attachment", "Attachment"),
				http.StatusBadRequest: openapi.ResponseRef("BadRequest"),
			},
		},
	}

	spec.Paths["/attachments/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Find attachment",
			Tags:       []string{"attachments"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Attachment id")},
			Responses: map[int]*openapi.Response{
				http.StatusOK:       openapi.ResponseJSON("Attachment", "Attachment"),
				http.StatusNotFound: openapi.ResponseRef("NotFound"),
			},
		},
		Delete: &openapi.Operation{
			Summary:    "Delete attachment",
			Tags:       []string{"attachments"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Attachment id")},
			Responses: map[int]*openapi.Response{
				http.StatusNoContent: {Description: "Deleted"},
				http.StatusNotFound:  openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/attachments/{id}/download"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Download attachment",
			Tags:       []string{"attachments"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Attachment id")},
			Responses: map[int]*openapi.Response{
				http.StatusOK:       {Description: "File content"},
				http.StatusNotFound: openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/attachments/search"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Search attachments",
			Tags:        []string{"attachments"},
			RequestBody: openapi.RequestBodyJSON("PageRequest", true),
			Responses: map[int]*openapi.Response{
				http.StatusOK: openapi.ResponseJSON("Paginated attachments", "Attachment"),
			},
		},
	}
}
