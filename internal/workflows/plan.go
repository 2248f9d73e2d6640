package workflows

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/foremanhq/foreman/sequencing"
)

// PlanRequest is the public quick-plan request: a prose project description
// with optional hints. It produces a sequencing preview without persisting
// anything.
type PlanRequest struct {
	ProjectDescription string   `json:"projectDescription"`
	SquareFootage      *float64 `json:"squareFootage,omitempty"`
	ProjectType        string   `json:"projectType,omitempty"`
	Location           string   `json:"location,omitempty"`
	IncludePermits     bool     `json:"includePermits,omitempty"`
	IncludeInspections bool     `json:"includeInspections,omitempty"`
}

// PlanData is the payload of a successful plan response.
type PlanData struct {
	Project       string                        `json:"project"`
	Tasks         []sequencing.ConstructionTask `json:"tasks"`
	CriticalPath  []int                         `json:"criticalPath"`
	TotalDuration float64                       `json:"totalDuration"`
	Inspections   []string                      `json:"inspections,omitempty"`
	Permits       []string                      `json:"permits,omitempty"`
}

// PlanResponse is the quick-plan envelope. Exactly one of Data and Error is
// set; RequestID is always present for log correlation.
type PlanResponse struct {
	Success   bool      `json:"success"`
	Data      *PlanData `json:"data,omitempty"`
	Error     string    `json:"error,omitempty"`
	RequestID string    `json:"requestId"`
}

// BuildPlan resolves a project archetype from the description, sequences its
// typical tasks, and assembles the preview payload. When no archetype
// matches, the description itself is sequenced as a single line item.
func BuildPlan(req PlanRequest) (*PlanResponse, error) {
	description := strings.TrimSpace(req.ProjectDescription)
	if description == "" {
		return nil, fmt.Errorf("%w: projectDescription is required", ErrInvalidPlan)
	}

	text := description
	if req.ProjectType != "" {
		text += " " + req.ProjectType
	}

	projectName := "Custom Project"
	items := []sequencing.LineItem{{Description: description}}

	if match := sequencing.DetectProjectType(text, ""); match != nil {
		projectName = match.Archetype.Name
		items = make([]sequencing.LineItem, 0, len(match.Archetype.TypicalTasks))
		for _, task := range match.Archetype.TypicalTasks {
			items = append(items, sequencing.LineItem{Description: task})
		}
	}

	workflow := sequencing.Sequence(projectName, items)

	var tasks []sequencing.ConstructionTask
	for _, phase := range workflow.Phases {
		tasks = append(tasks, phase.Tasks...)
	}

	data := &PlanData{
		Project:       projectName,
		Tasks:         tasks,
		CriticalPath:  workflow.CriticalPath,
		TotalDuration: workflow.TotalDuration,
	}

	if req.IncludeInspections {
		data.Inspections = collectInspections(workflow.Phases)
	}
	if req.IncludePermits {
		data.Permits = collectPermits(workflow.Phases)
	}

	return &PlanResponse{
		Success:   true,
		Data:      data,
		RequestID: uuid.NewString(),
	}, nil
}

func collectInspections(phases []sequencing.WorkflowPhase) []string {
	var (
		out  []string
		seen = map[string]bool{}
	)
	for _, phase := range phases {
		for _, inspection := range phase.InspectionsRequired {
			if !seen[inspection] {
				seen[inspection] = true
				out = append(out, inspection)
			}
		}
	}
	return out
}

// collectPermits derives one permit per distinct trade whose work requires
// an inspection. Inspection-regulated work is the permit-pulling work in
// this model.
func collectPermits(phases []sequencing.WorkflowPhase) []string {
	var (
		out  []string
		seen = map[string]bool{}
	)
	for _, phase := range phases {
		for _, task := range phase.Tasks {
			if !task.InspectionRequired || seen[task.Trade] {
				continue
			}
			seen[task.Trade] = true
			out = append(out, fmt.Sprintf("%s permit", task.Trade))
		}
	}
	return out
}
