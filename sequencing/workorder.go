package sequencing

import (
	"fmt"
	"strings"

	"github.com/foremanhq/foreman/pkg/formatting"
)

// RenderWorkOrder converts a sequenced workflow into a plain-text checklist:
// a header with the project name and total duration, then per phase a
// calendar day range, a checkbox per task, a materials summary line when
// non-empty, and a checkbox per required inspection. Day ranges accumulate
// fractional phase durations (start = 1 + prior durations, end = start +
// duration - 1) and are ceiling-rounded for display.
func RenderWorkOrder(workflow SequencedWorkflow, workOrderNumber string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "WORK ORDER %s\n", workOrderNumber)
	fmt.Fprintf(&b, "Project: %s\n", workflow.ProjectName)
	fmt.Fprintf(&b, "Estimated Duration: %s\n\n", formatting.FormatDays(workflow.TotalDuration))

	start := 1.0
	for _, phase := range workflow.Phases {
		end := start + phase.EstimatedDuration - 1

		fmt.Fprintf(&b, "Phase %d: %s (%s)\n", phase.Number, phase.Label, formatting.DayRange(start, end))

		for _, task := range phase.Tasks {
			fmt.Fprintf(&b, "  [ ] %s\n", task.Description)
		}

		if len(phase.Materials) > 0 {
			fmt.Fprintf(&b, "  Materials: %s\n", strings.Join(phase.Materials, ", "))
		}

		for _, inspection := range phase.InspectionsRequired {
			fmt.Fprintf(&b, "  [ ] %s\n", inspection)
		}

		b.WriteString("\n")
		start += phase.EstimatedDuration
	}

	return b.String()
}
