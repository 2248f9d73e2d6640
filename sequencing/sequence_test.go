package sequencing_test

import (
	"math"
	"slices"
	"testing"

	"github.com/foremanhq/foreman/sequencing"
)

func lineItems(descriptions ...string) []sequencing.LineItem {
	items := make([]sequencing.LineItem, 0, len(descriptions))
	for _, d := range descriptions {
		items = append(items, sequencing.LineItem{Description: d})
	}
	return items
}

func TestSequenceKitchenExample(t *testing.T) {
	workflow := sequencing.Sequence("Kitchen Remodel", lineItems(
		"Demolition of existing kitchen cabinets",
		"Install new kitchen cabinets",
		"Paint kitchen walls",
	))

	if workflow.ProjectName != "Kitchen Remodel" {
		t.Errorf("ProjectName = %q", workflow.ProjectName)
	}
	if len(workflow.Phases) != 3 {
		t.Fatalf("phase count = %d, want 3", len(workflow.Phases))
	}
	if !slices.Equal(workflow.CriticalPath, []int{1, 4, 5}) {
		t.Errorf("CriticalPath = %v, want [1 4 5]", workflow.CriticalPath)
	}

	// demo 1+0.5, paint 1.5+0.5, cabinets 1.5+0.5
	if workflow.TotalDuration != 5.5 {
		t.Errorf("TotalDuration = %v, want 5.5", workflow.TotalDuration)
	}
}

func TestSequenceTotalIsSumOfPhaseDurations(t *testing.T) {
	workflow := sequencing.Sequence("Basement", lineItems(
		"Framing of partition walls",
		"Electrical rough-in",
		"Insulation and vapor barrier",
		"Drywall hang and finish",
		"Paint walls and ceiling",
		"Install trim and doors",
		"Final cleanup",
	))

	sum := 0.0
	for _, phase := range workflow.Phases {
		sum += phase.EstimatedDuration
	}
	if math.Abs(workflow.TotalDuration-sum) > 1e-9 {
		t.Errorf("TotalDuration = %v, sum of phases = %v", workflow.TotalDuration, sum)
	}
}

func TestSequenceCriticalPathCoversAllPhases(t *testing.T) {
	workflow := sequencing.Sequence("Bath", lineItems(
		"Demolition of existing bathroom",
		"Plumbing rough-in for shower",
		"Tile shower walls",
	))

	if len(workflow.CriticalPath) != len(workflow.Phases) {
		t.Fatalf("CriticalPath length = %d, phases = %d", len(workflow.CriticalPath), len(workflow.Phases))
	}
	for i, phase := range workflow.Phases {
		if workflow.CriticalPath[i] != phase.Number {
			t.Errorf("CriticalPath[%d] = %d, want %d", i, workflow.CriticalPath[i], phase.Number)
		}
	}
}

func TestSequenceEmptyItems(t *testing.T) {
	workflow := sequencing.Sequence("Empty", nil)

	if len(workflow.Phases) != 0 {
		t.Errorf("phase count = %d, want 0", len(workflow.Phases))
	}
	if workflow.TotalDuration != 0 {
		t.Errorf("TotalDuration = %v, want 0", workflow.TotalDuration)
	}
	if len(workflow.Notifications) != 0 {
		t.Errorf("notification count = %d, want 0", len(workflow.Notifications))
	}
}
