package sequencing_test

import (
	"slices"
	"testing"

	"github.com/foremanhq/foreman/sequencing"
)

func classifyAll(descriptions ...string) []sequencing.ConstructionTask {
	tasks := make([]sequencing.ConstructionTask, 0, len(descriptions))
	for _, d := range descriptions {
		tasks = append(tasks, sequencing.Classify(d))
	}
	return tasks
}

func TestBuildPhasesSortedAndGrouped(t *testing.T) {
	phases := sequencing.BuildPhases(classifyAll(
		"Demolition of existing kitchen cabinets",
		"Install new kitchen cabinets",
		"Paint kitchen walls",
	))

	if len(phases) != 3 {
		t.Fatalf("phase count = %d, want 3", len(phases))
	}

	numbers := []int{phases[0].Number, phases[1].Number, phases[2].Number}
	if !slices.Equal(numbers, []int{1, 4, 5}) {
		t.Errorf("phase numbers = %v, want [1 4 5]", numbers)
	}

	total := 0
	for _, phase := range phases {
		total += len(phase.Tasks)
	}
	if total != 3 {
		t.Errorf("total task count across phases = %d, want 3", total)
	}
}

func TestBuildPhasesDependencyChain(t *testing.T) {
	phases := sequencing.BuildPhases(classifyAll(
		"Demolition of existing kitchen cabinets",
		"Install new kitchen cabinets",
		"Paint kitchen walls",
	))

	if len(phases[0].Dependencies) != 0 {
		t.Errorf("first phase dependencies = %v, want []", phases[0].Dependencies)
	}
	if !slices.Equal(phases[1].Dependencies, []int{1}) {
		t.Errorf("phase 4 dependencies = %v, want [1]", phases[1].Dependencies)
	}
	if !slices.Equal(phases[2].Dependencies, []int{4}) {
		t.Errorf("phase 5 dependencies = %v, want [4]", phases[2].Dependencies)
	}
}

func TestBuildPhasesDurationAndSequence(t *testing.T) {
	// Both tasks land in phase 2; duration is the max (2 for framing) plus
	// the 0.5 buffer, and sequence numbers follow input order.
	phases := sequencing.BuildPhases(classifyAll(
		"Electrical rough-in for new outlets",
		"Framing repairs to stud walls",
	))

	if len(phases) != 1 {
		t.Fatalf("phase count = %d, want 1", len(phases))
	}

	phase := phases[0]
	if phase.EstimatedDuration != 2.5 {
		t.Errorf("EstimatedDuration = %v, want 2.5", phase.EstimatedDuration)
	}
	if phase.Tasks[0].Sequence != 1 || phase.Tasks[1].Sequence != 2 {
		t.Errorf("sequences = %d, %d, want 1, 2", phase.Tasks[0].Sequence, phase.Tasks[1].Sequence)
	}
}

func TestBuildPhasesInspections(t *testing.T) {
	phases := sequencing.BuildPhases(classifyAll(
		"Electrical rough-in for new outlets",
		"Rewire circuit for dishwasher",
		"Plumbing rough-in for sink",
	))

	if len(phases) != 1 {
		t.Fatalf("phase count = %d, want 1", len(phases))
	}

	want := []string{"Electrical inspection", "Plumbing inspection"}
	if !slices.Equal(phases[0].InspectionsRequired, want) {
		t.Errorf("InspectionsRequired = %v, want %v (one per distinct trade)", phases[0].InspectionsRequired, want)
	}
}

func TestBuildPhasesMaterials(t *testing.T) {
	phases := sequencing.BuildPhases(classifyAll(
		"Frame wall with 2x4 studs",
		"Pull 12 gauge romex to panel",
	))

	if len(phases) != 1 {
		t.Fatalf("phase count = %d, want 1", len(phases))
	}

	want := []string{"2x4", "12 gauge", "romex"}
	if !slices.Equal(phases[0].Materials, want) {
		t.Errorf("Materials = %v, want %v", phases[0].Materials, want)
	}
}

func TestBuildPhasesEmptyInput(t *testing.T) {
	phases := sequencing.BuildPhases(nil)
	if len(phases) != 0 {
		t.Errorf("phase count = %d, want 0", len(phases))
	}
}
