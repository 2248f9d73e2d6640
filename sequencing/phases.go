package sequencing

import (
	"fmt"
	"slices"
	"strings"
)

// phaseBuffer is the fixed scheduling pad added to every phase duration.
const phaseBuffer = 0.5

// BuildPhases groups classified tasks by phase number and derives per-phase
// metadata. Phases are returned ascending by number; tasks keep their
// original relative order within a phase and are assigned 1-based sequence
// numbers. Each phase depends on exactly the immediately preceding phase in
// sorted order (the model is a linear chain with no skip dependencies), and
// its duration is the max constituent task duration plus a fixed buffer.
// Phase numbers absent from the input produce no phase.
func BuildPhases(tasks []ConstructionTask) []WorkflowPhase {
	groups := make(map[int][]ConstructionTask)
	numbers := make([]int, 0)

	for _, task := range tasks {
		if _, ok := groups[task.Phase]; !ok {
			numbers = append(numbers, task.Phase)
		}
		groups[task.Phase] = append(groups[task.Phase], task)
	}

	slices.Sort(numbers)

	phases := make([]WorkflowPhase, 0, len(numbers))
	for i, number := range numbers {
		group := groups[number]

		longest := 0.0
		materials := make([]string, 0)
		inspections := make([]string, 0)
		seenMaterials := make(map[string]struct{})
		seenInspections := make(map[string]struct{})

		for j := range group {
			group[j].Sequence = j + 1

			if group[j].Duration > longest {
				longest = group[j].Duration
			}

			for _, m := range ExtractMaterials(group[j].Description) {
				key := strings.ToLower(m)
				if _, ok := seenMaterials[key]; ok {
					continue
				}
				seenMaterials[key] = struct{}{}
				materials = append(materials, m)
			}

			if group[j].InspectionRequired {
				inspection := fmt.Sprintf("%s inspection", group[j].Trade)
				if _, ok := seenInspections[inspection]; !ok {
					seenInspections[inspection] = struct{}{}
					inspections = append(inspections, inspection)
				}
			}
		}

		dependencies := make([]int, 0, 1)
		if i > 0 {
			dependencies = append(dependencies, numbers[i-1])
		}

		phases = append(phases, WorkflowPhase{
			Number:              number,
			Label:               group[0].PhaseLabel,
			Tasks:               group,
			Dependencies:        dependencies,
			EstimatedDuration:   longest + phaseBuffer,
			Materials:           materials,
			InspectionsRequired: inspections,
		})
	}

	return phases
}
