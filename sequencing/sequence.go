package sequencing

// Sequence runs the full pipeline over an ordered list of line items using
// the default rule table.
func Sequence(projectName string, items []LineItem) SequencedWorkflow {
	return defaultRules.Sequence(projectName, items)
}

// Sequence classifies every line item, groups the resulting tasks into
// phases, derives notifications, and assembles the workflow. TotalDuration
// is the sum of phase durations and CriticalPath is the full phase-number
// sequence in order; the model has no parallel-phase awareness, so every
// phase is on the critical path.
func (rs RuleSet) Sequence(projectName string, items []LineItem) SequencedWorkflow {
	tasks := make([]ConstructionTask, 0, len(items))
	for _, item := range items {
		tasks = append(tasks, rs.Classify(item.Description))
	}

	phases := BuildPhases(tasks)

	total := 0.0
	path := make([]int, 0, len(phases))
	for _, phase := range phases {
		total += phase.EstimatedDuration
		path = append(path, phase.Number)
	}

	return SequencedWorkflow{
		ProjectName:   projectName,
		Phases:        phases,
		TotalDuration: total,
		CriticalPath:  path,
		Notifications: BuildNotifications(phases),
	}
}
