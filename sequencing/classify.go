package sequencing

import "strings"

// Classify maps a free-text line item description to a construction task
// using the default rule table. It is a total function: every input,
// including the empty string, produces a task, falling back to phase 5
// "Major Installations" when no rule matches.
func Classify(description string) ConstructionTask {
	return defaultRules.Classify(description)
}

// Classify evaluates the rule set in table order against the lowercased
// description and returns a task built from the first rule with a keyword
// hit. Matching is plain substring containment, not word-boundary aware, so
// e.g. "vent" matches inside "inventory"; the table order determines the
// winner when keywords from multiple rules appear.
func (rs RuleSet) Classify(description string) ConstructionTask {
	lowered := strings.ToLower(description)

	for _, rule := range rs {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lowered, keyword) {
				return ConstructionTask{
					Description:        description,
					Phase:              rule.Phase,
					PhaseLabel:         rule.PhaseLabel,
					Trade:              rule.Trade,
					Duration:           rule.BaseDurationDays,
					InspectionRequired: rule.InspectionRequired,
				}
			}
		}
	}

	task := fallbackTask
	task.Description = description
	return task
}
