package sequencing

import "fmt"

// BuildNotifications derives the flat notification stream from an ordered
// phase list: a crew ready notice and optional material delivery notice
// before each phase, inspection scheduling during it, a client completion
// notice after it, and, when a phase requires inspections and another phase
// follows, a blocking notice against the next phase. No deduplication is
// applied across phases.
func BuildNotifications(phases []WorkflowPhase) []WorkflowNotification {
	notifications := make([]WorkflowNotification, 0, len(phases)*3)

	for i, phase := range phases {
		notifications = append(notifications, WorkflowNotification{
			Type:    NotifyCrew,
			Phase:   phase.Number,
			Timing:  TimingBefore,
			Message: fmt.Sprintf("Phase %d ready to start - %s", phase.Number, phase.Label),
		})

		if len(phase.Materials) > 0 {
			notifications = append(notifications, WorkflowNotification{
				Type:    NotifyMaterial,
				Phase:   phase.Number,
				Timing:  TimingBefore,
				Message: fmt.Sprintf("Material delivery scheduled for %s", phase.Label),
			})
		}

		for _, inspection := range phase.InspectionsRequired {
			notifications = append(notifications, WorkflowNotification{
				Type:    NotifyInspection,
				Phase:   phase.Number,
				Timing:  TimingDuring,
				Message: fmt.Sprintf("Schedule %s for %s", inspection, phase.Label),
			})
		}

		notifications = append(notifications, WorkflowNotification{
			Type:    NotifyClient,
			Phase:   phase.Number,
			Timing:  TimingAfter,
			Message: fmt.Sprintf("%s completed - photos attached", phase.Label),
		})

		if i < len(phases)-1 && len(phase.InspectionsRequired) > 0 {
			next := phases[i+1]
			notifications = append(notifications, WorkflowNotification{
				Type:    NotifyCrew,
				Phase:   next.Number,
				Timing:  TimingBefore,
				Message: fmt.Sprintf(
					"Phase %d cannot start until Phase %d complete and inspections passed",
					next.Number, phase.Number,
				),
			})
		}
	}

	return notifications
}
