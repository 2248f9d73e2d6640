// Package sequencing implements the construction task sequencing engine for
// Foreman. Given the free-text line items of an estimate or invoice, it
// classifies each item into a construction trade and phase, orders phases by
// build dependency, extracts referenced materials, computes phase durations,
// flags required inspections, and assembles a notification-annotated project
// workflow. The engine is pure, synchronous, and deterministic: every entry
// point is a total function of its inputs and the fixed rule tables.
package sequencing

// NotificationType categorizes who a workflow notification is for.
type NotificationType string

// Notification types emitted by the workflow assembler.
const (
	NotifyCrew       NotificationType = "crew"
	NotifyClient     NotificationType = "client"
	NotifyMaterial   NotificationType = "material"
	NotifyInspection NotificationType = "inspection"
)

// NotificationTiming positions a notification relative to its phase.
type NotificationTiming string

// Notification timings relative to phase execution.
const (
	TimingBefore NotificationTiming = "before"
	TimingDuring NotificationTiming = "during"
	TimingAfter  NotificationTiming = "after"
)

// LineItem is a single estimate or invoice line: a free-text description
// with optional quantity and rate. Only the description participates in
// classification; quantity and rate pass through for the caller.
type LineItem struct {
	Description string   `json:"description"`
	Quantity    *float64 `json:"quantity,omitempty"`
	Rate        *float64 `json:"rate,omitempty"`
}

// ConstructionTask is one classified line item. Description preserves the
// input verbatim; the remaining fields come from the matching rule. Sequence
// is the task's 1-based position within its phase, assigned during grouping.
type ConstructionTask struct {
	Description        string  `json:"description"`
	Phase              int     `json:"phase"`
	PhaseLabel         string  `json:"phase_label"`
	Trade              string  `json:"trade"`
	Duration           float64 `json:"duration"`
	InspectionRequired bool    `json:"inspection_required"`
	Sequence           int     `json:"sequence"`
}

// WorkflowPhase groups the tasks for one build phase. Dependencies holds the
// phase numbers that must complete first; the model is a linear chain, so it
// is empty for the first phase and the immediately preceding phase number
// otherwise. Materials and InspectionsRequired are deduplicated in insertion
// order so output is stable across runs.
type WorkflowPhase struct {
	Number              int                `json:"number"`
	Label               string             `json:"label"`
	Tasks               []ConstructionTask `json:"tasks"`
	Dependencies        []int              `json:"dependencies"`
	EstimatedDuration   float64            `json:"estimated_duration"`
	Materials           []string           `json:"materials"`
	InspectionsRequired []string           `json:"inspections_required"`
}

// WorkflowNotification is a single crew, client, material, or inspection
// event derived from the phase list.
type WorkflowNotification struct {
	Type    NotificationType   `json:"type"`
	Phase   int                `json:"phase"`
	Message string             `json:"message"`
	Timing  NotificationTiming `json:"timing"`
}

// SequencedWorkflow is the complete output of the engine: phases in ascending
// order, the sum of their durations, the critical path (currently every phase
// in order), and the derived notification stream.
type SequencedWorkflow struct {
	ProjectName   string                 `json:"project_name"`
	Phases        []WorkflowPhase        `json:"phases"`
	TotalDuration float64                `json:"total_duration"`
	CriticalPath  []int                  `json:"critical_path"`
	Notifications []WorkflowNotification `json:"notifications"`
}
