package sequencing

// ClassificationRule maps keyword hits to a construction phase and trade.
// A description matches when its lowercased text contains any keyword as a
// plain substring. Rules are evaluated in table order and the first match
// wins, so overlapping keyword sets resolve to the earliest build stage.
type ClassificationRule struct {
	Keywords           []string
	Phase              int
	PhaseLabel         string
	Trade              string
	BaseDurationDays   float64
	InspectionRequired bool
}

// RuleSet is an ordered classification rule table.
type RuleSet []ClassificationRule

// Phase numbers for the standard residential build sequence.
const (
	PhaseDemo       = 1
	PhaseRoughIn    = 2
	PhaseDrywall    = 3
	PhasePaint      = 4
	PhaseInstalls   = 5
	PhaseFinishWork = 6
	PhaseFinal      = 7
)

// DefaultRules returns the standard rule table. The table is shared and
// read-only; callers needing custom rules construct their own RuleSet.
func DefaultRules() RuleSet {
	return defaultRules
}

// fallbackTask is returned when no rule matches a description.
var fallbackTask = ConstructionTask{
	Phase:      PhaseInstalls,
	PhaseLabel: "Major Installations",
	Trade:      "General",
	Duration:   1,
}

// defaultRules is ordered by phase so that keyword collisions resolve to the
// earliest stage of the build. Several rules share a phase and label, e.g.
// Demo & Prep spans demolition, containment, and cleanup.
var defaultRules = RuleSet{
	{
		Keywords:         []string{"demo", "demolition", "tear out", "tear-out", "remove existing", "gut "},
		Phase:            PhaseDemo,
		PhaseLabel:       "Demo & Prep",
		Trade:            "General",
		BaseDurationDays: 1,
	},
	{
		Keywords:         []string{"containment", "dust barrier", "floor protection", "masking"},
		Phase:            PhaseDemo,
		PhaseLabel:       "Demo & Prep",
		Trade:            "General",
		BaseDurationDays: 0.5,
	},
	{
		Keywords:         []string{"haul", "debris", "dumpster", "cleanup", "site prep"},
		Phase:            PhaseDemo,
		PhaseLabel:       "Demo & Prep",
		Trade:            "General",
		BaseDurationDays: 0.5,
	},
	{
		Keywords:           []string{"framing", "frame wall", "stud", "subfloor", "joist", "blocking"},
		Phase:              PhaseRoughIn,
		PhaseLabel:         "Rough-In",
		Trade:              "Framing",
		BaseDurationDays:   2,
		InspectionRequired: true,
	},
	{
		Keywords:           []string{"electrical", "wiring", "rewire", "outlet", "circuit", "panel", "breaker"},
		Phase:              PhaseRoughIn,
		PhaseLabel:         "Rough-In",
		Trade:              "Electrical",
		BaseDurationDays:   1.5,
		InspectionRequired: true,
	},
	{
		Keywords:           []string{"plumbing", "plumb", "drain line", "supply line", "water line", "gas line"},
		Phase:              PhaseRoughIn,
		PhaseLabel:         "Rough-In",
		Trade:              "Plumbing",
		BaseDurationDays:   1.5,
		InspectionRequired: true,
	},
	{
		Keywords:           []string{"hvac", "duct", "vent", "furnace", "air handler", "heat pump"},
		Phase:              PhaseRoughIn,
		PhaseLabel:         "Rough-In",
		Trade:              "HVAC",
		BaseDurationDays:   2,
		InspectionRequired: true,
	},
	{
		Keywords:           []string{"insulation", "insulate", "batt", "spray foam", "vapor barrier"},
		Phase:              PhaseDrywall,
		PhaseLabel:         "Drywall & Insulation",
		Trade:              "Insulation",
		BaseDurationDays:   0.5,
		InspectionRequired: true,
	},
	{
		Keywords:         []string{"drywall", "sheetrock", "tape and mud", "mud and tape", "skim coat"},
		Phase:            PhaseDrywall,
		PhaseLabel:       "Drywall & Insulation",
		Trade:            "Drywall",
		BaseDurationDays: 2,
	},
	{
		Keywords:         []string{"paint", "primer", "prime walls", "stain", "wallpaper"},
		Phase:            PhasePaint,
		PhaseLabel:       "Paint",
		Trade:            "Painting",
		BaseDurationDays: 1.5,
	},
	{
		Keywords:         []string{"cabinet", "vanity"},
		Phase:            PhaseInstalls,
		PhaseLabel:       "Major Installations",
		Trade:            "Carpentry",
		BaseDurationDays: 1.5,
	},
	{
		Keywords:         []string{"countertop", "counter top", "granite", "quartz", "butcher block"},
		Phase:            PhaseInstalls,
		PhaseLabel:       "Major Installations",
		Trade:            "Carpentry",
		BaseDurationDays: 1,
	},
	{
		Keywords:         []string{"flooring", "hardwood", "laminate", "vinyl plank", "carpet"},
		Phase:            PhaseInstalls,
		PhaseLabel:       "Major Installations",
		Trade:            "Flooring",
		BaseDurationDays: 1.5,
	},
	{
		Keywords:         []string{"tile", "backsplash", "grout"},
		Phase:            PhaseInstalls,
		PhaseLabel:       "Major Installations",
		Trade:            "Tile",
		BaseDurationDays: 2,
	},
	{
		Keywords:         []string{"appliance", "dishwasher", "range hood", "microwave"},
		Phase:            PhaseInstalls,
		PhaseLabel:       "Major Installations",
		Trade:            "General",
		BaseDurationDays: 0.5,
	},
	{
		Keywords:         []string{"door", "window"},
		Phase:            PhaseInstalls,
		PhaseLabel:       "Major Installations",
		Trade:            "Carpentry",
		BaseDurationDays: 1,
	},
	{
		Keywords:         []string{"trim", "baseboard", "molding", "moulding", "casing", "wainscot"},
		Phase:            PhaseFinishWork,
		PhaseLabel:       "Finish Work",
		Trade:            "Carpentry",
		BaseDurationDays: 1,
	},
	{
		Keywords:         []string{"light fixture", "fixture", "switch plate", "chandelier", "sconce", "ceiling fan"},
		Phase:            PhaseFinishWork,
		PhaseLabel:       "Finish Work",
		Trade:            "Electrical",
		BaseDurationDays: 0.5,
	},
	{
		Keywords:         []string{"faucet", "toilet", "showerhead", "shower head", "sink", "garbage disposal"},
		Phase:            PhaseFinishWork,
		PhaseLabel:       "Finish Work",
		Trade:            "Plumbing",
		BaseDurationDays: 0.5,
	},
	{
		Keywords:         []string{"hardware", "knob", "hinge", "towel bar", "caulk", "touch up", "touch-up"},
		Phase:            PhaseFinishWork,
		PhaseLabel:       "Finish Work",
		Trade:            "General",
		BaseDurationDays: 0.5,
	},
	{
		Keywords:         []string{"final clean", "final walkthrough", "final walk-through", "punch list", "final inspection"},
		Phase:            PhaseFinal,
		PhaseLabel:       "Final",
		Trade:            "General",
		BaseDurationDays: 0.5,
	},
}
