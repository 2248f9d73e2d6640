package sequencing

import "strings"

// ProjectArchetype is a named project template from the static catalog.
// TypicalTasks lists the line items a project of this type usually carries,
// used to seed a workflow when only a prose description is available.
type ProjectArchetype struct {
	Name         string   `json:"name"`
	Trade        string   `json:"trade"`
	Keywords     []string `json:"keywords"`
	TypicalTasks []string `json:"typical_tasks"`
}

// ProjectTypeMatch pairs a detected archetype with its keyword score.
type ProjectTypeMatch struct {
	Archetype ProjectArchetype `json:"archetype"`
	Score     int              `json:"score"`
}

// DetectProjectType matches a free-text project description against the
// archetype catalog, optionally restricted to a trade. Scoring is +10 when
// the archetype's own name appears in the text and +5 per matching keyword;
// the highest-scoring archetype wins, with catalog order breaking ties.
// Returns nil when nothing scores above zero.
func DetectProjectType(text, trade string) *ProjectTypeMatch {
	lowered := strings.ToLower(text)

	var best *ProjectTypeMatch
	for _, archetype := range projectCatalog {
		if trade != "" && !strings.EqualFold(archetype.Trade, trade) {
			continue
		}

		score := 0
		if strings.Contains(lowered, strings.ToLower(archetype.Name)) {
			score += 10
		}
		for _, keyword := range archetype.Keywords {
			if strings.Contains(lowered, keyword) {
				score += 5
			}
		}

		if score > 0 && (best == nil || score > best.Score) {
			best = &ProjectTypeMatch{Archetype: archetype, Score: score}
		}
	}

	return best
}

var projectCatalog = []ProjectArchetype{
	{
		Name:     "Kitchen Renovation",
		Trade:    "General",
		Keywords: []string{"kitchen", "cabinets", "countertop", "backsplash"},
		TypicalTasks: []string{
			"Demolition of existing kitchen",
			"Electrical rough-in for outlets and lighting",
			"Plumbing rough-in for sink and dishwasher",
			"Drywall repair and patching",
			"Paint walls and ceiling",
			"Install new cabinets",
			"Install countertops",
			"Tile backsplash",
			"Install appliances",
			"Final walkthrough and punch list",
		},
	},
	{
		Name:     "Bathroom Remodel",
		Trade:    "General",
		Keywords: []string{"bathroom", "bath", "shower", "vanity"},
		TypicalTasks: []string{
			"Demolition of existing bathroom",
			"Plumbing rough-in for shower and vanity",
			"Electrical rough-in for vanity lighting",
			"Cement board and waterproofing",
			"Tile shower walls and floor",
			"Install vanity and faucet",
			"Install toilet",
			"Paint walls",
			"Final walkthrough and punch list",
		},
	},
	{
		Name:     "Bathtub Installation",
		Trade:    "Plumbing",
		Keywords: []string{"tub", "bathtub", "soaking", "surround"},
		TypicalTasks: []string{
			"Remove existing tub",
			"Plumbing rough-in for new tub drain and supply",
			"Set bathtub and surround",
			"Install tub faucet and trim",
			"Caulk and seal tub perimeter",
		},
	},
	{
		Name:     "Water Heater Replacement",
		Trade:    "Plumbing",
		Keywords: []string{"water heater", "tankless", "hot water"},
		TypicalTasks: []string{
			"Remove existing water heater",
			"Plumbing rough-in for supply and relief lines",
			"Set and connect new water heater",
			"Final inspection",
		},
	},
	{
		Name:     "Panel Upgrade",
		Trade:    "Electrical",
		Keywords: []string{"panel", "amp", "service upgrade", "breaker"},
		TypicalTasks: []string{
			"Remove existing electrical panel",
			"Install new panel and breakers",
			"Rewire branch circuits to new panel",
			"Final inspection",
		},
	},
	{
		Name:     "EV Charger Installation",
		Trade:    "Electrical",
		Keywords: []string{"ev charger", "charger", "level 2", "electric vehicle"},
		TypicalTasks: []string{
			"Electrical rough-in for dedicated 240V circuit",
			"Install EV charger fixture",
			"Final inspection",
		},
	},
	{
		Name:     "Furnace Replacement",
		Trade:    "HVAC",
		Keywords: []string{"furnace", "heating", "heat exchanger"},
		TypicalTasks: []string{
			"Remove existing furnace",
			"Set new furnace and connect duct transitions",
			"Gas line connection and leak test",
			"Final inspection",
		},
	},
	{
		Name:     "Basement Finish",
		Trade:    "General",
		Keywords: []string{"basement", "egress", "lower level"},
		TypicalTasks: []string{
			"Site prep and debris removal",
			"Framing of partition walls",
			"Electrical rough-in",
			"HVAC duct extensions",
			"Insulation and vapor barrier",
			"Drywall hang and finish",
			"Paint walls and ceiling",
			"Install flooring",
			"Install trim and doors",
			"Final cleanup",
		},
	},
	{
		Name:     "Deck Construction",
		Trade:    "Carpentry",
		Keywords: []string{"deck", "railing", "composite", "joist"},
		TypicalTasks: []string{
			"Site prep and footing layout",
			"Framing of deck structure",
			"Install decking boards",
			"Install railing and trim",
			"Stain and seal",
		},
	},
}
