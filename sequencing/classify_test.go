package sequencing_test

import (
	"testing"

	"github.com/foremanhq/foreman/sequencing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name           string
		description    string
		wantPhase      int
		wantLabel      string
		wantTrade      string
		wantDuration   float64
		wantInspection bool
	}{
		{
			name:           "demolition",
			description:    "Demolition of existing kitchen cabinets",
			wantPhase:      1,
			wantLabel:      "Demo & Prep",
			wantTrade:      "General",
			wantDuration:   1,
			wantInspection: false,
		},
		{
			name:           "electrical rough-in",
			description:    "Electrical rough-in for new outlets",
			wantPhase:      2,
			wantLabel:      "Rough-In",
			wantTrade:      "Electrical",
			wantDuration:   1.5,
			wantInspection: true,
		},
		{
			name:           "cabinet install",
			description:    "Install new kitchen cabinets",
			wantPhase:      5,
			wantLabel:      "Major Installations",
			wantTrade:      "Carpentry",
			wantDuration:   1.5,
			wantInspection: false,
		},
		{
			name:           "paint",
			description:    "Paint kitchen walls",
			wantPhase:      4,
			wantLabel:      "Paint",
			wantTrade:      "Painting",
			wantDuration:   1.5,
			wantInspection: false,
		},
		{
			name:           "hvac uppercase",
			description:    "HVAC DUCT MODIFICATIONS",
			wantPhase:      2,
			wantLabel:      "Rough-In",
			wantTrade:      "HVAC",
			wantDuration:   2,
			wantInspection: true,
		},
		{
			name:           "unmatched falls back to default",
			description:    "xyz unrelated text",
			wantPhase:      5,
			wantLabel:      "Major Installations",
			wantTrade:      "General",
			wantDuration:   1,
			wantInspection: false,
		},
		{
			name:           "empty string falls back to default",
			description:    "",
			wantPhase:      5,
			wantLabel:      "Major Installations",
			wantTrade:      "General",
			wantDuration:   1,
			wantInspection: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := sequencing.Classify(tt.description)

			if task.Description != tt.description {
				t.Errorf("Description = %q, want %q", task.Description, tt.description)
			}
			if task.Phase != tt.wantPhase {
				t.Errorf("Phase = %d, want %d", task.Phase, tt.wantPhase)
			}
			if task.PhaseLabel != tt.wantLabel {
				t.Errorf("PhaseLabel = %q, want %q", task.PhaseLabel, tt.wantLabel)
			}
			if task.Trade != tt.wantTrade {
				t.Errorf("Trade = %q, want %q", task.Trade, tt.wantTrade)
			}
			if task.Duration != tt.wantDuration {
				t.Errorf("Duration = %v, want %v", task.Duration, tt.wantDuration)
			}
			if task.InspectionRequired != tt.wantInspection {
				t.Errorf("InspectionRequired = %v, want %v", task.InspectionRequired, tt.wantInspection)
			}
		})
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	// "Demolition of existing kitchen cabinets" hits both the demo rule
	// (phase 1) and the cabinet rule (phase 5); the earlier rule must win.
	task := sequencing.Classify("Demolition of existing kitchen cabinets")
	if task.Phase != 1 {
		t.Errorf("Phase = %d, want 1 (demo rule precedes cabinet rule)", task.Phase)
	}
}

func TestClassifySubstringMatch(t *testing.T) {
	// Matching is plain substring containment, so "inventory" contains
	// "vent" and lands on the HVAC rule.
	task := sequencing.Classify("Update inventory list")
	if task.Trade != "HVAC" {
		t.Errorf("Trade = %q, want HVAC (substring match on %q)", task.Trade, "vent")
	}
}

func TestClassifyCustomRuleSet(t *testing.T) {
	rules := sequencing.RuleSet{
		{Keywords: []string{"widget"}, Phase: 1, PhaseLabel: "First", Trade: "General", BaseDurationDays: 2},
		{Keywords: []string{"widget", "gadget"}, Phase: 2, PhaseLabel: "Second", Trade: "General", BaseDurationDays: 1},
	}

	task := rules.Classify("install widget and gadget")
	if task.Phase != 1 {
		t.Errorf("Phase = %d, want 1 (first matching rule wins)", task.Phase)
	}

	task = rules.Classify("nothing matches here")
	if task.Phase != 5 || task.PhaseLabel != "Major Installations" {
		t.Errorf("fallback = phase %d %q, want phase 5 %q", task.Phase, task.PhaseLabel, "Major Installations")
	}
}
