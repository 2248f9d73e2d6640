package sequencing_test

import (
	"slices"
	"testing"

	"github.com/foremanhq/foreman/sequencing"
)

func TestExtractMaterials(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        []string
	}{
		{
			name:        "dimensional lumber",
			description: "Frame wall with 2x4 studs and 2x6 headers",
			want:        []string{"2x4", "2x6"},
		},
		{
			name:        "plumbing materials",
			description: "Replace PVC drain with copper supply line",
			want:        []string{"PVC", "copper"},
		},
		{
			name:        "wire gauges",
			description: "Pull 12 gauge romex to new circuit",
			want:        []string{"12 gauge", "romex"},
		},
		{
			name:        "countertop surface",
			description: "Install granite countertop",
			want:        []string{"granite"},
		},
		{
			name:        "drywall and paint",
			description: "Hang drywall then paint with primer",
			want:        []string{"drywall", "paint", "primer"},
		},
		{
			name:        "no materials",
			description: "Final walkthrough and punch list",
			want:        []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sequencing.ExtractMaterials(tt.description)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ExtractMaterials(%q) = %v, want %v", tt.description, got, tt.want)
			}
		})
	}
}

func TestExtractMaterialsDedup(t *testing.T) {
	// Case-insensitive dedup keeps the first occurrence's casing.
	got := sequencing.ExtractMaterials("Paint trim, paint doors, PAINT ceiling")
	want := []string{"Paint"}
	if !slices.Equal(got, want) {
		t.Errorf("ExtractMaterials = %v, want %v", got, want)
	}
}
