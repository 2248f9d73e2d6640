package workflows_test

import (
	"errors"
	"testing"

	"github.com/foremanhq/foreman/internal/workflows"
)

func TestBuildPlanDetectsArchetype(t *testing.T) {
	plan, err := workflows.BuildPlan(workflows.PlanRequest{
		ProjectDescription: "full kitchen renovation with new cabinets",
	})
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}

	if !plan.Success {
		t.Error("Success = false, want true")
	}
	if plan.RequestID == "" {
		t.Error("RequestID is empty")
	}
	if plan.Data == nil {
		t.Fatal("Data is nil")
	}
	if plan.Data.Project != "Kitchen Renovation" {
		t.Errorf("Project = %q, want %q", plan.Data.Project, "Kitchen Renovation")
	}
	if len(plan.Data.Tasks) == 0 {
		t.Error("no tasks in plan")
	}
	if plan.Data.TotalDuration <= 0 {
		t.Errorf("TotalDuration = %v, want > 0", plan.Data.TotalDuration)
	}
	if len(plan.Data.CriticalPath) == 0 {
		t.Error("CriticalPath is empty")
	}
}

func TestBuildPlanCustomFallback(t *testing.T) {
	plan, err := workflows.BuildPlan(workflows.PlanRequest{
		ProjectDescription: "xyz unrelated request",
	})
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}

	if plan.Data.Project != "Custom Project" {
		t.Errorf("Project = %q, want %q", plan.Data.Project, "Custom Project")
	}
	if len(plan.Data.Tasks) != 1 {
		t.Fatalf("task count = %d, want 1", len(plan.Data.Tasks))
	}
	if plan.Data.Tasks[0].Description != "xyz unrelated request" {
		t.Errorf("task description = %q", plan.Data.Tasks[0].Description)
	}
}

func TestBuildPlanInvalidInput(t *testing.T) {
	for _, description := range []string{"", "   "} {
		_, err := workflows.BuildPlan(workflows.PlanRequest{ProjectDescription: description})
		if !errors.Is(err, workflows.ErrInvalidPlan) {
			t.Errorf("BuildPlan(%q) error = %v, want ErrInvalidPlan", description, err)
		}
	}
}

func TestBuildPlanInspectionsAndPermits(t *testing.T) {
	plan, err := workflows.BuildPlan(workflows.PlanRequest{
		ProjectDescription: "kitchen renovation",
		IncludeInspections: true,
		IncludePermits:     true,
	})
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}

	// The kitchen archetype carries electrical and plumbing rough-in tasks,
	// so both trades demand an inspection and a permit.
	if len(plan.Data.Inspections) == 0 {
		t.Error("no inspections in plan")
	}
	if len(plan.Data.Permits) == 0 {
		t.Error("no permits in plan")
	}

	wantInspections := map[string]bool{}
	for _, inspection := range plan.Data.Inspections {
		wantInspections[inspection] = true
	}
	if !wantInspections["Electrical inspection"] || !wantInspections["Plumbing inspection"] {
		t.Errorf("Inspections = %v, want electrical and plumbing entries", plan.Data.Inspections)
	}
}

func TestBuildPlanExcludesOptionalSections(t *testing.T) {
	plan, err := workflows.BuildPlan(workflows.PlanRequest{
		ProjectDescription: "kitchen renovation",
	})
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}

	if plan.Data.Inspections != nil {
		t.Errorf("Inspections = %v, want nil when not requested", plan.Data.Inspections)
	}
	if plan.Data.Permits != nil {
		t.Errorf("Permits = %v, want nil when not requested", plan.Data.Permits)
	}
}
