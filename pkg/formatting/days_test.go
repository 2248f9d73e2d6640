package formatting_test

import (
	"testing"

	"github.com/foremanhq/foreman/pkg/formatting"
)

func TestFormatDays(t *testing.T) {
	tests := []struct {
		days float64
		want string
	}{
		{1, "1 day"},
		{2, "2 days"},
		{2.5, "2.5 days"},
		{0.5, "0.5 days"},
		{0, "0 days"},
	}

	for _, tt := range tests {
		if got := formatting.FormatDays(tt.days); got != tt.want {
			t.Errorf("FormatDays(%v) = %q, want %q", tt.days, got, tt.want)
		}
	}
}

func TestCeilDay(t *testing.T) {
	tests := []struct {
		day  float64
		want int
	}{
		{1, 1},
		{1.5, 2},
		{2.1, 3},
		{0, 0},
	}

	for _, tt := range tests {
		if got := formatting.CeilDay(tt.day); got != tt.want {
			t.Errorf("CeilDay(%v) = %d, want %d", tt.day, got, tt.want)
		}
	}
}

func TestDayRange(t *testing.T) {
	tests := []struct {
		start, end float64
		want       string
	}{
		{1, 2, "Days 1-2"},
		{2.5, 3.5, "Days 3-4"},
		{1, 1, "Days 1-1"},
	}

	for _, tt := range tests {
		if got := formatting.DayRange(tt.start, tt.end); got != tt.want {
			t.Errorf("DayRange(%v, %v) = %q, want %q", tt.start, tt.end, got, tt.want)
		}
	}
}
