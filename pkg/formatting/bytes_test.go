package formatting_test

import (
	"testing"

	"github.com/foremanhq/foreman/pkg/formatting"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n         int64
		precision int
		want      string
	}{
		{0, 2, "0 B"},
		{512, 0, "512 B"},
		{1024, 0, "1 KB"},
		{1536, 1, "1.5 KB"},
		{1048576, 0, "1 MB"},
		{52428800, 0, "50 MB"},
	}

	for _, tt := range tests {
		if got := formatting.FormatBytes(tt.n, tt.precision); got != tt.want {
			t.Errorf("FormatBytes(%d, %d) = %q, want %q", tt.n, tt.precision, got, tt.want)
		}
	}
}

func TestParseBytes(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"512", 512},
		{"1KB", 1024},
		{"1 KB", 1024},
		{"25mb", 26214400},
		{"1.5 KB", 1536},
		{"2GB", 2147483648},
	}

	for _, tt := range tests {
		got, err := formatting.ParseBytes(tt.input)
		if err != nil {
			t.Errorf("ParseBytes(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBytes(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestParseBytesInvalid(t *testing.T) {
	for _, input := range []string{"", "abc", "12 XB", "-5MB"} {
		if _, err := formatting.ParseBytes(input); err == nil {
			t.Errorf("ParseBytes(%q) succeeded, want error", input)
		}
	}
}
