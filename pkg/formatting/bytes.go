package formatting

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var byteUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

var bytesPattern = regexp.MustCompile(`^(\d+\.?\d*)\s*([A-Za-z]*)$`)

// FormatBytes converts a byte count to a human-readable string using
// base-1024 units. Negative precision values are clamped to zero.
func FormatBytes(n int64, precision int) string {
	if n == 0 {
		return "0 B"
	}
	if precision < 0 {
		precision = 0
	}

	f := float64(n)
	i := int(math.Floor(math.Log(f) / math.Log(1024)))
	if i >= len(byteUnits) {
		i = len(byteUnits) - 1
	}

	size := f / math.Pow(1024, float64(i))
	return strconv.FormatFloat(size, 'f', precision, 64) + " " + byteUnits[i]
}

// ParseBytes parses a human-readable byte size string (e.g. "25MB") into a
// byte count. Unit matching is case-insensitive; a bare number is treated
// as bytes.
func ParseBytes(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty byte size string")
	}

	matches := bytesPattern.FindStringSubmatch(s)
	if matches == nil {
		return 0, fmt.Errorf("invalid byte size: %q", s)
	}

	value, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid byte size number: %w", err)
	}

	unit := strings.ToUpper(matches[2])
	if unit == "" {
		return int64(value), nil
	}

	idx := slices.Index(byteUnits, unit)
	if idx == -1 {
		return 0, fmt.Errorf("unknown byte size unit: %q", unit)
	}

	return int64(value * math.Pow(1024, float64(idx))), nil
}
