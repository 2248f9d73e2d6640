package sequencing

import (
	"regexp"
	"strings"
)

// materialPatterns holds the fixed category patterns applied in sequence:
// dimensional lumber, plumbing materials, wire gauges, countertop surfaces,
// flooring, drywall products, and paint/finish products. The matched literal
// text is stored, not the category.
var materialPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b[1-9]\s?x\s?[0-9]{1,2}\b`),
	regexp.MustCompile(`(?i)\b(?:pvc|pex|copper|abs)\b`),
	regexp.MustCompile(`(?i)\b(?:\d{1,2}/\d(?:\s?(?:awg|wire))?|\d{1,2}\s?gauge|romex|thhn)\b`),
	regexp.MustCompile(`(?i)\b(?:granite|quartz|marble|butcher\s?block|corian)\b`),
	regexp.MustCompile(`(?i)\b(?:hardwood|laminate|vinyl|lvp|carpet|tile|bamboo)\b`),
	regexp.MustCompile(`(?i)\b(?:drywall|sheetrock|cement board|greenboard)\b`),
	regexp.MustCompile(`(?i)\b(?:paint|primer|stain|sealer|varnish)\b`),
}

// ExtractMaterials scans a description for material-indicating substrings
// and returns the matched literals, deduplicated case-insensitively in
// insertion order. This is best-effort annotation: unrecognized materials
// are omitted and pattern over-matches are tolerated.
func ExtractMaterials(description string) []string {
	found := make([]string, 0)
	seen := make(map[string]struct{})

	for _, pattern := range materialPatterns {
		for _, match := range pattern.FindAllString(description, -1) {
			key := strings.ToLower(match)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			found = append(found, match)
		}
	}

	return found
}
