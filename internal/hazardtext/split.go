// Package hazardtext normalizes free-text hazard descriptions. Catalog
// entries and manual input often pack several hazards into one phrase
// ("heat, hot liquids and scalds"); Split breaks such composites into the
// atomic phrases the domain model stores one per Hazard record.
package hazardtext

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Delimiters: comma, slash, ampersand, and the whole-word connectors "und"
// and "and" (assessment source data is frequently German), each surrounded
// by optional whitespace.
var splitPattern = regexp.MustCompile(`\s*(?:,|/|&|\bund\b|\band\b)\s*`)

// Split breaks a hazard description into a deduplicated ordered list of
// atomic phrases. Fragments are trimmed and NFC-normalized before
// duplicate elimination, which preserves first-occurrence order. Empty or
// whitespace-only input yields an empty slice. Input whose trimmed form is
// non-empty but yields no usable fragments falls back to a single-element
// slice holding the trimmed original, so splitting never silently discards
// input.
func Split(text string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return []string{}
	}

	seen := make(map[string]struct{})
	uniq := []string{}
	for _, part := range splitPattern.Split(text, -1) {
		p := norm.NFC.String(strings.TrimSpace(part))
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		uniq = append(uniq, p)
	}

	if len(uniq) == 0 {
		return []string{norm.NFC.String(trimmed)}
	}
	return uniq
}
