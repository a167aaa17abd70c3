package common

import "strings"

// ListSeparator joins list-valued fields in flattened table cells.
const ListSeparator = "; "

// JoinList renders a list field as a single cell value.
func JoinList(items []string) string {
	return strings.Join(items, ListSeparator)
}

// SplitList parses a semicolon-separated cell value back into a list,
// trimming whitespace and dropping empty entries.
func SplitList(s string) []string {
	parts := strings.Split(s, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
