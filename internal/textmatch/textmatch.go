// Package textmatch provides the case-insensitive substring matching used by
// recipe search and the shopping list filter.
package textmatch

import (
	"strings"

	"golang.org/x/text/cases"
)

// Contains reports whether substr occurs in s, ignoring case. Matching uses
// Unicode case folding, so "JALAPEÑO" matches "jalapeño". An empty substr
// always matches.
func Contains(s, substr string) bool {
	if substr == "" {
		return true
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(strings.TrimSpace(substr)))
}
