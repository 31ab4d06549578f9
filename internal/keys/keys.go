package keys

import (
	"sort"
	"strings"
)

// TeamKey produces a canonical key for a set of character ids.
// Behavior: trims ids, drops empty ones, sorts the rest and joins them with
// commas, so the same team picked in any order maps to the same key.
func TeamKey(ids []string) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		s := strings.TrimSpace(id)
		if s == "" {
			continue
		}
		parts = append(parts, s)
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}
