package tui

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/packrat/internal/gear"
)

// filterByGroup returns the items currently assigned to g, preserving store
// order.
func filterByGroup(items []gear.Item, g gear.Group) []gear.Item {
	out := make([]gear.Item, 0, len(items))
	for _, item := range items {
		if item.Group == g {
			out = append(out, item)
		}
	}
	return out
}

// filterByQuery narrows items to those matching the search query. An empty
// query matches everything.
func filterByQuery(items []gear.Item, query string) []gear.Item {
	query = strings.TrimSpace(query)
	if query == "" {
		return items
	}
	out := make([]gear.Item, 0, len(items))
	for _, item := range items {
		if matchesQuery(item, query) {
			out = append(out, item)
		}
	}
	return out
}

// matchesQuery is a case-insensitive substring match on name and description,
// with an edit-distance fallback on the name so near-miss typing still finds
// gear.
func matchesQuery(item gear.Item, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	name := strings.ToLower(item.Name)
	if strings.Contains(name, q) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Description), q) {
		return true
	}
	if maxDist := typoBudget(q); maxDist > 0 {
		for _, word := range strings.Fields(name) {
			if levenshtein.ComputeDistance(word, q) <= maxDist {
				return true
			}
		}
	}
	return false
}

// typoBudget scales the tolerated edit distance with query length. Short
// queries get none: nearly everything is one edit from "a".
func typoBudget(query string) int {
	switch n := len([]rune(query)); {
	case n >= 7:
		return 2
	case n >= 4:
		return 1
	default:
		return 0
	}
}
