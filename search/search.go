// Package search filters, orders and pages content lists in memory.
package search

import "strings"

// All is the sentinel filter value meaning "no constraint"
const All = "all"

func isAll(value string) bool {
	return value == "" || strings.EqualFold(value, All)
}

// containsFold reports whether substr is within s, ignoring case
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// matchesQuery is a case-insensitive substring match on title or description
func matchesQuery(query, title, description string) bool {
	if query == "" {
		return true
	}
	return containsFold(title, query) || containsFold(description, query)
}

// distinct keeps the first occurrence of each non-empty value
func distinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := []string{}
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// seed picks the first known value containing query, or All when none does
func seed(known []string, query string) string {
	query = strings.TrimSpace(query)
	if isAll(query) {
		return All
	}
	for _, value := range known {
		if containsFold(value, query) {
			return value
		}
	}
	return All
}
