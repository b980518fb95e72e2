package services

import "strings"

const (
	ShowAll = "all"
	ShowDue = "due"
)

// NormalizeShow collapses the status filter to its two valid values.
func NormalizeShow(value string) string {
	if strings.TrimSpace(value) == ShowDue {
		return ShowDue
	}
	return ShowAll
}

// MatchesSearch reports whether the query appears as a case-insensitive
// substring in any of name, species or location. An empty query matches
// everything.
func MatchesSearch(name string, species string, location string, query string) bool {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return true
	}
	for _, field := range []string{name, species, location} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
