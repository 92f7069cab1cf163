// Package filter provides query-time filtering over an already-fetched
// project listing. All functions are pure.
package filter

import (
	"sort"
	"strings"

	"github.com/stefdorosh/portfolio-backend/internal/content/domain"
)

// AllTags returns the deduplicated union of every project's keywords,
// sorted lexicographically for stable display.
func AllTags(projects []domain.Project) []string {
	seen := make(map[string]struct{})
	for _, p := range projects {
		for _, kw := range p.Keywords {
			seen[kw] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for kw := range seen {
		out = append(out, kw)
	}
	sort.Strings(out)
	return out
}

// Apply keeps the projects matching the free-text query (title or
// description, case-insensitive) and carrying every selected tag. Empty
// query and empty tag set each pass everything. Input order is preserved.
func Apply(projects []domain.Project, query string, tags []string) []domain.Project {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if !matchesQuery(p, query) {
			continue
		}
		if !hasAllTags(p, tags) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesQuery(p domain.Project, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Description), query)
}

func hasAllTags(p domain.Project, tags []string) bool {
	for _, want := range tags {
		found := false
		for _, kw := range p.Keywords {
			if kw == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
