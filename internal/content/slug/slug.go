// Package slug derives URL-safe lookup keys from project titles. Slugs are
// computed at read time, never persisted.
package slug

import (
	"regexp"
	"strings"

	"github.com/stefdorosh/portfolio-backend/internal/content/domain"
)

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespace   = regexp.MustCompile(`[\s-]+`)
)

// Make lower-cases the title, strips everything outside [a-z0-9\s-], and
// collapses whitespace and hyphen runs into single hyphens. Applying Make to
// its own output returns the same slug.
func Make(title string) string {
	s := strings.ToLower(title)
	s = invalidChars.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Resolve returns the first project in listing order whose derived slug
// matches target. Duplicate slugs are possible; first match wins.
func Resolve(projects []domain.Project, target string) (*domain.Project, bool) {
	for i := range projects {
		if Make(projects[i].Title) == target {
			return &projects[i], true
		}
	}
	return nil, false
}
