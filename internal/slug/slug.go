// Package slug provides URL-friendly slug generation from display names.
package slug

import (
	"regexp"
	"strings"
)

// nonSlugRun matches every maximal run of characters that can't appear in a
// slug. Each run collapses to a single hyphen.
var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Make creates a URL-friendly slug from the given name.
// Example: "Elderly Care!!" → "elderly-care"
func Make(name string) string {
	result := strings.ToLower(name)
	result = nonSlugRun.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}
