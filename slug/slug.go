// Package slug derives URL segments from display names and resolves
// entities from them.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer turns a display string into a slug. The zero value only
// lowercases.
type Normalizer struct {
	// StripDiacritics decomposes the input (NFD) and drops combining marks,
	// so "Rădăuți" becomes "Radauti".
	StripDiacritics bool

	// TrimSpace removes leading and trailing whitespace before collapsing.
	TrimSpace bool

	// Collapse, when set, replaces every match with Delimiter.
	Collapse  *regexp.Regexp
	Delimiter string

	// TrimDelimiter strips Delimiter from both ends of the result.
	TrimDelimiter bool
}

var (
	whitespaceRun  = regexp.MustCompile(`[\s\p{Z}]+`)
	nonAlphanumRun = regexp.MustCompile(`[^a-z0-9]+`)
)

// Title is used for classes and instructors: lowercase, whitespace runs
// become hyphens.
var Title = Normalizer{
	Collapse:  whitespaceRun,
	Delimiter: "-",
}

// City is used for locations: diacritics stripped, lowercase.
var City = Normalizer{
	StripDiacritics: true,
}

// Event is used for events: lowercase, trimmed, every non-alphanumeric run
// becomes a single hyphen, no leading or trailing hyphens.
var Event = Normalizer{
	TrimSpace:     true,
	Collapse:      nonAlphanumRun,
	Delimiter:     "-",
	TrimDelimiter: true,
}

// Normalize applies the normalizer to s
func (n Normalizer) Normalize(s string) string {
	if n.StripDiacritics {
		s = StripDiacritics(s)
	}
	s = strings.ToLower(s)
	if n.TrimSpace {
		s = strings.TrimSpace(s)
	}
	if n.Collapse != nil {
		s = n.Collapse.ReplaceAllString(s, n.Delimiter)
	}
	if n.TrimDelimiter && n.Delimiter != "" {
		s = strings.Trim(s, n.Delimiter)
	}
	return s
}

// StripDiacritics removes combining marks after canonical decomposition
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Or returns stored when it is set, otherwise the normalized fallback
func Or(stored string, n Normalizer, fallback string) string {
	if stored != "" {
		return stored
	}
	return n.Normalize(fallback)
}
