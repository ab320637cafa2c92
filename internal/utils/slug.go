package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9-]+`)
	slugDashes  = regexp.MustCompile(`-{2,}`)
)

// Slugify turns an event name into a URL-friendly slug: accents are
// stripped, whitespace becomes hyphens and anything else non-alphanumeric
// is dropped.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, _ := transform.String(t, s)
	out = strings.ToLower(strings.Join(strings.Fields(out), "-"))
	out = slugInvalid.ReplaceAllString(out, "")
	out = slugDashes.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}
