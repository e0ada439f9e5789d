package blogportal

import (
	"strings"
	"unicode"
)

// Slugify derives the URL-safe post identifier from a title: lower case,
// spaces become dashes, everything except letters, digits, dashes and
// underscores is dropped.
func Slugify(title string) (string, error) {
	lower := strings.ToLower(strings.TrimSpace(title))

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case r == ' ':
			b.WriteByte('-')
		case r == '-', r == '_', unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
		}
	}

	slug := b.String()
	if slug == "" {
		return "", newValidationError("title", "must contain at least one letter or digit")
	}

	return slug, nil
}
