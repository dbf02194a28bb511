package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SlugFallback is used when the input collapses to nothing after cleanup.
const SlugFallback = "item"

var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify turns a display name into a URL-safe identifier: lowercase, accents
// stripped, runs of non-alphanumerics collapsed to single hyphens. Never
// returns an empty string.
func Slugify(text string) string {
	if folded, _, err := transform.String(deaccent, text); err == nil {
		text = folded
	}
	text = strings.ToLower(text)

	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range text {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return SlugFallback
	}
	return slug
}
