package course

import "strings"

// slugSeparator joins slug words in filenames and directory names.
const slugSeparator = '_'

// Slugify converts a title into a filesystem- and link-safe slug: lower-case,
// ASCII letters, digits, underscores, and hyphens only. Whitespace and path
// characters become single underscores, other punctuation is dropped, and
// runs of separators collapse. Slugify is idempotent: slugging a slug is a
// no-op.
func Slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	lastWasSep := true // also trims leading separators
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastWasSep = false
		case r == '-':
			// hyphens are path-safe and kept verbatim
			b.WriteRune(r)
			lastWasSep = false
		case r == ' ' || r == '\t' || r == '\n' || r == '/' || r == '\\' || r == ':' || r == '.':
			if !lastWasSep {
				b.WriteRune(slugSeparator)
				lastWasSep = true
			}
		case r == slugSeparator:
			if !lastWasSep {
				b.WriteRune(slugSeparator)
				lastWasSep = true
			}
		default:
			// apostrophes, parens, question marks, and the rest vanish
		}
	}

	return strings.TrimRight(b.String(), string(slugSeparator))
}
