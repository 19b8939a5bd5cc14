package course

import (
	"regexp"
	"strings"
	"unicode"
)

// romanPattern matches a well-formed Roman numeral. Go's regexp has no
// lookahead, so the empty-match case is handled by the caller checking the
// token is non-empty and contains only numeral letters.
var romanPattern = regexp.MustCompile(`(?i)^M*(C[MD]|D?C{0,3})(X[CL]|L?X{0,3})(I[XV]|V?I{0,3})$`)

// smallWords are conjunctions, articles, and prepositions left lower-case in
// titles unless they open the title.
var smallWords = map[string]bool{
	"a": true, "an": true, "the": true,
	"and": true, "but": true, "or": true, "nor": true,
	"for": true, "so": true, "yet": true,
	"as": true, "at": true, "by": true, "down": true, "from": true,
	"in": true, "into": true, "like": true, "near": true, "of": true,
	"off": true, "on": true, "onto": true, "out": true, "over": true,
	"past": true, "per": true, "to": true, "up": true, "upon": true,
	"with": true, "via": true, "vs": true,
}

// TitleCase converts raw user input to display title case. Roman numeral
// tokens are upper-cased whole, small words entered in lower case stay
// lower-case unless they lead (a word typed as "On" keeps its capital), and
// only the true first letter of a token is capitalized so contractions like
// "don't" keep the letter after the apostrophe lower-case. Whitespace between
// words is preserved as entered. Empty or pure-punctuation input passes
// through unchanged.
func TitleCase(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	first := true
	for _, tok := range splitWords(raw) {
		if tok.space {
			b.WriteString(tok.text)
			continue
		}
		switch {
		case isRomanNumeral(tok.text):
			b.WriteString(strings.ToUpper(tok.text))
		case !first && smallWords[tok.text]:
			b.WriteString(tok.text)
		default:
			b.WriteString(capitalize(tok.text))
		}
		first = false
	}
	return b.String()
}

type wordToken struct {
	text  string
	space bool
}

// splitWords splits on whitespace runs, keeping the runs so the original
// spacing survives the round trip.
func splitWords(s string) []wordToken {
	var tokens []wordToken
	start := 0
	inSpace := false
	for i, r := range s {
		isSpace := unicode.IsSpace(r)
		if i == 0 {
			inSpace = isSpace
			continue
		}
		if isSpace != inSpace {
			tokens = append(tokens, wordToken{text: s[start:i], space: inSpace})
			start = i
			inSpace = isSpace
		}
	}
	if start < len(s) {
		tokens = append(tokens, wordToken{text: s[start:], space: inSpace})
	}
	return tokens
}

// capitalize upper-cases the first letter and lower-cases the remainder of a
// single word. Lower-casing the tail is what keeps "DON'T" from becoming
// "Don'T": the apostrophe never restarts capitalization.
func capitalize(word string) string {
	for i, r := range word {
		if unicode.IsLetter(r) {
			return strings.ToLower(word[:i]) +
				string(unicode.ToUpper(r)) +
				strings.ToLower(word[i+len(string(r)):])
		}
	}
	return word
}

// isRomanNumeral reports whether a token is a strict Roman numeral such as
// "ii" or "XIV".
func isRomanNumeral(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		switch unicode.ToUpper(r) {
		case 'M', 'D', 'C', 'L', 'X', 'V', 'I':
		default:
			return false
		}
	}
	return romanPattern.MatchString(token)
}
