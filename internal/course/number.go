package course

import "fmt"

// Reserved ordinals. Index pages always sort first within their directory and
// flashcards pages always sort last, so neither value may be assigned to real
// content.
const (
	// IndexOrdinal is the ordinal reserved for course and section index pages
	IndexOrdinal = 0
	// FlashcardsOrdinal is the ordinal reserved for section flashcards pages
	FlashcardsOrdinal = 99
)

// Reserved labels derived from the reserved ordinals.
const (
	// IndexLabel prefixes index page filenames, e.g. "00-course_overview.md"
	IndexLabel = "00"
	// FlashcardsLabel prefixes flashcards filenames, e.g. "99-flashcards_intro.md"
	FlashcardsLabel = "99"
)

// Label renders an ordinal as a zero-padded numeric label, two digits minimum.
// Values of 100 and above simply widen.
func Label(ordinal int) string {
	return fmt.Sprintf("%02d", ordinal)
}

// CompositeLabel joins a section ordinal and a subsection ordinal into the
// two-level label used in page titles, e.g. "01.03".
func CompositeLabel(sectionOrdinal, subOrdinal int) string {
	return Label(sectionOrdinal) + "." + Label(subOrdinal)
}

// ValidateOrdinal rejects ordinals that are not valid 1-based content
// positions: zero and negatives, and the flashcards ordinal. The entity name
// is included in the error so the caller knows which input to fix.
func ValidateOrdinal(ordinal int, entity string) error {
	if ordinal <= IndexOrdinal {
		return fmt.Errorf("%s: %w: ordinal %d (positions are 1-based, %s is reserved for index pages)",
			entity, ErrReservedOrdinal, ordinal, IndexLabel)
	}
	if ordinal == FlashcardsOrdinal {
		return fmt.Errorf("%s: %w: ordinal %d (%s is reserved for flashcards pages)",
			entity, ErrReservedOrdinal, ordinal, FlashcardsLabel)
	}
	return nil
}
