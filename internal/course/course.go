// Package course holds the document model for a generated course tree: the
// course/section/subsection hierarchy, the numbering scheme with its reserved
// ordinals, and the title and slug normalizers. The model is built once per
// run by the Builder, is immutable afterwards, and performs no I/O.
package course

import "errors"

// Structural validation errors. Wrapped with entity context at the point of
// failure.
var (
	// ErrReservedOrdinal marks an attempt to place content at a reserved position
	ErrReservedOrdinal = errors.New("reserved ordinal")
	// ErrNonDenseOrdinal marks a gap or duplicate in a 1-based ordinal sequence
	ErrNonDenseOrdinal = errors.New("non-dense ordinal sequence")
	// ErrEmptyTitle marks a missing course title
	ErrEmptyTitle = errors.New("empty title")
)

// Course is the root of the document model.
type Course struct {
	// Number is the optional ordinal of the course within a wider program;
	// nil means the course directory carries no numeric prefix.
	Number *int

	// Title is the display-cased course title.
	Title string

	// ShortTitle is the case-preserved shorthand (e.g. "BDSA 3134") that
	// prefixes every page's front-matter title.
	ShortTitle string

	// Slug is the normalized form of Title.
	Slug string

	// Sections in presentation order. Insertion order is numbering order.
	Sections []Section
}

// Section is a first-level subdivision of a Course.
type Section struct {
	// Index is the 1-based position within the course; never 0 or 99.
	Index int

	Title string
	Slug  string

	// Subsections in presentation order; empty for flat-layout courses.
	Subsections []Subsection
}

// Subsection is a second-level subdivision, child of a Section.
type Subsection struct {
	// Index is the 1-based position within the parent section; never 0 or 99.
	Index int

	Title string
	Slug  string
}

// Label returns the section's two-digit numeric label.
func (s Section) Label() string {
	return Label(s.Index)
}

// CompositeLabel returns the "NN.MM" label of a subsection within its section.
func (s Section) CompositeLabel(sub Subsection) string {
	return CompositeLabel(s.Index, sub.Index)
}

// DirName returns the course's root directory name: the slug, prefixed with
// the two-digit course number when one is set.
func (c *Course) DirName() string {
	if c.Number != nil {
		return Label(*c.Number) + "-" + c.Slug
	}
	return c.Slug
}
