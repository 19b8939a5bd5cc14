package scaffold

import "github.com/deslni01/markdown-course-setup/internal/course"

// PageKind identifies one renderable unit of the course tree.
type PageKind int

const (
	// PageCourseIndex is the single index file at the course root
	PageCourseIndex PageKind = iota
	// PageSectionIndex is a section directory's index file (nested layout)
	PageSectionIndex
	// PageSubsection is one subsection file (nested layout)
	PageSubsection
	// PageFlashcards is a section's flashcards file (nested layout)
	PageFlashcards
	// PageSectionFlat is a whole section as a single file (flat layout)
	PageSectionFlat
)

// Page pairs a kind with its position in the hierarchy. Section is nil only
// for the course index; Sub is set only for subsection pages. Pages are
// derived on the fly during planning, never stored on the model.
type Page struct {
	Kind    PageKind
	Section *course.Section
	Sub     *course.Subsection
}

// numericLabel returns the page's label as it appears in titles: "NN.00" for
// a section index, "NN.MM" for a subsection, "NN.99" for flashcards, "NN" for
// a flat section, and "" for the course index.
func (p Page) numericLabel() string {
	switch p.Kind {
	case PageSectionIndex:
		return course.CompositeLabel(p.Section.Index, course.IndexOrdinal)
	case PageSubsection:
		return p.Section.CompositeLabel(*p.Sub)
	case PageFlashcards:
		return course.Label(p.Section.Index) + "." + course.FlashcardsLabel
	case PageSectionFlat:
		return p.Section.Label()
	default:
		return ""
	}
}

// displayTitle returns the page's display title without label or short-title
// prefix.
func (p Page) displayTitle(c *course.Course) string {
	switch p.Kind {
	case PageCourseIndex:
		return c.Title
	case PageFlashcards:
		return p.Section.Title + " Flashcards"
	case PageSubsection:
		return p.Sub.Title
	default:
		return p.Section.Title
	}
}

// FrontMatterTitle composes the namespaced title stored in front matter:
// short title, numeric label (absent on the course index), and display title,
// joined by " - ". A course without a short title drops the prefix.
func (p Page) FrontMatterTitle(c *course.Course) string {
	title := p.displayTitle(c)
	if label := p.numericLabel(); label != "" {
		title = label + " - " + title
	}
	if c.ShortTitle != "" {
		title = c.ShortTitle + " - " + title
	}
	return title
}

// Heading composes the level-1 heading: numeric label and display title, no
// short-title prefix.
func (p Page) Heading(c *course.Course) string {
	if label := p.numericLabel(); label != "" {
		return label + " - " + p.displayTitle(c)
	}
	return p.displayTitle(c)
}
