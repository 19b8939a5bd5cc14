package course

import "fmt"

// Outline is the raw, unvalidated input to Build. It can come from any source:
// interactive prompts, a parsed outline file, or test code. Titles are taken
// as entered; normalization happens during the build.
type Outline struct {
	Number     *int             `yaml:"number"`
	Title      string           `yaml:"title"`
	ShortTitle string           `yaml:"short_title"`
	Sections   []SectionOutline `yaml:"sections"`
}

// SectionOutline is one section of an Outline.
type SectionOutline struct {
	Title       string   `yaml:"title"`
	Subsections []string `yaml:"subsections"`
}

// Build validates an outline and produces the immutable document model.
// Section and subsection ordinals are assigned densely from outline order and
// checked against the reserved index and flashcards positions, so a violation
// surfaces here, before any rendering starts. A course with zero sections is
// legal and yields a model that generates only the course index page.
func Build(o Outline) (*Course, error) {
	if o.Title == "" {
		return nil, fmt.Errorf("course: %w", ErrEmptyTitle)
	}
	if o.Number != nil {
		if *o.Number < 0 {
			return nil, fmt.Errorf("course %q: number %d must not be negative", o.Title, *o.Number)
		}
		if *o.Number == 0 {
			return nil, fmt.Errorf("course %q: %w: number 0 (the %s directory prefix is reserved for index pages; leave the number unset instead)",
				o.Title, ErrReservedOrdinal, IndexLabel)
		}
	}

	c := &Course{
		Number:     o.Number,
		Title:      TitleCase(o.Title),
		ShortTitle: o.ShortTitle,
		Slug:       Slugify(o.Title),
	}

	for i, so := range o.Sections {
		idx := i + 1
		if err := ValidateOrdinal(idx, fmt.Sprintf("section %q", so.Title)); err != nil {
			return nil, err
		}
		sec := Section{
			Index: idx,
			Title: TitleCase(so.Title),
			Slug:  Slugify(so.Title),
		}
		for j, sub := range so.Subsections {
			subIdx := j + 1
			if err := ValidateOrdinal(subIdx, fmt.Sprintf("subsection %q of section %q", sub, so.Title)); err != nil {
				return nil, err
			}
			sec.Subsections = append(sec.Subsections, Subsection{
				Index: subIdx,
				Title: TitleCase(sub),
				Slug:  Slugify(sub),
			})
		}
		c.Sections = append(c.Sections, sec)
	}

	return c, nil
}

// Validate re-checks an already constructed model against the density and
// reserved-ordinal invariants. Build output always passes; this exists for
// models assembled directly in code.
func Validate(c *Course) error {
	if c.Title == "" {
		return fmt.Errorf("course: %w", ErrEmptyTitle)
	}
	for i, sec := range c.Sections {
		if sec.Index != i+1 {
			return fmt.Errorf("section %q: %w: got ordinal %d at position %d",
				sec.Title, ErrNonDenseOrdinal, sec.Index, i+1)
		}
		if err := ValidateOrdinal(sec.Index, fmt.Sprintf("section %q", sec.Title)); err != nil {
			return err
		}
		for j, sub := range sec.Subsections {
			if sub.Index != j+1 {
				return fmt.Errorf("subsection %q: %w: got ordinal %d at position %d",
					sub.Title, ErrNonDenseOrdinal, sub.Index, j+1)
			}
			if err := ValidateOrdinal(sub.Index, fmt.Sprintf("subsection %q", sub.Title)); err != nil {
				return err
			}
		}
	}
	return nil
}
