package scaffold

import "github.com/deslni01/markdown-course-setup/internal/course"

// The TOC builder produces the link list embedded in every page. Links use
// the wiki form [[<target file stem>|<label>]] so note tools resolve them by
// filename regardless of directory.

// BuildTOC returns the TOC lines for one page, scoped by the page's position
// in the hierarchy and the layout and depth options:
//
//   - course index: every section link with all of its subsection and
//     flashcards links expanded beneath it
//   - any page of section S: every section link, but only S expanded
//   - flat layout: one link per section, nothing to expand
//   - flat layout with index-only depth: section pages get a single link to
//     the course index; the course index itself keeps its full section list
//
// Full TOCs open with the course title as an unlinked bullet. Ordering is
// strictly model order; a section without subsections simply contributes no
// expansion and no flashcards link.
func BuildTOC(c *course.Course, p Page, opts Options) []string {
	opts = opts.withDefaults()

	if opts.TOCDepth == TOCIndexOnly && p.Kind != PageCourseIndex {
		return []string{"- " + wikiLink(course.IndexLabel+"-"+c.Slug, courseLabel(c, opts))}
	}

	lines := []string{"- " + c.Title}

	for i := range c.Sections {
		sec := &c.Sections[i]

		if opts.Layout == LayoutFlat {
			target := sec.Label() + "-" + sec.Slug
			lines = append(lines, "- "+wikiLink(target, entryLabel(c, sec.Label(), sec.Title, opts)))
			continue
		}

		target := course.IndexLabel + "-" + sec.Slug
		label := course.CompositeLabel(sec.Index, course.IndexOrdinal)
		lines = append(lines, "- "+wikiLink(target, entryLabel(c, label, sec.Title, opts)))

		// The course index expands everything; other pages expand only
		// their own section.
		if p.Kind != PageCourseIndex && p.Section.Index != sec.Index {
			continue
		}
		lines = append(lines, sectionExpansion(c, sec, opts)...)
	}

	return lines
}

// sectionExpansion returns the indented subsection and flashcards lines for
// one section. Empty when the section has no subsections.
func sectionExpansion(c *course.Course, sec *course.Section, opts Options) []string {
	if len(sec.Subsections) == 0 {
		return nil
	}

	var lines []string
	for _, sub := range sec.Subsections {
		target := course.Label(sub.Index) + "-" + sub.Slug
		label := sec.CompositeLabel(sub)
		lines = append(lines, "\t- "+wikiLink(target, entryLabel(c, label, sub.Title, opts)))
	}

	target := course.FlashcardsLabel + "-flashcards_" + sec.Slug
	label := course.Label(sec.Index) + "." + course.FlashcardsLabel
	lines = append(lines, "\t- "+wikiLink(target, entryLabel(c, label, sec.Title+" Flashcards", opts)))

	return lines
}

// entryLabel formats a linked entry's display label, optionally namespaced
// with the course short title.
func entryLabel(c *course.Course, numLabel, title string, opts Options) string {
	label := numLabel + " - " + title
	if opts.PrefixTOCLabels && c.ShortTitle != "" {
		label = c.ShortTitle + " - " + label
	}
	return label
}

// courseLabel formats the course index link label used by index-only TOCs.
func courseLabel(c *course.Course, opts Options) string {
	if opts.PrefixTOCLabels && c.ShortTitle != "" {
		return c.ShortTitle + " - " + c.Title
	}
	return c.Title
}

func wikiLink(target, label string) string {
	return "[[" + target + "|" + label + "]]"
}
