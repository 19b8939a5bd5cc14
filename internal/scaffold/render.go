package scaffold

import (
	"strings"

	"github.com/deslni01/markdown-course-setup/internal/course"
)

// Default body scaffolds. Content pages get the note-taking skeleton; index
// pages get a single catch-all heading.
const (
	defaultBody = "## Key Points/Concepts\n\n## Lecture"
	indexBody   = "## Misc."
)

// Render assembles one complete file body: YAML front matter, the level-1
// heading, the TOC section, a horizontal rule, and the body. withDates
// controls the dates placeholder, which the course index omits. Pure and
// deterministic, so golden comparisons are stable.
func Render(fmTitle, heading string, tocLines []string, body string, withDates bool) string {
	var b strings.Builder

	b.WriteString("---\n")
	b.WriteString("title: \"" + fmTitle + "\"\n")
	b.WriteString("tags: []\n")
	if withDates {
		b.WriteString("dates: []\n")
	}
	b.WriteString("---\n")
	b.WriteString("# " + heading + "\n")
	b.WriteString("## TOC\n")
	for _, line := range tocLines {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n---\n")
	b.WriteString(body + "\n")

	return b.String()
}

// renderPage renders one page of the course, picking the body and date
// placeholder for its kind.
func renderPage(c *course.Course, p Page, opts Options) string {
	toc := BuildTOC(c, p, opts)

	var body string
	withDates := true
	switch p.Kind {
	case PageCourseIndex:
		body = indexBody
		withDates = false
	case PageSectionIndex:
		body = indexBody
	case PageFlashcards:
		body = flashcardsBody(p.Section)
	default: // PageSubsection, PageSectionFlat
		body = defaultBody
		if opts.BodyOverride != "" {
			body = opts.BodyOverride
		}
	}

	return Render(p.FrontMatterTitle(c), p.Heading(c), toc, body, withDates)
}

// flashcardsBody emits one level-2 heading per subsection, leaving room under
// each for user-authored review content.
func flashcardsBody(sec *course.Section) string {
	headings := make([]string, len(sec.Subsections))
	for i, sub := range sec.Subsections {
		headings[i] = "## " + sub.Title
	}
	return strings.Join(headings, "\n\n\n")
}
