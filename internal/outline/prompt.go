package outline

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/deslni01/markdown-course-setup/internal/course"
)

var (
	// promptStyle for input prompts
	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81"))

	// hintStyle for muted usage hints
	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// warnStyle for retryable input errors
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// Prompter collects a course outline through line-oriented prompts. Reads
// come from In and prompts go to Out, so tests can drive it with buffers.
type Prompter struct {
	In  io.Reader
	Out io.Writer
}

// Run walks the user through the outline: course number (blank for none,
// retried until integer), course title (retried until non-empty), short
// title, then section titles. When withSubsections is set each section also
// collects subsection titles. A blank line or end of input closes the
// innermost list.
func (p *Prompter) Run(withSubsections bool) (course.Outline, error) {
	sc := bufio.NewScanner(p.In)
	var o course.Outline

	for {
		raw, ok := p.ask(sc, "Course number (blank if none): ")
		if !ok || raw == "" {
			break
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(p.Out, warnStyle.Render("Invalid course number, enter an integer or leave blank."))
			continue
		}
		o.Number = &n
		break
	}

	for {
		raw, ok := p.ask(sc, "Course title: ")
		if !ok {
			return o, fmt.Errorf("input ended before a course title was given")
		}
		if raw != "" {
			o.Title = raw
			break
		}
		fmt.Fprintln(p.Out, warnStyle.Render("Course title cannot be empty."))
	}

	o.ShortTitle, _ = p.ask(sc, "Short title (case preserved): ")

	fmt.Fprintln(p.Out, hintStyle.Render("Enter section titles; a blank line finishes."))
	for {
		title, ok := p.ask(sc, "Section title: ")
		if !ok || title == "" {
			break
		}
		sec := course.SectionOutline{Title: title}
		if withSubsections {
			for {
				sub, ok := p.ask(sc, "  Subsection title: ")
				if !ok || sub == "" {
					break
				}
				sec.Subsections = append(sec.Subsections, sub)
			}
		}
		o.Sections = append(o.Sections, sec)
	}

	return o, nil
}

// ask prints one prompt and reads one trimmed line. ok is false once input
// is exhausted.
func (p *Prompter) ask(sc *bufio.Scanner, prompt string) (string, bool) {
	fmt.Fprint(p.Out, promptStyle.Render(prompt))
	if !sc.Scan() {
		fmt.Fprintln(p.Out)
		return "", false
	}
	return strings.TrimSpace(sc.Text()), true
}
