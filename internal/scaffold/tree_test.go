package scaffold

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/deslni01/markdown-course-setup/internal/course"
)

func planPaths(files []File) []string {
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}
	return paths
}

func TestPlanNested(t *testing.T) {
	c := fixtureCourse(t)

	files, err := Plan(c, Options{})
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}

	want := []string{
		"00-example_course.md",
		"01-course_overview",
		"01-course_overview/00-course_overview.md",
		"01-course_overview/01-introduction.md",
		"01-course_overview/02-foundations_of_this_topic.md",
		"01-course_overview/03-more_info_on_this_topic.md",
		"01-course_overview/99-flashcards_course_overview.md",
	}
	got := planPaths(files)
	if len(got) != len(want) {
		t.Fatalf("plan paths = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("plan[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if !files[1].Dir {
		t.Error("section entry is not a directory")
	}

	// Scenario check: subsection 01.03 front-matter title.
	sub := files[5]
	if !strings.Contains(sub.Content, `title: "BDSA 3134 - 01.03 - More Info On This Topic"`) {
		t.Errorf("subsection 01.03 front-matter title wrong:\n%s", sub.Content)
	}
}

func TestPlanFlatIndexOnly(t *testing.T) {
	c := fixtureCourse(t)

	files, err := Plan(c, Options{Layout: LayoutFlat, TOCDepth: TOCIndexOnly})
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}

	want := []string{
		"00-example_course.md",
		"01-course_overview.md",
	}
	got := planPaths(files)
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("plan paths = %v, want %v", got, want)
	}
	for _, f := range files {
		if f.Dir {
			t.Errorf("flat plan contains directory %q", f.Path)
		}
		if strings.Contains(f.Path, "flashcards") {
			t.Errorf("flat plan contains flashcards file %q", f.Path)
		}
	}

	// The course index keeps its section links even under index-only depth.
	index := files[0]
	if !strings.Contains(index.Content, "[[01-course_overview|01 - Course Overview]]") {
		t.Errorf("course index lost its section links:\n%s", index.Content)
	}

	// The section TOC is a single link to the course index.
	section := files[1]
	tocStart := strings.Index(section.Content, "## TOC\n")
	tocEnd := strings.Index(section.Content, "\n\n---\n")
	if tocStart < 0 || tocEnd < 0 {
		t.Fatalf("section page has no TOC block:\n%s", section.Content)
	}
	toc := section.Content[tocStart+len("## TOC\n") : tocEnd]
	if toc != "- [[00-example_course|Example Course]]" {
		t.Errorf("index-only section TOC = %q", toc)
	}
}

func TestPlanConfigConflict(t *testing.T) {
	c := fixtureCourse(t)

	files, err := Plan(c, Options{Layout: LayoutNested, TOCDepth: TOCIndexOnly})
	if !errors.Is(err, ErrConfigConflict) {
		t.Fatalf("Plan error = %v, want ErrConfigConflict", err)
	}
	if files != nil {
		t.Errorf("conflicting plan produced %d entries, want none", len(files))
	}
}

func TestPlanZeroSections(t *testing.T) {
	c, err := course.Build(course.Outline{Title: "empty course", ShortTitle: "EC"})
	if err != nil {
		t.Fatalf("building course: %v", err)
	}

	files, err := Plan(c, Options{})
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}
	if len(files) != 1 || files[0].Path != "00-empty_course.md" {
		t.Fatalf("degenerate plan = %v, want just the course index", planPaths(files))
	}
}

func TestPlanOmitsFlashcardsWithoutSubsections(t *testing.T) {
	c := twoSectionCourse(t)

	files, err := Plan(c, Options{})
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}
	for _, f := range files {
		if strings.Contains(f.Path, "flashcards_first_section") {
			t.Errorf("section without subsections got flashcards file %q", f.Path)
		}
	}
}

func TestPlanReviewDirs(t *testing.T) {
	c := fixtureCourse(t)

	files, err := Plan(c, Options{ReviewDirs: true})
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}

	wantDirs := []string{
		"01-course_overview/100-review_files",
		"01-course_overview/100-review_files/01-introduction",
		"01-course_overview/100-review_files/02-foundations_of_this_topic",
		"01-course_overview/100-review_files/03-more_info_on_this_topic",
	}
	got := make(map[string]bool)
	for _, f := range files {
		if f.Dir {
			got[f.Path] = true
		}
	}
	for _, dir := range wantDirs {
		if !got[dir] {
			t.Errorf("plan missing review directory %q", dir)
		}
	}
}

// TestPlanOrdering covers the two ordering guarantees: each directory
// precedes its contents, and lexically sorting the paths preserves section
// and subsection presentation order.
func TestPlanOrdering(t *testing.T) {
	c := twoSectionCourse(t)

	files, err := Plan(c, Options{})
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}

	seen := make(map[string]bool)
	for _, f := range files {
		if f.Dir {
			seen[f.Path] = true
			continue
		}
		if dir := f.Path[:max(0, strings.LastIndex(f.Path, "/"))]; dir != "" && !seen[dir] {
			t.Errorf("file %q appears before its directory", f.Path)
		}
	}

	paths := planPaths(files)
	sorted := append([]string(nil), paths...)
	sort.Strings(sorted)
	for i := range paths {
		if paths[i] != sorted[i] {
			t.Errorf("plan order diverges from lexical order at %d: %q vs %q", i, paths[i], sorted[i])
		}
	}
}
