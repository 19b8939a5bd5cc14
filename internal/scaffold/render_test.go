package scaffold

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestRenderSubsectionGolden(t *testing.T) {
	c := fixtureCourse(t)
	sec := &c.Sections[0]
	sub := &sec.Subsections[2]

	got := renderPage(c, Page{Kind: PageSubsection, Section: sec, Sub: sub}, Options{})
	want := `---
title: "BDSA 3134 - 01.03 - More Info On This Topic"
tags: []
dates: []
---
# 01.03 - More Info On This Topic
## TOC
- Example Course
- [[00-course_overview|01.00 - Course Overview]]
	- [[01-introduction|01.01 - Introduction]]
	- [[02-foundations_of_this_topic|01.02 - Foundations Of This Topic]]
	- [[03-more_info_on_this_topic|01.03 - More Info On This Topic]]
	- [[99-flashcards_course_overview|01.99 - Course Overview Flashcards]]

---
## Key Points/Concepts

## Lecture
`
	if got != want {
		t.Errorf("rendered subsection page:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderCourseIndexGolden(t *testing.T) {
	c := fixtureCourse(t)

	got := renderPage(c, Page{Kind: PageCourseIndex}, Options{})
	want := `---
title: "BDSA 3134 - Example Course"
tags: []
---
# Example Course
## TOC
- Example Course
- [[00-course_overview|01.00 - Course Overview]]
	- [[01-introduction|01.01 - Introduction]]
	- [[02-foundations_of_this_topic|01.02 - Foundations Of This Topic]]
	- [[03-more_info_on_this_topic|01.03 - More Info On This Topic]]
	- [[99-flashcards_course_overview|01.99 - Course Overview Flashcards]]

---
## Misc.
`
	if got != want {
		t.Errorf("rendered course index:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderFlashcardsBody(t *testing.T) {
	c := fixtureCourse(t)
	sec := &c.Sections[0]

	got := renderPage(c, Page{Kind: PageFlashcards, Section: sec}, Options{})

	if !strings.Contains(got, `title: "BDSA 3134 - 01.99 - Course Overview Flashcards"`) {
		t.Errorf("flashcards front-matter title missing, got:\n%s", got)
	}
	for _, heading := range []string{"## Introduction", "## Foundations Of This Topic", "## More Info On This Topic"} {
		if !strings.Contains(got, heading+"\n") {
			t.Errorf("flashcards page missing heading %q", heading)
		}
	}
	if strings.Contains(got, "## Key Points/Concepts") {
		t.Error("flashcards page must not carry the default content scaffold")
	}
}

func TestRenderBodyOverride(t *testing.T) {
	c := fixtureCourse(t)
	sec := &c.Sections[0]
	sub := &sec.Subsections[0]

	override := "## Notes\n\n## Questions"
	got := renderPage(c, Page{Kind: PageSubsection, Section: sec, Sub: sub}, Options{BodyOverride: override})

	if !strings.Contains(got, override+"\n") {
		t.Errorf("override body not substituted verbatim, got:\n%s", got)
	}
	if strings.Contains(got, "## Lecture") {
		t.Error("default scaffold leaked through the override")
	}
}

// TestFrontMatterRoundTrip re-parses the YAML front matter of a rendered page
// and recovers the short title, numeric label, and display title.
func TestFrontMatterRoundTrip(t *testing.T) {
	c := fixtureCourse(t)
	sec := &c.Sections[0]
	sub := &sec.Subsections[2]

	content := renderPage(c, Page{Kind: PageSubsection, Section: sec, Sub: sub}, Options{})

	parts := strings.SplitN(content, "---\n", 3)
	if len(parts) < 3 || parts[0] != "" {
		t.Fatalf("no front-matter block in:\n%s", content)
	}

	var fm struct {
		Title string   `yaml:"title"`
		Tags  []string `yaml:"tags"`
		Dates []string `yaml:"dates"`
	}
	if err := yaml.Unmarshal([]byte(parts[1]), &fm); err != nil {
		t.Fatalf("front matter is not valid YAML: %v", err)
	}

	fields := strings.SplitN(fm.Title, " - ", 3)
	if len(fields) != 3 {
		t.Fatalf("front-matter title %q does not split into three fields", fm.Title)
	}
	if fields[0] != "BDSA 3134" || fields[1] != "01.03" || fields[2] != "More Info On This Topic" {
		t.Errorf("round-tripped title fields = %v", fields)
	}
	if len(fm.Tags) != 0 || len(fm.Dates) != 0 {
		t.Errorf("placeholder lists not empty: tags=%v dates=%v", fm.Tags, fm.Dates)
	}
}
