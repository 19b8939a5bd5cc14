package scaffold

import (
	"path"

	"github.com/deslni01/markdown-course-setup/internal/course"
)

// File is one planned entry: a markdown file, or a directory when Dir is set
// (Content empty). Paths are slash-separated and relative to the course root
// directory.
type File struct {
	Path    string
	Content string
	Dir     bool
}

// reviewDirName holds per-subsection review material; the 100- prefix sorts
// it after every content file.
const reviewDirName = "100-review_files"

// Plan walks the model once and returns every directory and file to create
// for the whole course, in an order safe to apply top to bottom: each
// directory precedes its contents. Options are validated first, so a
// forbidden combination fails before any path is computed.
//
// Nested layout emits the course index at the root and one directory per
// section holding the section index, one file per subsection, and a
// flashcards file (omitted when the section has no subsections). Flat layout
// emits the course index plus exactly one file per section.
func Plan(c *course.Course, opts Options) ([]File, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if err := course.Validate(c); err != nil {
		return nil, err
	}

	var files []File
	files = append(files, File{
		Path:    course.IndexLabel + "-" + c.Slug + ".md",
		Content: renderPage(c, Page{Kind: PageCourseIndex}, opts),
	})

	for i := range c.Sections {
		sec := &c.Sections[i]
		if opts.Layout == LayoutFlat {
			files = append(files, File{
				Path:    sec.Label() + "-" + sec.Slug + ".md",
				Content: renderPage(c, Page{Kind: PageSectionFlat, Section: sec}, opts),
			})
			continue
		}
		files = append(files, sectionFiles(c, sec, opts)...)
	}

	return files, nil
}

// sectionFiles plans one section directory for the nested layout.
func sectionFiles(c *course.Course, sec *course.Section, opts Options) []File {
	dir := sec.Label() + "-" + sec.Slug

	files := []File{
		{Path: dir, Dir: true},
		{
			Path:    path.Join(dir, course.IndexLabel+"-"+sec.Slug+".md"),
			Content: renderPage(c, Page{Kind: PageSectionIndex, Section: sec}, opts),
		},
	}

	for j := range sec.Subsections {
		sub := &sec.Subsections[j]
		files = append(files, File{
			Path:    path.Join(dir, course.Label(sub.Index)+"-"+sub.Slug+".md"),
			Content: renderPage(c, Page{Kind: PageSubsection, Section: sec, Sub: sub}, opts),
		})
	}

	if len(sec.Subsections) > 0 {
		files = append(files, File{
			Path:    path.Join(dir, course.FlashcardsLabel+"-flashcards_"+sec.Slug+".md"),
			Content: renderPage(c, Page{Kind: PageFlashcards, Section: sec}, opts),
		})
	}

	if opts.ReviewDirs {
		files = append(files, File{Path: path.Join(dir, reviewDirName), Dir: true})
		for _, sub := range sec.Subsections {
			files = append(files, File{
				Path: path.Join(dir, reviewDirName, course.Label(sub.Index)+"-"+sub.Slug),
				Dir:  true,
			})
		}
	}

	return files
}
