// Package scaffold turns a course document model into a concrete plan of
// markdown files and directories: the TOC builder, the page renderer, and the
// tree generator. Everything here is pure; writing the plan to disk is the
// caller's job.
package scaffold

import (
	"errors"
	"fmt"
)

// Layout selects how sections materialize on disk.
type Layout string

const (
	// LayoutNested gives each section a directory with an index file,
	// per-subsection files, and a flashcards file
	LayoutNested Layout = "nested"
	// LayoutFlat gives each section a single file and no subdirectories
	LayoutFlat Layout = "flat"
)

// TOCDepth selects how much of the hierarchy section TOCs include.
type TOCDepth string

const (
	// TOCFull lists every section, expanding the viewing page's own section
	TOCFull TOCDepth = "full"
	// TOCIndexOnly links only to the course index; legal in flat layout only
	TOCIndexOnly TOCDepth = "index-only"
)

// ErrConfigConflict marks a flag combination the generator cannot honor.
var ErrConfigConflict = errors.New("configuration conflict")

// Options configure one generation run.
type Options struct {
	Layout   Layout
	TOCDepth TOCDepth

	// BodyOverride replaces the default Key Points/Lecture scaffold on
	// content pages when non-empty. Substituted verbatim.
	BodyOverride string

	// PrefixTOCLabels prepends the course short title to every TOC entry
	// label. Off by default: only front-matter titles carry the prefix.
	PrefixTOCLabels bool

	// ReviewDirs adds a 100-review_files/ directory per section with one
	// subdirectory per subsection. Nested layout only.
	ReviewDirs bool
}

// withDefaults fills zero values so callers can leave common fields unset.
func (o Options) withDefaults() Options {
	if o.Layout == "" {
		o.Layout = LayoutNested
	}
	if o.TOCDepth == "" {
		o.TOCDepth = TOCFull
	}
	return o
}

// validate rejects unknown enum values and forbidden combinations before any
// path or page is computed.
func (o Options) validate() error {
	switch o.Layout {
	case LayoutNested, LayoutFlat:
	default:
		return fmt.Errorf("unknown layout: %q (valid options: nested, flat)", o.Layout)
	}
	switch o.TOCDepth {
	case TOCFull, TOCIndexOnly:
	default:
		return fmt.Errorf("unknown TOC depth: %q (valid options: full, index-only)", o.TOCDepth)
	}
	if o.TOCDepth == TOCIndexOnly && o.Layout != LayoutFlat {
		return fmt.Errorf("%w: index-only TOC depth requires flat layout", ErrConfigConflict)
	}
	return nil
}
