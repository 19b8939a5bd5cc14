// Package writer persists a scaffold plan through a billy filesystem, so the
// CLI writes to disk while tests write to memory.
package writer

import (
	"fmt"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/deslni01/markdown-course-setup/internal/scaffold"
)

// Writer applies scaffold plans to a filesystem.
type Writer struct {
	fs billy.Filesystem
}

// New returns a Writer over the given filesystem.
func New(fs billy.Filesystem) *Writer {
	return &Writer{fs: fs}
}

// WritePlan creates every entry of the plan under root. The plan orders
// directories before their contents, so entries apply top to bottom. Parent
// directories of file entries are created too; flat-layout plans carry no
// directory entries of their own.
func (w *Writer) WritePlan(root string, files []scaffold.File) error {
	if err := w.fs.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("creating course root %s: %w", root, err)
	}

	for _, f := range files {
		target := path.Join(root, f.Path)
		if f.Dir {
			if err := w.fs.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("creating directory %s: %w", target, err)
			}
			continue
		}
		if dir := path.Dir(target); dir != "." {
			if err := w.fs.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("creating directory %s: %w", dir, err)
			}
		}
		if err := util.WriteFile(w.fs, target, []byte(f.Content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", target, err)
		}
	}
	return nil
}
