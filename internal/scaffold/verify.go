package scaffold

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// VerifyPlan structurally checks every rendered page in a plan. It is an
// optional belt-and-suspenders pass for the --verify flag; Plan output is
// expected to always pass.
func VerifyPlan(files []File) error {
	for _, f := range files {
		if f.Dir || !strings.HasSuffix(f.Path, ".md") {
			continue
		}
		if err := VerifyPage(f.Content); err != nil {
			return fmt.Errorf("%s: %w", f.Path, err)
		}
	}
	return nil
}

// VerifyPage checks one rendered page for the persisted-format contract:
// a closed front-matter block carrying a title, then markdown whose first
// heading is the level-1 page heading, with a level-2 TOC heading and a
// horizontal rule after it.
func VerifyPage(content string) error {
	body, err := splitFrontMatter(content)
	if err != nil {
		return err
	}

	src := []byte(body)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var (
		sawH1   bool
		sawTOC  bool
		sawRule bool
	)
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			if !sawH1 {
				if node.Level != 1 {
					return ast.WalkStop, fmt.Errorf("first heading is level %d, want level 1", node.Level)
				}
				sawH1 = true
			} else if node.Level == 2 && string(node.Text(src)) == "TOC" {
				sawTOC = true
			}
		case *ast.ThematicBreak:
			sawRule = true
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return err
	}

	switch {
	case !sawH1:
		return fmt.Errorf("page has no level-1 heading")
	case !sawTOC:
		return fmt.Errorf("page has no TOC heading")
	case !sawRule:
		return fmt.Errorf("page has no horizontal rule after the TOC")
	}
	return nil
}

// splitFrontMatter strips a leading YAML front-matter block and returns the
// markdown after it.
func splitFrontMatter(content string) (string, error) {
	const fence = "---\n"
	if !strings.HasPrefix(content, fence) {
		return "", fmt.Errorf("page does not start with a front-matter fence")
	}
	rest := content[len(fence):]
	end := strings.Index(rest, "\n"+fence)
	if end < 0 {
		return "", fmt.Errorf("front-matter block is not closed")
	}
	block := rest[:end]
	if !strings.Contains(block, "title:") {
		return "", fmt.Errorf("front matter has no title")
	}
	return rest[end+1+len(fence):], nil
}
