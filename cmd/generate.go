package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/deslni01/markdown-course-setup/internal/course"
	"github.com/deslni01/markdown-course-setup/internal/outline"
	"github.com/deslni01/markdown-course-setup/internal/scaffold"
	"github.com/deslni01/markdown-course-setup/internal/writer"
)

var (
	outDir        string
	outlineFile   string
	flatLayout    bool
	indexTOCOnly  bool
	extraBody     string
	reviewDirs    bool
	verifyEnabled bool
	dryRun        bool
)

var (
	// successStyle for the completion summary
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// pathStyle for planned paths in dry-run output
	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81"))
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the course note tree",
	Long: `Generate the course note tree from a YAML outline file, or from
interactive prompts when no outline is given.

By default every section becomes a directory holding an index page, one page
per subsection, and a flashcards page. With --flat each section is a single
page instead. --index-toc-only restricts section TOCs to a single link back to
the course index and is only valid together with --flat.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if indexTOCOnly && !flatLayout {
			return fmt.Errorf("--index-toc-only can only be used with --flat")
		}

		opts := scaffold.Options{
			Layout:       scaffold.LayoutNested,
			TOCDepth:     scaffold.TOCFull,
			BodyOverride: unescape(extraBody),
			ReviewDirs:   reviewDirs,
		}
		if flatLayout {
			opts.Layout = scaffold.LayoutFlat
		}
		if indexTOCOnly {
			opts.TOCDepth = scaffold.TOCIndexOnly
		}

		var (
			o   course.Outline
			err error
		)
		if outlineFile != "" {
			o, err = outline.LoadFile(outlineFile)
		} else {
			p := &outline.Prompter{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
			o, err = p.Run(!flatLayout)
		}
		if err != nil {
			return err
		}

		c, err := course.Build(o)
		if err != nil {
			return err
		}

		plan, err := scaffold.Plan(c, opts)
		if err != nil {
			return err
		}

		if verifyEnabled {
			if err := scaffold.VerifyPlan(plan); err != nil {
				return fmt.Errorf("verify: %w", err)
			}
		}

		root := filepath.ToSlash(filepath.Join(outDir, c.DirName()))
		if dryRun {
			for _, f := range plan {
				suffix := ""
				if f.Dir {
					suffix = "/"
				}
				fmt.Fprintln(cmd.OutOrStdout(), pathStyle.Render(root+"/"+f.Path+suffix))
			}
			return nil
		}

		w := writer.New(osfs.New(outDir))
		if err := w.WritePlan(c.DirName(), plan); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("Created %d entries under %s", len(plan), root)))
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&outDir, "out", "o", ".", "Parent directory for the course tree")
	generateCmd.Flags().StringVar(&outlineFile, "outline", "", "YAML outline file to build the course from")
	generateCmd.Flags().BoolVar(&flatLayout, "flat", false, "One file per section, no subdirectories")
	generateCmd.Flags().BoolVar(&indexTOCOnly, "index-toc-only", false, "Section TOCs link only to the course index (requires --flat)")
	generateCmd.Flags().StringVarP(&extraBody, "extra", "e", "", "Markdown body override for content pages")
	generateCmd.Flags().BoolVar(&reviewDirs, "review-dirs", false, "Create 100-review_files directories per section")
	generateCmd.Flags().BoolVar(&verifyEnabled, "verify", false, "Structurally verify every rendered page before writing")
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the plan without writing anything")

	rootCmd.AddCommand(generateCmd)
}

// unescape processes backslash escapes like \n and \t in a flag value, since
// the shell passes them through literally. Returns the input unchanged when
// it is not unquotable.
func unescape(s string) string {
	if s == "" {
		return s
	}
	u, err := strconv.Unquote(`"` + s + `"`)
	if err != nil {
		return s
	}
	return u
}
