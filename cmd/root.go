package cmd

import (
	"fmt"
	"os"

	"github.com/deslni01/markdown-course-setup/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coursemd",
	Short: "Generate cross-linked markdown note trees for a course",
	Long: `coursemd turns a course outline - a titled set of ordered sections, each
optionally holding ordered subsections - into a tree of markdown note files
with YAML front matter, numbered filenames, and auto-generated tables of
contents linking every page to its place in the hierarchy.`,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("coursemd %s\n", version.String()))
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
