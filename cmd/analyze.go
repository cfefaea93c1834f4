package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yeisme/docflow/pkg/project"
)

var (
	analyzeOptions project.AnalyzeOptions

	analyzeCmd = &cobra.Command{
		Use:   "analyze [dir]",
		Short: "Analyze module structure and write modules.json",
		Long: strings.TrimSpace(`
Scan a directory (not recursively) for source files, extract classes,
capitalized object-literal modules, their methods and references to
whitelisted globals, and write the report.

Examples:
  # Analyze ./scripts and write docs/codebase-flow/technical/modules.json
  docflow analyze

  # Analyze another directory and print the report to stdout
  docflow analyze src -o -

  # Override the dependency whitelist
  docflow analyze --dep Api --dep Store

  # Render a Markdown or HTML reference
  docflow analyze -f markdown --toc
  docflow analyze -f html -o docs/modules.html

  # Show a summary table and a module tree
  docflow analyze --table --tree

Notes:
  - The json report file is overwritten unconditionally.
  - Any unreadable file aborts the run unless --keep-going is set.`),
		Args:    cobra.MaximumNArgs(1),
		Aliases: []string{"a", "modules"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return project.ExecuteAnalyzeCommand(docflowCtx, analyzeOptions, args, cmd.OutOrStdout())
		},
	}
)

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeOptions.Output, "output", "o", "", "output path ('-' for stdout); json defaults to analyze.output")
	analyzeCmd.Flags().StringVarP(&analyzeOptions.Format, "format", "f", project.FormatJSON, fmt.Sprintf("output format (%s)", strings.Join(project.AnalyzeFormats(), ", ")))
	analyzeCmd.Flags().BoolVarP(&analyzeOptions.Table, "table", "t", false, "print a per-module summary table")
	analyzeCmd.Flags().BoolVar(&analyzeOptions.Tree, "tree", false, "print the module tree")
	analyzeCmd.Flags().BoolVar(&analyzeOptions.TOC, "toc", false, "include a table of contents in markdown/html output")
	addScanFlags(analyzeCmd, &analyzeOptions.ScanOptions, true)
}

// addScanFlags 注册扫描相关的公共标志
func addScanFlags(cmd *cobra.Command, opts *project.ScanOptions, withDeps bool) {
	cmd.Flags().StringSliceVarP(&opts.Exclude, "exclude", "e", nil, "additional file names to exclude")
	cmd.Flags().BoolVar(&opts.KeepGoing, "keep-going", false, "skip unreadable files instead of aborting")
	if withDeps {
		cmd.Flags().StringSliceVar(&opts.Dependencies, "dep", nil, "dependency whitelist (replaces analyze.dependencies)")
	}
}
