package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/yeisme/docflow/pkg/project"
)

var (
	watchOptions project.WatchOptions

	watchCmd = &cobra.Command{
		Use:   "watch [dir]",
		Short: "Regenerate the report whenever a source file changes",
		Long: strings.TrimSpace(`
Run analyze once, then watch the scan directory and run it again after a
debounce whenever a file the scanner would pick up is created, changed or
removed. Every run regenerates the whole report.

Examples:
  docflow watch
  docflow watch src --debounce 1s --table`),
		Args:    cobra.MaximumNArgs(1),
		Aliases: []string{"w"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return project.ExecuteWatchCommand(docflowCtx, watchOptions, args, cmd.OutOrStdout())
		},
	}
)

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchOptions.Debounce, "debounce", 0, "debounce interval (defaults to watch.debounce)")
	watchCmd.Flags().StringVarP(&watchOptions.Output, "output", "o", "", "report path; defaults to analyze.output")
	watchCmd.Flags().BoolVarP(&watchOptions.Table, "table", "t", false, "print a summary table after each run")
	addScanFlags(watchCmd, &watchOptions.ScanOptions, true)
}
