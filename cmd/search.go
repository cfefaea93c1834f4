package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/yeisme/docflow/pkg/project"
)

var (
	searchOptions project.SearchOptions

	searchCmd = &cobra.Command{
		Use:   "search <query> [dir]",
		Short: "Fuzzy search functions by qualified name",
		Long: strings.TrimSpace(`
Analyze the directory and fuzzy-match the query against qualified function
names such as TaskManager.addTask. Results are ranked by match distance.

Examples:
  docflow search addtask
  docflow search render src -n 5
  docflow search task --format json
  docflow search -i`),
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
				args = args[1:]
			}
			if query == "" && !searchOptions.Interactive {
				return cmd.Help()
			}
			return project.ExecuteSearchCommand(docflowCtx, searchOptions, query, args, cmd.OutOrStdout())
		},
		Aliases: []string{"s", "find"},
	}
)

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().BoolVarP(&searchOptions.Interactive, "interactive", "i", false, "pick a result with an interactive fuzzy finder")
	searchCmd.Flags().IntVarP(&searchOptions.Limit, "limit", "n", 20, "maximum number of results (0 for all)")
	searchCmd.Flags().StringVarP(&searchOptions.Format, "format", "f", "", "output format (json, yaml)")
	addScanFlags(searchCmd, &searchOptions.ScanOptions, true)
}
