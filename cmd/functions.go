package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yeisme/docflow/pkg/project"
)

var (
	functionsOptions project.FunctionsOptions

	functionsCmd = &cobra.Command{
		Use:   "functions [dir]",
		Short: "Print every function definition with its line number",
		Long: strings.TrimSpace(`
Classify each line of every source file with an ordered list of matchers
(class_method, object_method, arrow_function, method) and print the full
document to stdout. Logs go to stderr so the output can be piped.

Examples:
  docflow functions
  docflow functions src --color
  docflow functions -f yaml`),
		Args:    cobra.MaximumNArgs(1),
		Aliases: []string{"fn", "funcs"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return project.ExecuteFunctionsCommand(docflowCtx, functionsOptions, args, cmd.OutOrStdout())
		},
	}
)

func init() {
	rootCmd.AddCommand(functionsCmd)

	functionsCmd.Flags().StringVarP(&functionsOptions.Format, "format", "f", project.FormatJSON, fmt.Sprintf("output format (%s)", strings.Join(project.FunctionsFormats(), ", ")))
	functionsCmd.Flags().BoolVar(&functionsOptions.Color, "color", false, "colorize JSON output")
	addScanFlags(functionsCmd, &functionsOptions.ScanOptions, false)
}
