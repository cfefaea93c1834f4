package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yeisme/docflow/pkg/configs"
	"github.com/yeisme/docflow/pkg/utils/version"
)

var (
	// Version command flags
	versionDetailed bool
	versionJSON     bool
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `
Display version information for docflow.

Examples:
  # Show short version info (default)
  docflow version

  # Show detailed version info
  docflow version --detailed

  # Show version info in JSON format
  docflow version --json

Notes:
  - The release URL is printed only for semantic versions such as v1.2.3.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		switch {
		case versionJSON:
			return configs.OutputData(version.GetVersion(), configs.FormatJSON, out, false)
		case versionDetailed:
			fmt.Fprintln(out, version.GetVersionString())
		default:
			fmt.Fprintln(out, version.GetShortVersionString())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVarP(&versionDetailed, "detailed", "d", false, "show detailed version information")
	versionCmd.Flags().BoolVarP(&versionJSON, "json", "j", false, "output version information in JSON format")
}
