// Package cmd provides command-line interface commands for docflow
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	gctx "github.com/yeisme/docflow/pkg/context"
	"github.com/yeisme/docflow/pkg/utils/log"
	"github.com/yeisme/docflow/pkg/utils/version"
)

var (
	docflowCtx *gctx.DocflowContext

	// Global flags
	globalFlags = gctx.GlobalFlags{}
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "docflow",
	Short: "docflow generates approximate documentation for JavaScript sources",
	Long: `docflow scans a directory of JavaScript files, detects classes, object-literal
modules, methods and cross-module references with line-anchored patterns, and
writes a JSON summary. It is a best-effort pattern matcher, not a parser.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		if globalFlags.VersionEnable {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetShortVersionString())
			return
		}
		if len(args) == 0 {
			_ = cmd.Help()
		}
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		ctx, err := gctx.InitDocflowContext(cmd.Context(), globalFlags)
		if err != nil {
			return err
		}
		docflowCtx = ctx

		log.Debug().Msgf("Execute Command: %s %s", "docflow", strings.Join(os.Args[1:], " "))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// 任何错误都会被记录并以状态码 1 退出
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("docflow failed")
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&globalFlags.ConfigPath, "config", "c", "", "config file")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.Debug, "debug", false, "enable debug mode (prints additional information)")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "V", false, "enable verbose output (prints more detailed information)")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.Quiet, "quiet", false, "suppress all log output")
	rootCmd.Flags().BoolVarP(&globalFlags.VersionEnable, "version", "v", false, "show version information")
}
