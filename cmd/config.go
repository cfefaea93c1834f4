package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yeisme/docflow/pkg/configs"
	"github.com/yeisme/docflow/pkg/utils/log"
)

var (
	noColor bool

	configCmd = &cobra.Command{
		Use:     "config",
		Short:   "Manage docflow configuration",
		Long:    `docflow config allows you to view and manage your docflow configuration settings.`,
		Aliases: []string{"c"},
	}

	configValidateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Validate docflow configuration",
		Long:  `docflow config validate checks the configuration file, .env and DOCFLOW_* environment variables.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			// LoadConfig 已在 PersistentPreRunE 中完成解析，这里再次校验合并后的结果
			if err := docflowCtx.Config.Validate(); err != nil {
				return err
			}

			fileUsed := docflowCtx.Viper.ConfigFileUsed()
			if fileUsed == "" {
				log.Info().Msg("No config file found, using defaults")
				return nil
			}
			log.Info().Msgf("Config file used: %s", fileUsed)
			return nil
		},
		Aliases: []string{"check", "verify"},
	}

	configListCmd = &cobra.Command{
		Use:   "list [section]",
		Short: "List docflow configuration",
		Long: `docflow config list displays the current configuration settings.

You can specify a section to display only that part of the configuration:
  - app: Application settings
  - log: Logging settings
  - scan: Directory scanner settings
  - analyze: Report output and dependency whitelist
  - watch: Watch mode settings

Examples:
  docflow config list                    # Show all configuration (viper raw data)
  docflow config list --all              # Show all configuration with defaults
  docflow config list analyze            # Show only analyze settings
  docflow config list --format json      # Output in JSON format
  docflow config list scan --all --toml  # Show scan config with defaults in TOML`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			section := ""
			if len(args) > 0 {
				section = args[0]
			}

			format := configs.GetOutputFormatFromFlags(cmd)
			showAll, _ := cmd.Flags().GetBool("all")

			data, err := configs.GetConfigSection(docflowCtx.Viper, section, showAll)
			if err != nil {
				return fmt.Errorf("get config section: %w", err)
			}

			return configs.OutputData(data, format, cmd.OutOrStdout(), !noColor)
		},
		Aliases: []string{"ls"},
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Initialize docflow configuration",
		Long: `docflow config init creates a new configuration file with default settings.

Examples:
  docflow config init                          # Create .docflow.yaml in current directory
  docflow config init --path configs/docflow.toml --format toml
  docflow config init --format json            # Create .docflow.json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			format, err := configs.ParseOutputFormat(configInitFormat)
			if err != nil {
				return err
			}

			path := configInitPath
			if path == "" {
				path = configs.DefaultConfigFile(format)
			}

			if err := configs.CreateDefaultConfig(path, format); err != nil {
				return err
			}

			log.Info().Msgf("Config file created successfully: %s", path)
			return nil
		},
		Args: cobra.NoArgs,
	}

	configInitPath   string
	configInitFormat string
)

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(
		configListCmd,
		configValidateCmd,
		configInitCmd,
	)

	// config list
	configListCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	configListCmd.Flags().StringP("format", "f", "", fmt.Sprintf("Output format (%s)", strings.Join(configs.ValidFormats(), ", ")))
	configListCmd.Flags().Bool("yaml", false, "Output in YAML format")
	configListCmd.Flags().Bool("json", false, "Output in JSON format")
	configListCmd.Flags().Bool("toml", false, "Output in TOML format")
	configListCmd.Flags().BoolP("all", "a", false, "Show complete configuration with defaults (processed struct)")

	// config init
	configInitCmd.Flags().StringVarP(&configInitPath, "path", "p", "", "Path to the config file")
	configInitCmd.Flags().StringVarP(&configInitFormat, "format", "f", "yaml", "Format of the config file (yaml, json, toml)")
}
