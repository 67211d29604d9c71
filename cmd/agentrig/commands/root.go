// Package commands provides the CLI commands for agentrig.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentrig/agentrig/internal/cliconf"
	"github.com/agentrig/agentrig/internal/logging"
)

var (
	// Version information set at build time
	Version   = "0.1.0"
	BuildTime = "dev"
)

// Global flags
var (
	logLevel   string
	prettyLogs bool
)

// cliCfg is the optional on-disk CLI configuration, loaded before any
// command runs. Flags override it.
var cliCfg = &cliconf.Config{}

var rootCmd = &cobra.Command{
	Use:   "agentrig",
	Short: "agentrig - settings validation for automated agent runs",
	Long: `agentrig validates the settings document that controls an automated
coding agent: model selection, environment variables, tool permissions,
and lifecycle hooks.

Run 'agentrig validate' to check inline JSON or a settings file, or
'agentrig check' to validate settings already resident on disk.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		cfg, err := cliconf.Load(cwd)
		if err != nil {
			return err
		}
		cliCfg = cfg

		level := cfg.LogLevel
		if cmd.Flags().Changed("log-level") || level == "" {
			level = logLevel
		}
		pretty := cfg.Pretty || prettyLogs

		logging.Init(logging.Config{
			Level:  logging.ParseLevel(level),
			Pretty: pretty,
		})
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand, show help
		cmd.Help()
	},
}

func init() {
	// Global flags available to all commands
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "INFO", "Log level (DEBUG|INFO|WARN|ERROR)")
	rootCmd.PersistentFlags().BoolVar(&prettyLogs, "pretty", false, "Human-readable log output")

	// Version template
	rootCmd.SetVersionTemplate(fmt.Sprintf("agentrig %s (%s)\n", Version, BuildTime))

	// Add subcommands
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(argsCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
