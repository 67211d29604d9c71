package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentrig/agentrig/internal/runner"
	"github.com/agentrig/agentrig/internal/settings"
)

var argsEnvFile string

var argsCmd = &cobra.Command{
	Use:   "args <settings>",
	Short: "Print the agent command line a settings document produces",
	Long: `Args validates the given settings (inline JSON or a file path) and prints
the command-line flags and environment the host process would launch the
agent with.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Resolve(args[0])
		if err != nil {
			return err
		}

		envFile := argsEnvFile
		if !cmd.Flags().Changed("env-file") && cliCfg.BaseEnvFile != "" {
			envFile = cliCfg.BaseEnvFile
		}

		inv, err := runner.New(s, envFile)
		if err != nil {
			return err
		}

		fmt.Printf("run: %s\n", inv.ID)
		for _, a := range inv.Args {
			fmt.Printf("arg: %s\n", a)
		}
		for _, e := range runner.EnvSlice(inv.Env) {
			fmt.Printf("env: %s\n", e)
		}
		return nil
	},
}

func init() {
	argsCmd.Flags().StringVar(&argsEnvFile, "env-file", "", "Dotenv file that seeds the agent environment")
}
