package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentrig/agentrig/internal/settings"
)

var checkStrict bool

var checkCmd = &cobra.Command{
	Use:   "check <path>",
	Short: "Validate settings already resident on disk",
	Long: `Check validates an existing settings file. JSON syntax errors are always
fatal. Schema violations are fatal with --strict; otherwise they are logged
as warnings and the file is accepted as-is for backward compatibility.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		strict := checkStrict
		if !cmd.Flags().Changed("strict") {
			strict = cliCfg.Strict
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading settings file %s: %w", path, err)
		}

		_, typed, err := settings.ValidateExisting(data, path, strict)
		if err != nil {
			return err
		}

		if typed == nil {
			fmt.Println("settings accepted with warnings (lenient mode)")
			return nil
		}
		fmt.Println("settings valid")
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "Treat schema violations as fatal")
}
