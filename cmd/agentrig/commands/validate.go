package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentrig/agentrig/internal/settings"
)

var validateCmd = &cobra.Command{
	Use:   "validate <settings>",
	Short: "Validate inline settings JSON or a settings file",
	Long: `Validate takes either a literal JSON document or the path to a settings
file, decides which it is, and validates it against the settings schema.

Examples:
  agentrig validate '{"model": "claude-sonnet-4"}'
  agentrig validate .claude/settings.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Resolve(args[0])
		if err != nil {
			return err
		}

		fmt.Println("settings valid")
		if s.Model != "" {
			fmt.Printf("  model: %s\n", s.Model)
		}
		if s.Permissions != nil {
			fmt.Printf("  permissions: %d allow, %d deny\n",
				len(s.Permissions.Allow), len(s.Permissions.Deny))
		}
		if s.Hooks != nil && len(s.Hooks.PreToolUse) > 0 {
			fmt.Printf("  hooks: %d PreToolUse matcher(s)\n", len(s.Hooks.PreToolUse))
		}
		if len(s.Extra) > 0 {
			fmt.Printf("  passthrough keys: %d\n", len(s.Extra))
		}
		return nil
	},
}
