package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/agentrig/agentrig/internal/watcher"
)

var watchStrict bool

var watchCmd = &cobra.Command{
	Use:   "watch <path>",
	Short: "Revalidate a settings file whenever it changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		strict := watchStrict
		if !cmd.Flags().Changed("strict") {
			strict = cliCfg.Strict
		}

		w, err := watcher.New(args[0], strict)
		if err != nil {
			return err
		}
		w.Start()
		defer w.Stop()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		return nil
	},
}

func init() {
	watchCmd.Flags().BoolVar(&watchStrict, "strict", false, "Treat schema violations as fatal")
}
