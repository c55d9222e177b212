package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/clipvault/clipvault/internal/engine"
	"github.com/clipvault/clipvault/internal/pasteboard"
)

// newRunCmd creates the run command, the daemon entry point.
func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the clipboard capture daemon",
		Long: `Run the clipboard capture daemon, which polls the system clipboard,
records new content into the history database, and keeps running until
interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				logger.Error("failed to open history store", zap.Error(err))
				return err
			}
			defer store.Close()

			source := pasteboard.New(logger)
			eng := engine.New(cfg, source, store, logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			eng.Start(ctx)
			<-ctx.Done()
			eng.Stop()

			return nil
		},
	}
}
