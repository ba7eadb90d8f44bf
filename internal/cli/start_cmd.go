package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xaenox/meet-bot/pkg/config"
	"github.com/xaenox/meet-bot/pkg/logger"
)

func newStartCmd(app *App, load func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the bot and join meetings as they come up",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			log, err := logger.New(cfg.Log)
			if err != nil {
				return fmt.Errorf("failed to init logger: %w", err)
			}
			defer log.Sync() //nolint:errcheck

			log.Info("Configuration loaded successfully")

			b, err := app.NewBot(cfg, log)
			if err != nil {
				log.Error("Failed to create bot", zap.Error(err))
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			log.Info("Starting meeting bot...")
			return b.Start(ctx)
		},
	}
}
