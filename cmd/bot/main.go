package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/xaenox/meet-bot/internal/bot"
	"github.com/xaenox/meet-bot/internal/cli"
	"github.com/xaenox/meet-bot/internal/launcher"
	"github.com/xaenox/meet-bot/internal/notify"
	"github.com/xaenox/meet-bot/internal/storage"
	"github.com/xaenox/meet-bot/pkg/config"
)

func main() {
	app := &cli.App{NewBot: newBot}

	if err := cli.NewRootCmd(app).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newBot(cfg *config.Config, logger *zap.Logger) (*bot.Bot, error) {
	// State only lives for the current day, so memory is all we need
	store := storage.NewMemoryStorage()

	// Initialize launcher
	var l launcher.Launcher
	if cfg.Launcher.DryRun {
		logger.Info("Dry run: meeting links will only be logged")
		l = launcher.NewDryRunLauncher(logger)
	} else {
		l = launcher.NewBrowserLauncher(logger)
	}

	opts := []bot.Option{bot.WithInterval(cfg.Bot.PollInterval)}

	// Initialize notifier
	if cfg.Telegram.Token != "" {
		n, err := notify.NewTelegramNotifier(cfg.Telegram.Token, cfg.Telegram.ChatID, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Telegram notifications enabled", zap.Int64("chat_id", cfg.Telegram.ChatID))
		opts = append(opts, bot.WithNotifier(n))
	}

	return bot.New(cfg.Timetable(), store, l, logger, opts...), nil
}
