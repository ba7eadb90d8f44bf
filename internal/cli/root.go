package cli

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xaenox/meet-bot/internal/bot"
	"github.com/xaenox/meet-bot/pkg/config"
)

// App holds what the commands need beyond the parsed flags.
type App struct {
	// NewBot wires a bot and its collaborators from the loaded configuration.
	NewBot func(cfg *config.Config, logger *zap.Logger) (*bot.Bot, error)
	// Now defaults to time.Now.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "meetbot" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "meetbot",
		Short:         "Open meeting links on a weekly timetable",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "Path to the timetable config")

	load := func() (*config.Config, error) {
		return config.LoadConfig(configPath)
	}

	root.AddCommand(
		newStartCmd(app, load),
		newTodayCmd(app, load),
		newCheckCmd(app, load),
	)

	return root
}
