package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/xaenox/meet-bot/internal/models"
	"github.com/xaenox/meet-bot/internal/schedule"
	"github.com/xaenox/meet-bot/pkg/config"
)

const timestampLayout = "2006-01-02 15:04"

func newCheckCmd(app *App, load func() (*config.Config, error)) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Show what the bot would do at a given time on a fresh day",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			now := app.now()
			if at != "" {
				now, err = time.ParseInLocation(timestampLayout, at, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --at %q: %w", at, err)
				}
			}

			decision, _ := schedule.Resolve(now, cfg.Timetable(), models.NewSession(now))
			fmt.Fprintln(cmd.OutOrStdout(), formatDecision(now, decision))
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Time to check (YYYY-MM-DD HH:MM), defaults to now")

	return cmd
}
