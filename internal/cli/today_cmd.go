package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/xaenox/meet-bot/internal/schedule"
	"github.com/xaenox/meet-bot/pkg/config"
)

const dateLayout = "2006-01-02"

func newTodayCmd(app *App, load func() (*config.Config, error)) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show the meetings planned for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			day := app.now()
			if date != "" {
				day, err = time.ParseInLocation(dateLayout, date, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --date %q: %w", date, err)
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), formatPlan(day, schedule.Plan(cfg.Timetable(), day)))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to show (YYYY-MM-DD), defaults to today")

	return cmd
}
