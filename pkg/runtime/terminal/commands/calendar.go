package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/de-tools/work-pulse/pkg/runtime/terminal/export"
	"github.com/de-tools/work-pulse/pkg/services/calendar"
)

type CalendarCmd struct {
	addHolidays    []string
	removeHolidays []string
	toggleWeekends []int
	dailyTarget    float64
	bootstrap      Bootstrap
	reporter       *export.Reporter
}

// NewCalendarCmd shows (and optionally edits) the working calendar for the
// current month.
func NewCalendarCmd(bootstrap Bootstrap, reporter *export.Reporter) *cobra.Command {
	cc := &CalendarCmd{bootstrap: bootstrap, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the working calendar for this month",
		RunE:  cc.run,
	}

	cmd.Flags().StringSliceVar(&cc.addHolidays, "add-holiday", nil, "Holiday date to add (YYYY-MM-DD, repeatable)")
	cmd.Flags().StringSliceVar(&cc.removeHolidays, "remove-holiday", nil, "Holiday date to remove (repeatable)")
	cmd.Flags().IntSliceVar(&cc.toggleWeekends, "toggle-weekend", nil, "Weekday index to toggle as weekend (0 = Sunday)")
	cmd.Flags().Float64Var(&cc.dailyTarget, "daily-target", -1, "Daily target hours")

	return cmd
}

func (cc *CalendarCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	env, err := cc.bootstrap(ctx)
	if err != nil {
		return err
	}
	defer env.Close()

	cfg := env.Controller.CalendarConfig()
	changed := false

	for _, date := range cc.addHolidays {
		cfg, err = calendar.AddHoliday(cfg, date)
		if err != nil {
			return err
		}
		changed = true
	}
	for _, date := range cc.removeHolidays {
		cfg = calendar.RemoveHoliday(cfg, date)
		changed = true
	}
	for _, day := range cc.toggleWeekends {
		cfg = calendar.ToggleWeekend(cfg, day)
		changed = true
	}
	if cc.dailyTarget >= 0 {
		cfg.DailyTargetHours = cc.dailyTarget
		changed = true
	}

	if changed {
		if err := env.Controller.SetCalendarConfig(ctx, cfg); err != nil {
			return err
		}
	}

	return cc.reporter.HandleCalendar(export.CalendarView{
		Month:  time.Now().Format("January 2006"),
		Config: env.Controller.CalendarConfig(),
		Result: env.Controller.Calendar(),
	})
}
