package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/de-tools/work-pulse/pkg/runtime/terminal/export"
)

type CompensationCmd struct {
	loggedHours  float64
	baseSalary   float64
	hourlyRate   float64
	currency     string
	enableSalary bool
	bonuses      []string
	bootstrap    Bootstrap
	reporter     *export.Reporter
}

var bonusFlags = map[string]func(cfg *compensationFlags){
	"attendance":      func(c *compensationFlags) { c.attendance = true },
	"time-management": func(c *compensationFlags) { c.timeManagement = true },
	"client":          func(c *compensationFlags) { c.client = true },
	"performance":     func(c *compensationFlags) { c.performance = true },
}

type compensationFlags struct {
	attendance, timeManagement, client, performance bool
}

// NewCompensationCmd prints the compensation breakdown, optionally updating
// the persisted salary preferences first.
func NewCompensationCmd(bootstrap Bootstrap, reporter *export.Reporter) *cobra.Command {
	cc := &CompensationCmd{bootstrap: bootstrap, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "compensation",
		Short: "Show the salary and bonus breakdown",
		RunE:  cc.run,
	}

	cmd.Flags().Float64Var(&cc.loggedHours, "logged-hours", -1, "Override logged hours for this calculation")
	cmd.Flags().Float64Var(&cc.baseSalary, "base-salary", -1, "Monthly base salary")
	cmd.Flags().Float64Var(&cc.hourlyRate, "hourly-rate", -1, "Hourly rate")
	cmd.Flags().StringVar(&cc.currency, "currency", "", "3-letter currency code")
	cmd.Flags().BoolVar(&cc.enableSalary, "enable-salary", false, "Enable salary calculations")
	cmd.Flags().StringSliceVar(&cc.bonuses, "bonus", nil,
		"Bonus to enable: attendance, time-management, client, performance (repeatable)")

	return cmd
}

func (cc *CompensationCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	env, err := cc.bootstrap(ctx)
	if err != nil {
		return err
	}
	defer env.Close()

	cfg := env.Controller.CompensationConfig()
	changed := false

	if cmd.Flags().Changed("base-salary") && cc.baseSalary >= 0 {
		v := cc.baseSalary
		cfg.BaseSalary = &v
		changed = true
	}
	if cmd.Flags().Changed("hourly-rate") && cc.hourlyRate >= 0 {
		v := cc.hourlyRate
		cfg.HourlyRate = &v
		changed = true
	}
	if cc.currency != "" {
		cfg.Currency = cc.currency
		changed = true
	}
	if cmd.Flags().Changed("enable-salary") {
		cfg.EnableSalary = cc.enableSalary
		changed = true
	}
	if cmd.Flags().Changed("bonus") {
		var flags compensationFlags
		for _, name := range cc.bonuses {
			set, ok := bonusFlags[name]
			if !ok {
				return fmt.Errorf("unknown bonus %q", name)
			}
			set(&flags)
		}
		cfg.AttendanceBonus = flags.attendance
		cfg.TimeManagementBonus = flags.timeManagement
		cfg.ClientBonus = flags.client
		cfg.PerformanceBonus = flags.performance
		changed = true
	}

	if changed {
		if err := env.Controller.SetCompensationConfig(ctx, cfg); err != nil {
			return err
		}
	}

	if cmd.Flags().Changed("logged-hours") && cc.loggedHours >= 0 {
		env.Controller.SetLoggedHours(cc.loggedHours)
	}

	return cc.reporter.HandleCompensation(env.Controller.Compensation())
}
