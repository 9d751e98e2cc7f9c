package commands

import (
	"github.com/spf13/cobra"

	"github.com/de-tools/work-pulse/pkg/runtime/terminal/export"
)

type ReportCmd struct {
	bootstrap Bootstrap
	reporter  *export.Reporter
}

// NewReportCmd syncs the monthly report and prints the normalized stats.
func NewReportCmd(bootstrap Bootstrap, reporter *export.Reporter) *cobra.Command {
	rc := &ReportCmd{bootstrap: bootstrap, reporter: reporter}
	return &cobra.Command{
		Use:   "report",
		Short: "Fetch the monthly time report",
		RunE:  rc.run,
	}
}

func (rc *ReportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	env, err := rc.bootstrap(ctx)
	if err != nil {
		return err
	}
	defer env.Close()

	totals, err := env.Controller.Sync(ctx)
	if err != nil {
		return err
	}

	state := env.Controller.Snapshot()
	return rc.reporter.HandleStats(export.StatsView{
		Account:      state.Session.Account,
		Totals:       totals,
		LastSyncedAt: state.LastSyncedAt,
	})
}
