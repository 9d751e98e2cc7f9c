package terminal

import (
	"io"
	"os"

	"github.com/de-tools/work-pulse/pkg/runtime/terminal/commands"
	"github.com/de-tools/work-pulse/pkg/runtime/terminal/export"

	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	reporter *export.Reporter
	rootCmd  *cobra.Command
	cfgPath  string
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "work-pulse",
		Short: "TeamLogger work-hours dashboard",
	}

	cmd.PersistentFlags().StringVar(&cli.cfgPath, "config", "", "Path to the settings file")

	bootstrap := commands.NewBootstrap(&cli.cfgPath)

	cmd.AddCommand(commands.NewLoginCmd(bootstrap))
	cmd.AddCommand(commands.NewSignOutCmd(bootstrap))
	cmd.AddCommand(commands.NewReportCmd(bootstrap, cli.reporter))
	cmd.AddCommand(commands.NewCalendarCmd(bootstrap, cli.reporter))
	cmd.AddCommand(commands.NewCompensationCmd(bootstrap, cli.reporter))

	return cmd
}
