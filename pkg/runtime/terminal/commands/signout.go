package commands

import (
	"github.com/spf13/cobra"
)

type SignOutCmd struct {
	bootstrap Bootstrap
}

// NewSignOutCmd clears the stored session and derived report state. The
// calendar configuration is left alone.
func NewSignOutCmd(bootstrap Bootstrap) *cobra.Command {
	sc := &SignOutCmd{bootstrap: bootstrap}
	return &cobra.Command{
		Use:   "signout",
		Short: "Clear the stored session",
		RunE:  sc.run,
	}
}

func (sc *SignOutCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	env, err := sc.bootstrap(ctx)
	if err != nil {
		return err
	}
	defer env.Close()

	if err := env.Controller.SignOut(ctx); err != nil {
		return err
	}

	cmd.Println("Signed out.")
	return nil
}
