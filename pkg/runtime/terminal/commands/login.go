package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/de-tools/work-pulse/pkg/services/config"
	"github.com/de-tools/work-pulse/pkg/store/teamlogger"
)

type LoginCmd struct {
	username    string
	password    string
	profile     string
	profilePath string
	bootstrap   Bootstrap
}

// NewLoginCmd authenticates against TeamLogger and persists the session.
// The username can come from a named profile in ~/.workpulserc; the password
// comes from --password or the WORK_PULSE_PASSWORD environment variable.
func NewLoginCmd(bootstrap Bootstrap) *cobra.Command {
	lc := &LoginCmd{bootstrap: bootstrap}
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		RunE:  lc.run,
	}

	defaultProfilePath := ""
	if home, err := os.UserHomeDir(); err == nil {
		defaultProfilePath = filepath.Join(home, ".workpulserc")
	}

	cmd.Flags().StringVarP(&lc.username, "username", "u", "", "Account username (email)")
	cmd.Flags().StringVarP(&lc.password, "password", "p", "", "Account password (or WORK_PULSE_PASSWORD)")
	cmd.Flags().StringVar(&lc.profile, "profile", "", "Named profile from the rc file")
	cmd.Flags().StringVar(&lc.profilePath, "profile-file", defaultProfilePath, "Path to the rc file with named profiles")

	return cmd
}

func (lc *LoginCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	username := lc.username
	if lc.profile != "" {
		registry, err := config.NewRegistry(lc.profilePath)
		if err != nil {
			return err
		}
		profile, err := registry.GetProfile(ctx, lc.profile)
		if err != nil {
			return err
		}
		if username == "" {
			username = profile.Username
		}
	}

	password := lc.password
	if password == "" {
		password = os.Getenv("WORK_PULSE_PASSWORD")
	}

	if username == "" || password == "" {
		return fmt.Errorf("username and password are required")
	}

	env, err := lc.bootstrap(ctx)
	if err != nil {
		return err
	}
	defer env.Close()

	session, err := env.Controller.Login(ctx, teamlogger.Credentials{
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}

	cmd.Printf("Signed in as %s", session.Account.DisplayName())
	if session.Account.CompanyName != "" {
		cmd.Printf(" (%s)", session.Account.CompanyName)
	}
	cmd.Println()
	return nil
}
