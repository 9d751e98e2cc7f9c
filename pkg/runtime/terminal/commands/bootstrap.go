package commands

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/de-tools/work-pulse/pkg/services/config"
	"github.com/de-tools/work-pulse/pkg/services/dashboard"
	"github.com/de-tools/work-pulse/pkg/store/prefs"
	"github.com/de-tools/work-pulse/pkg/store/teamlogger"
)

// Env is everything a command needs once the application is wired up.
type Env struct {
	Settings   *config.Settings
	Controller *dashboard.Controller
	Close      func()
}

// Bootstrap lazily wires settings, the preference store, the TeamLogger
// client and the dashboard controller. Commands call it inside RunE so that
// flag parsing and help output never touch the filesystem.
type Bootstrap func(ctx context.Context) (*Env, error)

// NewBootstrap builds the default bootstrap over the given config path
// pointer (bound to the root --config flag).
func NewBootstrap(cfgPath *string) Bootstrap {
	return func(ctx context.Context) (*Env, error) {
		settings, err := config.LoadSettings(*cfgPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}

		store, err := prefs.New(settings.PrefsPath)
		if err != nil {
			return nil, err
		}

		client := teamlogger.NewClient(
			teamlogger.WithBaseURL(settings.BaseURL),
			teamlogger.WithHTTPClient(&http.Client{Timeout: settings.HTTPTimeout}),
		)

		ctrl := dashboard.NewController(ctx, dashboard.Options{
			Client:   client,
			Prefs:    store,
			Query:    settings.ReportQuery(time.Now()),
			Calendar: settings.CalendarConfig(),
		})

		return &Env{
			Settings:   settings,
			Controller: ctrl,
			Close:      func() { _ = store.Close() },
		}, nil
	}
}
