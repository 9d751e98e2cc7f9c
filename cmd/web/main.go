package main

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/de-tools/work-pulse/pkg/server"
	"github.com/de-tools/work-pulse/pkg/services/config"
	"github.com/de-tools/work-pulse/pkg/services/dashboard"
	"github.com/de-tools/work-pulse/pkg/store/prefs"
	"github.com/de-tools/work-pulse/pkg/store/teamlogger"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Work Pulse",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the settings file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	settings, err := config.LoadSettings(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	store, err := prefs.New(settings.PrefsPath)
	if err != nil {
		return fmt.Errorf("failed to open preference store: %w", err)
	}
	defer func() { _ = store.Close() }()

	client := teamlogger.NewClient(
		teamlogger.WithBaseURL(settings.BaseURL),
		teamlogger.WithHTTPClient(&http.Client{Timeout: settings.HTTPTimeout}),
	)

	now := time.Now()
	query := settings.ReportQuery(now)

	ctrl := dashboard.NewController(ctx, dashboard.Options{
		Client:   client,
		Prefs:    store,
		Query:    query,
		Calendar: settings.CalendarConfig(),
	})

	logger.Info().
		Int64("start_time", query.StartTime).
		Int64("end_time", query.EndTime).
		Msg("report window resolved")

	addr := net.JoinHostPort(settings.Server.Host, settings.Server.Port)

	api := server.NewWebAPI(logger, server.Config{
		Addr: addr,
		Dependencies: server.Dependencies{
			Dashboard: ctrl,
		},
	})

	return api.Start()
}
