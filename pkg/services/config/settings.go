// Package config loads application settings and the named credential
// profiles the CLI logs in with.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/de-tools/work-pulse/pkg/models/domain"
)

// ServerSettings configures the local dashboard API.
type ServerSettings struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// ReportSettings holds the default report window and cutoffs.
type ReportSettings struct {
	StartTime       int64 `mapstructure:"start_time"`
	EndTime         int64 `mapstructure:"end_time"`
	DayStartCutOff  int   `mapstructure:"day_start_cut_off"`
	DayEndCutOff    int   `mapstructure:"day_end_cut_off"`
	SuppressDetails bool  `mapstructure:"suppress_details"`
}

// CalendarSettings seeds the working calendar before any preference is
// persisted.
type CalendarSettings struct {
	WeekendDays      []int   `mapstructure:"weekend_days"`
	DailyTargetHours float64 `mapstructure:"daily_target_hours"`
}

// Settings is the full application configuration.
type Settings struct {
	BaseURL     string           `mapstructure:"base_url"`
	HTTPTimeout time.Duration    `mapstructure:"http_timeout"`
	PrefsPath   string           `mapstructure:"prefs_path"`
	Server      ServerSettings   `mapstructure:"server"`
	Report      ReportSettings   `mapstructure:"report"`
	Calendar    CalendarSettings `mapstructure:"calendar"`
}

// ReportQuery resolves the report window. Explicit settings win; zero values
// fall back to the month containing now.
func (s *Settings) ReportQuery(now time.Time) domain.ReportQuery {
	q := domain.ReportQuery{
		StartTime:       s.Report.StartTime,
		EndTime:         s.Report.EndTime,
		DayStartCutOff:  s.Report.DayStartCutOff,
		DayEndCutOff:    s.Report.DayEndCutOff,
		SuppressDetails: s.Report.SuppressDetails,
	}
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if q.StartTime == 0 {
		q.StartTime = monthStart.UnixMilli()
	}
	if q.EndTime == 0 {
		q.EndTime = monthStart.AddDate(0, 1, 0).Add(-time.Millisecond).UnixMilli()
	}
	return q
}

// CalendarConfig seeds the working calendar from settings.
func (s *Settings) CalendarConfig() domain.CalendarConfig {
	return domain.CalendarConfig{
		WeekendDays:      s.Calendar.WeekendDays,
		DailyTargetHours: s.Calendar.DailyTargetHours,
	}
}

// LoadSettings reads work-pulse.yaml (optional) and WORK_PULSE_* environment
// overrides. Missing files are fine; defaults cover everything.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("base_url", "https://api2.teamlogger.com/api")
	v.SetDefault("http_timeout", 30*time.Second)
	v.SetDefault("prefs_path", "work-pulse.db")
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", "8090")
	v.SetDefault("report.day_start_cut_off", 0)
	v.SetDefault("report.day_end_cut_off", -1)
	v.SetDefault("report.suppress_details", false)
	v.SetDefault("calendar.weekend_days", []int{0, 6})
	v.SetDefault("calendar.daily_target_hours", 8.0)

	v.SetEnvPrefix("WORK_PULSE")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("work-pulse")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/work-pulse")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &s, nil
}
