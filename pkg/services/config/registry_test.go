package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "workpulserc")
	require.NoError(t, os.WriteFile(path, []byte(`
[default]
username = me@example.com

[staging]
username = qa@example.com
base_url = https://staging.example.com/api
`), 0o600))

	reg, err := NewRegistry(path)
	require.NoError(t, err)

	profiles, err := reg.GetProfiles(context.Background())
	require.NoError(t, err)
	assert.Len(t, profiles, 2)

	staging, err := reg.GetProfile(context.Background(), "staging")
	require.NoError(t, err)
	assert.Equal(t, "qa@example.com", staging.Username)
	assert.Equal(t, "https://staging.example.com/api", staging.BaseURL)

	_, err = reg.GetProfile(context.Background(), "missing")
	assert.Error(t, err)
}

func TestRegistry_MissingFile(t *testing.T) {
	reg, err := NewRegistry(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)

	profiles, err := reg.GetProfiles(context.Background())
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := LoadSettings("")
	require.NoError(t, err)

	assert.Equal(t, "https://api2.teamlogger.com/api", s.BaseURL)
	assert.Equal(t, "8090", s.Server.Port)
	assert.Equal(t, -1, s.Report.DayEndCutOff)
	assert.Equal(t, []int{0, 6}, s.Calendar.WeekendDays)
	assert.InDelta(t, 8, s.Calendar.DailyTargetHours, 1e-9)
}
