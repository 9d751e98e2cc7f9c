package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestExtractStats(t *testing.T) {
	t.Run("no report object", func(t *testing.T) {
		ex := ExtractStats(decode(t, `{"something": "else"}`))
		assert.Nil(t, ex.Report)
		assert.Nil(t, ex.Item)
		assert.Nil(t, ex.Stats)
	})

	t.Run("report without items", func(t *testing.T) {
		ex := ExtractStats(decode(t, `{"employeeTimeReport": {"timeReportItems": []}}`))
		assert.NotNil(t, ex.Report)
		assert.Nil(t, ex.Item)
		assert.Nil(t, ex.Stats)
	})

	t.Run("first well-formed item wins", func(t *testing.T) {
		ex := ExtractStats(decode(t, `{
			"employeeTimeReport": {
				"timeReportItems": [
					null,
					"not an object",
					{"title": "October", "totalHours": 152.5},
					{"title": "ignored", "totalHours": 1}
				]
			}
		}`))
		require.NotNil(t, ex.Stats)
		assert.Equal(t, "October", ex.Stats.Title)
		require.NotNil(t, ex.Stats.TotalHours)
		assert.InDelta(t, 152.5, *ex.Stats.TotalHours, 1e-9)
	})

	t.Run("only objects count as well-formed", func(t *testing.T) {
		ex := ExtractStats(decode(t, `{
			"employeeTimeReport": {"timeReportItems": [null, 42, "x"]}
		}`))
		assert.NotNil(t, ex.Report)
		assert.Nil(t, ex.Item)
		assert.Nil(t, ex.Stats)
	})

	t.Run("non-numeric fields become absent, never zero", func(t *testing.T) {
		ex := ExtractStats(decode(t, `{
			"employeeTimeReport": {
				"timeReportItems": [{
					"title": "Week 40",
					"email": "me@example.com",
					"totalHours": "160",
					"spanHours": null,
					"onComputerHours": 151.25,
					"activeSecondsCount": {"nested": true}
				}]
			}
		}`))
		require.NotNil(t, ex.Stats)
		assert.Equal(t, "me@example.com", ex.Stats.Email)
		assert.Nil(t, ex.Stats.TotalHours, "numeric string is not a finite number")
		assert.Nil(t, ex.Stats.SpanHours)
		assert.Nil(t, ex.Stats.ActiveSecondsCount)
		require.NotNil(t, ex.Stats.OnComputerHours)
		assert.InDelta(t, 151.25, *ex.Stats.OnComputerHours, 1e-9)
	})

	t.Run("latest activity snapshot", func(t *testing.T) {
		ex := ExtractStats(decode(t, `{
			"employeeTimeReport": {
				"timeReportItems": [{
					"totalHours": 10,
					"las": {
						"timerStatus": 1,
						"userStatus": 2,
						"idleSeconds": 340,
						"clientVersion": "5.2.1",
						"lastSyncTime": 1761937199000
					}
				}]
			}
		}`))
		require.NotNil(t, ex.Stats)
		require.NotNil(t, ex.Stats.LatestActivity)
		assert.Equal(t, "5.2.1", ex.Stats.LatestActivity.ClientVersion)
		require.NotNil(t, ex.Stats.LatestActivity.IdleSeconds)
		assert.InDelta(t, 340, *ex.Stats.LatestActivity.IdleSeconds, 1e-9)
	})
}
