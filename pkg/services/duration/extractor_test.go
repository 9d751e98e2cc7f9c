package duration

import (
	"encoding/json"
	"math"
	"regexp"
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

func TestExtractor_KeyRules(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name    string
		payload string
		want    float64
	}{
		{
			name:    "total tracked milliseconds taken verbatim",
			payload: `{"totalTrackedMilliseconds": 7200000}`,
			want:    7200000,
		},
		{
			name:    "total worked seconds converted",
			payload: `{"totalWorkedSeconds": 3600}`,
			want:    3600000,
		},
		{
			name:    "total work minutes converted",
			payload: `{"totalWorkMinutes": 90}`,
			want:    5400000,
		},
		{
			name:    "tracked hours converted",
			payload: `{"trackedHours": 2}`,
			want:    7200000,
		},
		{
			name:    "numeric string under matching key",
			payload: `{"workedMinutes": "45"}`,
			want:    2700000,
		},
		{
			name:    "nested and array values are visited",
			payload: `{"days": [{"entry": {"workedSeconds": 1800}}, {"entry": {"workedSeconds": 5400}}]}`,
			want:    5400000,
		},
		{
			name:    "no signal yields zero",
			payload: `{"name": "report", "count": 12}`,
			want:    0,
		},
		{
			name:    "unmatched number is ignored",
			payload: `{"spanHours": 100}`,
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, e.Extract(decode(t, tt.payload)), 1e-9)
		})
	}
}

func TestExtractor_MaxOfCandidates(t *testing.T) {
	e := NewExtractor()

	payload := decode(t, `{
		"totalTrackedMilliseconds": 7200000,
		"summary": {"workedHours": 1.5},
		"raw": "00:30:00"
	}`)

	// 7,200,000 ms beats 1.5 h (5,400,000 ms) and 30 min (1,800,000 ms).
	assert.InDelta(t, 7200000, e.Extract(payload), 1e-9)
}

func TestExtractor_OrderIndependence(t *testing.T) {
	e := NewExtractor()

	a := decode(t, `{"workedHours": 2, "trackedSeconds": 60}`)
	b := decode(t, `{"trackedSeconds": 60, "workedHours": 2}`)

	assert.Equal(t, e.Extract(a), e.Extract(b))
}

func TestExtractor_Idempotent(t *testing.T) {
	e := NewExtractor()
	payload := decode(t, `{"report": {"totalWorkedHours": 7.5}}`)

	first := e.Extract(payload)
	second := e.Extract(payload)

	assert.InDelta(t, 27000000, first, 1e-9)
	assert.Equal(t, first, second)
}

func TestExtractor_FirstRuleWins(t *testing.T) {
	// A custom rule list where a broad pattern precedes a specific one: the
	// broad one must win because only list order matters.
	e := NewExtractor(
		Rule{Pattern: regexp.MustCompile(`(?i)worked`), Unit: Seconds},
		Rule{Pattern: regexp.MustCompile(`(?i)workedHours`), Unit: Hours},
	)

	got := e.Extract(decode(t, `{"workedHours": 2}`))
	assert.InDelta(t, 2000, got, 1e-9)
}

func TestExtractor_NonFiniteStringsIgnored(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name    string
		payload string
		want    float64
	}{
		{
			name:    "NaN string does not poison other candidates",
			payload: `{"workedHours": "NaN", "totalWorkedSeconds": 3600}`,
			want:    3600000,
		},
		{
			name:    "Inf string yields zero",
			payload: `{"workedHours": "+Inf"}`,
			want:    0,
		},
		{
			name:    "Infinity spelling yields zero",
			payload: `{"workedHours": "Infinity"}`,
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(decode(t, tt.payload))
			assert.False(t, math.IsNaN(got) || math.IsInf(got, 0))
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestExtractor_LenientNumericStrings(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name    string
		payload string
		want    float64
	}{
		{
			name:    "trailing unit text after the number",
			payload: `{"workedHours": "7.5 hrs"}`,
			want:    27000000,
		},
		{
			name:    "leading whitespace and sign",
			payload: `{"workedMinutes": " +45m"}`,
			want:    2700000,
		},
		{
			name:    "no leading number yields zero",
			payload: `{"workedHours": "about 2"}`,
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, e.Extract(decode(t, tt.payload)), 1e-9)
		})
	}
}

func TestExtractor_StringDurationLeaves(t *testing.T) {
	e := NewExtractor()

	payload := decode(t, `{"shift": {"loggedSpan": "02:30:00"}}`)
	assert.InDelta(t, 9000000, e.Extract(payload), 1e-9)
}

func TestToMilliseconds(t *testing.T) {
	assert.Equal(t, 1.0, ToMilliseconds(1, Milliseconds))
	assert.Equal(t, 1000.0, ToMilliseconds(1, Seconds))
	assert.Equal(t, 60000.0, ToMilliseconds(1, Minutes))
	assert.Equal(t, 3600000.0, ToMilliseconds(1, Hours))
	assert.Equal(t, 0.0, ToMilliseconds(1, Unit("fortnights")))
}
