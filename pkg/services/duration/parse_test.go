package duration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"02:30:00", 9000000, true},
		{"0:05:30", 330000, true},
		{"10:00:00", 36000000, true},
		{"PT1H30M", 5400000, true},
		{"pt2h", 7200000, true},
		{"PT45S", 45000, true},
		{"PT1H2M3S", 3723000, true},
		{" PT15M ", 900000, true},
		{"PT", 0, true},
		{"2:30", 0, false},
		{"1d4h", 0, false},
		{"P1DT2H", 0, false},
		{"not a duration", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Parse(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}
