package compensation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"USD", "USD"},
		{"usd", "USD"},
		{" eur ", "EUR"},
		{"XYZ9", "USD"}, // truncates to XYZ, which is not ISO-4217
		{"GBPX", "GBP"},
		{"", "USD"},
		{"??", "USD"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCurrency(tt.in))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "USD 4,640.00", FormatAmount(4640, "USD"))
	assert.Equal(t, "EUR 1,234.57", FormatAmount(1234.567, "eur"))
	// Unsupported codes format exactly like the default currency.
	assert.Equal(t, FormatAmount(4640, "USD"), FormatAmount(4640, "XYZ9"))
}
