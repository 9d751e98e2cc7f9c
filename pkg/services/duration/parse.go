package duration

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	hmsPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2}):(\d{2})$`)
	isoPattern = regexp.MustCompile(`(?i)^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)
)

// Parse interprets a literal duration string and returns its value in
// milliseconds. Two formats are recognized: clock-style "HH:MM:SS" and the
// ISO-8601 style "PT1H30M" with any subset of hour/minute/second components
// (missing components count as zero).
func Parse(s string) (float64, bool) {
	trimmed := strings.TrimSpace(s)

	if m := hmsPattern.FindStringSubmatch(trimmed); m != nil {
		return part(m[1])*3600000 + part(m[2])*60000 + part(m[3])*1000, true
	}

	if m := isoPattern.FindStringSubmatch(trimmed); m != nil {
		return part(m[1])*3600000 + part(m[2])*60000 + part(m[3])*1000, true
	}

	return 0, false
}

func part(s string) float64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return n
}
