package report

import (
	"fmt"
	"math"

	"github.com/de-tools/work-pulse/pkg/models/domain"
	"github.com/de-tools/work-pulse/pkg/services/duration"
)

const millisPerHour = 60 * 60 * 1000

// ResolveTotalWorked reconciles every duration signal the report surfaces
// into one total, in milliseconds. Different account configurations put the
// authoritative total under different field names, so instead of guessing
// which one applies, the resolver takes the maximum over all finite,
// non-negative candidates: the named stats fields plus a full-payload scan
// by the heuristic extractor. With no surviving candidate the total is 0.
func ResolveTotalWorked(stats *domain.TimeReportStats, payload any, extractor *duration.Extractor) float64 {
	if extractor == nil {
		extractor = duration.NewExtractor()
	}

	candidates := []float64{extractor.Extract(payload)}
	if stats != nil {
		candidates = append(candidates,
			hoursToMillis(stats.TotalHours),
			hoursToMillis(stats.OnComputerHours),
			hoursToMillis(stats.SpanHours),
			secondsToMillis(stats.TotalSecondsCount),
			secondsToMillis(stats.ActiveSecondsCount),
		)
	}

	best := 0.0
	for _, c := range candidates {
		if math.IsNaN(c) || math.IsInf(c, 0) || c < 0 {
			continue
		}
		best = math.Max(best, c)
	}
	return best
}

// Totals runs extraction and resolution over a decoded payload and packages
// the result for the fetch pipeline.
func Totals(payload any, extractor *duration.Extractor) domain.ReportTotals {
	ex := ExtractStats(payload)
	ms := ResolveTotalWorked(ex.Stats, payload, extractor)
	return domain.ReportTotals{
		TotalWorkedMilliseconds: ms,
		TotalWorkedHours:        ms / millisPerHour,
		Stats:                   ex.Stats,
		Report:                  ex.Report,
		Item:                    ex.Item,
	}
}

func hoursToMillis(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v * millisPerHour
}

func secondsToMillis(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v * 1000
}

// FormatDuration renders milliseconds as "Xh Ym"; non-positive and
// non-finite values render as "0h 0m".
func FormatDuration(ms float64) string {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || ms <= 0 {
		return "0h 0m"
	}
	totalMinutes := int(ms / (1000 * 60))
	return fmt.Sprintf("%dh %dm", totalMinutes/60, totalMinutes%60)
}
