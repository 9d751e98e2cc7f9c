// Package report normalizes raw TeamLogger report payloads into stable
// stats records and reconciles their many duration signals into a single
// total-worked reading.
package report

import (
	"math"

	"github.com/de-tools/work-pulse/pkg/models/domain"
)

// Extraction is the outcome of scanning a raw report payload. Any of the
// fields may be nil; extraction itself never fails.
type Extraction struct {
	Report map[string]any
	Item   map[string]any
	Stats  *domain.TimeReportStats
}

// ExtractStats locates the nested employee time report and normalizes its
// first well-formed line item. Payloads without a usable item return
// whatever report object was found with nil Item and Stats.
func ExtractStats(payload any) Extraction {
	root, _ := payload.(map[string]any)
	rep, _ := root["employeeTimeReport"].(map[string]any)
	if rep == nil {
		return Extraction{}
	}

	items, _ := rep["timeReportItems"].([]any)
	if len(items) == 0 {
		return Extraction{Report: rep}
	}

	var item map[string]any
	for _, it := range items {
		if m, ok := it.(map[string]any); ok {
			item = m
			break
		}
	}
	if item == nil {
		return Extraction{Report: rep}
	}

	stats := &domain.TimeReportStats{
		Title:                asString(item["title"]),
		Email:                asString(item["email"]),
		TotalHours:           finite(item["totalHours"]),
		ActiveMinutesRatio:   finite(item["activeMinutesRatio"]),
		ActiveSecondsRatio:   finite(item["activeSecondsRatio"]),
		TotalSecondsCount:    finite(item["totalSecondsCount"]),
		ActiveSecondsCount:   finite(item["activeSecondsCount"]),
		InactiveSecondsCount: finite(item["inactiveSecondsCount"]),
		BreakHours:           finite(item["breakHours"]),
		SpanHours:            finite(item["spanHours"]),
		OnComputerHours:      finite(item["onComputerHours"]),
		MeetingHours:         finite(item["meetingHours"]),
		IdleHours:            finite(item["idleHours"]),
		LatestActivity:       snapshot(item["las"]),
	}

	return Extraction{Report: rep, Item: item, Stats: stats}
}

// finite keeps only finite JSON numbers; everything else is "absent", which
// is distinct from zero throughout the calculation engine.
func finite(v any) *float64 {
	n, ok := v.(float64)
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	return &n
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func snapshot(v any) *domain.ActivitySnapshot {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return &domain.ActivitySnapshot{
		TimerStatus:   finite(m["timerStatus"]),
		UserStatus:    finite(m["userStatus"]),
		IdleSeconds:   finite(m["idleSeconds"]),
		ClientVersion: asString(m["clientVersion"]),
		LastSyncTime:  finite(m["lastSyncTime"]),
	}
}
