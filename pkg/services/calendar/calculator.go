// Package calendar derives working-day counts and hour targets for the
// month containing a reference day.
package calendar

import (
	"fmt"
	"slices"
	"time"

	"github.com/de-tools/work-pulse/pkg/models/domain"
)

const isoDate = "2006-01-02"

// Compute enumerates every day of the month containing today, first through
// last inclusive. A day counts as working unless its weekday index is in the
// weekend set or its ISO date is in the holiday set. Pure function of its
// inputs; callers recompute whenever the config or the day changes.
func Compute(cfg domain.CalendarConfig, today time.Time) domain.CalendarResult {
	weekends := make(map[int]struct{}, len(cfg.WeekendDays))
	for _, d := range cfg.WeekendDays {
		weekends[d] = struct{}{}
	}
	holidays := make(map[string]struct{}, len(cfg.Holidays))
	for _, h := range cfg.Holidays {
		holidays[h] = struct{}{}
	}

	year, month, _ := today.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, today.Location())
	todayDay := today.Day()

	total := 0
	toDate := 0
	for day := first; day.Month() == month; day = day.AddDate(0, 0, 1) {
		if _, ok := weekends[int(day.Weekday())]; ok {
			continue
		}
		if _, ok := holidays[day.Format(isoDate)]; ok {
			continue
		}
		total++
		if day.Day() <= todayDay {
			toDate++
		}
	}

	remaining := total - toDate
	if remaining < 0 {
		remaining = 0
	}

	return domain.CalendarResult{
		TotalWorkingDays:     total,
		WorkingDaysToDate:    toDate,
		WorkingDaysRemaining: remaining,
		TotalTargetHours:     float64(total) * cfg.DailyTargetHours,
		ExpectedHoursByToday: float64(toDate) * cfg.DailyTargetHours,
	}
}

// ToggleWeekend flips a weekday index in the weekend set, keeping the set
// sorted and duplicate-free. Out-of-range indices are ignored.
func ToggleWeekend(cfg domain.CalendarConfig, weekday int) domain.CalendarConfig {
	if weekday < 0 || weekday > 6 {
		return cfg
	}
	if slices.Contains(cfg.WeekendDays, weekday) {
		out := make([]int, 0, len(cfg.WeekendDays)-1)
		for _, d := range cfg.WeekendDays {
			if d != weekday {
				out = append(out, d)
			}
		}
		cfg.WeekendDays = out
		return cfg
	}
	cfg.WeekendDays = append(slices.Clone(cfg.WeekendDays), weekday)
	slices.Sort(cfg.WeekendDays)
	return cfg
}

// AddHoliday validates and inserts an ISO date into the holiday set, keeping
// it sorted and duplicate-free.
func AddHoliday(cfg domain.CalendarConfig, date string) (domain.CalendarConfig, error) {
	parsed, err := time.Parse(isoDate, date)
	if err != nil {
		return cfg, fmt.Errorf("invalid holiday date %q: %w", date, err)
	}
	normalized := parsed.Format(isoDate)
	if slices.Contains(cfg.Holidays, normalized) {
		return cfg, nil
	}
	cfg.Holidays = append(slices.Clone(cfg.Holidays), normalized)
	slices.Sort(cfg.Holidays)
	return cfg, nil
}

// RemoveHoliday drops a date from the holiday set; unknown dates are a no-op.
func RemoveHoliday(cfg domain.CalendarConfig, date string) domain.CalendarConfig {
	out := make([]string, 0, len(cfg.Holidays))
	for _, h := range cfg.Holidays {
		if h != date {
			out = append(out, h)
		}
	}
	cfg.Holidays = out
	return cfg
}

// DefaultConfig mirrors the usual five-day week: Sunday and Saturday off,
// eight target hours per day.
func DefaultConfig() domain.CalendarConfig {
	return domain.CalendarConfig{
		WeekendDays:      []int{0, 6},
		DailyTargetHours: 8,
	}
}
