package domain

// CalendarConfig describes the working-month shape: which weekdays are
// weekends, which dates are holidays, and the daily hour target.
type CalendarConfig struct {
	// WeekendDays holds weekday indices, 0 = Sunday .. 6 = Saturday.
	WeekendDays []int `json:"weekendDays"`
	// Holidays holds ISO dates (YYYY-MM-DD).
	Holidays         []string `json:"holidays"`
	DailyTargetHours float64  `json:"dailyTargetHours"`
}

// CalendarResult is derived from CalendarConfig and "today"; it has no
// lifecycle of its own and is recomputed whenever either input changes.
type CalendarResult struct {
	TotalWorkingDays     int     `json:"totalWorkingDays"`
	WorkingDaysToDate    int     `json:"workingDaysToDate"`
	WorkingDaysRemaining int     `json:"workingDaysRemaining"`
	TotalTargetHours     float64 `json:"totalTargetHours"`
	ExpectedHoursByToday float64 `json:"expectedHoursByToday"`
}
