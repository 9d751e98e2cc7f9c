package domain

// TimeReportStats is the normalized view of one time-report line item.
// Numeric fields are pointers: nil means the upstream payload did not carry
// a finite number under that name, which must never collapse to zero.
type TimeReportStats struct {
	Title                string            `json:"title,omitempty"`
	Email                string            `json:"email,omitempty"`
	TotalHours           *float64          `json:"totalHours,omitempty"`
	ActiveMinutesRatio   *float64          `json:"activeMinutesRatio,omitempty"`
	ActiveSecondsRatio   *float64          `json:"activeSecondsRatio,omitempty"`
	TotalSecondsCount    *float64          `json:"totalSecondsCount,omitempty"`
	ActiveSecondsCount   *float64          `json:"activeSecondsCount,omitempty"`
	InactiveSecondsCount *float64          `json:"inactiveSecondsCount,omitempty"`
	BreakHours           *float64          `json:"breakHours,omitempty"`
	SpanHours            *float64          `json:"spanHours,omitempty"`
	OnComputerHours      *float64          `json:"onComputerHours,omitempty"`
	MeetingHours         *float64          `json:"meetingHours,omitempty"`
	IdleHours            *float64          `json:"idleHours,omitempty"`
	LatestActivity       *ActivitySnapshot `json:"latestActivity,omitempty"`
}

// ActivitySnapshot is the opaque "last activity" sub-record some report
// variants attach to a line item.
type ActivitySnapshot struct {
	TimerStatus   *float64 `json:"timerStatus,omitempty"`
	UserStatus    *float64 `json:"userStatus,omitempty"`
	IdleSeconds   *float64 `json:"idleSeconds,omitempty"`
	ClientVersion string   `json:"clientVersion,omitempty"`
	LastSyncTime  *float64 `json:"lastSyncTime,omitempty"`
}

// ReportQuery carries the report request parameters. StartTime and EndTime
// are epoch milliseconds; zero values are omitted from the request.
type ReportQuery struct {
	AccountID       string
	StartTime       int64
	EndTime         int64
	DayStartCutOff  int
	DayEndCutOff    int
	SuppressDetails bool
}

// ReportTotals is what a successful sync produces: the resolved total plus
// the normalized stats and the raw report objects they came from.
type ReportTotals struct {
	TotalWorkedMilliseconds float64          `json:"totalWorkedMilliseconds"`
	TotalWorkedHours        float64          `json:"totalWorkedHours"`
	Stats                   *TimeReportStats `json:"stats,omitempty"`
	Report                  map[string]any   `json:"-"`
	Item                    map[string]any   `json:"-"`
}
