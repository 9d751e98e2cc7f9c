package domain

// CompensationConfig is the persisted salary preference record. BaseSalary
// and HourlyRate are pointers so that "not configured" is never confused
// with an explicit zero.
type CompensationConfig struct {
	BaseSalary          *float64 `json:"baseSalary,omitempty"`
	HourlyRate          *float64 `json:"hourlyRate,omitempty"`
	Currency            string   `json:"currency"`
	EnableSalary        bool     `json:"enableSalary"`
	AttendanceBonus     bool     `json:"attendanceBonus"`
	TimeManagementBonus bool     `json:"timeManagementBonus"`
	ClientBonus         bool     `json:"clientBonus"`
	PerformanceBonus    bool     `json:"performanceBonus"`
}

// Bonus is one component of the monthly bonus breakdown.
type Bonus struct {
	Active bool    `json:"active"`
	Amount float64 `json:"amount"`
}

// CompensationResult is fully derived from CompensationConfig, a
// CalendarResult and the logged hours.
type CompensationResult struct {
	BasePay             float64 `json:"basePay"`
	Attendance          Bonus   `json:"attendance"`
	TimeManagement      Bonus   `json:"timeManagement"`
	Client              Bonus   `json:"client"`
	Performance         Bonus   `json:"performance"`
	BonusSubtotal       float64 `json:"bonusSubtotal"`
	TotalCompensation   float64 `json:"totalCompensation"`
	EffectiveHourlyRate float64 `json:"effectiveHourlyRate"`
	ExpectedMonthlyBase float64 `json:"expectedMonthlyBase"`
	MeetsMonthlyTarget  bool    `json:"meetsMonthlyTarget"`
	CappedHours         float64 `json:"cappedHours"`
	HourDelta           float64 `json:"hourDelta"`
	HoursToTarget       float64 `json:"hoursToTarget"`
	Currency            string  `json:"currency"`
}
