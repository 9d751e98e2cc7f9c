// Package compensation turns calendar targets, logged hours and salary
// preferences into a multi-component pay breakdown.
package compensation

import (
	"math"

	"github.com/de-tools/work-pulse/pkg/models/domain"
)

// Bonus rates, each a share of the expected monthly base.
const (
	attendanceRate     = 0.05
	timeManagementRate = 0.05
	clientRate         = 0.03
	performanceRate    = 0.03

	// targetTolerance guards the floating-point comparison between logged
	// and target hours. The gate is exact attainment, not "met or
	// exceeded": over-target hours are capped separately.
	targetTolerance = 0.01
)

// DefaultCurrency is used whenever the configured code is empty or invalid.
const DefaultCurrency = "USD"

// Compute derives the full compensation breakdown. Every monetary output is
// zero while the master salary switch is off; the target-attainment flag is
// still reported so callers can show pacing without money.
func Compute(cal domain.CalendarResult, loggedHours float64, cfg domain.CompensationConfig) domain.CompensationResult {
	baseSalary := deref(cfg.BaseSalary)
	hourlyRate := deref(cfg.HourlyRate)
	target := cal.TotalTargetHours
	if math.IsNaN(target) || math.IsInf(target, 0) {
		target = 0
	}

	expectedBase := 0.0
	switch {
	case baseSalary > 0:
		expectedBase = baseSalary
	case target > 0 && hourlyRate > 0:
		expectedBase = hourlyRate * target
	}

	effectiveRate := hourlyRate
	if baseSalary > 0 && target > 0 {
		effectiveRate = baseSalary / target
	}

	cappedHours := loggedHours
	if target > 0 {
		cappedHours = math.Min(loggedHours, target)
	}

	meetsTarget := target > 0 && math.Abs(loggedHours-target) < targetTolerance

	basePay := 0.0
	if cfg.EnableSalary {
		basePay = computeBasePay(target, meetsTarget, baseSalary, expectedBase, effectiveRate, loggedHours, cappedHours)
	}

	attendance := bonus(cfg.EnableSalary && cfg.AttendanceBonus && meetsTarget && expectedBase > 0, expectedBase, attendanceRate)
	timeMgmt := bonus(cfg.EnableSalary && cfg.TimeManagementBonus && meetsTarget && expectedBase > 0, expectedBase, timeManagementRate)
	client := bonus(cfg.EnableSalary && cfg.ClientBonus && meetsTarget && expectedBase > 0, expectedBase, clientRate)
	// The performance bonus is the all-round one: it needs every other
	// bonus to be active as well.
	performance := bonus(cfg.EnableSalary && cfg.PerformanceBonus &&
		attendance.Active && timeMgmt.Active && client.Active, expectedBase, performanceRate)

	subtotal := attendance.Amount + timeMgmt.Amount + client.Amount + performance.Amount

	total := 0.0
	if cfg.EnableSalary {
		total = basePay + subtotal
	}

	return domain.CompensationResult{
		BasePay:             basePay,
		Attendance:          attendance,
		TimeManagement:      timeMgmt,
		Client:              client,
		Performance:         performance,
		BonusSubtotal:       subtotal,
		TotalCompensation:   total,
		EffectiveHourlyRate: effectiveRate,
		ExpectedMonthlyBase: expectedBase,
		MeetsMonthlyTarget:  meetsTarget,
		CappedHours:         cappedHours,
		HourDelta:           loggedHours - cal.ExpectedHoursByToday,
		HoursToTarget:       math.Max(target-loggedHours, 0),
		Currency:            NormalizeCurrency(cfg.Currency),
	}
}

// computeBasePay applies the base-pay policy in precedence order: no target,
// target met, then prorated. The prorated branch never pays more than the
// full expected base.
func computeBasePay(target float64, meetsTarget bool, baseSalary, expectedBase, effectiveRate, loggedHours, cappedHours float64) float64 {
	if target <= 0 {
		if baseSalary > 0 {
			return baseSalary
		}
		if effectiveRate > 0 {
			return effectiveRate * loggedHours
		}
		return 0
	}

	if meetsTarget {
		if expectedBase > 0 {
			return expectedBase
		}
		if effectiveRate > 0 {
			return effectiveRate * loggedHours
		}
		return 0
	}

	if effectiveRate > 0 {
		computed := effectiveRate * cappedHours
		if expectedBase > 0 {
			return math.Min(expectedBase, computed)
		}
		return computed
	}

	return 0
}

func bonus(active bool, expectedBase, rate float64) domain.Bonus {
	if !active {
		return domain.Bonus{}
	}
	return domain.Bonus{Active: true, Amount: expectedBase * rate}
}

func deref(v *float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0 {
		return 0
	}
	return *v
}

// DefaultConfig returns the compensation record used when nothing has been
// persisted yet.
func DefaultConfig() domain.CompensationConfig {
	return domain.CompensationConfig{Currency: DefaultCurrency}
}
