package compensation

import (
	"testing"

	"github.com/de-tools/work-pulse/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func calendarWith(target, expected float64) domain.CalendarResult {
	return domain.CalendarResult{
		TotalTargetHours:     target,
		ExpectedHoursByToday: expected,
	}
}

func TestCompute_TargetMetWithAllBonuses(t *testing.T) {
	cfg := domain.CompensationConfig{
		BaseSalary:          ptr(4000),
		Currency:            "USD",
		EnableSalary:        true,
		AttendanceBonus:     true,
		TimeManagementBonus: true,
		ClientBonus:         true,
		PerformanceBonus:    true,
	}

	got := Compute(calendarWith(160, 160), 160, cfg)

	assert.True(t, got.MeetsMonthlyTarget)
	assert.InDelta(t, 4000, got.BasePay, 1e-9)
	assert.InDelta(t, 25, got.EffectiveHourlyRate, 1e-9)
	assert.True(t, got.Attendance.Active)
	assert.InDelta(t, 200, got.Attendance.Amount, 1e-9)
	assert.True(t, got.TimeManagement.Active)
	assert.InDelta(t, 200, got.TimeManagement.Amount, 1e-9)
	assert.True(t, got.Client.Active)
	assert.InDelta(t, 120, got.Client.Amount, 1e-9)
	assert.True(t, got.Performance.Active)
	assert.InDelta(t, 120, got.Performance.Amount, 1e-9)
	assert.InDelta(t, 640, got.BonusSubtotal, 1e-9)
	assert.InDelta(t, 4640, got.TotalCompensation, 1e-9)
}

func TestCompute_UnderTargetProrates(t *testing.T) {
	cfg := domain.CompensationConfig{
		BaseSalary:          ptr(4000),
		Currency:            "USD",
		EnableSalary:        true,
		AttendanceBonus:     true,
		TimeManagementBonus: true,
		ClientBonus:         true,
		PerformanceBonus:    true,
	}

	got := Compute(calendarWith(160, 160), 120, cfg)

	assert.False(t, got.MeetsMonthlyTarget)
	assert.InDelta(t, 3000, got.BasePay, 1e-9, "25/h * 120h")
	assert.False(t, got.Attendance.Active)
	assert.False(t, got.Performance.Active)
	assert.Zero(t, got.BonusSubtotal)
	assert.InDelta(t, 3000, got.TotalCompensation, 1e-9)
}

func TestCompute_ProratedBaseNeverExceedsExpectedBase(t *testing.T) {
	cfg := domain.CompensationConfig{
		BaseSalary:   ptr(4000),
		EnableSalary: true,
	}

	// Over target but outside the exact-match tolerance: hours are capped
	// to the target, so pay equals the full base and no more.
	got := Compute(calendarWith(160, 160), 200, cfg)

	assert.False(t, got.MeetsMonthlyTarget)
	assert.InDelta(t, 160, got.CappedHours, 1e-9)
	assert.InDelta(t, 4000, got.BasePay, 1e-9)
}

func TestCompute_ToleranceGate(t *testing.T) {
	cfg := domain.CompensationConfig{BaseSalary: ptr(4000), EnableSalary: true}

	assert.True(t, Compute(calendarWith(160, 160), 160.009, cfg).MeetsMonthlyTarget)
	assert.False(t, Compute(calendarWith(160, 160), 160.011, cfg).MeetsMonthlyTarget)
	assert.False(t, Compute(calendarWith(160, 160), 159.98, cfg).MeetsMonthlyTarget)
}

func TestCompute_HourlyRateOnly(t *testing.T) {
	cfg := domain.CompensationConfig{
		HourlyRate:      ptr(30),
		EnableSalary:    true,
		AttendanceBonus: true,
	}

	t.Run("under target", func(t *testing.T) {
		got := Compute(calendarWith(160, 80), 100, cfg)
		assert.InDelta(t, 3000, got.BasePay, 1e-9)
		assert.InDelta(t, 4800, got.ExpectedMonthlyBase, 1e-9)
		assert.False(t, got.Attendance.Active)
	})

	t.Run("target met pays the expected base", func(t *testing.T) {
		got := Compute(calendarWith(160, 160), 160, cfg)
		assert.InDelta(t, 4800, got.BasePay, 1e-9)
		assert.True(t, got.Attendance.Active)
		assert.InDelta(t, 240, got.Attendance.Amount, 1e-9)
	})
}

func TestCompute_NoTargetHours(t *testing.T) {
	t.Run("base salary wins", func(t *testing.T) {
		cfg := domain.CompensationConfig{BaseSalary: ptr(4000), EnableSalary: true}
		got := Compute(calendarWith(0, 0), 50, cfg)
		assert.InDelta(t, 4000, got.BasePay, 1e-9)
		assert.False(t, got.MeetsMonthlyTarget)
	})

	t.Run("hourly rate times uncapped hours", func(t *testing.T) {
		cfg := domain.CompensationConfig{HourlyRate: ptr(20), EnableSalary: true}
		got := Compute(calendarWith(0, 0), 50, cfg)
		assert.InDelta(t, 1000, got.BasePay, 1e-9)
	})

	t.Run("nothing configured pays nothing", func(t *testing.T) {
		cfg := domain.CompensationConfig{EnableSalary: true}
		got := Compute(calendarWith(0, 0), 50, cfg)
		assert.Zero(t, got.BasePay)
		assert.Zero(t, got.TotalCompensation)
	})
}

func TestCompute_MasterSwitchOff(t *testing.T) {
	cfg := domain.CompensationConfig{
		BaseSalary:          ptr(4000),
		EnableSalary:        false,
		AttendanceBonus:     true,
		TimeManagementBonus: true,
		ClientBonus:         true,
		PerformanceBonus:    true,
	}

	got := Compute(calendarWith(160, 160), 160, cfg)

	assert.Zero(t, got.BasePay)
	assert.Zero(t, got.BonusSubtotal)
	assert.Zero(t, got.TotalCompensation)
	assert.False(t, got.Attendance.Active)
	// Target attainment is about hours, not money.
	assert.True(t, got.MeetsMonthlyTarget)
}

func TestCompute_PerformanceRequiresAllOtherBonuses(t *testing.T) {
	cfg := domain.CompensationConfig{
		BaseSalary:          ptr(4000),
		EnableSalary:        true,
		AttendanceBonus:     true,
		TimeManagementBonus: true,
		ClientBonus:         false,
		PerformanceBonus:    true,
	}

	got := Compute(calendarWith(160, 160), 160, cfg)

	assert.True(t, got.Attendance.Active)
	assert.True(t, got.TimeManagement.Active)
	assert.False(t, got.Client.Active)
	assert.False(t, got.Performance.Active)
	assert.InDelta(t, 400, got.BonusSubtotal, 1e-9)
}

func TestCompute_AbsentVersusZeroSalary(t *testing.T) {
	// An explicit zero base salary must behave like an absent one for the
	// hourly-rate fallback, but both must stay distinguishable in config.
	absent := domain.CompensationConfig{HourlyRate: ptr(25), EnableSalary: true}
	zero := domain.CompensationConfig{BaseSalary: ptr(0), HourlyRate: ptr(25), EnableSalary: true}

	a := Compute(calendarWith(160, 160), 120, absent)
	z := Compute(calendarWith(160, 160), 120, zero)

	assert.InDelta(t, a.BasePay, z.BasePay, 1e-9)
	assert.InDelta(t, 25, a.EffectiveHourlyRate, 1e-9)
}

func TestCompute_PacingFields(t *testing.T) {
	cfg := domain.CompensationConfig{EnableSalary: true}
	got := Compute(calendarWith(184, 88), 100, cfg)

	assert.InDelta(t, 12, got.HourDelta, 1e-9)
	assert.InDelta(t, 84, got.HoursToTarget, 1e-9)
}
