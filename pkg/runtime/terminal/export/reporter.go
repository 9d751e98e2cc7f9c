package export

import (
	"fmt"
	"io"
	"os"
	"text/template"
	"time"

	"github.com/de-tools/work-pulse/pkg/models/domain"
	"github.com/de-tools/work-pulse/pkg/services/compensation"
	"github.com/de-tools/work-pulse/pkg/services/report"
)

// Reporter renders dashboard results as formatted text.
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a console reporter.
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

var funcMap = template.FuncMap{
	"duration": report.FormatDuration,
	"amount":   compensation.FormatAmount,
	"hours": func(v *float64) string {
		if v == nil {
			return "n/a"
		}
		return fmt.Sprintf("%.1f h", *v)
	},
	"ratio": func(v *float64) string {
		if v == nil {
			return "n/a"
		}
		return fmt.Sprintf("%.1f%%", *v*100)
	},
	"check": func(active bool) string {
		if active {
			return "yes"
		}
		return "no"
	},
}

const statsTmpl = `
Time Report: {{if .Account}}{{.Account.DisplayName}}{{else}}(unknown account){{end}}
Total worked: {{duration .Totals.TotalWorkedMilliseconds}} ({{printf "%.2f" .Totals.TotalWorkedHours}} h)
{{- with .Totals.Stats}}
On computer: {{hours .OnComputerHours}}
Total hours: {{hours .TotalHours}}
Span: {{hours .SpanHours}}
Meetings: {{hours .MeetingHours}}
Breaks: {{hours .BreakHours}}
Idle: {{hours .IdleHours}}
Active ratio: {{ratio .ActiveSecondsRatio}}
{{- end}}
{{- if .LastSyncedAt}}
Last synced: {{.LastSyncedAt.Format "02 Jan 2006 15:04"}}
{{- end}}
`

const calendarTmpl = `
Working Calendar: {{.Month}}
Weekend days: {{.Config.WeekendDays}}
Holidays: {{if .Config.Holidays}}{{.Config.Holidays}}{{else}}none{{end}}
Daily target: {{printf "%.1f" .Config.DailyTargetHours}} h

Working days: {{.Result.TotalWorkingDays}} total, {{.Result.WorkingDaysToDate}} elapsed, {{.Result.WorkingDaysRemaining}} remaining
Target hours: {{printf "%.1f" .Result.TotalTargetHours}}
Expected by today: {{printf "%.1f" .Result.ExpectedHoursByToday}}
`

const compensationTmpl = `
Compensation ({{.Currency}})
Base pay: {{amount .BasePay .Currency}}
Effective hourly rate: {{amount .EffectiveHourlyRate .Currency}}
Expected monthly base: {{amount .ExpectedMonthlyBase .Currency}}
Monthly target met: {{check .MeetsMonthlyTarget}}

Bonuses
  Attendance (5%): {{check .Attendance.Active}} {{amount .Attendance.Amount .Currency}}
  Time management (5%): {{check .TimeManagement.Active}} {{amount .TimeManagement.Amount .Currency}}
  Client (3%): {{check .Client.Active}} {{amount .Client.Amount .Currency}}
  Performance (3%): {{check .Performance.Active}} {{amount .Performance.Amount .Currency}}
  Subtotal: {{amount .BonusSubtotal .Currency}}

Total compensation: {{amount .TotalCompensation .Currency}}
`

// StatsView is the data the stats template renders.
type StatsView struct {
	Account      *domain.Account
	Totals       domain.ReportTotals
	LastSyncedAt *time.Time
}

// CalendarView pairs the configuration and result for rendering.
type CalendarView struct {
	Month  string
	Config domain.CalendarConfig
	Result domain.CalendarResult
}

func (r *Reporter) HandleStats(view StatsView) error {
	return r.render("stats", statsTmpl, view)
}

func (r *Reporter) HandleCalendar(view CalendarView) error {
	return r.render("calendar", calendarTmpl, view)
}

func (r *Reporter) HandleCompensation(result domain.CompensationResult) error {
	return r.render("compensation", compensationTmpl, result)
}

func (r *Reporter) render(name, tmpl string, data any) error {
	t, err := template.New(name).Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse %s template: %w", name, err)
	}
	return t.Execute(r.writer, data)
}
