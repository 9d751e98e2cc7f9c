// Package dashboard orchestrates one authenticated session: login, report
// syncs, the working calendar and the compensation breakdown. It owns the
// only mutable state in the system and is what both the CLI and the web
// handlers talk to.
package dashboard

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/de-tools/work-pulse/pkg/models/domain"
	"github.com/de-tools/work-pulse/pkg/services/calendar"
	"github.com/de-tools/work-pulse/pkg/services/compensation"
	"github.com/de-tools/work-pulse/pkg/services/duration"
	"github.com/de-tools/work-pulse/pkg/services/report"
	"github.com/de-tools/work-pulse/pkg/store/teamlogger"
)

// ErrSuperseded is returned when a sync resolves after the session identity
// that dispatched it has changed; its result is discarded rather than
// applied to the newer identity's state.
var ErrSuperseded = errors.New("sync superseded by a newer session")

// ErrNotAuthenticated is returned for operations that need a full session.
var ErrNotAuthenticated = errors.New("not signed in: token, company and account are required")

// ReportClient is the TeamLogger surface the controller depends on.
type ReportClient interface {
	Authenticate(ctx context.Context, creds teamlogger.Credentials) (domain.Session, error)
	FetchReport(ctx context.Context, session domain.Session, query domain.ReportQuery) (any, error)
}

// PreferenceStore persists session and preference records across runs.
type PreferenceStore interface {
	LoadSession(ctx context.Context) domain.Session
	SaveSession(ctx context.Context, session domain.Session) error
	ClearSession(ctx context.Context) error
	LoadCompensation(ctx context.Context) domain.CompensationConfig
	SaveCompensation(ctx context.Context, cfg domain.CompensationConfig) error
	LoadCalendar(ctx context.Context) *domain.CalendarConfig
	SaveCalendar(ctx context.Context, cfg domain.CalendarConfig) error
}

// Clock injects "today"; tests pin it.
type Clock func() time.Time

// State is an immutable snapshot of the session's derived data.
type State struct {
	Session      domain.Session
	Totals       *domain.ReportTotals
	LoggedHours  float64
	LastSyncedAt *time.Time
	SyncError    string
	Syncing      bool
}

// Controller holds the live session state. All methods are safe for
// concurrent use; computation itself is pure and re-entrant.
type Controller struct {
	client    ReportClient
	prefs     PreferenceStore
	extractor *duration.Extractor
	query     domain.ReportQuery
	clock     Clock

	mu          sync.Mutex
	generation  uint64
	state       State
	calendarCfg domain.CalendarConfig
	compCfg     domain.CompensationConfig
}

// Options configures a Controller.
type Options struct {
	Client ReportClient
	Prefs  PreferenceStore
	// Query is the report window template; AccountID is filled in from the
	// session at sync time.
	Query domain.ReportQuery
	// Rules optionally override the duration extractor's key rules.
	Rules []duration.Rule
	Clock Clock
	// Calendar seeds the working calendar when no preference is stored.
	Calendar domain.CalendarConfig
}

// NewController builds a controller and restores persisted preferences.
func NewController(ctx context.Context, opts Options) *Controller {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	c := &Controller{
		client:      opts.Client,
		prefs:       opts.Prefs,
		extractor:   duration.NewExtractor(opts.Rules...),
		query:       opts.Query,
		clock:       clock,
		calendarCfg: opts.Calendar,
	}
	if len(c.calendarCfg.WeekendDays) == 0 && c.calendarCfg.DailyTargetHours == 0 {
		c.calendarCfg = calendar.DefaultConfig()
	}

	c.state.Session = c.prefs.LoadSession(ctx)
	c.compCfg = c.prefs.LoadCompensation(ctx)
	if stored := c.prefs.LoadCalendar(ctx); stored != nil {
		c.calendarCfg = *stored
	}
	return c
}

// Login authenticates and replaces the current session. Any in-flight sync
// for the previous identity becomes stale.
func (c *Controller) Login(ctx context.Context, creds teamlogger.Credentials) (domain.Session, error) {
	session, err := c.client.Authenticate(ctx, creds)
	if err != nil {
		return domain.Session{}, err
	}

	c.mu.Lock()
	c.generation++
	c.state = State{Session: session}
	c.mu.Unlock()

	if err := c.prefs.SaveSession(ctx, session); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to persist session")
	}
	return session, nil
}

// SignOut clears the session and resets every piece of derived state to its
// initial default. Calendar configuration deliberately survives sign-out.
func (c *Controller) SignOut(ctx context.Context) error {
	c.mu.Lock()
	c.generation++
	c.state = State{Session: domain.Session{TokenType: "Bearer"}}
	c.mu.Unlock()

	return c.prefs.ClearSession(ctx)
}

// Sync fetches the report for the current session and applies the derived
// totals. If the session identity changed while the fetch was in flight the
// result is discarded and ErrSuperseded returned. A failed fetch records the
// error and leaves prior totals untouched.
func (c *Controller) Sync(ctx context.Context) (domain.ReportTotals, error) {
	c.mu.Lock()
	session := c.state.Session
	if !session.Authenticated() {
		c.mu.Unlock()
		return domain.ReportTotals{}, ErrNotAuthenticated
	}
	gen := c.generation
	c.state.Syncing = true
	c.state.SyncError = ""
	query := c.query
	query.AccountID = session.Account.ID
	c.mu.Unlock()

	syncID := uuid.NewString()
	logger := zerolog.Ctx(ctx).With().Str("sync_id", syncID).Logger()
	logger.Debug().Str("account", session.Account.ID).Msg("fetching report")

	payload, err := c.client.FetchReport(ctx, session, query)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		logger.Info().Msg("discarding report for superseded session")
		return domain.ReportTotals{}, ErrSuperseded
	}
	c.state.Syncing = false

	if err != nil {
		c.state.SyncError = err.Error()
		return domain.ReportTotals{}, err
	}

	totals := report.Totals(payload, c.extractor)
	now := c.clock()
	c.state.Totals = &totals
	c.state.LastSyncedAt = &now
	if totals.Stats != nil && totals.Stats.OnComputerHours != nil && isFinite(*totals.Stats.OnComputerHours) {
		c.state.LoggedHours = *totals.Stats.OnComputerHours
	}

	logger.Info().
		Float64("total_worked_hours", totals.TotalWorkedHours).
		Msg("report applied")
	return totals, nil
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetLoggedHours overrides the logged-hours figure manually.
func (c *Controller) SetLoggedHours(hours float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !isFinite(hours) || hours < 0 {
		hours = 0
	}
	c.state.LoggedHours = hours
}

// CalendarConfig returns the active calendar configuration.
func (c *Controller) CalendarConfig() domain.CalendarConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calendarCfg
}

// SetCalendarConfig replaces and persists the calendar configuration.
func (c *Controller) SetCalendarConfig(ctx context.Context, cfg domain.CalendarConfig) error {
	c.mu.Lock()
	c.calendarCfg = cfg
	c.mu.Unlock()
	return c.prefs.SaveCalendar(ctx, cfg)
}

// Calendar computes the working-calendar result for today.
func (c *Controller) Calendar() domain.CalendarResult {
	c.mu.Lock()
	cfg := c.calendarCfg
	c.mu.Unlock()
	return calendar.Compute(cfg, c.clock())
}

// CompensationConfig returns the active salary preferences.
func (c *Controller) CompensationConfig() domain.CompensationConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.compCfg
}

// SetCompensationConfig replaces and persists the salary preferences.
func (c *Controller) SetCompensationConfig(ctx context.Context, cfg domain.CompensationConfig) error {
	cfg.Currency = compensation.NormalizeCurrency(cfg.Currency)
	c.mu.Lock()
	c.compCfg = cfg
	c.mu.Unlock()
	return c.prefs.SaveCompensation(ctx, cfg)
}

// Compensation computes the breakdown from the current calendar, logged
// hours and salary preferences.
func (c *Controller) Compensation() domain.CompensationResult {
	c.mu.Lock()
	cfg := c.compCfg
	hours := c.state.LoggedHours
	calCfg := c.calendarCfg
	c.mu.Unlock()

	cal := calendar.Compute(calCfg, c.clock())
	return compensation.Compute(cal, hours, cfg)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
