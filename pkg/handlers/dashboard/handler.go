// Package dashboard exposes the session controller over HTTP for the
// dashboard frontend.
package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/de-tools/work-pulse/pkg/models/api"
	"github.com/de-tools/work-pulse/pkg/models/domain"
	"github.com/de-tools/work-pulse/pkg/services/compensation"
	dashboardsvc "github.com/de-tools/work-pulse/pkg/services/dashboard"
	"github.com/de-tools/work-pulse/pkg/store/teamlogger"
)

// Controller is the slice of the dashboard service the handlers need.
type Controller interface {
	Login(ctx context.Context, creds teamlogger.Credentials) (domain.Session, error)
	SignOut(ctx context.Context) error
	Sync(ctx context.Context) (domain.ReportTotals, error)
	Snapshot() dashboardsvc.State
	SetLoggedHours(hours float64)
	Calendar() domain.CalendarResult
	CalendarConfig() domain.CalendarConfig
	SetCalendarConfig(ctx context.Context, cfg domain.CalendarConfig) error
	Compensation() domain.CompensationResult
	CompensationConfig() domain.CompensationConfig
	SetCompensationConfig(ctx context.Context, cfg domain.CompensationConfig) error
}

type Handler struct {
	ctrl Controller
}

func NewHandler(ctrl Controller) *Handler {
	return &Handler{ctrl: ctrl}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	session, err := h.ctrl.Login(r.Context(), teamlogger.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		writeUpstreamError(w, r.Context(), err)
		return
	}

	writeJSON(w, r.Context(), http.StatusOK, api.Session{
		Authenticated: session.Authenticated(),
		Account:       session.Account,
	})
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	state := h.ctrl.Snapshot()
	writeJSON(w, r.Context(), http.StatusOK, api.Session{
		Authenticated: state.Session.Authenticated(),
		Account:       state.Session.Account,
	})
}

func (h *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.ctrl.SignOut(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Sync(w http.ResponseWriter, r *http.Request) {
	totals, err := h.ctrl.Sync(r.Context())
	switch {
	case errors.Is(err, dashboardsvc.ErrNotAuthenticated):
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	case errors.Is(err, dashboardsvc.ErrSuperseded):
		writeError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		writeUpstreamError(w, r.Context(), err)
		return
	}
	writeJSON(w, r.Context(), http.StatusOK, totals)
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	state := h.ctrl.Snapshot()
	writeJSON(w, r.Context(), http.StatusOK, api.Stats{
		Totals:       state.Totals,
		LoggedHours:  state.LoggedHours,
		LastSyncedAt: state.LastSyncedAt,
		SyncError:    state.SyncError,
		Syncing:      state.Syncing,
	})
}

func (h *Handler) PutLoggedHours(w http.ResponseWriter, r *http.Request) {
	var req api.LoggedHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Hours < 0 {
		writeError(w, http.StatusBadRequest, "hours must be non-negative")
		return
	}
	h.ctrl.SetLoggedHours(req.Hours)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r.Context(), http.StatusOK, api.Calendar{
		Config: h.ctrl.CalendarConfig(),
		Result: h.ctrl.Calendar(),
	})
}

func (h *Handler) PutCalendarConfig(w http.ResponseWriter, r *http.Request) {
	var cfg domain.CalendarConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	for _, d := range cfg.WeekendDays {
		if d < 0 || d > 6 {
			writeError(w, http.StatusBadRequest, "weekend days must be weekday indices 0-6")
			return
		}
	}
	if cfg.DailyTargetHours < 0 {
		writeError(w, http.StatusBadRequest, "daily target hours must be non-negative")
		return
	}
	if err := h.ctrl.SetCalendarConfig(r.Context(), cfg); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, r.Context(), http.StatusOK, api.Calendar{
		Config: h.ctrl.CalendarConfig(),
		Result: h.ctrl.Calendar(),
	})
}

func (h *Handler) GetCompensation(w http.ResponseWriter, r *http.Request) {
	result := h.ctrl.Compensation()
	writeJSON(w, r.Context(), http.StatusOK, api.Compensation{
		Result:                 result,
		FormattedBasePay:       compensation.FormatAmount(result.BasePay, result.Currency),
		FormattedBonusSubtotal: compensation.FormatAmount(result.BonusSubtotal, result.Currency),
		FormattedTotal:         compensation.FormatAmount(result.TotalCompensation, result.Currency),
	})
}

func (h *Handler) PutCompensationConfig(w http.ResponseWriter, r *http.Request) {
	var cfg domain.CompensationConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if (cfg.BaseSalary != nil && *cfg.BaseSalary < 0) || (cfg.HourlyRate != nil && *cfg.HourlyRate < 0) {
		writeError(w, http.StatusBadRequest, "salary values must be non-negative")
		return
	}
	if err := h.ctrl.SetCompensationConfig(r.Context(), cfg); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.GetCompensation(w, r)
}

// writeUpstreamError maps TeamLogger API failures to 502 so the frontend
// can tell "our server broke" apart from "the upstream rejected us"; the
// upstream message is passed through verbatim.
func writeUpstreamError(w http.ResponseWriter, ctx context.Context, err error) {
	zerolog.Ctx(ctx).Warn().Err(err).Msg("upstream request failed")

	var apiErr *teamlogger.APIError
	if errors.As(err, &apiErr) {
		writeError(w, http.StatusBadGateway, apiErr.Error())
		return
	}
	writeError(w, http.StatusBadGateway, err.Error())
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Error: msg})
}

func writeJSON(w http.ResponseWriter, ctx context.Context, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode response")
	}
}
