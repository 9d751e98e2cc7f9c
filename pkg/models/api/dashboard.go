package api

import (
	"time"

	"github.com/de-tools/work-pulse/pkg/models/domain"
)

// Error is the uniform error envelope for the dashboard API.
type Error struct {
	Error string `json:"error"`
}

// LoginRequest is the POST /session body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Session describes the signed-in account, with the token omitted.
type Session struct {
	Authenticated bool            `json:"authenticated"`
	Account       *domain.Account `json:"account,omitempty"`
}

// Stats is the current report state.
type Stats struct {
	Totals       *domain.ReportTotals `json:"totals,omitempty"`
	LoggedHours  float64              `json:"loggedHours"`
	LastSyncedAt *time.Time           `json:"lastSyncedAt,omitempty"`
	SyncError    string               `json:"syncError,omitempty"`
	Syncing      bool                 `json:"syncing"`
}

// Calendar pairs the active configuration with its derived result.
type Calendar struct {
	Config domain.CalendarConfig `json:"config"`
	Result domain.CalendarResult `json:"result"`
}

// Compensation pairs the numeric breakdown with display-ready amounts.
type Compensation struct {
	Result                 domain.CompensationResult `json:"result"`
	FormattedBasePay       string                    `json:"formattedBasePay"`
	FormattedBonusSubtotal string                    `json:"formattedBonusSubtotal"`
	FormattedTotal         string                    `json:"formattedTotal"`
}

// LoggedHoursRequest overrides the logged-hours figure manually.
type LoggedHoursRequest struct {
	Hours float64 `json:"hours"`
}
