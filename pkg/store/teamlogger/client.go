// Package teamlogger is the HTTP client for the TeamLogger API: token
// authentication plus the monthly report endpoint. The report payload's
// schema is not contractually fixed, so it is returned as decoded JSON and
// interpreted by the services/report package.
package teamlogger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/work-pulse/pkg/models/domain"
	"github.com/rs/zerolog"
)

// DefaultBaseURL points at the public TeamLogger API.
const DefaultBaseURL = "https://api2.teamlogger.com/api"

const defaultTimeout = 30 * time.Second

// APIError carries a non-2xx upstream response verbatim so callers can
// surface status, reason and body as one message.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("teamlogger request failed with %s. %s", e.Status, e.Body)
}

// Credentials is the login request. GrantType defaults to "password".
type Credentials struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	GrantType string `json:"grantType"`
}

// Client talks to one TeamLogger deployment.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option adjusts a Client.
type Option func(*Client)

// WithBaseURL overrides the API root, mainly for tests and self-hosted
// deployments.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient substitutes the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// NewClient builds a client against DefaultBaseURL unless overridden.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Authenticate exchanges credentials for a session token. Validation
// happens before any network call.
func (c *Client) Authenticate(ctx context.Context, creds Credentials) (domain.Session, error) {
	logger := zerolog.Ctx(ctx)

	if creds.Username == "" || creds.Password == "" {
		return domain.Session{}, fmt.Errorf("both username and password are required")
	}
	if creds.GrantType == "" {
		creds.GrantType = "password"
	}

	body, err := json.Marshal(creds)
	if err != nil {
		return domain.Session{}, fmt.Errorf("failed to encode credentials: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/Token", bytes.NewReader(body))
	if err != nil {
		return domain.Session{}, fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	payload, err := c.do(req)
	if err != nil {
		logger.Warn().Err(err).Msg("authentication failed")
		return domain.Session{}, err
	}

	session, err := sessionFromPayload(payload)
	if err != nil {
		return domain.Session{}, err
	}

	logger.Info().Str("account", session.Account.DisplayName()).Msg("authenticated")
	return session, nil
}

// FetchReport retrieves the raw report payload for the session's company.
// The caller owns interpretation of the payload.
func (c *Client) FetchReport(ctx context.Context, session domain.Session, query domain.ReportQuery) (any, error) {
	logger := zerolog.Ctx(ctx)

	if session.AccessToken == "" {
		return nil, fmt.Errorf("a valid API token is required")
	}
	if session.Account == nil || session.Account.CompanyID == "" || query.AccountID == "" {
		return nil, fmt.Errorf("both companyId and accountId must be provided")
	}

	u, err := url.Parse(fmt.Sprintf("%s/companies/%s/reports_new2", c.baseURL, session.Account.CompanyID))
	if err != nil {
		return nil, fmt.Errorf("failed to build report url: %w", err)
	}

	params := u.Query()
	params.Set("accountId", query.AccountID)
	if query.StartTime != 0 {
		params.Set("startTime", strconv.FormatInt(query.StartTime, 10))
	}
	if query.EndTime != 0 {
		params.Set("endTime", strconv.FormatInt(query.EndTime, 10))
	}
	params.Set("dayStartCutOff", strconv.Itoa(query.DayStartCutOff))
	params.Set("dayEndCutOff", strconv.Itoa(query.DayEndCutOff))
	params.Set("suppressDetails", strconv.FormatBool(query.SuppressDetails))
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create report request: %w", err)
	}

	tokenType := session.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}
	req.Header.Set("Authorization", tokenType+" "+session.AccessToken)

	payload, err := c.do(req)
	if err != nil {
		logger.Warn().Err(err).Str("company", session.Account.CompanyID).Msg("report fetch failed")
		return nil, err
	}
	return payload, nil
}

// do executes the request and decodes a 2xx JSON body; non-2xx responses
// become an *APIError carrying the body text.
func (c *Client) do(req *http.Request) (any, error) {
	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", req.URL.Path, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return payload, nil
}

// NormalizeSuppressDetails coerces the loosely-typed suppressDetails input:
// booleans pass through, the strings "true"/"false" (any case, padded) are
// parsed, and anything else is false.
func NormalizeSuppressDetails(flag any) bool {
	switch v := flag.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true":
			return true
		case "false":
			return false
		}
	}
	return false
}

// sessionFromPayload builds a Session from the loosely-shaped token
// response. accessToken is mandatory; tokenType defaults to Bearer; account
// identifiers may arrive as strings or numbers.
func sessionFromPayload(payload any) (domain.Session, error) {
	root, _ := payload.(map[string]any)

	token, _ := root["accessToken"].(string)
	if token == "" {
		return domain.Session{}, fmt.Errorf("authentication response did not include an access token")
	}

	session := domain.Session{
		AccessToken: token,
		TokenType:   "Bearer",
		Account:     &domain.Account{},
	}
	if tt, ok := root["tokenType"].(string); ok && tt != "" {
		session.TokenType = tt
	}

	if acc, ok := root["account"].(map[string]any); ok {
		session.Account.ID = flexString(acc["id"])
		session.Account.CompanyID = flexString(acc["companyId"])
		session.Account.Name = flexString(acc["name"])
		session.Account.Username = flexString(acc["username"])
		session.Account.Email = flexString(acc["email"])
		if company, ok := acc["company"].(map[string]any); ok {
			session.Account.CompanyName = flexString(company["name"])
		}
	}
	return session, nil
}

// flexString renders string or numeric JSON values as strings; numeric IDs
// are common in older API responses.
func flexString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		if s == float64(int64(s)) {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	}
	return ""
}

// DefaultQuery mirrors the report filters the dashboard uses out of the
// box: whole-day window with an open end cutoff and full details.
func DefaultQuery(accountID string, start, end time.Time) domain.ReportQuery {
	q := domain.ReportQuery{
		AccountID:      accountID,
		DayStartCutOff: 0,
		DayEndCutOff:   -1,
	}
	if !start.IsZero() {
		q.StartTime = start.UnixMilli()
	}
	if !end.IsZero() {
		q.EndTime = end.UnixMilli()
	}
	return q
}
