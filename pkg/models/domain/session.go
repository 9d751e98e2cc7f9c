package domain

// Account identifies the authenticated user within their company.
type Account struct {
	ID          string `json:"id,omitempty"`
	CompanyID   string `json:"companyId,omitempty"`
	Name        string `json:"name,omitempty"`
	Username    string `json:"username,omitempty"`
	Email       string `json:"email,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
}

// DisplayName prefers the account's full name over the login username.
func (a Account) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.Username
}

// Session is the persisted authentication record.
type Session struct {
	AccessToken string   `json:"accessToken"`
	TokenType   string   `json:"tokenType"`
	Account     *Account `json:"account,omitempty"`
}

// Authenticated reports whether the session carries everything a report
// fetch needs: a token plus the account and company identifiers.
func (s Session) Authenticated() bool {
	return s.AccessToken != "" &&
		s.Account != nil &&
		s.Account.ID != "" &&
		s.Account.CompanyID != ""
}
