package oauth

import "time"

// AppConfig holds the client credentials of the HubSpot app used for the
// OAuth flow. It is provided by the operator and persisted so later
// invocations can refresh tokens without re-entering it.
type AppConfig struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
}

// Credentials are the tokens obtained from a code exchange or refresh.
// ExpiresAt is an absolute Unix timestamp in milliseconds computed from the
// provider-reported expires_in at issue time.
type Credentials struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	ExpiresAt    int64    `json:"expiresAt"`
	TokenType    string   `json:"tokenType"`
	Scopes       []string `json:"scopes"`
}

// Expired reports whether the credentials should be refreshed before use.
// Credentials count as expired once the current time reaches
// ExpiresAt minus RefreshBuffer. Missing credentials are always expired.
func (c *Credentials) Expired() bool {
	return c.ExpiredAt(time.Now())
}

// ExpiredAt is Expired evaluated at an arbitrary point in time.
func (c *Credentials) ExpiredAt(now time.Time) bool {
	if c == nil || c.AccessToken == "" {
		return true
	}
	return now.UnixMilli() >= c.ExpiresAt-RefreshBuffer.Milliseconds()
}

// TimeUntilExpiry returns the remaining validity of the access token,
// never negative.
func (c *Credentials) TimeUntilExpiry() time.Duration {
	return c.TimeUntilExpiryAt(time.Now())
}

// TimeUntilExpiryAt is TimeUntilExpiry evaluated at an arbitrary point in time.
func (c *Credentials) TimeUntilExpiryAt(now time.Time) time.Duration {
	if c == nil {
		return 0
	}
	remaining := time.Duration(c.ExpiresAt-now.UnixMilli()) * time.Millisecond
	if remaining < 0 {
		return 0
	}
	return remaining
}
