// Package hubspot provides a typed client for the HubSpot CRM v3/v4 REST
// API with transparent OAuth token refresh.
package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"hubspot-cli/internal/config"
	"hubspot-cli/internal/oauth"
)

// DefaultBaseURL is the HubSpot API host.
const DefaultBaseURL = "https://api.hubapi.com"

// ErrNotConfigured is returned when no authentication has been set up.
var ErrNotConfigured = errors.New(`not configured. Run "hs auth" or "hs auth login" first`)

// AuthError wraps a credential failure that requires the operator to log
// in again, as opposed to a transient API error.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf(`authentication failed: %v. Run "hs auth login" to log in again`, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// APIError is a non-success response from the HubSpot API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

// Client issues authenticated requests against the HubSpot API. Zero-value
// BaseURL, HTTPClient and Exchanger fall back to production defaults;
// tests override them.
type Client struct {
	Store      *config.Store
	BaseURL    string
	HTTPClient *http.Client
	Exchanger  *oauth.Exchanger
}

// New returns a client backed by the given config store.
func New(store *config.Store) *Client {
	return &Client{Store: store}
}

// token resolves the bearer token for the configured auth method. For
// OAuth it checks expiry against the refresh buffer and transparently
// refreshes, persisting the renewed credentials before use. A failed
// refresh is surfaced as an AuthError and is not retried.
func (c *Client) token(ctx context.Context) (string, error) {
	cfg, err := c.Store.Load()
	if err != nil {
		return "", err
	}

	if cfg.AuthMethod == config.AuthMethodOAuth || (!cfg.HasToken() && cfg.HasOAuth()) {
		return c.oauthToken(ctx, cfg)
	}
	if cfg.HasToken() {
		return cfg.AccessToken, nil
	}
	return "", ErrNotConfigured
}

func (c *Client) oauthToken(ctx context.Context, cfg *config.Config) (string, error) {
	creds := cfg.OAuth
	if creds == nil || creds.AccessToken == "" {
		return "", ErrNotConfigured
	}
	if !creds.Expired() {
		return creds.AccessToken, nil
	}
	if creds.RefreshToken == "" || cfg.OAuthApp == nil {
		return "", &AuthError{Err: errors.New("access token expired and no refresh token is available")}
	}

	log.Debug("access token expired, refreshing")
	renewed, err := c.exchanger().Refresh(ctx, creds.RefreshToken, *cfg.OAuthApp, creds.Scopes)
	if err != nil {
		return "", &AuthError{Err: err}
	}
	if err = c.Store.SetOAuthCredentials(renewed); err != nil {
		return "", fmt.Errorf("failed to persist refreshed credentials: %w", err)
	}
	return renewed.AccessToken, nil
}

// do issues one API request and decodes the response into out when
// provided.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	endpoint := c.baseURL() + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, errMarshal := json.Marshal(body)
		if errMarshal != nil {
			return fmt.Errorf("failed to encode request body: %w", errMarshal)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Debugf("hubspot %s %s", method, path)
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    apiErrorMessage(raw, resp.StatusCode),
		}
	}

	if out != nil && len(raw) > 0 {
		if err = json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}

func apiErrorMessage(body []byte, status int) string {
	if msg := gjson.GetBytes(body, "message"); msg.Exists() && msg.String() != "" {
		return msg.String()
	}
	return fmt.Sprintf("request failed with status %d", status)
}

func (c *Client) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return DefaultBaseURL
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 30 * time.Second}
}

func (c *Client) exchanger() *oauth.Exchanger {
	if c.Exchanger != nil {
		return c.Exchanger
	}
	return &oauth.Exchanger{}
}
