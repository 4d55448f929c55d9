package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// Exchanger performs the code-for-token and refresh-token exchanges
// against the HubSpot token endpoint. The zero value is ready to use;
// tests point TokenURL at a local server.
type Exchanger struct {
	HTTPClient  *http.Client
	TokenURL    string
	RedirectURI string
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

// ExchangeCode trades an authorization code for tokens. The requested
// scopes are attached to the returned credentials because HubSpot does not
// echo scopes in the token response.
func (e *Exchanger) ExchangeCode(ctx context.Context, code string, app AppConfig, scopes []string) (*Credentials, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("client_id", app.ClientID)
	form.Set("client_secret", app.ClientSecret)
	form.Set("redirect_uri", e.redirectURI())
	form.Set("code", code)
	return e.doTokenRequest(ctx, form, scopes, "")
}

// Refresh trades a refresh token for new tokens. If the provider omits a
// new refresh token, the previous one is retained.
func (e *Exchanger) Refresh(ctx context.Context, refreshToken string, app AppConfig, scopes []string) (*Credentials, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("client_id", app.ClientID)
	form.Set("client_secret", app.ClientSecret)
	form.Set("refresh_token", refreshToken)
	return e.doTokenRequest(ctx, form, scopes, refreshToken)
}

func (e *Exchanger) doTokenRequest(ctx context.Context, form url.Values, scopes []string, priorRefreshToken string) (*Credentials, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.tokenURL(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := e.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read token response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Debugf("token endpoint returned %d: %s", resp.StatusCode, body)
		return nil, &ExchangeError{
			StatusCode: resp.StatusCode,
			Message:    exchangeErrorMessage(body, resp.StatusCode),
		}
	}

	var tok tokenResponse
	if err = json.Unmarshal(body, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token response: %w", err)
	}

	creds := &Credentials{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    time.Now().UnixMilli() + tok.ExpiresIn*1000,
		TokenType:    tok.TokenType,
		Scopes:       scopes,
	}
	if creds.RefreshToken == "" {
		creds.RefreshToken = priorRefreshToken
	}
	return creds, nil
}

// exchangeErrorMessage pulls a human-readable message out of a provider
// error body, falling back to a generic status message.
func exchangeErrorMessage(body []byte, status int) string {
	if msg := gjson.GetBytes(body, "message"); msg.Exists() && msg.String() != "" {
		return msg.String()
	}
	if msg := gjson.GetBytes(body, "error_description"); msg.Exists() && msg.String() != "" {
		return msg.String()
	}
	return fmt.Sprintf("token exchange failed: %d", status)
}

func (e *Exchanger) client() *http.Client {
	if e.HTTPClient != nil {
		return e.HTTPClient
	}
	return &http.Client{Timeout: 30 * time.Second}
}

func (e *Exchanger) tokenURL() string {
	if e.TokenURL != "" {
		return e.TokenURL
	}
	return TokenEndpoint
}

func (e *Exchanger) redirectURI() string {
	if e.RedirectURI != "" {
		return e.RedirectURI
	}
	return CallbackURL
}
