// Package oauth implements the HubSpot OAuth 2.0 Authorization Code flow:
// CSRF state generation, a single-shot local callback server, browser
// launching, token exchange and expiry-aware credential handling.
package oauth

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
)

// Flow runs one complete browser-based login. Zero-value fields fall back
// to the fixed HubSpot endpoints and defaults; tests override them to
// point at local servers.
type Flow struct {
	App    AppConfig
	Scopes []string

	Port         int
	Timeout      time.Duration
	AuthorizeURL string
	Exchanger    *Exchanger

	// OpenBrowser launches the authorization URL. Defaults to OpenBrowser.
	OpenBrowser func(url string) error

	// Out receives user-facing progress messages. Defaults to os.Stdout.
	Out io.Writer
}

// Login performs the full flow: generate state, start the callback server,
// open the browser, await the redirect, and exchange the code for tokens.
// The callback server is guaranteed to be listening before the browser
// launches, and is torn down on every exit path. No credentials are
// persisted here; that is the caller's job, after a successful return.
func (f *Flow) Login(ctx context.Context) (*Credentials, error) {
	state, err := GenerateState()
	if err != nil {
		return nil, err
	}

	port := f.Port
	if port == 0 {
		port = CallbackPort
	}
	redirectURI := fmt.Sprintf("http://localhost:%d%s", port, CallbackPath)

	endpoint := f.AuthorizeURL
	if endpoint == "" {
		endpoint = AuthorizeEndpoint
	}
	authURL := authorizationURL(endpoint, redirectURI, f.App.ClientID, state, f.scopes())

	srv := NewCallbackServer(port, state)
	if err = srv.Start(); err != nil {
		return nil, err
	}
	defer srv.Close()

	out := f.out()
	fmt.Fprintln(out, "Opening browser for HubSpot authorization...")
	if err = f.openBrowser(authURL); err != nil {
		log.Debugf("browser launch failed: %v", err)
		fmt.Fprintln(out, "Could not open a browser automatically.")
	}
	fmt.Fprintln(out, "Waiting for authorization...")
	fmt.Fprintln(out, "If the browser did not open, visit this URL manually:")
	fmt.Fprintln(out, authURL)

	result, err := srv.Wait(ctx, f.timeout())
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(out, "Exchanging authorization code for tokens...")
	ex := f.Exchanger
	if ex == nil {
		ex = &Exchanger{RedirectURI: redirectURI}
	}
	creds, err := ex.ExchangeCode(ctx, result.Code, f.App, f.scopes())
	if err != nil {
		return nil, err
	}
	return creds, nil
}

func (f *Flow) scopes() []string {
	if len(f.Scopes) > 0 {
		return f.Scopes
	}
	return DefaultScopes
}

func (f *Flow) timeout() time.Duration {
	if f.Timeout > 0 {
		return f.Timeout
	}
	return CallbackTimeout
}

func (f *Flow) openBrowser(url string) error {
	if f.OpenBrowser != nil {
		return f.OpenBrowser(url)
	}
	return OpenBrowser(url)
}

func (f *Flow) out() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}
