package oauth

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testApp = AppConfig{ClientID: "client-id", ClientSecret: "client-secret"}

func newTestExchanger(srv *httptest.Server) *Exchanger {
	return &Exchanger{
		HTTPClient:  srv.Client(),
		TokenURL:    srv.URL,
		RedirectURI: "http://localhost:3847/callback",
	}
}

func TestExchangeCode_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "client-id", r.PostForm.Get("client_id"))
		assert.Equal(t, "client-secret", r.PostForm.Get("client_secret"))
		assert.Equal(t, "http://localhost:3847/callback", r.PostForm.Get("redirect_uri"))
		assert.Equal(t, "auth-code", r.PostForm.Get("code"))
		fmt.Fprint(w, `{"access_token":"at-1","refresh_token":"rt-1","expires_in":1800,"token_type":"bearer"}`)
	}))
	defer srv.Close()

	before := time.Now().UnixMilli()
	creds, err := newTestExchanger(srv).ExchangeCode(context.Background(), "auth-code", testApp, []string{"oauth"})
	require.NoError(t, err)
	after := time.Now().UnixMilli()

	assert.Equal(t, "at-1", creds.AccessToken)
	assert.Equal(t, "rt-1", creds.RefreshToken)
	assert.Equal(t, "bearer", creds.TokenType)
	assert.Equal(t, []string{"oauth"}, creds.Scopes)
	assert.GreaterOrEqual(t, creds.ExpiresAt, before+1800*1000)
	assert.LessOrEqual(t, creds.ExpiresAt, after+1800*1000)
}

func TestRefresh_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "rt-old", r.PostForm.Get("refresh_token"))
		fmt.Fprint(w, `{"access_token":"at-2","refresh_token":"rt-new","expires_in":1800,"token_type":"bearer"}`)
	}))
	defer srv.Close()

	creds, err := newTestExchanger(srv).Refresh(context.Background(), "rt-old", testApp, nil)
	require.NoError(t, err)
	assert.Equal(t, "at-2", creds.AccessToken)
	assert.Equal(t, "rt-new", creds.RefreshToken)
}

func TestRefresh_RetainsPriorRefreshToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"access_token":"at-2","expires_in":1800,"token_type":"bearer"}`)
	}))
	defer srv.Close()

	creds, err := newTestExchanger(srv).Refresh(context.Background(), "rt-old", testApp, nil)
	require.NoError(t, err)
	assert.Equal(t, "rt-old", creds.RefreshToken)
}

func TestExchange_ErrorMessageFromBody(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"hubspot message field", 400, `{"status":"BAD_AUTH_CODE","message":"authorization code expired"}`, "authorization code expired"},
		{"oauth error_description", 400, `{"error":"invalid_grant","error_description":"refresh token revoked"}`, "refresh token revoked"},
		{"unparseable body", 502, `<html>bad gateway</html>`, "token exchange failed: 502"},
		{"empty message", 401, `{"message":""}`, "token exchange failed: 401"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				fmt.Fprint(w, tc.body)
			}))
			defer srv.Close()

			_, err := newTestExchanger(srv).ExchangeCode(context.Background(), "code", testApp, nil)
			var xerr *ExchangeError
			require.ErrorAs(t, err, &xerr)
			assert.Equal(t, tc.status, xerr.StatusCode)
			assert.Equal(t, tc.message, xerr.Message)
		})
	}
}

func TestExchange_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestExchanger(srv).ExchangeCode(ctx, "code", testApp, nil)
	require.Error(t, err)
}
