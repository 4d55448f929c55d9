package oauth

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startTestServer(t *testing.T, state string) *CallbackServer {
	t.Helper()
	srv := NewCallbackServer(0, state)
	require.NoError(t, srv.Start())
	t.Cleanup(srv.Close)
	return srv
}

func callbackURL(srv *CallbackServer, query string) string {
	return fmt.Sprintf("http://127.0.0.1:%d%s?%s", srv.Port(), CallbackPath, query)
}

func TestCallbackServer_Success(t *testing.T) {
	srv := startTestServer(t, "expected-state")

	resp, err := http.Get(callbackURL(srv, "code=auth-code-1&state=expected-state"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Authorization Successful")

	result, err := srv.Wait(context.Background(), time.Second)
	require.NoError(t, err)
	assert.Equal(t, "auth-code-1", result.Code)
	assert.Equal(t, "expected-state", result.State)
}

func TestCallbackServer_StateMismatch(t *testing.T) {
	srv := startTestServer(t, "expected-state")

	resp, err := http.Get(callbackURL(srv, "code=auth-code-1&state=forged"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	_, err = srv.Wait(context.Background(), time.Second)
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reason, "CSRF")
}

func TestCallbackServer_MissingParams(t *testing.T) {
	srv := startTestServer(t, "expected-state")

	resp, err := http.Get(callbackURL(srv, "state=expected-state"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	_, err = srv.Wait(context.Background(), time.Second)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestCallbackServer_ProviderError(t *testing.T) {
	srv := startTestServer(t, "expected-state")

	resp, err := http.Get(callbackURL(srv, "error=access_denied&error_description=User+rejected"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	_, err = srv.Wait(context.Background(), time.Second)
	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "access_denied", perr.Code)
	assert.Equal(t, "User rejected", perr.Description)
}

func TestCallbackServer_FirstOutcomeWins(t *testing.T) {
	srv := startTestServer(t, "expected-state")

	resp, err := http.Get(callbackURL(srv, "code=first&state=expected-state"))
	require.NoError(t, err)
	resp.Body.Close()

	// A second redirect must not alter the delivered result.
	resp, err = http.Get(callbackURL(srv, "code=second&state=expected-state"))
	require.NoError(t, err)
	resp.Body.Close()

	result, err := srv.Wait(context.Background(), time.Second)
	require.NoError(t, err)
	assert.Equal(t, "first", result.Code)
}

func TestCallbackServer_ErrorThenValidCallback(t *testing.T) {
	srv := startTestServer(t, "expected-state")

	resp, err := http.Get(callbackURL(srv, "code=x&state=forged"))
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(callbackURL(srv, "code=real&state=expected-state"))
	require.NoError(t, err)
	resp.Body.Close()

	// The mismatch arrived first, so the flow fails.
	_, err = srv.Wait(context.Background(), time.Second)
	require.Error(t, err)
}

func TestCallbackServer_OtherPathsDoNotConsumeSlot(t *testing.T) {
	srv := startTestServer(t, "expected-state")

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/favicon.ico", srv.Port()))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// The server is still waiting for the real callback.
	resp, err = http.Get(callbackURL(srv, "code=real&state=expected-state"))
	require.NoError(t, err)
	resp.Body.Close()

	result, err := srv.Wait(context.Background(), time.Second)
	require.NoError(t, err)
	assert.Equal(t, "real", result.Code)
}

func TestCallbackServer_Timeout(t *testing.T) {
	srv := startTestServer(t, "expected-state")

	_, err := srv.Wait(context.Background(), 50*time.Millisecond)
	var terr *TimeoutError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, 50*time.Millisecond, terr.After)
}

func TestCallbackServer_ContextCancel(t *testing.T) {
	srv := startTestServer(t, "expected-state")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := srv.Wait(ctx, time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCallbackServer_CloseReleasesPort(t *testing.T) {
	srv := NewCallbackServer(0, "state")
	require.NoError(t, srv.Start())
	port := srv.Port()
	srv.Close()

	// The port must be bindable again after Close.
	ln, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	require.NoError(t, err)
	ln.Close()
}

func TestCallbackServer_BindError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	port := ln.Addr().(*net.TCPAddr).Port

	srv := NewCallbackServer(port, "state")
	err = srv.Start()
	var berr *BindError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, port, berr.Port)
	assert.Contains(t, berr.Error(), "already in use")
}

func TestCallbackServer_CloseIsIdempotent(t *testing.T) {
	srv := startTestServer(t, "state")
	srv.Close()
	srv.Close()
}
