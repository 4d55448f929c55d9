package oauth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

const successHTML = `<!DOCTYPE html>
<html>
<head><title>Authorization Successful</title>
<style>
body { font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; display: flex; justify-content: center; align-items: center; min-height: 100vh; margin: 0; background: #2d7a4f; color: white; }
.box { text-align: center; padding: 2rem; background: rgba(255,255,255,0.1); border-radius: 12px; }
</style></head>
<body><div class="box">
<h1>Authorization Successful</h1>
<p>You can close this window and return to the CLI.</p>
</div></body>
</html>`

const failureHTML = `<!DOCTYPE html>
<html>
<head><title>Authorization Failed</title>
<style>
body { font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; display: flex; justify-content: center; align-items: center; min-height: 100vh; margin: 0; background: #a33a2f; color: white; }
.box { text-align: center; padding: 2rem; background: rgba(255,255,255,0.1); border-radius: 12px; }
</style></head>
<body><div class="box">
<h1>Authorization Failed</h1>
<p>%s</p>
<p>Please try again from the CLI.</p>
</div></body>
</html>`

// CallbackResult carries the query parameters of a validated redirect.
type CallbackResult struct {
	Code  string
	State string
}

// CallbackServer is a short-lived local HTTP server that accepts exactly
// one authorization redirect. The first terminal outcome wins: later
// requests to the callback path cannot alter an already delivered result.
type CallbackServer struct {
	port          int
	expectedState string

	server   *http.Server
	listener net.Listener

	result chan *CallbackResult
	errs   chan error

	once      sync.Once
	closeOnce sync.Once
}

// NewCallbackServer constructs a callback server bound to the given port.
// Port 0 picks a free port; use Port after Start to discover it.
func NewCallbackServer(port int, expectedState string) *CallbackServer {
	return &CallbackServer{
		port:          port,
		expectedState: expectedState,
		result:        make(chan *CallbackResult, 1),
		errs:          make(chan error, 1),
	}
}

// Start binds the listener and begins serving. The bind is synchronous so
// the server is guaranteed to be accepting connections before the browser
// is launched. A port-in-use failure is reported as a BindError.
func (s *CallbackServer) Start() error {
	ln, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", s.port))
	if err != nil {
		return &BindError{Port: s.port, Err: err}
	}
	s.listener = ln

	mux := http.NewServeMux()
	mux.HandleFunc(CallbackPath, s.handleCallback)

	s.server = &http.Server{
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		if errServe := s.server.Serve(ln); errServe != nil && !errors.Is(errServe, http.ErrServerClosed) {
			s.fail(errServe)
		}
	}()

	log.Debugf("oauth callback server listening on %s", ln.Addr())
	return nil
}

// Port returns the bound port. Only valid after a successful Start.
func (s *CallbackServer) Port() int {
	if s.listener == nil {
		return s.port
	}
	return s.listener.Addr().(*net.TCPAddr).Port
}

// Wait blocks until the first valid callback, a server failure, the
// timeout, or context cancellation, whichever comes first.
func (s *CallbackServer) Wait(ctx context.Context, timeout time.Duration) (*CallbackResult, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-s.result:
		return res, nil
	case err := <-s.errs:
		return nil, err
	case <-timer.C:
		return nil, &TimeoutError{After: timeout}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close releases the port. Safe to call multiple times; every exit path of
// the flow must end up here so no socket leaks across invocations.
func (s *CallbackServer) Close() {
	s.closeOnce.Do(func() {
		if s.server == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.server.Shutdown(ctx); err != nil {
			_ = s.server.Close()
		}
	})
}

func (s *CallbackServer) handleCallback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if errCode := q.Get("error"); errCode != "" {
		desc := q.Get("error_description")
		perr := &ProviderError{Code: errCode, Description: desc}
		s.writeFailure(w, perr.Error())
		s.fail(perr)
		return
	}

	code := q.Get("code")
	state := q.Get("state")
	if code == "" || state == "" {
		s.writeFailure(w, "Missing authorization code or state parameter.")
		s.fail(&ValidationError{Reason: "missing authorization code or state parameter"})
		return
	}

	if state != s.expectedState {
		s.writeFailure(w, "State parameter mismatch. Possible CSRF attack.")
		s.fail(&ValidationError{Reason: "state parameter mismatch, possible CSRF attack"})
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprint(w, successHTML)
	s.resolve(&CallbackResult{Code: code, State: state})
}

func (s *CallbackServer) writeFailure(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusBadRequest)
	_, _ = fmt.Fprintf(w, failureHTML, message)
}

// resolve and fail share a sync.Once so only the first terminal transition
// is observable. The channels are buffered so neither ever blocks a handler.
func (s *CallbackServer) resolve(res *CallbackResult) {
	s.once.Do(func() { s.result <- res })
}

func (s *CallbackServer) fail(err error) {
	s.once.Do(func() { s.errs <- err })
}
