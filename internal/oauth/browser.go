package oauth

import (
	"fmt"
	"os/exec"
	"runtime"

	log "github.com/sirupsen/logrus"
	"github.com/skratchdot/open-golang/open"
)

// OpenBrowser opens the given URL in the user's default browser without
// waiting for it to exit. Failure here never aborts a login flow; the
// caller prints the URL so the operator can open it manually.
func OpenBrowser(rawURL string) error {
	err := open.Start(rawURL)
	if err == nil {
		return nil
	}
	log.Debugf("open-golang failed: %v, trying platform command", err)
	return openPlatform(rawURL)
}

func openPlatform(rawURL string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", rawURL)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL)
	default:
		for _, name := range []string{"xdg-open", "x-www-browser", "firefox", "chromium", "google-chrome"} {
			if _, err := exec.LookPath(name); err == nil {
				cmd = exec.Command(name, rawURL)
				break
			}
		}
		if cmd == nil {
			return fmt.Errorf("no suitable browser found for %s", runtime.GOOS)
		}
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start browser: %w", err)
	}
	return nil
}
