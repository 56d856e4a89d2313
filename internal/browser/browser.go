// Package browser opens article links in the user's default browser.
package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// launch starts the platform opener. Replaced in tests.
var launch = defaultLaunch

func defaultLaunch(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// Validate checks that rawURL is an absolute http or https link.
func Validate(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open URL with scheme %q (only http/https allowed)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid URL %q: missing host", rawURL)
	}
	return nil
}

// Open launches the default browser on rawURL without waiting for it.
func Open(rawURL string) error {
	if err := Validate(rawURL); err != nil {
		return err
	}

	switch runtime.GOOS {
	case "darwin":
		return launch("open", rawURL)
	case "windows":
		// rundll32 avoids cmd's shell interpretation of the URL
		return launch("rundll32", "url.dll,FileProtocolHandler", rawURL)
	default:
		return launch("xdg-open", rawURL)
	}
}
