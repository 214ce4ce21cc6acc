// Package browser launches URLs in a web browser without blocking.
package browser

import (
	"fmt"
	"os/exec"

	"github.com/pkg/browser"
)

// Open launches url in a browser. A non-empty command overrides the
// system default and is started asynchronously, matching the behavior
// expected by menu and launcher scripts.
func Open(url, command string) error {
	if command != "" {
		cmd := exec.Command(command, url)
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("starting %s: %w", command, err)
		}
		return nil
	}
	return browser.OpenURL(url)
}
