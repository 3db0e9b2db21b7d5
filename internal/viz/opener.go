package viz

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Opener shows a rendered figure in a browser.
type Opener struct {
	browser string
	goos    string
}

// NewOpener creates an opener for the given browser command.
// An empty browser or "system" uses the platform default.
func NewOpener(browser string) *Opener {
	if browser == "" {
		browser = "system"
	}
	return &Opener{
		browser: browser,
		goos:    runtime.GOOS,
	}
}

// Open opens the figure at fullPath without waiting for the browser to exit.
func (o *Opener) Open(fullPath string) error {
	// Fail fast if file doesn't exist
	if _, err := os.Stat(fullPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("figure does not exist: %s", fullPath)
		}
		return fmt.Errorf("checking figure: %w", err)
	}

	cmd, err := o.Command(fullPath)
	if err != nil {
		return err
	}
	return cmd.Start()
}

// Command returns the command that opens path.
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	if o.browser != "system" {
		return exec.Command(o.browser, path), nil
	}

	switch o.goos {
	case "darwin":
		return exec.Command("open", path), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", path), nil
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", o.goos)
	}
}
