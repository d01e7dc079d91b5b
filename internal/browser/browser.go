// Package browser opens website-navigation targets in the user's browser.
package browser

import (
	"fmt"
	"os/exec"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/bgdnvk/parley/internal/cli"
)

// Launcher opens a URL. Callers treat it as fire-and-forget.
type Launcher interface {
	Open(url string) error
}

// BuildURL assembles the navigation URL: https:// is added when the domain
// carries no scheme, and a non-empty query becomes a "/"-prefixed path with
// spaces turned into "+".
func BuildURL(domain, query string) string {
	url := domain
	if !strings.Contains(url, "://") {
		url = "https://" + url
	}
	if q := strings.TrimSpace(query); q != "" {
		url += "/" + strings.ReplaceAll(q, " ", "+")
	}
	return url
}

// OpenerCommand returns the platform opener and the arguments that precede
// the URL.
func OpenerCommand(platform string) (string, []string) {
	switch platform {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	case "darwin":
		return "open", nil
	default:
		return "xdg-open", nil
	}
}

// SystemLauncher starts the platform opener without waiting for it.
type SystemLauncher struct {
	command string
	args    []string
	logger  *zap.Logger
}

// NewSystemLauncher uses override when set ("firefox --new-tab" style, split
// on whitespace), else the platform default.
func NewSystemLauncher(override string, logger *zap.Logger) *SystemLauncher {
	if logger == nil {
		logger = zap.NewNop()
	}
	command, args := OpenerCommand(cli.GetPlatform())
	if fields := strings.Fields(override); len(fields) > 0 {
		command, args = fields[0], fields[1:]
	}
	return &SystemLauncher{command: command, args: args, logger: logger}
}

// Command returns the opener executable name.
func (l *SystemLauncher) Command() string {
	return l.command
}

func (l *SystemLauncher) Open(url string) error {
	args := append(append([]string{}, l.args...), url)
	cmd := exec.Command(l.command, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch %s: %w", l.command, err)
	}
	l.logger.Debug("browser launched", zap.String("command", l.command), zap.String("url", url), zap.Int("pid", cmd.Process.Pid))

	go func() {
		if err := cmd.Wait(); err != nil {
			l.logger.Debug("browser opener exited", zap.String("command", l.command), zap.Error(err))
		}
	}()
	return nil
}

// DryRun records URLs instead of launching anything.
type DryRun struct {
	mu     sync.Mutex
	opened []string
}

func (d *DryRun) Open(url string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.opened = append(d.opened, url)
	return nil
}

// Opened returns the URLs passed to Open so far.
func (d *DryRun) Opened() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.opened...)
}
