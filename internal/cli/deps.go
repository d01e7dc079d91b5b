// Package cli provides the interactive console and host tool detection.
package cli

import (
	"os/exec"
	"runtime"
)

// DependencyChecker handles detection of host tools
type DependencyChecker struct {
	lookPath func(string) (string, error)
}

// NewDependencyChecker creates a new dependency checker
func NewDependencyChecker() *DependencyChecker {
	return &DependencyChecker{lookPath: exec.LookPath}
}

// DependencyStatus represents the status of a host tool
type DependencyStatus struct {
	Name      string
	Installed bool
	Path      string
	Required  bool
	Message   string
}

// CheckOpener checks that the browser opener is on PATH. It is optional: a
// missing opener only makes website navigation fail.
func (d *DependencyChecker) CheckOpener(name string) DependencyStatus {
	status := DependencyStatus{Name: name}

	path, err := d.lookPath(name)
	if err != nil {
		status.Message = "not found on PATH; websites will not open (try --dry-run or browser.command)"
		return status
	}

	status.Installed = true
	status.Path = path
	return status
}

// GetPlatform returns the current platform (linux, darwin, windows)
func GetPlatform() string {
	return runtime.GOOS
}
