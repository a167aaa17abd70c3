// Package terminal probes the capabilities of the process's terminal:
// whether output is interactive and whether colored output is appropriate.
// The CLI uses this to choose between human-oriented and plain log output.
package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// ciEnvVars contains common CI environment variables.
var ciEnvVars = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"JENKINS_URL",
	"BUILDKITE",
	"DRONE",
	"TF_BUILD",
}

// Capabilities reports terminal features relevant to output formatting.
type Capabilities interface {
	IsInteractive() bool
	SupportsColor() bool
}

// Options force interactive or color behavior from the command line,
// overriding environment detection.
type Options struct {
	ForceInteractive    bool
	ForceNonInteractive bool
	ForceColor          bool
	DisableColor        bool
}

// DefaultCapabilities implements Capabilities against the real process
// environment.
type DefaultCapabilities struct {
	options Options
}

// NewCapabilities creates a capability prober with the given overrides.
func NewCapabilities(options Options) *DefaultCapabilities {
	return &DefaultCapabilities{options: options}
}

// IsInteractive reports whether output goes to a human at a terminal.
// Command-line overrides win, then CI detection, then a TTY check on
// stdout and stderr.
func (c *DefaultCapabilities) IsInteractive() bool {
	if c.options.ForceInteractive {
		return true
	}
	if c.options.ForceNonInteractive {
		return false
	}
	if isCIEnvironment() {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
}

// SupportsColor reports whether output should use ANSI colors.
// Command-line overrides win, then CLICOLOR_FORCE, then NO_COLOR, then
// TERM=dumb, and finally interactivity.
func (c *DefaultCapabilities) SupportsColor() bool {
	if c.options.ForceColor {
		return true
	}
	if c.options.DisableColor {
		return false
	}
	if v := os.Getenv("CLICOLOR_FORCE"); v != "" && isTruthy(v) {
		return true
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return c.IsInteractive()
}

func isCIEnvironment() bool {
	for _, envVar := range ciEnvVars {
		if value := os.Getenv(envVar); value != "" {
			// CI=false must not count as a CI environment
			if envVar == "CI" {
				return isTruthy(value)
			}
			return true
		}
	}
	return false
}

func isTruthy(value string) bool {
	lower := strings.ToLower(strings.TrimSpace(value))
	return lower != "false" && lower != "0" && lower != "no" && lower != ""
}
