// Package color provides small helpers for coloring terminal output using
// ANSI escape sequences. Callers decide whether color is appropriate (see
// the terminal package); functions here only do the wrapping.
//
//nolint:revive // package name conflicts with standard library
package color

// ANSI color codes
const (
	resetCode  = "\033[0m"
	grayCode   = "\033[90m"
	greenCode  = "\033[32m"
	yellowCode = "\033[33m"
	redCode    = "\033[31m"
	cyanCode   = "\033[36m"
	boldCode   = "\033[1m"
)

// Color wraps text with an ANSI escape sequence.
type Color func(text string) string

// NewColor creates a color function with the specified ANSI code.
func NewColor(ansiCode string) Color {
	return func(text string) string {
		return ansiCode + text + resetCode
	}
}

// Predefined color functions
var (
	// Gray colors text in gray (bright black)
	Gray = NewColor(grayCode)

	// Green colors text in green
	Green = NewColor(greenCode)

	// Yellow colors text in yellow
	Yellow = NewColor(yellowCode)

	// Red colors text in red
	Red = NewColor(redCode)

	// Cyan colors text in cyan
	Cyan = NewColor(cyanCode)

	// Bold renders text in bold
	Bold = NewColor(boldCode)
)

// None returns the text unchanged, for callers that resolved color off.
func None(text string) string { return text }
