// Package output provides terminal output formatting utilities for the
// gitmsg CLI. This package is kept dependency-light to avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// GetTerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// PrintMessage prints the synthesized commit message with its source tag.
// Magenta arrow, bold message, dim source annotation.
func PrintMessage(out io.Writer, message, source string) {
	arrow := color.New(color.FgMagenta).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()
	fmt.Fprintf(out, "%s %s %s\n", arrow("→"), bold(message), dim("["+source+"]"))
}

// PrintSuccess prints a green-checkmarked success line.
func PrintSuccess(out io.Writer, message string) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", green("✓"), message)
}

// PrintNotice prints a dim informational line (e.g. remote fallback notes).
func PrintNotice(out io.Writer, message string) {
	dim := color.New(color.Faint).SprintFunc()
	fmt.Fprintf(out, "%s\n", dim(message))
}

// PrintBody prints a commit body block indented under the subject.
func PrintBody(out io.Writer, body string) {
	if body == "" {
		return
	}
	dim := color.New(color.Faint).SprintFunc()
	fmt.Fprintf(out, "%s\n", dim(body))
}
