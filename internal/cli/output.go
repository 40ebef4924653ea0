package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Output streams, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var (
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	verboseStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	nameStyle     = lipgloss.NewStyle().Bold(true)
)

// paint renders s with style unless color is disabled.
func paint(style lipgloss.Style, s string) string {
	if globalNoColor {
		return s
	}
	return style.Render(s)
}

// printInfo prints an informational message
func printInfo(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintln(stdout, msg)
}

// printWarning prints a warning message
func printWarning(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stderr, "%s %s\n", paint(warningStyle, "⚠"), msg)
}

// printProgress prints a progress indicator
func printProgress(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "%s %s\n", paint(progressStyle, "→"), msg)
}

// printVerbose prints a message only when verbose is enabled
func printVerbose(verbose bool, msg string) {
	if !verbose || globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "%s %s\n", paint(verboseStyle, "[VERBOSE]"), msg)
}

// printHeader prints a section header
func printHeader(title string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "\n%s\n", paint(headerStyle, "=== "+title+" ==="))
}
