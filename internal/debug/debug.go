package debug

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

var (
	mu      sync.RWMutex
	enabled bool
	noColor bool
	out     io.Writer = os.Stderr
)

var (
	tagStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	timeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	keyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// SetDebug enables or disables debug mode
func SetDebug(enable bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = enable
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetNoColor enables or disables colored output
func SetNoColor(disable bool) {
	mu.Lock()
	defer mu.Unlock()
	noColor = disable
}

// SetOutput redirects debug output. A nil writer restores stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	out = w
}

func emit(line string) {
	mu.RLock()
	w, useColor := out, !noColor
	mu.RUnlock()

	timestamp := time.Now().Format("15:04:05.000")
	tag := "[DEBUG]"
	if useColor {
		tag = tagStyle.Render(tag)
		timestamp = timeStyle.Render(timestamp)
	}
	fmt.Fprintf(w, "%s %s %s\n", tag, timestamp, line)
}

func colorize(style lipgloss.Style, s string) string {
	mu.RLock()
	defer mu.RUnlock()
	if noColor {
		return s
	}
	return style.Render(s)
}

// Debug prints a debug message with timestamp
func Debug(format string, args ...interface{}) {
	if !IsEnabled() {
		return
	}
	emit(fmt.Sprintf(format, args...))
}

// DebugSection prints a section header for debug output
func DebugSection(section string) {
	if !IsEnabled() {
		return
	}
	emit(colorize(keyStyle, "=== "+section+" ==="))
}

// DebugValue prints key=value style debug info
func DebugValue(key string, value interface{}) {
	if !IsEnabled() {
		return
	}
	emit(fmt.Sprintf("%s = %v", colorize(keyStyle, key), value))
}

// DebugYAML prints structured data as YAML, indented under key.
func DebugYAML(key string, v interface{}) {
	if !IsEnabled() {
		return
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		Debug("Failed to marshal %s to YAML: %v", key, err)
		return
	}

	body := strings.TrimRight(string(data), "\n")
	emit(fmt.Sprintf("%s:\n%s", colorize(keyStyle, key), indent(body, "  ")))
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
