package debug

import (
	"bytes"
	"strings"
	"testing"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetNoColor(true)
	t.Cleanup(func() {
		SetOutput(nil)
		SetDebug(false)
		SetNoColor(false)
	})
	return &buf
}

func TestSetDebug(t *testing.T) {
	SetDebug(false)
	if IsEnabled() {
		t.Error("Debug should be disabled initially")
	}

	SetDebug(true)
	if !IsEnabled() {
		t.Error("Debug should be enabled")
	}

	SetDebug(false)
	if IsEnabled() {
		t.Error("Debug should be disabled again")
	}
}

func TestDebugOutput(t *testing.T) {
	buf := capture(t)
	SetDebug(true)

	Debug("test message %s", "arg")

	output := buf.String()
	if !strings.HasPrefix(output, "[DEBUG] ") {
		t.Errorf("Output should start with [DEBUG] prefix, got: %s", output)
	}
	if !strings.Contains(output, "test message arg") {
		t.Errorf("Output should contain message, got: %s", output)
	}
}

func TestDebugDisabled(t *testing.T) {
	buf := capture(t)
	SetDebug(false)

	Debug("this should not appear")
	DebugSection("nor this")
	DebugValue("key", "value")
	DebugYAML("bindings", map[string]string{"a": "b"})

	if buf.Len() != 0 {
		t.Errorf("Debug output should be empty when disabled, got: %s", buf.String())
	}
}

func TestDebugSectionAndValue(t *testing.T) {
	buf := capture(t)
	SetDebug(true)

	DebugSection("Generate")
	DebugValue("output", "/tmp/out")

	output := buf.String()
	if !strings.Contains(output, "=== Generate ===") {
		t.Errorf("missing section header, got: %s", output)
	}
	if !strings.Contains(output, "output = /tmp/out") {
		t.Errorf("missing key/value line, got: %s", output)
	}
}

func TestDebugYAML(t *testing.T) {
	buf := capture(t)
	SetDebug(true)

	DebugYAML("bindings", map[string]string{"project_name": "demo"})

	output := buf.String()
	if !strings.Contains(output, "bindings:\n  project_name: demo") {
		t.Errorf("unexpected YAML dump, got: %s", output)
	}
}
