package build

import "testing"

func TestVersion(t *testing.T) {
	if got := Version(); got == "" {
		t.Fatal("Version() returned empty string")
	}

	saved := version
	t.Cleanup(func() { version = saved })

	version = "9.9.9"
	if got := Version(); got != "9.9.9" {
		t.Errorf("Version() = %s, want ldflags value 9.9.9", got)
	}
}
