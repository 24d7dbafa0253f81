package lineedit

import (
	"os"
	"testing"
)

func TestRealTerminal(t *testing.T) {
	if os.Getenv("GITHUB_ACTIONS") == "" {
		t.Skip("Skipping real terminal test in local development")
	}

	// CI runners usually have no controlling tty, so failing to open one is not an error.
	terminal, err := newRealTerminal()
	if err != nil {
		t.Skipf("Cannot create real terminal in this environment: %v", err)
	}
	defer terminal.Close()

	if err := terminal.SetRaw(); err != nil {
		t.Errorf("SetRaw failed: %v", err)
	}
	if err := terminal.Restore(); err != nil {
		t.Errorf("Restore failed: %v", err)
	}
	if terminal.originalState != nil {
		t.Error("Restore must consume the saved state")
	}

	width, height, err := terminal.Size()
	if err != nil {
		t.Logf("Size returned error (may be expected in CI): %v", err)
	}
	if width <= 0 || height <= 0 {
		t.Errorf("Expected positive terminal size, got %dx%d", width, height)
	}

	if err := terminal.Close(); err != nil {
		t.Errorf("First close failed: %v", err)
	}
	if err := terminal.Close(); err != nil {
		t.Errorf("Second close should not fail: %v", err)
	}
}

func TestSimpleTerminal(t *testing.T) {
	t.Parallel()

	terminal := newSimpleTerminal()

	if err := terminal.SetRaw(); err != nil {
		t.Errorf("SetRaw must be a no-op, got %v", err)
	}
	if err := terminal.Restore(); err != nil {
		t.Errorf("Restore must be a no-op, got %v", err)
	}

	width, height, _ := terminal.Size()
	if width <= 0 || height <= 0 {
		t.Errorf("Expected positive fallback size, got %dx%d", width, height)
	}

	if err := terminal.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}
