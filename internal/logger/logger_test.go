package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupTestLogger creates a temp log file and initializes the logger with it.
func setupTestLogger(t *testing.T) string {
	t.Helper()
	Reset()

	logPath := filepath.Join(t.TempDir(), "test-debug.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	t.Cleanup(Reset)
	return logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestInit_RecordsPath(t *testing.T) {
	logPath := setupTestLogger(t)

	if Path() != logPath {
		t.Errorf("Path() = %q, want %q", Path(), logPath)
	}
	if !strings.Contains(readLog(t, logPath), "Logger initialized") {
		t.Error("log file should contain the initialization line")
	}
}

func TestInit_SecondCallIsNoop(t *testing.T) {
	logPath := setupTestLogger(t)

	other := filepath.Join(t.TempDir(), "other.log")
	if err := Init(other); err != nil {
		t.Fatalf("second Init returned error: %v", err)
	}
	if Path() != logPath {
		t.Errorf("Path() = %q after second Init, want %q", Path(), logPath)
	}
}

func TestInit_BadPath(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if err := Init(filepath.Join(t.TempDir(), "missing", "dir", "x.log")); err == nil {
		t.Error("Init should fail for a path in a missing directory")
	}
}

func TestLevels(t *testing.T) {
	logPath := setupTestLogger(t)

	Debug("hidden-debug-%d", 1)
	Info("visible-info-%s", "a")
	Warn("visible-warn")
	Error("visible-error")

	content := readLog(t, logPath)
	if strings.Contains(content, "hidden-debug-1") {
		t.Error("debug message should be filtered at info level")
	}
	for _, want := range []string{"visible-info-a", "visible-warn", "visible-error"} {
		if !strings.Contains(content, want) {
			t.Errorf("log should contain %q", want)
		}
	}
}

func TestSetDebug(t *testing.T) {
	logPath := setupTestLogger(t)

	SetDebug(true)
	Debug("debug-enabled-message")
	SetDebug(false)
	Debug("debug-disabled-message")

	content := readLog(t, logPath)
	if !strings.Contains(content, "debug-enabled-message") {
		t.Error("debug message should be written when debug is enabled")
	}
	if strings.Contains(content, "debug-disabled-message") {
		t.Error("debug message should be filtered after debug is disabled")
	}
}

func TestComponentLogger(t *testing.T) {
	logPath := setupTestLogger(t)

	ComponentLogger("Modal").Info("mounted", "modal", "m1")

	content := readLog(t, logPath)
	if !strings.Contains(content, "component=Modal") {
		t.Errorf("expected component attribute in log, got:\n%s", content)
	}
	if !strings.Contains(content, "modal=m1") {
		t.Errorf("expected modal attribute in log, got:\n%s", content)
	}
}

func TestClose(t *testing.T) {
	setupTestLogger(t)

	Close()
	// Logging after Close must not panic.
	Info("after close")
	if l := ComponentLogger("x"); l == nil {
		t.Error("ComponentLogger should fall back to the default logger")
	}
}
