package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"info", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"ERROR", LevelError, false},
		{"Info", LevelInfo, false},
		{"verbose", LevelInfo, true},
		{"", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseLevel(%q) error = nil, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLevel(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{Level(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestGet_BeforeInit(t *testing.T) {
	// Must not panic or create files before Init
	logger := Get("preinit-component")
	if logger == nil {
		t.Fatal("Get() returned nil before Init")
	}
	logger.Info("discarded message")
}

func TestGet_BeforeInitRebindsOnInit(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "scaffold.log")

	// Acquired before Init, the way package-level loggers are
	logger := Get("earlybird")

	if err := Init(Config{Level: "info", Path: logPath}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	logger.Info("bound after init")

	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "bound after init") {
		t.Error("pre-Init logger did not write to the log file after Init")
	}
}

func TestClose_RebindsLoggersToDiscard(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "scaffold.log")

	if err := Init(Config{Level: "info", Path: logPath}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	logger := Get("shutdown-component")

	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// Must not panic or write to the closed file
	logger.Info("after close")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if strings.Contains(string(data), "after close") {
		t.Error("logger wrote to the log file after Close")
	}
}

func TestInitAndLog(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "scaffold.log")

	err := Init(Config{Level: "debug", Path: logPath})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer Close()

	logger := Get("scaffolder")
	logger.Info("apply started", "root", "/tmp/project")
	logger.Debug("detail", "entries", 42)

	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "apply started") {
		t.Error("log file missing info message")
	}
	if !strings.Contains(content, "scaffolder") {
		t.Error("log file missing component prefix")
	}
	if !strings.Contains(content, "entries=42") {
		t.Error("log file missing debug key-value pair")
	}
}

func TestInit_ComponentLevels(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "scaffold.log")

	err := Init(Config{
		Level:      "info",
		Path:       logPath,
		Components: map[string]string{"journal": "error"},
	})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer Close()

	Get("journal").Info("suppressed by component level")
	Get("scaffolder").Info("visible at default level")

	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	content := string(data)
	if strings.Contains(content, "suppressed by component level") {
		t.Error("component-level override did not suppress info message")
	}
	if !strings.Contains(content, "visible at default level") {
		t.Error("default-level message missing")
	}
}

func TestInit_InvalidLevel(t *testing.T) {
	if err := Init(Config{Level: "loud"}); err == nil {
		t.Fatal("Init() error = nil, want error for invalid level")
	}
}

func TestInit_CreatesLogDirectory(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "a", "b", "scaffold.log")

	if err := Init(Config{Level: "info", Path: logPath}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer Close()

	if _, err := os.Stat(filepath.Dir(logPath)); err != nil {
		t.Errorf("log directory not created: %v", err)
	}
}

func TestLogger_With(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "scaffold.log")

	if err := Init(Config{Level: "info", Path: logPath}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer Close()

	logger := Get("scaffolder").With("run_id", "run-123")
	logger.Info("with context")

	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "run_id=run-123") {
		t.Error("log file missing With() context")
	}
}

func TestClose_BeforeInit(t *testing.T) {
	if err := Close(); err != nil {
		t.Errorf("Close() before Init error = %v, want nil", err)
	}
}

func TestDefaultLogPath(t *testing.T) {
	path := DefaultLogPath()
	if !strings.HasSuffix(path, filepath.Join("scaffold", "scaffold.log")) {
		t.Errorf("DefaultLogPath() = %q, want scaffold/scaffold.log suffix", path)
	}
}
