package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadSettings(t *testing.T) {
	path := writeFile(t, "Settings.ini", `
[Capture]
AssetRoot = /srv/captures
VersionPrefix = run
ProcessName = Safari
WindowTitle = Poker Now - Poker with Friends
SearchIntervalMs = 250
CaptureMethod = bounds
LogFile = capture.log
`)

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("Failed to load settings: %v", err)
	}

	if settings.AssetRoot != "/srv/captures" {
		t.Errorf("Expected asset root /srv/captures, got %s", settings.AssetRoot)
	}
	if settings.VersionPrefix != "run" {
		t.Errorf("Expected prefix run, got %s", settings.VersionPrefix)
	}
	if settings.WindowTitle != "Poker Now - Poker with Friends" {
		t.Errorf("Unexpected window title %q", settings.WindowTitle)
	}
	if settings.SearchIntervalMs != 250 {
		t.Errorf("Expected search interval 250, got %d", settings.SearchIntervalMs)
	}
	if settings.CaptureMethod != "bounds" {
		t.Errorf("Expected capture method bounds, got %s", settings.CaptureMethod)
	}
	if settings.LogFile != "capture.log" {
		t.Errorf("Expected log file capture.log, got %s", settings.LogFile)
	}
	if err := settings.Validate(); err != nil {
		t.Errorf("Complete settings should validate: %v", err)
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	path := writeFile(t, "Settings.ini", "[Capture]\nProcessName = Safari\n")

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("Failed to load settings: %v", err)
	}

	defaults := NewDefaultSettings()
	if settings.AssetRoot != defaults.AssetRoot {
		t.Errorf("Expected default asset root %s, got %s", defaults.AssetRoot, settings.AssetRoot)
	}
	if settings.VersionPrefix != defaults.VersionPrefix {
		t.Errorf("Expected default prefix %s, got %s", defaults.VersionPrefix, settings.VersionPrefix)
	}
	if settings.SearchIntervalMs != 0 {
		t.Errorf("Expected tight re-poll by default, got %d ms", settings.SearchIntervalMs)
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	if _, err := LoadSettings(filepath.Join(t.TempDir(), "missing.ini")); err == nil {
		t.Error("Expected error for missing settings file")
	}
}

func TestValidateRejectsIncompleteSettings(t *testing.T) {
	settings := NewDefaultSettings()
	if err := settings.Validate(); err == nil {
		t.Error("Defaults without a target should not validate")
	}

	settings.ProcessName = "Safari"
	settings.WindowTitle = "Poker Now - Poker with Friends"
	if err := settings.Validate(); err != nil {
		t.Errorf("Expected valid settings, got %v", err)
	}

	settings.SearchIntervalMs = -1
	if err := settings.Validate(); err == nil {
		t.Error("Negative search interval should not validate")
	}
}

func TestLoadTargetsAndApply(t *testing.T) {
	path := writeFile(t, "targets.yaml", `
targets:
  poker:
    process: Safari
    title: "Poker Now - Poker with Friends"
  editor:
    process: code
    title: "main.go"
`)

	targets, err := LoadTargets(path)
	if err != nil {
		t.Fatalf("Failed to load targets: %v", err)
	}
	if len(targets) != 2 {
		t.Fatalf("Expected 2 targets, got %d", len(targets))
	}

	settings := NewDefaultSettings()
	if err := settings.ApplyTarget(targets, "poker"); err != nil {
		t.Fatalf("Failed to apply target: %v", err)
	}
	if settings.ProcessName != "Safari" {
		t.Errorf("Expected process Safari, got %s", settings.ProcessName)
	}
	if settings.WindowTitle != "Poker Now - Poker with Friends" {
		t.Errorf("Unexpected title %q", settings.WindowTitle)
	}

	if err := settings.ApplyTarget(targets, "browser"); err == nil {
		t.Error("Expected error for unknown target name")
	}
}

func TestLoadTargetsEmptyFile(t *testing.T) {
	path := writeFile(t, "targets.yaml", "targets: {}\n")
	if _, err := LoadTargets(path); err == nil {
		t.Error("Expected error for empty targets file")
	}
}
