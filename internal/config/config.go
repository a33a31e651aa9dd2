// Package config loads snapvault settings from Settings.ini and named
// capture targets from a YAML profile file.
package config

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Settings holds everything the capture run needs.
type Settings struct {
	AssetRoot        string
	VersionPrefix    string
	ProcessName      string
	WindowTitle      string
	PreviewTitle     string
	CaptureMethod    string
	SearchIntervalMs int
	Headless         bool
	MaxFrames        int
	LogFile          string
}

// NewDefaultSettings mirrors the tool's built-in defaults: capture into
// ./assets/ver<N>, tight re-poll, windowed preview.
func NewDefaultSettings() *Settings {
	return &Settings{
		AssetRoot:        "./assets",
		VersionPrefix:    "ver",
		PreviewTitle:     "snapvault preview",
		CaptureMethod:    "window",
		SearchIntervalMs: 0,
		MaxFrames:        1,
	}
}

// LoadSettings reads Settings.ini. Missing keys fall back to defaults;
// a missing or unreadable file is an error the caller decides how to
// handle.
func LoadSettings(path string) (*Settings, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings file: %w", err)
	}

	defaults := NewDefaultSettings()
	section := cfg.Section("Capture")

	settings := &Settings{
		AssetRoot:        section.Key("AssetRoot").MustString(defaults.AssetRoot),
		VersionPrefix:    section.Key("VersionPrefix").MustString(defaults.VersionPrefix),
		ProcessName:      section.Key("ProcessName").MustString(""),
		WindowTitle:      section.Key("WindowTitle").MustString(""),
		PreviewTitle:     section.Key("PreviewTitle").MustString(defaults.PreviewTitle),
		CaptureMethod:    section.Key("CaptureMethod").MustString(defaults.CaptureMethod),
		SearchIntervalMs: section.Key("SearchIntervalMs").MustInt(defaults.SearchIntervalMs),
		Headless:         section.Key("Headless").MustBool(false),
		MaxFrames:        section.Key("MaxFrames").MustInt(defaults.MaxFrames),
		LogFile:          section.Key("LogFile").MustString(""),
	}

	return settings, nil
}

// Validate reports the first problem that would make a run impossible.
func (s *Settings) Validate() error {
	if s.AssetRoot == "" {
		return fmt.Errorf("asset root must not be empty")
	}
	if s.VersionPrefix == "" {
		return fmt.Errorf("version prefix must not be empty")
	}
	if s.ProcessName == "" {
		return fmt.Errorf("process name must not be empty")
	}
	if s.WindowTitle == "" {
		return fmt.Errorf("window title must not be empty")
	}
	if s.SearchIntervalMs < 0 {
		return fmt.Errorf("search interval must not be negative")
	}
	return nil
}
