package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFileName)
	s := Load(path)

	if s.Custom.Opacity != 0.9 {
		t.Errorf("Expected default opacity 0.9, got %v", s.Custom.Opacity)
	}
	if s.Custom.UIScale != 1.0 {
		t.Errorf("Expected default UI scale 1.0, got %v", s.Custom.UIScale)
	}
	if s.Theme.Background != "#1e1e1e" {
		t.Errorf("Expected default background, got %q", s.Theme.Background)
	}
	if s.Path() != path {
		t.Errorf("Expected path %s, got %s", path, s.Path())
	}
}

func TestLoad_MalformedFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFileName)
	if err := os.WriteFile(path, []byte(`{"theme": {"bg": "#000000", `), 0o644); err != nil {
		t.Fatalf("Failed to write settings file: %v", err)
	}

	s := Load(path)
	if s.Theme.Background != "#1e1e1e" {
		t.Errorf("Malformed file should yield full defaults, got background %q", s.Theme.Background)
	}
	if s.Custom.Opacity != 0.9 {
		t.Errorf("Malformed file should yield full defaults, got opacity %v", s.Custom.Opacity)
	}
}

func TestSettings_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFileName)

	s := Load(path)
	s.Custom.Opacity = 0.75
	s.Custom.UIScale = 1.5
	s.Custom.IconScale = 1.2
	s.Custom.FontSize = 12
	s.Custom.BoldText = true
	s.Custom.WindowWidth = 1400
	s.Theme.Accent = "#ff8800"
	if err := s.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded := Load(path)
	if reloaded.Custom.Opacity != 0.75 {
		t.Errorf("Expected opacity 0.75 after reload, got %v", reloaded.Custom.Opacity)
	}
	if reloaded.Custom.UIScale != 1.5 {
		t.Errorf("Expected UI scale 1.5 after reload, got %v", reloaded.Custom.UIScale)
	}
	if reloaded.Custom.IconScale != 1.2 {
		t.Errorf("Expected icon scale 1.2 after reload, got %v", reloaded.Custom.IconScale)
	}
	if reloaded.Custom.FontSize != 12 {
		t.Errorf("Expected font size 12 after reload, got %d", reloaded.Custom.FontSize)
	}
	if !reloaded.Custom.BoldText {
		t.Error("Expected bold flag to survive reload")
	}
	if reloaded.Custom.WindowWidth != 1400 {
		t.Errorf("Expected window width 1400 after reload, got %d", reloaded.Custom.WindowWidth)
	}
	if reloaded.Theme.Accent != "#ff8800" {
		t.Errorf("Expected accent #ff8800 after reload, got %q", reloaded.Theme.Accent)
	}
}

func TestSettings_ClampsOnSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFileName)

	s := Load(path)
	s.Custom.Opacity = 3.0
	s.Custom.UIScale = 0.1
	s.Custom.FontSize = 99
	s.Custom.WindowWidth = 10
	if err := s.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if s.Custom.Opacity != MaxOpacity {
		t.Errorf("Expected opacity clamped to %v, got %v", MaxOpacity, s.Custom.Opacity)
	}
	if s.Custom.UIScale != MinScale {
		t.Errorf("Expected UI scale clamped to %v, got %v", MinScale, s.Custom.UIScale)
	}
	if s.Custom.FontSize != MaxFontSize {
		t.Errorf("Expected font size clamped to %d, got %d", MaxFontSize, s.Custom.FontSize)
	}
	if s.Custom.WindowWidth != MinWindowWidth {
		t.Errorf("Expected window width clamped to %d, got %d", MinWindowWidth, s.Custom.WindowWidth)
	}
}

func TestSettings_Reset(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFileName)

	s := Load(path)
	s.Custom.Opacity = 0.5
	s.Theme.Background = "#000000"
	s.Reset()

	if s.Custom.Opacity != 0.9 {
		t.Errorf("Expected opacity reset to 0.9, got %v", s.Custom.Opacity)
	}
	if s.Theme.Background != "#1e1e1e" {
		t.Errorf("Expected background reset, got %q", s.Theme.Background)
	}
}

func TestSettings_Scaling(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), SettingsFileName))
	s.Custom.UIScale = 2.0
	s.Custom.IconScale = 1.5

	if got := s.ScaledSize(10); got != 20 {
		t.Errorf("ScaledSize(10) = %v, expected 20", got)
	}
	if got := s.IconSize(10); got != 30 {
		t.Errorf("IconSize(10) = %v, expected 30", got)
	}
}
