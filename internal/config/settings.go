package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Default settings file name, written next to the data directory.
const SettingsFileName = "arsenal_settings.json"

// Bounds for the custom settings. Values outside are clamped on save.
const (
	MinOpacity = 0.3
	MaxOpacity = 1.0
	MinScale   = 0.5
	MaxScale   = 2.0

	MinFontSize = 6
	MaxFontSize = 24

	MinWindowWidth  = 800
	MinWindowHeight = 600
)

// Theme holds the persisted color scheme. Colors are hex strings like
// "#1e1e1e" so the file stays hand-editable.
type Theme struct {
	Background       string `json:"bg"`
	Foreground       string `json:"fg"`
	SelectBackground string `json:"select_bg"`
	SelectForeground string `json:"select_fg"`
	ButtonBackground string `json:"button_bg"`
	ButtonForeground string `json:"button_fg"`
	Border           string `json:"border"`
	Accent           string `json:"accent"`
	Hover            string `json:"hover"`
}

// Custom holds the persisted appearance knobs.
type Custom struct {
	Opacity      float64 `json:"opacity"`
	FontFamily   string  `json:"font_family"`
	FontSize     int     `json:"font_size"`
	FontWeight   string  `json:"font_weight"`
	IconScale    float64 `json:"icon_scale"`
	UIScale      float64 `json:"ui_scale"`
	BoldText     bool    `json:"bold_text"`
	WindowWidth  int     `json:"window_width"`
	WindowHeight int     `json:"window_height"`
}

// Settings is the on-disk settings document: a theme section and a custom
// section, loaded at startup and written on explicit save. An absent or
// malformed file silently yields defaults.
type Settings struct {
	Theme  Theme  `json:"theme"`
	Custom Custom `json:"custom"`

	path string
}

// DefaultTheme returns the dark default color scheme.
func DefaultTheme() Theme {
	return Theme{
		Background:       "#1e1e1e",
		Foreground:       "#ffffff",
		SelectBackground: "#404040",
		SelectForeground: "#ffffff",
		ButtonBackground: "#2d2d2d",
		ButtonForeground: "#ffffff",
		Border:           "#3c3c3c",
		Accent:           "#007acc",
		Hover:            "#505050",
	}
}

// DefaultCustom returns the default appearance settings.
func DefaultCustom() Custom {
	return Custom{
		Opacity:      0.9,
		FontFamily:   "Segoe UI",
		FontSize:     10,
		FontWeight:   "normal",
		IconScale:    1.0,
		UIScale:      1.0,
		BoldText:     false,
		WindowWidth:  1000,
		WindowHeight: 700,
	}
}

// Load reads the settings file at path. Missing or unreadable files are
// not errors: the defaults are returned and the next Save creates the
// file. Unknown fields in the file are ignored.
func Load(path string) *Settings {
	s := &Settings{
		Theme:  DefaultTheme(),
		Custom: DefaultCustom(),
		path:   path,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	if err := json.Unmarshal(data, s); err != nil {
		// Malformed file: fall back to defaults entirely so a partial
		// unmarshal cannot leave mixed state.
		s.Theme = DefaultTheme()
		s.Custom = DefaultCustom()
		return s
	}
	s.clamp()
	return s
}

// Save writes the settings document with indentation to its path.
func (s *Settings) Save() error {
	s.clamp()
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create settings directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// Path returns the settings file location.
func (s *Settings) Path() string {
	return s.path
}

// Reset restores the defaults without touching the file; call Save to
// persist.
func (s *Settings) Reset() {
	s.Theme = DefaultTheme()
	s.Custom = DefaultCustom()
}

// clamp pulls out-of-range values back into their bounds and fills empty
// strings with defaults.
func (s *Settings) clamp() {
	s.Custom.Opacity = clampFloat(s.Custom.Opacity, MinOpacity, MaxOpacity)
	s.Custom.IconScale = clampFloat(s.Custom.IconScale, MinScale, MaxScale)
	s.Custom.UIScale = clampFloat(s.Custom.UIScale, MinScale, MaxScale)

	if s.Custom.FontSize < MinFontSize {
		s.Custom.FontSize = MinFontSize
	}
	if s.Custom.FontSize > MaxFontSize {
		s.Custom.FontSize = MaxFontSize
	}
	if s.Custom.FontFamily == "" {
		s.Custom.FontFamily = DefaultCustom().FontFamily
	}
	if s.Custom.FontWeight == "" {
		s.Custom.FontWeight = DefaultCustom().FontWeight
	}
	if s.Custom.WindowWidth < MinWindowWidth {
		s.Custom.WindowWidth = MinWindowWidth
	}
	if s.Custom.WindowHeight < MinWindowHeight {
		s.Custom.WindowHeight = MinWindowHeight
	}
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ScaledSize applies the UI scale factor to a base size.
func (s *Settings) ScaledSize(base float32) float32 {
	return base * float32(s.Custom.UIScale)
}

// IconSize applies both UI and icon scale to a base icon size.
func (s *Settings) IconSize(base float32) float32 {
	return base * float32(s.Custom.UIScale) * float32(s.Custom.IconScale)
}
