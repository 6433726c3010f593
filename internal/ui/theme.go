package ui

import (
	"image/color"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/moarsenal/arsenal/internal/config"
)

// ArsenalTheme maps the persisted theme colors and scale factors onto a
// fyne.Theme. Window opacity is approximated by the background color's
// alpha channel; Fyne has no per-window alpha.
type ArsenalTheme struct {
	settings *config.Settings
}

// NewArsenalTheme creates a theme backed by the given settings. The theme
// reads the settings live, so saving the settings dialog only requires a
// canvas refresh.
func NewArsenalTheme(settings *config.Settings) fyne.Theme {
	return &ArsenalTheme{settings: settings}
}

// Color returns theme colors from the settings, falling back to the
// default theme for names the settings file does not carry.
func (t *ArsenalTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		bg := parseHexColor(t.settings.Theme.Background, color.RGBA{R: 30, G: 30, B: 30, A: 255})
		bg.A = uint8(t.settings.Custom.Opacity * 255)
		return bg
	case theme.ColorNameForeground:
		return parseHexColor(t.settings.Theme.Foreground, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	case theme.ColorNamePrimary:
		return parseHexColor(t.settings.Theme.Accent, color.RGBA{R: 0, G: 122, B: 204, A: 255})
	case theme.ColorNameSelection:
		return parseHexColor(t.settings.Theme.SelectBackground, color.RGBA{R: 64, G: 64, B: 64, A: 255})
	case theme.ColorNameButton:
		return parseHexColor(t.settings.Theme.ButtonBackground, color.RGBA{R: 45, G: 45, B: 45, A: 255})
	case theme.ColorNameHover:
		return parseHexColor(t.settings.Theme.Hover, color.RGBA{R: 80, G: 80, B: 80, A: 255})
	case theme.ColorNameSeparator:
		return parseHexColor(t.settings.Theme.Border, color.RGBA{R: 60, G: 60, B: 60, A: 255})
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *ArsenalTheme) Font(style fyne.TextStyle) fyne.Resource {
	if t.settings.Custom.BoldText {
		style.Bold = true
	}
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ArsenalTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes scaled by the UI scale factor. Text size comes
// from the configured font size.
func (t *ArsenalTheme) Size(name fyne.ThemeSizeName) float32 {
	scale := float32(t.settings.Custom.UIScale)
	switch name {
	case theme.SizeNameText:
		return float32(t.settings.Custom.FontSize+3) * scale
	case theme.SizeNameHeadingText:
		return float32(t.settings.Custom.FontSize+8) * scale
	case theme.SizeNameSubHeadingText:
		return float32(t.settings.Custom.FontSize+5) * scale
	case theme.SizeNameCaptionText:
		return float32(t.settings.Custom.FontSize+1) * scale
	case theme.SizeNamePadding, theme.SizeNameInnerPadding, theme.SizeNameLineSpacing:
		return theme.DefaultTheme().Size(name) * scale
	}
	return theme.DefaultTheme().Size(name)
}

// parseHexColor parses "#rrggbb" (or "#rgb") into an opaque color,
// returning the fallback on malformed input.
func parseHexColor(s string, fallback color.RGBA) color.RGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return fallback
	}
	value, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallback
	}
	return color.RGBA{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
		A: 255,
	}
}
