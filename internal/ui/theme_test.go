package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/theme"

	"github.com/moarsenal/arsenal/internal/config"
)

func TestParseHexColor(t *testing.T) {
	fallback := color.RGBA{R: 1, G: 2, B: 3, A: 255}

	tests := []struct {
		input string
		want  color.RGBA
	}{
		{"#1e1e1e", color.RGBA{R: 30, G: 30, B: 30, A: 255}},
		{"#007acc", color.RGBA{R: 0, G: 122, B: 204, A: 255}},
		{"#fff", color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{"  #ffffff ", color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{"", fallback},
		{"#12", fallback},
		{"#gggggg", fallback},
		{"not a color", fallback},
	}

	for _, tt := range tests {
		got := parseHexColor(tt.input, fallback)
		if got != tt.want {
			t.Errorf("parseHexColor(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestThemeBackgroundOpacity(t *testing.T) {
	settings := config.Load("nonexistent.json")
	settings.Custom.Opacity = 0.5

	th := NewArsenalTheme(settings)
	bg := th.Color(theme.ColorNameBackground, theme.VariantDark)

	rgba, ok := bg.(color.RGBA)
	if !ok {
		t.Fatalf("background color is %T, want color.RGBA", bg)
	}
	wantAlpha := uint8(settings.Custom.Opacity * 255)
	if rgba.A != wantAlpha {
		t.Errorf("background alpha = %d, want %d", rgba.A, wantAlpha)
	}
}

func TestThemeAccentColor(t *testing.T) {
	settings := config.Load("nonexistent.json")
	settings.Theme.Accent = "#ff8800"

	th := NewArsenalTheme(settings)
	got := th.Color(theme.ColorNamePrimary, theme.VariantDark)

	want := color.RGBA{R: 255, G: 136, B: 0, A: 255}
	if got != want {
		t.Errorf("primary color = %v, want %v", got, want)
	}
}

func TestThemeSizeScaling(t *testing.T) {
	settings := config.Load("nonexistent.json")
	settings.Custom.FontSize = 10
	settings.Custom.UIScale = 1.0

	th := NewArsenalTheme(settings)
	base := th.Size(theme.SizeNameText)

	settings.Custom.UIScale = 2.0
	scaled := th.Size(theme.SizeNameText)

	if scaled != base*2 {
		t.Errorf("text size at 2.0 scale = %v, want %v", scaled, base*2)
	}
}
