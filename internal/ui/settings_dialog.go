package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/moarsenal/arsenal/internal/config"
)

// ShowSettings opens the appearance settings dialog. Saving persists the
// settings file, reapplies the theme, and resizes the window.
func (ui *RootUI) ShowSettings() {
	custom := ui.settings.Custom

	opacity := widget.NewSlider(config.MinOpacity, config.MaxOpacity)
	opacity.Step = 0.05
	opacity.SetValue(custom.Opacity)

	uiScale := widget.NewSlider(config.MinScale, config.MaxScale)
	uiScale.Step = 0.1
	uiScale.SetValue(custom.UIScale)

	iconScale := widget.NewSlider(config.MinScale, config.MaxScale)
	iconScale.Step = 0.1
	iconScale.SetValue(custom.IconScale)

	fontFamily := widget.NewEntry()
	fontFamily.SetText(custom.FontFamily)

	fontSize := widget.NewEntry()
	fontSize.SetText(strconv.Itoa(custom.FontSize))

	boldText := widget.NewCheck("Bold text", nil)
	boldText.SetChecked(custom.BoldText)

	windowWidth := widget.NewEntry()
	windowWidth.SetText(strconv.Itoa(custom.WindowWidth))
	windowHeight := widget.NewEntry()
	windowHeight.SetText(strconv.Itoa(custom.WindowHeight))

	accent := widget.NewEntry()
	accent.SetText(ui.settings.Theme.Accent)

	form := widget.NewForm(
		widget.NewFormItem("Opacity", opacity),
		widget.NewFormItem("UI scale", uiScale),
		widget.NewFormItem("Icon scale", iconScale),
		widget.NewFormItem("Font family", fontFamily),
		widget.NewFormItem("Font size", fontSize),
		widget.NewFormItem("", boldText),
		widget.NewFormItem("Window width", windowWidth),
		widget.NewFormItem("Window height", windowHeight),
		widget.NewFormItem("Accent color", accent),
	)

	resetBtn := widget.NewButton("Reset to defaults", nil)
	content := container.NewVBox(form, widget.NewSeparator(), resetBtn)

	dlg := dialog.NewCustomConfirm("Settings", "Save", "Cancel", content,
		func(save bool) {
			if !save {
				return
			}
			ui.settings.Custom.Opacity = opacity.Value
			ui.settings.Custom.UIScale = uiScale.Value
			ui.settings.Custom.IconScale = iconScale.Value
			ui.settings.Custom.FontFamily = fontFamily.Text
			ui.settings.Custom.BoldText = boldText.Checked
			ui.settings.Theme.Accent = accent.Text
			if size, err := strconv.Atoi(fontSize.Text); err == nil {
				ui.settings.Custom.FontSize = size
			}
			if width, err := strconv.Atoi(windowWidth.Text); err == nil {
				ui.settings.Custom.WindowWidth = width
			}
			if height, err := strconv.Atoi(windowHeight.Text); err == nil {
				ui.settings.Custom.WindowHeight = height
			}
			ui.applySettings()
		}, ui.window)

	resetBtn.OnTapped = func() {
		ui.settings.Reset()
		dlg.Hide()
		ui.applySettings()
		ui.ShowSettings()
	}

	dlg.Show()
}

// applySettings persists the settings and pushes them into the running
// app: theme, window size, and the current view are all refreshed.
func (ui *RootUI) applySettings() {
	if err := ui.settings.Save(); err != nil {
		ui.showNotification(fmt.Sprintf("Failed to save settings: %v", err))
	}
	ui.app.Settings().SetTheme(NewArsenalTheme(ui.settings))
	ui.window.Resize(fyne.NewSize(
		float32(ui.settings.Custom.WindowWidth),
		float32(ui.settings.Custom.WindowHeight)))
	if ui.currentFaction != "" {
		ui.ShowFaction(ui.currentFaction)
	} else {
		ui.ShowWelcome()
	}
}
