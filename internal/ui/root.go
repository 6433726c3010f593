package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/moarsenal/arsenal/internal/catalog"
	"github.com/moarsenal/arsenal/internal/config"
	"github.com/moarsenal/arsenal/internal/model"
)

// RootUI is the main UI structure: the always-visible faction toolbar, a
// swappable content area for the current view, and a transient
// notification line.
type RootUI struct {
	window fyne.Window
	app    fyne.App

	settings   *config.Settings
	catalog    *catalog.Catalog
	index      *catalog.Index
	icons      *IconCache
	comparison *model.ComparisonSet

	currentFaction  string
	currentCategory string // active category filter, empty for all

	factionButtons map[string]*widget.Button
	content        *fyne.Container

	// Tiles of the currently shown view, so comparison toggles can
	// refresh their marks without rebuilding the view.
	tiles []*UnitTile

	notificationLabel *widget.Label
	notificationBox   *fyne.Container
}

// NewRootUI creates and wires the main UI.
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings,
	cat *catalog.Catalog, index *catalog.Index, icons *IconCache) *RootUI {

	ui := &RootUI{
		window:         window,
		app:            app,
		settings:       settings,
		catalog:        cat,
		index:          index,
		icons:          icons,
		comparison:     model.NewComparisonSet(),
		factionButtons: make(map[string]*widget.Button),
		content:        container.NewStack(),
	}

	ui.setupUI()
	ui.setupShortcuts()
	ui.ShowWelcome()
	return ui
}

// setupUI arranges the toolbar, notification line, and content area.
func (ui *RootUI) setupUI() {
	toolbar := ui.createFactionToolbar()

	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignCenter
	ui.notificationBox = container.NewVBox(ui.notificationLabel)
	ui.notificationBox.Hide()

	top := container.NewVBox(toolbar, ui.notificationBox)
	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, ui.content))
}

// createFactionToolbar builds the always-visible top bar: one button per
// faction on the left, search/compare/settings on the right.
func (ui *RootUI) createFactionToolbar() fyne.CanvasObject {
	factionRow := container.NewHBox()
	for _, faction := range ui.catalog.Hierarchy().Factions {
		name := faction.Name
		var btn *widget.Button
		if icon := ui.icons.HierarchyIcon(faction.Icon); icon != nil {
			btn = widget.NewButtonWithIcon("", icon, func() { ui.ShowFaction(name) })
		} else {
			btn = widget.NewButton(name, func() { ui.ShowFaction(name) })
		}
		ui.factionButtons[name] = btn
		factionRow.Add(btn)
	}

	searchBtn := widget.NewButton(IconSearch, ui.ShowSearch)
	searchBtn.Importance = widget.LowImportance
	compareBtn := widget.NewButton(IconCompare, ui.ShowComparison)
	compareBtn.Importance = widget.LowImportance
	settingsBtn := widget.NewButton(IconSettings, ui.ShowSettings)
	settingsBtn.Importance = widget.LowImportance
	navRow := container.NewHBox(searchBtn, compareBtn, settingsBtn)

	return container.NewBorder(nil, nil, factionRow, navRow)
}

// setupShortcuts binds Ctrl+F to search and Escape back to the faction
// overview.
func (ui *RootUI) setupShortcuts() {
	ui.window.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyF,
		Modifier: fyne.KeyModifierControl,
	}, func(fyne.Shortcut) { ui.ShowSearch() })

	ui.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			ui.ShowWelcome()
		}
	})
}

// setContent swaps the current view.
func (ui *RootUI) setContent(view fyne.CanvasObject) {
	ui.tiles = nil
	ui.content.Objects = []fyne.CanvasObject{view}
	ui.content.Refresh()
}

// CurrentFaction returns the faction the browser currently shows, or an
// empty string on the welcome/search/comparison views.
func (ui *RootUI) CurrentFaction() string {
	return ui.currentFaction
}

// Comparison returns the user's comparison selection.
func (ui *RootUI) Comparison() *model.ComparisonSet {
	return ui.comparison
}

// ShowWelcome shows the initial view.
func (ui *RootUI) ShowWelcome() {
	ui.currentFaction = ""
	ui.currentCategory = ""

	title := widget.NewLabelWithStyle("Welcome to Mental Omega Arsenal",
		fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	subtitle := widget.NewLabel("Select a faction from the top menu to begin browsing units")
	subtitle.Alignment = fyne.TextAlignCenter
	hint := widget.NewLabel("Tap a unit to view details, right-click to add it to the comparison")
	hint.Alignment = fyne.TextAlignCenter

	ui.setContent(container.NewCenter(container.NewVBox(title, subtitle, hint)))
}

// ShowFaction shows the roster browser for a faction, keeping any active
// category filter when revisiting the same faction.
func (ui *RootUI) ShowFaction(faction string) {
	if ui.currentFaction != faction {
		ui.currentCategory = ""
	}
	ui.currentFaction = faction
	ui.setContent(ui.buildFactionView(faction, ui.currentCategory))
}

// filterCategory switches the category filter within the current faction.
func (ui *RootUI) filterCategory(category string) {
	ui.currentCategory = category
	ui.setContent(ui.buildFactionView(ui.currentFaction, category))
}

// toggleComparison flips a unit's comparison membership, shows a
// transient notification, and refreshes visible tile marks.
func (ui *RootUI) toggleComparison(record *model.UnitRecord) {
	added := ui.comparison.Toggle(record)
	action := "removed from"
	if added {
		action = "added to"
	}
	ui.showNotification(fmt.Sprintf("%s %s comparison", record.Name, action))

	for _, tile := range ui.tiles {
		if tile.Record().ID == record.ID {
			tile.UpdateMark()
		}
	}
}

// refreshTileMarks updates the selection mark on every registered tile.
func (ui *RootUI) refreshTileMarks() {
	for _, tile := range ui.tiles {
		tile.UpdateMark()
	}
}

// showNotification shows a message above the content area and schedules
// its removal. The one-shot timer is the app's only background activity.
func (ui *RootUI) showNotification(message string) {
	ui.notificationLabel.SetText(message)
	ui.notificationBox.Show()
	ui.notificationBox.Refresh()

	time.AfterFunc(NotificationAutoHide, func() {
		fyne.Do(ui.hideNotification)
	})
}

// hideNotification hides the notification line.
func (ui *RootUI) hideNotification() {
	ui.notificationBox.Hide()
}

// newUnitTile creates a tile wired to the standard tap handlers and
// registers it for mark refreshes.
func (ui *RootUI) newUnitTile(record *model.UnitRecord, iconSize float32) *UnitTile {
	tile := NewUnitTile(record, ui.icons.UnitIcon(record), ui.settings.IconSize(iconSize),
		ui.comparison, ui.ShowUnit, ui.toggleComparison)
	ui.tiles = append(ui.tiles, tile)
	return tile
}

// unitGrid lays tiles out in a wrapping grid sized for the scaled icons.
func (ui *RootUI) unitGrid(records []*model.UnitRecord) fyne.CanvasObject {
	cell := fyne.NewSize(ui.settings.IconSize(UnitIconSize)+40, ui.settings.IconSize(UnitIconSize)+44)
	grid := container.NewGridWrap(cell)
	for _, record := range records {
		grid.Add(ui.newUnitTile(record, UnitIconSize))
	}
	return grid
}

// buildFactionView renders one faction: category filter buttons, the
// shared base-faction section, then one section per subfaction with its
// exclusive units.
func (ui *RootUI) buildFactionView(faction, filterCategory string) fyne.CanvasObject {
	hierarchy := ui.catalog.Hierarchy()
	f, ok := hierarchy.Faction(faction)
	if !ok {
		return container.NewCenter(widget.NewLabel("Unknown faction"))
	}

	title := faction
	if filterCategory != "" {
		title += " - " + filterCategory
	}
	sections := container.NewVBox(
		widget.NewLabelWithStyle(title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		ui.buildCategoryFilterRow(faction, filterCategory),
	)

	// Base-faction units shared by every subfaction.
	shared := container.NewVBox()
	for _, category := range hierarchy.Categories {
		if filterCategory != "" && category != filterCategory {
			continue
		}
		base := ui.catalog.BaseUnits(faction, category)
		if len(base) == 0 {
			continue
		}
		shared.Add(widget.NewLabelWithStyle(category+":", fyne.TextAlignLeading,
			fyne.TextStyle{Bold: true}))
		shared.Add(ui.unitGrid(base))
	}
	if len(shared.Objects) > 0 {
		sections.Add(widget.NewLabelWithStyle("General structure:", fyne.TextAlignLeading,
			fyne.TextStyle{Bold: true, Italic: true}))
		sections.Add(shared)
	}

	// Subfaction-exclusive units.
	for _, sub := range f.Subfactions {
		var exclusive []*model.UnitRecord
		for _, category := range hierarchy.Categories {
			if filterCategory != "" && category != filterCategory {
				continue
			}
			exclusive = append(exclusive, ui.catalog.SubfactionSpecificUnits(faction, sub.Name, category)...)
		}
		if len(exclusive) == 0 {
			continue
		}

		header := container.NewHBox()
		if icon := ui.icons.HierarchyIcon(sub.Icon); icon != nil {
			img := widget.NewIcon(icon)
			header.Add(img)
		}
		header.Add(widget.NewLabelWithStyle(sub.Name, fyne.TextAlignLeading,
			fyne.TextStyle{Bold: true}))

		sections.Add(widget.NewSeparator())
		sections.Add(header)
		sections.Add(ui.unitGrid(exclusive))
	}

	return container.NewVScroll(sections)
}

// buildCategoryFilterRow renders the All/category filter buttons with
// unit counts; categories without units are omitted.
func (ui *RootUI) buildCategoryFilterRow(faction, filterCategory string) fyne.CanvasObject {
	row := container.NewHBox()

	allBtn := widget.NewButton("All", func() { ui.filterCategory("") })
	if filterCategory == "" {
		allBtn.Importance = widget.HighImportance
	}
	row.Add(allBtn)

	for _, category := range ui.catalog.Hierarchy().Categories {
		count := ui.catalog.CategoryCount(faction, category)
		if count == 0 {
			continue
		}
		cat := category
		btn := widget.NewButton(fmt.Sprintf("%s (%d)", category, count),
			func() { ui.filterCategory(cat) })
		if filterCategory == category {
			btn.Importance = widget.HighImportance
		}
		row.Add(btn)
	}
	return container.NewHScroll(row)
}
