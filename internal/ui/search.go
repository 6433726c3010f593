package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/moarsenal/arsenal/internal/model"
)

// ShowSearch shows the roster-wide search view. Results update as the
// query changes and selecting a result opens the unit detail view.
func (ui *RootUI) ShowSearch() {
	results := []*model.SearchItem{}

	entry := widget.NewEntry()
	entry.SetPlaceHolder("Search units, factions, categories...")

	count := widget.NewLabel("")

	list := widget.NewList(
		func() int { return len(results) },
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(results) {
				return
			}
			item := results[id]
			obj.(*widget.Label).SetText(fmt.Sprintf("%s%s%s%s%s",
				item.Name, MiddleDotSeparator, item.Record.Origin(),
				MiddleDotSeparator, item.Category))
		},
	)
	list.OnSelected = func(id widget.ListItemID) {
		if id >= len(results) {
			return
		}
		record := results[id].Record
		list.UnselectAll()
		ui.ShowUnit(record)
	}

	entry.OnChanged = func(query string) {
		results = ui.index.Search(query)
		if query == "" {
			count.SetText("")
		} else {
			count.SetText(fmt.Sprintf("%d results", len(results)))
		}
		list.Refresh()
	}
	entry.OnSubmitted = func(string) {
		if len(results) == 1 {
			ui.ShowUnit(results[0].Record)
		}
	}

	backBtn := widget.NewButton(IconBack, ui.ShowWelcome)
	top := container.NewVBox(
		container.NewBorder(nil, nil, backBtn, count, entry),
		widget.NewSeparator(),
	)

	ui.setContent(container.NewBorder(top, nil, nil, nil, list))
	ui.window.Canvas().Focus(entry)
}
