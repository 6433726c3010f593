package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/moarsenal/arsenal/internal/model"
)

// ShowComparison shows the selected units side by side, one column per
// unit, with every attribute key that appears on any of them.
func (ui *RootUI) ShowComparison() {
	backBtn := widget.NewButton(IconBack, ui.ShowWelcome)

	records := ui.comparison.Records()
	if len(records) == 0 {
		view := container.NewVBox(
			container.NewHBox(backBtn),
			widget.NewLabel("No units selected for comparison."),
			widget.NewLabel("Right-click a unit tile or use the button on its detail view."),
		)
		ui.setContent(container.NewPadded(view))
		return
	}

	clearBtn := widget.NewButton("Clear all", func() {
		ui.comparison.Clear()
		ui.refreshTileMarks()
		ui.ShowComparison()
	})
	clearBtn.Importance = widget.LowImportance

	keys := comparisonKeys(records)

	columns := container.NewHBox()
	for _, record := range records {
		columns.Add(ui.buildComparisonColumn(record, keys))
		columns.Add(widget.NewSeparator())
	}

	top := container.NewHBox(backBtn, clearBtn)
	ui.setContent(container.NewBorder(top, nil, nil, nil,
		container.NewHScroll(container.NewPadded(columns))))
}

// comparisonKeys returns the union of attribute keys over the selected
// records, in order of first appearance.
func comparisonKeys(records []*model.UnitRecord) []string {
	seen := map[string]bool{}
	var keys []string
	for _, record := range records {
		for _, attr := range record.Attributes {
			if seen[attr.Key] {
				continue
			}
			seen[attr.Key] = true
			keys = append(keys, attr.Key)
		}
	}
	return keys
}

func (ui *RootUI) buildComparisonColumn(record *model.UnitRecord, keys []string) fyne.CanvasObject {
	removeBtn := widget.NewButton(IconRemove, func() {
		ui.comparison.Remove(record)
		ui.refreshTileMarks()
		ui.ShowComparison()
	})
	removeBtn.Importance = widget.LowImportance

	header := container.NewVBox(
		container.NewBorder(nil, nil, nil, removeBtn,
			widget.NewLabelWithStyle(record.Name, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})),
	)
	if icon := ui.icons.UnitIcon(record); icon != nil {
		image := canvas.NewImageFromResource(icon)
		image.FillMode = canvas.ImageFillContain
		size := ui.settings.IconSize(UnitIconSize)
		image.SetMinSize(fyne.NewSize(size, size))
		header.Add(container.NewCenter(image))
	}
	header.Add(widget.NewLabelWithStyle(record.Origin(), fyne.TextAlignCenter, fyne.TextStyle{}))
	header.Add(widget.NewLabelWithStyle(record.Category, fyne.TextAlignCenter, fyne.TextStyle{Italic: true}))
	header.Add(widget.NewSeparator())

	body := container.NewVBox(header)
	for _, key := range keys {
		text := DashPlaceholder
		if value, ok := record.Attribute(key); ok {
			text = comparisonCellText(value)
		}
		cell := widget.NewLabel(key + ": " + text)
		cell.Wrapping = fyne.TextWrapWord
		body.Add(cell)
	}

	column := container.NewVScroll(body)
	column.SetMinSize(fyne.NewSize(ComparisonColumnWidth, 0))
	return column
}

// comparisonCellText flattens an attribute value to one line. Nested
// tables collapse to their key list, which is enough to spot that the
// full detail view has more.
func comparisonCellText(value any) string {
	switch v := value.(type) {
	case []any:
		text := ""
		for i, item := range v {
			if i > 0 {
				text += ", "
			}
			text += formatScalar(item)
		}
		return text
	case []model.Attribute:
		text := ""
		for i, nested := range v {
			if i > 0 {
				text += ", "
			}
			text += nested.Key
		}
		return text
	default:
		return formatScalar(v)
	}
}
