package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/moarsenal/arsenal/internal/model"
	"github.com/moarsenal/arsenal/internal/platform"
)

// ShowUnit shows the detail view for one unit: header with icon and
// origin, the ordered infobox attributes, and any article tables.
func (ui *RootUI) ShowUnit(record *model.UnitRecord) {
	backBtn := widget.NewButton(IconBack, func() { ui.ShowFaction(record.Faction) })

	compareText := "+ Add to Comparison"
	if ui.comparison.Contains(record) {
		compareText = IconSelected + " In Comparison"
	}
	compareBtn := widget.NewButton(compareText, func() {
		ui.toggleComparison(record)
		ui.ShowUnit(record) // rebuild so the button text follows
	})

	buttons := container.NewHBox(backBtn, compareBtn)
	if record.IconURL != "" {
		sourceBtn := widget.NewButton("Source", func() {
			_ = platform.OpenURL(record.IconURL)
		})
		sourceBtn.Importance = widget.LowImportance
		buttons.Add(sourceBtn)
	}

	header := container.NewHBox()
	if icon := ui.icons.UnitIcon(record); icon != nil {
		image := canvas.NewImageFromResource(icon)
		image.FillMode = canvas.ImageFillContain
		size := ui.settings.IconSize(DetailIconSize)
		image.SetMinSize(fyne.NewSize(size, size))
		header.Add(image)
	}
	info := container.NewVBox(
		widget.NewLabelWithStyle(record.Name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel(record.Origin()),
		widget.NewLabel(record.Category),
	)
	header.Add(info)

	properties := container.NewVBox(
		widget.NewLabelWithStyle("Properties", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),
	)
	for _, attr := range record.Attributes {
		properties.Add(ui.buildAttributeRow(attr, 0))
	}
	for _, table := range record.ArticleTables {
		properties.Add(widget.NewSeparator())
		properties.Add(ui.buildArticleTable(table))
	}

	view := container.NewVBox(buttons, header, properties)
	ui.setContent(container.NewVScroll(container.NewPadded(view)))
}

// buildAttributeRow renders one infobox key/value pair. Nested tables
// recurse with indentation.
func (ui *RootUI) buildAttributeRow(attr model.Attribute, depth int) fyne.CanvasObject {
	key := widget.NewLabelWithStyle(attr.Key+":", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	row := container.NewBorder(nil, nil, key, nil, ui.buildAttributeValue(attr.Value, depth))
	if depth == 0 {
		return row
	}
	pad := strings.Repeat("    ", depth)
	return container.NewBorder(nil, nil, widget.NewLabel(pad), nil, row)
}

// buildAttributeValue renders an attribute value: lists as bullet lines,
// nested tables as indented rows, scalars as a wrapping label.
func (ui *RootUI) buildAttributeValue(value any, depth int) fyne.CanvasObject {
	switch v := value.(type) {
	case []any:
		box := container.NewVBox()
		for _, item := range v {
			line := widget.NewLabel(BulletPrefix + formatScalar(item))
			line.Wrapping = fyne.TextWrapWord
			box.Add(line)
		}
		return box
	case []model.Attribute:
		box := container.NewVBox()
		for _, nested := range v {
			box.Add(ui.buildAttributeRow(nested, depth+1))
		}
		return box
	case float64:
		// Numbers stand out, matching the emphasized stat rendering.
		return widget.NewLabelWithStyle(formatScalar(v), fyne.TextAlignLeading,
			fyne.TextStyle{Bold: true})
	default:
		label := widget.NewLabel(formatScalar(v))
		label.Wrapping = fyne.TextWrapWord
		return label
	}
}

// buildArticleTable renders an article table as a titled column grid.
func (ui *RootUI) buildArticleTable(table model.ArticleTable) fyne.CanvasObject {
	box := container.NewVBox()
	if table.Title != "" {
		box.Add(widget.NewLabelWithStyle(table.Title, fyne.TextAlignLeading,
			fyne.TextStyle{Bold: true}))
	}

	columns := len(table.Headers)
	for _, row := range table.Rows {
		if len(row) > columns {
			columns = len(row)
		}
	}
	if columns == 0 {
		return box
	}

	grid := container.NewGridWithColumns(columns)
	for _, h := range table.Headers {
		grid.Add(widget.NewLabelWithStyle(h, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	}
	for i := len(table.Headers); i > 0 && i < columns; i++ {
		grid.Add(widget.NewLabel(""))
	}
	for _, row := range table.Rows {
		for c := 0; c < columns; c++ {
			text := ""
			if c < len(row) {
				text = row[c]
			}
			cell := widget.NewLabel(text)
			cell.Wrapping = fyne.TextWrapWord
			grid.Add(cell)
		}
	}
	box.Add(grid)
	return box
}

// formatScalar renders a scalar attribute value as display text. Whole
// numbers drop the decimal point JSON decoding gives them.
func formatScalar(value any) string {
	switch v := value.(type) {
	case nil:
		return DashPlaceholder
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%g", v)
	case bool:
		if v {
			return "yes"
		}
		return "no"
	default:
		return fmt.Sprintf("%v", v)
	}
}
