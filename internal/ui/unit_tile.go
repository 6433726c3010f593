package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/moarsenal/arsenal/internal/model"
)

// UnitTile is a clickable unit cell for the roster grids: icon (or name
// fallback) with a selection mark when the unit is in the comparison set.
// Primary tap opens the unit, secondary tap toggles comparison.
type UnitTile struct {
	widget.BaseWidget

	record     *model.UnitRecord
	icon       fyne.Resource
	iconSize   float32
	comparison *model.ComparisonSet

	onTap          func(*model.UnitRecord)
	onSecondaryTap func(*model.UnitRecord)

	mark *widget.Label
}

// NewUnitTile creates a tile for a unit record.
func NewUnitTile(record *model.UnitRecord, icon fyne.Resource, iconSize float32,
	comparison *model.ComparisonSet,
	onTap, onSecondaryTap func(*model.UnitRecord)) *UnitTile {

	tile := &UnitTile{
		record:         record,
		icon:           icon,
		iconSize:       iconSize,
		comparison:     comparison,
		onTap:          onTap,
		onSecondaryTap: onSecondaryTap,
	}
	tile.ExtendBaseWidget(tile)
	return tile
}

// Tapped opens the unit details.
func (t *UnitTile) Tapped(_ *fyne.PointEvent) {
	if t.onTap != nil {
		t.onTap(t.record)
	}
}

// TappedSecondary toggles the unit in the comparison set.
func (t *UnitTile) TappedSecondary(_ *fyne.PointEvent) {
	if t.onSecondaryTap != nil {
		t.onSecondaryTap(t.record)
	}
}

// Record returns the unit the tile represents.
func (t *UnitTile) Record() *model.UnitRecord {
	return t.record
}

// UpdateMark refreshes the selection mark from the comparison set.
func (t *UnitTile) UpdateMark() {
	if t.mark == nil {
		return
	}
	if t.comparison != nil && t.comparison.Contains(t.record) {
		t.mark.Show()
	} else {
		t.mark.Hide()
	}
	t.Refresh()
}

// CreateRenderer builds the tile content: icon with name caption, or the
// name alone when the unit has no icon file on disk.
func (t *UnitTile) CreateRenderer() fyne.WidgetRenderer {
	name := widget.NewLabel(t.record.Name)
	name.Alignment = fyne.TextAlignCenter
	name.Truncation = fyne.TextTruncateEllipsis

	t.mark = widget.NewLabelWithStyle(IconSelected, fyne.TextAlignLeading,
		fyne.TextStyle{Bold: true})
	if t.comparison == nil || !t.comparison.Contains(t.record) {
		t.mark.Hide()
	}

	var body fyne.CanvasObject
	if t.icon != nil {
		image := canvas.NewImageFromResource(t.icon)
		image.FillMode = canvas.ImageFillContain
		image.SetMinSize(fyne.NewSize(t.iconSize, t.iconSize))
		body = container.NewVBox(image, name)
	} else {
		body = container.NewCenter(name)
	}

	content := container.NewStack(body, container.NewHBox(t.mark))
	return widget.NewSimpleRenderer(content)
}
