package renderer

import "github.com/dshills/maskfield/internal/renderer/core"

const (
	marginLeft   = 1
	labelGap     = 2
	headerRows   = 2 // title and a spacer
	rowsPerField = 2 // field and its error line
)

// Layout places labels, fields and the status line on screen.
type Layout struct {
	Width, Height int

	// LabelWidth is the width of the label column in cells.
	LabelWidth int

	// FieldColumn is the screen column of display position 0.
	FieldColumn int

	// Fields is the number of field rows that fit on screen.
	Fields int
}

// NewLayout sizes the label column to the widest label, capped at a third
// of the screen width.
func NewLayout(labels []string, width, height int) Layout {
	labelWidth := 0
	for _, l := range labels {
		labelWidth = max(labelWidth, core.StringWidth(l))
	}
	labelWidth = min(labelWidth, width/3)

	fit := max(0, (height-headerRows-1)/rowsPerField)

	return Layout{
		Width:       width,
		Height:      height,
		LabelWidth:  labelWidth,
		FieldColumn: marginLeft + labelWidth + labelGap,
		Fields:      min(len(labels), fit),
	}
}

// FieldRow returns the screen row of field i.
func (l Layout) FieldRow(i int) int {
	return headerRows + i*rowsPerField
}

// ErrorRow returns the screen row of field i's error text.
func (l Layout) ErrorRow(i int) int {
	return l.FieldRow(i) + 1
}

// StatusRow returns the screen row of the status line.
func (l Layout) StatusRow() int {
	return l.Height - 1
}

// HitTest maps a screen cell to a field index and display position.
// Clicking a label or an error line resolves to the field it belongs to;
// a label click yields position 0.
func (l Layout) HitTest(x, y int) (field, pos int, ok bool) {
	if y < headerRows || y >= l.StatusRow() {
		return 0, 0, false
	}
	field = (y - headerRows) / rowsPerField
	if field >= l.Fields {
		return 0, 0, false
	}
	return field, max(0, x-l.FieldColumn), true
}
