package renderer

import (
	"fmt"

	"github.com/dshills/maskfield/internal/input/mode"
	"github.com/dshills/maskfield/internal/renderer/backend"
	"github.com/dshills/maskfield/internal/renderer/core"
)

// Row is the snapshot of one field.
type Row struct {
	Label string

	// Text is the host text; SelStart and SelEnd are the host selection.
	Text     string
	SelStart int
	SelEnd   int

	Mode mode.Mode
	Err  error
}

// Frame is everything drawn in one pass.
type Frame struct {
	Title string
	Rows  []Row

	// Focus is the focused row, or -1.
	Focus int

	// Message is shown on the status line.
	Message string
}

// Renderer paints frames onto a backend.
type Renderer struct {
	backend backend.Backend
	theme   Theme
	layout  Layout
}

// New creates a renderer.
func New(b backend.Backend, theme Theme) *Renderer {
	return &Renderer{backend: b, theme: theme}
}

// SetTheme replaces the theme used by the next Draw.
func (r *Renderer) SetTheme(theme Theme) {
	r.theme = theme
}

// Theme returns the current theme.
func (r *Renderer) Theme() Theme {
	return r.theme
}

// Layout returns the layout of the last Draw.
func (r *Renderer) Layout() Layout {
	return r.layout
}

// Draw repaints the whole screen from f.
func (r *Renderer) Draw(f Frame) {
	width, height := r.backend.Size()
	labels := make([]string, len(f.Rows))
	for i, row := range f.Rows {
		labels[i] = row.Label
	}
	r.layout = NewLayout(labels, width, height)

	r.backend.Clear()
	r.drawText(marginLeft, 0, width-marginLeft, f.Title, r.theme.Title)

	for i := 0; i < r.layout.Fields; i++ {
		r.drawRow(i, f.Rows[i], i == f.Focus)
	}

	r.drawStatus(f)
	r.placeCursor(f)
	r.backend.Show()
}

func (r *Renderer) drawRow(i int, row Row, focused bool) {
	l := r.layout
	y := l.FieldRow(i)

	r.drawText(marginLeft, y, l.LabelWidth, row.Label, r.theme.Label)

	style := r.theme.Field
	if focused {
		style = r.theme.Focused
	}
	for pos, ch := range []rune(row.Text) {
		x := l.FieldColumn + pos
		if x >= l.Width {
			break
		}
		s := style
		if focused && pos >= row.SelStart && pos < row.SelEnd {
			s = r.theme.Selection
		}
		r.backend.SetCell(x, y, core.NewStyledCell(ch, s))
	}

	if focused && row.Err != nil {
		r.drawText(l.FieldColumn, l.ErrorRow(i), l.Width-l.FieldColumn, "! "+row.Err.Error(), r.theme.Error)
	}
}

func (r *Renderer) drawStatus(f Frame) {
	l := r.layout
	y := l.StatusRow()
	if y < 0 {
		return
	}
	r.backend.Fill(core.RectFromSize(y, 0, 1, l.Width), core.NewStyledCell(' ', r.theme.Status))

	x := 0
	if f.Focus >= 0 && f.Focus < len(f.Rows) {
		badge := " " + f.Rows[f.Focus].Mode.DisplayName() + " "
		x += r.drawText(x, y, l.Width, badge, r.theme.StatusMode)

		pos := fmt.Sprintf("%d/%d ", f.Focus+1, len(f.Rows))
		r.drawText(l.Width-len(pos), y, len(pos), pos, r.theme.Status)
	}
	if f.Message != "" {
		r.drawText(x+1, y, l.Width-x-1, f.Message, r.theme.Status)
	}
}

func (r *Renderer) placeCursor(f Frame) {
	if f.Focus < 0 || f.Focus >= r.layout.Fields {
		r.backend.HideCursor()
		return
	}
	row := f.Rows[f.Focus]
	r.backend.SetCursorStyle(cursorStyle(row.Mode.CursorStyle()))
	r.backend.ShowCursor(r.layout.FieldColumn+row.SelStart, r.layout.FieldRow(f.Focus))
}

// drawText writes s at (x, y), truncated to width cells, and returns the
// number of cells written.
func (r *Renderer) drawText(x, y, width int, s string, style core.Style) int {
	s = core.Truncate(s, width)
	col := x
	for _, ch := range s {
		cell := core.NewStyledCell(ch, style)
		if cell.Width == 0 {
			continue
		}
		r.backend.SetCell(col, y, cell)
		col += cell.Width
	}
	return col - x
}

func cursorStyle(cs mode.CursorStyle) backend.CursorStyle {
	switch cs {
	case mode.CursorBar:
		return backend.CursorBar
	case mode.CursorUnderline:
		return backend.CursorUnderline
	case mode.CursorHidden:
		return backend.CursorHidden
	default:
		return backend.CursorBlock
	}
}
