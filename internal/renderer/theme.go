package renderer

import "github.com/dshills/maskfield/internal/renderer/core"

// Palette is the set of base colors a Theme is derived from.
type Palette struct {
	Foreground core.Color
	Background core.Color
	Accent     core.Color
	Error      core.Color
}

// DefaultPalette returns the built-in dark palette.
func DefaultPalette() Palette {
	return Palette{
		Foreground: core.MustColorFromHex("#D0D0D0"),
		Background: core.MustColorFromHex("#1C1C1C"),
		Accent:     core.MustColorFromHex("#5F87D7"),
		Error:      core.MustColorFromHex("#D75F5F"),
	}
}

// Theme holds the resolved styles for every form element.
type Theme struct {
	Title      core.Style
	Label      core.Style
	Field      core.Style
	Focused    core.Style
	Selection  core.Style
	Error      core.Style
	Status     core.Style
	StatusMode core.Style
}

// NewTheme derives a theme from a palette. Shades are blended toward the
// accent and error colors so that custom palettes stay coherent.
func NewTheme(p Palette) Theme {
	base := core.Style{Foreground: p.Foreground, Background: p.Background}

	return Theme{
		Title:      base.WithForeground(p.Accent.Lighten(0.2)).Bold(),
		Label:      base.WithForeground(p.Foreground.Blend(p.Background, 0.35)),
		Field:      base.WithBackground(p.Background.Blend(p.Foreground, 0.12)),
		Focused:    base.WithBackground(p.Background.Blend(p.Accent, 0.35)),
		Selection:  base.WithForeground(p.Background).WithBackground(p.Accent),
		Error:      base.WithForeground(p.Error),
		Status:     base.WithBackground(p.Background.Blend(p.Accent, 0.2)),
		StatusMode: base.WithForeground(p.Background).WithBackground(p.Accent.Darken(0.1)).Bold(),
	}
}
