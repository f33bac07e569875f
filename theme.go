package custody

import (
	"fmt"
	"image/color"
)

// Theme controls the look of rendered charts. Lengths are in points.
type Theme struct {
	Width, Height float64
	BarWidth      float64

	// Palette colors the layers in order. An empty palette leaves the
	// choice to the renderer.
	Palette []string

	LegendTop bool
}

var DefaultTheme = Theme{
	Width:     720,
	Height:    480,
	BarWidth:  5,
	LegendTop: true,
}

// Colors parses the palette.
func (t Theme) Colors() ([]color.Color, error) {
	cols := make([]color.Color, len(t.Palette))
	for i, s := range t.Palette {
		c, err := String2Color(s)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		cols[i] = c
	}
	return cols, nil
}
