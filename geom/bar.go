// Package geom draws custody plots with gonum/plot.
package geom

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/custody"
)

// Bars renders the layers of a plot as bar charts placed at the layer
// offsets.
type Bars struct {
	Theme custody.Theme
}

// Render builds the gonum plot for p.
func (b Bars) Render(p *custody.Plot) (*plot.Plot, error) {
	if err := p.Check(); err != nil {
		return nil, err
	}
	palette, err := b.Theme.Colors()
	if err != nil {
		return nil, err
	}

	gp, err := plot.New()
	if err != nil {
		return nil, err
	}
	gp.Title.Text = p.Title
	gp.X.Label.Text = p.XLabel
	gp.Y.Label.Text = p.YLabel
	gp.Y.Min = 0
	gp.Legend.Top = b.Theme.LegendTop

	width := vg.Points(b.Theme.BarWidth)
	if width <= 0 {
		width = vg.Points(custody.DefaultTheme.BarWidth)
	}
	if len(p.Layers) == 1 {
		// A single series may use most of the space of its level.
		width *= 6
	}

	for i, layer := range p.Layers {
		bars, err := plotter.NewBarChart(plotter.Values(layer.Values), width)
		if err != nil {
			return nil, fmt.Errorf("layer %q: %w", layer.Name, err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = layerColor(palette, i)
		bars.Offset = vg.Length(layer.Offset) * width
		gp.Add(bars)
		if len(p.Layers) > 1 {
			gp.Legend.Add(layer.Name, bars)
		}
	}
	gp.NominalX(p.Scale.Levels...)
	return gp, nil
}

func layerColor(palette []color.Color, i int) color.Color {
	if len(palette) == 0 {
		return plotutil.Color(i)
	}
	return palette[i%len(palette)]
}

func (b Bars) size() (vg.Length, vg.Length) {
	w, h := b.Theme.Width, b.Theme.Height
	if w <= 0 || h <= 0 {
		w, h = custody.DefaultTheme.Width, custody.DefaultTheme.Height
	}
	return vg.Points(w), vg.Points(h)
}

// Save renders p to the file path. The image format follows the file
// extension (png, svg, pdf, ...).
func (b Bars) Save(p *custody.Plot, path string) error {
	gp, err := b.Render(p)
	if err != nil {
		return err
	}
	w, h := b.size()
	if err := gp.Save(w, h, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
