package custody

import (
	"fmt"
)

// Plot describes a bar chart independent of any rendering backend.
type Plot struct {
	Title  string
	XLabel string
	YLabel string

	// Scale is the discrete x axis.
	Scale *Scale

	// Layers contains all the layers displayed in the plot.
	Layers []*Layer

	// Position tells how layers sharing an x position are arranged.
	Position PositionAdjust
}

// Layer is one series of values, aligned to the levels of the plot's
// scale.
type Layer struct {
	Name   string
	Values []float64

	// Offset in bar widths, set by Arrange.
	Offset float64
}

// Arrange sets the layer offsets according to p.Position.
func (p *Plot) Arrange() {
	if p.Position != PosDodge {
		for _, l := range p.Layers {
			l.Offset = 0
		}
		return
	}
	for i, off := range Dodge(len(p.Layers)) {
		p.Layers[i].Offset = off
	}
}

// Check makes sure every layer has one value per scale level.
func (p *Plot) Check() error {
	if p.Scale == nil || len(p.Scale.Levels) == 0 {
		return fmt.Errorf("plot %q: empty scale", p.Title)
	}
	if len(p.Layers) == 0 {
		return fmt.Errorf("plot %q: no layers", p.Title)
	}
	for _, l := range p.Layers {
		if len(l.Values) != len(p.Scale.Levels) {
			return fmt.Errorf("plot %q: layer %q has %d values for %d levels",
				p.Title, l.Name, len(l.Values), len(p.Scale.Levels))
		}
	}
	return nil
}

// NewCrossTabPlot turns a cross tabulation into a grouped bar chart:
// one dodged layer per outcome category with counts in the bin order of
// dim. Categories the table gained beyond the enumeration of o are
// appended as extra layers; bins outside dim.Bins are not shown.
func NewCrossTabPlot(t *Table, dim Dimension, o Outcome) *Plot {
	p := &Plot{
		Title:    fmt.Sprintf("Number of Deaths %s by %s", dim.Per, o.Title),
		XLabel:   dim.Label,
		YLabel:   "Number of Deaths",
		Scale:    NewScale(dim.Bins),
		Position: PosDodge,
	}
	_, extra := t.Extra(dim.Bins, o.Categories)
	for _, cat := range append(append([]string(nil), o.Categories...), extra...) {
		p.Layers = append(p.Layers, &Layer{
			Name:   o.Label(cat),
			Values: t.Series(cat, dim.Bins),
		})
	}
	p.Arrange()
	return p
}

// NewColumnPlot is a single-layer bar chart.
func NewColumnPlot(title, xlabel, ylabel string, levels []string, values []float64) *Plot {
	p := &Plot{
		Title:  title,
		XLabel: xlabel,
		YLabel: ylabel,
		Scale:  NewScale(levels),
		Layers: []*Layer{{Name: ylabel, Values: append([]float64(nil), values...)}},
	}
	p.Arrange()
	return p
}
