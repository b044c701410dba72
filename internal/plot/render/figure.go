package render

import (
	"fmt"

	"psrs-report/internal/plot/mappings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// NewPlot returns an empty plot in the profile's typography with a light
// dashed grid. gonum/plot only draws the left and bottom axes, so there are
// no top or right spines to hide.
func NewPlot(profile mappings.StyleProfile, title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()

	p.Title.Text = title
	p.Title.TextStyle.Font = profile.Font(profile.TitleFontSize)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.X.Label.TextStyle.Font = profile.Font(profile.LabelFontSize)
	p.Y.Label.TextStyle.Font = profile.Font(profile.LabelFontSize)
	p.X.Tick.Label.Font = profile.Font(profile.TickFontSize)
	p.Y.Tick.Label.Font = profile.Font(profile.TickFontSize)
	p.Legend.TextStyle.Font = profile.Font(profile.LegendFontSize)
	p.Legend.Padding = vg.Points(3)

	p.Add(NewGrid(profile))
	return p
}

func NewGrid(profile mappings.StyleProfile) *plotter.Grid {
	g := plotter.NewGrid()
	g.Vertical.Color = profile.GridColor
	g.Vertical.Width = profile.GridWidth
	g.Vertical.Dashes = profile.GridDashes
	g.Horizontal.Color = profile.GridColor
	g.Horizontal.Width = profile.GridWidth
	g.Horizontal.Dashes = profile.GridDashes
	return g
}

// ProcessorTicks puts one labelled tick at every processor count.
func ProcessorTicks(processors []int) plot.ConstantTicks {
	ticks := make([]plot.Tick, len(processors))
	for i, p := range processors {
		ticks[i] = plot.Tick{Value: float64(p), Label: fmt.Sprintf("%d", p)}
	}
	return plot.ConstantTicks(ticks)
}

// CategoryTicks labels the integer positions 0..len(labels)-1.
func CategoryTicks(labels []string) plot.ConstantTicks {
	ticks := make([]plot.Tick, len(labels))
	for i, l := range labels {
		ticks[i] = plot.Tick{Value: float64(i), Label: l}
	}
	return plot.ConstantTicks(ticks)
}

// AddSeries adds a marked line in the colour and glyph of token and a legend
// entry for it.
func AddSeries(p *plot.Plot, profile mappings.StyleProfile, token mappings.StyleToken, label string, pts plotter.XYs) error {
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("series %s: %w", label, err)
	}
	line.Color = token.Color
	line.Width = profile.LineWidth
	points.Shape = token.Glyph
	points.Color = token.Color
	points.Radius = profile.MarkerRadius

	p.Add(line, points)
	p.Legend.Add(label, line, points)
	return nil
}

// NewReferenceLine is a dashed black line through pts.
func NewReferenceLine(profile mappings.StyleProfile, pts plotter.XYs) (*plotter.Line, error) {
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.Color = mappings.Black
	line.Width = profile.ReferenceLineWidth
	line.Dashes = profile.ReferenceDashes
	return line, nil
}

// NewHorizontalReference is a dashed black line at y spanning the whole x axis.
func NewHorizontalReference(profile mappings.StyleProfile, y float64) *plotter.Function {
	fn := plotter.NewFunction(func(float64) float64 { return y })
	fn.Color = mappings.Black
	fn.Width = profile.ReferenceLineWidth
	fn.Dashes = profile.ReferenceDashes
	return fn
}
