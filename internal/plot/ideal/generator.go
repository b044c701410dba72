package ideal

import (
	"fmt"
	"image/color"
	"math"

	"psrs-report/internal/labels"
	"psrs-report/internal/metrics"
	"psrs-report/internal/plot/layout"
	"psrs-report/internal/plot/mappings"
	"psrs-report/internal/plot/render"
	"psrs-report/internal/table"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// topMargin keeps the tallest bar and the last ideal marker off the frame.
const topMargin = 1.05

type IdealPlotGenerator struct {
	profile mappings.StyleProfile
	logger  *logrus.Logger
}

func NewIdealPlotGenerator(profile mappings.StyleProfile, logger *logrus.Logger) *IdealPlotGenerator {
	return &IdealPlotGenerator{
		profile: profile,
		logger:  logger,
	}
}

type PlotOptions struct {
	InputPath  string
	OutputPath string
}

// BarSeries is every bar of one array size, one per processor group.
type BarSeries struct {
	Label string
	Color color.RGBA
	Bars  []render.Bar
}

type PlotData struct {
	// Groups holds one tick label per processor count; group j is centred
	// on x = j.
	Groups   []string
	Series   []BarSeries
	BarWidth float64
	// Ideal traces speedup = p at each group centre.
	Ideal plotter.XYs
	YMax  float64
}

// Generate renders measured speedup as grouped bars against ideal speedup.
func (g *IdealPlotGenerator) Generate(opts PlotOptions) (string, error) {
	g.logger.WithFields(logrus.Fields{
		"input":  opts.InputPath,
		"output": opts.OutputPath,
	}).Info("Generating speedup vs ideal plot")

	st, err := table.LoadSpeedupTable(opts.InputPath)
	if err != nil {
		return "", fmt.Errorf("failed to load speedup table: %w", err)
	}

	data := g.preparePlotData(st)

	p, err := g.renderPlot(data)
	if err != nil {
		return "", fmt.Errorf("failed to render speedup vs ideal plot: %w", err)
	}

	if err := render.SavePNG(p, g.profile.BarFigure, g.profile.DPI, opts.OutputPath); err != nil {
		return "", err
	}
	return opts.OutputPath, nil
}

func (g *IdealPlotGenerator) preparePlotData(st *table.SpeedupTable) *PlotData {
	k := st.Len()
	data := &PlotData{
		Groups:   make([]string, len(st.Processors)),
		BarWidth: layout.BarWidth(k, g.profile.BarGroupWidth),
		Ideal:    make(plotter.XYs, len(st.Processors)),
	}

	top := metrics.MaxSpeedup(st)
	for j, p := range st.Processors {
		data.Groups[j] = labels.ProcessorTick(p)
		data.Ideal[j].X = float64(j)
		data.Ideal[j].Y = float64(p)
		top = math.Max(top, float64(p))
	}
	data.YMax = top * topMargin

	for i, n := range st.Sizes {
		offset := layout.BarOffset(i, k, data.BarWidth)
		series := BarSeries{
			Label: labels.SizeLabel(n),
			Color: g.profile.Palette.At(i).Color,
			Bars:  make([]render.Bar, len(st.Processors)),
		}
		for j := range st.Processors {
			series.Bars[j] = render.Bar{X: float64(j) + offset, Height: st.Speedup[i][j]}
		}
		data.Series = append(data.Series, series)
	}

	return data
}

func (g *IdealPlotGenerator) renderPlot(data *PlotData) (*plot.Plot, error) {
	p := render.NewPlot(g.profile, "",
		mappings.GetMetricMapping("processors").Label,
		mappings.GetMetricMapping("speedup").Label,
	)

	for _, s := range data.Series {
		bars, err := render.NewBars(s.Bars, data.BarWidth)
		if err != nil {
			return nil, fmt.Errorf("bars %s: %w", s.Label, err)
		}
		bars.Color = s.Color
		bars.LineStyle.Color = mappings.Black
		bars.LineStyle.Width = g.profile.BarOutlineWidth
		p.Add(bars)
		p.Legend.Add(s.Label, bars)
	}

	line, points, err := plotter.NewLinePoints(data.Ideal)
	if err != nil {
		return nil, fmt.Errorf("ideal line: %w", err)
	}
	line.Color = mappings.Black
	line.Width = g.profile.ReferenceLineWidth
	line.Dashes = g.profile.ReferenceDashes
	points.Shape = mappings.DashGlyph{Width: g.profile.ReferenceLineWidth}
	points.Color = mappings.Black
	points.Radius = g.profile.MarkerRadius * 2
	p.Add(line, points)
	p.Legend.Add(mappings.IdealReferenceLabel, line, points)

	p.X.Tick.Marker = render.CategoryTicks(data.Groups)
	p.X.Min = -0.5
	p.X.Max = float64(len(data.Groups)) - 0.5
	p.Y.Min = 0
	p.Y.Max = data.YMax
	p.Legend.Top = true
	p.Legend.Left = true

	return p, nil
}
