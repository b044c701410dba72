package speedup

import (
	"fmt"

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

type SpeedupPlotGenerator struct {
	profile mappings.StyleProfile
	logger  *logrus.Logger
}

func NewSpeedupPlotGenerator(profile mappings.StyleProfile, logger *logrus.Logger) *SpeedupPlotGenerator {
	return &SpeedupPlotGenerator{
		profile: profile,
		logger:  logger,
	}
}

type PlotOptions struct {
	InputPath  string
	OutputPath string
}

type PlotSeries struct {
	Label  string
	Style  mappings.StyleToken
	Points plotter.XYs
}

type PlotData struct {
	Series     []PlotSeries
	Processors []int
	// ReferenceLimit is both the end of the linear reference and the top of
	// the y axis.
	ReferenceLimit float64
}

// Generate renders speedup against processor count, one line per array size.
func (g *SpeedupPlotGenerator) Generate(opts PlotOptions) (string, error) {
	g.logger.WithFields(logrus.Fields{
		"input":  opts.InputPath,
		"output": opts.OutputPath,
	}).Info("Generating speedup plot")

	st, err := table.LoadSpeedupTable(opts.InputPath)
	if err != nil {
		return "", fmt.Errorf("failed to load speedup table: %w", err)
	}

	data := g.preparePlotData(st)

	p, err := g.renderPlot(data)
	if err != nil {
		return "", fmt.Errorf("failed to render speedup plot: %w", err)
	}

	if err := render.SavePNG(p, g.profile.LineFigure, g.profile.DPI, opts.OutputPath); err != nil {
		return "", err
	}

	g.logger.WithFields(logrus.Fields{
		"series":          len(data.Series),
		"reference_limit": data.ReferenceLimit,
	}).Debug("Speedup plot written")
	return opts.OutputPath, nil
}

func (g *SpeedupPlotGenerator) preparePlotData(st *table.SpeedupTable) *PlotData {
	data := &PlotData{
		Processors:     append([]int(nil), st.Processors...),
		ReferenceLimit: layout.ReferenceLimit(metrics.MaxSpeedup(st), g.profile.ReferenceHeadroom),
	}

	for i, n := range st.Sizes {
		pts := make(plotter.XYs, len(st.Processors))
		for j, p := range st.Processors {
			pts[j].X = float64(p)
			pts[j].Y = st.Speedup[i][j]
		}
		data.Series = append(data.Series, PlotSeries{
			Label:  labels.SizeLabel(n),
			Style:  g.profile.Palette.At(i),
			Points: pts,
		})
	}

	return data
}

func (g *SpeedupPlotGenerator) renderPlot(data *PlotData) (*plot.Plot, error) {
	p := render.NewPlot(g.profile, "",
		mappings.GetMetricMapping("processors").Label,
		mappings.GetMetricMapping("speedup").Label,
	)

	for _, s := range data.Series {
		if err := render.AddSeries(p, g.profile, s.Style, s.Label, s.Points); err != nil {
			return nil, err
		}
	}

	l := data.ReferenceLimit
	ref, err := render.NewReferenceLine(g.profile, plotter.XYs{{X: 1, Y: 1}, {X: l, Y: l}})
	if err != nil {
		return nil, fmt.Errorf("reference line: %w", err)
	}
	p.Add(ref)
	p.Legend.Add(mappings.LinearReferenceLabel, ref)

	p.X.Tick.Marker = render.ProcessorTicks(data.Processors)
	p.Y.Min = 0
	p.Y.Max = l
	p.Legend.Top = true
	p.Legend.Left = true

	return p, nil
}
