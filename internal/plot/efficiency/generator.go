package efficiency

import (
	"fmt"

	"psrs-report/internal/labels"
	"psrs-report/internal/metrics"
	"psrs-report/internal/plot/mappings"
	"psrs-report/internal/plot/render"
	"psrs-report/internal/table"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// idealEfficiency is perfect linear scaling.
const idealEfficiency = 1.0

type EfficiencyPlotGenerator struct {
	profile mappings.StyleProfile
	logger  *logrus.Logger
}

func NewEfficiencyPlotGenerator(profile mappings.StyleProfile, logger *logrus.Logger) *EfficiencyPlotGenerator {
	return &EfficiencyPlotGenerator{
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
	Ceiling    float64
}

// Generate renders parallel efficiency (speedup / p) against processor count.
func (g *EfficiencyPlotGenerator) Generate(opts PlotOptions) (string, error) {
	g.logger.WithFields(logrus.Fields{
		"input":  opts.InputPath,
		"output": opts.OutputPath,
	}).Info("Generating efficiency plot")

	st, err := table.LoadSpeedupTable(opts.InputPath)
	if err != nil {
		return "", fmt.Errorf("failed to load speedup table: %w", err)
	}

	data := g.preparePlotData(st)

	p, err := g.renderPlot(data)
	if err != nil {
		return "", fmt.Errorf("failed to render efficiency plot: %w", err)
	}

	if err := render.SavePNG(p, g.profile.LineFigure, g.profile.DPI, opts.OutputPath); err != nil {
		return "", err
	}
	return opts.OutputPath, nil
}

func (g *EfficiencyPlotGenerator) preparePlotData(st *table.SpeedupTable) *PlotData {
	eff := metrics.EfficiencyTable(st)
	data := &PlotData{
		Processors: append([]int(nil), st.Processors...),
		Ceiling:    g.profile.EfficiencyCeiling,
	}

	for i, n := range st.Sizes {
		pts := make(plotter.XYs, len(st.Processors))
		for j, p := range st.Processors {
			pts[j].X = float64(p)
			pts[j].Y = eff[i][j]
		}
		data.Series = append(data.Series, PlotSeries{
			Label:  labels.SizeLabel(n),
			Style:  g.profile.Palette.At(i),
			Points: pts,
		})
	}

	return data
}

func (g *EfficiencyPlotGenerator) renderPlot(data *PlotData) (*plot.Plot, error) {
	p := render.NewPlot(g.profile, "",
		mappings.GetMetricMapping("processors").Label,
		mappings.GetMetricMapping("efficiency").Label,
	)

	for _, s := range data.Series {
		if err := render.AddSeries(p, g.profile, s.Style, s.Label, s.Points); err != nil {
			return nil, err
		}
	}

	ideal := render.NewHorizontalReference(g.profile, idealEfficiency)
	p.Add(ideal)
	p.Legend.Add(mappings.IdealReferenceLabel, ideal)

	p.X.Tick.Marker = render.ProcessorTicks(data.Processors)
	p.Y.Min = 0
	p.Y.Max = data.Ceiling
	p.Legend.Top = true

	return p, nil
}
