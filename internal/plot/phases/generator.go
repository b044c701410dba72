package phases

import (
	"fmt"
	"math"

	"psrs-report/internal/labels"
	"psrs-report/internal/plot/layout"
	"psrs-report/internal/plot/mappings"
	"psrs-report/internal/plot/render"
	"psrs-report/internal/table"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// topMargin keeps the tallest stack clear of the frame.
const topMargin = 1.05

type PhasePlotGenerator struct {
	profile mappings.StyleProfile
	logger  *logrus.Logger
}

func NewPhasePlotGenerator(profile mappings.StyleProfile, logger *logrus.Logger) *PhasePlotGenerator {
	return &PhasePlotGenerator{
		profile: profile,
		logger:  logger,
	}
}

type PlotOptions struct {
	InputPath  string
	OutputPath string
}

// Subplot is the stacked-bar chart of one array size. Segments[k] holds the
// phase k+1 segment of every bar, already raised onto the phases below it.
type Subplot struct {
	N        int
	Title    string
	Row, Col int
	Groups   []string
	Segments [table.PhaseCount][]render.Bar
}

// MaxStack is the height of the tallest bar.
func (sp Subplot) MaxStack() float64 {
	top := 0.0
	for _, segment := range sp.Segments {
		for _, b := range segment {
			top = math.Max(top, b.Base+b.Height)
		}
	}
	return top
}

type PlotData struct {
	Rows, Cols int
	Subplots   []Subplot
}

// Generate renders one stacked phase-timing subplot per array size. When the
// phase file does not exist the returned error wraps table.ErrNotFound and
// nothing is written.
func (g *PhasePlotGenerator) Generate(opts PlotOptions) (string, error) {
	g.logger.WithFields(logrus.Fields{
		"input":  opts.InputPath,
		"output": opts.OutputPath,
	}).Info("Generating phase breakdown plot")

	pt, err := table.LoadPhaseTable(opts.InputPath)
	if err != nil {
		return "", fmt.Errorf("failed to load phase table: %w", err)
	}

	data := g.preparePlotData(pt)

	grid, err := g.renderGrid(data)
	if err != nil {
		return "", fmt.Errorf("failed to render phase breakdown plot: %w", err)
	}

	if err := render.SaveGridPNG(grid, g.profile.DPI, opts.OutputPath); err != nil {
		return "", err
	}

	g.logger.WithFields(logrus.Fields{
		"sizes": len(data.Subplots),
		"rows":  data.Rows,
		"cols":  data.Cols,
	}).Debug("Phase breakdown plot written")
	return opts.OutputPath, nil
}

func (g *PhasePlotGenerator) preparePlotData(pt *table.PhaseTable) *PlotData {
	sizes := pt.Sizes()
	data := &PlotData{}
	data.Rows, data.Cols = layout.GridDimensions(len(sizes), g.profile.PhaseColumns)

	for i, n := range sizes {
		rows := pt.ForSize(n)
		sp := Subplot{
			N:      n,
			Title:  labels.SizeLabel(n),
			Groups: make([]string, len(rows)),
		}
		sp.Row, sp.Col = layout.GridCell(i, data.Cols)
		for k := range sp.Segments {
			sp.Segments[k] = make([]render.Bar, len(rows))
		}

		for j, r := range rows {
			sp.Groups[j] = labels.ProcessorTick(r.P)
			bases := layout.StackBases(r.Phases[:])
			for k := range r.Phases {
				sp.Segments[k][j] = render.Bar{X: float64(j), Base: bases[k], Height: r.Phases[k]}
			}
		}
		data.Subplots = append(data.Subplots, sp)
	}

	return data
}

func (g *PhasePlotGenerator) renderGrid(data *PlotData) (render.Grid, error) {
	cells := make([][]*plot.Plot, data.Rows)
	for r := range cells {
		cells[r] = make([]*plot.Plot, data.Cols)
	}

	for _, sp := range data.Subplots {
		p, err := g.renderSubplot(sp)
		if err != nil {
			return render.Grid{}, err
		}
		cells[sp.Row][sp.Col] = p
	}

	legend, height, err := g.phaseLegend()
	if err != nil {
		return render.Grid{}, err
	}

	return render.Grid{
		Cells:        cells,
		Legend:       legend,
		LegendHeight: height,
		Cell:         g.profile.PhaseCell,
	}, nil
}

func (g *PhasePlotGenerator) renderSubplot(sp Subplot) (*plot.Plot, error) {
	p := render.NewPlot(g.profile, sp.Title,
		mappings.GetMetricMapping("processors").Label,
		mappings.GetMetricMapping("phase_time").Label,
	)

	for k, segment := range sp.Segments {
		bars, err := g.phaseBars(k, segment)
		if err != nil {
			return nil, fmt.Errorf("subplot %s: %w", sp.Title, err)
		}
		p.Add(bars)
	}

	p.X.Tick.Marker = render.CategoryTicks(sp.Groups)
	p.X.Min = -0.5
	p.X.Max = float64(len(sp.Groups)) - 0.5
	p.Y.Min = 0
	if top := sp.MaxStack(); top > 0 {
		p.Y.Max = top * topMargin
	}

	return p, nil
}

func (g *PhasePlotGenerator) phaseBars(k int, segment []render.Bar) (*render.Bars, error) {
	bars, err := render.NewBars(segment, g.profile.PhaseBarWidth)
	if err != nil {
		return nil, err
	}
	bars.Color = mappings.PhaseStyles[k].Color
	bars.LineStyle.Color = mappings.PhaseStyles[k].Color
	return bars, nil
}

// phaseLegend builds the single legend shared by every subplot and the
// height of the strip it needs.
func (g *PhasePlotGenerator) phaseLegend() (plot.Legend, vg.Length, error) {
	legend := plot.NewLegend()
	legend.TextStyle.Font = g.profile.Font(g.profile.LegendFontSize)
	legend.Top = true
	legend.Padding = vg.Points(3)

	for k, style := range mappings.PhaseStyles {
		thumb, err := g.phaseBars(k, nil)
		if err != nil {
			return plot.Legend{}, 0, err
		}
		legend.Add(style.Label, thumb)
	}

	entry := g.profile.LegendFontSize*1.4 + legend.Padding
	height := vg.Length(len(mappings.PhaseStyles))*entry + 2*legend.Padding
	return legend, height, nil
}
