package plot

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"psrs-report/internal/config"
	"psrs-report/internal/logging"
	"psrs-report/internal/plot/efficiency"
	"psrs-report/internal/plot/ideal"
	"psrs-report/internal/plot/mappings"
	"psrs-report/internal/plot/phases"
	"psrs-report/internal/plot/speedup"
	"psrs-report/internal/table"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

type ChartType string

const (
	ChartSpeedup    ChartType = "speedup"
	ChartEfficiency ChartType = "efficiency"
	ChartIdeal      ChartType = "ideal"
	ChartPhases     ChartType = "phases"
)

// ChartTypes is the order in which a report renders its charts.
var ChartTypes = []ChartType{ChartSpeedup, ChartEfficiency, ChartIdeal, ChartPhases}

func ParseChartType(s string) (ChartType, error) {
	for _, c := range ChartTypes {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown chart %q", s)
}

var (
	savedLine   = color.New(color.FgGreen).SprintFunc()
	skippedLine = color.New(color.FgYellow).SprintFunc()
)

const bannerWidth = 40

type PlotManager struct {
	cfg                 *config.ReportConfig
	speedupGenerator    *speedup.SpeedupPlotGenerator
	efficiencyGenerator *efficiency.EfficiencyPlotGenerator
	idealGenerator      *ideal.IdealPlotGenerator
	phaseGenerator      *phases.PhasePlotGenerator
	out                 io.Writer
	logger              *logrus.Logger
}

// NewPlotManager prepares the chart generators for cfg. Progress lines are
// written to out.
func NewPlotManager(cfg *config.ReportConfig, out io.Writer) (*PlotManager, error) {
	logger := logging.GetLogger()

	profile, ok := mappings.GetProfile(cfg.Report.Profile)
	if !ok {
		return nil, fmt.Errorf("unknown style profile %q", cfg.Report.Profile)
	}

	return &PlotManager{
		cfg:                 cfg,
		speedupGenerator:    speedup.NewSpeedupPlotGenerator(profile, logger),
		efficiencyGenerator: efficiency.NewEfficiencyPlotGenerator(profile, logger),
		idealGenerator:      ideal.NewIdealPlotGenerator(profile, logger),
		phaseGenerator:      phases.NewPhasePlotGenerator(profile, logger),
		out:                 out,
		logger:              logger,
	}, nil
}

func (pm *PlotManager) GenerateSpeedupPlot() (string, error) {
	return pm.speedupGenerator.Generate(speedup.PlotOptions{
		InputPath:  pm.cfg.Inputs.Speedup,
		OutputPath: pm.cfg.SpeedupPlotPath(),
	})
}

func (pm *PlotManager) GenerateEfficiencyPlot() (string, error) {
	return pm.efficiencyGenerator.Generate(efficiency.PlotOptions{
		InputPath:  pm.cfg.Inputs.Speedup,
		OutputPath: pm.cfg.EfficiencyPlotPath(),
	})
}

func (pm *PlotManager) GenerateIdealPlot() (string, error) {
	return pm.idealGenerator.Generate(ideal.PlotOptions{
		InputPath:  pm.cfg.Inputs.Speedup,
		OutputPath: pm.cfg.IdealPlotPath(),
	})
}

// GeneratePhasePlot returns an error wrapping table.ErrNotFound when the
// phase file is absent.
func (pm *PlotManager) GeneratePhasePlot() (string, error) {
	return pm.phaseGenerator.Generate(phases.PlotOptions{
		InputPath:  pm.cfg.Inputs.Phases,
		OutputPath: pm.cfg.PhasePlotPath(),
	})
}

// GenerateChart renders one chart and reports it on the progress writer. A
// missing phase file is reported as skipped, not as an error.
func (pm *PlotManager) GenerateChart(chart ChartType) error {
	var (
		path string
		err  error
	)
	switch chart {
	case ChartSpeedup:
		path, err = pm.GenerateSpeedupPlot()
	case ChartEfficiency:
		path, err = pm.GenerateEfficiencyPlot()
	case ChartIdeal:
		path, err = pm.GenerateIdealPlot()
	case ChartPhases:
		path, err = pm.GeneratePhasePlot()
		if errors.Is(err, table.ErrNotFound) {
			pm.logger.WithField("path", pm.cfg.Inputs.Phases).Warn("Phase data not found, skipping phase plot")
			fmt.Fprintln(pm.out, skippedLine("No phase data file found, skipping phase plot"))
			return nil
		}
	default:
		return fmt.Errorf("unknown chart %q", chart)
	}

	if err != nil {
		pm.logger.WithField("chart", chart).WithError(err).Error("Failed to generate plot")
		return fmt.Errorf("%s plot: %w", chart, err)
	}

	fmt.Fprintln(pm.out, savedLine("Saved: "+path))
	return nil
}

// GenerateReport renders every chart in order and stops at the first error.
// Files already written stay on disk.
func (pm *PlotManager) GenerateReport() error {
	banner := strings.Repeat("=", bannerWidth)

	fmt.Fprintln(pm.out, "Generating plots...")
	fmt.Fprintln(pm.out, banner)

	for _, chart := range ChartTypes {
		if err := pm.GenerateChart(chart); err != nil {
			return err
		}
	}

	fmt.Fprintln(pm.out, banner)
	fmt.Fprintln(pm.out, "Done!")
	return nil
}
