package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"psrs-report/internal/config"
	"psrs-report/internal/database"
	"psrs-report/internal/labels"
	"psrs-report/internal/logging"
	"psrs-report/internal/metrics"
	"psrs-report/internal/plot"
	"psrs-report/internal/plot/layout"
	"psrs-report/internal/plot/mappings"
	"psrs-report/internal/table"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const Version = "1.0.0"

type options struct {
	configFile string
	logLevel   string
	logFormat  string
	profile    string
	outputDir  string
}

func Execute() error {
	loadEnvironment()
	return NewRootCommand(os.Stdout).Execute()
}

func loadEnvironment() {
	logger := logging.GetLogger()

	// Try to load .env file from current directory
	envFile := ".env"
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			logger.WithField("file", envFile).WithError(err).Warn("Error loading .env file")
		} else {
			logger.WithField("file", envFile).Debug("Loaded environment variables")
		}
		return
	}

	// Try to load from the application directory
	if execPath, err := os.Executable(); err == nil {
		envFile = filepath.Join(filepath.Dir(execPath), ".env")
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				logger.WithField("file", envFile).WithError(err).Warn("Error loading .env file")
			} else {
				logger.WithField("file", envFile).Debug("Loaded environment variables")
			}
		}
	}
}

// NewRootCommand builds the command tree. Progress lines go to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:           "psrs-report",
		Short:         "PSRS benchmark report generator",
		Long:          "Render speedup, efficiency and phase-timing charts from parallel sorting benchmark results",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.logLevel != "" {
				if err := logging.SetLogLevel(opts.logLevel); err != nil {
					return fmt.Errorf("invalid log level: %w", err)
				}
			}
			return setLogFormat(opts.logFormat)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			return runReport(cmd.Context(), cfg, out)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "Path to report configuration file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Set log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().StringVar(&opts.profile, "profile", "", "Style profile (paper, poster)")
	rootCmd.PersistentFlags().StringVar(&opts.outputDir, "output-dir", "", "Directory the charts are written to")

	plotCmd := &cobra.Command{
		Use:       "plot <speedup|efficiency|ideal|phases>",
		Short:     "Generate a single chart",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"speedup", "efficiency", "ideal", "phases"},
		RunE: func(cmd *cobra.Command, args []string) error {
			chart, err := plot.ParseChartType(args[0])
			if err != nil {
				return err
			}
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			pm, err := plot.NewPlotManager(cfg, out)
			if err != nil {
				return err
			}
			return pm.GenerateChart(chart)
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration and input tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			return validateInputs(cfg)
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the input tables to InfluxDB",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if !cfg.Export.DB.Complete() {
				return fmt.Errorf("incomplete database configuration: set export.db in the config or INFLUXDB_HOST, INFLUXDB_TOKEN, INFLUXDB_ORG and INFLUXDB_BUCKET")
			}
			_, err = exportResults(cmd.Context(), cfg, nil)
			return err
		},
	}

	rootCmd.AddCommand(plotCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(exportCmd)

	return rootCmd
}

func setLogFormat(format string) error {
	switch format {
	case "", "text":
		logging.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logging.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q (available: text, json)", format)
	}
	return nil
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig(opts options) (*config.ReportConfig, error) {
	logger := logging.GetLogger()

	cfg, err := config.LoadConfig(opts.configFile)
	if err != nil {
		logger.WithField("config_file", opts.configFile).WithError(err).Error("Failed to load configuration")
		return nil, err
	}

	if opts.profile != "" {
		cfg.Report.Profile = opts.profile
	}
	if opts.outputDir != "" {
		cfg.Outputs.Dir = opts.outputDir
	}
	if opts.logLevel == "" && cfg.Report.LogLevel != "" {
		if err := logging.SetLogLevel(cfg.Report.LogLevel); err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func runReport(ctx context.Context, cfg *config.ReportConfig, out io.Writer) error {
	logger := logging.GetLogger()

	pm, err := plot.NewPlotManager(cfg, out)
	if err != nil {
		return err
	}
	if err := pm.GenerateReport(); err != nil {
		return err
	}

	if cfg.Export.Enabled {
		if _, err := exportResults(ctx, cfg, nil); err != nil {
			logger.WithError(err).Warn("Export failed, charts were still generated")
		}
	}
	return nil
}

func exportResults(ctx context.Context, cfg *config.ReportConfig, dial database.Dialer) (*database.ExportResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	return database.NewExporter(cfg, dial).Export(ctx)
}

// validateInputs loads both tables and logs what a report would be built
// from.
func validateInputs(cfg *config.ReportConfig) error {
	logger := logging.GetLogger()
	profile := mappings.MustProfile(cfg.Report.Profile)

	st, err := table.LoadSpeedupTable(cfg.Inputs.Speedup)
	if err != nil {
		logger.WithField("path", cfg.Inputs.Speedup).WithError(err).Error("Speedup table is invalid")
		return err
	}

	sizes := make([]string, len(st.Sizes))
	for i, n := range st.Sizes {
		sizes[i] = fmt.Sprintf("%d (%s)", n, labels.SizeLabel(n))
	}
	maxSpeedup := metrics.MaxSpeedup(st)

	logger.WithFields(logrus.Fields{
		"path":            cfg.Inputs.Speedup,
		"sizes":           sizes,
		"processors":      st.Processors,
		"max_speedup":     maxSpeedup,
		"reference_limit": layout.ReferenceLimit(maxSpeedup, profile.ReferenceHeadroom),
	}).Info("Speedup table is valid")

	pt, err := table.LoadPhaseTable(cfg.Inputs.Phases)
	switch {
	case errors.Is(err, table.ErrNotFound):
		logger.WithField("path", cfg.Inputs.Phases).Info("No phase data file, phase plot will be skipped")
	case err != nil:
		logger.WithField("path", cfg.Inputs.Phases).WithError(err).Error("Phase table is invalid")
		return err
	default:
		rows, cols := layout.GridDimensions(len(pt.Sizes()), profile.PhaseColumns)
		logger.WithFields(logrus.Fields{
			"path":  cfg.Inputs.Phases,
			"rows":  len(pt.Rows),
			"sizes": len(pt.Sizes()),
			"grid":  fmt.Sprintf("%dx%d", rows, cols),
		}).Info("Phase table is valid")
	}

	return nil
}
