package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"psrs-report/internal/logging"
	"psrs-report/internal/plot/mappings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSpeedupInput = "logs/results_speedup.txt"
	DefaultPhasesInput  = "logs/results_phases.txt"
	DefaultOutputDir    = "plots"
	DefaultSpoolDir     = "spool"
)

// Default reproduces the behaviour of running without a config file.
func Default() *ReportConfig {
	return &ReportConfig{
		Report: ReportInfo{
			Name:     "psrs",
			LogLevel: "info",
			Profile:  mappings.DefaultProfile,
		},
		Inputs: InputConfig{
			Speedup: DefaultSpeedupInput,
			Phases:  DefaultPhasesInput,
		},
		Outputs: OutputConfig{
			Dir:        DefaultOutputDir,
			Speedup:    "plot_speedup_processors.png",
			Efficiency: "plot_efficiency.png",
			Ideal:      "plot_speedup_vs_ideal.png",
			Phases:     "plot_phase_breakdown.png",
		},
		Export: ExportConfig{
			SpoolDir: DefaultSpoolDir,
		},
	}
}

// LoadConfig reads a YAML config over the defaults. An empty path yields the
// defaults unchanged. Database settings left empty by the file are taken from
// the INFLUXDB_* environment variables before the result is validated.
func LoadConfig(filepath string) (*ReportConfig, error) {
	config := Default()
	if filepath != "" {
		if err := decodeFile(filepath, config); err != nil {
			return nil, err
		}
	}

	applyDatabaseEnv(&config.Export.DB)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

func decodeFile(filepath string, config *ReportConfig) error {
	logger := logging.GetLogger().WithField("filepath", filepath)

	data, err := os.ReadFile(filepath)
	if err != nil {
		logger.WithError(err).Error("Failed to read config file")
		return err
	}

	if err := yaml.Unmarshal([]byte(expandEnvVars(string(data))), config); err != nil {
		logger.WithError(err).Error("Failed to parse config file")
		return err
	}
	return nil
}

func applyDatabaseEnv(db *DatabaseConfig) {
	fillFromEnv(&db.Host, "INFLUXDB_HOST")
	fillFromEnv(&db.Token, "INFLUXDB_TOKEN")
	fillFromEnv(&db.Org, "INFLUXDB_ORG")
	fillFromEnv(&db.Bucket, "INFLUXDB_BUCKET")
}

func fillFromEnv(field *string, name string) {
	if *field == "" {
		*field = os.Getenv(name)
	}
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR} with its value; unset variables are left as-is.
func expandEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		envVar := strings.Trim(match, "${}")
		if value := os.Getenv(envVar); value != "" {
			return value
		}
		return match
	})
}

func validateConfig(config *ReportConfig) error {
	if config.Report.Name == "" {
		return fmt.Errorf("report name is required")
	}

	if config.Report.LogLevel != "" {
		if _, err := logrus.ParseLevel(config.Report.LogLevel); err != nil {
			return fmt.Errorf("log_level: %w", err)
		}
	}

	if _, ok := mappings.GetProfile(config.Report.Profile); !ok {
		return fmt.Errorf("unknown profile %q (available: %s)", config.Report.Profile, strings.Join(mappings.ProfileNames(), ", "))
	}

	if config.Inputs.Speedup == "" || config.Inputs.Phases == "" {
		return fmt.Errorf("input paths are required")
	}

	out := config.Outputs
	if out.Dir == "" || out.Speedup == "" || out.Efficiency == "" || out.Ideal == "" || out.Phases == "" {
		return fmt.Errorf("output directory and file names are required")
	}

	if config.Export.Enabled && !config.Export.DB.Complete() {
		return fmt.Errorf("incomplete database configuration")
	}

	return nil
}

// Validate re-checks a config after command-line overrides were applied.
func (c *ReportConfig) Validate() error {
	return validateConfig(c)
}
