package config

import (
	"path/filepath"
)

type ReportConfig struct {
	Report  ReportInfo   `yaml:"report"`
	Inputs  InputConfig  `yaml:"inputs"`
	Outputs OutputConfig `yaml:"outputs"`
	Export  ExportConfig `yaml:"export"`
}

type ReportInfo struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	LogLevel    string `yaml:"log_level"`
	Profile     string `yaml:"profile"`
}

type InputConfig struct {
	Speedup string `yaml:"speedup"`
	// Phases is optional on disk; a missing file skips the phase chart.
	Phases string `yaml:"phases"`
}

type OutputConfig struct {
	Dir        string `yaml:"dir"`
	Speedup    string `yaml:"speedup"`
	Efficiency string `yaml:"efficiency"`
	Ideal      string `yaml:"ideal"`
	Phases     string `yaml:"phases"`
}

type ExportConfig struct {
	Enabled  bool           `yaml:"enabled"`
	SpoolDir string         `yaml:"spool_dir"`
	DB       DatabaseConfig `yaml:"db"`
}

type DatabaseConfig struct {
	Host   string `yaml:"host"`
	Token  string `yaml:"token"`
	Org    string `yaml:"org"`
	Bucket string `yaml:"bucket"`
}

func (db DatabaseConfig) Complete() bool {
	return db.Host != "" && db.Token != "" && db.Org != "" && db.Bucket != ""
}

func (c *ReportConfig) SpeedupPlotPath() string {
	return filepath.Join(c.Outputs.Dir, c.Outputs.Speedup)
}

func (c *ReportConfig) EfficiencyPlotPath() string {
	return filepath.Join(c.Outputs.Dir, c.Outputs.Efficiency)
}

func (c *ReportConfig) IdealPlotPath() string {
	return filepath.Join(c.Outputs.Dir, c.Outputs.Ideal)
}

func (c *ReportConfig) PhasePlotPath() string {
	return filepath.Join(c.Outputs.Dir, c.Outputs.Phases)
}
