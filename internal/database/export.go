package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"psrs-report/internal/config"
	"psrs-report/internal/logging"
	"psrs-report/internal/table"

	"github.com/sirupsen/logrus"
)

// Dialer opens a RecordWriter for the configured database.
type Dialer func(config.DatabaseConfig) (RecordWriter, error)

func DialInfluxDB(cfg config.DatabaseConfig) (RecordWriter, error) {
	client, err := NewInfluxDBClient(cfg)
	if err != nil {
		return nil, err
	}
	return client, nil
}

type ExportResult struct {
	Dataset string
	Records int
	// SpoolPath is set when the records could not be written to the
	// database and were spooled to disk instead.
	SpoolPath string
}

type Exporter struct {
	cfg    *config.ReportConfig
	dial   Dialer
	now    func() time.Time
	logger *logrus.Logger
}

func NewExporter(cfg *config.ReportConfig, dial Dialer) *Exporter {
	if dial == nil {
		dial = DialInfluxDB
	}
	return &Exporter{
		cfg:    cfg,
		dial:   dial,
		now:    time.Now,
		logger: logging.GetLogger(),
	}
}

// Export loads both tables and writes them to the database. When the database
// is unreachable or rejects the write, the records are spooled instead and
// the export still succeeds.
func (e *Exporter) Export(ctx context.Context) (*ExportResult, error) {
	inputs := e.cfg.Inputs

	st, err := table.LoadSpeedupTable(inputs.Speedup)
	if err != nil {
		return nil, fmt.Errorf("failed to load speedup table: %w", err)
	}

	phasesInput := inputs.Phases
	pt, err := table.LoadPhaseTable(inputs.Phases)
	switch {
	case errors.Is(err, table.ErrNotFound):
		e.logger.WithField("path", inputs.Phases).Info("No phase data, exporting speedup only")
		phasesInput = ""
	case err != nil:
		return nil, fmt.Errorf("failed to load phase table: %w", err)
	}

	dataset, err := table.DatasetChecksum(inputs.Speedup, inputs.Phases)
	if err != nil {
		return nil, fmt.Errorf("failed to compute dataset checksum: %w", err)
	}

	ts := e.now()
	records := BuildSpeedupRecords(st, dataset, ts)
	if pt != nil {
		records = append(records, BuildPhaseRecords(pt, dataset, ts)...)
	}
	result := &ExportResult{Dataset: dataset, Records: len(records)}

	writeErr := e.write(ctx, records)
	if writeErr == nil {
		e.logger.WithFields(logrus.Fields{
			"dataset": dataset,
			"records": len(records),
		}).Info("Exported results to InfluxDB")
		return result, nil
	}

	e.logger.WithError(writeErr).Warn("Database export failed, spooling records")
	path, err := WriteSpoolArtifact(e.cfg.Export.SpoolDir, &SpoolArtifact{
		Version:           1,
		CreatedAt:         ts,
		ReportName:        e.cfg.Report.Name,
		ReportDescription: e.cfg.Report.Description,
		Dataset:           dataset,
		SpeedupInput:      inputs.Speedup,
		PhasesInput:       phasesInput,
		Records:           records,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to spool records after %v: %w", writeErr, err)
	}

	e.logger.WithField("path", path).Info("Records spooled")
	result.SpoolPath = path
	return result, nil
}

func (e *Exporter) write(ctx context.Context, records []Record) error {
	writer, err := e.dial(e.cfg.Export.DB)
	if err != nil {
		return err
	}
	defer writer.Close()

	return writer.WriteRecords(ctx, records)
}
