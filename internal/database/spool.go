package database

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SpoolArtifact holds the records of one export that could not reach the
// database, together with enough context to replay it later.
type SpoolArtifact struct {
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`

	ReportName        string `json:"report_name"`
	ReportDescription string `json:"report_description,omitempty"`
	Dataset           string `json:"dataset"`

	SpeedupInput string `json:"speedup_input"`
	PhasesInput  string `json:"phases_input,omitempty"`

	Records []Record `json:"records"`
}

// FileName is psrs_<dataset>_<created>.json.gz, so artifacts of one dataset
// sort by creation time.
func (a *SpoolArtifact) FileName() string {
	dataset := a.Dataset
	if dataset == "" {
		dataset = "nocsum"
	}
	return "psrs_" + dataset + "_" + a.CreatedAt.UTC().Format("20060102T150405Z") + ".json.gz"
}

func DefaultSpoolDir() string {
	if v := strings.TrimSpace(os.Getenv("PSRS_REPORT_SPOOL_DIR")); v != "" {
		return v
	}
	return "spool"
}

// WriteSpoolArtifact stores artifact under dir and returns the file path.
// Readers never observe a partially written artifact.
func WriteSpoolArtifact(dir string, artifact *SpoolArtifact) (string, error) {
	if artifact == nil {
		return "", errors.New("spool artifact is nil")
	}
	if dir == "" {
		dir = DefaultSpoolDir()
	}

	path := filepath.Join(dir, artifact.FileName())
	err := replaceFile(path, func(w io.Writer) error {
		gz := gzip.NewWriter(w)
		if err := json.NewEncoder(gz).Encode(artifact); err != nil {
			gz.Close()
			return err
		}
		return gz.Close()
	})
	if err != nil {
		return "", fmt.Errorf("spool %s: %w", path, err)
	}
	return path, nil
}

// replaceFile fills a temporary sibling of path through fill, syncs it and
// renames it over path. The temporary file is removed on any failure.
func replaceFile(path string, fill func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = fill(tmp); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// ReadSpoolArtifact decodes an artifact written by WriteSpoolArtifact.
func ReadSpoolArtifact(path string) (*SpoolArtifact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("spool %s: %w", path, err)
	}
	defer gz.Close()

	var artifact SpoolArtifact
	if err := json.NewDecoder(gz).Decode(&artifact); err != nil {
		return nil, fmt.Errorf("spool %s: %w", path, err)
	}
	return &artifact, nil
}
