package table

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadSpeedupTable_SortsProcessorColumns(t *testing.T) {
	path := writeFile(t, t.TempDir(), "results_speedup.txt",
		"n,p8,p1,p4,p2\n10000,6.1,1,3.6,1.9\n1000000,7.0,1,3.8,1.95\n")

	st, err := LoadSpeedupTable(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(st.Processors, []int{1, 2, 4, 8}) {
		t.Fatalf("expected ascending processors, got %v", st.Processors)
	}
	if !reflect.DeepEqual(st.Columns, []string{"p1", "p2", "p4", "p8"}) {
		t.Fatalf("unexpected column order %v", st.Columns)
	}
	if !reflect.DeepEqual(st.Sizes, []int{10000, 1000000}) {
		t.Fatalf("unexpected sizes %v", st.Sizes)
	}
	if !reflect.DeepEqual(st.Speedup[0], []float64{1, 1.9, 3.6, 6.1}) {
		t.Fatalf("unexpected first row %v", st.Speedup[0])
	}
}

func TestLoadSpeedupTable_RequiresSizeColumn(t *testing.T) {
	path := writeFile(t, t.TempDir(), "s.txt", "size,p1\n1000,1\n")
	_, err := LoadSpeedupTable(path)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) || parseErr.Column != "n" {
		t.Fatalf("expected missing n column, got %v", err)
	}
}

func TestLoadSpeedupTable_RejectsDuplicateSizes(t *testing.T) {
	path := writeFile(t, t.TempDir(), "s.txt", "n,p1\n1000,1\n1000,1\n")
	_, err := LoadSpeedupTable(path)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
}

func TestLoadSpeedupTable_RejectsUnnamedProcessorColumn(t *testing.T) {
	path := writeFile(t, t.TempDir(), "s.txt", "n,threads\n1000,1\n")
	_, err := LoadSpeedupTable(path)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
}

func TestLoadSpeedupTable_MissingFile(t *testing.T) {
	_, err := LoadSpeedupTable(filepath.Join(t.TempDir(), "none.txt"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadPhaseTable_WithTotalColumn(t *testing.T) {
	path := writeFile(t, t.TempDir(), "results_phases.txt",
		"n,p,total,phase1,phase2,phase3,phase4\n"+
			"1000000,4,0.5000,0.3000,0.0100,0.0900,0.1000\n"+
			"1000000,2,0.9000,0.6000,0.0100,0.1400,0.1500\n"+
			"10000,2,0.0100,0.0050,0.0010,0.0020,0.0020\n")

	pt, err := LoadPhaseTable(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(pt.Sizes(), []int{10000, 1000000}) {
		t.Fatalf("unexpected sizes %v", pt.Sizes())
	}
	rows := pt.ForSize(1000000)
	if len(rows) != 2 || rows[0].P != 2 || rows[1].P != 4 {
		t.Fatalf("expected rows ordered by p, got %+v", rows)
	}
	if rows[1].Phases != [PhaseCount]float64{0.3, 0.01, 0.09, 0.1} {
		t.Fatalf("unexpected phases %v", rows[1].Phases)
	}
	if rows[1].Total != 0.5 {
		t.Fatalf("expected total 0.5, got %v", rows[1].Total)
	}
}

func TestLoadPhaseTable_WithoutTotalColumn(t *testing.T) {
	path := writeFile(t, t.TempDir(), "results_phases.txt",
		"n,p,phase1,phase2,phase3,phase4\n1000,1,1,2,3,4\n")
	pt, err := LoadPhaseTable(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pt.Rows[0].Total != 0 {
		t.Fatalf("expected zero total, got %v", pt.Rows[0].Total)
	}
}

func TestLoadPhaseTable_NegativePhase(t *testing.T) {
	path := writeFile(t, t.TempDir(), "results_phases.txt",
		"n,p,phase1,phase2,phase3,phase4\n1000,1,1,-2,3,4\n")
	_, err := LoadPhaseTable(path)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) || parseErr.Column != "phase2" {
		t.Fatalf("expected phase2 parse error, got %v", err)
	}
}

func TestLoadPhaseTable_MissingFileIsNotFound(t *testing.T) {
	_, err := LoadPhaseTable(filepath.Join(t.TempDir(), "results_phases.txt"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTypedTables_HeaderOnlyIsParseError(t *testing.T) {
	dir := t.TempDir()
	var parseErr *ParseError

	_, err := LoadSpeedupTable(writeFile(t, dir, "s.txt", "n,p1,p2\n"))
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError for speedup header only, got %v", err)
	}

	_, err = LoadPhaseTable(writeFile(t, dir, "ph.txt", "n,p,phase1,phase2,phase3,phase4\n"))
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError for phase header only, got %v", err)
	}
}
