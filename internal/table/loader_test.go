package table

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestParse_TypedColumns(t *testing.T) {
	tbl, err := Parse("mem", strings.NewReader("n,p,phase1\n1000, 4 ,0.25\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tbl.Len() != 1 {
		t.Fatalf("expected 1 row, got %d", tbl.Len())
	}
	if got := tbl.Int(0, "n"); got != 1000 {
		t.Fatalf("expected n=1000, got %d", got)
	}
	if got := tbl.Int(0, "p"); got != 4 {
		t.Fatalf("expected p=4, got %d", got)
	}
	if got := tbl.Float(0, "phase1"); got != 0.25 {
		t.Fatalf("expected phase1=0.25, got %v", got)
	}
	if tbl.Line(0) != 2 {
		t.Fatalf("expected row on line 2, got %d", tbl.Line(0))
	}
}

func TestParse_ShortRowIsParseError(t *testing.T) {
	_, err := Parse("speedup.txt", strings.NewReader("n,p1,p2,p4\n10000,1,1.9,3.6\n20000,1,1.9\n"))
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if parseErr.Line != 3 {
		t.Fatalf("expected error on line 3, got %d", parseErr.Line)
	}
	if !strings.Contains(parseErr.Error(), "row has 3 fields, header has 4") {
		t.Fatalf("unexpected message: %s", parseErr.Error())
	}
}

func TestParse_LongRowIsParseError(t *testing.T) {
	_, err := Parse("speedup.txt", strings.NewReader("n,p1\n10000,1,2\n"))
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
}

func TestParse_NonNumericValue(t *testing.T) {
	_, err := Parse("speedup.txt", strings.NewReader("n,p1\n10000,fast\n"))
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if parseErr.Column != "p1" {
		t.Fatalf("expected column p1, got %q", parseErr.Column)
	}
}

func TestParse_FractionalSizeRejected(t *testing.T) {
	_, err := Parse("speedup.txt", strings.NewReader("n,p1\n1000.5,1\n"))
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if parseErr.Column != "n" {
		t.Fatalf("expected column n, got %q", parseErr.Column)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := Parse("empty.txt", strings.NewReader(""))
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
}

func TestParse_DuplicateHeader(t *testing.T) {
	_, err := Parse("dup.txt", strings.NewReader("n,p1,p1\n1,1,1\n"))
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
}

func TestLoad_MissingFileIsNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.txt"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		t.Fatalf("missing file must not be a parse error")
	}
}

func TestRequire_MissingColumn(t *testing.T) {
	tbl, err := Parse("x", strings.NewReader("n,p\n1,1\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = tbl.Require("n", "phase1")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) || parseErr.Column != "phase1" {
		t.Fatalf("expected missing phase1, got %v", err)
	}
}

func TestDatasetChecksum_StableAndSkipsMissing(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "n,p1\n1000,1\n")

	first, err := DatasetChecksum(a, filepath.Join(dir, "missing.txt"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := DatasetChecksum(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical checksums, got %s and %s", first, second)
	}
	if len(first) != 6 {
		t.Fatalf("expected 6 hex characters, got %q", first)
	}

	writeFile(t, dir, "a.txt", "n,p1\n1000,2\n")
	third, err := DatasetChecksum(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if third == first {
		t.Fatalf("checksum did not change with content")
	}
}
