// Package table loads the comma-separated benchmark result files written by
// the PSRS benchmark driver.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// Columns holding array sizes and processor counts are integral, every
// other column is a real number.
var integerColumns = map[string]bool{
	"n": true,
	"p": true,
}

// Table is a read-only, column-addressable snapshot of one result file.
type Table struct {
	Path   string
	Header []string
	rows   [][]float64
	lines  []int
	index  map[string]int
}

// Load opens and parses path. A missing file yields an error wrapping ErrNotFound.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(path, f)
}

// Parse reads a header line followed by data rows of the same arity.
func Parse(path string, r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &ParseError{Path: path, Err: errors.New("missing header line")}
	}
	if err != nil {
		return nil, csvParseError(path, err)
	}

	t := &Table{
		Path:   path,
		Header: make([]string, len(header)),
		index:  make(map[string]int, len(header)),
	}
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, &ParseError{Path: path, Line: 1, Err: fmt.Errorf("header field %d is empty", i+1)}
		}
		if _, dup := t.index[name]; dup {
			return nil, &ParseError{Path: path, Line: 1, Column: name, Err: errors.New("duplicate column")}
		}
		t.Header[i] = name
		t.index[name] = i
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvParseError(path, err)
		}
		line, _ := reader.FieldPos(0)

		if len(record) != len(t.Header) {
			return nil, &ParseError{
				Path: path,
				Line: line,
				Err:  fmt.Errorf("row has %d fields, header has %d", len(record), len(t.Header)),
			}
		}

		row := make([]float64, len(record))
		for i, field := range record {
			value, err := parseValue(t.Header[i], strings.TrimSpace(field))
			if err != nil {
				return nil, &ParseError{Path: path, Line: line, Column: t.Header[i], Err: err}
			}
			row[i] = value
		}
		t.rows = append(t.rows, row)
		t.lines = append(t.lines, line)
	}

	return t, nil
}

func parseValue(column, field string) (float64, error) {
	if integerColumns[column] {
		v, err := strconv.Atoi(field)
		if err != nil {
			return 0, fmt.Errorf("expected integer, got %q", field)
		}
		return float64(v), nil
	}
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, fmt.Errorf("expected number, got %q", field)
	}
	return v, nil
}

func csvParseError(path string, err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &ParseError{Path: path, Line: csvErr.Line, Err: csvErr.Err}
	}
	return &ParseError{Path: path, Err: err}
}

func (t *Table) Len() int {
	return len(t.rows)
}

// Line returns the 1-based source line of row.
func (t *Table) Line(row int) int {
	return t.lines[row]
}

func (t *Table) Has(column string) bool {
	_, ok := t.index[column]
	return ok
}

// Float returns the value at row for column. It panics on an unknown column;
// callers check Has or use Require first.
func (t *Table) Float(row int, column string) float64 {
	return t.rows[row][t.mustIndex(column)]
}

func (t *Table) Int(row int, column string) int {
	return int(t.Float(row, column))
}

// Require reports a ParseError naming the first missing column.
func (t *Table) Require(columns ...string) error {
	for _, c := range columns {
		if !t.Has(c) {
			return &ParseError{Path: t.Path, Line: 1, Column: c, Err: errors.New("required column missing")}
		}
	}
	return nil
}

func (t *Table) mustIndex(column string) int {
	i, ok := t.index[column]
	if !ok {
		panic(fmt.Sprintf("table %s has no column %q", t.Path, column))
	}
	return i
}
