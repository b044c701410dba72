package table

import (
	"errors"
	"fmt"
	"sort"
)

const (
	ProcessorColumn = "p"
	TotalColumn     = "total"
	PhaseCount      = 4
)

// PhaseColumns are stacked in this order when rendered.
var PhaseColumns = [PhaseCount]string{"phase1", "phase2", "phase3", "phase4"}

type PhaseRow struct {
	N      int
	P      int
	Phases [PhaseCount]float64
	// Total is the driver's own wall-clock figure when the file carries a
	// total column, zero otherwise.
	Total float64
}

type PhaseTable struct {
	Path string
	Rows []PhaseRow
}

// LoadPhaseTable reads a file with header n,p,phase1,...,phase4. A missing
// file yields an error wrapping ErrNotFound.
func LoadPhaseTable(path string) (*PhaseTable, error) {
	t, err := Load(path)
	if err != nil {
		return nil, err
	}
	return NewPhaseTable(t)
}

func NewPhaseTable(t *Table) (*PhaseTable, error) {
	required := append([]string{SizeColumn, ProcessorColumn}, PhaseColumns[:]...)
	if err := t.Require(required...); err != nil {
		return nil, err
	}
	if t.Len() == 0 {
		return nil, &ParseError{Path: t.Path, Line: 1, Err: errNoRows}
	}

	pt := &PhaseTable{Path: t.Path, Rows: make([]PhaseRow, t.Len())}
	for i := range pt.Rows {
		row := PhaseRow{
			N: t.Int(i, SizeColumn),
			P: t.Int(i, ProcessorColumn),
		}
		if row.N <= 0 || row.P <= 0 {
			return nil, &ParseError{Path: t.Path, Line: t.Line(i), Err: fmt.Errorf("n and p must be positive, got n=%d p=%d", row.N, row.P)}
		}
		for k, c := range PhaseColumns {
			v := t.Float(i, c)
			if v < 0 {
				return nil, &ParseError{Path: t.Path, Line: t.Line(i), Column: c, Err: errors.New("phase time must not be negative")}
			}
			row.Phases[k] = v
		}
		if t.Has(TotalColumn) {
			row.Total = t.Float(i, TotalColumn)
		}
		pt.Rows[i] = row
	}

	return pt, nil
}

// Sizes returns the distinct array sizes in ascending order.
func (pt *PhaseTable) Sizes() []int {
	seen := make(map[int]bool)
	var sizes []int
	for _, r := range pt.Rows {
		if !seen[r.N] {
			seen[r.N] = true
			sizes = append(sizes, r.N)
		}
	}
	sort.Ints(sizes)
	return sizes
}

// ForSize returns the rows measured for array size n, ordered by processor count.
func (pt *PhaseTable) ForSize(n int) []PhaseRow {
	var rows []PhaseRow
	for _, r := range pt.Rows {
		if r.N == n {
			rows = append(rows, r)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].P < rows[j].P
	})
	return rows
}
