package table

import (
	"errors"
	"fmt"
	"sort"

	"psrs-report/internal/labels"
)

const SizeColumn = "n"

// SpeedupTable has one row per array size and one column per processor
// count, ordered by ascending processor count.
type SpeedupTable struct {
	Path       string
	Sizes      []int
	Columns    []string
	Processors []int
	// Speedup[row][col] lines up with Sizes[row] and Processors[col].
	Speedup [][]float64
}

// LoadSpeedupTable reads a file with header n,<p1>,...,<pk>.
func LoadSpeedupTable(path string) (*SpeedupTable, error) {
	t, err := Load(path)
	if err != nil {
		return nil, err
	}
	return NewSpeedupTable(t)
}

func NewSpeedupTable(t *Table) (*SpeedupTable, error) {
	if err := t.Require(SizeColumn); err != nil {
		return nil, err
	}

	type procColumn struct {
		name string
		p    int
	}
	var cols []procColumn
	for _, name := range t.Header {
		if name == SizeColumn {
			continue
		}
		p, err := labels.ProcessorValue(name)
		if err != nil {
			return nil, &ParseError{Path: t.Path, Line: 1, Column: name, Err: err}
		}
		if p <= 0 {
			return nil, &ParseError{Path: t.Path, Line: 1, Column: name, Err: errors.New("processor count must be positive")}
		}
		cols = append(cols, procColumn{name: name, p: p})
	}
	if len(cols) == 0 {
		return nil, &ParseError{Path: t.Path, Line: 1, Err: errors.New("no processor columns")}
	}
	if t.Len() == 0 {
		return nil, &ParseError{Path: t.Path, Line: 1, Err: errNoRows}
	}
	sort.SliceStable(cols, func(i, j int) bool {
		return cols[i].p < cols[j].p
	})

	st := &SpeedupTable{
		Path:       t.Path,
		Sizes:      make([]int, t.Len()),
		Columns:    make([]string, len(cols)),
		Processors: make([]int, len(cols)),
		Speedup:    make([][]float64, t.Len()),
	}
	for j, c := range cols {
		st.Columns[j] = c.name
		st.Processors[j] = c.p
	}

	seen := make(map[int]bool, t.Len())
	for i := 0; i < t.Len(); i++ {
		n := t.Int(i, SizeColumn)
		if n <= 0 {
			return nil, &ParseError{Path: t.Path, Line: t.Line(i), Column: SizeColumn, Err: fmt.Errorf("array size must be positive, got %d", n)}
		}
		if seen[n] {
			return nil, &ParseError{Path: t.Path, Line: t.Line(i), Column: SizeColumn, Err: fmt.Errorf("duplicate array size %d", n)}
		}
		seen[n] = true

		st.Sizes[i] = n
		st.Speedup[i] = make([]float64, len(cols))
		for j, c := range cols {
			st.Speedup[i][j] = t.Float(i, c.name)
		}
	}

	return st, nil
}

func (st *SpeedupTable) Len() int {
	return len(st.Sizes)
}
