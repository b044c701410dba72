package metrics

import (
	"testing"

	"psrs-report/internal/table"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func scenarioTable() *table.SpeedupTable {
	return &table.SpeedupTable{
		Sizes:      []int{10000, 1000000},
		Columns:    []string{"p1", "p2", "p4", "p8"},
		Processors: []int{1, 2, 4, 8},
		Speedup: [][]float64{
			{1, 1.9, 3.6, 6.1},
			{1, 1.95, 3.8, 7.0},
		},
	}
}

func TestEfficiencyTable_Scenario(t *testing.T) {
	chk := require.New(t)

	eff := EfficiencyTable(scenarioTable())
	chk.Len(eff, 2)
	chk.InDelta(0.7625, eff[0][3], 1e-12)
	chk.Equal(0.875, eff[1][3])
	chk.Equal(1.0, eff[0][0])
}

func TestMaxSpeedup(t *testing.T) {
	chk := require.New(t)
	chk.Equal(7.0, MaxSpeedup(scenarioTable()))
	chk.Equal(0.0, MaxSpeedup(&table.SpeedupTable{}))
}

func TestEfficiencyTable_IsSpeedupOverP(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cols := rapid.IntRange(1, 8).Draw(t, "cols")
		rows := rapid.IntRange(1, 6).Draw(t, "rows")

		st := &table.SpeedupTable{Processors: make([]int, cols)}
		for j := range st.Processors {
			st.Processors[j] = rapid.IntRange(1, 256).Draw(t, "p")
		}
		for i := 0; i < rows; i++ {
			row := make([]float64, cols)
			for j := range row {
				row[j] = rapid.Float64Range(0.5, 300).Draw(t, "speedup")
			}
			st.Speedup = append(st.Speedup, row)
		}

		eff := EfficiencyTable(st)
		for i, row := range st.Speedup {
			for j, s := range row {
				if want := s / float64(st.Processors[j]); eff[i][j] != want {
					t.Fatalf("efficiency[%d][%d]: expected %v, got %v", i, j, want, eff[i][j])
				}
			}
		}
	})
}
