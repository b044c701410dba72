package metrics

import (
	"psrs-report/internal/table"

	"gonum.org/v1/gonum/floats"
)

// Efficiency is speedup per processor; 1.0 is ideal linear scaling.
func Efficiency(speedup float64, p int) float64 {
	return speedup / float64(p)
}

// EfficiencyTable derives efficiencies for every cell of st, row-major like
// st.Speedup.
func EfficiencyTable(st *table.SpeedupTable) [][]float64 {
	out := make([][]float64, len(st.Speedup))
	for i, row := range st.Speedup {
		out[i] = make([]float64, len(row))
		for j, s := range row {
			out[i][j] = Efficiency(s, st.Processors[j])
		}
	}
	return out
}

// MaxSpeedup is the largest speedup observed anywhere in st, or 0 for an
// empty table.
func MaxSpeedup(st *table.SpeedupTable) float64 {
	max := 0.0
	for _, row := range st.Speedup {
		if len(row) == 0 {
			continue
		}
		if m := floats.Max(row); m > max {
			max = m
		}
	}
	return max
}
