// Package layout holds the cardinality-driven arithmetic behind the chart
// layouts, kept free of any rendering so it can be checked directly.
package layout

import "gonum.org/v1/gonum/floats"

// BarWidth divides a group of width groupWidth (x units) among k bars.
func BarWidth(k int, groupWidth float64) float64 {
	if k <= 0 {
		return 0
	}
	return groupWidth / float64(k)
}

// BarOffset is the distance of bar i's centre from its group centre when k
// bars of width w share the group: (i - k/2 + 0.5) * w.
func BarOffset(i, k int, w float64) float64 {
	return (float64(i) - float64(k)/2 + 0.5) * w
}

// GridDimensions returns the rows and columns needed to place n subplots in
// a grid with a fixed column count.
func GridDimensions(n, cols int) (rows, columns int) {
	if cols <= 0 {
		cols = 1
	}
	if n <= 0 {
		return 0, cols
	}
	return (n + cols - 1) / cols, cols
}

// GridCell maps subplot index i to its row and column, filling rows first.
func GridCell(i, cols int) (row, col int) {
	return i / cols, i % cols
}

// ReferenceLimit is the extent of the linear-speedup reference line and of
// the speedup y axis.
func ReferenceLimit(maxSpeedup, headroom float64) float64 {
	return maxSpeedup * headroom
}

// StackBases returns the base offset of each stacked segment: the running
// sum of all segments below it.
func StackBases(segments []float64) []float64 {
	bases := make([]float64, len(segments))
	if len(segments) < 2 {
		return bases
	}
	floats.CumSum(bases[1:], segments[:len(segments)-1])
	return bases
}
