// Package labels formats benchmark dimensions for axes and legends.
package labels

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const (
	thousand = 1_000
	million  = 1_000_000
)

// SizeLabel renders an array size as a truncated magnitude, e.g. 10000 -> "10K"
// and 4000000 -> "4M". One million and above always use the M form.
func SizeLabel(n int) string {
	if n >= million {
		return fmt.Sprintf("%dM", n/million)
	}
	return fmt.Sprintf("%dK", n/thousand)
}

// ProcessorValue extracts the processor count encoded in a speedup column
// name by dropping its non-numeric prefix ("p8" and "processors=8" both give 8).
func ProcessorValue(column string) (int, error) {
	name := strings.TrimSpace(column)
	digits := strings.TrimLeftFunc(name, func(r rune) bool {
		return !unicode.IsDigit(r)
	})
	if digits == "" {
		return 0, fmt.Errorf("column %q does not encode a processor count", column)
	}
	p, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("column %q: invalid processor count %q: %w", column, digits, err)
	}
	return p, nil
}

// ProcessorTick is the category label used on bar chart x axes.
func ProcessorTick(p int) string {
	return fmt.Sprintf("p=%d", p)
}
