package linalg

import (
	"fmt"
	"strconv"
	"strings"
)

const cellWidth = 8

func formatValue(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func rule(b *strings.Builder, cols int, left, mid, right string) {
	b.WriteString(left)
	for c := 0; c < cols; c++ {
		if c > 0 {
			b.WriteString(mid)
		}
		b.WriteString(strings.Repeat("─", cellWidth))
	}
	b.WriteString(right)
}

// String renders the matrix as a boxed table, one line per row, cells
// right-aligned to a width of 8.
func (m Matrix[R, C]) String() string {
	rows, cols := m.Rows(), m.Cols()
	d := m.storage()
	var b strings.Builder
	rule(&b, cols, "┌", "┬", "┐")
	for r := 0; r < rows; r++ {
		b.WriteString("\n│")
		for c := 0; c < cols; c++ {
			fmt.Fprintf(&b, "%*s│", cellWidth, formatValue(d[r*cols+c]))
		}
	}
	b.WriteByte('\n')
	rule(&b, cols, "└", "┴", "┘")
	return b.String()
}

func (v Vector[L]) String() string {
	parts := make([]string, len(v.data))
	for i, x := range v.data {
		parts[i] = formatValue(x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (p Point) String() string {
	return "(" + formatValue(p.X) + ", " + formatValue(p.Y) + ")"
}
