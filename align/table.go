package align

import (
	"fmt"
	"strings"
)

// Table is a dense matrix of alignment scores, sized (n+1) × (m+1) for
// sequences of length n and m. Cell (i,j) is the best score for aligning the
// first i elements of the first sequence with the first j elements of the
// second one. Create one with
//
//     T := Fill(first, second, costs)
//
// Now
//
//     T.Value(0, 0)      // always 0
//     T.Value(i, 0)      // cumulative deletion cost of first[:i]
//     T.Result()         // score of the complete alignment
//
type Table struct {
	cells  []int
	rowcnt int
	colcnt int
}

// NewTable creates a zero-valued table of size m × n.
func NewTable(m, n int) *Table {
	return &Table{
		cells:  make([]int, m*n),
		rowcnt: m,
		colcnt: n,
	}
}

// M returns the row count.
func (t *Table) M() int {
	return t.rowcnt
}

// N returns the column count.
func (t *Table) N() int {
	return t.colcnt
}

// Value returns the score at position (i,j).
func (t *Table) Value(i, j int) int {
	return t.cells[i*t.colcnt+j]
}

func (t *Table) set(i, j int, value int) {
	t.cells[i*t.colcnt+j] = value
}

// Row returns a copy of row i.
func (t *Table) Row(i int) []int {
	row := make([]int, t.colcnt)
	copy(row, t.cells[i*t.colcnt:(i+1)*t.colcnt])
	return row
}

// Result returns the bottom right cell, i.e. the alignment score.
func (t *Table) Result() int {
	return t.Value(t.rowcnt-1, t.colcnt-1)
}

// Dump is a debugging helper. It writes the table to the trace at debug level.
func (t *Table) Dump() {
	tracer().Debugf("--- alignment table %d x %d -----", t.rowcnt, t.colcnt)
	for i := 0; i < t.rowcnt; i++ {
		tracer().Debugf("%3d | %s", i, t.rowString(i))
	}
	tracer().Debugf("--------------------------------")
}

func (t *Table) rowString(i int) string {
	var b strings.Builder
	for j := 0; j < t.colcnt; j++ {
		if j > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%4d", t.Value(i, j))
	}
	return b.String()
}
