package align

import (
	"github.com/npillmayer/schuko/gconf"
)

// Costs bundles the cost functions of an alignment. Delete and Substitute
// are mandatory, Match may be nil, meaning a constant score of 0 for aligning
// equal elements.
type Costs[T any] struct {
	Delete     func(x T) int    // score for dropping x from either sequence
	Substitute func(x, y T) int // score for aligning unequal x and y
	Match      func(x, y T) int // score for aligning equal x and y
}

// Constant returns a deletion cost function with a fixed score.
func Constant[T any](score int) func(T) int {
	return func(T) int {
		return score
	}
}

// ConstantPair returns a substitution or match cost function with a fixed score.
func ConstantPair[T any](score int) func(x, y T) int {
	return func(x, y T) int {
		return score
	}
}

// pair scores the diagonal step aligning x with y.
func (c Costs[T]) pair(x, y T, eq func(x, y T) bool) int {
	if eq(x, y) {
		if c.Match == nil {
			return 0
		}
		return c.Match(x, y)
	}
	return c.Substitute(x, y)
}

// cell computes a table cell from its three predecessors: up is cell (i-1,j),
// left is cell (i,j-1) and diag is cell (i-1,j-1). delX and delY are the
// deletion costs of x = first[i-1] and y = second[j-1].
func (c Costs[T]) cell(x, y T, eq func(x, y T) bool, up, left, diag, delX, delY int) int {
	return max(up+delX, left+delY, diag+c.pair(x, y, eq))
}

// Score returns the best score of aligning first with second.
// Elements are compared with ==.
func Score[T comparable](first, second []T, costs Costs[T]) int {
	return ScoreFunc(first, second, equal[T], costs)
}

func equal[T comparable](x, y T) bool {
	return x == y
}

// ScoreFunc returns the best score of aligning first with second, using eq
// to decide whether two elements are equal.
//
// Either sequence may be empty; aligning against an empty sequence yields the
// sum of the deletion costs of the other one. ScoreFunc keeps two rows of the
// alignment table only, thus memory use is O(len(second)).
func ScoreFunc[T any](first, second []T, eq func(x, y T) bool, costs Costs[T]) int {
	if gconf.GetBool("trace-alignment-table") {
		table := FillFunc(first, second, eq, costs)
		table.Dump()
		return table.Result()
	}
	m := len(second)
	delY := deletions(second, costs.Delete)
	prev, curr := make([]int, m+1), make([]int, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = prev[j-1] + delY[j-1]
	}
	for _, x := range first {
		delX := costs.Delete(x)
		curr[0] = prev[0] + delX
		for j := 1; j <= m; j++ {
			curr[j] = costs.cell(x, second[j-1], eq, prev[j], curr[j-1], prev[j-1], delX, delY[j-1])
		}
		prev, curr = curr, prev
	}
	return prev[m]
}

// Fill computes the complete alignment table of first and second.
// Elements are compared with ==.
func Fill[T comparable](first, second []T, costs Costs[T]) *Table {
	return FillFunc(first, second, equal[T], costs)
}

// FillFunc computes the complete alignment table of first and second, using
// eq to decide whether two elements are equal. Table.Result is identical to
// the score returned by ScoreFunc.
func FillFunc[T any](first, second []T, eq func(x, y T) bool, costs Costs[T]) *Table {
	n, m := len(first), len(second)
	tbl := NewTable(n+1, m+1)
	delX := deletions(first, costs.Delete)
	delY := deletions(second, costs.Delete)
	for i := 1; i <= n; i++ {
		tbl.set(i, 0, tbl.Value(i-1, 0)+delX[i-1])
	}
	for j := 1; j <= m; j++ {
		tbl.set(0, j, tbl.Value(0, j-1)+delY[j-1])
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			v := costs.cell(first[i-1], second[j-1], eq,
				tbl.Value(i-1, j), tbl.Value(i, j-1), tbl.Value(i-1, j-1), delX[i-1], delY[j-1])
			tbl.set(i, j, v)
		}
	}
	return tbl
}

// deletions evaluates the deletion cost for every element of s once.
func deletions[T any](s []T, del func(T) int) []int {
	d := make([]int, len(s))
	for i, x := range s {
		d[i] = del(x)
	}
	return d
}
