package compare

import (
	"github.com/cmplab/ccgrade/align"
	"github.com/cmplab/ccgrade/record"
)

// lineCosts configures the alignment of line records with sequence content.
//
// Dropping a line costs 1 plus the number of its elements. Aligning two unequal
// lines costs 1 if their line numbers differ, plus the score of aligning
// their elements. On that nested level, dropping an element costs the number
// of its fields, and substituting one costs the number of positions at which
// the fields differ.
func lineCosts[E comparable, F comparable](fields func(E) []F) align.Costs[record.Record[[]E]] {
	nested := align.Costs[E]{
		Delete: func(x E) int {
			return -len(fields(x))
		},
		Substitute: func(x, y E) int {
			return -mismatches(fields(x), fields(y))
		},
	}
	return align.Costs[record.Record[[]E]]{
		Delete: func(r record.Record[[]E]) int {
			return -(1 + len(r.Content))
		},
		Substitute: func(x, y record.Record[[]E]) int {
			penalty := 0
			if x.Line != y.Line {
				penalty--
			}
			return penalty + align.Score(x.Content, y.Content, nested)
		},
	}
}

// mismatches counts the positions where a and b differ, up to the length of
// the shorter one.
func mismatches[F comparable](a, b []F) int {
	cnt := 0
	for k := range min(len(a), len(b)) {
		if a[k] != b[k] {
			cnt++
		}
	}
	return cnt
}

// scoreLines extracts line records from both texts and aligns them.
func scoreLines[E comparable, F comparable](expected, actual string,
	parse func(string) record.Record[[]E], fields func(E) []F) int {
	//
	exp := record.Extract(expected, parse)
	act := record.Extract(actual, parse)
	return align.ScoreFunc(exp, act, record.Equal[E], lineCosts(fields))
}
