/*
Package align implements a weighted alignment of two sequences.

The alignment is a variant of the Needleman–Wunsch algorithm: a dynamic
programming table is filled, where cell (i,j) holds the best score for
aligning the first i elements of one sequence with the first j elements of
the other. Clients supply three cost functions:

    Delete(x)        score for dropping x from either sequence
    Substitute(x, y) score for aligning x with an unequal y
    Match(x, y)      score for aligning x with an equal y (default 0)

Costs are usually negative, making 0 the best score two identical sequences
can reach. The engine only computes the final score; no edit script is
produced.

Cost functions may themselves run an alignment. Package compare does this
to score a pair of lines by aligning the tokens within the lines.

Example:

    costs := align.Costs[rune]{
        Delete:     align.Constant[rune](-1),
        Substitute: align.ConstantPair[rune](-1),
    }
    score := align.Score([]rune("kitten"), []rune("sitting"), costs) // -3

Configuration

If the global configuration flag "trace-alignment-table" is set, every
alignment fills the complete table and dumps it to the trace at debug level.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package align

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ccgrade.align'.
func tracer() tracing.Trace {
	return tracing.Select("ccgrade.align")
}
