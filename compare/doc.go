/*
Package compare scores the artifacts of a compiler under test against their
reference fixtures.

There is one comparator per artifact (see ccgrade.Artifact). All of them are
configurations of package align:

    Tokens, LexicalErrors, SyntaxErrors   align lines; a pair of lines is scored
                                          by aligning the tokens within the lines
    ParseTree                             align the characters of the tree text,
                                          white space removed (edit distance)
    SymbolTable                           no alignment; counts the symbols present
                                          in only one of both tables

A comparator returns 0 for an artifact identical to its fixture and a negative
score otherwise. Comparators never fail: malformed lines end up as records
without line number and are penalized as missing or extra lines.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package compare

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ccgrade.compare'.
func tracer() tracing.Trace {
	return tracing.Select("ccgrade.compare")
}
