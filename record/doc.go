/*
Package record extracts line records from the plain-text artifacts of a
compiler under test.

Most artifacts consist of numbered lines:

    1.	(KEYWORD, void) (ID, main) (SYMBOL, ()
    2.	(KEYWORD, int) (ID, x) (SYMBOL, ;)

Every non-empty line becomes a Record, consisting of the line number and the
rest of the line as content. Token streams and lexical error lists further
split the content into (type, value) resp. (token, message) pairs.
Syntax error lists use a different line format:

    #4 : syntax error, missing Params

Extraction never fails. A line which does not match its grammar becomes a
record without a line number (ccgrade.NoLine), which the comparators penalize
like any other mismatching line.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package record

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ccgrade.record'.
func tracer() tracing.Trace {
	return tracing.Select("ccgrade.record")
}
