/*
Package ccgrade is a grading harness for compiler-construction assignments.

It compares the artifacts a student compiler emits (token streams, symbol
tables, lexical error lists, parse trees, syntax error lists) against
reference fixtures and computes partial-credit scores. A score of 0 means
the artifact matches its fixture; more negative scores mean more divergence.
Package structure is as follows:

■ align: Package align implements a weighted sequence alignment
(a Needleman–Wunsch variant) with pluggable cost functions.

■ record: Package record extracts line records, token pairs and error pairs
from the plain-text artifacts.

■ compare: Package compare configures the alignment engine for each kind of
artifact.

■ report and suite: Packages for formatting results and for running a whole
suite of test cases against a compiler under test.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package ccgrade
