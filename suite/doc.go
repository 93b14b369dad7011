/*
Package suite runs a suite of test cases against a compiler under test and
grades the artifacts it produces.

A suite is described by a YAML file:

    phase: scanner                # or: parser
    testcases: testcases          # one directory per test case, holding the
                                  # input and the expected artifacts
    command: [python3, "${suite}/compiler.py"]
    input: input.txt
    timeout: 30s
    jobs: 4

For every test case, the input file is copied into a private working
directory, the command is started within it, and the artifacts it writes
there are compared with the expected ones. Instead of a command, a suite may
name a directory of pre-staged outputs ("actual: out"), holding one
directory per test case.

Relative paths are resolved against the directory of the YAML file. Within
the command, ${suite} expands to this directory and ${workdir} to the working
directory of the test case.

Test cases are independent of each other and run concurrently. A test case
which cannot be graded (missing fixtures, compiler not found, timeout) is
reported as an error without affecting the other test cases.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package suite

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ccgrade.suite'.
func tracer() tracing.Trace {
	return tracing.Select("ccgrade.suite")
}
