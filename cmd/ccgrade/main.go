/*
Command ccgrade grades the output of a student compiler.

Usage:

    ccgrade score <artifact> <expected-file> <actual-file> [--diff]
    ccgrade run --config suite.yaml [--format text|table|yaml] [--diff] [testcase ...]
    ccgrade repl

Artifacts are tokens, symbol_table, lexical_errors, parse_tree and
syntax_errors. Scores are 0 for a perfect match and negative otherwise.

Exit status is 0 on success, 1 for usage or configuration errors, and 2 if
at least one test case could not be graded.

Global flags are --trace, setting the trace level of all packages, and
--trace-table, dumping every alignment table to the trace.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package main

import (
	"errors"
	"os"
	"strconv"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// tracer traces with key 'ccgrade.cli'.
func tracer() tracing.Trace {
	return tracing.Select("ccgrade.cli")
}

// errCasesFailed signals that some test cases could not be graded.
var errCasesFailed = errors.New("some test cases could not be graded")

// traceKeys are the trace keys of all packages of this module.
var traceKeys = []string{
	"ccgrade.align",
	"ccgrade.record",
	"ccgrade.compare",
	"ccgrade.report",
	"ccgrade.suite",
	"ccgrade.cli",
}

func main() {
	initDisplay()
	if err := newRootCmd().Execute(); err != nil {
		pterm.Error.Println(err.Error())
		if errors.Is(err, errCasesFailed) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		tlevel     string
		traceTable bool
	)
	root := &cobra.Command{
		Use:           "ccgrade",
		Short:         "Grade the artifacts of a student compiler against reference fixtures",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupConfig(traceTable)
			setupTracing(tlevel, traceTable)
		},
	}
	root.PersistentFlags().StringVar(&tlevel, "trace", "Error", "Trace level [Debug|Info|Error]")
	root.PersistentFlags().BoolVar(&traceTable, "trace-table", false, "dump every alignment table to the trace")
	root.AddCommand(newScoreCmd(), newRunCmd(), newREPLCmd())
	return root
}

// setupConfig installs the global configuration read by the library packages.
func setupConfig(traceTable bool) {
	gconf.Initialize(testconfig.Conf{
		"trace-alignment-table": strconv.FormatBool(traceTable),
	})
}

// setupTracing sets the trace level of all packages. Alignment tables are
// dumped at debug level, thus traceTable raises the level of 'ccgrade.align'.
func setupTracing(level string, traceTable bool) {
	gtrace.SyntaxTracer = gologadapter.New()
	l := tracing.TraceLevelFromString(level)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
	if traceTable {
		tracing.Select("ccgrade.align").SetTraceLevel(tracing.LevelDebug)
	}
	tracer().Infof("Trace level is %s", level)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
