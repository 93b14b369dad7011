package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/cmplab/ccgrade"
	"github.com/cmplab/ccgrade/compare"
	"github.com/cmplab/ccgrade/report"
	"github.com/cmplab/ccgrade/suite"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newREPLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Grade artifacts interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repl, err := readline.New("ccgrade> ")
			if err != nil {
				return err
			}
			defer repl.Close()
			sh := &Shell{out: cmd.OutOrStdout(), repl: repl}
			pterm.Info.Println("Welcome to ccgrade")
			tracer().Infof("Quit with <ctrl>D")
			sh.REPL()
			return nil
		},
	}
}

// Shell is our interactive grading session.
type Shell struct {
	out  io.Writer
	repl *readline.Instance
}

// REPL starts interactive mode.
func (sh *Shell) REPL() {
	for {
		line, err := sh.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := sh.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	fmt.Fprintln(sh.out, "Good bye!")
}

var errUsage = errors.New("usage")

const replHelp = `Commands:
  score <artifact> <expected-file> <actual-file>
  diff <artifact> <expected-file> <actual-file>
  phase <scanner|parser> <expected-dir> <actual-dir>
  symbols <expected-file> <actual-file>
  help
  quit`

// Eval executes a single command line. It returns true if the session
// should end.
func (sh *Shell) Eval(line string) (bool, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false, nil
	}
	tracer().Debugf("command %q, args = %v", args[0], args[1:])
	switch cmd, args := args[0], args[1:]; cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprintln(sh.out, replHelp)
		return false, nil
	case "score", "diff":
		if len(args) != 3 {
			return false, fmt.Errorf("%w: %s <artifact> <expected-file> <actual-file>", errUsage, cmd)
		}
		return false, scoreFiles(sh.out, args[0], args[1], args[2], cmd == "diff")
	case "phase":
		if len(args) != 3 {
			return false, fmt.Errorf("%w: phase <scanner|parser> <expected-dir> <actual-dir>", errUsage)
		}
		return false, sh.phase(args[0], args[1], args[2])
	case "symbols":
		if len(args) != 2 {
			return false, fmt.Errorf("%w: symbols <expected-file> <actual-file>", errUsage)
		}
		return false, sh.symbols(args[0], args[1])
	default:
		return false, fmt.Errorf("unknown command %q, try 'help'", cmd)
	}
}

func (sh *Shell) phase(name, expectedDir, actualDir string) error {
	phase, err := ccgrade.ParsePhase(name)
	if err != nil {
		return err
	}
	expected, err := suite.ReadArtifacts(expectedDir, phase, true)
	if err != nil {
		return err
	}
	actual, err := suite.ReadArtifacts(actualDir, phase, false)
	if err != nil {
		return err
	}
	scores := compare.Phase(phase, expected, actual)
	_, err = fmt.Fprintln(sh.out, report.Line(filepath.Base(actualDir), scores))
	return err
}

// symbols lists the identifiers in which two symbol tables differ.
func (sh *Shell) symbols(expectedFile, actualFile string) error {
	expected, actual, err := readPair(expectedFile, actualFile)
	if err != nil {
		return err
	}
	missing, extra := compare.SymbolDiff(expected, actual)
	for _, s := range missing {
		fmt.Fprintf(sh.out, "- %s\n", s)
	}
	for _, s := range extra {
		fmt.Fprintf(sh.out, "+ %s\n", s)
	}
	_, err = fmt.Fprintln(sh.out, -(len(missing) + len(extra)))
	return err
}
