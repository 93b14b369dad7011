package suite

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cmplab/ccgrade"
	"github.com/cmplab/ccgrade/compare"
	"github.com/cmplab/ccgrade/report"
	"github.com/cnf/structhash"
	"golang.org/x/sync/errgroup"
)

// Artifacts maps artifacts to their text.
type Artifacts map[ccgrade.Artifact]string

// Run grades the test cases given by names. Test cases run concurrently, at
// most cfg.Jobs at a time, or GOMAXPROCS if cfg.Jobs is not positive. The
// results are in the order of names.
func Run(ctx context.Context, cfg *Config, names []string) []report.Result {
	results := make([]report.Result, len(names))
	jobs := cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g := new(errgroup.Group)
	g.SetLimit(jobs)
	for i, name := range names {
		g.Go(func() error {
			results[i] = RunCase(ctx, cfg, name)
			return nil
		})
	}
	_ = g.Wait() // cases report their errors within the results
	return results
}

// RunCase grades a single test case.
func RunCase(ctx context.Context, cfg *Config, name string) report.Result {
	result := report.Result{Name: name, Phase: cfg.Phase}
	if !validName(name) {
		result.Err = fmt.Errorf("%w: %q", ErrInvalidTestCase, name)
		return result
	}
	expected, err := ReadArtifacts(filepath.Join(cfg.TestCases, name), cfg.Phase, true)
	if err != nil {
		result.Err = err
		return result
	}
	var actual Artifacts
	if len(cfg.Command) > 0 {
		actual, err = stage(ctx, cfg, name)
	} else {
		actual, err = ReadArtifacts(filepath.Join(cfg.Actual, name), cfg.Phase, false)
	}
	if err != nil {
		tracer().Errorf("test case %s: %v", name, err)
		result.Err = err
		return result
	}
	result.Scores = compare.Phase(cfg.Phase, expected, actual)
	result.Fingerprint = Fingerprint(actual)
	if cfg.Diffs {
		result.Diffs = diffs(cfg.Phase, result.Scores, expected, actual)
	}
	tracer().Infof("%s", report.Line(name, result.Scores))
	return result
}

// validName is true for names of direct sub-directories of the test case
// directory.
func validName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}

// ReadArtifacts reads the artifacts of a phase from a directory. Missing files
// are an error if required is set, otherwise they are read as empty text.
func ReadArtifacts(dir string, phase ccgrade.Phase, required bool) (Artifacts, error) {
	arts := make(Artifacts)
	for _, a := range phase.Artifacts() {
		data, err := os.ReadFile(filepath.Join(dir, a.FileName()))
		if err != nil {
			if !required && errors.Is(err, fs.ErrNotExist) {
				tracer().Debugf("%s missing in %s", a.FileName(), dir)
				arts[a] = ""
				continue
			}
			return nil, fmt.Errorf("cannot read %s: %w", a, err)
		}
		arts[a] = string(data)
	}
	return arts, nil
}

// stage runs the compiler under test for a test case within a private working
// directory and collects the artifacts written there.
//
// The exit status of the compiler is not relevant for grading: a compiler
// reporting errors may still have written (partial) artifacts.
func stage(ctx context.Context, cfg *Config, name string) (Artifacts, error) {
	input, err := os.ReadFile(filepath.Join(cfg.TestCases, name, cfg.Input))
	if err != nil {
		return nil, fmt.Errorf("cannot read input: %w", err)
	}
	workdir, err := os.MkdirTemp("", "ccgrade-"+name+"-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(workdir)
	if err = os.WriteFile(filepath.Join(workdir, filepath.Base(cfg.Input)), input, 0o644); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	args := cfg.commandFor(workdir)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = workdir
	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output
	tracer().Debugf("test case %s: running %v in %s", name, args, workdir)
	err = cmd.Run()
	if ctx.Err() != nil {
		return nil, fmt.Errorf("compiler did not finish: %w", ctx.Err())
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		tracer().Infof("test case %s: compiler exited with status %d", name, exitErr.ExitCode())
	} else if err != nil {
		return nil, fmt.Errorf("cannot run compiler: %w", err)
	}
	if output.Len() > 0 {
		tracer().Debugf("test case %s: compiler output:\n%s", name, output.String())
	}
	return ReadArtifacts(workdir, cfg.Phase, false)
}

// outputs is the hashed form of a set of artifacts.
type outputs struct {
	Tokens        string
	SymbolTable   string
	LexicalErrors string
	ParseTree     string
	SyntaxErrors  string
}

// Fingerprint hashes a set of artifacts. Identical outputs of different
// submissions have identical fingerprints.
func Fingerprint(arts Artifacts) string {
	h, err := structhash.Hash(outputs{
		Tokens:        arts[ccgrade.Tokens],
		SymbolTable:   arts[ccgrade.SymbolTable],
		LexicalErrors: arts[ccgrade.LexicalErrors],
		ParseTree:     arts[ccgrade.ParseTree],
		SyntaxErrors:  arts[ccgrade.SyntaxErrors],
	}, 1)
	if err != nil {
		tracer().Errorf("cannot fingerprint outputs: %v", err)
		return ""
	}
	return h
}

// diffs renders a diff for every artifact with a non-zero score.
func diffs(phase ccgrade.Phase, scores []int, expected, actual Artifacts) map[ccgrade.Artifact]string {
	d := make(map[ccgrade.Artifact]string)
	for i, a := range phase.Artifacts() {
		if scores[i] != 0 {
			d[a] = report.Diff(expected[a], actual[a])
		}
	}
	return d
}
