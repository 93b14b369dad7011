/*
Package report formats grading results.

The classic output format prints one line per test case, listing the scores
in the order of the phase's artifacts:

    T01 --> 0 -2 0

Besides this, results may be rendered as a table for the terminal, or as YAML
for further processing.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cmplab/ccgrade"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// tracer traces with key 'ccgrade.report'.
func tracer() tracing.Trace {
	return tracing.Select("ccgrade.report")
}

// Result is the outcome of grading one test case.
type Result struct {
	Name        string                      // name of the test case
	Phase       ccgrade.Phase               // phase the test case belongs to
	Scores      []int                       // one score per artifact of Phase
	Fingerprint string                      // hash of the actual artifacts
	Diffs       map[ccgrade.Artifact]string // optional views of mismatching artifacts
	Err         error                       // set if the test case could not be graded
}

// Total sums up the scores of a result.
func (r Result) Total() int {
	total := 0
	for _, s := range r.Scores {
		total += s
	}
	return total
}

// Line formats the scores of a test case as
//
//     <test> --> <score1> <score2> [<score3>]
//
func Line(test string, scores []int) string {
	var b strings.Builder
	b.WriteString(test)
	b.WriteString(" -->")
	for _, s := range scores {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(s))
	}
	return b.String()
}

// --- Writer ----------------------------------------------------------------

// Format selects the output format of a Writer.
type Format int

const (
	Text  Format = iota // one line per test case
	Table               // a table for the terminal
	YAML                // a YAML document
)

// ParseFormat accepts "text", "table" and "yaml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "":
		return Text, nil
	case "table":
		return Table, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return Text, fmt.Errorf("unknown output format %q", s)
}

// Writer writes results in a given format.
type Writer struct {
	out       io.Writer
	format    Format
	withDiffs bool
}

// Option configures a Writer.
type Option func(w *Writer)

// WithDiffs makes a writer include the diff views of mismatching artifacts.
func WithDiffs(b bool) Option {
	return func(w *Writer) {
		w.withDiffs = b
	}
}

// NewWriter creates a writer for results.
func NewWriter(out io.Writer, format Format, opts ...Option) *Writer {
	w := &Writer{out: out, format: format}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write writes a batch of results.
func (w *Writer) Write(results []Result) error {
	tracer().Debugf("writing %d results in format %d", len(results), w.format)
	switch w.format {
	case Table:
		return w.writeTable(results)
	case YAML:
		return w.writeYAML(results)
	}
	return w.writeText(results)
}

func (w *Writer) writeText(results []Result) error {
	for _, r := range results {
		var err error
		if r.Err != nil {
			_, err = fmt.Fprintf(w.out, "%s --> error: %v\n", r.Name, r.Err)
		} else {
			_, err = fmt.Fprintln(w.out, Line(r.Name, r.Scores))
		}
		if err != nil {
			return err
		}
		if err = w.writeDiffs(r); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeDiffs(r Result) error {
	if !w.withDiffs || len(r.Diffs) == 0 {
		return nil
	}
	for _, a := range r.Phase.Artifacts() {
		d, ok := r.Diffs[a]
		if !ok || d == "" {
			continue
		}
		if _, err := fmt.Fprintf(w.out, "--- %s/%s\n%s", r.Name, a, d); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeTable(results []Result) error {
	if len(results) == 0 {
		return nil
	}
	arts := results[0].Phase.Artifacts()
	header := []string{"test"}
	for _, a := range arts {
		header = append(header, a.String())
	}
	header = append(header, "total")
	data := pterm.TableData{header}
	sums := make([]int, len(arts)+1)
	for _, r := range results {
		row := []string{r.Name}
		if r.Err != nil {
			row = append(row, "error: "+r.Err.Error())
			for len(row) < len(header) {
				row = append(row, "")
			}
			data = append(data, row)
			continue
		}
		for i, s := range r.Scores {
			row = append(row, strconv.Itoa(s))
			sums[i] += s
		}
		row = append(row, strconv.Itoa(r.Total()))
		sums[len(arts)] += r.Total()
		data = append(data, row)
	}
	footer := []string{"sum"}
	for _, s := range sums {
		footer = append(footer, strconv.Itoa(s))
	}
	data = append(data, footer)
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintln(w.out, table); err != nil {
		return err
	}
	for _, r := range results {
		if err = w.writeDiffs(r); err != nil {
			return err
		}
	}
	return nil
}

// yamlResult is the YAML form of a Result.
type yamlResult struct {
	Name        string            `yaml:"name"`
	Phase       string            `yaml:"phase"`
	Scores      map[string]int    `yaml:"scores,omitempty"`
	Total       int               `yaml:"total"`
	Fingerprint string            `yaml:"fingerprint,omitempty"`
	Diffs       map[string]string `yaml:"diffs,omitempty"`
	Error       string            `yaml:"error,omitempty"`
}

func (w *Writer) writeYAML(results []Result) error {
	doc := make([]yamlResult, 0, len(results))
	for _, r := range results {
		y := yamlResult{
			Name:        r.Name,
			Phase:       r.Phase.String(),
			Total:       r.Total(),
			Fingerprint: r.Fingerprint,
		}
		if r.Err != nil {
			y.Error = r.Err.Error()
		}
		arts := r.Phase.Artifacts()
		for i, s := range r.Scores {
			if i >= len(arts) {
				break
			}
			if y.Scores == nil {
				y.Scores = make(map[string]int, len(r.Scores))
			}
			y.Scores[arts[i].String()] = s
		}
		if w.withDiffs {
			for a, d := range r.Diffs {
				if y.Diffs == nil {
					y.Diffs = make(map[string]string, len(r.Diffs))
				}
				y.Diffs[a.String()] = d
			}
		}
		doc = append(doc, y)
	}
	enc := yaml.NewEncoder(w.out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
