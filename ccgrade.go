package ccgrade

import (
	"fmt"
	"strconv"
	"strings"
)

// --- Line numbers ----------------------------------------------------------

// LineNo is the line number of a record within an artifact. Lines which do not
// match the numbered-line grammar of their artifact carry no line number at
// all; LineNo makes this absence explicit instead of using a magic value.
//
// LineNo values are comparable: two absent line numbers are equal, and an absent
// line number never equals a present one.
type LineNo struct {
	n     int
	valid bool
}

// NoLine is the line number of a record which did not match its line grammar.
var NoLine = LineNo{}

// Line creates a line number.
func Line(n int) LineNo {
	return LineNo{n: n, valid: true}
}

// Value returns the line number and true, or (0, false) for NoLine.
func (l LineNo) Value() (int, bool) {
	return l.n, l.valid
}

// IsValid is false for NoLine.
func (l LineNo) IsValid() bool {
	return l.valid
}

func (l LineNo) String() string {
	if !l.valid {
		return "-"
	}
	return strconv.Itoa(l.n)
}

// --- Artifacts -------------------------------------------------------------

// Artifact is a category of compiler output being graded.
type Artifact int8

// Artifacts of the scanner phase and the parser phase.
const (
	Tokens Artifact = iota
	SymbolTable
	LexicalErrors
	ParseTree
	SyntaxErrors
)

var artifactNames = [...]string{
	Tokens:        "tokens",
	SymbolTable:   "symbol_table",
	LexicalErrors: "lexical_errors",
	ParseTree:     "parse_tree",
	SyntaxErrors:  "syntax_errors",
}

func (a Artifact) String() string {
	if a < 0 || int(a) >= len(artifactNames) {
		return fmt.Sprintf("artifact(%d)", int(a))
	}
	return artifactNames[a]
}

// FileName is the name of the file a compiler writes this artifact to,
// e.g. "tokens.txt".
func (a Artifact) FileName() string {
	return a.String() + ".txt"
}

// ParseArtifact finds an artifact by name. Names are the ones returned by
// Artifact.String, optionally with a ".txt" suffix; "symbols" is accepted
// as an alias for the symbol table.
func ParseArtifact(name string) (Artifact, error) {
	name = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), ".txt")
	if name == "symbols" {
		return SymbolTable, nil
	}
	for a, n := range artifactNames {
		if n == name {
			return Artifact(a), nil
		}
	}
	return Tokens, fmt.Errorf("unknown artifact %q", name)
}

// --- Phases ----------------------------------------------------------------

// Phase is a stage of the compiler project. Each phase is graded on its own
// set of artifacts.
type Phase int8

const (
	Scanner Phase = iota + 1 // phase 1: tokens, symbol table, lexical errors
	Parser                   // phase 2: parse tree, syntax errors
)

// Artifacts returns the artifacts graded in a phase, in the order scores are
// reported.
func (p Phase) Artifacts() []Artifact {
	switch p {
	case Scanner:
		return []Artifact{Tokens, SymbolTable, LexicalErrors}
	case Parser:
		return []Artifact{ParseTree, SyntaxErrors}
	}
	return nil
}

func (p Phase) String() string {
	switch p {
	case Scanner:
		return "scanner"
	case Parser:
		return "parser"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// ParsePhase accepts "scanner" or "1", and "parser" or "2".
func ParsePhase(s string) (Phase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scanner", "1":
		return Scanner, nil
	case "parser", "2":
		return Parser, nil
	}
	return 0, fmt.Errorf("unknown phase %q", s)
}
