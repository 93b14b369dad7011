package compare

import (
	"fmt"

	"github.com/cmplab/ccgrade"
	"github.com/cmplab/ccgrade/align"
	"github.com/cmplab/ccgrade/record"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/sets/treeset"
)

// Func is the signature shared by all comparators.
type Func func(expected, actual string) int

// Tokens scores a token stream, i.e. numbered lines of "(type, value)" pairs.
func Tokens(expected, actual string) int {
	score := scoreLines(expected, actual, record.ParseTokenLine, record.Pair.Fields)
	tracer().Debugf("tokens score = %d", score)
	return score
}

// LexicalErrors scores a list of lexical errors, i.e. numbered lines of
// "(token, message)" pairs.
func LexicalErrors(expected, actual string) int {
	score := scoreLines(expected, actual, record.ParseErrorLine, record.Pair.Fields)
	tracer().Debugf("lexical errors score = %d", score)
	return score
}

// SyntaxErrors scores a list of syntax errors, i.e. lines of the form
// "#<line>: <message>". Messages are compared character by character.
func SyntaxErrors(expected, actual string) int {
	score := scoreLines(expected, actual, record.ParseSyntaxError, characters)
	tracer().Debugf("syntax errors score = %d", score)
	return score
}

func characters(message string) []rune {
	return []rune(message)
}

// ParseTree scores a parse tree. Both trees are compared as character
// sequences with all white space removed, each deletion or substitution
// costing 1.
func ParseTree(expected, actual string) int {
	costs := align.Costs[rune]{
		Delete:     align.Constant[rune](-1),
		Substitute: align.ConstantPair[rune](-1),
	}
	score := align.Score(record.StripSpace(expected), record.StripSpace(actual), costs)
	tracer().Debugf("parse tree score = %d", score)
	return score
}

// --- Symbol tables ---------------------------------------------------------

// SymbolTable scores a symbol table. Tables are treated as sets of symbols:
// the order of lines and duplicate entries are irrelevant. The score is the
// negated size of the symmetric difference of both sets.
func SymbolTable(expected, actual string) int {
	missing, extra := SymbolDiff(expected, actual)
	score := -(len(missing) + len(extra))
	tracer().Debugf("symbol table score = %d", score)
	return score
}

// SymbolDiff returns the symbols missing from actual and the symbols not
// present in expected, both sorted.
func SymbolDiff(expected, actual string) (missing []string, extra []string) {
	exp, act := symbols(expected), symbols(actual)
	return difference(exp, act), difference(act, exp)
}

func symbols(text string) *hashset.Set {
	set := hashset.New()
	for _, line := range record.Lines(text) {
		set.Add(record.ParseLine(line).Content)
	}
	return set
}

func difference(a, b *hashset.Set) []string {
	diff := treeset.NewWithStringComparator()
	for _, sym := range a.Values() {
		if !b.Contains(sym) {
			diff.Add(sym)
		}
	}
	syms := make([]string, 0, diff.Size())
	for _, sym := range diff.Values() {
		syms = append(syms, sym.(string))
	}
	return syms
}

// --- Dispatch --------------------------------------------------------------

var comparators = map[ccgrade.Artifact]Func{
	ccgrade.Tokens:        Tokens,
	ccgrade.SymbolTable:   SymbolTable,
	ccgrade.LexicalErrors: LexicalErrors,
	ccgrade.ParseTree:     ParseTree,
	ccgrade.SyntaxErrors:  SyntaxErrors,
}

// For returns the comparator for an artifact.
func For(a ccgrade.Artifact) (Func, error) {
	if cmp, ok := comparators[a]; ok {
		return cmp, nil
	}
	return nil, fmt.Errorf("no comparator for %s", a)
}

// Phase scores all artifacts of a phase and returns the scores in the order of
// phase.Artifacts(). Artifacts missing from a map are compared as empty text.
func Phase(phase ccgrade.Phase, expected, actual map[ccgrade.Artifact]string) []int {
	arts := phase.Artifacts()
	scores := make([]int, len(arts))
	for i, a := range arts {
		scores[i] = comparators[a](expected[a], actual[a])
	}
	return scores
}
