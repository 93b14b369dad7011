package align

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func unitCosts() Costs[rune] {
	return Costs[rune]{
		Delete:     Constant[rune](-1),
		Substitute: ConstantPair[rune](-1),
	}
}

func TestUnitCostAlignment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccgrade.align")
	defer teardown()
	//
	for i, test := range []struct {
		first, second string
		score         int
	}{
		{"", "", 0},
		{"abc", "", -3},
		{"", "ab", -2},
		{"abc", "abc", 0},
		{"abc", "axc", -1},
		{"ab", "ba", -2},
		{"kitten", "sitting", -3},
		{"(A(B))", "(A(B))", 0},
		{"(A(B))", "(A(B)(C))", -3},
	} {
		score := Score([]rune(test.first), []rune(test.second), unitCosts())
		if score != test.score {
			t.Errorf("test %d: expected score(%q, %q) = %d, have %d",
				i, test.first, test.second, test.score, score)
		}
	}
}

func TestMatchBonus(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccgrade.align")
	defer teardown()
	//
	costs := unitCosts()
	costs.Match = ConstantPair[rune](2)
	if score := Score([]rune("abc"), []rune("abc"), costs); score != 6 {
		t.Errorf("expected match bonus to sum up to 6, have %d", score)
	}
	if score := Score([]rune("abc"), []rune("abd"), costs); score != 3 {
		t.Errorf("expected substitution to beat double deletion, have %d", score)
	}
}

func TestDeletionBoundary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccgrade.align")
	defer teardown()
	//
	words := []string{"a", "bb", "ccc"}
	costs := Costs[string]{
		Delete:     func(s string) int { return -len(s) },
		Substitute: ConstantPair[string](-1),
	}
	if score := Score(words, nil, costs); score != -6 {
		t.Errorf("expected deleting all words to score -6, have %d", score)
	}
	if score := Score(nil, words, costs); score != -6 {
		t.Errorf("expected inserting all words to score -6, have %d", score)
	}
	// replacing "ccc" by "c" is cheaper than deleting 3 and inserting 1
	if score := Score(words, []string{"a", "bb", "c"}, costs); score != -1 {
		t.Errorf("expected substitution score -1, have %d", score)
	}
}

func TestScoreFunc(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccgrade.align")
	defer teardown()
	//
	first := []string{"Void", "MAIN", "x"}
	second := []string{"void", "main", "y"}
	costs := Costs[string]{
		Delete:     Constant[string](-2),
		Substitute: ConstantPair[string](-1),
	}
	if score := ScoreFunc(first, second, strings.EqualFold, costs); score != -1 {
		t.Errorf("expected case-insensitive score -1, have %d", score)
	}
	if score := Score(first, second, costs); score != -3 {
		t.Errorf("expected case-sensitive score -3, have %d", score)
	}
}

func TestTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccgrade.align")
	defer teardown()
	//
	costs := Costs[rune]{
		Delete:     Constant[rune](-2),
		Substitute: ConstantPair[rune](-1),
	}
	first, second := []rune("ab"), []rune("xyz")
	T := Fill(first, second, costs)
	if T.M() != 3 || T.N() != 4 {
		t.Fatalf("expected table of size 3 x 4, is %d x %d", T.M(), T.N())
	}
	for j, v := range []int{0, -2, -4, -6} {
		if T.Value(0, j) != v {
			t.Errorf("row 0: expected cell %d to be %d, is %d", j, v, T.Value(0, j))
		}
	}
	for i, v := range []int{0, -2, -4} {
		if T.Value(i, 0) != v {
			t.Errorf("column 0: expected cell %d to be %d, is %d", i, v, T.Value(i, 0))
		}
	}
	if T.Result() != Score(first, second, costs) {
		t.Errorf("table result %d differs from score %d", T.Result(), Score(first, second, costs))
	}
	T.Dump()
}

func TestTableMatchesScore(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccgrade.align")
	defer teardown()
	//
	inputs := []string{"", "a", "ab", "abc", "xaybzc", "ccgrade", "gorgeous"}
	costs := unitCosts()
	costs.Match = ConstantPair[rune](1)
	for _, a := range inputs {
		for _, b := range inputs {
			x, y := []rune(a), []rune(b)
			if s, r := Score(x, y, costs), Fill(x, y, costs).Result(); s != r {
				t.Errorf("%q/%q: rolling score %d, table result %d", a, b, s, r)
			}
		}
	}
}

func TestEveryCellIsBestPredecessor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccgrade.align")
	defer teardown()
	//
	first, second := []rune("banana"), []rune("ananas")
	costs := unitCosts()
	T := Fill(first, second, costs)
	for i := 1; i < T.M(); i++ {
		for j := 1; j < T.N(); j++ {
			diag := T.Value(i-1, j-1) - 1
			if first[i-1] == second[j-1] {
				diag = T.Value(i-1, j-1)
			}
			best := max(T.Value(i-1, j)-1, T.Value(i, j-1)-1, diag)
			if T.Value(i, j) != best {
				t.Errorf("cell (%d,%d) = %d, expected %d", i, j, T.Value(i, j), best)
			}
		}
	}
	row := T.Row(0)
	row[0] = 99
	if T.Value(0, 0) != 0 {
		t.Errorf("Row must return a copy")
	}
}

func TestScoreWithTableTrace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccgrade.align")
	defer teardown()
	//
	pairs := [][2]string{{"ab", "b"}, {"kitten", "sitting"}, {"", "xy"}, {"abc", ""}, {"(A(B))", "(A(B)(C))"}}
	rolling := make([]int, len(pairs))
	for i, p := range pairs {
		rolling[i] = Score([]rune(p[0]), []rune(p[1]), unitCosts())
	}
	gconf.Initialize(testconfig.Conf{"trace-alignment-table": "true"})
	defer gconf.Initialize(testconfig.Conf{})
	if !gconf.GetBool("trace-alignment-table") {
		t.Fatalf("expected table tracing to be switched on")
	}
	for i, p := range pairs {
		if score := Score([]rune(p[0]), []rune(p[1]), unitCosts()); score != rolling[i] {
			t.Errorf("test %d: expected score(%q, %q) = %d with table trace, have %d",
				i, p[0], p[1], rolling[i], score)
		}
	}
	if score := Score([]rune("ab"), []rune("b"), unitCosts()); score != -1 {
		t.Errorf("expected score -1, have %d", score)
	}
}
