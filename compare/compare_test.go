package compare

import (
	"slices"
	"testing"

	"github.com/cmplab/ccgrade"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const tokenFixture = `1.	(KEYWORD, void) (ID, main) (SYMBOL, () (KEYWORD, void) (SYMBOL, )) (SYMBOL, {)
2.	(KEYWORD, int) (ID, x) (SYMBOL, ;)
3.	(ID, x) (SYMBOL, =) (NUM, 5) (SYMBOL, ;)
5.	(ID, output) (SYMBOL, () (ID, x) (SYMBOL, )) (SYMBOL, ;)
6.	(SYMBOL, })
`

const symbolFixture = `1.	break
2.	else
3.	if
4.	int
5.	main
6.	x
`

const lexicalFixture = `3.	(3d, Invalid number)
7.	(cd!, Invalid input) (/*comm, Unclosed comment)
`

const parseTreeFixture = `Program
├── Declaration-list
│   ├── Declaration
│   │   ├── Declaration-initial
│   │   │   ├── (KEYWORD, int)
│   │   │   └── (ID, a)
│   │   └── Declaration-prime
│   │       └── Var-declaration-prime
│   │           └── (SYMBOL, ;)
│   └── Declaration-list
│       └── epsilon
└── $
`

const syntaxFixture = `#2 : syntax error, missing Params
#4 : syntax error, illegal break
`

func TestReflexivity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccgrade.compare")
	defer teardown()
	//
	for _, test := range []struct {
		name    string
		cmp     Func
		fixture string
	}{
		{"tokens", Tokens, tokenFixture},
		{"symbols", SymbolTable, symbolFixture},
		{"lexical errors", LexicalErrors, lexicalFixture},
		{"parse tree", ParseTree, parseTreeFixture},
		{"syntax errors", SyntaxErrors, syntaxFixture},
	} {
		if score := test.cmp(test.fixture, test.fixture); score != 0 {
			t.Errorf("%s: expected score(X, X) = 0, have %d", test.name, score)
		}
	}
}

func TestTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccgrade.compare")
	defer teardown()
	//
	for i, test := range []struct {
		expected, actual string
		score            int
	}{
		{"1.\t(KEYWORD, void)\n2.\t(ID, x)", "1.\t(KEYWORD, void)", -2},
		{"1.\t(KEYWORD, void)", "1.\t(KEYWORD, void)\n2.\t(ID, x) (ID, y)", -3},
		{"3.\t(ID, x)", "4.\t(ID, x)", -1},         // line number differs
		{"3.\t(ID, x)", "3.\t(ID, y)", -1},         // token value differs
		{"3.\t(ID, x)", "3.\t(NUM, 1)", -2},        // type and value differ
		{"3.\t(ID, x)", "3.\t(ID, x) (ID, y)", -2}, // extra token
		{"1.\t(ID, x)", "oops", -3},                // malformed line
		{"", "", 0},
		{"1.\t(ID, x) (NUM, 12)", "", -3},
		{"", "1.\t(ID, x) (NUM, 12)\n2.\t(SYMBOL, ;)", -5},
		{"1.\t(ID, x)\n   \n", "1.\t(ID, x)\n", -1},                 // white space line
		{"1.\t(ID, x)\f2.\t(ID, y)", "1.\t(ID, x)\n2.\t(ID, y)", 0}, // form feed ends a line
		{"1.\u00a0(ID,\u00a0x)", "1.\t(ID, x)", 0},                  // non-breaking spaces
	} {
		if score := Tokens(test.expected, test.actual); score != test.score {
			t.Errorf("test %d: expected score %d, have %d", i, test.score, score)
		}
	}
}

func TestTokensCorruptedTail(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccgrade.compare")
	defer teardown()
	//
	expected := `20.	(SYMBOL, })
21.	(KEYWORD, return) (SYMBOL, ;)
22.	(SYMBOL, })
24.	(ID, bar) (SYMBOL, =) (SYMBOL, *) (ID, then)
`
	actual := `20.	(SYMBOL, })
21.	(KEYWORD, return) (SYMBOL, ;)
corrupted line 22.	(SYMBOL, })
25.	(ID, bar) (SYMBOL, =) (SYMBOL, *) (ID, then) (ID, Extra)
`
	if score := Tokens(expected, actual); score != -6 {
		t.Errorf("expected score -6, have %d", score)
	}
}

func TestNestedMonotonicity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccgrade.compare")
	defer teardown()
	//
	expected := "1.\t(ID, x) (SYMBOL, =) (NUM, 5)"
	exact := Tokens(expected, expected)
	spurious := Tokens(expected, "1.\t(ID, x) (SYMBOL, =) (ID, y) (NUM, 5)")
	if spurious >= exact {
		t.Errorf("expected a spurious token to decrease the score, have %d >= %d", spurious, exact)
	}
	worse := Tokens(expected, "1.\t(ID, x) (SYMBOL, =) (ID, y) (ID, z) (NUM, 5)")
	if worse >= spurious {
		t.Errorf("expected a second spurious token to decrease the score, have %d >= %d", worse, spurious)
	}
}

func TestSymbolTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccgrade.compare")
	defer teardown()
	//
	if score := SymbolTable("1.\ta\n2.\tb", "1.\ta\n2.\tc"); score != -2 {
		t.Errorf("expected score -2, have %d", score)
	}
	permuted := "1.\tx\n2.\tmain\n3.\tint\n4.\tif\n5.\telse\n6.\tbreak\n7.\tx\n"
	if score := SymbolTable(symbolFixture, permuted); score != 0 {
		t.Errorf("expected permutation and duplicates to be ignored, have score %d", score)
	}
	if score := SymbolTable("1.\ta\n \n", "1.\ta\n"); score != -1 {
		t.Errorf("expected a white space line to count as an empty symbol, have score %d", score)
	}
	if score := SymbolTable("1.\ta\u20282.\tb", "1.\ta\n2.\tb\n"); score != 0 {
		t.Errorf("expected a line separator to end a line, have score %d", score)
	}
	missing, extra := SymbolDiff("1.\ta\n2.\tb\n3.\tc", "1.\tc\n2.\tz\n3.\ty")
	if !slices.Equal(missing, []string{"a", "b"}) || !slices.Equal(extra, []string{"y", "z"}) {
		t.Errorf("unexpected symbol diff %v / %v", missing, extra)
	}
}

func TestLexicalErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccgrade.compare")
	defer teardown()
	//
	if score := LexicalErrors("7.\t(3d, Invalid number)", "7.\t(3d, Invalid input)"); score != -1 {
		t.Errorf("expected score -1, have %d", score)
	}
	if score := LexicalErrors(lexicalFixture, "There is no lexical error."); score != -6 {
		// deleting both expected lines (-2, -3) and the sentinel line (-1)
		t.Errorf("expected score -6, have %d", score)
	}
}

func TestParseTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccgrade.compare")
	defer teardown()
	//
	if score := ParseTree("(A (B))", "(A(B))"); score != 0 {
		t.Errorf("expected white space to be ignored, have score %d", score)
	}
	if score := ParseTree("(A (B))", "(A (C))"); score != -1 {
		t.Errorf("expected score -1, have %d", score)
	}
	if score := ParseTree("(A)", ""); score != -3 {
		t.Errorf("expected score -3, have %d", score)
	}
}

func TestSyntaxErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccgrade.compare")
	defer teardown()
	//
	for i, test := range []struct {
		expected, actual string
		score            int
	}{
		{"#4 : syntax error, missing Params", "#5 : syntax error, missing Params", -1},
		{"#4 : missing ID", "#4 : missing NUM", -2},
		{"#4 : missing ID", "#4: missing ID", 0},
		{"#4 : missing ID", "", -2},
		{"There is no syntax error.", "There is no syntax error.", 0},
	} {
		if score := SyntaxErrors(test.expected, test.actual); score != test.score {
			t.Errorf("test %d: expected score %d, have %d", i, test.score, score)
		}
	}
}

func TestPhase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccgrade.compare")
	defer teardown()
	//
	expected := map[ccgrade.Artifact]string{
		ccgrade.Tokens:        tokenFixture,
		ccgrade.SymbolTable:   symbolFixture,
		ccgrade.LexicalErrors: lexicalFixture,
	}
	actual := map[ccgrade.Artifact]string{
		ccgrade.Tokens:      tokenFixture,
		ccgrade.SymbolTable: "1.\tbreak\n",
	}
	scores := Phase(ccgrade.Scanner, expected, actual)
	if !slices.Equal(scores, []int{0, -5, -5}) {
		t.Errorf("unexpected phase scores %v", scores)
	}
	cmp, err := For(ccgrade.ParseTree)
	if err != nil || cmp("(A)", "(A)") != 0 {
		t.Errorf("expected parse tree comparator, have error %v", err)
	}
	if _, err := For(ccgrade.Artifact(42)); err == nil {
		t.Errorf("expected an error for an unknown artifact")
	}
}
