package record

import (
	"regexp"
)

// Pair is a parenthesized pair within a line, either a token (type, value) or a
// lexical error (token, message).
type Pair struct {
	First  string
	Second string
}

// Fields returns the pair's values as a list, which is the unit nested
// alignments compare position-wise.
func (p Pair) Fields() []string {
	return []string{p.First, p.Second}
}

func (p Pair) String() string {
	return "(" + p.First + ", " + p.Second + ")"
}

// TokenTypes are the token categories recognized within token streams.
var TokenTypes = []string{"NUM", "ID", "KEYWORD", "SYMBOL"}

// The token value is matched non-greedily, which makes "(SYMBOL, ))" a
// token with value ")".
var (
	tokenPattern = regexp.MustCompile(`\(` + space + `*(NUM|ID|KEYWORD|SYMBOL)` + space + `*,` + space + `*(.+?)\)`)
	errorPattern = regexp.MustCompile(`\(` + space + `*(` + nonSpace + `+)` + space + `*,` + space + `*([^)]+)` + space + `*\)`)
)

// ScanTokens finds all "(type, value)" groups in content. Groups with a type
// other than one of TokenTypes are skipped.
func ScanTokens(content string) []Pair {
	return scanPairs(tokenPattern, content)
}

// ScanErrors finds all "(token, message)" groups in content.
func ScanErrors(content string) []Pair {
	return scanPairs(errorPattern, content)
}

func scanPairs(pattern *regexp.Regexp, content string) []Pair {
	matches := pattern.FindAllStringSubmatch(content, -1)
	pairs := make([]Pair, 0, len(matches))
	for _, m := range matches {
		pairs = append(pairs, Pair{First: m[1], Second: m[2]})
	}
	return pairs
}

// ParseTokenLine parses a numbered line of a token stream.
func ParseTokenLine(line string) Record[[]Pair] {
	r := ParseLine(line)
	return Record[[]Pair]{Line: r.Line, Content: ScanTokens(r.Content)}
}

// ParseErrorLine parses a numbered line of a lexical error list.
func ParseErrorLine(line string) Record[[]Pair] {
	r := ParseLine(line)
	return Record[[]Pair]{Line: r.Line, Content: ScanErrors(r.Content)}
}
