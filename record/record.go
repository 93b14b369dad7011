package record

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/cmplab/ccgrade"
)

// Record is one line of an artifact. Content is the part of the line following
// the line number, possibly split into smaller units.
type Record[C any] struct {
	Line    ccgrade.LineNo
	Content C
}

// Equal compares two records with sequence content element-wise.
func Equal[E comparable](a, b Record[[]E]) bool {
	return a.Line == b.Line && slices.Equal(a.Content, b.Content)
}

// --- Numbered lines --------------------------------------------------------

// White space and decimal digits of the line grammars are those of any script.
const (
	space    = `[\t-\r\x1c-\x20\x{85}\p{Z}]`
	nonSpace = `[^\t-\r\x1c-\x20\x{85}\p{Z}]`
	digits   = `(\p{Nd}+)`
)

var (
	linePattern   = regexp.MustCompile(`^` + digits + `\.` + space + `*(.+)`)
	syntaxPattern = regexp.MustCompile(`^#` + digits + space + `*:` + space + `*(.+)`)
)

// isLineBreak is true for "\n" and "\r", vertical tab, form feed, the file,
// group and record separators, NEL, and the Unicode line and paragraph
// separators.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// Lines splits text into lines, dropping empty ones. A line consisting of
// white space only is kept; it will not match any line grammar.
func Lines(text string) []string {
	return strings.FieldsFunc(text, isLineBreak)
}

// Extract converts every non-empty line of text into a record.
func Extract[C any](text string, parse func(line string) Record[C]) []Record[C] {
	lines := Lines(text)
	records := make([]Record[C], 0, len(lines))
	for _, line := range lines {
		records = append(records, parse(line))
	}
	return records
}

// number converts a sequence of decimal digits to an int.
func number(digits string) (int, error) {
	return strconv.Atoi(strings.Map(func(r rune) rune {
		return '0' + digitValue(r)
	}, digits))
}

// digitValue returns the value of a decimal digit. Unicode encodes the digits
// of each script as a contiguous run from 0 to 9.
func digitValue(r rune) rune {
	if r >= '0' && r <= '9' {
		return r - '0'
	}
	for _, rng := range unicode.Nd.R16 {
		if r >= rune(rng.Lo) && r <= rune(rng.Hi) {
			return (r - rune(rng.Lo)) % 10
		}
	}
	for _, rng := range unicode.Nd.R32 {
		if r >= rune(rng.Lo) && r <= rune(rng.Hi) {
			return (r - rune(rng.Lo)) % 10
		}
	}
	return 0
}

// ParseLine matches a line against the numbered-line grammar
//
//     digits '.' whitespace* content
//
// where content is the (non-empty) rest of the line. Lines not matching the
// grammar result in a record without line number and with empty content.
func ParseLine(line string) Record[string] {
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		tracer().Debugf("line does not match numbered-line grammar: %q", line)
		return Record[string]{Line: ccgrade.NoLine}
	}
	n, err := number(m[1])
	if err != nil {
		tracer().Debugf("line number out of range: %q", m[1])
		return Record[string]{Line: ccgrade.NoLine}
	}
	return Record[string]{Line: ccgrade.Line(n), Content: m[2]}
}

// ParseSyntaxError matches a line against the syntax error grammar
//
//     '#' digits whitespace* ':' whitespace* message
//
// The content of the record is a single-element list holding the message. A line
// not matching the grammar results in a record without line number and the
// complete line as message.
func ParseSyntaxError(line string) Record[[]string] {
	if m := syntaxPattern.FindStringSubmatch(line); m != nil {
		if n, err := number(m[1]); err == nil {
			return Record[[]string]{Line: ccgrade.Line(n), Content: []string{m[2]}}
		}
	}
	tracer().Debugf("line does not match syntax error grammar: %q", line)
	return Record[[]string]{Line: ccgrade.NoLine, Content: []string{line}}
}

// StripSpace returns the runes of text with all white space removed.
func StripSpace(text string) []rune {
	runes := make([]rune, 0, len(text))
	for _, r := range text {
		if !isSpace(r) {
			runes = append(runes, r)
		}
	}
	return runes
}

// isSpace is unicode.IsSpace plus the information separators U+001C to U+001F.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r >= '\x1c' && r <= '\x1f'
}
