package datemath

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/uberbrodt/datemath-go/chronos"
)

const anchor = "now"

type lexer struct {
	input string
	pos   int
}

func (l *lexer) errorf(format string, args ...any) *ParseError {
	return newParseError(l.input, l.pos, format, args...)
}

func (l *lexer) eof() bool {
	return l.pos >= len(l.input)
}

// lex tokenizes a whitespace-stripped shorthand string into an Expression.
// Pure: no side effects beyond the returned value.
func lex(input string) (Expression, error) {
	l := &lexer{input: input}

	if !strings.HasPrefix(l.input, anchor) {
		return Expression{}, l.errorf("expression must start with %q", anchor)
	}
	l.pos = len(anchor)

	x := Expression{raw: input}
	rounded := false
	for !l.eof() {
		switch c := l.input[l.pos]; c {
		case '+', '-':
			seg, err := l.offset(c)
			if err != nil {
				return Expression{}, err
			}
			x.segs = append(x.segs, seg)
		case '/':
			if rounded {
				return Expression{}, l.errorf("only one rounding segment is allowed")
			}
			seg, err := l.round()
			if err != nil {
				return Expression{}, err
			}
			rounded = true
			x.segs = append(x.segs, seg)
		case '\'':
			zone, err := l.zone()
			if err != nil {
				return Expression{}, err
			}
			if !l.eof() {
				return Expression{}, l.errorf("trailing characters after timezone designator")
			}
			x.zone = zone
		default:
			return Expression{}, l.errorf("unexpected character %q", string(c))
		}
	}
	return x, nil
}

// offset consumes a "+<integer><unit>" or "-<integer><unit>" segment. The
// sign character has already been seen.
func (l *lexer) offset(signc byte) (segment, error) {
	sign := 1
	if signc == '-' {
		sign = -1
	}
	l.pos++

	start := l.pos
	for !l.eof() && l.input[l.pos] >= '0' && l.input[l.pos] <= '9' {
		l.pos++
	}
	if l.pos == start {
		return segment{}, l.errorf("expected an integer after %q", string(signc))
	}
	n, err := strconv.ParseInt(l.input[start:l.pos], 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return segment{}, newParseError(l.input, start, "integer %q is out of range", l.input[start:l.pos])
		}
		return segment{}, newParseError(l.input, start, "malformed integer %q", l.input[start:l.pos])
	}

	if l.eof() {
		return segment{}, l.errorf("expected a unit after %q", l.input[start:l.pos])
	}
	unit, ok := units[l.input[l.pos]]
	if !ok {
		return segment{}, l.errorf("unknown unit %q", string(l.input[l.pos]))
	}
	l.pos++
	return segment{kind: segOffset, sign: sign, n: n, unit: unit}, nil
}

// round consumes a "/<unit>" segment. The slash has already been seen.
func (l *lexer) round() (segment, error) {
	l.pos++
	if l.eof() {
		return segment{}, l.errorf(`expected a unit after "/"`)
	}
	unit, ok := units[l.input[l.pos]]
	if !ok {
		return segment{}, l.errorf("unknown rounding unit %q", string(l.input[l.pos]))
	}
	l.pos++
	return segment{kind: segRound, unit: unit}, nil
}

// zone consumes a quoted 'IANA/Name' designator, validating the name against
// the timezone database. The opening quote has already been seen.
func (l *lexer) zone() (string, error) {
	end := strings.IndexByte(l.input[l.pos+1:], '\'')
	if end < 0 {
		return "", l.errorf("unterminated timezone designator")
	}
	name := l.input[l.pos+1 : l.pos+1+end]
	if name == "" {
		return "", l.errorf("empty timezone designator")
	}
	if _, err := chronos.Zone(name); err != nil {
		return "", l.errorf("%v", err)
	}
	l.pos += end + 2
	return name, nil
}

// stripSpace drops all whitespace so expressions can be line-wrapped in
// config files.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
