// Package calc parses and evaluates spoken arithmetic expressions.
//
// The evaluator is a small recursive-descent parser over numeric literals,
// + - * / ** and parentheses. Input passes a character whitelist before any
// parsing happens; this is a sandboxing boundary, not a general interpreter.
package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrDivideByZero reports a zero divisor anywhere in the expression.
	ErrDivideByZero = errors.New("division by zero")
	// ErrDisallowed reports input containing characters outside the whitelist.
	ErrDisallowed = errors.New("expression contains disallowed characters")
	// ErrExponent reports an exponent beyond the permitted magnitude.
	ErrExponent = errors.New("exponent too large")
)

const allowedChars = "0123456789+-*/.() "

// maxExponent bounds ** to keep evaluation cheap and results finite.
const maxExponent = 1000

// triggerWords are dropped from spoken input before operator substitution.
var triggerWords = map[string]struct{}{
	"calculate": {}, "what": {}, "whats": {}, "what's": {}, "is": {},
	"the": {}, "math": {}, "equals": {}, "please": {}, "result": {},
}

// substitutions maps spoken operator phrases to symbols. Longer phrases come
// first so "divided by" is consumed before "divide".
var substitutions = [][2]string{
	{"to the power of", "**"},
	{"power of", "**"},
	{"multiplied by", "*"},
	{"divided by", "/"},
	{"multiply", "*"},
	{"divide", "/"},
	{"times", "*"},
	{"plus", "+"},
	{"minus", "-"},
	{"squared", "**2"},
	{"cubed", "**3"},
	{"percent", "/100"},
	{"point", "."},
	{"x", "*"},
	{"over", "/"},
}

// Prepare turns a spoken utterance into a symbolic expression: trigger words
// removed, operator words substituted.
func Prepare(raw string) string {
	var kept []string
	for _, token := range strings.Fields(strings.ToLower(raw)) {
		token = strings.Trim(token, ",?!;:")
		if _, skip := triggerWords[token]; skip {
			continue
		}
		kept = append(kept, token)
	}
	expr := strings.Join(kept, " ")

	for _, sub := range substitutions {
		expr = replaceWordAll(expr, sub[0], sub[1])
	}
	return strings.TrimSpace(expr)
}

// replaceWordAll substitutes phrase occurrences bounded by spaces or ends.
func replaceWordAll(text, phrase, symbol string) string {
	padded := " " + text + " "
	padded = strings.ReplaceAll(padded, " "+phrase+" ", " "+symbol+" ")
	return strings.TrimSpace(padded)
}

// Evaluate checks the whitelist and evaluates the arithmetic expression.
func Evaluate(expr string) (float64, error) {
	for _, r := range expr {
		if !strings.ContainsRune(allowedChars, r) {
			return 0, ErrDisallowed
		}
	}

	p := parser{input: expr}
	v, err := p.expression()
	if err != nil {
		return 0, err
	}
	p.skipSpaces()
	if p.pos != len(p.input) {
		return 0, fmt.Errorf("unexpected %q at position %d", p.input[p.pos], p.pos)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("result is not a finite number")
	}
	return v, nil
}

// Format renders whole results as integers, everything else with at most
// eight decimal places.
func Format(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	rounded := math.Round(v*1e8) / 1e8
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// parser is a recursive-descent evaluator with standard precedence:
// expression < term < power < unary < primary, with ** right-associative.
type parser struct {
	input string
	pos   int
}

func (p *parser) expression() (float64, error) {
	left, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpaces()
		switch {
		case p.accept('+'):
			right, err := p.term()
			if err != nil {
				return 0, err
			}
			left += right
		case p.accept('-'):
			right, err := p.term()
			if err != nil {
				return 0, err
			}
			left -= right
		default:
			return left, nil
		}
	}
}

func (p *parser) term() (float64, error) {
	left, err := p.unary()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpaces()
		switch {
		case p.peekIs("**"):
			// handled inside unary/power; ** never starts a term operator
			return left, nil
		case p.accept('*'):
			right, err := p.unary()
			if err != nil {
				return 0, err
			}
			left *= right
		case p.accept('/'):
			right, err := p.unary()
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, ErrDivideByZero
			}
			left /= right
		default:
			return left, nil
		}
	}
}

func (p *parser) unary() (float64, error) {
	p.skipSpaces()
	if p.accept('-') {
		v, err := p.unary()
		if err != nil {
			return 0, err
		}
		return -v, nil
	}
	return p.power()
}

func (p *parser) power() (float64, error) {
	base, err := p.primary()
	if err != nil {
		return 0, err
	}
	p.skipSpaces()
	if !p.peekIs("**") {
		return base, nil
	}
	p.pos += 2

	exp, err := p.unary()
	if err != nil {
		return 0, err
	}
	if math.Abs(exp) > maxExponent {
		return 0, ErrExponent
	}
	return math.Pow(base, exp), nil
}

func (p *parser) primary() (float64, error) {
	p.skipSpaces()
	if p.accept('(') {
		v, err := p.expression()
		if err != nil {
			return 0, err
		}
		p.skipSpaces()
		if !p.accept(')') {
			return 0, fmt.Errorf("missing closing parenthesis")
		}
		return v, nil
	}

	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if (c < '0' || c > '9') && c != '.' {
			break
		}
		p.pos++
	}
	if start == p.pos {
		return 0, fmt.Errorf("expected a number at position %d", start)
	}

	v, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", p.input[start:p.pos])
	}
	return v, nil
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

func (p *parser) accept(c byte) bool {
	if p.pos < len(p.input) && p.input[p.pos] == c {
		// '*' must not consume the first half of "**"
		if c == '*' && p.peekIs("**") {
			return false
		}
		p.pos++
		return true
	}
	return false
}

func (p *parser) peekIs(s string) bool {
	return strings.HasPrefix(p.input[p.pos:], s)
}
