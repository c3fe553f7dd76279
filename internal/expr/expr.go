package expr

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind classifies evaluation failures.
type Kind int

const (
	Malformed Kind = iota
	DivideByZero
	Overflow
	InvalidOperand
)

func (k Kind) String() string {
	switch k {
	case Malformed:
		return "malformed expression"
	case DivideByZero:
		return "division by zero"
	case Overflow:
		return "result out of range"
	case InvalidOperand:
		return "invalid operand"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error reports why an expression failed to evaluate.
type Error struct {
	Kind Kind
	Text string // the offending token or input, may be empty
}

func (e *Error) Error() string {
	if e.Text == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %q", e.Kind, e.Text)
}

// KindOf extracts the failure kind, or Malformed for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Malformed
}

// IsBlank reports whether text is empty or whitespace only. Evaluate treats
// blank input as 0; callers that require a real value check this first.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// Evaluate parses and evaluates text. Blank input yields 0 without error.
func Evaluate(text string) (float64, error) {
	if IsBlank(text) {
		return 0, nil
	}
	p := &parser{input: text}
	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos < len(p.input) {
		return 0, p.fail(Malformed, p.input[p.pos:])
	}
	return v, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) fail(k Kind, text string) error {
	return &Error{Kind: k, Text: text}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

// expr = term {("+" | "-") term}
func (p *parser) expr() (float64, error) {
	v, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			r, err := p.term()
			if err != nil {
				return 0, err
			}
			v += r
		case '-':
			p.pos++
			r, err := p.term()
			if err != nil {
				return 0, err
			}
			v -= r
		default:
			return p.check(v)
		}
	}
}

// term = unary {("*" | "/") unary}; "**" never reaches here.
func (p *parser) term() (float64, error) {
	v, err := p.unary()
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case p.peek() == '*' && !p.peekPower():
			p.pos++
			r, err := p.unary()
			if err != nil {
				return 0, err
			}
			v *= r
		case p.peek() == '/':
			p.pos++
			r, err := p.unary()
			if err != nil {
				return 0, err
			}
			if r == 0 {
				return 0, p.fail(DivideByZero, "")
			}
			v /= r
		default:
			return p.check(v)
		}
	}
}

// unary = ["+" | "-"] power. Power binds tighter than unary minus, so
// -2**2 is -4.
func (p *parser) unary() (float64, error) {
	switch p.peek() {
	case '-':
		p.pos++
		v, err := p.unary()
		return -v, err
	case '+':
		p.pos++
		return p.unary()
	}
	return p.power()
}

// power = primary ["**" unary]; right associative, exponent may be signed.
func (p *parser) power() (float64, error) {
	v, err := p.primary()
	if err != nil {
		return 0, err
	}
	if p.peekPower() {
		p.pos += 2
		e, err := p.unary()
		if err != nil {
			return 0, err
		}
		r := math.Pow(v, e)
		if math.IsNaN(r) {
			return 0, p.fail(InvalidOperand, fmt.Sprintf("%v**%v", v, e))
		}
		return p.check(r)
	}
	return v, nil
}

func (p *parser) peekPower() bool {
	if p.peek() != '*' {
		return false
	}
	return p.pos+1 < len(p.input) && p.input[p.pos+1] == '*'
}

// primary = number | "(" expr ")"
func (p *parser) primary() (float64, error) {
	c := p.peek()
	switch {
	case c == '(':
		p.pos++
		v, err := p.expr()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, p.fail(Malformed, "missing )")
		}
		p.pos++
		return v, nil
	case c >= '0' && c <= '9' || c == '.':
		return p.number()
	case c == 0:
		return 0, p.fail(Malformed, "unexpected end of expression")
	case isAlpha(c):
		start := p.pos
		for p.pos < len(p.input) && isAlpha(p.input[p.pos]) {
			p.pos++
		}
		return 0, p.fail(InvalidOperand, p.input[start:p.pos])
	}
	return 0, p.fail(Malformed, string(c))
}

func (p *parser) number() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c >= '0' && c <= '9' || c == '.' {
			p.pos++
			continue
		}
		break
	}
	text := p.input[start:p.pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, p.fail(Overflow, text)
		}
		return 0, p.fail(Malformed, text)
	}
	return v, nil
}

// check rejects values that fell out of float64 range.
func (p *parser) check(v float64) (float64, error) {
	if math.IsInf(v, 0) {
		return 0, p.fail(Overflow, "")
	}
	return v, nil
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}
