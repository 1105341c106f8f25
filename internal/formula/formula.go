// Package formula compiles and evaluates user-supplied lightbox area
// formulas. The accepted language is deliberately tiny: numeric literals,
// the variables w/width, h/height, d/depth, the four basic operators, unary
// minus, and parentheses. There are no calls, no assignment, and no loops,
// so evaluation always terminates and cannot touch outside state.
package formula

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Expression is a compiled area formula ready for evaluation.
type Expression struct {
	source string
	root   node
}

// Source returns the original formula text.
func (e *Expression) Source() string {
	return e.source
}

// Eval evaluates the formula for the given dimensions in centimeters. It
// returns an error when the result is not a finite number, e.g. after a
// division by zero.
func (e *Expression) Eval(w, h, d float64) (float64, error) {
	v := e.root.eval(w, h, d)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("formula %q does not produce a finite number", e.source)
	}
	return v, nil
}

type node interface {
	eval(w, h, d float64) float64
}

type literal float64

func (l literal) eval(_, _, _ float64) float64 { return float64(l) }

// variable indices into the (w, h, d) triple.
type variable int

const (
	varWidth variable = iota
	varHeight
	varDepth
)

func (v variable) eval(w, h, d float64) float64 {
	switch v {
	case varWidth:
		return w
	case varHeight:
		return h
	default:
		return d
	}
}

type unary struct {
	operand node
}

func (u unary) eval(w, h, d float64) float64 { return -u.operand.eval(w, h, d) }

type binary struct {
	op          byte
	left, right node
}

func (b binary) eval(w, h, d float64) float64 {
	l := b.left.eval(w, h, d)
	r := b.right.eval(w, h, d)
	switch b.op {
	case '+':
		return l + r
	case '-':
		return l - r
	case '*':
		return l * r
	default:
		return l / r
	}
}

// Parse compiles a formula text into an Expression. It rejects anything
// outside the grammar, including unknown identifiers.
func Parse(text string) (*Expression, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("formula is empty")
	}
	p := &parser{input: trimmed}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.skipSpaces()
	if p.pos < len(p.input) {
		return nil, fmt.Errorf("unexpected %q at position %d", p.input[p.pos], p.pos)
	}
	return &Expression{source: trimmed, root: root}, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) peek() (byte, bool) {
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

// expr := term (('+'|'-') term)*
func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		c, ok := p.peek()
		if !ok || (c != '+' && c != '-') {
			return left, nil
		}
		p.pos++
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = binary{op: c, left: left, right: right}
	}
}

// term := unary (('*'|'/') unary)*
func (p *parser) parseTerm() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		c, ok := p.peek()
		if !ok || (c != '*' && c != '/') {
			return left, nil
		}
		p.pos++
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binary{op: c, left: left, right: right}
	}
}

// unary := '-' unary | primary
func (p *parser) parseUnary() (node, error) {
	if c, ok := p.peek(); ok && c == '-' {
		p.pos++
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return unary{operand: operand}, nil
	}
	return p.parsePrimary()
}

// primary := NUMBER | IDENT | '(' expr ')'
func (p *parser) parsePrimary() (node, error) {
	c, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("unexpected end of formula")
	}

	if c == '(' {
		p.pos++
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if c, ok := p.peek(); !ok || c != ')' {
			return nil, fmt.Errorf("missing closing parenthesis")
		}
		p.pos++
		return inner, nil
	}

	if c >= '0' && c <= '9' || c == '.' {
		return p.parseNumber()
	}

	if isIdentStart(rune(c)) {
		return p.parseIdent()
	}

	return nil, fmt.Errorf("unexpected %q at position %d", c, p.pos)
}

func (p *parser) parseNumber() (node, error) {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c >= '0' && c <= '9' || c == '.' {
			p.pos++
			continue
		}
		break
	}
	v, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q", p.input[start:p.pos])
	}
	return literal(v), nil
}

func (p *parser) parseIdent() (node, error) {
	start := p.pos
	for p.pos < len(p.input) && isIdentPart(rune(p.input[p.pos])) {
		p.pos++
	}
	name := p.input[start:p.pos]
	switch strings.ToLower(name) {
	case "w", "width":
		return varWidth, nil
	case "h", "height":
		return varHeight, nil
	case "d", "depth":
		return varDepth, nil
	}
	return nil, fmt.Errorf("unknown identifier %q (only w, h and d are allowed)", name)
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
