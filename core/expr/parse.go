package expr

import (
	"fmt"
	"strconv"
)

// SyntaxError reports malformed expression text handed to Parse. It is
// distinct from Error, which reports invariant violations in a
// syntactically well-formed tree.
type SyntaxError struct {
	Offset  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Message)
}

// Parse reads an expression in the canonical grammar and returns the
// validated tree. Whitespace between tokens is tolerated, so the
// pretty-printed form parses too. Parsed nodes go through the regular
// builders: a syntactically valid input that violates an expression
// invariant (bad tag name, literal-zero divisor) fails with *Error.
func Parse(input string) (Expr, error) {
	p := &parser{input: input}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return nil, p.errf("unexpected input after expression")
	}
	return e, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) errf(format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Offset: p.pos, Message: fmt.Sprintf(format, args...)}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) expect(c byte) error {
	p.skipSpace()
	if p.pos >= len(p.input) || p.input[p.pos] != c {
		return p.errf("expected %q", string(c))
	}
	p.pos++
	return nil
}

func (p *parser) parseExpr() (Expr, error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return nil, p.errf("expected expression")
	}
	c := p.input[p.pos]
	switch {
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseAmount()
	case c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
		return p.parseCall()
	default:
		return nil, p.errf("unexpected character %q", string(c))
	}
}

func (p *parser) parseAmount() (Expr, error) {
	start := p.pos
	if p.input[p.pos] == '-' {
		p.pos++
	}
	for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}
	lit := p.input[start:p.pos]
	v, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		p.pos = start
		return nil, p.errf("invalid amount literal %q", lit)
	}
	return Amount(v)
}

func (p *parser) parseCall() (Expr, error) {
	start := p.pos
	for p.pos < len(p.input) && isIdentChar(p.input[p.pos]) {
		p.pos++
	}
	name := p.input[start:p.pos]
	if name == "tag" {
		return p.parseTagRef()
	}
	switch Operator(name) {
	case OpAdd, OpSub, OpMul, OpDiv:
	default:
		p.pos = start
		return nil, p.errf("unknown function %q", name)
	}
	if err := p.expect('('); err != nil {
		return nil, err
	}
	var args []Operand
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		p.skipSpace()
		if p.pos < len(p.input) && p.input[p.pos] == ',' {
			p.pos++
			continue
		}
		break
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}
	return op(Operator(name), args)
}

func (p *parser) parseTagRef() (Expr, error) {
	if err := p.expect('('); err != nil {
		return nil, err
	}
	if err := p.expect('\''); err != nil {
		return nil, err
	}
	var name []byte
	for {
		if p.pos >= len(p.input) {
			return nil, p.errf("unterminated tag name")
		}
		c := p.input[p.pos]
		if c == '\\' && p.pos+1 < len(p.input) && p.input[p.pos+1] == '\'' {
			name = append(name, '\'')
			p.pos += 2
			continue
		}
		if c == '\'' {
			p.pos++
			break
		}
		name = append(name, c)
		p.pos++
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}
	return Tag(string(name))
}

func isIdentChar(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
