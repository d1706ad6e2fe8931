package expr

import (
	"math"

	"github.com/shopspring/decimal"
)

// The builders below are the construction path for pricing expressions.
// Each one assembles a node and validates it before returning, so every
// expression handed back to a caller is well-formed: the serializer and
// any downstream consumer never re-validate.

// Operand is accepted anywhere a sub-expression is expected: an Expr, or
// a raw numeric literal (int, int32, int64, float64) that is wrapped as
// an AmountExpr. Float inputs must be finite and integral cents.
type Operand interface{}

// Amount builds a literal amount of the given cents.
func Amount(cents int64) (*AmountExpr, error) {
	n := &AmountExpr{Value: cents}
	if err := Validate(n); err != nil {
		return nil, err
	}
	return n, nil
}

// AmountOf builds a literal amount from a float, rejecting non-finite
// values and fractional cents.
func AmountOf(v float64) (*AmountExpr, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, errorf("amount must be a finite number, got %v", v)
	}
	if v != math.Trunc(v) {
		return nil, errorf("amount must be an integer (cents), got %v", v)
	}
	// 1<<63 is the first float64 value outside int64.
	if v >= float64(1<<63) || v < -float64(1<<63) {
		return nil, errorf("amount %v overflows the cents range", v)
	}
	return Amount(int64(v))
}

// AmountFromDecimal builds a literal amount from an exact decimal cents
// value. Fractional cents are rejected.
func AmountFromDecimal(d decimal.Decimal) (*AmountExpr, error) {
	if !d.IsInteger() {
		return nil, errorf("amount must be an integer (cents), got %s", d.String())
	}
	if !d.BigInt().IsInt64() {
		return nil, errorf("amount %s overflows the cents range", d.String())
	}
	return Amount(d.IntPart())
}

// Tag builds a reference to a named price tag. The name must be
// non-empty, free of boundary whitespace, and match
// ^[A-Za-z_][A-Za-z0-9_-]*$.
func Tag(name string) (*TagExpr, error) {
	n := &TagExpr{Name: name}
	if err := Validate(n); err != nil {
		return nil, err
	}
	return n, nil
}

// Add builds an addition over two or more operands.
func Add(args ...Operand) (*OpExpr, error) {
	return op(OpAdd, args)
}

// Sub builds a left-to-right subtraction over two or more operands.
func Sub(args ...Operand) (*OpExpr, error) {
	return op(OpSub, args)
}

// Mul builds a multiplication over two or more operands.
func Mul(args ...Operand) (*OpExpr, error) {
	return op(OpMul, args)
}

// Div builds a left-to-right division over two or more operands. A
// literal-zero divisor is rejected here; a tag or nested expression in
// divisor position is not (the backend checks those against live values).
func Div(args ...Operand) (*OpExpr, error) {
	return op(OpDiv, args)
}

func op(operator Operator, args []Operand) (*OpExpr, error) {
	exprs := make([]Expr, 0, len(args))
	for _, arg := range args {
		e, err := toExpr(arg)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	n := &OpExpr{Op: operator, Args: exprs}
	if err := Validate(n); err != nil {
		return nil, err
	}
	return n, nil
}

// toExpr coerces an operand to an expression node, wrapping raw numeric
// literals as amounts.
func toExpr(arg Operand) (Expr, error) {
	switch v := arg.(type) {
	case Expr:
		return v, nil
	case int:
		return Amount(int64(v))
	case int32:
		return Amount(int64(v))
	case int64:
		return Amount(v)
	case float64:
		return AmountOf(v)
	case decimal.Decimal:
		return AmountFromDecimal(v)
	default:
		return nil, errorf("operand must be an expression or a numeric literal, got %T", arg)
	}
}

// Must unwraps a builder result, panicking on error. Intended for
// expressions whose validity is known at compile time.
func Must[E Expr](e E, err error) E {
	if err != nil {
		panic(err)
	}
	return e
}
