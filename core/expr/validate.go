package expr

import (
	"regexp"
	"strings"
)

// tagNamePattern is the allowed shape of a price tag name: a leading
// letter or underscore, then letters, digits, underscores, or hyphens.
var tagNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// Validate walks an expression tree depth-first, left-to-right, and
// returns a *Error describing the first invariant violation it finds.
// Expressions produced by the builders in this package are already
// validated; Validate exists for ad-hoc trees (for example, nodes
// decoded from untrusted JSON) fed in from outside the builder path.
//
// Validation is deliberately asymmetric: anything decidable without
// external state is checked here (tag name shape, argument counts,
// literal-zero divisors), while anything requiring live tag values
// (tag resolution, tag-valued divisors, overflow, sign of the result)
// is left to the remote evaluator.
func Validate(e Expr) error {
	switch n := e.(type) {
	case nil:
		return errorf("expression is nil")
	case *AmountExpr:
		return validateAmount(n)
	case *TagExpr:
		return validateTag(n)
	case *OpExpr:
		return validateOp(n)
	default:
		return errorf("unknown expression node %T", e)
	}
}

// IsValid reports whether Validate accepts the expression.
func IsValid(e Expr) bool {
	return Validate(e) == nil
}

func validateAmount(n *AmountExpr) error {
	if n == nil {
		return errorf("expression is nil")
	}
	// Value is an int64: finiteness and integrality are guaranteed by
	// the type. Inputs that could violate them (float operands) are
	// rejected at coercion, see toExpr.
	return nil
}

func validateTag(n *TagExpr) error {
	if n == nil {
		return errorf("expression is nil")
	}
	if n.Name == "" {
		return errorf("tag name must not be empty")
	}
	if trimmed := strings.TrimSpace(n.Name); trimmed != n.Name {
		if trimmed == "" {
			return errorf("tag name must not be whitespace-only")
		}
		return errorf("tag name %q must not have leading or trailing whitespace", n.Name)
	}
	if !tagNamePattern.MatchString(n.Name) {
		return errorf("tag name %q must start with a letter or underscore and contain only letters, digits, underscores, or hyphens", n.Name)
	}
	return nil
}

func validateOp(n *OpExpr) error {
	if n == nil {
		return errorf("expression is nil")
	}
	switch n.Op {
	case OpAdd, OpSub, OpMul, OpDiv:
	default:
		return errorf("unknown operator %q", string(n.Op))
	}
	if len(n.Args) < 2 {
		return errorf("%s requires at least 2 arguments, got %d", n.Op, len(n.Args))
	}
	for _, arg := range n.Args {
		if err := Validate(arg); err != nil {
			return err
		}
	}
	if n.Op == OpDiv {
		// Only literal zeros are rejected. A tag or nested expression in
		// divisor position is accepted: its value is known only to the
		// backend, which performs its own division-by-zero handling.
		for i, arg := range n.Args[1:] {
			if a, ok := arg.(*AmountExpr); ok && a.Value == 0 {
				return errorf("division by zero: argument at position %d is a literal zero", i+2)
			}
		}
	}
	return nil
}
