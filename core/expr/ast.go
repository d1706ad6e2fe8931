// Package expr - Pricing expression AST
// Builders declare billing arithmetic, they never compute it.
// The serialized form is evaluated remotely against live tag values.
package expr

// Operator identifies an arithmetic combination of arguments,
// applied left-to-right.
type Operator string

const (
	OpAdd Operator = "add"
	OpSub Operator = "sub"
	OpMul Operator = "mul"
	OpDiv Operator = "div"
)

// String returns the lower-case wire name of the operator.
func (o Operator) String() string {
	return string(o)
}

// Expr is the interface implemented by all pricing expression nodes.
// The variant set is closed: AmountExpr, TagExpr, OpExpr.
type Expr interface {
	expr()
}

// AmountExpr is a literal quantity in the smallest currency unit (cents).
type AmountExpr struct {
	Value int64
}

// TagExpr is a symbolic price tag reference. The tag is resolved to a
// value by the remote evaluator; the SDK never knows the amount behind it.
type TagExpr struct {
	Name string
}

// OpExpr combines two or more sub-expressions with an arithmetic operator.
// Argument order is meaningful for sub and div.
type OpExpr struct {
	Op   Operator
	Args []Expr
}

func (*AmountExpr) expr() {}
func (*TagExpr) expr()    {}
func (*OpExpr) expr()     {}
