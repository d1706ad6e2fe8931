package expr

import (
	"fmt"
	"strconv"
	"strings"
)

// Serialize renders an expression in its canonical wire form: no
// whitespace, operators lower-case, tag names single-quoted with any
// literal quote escaped as \'. The output is byte-stable: structurally
// equal trees serialize identically, and any structural difference
// (operator, argument order, nesting) changes the output. The remote
// evaluator parses exactly this grammar.
func Serialize(e Expr) string {
	var b strings.Builder
	writeCanonical(&b, e)
	return b.String()
}

func writeCanonical(b *strings.Builder, e Expr) {
	switch n := e.(type) {
	case *AmountExpr:
		b.WriteString(strconv.FormatInt(n.Value, 10))
	case *TagExpr:
		b.WriteString("tag('")
		b.WriteString(escapeTagName(n.Name))
		b.WriteString("')")
	case *OpExpr:
		b.WriteString(string(n.Op))
		b.WriteByte('(')
		for i, arg := range n.Args {
			if i > 0 {
				b.WriteByte(',')
			}
			writeCanonical(b, arg)
		}
		b.WriteByte(')')
	default:
		panic(fmt.Sprintf("expr: cannot serialize node %T", e))
	}
}

// PrettyPrint renders an expression for logs and debugging: one argument
// per line, indented by indent*depth spaces, the closing parenthesis at
// the operator's own depth. Token-identical to the canonical form, but
// never used for wire transfer.
func PrettyPrint(e Expr, indent int) string {
	if indent < 0 {
		indent = 0
	}
	var b strings.Builder
	writePretty(&b, e, indent, 0)
	return b.String()
}

func writePretty(b *strings.Builder, e Expr, indent, depth int) {
	switch n := e.(type) {
	case *AmountExpr, *TagExpr:
		writeCanonical(b, n)
	case *OpExpr:
		b.WriteString(string(n.Op))
		b.WriteByte('(')
		for i, arg := range n.Args {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
			b.WriteString(strings.Repeat(" ", indent*(depth+1)))
			writePretty(b, arg, indent, depth+1)
		}
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(" ", indent*depth))
		b.WriteByte(')')
	default:
		panic(fmt.Sprintf("expr: cannot serialize node %T", e))
	}
}

func escapeTagName(name string) string {
	return strings.ReplaceAll(name, "'", `\'`)
}
