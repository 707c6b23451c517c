package ast

import (
	"fmt"
	"strings"
)

// Dump renders a tree as an indented, deterministic outline. It is meant
// for diagnostics and snapshot tests, not for round-tripping source text.
func Dump(n Node) string {
	var b strings.Builder
	dump(&b, n, 0)
	return b.String()
}

func dump(b *strings.Builder, n Node, depth int) {
	indent := strings.Repeat("  ", depth)

	switch n := n.(type) {
	case *NumberLiteral:
		fmt.Fprintf(b, "%sNumber %g\n", indent, n.Value)
	case *Variable:
		fmt.Fprintf(b, "%sVariable %s\n", indent, n.Name)
	case *BinaryOperation:
		fmt.Fprintf(b, "%sBinary %s\n", indent, n.Op)
		dump(b, n.Left, depth+1)
		dump(b, n.Right, depth+1)
	case *UnaryOperation:
		fmt.Fprintf(b, "%sUnary %s\n", indent, n.Op)
		dump(b, n.Operand, depth+1)
	case *FunctionCall:
		fmt.Fprintf(b, "%sCall %s\n", indent, n.Name)
		for _, arg := range n.Args {
			dump(b, arg, depth+1)
		}
	case *TernaryConditional:
		fmt.Fprintf(b, "%sTernary\n", indent)
		dump(b, n.Condition, depth+1)
		dump(b, n.TrueExpr, depth+1)
		dump(b, n.FalseExpr, depth+1)
	case *Assignment:
		fmt.Fprintf(b, "%sAssign %s\n", indent, n.Target)
		dump(b, n.Value, depth+1)
	case *CommaExpression:
		fmt.Fprintf(b, "%sComma\n", indent)
		dump(b, n.Left, depth+1)
		dump(b, n.Right, depth+1)
	default:
		fmt.Fprintf(b, "%s<unknown %T>\n", indent, n)
	}
}
