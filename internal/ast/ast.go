// Package ast defines the immutable tree representation of a parsed
// expression. Trees are built once by the parser and may be evaluated any
// number of times without mutation; every node carries the source position
// it was parsed from so that later failures can point back at the text.
package ast

// Node is implemented by every expression tree node. The set of
// implementations is closed: evaluation dispatches over it with an
// exhaustive type switch.
type Node interface {
	Pos() Position
	node()
}

// BinaryOp identifies a binary operator.
type BinaryOp string

const (
	OpAdd BinaryOp = "+"
	OpSub BinaryOp = "-"
	OpMul BinaryOp = "*"
	OpDiv BinaryOp = "/"
	OpMod BinaryOp = "%"
	OpPow BinaryOp = "**"

	OpLt BinaryOp = "<"
	OpLe BinaryOp = "<="
	OpGt BinaryOp = ">"
	OpGe BinaryOp = ">="
	OpEq BinaryOp = "=="
	OpNe BinaryOp = "!="

	OpAnd BinaryOp = "&&"
	OpOr  BinaryOp = "||"

	OpBitAnd BinaryOp = "&"
	OpBitOr  BinaryOp = "|"
	OpBitXor BinaryOp = "^"
)

// UnaryOp identifies a unary operator.
type UnaryOp string

const (
	OpNegate UnaryOp = "-"
	OpPlus   UnaryOp = "+"
	OpNot    UnaryOp = "!"
	OpBitNot UnaryOp = "~"
)

// NumberLiteral is a literal 64-bit floating point value.
type NumberLiteral struct {
	Value    float64
	Position Position
}

// Variable references a named binding in the evaluation context.
type Variable struct {
	Name     string
	Position Position
}

// BinaryOperation applies a binary operator to two sub-expressions.
type BinaryOperation struct {
	Op       BinaryOp
	Left     Node
	Right    Node
	Position Position
}

// UnaryOperation applies a unary operator to one sub-expression.
type UnaryOperation struct {
	Op       UnaryOp
	Operand  Node
	Position Position
}

// FunctionCall invokes a named function with ordered argument expressions.
type FunctionCall struct {
	Name     string
	Args     []Node
	Position Position
}

// TernaryConditional selects one of two branches based on a condition.
// Only the taken branch is evaluated.
type TernaryConditional struct {
	Condition Node
	TrueExpr  Node
	FalseExpr Node
	Position  Position
}

// Assignment writes the value expression into the named variable and
// yields the written value. Assignment is itself an expression and may
// appear anywhere a sub-expression is legal.
type Assignment struct {
	Target   string
	Value    Node
	Position Position
}

// CommaExpression evaluates Left for its side effects, discards its value
// and yields the value of Right.
type CommaExpression struct {
	Left     Node
	Right    Node
	Position Position
}

func (n *NumberLiteral) Pos() Position      { return n.Position }
func (n *Variable) Pos() Position           { return n.Position }
func (n *BinaryOperation) Pos() Position    { return n.Position }
func (n *UnaryOperation) Pos() Position     { return n.Position }
func (n *FunctionCall) Pos() Position       { return n.Position }
func (n *TernaryConditional) Pos() Position { return n.Position }
func (n *Assignment) Pos() Position         { return n.Position }
func (n *CommaExpression) Pos() Position    { return n.Position }

func (n *NumberLiteral) node()      {}
func (n *Variable) node()           {}
func (n *BinaryOperation) node()    {}
func (n *UnaryOperation) node()     {}
func (n *FunctionCall) node()       {}
func (n *TernaryConditional) node() {}
func (n *Assignment) node()         {}
func (n *CommaExpression) node()    {}
