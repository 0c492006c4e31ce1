// Package ast defines the expression and statement sum types the parser
// produces, the resolver annotates, and the evaluator walks.
package ast

// Node is the base interface implemented by every expression and
// statement node.
type Node interface {
	TokenLiteral() string
}

// Expr is any expression node. Every Expr carries a process-unique ID,
// assigned at parse time (see nextExprID), which the resolver uses as the
// key into its expression→scope-distance map. Two structurally identical
// literals parsed at different source positions get distinct IDs.
type Expr interface {
	Node
	exprNode()
	ID() int
}

// Stmt is any statement node.
type Stmt interface {
	Node
	stmtNode()
}

// exprID is the monotonic counter backing every expression's stable
// identity. It is intentionally package-level and not reset between
// parses within one process: the resolver's map is rebuilt fresh for
// every Context, so only uniqueness, not compactness, is required.
var exprID int

func nextExprID() int {
	exprID++
	return exprID
}

// exprBase factors out the ID bookkeeping every expression variant needs.
type exprBase struct {
	id int
}

func newExprBase() exprBase { return exprBase{id: nextExprID()} }

func (b exprBase) ID() int { return b.id }

func (b exprBase) exprNode() {}
