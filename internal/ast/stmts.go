package ast

import "github.com/loxw-lang/loxw/internal/token"

type stmtBase struct{}

func (stmtBase) stmtNode() {}

// ExpressionStmt evaluates expr purely for its side effects.
type ExpressionStmt struct {
	stmtBase
	Expression Expr
}

func (s *ExpressionStmt) TokenLiteral() string { return s.Expression.TokenLiteral() }

// PrintStmt evaluates Expression and emits its display form as one line.
type PrintStmt struct {
	stmtBase
	Token      token.Token
	Expression Expr
}

func (s *PrintStmt) TokenLiteral() string { return s.Token.Lexeme }

// VarStmt declares Name, optionally initialized by Initializer (nil means
// the binding starts out nil).
type VarStmt struct {
	stmtBase
	Name        token.Token
	Initializer Expr
}

func (s *VarStmt) TokenLiteral() string { return s.Name.Lexeme }

// BlockStmt introduces a new lexical scope around Statements.
type BlockStmt struct {
	stmtBase
	Statements []Stmt
}

func (s *BlockStmt) TokenLiteral() string { return "{" }

// IfStmt executes Then when Condition is truthy, else Else (which may be
// nil).
type IfStmt struct {
	stmtBase
	Condition Expr
	Then      Stmt
	Else      Stmt
}

func (s *IfStmt) TokenLiteral() string { return "if" }

// WhileStmt repeats Body while Condition is truthy.
type WhileStmt struct {
	stmtBase
	Condition Expr
	Body      Stmt
}

func (s *WhileStmt) TokenLiteral() string { return "while" }

// Parameter is a single function or method parameter.
type Parameter struct {
	Name token.Token
}

// FunctionStmt declares a named function (or, nested inside a ClassStmt's
// Methods, a method — the resolver tells them apart by context, not by a
// field on this struct).
type FunctionStmt struct {
	stmtBase
	Name       token.Token
	Parameters []Parameter
	Body       []Stmt
}

func (s *FunctionStmt) TokenLiteral() string { return s.Name.Lexeme }

// ReturnStmt unwinds the current function call, yielding Value (nil means
// return the unit value, nil).
type ReturnStmt struct {
	stmtBase
	Keyword token.Token
	Value   Expr
}

func (s *ReturnStmt) TokenLiteral() string { return s.Keyword.Lexeme }

// ClassStmt declares a class, optionally extending Superclass.
type ClassStmt struct {
	stmtBase
	Name       token.Token
	Superclass *Variable // nil when there is none
	Methods    []*FunctionStmt
}

func (s *ClassStmt) TokenLiteral() string { return s.Name.Lexeme }
