package ast

import "github.com/loxw-lang/loxw/internal/token"

// Literal is a literal value baked in at parse time: a string, a float64,
// a bool, or nil.
type Literal struct {
	exprBase
	Token token.Token
	Value interface{}
}

func NewLiteral(tok token.Token, value interface{}) *Literal {
	return &Literal{exprBase: newExprBase(), Token: tok, Value: value}
}

func (l *Literal) TokenLiteral() string { return l.Token.Lexeme }

// Grouping is a parenthesized expression, kept distinct from its inner
// expression so the resolver and the evaluator see the explicit grouping.
type Grouping struct {
	exprBase
	Token token.Token
	Inner Expr
}

func NewGrouping(tok token.Token, inner Expr) *Grouping {
	return &Grouping{exprBase: newExprBase(), Token: tok, Inner: inner}
}

func (g *Grouping) TokenLiteral() string { return g.Token.Lexeme }

// Unary is a prefix operator application: -x or !x.
type Unary struct {
	exprBase
	Op    token.Token
	Right Expr
}

func NewUnary(op token.Token, right Expr) *Unary {
	return &Unary{exprBase: newExprBase(), Op: op, Right: right}
}

func (u *Unary) TokenLiteral() string { return u.Op.Lexeme }

// Binary is an arithmetic, comparison or equality operator application.
type Binary struct {
	exprBase
	Left  Expr
	Op    token.Token
	Right Expr
}

func NewBinary(left Expr, op token.Token, right Expr) *Binary {
	return &Binary{exprBase: newExprBase(), Left: left, Op: op, Right: right}
}

func (b *Binary) TokenLiteral() string { return b.Op.Lexeme }

// Logical is a short-circuiting `or`/`and` application.
type Logical struct {
	exprBase
	Left  Expr
	Op    token.Token
	Right Expr
}

func NewLogical(left Expr, op token.Token, right Expr) *Logical {
	return &Logical{exprBase: newExprBase(), Left: left, Op: op, Right: right}
}

func (l *Logical) TokenLiteral() string { return l.Op.Lexeme }

// Variable is a reference to a named binding.
type Variable struct {
	exprBase
	Name token.Token
}

func NewVariable(name token.Token) *Variable {
	return &Variable{exprBase: newExprBase(), Name: name}
}

func (v *Variable) TokenLiteral() string { return v.Name.Lexeme }

// Assign stores a new value into an existing binding and yields that
// value.
type Assign struct {
	exprBase
	Name  token.Token
	Value Expr
}

func NewAssign(name token.Token, value Expr) *Assign {
	return &Assign{exprBase: newExprBase(), Name: name, Value: value}
}

func (a *Assign) TokenLiteral() string { return a.Name.Lexeme }

// Call invokes callee with arguments. Paren is the closing-paren token,
// used to anchor arity-mismatch errors.
type Call struct {
	exprBase
	Callee    Expr
	Paren     token.Token
	Arguments []Expr
}

func NewCall(callee Expr, paren token.Token, args []Expr) *Call {
	return &Call{exprBase: newExprBase(), Callee: callee, Paren: paren, Arguments: args}
}

func (c *Call) TokenLiteral() string { return c.Paren.Lexeme }

// Get reads a property or method off an instance.
type Get struct {
	exprBase
	Object Expr
	Name   token.Token
}

func NewGet(object Expr, name token.Token) *Get {
	return &Get{exprBase: newExprBase(), Object: object, Name: name}
}

func (g *Get) TokenLiteral() string { return g.Name.Lexeme }

// Set stores a value into a property on an instance.
type Set struct {
	exprBase
	Object Expr
	Name   token.Token
	Value  Expr
}

func NewSet(object Expr, name token.Token, value Expr) *Set {
	return &Set{exprBase: newExprBase(), Object: object, Name: name, Value: value}
}

func (s *Set) TokenLiteral() string { return s.Name.Lexeme }

// This is the `this` keyword used inside a method body.
type This struct {
	exprBase
	Keyword token.Token
}

func NewThis(keyword token.Token) *This {
	return &This{exprBase: newExprBase(), Keyword: keyword}
}

func (t *This) TokenLiteral() string { return t.Keyword.Lexeme }

// Super is a `super.method` reference inside a subclass method body.
type Super struct {
	exprBase
	Keyword token.Token
	Method  token.Token
}

func NewSuper(keyword, method token.Token) *Super {
	return &Super{exprBase: newExprBase(), Keyword: keyword, Method: method}
}

func (s *Super) TokenLiteral() string { return s.Keyword.Lexeme }
