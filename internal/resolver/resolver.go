// Package resolver performs the static scope-analysis pass between parsing
// and evaluation: it precomputes, for every variable-referring expression,
// the lexical distance to the scope that defines it, and enforces rules
// that cannot be checked at parse time (self-referential initializers,
// illegal return/this/super, redeclaration inside a block).
package resolver

import (
	"github.com/loxw-lang/loxw/internal/ast"
	"github.com/loxw-lang/loxw/internal/diagnostics"
	"github.com/loxw-lang/loxw/internal/token"
)

type functionType int

const (
	funcNone functionType = iota
	funcFunction
	funcMethod
	funcInitializer
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// scope maps a name to whether its declaration has finished being
// resolved: false between declare() and define().
type scope map[string]bool

// Resolver walks a parsed statement list and produces the expression→depth
// map the evaluator needs. It holds no reference to any environment: its
// only output is Locals and Errors.
type Resolver struct {
	scopes []scope

	currentFunction functionType
	currentClass    classType

	locals map[int]int
	errors []*diagnostics.SourceError
}

func New() *Resolver {
	return &Resolver{locals: make(map[int]int)}
}

// Resolve walks stmts and returns the populated locals map plus any
// resolution errors.
func Resolve(stmts []ast.Stmt) (map[int]int, []*diagnostics.SourceError) {
	r := New()
	r.resolveStmts(stmts)
	return r.locals, r.errors
}

func (r *Resolver) addError(tok token.Token, code diagnostics.Code, args ...interface{}) {
	r.errors = append(r.errors, diagnostics.New(diagnostics.PhaseResolver, code, tok.Line, tok.Where(), args...))
}

// --- scope stack ---

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, scope{}) }

func (r *Resolver) endScope() { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) peekScope() scope {
	if len(r.scopes) == 0 {
		return nil
	}
	return r.scopes[len(r.scopes)-1]
}

// declare inserts name into the innermost scope as "not yet defined",
// reporting a redeclaration error if the scope already has it.
func (r *Resolver) declare(name token.Token) {
	sc := r.peekScope()
	if sc == nil {
		return // globals are not tracked
	}
	if _, exists := sc[name.Lexeme]; exists {
		r.addError(name, diagnostics.ErrR001)
	}
	sc[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	sc := r.peekScope()
	if sc == nil {
		return
	}
	sc[name.Lexeme] = true
}

// resolveLocal searches the scope stack top-down for name, recording the
// distance from the innermost scope into r.locals when found. An
// unresolved name is left out of the map entirely: the evaluator treats
// that as "look it up in globals."
func (r *Resolver) resolveLocal(exprID int, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[exprID] = len(r.scopes) - 1 - i
			return
		}
	}
}
