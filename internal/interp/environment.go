package interp

import (
	"github.com/dolthub/swiss"
	"github.com/loxw-lang/loxw/internal/diagnostics"
	"github.com/loxw-lang/loxw/internal/token"
)

// Environment is one lexically nested name→value scope. The global
// environment has no parent; a function's closure is the environment
// active at the point it was declared, kept alive for as long as the
// function value is reachable.
//
// values is a swiss.Map rather than a built-in Go map: every variable
// reference in the evaluator's innermost loop goes through Get/GetAt, and
// swiss tables keep that lookup flat and cache-friendly even as a scope's
// binding count grows.
type Environment struct {
	enclosing *Environment
	values    *swiss.Map[string, Value]
}

func NewEnvironment() *Environment {
	return &Environment{values: swiss.NewMap[string, Value](8)}
}

func NewEnclosedEnvironment(parent *Environment) *Environment {
	return &Environment{enclosing: parent, values: swiss.NewMap[string, Value](8)}
}

// Define inserts or overwrites name in this environment only.
// Redefinition at the same scope is permitted at runtime; the resolver
// is what catches it for non-global scopes.
func (e *Environment) Define(name string, v Value) {
	e.values.Put(name, v)
}

// Get walks the environment chain starting here, returning the first
// binding found.
func (e *Environment) Get(name token.Token) (Value, *diagnostics.SourceError) {
	if v, ok := e.values.Get(name.Lexeme); ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, diagnostics.New(diagnostics.PhaseRuntime, diagnostics.ErrX001, name.Line, name.Where(), name.Lexeme)
}

// Assign walks the environment chain, overwriting the first binding
// found. It fails if name is not defined anywhere in the chain.
func (e *Environment) Assign(name token.Token, v Value) *diagnostics.SourceError {
	if _, ok := e.values.Get(name.Lexeme); ok {
		e.values.Put(name.Lexeme, v)
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, v)
	}
	return diagnostics.New(diagnostics.PhaseRuntime, diagnostics.ErrX001, name.Line, name.Where(), name.Lexeme)
}

// ancestor walks exactly distance parent links up the chain.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt reads name from the environment exactly distance scopes up, as
// recorded by the resolver. The binding is assumed to exist there —
// anything else is an internal invariant violation, not a user error.
func (e *Environment) GetAt(distance int, name string) Value {
	env := e.ancestor(distance)
	v, ok := env.values.Get(name)
	if !ok {
		panic("interp: resolver recorded a binding that isn't there: " + name)
	}
	return v
}

// AssignAt is the write counterpart of GetAt.
func (e *Environment) AssignAt(distance int, name string, v Value) {
	e.ancestor(distance).values.Put(name, v)
}
