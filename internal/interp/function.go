package interp

import (
	"github.com/loxw-lang/loxw/internal/ast"
	"github.com/loxw-lang/loxw/internal/diagnostics"
)

// Function is a user-defined function or method value: a declaration
// paired with the environment it closed over. A bound method is a
// Function whose Closure is a fresh child of the original closure with
// "this" predefined in it. For subclass methods, "super" is not in that
// child: it lives in the original closure, the environment the class
// declaration created around its methods.
type Function struct {
	Declaration   *ast.FunctionStmt
	Closure       *Environment
	IsInitializer bool
}

func (f *Function) Type() ValueType { return FunctionType }
func (f *Function) Inspect() string { return "<fn>" }
func (f *Function) Arity() int      { return len(f.Declaration.Parameters) }

// Bind produces a fresh copy of f whose closure defines "this" as
// instance. Successive binds of the same method return independent
// binding environments that share the same captured instance reference.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.Closure)
	env.Define("this", instance)
	return &Function{Declaration: f.Declaration, Closure: env, IsInitializer: f.IsInitializer}
}

// Call constructs a fresh environment parented by the closure, binds
// parameters into it in order, and executes the body there. A `return`
// inside the body is intercepted here, never by the caller of Call; if
// none fires, the call yields nil — except inside an initializer, which
// always yields the instance bound in its own closure (init's "this")
// regardless of whether it returned explicitly.
func (f *Function) Call(in *Interpreter, args []Value) (Value, *diagnostics.SourceError) {
	env := NewEnclosedEnvironment(f.Closure)
	for i, param := range f.Declaration.Parameters {
		if i < len(args) {
			env.Define(param.Name.Lexeme, args[i])
		}
	}

	out := in.execBlock(f.Declaration.Body, env)
	if out.isError() {
		return nil, out.err
	}

	if f.IsInitializer {
		return f.Closure.GetAt(0, "this"), nil
	}
	if out.isReturn() {
		return out.value, nil
	}
	return NilValue, nil
}
