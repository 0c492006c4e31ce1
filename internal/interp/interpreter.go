package interp

import (
	"fmt"
	"os"

	"github.com/loxw-lang/loxw/internal/ast"
	"github.com/loxw-lang/loxw/internal/diagnostics"
	"github.com/loxw-lang/loxw/internal/token"
)

// Printer is the evaluator's only output collaborator: one operation,
// emit a line of text. print statements are the sole caller.
type Printer interface {
	Print(line string)
}

// StdoutPrinter writes each line to os.Stdout, as the REPL and file
// runner both want by default.
type StdoutPrinter struct{}

func (StdoutPrinter) Print(line string) { fmt.Println(line) }

// Reporter receives runtime errors as the interpreter discovers them, one
// top-level statement at a time. The default writes to stderr; tests
// substitute a collector.
type Reporter interface {
	Report(err *diagnostics.SourceError)
}

// StderrReporter writes each error's formatted message to os.Stderr.
type StderrReporter struct{}

func (StderrReporter) Report(err *diagnostics.SourceError) {
	fmt.Fprintln(os.Stderr, err.Error())
}

// outcomeKind tags how a statement's evaluation completed.
type outcomeKind int

const (
	outcomeNormal outcomeKind = iota
	outcomeReturn
	outcomeError
)

// outcome is the tagged control-flow carrier §9 calls for: every
// statement-evaluation operation returns one of these rather than
// relying on panics to unwind a `return`.
type outcome struct {
	kind  outcomeKind
	value Value
	err   *diagnostics.SourceError
}

func normalOutcome() outcome                             { return outcome{kind: outcomeNormal} }
func returnOutcome(v Value) outcome                      { return outcome{kind: outcomeReturn, value: v} }
func errorOutcome(err *diagnostics.SourceError) outcome  { return outcome{kind: outcomeError, err: err} }

func (o outcome) isError() bool  { return o.kind == outcomeError }
func (o outcome) isReturn() bool { return o.kind == outcomeReturn }

// Interpreter walks a resolved statement list, evaluating it for effect.
type Interpreter struct {
	globals     *Environment
	environment *Environment
	locals      map[int]int

	printer  Printer
	reporter Reporter

	// HadRuntimeError is set once any top-level statement aborts with a
	// runtime error, for the driver's exit-code decision.
	HadRuntimeError bool
}

// NewInterpreter builds an interpreter with a fresh global environment
// (clock already defined in it) and the given locals map, as populated
// by the resolver.
func NewInterpreter(printer Printer, reporter Reporter, locals map[int]int) *Interpreter {
	globals := NewEnvironment()
	defineGlobals(globals)
	if locals == nil {
		locals = make(map[int]int)
	}
	return &Interpreter{globals: globals, environment: globals, locals: locals, printer: printer, reporter: reporter}
}

// MergeLocals adds newly resolved entries to the interpreter's
// expression→distance map. Expression IDs are assigned from a single
// process-wide counter, so entries from earlier resolver runs (earlier
// REPL lines) never collide with later ones.
func (in *Interpreter) MergeLocals(locals map[int]int) {
	for id, distance := range locals {
		in.locals[id] = distance
	}
}

// Interpret runs every top-level statement in source order. A runtime
// error aborts only the statement that raised it; the interpreter moves
// on to the next one, matching a REPL's line-at-a-time resilience and a
// file run's single accumulated exit status.
func (in *Interpreter) Interpret(statements []ast.Stmt) {
	for _, stmt := range statements {
		out := in.exec(stmt)
		if out.isError() {
			in.HadRuntimeError = true
			in.reporter.Report(out.err)
		}
	}
}

// exec dispatches one statement, returning how it completed.
func (in *Interpreter) exec(stmt ast.Stmt) outcome {
	switch s := stmt.(type) {
	case nil:
		return normalOutcome()
	case *ast.ExpressionStmt:
		_, err := in.eval(s.Expression)
		if err != nil {
			return errorOutcome(err)
		}
		return normalOutcome()
	case *ast.PrintStmt:
		v, err := in.eval(s.Expression)
		if err != nil {
			return errorOutcome(err)
		}
		in.printer.Print(v.Inspect())
		return normalOutcome()
	case *ast.VarStmt:
		var v Value = NilValue
		if s.Initializer != nil {
			var err *diagnostics.SourceError
			v, err = in.eval(s.Initializer)
			if err != nil {
				return errorOutcome(err)
			}
		}
		in.environment.Define(s.Name.Lexeme, v)
		return normalOutcome()
	case *ast.BlockStmt:
		return in.execBlock(s.Statements, NewEnclosedEnvironment(in.environment))
	case *ast.IfStmt:
		cond, err := in.eval(s.Condition)
		if err != nil {
			return errorOutcome(err)
		}
		if IsTruthy(cond) {
			return in.exec(s.Then)
		}
		if s.Else != nil {
			return in.exec(s.Else)
		}
		return normalOutcome()
	case *ast.WhileStmt:
		for {
			cond, err := in.eval(s.Condition)
			if err != nil {
				return errorOutcome(err)
			}
			if !IsTruthy(cond) {
				return normalOutcome()
			}
			out := in.exec(s.Body)
			if out.kind != outcomeNormal {
				return out
			}
		}
	case *ast.FunctionStmt:
		fn := &Function{Declaration: s, Closure: in.environment}
		in.environment.Define(s.Name.Lexeme, fn)
		return normalOutcome()
	case *ast.ReturnStmt:
		var v Value = NilValue
		if s.Value != nil {
			var err *diagnostics.SourceError
			v, err = in.eval(s.Value)
			if err != nil {
				return errorOutcome(err)
			}
		}
		return returnOutcome(v)
	case *ast.ClassStmt:
		return in.execClass(s)
	default:
		panic(fmt.Sprintf("interp: unhandled statement type %T", stmt))
	}
}

// execBlock runs statements in env, restoring the previously active
// environment on every exit path — normal completion, a return
// unwinding through it, or a runtime error — per the block-execution
// contract.
func (in *Interpreter) execBlock(statements []ast.Stmt, env *Environment) outcome {
	previous := in.environment
	in.environment = env
	defer func() { in.environment = previous }()

	for _, stmt := range statements {
		out := in.exec(stmt)
		if out.kind != outcomeNormal {
			return out
		}
	}
	return normalOutcome()
}

func (in *Interpreter) execClass(s *ast.ClassStmt) outcome {
	var superclass *Class
	if s.Superclass != nil {
		v, err := in.eval(s.Superclass)
		if err != nil {
			return errorOutcome(err)
		}
		sc, ok := v.(*Class)
		if !ok {
			return errorOutcome(diagnostics.New(diagnostics.PhaseRuntime, diagnostics.ErrX007, s.Superclass.Name.Line, s.Superclass.Name.Where()))
		}
		superclass = sc
	}

	in.environment.Define(s.Name.Lexeme, NilValue)

	env := in.environment
	if superclass != nil {
		env = NewEnclosedEnvironment(in.environment)
		env.Define("super", superclass)
	}

	class := NewClass(s.Name.Lexeme, superclass)
	for _, method := range s.Methods {
		fn := &Function{Declaration: method, Closure: env, IsInitializer: method.Name.Lexeme == "init"}
		class.Methods.Put(method.Name.Lexeme, fn)
	}

	in.environment = func() *Environment {
		if superclass != nil {
			return env.enclosing
		}
		return env
	}()
	in.environment.Assign(s.Name, class)
	return normalOutcome()
}

// eval dispatches one expression, resolving it to a Value.
func (in *Interpreter) eval(expr ast.Expr) (Value, *diagnostics.SourceError) {
	switch e := expr.(type) {
	case nil:
		return NilValue, nil
	case *ast.Literal:
		return literalValue(e.Value), nil
	case *ast.Grouping:
		return in.eval(e.Inner)
	case *ast.Unary:
		return in.evalUnary(e)
	case *ast.Binary:
		return in.evalBinary(e)
	case *ast.Logical:
		return in.evalLogical(e)
	case *ast.Variable:
		return in.lookupVariable(e.Name, e)
	case *ast.Assign:
		return in.evalAssign(e)
	case *ast.Call:
		return in.evalCall(e)
	case *ast.Get:
		return in.evalGet(e)
	case *ast.Set:
		return in.evalSet(e)
	case *ast.This:
		return in.lookupVariable(e.Keyword, e)
	case *ast.Super:
		return in.evalSuper(e)
	default:
		panic(fmt.Sprintf("interp: unhandled expression type %T", expr))
	}
}

func literalValue(v interface{}) Value {
	switch v := v.(type) {
	case nil:
		return NilValue
	case bool:
		return BoolValue(v)
	case float64:
		return &Number{Value: v}
	case string:
		return &String{Value: v}
	default:
		panic(fmt.Sprintf("interp: unrepresentable literal %T", v))
	}
}

func (in *Interpreter) evalUnary(e *ast.Unary) (Value, *diagnostics.SourceError) {
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Type {
	case token.MINUS:
		n, ok := right.(*Number)
		if !ok {
			return nil, diagnostics.New(diagnostics.PhaseRuntime, diagnostics.ErrX003, e.Op.Line, e.Op.Where())
		}
		return &Number{Value: -n.Value}, nil
	case token.BANG:
		return BoolValue(!IsTruthy(right)), nil
	default:
		panic("interp: unreachable unary operator " + string(e.Op.Type))
	}
}

func (in *Interpreter) evalBinary(e *ast.Binary) (Value, *diagnostics.SourceError) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}

	numOperands := func() (float64, float64, bool) {
		ln, lok := left.(*Number)
		rn, rok := right.(*Number)
		if !lok || !rok {
			return 0, 0, false
		}
		return ln.Value, rn.Value, true
	}

	switch e.Op.Type {
	case token.MINUS:
		l, r, ok := numOperands()
		if !ok {
			return nil, diagnostics.New(diagnostics.PhaseRuntime, diagnostics.ErrX003, e.Op.Line, e.Op.Where())
		}
		return &Number{Value: l - r}, nil
	case token.SLASH:
		l, r, ok := numOperands()
		if !ok {
			return nil, diagnostics.New(diagnostics.PhaseRuntime, diagnostics.ErrX003, e.Op.Line, e.Op.Where())
		}
		return &Number{Value: l / r}, nil
	case token.STAR:
		l, r, ok := numOperands()
		if !ok {
			return nil, diagnostics.New(diagnostics.PhaseRuntime, diagnostics.ErrX003, e.Op.Line, e.Op.Where())
		}
		return &Number{Value: l * r}, nil
	case token.PLUS:
		if l, r, ok := numOperands(); ok {
			return &Number{Value: l + r}, nil
		}
		ls, lok := left.(*String)
		rs, rok := right.(*String)
		if lok && rok {
			return &String{Value: ls.Value + rs.Value}, nil
		}
		return nil, diagnostics.New(diagnostics.PhaseRuntime, diagnostics.ErrX003, e.Op.Line, e.Op.Where())
	case token.GREATER:
		l, r, ok := numOperands()
		if !ok {
			return nil, diagnostics.New(diagnostics.PhaseRuntime, diagnostics.ErrX003, e.Op.Line, e.Op.Where())
		}
		return BoolValue(l > r), nil
	case token.GREATER_EQUAL:
		l, r, ok := numOperands()
		if !ok {
			return nil, diagnostics.New(diagnostics.PhaseRuntime, diagnostics.ErrX003, e.Op.Line, e.Op.Where())
		}
		return BoolValue(l >= r), nil
	case token.LESS:
		l, r, ok := numOperands()
		if !ok {
			return nil, diagnostics.New(diagnostics.PhaseRuntime, diagnostics.ErrX003, e.Op.Line, e.Op.Where())
		}
		return BoolValue(l < r), nil
	case token.LESS_EQUAL:
		l, r, ok := numOperands()
		if !ok {
			return nil, diagnostics.New(diagnostics.PhaseRuntime, diagnostics.ErrX003, e.Op.Line, e.Op.Where())
		}
		return BoolValue(l <= r), nil
	case token.BANG_EQUAL:
		return BoolValue(!Equal(left, right)), nil
	case token.EQUAL_EQUAL:
		// The only equality operator the parser ever produces for `==`;
		// a bare `Equal` token kind never reaches a binary expression.
		return BoolValue(Equal(left, right)), nil
	default:
		panic("interp: unreachable binary operator " + string(e.Op.Type))
	}
}

func (in *Interpreter) evalLogical(e *ast.Logical) (Value, *diagnostics.SourceError) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op.Type == token.OR {
		if IsTruthy(left) {
			return left, nil
		}
	} else {
		if !IsTruthy(left) {
			return left, nil
		}
	}
	return in.eval(e.Right)
}

func (in *Interpreter) lookupVariable(name token.Token, expr ast.Expr) (Value, *diagnostics.SourceError) {
	if distance, ok := in.locals[expr.ID()]; ok {
		return in.environment.GetAt(distance, name.Lexeme), nil
	}
	return in.globals.Get(name)
}

func (in *Interpreter) evalAssign(e *ast.Assign) (Value, *diagnostics.SourceError) {
	v, err := in.eval(e.Value)
	if err != nil {
		return nil, err
	}
	if distance, ok := in.locals[e.ID()]; ok {
		in.environment.AssignAt(distance, e.Name.Lexeme, v)
		return v, nil
	}
	if err := in.globals.Assign(e.Name, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (in *Interpreter) evalCall(e *ast.Call) (Value, *diagnostics.SourceError) {
	callee, err := in.eval(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, 0, len(e.Arguments))
	for _, a := range e.Arguments {
		v, err := in.eval(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, diagnostics.New(diagnostics.PhaseRuntime, diagnostics.ErrX005, e.Paren.Line, e.Paren.Where())
	}
	if len(args) > callable.Arity() {
		return nil, diagnostics.New(diagnostics.PhaseRuntime, diagnostics.ErrX006, e.Paren.Line, e.Paren.Where(), callable.Arity(), len(args))
	}

	switch fn := callable.(type) {
	case *Function:
		return fn.Call(in, args)
	case *Class:
		return fn.Call(in, args)
	case *NativeFunction:
		return fn.Call(in, args)
	default:
		return nil, diagnostics.New(diagnostics.PhaseRuntime, diagnostics.ErrX005, e.Paren.Line, e.Paren.Where())
	}
}

func (in *Interpreter) evalGet(e *ast.Get) (Value, *diagnostics.SourceError) {
	obj, err := in.eval(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, diagnostics.New(diagnostics.PhaseRuntime, diagnostics.ErrX004, e.Name.Line, e.Name.Where())
	}
	return instance.Get(e.Name)
}

func (in *Interpreter) evalSet(e *ast.Set) (Value, *diagnostics.SourceError) {
	obj, err := in.eval(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, diagnostics.New(diagnostics.PhaseRuntime, diagnostics.ErrX008, e.Name.Line, e.Name.Where())
	}
	v, err := in.eval(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name, v)
	return v, nil
}

func (in *Interpreter) evalSuper(e *ast.Super) (Value, *diagnostics.SourceError) {
	distance := in.locals[e.ID()]
	superVal := in.environment.GetAt(distance, "super")
	superclass := superVal.(*Class)

	thisVal := in.environment.GetAt(distance-1, "this")
	instance := thisVal.(*Instance)

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, diagnostics.New(diagnostics.PhaseRuntime, diagnostics.ErrX002, e.Method.Line, e.Method.Where(), e.Method.Lexeme)
	}
	return method.Bind(instance), nil
}
