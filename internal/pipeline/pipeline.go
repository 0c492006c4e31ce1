// Package pipeline threads a single Context through a sequence of stages
// (the driver uses scan, parse and resolve), accumulating diagnostics
// along the way. Evaluation is not a pipeline stage.
package pipeline

import (
	"github.com/loxw-lang/loxw/internal/ast"
	"github.com/loxw-lang/loxw/internal/diagnostics"
	"github.com/loxw-lang/loxw/internal/token"
)

// Context carries everything one stage produces for the next.
type Context struct {
	Source string

	Tokens     []token.Token
	Statements []ast.Stmt

	// Locals maps a resolved expression's stable ID to its lexical
	// distance, as populated by the resolver and consumed by the
	// evaluator. Absent entries mean "resolve via the global scope."
	Locals map[int]int

	Errors []*diagnostics.SourceError

	// HadRuntimeError records that a runtime error aborted a top-level
	// statement. No stage in this repository sets it; the driver reads
	// interp.Interpreter.HadRuntimeError instead.
	HadRuntimeError bool
}

func NewContext(source string) *Context {
	return &Context{Source: source, Locals: make(map[int]int)}
}

func (c *Context) AddError(err *diagnostics.SourceError) {
	c.Errors = append(c.Errors, err)
}

// HadStaticError reports whether scanning, parsing or resolving recorded
// any error; the driver must not evaluate when this is true.
func (c *Context) HadStaticError() bool {
	for _, e := range c.Errors {
		if e.IsStatic() {
			return true
		}
	}
	return false
}

// Processor is one stage of the pipeline.
type Processor interface {
	Process(ctx *Context) *Context
}

// ProcessorFunc adapts a plain function to Processor.
type ProcessorFunc func(ctx *Context) *Context

func (f ProcessorFunc) Process(ctx *Context) *Context { return f(ctx) }

// Pipeline runs a fixed sequence of stages over one Context.
type Pipeline struct {
	stages []Processor
}

func New(stages ...Processor) *Pipeline {
	return &Pipeline{stages: stages}
}

// Run executes every stage in order, short-circuiting after any stage that
// records a static error — there is no point parsing a program the scanner
// already rejected wholesale, nor resolving one the parser rejected.
func (p *Pipeline) Run(ctx *Context) *Context {
	for _, stage := range p.stages {
		ctx = stage.Process(ctx)
		if ctx.HadStaticError() {
			break
		}
	}
	return ctx
}
