package parser

import "github.com/loxw-lang/loxw/internal/pipeline"

// Processor adapts Parser to a pipeline stage: it reads ctx.Tokens and
// populates ctx.Statements, recording any parse errors it finds.
type Processor struct{}

func (p *Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	stmts, errs := New(ctx.Tokens).Parse()
	ctx.Statements = stmts
	for _, e := range errs {
		ctx.AddError(e)
	}
	return ctx
}
