package resolver

import "github.com/loxw-lang/loxw/internal/pipeline"

// Processor adapts Resolve to a pipeline stage: it reads ctx.Statements
// and populates ctx.Locals, recording any resolution errors it finds.
type Processor struct{}

func (p *Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	locals, errs := Resolve(ctx.Statements)
	for id, distance := range locals {
		ctx.Locals[id] = distance
	}
	for _, e := range errs {
		ctx.AddError(e)
	}
	return ctx
}
