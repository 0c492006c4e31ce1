package scanner

import "github.com/loxw-lang/loxw/internal/pipeline"

// Processor adapts Scanner to a pipeline stage: it reads ctx.Source and
// populates ctx.Tokens, recording any lexical errors it finds.
type Processor struct{}

func (p *Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	tokens, errs := New(ctx.Source).Scan()
	ctx.Tokens = tokens
	for _, e := range errs {
		ctx.AddError(e)
	}
	return ctx
}
