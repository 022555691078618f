package parser

import (
	"github.com/beanstalk-lang/beanstalk/internal/pipeline"
)

// ParserProcessor is the pipeline.Processor that turns a source buffer
// into an AST, mirroring the teacher's ParserProcessor/Process stage
// composition. It re-tokenizes ctx.Source itself (Parser.New is always
// eager, spec.md §2) rather than consuming ctx.TokenStream, so it can
// run immediately after LexerProcessor or stand alone.
type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	p := New(ctx.Source)
	root, diags := p.ParseProgram()
	ctx.AstRoot = root
	for _, d := range diags {
		ctx.Diagnostics.Add(d)
	}
	return ctx
}

var _ pipeline.Processor = (*ParserProcessor)(nil)
