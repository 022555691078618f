package pipeline

import (
	"github.com/beanstalk-lang/beanstalk/internal/ast"
	"github.com/beanstalk-lang/beanstalk/internal/diagnostics"
	"github.com/beanstalk-lang/beanstalk/internal/source"
)

// PipelineContext holds the data passed between the lexer and parser
// stages. Trimmed of the teacher's resolver-only fields (SymbolTable,
// TypeMap, TraitDefaults, OperatorTraits, TraitImplementations, Loader)
// since name resolution and type checking are out of scope for the
// front-end (spec.md §1).
type PipelineContext struct {
	Source      *source.Buffer
	FilePath    string
	TokenStream TokenStream
	AstRoot     *ast.ProgramStatement
	Diagnostics *diagnostics.Bag
}

// NewPipelineContext creates and initializes a new PipelineContext over
// buf.
func NewPipelineContext(buf *source.Buffer) *PipelineContext {
	return &PipelineContext{
		Source:      buf,
		FilePath:    buf.Path(),
		Diagnostics: &diagnostics.Bag{},
	}
}
