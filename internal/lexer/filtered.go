package lexer

import (
	"github.com/beanstalk-lang/beanstalk/internal/pipeline"
	"github.com/beanstalk-lang/beanstalk/internal/token"
)

// Filtered wraps a Lexer as a pipeline.TokenStream, dropping the
// Whitespace/Comment trivia kinds from the stream (GLOSSARY: "Filtered
// lexer"). This Lexer folds trivia-skipping directly into NextToken and
// never emits those two kinds in the first place, so Filtered's drop
// logic never actually triggers today — it stays in place as the single
// seam where a future trivia-preserving Lexer (e.g. for a source
// formatter) would need no parser-facing change.
type Filtered struct {
	lex *Lexer
}

// NewFiltered constructs a Filtered stream over lex.
func NewFiltered(lex *Lexer) *Filtered {
	return &Filtered{lex: lex}
}

func (f *Filtered) next() token.Token {
	for {
		tok := f.lex.NextToken()
		if tok.Type == token.Whitespace || tok.Type == token.Comment {
			continue
		}
		return tok
	}
}

// Next consumes and returns the next non-trivia token.
func (f *Filtered) Next() token.Token { return f.next() }

// Peek returns the next n non-trivia tokens without consuming the
// stream past them. Beanstalk's parser instead eagerly tokenizes the
// whole file (see Tokenize); Peek exists to satisfy pipeline.TokenStream
// for stages that want a bounded lookahead without materializing the
// full vector.
func (f *Filtered) Peek(n int) []token.Token {
	saved := *f.lex
	defer func() { *f.lex = saved }()

	out := make([]token.Token, 0, n)
	for i := 0; i < n; i++ {
		tok := f.next()
		out = append(out, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return out
}

var _ pipeline.TokenStream = (*Filtered)(nil)

// Tokenize eagerly drains a Filtered stream into a random-access token
// vector, including a final EOF token, per spec.md §2 ("the parser
// consumes the full token stream eagerly into a random-access vector").
func Tokenize(lex *Lexer) []token.Token {
	f := NewFiltered(lex)
	var out []token.Token
	for {
		tok := f.Next()
		out = append(out, tok)
		if tok.Type == token.EOF {
			return out
		}
	}
}

// LexerProcessor is the pipeline.Processor that turns a source buffer
// into a TokenStream, mirroring the teacher's LexerProcessor/Process
// stage composition.
type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	ctx.TokenStream = NewFiltered(New(ctx.Source))
	return ctx
}

var _ pipeline.Processor = (*LexerProcessor)(nil)
