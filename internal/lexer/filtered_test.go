package lexer_test

import (
	"testing"

	"github.com/beanstalk-lang/beanstalk/internal/lexer"
	"github.com/beanstalk-lang/beanstalk/internal/pipeline"
	"github.com/beanstalk-lang/beanstalk/internal/source"
	"github.com/beanstalk-lang/beanstalk/internal/token"
)

func TestFilteredDropsWhitespaceAndComments(t *testing.T) {
	buf := source.New("test.bs", []byte("a // comment\n  + b"))
	f := lexer.NewFiltered(lexer.New(buf))
	var kinds []token.Type
	for {
		tok := f.Next()
		kinds = append(kinds, tok.Type)
		if tok.Type == token.EOF {
			break
		}
	}
	for _, k := range kinds {
		if k == token.Whitespace || k == token.Comment {
			t.Fatalf("Filtered.Next() yielded trivia kind %s; want it dropped", k)
		}
	}
	want := []token.Type{token.Identifier, token.Plus, token.Identifier, token.EOF}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v; want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kinds[%d] = %s; want %s", i, kinds[i], want[i])
		}
	}
}

func TestFilteredPeekDoesNotConsume(t *testing.T) {
	buf := source.New("test.bs", []byte("a + b"))
	f := lexer.NewFiltered(lexer.New(buf))
	peeked := f.Peek(2)
	if len(peeked) != 2 || peeked[0].Type != token.Identifier || peeked[1].Type != token.Plus {
		t.Fatalf("Peek(2) = %v; want [Identifier Plus]", peeked)
	}
	first := f.Next()
	if first.Type != token.Identifier || first.Text != "a" {
		t.Errorf("Next() after Peek = %v; want the unconsumed first token 'a'", first)
	}
}

func TestFilteredPeekStopsAtEOF(t *testing.T) {
	buf := source.New("test.bs", []byte("a"))
	f := lexer.NewFiltered(lexer.New(buf))
	peeked := f.Peek(5)
	if len(peeked) != 2 {
		t.Fatalf("Peek(5) over single-token source = %v; want 2 entries (token + EOF)", peeked)
	}
	if peeked[1].Type != token.EOF {
		t.Errorf("peeked[1].Type = %s; want EOF", peeked[1].Type)
	}
}

func TestTokenizeEagerlyDrainsWithTrailingEOF(t *testing.T) {
	buf := source.New("test.bs", []byte("a + b"))
	toks := lexer.Tokenize(lexer.New(buf))
	if len(toks) == 0 || toks[len(toks)-1].Type != token.EOF {
		t.Fatalf("Tokenize() = %v; want a trailing EOF token", toks)
	}
	if toks[0].Type != token.Identifier {
		t.Errorf("toks[0].Type = %s; want Identifier", toks[0].Type)
	}
}

func TestLexerProcessorPopulatesTokenStream(t *testing.T) {
	buf := source.New("test.bs", []byte("entry() {}"))
	ctx := pipeline.NewPipelineContext(buf)
	lp := &lexer.LexerProcessor{}
	result := lp.Process(ctx)
	if result.TokenStream == nil {
		t.Fatalf("Process() left ctx.TokenStream nil")
	}
	if _, ok := result.TokenStream.(*lexer.Filtered); !ok {
		t.Errorf("ctx.TokenStream = %T; want *lexer.Filtered", result.TokenStream)
	}
}
