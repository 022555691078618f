package lexer_test

import (
	"testing"

	"github.com/beanstalk-lang/beanstalk/internal/lexer"
	"github.com/beanstalk-lang/beanstalk/internal/source"
	"github.com/beanstalk-lang/beanstalk/internal/token"
)

func lexAll(src string) []token.Token {
	l := lexer.New(source.New("test.bs", []byte(src)))
	var out []token.Token
	for {
		tok := l.NextToken()
		out = append(out, tok)
		if tok.Type == token.EOF {
			return out
		}
	}
}

func TestIdentifiersAndKeywords(t *testing.T) {
	tests := []struct {
		src  string
		typ  token.Type
		text string
	}{
		{"foo", token.Identifier, "foo"},
		{"_bar123", token.Identifier, "_bar123"},
		{"module", token.KwModule, "module"},
		{"fun", token.KwFun, "fun"},
		{"i32", token.KwI32, "i32"},
		{"true", token.KwTrue, "true"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			toks := lexAll(tt.src)
			if toks[0].Type != tt.typ {
				t.Errorf("type = %s; want %s", toks[0].Type, tt.typ)
			}
			if toks[0].Text != tt.text {
				t.Errorf("text = %q; want %q", toks[0].Text, tt.text)
			}
		})
	}
}

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		src   string
		typ   token.Type
		value any
	}{
		{"42", token.Int, int64(42)},
		{"42i8", token.Int, int8(42)},
		{"255u8", token.Int, uint8(255)},
		{"1_000_000", token.Int, int64(1000000)},
		{"0xFF", token.Int, int64(255)},
		{"0b1010", token.Int, int64(10)},
		{"0o17", token.Int, int64(15)},
		{"3.14", token.Float, float64(3.14)},
		{"1.5f32", token.Float, float32(1.5)},
		{"1e3", token.Float, float64(1000)},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			toks := lexAll(tt.src)
			if toks[0].Type != tt.typ {
				t.Fatalf("type = %s; want %s", toks[0].Type, tt.typ)
			}
			if toks[0].Value != tt.value {
				t.Errorf("value = %#v; want %#v", toks[0].Value, tt.value)
			}
		})
	}
}

func TestIntegerWidthSaturation(t *testing.T) {
	toks := lexAll("200i8")
	if toks[0].Type != token.Int {
		t.Fatalf("type = %s; want Int", toks[0].Type)
	}
	// 200 overflows int8's range; strconv.ParseInt with bitSize=8 clamps
	// to the type's max on overflow.
	if _, ok := toks[0].Value.(int8); !ok {
		t.Errorf("value type = %T; want int8", toks[0].Value)
	}
	if toks[0].Value != int8(127) {
		t.Errorf("value = %v; want 127 (clamped to int8 max)", toks[0].Value)
	}
}

func TestStringLiteralEscapes(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`"hello"`, "hello"},
		{`"a\nb"`, "a\nb"},
		{`"a\tb"`, "a\tb"},
		{`"a\\b"`, "a\\b"},
		{`"a\"b"`, "a\"b"},
		{`"\x41"`, "A"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			toks := lexAll(tt.src)
			if toks[0].Type != token.String {
				t.Fatalf("type = %s; want String", toks[0].Type)
			}
			if toks[0].Value != tt.want {
				t.Errorf("value = %q; want %q", toks[0].Value, tt.want)
			}
		})
	}
}

func TestCharLiteralIsFourBytePadded(t *testing.T) {
	toks := lexAll(`'a'`)
	if toks[0].Type != token.Char {
		t.Fatalf("type = %s; want Char", toks[0].Type)
	}
	buf, ok := toks[0].Value.([4]byte)
	if !ok {
		t.Fatalf("value type = %T; want [4]byte", toks[0].Value)
	}
	if buf != ([4]byte{'a', 0, 0, 0}) {
		t.Errorf("value = %v; want [a 0 0 0]", buf)
	}
}

func TestOperatorMaximalMunch(t *testing.T) {
	tests := []struct {
		src string
		typ token.Type
	}{
		{"+", token.Plus},
		{"++", token.PlusPlus},
		{"<", token.Lt},
		{"<=", token.LtEq},
		{"<<", token.ShiftLeft},
		{"<<<", token.RotLeft},
		{"?", token.Question},
		{"?.", token.QuestionDot},
		{"?[", token.QuestionBracket},
		{"??", token.QuestionQuestion},
		{".", token.Dot},
		{"..", token.DotDot},
		{"..=", token.DotDotEq},
		{"...", token.Ellipsis},
		{"%", token.Percent},
		{"%%", token.PercentPercent},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			toks := lexAll(tt.src)
			if toks[0].Type != tt.typ {
				t.Errorf("lex(%q) type = %s; want %s", tt.src, toks[0].Type, tt.typ)
			}
			if toks[0].Text != tt.src {
				t.Errorf("lex(%q) text = %q; want %q", tt.src, toks[0].Text, tt.src)
			}
		})
	}
}

func TestInvalidByteProducesInvalidTokenAndContinues(t *testing.T) {
	toks := lexAll("a @ b")
	if toks[0].Type != token.Identifier || toks[0].Text != "a" {
		t.Fatalf("first token = %+v", toks[0])
	}
	if toks[1].Type != token.Invalid {
		t.Fatalf("second token type = %s; want Invalid", toks[1].Type)
	}
	if toks[2].Type != token.Identifier || toks[2].Text != "b" {
		t.Fatalf("third token = %+v; lexing did not continue past the invalid byte", toks[2])
	}
}

func TestFoldNegateSaturatesAtMin(t *testing.T) {
	got := lexer.FoldNegate(int8(-128))
	if got != int8(-128) {
		t.Errorf("FoldNegate(MinInt8) = %v; want -128 (saturated, not overflowed)", got)
	}
	got = lexer.FoldNegate(int32(5))
	if got != int32(-5) {
		t.Errorf("FoldNegate(5) = %v; want -5", got)
	}
}

func TestFoldBitwiseNegate(t *testing.T) {
	got := lexer.FoldBitwiseNegate(uint8(0))
	if got != uint8(0xFF) {
		t.Errorf("FoldBitwiseNegate(0) = %v; want 0xFF", got)
	}
}

func TestNewAtStartsMidBuffer(t *testing.T) {
	buf := source.New("test.bs", []byte("let x = 1"))
	l := lexer.NewAt(buf, 8)
	tok := l.NextToken()
	if tok.Text != "1" {
		t.Errorf("text = %q; want %q", tok.Text, "1")
	}
	if tok.Range.Start != 8 {
		t.Errorf("range start = %d; want 8", tok.Range.Start)
	}
}

func TestTokenizeEndsWithEOF(t *testing.T) {
	toks := lexer.Tokenize(lexer.New(source.New("test.bs", []byte("a"))))
	last := toks[len(toks)-1]
	if last.Type != token.EOF {
		t.Errorf("last token type = %s; want EOF", last.Type)
	}
}
