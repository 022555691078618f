package token_test

import (
	"testing"

	"github.com/beanstalk-lang/beanstalk/internal/token"
)

func TestLookupIdentReturnsKeywordOrIdentifier(t *testing.T) {
	tests := []struct {
		ident string
		want  token.Type
	}{
		{"fun", token.KwFun},
		{"struct", token.KwStruct},
		{"i32", token.KwI32},
		{"bool", token.KwBool_},
		{"notAKeyword", token.Identifier},
		{"", token.Identifier},
	}
	for _, tt := range tests {
		if got := token.LookupIdent(tt.ident); got != tt.want {
			t.Errorf("LookupIdent(%q) = %s; want %s", tt.ident, got, tt.want)
		}
	}
}

func TestIsPrimitiveType(t *testing.T) {
	for _, typ := range []token.Type{
		token.KwI8, token.KwI16, token.KwI32, token.KwI64,
		token.KwU8, token.KwU16, token.KwU32, token.KwU64,
		token.KwF32, token.KwF64, token.KwBool_, token.KwChar_, token.KwString,
	} {
		if !token.IsPrimitiveType(typ) {
			t.Errorf("IsPrimitiveType(%s) = false; want true", typ)
		}
	}
	for _, typ := range []token.Type{token.KwStruct, token.Identifier, token.Plus} {
		if token.IsPrimitiveType(typ) {
			t.Errorf("IsPrimitiveType(%s) = true; want false", typ)
		}
	}
}

func TestTokenIsLiteral(t *testing.T) {
	for _, typ := range []token.Type{token.Int, token.Float, token.Bool, token.Char, token.String, token.InterpString} {
		tok := token.Token{Type: typ}
		if !tok.IsLiteral() {
			t.Errorf("Token{Type: %s}.IsLiteral() = false; want true", typ)
		}
	}
	for _, typ := range []token.Type{token.Identifier, token.Plus, token.EOF} {
		tok := token.Token{Type: typ}
		if tok.IsLiteral() {
			t.Errorf("Token{Type: %s}.IsLiteral() = true; want false", typ)
		}
	}
}

func TestTokenStringFormat(t *testing.T) {
	tok := token.Token{Type: token.Identifier, Text: "foo", Line: 3, Column: 5}
	want := `IDENT "foo" (line 3, col 5)`
	if got := tok.String(); got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}
