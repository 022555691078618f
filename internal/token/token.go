// Package token defines the lexical token vocabulary of Beanstalk.
package token

import (
	"fmt"

	"github.com/beanstalk-lang/beanstalk/internal/source"
)

// Type identifies a lexical category. Modeled as a string (not an iota
// int) so diagnostics and tests can print it directly, matching the
// teacher's token.TokenType.
type Type string

// Token is a single lexeme with its decoded value and source position.
// Value holds the decoded literal for number/string/char/bool tokens and
// is nil for everything else (spec.md §3.1).
type Token struct {
	Type   Type
	Range  source.Range
	Source *source.Buffer
	Value  any
	Text   string
	Line   int
	Column int
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q (line %d, col %d)", t.Type, t.Text, t.Line, t.Column)
}

// IsLiteral reports whether the token carries a decoded Value.
func (t Token) IsLiteral() bool {
	switch t.Type {
	case Int, Float, Bool, Char, String, InterpString:
		return true
	}
	return false
}

const (
	Invalid Type = "INVALID"
	EOF     Type = "EOF"

	// Trivia (dropped by the filtered lexer)
	Whitespace Type = "WHITESPACE"
	Comment    Type = "COMMENT"

	Identifier Type = "IDENT"

	// Literals
	Int          Type = "INT"
	Float        Type = "FLOAT"
	Bool         Type = "BOOL"
	Char         Type = "CHAR"
	String       Type = "STRING"
	InterpString Type = "INTERP_STRING"

	// Punctuation / operators (closed set, spec.md §4.1)
	ColonColon       Type = "::"
	Dot              Type = "."
	QuestionDot      Type = "?."
	LBracket         Type = "["
	QuestionBracket  Type = "?["
	RBracket         Type = "]"
	LParen           Type = "("
	RParen           Type = ")"
	LBrace           Type = "{"
	RBrace           Type = "}"
	Comma            Type = ","
	Semicolon        Type = ";"
	Assign           Type = "="
	Eq               Type = "=="
	NotEq            Type = "!="
	Lt               Type = "<"
	Gt               Type = ">"
	LtEq             Type = "<="
	GtEq             Type = ">="
	Plus             Type = "+"
	Minus            Type = "-"
	Star             Type = "*"
	StarStar         Type = "**"
	Slash            Type = "/"
	Percent          Type = "%"
	PercentPercent   Type = "%%"
	ShiftLeft        Type = "<<"
	ShiftRight       Type = ">>"
	RotLeft          Type = "<<<"
	RotRight         Type = ">>>"
	Amp              Type = "&"
	Pipe             Type = "|"
	Caret            Type = "^"
	Tilde            Type = "~"
	Bang             Type = "!"
	AmpAmp           Type = "&&"
	PipePipe         Type = "||"
	CaretCaret       Type = "^^"
	QuestionQuestion Type = "??"
	Question         Type = "?"
	Arrow            Type = "->"
	FatArrow         Type = "=>"
	DotDot           Type = ".."
	DotDotEq         Type = "..="
	Ellipsis         Type = "..."
	Hash             Type = "#"
	HashBracket      Type = "#["
	PlusPlus         Type = "++"
	MinusMinus       Type = "--"
	Colon            Type = ":"

	// Keywords (closed set, spec.md §4.1)
	KwModule      Type = "module"
	KwImport      Type = "import"
	KwAs          Type = "as"
	KwEntry       Type = "entry"
	KwDef         Type = "def"
	KwFun         Type = "fun"
	KwStatic      Type = "static"
	KwVar         Type = "var"
	KwLet         Type = "let"
	KwConst       Type = "const"
	KwStruct      Type = "struct"
	KwInterface   Type = "interface"
	KwCast        Type = "cast"
	KwOperator    Type = "operator"
	KwConstructor Type = "constructor"
	KwDestructor  Type = "destructor"
	KwString      Type = "string"
	KwNew         Type = "new"
	KwThis        Type = "this"
	KwNull        Type = "null"
	KwTrue        Type = "true"
	KwFalse       Type = "false"
	KwIf          Type = "if"
	KwElse        Type = "else"
	KwReturn      Type = "return"
	KwSwitch      Type = "switch"
	KwWith        Type = "with"
	KwIs          Type = "is"
	KwAwait       Type = "await"
	KwLambda      Type = "lambda"
	KwRef         Type = "ref"
	KwImplicit    Type = "implicit"
	KwExplicit    Type = "explicit"
	KwExternal    Type = "external"

	// Primitive type keywords
	KwI8    Type = "i8"
	KwI16   Type = "i16"
	KwI32   Type = "i32"
	KwI64   Type = "i64"
	KwU8    Type = "u8"
	KwU16   Type = "u16"
	KwU32   Type = "u32"
	KwU64   Type = "u64"
	KwF32   Type = "f32"
	KwF64   Type = "f64"
	KwBool_ Type = "bool"
	KwChar_ Type = "char"
)

// keywords maps reserved words to their Type. Identifiers not found here
// lex as Identifier. Primitive-type keywords live in this same table,
// the single source of truth for "is this word
// reserved" (mirrors the teacher's token.keywords map).
var keywords = map[string]Type{
	"module": KwModule, "import": KwImport, "as": KwAs, "entry": KwEntry,
	"def": KwDef, "fun": KwFun, "static": KwStatic, "var": KwVar,
	"let": KwLet, "const": KwConst, "struct": KwStruct, "interface": KwInterface,
	"cast": KwCast, "operator": KwOperator, "constructor": KwConstructor,
	"destructor": KwDestructor, "string": KwString, "new": KwNew, "this": KwThis,
	"null": KwNull, "true": KwTrue, "false": KwFalse, "if": KwIf, "else": KwElse,
	"return": KwReturn, "switch": KwSwitch, "with": KwWith, "is": KwIs,
	"await": KwAwait, "lambda": KwLambda, "ref": KwRef, "implicit": KwImplicit,
	"explicit": KwExplicit, "external": KwExternal,
	"i8": KwI8, "i16": KwI16, "i32": KwI32, "i64": KwI64,
	"u8": KwU8, "u16": KwU16, "u32": KwU32, "u64": KwU64,
	"f32": KwF32, "f64": KwF64, "bool": KwBool_, "char": KwChar_,
}

// LookupIdent returns the keyword Type for ident, or Identifier if ident
// is not reserved.
func LookupIdent(ident string) Type {
	if t, ok := keywords[ident]; ok {
		return t
	}
	return Identifier
}

// IsPrimitiveType reports whether t names a built-in scalar type keyword,
// usable as the base of a BaseSyntaxType.
func IsPrimitiveType(t Type) bool {
	switch t {
	case KwI8, KwI16, KwI32, KwI64, KwU8, KwU16, KwU32, KwU64, KwF32, KwF64, KwBool_, KwChar_, KwString:
		return true
	}
	return false
}
