package config

import "github.com/beanstalk-lang/beanstalk/internal/token"

// SourceFileExt is Beanstalk's canonical source file extension.
const SourceFileExt = ".bs"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".bs"}

// ExternalFunctionAttributeKeys is the closed set of attribute keys
// accepted inside an external function's `=> external(key = "value")`
// clause (spec.md §4.6).
var ExternalFunctionAttributeKeys = map[string]bool{
	"entry": true,
}

// TokenSet is a fixed lookup table of token types, used for the
// synchronization-token sets of spec.md §4.2/§9. The teacher's
// suggestion of a bitmask keyed by token-type ordinal doesn't apply
// directly here since token.Type is a string (matching the teacher's
// own TokenType), so a set (map to struct{}) is the direct translation
// that keeps O(1) membership tests.
type TokenSet map[token.Type]struct{}

// NewTokenSet builds a TokenSet from a list of token types.
func NewTokenSet(types ...token.Type) TokenSet {
	s := make(TokenSet, len(types))
	for _, t := range types {
		s[t] = struct{}{}
	}
	return s
}

// Contains reports whether typ is a member of the set.
func (s TokenSet) Contains(typ token.Type) bool {
	_, ok := s[typ]
	return ok
}

// TopLevelSyncTokens resynchronizes top-level statement parsing: the
// keywords that unambiguously begin a new top-level item, plus EOF.
var TopLevelSyncTokens = NewTokenSet(
	token.EOF, token.Semicolon,
	token.KwModule, token.KwImport, token.KwEntry, token.KwFun, token.KwStatic,
	token.KwVar, token.KwLet, token.KwConst, token.KwStruct, token.KwInterface, token.KwDef,
)

// StructBodySyncTokens resynchronizes struct-body member parsing.
var StructBodySyncTokens = NewTokenSet(
	token.RBrace, token.Semicolon,
	token.KwFun, token.KwStatic, token.KwVar, token.KwLet, token.KwConst,
	token.KwConstructor, token.KwDestructor, token.KwString, token.KwCast, token.KwOperator,
)

// BlockSyncTokens resynchronizes statement parsing inside a block body.
var BlockSyncTokens = NewTokenSet(
	token.RBrace, token.Semicolon,
	token.KwIf, token.KwReturn, token.KwVar, token.KwLet, token.KwConst, token.LBrace,
)

// DllImportSyncTokens resynchronizes statement parsing inside a DLL
// import body (only `fun`-headed external function statements belong
// here — spec.md §4.6).
var DllImportSyncTokens = NewTokenSet(token.RBrace, token.Semicolon, token.KwFun)

// ImportGroupSyncTokens resynchronizes item parsing inside an aggregate
// import's brace group.
var ImportGroupSyncTokens = NewTokenSet(token.RBrace, token.Comma)

// InterpolatedStringSyncTokens resynchronizes expression-part parsing
// inside an interpolated string's `{...}` embed.
var InterpolatedStringSyncTokens = NewTokenSet(token.RBrace, token.EOF)
