package parser

import (
	"github.com/beanstalk-lang/beanstalk/internal/ast"
	"github.com/beanstalk-lang/beanstalk/internal/token"
)

// parseType parses a SyntaxType (spec.md §4.3): an optional `var`/`ref`
// prefix, a base (identifier/primitive keyword, parenthesized tuple, or
// lambda signature), then any number of `[]`/`[typeList]`/`[expr]`/`?`
// suffixes.
func (p *Parser) parseType() ast.SyntaxType {
	base := p.parseTypePrefixed()
	return p.parseTypeSuffixesFrom(base)
}

// parseTypePrefixed handles the `var`/`ref`/`var ref` prefixes and the
// unprefixed base forms.
func (p *Parser) parseTypePrefixed() ast.SyntaxType {
	if p.check(token.KwVar) && p.peek(1).Type == token.KwRef {
		start := p.advance() // var
		p.advance()           // ref
		base := p.parseTypeBase()
		return &ast.ReferenceSyntaxType{Base: base, Immutable: false, R: joinRange(start.Range, base.Range())}
	}
	if p.check(token.KwRef) {
		start := p.advance()
		base := p.parseTypeBase()
		return &ast.ReferenceSyntaxType{Base: base, Immutable: true, R: joinRange(start.Range, base.Range())}
	}
	if p.check(token.KwVar) {
		start := p.advance()
		base := p.parseTypeBase()
		return &ast.MutableSyntaxType{Base: base, R: joinRange(start.Range, base.Range())}
	}
	return p.parseTypeBase()
}

func (p *Parser) parseTypeBase() ast.SyntaxType {
	switch p.cur().Type {
	case token.LParen:
		return p.parseTupleOrLambdaType()
	case token.Identifier:
		tok := p.advance()
		return &ast.BaseSyntaxType{Tok: tok, R: tok.Range}
	default:
		if token.IsPrimitiveType(p.cur().Type) {
			tok := p.advance()
			return &ast.BaseSyntaxType{Tok: tok, R: tok.Range}
		}
		tok := p.cur()
		p.throwMissing("a type", tok)
		return nil
	}
}

// parseTupleOrLambdaType disambiguates `(T, U)` tuple types from
// `(T, U) -> R` lambda types: both start with a parenthesized type
// list, so the list is parsed once and a trailing `->` decides which
// node results (spec.md §4.3).
func (p *Parser) parseTupleOrLambdaType() ast.SyntaxType {
	open := p.expect(token.LParen, "to begin a tuple or lambda type")
	var elems []ast.SyntaxType
	for !p.check(token.RParen) && !p.atEnd() {
		elems = append(elems, p.parseType())
		if !p.match(token.Comma) {
			break
		}
	}
	closing := p.expect(token.RParen, "to close a tuple or lambda type")
	r := joinRange(open.Range, closing.Range)

	if p.match(token.Arrow) {
		ret := p.parseType()
		return &ast.LambdaSyntaxType{Params: elems, ReturnType: ret, R: joinRange(r, ret.Range())}
	}
	if len(elems) == 1 {
		return elems[0]
	}
	return &ast.TupleSyntaxType{Components: elems, R: r}
}

// parseTypeSuffixesFrom applies the `[]`/`[typeList]`/`[expr]`/`?`
// postfix suffixes to an already-parsed base type (spec.md §4.3).
func (p *Parser) parseTypeSuffixesFrom(base ast.SyntaxType) ast.SyntaxType {
	result := base
	for {
		switch p.cur().Type {
		case token.LBracket:
			result = p.parseArrayOrGenericSuffix(result)
		case token.Question:
			q := p.advance()
			result = &ast.NullableSyntaxType{Base: result, R: joinRange(result.Range(), q.Range)}
		default:
			return result
		}
	}
}

// parseArrayOrGenericSuffix disambiguates the three bracketed suffix
// forms of spec.md §4.3: `T[]` (unsized array), `T[T1, T2, …]`
// (generic, including the single-argument case), and `T[expr]` (sized
// array). An empty bracket is unambiguous; otherwise the `typeList`
// form is tried first and the parse rewound to a single size
// expression if that attempt fails anywhere before its closing `]`.
func (p *Parser) parseArrayOrGenericSuffix(base ast.SyntaxType) ast.SyntaxType {
	p.expect(token.LBracket, "to begin an array or generic type")
	if p.check(token.RBracket) {
		closing := p.advance()
		return &ast.ArraySyntaxType{Base: base, R: joinRange(base.Range(), closing.Range)}
	}
	args, ok := tryParse(p, func() []ast.SyntaxType {
		var list []ast.SyntaxType
		for {
			list = append(list, p.parseType())
			if !p.match(token.Comma) {
				break
			}
		}
		p.expect(token.RBracket, "to close a generic type argument list")
		return list
	})
	if ok {
		closing := p.tokens[p.pos-1]
		return &ast.GenericSyntaxType{Base: base, Args: args, R: joinRange(base.Range(), closing.Range)}
	}
	size := p.parseExpression()
	closing := p.expect(token.RBracket, "to close a sized array type")
	return &ast.ArraySyntaxType{Base: base, Size: size, R: joinRange(base.Range(), closing.Range)}
}
