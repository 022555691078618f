package parser

import (
	"github.com/beanstalk-lang/beanstalk/internal/ast"
	"github.com/beanstalk-lang/beanstalk/internal/config"
	"github.com/beanstalk-lang/beanstalk/internal/diagnostics"
	"github.com/beanstalk-lang/beanstalk/internal/source"
	"github.com/beanstalk-lang/beanstalk/internal/token"
)

func rangeOfParts(parts []token.Token) source.Range {
	if len(parts) == 0 {
		return source.Range{}
	}
	r := parts[0].Range
	for _, t := range parts[1:] {
		r = r.Join(t.Range)
	}
	return r
}

// parseImportStatement parses any of spec.md §4.5's four import forms:
// a plain `import scope.Name [as alias]`, a wildcard
// `import scope.* [as alias]`, an aggregate `import scope.{ A, B as C }
// [as group]`, or a DLL import `import ("path") { fun ... }`.
//
// A bare single-identifier import (`import Name`, no scope segment) is
// rejected with InvalidImport: spec.md §9 open question 2 resolves this
// by requiring at least a scope and a name, since a single dotted
// segment is ambiguous with a plain local name reference.
func (p *Parser) parseImportStatement() ast.Statement {
	kw := p.expect(token.KwImport, "to begin an import statement")

	if p.check(token.LParen) {
		return p.parseDllImportStatement(kw)
	}

	first := p.expect(token.Identifier, "a module name segment")
	segs := []token.Token{first}
	for p.check(token.Dot) {
		p.advance()
		if p.check(token.Star) {
			star := p.advance()
			scope := &ast.ModuleName{Parts: segs, R: rangeOfParts(segs)}
			alias := p.parseOptionalAlias()
			r := joinRange(kw.Range, star.Range)
			if alias != nil {
				r = joinRange(r, alias.Range)
			}
			return &ast.ImportStatement{Scope: scope, Name: star, Alias: alias, R: r}
		}
		if p.check(token.LBrace) {
			scope := &ast.ModuleName{Parts: segs, R: rangeOfParts(segs)}
			return p.parseAggregateImportBody(kw, scope)
		}
		segs = append(segs, p.expect(token.Identifier, "a module name segment"))
	}

	if len(segs) < 2 {
		p.reportf(diagnostics.InvalidImport, kw.Range,
			"import requires a scope and a name, e.g. 'import module.%s'", segs[0].Text)
	}
	name := segs[len(segs)-1]
	scope := &ast.ModuleName{Parts: segs[:len(segs)-1], R: rangeOfParts(segs[:len(segs)-1])}
	alias := p.parseOptionalAlias()
	r := joinRange(kw.Range, name.Range)
	if alias != nil {
		r = joinRange(r, alias.Range)
	}
	return &ast.ImportStatement{Scope: scope, Name: name, Alias: alias, R: r}
}

func (p *Parser) parseOptionalAlias() *token.Token {
	if !p.match(token.KwAs) {
		return nil
	}
	a := p.expect(token.Identifier, "an alias name")
	return &a
}

func (p *Parser) parseAggregateImportBody(kw token.Token, scope *ast.ModuleName) ast.Statement {
	p.expect(token.LBrace, "to begin an aggregate import's item group")
	var items []ast.ImportItem
	for !p.check(token.RBrace) && !p.atEnd() {
		name := p.expect(token.Identifier, "an imported item name")
		alias := p.parseOptionalAlias()
		items = append(items, ast.ImportItem{Name: name, Alias: alias})
		if !p.match(token.Comma) {
			break
		}
	}
	closing := p.expect(token.RBrace, "to close an aggregate import's item group")
	groupAlias := p.parseOptionalAlias()
	r := joinRange(kw.Range, closing.Range)
	if groupAlias != nil {
		r = joinRange(r, groupAlias.Range)
	}
	return &ast.AggregateImportStatement{Scope: scope, Items: items, GroupAlias: groupAlias, R: r}
}

func (p *Parser) parseDllImportStatement(kw token.Token) ast.Statement {
	p.expect(token.LParen, "to begin a DLL import path")
	pathTok := p.expect(token.String, "a DLL path string literal")
	p.expect(token.RParen, "to close a DLL import path")
	p.expect(token.LBrace, "to begin a DLL import body")

	var fns []*ast.ExternalFunctionStatement
	for !p.check(token.RBrace) && !p.atEnd() {
		fn, ok := tryParse(p, func() *ast.ExternalFunctionStatement { return p.parseExternalFunctionStatement() })
		if !ok {
			tok := p.cur()
			p.reportf(diagnostics.InvalidImport, tok.Range, "expected an external function declaration in a DLL import body")
			p.advance()
			p.syncTo(config.DllImportSyncTokens)
			continue
		}
		fns = append(fns, fn)
	}
	closing := p.expect(token.RBrace, "to close a DLL import body")
	return &ast.DllImportStatement{Path: pathTok, Functions: fns, R: joinRange(kw.Range, closing.Range)}
}

// parseExternalFunctionStatement parses
// `fun NAME(params) [-> Type] => external(key = "value", ...)`
// (spec.md §4.6).
func (p *Parser) parseExternalFunctionStatement() *ast.ExternalFunctionStatement {
	kw := p.expect(token.KwFun, "fun")
	name := p.expect(token.Identifier, "a function name")
	p.expect(token.LParen, "to begin a parameter list")
	var params []*ast.Parameter
	for !p.check(token.RParen) && !p.atEnd() {
		params = append(params, p.parseTypedParameter())
		if !p.match(token.Comma) {
			break
		}
	}
	p.expect(token.RParen, "to close a parameter list")
	var ret ast.SyntaxType
	if p.match(token.Arrow) {
		ret = p.parseType()
	}
	p.expect(token.FatArrow, "'=>' before 'external'")
	p.expect(token.KwExternal, "'external'")
	p.expect(token.LParen, "to begin an external function's attribute list")
	attrs := p.parseExternalAttributes()
	closing := p.expect(token.RParen, "to close an external function's attribute list")
	return &ast.ExternalFunctionStatement{Name: name, Params: params, ReturnType: ret, Attributes: attrs, R: joinRange(kw.Range, closing.Range)}
}

func (p *Parser) parseExternalAttributes() map[string]string {
	attrs := map[string]string{}
	for !p.check(token.RParen) && !p.atEnd() {
		key := p.expect(token.Identifier, "an attribute key")
		if !config.ExternalFunctionAttributeKeys[key.Text] {
			p.reportf(diagnostics.InvalidModifier, key.Range, "unknown external function attribute %q", key.Text)
		}
		p.expect(token.Assign, "'=' after an attribute key")
		val := p.expect(token.String, "a string attribute value")
		if _, dup := attrs[key.Text]; dup {
			p.reportf(diagnostics.AttributeAlreadyDefined, key.Range, "attribute %q already defined", key.Text)
		}
		if s, ok := val.Value.(string); ok {
			attrs[key.Text] = s
		}
		if !p.match(token.Comma) {
			break
		}
	}
	return attrs
}

// parseModuleHeaderAndOptionalBody parses `module a.b.c [{ ... }]`. A
// file-scope module header's body is optional (an empty body means the
// rest of the file's top-level statements belong to it); any other
// module declaration requires a body (spec.md §4.6).
func (p *Parser) parseModuleHeaderAndOptionalBody(fileScope bool) (*ast.ModuleName, []ast.Statement) {
	kw := p.expect(token.KwModule, "module")
	first := p.expect(token.Identifier, "a module name")
	parts := []token.Token{first}
	for p.check(token.Dot) {
		p.advance()
		parts = append(parts, p.expect(token.Identifier, "a module name segment"))
	}
	name := &ast.ModuleName{Parts: parts, R: rangeOfParts(parts)}

	if p.check(token.LBrace) {
		p.advance()
		var body []ast.Statement
		for !p.check(token.RBrace) && !p.atEnd() {
			stmt := p.parseTopLevelStatementRecovering()
			if stmt != nil {
				body = append(body, stmt)
			}
		}
		p.expect(token.RBrace, "to close a module body")
		return name, body
	}

	if !fileScope {
		p.reportf(diagnostics.MissingModuleBody, kw.Range, "a nested module declaration requires a '{ ... }' body")
	}
	return name, nil
}

func (p *Parser) parseEntryStatement() ast.Statement {
	kw := p.expect(token.KwEntry, "entry")
	p.expect(token.LParen, "to begin the entry point's parameter list")
	var params []*ast.Parameter
	for !p.check(token.RParen) && !p.atEnd() {
		params = append(params, p.parseTypedParameter())
		if !p.match(token.Comma) {
			break
		}
	}
	p.expect(token.RParen, "to close the entry point's parameter list")
	body := p.parseBlock()
	return &ast.EntryStatement{Params: params, Body: body, R: joinRange(kw.Range, body.Range())}
}

func (p *Parser) parseDefineStatement() ast.Statement {
	kw := p.expect(token.KwDef, "def")
	name := p.expect(token.Identifier, "a type alias name")
	p.expect(token.KwAs, "'as' in a type alias")
	typ := p.parseType()
	return &ast.DefineStatement{Name: name, Type: typ, R: joinRange(kw.Range, typ.Range())}
}

func (p *Parser) parseStructDeclaration() ast.Statement {
	kw := p.expect(token.KwStruct, "struct")
	mutable := p.match(token.KwVar)
	name := p.expect(token.Identifier, "a struct name")
	p.expect(token.LBrace, "to begin a struct body")
	members := p.parseMemberList(p.parseStructMember)
	closing := p.expect(token.RBrace, "to close a struct body")
	return &ast.StructDeclarationStatement{Name: name, IsMutable: mutable, Members: members, R: joinRange(kw.Range, closing.Range)}
}

func (p *Parser) parseInterfaceDeclaration() ast.Statement {
	kw := p.expect(token.KwInterface, "interface")
	name := p.expect(token.Identifier, "an interface name")
	p.expect(token.LBrace, "to begin an interface body")
	members := p.parseMemberList(p.parseInterfaceMember)
	closing := p.expect(token.RBrace, "to close an interface body")
	return &ast.InterfaceDeclarationStatement{Name: name, Members: members, R: joinRange(kw.Range, closing.Range)}
}

// parseMemberList drives a struct/interface body's member loop with
// per-member error recovery, resynchronizing on StructBodySyncTokens.
func (p *Parser) parseMemberList(parseOne func() ast.Statement) []ast.Statement {
	var members []ast.Statement
	for !p.check(token.RBrace) && !p.atEnd() {
		cpPos := p.pos
		m := p.parseMemberRecovering(parseOne, cpPos)
		if m != nil {
			members = append(members, m)
		}
	}
	return members
}

func (p *Parser) parseMemberRecovering(parseOne func() ast.Statement, cpPos int) (stmt ast.Statement) {
	defer func() {
		if r := recover(); r != nil {
			if d, isPE := diagnostics.Recover(r); isPE {
				p.diags.Add(d)
				if p.pos == cpPos {
					p.advance()
				}
				p.syncTo(config.StructBodySyncTokens)
				stmt = nil
				return
			}
		}
	}()
	return parseOne()
}

func (p *Parser) parseStructMember() ast.Statement {
	switch p.cur().Type {
	case token.KwFun, token.KwStatic:
		return p.parseFunctionLike()
	case token.KwVar, token.KwLet, token.KwConst:
		return p.parseFieldDeclaration()
	case token.KwConstructor:
		return p.parseConstructorDeclaration()
	case token.KwDestructor:
		return p.parseDestructorDeclaration()
	case token.KwString:
		return p.parseStringDeclaration()
	case token.KwCast, token.KwImplicit, token.KwExplicit:
		return p.parseCastDeclaration()
	case token.KwOperator:
		return p.parseOperatorDeclaration()
	default:
		p.throwMissing("a struct member", p.cur())
		return nil
	}
}

// parseInterfaceMember supports only the member kinds that make sense
// as a signature-only contract: methods and fields.
func (p *Parser) parseInterfaceMember() ast.Statement {
	switch p.cur().Type {
	case token.KwFun, token.KwStatic:
		return p.parseFunctionLike()
	case token.KwVar, token.KwLet, token.KwConst:
		return p.parseFieldDeclaration()
	default:
		p.throwMissing("an interface member", p.cur())
		return nil
	}
}

func mutabilityName(m ast.FieldMutability) string {
	switch m {
	case ast.FieldImmutable:
		return "let"
	case ast.FieldConstant:
		return "const"
	default:
		return "var"
	}
}

// parseFieldDeclaration parses a struct field with its modifier bag
// (spec.md §4.8): `[static] (var|let|const) name : Type [= init]`.
// `var` fields may omit the initializer; `let`/`const` fields require
// one.
func (p *Parser) parseFieldDeclaration() ast.Statement {
	start := p.cur()
	isStatic := p.match(token.KwStatic)

	var mutability ast.FieldMutability
	switch p.cur().Type {
	case token.KwVar:
		p.advance()
		mutability = ast.FieldMutable
	case token.KwLet:
		p.advance()
		mutability = ast.FieldImmutable
	case token.KwConst:
		p.advance()
		mutability = ast.FieldConstant
	default:
		p.throwMissing("'var', 'let', or 'const' to begin a field declaration", p.cur())
	}

	if p.check(token.KwStatic) {
		dup := p.advance()
		p.reportf(diagnostics.InvalidModifier, dup.Range, "'static' must appear before a field's mutability keyword")
		isStatic = true
	}

	name := p.expect(token.Identifier, "a field name")
	p.expect(token.Colon, "':' before a field's type")
	typ := p.parseType()

	var init ast.Expression
	r := joinRange(start.Range, typ.Range())
	if p.match(token.Assign) {
		init = p.parseExpression()
		r = joinRange(r, init.Range())
	} else if mutability != ast.FieldMutable {
		p.reportf(diagnostics.RequiredInitializer, name.Range, "a %s field requires an initializer", mutabilityName(mutability))
	}
	return &ast.FieldDeclarationStatement{Name: name, Mutability: mutability, IsStatic: isStatic, Type: typ, Initializer: init, R: r}
}

func (p *Parser) parseConstructorDeclaration() ast.Statement {
	kw := p.expect(token.KwConstructor, "constructor")
	p.expect(token.LParen, "to begin a constructor's parameter list")
	var params []*ast.Parameter
	for !p.check(token.RParen) && !p.atEnd() {
		params = append(params, p.parseTypedParameter())
		if !p.match(token.Comma) {
			break
		}
	}
	p.expect(token.RParen, "to close a constructor's parameter list")
	body := p.parseBlock()
	return &ast.ConstructorDeclarationStatement{Params: params, Body: body, R: joinRange(kw.Range, body.Range())}
}

func (p *Parser) parseDestructorDeclaration() ast.Statement {
	kw := p.expect(token.KwDestructor, "destructor")
	p.expect(token.LParen, "to begin a destructor's (empty) parameter list")
	p.expect(token.RParen, "to close a destructor's parameter list")
	body := p.parseBlock()
	return &ast.DestructorDeclarationStatement{Body: body, R: joinRange(kw.Range, body.Range())}
}

func (p *Parser) parseStringDeclaration() ast.Statement {
	kw := p.expect(token.KwString, "string")
	p.expect(token.LParen, "to begin a custom string conversion's (empty) parameter list")
	p.expect(token.RParen, "to close a custom string conversion's parameter list")
	p.expect(token.Arrow, "'->' before a custom string conversion's return type")
	ret := p.parseType()
	body := p.parseFunctionBody()
	return &ast.StringDeclarationStatement{ReturnType: ret, Body: body, R: joinRange(kw.Range, body.Range())}
}

func (p *Parser) parseCastDeclaration() ast.Statement {
	start := p.cur()
	implicit := false
	if p.match(token.KwImplicit) {
		implicit = true
	} else {
		p.match(token.KwExplicit)
	}
	p.expect(token.KwCast, "cast")
	p.expect(token.LParen, "to begin a cast's parameter")
	param := p.parseTypedParameter()
	p.expect(token.RParen, "to close a cast's parameter")
	p.expect(token.Arrow, "'->' before a cast's return type")
	ret := p.parseType()
	body := p.parseFunctionBody()
	return &ast.CastDeclarationStatement{Implicit: implicit, Param: param, ReturnType: ret, Body: body, R: joinRange(start.Range, body.Range())}
}

// parseFunctionBody parses a `{ ... }` block or a `=> expr` shorthand
// body, shared by every declaration that owns a function-like body.
func (p *Parser) parseFunctionBody() ast.Statement {
	if p.check(token.LBrace) {
		return p.parseBlock()
	}
	p.expect(token.FatArrow, "'{' or '=>' to begin a body")
	expr := p.parseExpression()
	return &ast.ExpressionStatement{Expr: expr, R: expr.Range()}
}

// parseFunctionLike parses a named function declaration, dispatching to
// the external-function form when the signature is followed by
// `=> external(...)` (spec.md §4.6).
func (p *Parser) parseFunctionLike() ast.Statement {
	start := p.cur()
	isStatic := p.match(token.KwStatic)
	if p.check(token.KwStatic) {
		dup := p.advance()
		p.reportf(diagnostics.InvalidModifier, dup.Range, "duplicate 'static' modifier")
	}
	p.expect(token.KwFun, "fun")
	name := p.expect(token.Identifier, "a function name")

	var typeParams []token.Token
	if p.match(token.Lt) {
		for !p.check(token.Gt) && !p.atEnd() {
			typeParams = append(typeParams, p.expect(token.Identifier, "a type parameter"))
			if !p.match(token.Comma) {
				break
			}
		}
		p.expect(token.Gt, "'>' to close a type parameter list")
	}

	p.expect(token.LParen, "to begin a parameter list")
	var params []*ast.Parameter
	for !p.check(token.RParen) && !p.atEnd() {
		params = append(params, p.parseTypedParameter())
		if !p.match(token.Comma) {
			break
		}
	}
	closeParen := p.expect(token.RParen, "to close a parameter list")

	var ret ast.SyntaxType
	if p.match(token.Arrow) {
		ret = p.parseType()
	}
	sigRange := joinRange(start.Range, closeParen.Range)
	if ret != nil {
		sigRange = joinRange(sigRange, ret.Range())
	}

	if p.check(token.FatArrow) && p.peek(1).Type == token.KwExternal {
		p.advance() // '=>'
		p.advance() // 'external'
		p.expect(token.LParen, "to begin an external function's attribute list")
		attrs := p.parseExternalAttributes()
		closing := p.expect(token.RParen, "to close an external function's attribute list")
		return &ast.ExternalFunctionStatement{Name: name, Params: params, ReturnType: ret, Attributes: attrs, R: joinRange(start.Range, closing.Range)}
	}

	body := p.parseFunctionBody()
	return &ast.FunctionDeclarationStatement{
		Name: name, IsStatic: isStatic, TypeParams: typeParams, Params: params, ReturnType: ret,
		Body: body, SignatureRange: sigRange, R: joinRange(start.Range, body.Range()),
	}
}

// parseVarDeclaration parses a block/top-level `var`/`let`/`const`
// declaration statement (distinct from a struct field declaration,
// which never appears outside a struct body).
func (p *Parser) parseVarDeclaration() ast.Statement {
	switch p.cur().Type {
	case token.KwVar:
		kw := p.advance()
		name := p.expect(token.Identifier, "a variable name")
		var typ ast.SyntaxType
		r := joinRange(kw.Range, name.Range)
		if p.match(token.Colon) {
			typ = p.parseType()
			r = joinRange(r, typ.Range())
		}
		var init ast.Expression
		if p.match(token.Assign) {
			init = p.parseExpression()
			r = joinRange(r, init.Range())
		}
		p.match(token.Semicolon)
		return &ast.MutableVarDeclarationStatement{Name: name, Type: typ, Initializer: init, R: r}
	case token.KwLet:
		kw := p.advance()
		name := p.expect(token.Identifier, "a variable name")
		var typ ast.SyntaxType
		r := joinRange(kw.Range, name.Range)
		if p.match(token.Colon) {
			typ = p.parseType()
			r = joinRange(r, typ.Range())
		}
		if !p.match(token.Assign) {
			p.reportf(diagnostics.RequiredInitializer, name.Range, "'let' declarations require an initializer")
			p.match(token.Semicolon)
			return &ast.ImmutableVarDeclarationStatement{Name: name, Type: typ, R: r}
		}
		init := p.parseExpression()
		p.match(token.Semicolon)
		return &ast.ImmutableVarDeclarationStatement{Name: name, Type: typ, Initializer: init, R: joinRange(r, init.Range())}
	default: // token.KwConst
		kw := p.advance()
		name := p.expect(token.Identifier, "a variable name")
		var typ ast.SyntaxType
		r := joinRange(kw.Range, name.Range)
		if p.match(token.Colon) {
			typ = p.parseType()
			r = joinRange(r, typ.Range())
		}
		if !p.match(token.Assign) {
			p.reportf(diagnostics.RequiredInitializer, name.Range, "'const' declarations require an initializer")
			p.match(token.Semicolon)
			return &ast.ConstVarDeclarationStatement{Name: name, Type: typ, R: r}
		}
		init := p.parseExpression()
		p.match(token.Semicolon)
		return &ast.ConstVarDeclarationStatement{Name: name, Type: typ, Initializer: init, R: joinRange(r, init.Range())}
	}
}

func (p *Parser) parseBlock() *ast.BlockStatement {
	open := p.expect(token.LBrace, "to begin a block")
	var stmts []ast.Statement
	for !p.check(token.RBrace) && !p.atEnd() {
		s := p.parseBlockStatementRecovering()
		if s != nil {
			stmts = append(stmts, s)
		}
	}
	closing := p.expect(token.RBrace, "to close a block")
	return &ast.BlockStatement{Statements: stmts, R: joinRange(open.Range, closing.Range)}
}

func (p *Parser) parseBlockStatementRecovering() (stmt ast.Statement) {
	cpPos := p.pos
	defer func() {
		if r := recover(); r != nil {
			if d, isPE := diagnostics.Recover(r); isPE {
				p.diags.Add(d)
				if p.pos == cpPos {
					p.advance()
				}
				p.syncTo(config.BlockSyncTokens)
				stmt = nil
				return
			}
		}
	}()
	return p.parseBlockStatement()
}

func (p *Parser) parseBlockStatement() ast.Statement {
	switch p.cur().Type {
	case token.KwIf:
		return p.parseIfStatement()
	case token.KwReturn:
		return p.parseReturnStatement()
	case token.KwVar, token.KwLet, token.KwConst:
		return p.parseVarDeclaration()
	case token.LBrace:
		return p.parseBlock()
	default:
		expr := p.parseExpression()
		stmt := &ast.ExpressionStatement{Expr: expr, R: expr.Range()}
		p.match(token.Semicolon)
		return stmt
	}
}

func (p *Parser) parseIfStatement() ast.Statement {
	kw := p.expect(token.KwIf, "if")
	cond := p.parseExpression()
	then := p.parseBlock()
	r := joinRange(kw.Range, then.Range())

	var els ast.Statement
	if p.match(token.KwElse) {
		if p.check(token.KwIf) {
			els = p.parseIfStatement()
		} else {
			els = p.parseBlock()
		}
		r = joinRange(r, els.Range())
	}
	return &ast.IfStatement{Condition: cond, Then: then, Else: els, R: r}
}

func (p *Parser) parseReturnStatement() ast.Statement {
	kw := p.expect(token.KwReturn, "return")
	r := kw.Range
	var val ast.Expression
	if !p.check(token.RBrace) && !p.check(token.Semicolon) && !p.atEnd() {
		val = p.parseExpression()
		r = joinRange(r, val.Range())
	}
	p.match(token.Semicolon)
	return &ast.ReturnStatement{Value: val, R: r}
}
