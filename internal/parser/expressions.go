package parser

import (
	"github.com/beanstalk-lang/beanstalk/internal/ast"
	"github.com/beanstalk-lang/beanstalk/internal/diagnostics"
	"github.com/beanstalk-lang/beanstalk/internal/lexer"
	"github.com/beanstalk-lang/beanstalk/internal/token"
)

// parseExpression is the entry point for expression parsing. At every
// entry the parser first tries a lambda (spec.md §4.2 "Lambda
// disambiguation"); on failure it rewinds and falls through to an
// ordinary assignment expression.
func (p *Parser) parseExpression() ast.Expression {
	if !p.disallowTrailingLambda {
		if lam, ok := tryParse(p, func() ast.Expression { return p.tryParseLambda() }); ok {
			return lam
		}
	}
	return p.parseAssignment()
}

// parseAssignment is precedence level 1: right-associative, chainable.
func (p *Parser) parseAssignment() ast.Expression {
	left := p.parseConditional()
	if p.check(token.Assign) {
		p.advance()
		value := p.parseAssignment()
		return &ast.AssignmentExpression{Target: left, Value: value, R: joinRange(left.Range(), value.Range())}
	}
	return left
}

// parseConditional is precedence level 2: `cond ? then : else`,
// right-associative.
func (p *Parser) parseConditional() ast.Expression {
	cond := p.parseNullCoalesce()
	if p.check(token.Question) {
		p.advance()
		then := p.parseExpression()
		p.expect(token.Colon, "after '?' branch of a conditional expression")
		els := p.parseConditional()
		return &ast.ConditionalExpression{Condition: cond, Then: then, Else: els, R: joinRange(cond.Range(), els.Range())}
	}
	return cond
}

// parseNullCoalesce is precedence level 3.
func (p *Parser) parseNullCoalesce() ast.Expression {
	left := p.parseEquality()
	for p.check(token.QuestionQuestion) {
		op := p.advance()
		right := p.parseEquality()
		left = &ast.BinaryExpression{Left: left, Op: ast.OpNullCoalescence, OpToken: op, Right: right, R: joinRange(left.Range(), right.Range())}
	}
	return left
}

// parseEquality is precedence level 4.
func (p *Parser) parseEquality() ast.Expression {
	left := p.parseBitOr()
	for p.check(token.Eq) || p.check(token.NotEq) {
		op := p.advance()
		tag := ast.OpEquals
		if op.Type == token.NotEq {
			tag = ast.OpNotEquals
		}
		right := p.parseBitOr()
		left = &ast.BinaryExpression{Left: left, Op: tag, OpToken: op, Right: right, R: joinRange(left.Range(), right.Range())}
	}
	return left
}

// parseBitOr is precedence level 5.
func (p *Parser) parseBitOr() ast.Expression {
	left := p.parseBitXor()
	for p.check(token.Pipe) {
		op := p.advance()
		right := p.parseBitXor()
		left = &ast.BinaryExpression{Left: left, Op: ast.OpOr, OpToken: op, Right: right, R: joinRange(left.Range(), right.Range())}
	}
	return left
}

// parseBitXor is precedence level 6.
func (p *Parser) parseBitXor() ast.Expression {
	left := p.parseBitAnd()
	for p.check(token.Caret) {
		op := p.advance()
		right := p.parseBitAnd()
		left = &ast.BinaryExpression{Left: left, Op: ast.OpXor, OpToken: op, Right: right, R: joinRange(left.Range(), right.Range())}
	}
	return left
}

// parseBitAnd is precedence level 7.
func (p *Parser) parseBitAnd() ast.Expression {
	left := p.parseRelational()
	for p.check(token.Amp) {
		op := p.advance()
		right := p.parseRelational()
		left = &ast.BinaryExpression{Left: left, Op: ast.OpAnd, OpToken: op, Right: right, R: joinRange(left.Range(), right.Range())}
	}
	return left
}

func isRelationalOp(typ token.Type) bool {
	switch typ {
	case token.LtEq, token.GtEq, token.Lt, token.Gt, token.KwIs, token.KwAs:
		return true
	}
	return false
}

// parseRelational is precedence level 8: `<= >= < >` / `is` / `as`, a
// single (non-chained) comparison per sub-expression. `a < b < c`
// records a RelationalChaining diagnostic at the second operator but
// keeps parsing so a partial AST is still produced (spec.md §4.2, §8
// property 4, scenario S3).
func (p *Parser) parseRelational() ast.Expression {
	left := p.parseShift()
	consumed := false
	for isRelationalOp(p.cur().Type) {
		op := p.advance()
		if consumed {
			p.reportf(diagnostics.RelationalChaining, op.Range, "relational operators do not chain: wrap one comparison in parentheses")
		}
		if op.Type == token.KwIs || op.Type == token.KwAs {
			tag := ast.OpIs
			if op.Type == token.KwAs {
				tag = ast.OpAs
			}
			right := p.parseType()
			left = &ast.BinaryExpression{Left: left, Op: tag, OpToken: op, Right: right, R: joinRange(left.Range(), right.Range())}
		} else {
			tag := relationalTag(op.Type)
			right := p.parseShift()
			left = &ast.BinaryExpression{Left: left, Op: tag, OpToken: op, Right: right, R: joinRange(left.Range(), right.Range())}
		}
		consumed = true
	}
	return left
}

func relationalTag(typ token.Type) ast.BinaryOp {
	switch typ {
	case token.LtEq:
		return ast.OpLessEqual
	case token.GtEq:
		return ast.OpGreaterEqual
	case token.Lt:
		return ast.OpLessThan
	case token.Gt:
		return ast.OpGreaterThan
	default:
		return ast.OpLessThan
	}
}

// parseShift is precedence level 9: rotate and shift.
func (p *Parser) parseShift() ast.Expression {
	left := p.parseAdditive()
	for {
		var tag ast.BinaryOp
		switch p.cur().Type {
		case token.RotLeft:
			tag = ast.OpRotLeft
		case token.RotRight:
			tag = ast.OpRotRight
		case token.ShiftLeft:
			tag = ast.OpShiftLeft
		case token.ShiftRight:
			tag = ast.OpShiftRight
		default:
			return left
		}
		op := p.advance()
		right := p.parseAdditive()
		left = &ast.BinaryExpression{Left: left, Op: tag, OpToken: op, Right: right, R: joinRange(left.Range(), right.Range())}
	}
}

// parseAdditive is precedence level 10.
func (p *Parser) parseAdditive() ast.Expression {
	left := p.parseMultiplicative()
	for p.check(token.Plus) || p.check(token.Minus) {
		op := p.advance()
		tag := ast.OpAdd
		if op.Type == token.Minus {
			tag = ast.OpSubtract
		}
		right := p.parseMultiplicative()
		left = &ast.BinaryExpression{Left: left, Op: tag, OpToken: op, Right: right, R: joinRange(left.Range(), right.Range())}
	}
	return left
}

// parseMultiplicative is precedence level 11: `* / %% %`. The %%/%
// spelling for positive-modulo vs. Euclidean-modulo follows the
// decision recorded in DESIGN.md (spec.md §9 open question 1).
func (p *Parser) parseMultiplicative() ast.Expression {
	left := p.parsePower()
	for {
		var tag ast.BinaryOp
		switch p.cur().Type {
		case token.Star:
			tag = ast.OpMultiply
		case token.Slash:
			tag = ast.OpDivide
		case token.PercentPercent:
			tag = ast.OpPosMod
		case token.Percent:
			tag = ast.OpModulo
		default:
			return left
		}
		op := p.advance()
		right := p.parsePower()
		left = &ast.BinaryExpression{Left: left, Op: tag, OpToken: op, Right: right, R: joinRange(left.Range(), right.Range())}
	}
}

// parsePower is precedence level 12: right-recursive (`a ** b ** c` =
// `a ** (b ** c)`, spec.md §8 scenario S2).
func (p *Parser) parsePower() ast.Expression {
	left := p.parseSwitchWith()
	if p.check(token.StarStar) {
		op := p.advance()
		right := p.parsePower()
		return &ast.BinaryExpression{Left: left, Op: ast.OpPower, OpToken: op, Right: right, R: joinRange(left.Range(), right.Range())}
	}
	return left
}

// parseSwitchWith is precedence level 13: `switch`/`with` are reserved
// shells (spec.md §3.3, §9 open question 3); the parser accepts the
// keyword but never parses a body.
func (p *Parser) parseSwitchWith() ast.Expression {
	switch p.cur().Type {
	case token.KwSwitch:
		tok := p.advance()
		return &ast.SwitchExpression{Keyword: tok, R: tok.Range}
	case token.KwWith:
		tok := p.advance()
		return &ast.WithExpression{Keyword: tok, R: tok.Range}
	default:
		return p.parseRange()
	}
}

// parseRange is precedence level 14: `.. ..=`. Ranges pair only with
// prefix-unary expressions, not arbitrary sub-expressions
// (spec.md §4.2).
func (p *Parser) parseRange() ast.Expression {
	left := p.parsePrefixUnary()
	for p.check(token.DotDot) || p.check(token.DotDotEq) {
		op := p.advance()
		tag := ast.OpRangeExclusive
		if op.Type == token.DotDotEq {
			tag = ast.OpRangeInclusive
		}
		right := p.parsePrefixUnary()
		left = &ast.BinaryExpression{Left: left, Op: tag, OpToken: op, Right: right, R: joinRange(left.Range(), right.Range())}
	}
	return left
}

func isPrefixUnaryOp(typ token.Type) bool {
	switch typ {
	case token.PlusPlus, token.MinusMinus, token.Plus, token.Minus, token.Tilde, token.Bang, token.KwAwait:
		return true
	}
	return false
}

func prefixTag(typ token.Type) ast.UnaryOp {
	switch typ {
	case token.PlusPlus:
		return ast.OpPreIncrement
	case token.MinusMinus:
		return ast.OpPreDecrement
	case token.Plus:
		return ast.OpIdentity
	case token.Minus:
		return ast.OpNegate
	case token.Tilde:
		return ast.OpBitwiseNegate
	case token.Bang:
		return ast.OpLogicalNot
	case token.KwAwait:
		return ast.OpAwait
	default:
		return ast.OpIdentity
	}
}

// parsePrefixUnary is precedence level 15: right-recursive prefix
// unary operators, with literal folding (spec.md §4.2 "Prefix literal
// folding").
func (p *Parser) parsePrefixUnary() ast.Expression {
	if isPrefixUnaryOp(p.cur().Type) {
		op := p.advance()
		operand := p.parsePrefixUnary()
		if folded, ok := foldLiteral(op, operand); ok {
			return folded
		}
		tag := prefixTag(op.Type)
		return &ast.UnaryExpression{Operand: operand, Op: tag, OpToken: op, IsPrefix: true, R: joinRange(op.Range, operand.Range())}
	}
	return p.parsePostfixChain()
}

// foldLiteral implements spec.md §4.2's prefix-literal-folding rule:
// when a prefix unary operator applies directly to a literal token, the
// result folds into a new literal token rather than wrapping a
// UnaryExpression.
func foldLiteral(op token.Token, operand ast.Expression) (ast.Expression, bool) {
	te, ok := operand.(*ast.TokenExpression)
	if !ok || !te.Tok.IsLiteral() {
		return nil, false
	}
	switch op.Type {
	case token.Plus:
		if te.Tok.Type == token.Int || te.Tok.Type == token.Float {
			return &ast.TokenExpression{Tok: te.Tok, R: joinRange(op.Range, te.R)}, true
		}
	case token.Minus:
		if te.Tok.Type == token.Int || te.Tok.Type == token.Float {
			folded := te.Tok
			folded.Value = lexer.FoldNegate(te.Tok.Value)
			folded.Range = joinRange(op.Range, te.R)
			return &ast.TokenExpression{Tok: folded, R: folded.Range}, true
		}
	case token.Tilde:
		if te.Tok.Type == token.Int {
			folded := te.Tok
			folded.Value = lexer.FoldBitwiseNegate(te.Tok.Value)
			folded.Range = joinRange(op.Range, te.R)
			return &ast.TokenExpression{Tok: folded, R: folded.Range}, true
		}
	case token.Bang:
		if te.Tok.Type == token.Bool {
			folded := te.Tok
			folded.Value = !te.Tok.Value.(bool)
			folded.Range = joinRange(op.Range, te.R)
			return &ast.TokenExpression{Tok: folded, R: folded.Range}, true
		}
	}
	return nil, false
}

// parsePostfixChain is precedence level 16: `::Type` cast (terminal),
// at most one `(..)` call until the chain passes through a
// `.`/`?.`/`[..]`/`{..}` step, `.`/`?.` access, `[..]`/`?[..]` index,
// `{..}` instantiation, and `++`/`--` postfix (spec.md §4.2).
func (p *Parser) parsePostfixChain() ast.Expression {
	expr := p.parsePrimary()
	calledOnce := false

	for {
		switch p.cur().Type {
		case token.ColonColon:
			p.advance()
			target := p.parseType()
			expr = &ast.CastExpression{Source: expr, Target: target, R: joinRange(expr.Range(), target.Range())}
			return expr // cast is terminal in the chain
		case token.LParen:
			if calledOnce {
				return expr
			}
			expr = p.parseCallArguments(expr)
			calledOnce = true
		case token.Dot, token.QuestionDot:
			nullCheck := p.cur().Type == token.QuestionDot
			p.advance()
			member := p.expect(token.Identifier, "after '.' in a member access")
			expr = &ast.AccessExpression{Source: expr, Member: member, NullCheck: nullCheck, R: joinRange(expr.Range(), member.Range)}
			calledOnce = false
		case token.LBracket, token.QuestionBracket:
			result, handled := p.parseIndexOrRewindToType(expr)
			if !handled {
				return expr
			}
			expr = result
			calledOnce = false
		case token.LBrace:
			inst, ok := p.tryParseInstantiation(expr)
			if !ok {
				return expr
			}
			expr = inst
			calledOnce = false
		case token.PlusPlus, token.MinusMinus:
			op := p.advance()
			tag := ast.OpPostIncrement
			if op.Type == token.MinusMinus {
				tag = ast.OpPostDecrement
			}
			expr = &ast.UnaryExpression{Operand: expr, Op: tag, OpToken: op, IsPrefix: false, R: joinRange(expr.Range(), op.Range)}
		default:
			return expr
		}
	}
}

func (p *Parser) parseCallArguments(callee ast.Expression) ast.Expression {
	p.expect(token.LParen, "to begin a call's argument list")
	var args []ast.Expression
	for !p.check(token.RParen) && !p.atEnd() {
		args = append(args, p.parseExpression())
		if !p.match(token.Comma) {
			break
		}
	}
	closing := p.expect(token.RParen, "to close a call's argument list")
	return &ast.FunctionCallExpression{Callee: callee, Args: args, R: joinRange(callee.Range(), closing.Range)}
}

// parseIndexOrRewindToType implements spec.md §4.2's
// `name[i]` vs `Name[T]` disambiguation: an IndexExpression parse
// failure whose source is a bare identifier or type-keyword token
// rewinds to the start of the postfix chain and re-parses the input as
// a SyntaxType.
func (p *Parser) parseIndexOrRewindToType(source_ ast.Expression) (ast.Expression, bool) {
	nullCheck := p.cur().Type == token.QuestionBracket
	result, ok := tryParse(p, func() ast.Expression {
		p.advance() // '[' or '?['
		index := p.parseExpression()
		closing := p.expect(token.RBracket, "to close an index expression")
		return &ast.IndexExpression{Source: source_, Index: index, NullCheck: nullCheck, R: joinRange(source_.Range(), closing.Range)}
	})
	if ok {
		return result, true
	}
	if !isRewindableTypeSource(source_) {
		return nil, false
	}
	base, baseOK := tokenToBaseSyntaxType(source_)
	if !baseOK {
		return nil, false
	}
	typ := p.parseTypeSuffixesFrom(base)
	return typ, true
}

func isRewindableTypeSource(e ast.Expression) bool {
	te, ok := e.(*ast.TokenExpression)
	if !ok {
		return false
	}
	return te.Tok.Type == token.Identifier || token.IsPrimitiveType(te.Tok.Type)
}

// parsePrimary is precedence level 17.
func (p *Parser) parsePrimary() ast.Expression {
	tok := p.cur()
	switch tok.Type {
	case token.Int, token.Float, token.Bool, token.Char, token.String:
		p.advance()
		return &ast.TokenExpression{Tok: tok, R: tok.Range}
	case token.KwTrue, token.KwFalse:
		p.advance()
		tok.Type = token.Bool
		return &ast.TokenExpression{Tok: tok, R: tok.Range}
	case token.InterpString:
		p.advance()
		return p.parseInterpolatedString(tok)
	case token.KwNull, token.KwThis, token.KwNew:
		p.advance()
		return &ast.TokenExpression{Tok: tok, R: tok.Range}
	case token.Identifier:
		p.advance()
		return &ast.TokenExpression{Tok: tok, R: tok.Range}
	case token.LParen:
		return p.parseParenOrTuple()
	case token.LBracket:
		return p.parseListOrMap()
	case token.KwRef, token.KwVar:
		return p.parseType()
	default:
		if token.IsPrimitiveType(tok.Type) {
			return p.parseType()
		}
		p.throwMissing("an expression", tok)
		return nil
	}
}

func (p *Parser) parseParenOrTuple() ast.Expression {
	open := p.expect(token.LParen, "to begin a parenthesized expression")
	var elems []ast.Expression
	for !p.check(token.RParen) && !p.atEnd() {
		elems = append(elems, p.parseExpression())
		if !p.match(token.Comma) {
			break
		}
	}
	closing := p.expect(token.RParen, "to close a parenthesized expression")
	r := joinRange(open.Range, closing.Range)
	if len(elems) == 1 {
		return elems[0] // single-element parenthesized list is not a tuple
	}
	return &ast.TupleExpression{Elements: elems, R: r}
}

// parseListOrMap implements spec.md §4.2's "List vs map": at the
// opening `[`, the parser first attempts a map expression via bounded
// try-parse; on failure it rewinds and parses a list.
func (p *Parser) parseListOrMap() ast.Expression {
	if m, ok := tryParse(p, func() ast.Expression { return p.parseMapExpression() }); ok {
		return m
	}
	return p.parseListExpression()
}

// parseMapExpression requires at least one `keyExpr => valueExpr` pair;
// absence of any pair is treated as a parse failure so the caller falls
// back to a list.
func (p *Parser) parseMapExpression() ast.Expression {
	open := p.expect(token.LBracket, "to begin a map expression")
	var keys, values []ast.Expression
	key := p.parseExpression()
	p.expect(token.FatArrow, "'=>' in a map expression entry")
	value := p.parseExpression()
	keys = append(keys, key)
	values = append(values, value)
	for p.match(token.Comma) {
		if p.check(token.RBracket) {
			break
		}
		k := p.parseExpression()
		p.expect(token.FatArrow, "'=>' in a map expression entry")
		v := p.parseExpression()
		keys = append(keys, k)
		values = append(values, v)
	}
	closing := p.expect(token.RBracket, "to close a map expression")
	r := joinRange(open.Range, closing.Range)
	var ann *ast.TupleSyntaxType
	if p.match(token.Colon) {
		t := p.parseType()
		tt, ok := t.(*ast.TupleSyntaxType)
		if !ok || len(tt.Components) != 2 {
			p.reportf(diagnostics.InvalidMapType, t.Range(), "a map's type annotation must be a 2-component tuple type")
		} else {
			ann = tt
			r = joinRange(r, t.Range())
		}
	}
	return &ast.MapExpression{Keys: keys, Values: values, Annotation: ann, R: r}
}

func (p *Parser) parseListExpression() ast.Expression {
	open := p.expect(token.LBracket, "to begin a list expression")
	var elems []ast.Expression
	for !p.check(token.RBracket) && !p.atEnd() {
		elems = append(elems, p.parseExpression())
		if !p.match(token.Comma) {
			break
		}
	}
	closing := p.expect(token.RBracket, "to close a list expression")
	r := joinRange(open.Range, closing.Range)
	var elemType ast.SyntaxType
	if p.match(token.Colon) {
		elemType = p.parseType()
		r = joinRange(r, elemType.Range())
	}
	return &ast.ListExpression{Elements: elems, ElemType: elemType, R: r}
}

// tryParseLambda implements the lambda grammar of spec.md §4.2: either
// `(params) [-> Type] { ... }` / `(params) [-> Type] => expr`, or a
// single-identifier-parameter shorthand `ident => expr`. Parameters
// inside parens require explicit `: Type` annotations — no inference —
// which is what makes this try-parse cheap to abandon.
func (p *Parser) tryParseLambda() ast.Expression {
	if p.check(token.Identifier) && p.peek(1).Type == token.FatArrow {
		name := p.advance()
		p.advance() // '=>'
		param := &ast.Parameter{Identifier: name, R: name.Range}
		body := p.parseLambdaExprBody()
		return &ast.LambdaExpression{Params: []*ast.Parameter{param}, Body: body, R: joinRange(name.Range, body.Range())}
	}

	open := p.expect(token.LParen, "to begin a lambda parameter list")
	var params []*ast.Parameter
	for !p.check(token.RParen) && !p.atEnd() {
		params = append(params, p.parseTypedParameter())
		if !p.match(token.Comma) {
			break
		}
	}
	p.expect(token.RParen, "to close a lambda parameter list")

	var ret ast.SyntaxType
	if p.match(token.Arrow) {
		ret = p.parseType()
	}

	var body ast.Statement
	switch {
	case p.check(token.LBrace):
		body = p.parseBlock()
	case p.match(token.FatArrow):
		body = p.parseLambdaExprBody()
	default:
		p.throwMissing("'{' or '=>' to begin a lambda body", p.cur())
	}
	return &ast.LambdaExpression{Params: params, ReturnType: ret, Body: body, R: joinRange(open.Range, body.Range())}
}

func (p *Parser) parseLambdaExprBody() ast.Statement {
	expr := p.parseExpression()
	return &ast.ExpressionStatement{Expr: expr, R: expr.Range()}
}

// parseTypedParameter parses `[...] [var] ident : Type [= default]`
// (GLOSSARY: "Parameter"). The lambda grammar always requires the type
// annotation; other parameter contexts (functions) also always require
// one, per spec.md §4.8's field-declaration requirement extended
// uniformly to parameters.
func (p *Parser) parseTypedParameter() *ast.Parameter {
	start := p.cur()
	variadic := false
	if p.match(token.Ellipsis) {
		variadic = true
	}
	mutable := false
	if p.match(token.KwVar) {
		mutable = true
	}
	name := p.expect(token.Identifier, "a parameter name")
	p.expect(token.Colon, "':' before a parameter's type")
	typ := p.parseType()
	var def ast.Expression
	r := joinRange(start.Range, typ.Range())
	if p.match(token.Assign) {
		def = p.parseExpression()
		r = joinRange(r, def.Range())
	}
	return &ast.Parameter{Identifier: name, Type: typ, Default: def, IsVariadic: variadic, IsMutable: mutable, R: r}
}

// tryParseInstantiation implements spec.md §4.2's instantiation rule:
// `Type{field = expr, ...}`. base must convert to a valid SyntaxType —
// BaseSyntaxType from an identifier/type-keyword token, or
// GenericSyntaxType from a convertible IndexExpression.
func (p *Parser) tryParseInstantiation(base ast.Expression) (ast.Expression, bool) {
	typ, ok := toSyntaxType(base)
	if !ok {
		return nil, false
	}
	res, ok := tryParse(p, func() ast.Expression {
		p.expect(token.LBrace, "to begin an instantiation")
		var fields []ast.FieldInit
		seen := map[string]bool{}
		for !p.check(token.RBrace) && !p.atEnd() {
			name := p.expect(token.Identifier, "a field name")
			p.expect(token.Assign, "'=' after a field name in an instantiation")
			value := p.parseExpression()
			if seen[name.Text] {
				p.reportf(diagnostics.InvalidInstantiationType, name.Range, "duplicate field %q in instantiation", name.Text)
			}
			seen[name.Text] = true
			fields = append(fields, ast.FieldInit{Name: name, Value: value})
			if !p.match(token.Comma) {
				break
			}
		}
		closing := p.expect(token.RBrace, "to close an instantiation")
		return &ast.InstantiationExpression{Type: typ, Fields: fields, R: joinRange(typ.Range(), closing.Range)}
	})
	return res, ok
}

// toSyntaxType converts an already-parsed Expression to a SyntaxType
// when spec.md §4.2's instantiation rule allows it.
func toSyntaxType(e ast.Expression) (ast.SyntaxType, bool) {
	if st, ok := e.(ast.SyntaxType); ok {
		return st, true
	}
	switch n := e.(type) {
	case *ast.TokenExpression:
		if n.Tok.Type == token.Identifier || token.IsPrimitiveType(n.Tok.Type) {
			return &ast.BaseSyntaxType{Tok: n.Tok, R: n.R}, true
		}
	case *ast.IndexExpression:
		base, ok := toSyntaxType(n.Source)
		if !ok {
			return nil, false
		}
		argType, ok := toSyntaxType(n.Index)
		if !ok {
			return nil, false
		}
		return &ast.GenericSyntaxType{Base: base, Args: []ast.SyntaxType{argType}, R: n.R}, true
	}
	return nil, false
}

func tokenToBaseSyntaxType(e ast.Expression) (ast.SyntaxType, bool) {
	te, ok := e.(*ast.TokenExpression)
	if !ok {
		return nil, false
	}
	return &ast.BaseSyntaxType{Tok: te.Tok, R: te.R}, true
}
