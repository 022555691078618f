package parser

import (
	"github.com/beanstalk-lang/beanstalk/internal/ast"
	"github.com/beanstalk-lang/beanstalk/internal/diagnostics"
	"github.com/beanstalk-lang/beanstalk/internal/token"
)

// binaryOpTag maps an infix operator token to its ast.BinaryOp tag,
// reusing the same token set the expression grammar's binary levels
// recognize (spec.md §4.7 reuses the binary/unary precedence
// vocabulary for operator-overload operands).
func binaryOpTag(typ token.Type) (ast.BinaryOp, bool) {
	switch typ {
	case token.QuestionQuestion:
		return ast.OpNullCoalescence, true
	case token.Eq:
		return ast.OpEquals, true
	case token.NotEq:
		return ast.OpNotEquals, true
	case token.Pipe:
		return ast.OpOr, true
	case token.Caret:
		return ast.OpXor, true
	case token.Amp:
		return ast.OpAnd, true
	case token.LtEq:
		return ast.OpLessEqual, true
	case token.GtEq:
		return ast.OpGreaterEqual, true
	case token.Lt:
		return ast.OpLessThan, true
	case token.Gt:
		return ast.OpGreaterThan, true
	case token.RotLeft:
		return ast.OpRotLeft, true
	case token.RotRight:
		return ast.OpRotRight, true
	case token.ShiftLeft:
		return ast.OpShiftLeft, true
	case token.ShiftRight:
		return ast.OpShiftRight, true
	case token.Plus:
		return ast.OpAdd, true
	case token.Minus:
		return ast.OpSubtract, true
	case token.Star:
		return ast.OpMultiply, true
	case token.Slash:
		return ast.OpDivide, true
	case token.PercentPercent:
		return ast.OpPosMod, true
	case token.Percent:
		return ast.OpModulo, true
	case token.StarStar:
		return ast.OpPower, true
	case token.DotDot:
		return ast.OpRangeExclusive, true
	case token.DotDotEq:
		return ast.OpRangeInclusive, true
	default:
		return 0, false
	}
}

// parseOperatorDeclaration parses an operator overload declaration
// (spec.md §4.7): `operator (operand-grammar) -> ReturnType (block|=>expr)`.
// The operand grammar is a single Parameter, a prefix-unary-op
// Parameter, a Parameter-op-Parameter pair, or a Parameter followed by a
// postfix-unary op. A bare Parameter with no operator at all is
// rejected (a declaration must overload at least one operator), and
// `await` is rejected as an operator-overload operation.
func (p *Parser) parseOperatorDeclaration() ast.Statement {
	kw := p.expect(token.KwOperator, "operator")
	p.expect(token.LParen, "to begin an operator overload's operand")
	operation := p.parseOperationExpression()
	p.expect(token.RParen, "to close an operator overload's operand")
	p.expect(token.Arrow, "'->' before an operator overload's return type")
	ret := p.parseType()
	body := p.parseFunctionBody()

	if _, isPrimary := operation.(*ast.PrimaryOperationExpression); isPrimary {
		p.reportf(diagnostics.InvalidOperatorOverload, operation.Range(), "an operator overload must contain at least one operator")
	}

	return &ast.OperatorDeclarationStatement{Operation: operation, ReturnType: ret, Body: body, R: joinRange(kw.Range, body.Range())}
}

func (p *Parser) parseOperationExpression() ast.OperationExpression {
	if isPrefixUnaryOp(p.cur().Type) {
		op := p.advance()
		if op.Type == token.KwAwait {
			p.reportf(diagnostics.InvalidOperatorOverload, op.Range, "'await' is not a valid operator overload operation")
		}
		operand := p.parseTypedParameter()
		return &ast.UnaryOperationExpression{Op: prefixTag(op.Type), OpToken: op, Operand: operand, IsPrefix: true, R: joinRange(op.Range, operand.Range())}
	}

	left := p.parseTypedParameter()

	if tag, ok := binaryOpTag(p.cur().Type); ok {
		op := p.advance()
		right := p.parseTypedParameter()
		return &ast.BinaryOperationExpression{Left: left, Op: tag, OpToken: op, Right: right, R: joinRange(left.Range(), right.Range())}
	}

	if p.check(token.PlusPlus) || p.check(token.MinusMinus) {
		op := p.advance()
		tag := ast.OpPostIncrement
		if op.Type == token.MinusMinus {
			tag = ast.OpPostDecrement
		}
		return &ast.UnaryOperationExpression{Op: tag, OpToken: op, Operand: left, IsPrefix: false, R: joinRange(left.Range(), op.Range)}
	}

	return &ast.PrimaryOperationExpression{Operand: left, R: left.Range()}
}
