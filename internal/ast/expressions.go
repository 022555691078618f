package ast

import (
	"github.com/beanstalk-lang/beanstalk/internal/source"
	"github.com/beanstalk-lang/beanstalk/internal/token"
)

// TokenExpression wraps a single literal or identifier token reference.
type TokenExpression struct {
	Tok token.Token
	R   source.Range
}

func (e *TokenExpression) Range() source.Range { return e.R }
func (e *TokenExpression) expressionNode()      {}
func (e *TokenExpression) Accept(v Visitor)     { v.VisitTokenExpression(e) }

// TupleExpression is a parenthesized, comma-separated list of >= 2
// elements. A single-element parenthesized expression is never wrapped
// here; the parser unwraps it.
type TupleExpression struct {
	Elements []Expression
	R        source.Range
}

func (e *TupleExpression) Range() source.Range { return e.R }
func (e *TupleExpression) expressionNode()      {}
func (e *TupleExpression) Accept(v Visitor)     { v.VisitTupleExpression(e) }

// ListExpression is a bracketed list literal with an optional element
// SyntaxType annotation (`[1, 2, 3]: i32[]`).
type ListExpression struct {
	Elements []Expression
	ElemType SyntaxType // optional
	R        source.Range
}

func (e *ListExpression) Range() source.Range { return e.R }
func (e *ListExpression) expressionNode()      {}
func (e *ListExpression) Accept(v Visitor)     { v.VisitListExpression(e) }

// MapExpression is an ordered sequence of key/value expression pairs
// with an optional (K, V) tuple-type annotation.
type MapExpression struct {
	Keys       []Expression
	Values     []Expression
	Annotation *TupleSyntaxType // optional, must have exactly 2 components
	R          source.Range
}

func (e *MapExpression) Range() source.Range { return e.R }
func (e *MapExpression) expressionNode()      {}
func (e *MapExpression) Accept(v Visitor)     { v.VisitMapExpression(e) }

// FieldInit is one `identifier = expression` pair inside an
// InstantiationExpression.
type FieldInit struct {
	Name  token.Token
	Value Expression
}

// InstantiationExpression is struct-construction syntax:
// `Type{field = expr, ...}` (GLOSSARY: "Instantiation").
type InstantiationExpression struct {
	Type   SyntaxType
	Fields []FieldInit
	R      source.Range
}

func (e *InstantiationExpression) Range() source.Range { return e.R }
func (e *InstantiationExpression) expressionNode()      {}
func (e *InstantiationExpression) Accept(v Visitor)     { v.VisitInstantiationExpression(e) }

// FunctionCallExpression is a callee expression applied to ordered
// arguments.
type FunctionCallExpression struct {
	Callee Expression
	Args   []Expression
	R      source.Range
}

func (e *FunctionCallExpression) Range() source.Range { return e.R }
func (e *FunctionCallExpression) expressionNode()      {}
func (e *FunctionCallExpression) Accept(v Visitor)     { v.VisitFunctionCallExpression(e) }

// CastExpression is `source :: Type`.
type CastExpression struct {
	Source Expression
	Target SyntaxType
	R      source.Range
}

func (e *CastExpression) Range() source.Range { return e.R }
func (e *CastExpression) expressionNode()      {}
func (e *CastExpression) Accept(v Visitor)     { v.VisitCastExpression(e) }

// AccessExpression is member access: `.` (NullCheck = false) or `?.`
// (NullCheck = true).
type AccessExpression struct {
	Source    Expression
	Member    token.Token
	NullCheck bool
	R         source.Range
}

func (e *AccessExpression) Range() source.Range { return e.R }
func (e *AccessExpression) expressionNode()      {}
func (e *AccessExpression) Accept(v Visitor)     { v.VisitAccessExpression(e) }

// IndexExpression is indexing: `[...]` (NullCheck = false) or `?[...]`
// (NullCheck = true).
type IndexExpression struct {
	Source    Expression
	Index     Expression
	NullCheck bool
	R         source.Range
}

func (e *IndexExpression) Range() source.Range { return e.R }
func (e *IndexExpression) expressionNode()      {}
func (e *IndexExpression) Accept(v Visitor)     { v.VisitIndexExpression(e) }

// AssignmentExpression is `target = value`; right-associative and
// chainable (`a = b = c`).
type AssignmentExpression struct {
	Target Expression
	Value  Expression
	R      source.Range
}

func (e *AssignmentExpression) Range() source.Range { return e.R }
func (e *AssignmentExpression) expressionNode()      {}
func (e *AssignmentExpression) Accept(v Visitor)     { v.VisitAssignmentExpression(e) }

// LambdaExpression is an anonymous function literal.
type LambdaExpression struct {
	Params     []*Parameter
	ReturnType SyntaxType // optional
	Body       Statement
	R          source.Range
}

func (e *LambdaExpression) Range() source.Range { return e.R }
func (e *LambdaExpression) expressionNode()      {}
func (e *LambdaExpression) Accept(v Visitor)     { v.VisitLambdaExpression(e) }

// ConditionalExpression is the ternary `condition ? then : else`.
type ConditionalExpression struct {
	Condition Expression
	Then      Expression
	Else      Expression // optional
	R         source.Range
}

func (e *ConditionalExpression) Range() source.Range { return e.R }
func (e *ConditionalExpression) expressionNode()      {}
func (e *ConditionalExpression) Accept(v Visitor)     { v.VisitConditionalExpression(e) }

// BinaryExpression is a binary operator application.
type BinaryExpression struct {
	Left     Expression
	Op       BinaryOp
	OpToken  token.Token
	Right    Expression
	R        source.Range
}

func (e *BinaryExpression) Range() source.Range { return e.R }
func (e *BinaryExpression) expressionNode()      {}
func (e *BinaryExpression) Accept(v Visitor)     { v.VisitBinaryExpression(e) }

// UnaryExpression is a prefix or postfix unary operator application.
type UnaryExpression struct {
	Operand  Expression
	Op       UnaryOp
	OpToken  token.Token
	IsPrefix bool
	R        source.Range
}

func (e *UnaryExpression) Range() source.Range { return e.R }
func (e *UnaryExpression) expressionNode()      {}
func (e *UnaryExpression) Accept(v Visitor)     { v.VisitUnaryExpression(e) }

// SwitchExpression is a reserved shell: the parser accepts the `switch`
// keyword but does not parse a body (spec.md §3.3, §9 open question 3).
type SwitchExpression struct {
	Keyword token.Token
	R       source.Range
}

func (e *SwitchExpression) Range() source.Range { return e.R }
func (e *SwitchExpression) expressionNode()      {}
func (e *SwitchExpression) Accept(v Visitor)     { v.VisitSwitchExpression(e) }

// WithExpression is a reserved shell: the parser accepts the `with`
// keyword but does not parse a body (spec.md §3.3, §9 open question 3).
type WithExpression struct {
	Keyword token.Token
	R       source.Range
}

func (e *WithExpression) Range() source.Range { return e.R }
func (e *WithExpression) expressionNode()      {}
func (e *WithExpression) Accept(v Visitor)     { v.VisitWithExpression(e) }

// InterpolatedStringExpression is an ordered sequence of string-literal
// parts (TokenExpression) and re-parsed sub-expression parts.
type InterpolatedStringExpression struct {
	Parts []Expression
	R     source.Range
}

func (e *InterpolatedStringExpression) Range() source.Range { return e.R }
func (e *InterpolatedStringExpression) expressionNode()      {}
func (e *InterpolatedStringExpression) Accept(v Visitor)     { v.VisitInterpolatedStringExpression(e) }

// OperationExpression is the common marker for the operator-overload
// operand grammar of spec.md §4.7; its three variants follow.
type OperationExpression interface {
	Expression
	operationExpressionNode()
}

// PrimaryOperationExpression wraps a single bare Parameter with no
// operator — always rejected at the declaration level (spec.md §4.7,
// "a declaration must contain at least one operator").
type PrimaryOperationExpression struct {
	Operand *Parameter
	R       source.Range
}

func (e *PrimaryOperationExpression) Range() source.Range      { return e.R }
func (e *PrimaryOperationExpression) expressionNode()           {}
func (e *PrimaryOperationExpression) operationExpressionNode()   {}
func (e *PrimaryOperationExpression) Accept(v Visitor)           { v.VisitPrimaryOperationExpression(e) }

// UnaryOperationExpression is a unary operator overload signature; the
// `await` operation is rejected by the parser, never constructed.
type UnaryOperationExpression struct {
	Op       UnaryOp
	OpToken  token.Token
	Operand  *Parameter
	IsPrefix bool
	R        source.Range
}

func (e *UnaryOperationExpression) Range() source.Range    { return e.R }
func (e *UnaryOperationExpression) expressionNode()         {}
func (e *UnaryOperationExpression) operationExpressionNode() {}
func (e *UnaryOperationExpression) Accept(v Visitor)         { v.VisitUnaryOperationExpression(e) }

// BinaryOperationExpression is a binary operator overload signature,
// composed of exactly two Parameter operands.
type BinaryOperationExpression struct {
	Left     *Parameter
	Op       BinaryOp
	OpToken  token.Token
	Right    *Parameter
	R        source.Range
}

func (e *BinaryOperationExpression) Range() source.Range    { return e.R }
func (e *BinaryOperationExpression) expressionNode()         {}
func (e *BinaryOperationExpression) operationExpressionNode() {}
func (e *BinaryOperationExpression) Accept(v Visitor)         { v.VisitBinaryOperationExpression(e) }
