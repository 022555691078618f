// Package ast defines Beanstalk's abstract syntax tree: statements,
// expressions, and the syntax-type vocabulary the parser emits, plus the
// dual visitor protocol consumers dispatch on.
package ast

import (
	"strings"

	"github.com/beanstalk-lang/beanstalk/internal/source"
	"github.com/beanstalk-lang/beanstalk/internal/token"
)

// Node is the base interface implemented by every AST node. Every node
// owns a TextRange covering the source it was built from (spec.md §3.4),
// and accepts a Visitor for double dispatch (spec.md §6).
type Node interface {
	Range() source.Range
	Accept(v Visitor)
}

// Statement is a Node that occupies statement position.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that occupies expression position. SyntaxType
// embeds Expression so a type expression may stand in for an expression
// during instantiation/generic disambiguation (spec.md §3.2).
type Expression interface {
	Node
	expressionNode()
}

// SyntaxType is a type expression appearing in source.
type SyntaxType interface {
	Expression
	syntaxTypeNode()
}

// ModuleName is a dotted sequence of identifiers naming a module
// (GLOSSARY: "Module name"), stored as the ordered token list plus the
// joined dotted string.
type ModuleName struct {
	Parts []token.Token
	R     source.Range
}

func (m *ModuleName) Range() source.Range { return m.R }

// Joined returns the dotted string representation, e.g. "a.b.c".
func (m *ModuleName) Joined() string {
	parts := make([]string, len(m.Parts))
	for i, t := range m.Parts {
		parts[i] = t.Text
	}
	return strings.Join(parts, ".")
}

// Parameter is a function/lambda/operator-overload parameter
// (GLOSSARY: "Parameter").
type Parameter struct {
	Identifier token.Token
	Type       SyntaxType // optional
	Default    Expression // optional
	IsVariadic bool
	IsMutable  bool
	R          source.Range
}

func (p *Parameter) Range() source.Range { return p.R }

// FieldMutability classifies a struct field's declared mutability
// (spec.md §3.4 FieldDeclarationStatement).
type FieldMutability int

const (
	FieldMutable FieldMutability = iota
	FieldImmutable
	FieldConstant
)

// BinaryOp enumerates the binary operation tags of spec.md §3.3.
type BinaryOp int

const (
	OpNullCoalescence BinaryOp = iota
	OpEquals
	OpNotEquals
	OpOr
	OpXor
	OpAnd
	OpLessThan
	OpGreaterThan
	OpLessEqual
	OpGreaterEqual
	OpIs
	OpAs
	OpRotLeft
	OpRotRight
	OpShiftLeft
	OpShiftRight
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpPosMod
	OpModulo
	OpPower
	OpRangeInclusive
	OpRangeExclusive
)

func (op BinaryOp) String() string {
	switch op {
	case OpNullCoalescence:
		return "NullCoalescence"
	case OpEquals:
		return "Equals"
	case OpNotEquals:
		return "NotEquals"
	case OpOr:
		return "Or"
	case OpXor:
		return "Xor"
	case OpAnd:
		return "And"
	case OpLessThan:
		return "LessThan"
	case OpGreaterThan:
		return "GreaterThan"
	case OpLessEqual:
		return "LessEqual"
	case OpGreaterEqual:
		return "GreaterEqual"
	case OpIs:
		return "Is"
	case OpAs:
		return "As"
	case OpRotLeft:
		return "RotLeft"
	case OpRotRight:
		return "RotRight"
	case OpShiftLeft:
		return "ShiftLeft"
	case OpShiftRight:
		return "ShiftRight"
	case OpAdd:
		return "Add"
	case OpSubtract:
		return "Subtract"
	case OpMultiply:
		return "Multiply"
	case OpDivide:
		return "Divide"
	case OpPosMod:
		return "PosMod"
	case OpModulo:
		return "Modulo"
	case OpPower:
		return "Power"
	case OpRangeInclusive:
		return "RangeInclusive"
	case OpRangeExclusive:
		return "RangeExclusive"
	default:
		return "UnknownBinaryOp"
	}
}

// UnaryOp enumerates the unary operation tags of spec.md §3.3.
type UnaryOp int

const (
	OpPreIncrement UnaryOp = iota
	OpPreDecrement
	OpPostIncrement
	OpPostDecrement
	OpIdentity
	OpNegate
	OpBitwiseNegate
	OpLogicalNot
	OpAwait
)

func (op UnaryOp) String() string {
	switch op {
	case OpPreIncrement:
		return "PreIncrement"
	case OpPreDecrement:
		return "PreDecrement"
	case OpPostIncrement:
		return "PostIncrement"
	case OpPostDecrement:
		return "PostDecrement"
	case OpIdentity:
		return "Identity"
	case OpNegate:
		return "Negate"
	case OpBitwiseNegate:
		return "BitwiseNegate"
	case OpLogicalNot:
		return "LogicalNot"
	case OpAwait:
		return "Await"
	default:
		return "UnknownUnaryOp"
	}
}
