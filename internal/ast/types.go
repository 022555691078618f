package ast

import (
	"github.com/beanstalk-lang/beanstalk/internal/source"
	"github.com/beanstalk-lang/beanstalk/internal/token"
)

// BaseSyntaxType is a single type keyword or identifier token, e.g. `i32`
// or `Widget`.
type BaseSyntaxType struct {
	Tok token.Token
	R   source.Range
}

func (t *BaseSyntaxType) Range() source.Range  { return t.R }
func (t *BaseSyntaxType) expressionNode()      {}
func (t *BaseSyntaxType) syntaxTypeNode()      {}
func (t *BaseSyntaxType) Accept(v Visitor)     { v.VisitBaseSyntaxType(t) }

// TupleSyntaxType is an ordered sequence of >= 2 component types. A
// single-element parenthesized list is never built as a TupleSyntaxType
// (spec.md §3.2 invariant) — the parser unwraps it to the inner type.
type TupleSyntaxType struct {
	Components []SyntaxType
	R          source.Range
}

func (t *TupleSyntaxType) Range() source.Range { return t.R }
func (t *TupleSyntaxType) expressionNode()      {}
func (t *TupleSyntaxType) syntaxTypeNode()      {}
func (t *TupleSyntaxType) Accept(v Visitor)     { v.VisitTupleSyntaxType(t) }

// GenericSyntaxType is a base type parameterized by an ordered sequence
// of type arguments, e.g. `Map[K, V]`.
type GenericSyntaxType struct {
	Base SyntaxType
	Args []SyntaxType
	R    source.Range
}

func (t *GenericSyntaxType) Range() source.Range { return t.R }
func (t *GenericSyntaxType) expressionNode()      {}
func (t *GenericSyntaxType) syntaxTypeNode()      {}
func (t *GenericSyntaxType) Accept(v Visitor)     { v.VisitGenericSyntaxType(t) }

// ArraySyntaxType is a base type with an optional size expression:
// `T[]` (Size == nil) or `T[expr]` (sized array).
type ArraySyntaxType struct {
	Base SyntaxType
	Size Expression // optional
	R    source.Range
}

func (t *ArraySyntaxType) Range() source.Range { return t.R }
func (t *ArraySyntaxType) expressionNode()      {}
func (t *ArraySyntaxType) syntaxTypeNode()      {}
func (t *ArraySyntaxType) Accept(v Visitor)     { v.VisitArraySyntaxType(t) }

// NullableSyntaxType is a base type marked nullable: `T?`.
type NullableSyntaxType struct {
	Base SyntaxType
	R    source.Range
}

func (t *NullableSyntaxType) Range() source.Range { return t.R }
func (t *NullableSyntaxType) expressionNode()      {}
func (t *NullableSyntaxType) syntaxTypeNode()      {}
func (t *NullableSyntaxType) Accept(v Visitor)     { v.VisitNullableSyntaxType(t) }

// MutableSyntaxType is a base type marked mutable: `var T`.
type MutableSyntaxType struct {
	Base SyntaxType
	R    source.Range
}

func (t *MutableSyntaxType) Range() source.Range { return t.R }
func (t *MutableSyntaxType) expressionNode()      {}
func (t *MutableSyntaxType) syntaxTypeNode()      {}
func (t *MutableSyntaxType) Accept(v Visitor)     { v.VisitMutableSyntaxType(t) }

// ReferenceSyntaxType is a base type with a reference marker: `ref T`
// (Immutable = true) or `var ref T` (Immutable = false).
type ReferenceSyntaxType struct {
	Base      SyntaxType
	Immutable bool
	R         source.Range
}

func (t *ReferenceSyntaxType) Range() source.Range { return t.R }
func (t *ReferenceSyntaxType) expressionNode()      {}
func (t *ReferenceSyntaxType) syntaxTypeNode()      {}
func (t *ReferenceSyntaxType) Accept(v Visitor)     { v.VisitReferenceSyntaxType(t) }

// LambdaSyntaxType is a function type: ordered parameter types plus an
// optional return type, e.g. `(i32, i32) -> bool`.
type LambdaSyntaxType struct {
	Params     []SyntaxType
	ReturnType SyntaxType // optional
	R          source.Range
}

func (t *LambdaSyntaxType) Range() source.Range { return t.R }
func (t *LambdaSyntaxType) expressionNode()      {}
func (t *LambdaSyntaxType) syntaxTypeNode()      {}
func (t *LambdaSyntaxType) Accept(v Visitor)     { v.VisitLambdaSyntaxType(t) }
