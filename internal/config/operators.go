// Package config holds the operator precedence/associativity tables and
// the synchronization-token sets, adapted from the teacher's
// config/operators.go pattern. The parser reads the sync-token sets and
// attribute keys from here; its precedence levels are encoded directly
// in its one-method-per-level expression functions, which follow the
// same ladder as the tables below.
package config

import "github.com/beanstalk-lang/beanstalk/internal/token"

// Associativity defines operator associativity.
type Associativity int

const (
	AssocLeft Associativity = iota
	AssocRight
)

// Precedence levels, lowest to highest binding power, exactly the table
// in spec.md §4.2.
const (
	PrecAssignment Precedence = iota + 1
	PrecConditional
	PrecNullCoalesce
	PrecEquality
	PrecBitwiseOr
	PrecBitwiseXor
	PrecBitwiseAnd
	PrecRelational // non-chaining: <= >= < > is as
	PrecShift      // <<< >>> << >>
	PrecAdditive
	PrecMultiplicative
	PrecPower
	PrecSwitchWith
	PrecRange
	PrecPrefixUnary
	PrecPostfixChain
	PrecPrimary
)

// Precedence is the parser's binding-power level; higher binds tighter.
type Precedence int

// BinaryOperatorInfo describes one binary-operator-table entry.
type BinaryOperatorInfo struct {
	Symbol     token.Type
	Precedence Precedence
	Assoc      Associativity
	// Chained is false for the level-8 relational operators, which parse
	// at most one comparison per sub-expression (spec.md §4.2).
	Chained bool
}

// BinaryOperators lists binary operator precedence/associativity
// (spec.md §4.2 table, levels 3-12 and 14; level 1 `=`, level 2 `?:`
// and level 13 switch/with are handled directly by the parser and have
// no entry here).
var BinaryOperators = []BinaryOperatorInfo{
	{Symbol: token.QuestionQuestion, Precedence: PrecNullCoalesce, Assoc: AssocLeft, Chained: true},
	{Symbol: token.Eq, Precedence: PrecEquality, Assoc: AssocLeft, Chained: true},
	{Symbol: token.NotEq, Precedence: PrecEquality, Assoc: AssocLeft, Chained: true},
	{Symbol: token.Pipe, Precedence: PrecBitwiseOr, Assoc: AssocLeft, Chained: true},
	{Symbol: token.Caret, Precedence: PrecBitwiseXor, Assoc: AssocLeft, Chained: true},
	{Symbol: token.Amp, Precedence: PrecBitwiseAnd, Assoc: AssocLeft, Chained: true},
	{Symbol: token.LtEq, Precedence: PrecRelational, Assoc: AssocLeft, Chained: false},
	{Symbol: token.GtEq, Precedence: PrecRelational, Assoc: AssocLeft, Chained: false},
	{Symbol: token.Lt, Precedence: PrecRelational, Assoc: AssocLeft, Chained: false},
	{Symbol: token.Gt, Precedence: PrecRelational, Assoc: AssocLeft, Chained: false},
	{Symbol: token.KwIs, Precedence: PrecRelational, Assoc: AssocLeft, Chained: false},
	{Symbol: token.KwAs, Precedence: PrecRelational, Assoc: AssocLeft, Chained: false},
	{Symbol: token.RotLeft, Precedence: PrecShift, Assoc: AssocLeft, Chained: true},
	{Symbol: token.RotRight, Precedence: PrecShift, Assoc: AssocLeft, Chained: true},
	{Symbol: token.ShiftLeft, Precedence: PrecShift, Assoc: AssocLeft, Chained: true},
	{Symbol: token.ShiftRight, Precedence: PrecShift, Assoc: AssocLeft, Chained: true},
	{Symbol: token.Plus, Precedence: PrecAdditive, Assoc: AssocLeft, Chained: true},
	{Symbol: token.Minus, Precedence: PrecAdditive, Assoc: AssocLeft, Chained: true},
	{Symbol: token.Star, Precedence: PrecMultiplicative, Assoc: AssocLeft, Chained: true},
	{Symbol: token.Slash, Precedence: PrecMultiplicative, Assoc: AssocLeft, Chained: true},
	// PosMod/Modulo spelling: see DESIGN.md Open Question 1 — this repo
	// spells positive-modulo `%%` and Euclidean modulo `%`.
	{Symbol: token.PercentPercent, Precedence: PrecMultiplicative, Assoc: AssocLeft, Chained: true},
	{Symbol: token.Percent, Precedence: PrecMultiplicative, Assoc: AssocLeft, Chained: true},
	{Symbol: token.StarStar, Precedence: PrecPower, Assoc: AssocRight, Chained: true},
	{Symbol: token.DotDot, Precedence: PrecRange, Assoc: AssocLeft, Chained: true},
	{Symbol: token.DotDotEq, Precedence: PrecRange, Assoc: AssocLeft, Chained: true},
}

// BinaryOperatorInfoFor returns the table entry for typ, or nil if typ
// is not a binary operator.
func BinaryOperatorInfoFor(typ token.Type) *BinaryOperatorInfo {
	for i := range BinaryOperators {
		if BinaryOperators[i].Symbol == typ {
			return &BinaryOperators[i]
		}
	}
	return nil
}

// PrefixUnaryOperators is the closed set of prefix-unary operator
// tokens, all right-recursive (spec.md §4.2 level 15).
var PrefixUnaryOperators = []token.Type{
	token.PlusPlus, token.MinusMinus, token.Plus, token.Minus, token.Tilde, token.Bang, token.KwAwait,
}

// PostfixUnaryOperators is the closed set of postfix-unary operator
// tokens consumed in the postfix chain (spec.md §4.2 level 16).
var PostfixUnaryOperators = []token.Type{token.PlusPlus, token.MinusMinus}
