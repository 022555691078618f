package ast_test

import (
	"testing"

	"github.com/beanstalk-lang/beanstalk/internal/ast"
	"github.com/beanstalk-lang/beanstalk/internal/source"
	"github.com/beanstalk-lang/beanstalk/internal/token"
)

func TestModuleNameJoined(t *testing.T) {
	m := &ast.ModuleName{Parts: []token.Token{
		{Text: "a"}, {Text: "b"}, {Text: "c"},
	}}
	if got := m.Joined(); got != "a.b.c" {
		t.Errorf("Joined() = %q; want %q", got, "a.b.c")
	}
}

func TestModuleNameJoinedSingle(t *testing.T) {
	m := &ast.ModuleName{Parts: []token.Token{{Text: "a"}}}
	if got := m.Joined(); got != "a" {
		t.Errorf("Joined() = %q; want %q", got, "a")
	}
}

func TestParameterRange(t *testing.T) {
	r := source.Range{Start: 2, End: 9}
	p := &ast.Parameter{Identifier: token.Token{Text: "x"}, R: r}
	if p.Range() != r {
		t.Errorf("Range() = %v; want %v", p.Range(), r)
	}
}

func TestBinaryOpStringIsExhaustive(t *testing.T) {
	tests := []struct {
		op   ast.BinaryOp
		want string
	}{
		{ast.OpNullCoalescence, "NullCoalescence"},
		{ast.OpEquals, "Equals"},
		{ast.OpNotEquals, "NotEquals"},
		{ast.OpOr, "Or"},
		{ast.OpXor, "Xor"},
		{ast.OpAnd, "And"},
		{ast.OpLessThan, "LessThan"},
		{ast.OpGreaterThan, "GreaterThan"},
		{ast.OpLessEqual, "LessEqual"},
		{ast.OpGreaterEqual, "GreaterEqual"},
		{ast.OpIs, "Is"},
		{ast.OpAs, "As"},
		{ast.OpRotLeft, "RotLeft"},
		{ast.OpRotRight, "RotRight"},
		{ast.OpShiftLeft, "ShiftLeft"},
		{ast.OpShiftRight, "ShiftRight"},
		{ast.OpAdd, "Add"},
		{ast.OpSubtract, "Subtract"},
		{ast.OpMultiply, "Multiply"},
		{ast.OpDivide, "Divide"},
		{ast.OpPosMod, "PosMod"},
		{ast.OpModulo, "Modulo"},
		{ast.OpPower, "Power"},
		{ast.OpRangeInclusive, "RangeInclusive"},
		{ast.OpRangeExclusive, "RangeExclusive"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("%d.String() = %q; want %q", tt.op, got, tt.want)
		}
	}
	if got := ast.BinaryOp(999).String(); got != "UnknownBinaryOp" {
		t.Errorf("unknown op String() = %q; want %q", got, "UnknownBinaryOp")
	}
}

func TestUnaryOpStringIsExhaustive(t *testing.T) {
	tests := []struct {
		op   ast.UnaryOp
		want string
	}{
		{ast.OpPreIncrement, "PreIncrement"},
		{ast.OpPreDecrement, "PreDecrement"},
		{ast.OpPostIncrement, "PostIncrement"},
		{ast.OpPostDecrement, "PostDecrement"},
		{ast.OpIdentity, "Identity"},
		{ast.OpNegate, "Negate"},
		{ast.OpBitwiseNegate, "BitwiseNegate"},
		{ast.OpLogicalNot, "LogicalNot"},
		{ast.OpAwait, "Await"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("%d.String() = %q; want %q", tt.op, got, tt.want)
		}
	}
	if got := ast.UnaryOp(999).String(); got != "UnknownUnaryOp" {
		t.Errorf("unknown op String() = %q; want %q", got, "UnknownUnaryOp")
	}
}

func TestFieldMutabilityValues(t *testing.T) {
	if ast.FieldMutable == ast.FieldImmutable || ast.FieldImmutable == ast.FieldConstant {
		t.Errorf("FieldMutability constants must be distinct")
	}
}
