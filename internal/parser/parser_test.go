package parser_test

import (
	"testing"

	"github.com/beanstalk-lang/beanstalk/internal/ast"
	"github.com/beanstalk-lang/beanstalk/internal/diagnostics"
	"github.com/beanstalk-lang/beanstalk/internal/parser"
	"github.com/beanstalk-lang/beanstalk/internal/source"
	"github.com/beanstalk-lang/beanstalk/internal/token"
)

func mustParse(t *testing.T, src string) *ast.ProgramStatement {
	t.Helper()
	buf := source.New("test.bs", []byte(src))
	prog, diags := parser.Parse(buf)
	if prog == nil {
		t.Fatalf("parse(%q) returned nil program: %v", src, diags)
	}
	return prog
}

func firstBodyExpr(t *testing.T, prog *ast.ProgramStatement) ast.Expression {
	t.Helper()
	entry, ok := prog.Statements[0].(*ast.EntryStatement)
	if !ok {
		t.Fatalf("expected entry statement, got %T", prog.Statements[0])
	}
	stmt := entry.Body.Statements[0]
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		return s.Expr
	case *ast.ImmutableVarDeclarationStatement:
		return s.Initializer
	case *ast.MutableVarDeclarationStatement:
		return s.Initializer
	case *ast.ConstVarDeclarationStatement:
		return s.Initializer
	default:
		t.Fatalf("unexpected statement type %T", stmt)
		return nil
	}
}

// S1 — module/entry scaffold, binary expression precedence (add over
// multiply), no diagnostics.
func TestScenarioS1ModuleEntryPrecedence(t *testing.T) {
	buf := source.New("test.bs", []byte("module a.b\nentry(){ let x: i32 = 1 + 2 * 3 }"))
	prog, diags := parser.Parse(buf)
	if prog == nil {
		t.Fatalf("parse failed: %v", diags)
	}
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if prog.Module == nil || prog.Module.Joined() != "a.b" {
		t.Fatalf("module = %v; want a.b", prog.Module)
	}
	entry, ok := prog.Statements[0].(*ast.EntryStatement)
	if !ok {
		t.Fatalf("expected EntryStatement, got %T", prog.Statements[0])
	}
	let, ok := entry.Body.Statements[0].(*ast.ImmutableVarDeclarationStatement)
	if !ok {
		t.Fatalf("expected ImmutableVarDeclarationStatement, got %T", entry.Body.Statements[0])
	}
	add, ok := let.Initializer.(*ast.BinaryExpression)
	if !ok || add.Op != ast.OpAdd {
		t.Fatalf("initializer = %#v; want top-level Add", let.Initializer)
	}
	mul, ok := add.Right.(*ast.BinaryExpression)
	if !ok || mul.Op != ast.OpMultiply {
		t.Fatalf("right operand = %#v; want nested Multiply", add.Right)
	}
}

// S2 — `**` is right-associative: 2 ** 3 ** 2 == Power(2, Power(3, 2)).
func TestScenarioS2PowerRightAssociative(t *testing.T) {
	prog := mustParse(t, "entry() { let x = 2 ** 3 ** 2 }")
	expr := firstBodyExpr(t, prog)
	outer, ok := expr.(*ast.BinaryExpression)
	if !ok || outer.Op != ast.OpPower {
		t.Fatalf("expr = %#v; want outer Power", expr)
	}
	left, ok := outer.Left.(*ast.TokenExpression)
	if !ok || left.Tok.Text != "2" {
		t.Fatalf("left = %#v; want literal 2", outer.Left)
	}
	inner, ok := outer.Right.(*ast.BinaryExpression)
	if !ok || inner.Op != ast.OpPower {
		t.Fatalf("right = %#v; want nested Power", outer.Right)
	}
}

// S3 — relational chaining (`a < b < c`) is diagnosed, not silently
// parsed as left-associative.
func TestScenarioS3RelationalChainingDiagnosed(t *testing.T) {
	buf := source.New("test.bs", []byte("entry() { let x = a < b < c }"))
	_, diags := parser.Parse(buf)
	found := false
	for _, d := range diags {
		if d.Kind == diagnostics.RelationalChaining {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a RelationalChaining diagnostic, got %v", diags)
	}
}

// S4 — prefix literal folding: `-5` is a single TokenExpression with a
// negative integer value, never a UnaryExpression wrapper.
func TestScenarioS4PrefixLiteralFolding(t *testing.T) {
	prog := mustParse(t, "entry() { let x = -5 }")
	expr := firstBodyExpr(t, prog)
	tok, ok := expr.(*ast.TokenExpression)
	if !ok {
		t.Fatalf("expr = %#v (%T); want folded TokenExpression (not a UnaryExpression wrapper)", expr, expr)
	}
	if tok.Tok.Type != token.Int {
		t.Fatalf("folded token type = %s; want Int", tok.Tok.Type)
	}
	if tok.Tok.Value != int64(-5) {
		t.Errorf("folded value = %#v; want int64(-5)", tok.Tok.Value)
	}
}

// S5 — interpolated string parts and sub-expression ranges.
func TestScenarioS5InterpolatedStringParts(t *testing.T) {
	prog := mustParse(t, `entry() { let s = $"hi {1+2}!" }`)
	expr := firstBodyExpr(t, prog)
	interp, ok := expr.(*ast.InterpolatedStringExpression)
	if !ok {
		t.Fatalf("expr = %#v (%T); want InterpolatedStringExpression", expr, expr)
	}
	if len(interp.Parts) != 3 {
		t.Fatalf("parts = %d; want 3 (\"hi \", 1+2, \"!\")", len(interp.Parts))
	}
	lead, ok := interp.Parts[0].(*ast.TokenExpression)
	if !ok || lead.Tok.Value != "hi " {
		t.Fatalf("part[0] = %#v; want literal \"hi \"", interp.Parts[0])
	}
	mid, ok := interp.Parts[1].(*ast.BinaryExpression)
	if !ok || mid.Op != ast.OpAdd {
		t.Fatalf("part[1] = %#v; want Add(1, 2)", interp.Parts[1])
	}
	trail, ok := interp.Parts[2].(*ast.TokenExpression)
	if !ok || trail.Tok.Value != "!" {
		t.Fatalf("part[2] = %#v; want literal \"!\"", interp.Parts[2])
	}
}

// S6 — operator overload declaration: mutability carried per-operand.
func TestScenarioS6OperatorOverloadMutability(t *testing.T) {
	prog := mustParse(t, "struct V { operator (var a: i32 + b: i32) -> i32 { return a + b } }")
	structDecl, ok := prog.Statements[0].(*ast.StructDeclarationStatement)
	if !ok {
		t.Fatalf("expected StructDeclarationStatement, got %T", prog.Statements[0])
	}
	decl, ok := structDecl.Members[0].(*ast.OperatorDeclarationStatement)
	if !ok {
		t.Fatalf("expected OperatorDeclarationStatement, got %T", structDecl.Members[0])
	}
	binop, ok := decl.Operation.(*ast.BinaryOperationExpression)
	if !ok || binop.Op != ast.OpAdd {
		t.Fatalf("operation = %#v; want BinaryOperationExpression(Add, ...)", decl.Operation)
	}
	if !binop.Left.IsMutable {
		t.Errorf("left operand IsMutable = false; want true")
	}
	if binop.Right.IsMutable {
		t.Errorf("right operand IsMutable = true; want false")
	}
}

// S7 — aggregate import: every dotted segment before `{` is the scope;
// GroupAlias comes only from a trailing `as` after the closing brace.
func TestScenarioS7AggregateImportScope(t *testing.T) {
	prog := mustParse(t, "import a.b.{ X, Y as Z }")
	if len(prog.Imports) != 1 {
		t.Fatalf("imports = %d; want 1", len(prog.Imports))
	}
	agg, ok := prog.Imports[0].(*ast.AggregateImportStatement)
	if !ok {
		t.Fatalf("expected AggregateImportStatement, got %T", prog.Imports[0])
	}
	if agg.Scope.Joined() != "a.b" {
		t.Errorf("scope = %q; want a.b", agg.Scope.Joined())
	}
	if agg.GroupAlias != nil {
		t.Errorf("group alias = %v; want nil (no trailing as)", agg.GroupAlias)
	}
	if len(agg.Items) != 2 {
		t.Fatalf("items = %d; want 2", len(agg.Items))
	}
	if agg.Items[0].Name.Text != "X" || agg.Items[0].Alias != nil {
		t.Errorf("items[0] = %#v; want {X, nil}", agg.Items[0])
	}
	if agg.Items[1].Name.Text != "Y" || agg.Items[1].Alias == nil || agg.Items[1].Alias.Text != "Z" {
		t.Errorf("items[1] = %#v; want {Y, Some(Z)}", agg.Items[1])
	}
}

func TestScenarioS7AggregateImportWithGroupAlias(t *testing.T) {
	prog := mustParse(t, "import a.b.{ X } as g")
	agg, ok := prog.Imports[0].(*ast.AggregateImportStatement)
	if !ok {
		t.Fatalf("expected AggregateImportStatement, got %T", prog.Imports[0])
	}
	if agg.GroupAlias == nil || agg.GroupAlias.Text != "g" {
		t.Fatalf("group alias = %v; want g", agg.GroupAlias)
	}
}

// TestPrecedenceTable walks adjacent rungs of the 17-level precedence
// ladder (spec.md §3.3/§4.2). For two operators of differing
// precedence in one expression, the lower-precedence operator is
// always the root of the resulting tree — its operand is obtained by
// recursing all the way down to the atom, so the higher-precedence
// operator ends up nested inside that operand instead.
func TestPrecedenceTable(t *testing.T) {
	tests := []struct {
		src    string
		wantOp ast.BinaryOp
	}{
		{"entry() { let x = a ?? b == c }", ast.OpNullCoalescence},
		{"entry() { let x = a == b | c }", ast.OpEquals},
		{"entry() { let x = a | b ^ c }", ast.OpOr},
		{"entry() { let x = a ^ b & c }", ast.OpXor},
		{"entry() { let x = a & b < c }", ast.OpAnd},
		{"entry() { let x = a < b << c }", ast.OpLessThan},
		{"entry() { let x = a << b + c }", ast.OpShiftLeft},
		{"entry() { let x = a + b * c }", ast.OpAdd},
		{"entry() { let x = a * b ** c }", ast.OpMultiply},
		{"entry() { let x = a ** b..c }", ast.OpPower},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			prog := mustParse(t, tt.src)
			expr := firstBodyExpr(t, prog)
			bin, ok := expr.(*ast.BinaryExpression)
			if !ok {
				t.Fatalf("expr = %#v (%T); want BinaryExpression", expr, expr)
			}
			if bin.Op != tt.wantOp {
				t.Errorf("outer op = %s; want %s (lowest-precedence operator present should be the tree's root)", bin.Op, tt.wantOp)
			}
		})
	}
}

func TestTryParseDoesNotLeakDiagnosticsOnFailedBacktrack(t *testing.T) {
	// Lambda disambiguation: `(a: i32, b: i32) => a + b` must parse clean
	// as a lambda; the speculative lambda attempts that fail and are
	// rewound along the way (e.g. at the body's `a + b`) must not leave
	// diagnostics behind.
	buf := source.New("test.bs", []byte("entry() { let f = (a: i32, b: i32) => a + b }"))
	prog, diags := parser.Parse(buf)
	if prog == nil {
		t.Fatalf("parse failed: %v", diags)
	}
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics from backtracked speculative parse: %v", diags)
	}
	expr := firstBodyExpr(t, prog)
	if _, ok := expr.(*ast.LambdaExpression); !ok {
		t.Fatalf("expr = %#v (%T); want LambdaExpression", expr, expr)
	}
}

func TestErrorRecoverySynchronizesToNextStatement(t *testing.T) {
	// A malformed top-level statement should not prevent the parser
	// from recovering and picking up the next valid one.
	buf := source.New("test.bs", []byte("fun ( broken\nfun ok() -> i32 { return 1 }"))
	prog, diags := parser.Parse(buf)
	if prog == nil {
		t.Fatalf("parse failed entirely: %v", diags)
	}
	if len(diags) == 0 {
		t.Fatalf("expected at least one diagnostic from the malformed declaration")
	}
	found := false
	for _, s := range prog.Statements {
		if fn, ok := s.(*ast.FunctionDeclarationStatement); ok && fn.Name.Text == "ok" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected recovery to still parse the trailing `ok` function; statements = %#v", prog.Statements)
	}
}

func TestInstantiationVsGenericDisambiguation(t *testing.T) {
	prog := mustParse(t, "entry() { let x = Point{x = 1, y = 2} }")
	expr := firstBodyExpr(t, prog)
	inst, ok := expr.(*ast.InstantiationExpression)
	if !ok {
		t.Fatalf("expr = %#v (%T); want InstantiationExpression", expr, expr)
	}
	if len(inst.Fields) != 2 {
		t.Fatalf("fields = %d; want 2", len(inst.Fields))
	}
	if inst.Fields[0].Name.Text != "x" || inst.Fields[1].Name.Text != "y" {
		t.Errorf("fields = %#v; want [x, y]", inst.Fields)
	}
}

func TestStructDeclarationMembers(t *testing.T) {
	prog := mustParse(t, "struct Point { let x: i32 = 0 let y: i32 = 0 }")
	decl, ok := prog.Statements[0].(*ast.StructDeclarationStatement)
	if !ok {
		t.Fatalf("expected StructDeclarationStatement, got %T", prog.Statements[0])
	}
	if decl.Name.Text != "Point" {
		t.Errorf("name = %q; want Point", decl.Name.Text)
	}
	if len(decl.Members) != 2 {
		t.Fatalf("members = %d; want 2", len(decl.Members))
	}
}

// firstBodyType returns the declared SyntaxType of an entry body's
// first `let` statement.
func firstBodyType(t *testing.T, prog *ast.ProgramStatement) ast.SyntaxType {
	t.Helper()
	entry, ok := prog.Statements[0].(*ast.EntryStatement)
	if !ok {
		t.Fatalf("expected entry statement, got %T", prog.Statements[0])
	}
	let, ok := entry.Body.Statements[0].(*ast.ImmutableVarDeclarationStatement)
	if !ok {
		t.Fatalf("expected ImmutableVarDeclarationStatement, got %T", entry.Body.Statements[0])
	}
	return let.Type
}

func TestGenericTypeMultiArgument(t *testing.T) {
	prog := mustParse(t, "entry() { let m: Map[string, i32] = m }")
	typ := firstBodyType(t, prog)
	gen, ok := typ.(*ast.GenericSyntaxType)
	if !ok {
		t.Fatalf("type = %#v (%T); want GenericSyntaxType", typ, typ)
	}
	base, ok := gen.Base.(*ast.BaseSyntaxType)
	if !ok || base.Tok.Text != "Map" {
		t.Fatalf("base = %#v; want BaseSyntaxType(Map)", gen.Base)
	}
	if len(gen.Args) != 2 {
		t.Fatalf("args = %d; want 2", len(gen.Args))
	}
	arg0, ok := gen.Args[0].(*ast.BaseSyntaxType)
	if !ok || arg0.Tok.Text != "string" {
		t.Errorf("args[0] = %#v; want BaseSyntaxType(string)", gen.Args[0])
	}
	arg1, ok := gen.Args[1].(*ast.BaseSyntaxType)
	if !ok || arg1.Tok.Text != "i32" {
		t.Errorf("args[1] = %#v; want BaseSyntaxType(i32)", gen.Args[1])
	}
}

func TestGenericTypeSingleArgumentIsNotArray(t *testing.T) {
	prog := mustParse(t, "entry() { let l: List[i32] = l }")
	typ := firstBodyType(t, prog)
	gen, ok := typ.(*ast.GenericSyntaxType)
	if !ok {
		t.Fatalf("type = %#v (%T); want GenericSyntaxType, not ArraySyntaxType", typ, typ)
	}
	if len(gen.Args) != 1 {
		t.Fatalf("args = %d; want 1", len(gen.Args))
	}
	arg, ok := gen.Args[0].(*ast.BaseSyntaxType)
	if !ok || arg.Tok.Text != "i32" {
		t.Errorf("args[0] = %#v; want BaseSyntaxType(i32)", gen.Args[0])
	}
}

func TestSizedArrayType(t *testing.T) {
	prog := mustParse(t, "entry() { let a: i32[5] = a }")
	typ := firstBodyType(t, prog)
	arr, ok := typ.(*ast.ArraySyntaxType)
	if !ok {
		t.Fatalf("type = %#v (%T); want ArraySyntaxType", typ, typ)
	}
	if arr.Size == nil {
		t.Fatalf("arr.Size = nil; want the size expression 5")
	}
	tok, ok := arr.Size.(*ast.TokenExpression)
	if !ok || tok.Tok.Value != int64(5) {
		t.Errorf("arr.Size = %#v; want TokenExpression(5)", arr.Size)
	}
}

func TestUnsizedArrayType(t *testing.T) {
	prog := mustParse(t, "entry() { let a: i32[] = a }")
	typ := firstBodyType(t, prog)
	arr, ok := typ.(*ast.ArraySyntaxType)
	if !ok {
		t.Fatalf("type = %#v (%T); want ArraySyntaxType", typ, typ)
	}
	if arr.Size != nil {
		t.Errorf("arr.Size = %#v; want nil (unsized array)", arr.Size)
	}
}
