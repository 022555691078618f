package prettyprinter

import (
	"strings"
	"testing"

	"github.com/beanstalk-lang/beanstalk/internal/ast"
	"github.com/beanstalk-lang/beanstalk/internal/parser"
	"github.com/beanstalk-lang/beanstalk/internal/source"
)

func parseTopLevel(t *testing.T, src string) *ast.ProgramStatement {
	t.Helper()
	buf := source.New("test.bs", []byte(src))
	prog, diags := parser.Parse(buf)
	if prog == nil {
		t.Fatalf("parse failed for %q: %v", src, diags)
	}
	return prog
}

// renderBodyStatement wraps src as the sole statement of an entry
// point's body, since bare expressions/if/var statements are only
// valid inside a block, not at top level.
func renderBodyStatement(t *testing.T, src string) string {
	t.Helper()
	prog := parseTopLevel(t, "entry() { "+src+" }")
	if len(prog.Statements) == 0 {
		t.Fatalf("no statements parsed for %q", src)
	}
	entry, ok := prog.Statements[0].(*ast.EntryStatement)
	if !ok {
		t.Fatalf("expected entry statement, got %T", prog.Statements[0])
	}
	if len(entry.Body.Statements) == 0 {
		t.Fatalf("entry body empty for %q", src)
	}
	p := NewCodePrinter()
	entry.Body.Statements[0].Accept(p)
	return p.String()
}

func renderTopLevelStatement(t *testing.T, src string) string {
	t.Helper()
	prog := parseTopLevel(t, src)
	if len(prog.Statements) == 0 {
		t.Fatalf("no statements parsed for %q", src)
	}
	p := NewCodePrinter()
	prog.Statements[0].Accept(p)
	return p.String()
}

func TestCodePrinterExpressionStatements(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1 + 2", "1 + 2"},
		{"1 + 2 * 3", "1 + 2 * 3"},
		{"a.b", "a.b"},
		{"a?.b", "a?.b"},
		{"a[0]", "a[0]"},
		{"a?[0]", "a?[0]"},
		{"x = y = 1", "x = y = 1"},
		{"a ?? b", "a ?? b"},
		{"cond ? t : f", "cond ? t : f"},
		{"x :: i32", "x :: i32"},
		{"-x", "-x"},
		{"!x", "!x"},
		{"~x", "~x"},
		{"x++", "x++"},
		{"++x", "++x"},
		{"2 ** 3 ** 4", "2 ** 3 ** 4"},
		{"5 %% 2", "5 %% 2"},
		{"5 % 2", "5 % 2"},
		{"a..b", "a..b"},
		{"a..=b", "a..=b"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := renderBodyStatement(t, tt.src)
			if got != tt.want {
				t.Errorf("render(%q) = %q; want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestCodePrinterVarDeclarations(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"var x: i32 = 1", "var x: i32 = 1"},
		{"let x: i32 = 1", "let x: i32 = 1"},
		{"const x: i32 = 1", "const x: i32 = 1"},
		{"var x = 1", "var x = 1"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := renderBodyStatement(t, tt.src)
			if got != tt.want {
				t.Errorf("render(%q) = %q; want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestCodePrinterIfStatement(t *testing.T) {
	got := renderBodyStatement(t, "if x { y } else { z }")
	if !strings.HasPrefix(got, "if x {") || !strings.Contains(got, "else {") {
		t.Errorf("unexpected if-statement render: %q", got)
	}
}

func TestCodePrinterStructDeclaration(t *testing.T) {
	got := renderTopLevelStatement(t, "struct Point { let x: i32 = 0 }")
	if !strings.HasPrefix(got, "struct Point {") {
		t.Errorf("unexpected struct render: %q", got)
	}
	if !strings.Contains(got, "let x: i32 = 0") {
		t.Errorf("missing field in struct render: %q", got)
	}
}

func TestCodePrinterFunctionDeclaration(t *testing.T) {
	got := renderTopLevelStatement(t, "fun add(a: i32, b: i32) -> i32 { return a + b }")
	if !strings.HasPrefix(got, "fun add(a: i32, b: i32) -> i32 {") {
		t.Errorf("unexpected function render: %q", got)
	}
	if !strings.Contains(got, "return a + b") {
		t.Errorf("missing return in function render: %q", got)
	}
}

func TestBinaryOpSymbolRoundTrips(t *testing.T) {
	tests := []struct {
		src string
		op  string
	}{
		{"1 == 2", "=="},
		{"1 != 2", "!="},
		{"1 < 2", "<"},
		{"1 <= 2", "<="},
		{"1 >> 2", ">>"},
		{"1 <<< 2", "<<<"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := renderBodyStatement(t, tt.src)
			if !strings.Contains(got, " "+tt.op+" ") {
				t.Errorf("render(%q) = %q; want operator %q present", tt.src, got, tt.op)
			}
		})
	}
}
