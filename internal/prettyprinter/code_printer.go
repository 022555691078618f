package prettyprinter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/beanstalk-lang/beanstalk/internal/ast"
	"github.com/beanstalk-lang/beanstalk/internal/token"
)

// CodePrinter is a side-effecting ast.Visitor that renders a node back
// into Beanstalk source text, a second side-effecting visitor alongside
// TreePrinter's debug-tree rendering.
// Grounded on the teacher's CodePrinter (indent tracking, a
// bytes.Buffer sink, column tracking) but generalized to Beanstalk's
// own grammar rather than the teacher's. Lines are never wrapped.
type CodePrinter struct {
	buf       bytes.Buffer
	indent    int
	lineWidth int // stored line-width hint; no rendering path reads it
	column    int
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{lineWidth: 100}
}

func NewCodePrinterWithWidth(width int) *CodePrinter {
	return &CodePrinter{lineWidth: width}
}

func (p *CodePrinter) SetLineWidth(width int) { p.lineWidth = width }

func (p *CodePrinter) String() string { return p.buf.String() }

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
	if idx := strings.LastIndex(s, "\n"); idx != -1 {
		p.column = len(s) - idx - 1
	} else {
		p.column += len(s)
	}
}

func (p *CodePrinter) writeln() {
	p.buf.WriteString("\n")
	p.column = 0
}

func (p *CodePrinter) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.write("    ")
	}
}

func (p *CodePrinter) block(stmts []ast.Statement) {
	p.write("{\n")
	p.indent++
	for _, s := range stmts {
		p.writeIndent()
		s.Accept(p)
		p.writeln()
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

func (p *CodePrinter) params(params []*ast.Parameter) {
	p.write("(")
	for i, param := range params {
		if i > 0 {
			p.write(", ")
		}
		p.Parameter(param)
		if param.Default != nil {
			p.write(" = ")
			param.Default.Accept(p)
		}
	}
	p.write(")")
}

func (p *CodePrinter) moduleName(m *ast.ModuleName) {
	p.write(m.Joined())
}

// --- Syntax types ---

func (p *CodePrinter) VisitBaseSyntaxType(t *ast.BaseSyntaxType) { p.write(t.Tok.Text) }

func (p *CodePrinter) VisitTupleSyntaxType(t *ast.TupleSyntaxType) {
	p.write("(")
	for i, c := range t.Components {
		if i > 0 {
			p.write(", ")
		}
		c.Accept(p)
	}
	p.write(")")
}

func (p *CodePrinter) VisitGenericSyntaxType(t *ast.GenericSyntaxType) {
	t.Base.Accept(p)
	p.write("[")
	for i, a := range t.Args {
		if i > 0 {
			p.write(", ")
		}
		a.Accept(p)
	}
	p.write("]")
}

func (p *CodePrinter) VisitArraySyntaxType(t *ast.ArraySyntaxType) {
	t.Base.Accept(p)
	p.write("[")
	if t.Size != nil {
		t.Size.Accept(p)
	}
	p.write("]")
}

func (p *CodePrinter) VisitNullableSyntaxType(t *ast.NullableSyntaxType) {
	t.Base.Accept(p)
	p.write("?")
}

func (p *CodePrinter) VisitMutableSyntaxType(t *ast.MutableSyntaxType) {
	p.write("var ")
	t.Base.Accept(p)
}

func (p *CodePrinter) VisitReferenceSyntaxType(t *ast.ReferenceSyntaxType) {
	if !t.Immutable {
		p.write("var ")
	}
	p.write("ref ")
	t.Base.Accept(p)
}

func (p *CodePrinter) VisitLambdaSyntaxType(t *ast.LambdaSyntaxType) {
	p.write("(")
	for i, param := range t.Params {
		if i > 0 {
			p.write(", ")
		}
		param.Accept(p)
	}
	p.write(")")
	if t.ReturnType != nil {
		p.write(" -> ")
		t.ReturnType.Accept(p)
	}
}

// --- Expressions ---

func (p *CodePrinter) VisitTokenExpression(e *ast.TokenExpression) { p.write(e.Tok.Text) }

func (p *CodePrinter) VisitTupleExpression(e *ast.TupleExpression) {
	p.write("(")
	for i, el := range e.Elements {
		if i > 0 {
			p.write(", ")
		}
		el.Accept(p)
	}
	p.write(")")
}

func (p *CodePrinter) VisitListExpression(e *ast.ListExpression) {
	p.write("[")
	for i, el := range e.Elements {
		if i > 0 {
			p.write(", ")
		}
		el.Accept(p)
	}
	p.write("]")
	if e.ElemType != nil {
		p.write(": ")
		e.ElemType.Accept(p)
	}
}

func (p *CodePrinter) VisitMapExpression(e *ast.MapExpression) {
	p.write("[")
	for i := range e.Keys {
		if i > 0 {
			p.write(", ")
		}
		e.Keys[i].Accept(p)
		p.write(" => ")
		e.Values[i].Accept(p)
	}
	p.write("]")
	if e.Annotation != nil {
		p.write(": ")
		e.Annotation.Accept(p)
	}
}

func (p *CodePrinter) VisitInstantiationExpression(e *ast.InstantiationExpression) {
	e.Type.Accept(p)
	p.write("{")
	for i, f := range e.Fields {
		if i > 0 {
			p.write(", ")
		}
		p.write(f.Name.Text + " = ")
		f.Value.Accept(p)
	}
	p.write("}")
}

func (p *CodePrinter) VisitFunctionCallExpression(e *ast.FunctionCallExpression) {
	e.Callee.Accept(p)
	p.write("(")
	for i, a := range e.Args {
		if i > 0 {
			p.write(", ")
		}
		a.Accept(p)
	}
	p.write(")")
}

func (p *CodePrinter) VisitCastExpression(e *ast.CastExpression) {
	e.Source.Accept(p)
	p.write(" :: ")
	e.Target.Accept(p)
}

func (p *CodePrinter) VisitAccessExpression(e *ast.AccessExpression) {
	e.Source.Accept(p)
	if e.NullCheck {
		p.write("?.")
	} else {
		p.write(".")
	}
	p.write(e.Member.Text)
}

func (p *CodePrinter) VisitIndexExpression(e *ast.IndexExpression) {
	e.Source.Accept(p)
	if e.NullCheck {
		p.write("?[")
	} else {
		p.write("[")
	}
	e.Index.Accept(p)
	p.write("]")
}

func (p *CodePrinter) VisitAssignmentExpression(e *ast.AssignmentExpression) {
	e.Target.Accept(p)
	p.write(" = ")
	e.Value.Accept(p)
}

func (p *CodePrinter) VisitLambdaExpression(e *ast.LambdaExpression) {
	p.params(e.Params)
	if e.ReturnType != nil {
		p.write(" -> ")
		e.ReturnType.Accept(p)
	}
	p.write(" ")
	if e.Body != nil {
		e.Body.Accept(p)
	}
}

func (p *CodePrinter) VisitConditionalExpression(e *ast.ConditionalExpression) {
	e.Condition.Accept(p)
	p.write(" ? ")
	e.Then.Accept(p)
	if e.Else != nil {
		p.write(" : ")
		e.Else.Accept(p)
	}
}

func (p *CodePrinter) VisitBinaryExpression(e *ast.BinaryExpression) {
	e.Left.Accept(p)
	if e.Op == ast.OpRangeExclusive || e.Op == ast.OpRangeInclusive {
		p.write(binaryOpSymbol(e.Op))
	} else {
		p.write(" " + binaryOpSymbol(e.Op) + " ")
	}
	e.Right.Accept(p)
}

func (p *CodePrinter) VisitUnaryExpression(e *ast.UnaryExpression) {
	if e.IsPrefix {
		p.write(unaryOpSymbol(e.Op))
		e.Operand.Accept(p)
	} else {
		e.Operand.Accept(p)
		p.write(unaryOpSymbol(e.Op))
	}
}

func (p *CodePrinter) VisitSwitchExpression(e *ast.SwitchExpression) { p.write("switch") }
func (p *CodePrinter) VisitWithExpression(e *ast.WithExpression)     { p.write("with") }

func (p *CodePrinter) VisitInterpolatedStringExpression(e *ast.InterpolatedStringExpression) {
	p.write("$\"")
	for _, part := range e.Parts {
		if te, ok := part.(*ast.TokenExpression); ok && te.Tok.Type == token.String {
			p.write(te.Tok.Text)
			continue
		}
		p.write("{")
		part.Accept(p)
		p.write("}")
	}
	p.write("\"")
}

func (p *CodePrinter) VisitPrimaryOperationExpression(e *ast.PrimaryOperationExpression) {
	p.Parameter(e.Operand)
}

func (p *CodePrinter) VisitUnaryOperationExpression(e *ast.UnaryOperationExpression) {
	if e.IsPrefix {
		p.write(unaryOpSymbol(e.Op) + " ")
		p.Parameter(e.Operand)
	} else {
		p.Parameter(e.Operand)
		p.write(" " + unaryOpSymbol(e.Op))
	}
}

func (p *CodePrinter) VisitBinaryOperationExpression(e *ast.BinaryOperationExpression) {
	p.Parameter(e.Left)
	p.write(" " + binaryOpSymbol(e.Op) + " ")
	p.Parameter(e.Right)
}

// Parameter is not itself a Node, so printing it is a plain method
// rather than a VisitXxx dispatch; used by params() above and anywhere
// a parameter needs to render standalone (e.g. inside an
// OperationExpression visitor).
func (p *CodePrinter) Parameter(param *ast.Parameter) {
	if param.IsVariadic {
		p.write("...")
	}
	if param.IsMutable {
		p.write("var ")
	}
	p.write(param.Identifier.Text)
	if param.Type != nil {
		p.write(": ")
		param.Type.Accept(p)
	}
}

// --- Statements ---

func (p *CodePrinter) VisitProgramStatement(s *ast.ProgramStatement) {
	for _, imp := range s.Imports {
		imp.Accept(p)
		p.writeln()
	}
	if s.Module != nil {
		p.write("module ")
		p.moduleName(s.Module)
		p.write("\n")
	}
	for _, stmt := range s.Statements {
		stmt.Accept(p)
		p.writeln()
	}
}

func (p *CodePrinter) VisitImportStatement(s *ast.ImportStatement) {
	p.write("import ")
	p.moduleName(s.Scope)
	p.write("." + s.Name.Text)
	if s.Alias != nil {
		p.write(" as " + s.Alias.Text)
	}
}

func (p *CodePrinter) VisitAggregateImportStatement(s *ast.AggregateImportStatement) {
	p.write("import ")
	p.moduleName(s.Scope)
	p.write(".{")
	for i, item := range s.Items {
		if i > 0 {
			p.write(", ")
		}
		p.write(item.Name.Text)
		if item.Alias != nil {
			p.write(" as " + item.Alias.Text)
		}
	}
	p.write("}")
	if s.GroupAlias != nil {
		p.write(" as " + s.GroupAlias.Text)
	}
}

func (p *CodePrinter) VisitDllImportStatement(s *ast.DllImportStatement) {
	p.write(fmt.Sprintf("import (%q) {\n", s.Path.Value))
	p.indent++
	for _, fn := range s.Functions {
		p.writeIndent()
		fn.Accept(p)
		p.writeln()
	}
	p.indent--
	p.write("}")
}

func (p *CodePrinter) VisitModuleStatement(s *ast.ModuleStatement) {
	p.write("module ")
	p.moduleName(s.Name)
	p.write(" ")
	p.block(s.Body)
}

func (p *CodePrinter) VisitEntryStatement(s *ast.EntryStatement) {
	p.write("entry")
	p.params(s.Params)
	p.write(" ")
	s.Body.Accept(p)
}

func (p *CodePrinter) VisitFunctionDeclarationStatement(s *ast.FunctionDeclarationStatement) {
	if s.IsStatic {
		p.write("static ")
	}
	p.write("fun " + s.Name.Text)
	if len(s.TypeParams) > 0 {
		p.write("<")
		for i, tp := range s.TypeParams {
			if i > 0 {
				p.write(", ")
			}
			p.write(tp.Text)
		}
		p.write(">")
	}
	p.params(s.Params)
	if s.ReturnType != nil {
		p.write(" -> ")
		s.ReturnType.Accept(p)
	}
	p.write(" ")
	if s.Body != nil {
		s.Body.Accept(p)
	}
}

func (p *CodePrinter) VisitExternalFunctionStatement(s *ast.ExternalFunctionStatement) {
	p.write("fun " + s.Name.Text)
	p.params(s.Params)
	if s.ReturnType != nil {
		p.write(" -> ")
		s.ReturnType.Accept(p)
	}
	p.write(" => external(")
	first := true
	for k, v := range s.Attributes {
		if !first {
			p.write(", ")
		}
		first = false
		p.write(fmt.Sprintf("%s = %q", k, v))
	}
	p.write(")")
}

func (p *CodePrinter) VisitConstructorDeclarationStatement(s *ast.ConstructorDeclarationStatement) {
	p.write("constructor")
	p.params(s.Params)
	p.write(" ")
	s.Body.Accept(p)
}

func (p *CodePrinter) VisitDestructorDeclarationStatement(s *ast.DestructorDeclarationStatement) {
	p.write("destructor() ")
	s.Body.Accept(p)
}

func (p *CodePrinter) VisitStringDeclarationStatement(s *ast.StringDeclarationStatement) {
	p.write("string() -> ")
	s.ReturnType.Accept(p)
	p.write(" ")
	s.Body.Accept(p)
}

func (p *CodePrinter) VisitCastDeclarationStatement(s *ast.CastDeclarationStatement) {
	if s.Implicit {
		p.write("implicit ")
	} else {
		p.write("explicit ")
	}
	p.write("cast(")
	p.Parameter(s.Param)
	p.write(") -> ")
	s.ReturnType.Accept(p)
	p.write(" ")
	s.Body.Accept(p)
}

func (p *CodePrinter) VisitOperatorDeclarationStatement(s *ast.OperatorDeclarationStatement) {
	p.write("operator (")
	s.Operation.Accept(p)
	p.write(") -> ")
	s.ReturnType.Accept(p)
	p.write(" ")
	s.Body.Accept(p)
}

func fieldKeyword(m ast.FieldMutability) string {
	switch m {
	case ast.FieldImmutable:
		return "let"
	case ast.FieldConstant:
		return "const"
	default:
		return "var"
	}
}

func (p *CodePrinter) VisitFieldDeclarationStatement(s *ast.FieldDeclarationStatement) {
	if s.IsStatic {
		p.write("static ")
	}
	p.write(fieldKeyword(s.Mutability) + " " + s.Name.Text + ": ")
	s.Type.Accept(p)
	if s.Initializer != nil {
		p.write(" = ")
		s.Initializer.Accept(p)
	}
}

func (p *CodePrinter) VisitStructDeclarationStatement(s *ast.StructDeclarationStatement) {
	p.write("struct ")
	if s.IsMutable {
		p.write("var ")
	}
	p.write(s.Name.Text + " ")
	p.block(s.Members)
}

func (p *CodePrinter) VisitInterfaceDeclarationStatement(s *ast.InterfaceDeclarationStatement) {
	p.write("interface " + s.Name.Text + " ")
	p.block(s.Members)
}

func (p *CodePrinter) VisitBlockStatement(s *ast.BlockStatement) { p.block(s.Statements) }

func (p *CodePrinter) VisitExpressionStatement(s *ast.ExpressionStatement) { s.Expr.Accept(p) }

func (p *CodePrinter) VisitIfStatement(s *ast.IfStatement) {
	p.write("if ")
	s.Condition.Accept(p)
	p.write(" ")
	s.Then.Accept(p)
	if s.Else != nil {
		p.write(" else ")
		s.Else.Accept(p)
	}
}

func (p *CodePrinter) VisitMutableVarDeclarationStatement(s *ast.MutableVarDeclarationStatement) {
	p.write("var " + s.Name.Text)
	if s.Type != nil {
		p.write(": ")
		s.Type.Accept(p)
	}
	if s.Initializer != nil {
		p.write(" = ")
		s.Initializer.Accept(p)
	}
}

func (p *CodePrinter) VisitImmutableVarDeclarationStatement(s *ast.ImmutableVarDeclarationStatement) {
	p.write("let " + s.Name.Text)
	if s.Type != nil {
		p.write(": ")
		s.Type.Accept(p)
	}
	if s.Initializer != nil {
		p.write(" = ")
		s.Initializer.Accept(p)
	}
}

func (p *CodePrinter) VisitConstVarDeclarationStatement(s *ast.ConstVarDeclarationStatement) {
	p.write("const " + s.Name.Text)
	if s.Type != nil {
		p.write(": ")
		s.Type.Accept(p)
	}
	if s.Initializer != nil {
		p.write(" = ")
		s.Initializer.Accept(p)
	}
}

func (p *CodePrinter) VisitReturnStatement(s *ast.ReturnStatement) {
	p.write("return")
	if s.Value != nil {
		p.write(" ")
		s.Value.Accept(p)
	}
}

func (p *CodePrinter) VisitDefineStatement(s *ast.DefineStatement) {
	p.write("def " + s.Name.Text + " as ")
	s.Type.Accept(p)
}

var _ ast.Visitor = (*CodePrinter)(nil)

// binaryOpSymbol renders a BinaryOp tag back to its source spelling.
func binaryOpSymbol(op ast.BinaryOp) string {
	switch op {
	case ast.OpNullCoalescence:
		return "??"
	case ast.OpEquals:
		return "=="
	case ast.OpNotEquals:
		return "!="
	case ast.OpOr:
		return "|"
	case ast.OpXor:
		return "^"
	case ast.OpAnd:
		return "&"
	case ast.OpLessThan:
		return "<"
	case ast.OpGreaterThan:
		return ">"
	case ast.OpLessEqual:
		return "<="
	case ast.OpGreaterEqual:
		return ">="
	case ast.OpIs:
		return "is"
	case ast.OpAs:
		return "as"
	case ast.OpRotLeft:
		return "<<<"
	case ast.OpRotRight:
		return ">>>"
	case ast.OpShiftLeft:
		return "<<"
	case ast.OpShiftRight:
		return ">>"
	case ast.OpAdd:
		return "+"
	case ast.OpSubtract:
		return "-"
	case ast.OpMultiply:
		return "*"
	case ast.OpDivide:
		return "/"
	case ast.OpPosMod:
		return "%%"
	case ast.OpModulo:
		return "%"
	case ast.OpPower:
		return "**"
	case ast.OpRangeInclusive:
		return "..="
	case ast.OpRangeExclusive:
		return ".."
	default:
		return "?"
	}
}

// unaryOpSymbol renders a UnaryOp tag back to its source spelling.
func unaryOpSymbol(op ast.UnaryOp) string {
	switch op {
	case ast.OpPreIncrement, ast.OpPostIncrement:
		return "++"
	case ast.OpPreDecrement, ast.OpPostDecrement:
		return "--"
	case ast.OpIdentity:
		return "+"
	case ast.OpNegate:
		return "-"
	case ast.OpBitwiseNegate:
		return "~"
	case ast.OpLogicalNot:
		return "!"
	case ast.OpAwait:
		return "await"
	default:
		return "?"
	}
}
