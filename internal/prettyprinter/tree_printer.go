package prettyprinter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/beanstalk-lang/beanstalk/internal/ast"
)

// TreePrinter is a side-effecting ast.Visitor that renders a node and its
// children as an indented tree, one construct per line. Adapted from the
// teacher's tree-printer pattern, generalized to Beanstalk's node set.
type TreePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

func (p *TreePrinter) String() string {
	return p.buf.String()
}

func (p *TreePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *TreePrinter) writeIndent() {
	p.write(strings.Repeat("  ", p.indent))
}

func (p *TreePrinter) line(s string) {
	p.writeIndent()
	p.write(s)
	p.write("\n")
}

func (p *TreePrinter) child(label string, n interface{ Accept(ast.Visitor) }) {
	p.writeIndent()
	p.write(label + ": ")
	if n == nil {
		p.write("<nil>\n")
		return
	}
	p.indent++
	p.write("\n")
	n.Accept(p)
	p.indent--
}

func (p *TreePrinter) stmts(label string, stmts []ast.Statement) {
	p.line(label + ":")
	p.indent++
	for _, s := range stmts {
		s.Accept(p)
	}
	p.indent--
}

// --- Syntax types ---

func (p *TreePrinter) VisitBaseSyntaxType(t *ast.BaseSyntaxType) {
	p.line("BaseType(" + t.Tok.Text + ")")
}

func (p *TreePrinter) VisitTupleSyntaxType(t *ast.TupleSyntaxType) {
	p.line("TupleType:")
	p.indent++
	for _, c := range t.Components {
		c.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitGenericSyntaxType(t *ast.GenericSyntaxType) {
	p.line("GenericType:")
	p.indent++
	p.child("Base", t.Base)
	p.line("Args:")
	p.indent++
	for _, a := range t.Args {
		a.Accept(p)
	}
	p.indent--
	p.indent--
}

func (p *TreePrinter) VisitArraySyntaxType(t *ast.ArraySyntaxType) {
	p.line("ArrayType:")
	p.indent++
	p.child("Base", t.Base)
	if t.Size != nil {
		p.child("Size", t.Size)
	}
	p.indent--
}

func (p *TreePrinter) VisitNullableSyntaxType(t *ast.NullableSyntaxType) {
	p.line("NullableType:")
	p.indent++
	p.child("Base", t.Base)
	p.indent--
}

func (p *TreePrinter) VisitMutableSyntaxType(t *ast.MutableSyntaxType) {
	p.line("MutableType:")
	p.indent++
	p.child("Base", t.Base)
	p.indent--
}

func (p *TreePrinter) VisitReferenceSyntaxType(t *ast.ReferenceSyntaxType) {
	p.line(fmt.Sprintf("ReferenceType(immutable=%v):", t.Immutable))
	p.indent++
	p.child("Base", t.Base)
	p.indent--
}

func (p *TreePrinter) VisitLambdaSyntaxType(t *ast.LambdaSyntaxType) {
	p.line("LambdaType:")
	p.indent++
	p.line("Params:")
	p.indent++
	for _, pt := range t.Params {
		pt.Accept(p)
	}
	p.indent--
	if t.ReturnType != nil {
		p.child("Return", t.ReturnType)
	}
	p.indent--
}

// --- Expressions ---

func (p *TreePrinter) VisitTokenExpression(e *ast.TokenExpression) {
	p.line(fmt.Sprintf("Token(%s %q)", e.Tok.Type, e.Tok.Text))
}

func (p *TreePrinter) VisitTupleExpression(e *ast.TupleExpression) {
	p.line("Tuple:")
	p.indent++
	for _, el := range e.Elements {
		el.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitListExpression(e *ast.ListExpression) {
	p.line("List:")
	p.indent++
	for _, el := range e.Elements {
		el.Accept(p)
	}
	if e.ElemType != nil {
		p.child("ElemType", e.ElemType)
	}
	p.indent--
}

func (p *TreePrinter) VisitMapExpression(e *ast.MapExpression) {
	p.line("Map:")
	p.indent++
	for i := range e.Keys {
		p.line(fmt.Sprintf("pair %d:", i))
		p.indent++
		p.child("Key", e.Keys[i])
		p.child("Value", e.Values[i])
		p.indent--
	}
	p.indent--
}

func (p *TreePrinter) VisitInstantiationExpression(e *ast.InstantiationExpression) {
	p.line("Instantiation:")
	p.indent++
	p.child("Type", e.Type)
	p.line("Fields:")
	p.indent++
	for _, f := range e.Fields {
		p.line(f.Name.Text + ":")
		p.indent++
		f.Value.Accept(p)
		p.indent--
	}
	p.indent--
	p.indent--
}

func (p *TreePrinter) VisitFunctionCallExpression(e *ast.FunctionCallExpression) {
	p.line("Call:")
	p.indent++
	p.child("Callee", e.Callee)
	p.line("Args:")
	p.indent++
	for _, a := range e.Args {
		a.Accept(p)
	}
	p.indent--
	p.indent--
}

func (p *TreePrinter) VisitCastExpression(e *ast.CastExpression) {
	p.line("Cast:")
	p.indent++
	p.child("Source", e.Source)
	p.child("Target", e.Target)
	p.indent--
}

func (p *TreePrinter) VisitAccessExpression(e *ast.AccessExpression) {
	p.line(fmt.Sprintf("Access(nullCheck=%v, member=%s):", e.NullCheck, e.Member.Text))
	p.indent++
	p.child("Source", e.Source)
	p.indent--
}

func (p *TreePrinter) VisitIndexExpression(e *ast.IndexExpression) {
	p.line(fmt.Sprintf("Index(nullCheck=%v):", e.NullCheck))
	p.indent++
	p.child("Source", e.Source)
	p.child("Index", e.Index)
	p.indent--
}

func (p *TreePrinter) VisitAssignmentExpression(e *ast.AssignmentExpression) {
	p.line("Assign:")
	p.indent++
	p.child("Target", e.Target)
	p.child("Value", e.Value)
	p.indent--
}

func (p *TreePrinter) VisitLambdaExpression(e *ast.LambdaExpression) {
	p.line("Lambda:")
	p.indent++
	p.line("Params:")
	p.indent++
	for _, param := range e.Params {
		p.printParameter(param)
	}
	p.indent--
	if e.ReturnType != nil {
		p.child("Return", e.ReturnType)
	}
	p.child("Body", e.Body)
	p.indent--
}

func (p *TreePrinter) VisitConditionalExpression(e *ast.ConditionalExpression) {
	p.line("Conditional:")
	p.indent++
	p.child("Condition", e.Condition)
	p.child("Then", e.Then)
	if e.Else != nil {
		p.child("Else", e.Else)
	}
	p.indent--
}

func (p *TreePrinter) VisitBinaryExpression(e *ast.BinaryExpression) {
	p.line("Binary(" + e.Op.String() + "):")
	p.indent++
	p.child("Left", e.Left)
	p.child("Right", e.Right)
	p.indent--
}

func (p *TreePrinter) VisitUnaryExpression(e *ast.UnaryExpression) {
	p.line(fmt.Sprintf("Unary(%s, prefix=%v):", e.Op.String(), e.IsPrefix))
	p.indent++
	p.child("Operand", e.Operand)
	p.indent--
}

func (p *TreePrinter) VisitSwitchExpression(e *ast.SwitchExpression) {
	p.line("Switch(<unparsed>)")
}

func (p *TreePrinter) VisitWithExpression(e *ast.WithExpression) {
	p.line("With(<unparsed>)")
}

func (p *TreePrinter) VisitInterpolatedStringExpression(e *ast.InterpolatedStringExpression) {
	p.line("InterpolatedString:")
	p.indent++
	for _, part := range e.Parts {
		part.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitPrimaryOperationExpression(e *ast.PrimaryOperationExpression) {
	p.line("PrimaryOperation:")
	p.indent++
	p.printParameter(e.Operand)
	p.indent--
}

func (p *TreePrinter) VisitUnaryOperationExpression(e *ast.UnaryOperationExpression) {
	p.line(fmt.Sprintf("UnaryOperation(%s, prefix=%v):", e.Op.String(), e.IsPrefix))
	p.indent++
	p.printParameter(e.Operand)
	p.indent--
}

func (p *TreePrinter) VisitBinaryOperationExpression(e *ast.BinaryOperationExpression) {
	p.line("BinaryOperation(" + e.Op.String() + "):")
	p.indent++
	p.printParameter(e.Left)
	p.printParameter(e.Right)
	p.indent--
}

func (p *TreePrinter) printParameter(param *ast.Parameter) {
	p.writeIndent()
	p.write("Parameter(" + param.Identifier.Text)
	if param.IsVariadic {
		p.write(" ...")
	}
	if param.IsMutable {
		p.write(" var")
	}
	p.write(")")
	if param.Type != nil {
		p.write(": ")
		p.indent++
		p.write("\n")
		param.Type.Accept(p)
		p.indent--
	} else {
		p.write("\n")
	}
}

// --- Statements ---

func (p *TreePrinter) VisitProgramStatement(s *ast.ProgramStatement) {
	p.line("Program")
	p.indent++
	if len(s.Imports) > 0 {
		p.stmts("Imports", s.Imports)
	}
	if s.Module != nil {
		p.line("Module: " + s.Module.Joined())
	}
	for _, stmt := range s.Statements {
		stmt.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitImportStatement(s *ast.ImportStatement) {
	name := "import " + s.Scope.Joined() + "." + s.Name.Text
	if s.Alias != nil {
		name += " as " + s.Alias.Text
	}
	p.line(name)
}

func (p *TreePrinter) VisitAggregateImportStatement(s *ast.AggregateImportStatement) {
	p.line("AggregateImport(" + s.Scope.Joined() + "):")
	p.indent++
	for _, item := range s.Items {
		name := item.Name.Text
		if item.Alias != nil {
			name += " as " + item.Alias.Text
		}
		p.line(name)
	}
	p.indent--
}

func (p *TreePrinter) VisitDllImportStatement(s *ast.DllImportStatement) {
	p.line("DllImport(" + s.Path.Text + "):")
	p.indent++
	for _, fn := range s.Functions {
		fn.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitModuleStatement(s *ast.ModuleStatement) {
	p.line("Module(" + s.Name.Joined() + "):")
	p.indent++
	for _, stmt := range s.Body {
		stmt.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitEntryStatement(s *ast.EntryStatement) {
	p.line("Entry:")
	p.indent++
	p.line("Params:")
	p.indent++
	for _, param := range s.Params {
		p.printParameter(param)
	}
	p.indent--
	p.child("Body", s.Body)
	p.indent--
}

func (p *TreePrinter) VisitFunctionDeclarationStatement(s *ast.FunctionDeclarationStatement) {
	p.line(fmt.Sprintf("Function(%s, static=%v):", s.Name.Text, s.IsStatic))
	p.indent++
	if len(s.TypeParams) > 0 {
		names := make([]string, len(s.TypeParams))
		for i, tp := range s.TypeParams {
			names[i] = tp.Text
		}
		p.line("TypeParams: " + strings.Join(names, ", "))
	}
	p.line("Params:")
	p.indent++
	for _, param := range s.Params {
		p.printParameter(param)
	}
	p.indent--
	if s.ReturnType != nil {
		p.child("Return", s.ReturnType)
	}
	p.child("Body", s.Body)
	p.indent--
}

func (p *TreePrinter) VisitExternalFunctionStatement(s *ast.ExternalFunctionStatement) {
	p.line("ExternalFunction(" + s.Name.Text + "):")
	p.indent++
	p.line("Params:")
	p.indent++
	for _, param := range s.Params {
		p.printParameter(param)
	}
	p.indent--
	if s.ReturnType != nil {
		p.child("Return", s.ReturnType)
	}
	p.line("Attributes:")
	p.indent++
	for k, v := range s.Attributes {
		p.line(k + " = " + v)
	}
	p.indent--
	p.indent--
}

func (p *TreePrinter) VisitConstructorDeclarationStatement(s *ast.ConstructorDeclarationStatement) {
	p.line("Constructor:")
	p.indent++
	p.line("Params:")
	p.indent++
	for _, param := range s.Params {
		p.printParameter(param)
	}
	p.indent--
	p.child("Body", s.Body)
	p.indent--
}

func (p *TreePrinter) VisitDestructorDeclarationStatement(s *ast.DestructorDeclarationStatement) {
	p.line("Destructor:")
	p.indent++
	p.child("Body", s.Body)
	p.indent--
}

func (p *TreePrinter) VisitStringDeclarationStatement(s *ast.StringDeclarationStatement) {
	p.line("StringConversion:")
	p.indent++
	p.child("Return", s.ReturnType)
	p.child("Body", s.Body)
	p.indent--
}

func (p *TreePrinter) VisitCastDeclarationStatement(s *ast.CastDeclarationStatement) {
	p.line(fmt.Sprintf("Cast(implicit=%v):", s.Implicit))
	p.indent++
	p.printParameter(s.Param)
	p.child("Return", s.ReturnType)
	p.child("Body", s.Body)
	p.indent--
}

func (p *TreePrinter) VisitOperatorDeclarationStatement(s *ast.OperatorDeclarationStatement) {
	p.line("OperatorDeclaration:")
	p.indent++
	p.child("Operation", s.Operation)
	p.child("Return", s.ReturnType)
	p.child("Body", s.Body)
	p.indent--
}

func (p *TreePrinter) VisitFieldDeclarationStatement(s *ast.FieldDeclarationStatement) {
	p.line(fmt.Sprintf("Field(%s, mutability=%v, static=%v):", s.Name.Text, s.Mutability, s.IsStatic))
	p.indent++
	p.child("Type", s.Type)
	if s.Initializer != nil {
		p.child("Initializer", s.Initializer)
	}
	p.indent--
}

func (p *TreePrinter) VisitStructDeclarationStatement(s *ast.StructDeclarationStatement) {
	p.line(fmt.Sprintf("Struct(%s, mutable=%v):", s.Name.Text, s.IsMutable))
	p.indent++
	for _, m := range s.Members {
		m.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitInterfaceDeclarationStatement(s *ast.InterfaceDeclarationStatement) {
	p.line("Interface(" + s.Name.Text + "):")
	p.indent++
	for _, m := range s.Members {
		m.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitBlockStatement(s *ast.BlockStatement) {
	p.line("Block:")
	p.indent++
	for _, stmt := range s.Statements {
		stmt.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitExpressionStatement(s *ast.ExpressionStatement) {
	s.Expr.Accept(p)
}

func (p *TreePrinter) VisitIfStatement(s *ast.IfStatement) {
	p.line("If:")
	p.indent++
	p.child("Condition", s.Condition)
	p.child("Then", s.Then)
	if s.Else != nil {
		p.child("Else", s.Else)
	}
	p.indent--
}

func (p *TreePrinter) VisitMutableVarDeclarationStatement(s *ast.MutableVarDeclarationStatement) {
	p.line("Var(" + s.Name.Text + "):")
	p.indent++
	if s.Type != nil {
		p.child("Type", s.Type)
	}
	if s.Initializer != nil {
		p.child("Initializer", s.Initializer)
	}
	p.indent--
}

func (p *TreePrinter) VisitImmutableVarDeclarationStatement(s *ast.ImmutableVarDeclarationStatement) {
	p.line("Let(" + s.Name.Text + "):")
	p.indent++
	if s.Type != nil {
		p.child("Type", s.Type)
	}
	if s.Initializer != nil {
		p.child("Initializer", s.Initializer)
	}
	p.indent--
}

func (p *TreePrinter) VisitConstVarDeclarationStatement(s *ast.ConstVarDeclarationStatement) {
	p.line("Const(" + s.Name.Text + "):")
	p.indent++
	if s.Type != nil {
		p.child("Type", s.Type)
	}
	if s.Initializer != nil {
		p.child("Initializer", s.Initializer)
	}
	p.indent--
}

func (p *TreePrinter) VisitReturnStatement(s *ast.ReturnStatement) {
	if s.Value == nil {
		p.line("Return")
		return
	}
	p.line("Return:")
	p.indent++
	s.Value.Accept(p)
	p.indent--
}

func (p *TreePrinter) VisitDefineStatement(s *ast.DefineStatement) {
	p.line("Define(" + s.Name.Text + "):")
	p.indent++
	s.Type.Accept(p)
	p.indent--
}
