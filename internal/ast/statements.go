package ast

import (
	"github.com/beanstalk-lang/beanstalk/internal/source"
	"github.com/beanstalk-lang/beanstalk/internal/token"
)

// ProgramStatement is the root of every AST the parser produces.
type ProgramStatement struct {
	Imports    []Statement // ImportStatement / AggregateImportStatement / DllImportStatement
	Module     *ModuleName // optional file-scope module declaration
	Statements []Statement
	R          source.Range
}

func (s *ProgramStatement) Range() source.Range { return s.R }
func (s *ProgramStatement) statementNode()       {}
func (s *ProgramStatement) Accept(v Visitor)     { v.VisitProgramStatement(s) }

// ImportStatement is `import scope.Name [as alias]` (single-identifier
// or `*` final element).
type ImportStatement struct {
	Scope *ModuleName
	Name  token.Token
	Alias *token.Token // optional
	R     source.Range
}

func (s *ImportStatement) Range() source.Range { return s.R }
func (s *ImportStatement) statementNode()       {}
func (s *ImportStatement) Accept(v Visitor)     { v.VisitImportStatement(s) }

// ImportItem is one `identifier [as alias]` entry inside an aggregate
// import's brace group.
type ImportItem struct {
	Name  token.Token
	Alias *token.Token // optional
}

// AggregateImportStatement is `import scope.{ A, B as C } [as group]`.
type AggregateImportStatement struct {
	Scope      *ModuleName
	Items      []ImportItem
	GroupAlias *token.Token // optional
	R          source.Range
}

func (s *AggregateImportStatement) Range() source.Range { return s.R }
func (s *AggregateImportStatement) statementNode()       {}
func (s *AggregateImportStatement) Accept(v Visitor)     { v.VisitAggregateImportStatement(s) }

// DllImportStatement is `import ("path") { ... }` — body holds only
// external function statements.
type DllImportStatement struct {
	Path      token.Token
	Functions []*ExternalFunctionStatement
	R         source.Range
}

func (s *DllImportStatement) Range() source.Range { return s.R }
func (s *DllImportStatement) statementNode()       {}
func (s *DllImportStatement) Accept(v Visitor)     { v.VisitDllImportStatement(s) }

// ModuleStatement is `module a.b.c { ... }`.
type ModuleStatement struct {
	Name *ModuleName
	Body []Statement
	R    source.Range
}

func (s *ModuleStatement) Range() source.Range { return s.R }
func (s *ModuleStatement) statementNode()       {}
func (s *ModuleStatement) Accept(v Visitor)     { v.VisitModuleStatement(s) }

// EntryStatement is the program's entry point: `entry(params) { ... }`.
type EntryStatement struct {
	Params []*Parameter
	Body   *BlockStatement
	R      source.Range
}

func (s *EntryStatement) Range() source.Range { return s.R }
func (s *EntryStatement) statementNode()       {}
func (s *EntryStatement) Accept(v Visitor)     { v.VisitEntryStatement(s) }

// FunctionDeclarationStatement is a named function declaration.
// SignatureRange covers just the `fun name<...>(...) -> Type` prefix,
// separate from Range which covers the whole declaration including body.
type FunctionDeclarationStatement struct {
	Name           token.Token
	IsStatic       bool
	IsPure         bool
	TypeParams     []token.Token
	Params         []*Parameter
	ReturnType     SyntaxType // optional
	Body           Statement
	SignatureRange source.Range
	R              source.Range
}

func (s *FunctionDeclarationStatement) Range() source.Range { return s.R }
func (s *FunctionDeclarationStatement) statementNode()       {}
func (s *FunctionDeclarationStatement) Accept(v Visitor)     { v.VisitFunctionDeclarationStatement(s) }

// ExternalFunctionStatement is `fun NAME(params) [-> Type] => external(key = "value", ...)`.
type ExternalFunctionStatement struct {
	Name       token.Token
	Params     []*Parameter
	ReturnType SyntaxType // optional
	Attributes map[string]string
	R          source.Range
}

func (s *ExternalFunctionStatement) Range() source.Range { return s.R }
func (s *ExternalFunctionStatement) statementNode()       {}
func (s *ExternalFunctionStatement) Accept(v Visitor)     { v.VisitExternalFunctionStatement(s) }

// ConstructorDeclarationStatement declares a struct constructor.
type ConstructorDeclarationStatement struct {
	Params []*Parameter
	Body   *BlockStatement
	R      source.Range
}

func (s *ConstructorDeclarationStatement) Range() source.Range { return s.R }
func (s *ConstructorDeclarationStatement) statementNode()       {}
func (s *ConstructorDeclarationStatement) Accept(v Visitor)     { v.VisitConstructorDeclarationStatement(s) }

// DestructorDeclarationStatement declares a struct destructor.
type DestructorDeclarationStatement struct {
	Body *BlockStatement
	R    source.Range
}

func (s *DestructorDeclarationStatement) Range() source.Range { return s.R }
func (s *DestructorDeclarationStatement) statementNode()       {}
func (s *DestructorDeclarationStatement) Accept(v Visitor)     { v.VisitDestructorDeclarationStatement(s) }

// StringDeclarationStatement declares a struct's custom `string`
// conversion function; ReturnType must denote `string`.
type StringDeclarationStatement struct {
	ReturnType SyntaxType
	Body       Statement
	R          source.Range
}

func (s *StringDeclarationStatement) Range() source.Range { return s.R }
func (s *StringDeclarationStatement) statementNode()       {}
func (s *StringDeclarationStatement) Accept(v Visitor)     { v.VisitStringDeclarationStatement(s) }

// CastDeclarationStatement declares a user cast operator.
type CastDeclarationStatement struct {
	Implicit   bool
	Param      *Parameter
	ReturnType SyntaxType
	Body       Statement
	R          source.Range
}

func (s *CastDeclarationStatement) Range() source.Range { return s.R }
func (s *CastDeclarationStatement) statementNode()       {}
func (s *CastDeclarationStatement) Accept(v Visitor)     { v.VisitCastDeclarationStatement(s) }

// OperatorDeclarationStatement declares an operator overload
// (spec.md §4.7).
type OperatorDeclarationStatement struct {
	Operation  OperationExpression
	ReturnType SyntaxType
	Body       Statement
	R          source.Range
}

func (s *OperatorDeclarationStatement) Range() source.Range { return s.R }
func (s *OperatorDeclarationStatement) statementNode()       {}
func (s *OperatorDeclarationStatement) Accept(v Visitor)     { v.VisitOperatorDeclarationStatement(s) }

// FieldDeclarationStatement is a struct member field.
type FieldDeclarationStatement struct {
	Name        token.Token
	Mutability  FieldMutability
	IsStatic    bool
	Type        SyntaxType
	Initializer Expression // optional
	R           source.Range
}

func (s *FieldDeclarationStatement) Range() source.Range { return s.R }
func (s *FieldDeclarationStatement) statementNode()       {}
func (s *FieldDeclarationStatement) Accept(v Visitor)     { v.VisitFieldDeclarationStatement(s) }

// StructDeclarationStatement declares a struct type and its members.
type StructDeclarationStatement struct {
	Name      token.Token
	IsMutable bool
	Members   []Statement
	R         source.Range
}

func (s *StructDeclarationStatement) Range() source.Range { return s.R }
func (s *StructDeclarationStatement) statementNode()       {}
func (s *StructDeclarationStatement) Accept(v Visitor)     { v.VisitStructDeclarationStatement(s) }

// InterfaceDeclarationStatement declares an interface type.
type InterfaceDeclarationStatement struct {
	Name    token.Token
	Members []Statement
	R       source.Range
}

func (s *InterfaceDeclarationStatement) Range() source.Range { return s.R }
func (s *InterfaceDeclarationStatement) statementNode()       {}
func (s *InterfaceDeclarationStatement) Accept(v Visitor)     { v.VisitInterfaceDeclarationStatement(s) }

// BlockStatement is a brace-delimited statement sequence.
type BlockStatement struct {
	Statements []Statement
	R          source.Range
}

func (s *BlockStatement) Range() source.Range { return s.R }
func (s *BlockStatement) statementNode()       {}
func (s *BlockStatement) Accept(v Visitor)     { v.VisitBlockStatement(s) }

// ExpressionStatement is an expression used as a statement.
type ExpressionStatement struct {
	Expr Expression
	R    source.Range
}

func (s *ExpressionStatement) Range() source.Range { return s.R }
func (s *ExpressionStatement) statementNode()       {}
func (s *ExpressionStatement) Accept(v Visitor)     { v.VisitExpressionStatement(s) }

// IfStatement is `if cond then [else else]`.
type IfStatement struct {
	Condition Expression
	Then      Statement
	Else      Statement // optional
	R         source.Range
}

func (s *IfStatement) Range() source.Range { return s.R }
func (s *IfStatement) statementNode()       {}
func (s *IfStatement) Accept(v Visitor)     { v.VisitIfStatement(s) }

// MutableVarDeclarationStatement is `var IDENT [: Type] [= expr]`.
type MutableVarDeclarationStatement struct {
	Name        token.Token
	Type        SyntaxType // optional
	Initializer Expression // optional
	R           source.Range
}

func (s *MutableVarDeclarationStatement) Range() source.Range { return s.R }
func (s *MutableVarDeclarationStatement) statementNode()       {}
func (s *MutableVarDeclarationStatement) Accept(v Visitor)     { v.VisitMutableVarDeclarationStatement(s) }

// ImmutableVarDeclarationStatement is `let IDENT [: Type] = expr`. The
// initializer is nil only when the `= expr` part is missing, in which
// case the parser has also recorded a RequiredInitializer error.
type ImmutableVarDeclarationStatement struct {
	Name        token.Token
	Type        SyntaxType // optional
	Initializer Expression
	R           source.Range
}

func (s *ImmutableVarDeclarationStatement) Range() source.Range { return s.R }
func (s *ImmutableVarDeclarationStatement) statementNode()       {}
func (s *ImmutableVarDeclarationStatement) Accept(v Visitor)     { v.VisitImmutableVarDeclarationStatement(s) }

// ConstVarDeclarationStatement is `const IDENT [: Type] = expr`. The
// initializer is nil only when the `= expr` part is missing, in which
// case the parser has also recorded a RequiredInitializer error.
type ConstVarDeclarationStatement struct {
	Name        token.Token
	Type        SyntaxType // optional
	Initializer Expression
	R           source.Range
}

func (s *ConstVarDeclarationStatement) Range() source.Range { return s.R }
func (s *ConstVarDeclarationStatement) statementNode()       {}
func (s *ConstVarDeclarationStatement) Accept(v Visitor)     { v.VisitConstVarDeclarationStatement(s) }

// ReturnStatement is `return [expr]`.
type ReturnStatement struct {
	Value Expression // optional
	R     source.Range
}

func (s *ReturnStatement) Range() source.Range { return s.R }
func (s *ReturnStatement) statementNode()       {}
func (s *ReturnStatement) Accept(v Visitor)     { v.VisitReturnStatement(s) }

// DefineStatement is a type alias: `def IDENT as TYPE`.
type DefineStatement struct {
	Name token.Token
	Type SyntaxType
	R    source.Range
}

func (s *DefineStatement) Range() source.Range { return s.R }
func (s *DefineStatement) statementNode()       {}
func (s *DefineStatement) Accept(v Visitor)     { v.VisitDefineStatement(s) }
