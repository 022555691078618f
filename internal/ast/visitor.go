package ast

// Visitor is the side-effecting double-dispatch protocol: every concrete
// node's Accept method calls the matching VisitXxx method. Modeled after
// the teacher's Accept(v Visitor) pattern, generalized to Beanstalk's
// node set (spec.md §6 / §9 "two visitor shapes").
type Visitor interface {
	// Syntax types
	VisitBaseSyntaxType(t *BaseSyntaxType)
	VisitTupleSyntaxType(t *TupleSyntaxType)
	VisitGenericSyntaxType(t *GenericSyntaxType)
	VisitArraySyntaxType(t *ArraySyntaxType)
	VisitNullableSyntaxType(t *NullableSyntaxType)
	VisitMutableSyntaxType(t *MutableSyntaxType)
	VisitReferenceSyntaxType(t *ReferenceSyntaxType)
	VisitLambdaSyntaxType(t *LambdaSyntaxType)

	// Expressions
	VisitTokenExpression(e *TokenExpression)
	VisitTupleExpression(e *TupleExpression)
	VisitListExpression(e *ListExpression)
	VisitMapExpression(e *MapExpression)
	VisitInstantiationExpression(e *InstantiationExpression)
	VisitFunctionCallExpression(e *FunctionCallExpression)
	VisitCastExpression(e *CastExpression)
	VisitAccessExpression(e *AccessExpression)
	VisitIndexExpression(e *IndexExpression)
	VisitAssignmentExpression(e *AssignmentExpression)
	VisitLambdaExpression(e *LambdaExpression)
	VisitConditionalExpression(e *ConditionalExpression)
	VisitBinaryExpression(e *BinaryExpression)
	VisitUnaryExpression(e *UnaryExpression)
	VisitSwitchExpression(e *SwitchExpression)
	VisitWithExpression(e *WithExpression)
	VisitInterpolatedStringExpression(e *InterpolatedStringExpression)
	VisitPrimaryOperationExpression(e *PrimaryOperationExpression)
	VisitUnaryOperationExpression(e *UnaryOperationExpression)
	VisitBinaryOperationExpression(e *BinaryOperationExpression)

	// Statements
	VisitProgramStatement(s *ProgramStatement)
	VisitImportStatement(s *ImportStatement)
	VisitAggregateImportStatement(s *AggregateImportStatement)
	VisitDllImportStatement(s *DllImportStatement)
	VisitModuleStatement(s *ModuleStatement)
	VisitEntryStatement(s *EntryStatement)
	VisitFunctionDeclarationStatement(s *FunctionDeclarationStatement)
	VisitExternalFunctionStatement(s *ExternalFunctionStatement)
	VisitConstructorDeclarationStatement(s *ConstructorDeclarationStatement)
	VisitDestructorDeclarationStatement(s *DestructorDeclarationStatement)
	VisitStringDeclarationStatement(s *StringDeclarationStatement)
	VisitCastDeclarationStatement(s *CastDeclarationStatement)
	VisitOperatorDeclarationStatement(s *OperatorDeclarationStatement)
	VisitFieldDeclarationStatement(s *FieldDeclarationStatement)
	VisitStructDeclarationStatement(s *StructDeclarationStatement)
	VisitInterfaceDeclarationStatement(s *InterfaceDeclarationStatement)
	VisitBlockStatement(s *BlockStatement)
	VisitExpressionStatement(s *ExpressionStatement)
	VisitIfStatement(s *IfStatement)
	VisitMutableVarDeclarationStatement(s *MutableVarDeclarationStatement)
	VisitImmutableVarDeclarationStatement(s *ImmutableVarDeclarationStatement)
	VisitConstVarDeclarationStatement(s *ConstVarDeclarationStatement)
	VisitReturnStatement(s *ReturnStatement)
	VisitDefineStatement(s *DefineStatement)
}

// BaseVisitor implements Visitor with no-op methods so a consumer can
// embed it and override only the VisitXxx methods it cares about,
// matching the teacher's prettyprinter usage pattern.
type BaseVisitor struct{}

func (BaseVisitor) VisitBaseSyntaxType(*BaseSyntaxType)           {}
func (BaseVisitor) VisitTupleSyntaxType(*TupleSyntaxType)         {}
func (BaseVisitor) VisitGenericSyntaxType(*GenericSyntaxType)     {}
func (BaseVisitor) VisitArraySyntaxType(*ArraySyntaxType)         {}
func (BaseVisitor) VisitNullableSyntaxType(*NullableSyntaxType)   {}
func (BaseVisitor) VisitMutableSyntaxType(*MutableSyntaxType)     {}
func (BaseVisitor) VisitReferenceSyntaxType(*ReferenceSyntaxType) {}
func (BaseVisitor) VisitLambdaSyntaxType(*LambdaSyntaxType)       {}

func (BaseVisitor) VisitTokenExpression(*TokenExpression)                         {}
func (BaseVisitor) VisitTupleExpression(*TupleExpression)                         {}
func (BaseVisitor) VisitListExpression(*ListExpression)                           {}
func (BaseVisitor) VisitMapExpression(*MapExpression)                             {}
func (BaseVisitor) VisitInstantiationExpression(*InstantiationExpression)         {}
func (BaseVisitor) VisitFunctionCallExpression(*FunctionCallExpression)           {}
func (BaseVisitor) VisitCastExpression(*CastExpression)                           {}
func (BaseVisitor) VisitAccessExpression(*AccessExpression)                       {}
func (BaseVisitor) VisitIndexExpression(*IndexExpression)                         {}
func (BaseVisitor) VisitAssignmentExpression(*AssignmentExpression)               {}
func (BaseVisitor) VisitLambdaExpression(*LambdaExpression)                       {}
func (BaseVisitor) VisitConditionalExpression(*ConditionalExpression)             {}
func (BaseVisitor) VisitBinaryExpression(*BinaryExpression)                       {}
func (BaseVisitor) VisitUnaryExpression(*UnaryExpression)                         {}
func (BaseVisitor) VisitSwitchExpression(*SwitchExpression)                       {}
func (BaseVisitor) VisitWithExpression(*WithExpression)                           {}
func (BaseVisitor) VisitInterpolatedStringExpression(*InterpolatedStringExpression) {}
func (BaseVisitor) VisitPrimaryOperationExpression(*PrimaryOperationExpression)   {}
func (BaseVisitor) VisitUnaryOperationExpression(*UnaryOperationExpression)       {}
func (BaseVisitor) VisitBinaryOperationExpression(*BinaryOperationExpression)     {}

func (BaseVisitor) VisitProgramStatement(*ProgramStatement)                             {}
func (BaseVisitor) VisitImportStatement(*ImportStatement)                               {}
func (BaseVisitor) VisitAggregateImportStatement(*AggregateImportStatement)             {}
func (BaseVisitor) VisitDllImportStatement(*DllImportStatement)                         {}
func (BaseVisitor) VisitModuleStatement(*ModuleStatement)                               {}
func (BaseVisitor) VisitEntryStatement(*EntryStatement)                                 {}
func (BaseVisitor) VisitFunctionDeclarationStatement(*FunctionDeclarationStatement)     {}
func (BaseVisitor) VisitExternalFunctionStatement(*ExternalFunctionStatement)           {}
func (BaseVisitor) VisitConstructorDeclarationStatement(*ConstructorDeclarationStatement) {}
func (BaseVisitor) VisitDestructorDeclarationStatement(*DestructorDeclarationStatement) {}
func (BaseVisitor) VisitStringDeclarationStatement(*StringDeclarationStatement)         {}
func (BaseVisitor) VisitCastDeclarationStatement(*CastDeclarationStatement)             {}
func (BaseVisitor) VisitOperatorDeclarationStatement(*OperatorDeclarationStatement)     {}
func (BaseVisitor) VisitFieldDeclarationStatement(*FieldDeclarationStatement)           {}
func (BaseVisitor) VisitStructDeclarationStatement(*StructDeclarationStatement)         {}
func (BaseVisitor) VisitInterfaceDeclarationStatement(*InterfaceDeclarationStatement)   {}
func (BaseVisitor) VisitBlockStatement(*BlockStatement)                                 {}
func (BaseVisitor) VisitExpressionStatement(*ExpressionStatement)                       {}
func (BaseVisitor) VisitIfStatement(*IfStatement)                                       {}
func (BaseVisitor) VisitMutableVarDeclarationStatement(*MutableVarDeclarationStatement) {}
func (BaseVisitor) VisitImmutableVarDeclarationStatement(*ImmutableVarDeclarationStatement) {}
func (BaseVisitor) VisitConstVarDeclarationStatement(*ConstVarDeclarationStatement)     {}
func (BaseVisitor) VisitReturnStatement(*ReturnStatement)                               {}
func (BaseVisitor) VisitDefineStatement(*DefineStatement)                               {}

// Accept dispatches n to the matching VisitXxx method on v. Go interfaces
// have no double-dispatch of their own, so every concrete node type
// implements its own one-line Accept (see expressions.go/statements.go/
// types.go); Accept here is the free-function form for callers holding
// only a Node (e.g. a generic container walking mixed node kinds).
func Accept(n interface{ Accept(Visitor) }, v Visitor) { n.Accept(v) }

// ExprVisitor is the value-producing counterpart to Visitor, used via
// VisitExpr. Go cannot make Accept itself generic (methods can't carry
// their own type parameters), so the value-producing shape is a free
// function performing an exhaustive type switch instead of double
// dispatch (spec.md §6, §9 "generic dispatch on the tag").
type ExprVisitor[T any] interface {
	VisitTokenExpr(e *TokenExpression) T
	VisitTupleExpr(e *TupleExpression) T
	VisitListExpr(e *ListExpression) T
	VisitMapExpr(e *MapExpression) T
	VisitInstantiationExpr(e *InstantiationExpression) T
	VisitFunctionCallExpr(e *FunctionCallExpression) T
	VisitCastExpr(e *CastExpression) T
	VisitAccessExpr(e *AccessExpression) T
	VisitIndexExpr(e *IndexExpression) T
	VisitAssignmentExpr(e *AssignmentExpression) T
	VisitLambdaExpr(e *LambdaExpression) T
	VisitConditionalExpr(e *ConditionalExpression) T
	VisitBinaryExpr(e *BinaryExpression) T
	VisitUnaryExpr(e *UnaryExpression) T
	VisitSwitchExpr(e *SwitchExpression) T
	VisitWithExpr(e *WithExpression) T
	VisitInterpolatedStringExpr(e *InterpolatedStringExpression) T
	VisitPrimaryOperationExpr(e *PrimaryOperationExpression) T
	VisitUnaryOperationExpr(e *UnaryOperationExpression) T
	VisitBinaryOperationExpr(e *BinaryOperationExpression) T
	// Syntax types double as expressions (spec.md §3.2).
	VisitSyntaxTypeExpr(t SyntaxType) T
}

// VisitExpr exhaustively dispatches e to the matching method of v and
// returns its result.
func VisitExpr[T any](e Expression, v ExprVisitor[T]) T {
	switch n := e.(type) {
	case *TokenExpression:
		return v.VisitTokenExpr(n)
	case *TupleExpression:
		return v.VisitTupleExpr(n)
	case *ListExpression:
		return v.VisitListExpr(n)
	case *MapExpression:
		return v.VisitMapExpr(n)
	case *InstantiationExpression:
		return v.VisitInstantiationExpr(n)
	case *FunctionCallExpression:
		return v.VisitFunctionCallExpr(n)
	case *CastExpression:
		return v.VisitCastExpr(n)
	case *AccessExpression:
		return v.VisitAccessExpr(n)
	case *IndexExpression:
		return v.VisitIndexExpr(n)
	case *AssignmentExpression:
		return v.VisitAssignmentExpr(n)
	case *LambdaExpression:
		return v.VisitLambdaExpr(n)
	case *ConditionalExpression:
		return v.VisitConditionalExpr(n)
	case *BinaryExpression:
		return v.VisitBinaryExpr(n)
	case *UnaryExpression:
		return v.VisitUnaryExpr(n)
	case *SwitchExpression:
		return v.VisitSwitchExpr(n)
	case *WithExpression:
		return v.VisitWithExpr(n)
	case *InterpolatedStringExpression:
		return v.VisitInterpolatedStringExpr(n)
	case *PrimaryOperationExpression:
		return v.VisitPrimaryOperationExpr(n)
	case *UnaryOperationExpression:
		return v.VisitUnaryOperationExpr(n)
	case *BinaryOperationExpression:
		return v.VisitBinaryOperationExpr(n)
	case SyntaxType:
		return v.VisitSyntaxTypeExpr(n)
	default:
		panic("ast.VisitExpr: unhandled Expression type")
	}
}

// StmtVisitor is the value-producing visitor over Statement nodes.
type StmtVisitor[T any] interface {
	VisitProgramStmt(s *ProgramStatement) T
	VisitImportStmt(s *ImportStatement) T
	VisitAggregateImportStmt(s *AggregateImportStatement) T
	VisitDllImportStmt(s *DllImportStatement) T
	VisitModuleStmt(s *ModuleStatement) T
	VisitEntryStmt(s *EntryStatement) T
	VisitFunctionDeclarationStmt(s *FunctionDeclarationStatement) T
	VisitExternalFunctionStmt(s *ExternalFunctionStatement) T
	VisitConstructorDeclarationStmt(s *ConstructorDeclarationStatement) T
	VisitDestructorDeclarationStmt(s *DestructorDeclarationStatement) T
	VisitStringDeclarationStmt(s *StringDeclarationStatement) T
	VisitCastDeclarationStmt(s *CastDeclarationStatement) T
	VisitOperatorDeclarationStmt(s *OperatorDeclarationStatement) T
	VisitFieldDeclarationStmt(s *FieldDeclarationStatement) T
	VisitStructDeclarationStmt(s *StructDeclarationStatement) T
	VisitInterfaceDeclarationStmt(s *InterfaceDeclarationStatement) T
	VisitBlockStmt(s *BlockStatement) T
	VisitExpressionStmt(s *ExpressionStatement) T
	VisitIfStmt(s *IfStatement) T
	VisitMutableVarDeclarationStmt(s *MutableVarDeclarationStatement) T
	VisitImmutableVarDeclarationStmt(s *ImmutableVarDeclarationStatement) T
	VisitConstVarDeclarationStmt(s *ConstVarDeclarationStatement) T
	VisitReturnStmt(s *ReturnStatement) T
	VisitDefineStmt(s *DefineStatement) T
}

// VisitStmt exhaustively dispatches s to the matching method of v and
// returns its result.
func VisitStmt[T any](s Statement, v StmtVisitor[T]) T {
	switch n := s.(type) {
	case *ProgramStatement:
		return v.VisitProgramStmt(n)
	case *ImportStatement:
		return v.VisitImportStmt(n)
	case *AggregateImportStatement:
		return v.VisitAggregateImportStmt(n)
	case *DllImportStatement:
		return v.VisitDllImportStmt(n)
	case *ModuleStatement:
		return v.VisitModuleStmt(n)
	case *EntryStatement:
		return v.VisitEntryStmt(n)
	case *FunctionDeclarationStatement:
		return v.VisitFunctionDeclarationStmt(n)
	case *ExternalFunctionStatement:
		return v.VisitExternalFunctionStmt(n)
	case *ConstructorDeclarationStatement:
		return v.VisitConstructorDeclarationStmt(n)
	case *DestructorDeclarationStatement:
		return v.VisitDestructorDeclarationStmt(n)
	case *StringDeclarationStatement:
		return v.VisitStringDeclarationStmt(n)
	case *CastDeclarationStatement:
		return v.VisitCastDeclarationStmt(n)
	case *OperatorDeclarationStatement:
		return v.VisitOperatorDeclarationStmt(n)
	case *FieldDeclarationStatement:
		return v.VisitFieldDeclarationStmt(n)
	case *StructDeclarationStatement:
		return v.VisitStructDeclarationStmt(n)
	case *InterfaceDeclarationStatement:
		return v.VisitInterfaceDeclarationStmt(n)
	case *BlockStatement:
		return v.VisitBlockStmt(n)
	case *ExpressionStatement:
		return v.VisitExpressionStmt(n)
	case *IfStatement:
		return v.VisitIfStmt(n)
	case *MutableVarDeclarationStatement:
		return v.VisitMutableVarDeclarationStmt(n)
	case *ImmutableVarDeclarationStatement:
		return v.VisitImmutableVarDeclarationStmt(n)
	case *ConstVarDeclarationStatement:
		return v.VisitConstVarDeclarationStmt(n)
	case *ReturnStatement:
		return v.VisitReturnStmt(n)
	case *DefineStatement:
		return v.VisitDefineStmt(n)
	default:
		panic("ast.VisitStmt: unhandled Statement type")
	}
}

// TypeVisitor is the value-producing visitor over SyntaxType nodes.
type TypeVisitor[T any] interface {
	VisitBaseType(t *BaseSyntaxType) T
	VisitTupleType(t *TupleSyntaxType) T
	VisitGenericType(t *GenericSyntaxType) T
	VisitArrayType(t *ArraySyntaxType) T
	VisitNullableType(t *NullableSyntaxType) T
	VisitMutableType(t *MutableSyntaxType) T
	VisitReferenceType(t *ReferenceSyntaxType) T
	VisitLambdaType(t *LambdaSyntaxType) T
}

// VisitType exhaustively dispatches t to the matching method of v and
// returns its result.
func VisitType[T any](t SyntaxType, v TypeVisitor[T]) T {
	switch n := t.(type) {
	case *BaseSyntaxType:
		return v.VisitBaseType(n)
	case *TupleSyntaxType:
		return v.VisitTupleType(n)
	case *GenericSyntaxType:
		return v.VisitGenericType(n)
	case *ArraySyntaxType:
		return v.VisitArrayType(n)
	case *NullableSyntaxType:
		return v.VisitNullableType(n)
	case *MutableSyntaxType:
		return v.VisitMutableType(n)
	case *ReferenceSyntaxType:
		return v.VisitReferenceType(n)
	case *LambdaSyntaxType:
		return v.VisitLambdaType(n)
	default:
		panic("ast.VisitType: unhandled SyntaxType")
	}
}
