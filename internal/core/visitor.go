package core

// Visitor walks the desugared core tree. astdump implements it to
// project a core.Module as indented text.
type Visitor interface {
	VisitModule(n *Module)

	VisitLetDecl(n *LetDecl)
	VisitTypeDecl(n *TypeDecl)
	VisitExternalDecl(n *ExternalDecl)
	VisitExternalBlock(n *ExternalBlock)
	VisitImportDecl(n *ImportDecl)
	VisitReExportDecl(n *ReExportDecl)

	VisitAliasType(n *AliasType)
	VisitRecordTypeDef(n *RecordTypeDef)
	VisitVariantTypeDef(n *VariantTypeDef)

	VisitExternalValue(n *ExternalValue)
	VisitExternalType(n *ExternalType)

	VisitIntLit(n *IntLit)
	VisitFloatLit(n *FloatLit)
	VisitStringLit(n *StringLit)
	VisitBoolLit(n *BoolLit)
	VisitUnitLit(n *UnitLit)
	VisitVar(n *Var)
	VisitLambda(n *Lambda)
	VisitApp(n *App)
	VisitBinOp(n *BinOp)
	VisitUnaryOp(n *UnaryOp)
	VisitPipe(n *Pipe)
	VisitIf(n *If)
	VisitMatch(n *Match)
	VisitRecord(n *Record)
	VisitCoreRecordUpdate(n *CoreRecordUpdate)
	VisitRecordAccess(n *RecordAccess)
	VisitConstructorApp(n *ConstructorApp)
	VisitTuple(n *Tuple)
	VisitBlock(n *Block)
	VisitUnsafe(n *Unsafe)
	VisitTypeAnnotation(n *TypeAnnotation)

	VisitWildcardPattern(n *WildcardPattern)
	VisitVarPattern(n *VarPattern)
	VisitLiteralPattern(n *LiteralPattern)
	VisitConstructorPattern(n *ConstructorPattern)
	VisitRecordPattern(n *RecordPattern)
	VisitTuplePattern(n *TuplePattern)

	VisitTypeConst(n *TypeConst)
	VisitTypeVar(n *TypeVar)
	VisitTypeApp(n *TypeApp)
	VisitFunctionType(n *FunctionType)
	VisitRecordType(n *RecordType)
	VisitTupleType(n *TupleType)
}

type BaseVisitor struct{}

func (BaseVisitor) VisitModule(n *Module)                        {}
func (BaseVisitor) VisitLetDecl(n *LetDecl)                       {}
func (BaseVisitor) VisitTypeDecl(n *TypeDecl)                     {}
func (BaseVisitor) VisitExternalDecl(n *ExternalDecl)             {}
func (BaseVisitor) VisitExternalBlock(n *ExternalBlock)           {}
func (BaseVisitor) VisitImportDecl(n *ImportDecl)                 {}
func (BaseVisitor) VisitReExportDecl(n *ReExportDecl)             {}
func (BaseVisitor) VisitAliasType(n *AliasType)                   {}
func (BaseVisitor) VisitRecordTypeDef(n *RecordTypeDef)           {}
func (BaseVisitor) VisitVariantTypeDef(n *VariantTypeDef)         {}
func (BaseVisitor) VisitExternalValue(n *ExternalValue)           {}
func (BaseVisitor) VisitExternalType(n *ExternalType)             {}
func (BaseVisitor) VisitIntLit(n *IntLit)                         {}
func (BaseVisitor) VisitFloatLit(n *FloatLit)                     {}
func (BaseVisitor) VisitStringLit(n *StringLit)                   {}
func (BaseVisitor) VisitBoolLit(n *BoolLit)                       {}
func (BaseVisitor) VisitUnitLit(n *UnitLit)                       {}
func (BaseVisitor) VisitVar(n *Var)                               {}
func (BaseVisitor) VisitLambda(n *Lambda)                         {}
func (BaseVisitor) VisitApp(n *App)                               {}
func (BaseVisitor) VisitBinOp(n *BinOp)                           {}
func (BaseVisitor) VisitUnaryOp(n *UnaryOp)                       {}
func (BaseVisitor) VisitPipe(n *Pipe)                             {}
func (BaseVisitor) VisitIf(n *If)                                 {}
func (BaseVisitor) VisitMatch(n *Match)                           {}
func (BaseVisitor) VisitRecord(n *Record)                         {}
func (BaseVisitor) VisitCoreRecordUpdate(n *CoreRecordUpdate)     {}
func (BaseVisitor) VisitRecordAccess(n *RecordAccess)             {}
func (BaseVisitor) VisitConstructorApp(n *ConstructorApp)         {}
func (BaseVisitor) VisitTuple(n *Tuple)                           {}
func (BaseVisitor) VisitBlock(n *Block)                           {}
func (BaseVisitor) VisitUnsafe(n *Unsafe)                         {}
func (BaseVisitor) VisitTypeAnnotation(n *TypeAnnotation)         {}
func (BaseVisitor) VisitWildcardPattern(n *WildcardPattern)       {}
func (BaseVisitor) VisitVarPattern(n *VarPattern)                 {}
func (BaseVisitor) VisitLiteralPattern(n *LiteralPattern)         {}
func (BaseVisitor) VisitConstructorPattern(n *ConstructorPattern) {}
func (BaseVisitor) VisitRecordPattern(n *RecordPattern)           {}
func (BaseVisitor) VisitTuplePattern(n *TuplePattern)             {}
func (BaseVisitor) VisitTypeConst(n *TypeConst)                   {}
func (BaseVisitor) VisitTypeVar(n *TypeVar)                       {}
func (BaseVisitor) VisitTypeApp(n *TypeApp)                       {}
func (BaseVisitor) VisitFunctionType(n *FunctionType)             {}
func (BaseVisitor) VisitRecordType(n *RecordType)                 {}
func (BaseVisitor) VisitTupleType(n *TupleType)                   {}
