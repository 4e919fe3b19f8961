package ast

// Visitor is the double-dispatch interface for walking the surface
// AST through each node's Accept method, in the manner of the
// teacher's ast.Visitor (one method per concrete node, kept exhaustive
// so a new node type is a compile error in every implementation). The
// desugarer does not use it; it dispatches with type switches.
type Visitor interface {
	VisitModule(n *Module)

	// Declarations
	VisitLetDecl(n *LetDecl)
	VisitTypeDecl(n *TypeDecl)
	VisitExternalDecl(n *ExternalDecl)
	VisitExternalBlock(n *ExternalBlock)
	VisitImportDecl(n *ImportDecl)
	VisitReExportDecl(n *ReExportDecl)

	// TypeDef (type declaration right-hand sides)
	VisitAliasType(n *AliasType)
	VisitRecordTypeDef(n *RecordTypeDef)
	VisitVariantTypeDef(n *VariantTypeDef)

	// ExternalItem
	VisitExternalValue(n *ExternalValue)
	VisitExternalType(n *ExternalType)

	// Expressions
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
	VisitRecordUpdate(n *RecordUpdate)
	VisitRecordAccess(n *RecordAccess)
	VisitList(n *List)
	VisitTuple(n *Tuple)
	VisitBlock(n *Block)
	VisitUnsafe(n *Unsafe)
	VisitTypeAnnotation(n *TypeAnnotation)

	// RecordField
	VisitField(n *Field)
	VisitSpread(n *Spread)

	// Patterns
	VisitWildcardPattern(n *WildcardPattern)
	VisitVarPattern(n *VarPattern)
	VisitLiteralPattern(n *LiteralPattern)
	VisitConstructorPattern(n *ConstructorPattern)
	VisitRecordPattern(n *RecordPattern)
	VisitListPattern(n *ListPattern)
	VisitTuplePattern(n *TuplePattern)

	// TypeExpr
	VisitTypeConst(n *TypeConst)
	VisitTypeVar(n *TypeVar)
	VisitTypeApp(n *TypeApp)
	VisitFunctionType(n *FunctionType)
	VisitRecordType(n *RecordType)
	VisitTupleType(n *TupleType)
}

// BaseVisitor gives every method a no-op body so a Visitor
// implementation only needs to override the node kinds it cares
// about, in the manner of the teacher's prettyprinter visitors which
// embed a base and override selectively.
type BaseVisitor struct{}

func (BaseVisitor) VisitModule(n *Module)                       {}
func (BaseVisitor) VisitLetDecl(n *LetDecl)                      {}
func (BaseVisitor) VisitTypeDecl(n *TypeDecl)                    {}
func (BaseVisitor) VisitExternalDecl(n *ExternalDecl)            {}
func (BaseVisitor) VisitExternalBlock(n *ExternalBlock)          {}
func (BaseVisitor) VisitImportDecl(n *ImportDecl)                {}
func (BaseVisitor) VisitReExportDecl(n *ReExportDecl)            {}
func (BaseVisitor) VisitAliasType(n *AliasType)                  {}
func (BaseVisitor) VisitRecordTypeDef(n *RecordTypeDef)          {}
func (BaseVisitor) VisitVariantTypeDef(n *VariantTypeDef)        {}
func (BaseVisitor) VisitExternalValue(n *ExternalValue)          {}
func (BaseVisitor) VisitExternalType(n *ExternalType)            {}
func (BaseVisitor) VisitIntLit(n *IntLit)                        {}
func (BaseVisitor) VisitFloatLit(n *FloatLit)                    {}
func (BaseVisitor) VisitStringLit(n *StringLit)                  {}
func (BaseVisitor) VisitBoolLit(n *BoolLit)                      {}
func (BaseVisitor) VisitUnitLit(n *UnitLit)                      {}
func (BaseVisitor) VisitVar(n *Var)                              {}
func (BaseVisitor) VisitLambda(n *Lambda)                        {}
func (BaseVisitor) VisitApp(n *App)                              {}
func (BaseVisitor) VisitBinOp(n *BinOp)                          {}
func (BaseVisitor) VisitUnaryOp(n *UnaryOp)                      {}
func (BaseVisitor) VisitPipe(n *Pipe)                            {}
func (BaseVisitor) VisitIf(n *If)                                {}
func (BaseVisitor) VisitMatch(n *Match)                          {}
func (BaseVisitor) VisitRecord(n *Record)                        {}
func (BaseVisitor) VisitRecordUpdate(n *RecordUpdate)            {}
func (BaseVisitor) VisitRecordAccess(n *RecordAccess)            {}
func (BaseVisitor) VisitList(n *List)                            {}
func (BaseVisitor) VisitTuple(n *Tuple)                          {}
func (BaseVisitor) VisitBlock(n *Block)                          {}
func (BaseVisitor) VisitUnsafe(n *Unsafe)                        {}
func (BaseVisitor) VisitTypeAnnotation(n *TypeAnnotation)        {}
func (BaseVisitor) VisitField(n *Field)                          {}
func (BaseVisitor) VisitSpread(n *Spread)                        {}
func (BaseVisitor) VisitWildcardPattern(n *WildcardPattern)      {}
func (BaseVisitor) VisitVarPattern(n *VarPattern)                {}
func (BaseVisitor) VisitLiteralPattern(n *LiteralPattern)        {}
func (BaseVisitor) VisitConstructorPattern(n *ConstructorPattern) {}
func (BaseVisitor) VisitRecordPattern(n *RecordPattern)          {}
func (BaseVisitor) VisitListPattern(n *ListPattern)              {}
func (BaseVisitor) VisitTuplePattern(n *TuplePattern)            {}
func (BaseVisitor) VisitTypeConst(n *TypeConst)                  {}
func (BaseVisitor) VisitTypeVar(n *TypeVar)                      {}
func (BaseVisitor) VisitTypeApp(n *TypeApp)                      {}
func (BaseVisitor) VisitFunctionType(n *FunctionType)            {}
func (BaseVisitor) VisitRecordType(n *RecordType)                {}
func (BaseVisitor) VisitTupleType(n *TupleType)                  {}
