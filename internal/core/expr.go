package core

import "github.com/fenlang/fenc/internal/source"

type Expr interface {
	Node
	exprNode()
}

type IntLit struct {
	Value    int64
	Location source.Location
}

func (e *IntLit) Loc() source.Location { return e.Location }
func (e *IntLit) Accept(v Visitor)     { v.VisitIntLit(e) }
func (e *IntLit) exprNode()            {}

type FloatLit struct {
	Value    float64
	Location source.Location
}

func (e *FloatLit) Loc() source.Location { return e.Location }
func (e *FloatLit) Accept(v Visitor)     { v.VisitFloatLit(e) }
func (e *FloatLit) exprNode()            {}

type StringLit struct {
	Value    string
	Location source.Location
}

func (e *StringLit) Loc() source.Location { return e.Location }
func (e *StringLit) Accept(v Visitor)     { v.VisitStringLit(e) }
func (e *StringLit) exprNode()            {}

type BoolLit struct {
	Value    bool
	Location source.Location
}

func (e *BoolLit) Loc() source.Location { return e.Location }
func (e *BoolLit) Accept(v Visitor)     { v.VisitBoolLit(e) }
func (e *BoolLit) exprNode()            {}

type UnitLit struct {
	Location source.Location
}

func (e *UnitLit) Loc() source.Location { return e.Location }
func (e *UnitLit) Accept(v Visitor)     { v.VisitUnitLit(e) }
func (e *UnitLit) exprNode()            {}

type Var struct {
	Name     string
	Location source.Location
}

func (e *Var) Loc() source.Location { return e.Location }
func (e *Var) Accept(v Visitor)     { v.VisitVar(e) }
func (e *Var) exprNode()            {}

type Lambda struct {
	Params   []Pattern
	Body     Expr
	Location source.Location
}

func (e *Lambda) Loc() source.Location { return e.Location }
func (e *Lambda) Accept(v Visitor)     { v.VisitLambda(e) }
func (e *Lambda) exprNode()            {}

type App struct {
	Func     Expr
	Args     []Expr
	Location source.Location
}

func (e *App) Loc() source.Location { return e.Location }
func (e *App) Accept(v Visitor)     { v.VisitApp(e) }
func (e *App) exprNode()            {}

type BinOp struct {
	Op       string
	Left     Expr
	Right    Expr
	Location source.Location
}

func (e *BinOp) Loc() source.Location { return e.Location }
func (e *BinOp) Accept(v Visitor)     { v.VisitBinOp(e) }
func (e *BinOp) exprNode()            {}

type UnaryOp struct {
	Op       string
	Expr     Expr
	Location source.Location
}

func (e *UnaryOp) Loc() source.Location { return e.Location }
func (e *UnaryOp) Accept(v Visitor)     { v.VisitUnaryOp(e) }
func (e *UnaryOp) exprNode()            {}

type Pipe struct {
	Expr     Expr
	Func     Expr
	Location source.Location
}

func (e *Pipe) Loc() source.Location { return e.Location }
func (e *Pipe) Accept(v Visitor)     { v.VisitPipe(e) }
func (e *Pipe) exprNode()            {}

// If.Else is always present in the surface tree already (the parser
// materializes it), so desugaring If is a structural no-op; the node
// is rebuilt here only because core owns its own tree.
type If struct {
	Condition Expr
	Then      Expr
	Else      Expr
	Location  source.Location
}

func (e *If) Loc() source.Location { return e.Location }
func (e *If) Accept(v Visitor)     { v.VisitIf(e) }
func (e *If) exprNode()            {}

type MatchCase struct {
	Pattern  Pattern
	Guard    Expr
	Body     Expr
	Location source.Location
}

type Match struct {
	Expr     Expr
	Cases    []MatchCase
	Location source.Location
}

func (e *Match) Loc() source.Location { return e.Location }
func (e *Match) Accept(v Visitor)     { v.VisitMatch(e) }
func (e *Match) exprNode()            {}

// Field is a fully-expanded record field: by the time desugaring
// produces one, any surface shorthand (`{x}` for `{x: x}`) has
// already been resolved to an explicit Name/Value pair.
type Field struct {
	Name     string
	Value    Expr
	Location source.Location
}

// Record is a pure record literal; it can never contain a spread —
// a literal with a spread is surface RecordUpdate, reduced below to
// CoreRecordUpdate.
type Record struct {
	Fields   []Field
	Location source.Location
}

func (e *Record) Loc() source.Location { return e.Location }
func (e *Record) Accept(v Visitor)     { v.VisitRecord(e) }
func (e *Record) exprNode()            {}

// CoreRecordUpdate is the single reduced form of every surface
// RecordUpdate: Record is the base record and Updates holds the named
// field overrides that follow it, in order. Updates holds no spreads:
// when an update has several spreads, the last one becomes Record and
// only the fields after it are kept (see desugar.recordUpdate).
type CoreRecordUpdate struct {
	Record   Expr
	Updates  []Field
	Location source.Location
}

func (e *CoreRecordUpdate) Loc() source.Location { return e.Location }
func (e *CoreRecordUpdate) Accept(v Visitor)     { v.VisitCoreRecordUpdate(e) }
func (e *CoreRecordUpdate) exprNode()            {}

type RecordAccess struct {
	Record   Expr
	Field    string
	Location source.Location
}

func (e *RecordAccess) Loc() source.Location { return e.Location }
func (e *RecordAccess) Accept(v Visitor)     { v.VisitRecordAccess(e) }
func (e *RecordAccess) exprNode()            {}

// ConstructorApp applies a variant constructor to arguments. The
// desugarer uses it for both user variant constructors carried over
// unchanged from the surface tree (via App on a Var) and for the
// synthetic "Cons"/"Nil" constructors that list literals and list
// patterns are lowered into (§3.4) — lists are not a primitive of the
// core algebra.
type ConstructorApp struct {
	Constructor string
	Args        []Expr
	Location    source.Location
}

func (e *ConstructorApp) Loc() source.Location { return e.Location }
func (e *ConstructorApp) Accept(v Visitor)     { v.VisitConstructorApp(e) }
func (e *ConstructorApp) exprNode()            {}

type Tuple struct {
	Elements []Expr
	Location source.Location
}

func (e *Tuple) Loc() source.Location { return e.Location }
func (e *Tuple) Accept(v Visitor)     { v.VisitTuple(e) }
func (e *Tuple) exprNode()            {}

type Block struct {
	Exprs    []Expr
	Location source.Location
}

func (e *Block) Loc() source.Location { return e.Location }
func (e *Block) Accept(v Visitor)     { v.VisitBlock(e) }
func (e *Block) exprNode()            {}

type Unsafe struct {
	Expr     Expr
	Location source.Location
}

func (e *Unsafe) Loc() source.Location { return e.Location }
func (e *Unsafe) Accept(v Visitor)     { v.VisitUnsafe(e) }
func (e *Unsafe) exprNode()            {}

type TypeAnnotation struct {
	Expr     Expr
	TypeExpr TypeExpr
	Location source.Location
}

func (e *TypeAnnotation) Loc() source.Location { return e.Location }
func (e *TypeAnnotation) Accept(v Visitor)     { v.VisitTypeAnnotation(e) }
func (e *TypeAnnotation) exprNode()            {}
