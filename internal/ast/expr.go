package ast

import "github.com/fenlang/fenc/internal/source"

// Expr is implemented by every expression node.
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

// UnitLit is the value of type Unit, `()`. It is also synthesized by
// the parser wherever §3.5 requires a location-bearing placeholder
// (e.g. the missing else-branch of an if expression).
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

// BinOp.Op holds the textual operator, e.g. "+", "::", "&".
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

// Pipe represents `expr |> func`, kept as its own node (rather than
// folded into BinOp) because the desugarer/type-checker treat it as
// sugar for application, not as a generic binary operator.
type Pipe struct {
	Expr     Expr
	Func     Expr
	Location source.Location
}

func (e *Pipe) Loc() source.Location { return e.Location }
func (e *Pipe) Accept(v Visitor)     { v.VisitPipe(e) }
func (e *Pipe) exprNode()            {}

// If.Else is never nil; the parser synthesizes a UnitLit when no
// `else` branch is written (§3.5, §4.3).
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
	Guard    Expr // nil if absent
	Body     Expr
	Location source.Location
}

// Match.Cases always has at least one element (§3.5).
type Match struct {
	Expr     Expr
	Cases    []MatchCase
	Location source.Location
}

func (e *Match) Loc() source.Location { return e.Location }
func (e *Match) Accept(v Visitor)     { v.VisitMatch(e) }
func (e *Match) exprNode()            {}

// RecordField is implemented by the two kinds of entry a record
// literal may contain: a named field, or a `...expr` spread.
type RecordField interface {
	Node
	recordFieldNode()
}

type Field struct {
	Name     string
	Value    Expr
	Location source.Location
}

func (f *Field) Loc() source.Location { return f.Location }
func (f *Field) Accept(v Visitor)     { v.VisitField(f) }
func (f *Field) recordFieldNode()     {}

type Spread struct {
	Expr     Expr
	Location source.Location
}

func (f *Spread) Loc() source.Location { return f.Location }
func (f *Spread) Accept(v Visitor)     { v.VisitSpread(f) }
func (f *Spread) recordFieldNode()     {}

type Record struct {
	Fields   []RecordField
	Location source.Location
}

func (e *Record) Loc() source.Location { return e.Location }
func (e *Record) Accept(v Visitor)     { v.VisitRecord(e) }
func (e *Record) exprNode()            {}

// RecordUpdate: `{ ...base, field: value, ... }`, surface form. The
// first field of the literal the parser saw was a spread; Updates
// holds the remaining fields (which may include further spreads).
type RecordUpdate struct {
	Record   Expr
	Updates  []RecordField
	Location source.Location
}

func (e *RecordUpdate) Loc() source.Location { return e.Location }
func (e *RecordUpdate) Accept(v Visitor)     { v.VisitRecordUpdate(e) }
func (e *RecordUpdate) exprNode()            {}

type RecordAccess struct {
	Record   Expr
	Field    string
	Location source.Location
}

func (e *RecordAccess) Loc() source.Location { return e.Location }
func (e *RecordAccess) Accept(v Visitor)     { v.VisitRecordAccess(e) }
func (e *RecordAccess) exprNode()            {}

// ListElement reserves room for a future spread element (§3.3); today
// every element is a plain expression.
type ListElement struct {
	Expr     Expr
	Location source.Location
}

type List struct {
	Elements []ListElement
	Location source.Location
}

func (e *List) Loc() source.Location { return e.Location }
func (e *List) Accept(v Visitor)     { v.VisitList(e) }
func (e *List) exprNode()            {}

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
