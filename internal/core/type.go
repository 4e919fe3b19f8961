package core

import "github.com/fenlang/fenc/internal/source"

// TypeExpr is carried over from the surface tree unchanged: §3.4 does
// not reduce the type algebra.
type TypeExpr interface {
	Node
	typeExprNode()
}

type TypeConst struct {
	Name     string
	Location source.Location
}

func (t *TypeConst) Loc() source.Location { return t.Location }
func (t *TypeConst) Accept(v Visitor)     { v.VisitTypeConst(t) }
func (t *TypeConst) typeExprNode()        {}

type TypeVar struct {
	Name     string
	Location source.Location
}

func (t *TypeVar) Loc() source.Location { return t.Location }
func (t *TypeVar) Accept(v Visitor)     { v.VisitTypeVar(t) }
func (t *TypeVar) typeExprNode()        {}

type TypeApp struct {
	Constructor string
	Args        []TypeExpr
	Location    source.Location
}

func (t *TypeApp) Loc() source.Location { return t.Location }
func (t *TypeApp) Accept(v Visitor)     { v.VisitTypeApp(t) }
func (t *TypeApp) typeExprNode()        {}

type FunctionType struct {
	Params   []TypeExpr
	Return   TypeExpr
	Location source.Location
}

func (t *FunctionType) Loc() source.Location { return t.Location }
func (t *FunctionType) Accept(v Visitor)     { v.VisitFunctionType(t) }
func (t *FunctionType) typeExprNode()        {}

type RecordTypeFieldExpr struct {
	Name string
	Type TypeExpr
}

type RecordType struct {
	Fields   []RecordTypeFieldExpr
	Location source.Location
}

func (t *RecordType) Loc() source.Location { return t.Location }
func (t *RecordType) Accept(v Visitor)     { v.VisitRecordType(t) }
func (t *RecordType) typeExprNode()        {}

type TupleType struct {
	Elements []TypeExpr
	Location source.Location
}

func (t *TupleType) Loc() source.Location { return t.Location }
func (t *TupleType) Accept(v Visitor)     { v.VisitTupleType(t) }
func (t *TupleType) typeExprNode()        {}
