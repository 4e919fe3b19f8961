package ast

import "github.com/fenlang/fenc/internal/source"

// TypeExpr is implemented by every type-expression node (§3.3, §4.5).
type TypeExpr interface {
	Node
	typeExprNode()
}

// TypeConst is a nullary named type: `Int`, `String`, a user-defined
// type name with no arguments.
type TypeConst struct {
	Name     string
	Location source.Location
}

func (t *TypeConst) Loc() source.Location { return t.Location }
func (t *TypeConst) Accept(v Visitor)     { v.VisitTypeConst(t) }
func (t *TypeConst) typeExprNode()        {}

// TypeVar is a lowercase type parameter reference, e.g. `a` in
// `type List<a> = ...`.
type TypeVar struct {
	Name     string
	Location source.Location
}

func (t *TypeVar) Loc() source.Location { return t.Location }
func (t *TypeVar) Accept(v Visitor)     { v.VisitTypeVar(t) }
func (t *TypeVar) typeExprNode()        {}

// TypeApp: `Constructor<Args>`, e.g. `List<Int>`, `Map<K, V>`.
type TypeApp struct {
	Constructor string
	Args        []TypeExpr
	Location    source.Location
}

func (t *TypeApp) Loc() source.Location { return t.Location }
func (t *TypeApp) Accept(v Visitor)     { v.VisitTypeApp(t) }
func (t *TypeApp) typeExprNode()        {}

// FunctionType: `(Params) -> Return`, always right-associative.
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

// RecordType: `{ field: T, ... }` used inline as a type expression,
// distinct from RecordTypeDef which is the right-hand side of a named
// `type` declaration.
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
