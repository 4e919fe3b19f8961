// Package core defines the desugaring target algebra (§3.4): a
// reduced form of the surface ast package in which list literals and
// patterns are nested Cons/Nil constructor applications, record
// shorthand is expanded to explicit fields, and every record update
// is a single CoreRecordUpdate anchored on its first spread source.
//
// The core tree defines its own copy of every node type, with its own
// Visitor, even where a node's shape is unchanged from the surface
// AST (declarations, most expressions). The teacher's own AST package
// keeps one flat node set rather than splitting surface/core — here
// the two are distinct
// packages because the spec requires desugaring to be an observable,
// separately-testable phase (§4.6).
package core

import "github.com/fenlang/fenc/internal/source"

// Node is implemented by every core-AST node.
type Node interface {
	Loc() source.Location
	Accept(v Visitor)
}

// Module is the root of a desugared file.
type Module struct {
	Imports      []*ImportDecl
	Declarations []Declaration
	Location     source.Location
}

func (m *Module) Loc() source.Location { return m.Location }
func (m *Module) Accept(v Visitor)     { v.VisitModule(m) }

type Declaration interface {
	Node
	declNode()
}

// ImportDecl, ReExportDecl, TypeDecl, ExternalDecl and ExternalBlock
// carry no desugarable surface structure (§3.4 does not reduce them),
// so the core forms are kept field-for-field with their ast
// counterparts, rebuilt fresh by the desugarer rather than shared by
// reference — the core tree owns its own nodes end to end.

type ImportItem struct {
	Name   string
	Alias  string
	IsType bool
}

type ImportDecl struct {
	Items    []ImportItem
	From     string
	Location source.Location
}

func (d *ImportDecl) Loc() source.Location { return d.Location }
func (d *ImportDecl) Accept(v Visitor)     { v.VisitImportDecl(d) }
func (d *ImportDecl) declNode()            {}

type ReExportDecl struct {
	Items    []ImportItem
	From     string
	Location source.Location
}

func (d *ReExportDecl) Loc() source.Location { return d.Location }
func (d *ReExportDecl) Accept(v Visitor)     { v.VisitReExportDecl(d) }
func (d *ReExportDecl) declNode()            {}

type TypeDef interface {
	Node
	typeDefNode()
}

type AliasType struct {
	Target   TypeExpr
	Location source.Location
}

func (t *AliasType) Loc() source.Location { return t.Location }
func (t *AliasType) Accept(v Visitor)     { v.VisitAliasType(t) }
func (t *AliasType) typeDefNode()         {}

type RecordTypeField struct {
	Name string
	Type TypeExpr
}

type RecordTypeDef struct {
	Fields   []RecordTypeField
	Location source.Location
}

func (t *RecordTypeDef) Loc() source.Location { return t.Location }
func (t *RecordTypeDef) Accept(v Visitor)     { v.VisitRecordTypeDef(t) }
func (t *RecordTypeDef) typeDefNode()         {}

// VariantConstructor collects the one or more `| Ctor(Args)` arms of a
// variant type, whether the source wrote them on one line or spread
// across several — that surface distinction is exactly what
// "multi-line variant syntax collapses to a flat constructor list"
// (§3.4) removes.
type VariantConstructor struct {
	Name string
	Args []TypeExpr
}

type VariantTypeDef struct {
	Constructors []VariantConstructor
	Location     source.Location
}

func (t *VariantTypeDef) Loc() source.Location { return t.Location }
func (t *VariantTypeDef) Accept(v Visitor)     { v.VisitVariantTypeDef(t) }
func (t *VariantTypeDef) typeDefNode()         {}

type TypeDecl struct {
	Name       string
	Params     []string
	Definition TypeDef
	Exported   bool
	Location   source.Location
}

func (d *TypeDecl) Loc() source.Location { return d.Location }
func (d *TypeDecl) Accept(v Visitor)     { v.VisitTypeDecl(d) }
func (d *TypeDecl) declNode()            {}

type ExternalDecl struct {
	Name       string
	TypeExpr   TypeExpr
	JSName     string
	From       string
	Exported   bool
	TypeParams []string
	Location   source.Location
}

func (d *ExternalDecl) Loc() source.Location { return d.Location }
func (d *ExternalDecl) Accept(v Visitor)     { v.VisitExternalDecl(d) }
func (d *ExternalDecl) declNode()            {}

type ExternalItem interface {
	Node
	externalItemNode()
}

type ExternalValue struct {
	Name       string
	TypeExpr   TypeExpr
	JSName     string
	TypeParams []string
	Location   source.Location
}

func (e *ExternalValue) Loc() source.Location { return e.Location }
func (e *ExternalValue) Accept(v Visitor)     { v.VisitExternalValue(e) }
func (e *ExternalValue) externalItemNode()    {}

type ExternalType struct {
	Name     string
	Location source.Location
}

func (e *ExternalType) Loc() source.Location { return e.Location }
func (e *ExternalType) Accept(v Visitor)     { v.VisitExternalType(e) }
func (e *ExternalType) externalItemNode()    {}

type ExternalBlock struct {
	From     string
	Items    []ExternalItem
	Exported bool
	Location source.Location
}

func (d *ExternalBlock) Loc() source.Location { return d.Location }
func (d *ExternalBlock) Accept(v Visitor)     { v.VisitExternalBlock(d) }
func (d *ExternalBlock) declNode()            {}

// LetDecl keeps the same shape as its surface counterpart: binding
// structure is not part of the reduced algebra.
type LetDecl struct {
	Pattern   Pattern
	TypeAnnot TypeExpr
	Value     Expr
	Mutable   bool
	Recursive bool
	Exported  bool
	Location  source.Location
}

func (d *LetDecl) Loc() source.Location { return d.Location }
func (d *LetDecl) Accept(v Visitor)     { v.VisitLetDecl(d) }
func (d *LetDecl) declNode()            {}
