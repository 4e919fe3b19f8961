package ast

import "github.com/fenlang/fenc/internal/source"

// LetDecl binds a pattern to a value: `let [mut] [rec] pattern [: T] = expr`.
type LetDecl struct {
	Pattern   Pattern
	TypeAnnot TypeExpr // optional, nil if absent
	Value     Expr
	Mutable   bool
	Recursive bool
	Exported  bool
	Location  source.Location
}

func (d *LetDecl) Loc() source.Location { return d.Location }
func (d *LetDecl) Accept(v Visitor)     { v.VisitLetDecl(d) }
func (d *LetDecl) declNode()            {}

// TypeDef is implemented by the three right-hand sides a `type`
// declaration may have.
type TypeDef interface {
	Node
	typeDefNode()
}

// AliasType: `type Name<Params> = SomeType`.
type AliasType struct {
	Target   TypeExpr
	Location source.Location
}

func (t *AliasType) Loc() source.Location { return t.Location }
func (t *AliasType) Accept(v Visitor)     { v.VisitAliasType(t) }
func (t *AliasType) typeDefNode()         {}

// RecordTypeDef: `type Name<Params> = { field: T, ... }`.
type RecordTypeDef struct {
	Fields   []RecordTypeField
	Location source.Location
}

type RecordTypeField struct {
	Name string
	Type TypeExpr
}

func (t *RecordTypeDef) Loc() source.Location { return t.Location }
func (t *RecordTypeDef) Accept(v Visitor)     { v.VisitRecordTypeDef(t) }
func (t *RecordTypeDef) typeDefNode()         {}

// VariantConstructor is one arm of a variant type definition.
type VariantConstructor struct {
	Name string
	Args []TypeExpr
}

// VariantTypeDef: `type Name<Params> = | Ctor(Args) | Ctor2 | ...`.
type VariantTypeDef struct {
	Constructors []VariantConstructor
	Location     source.Location
}

func (t *VariantTypeDef) Loc() source.Location { return t.Location }
func (t *VariantTypeDef) Accept(v Visitor)     { v.VisitVariantTypeDef(t) }
func (t *VariantTypeDef) typeDefNode()         {}

// TypeDecl: `type Name<Params> = TypeDef`.
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

// ExternalDecl: `external Name : Type = "jsName" [from "module"];`.
type ExternalDecl struct {
	Name       string
	TypeExpr   TypeExpr
	JSName     string
	From       string // "" if absent
	Exported   bool
	TypeParams []string
	Location   source.Location
}

func (d *ExternalDecl) Loc() source.Location { return d.Location }
func (d *ExternalDecl) Accept(v Visitor)     { v.VisitExternalDecl(d) }
func (d *ExternalDecl) declNode()            {}

// ExternalItem is implemented by the two kinds of item an
// `external { ... }` block may contain.
type ExternalItem interface {
	Node
	externalItemNode()
}

// ExternalValue: `Name : Type = "jsName";` inside an external block.
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

// ExternalType: `type Name = Type;` inside an external block — the
// opaque-type-constructor form described in the glossary.
type ExternalType struct {
	Name     string
	Location source.Location
}

func (e *ExternalType) Loc() source.Location { return e.Location }
func (e *ExternalType) Accept(v Visitor)     { v.VisitExternalType(e) }
func (e *ExternalType) externalItemNode()    {}

// ExternalBlock: `external [from "module"] { items };`.
type ExternalBlock struct {
	From     string
	Items    []ExternalItem
	Exported bool
	Location source.Location
}

func (d *ExternalBlock) Loc() source.Location { return d.Location }
func (d *ExternalBlock) Accept(v Visitor)     { v.VisitExternalBlock(d) }
func (d *ExternalBlock) declNode()            {}

// ImportItem is one entry of an import list: `a`, `b as c`, `type T`,
// or the wildcard form `*`.
type ImportItem struct {
	Name     string // "*" for the wildcard form
	Alias    string // "" if absent
	IsType   bool
	Location source.Location
}

// ImportDecl: `import { items } from "./path";` or
// `import * as X from "./path";` (represented as a single wildcard item).
type ImportDecl struct {
	Items    []ImportItem
	From     string
	Location source.Location
}

func (d *ImportDecl) Loc() source.Location { return d.Location }
func (d *ImportDecl) Accept(v Visitor)     { v.VisitImportDecl(d) }
func (d *ImportDecl) declNode()            {}

// ReExportDecl: `export { items } from "./mod";` (Items non-nil) or
// `export * from "./mod";` (Items nil, the namespace re-export form).
type ReExportDecl struct {
	Items    []ImportItem // nil for the namespace (export *) form
	From     string
	Location source.Location
}

func (d *ReExportDecl) Loc() source.Location { return d.Location }
func (d *ReExportDecl) Accept(v Visitor)     { v.VisitReExportDecl(d) }
func (d *ReExportDecl) declNode()            {}
