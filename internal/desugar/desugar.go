// Package desugar lowers a surface ast.Module into a core.Module
// (§3.4, §4.6): list literals/patterns become nested Cons/Nil
// constructor applications, record-update spread chains fold into
// CoreRecordUpdate, and multi-line variant definitions collapse to a
// flat constructor list (already done structurally by the parser, so
// that step is a no-op copy here).
//
// Desugaring is implemented as a set of plain recursive functions
// keyed by a type switch on the surface node, grounded on the
// teacher's prettyprinter.printExpr (switch on concrete *ast.X,
// recurse, rebuild) rather than on ast.Visitor: every one of these
// functions produces a *different* tree (ast.Expr -> core.Expr), and
// Go's visitor methods return nothing, so a tree-to-tree rewrite has
// no natural home on the Visitor interface the way a read-only walk
// (astdump) does.
//
// Like the parser, a Desugarer stops at the first error (§7): no
// synchronization, no multi-error accumulation.
package desugar

import (
	"fmt"

	"github.com/fenlang/fenc/internal/ast"
	"github.com/fenlang/fenc/internal/core"
	"github.com/fenlang/fenc/internal/diagnostics"
	"github.com/fenlang/fenc/internal/source"
)

type Desugarer struct {
	err *diagnostics.Error
}

// Module is the package's public entry point.
func Module(m *ast.Module) (*core.Module, *diagnostics.Error) {
	d := &Desugarer{}
	out := d.module(m)
	if d.err != nil {
		return nil, d.err
	}
	return out, nil
}

func (d *Desugarer) fail(loc source.Location, shape interface{}) {
	if d.err != nil {
		return
	}
	d.err = diagnostics.New(diagnostics.PhaseDesugar, diagnostics.ErrDesugar, loc, fmt.Sprintf("%T", shape))
}

func (d *Desugarer) failed() bool { return d.err != nil }

func (d *Desugarer) module(m *ast.Module) *core.Module {
	out := &core.Module{Location: m.Location}
	for _, imp := range m.Imports {
		out.Imports = append(out.Imports, d.importDecl(imp))
		if d.failed() {
			return out
		}
	}
	for _, decl := range m.Declarations {
		cd := d.decl(decl)
		if d.failed() {
			return out
		}
		out.Declarations = append(out.Declarations, cd)
	}
	return out
}

func (d *Desugarer) importItems(items []ast.ImportItem) []core.ImportItem {
	out := make([]core.ImportItem, len(items))
	for i, it := range items {
		out[i] = core.ImportItem{Name: it.Name, Alias: it.Alias, IsType: it.IsType}
	}
	return out
}

func (d *Desugarer) importDecl(n *ast.ImportDecl) *core.ImportDecl {
	return &core.ImportDecl{Items: d.importItems(n.Items), From: n.From, Location: n.Location}
}

func (d *Desugarer) reExportDecl(n *ast.ReExportDecl) *core.ReExportDecl {
	return &core.ReExportDecl{Items: d.importItems(n.Items), From: n.From, Location: n.Location}
}

func (d *Desugarer) decl(n ast.Declaration) core.Declaration {
	switch v := n.(type) {
	case *ast.LetDecl:
		return d.letDecl(v)
	case *ast.TypeDecl:
		return d.typeDecl(v)
	case *ast.ExternalDecl:
		return d.externalDecl(v)
	case *ast.ExternalBlock:
		return d.externalBlock(v)
	case *ast.ImportDecl:
		return d.importDecl(v)
	case *ast.ReExportDecl:
		return d.reExportDecl(v)
	default:
		d.fail(n.Loc(), n)
		return nil
	}
}

func (d *Desugarer) letDecl(n *ast.LetDecl) *core.LetDecl {
	pat := d.pattern(n.Pattern)
	var typeAnnot core.TypeExpr
	if n.TypeAnnot != nil {
		typeAnnot = d.typeExpr(n.TypeAnnot)
	}
	value := d.expr(n.Value)
	return &core.LetDecl{
		Pattern: pat, TypeAnnot: typeAnnot, Value: value,
		Mutable: n.Mutable, Recursive: n.Recursive, Exported: n.Exported,
		Location: n.Location,
	}
}

func (d *Desugarer) typeDecl(n *ast.TypeDecl) *core.TypeDecl {
	def := d.typeDef(n.Definition)
	return &core.TypeDecl{Name: n.Name, Params: n.Params, Definition: def, Exported: n.Exported, Location: n.Location}
}

func (d *Desugarer) typeDef(n ast.TypeDef) core.TypeDef {
	switch v := n.(type) {
	case *ast.AliasType:
		return &core.AliasType{Target: d.typeExpr(v.Target), Location: v.Location}
	case *ast.RecordTypeDef:
		fields := make([]core.RecordTypeField, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = core.RecordTypeField{Name: f.Name, Type: d.typeExpr(f.Type)}
		}
		return &core.RecordTypeDef{Fields: fields, Location: v.Location}
	case *ast.VariantTypeDef:
		// Whether the source wrote constructors on one line or spread
		// across several, the parser already produced a flat list
		// (§4.5); this is purely a field-for-field rebuild.
		ctors := make([]core.VariantConstructor, len(v.Constructors))
		for i, c := range v.Constructors {
			ctors[i] = core.VariantConstructor{Name: c.Name, Args: d.typeExprList(c.Args)}
		}
		return &core.VariantTypeDef{Constructors: ctors, Location: v.Location}
	default:
		d.fail(n.Loc(), n)
		return nil
	}
}

func (d *Desugarer) externalDecl(n *ast.ExternalDecl) *core.ExternalDecl {
	return &core.ExternalDecl{
		Name: n.Name, TypeExpr: d.typeExpr(n.TypeExpr), JSName: n.JSName, From: n.From,
		Exported: n.Exported, TypeParams: n.TypeParams, Location: n.Location,
	}
}

func (d *Desugarer) externalBlock(n *ast.ExternalBlock) *core.ExternalBlock {
	items := make([]core.ExternalItem, len(n.Items))
	for i, it := range n.Items {
		items[i] = d.externalItem(it)
	}
	return &core.ExternalBlock{From: n.From, Items: items, Exported: n.Exported, Location: n.Location}
}

func (d *Desugarer) externalItem(n ast.ExternalItem) core.ExternalItem {
	switch v := n.(type) {
	case *ast.ExternalValue:
		return &core.ExternalValue{
			Name: v.Name, TypeExpr: d.typeExpr(v.TypeExpr), JSName: v.JSName,
			TypeParams: v.TypeParams, Location: v.Location,
		}
	case *ast.ExternalType:
		return &core.ExternalType{Name: v.Name, Location: v.Location}
	default:
		d.fail(n.Loc(), n)
		return nil
	}
}

func (d *Desugarer) typeExprList(in []ast.TypeExpr) []core.TypeExpr {
	if in == nil {
		return nil
	}
	out := make([]core.TypeExpr, len(in))
	for i, t := range in {
		out[i] = d.typeExpr(t)
	}
	return out
}

func (d *Desugarer) typeExpr(n ast.TypeExpr) core.TypeExpr {
	switch v := n.(type) {
	case *ast.TypeConst:
		return &core.TypeConst{Name: v.Name, Location: v.Location}
	case *ast.TypeVar:
		return &core.TypeVar{Name: v.Name, Location: v.Location}
	case *ast.TypeApp:
		return &core.TypeApp{Constructor: v.Constructor, Args: d.typeExprList(v.Args), Location: v.Location}
	case *ast.FunctionType:
		return &core.FunctionType{Params: d.typeExprList(v.Params), Return: d.typeExpr(v.Return), Location: v.Location}
	case *ast.RecordType:
		fields := make([]core.RecordTypeFieldExpr, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = core.RecordTypeFieldExpr{Name: f.Name, Type: d.typeExpr(f.Type)}
		}
		return &core.RecordType{Fields: fields, Location: v.Location}
	case *ast.TupleType:
		return &core.TupleType{Elements: d.typeExprList(v.Elements), Location: v.Location}
	default:
		d.fail(n.Loc(), n)
		return nil
	}
}

func isUpperIdent(name string) bool {
	return len(name) > 0 && name[0] >= 'A' && name[0] <= 'Z'
}

func (d *Desugarer) exprList(in []ast.Expr) []core.Expr {
	if in == nil {
		return nil
	}
	out := make([]core.Expr, len(in))
	for i, e := range in {
		out[i] = d.expr(e)
	}
	return out
}

// expr is the core of the package: the type switch that performs
// every structural reduction §3.4 describes.
func (d *Desugarer) expr(n ast.Expr) core.Expr {
	if d.failed() {
		return nil
	}
	switch v := n.(type) {
	case *ast.IntLit:
		return &core.IntLit{Value: v.Value, Location: v.Location}
	case *ast.FloatLit:
		return &core.FloatLit{Value: v.Value, Location: v.Location}
	case *ast.StringLit:
		return &core.StringLit{Value: v.Value, Location: v.Location}
	case *ast.BoolLit:
		return &core.BoolLit{Value: v.Value, Location: v.Location}
	case *ast.UnitLit:
		return &core.UnitLit{Location: v.Location}
	case *ast.Var:
		// A bare uppercase reference is a nullary variant constructor
		// (e.g. `None`), lowered to a ConstructorApp with no args so
		// the core tree never has to ask "is this Var a constructor?"
		// again downstream.
		if isUpperIdent(v.Name) {
			return &core.ConstructorApp{Constructor: v.Name, Location: v.Location}
		}
		return &core.Var{Name: v.Name, Location: v.Location}
	case *ast.Lambda:
		return &core.Lambda{Params: d.patternList(v.Params), Body: d.expr(v.Body), Location: v.Location}
	case *ast.App:
		return d.app(v)
	case *ast.BinOp:
		return &core.BinOp{Op: v.Op, Left: d.expr(v.Left), Right: d.expr(v.Right), Location: v.Location}
	case *ast.UnaryOp:
		return &core.UnaryOp{Op: v.Op, Expr: d.expr(v.Expr), Location: v.Location}
	case *ast.Pipe:
		return &core.Pipe{Expr: d.expr(v.Expr), Func: d.expr(v.Func), Location: v.Location}
	case *ast.If:
		return &core.If{Condition: d.expr(v.Condition), Then: d.expr(v.Then), Else: d.expr(v.Else), Location: v.Location}
	case *ast.Match:
		return d.match(v)
	case *ast.Record:
		return &core.Record{Fields: d.fieldList(v.Fields), Location: v.Location}
	case *ast.RecordUpdate:
		return d.recordUpdate(v)
	case *ast.RecordAccess:
		return &core.RecordAccess{Record: d.expr(v.Record), Field: v.Field, Location: v.Location}
	case *ast.List:
		return d.list(v)
	case *ast.Tuple:
		return &core.Tuple{Elements: d.exprList(v.Elements), Location: v.Location}
	case *ast.Block:
		exprs := make([]core.Expr, len(v.Exprs))
		for i, e := range v.Exprs {
			exprs[i] = d.expr(e)
		}
		return &core.Block{Exprs: exprs, Location: v.Location}
	case *ast.Unsafe:
		return &core.Unsafe{Expr: d.expr(v.Expr), Location: v.Location}
	case *ast.TypeAnnotation:
		return &core.TypeAnnotation{Expr: d.expr(v.Expr), TypeExpr: d.typeExpr(v.TypeExpr), Location: v.Location}
	default:
		d.fail(n.Loc(), n)
		return nil
	}
}

// app recognizes application of an uppercase Var as variant
// construction (§3.4) and lowers it to ConstructorApp; anything else
// stays a plain App.
func (d *Desugarer) app(n *ast.App) core.Expr {
	args := d.exprList(n.Args)
	if callee, ok := n.Func.(*ast.Var); ok && isUpperIdent(callee.Name) {
		return &core.ConstructorApp{Constructor: callee.Name, Args: args, Location: n.Location}
	}
	return &core.App{Func: d.expr(n.Func), Args: args, Location: n.Location}
}

func (d *Desugarer) match(n *ast.Match) core.Expr {
	cases := make([]core.MatchCase, len(n.Cases))
	for i, c := range n.Cases {
		var guard core.Expr
		if c.Guard != nil {
			guard = d.expr(c.Guard)
		}
		cases[i] = core.MatchCase{Pattern: d.pattern(c.Pattern), Guard: guard, Body: d.expr(c.Body), Location: c.Location}
	}
	return &core.Match{Expr: d.expr(n.Expr), Cases: cases, Location: n.Location}
}

// fieldList desugars a record field list that is guaranteed (by
// construction) to contain no spreads, i.e. a plain record literal.
func (d *Desugarer) fieldList(fields []ast.RecordField) []core.Field {
	out := make([]core.Field, 0, len(fields))
	for _, f := range fields {
		field, ok := f.(*ast.Field)
		if !ok {
			d.fail(f.Loc(), f)
			return nil
		}
		out = append(out, core.Field{Name: field.Name, Value: d.expr(field.Value), Location: field.Location})
	}
	return out
}

// list lowers `[e1, e2, e3]` to `Cons(e1, Cons(e2, Cons(e3, Nil)))`
// (§3.4): lists are not primitive in the core algebra.
func (d *Desugarer) list(n *ast.List) core.Expr {
	var result core.Expr = &core.ConstructorApp{Constructor: "Nil", Location: n.Location}
	for i := len(n.Elements) - 1; i >= 0; i-- {
		el := n.Elements[i]
		result = &core.ConstructorApp{
			Constructor: "Cons",
			Args:        []core.Expr{d.expr(el.Expr), result},
			Location:    el.Location,
		}
	}
	return result
}

// recordUpdate folds `{ ...a, f1: v1, ...b, f2: v2 }` left to right:
// named fields accumulate as overrides on the current base, and each
// further spread supersedes the accumulated base as the new one,
// carrying forward only the overrides collected since the previous
// spread (§3.4, §3.5).
func (d *Desugarer) recordUpdate(n *ast.RecordUpdate) core.Expr {
	base := d.expr(n.Record)
	var pending []core.Field
	flush := func(loc source.Location) {
		if len(pending) > 0 {
			base = &core.CoreRecordUpdate{Record: base, Updates: pending, Location: loc}
			pending = nil
		}
	}
	for _, f := range n.Updates {
		switch v := f.(type) {
		case *ast.Field:
			pending = append(pending, core.Field{Name: v.Name, Value: d.expr(v.Value), Location: v.Location})
		case *ast.Spread:
			flush(v.Location)
			base = d.expr(v.Expr)
		default:
			d.fail(f.Loc(), f)
			return nil
		}
	}
	flush(n.Location)
	return base
}

func (d *Desugarer) patternList(in []ast.Pattern) []core.Pattern {
	if in == nil {
		return nil
	}
	out := make([]core.Pattern, len(in))
	for i, p := range in {
		out[i] = d.pattern(p)
	}
	return out
}

func (d *Desugarer) pattern(n ast.Pattern) core.Pattern {
	if d.failed() {
		return nil
	}
	switch v := n.(type) {
	case *ast.WildcardPattern:
		return &core.WildcardPattern{Location: v.Location}
	case *ast.VarPattern:
		return &core.VarPattern{Name: v.Name, Location: v.Location}
	case *ast.LiteralPattern:
		return &core.LiteralPattern{Value: v.Value, Location: v.Location}
	case *ast.ConstructorPattern:
		return &core.ConstructorPattern{Constructor: v.Constructor, Args: d.patternList(v.Args), Location: v.Location}
	case *ast.RecordPattern:
		fields := make([]core.RecordFieldPattern, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = core.RecordFieldPattern{Name: f.Name, Pattern: d.pattern(f.Pattern)}
		}
		return &core.RecordPattern{Fields: fields, HasRest: v.HasRest, Location: v.Location}
	case *ast.ListPattern:
		return d.listPattern(v)
	case *ast.TuplePattern:
		return &core.TuplePattern{Elements: d.patternList(v.Elements), Location: v.Location}
	default:
		d.fail(n.Loc(), n)
		return nil
	}
}

// listPattern mirrors list's Cons/Nil lowering on the pattern side
// (§3.4, §4.4): `[p1, p2, ...rest]` becomes
// `Cons(p1, Cons(p2, rest))`, or `Cons(p1, Cons(p2, Nil))` when there
// is no `...rest` tail.
func (d *Desugarer) listPattern(n *ast.ListPattern) core.Pattern {
	var tail core.Pattern
	if n.Rest != nil {
		tail = &core.VarPattern{Name: n.Rest.Name, Location: n.Rest.Location}
	} else {
		tail = &core.ConstructorPattern{Constructor: "Nil", Location: n.Location}
	}
	result := tail
	for i := len(n.Elements) - 1; i >= 0; i-- {
		result = &core.ConstructorPattern{
			Constructor: "Cons",
			Args:        []core.Pattern{d.pattern(n.Elements[i]), result},
			Location:    n.Location,
		}
	}
	return result
}
