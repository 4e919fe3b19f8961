// Package astdump renders a desugared core.Module as an indented tree
// of text, the stable projection used by tests (§6.3) and
// by any tooling that wants a human-readable look at what desugaring
// produced. Grounded on the teacher's
// internal/prettyprinter.TreePrinter: a buffer, an indent counter, and
// one Visit method per node kind that writes its own line(s) and
// recurses at indent+1.
package astdump

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/fenlang/fenc/internal/core"
)

type Printer struct {
	buf    bytes.Buffer
	indent int
}

func New() *Printer {
	return &Printer{}
}

// Dump renders m as an indented tree and returns the result.
func Dump(m *core.Module) string {
	p := New()
	m.Accept(p)
	return p.String()
}

func (p *Printer) String() string { return p.buf.String() }

func (p *Printer) write(s string) { p.buf.WriteString(s) }

func (p *Printer) writeIndent() { p.write(strings.Repeat("  ", p.indent)) }

func (p *Printer) line(s string) {
	p.writeIndent()
	p.write(s)
	p.write("\n")
}

func (p *Printer) child(label string, n core.Node) {
	p.writeIndent()
	p.write(label + ": ")
	if n == nil {
		p.write("<nil>\n")
		return
	}
	n.Accept(p)
	p.write("\n")
}

func (p *Printer) VisitModule(n *core.Module) {
	p.line("Module")
	p.indent++
	for _, imp := range n.Imports {
		imp.Accept(p)
	}
	for _, decl := range n.Declarations {
		decl.Accept(p)
	}
	p.indent--
}

func (p *Printer) VisitImportDecl(n *core.ImportDecl) {
	p.writeIndent()
	p.write(fmt.Sprintf("Import(from=%q)\n", n.From))
	p.indent++
	for _, it := range n.Items {
		p.line(importItemString(it))
	}
	p.indent--
}

func (p *Printer) VisitReExportDecl(n *core.ReExportDecl) {
	p.writeIndent()
	if n.Items == nil {
		p.write(fmt.Sprintf("ReExport(*, from=%q)\n", n.From))
		return
	}
	p.write(fmt.Sprintf("ReExport(from=%q)\n", n.From))
	p.indent++
	for _, it := range n.Items {
		p.line(importItemString(it))
	}
	p.indent--
}

func importItemString(it core.ImportItem) string {
	s := it.Name
	if it.IsType {
		s = "type " + s
	}
	if it.Alias != "" {
		s += " as " + it.Alias
	}
	return s
}

func (p *Printer) VisitLetDecl(n *core.LetDecl) {
	p.writeIndent()
	p.write("LetDecl")
	if n.Exported {
		p.write(" export")
	}
	if n.Mutable {
		p.write(" mut")
	}
	if n.Recursive {
		p.write(" rec")
	}
	p.write("\n")
	p.indent++
	p.child("Pattern", n.Pattern)
	if n.TypeAnnot != nil {
		p.child("Type", n.TypeAnnot)
	}
	p.child("Value", n.Value)
	p.indent--
}

func (p *Printer) VisitTypeDecl(n *core.TypeDecl) {
	p.writeIndent()
	p.write("TypeDecl(" + n.Name)
	if len(n.Params) > 0 {
		p.write("<" + strings.Join(n.Params, ", ") + ">")
	}
	p.write(")\n")
	p.indent++
	n.Definition.Accept(p)
	p.indent--
}

func (p *Printer) VisitExternalDecl(n *core.ExternalDecl) {
	p.writeIndent()
	p.write(fmt.Sprintf("ExternalDecl(%s -> %q)\n", n.Name, n.JSName))
	p.indent++
	p.child("Type", n.TypeExpr)
	p.indent--
}

func (p *Printer) VisitExternalBlock(n *core.ExternalBlock) {
	p.writeIndent()
	p.write(fmt.Sprintf("ExternalBlock(from=%q)\n", n.From))
	p.indent++
	for _, it := range n.Items {
		it.Accept(p)
	}
	p.indent--
}

func (p *Printer) VisitExternalValue(n *core.ExternalValue) {
	p.writeIndent()
	p.write(fmt.Sprintf("ExternalValue(%s -> %q)\n", n.Name, n.JSName))
}

func (p *Printer) VisitExternalType(n *core.ExternalType) {
	p.line("ExternalType(" + n.Name + ")")
}

func (p *Printer) VisitAliasType(n *core.AliasType) {
	p.writeIndent()
	p.write("AliasType -> ")
	n.Target.Accept(p)
	p.write("\n")
}

func (p *Printer) VisitRecordTypeDef(n *core.RecordTypeDef) {
	p.line("RecordTypeDef")
	p.indent++
	for _, f := range n.Fields {
		p.writeIndent()
		p.write(f.Name + ": ")
		f.Type.Accept(p)
		p.write("\n")
	}
	p.indent--
}

func (p *Printer) VisitVariantTypeDef(n *core.VariantTypeDef) {
	p.line("VariantTypeDef")
	p.indent++
	for _, c := range n.Constructors {
		p.writeIndent()
		p.write(c.Name)
		if len(c.Args) > 0 {
			p.write("(")
			for i, a := range c.Args {
				if i > 0 {
					p.write(", ")
				}
				a.Accept(p)
			}
			p.write(")")
		}
		p.write("\n")
	}
	p.indent--
}

func (p *Printer) VisitIntLit(n *core.IntLit) {
	p.write("Int(" + strconv.FormatInt(n.Value, 10) + ")")
}

func (p *Printer) VisitFloatLit(n *core.FloatLit) {
	p.write("Float(" + strconv.FormatFloat(n.Value, 'g', -1, 64) + ")")
}

func (p *Printer) VisitStringLit(n *core.StringLit) {
	p.write(fmt.Sprintf("String(%q)", n.Value))
}

func (p *Printer) VisitBoolLit(n *core.BoolLit) {
	p.write(fmt.Sprintf("Bool(%t)", n.Value))
}

func (p *Printer) VisitUnitLit(n *core.UnitLit) {
	p.write("Unit")
}

func (p *Printer) VisitVar(n *core.Var) {
	p.write("Var(" + n.Name + ")")
}

func (p *Printer) VisitLambda(n *core.Lambda) {
	p.write("Lambda\n")
	p.indent++
	p.writeIndent()
	p.write("Params: ")
	for i, param := range n.Params {
		if i > 0 {
			p.write(", ")
		}
		param.Accept(p)
	}
	p.write("\n")
	p.child("Body", n.Body)
	p.indent--
}

func (p *Printer) VisitApp(n *core.App) {
	p.write("App\n")
	p.indent++
	p.child("Func", n.Func)
	p.writeIndent()
	p.write("Args:\n")
	p.indent++
	for _, a := range n.Args {
		p.writeIndent()
		a.Accept(p)
		p.write("\n")
	}
	p.indent--
	p.indent--
}

func (p *Printer) VisitBinOp(n *core.BinOp) {
	p.write("BinOp(" + n.Op + ")\n")
	p.indent++
	p.child("Left", n.Left)
	p.child("Right", n.Right)
	p.indent--
}

func (p *Printer) VisitUnaryOp(n *core.UnaryOp) {
	p.write("UnaryOp(" + n.Op + ")\n")
	p.indent++
	p.child("Expr", n.Expr)
	p.indent--
}

func (p *Printer) VisitPipe(n *core.Pipe) {
	p.write("Pipe\n")
	p.indent++
	p.child("Expr", n.Expr)
	p.child("Func", n.Func)
	p.indent--
}

func (p *Printer) VisitIf(n *core.If) {
	p.write("If\n")
	p.indent++
	p.child("Cond", n.Condition)
	p.child("Then", n.Then)
	p.child("Else", n.Else)
	p.indent--
}

func (p *Printer) VisitMatch(n *core.Match) {
	p.write("Match\n")
	p.indent++
	p.child("Scrutinee", n.Expr)
	for _, c := range n.Cases {
		p.writeIndent()
		p.write("Case: ")
		c.Pattern.Accept(p)
		if c.Guard != nil {
			p.write(" when ")
			c.Guard.Accept(p)
		}
		p.write(" => ")
		c.Body.Accept(p)
		p.write("\n")
	}
	p.indent--
}

func (p *Printer) VisitRecord(n *core.Record) {
	p.write("Record\n")
	p.indent++
	for _, f := range n.Fields {
		p.writeIndent()
		p.write(f.Name + ": ")
		f.Value.Accept(p)
		p.write("\n")
	}
	p.indent--
}

func (p *Printer) VisitCoreRecordUpdate(n *core.CoreRecordUpdate) {
	p.write("RecordUpdate\n")
	p.indent++
	p.child("Base", n.Record)
	for _, f := range n.Updates {
		p.writeIndent()
		p.write(f.Name + ": ")
		f.Value.Accept(p)
		p.write("\n")
	}
	p.indent--
}

func (p *Printer) VisitRecordAccess(n *core.RecordAccess) {
	p.write("RecordAccess(." + n.Field + ")\n")
	p.indent++
	p.child("Record", n.Record)
	p.indent--
}

func (p *Printer) VisitConstructorApp(n *core.ConstructorApp) {
	p.write("Ctor(" + n.Constructor + ")")
	if len(n.Args) == 0 {
		return
	}
	p.write("\n")
	p.indent++
	for _, a := range n.Args {
		p.writeIndent()
		a.Accept(p)
		p.write("\n")
	}
	p.indent--
}

func (p *Printer) VisitTuple(n *core.Tuple) {
	p.write("Tuple\n")
	p.indent++
	for _, e := range n.Elements {
		p.writeIndent()
		e.Accept(p)
		p.write("\n")
	}
	p.indent--
}

func (p *Printer) VisitBlock(n *core.Block) {
	p.write("Block\n")
	p.indent++
	for _, e := range n.Exprs {
		p.writeIndent()
		e.Accept(p)
		p.write("\n")
	}
	p.indent--
}

func (p *Printer) VisitUnsafe(n *core.Unsafe) {
	p.write("Unsafe\n")
	p.indent++
	p.child("Expr", n.Expr)
	p.indent--
}

func (p *Printer) VisitTypeAnnotation(n *core.TypeAnnotation) {
	p.write("Annotated(")
	n.Expr.Accept(p)
	p.write(": ")
	n.TypeExpr.Accept(p)
	p.write(")")
}

func (p *Printer) VisitWildcardPattern(n *core.WildcardPattern) {
	p.write("_")
}

func (p *Printer) VisitVarPattern(n *core.VarPattern) {
	p.write("Var(" + n.Name + ")")
}

func (p *Printer) VisitLiteralPattern(n *core.LiteralPattern) {
	p.write(fmt.Sprintf("Lit(%v)", n.Value))
}

func (p *Printer) VisitConstructorPattern(n *core.ConstructorPattern) {
	p.write("Ctor(" + n.Constructor)
	for _, a := range n.Args {
		p.write(" ")
		a.Accept(p)
	}
	p.write(")")
}

func (p *Printer) VisitRecordPattern(n *core.RecordPattern) {
	p.write("RecordPattern(")
	for i, f := range n.Fields {
		if i > 0 {
			p.write(", ")
		}
		p.write(f.Name + ": ")
		f.Pattern.Accept(p)
	}
	if n.HasRest {
		if len(n.Fields) > 0 {
			p.write(", ")
		}
		p.write("_")
	}
	p.write(")")
}

func (p *Printer) VisitTuplePattern(n *core.TuplePattern) {
	p.write("TuplePattern(")
	for i, e := range n.Elements {
		if i > 0 {
			p.write(", ")
		}
		e.Accept(p)
	}
	p.write(")")
}

func (p *Printer) VisitTypeConst(n *core.TypeConst) {
	p.write(n.Name)
}

func (p *Printer) VisitTypeVar(n *core.TypeVar) {
	p.write(n.Name)
}

func (p *Printer) VisitTypeApp(n *core.TypeApp) {
	p.write(n.Constructor + "<")
	for i, a := range n.Args {
		if i > 0 {
			p.write(", ")
		}
		a.Accept(p)
	}
	p.write(">")
}

func (p *Printer) VisitFunctionType(n *core.FunctionType) {
	p.write("(")
	for i, t := range n.Params {
		if i > 0 {
			p.write(", ")
		}
		t.Accept(p)
	}
	p.write(") -> ")
	n.Return.Accept(p)
}

func (p *Printer) VisitRecordType(n *core.RecordType) {
	p.write("{")
	for i, f := range n.Fields {
		if i > 0 {
			p.write(", ")
		}
		p.write(f.Name + ": ")
		f.Type.Accept(p)
	}
	p.write("}")
}

func (p *Printer) VisitTupleType(n *core.TupleType) {
	p.write("(")
	for i, t := range n.Elements {
		if i > 0 {
			p.write(", ")
		}
		t.Accept(p)
	}
	p.write(")")
}
