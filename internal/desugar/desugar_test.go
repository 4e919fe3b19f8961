package desugar

import (
	"testing"

	"github.com/fenlang/fenc/internal/ast"
	"github.com/fenlang/fenc/internal/core"
	"github.com/fenlang/fenc/internal/parser"
	"github.com/stretchr/testify/require"
)

func mustDesugarExpr(t *testing.T, src string) core.Expr {
	t.Helper()
	e, perr := parser.ParseExpression("test.fen", src)
	require.Nil(t, perr)
	d := &Desugarer{}
	out := d.expr(e)
	require.Nil(t, d.err)
	require.NotNil(t, out)
	return out
}

func TestListLiteralLowersToConsNilChain(t *testing.T) {
	out := mustDesugarExpr(t, "[1, 2, 3]")
	c1 := out.(*core.ConstructorApp)
	require.Equal(t, "Cons", c1.Constructor)
	require.Equal(t, int64(1), c1.Args[0].(*core.IntLit).Value)

	c2 := c1.Args[1].(*core.ConstructorApp)
	require.Equal(t, "Cons", c2.Constructor)
	require.Equal(t, int64(2), c2.Args[0].(*core.IntLit).Value)

	c3 := c2.Args[1].(*core.ConstructorApp)
	require.Equal(t, "Cons", c3.Constructor)
	require.Equal(t, int64(3), c3.Args[0].(*core.IntLit).Value)

	nilNode := c3.Args[1].(*core.ConstructorApp)
	require.Equal(t, "Nil", nilNode.Constructor)
	require.Nil(t, nilNode.Args)
}

func TestEmptyListLiteralLowersToBareNil(t *testing.T) {
	out := mustDesugarExpr(t, "[]")
	c := out.(*core.ConstructorApp)
	require.Equal(t, "Nil", c.Constructor)
	require.Nil(t, c.Args)
}

func TestNullaryConstructorLowersToConstructorAppWithNoArgs(t *testing.T) {
	out := mustDesugarExpr(t, "None")
	c := out.(*core.ConstructorApp)
	require.Equal(t, "None", c.Constructor)
	require.Nil(t, c.Args)
}

func TestAppliedConstructorLowersToConstructorAppWithArgs(t *testing.T) {
	out := mustDesugarExpr(t, "Some(1)")
	c := out.(*core.ConstructorApp)
	require.Equal(t, "Some", c.Constructor)
	require.Len(t, c.Args, 1)
	require.Equal(t, int64(1), c.Args[0].(*core.IntLit).Value)
}

func TestLowercaseVarIsNotAConstructor(t *testing.T) {
	out := mustDesugarExpr(t, "x")
	v := out.(*core.Var)
	require.Equal(t, "x", v.Name)
}

func TestPlainFunctionApplicationStaysApp(t *testing.T) {
	out := mustDesugarExpr(t, "f(1)")
	app := out.(*core.App)
	require.Equal(t, "f", app.Func.(*core.Var).Name)
}

func TestSingleSpreadRecordUpdateLowersToCoreRecordUpdate(t *testing.T) {
	out := mustDesugarExpr(t, "{ ...base, x: 1 }")
	upd := out.(*core.CoreRecordUpdate)
	require.Equal(t, "base", upd.Record.(*core.Var).Name)
	require.Len(t, upd.Updates, 1)
	require.Equal(t, "x", upd.Updates[0].Name)
}

// Each further spread in a multi-spread update supersedes the
// accumulated base, carrying forward only overrides collected since
// the previous spread.
func TestMultiSpreadRecordUpdateFoldsLeftToRight(t *testing.T) {
	out := mustDesugarExpr(t, "{ ...a, x: 1, ...b, y: 2 }")
	outer := out.(*core.CoreRecordUpdate)
	require.Len(t, outer.Updates, 1)
	require.Equal(t, "y", outer.Updates[0].Name)

	inner := outer.Record.(*core.CoreRecordUpdate)
	require.Equal(t, "a", inner.Record.(*core.Var).Name)
	require.Len(t, inner.Updates, 1)
	require.Equal(t, "x", inner.Updates[0].Name)
}

func TestRecordUpdateWithOnlySpreadNoOverrides(t *testing.T) {
	out := mustDesugarExpr(t, "{ ...a, ...b }")
	v, ok := out.(*core.Var)
	require.True(t, ok)
	require.Equal(t, "b", v.Name)
}

func TestListPatternLowersToConsChainEndingInNilConstructor(t *testing.T) {
	d := &Desugarer{}
	stream := ast.ListPattern{
		Elements: []ast.Pattern{
			&ast.VarPattern{Name: "a"},
			&ast.VarPattern{Name: "b"},
		},
	}
	out := d.listPattern(&stream)
	c1 := out.(*core.ConstructorPattern)
	require.Equal(t, "Cons", c1.Constructor)
	require.Equal(t, "a", c1.Args[0].(*core.VarPattern).Name)

	c2 := c1.Args[1].(*core.ConstructorPattern)
	require.Equal(t, "Cons", c2.Constructor)
	require.Equal(t, "b", c2.Args[0].(*core.VarPattern).Name)

	tail := c2.Args[1].(*core.ConstructorPattern)
	require.Equal(t, "Nil", tail.Constructor)
}

func TestListPatternWithRestLowersTailToVarPattern(t *testing.T) {
	d := &Desugarer{}
	stream := ast.ListPattern{
		Elements: []ast.Pattern{&ast.VarPattern{Name: "a"}},
		Rest:     &ast.VarPattern{Name: "rest"},
	}
	out := d.listPattern(&stream)
	c := out.(*core.ConstructorPattern)
	tail := c.Args[1].(*core.VarPattern)
	require.Equal(t, "rest", tail.Name)
}

func TestModuleDesugarsLetDeclarations(t *testing.T) {
	mod, perr := parser.ParseModule("test.fen", "let x = Some(1)")
	require.Nil(t, perr)
	out, derr := Module(mod)
	require.Nil(t, derr)
	require.Len(t, out.Declarations, 1)
	let := out.Declarations[0].(*core.LetDecl)
	c := let.Value.(*core.ConstructorApp)
	require.Equal(t, "Some", c.Constructor)
}

func TestVariantTypeDeclDesugarsConstructorsFieldForField(t *testing.T) {
	mod, perr := parser.ParseModule("test.fen", "type Option<a> = | None | Some(a)")
	require.Nil(t, perr)
	out, derr := Module(mod)
	require.Nil(t, derr)
	decl := out.Declarations[0].(*core.TypeDecl)
	variant := decl.Definition.(*core.VariantTypeDef)
	require.Len(t, variant.Constructors, 2)
	require.Equal(t, "Some", variant.Constructors[1].Name)
	require.Len(t, variant.Constructors[1].Args, 1)
}
