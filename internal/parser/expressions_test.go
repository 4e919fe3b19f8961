package parser

import (
	"testing"

	"github.com/fenlang/fenc/internal/ast"
	"github.com/stretchr/testify/require"
)

func mustParseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	e, err := ParseExpression("test.fen", src)
	require.Nil(t, err)
	require.NotNil(t, e)
	return e
}

func TestParsePrecedenceArithmetic(t *testing.T) {
	// `*` binds tighter than `+` (§4.3 levels 11/12).
	e := mustParseExpr(t, "1 + 2 * 3")
	bin := e.(*ast.BinOp)
	require.Equal(t, "+", bin.Op)
	require.Equal(t, int64(1), bin.Left.(*ast.IntLit).Value)
	rhs := bin.Right.(*ast.BinOp)
	require.Equal(t, "*", rhs.Op)
}

func TestParseConsIsRightAssociative(t *testing.T) {
	e := mustParseExpr(t, "1 :: 2 :: xs")
	bin := e.(*ast.BinOp)
	require.Equal(t, "::", bin.Op)
	require.Equal(t, int64(1), bin.Left.(*ast.IntLit).Value)
	inner := bin.Right.(*ast.BinOp)
	require.Equal(t, "::", inner.Op)
	require.Equal(t, int64(2), inner.Left.(*ast.IntLit).Value)
}

func TestParsePipeIsLeftAssociativeAndLowPrecedence(t *testing.T) {
	e := mustParseExpr(t, "x |> f |> g")
	outer := e.(*ast.Pipe)
	inner := outer.Expr.(*ast.Pipe)
	require.Equal(t, "x", inner.Expr.(*ast.Var).Name)
	require.Equal(t, "f", inner.Func.(*ast.Var).Name)
	require.Equal(t, "g", outer.Func.(*ast.Var).Name)
}

func TestParseUnaryMinusIsStructurallyDisambiguatedFromSubtraction(t *testing.T) {
	e := mustParseExpr(t, "1 - -2")
	bin := e.(*ast.BinOp)
	require.Equal(t, "-", bin.Op)
	un := bin.Right.(*ast.UnaryOp)
	require.Equal(t, "-", un.Op)
	require.Equal(t, int64(2), un.Expr.(*ast.IntLit).Value)
}

func TestParseStackedUnaryMinus(t *testing.T) {
	e := mustParseExpr(t, "- - x")
	outer := e.(*ast.UnaryOp)
	inner := outer.Expr.(*ast.UnaryOp)
	require.Equal(t, "x", inner.Expr.(*ast.Var).Name)
}

func TestParseSingleParamLambda(t *testing.T) {
	e := mustParseExpr(t, "x => x + 1")
	lam := e.(*ast.Lambda)
	require.Len(t, lam.Params, 1)
	require.Equal(t, "x", lam.Params[0].(*ast.VarPattern).Name)
}

func TestParseSingleParamLambdaAcrossNewlineBeforeArrow(t *testing.T) {
	// ASI must not synthesize a SEMICOLON between `x` and `=>` (§8).
	e := mustParseExpr(t, "x\n=> x + 1")
	lam := e.(*ast.Lambda)
	require.Equal(t, "x", lam.Params[0].(*ast.VarPattern).Name)
}

func TestParseMultiParamLambda(t *testing.T) {
	e := mustParseExpr(t, "(a, b) => a + b")
	lam := e.(*ast.Lambda)
	require.Len(t, lam.Params, 2)
	require.Equal(t, "a", lam.Params[0].(*ast.VarPattern).Name)
	require.Equal(t, "b", lam.Params[1].(*ast.VarPattern).Name)
}

func TestParseZeroParamLambda(t *testing.T) {
	e := mustParseExpr(t, "() => 1")
	lam := e.(*ast.Lambda)
	require.Len(t, lam.Params, 0)
}

func TestParseParenIsPlainGroupingWhenNoComma(t *testing.T) {
	e := mustParseExpr(t, "(1 + 2)")
	bin := e.(*ast.BinOp)
	require.Equal(t, "+", bin.Op)
}

func TestParseParenWithCommaIsTuple(t *testing.T) {
	e := mustParseExpr(t, "(1, 2, 3)")
	tup := e.(*ast.Tuple)
	require.Len(t, tup.Elements, 3)
}

func TestParseUnitLiteral(t *testing.T) {
	e := mustParseExpr(t, "()")
	_, ok := e.(*ast.UnitLit)
	require.True(t, ok)
}

func TestParseTupleDestructuringLambdaParam(t *testing.T) {
	e := mustParseExpr(t, "((a, b)) => a")
	lam := e.(*ast.Lambda)
	require.Len(t, lam.Params, 1)
	_, ok := lam.Params[0].(*ast.TuplePattern)
	require.True(t, ok)
}

func TestParseGatedAnnotationOnlyConsumesWhenFollowedByType(t *testing.T) {
	// bare `x : Int` is a type annotation...
	e := mustParseExpr(t, "x : Int")
	ann := e.(*ast.TypeAnnotation)
	require.Equal(t, "x", ann.Expr.(*ast.Var).Name)
}

func TestParseRecordLiteral(t *testing.T) {
	e := mustParseExpr(t, "{ x: 1, y: 2 }")
	rec := e.(*ast.Record)
	require.Len(t, rec.Fields, 2)
	require.Equal(t, "x", rec.Fields[0].(*ast.Field).Name)
}

func TestParseRecordShorthandField(t *testing.T) {
	e := mustParseExpr(t, "{ x }")
	rec := e.(*ast.Record)
	f := rec.Fields[0].(*ast.Field)
	require.Equal(t, "x", f.Name)
	require.Equal(t, "x", f.Value.(*ast.Var).Name)
}

func TestParseRecordUpdate(t *testing.T) {
	e := mustParseExpr(t, "{ ...base, x: 1 }")
	upd := e.(*ast.RecordUpdate)
	require.Equal(t, "base", upd.Record.(*ast.Var).Name)
	require.Len(t, upd.Updates, 1)
	require.Equal(t, "x", upd.Updates[0].(*ast.Field).Name)
}

func TestParseEmptyRecordLiteral(t *testing.T) {
	e := mustParseExpr(t, "{}")
	rec := e.(*ast.Record)
	require.Len(t, rec.Fields, 0)
}

func TestParseBlockOfExpressionsSeparatedByASI(t *testing.T) {
	e := mustParseExpr(t, "{\n1\n2\n}")
	blk := e.(*ast.Block)
	require.Len(t, blk.Exprs, 2)
	require.Equal(t, int64(1), blk.Exprs[0].(*ast.IntLit).Value)
	require.Equal(t, int64(2), blk.Exprs[1].(*ast.IntLit).Value)
}

func TestParseIfWithoutElseSynthesizesUnitLit(t *testing.T) {
	e := mustParseExpr(t, "if true then 1")
	ifExpr := e.(*ast.If)
	_, ok := ifExpr.Else.(*ast.UnitLit)
	require.True(t, ok)
}

func TestParseIfWithElse(t *testing.T) {
	e := mustParseExpr(t, "if true then 1 else 2")
	ifExpr := e.(*ast.If)
	require.Equal(t, int64(2), ifExpr.Else.(*ast.IntLit).Value)
}

func TestParseMatchExpression(t *testing.T) {
	e := mustParseExpr(t, "match x | 1 => \"one\" | _ => \"other\"")
	m := e.(*ast.Match)
	require.Len(t, m.Cases, 2)
}

func TestParseMatchCaseWithGuard(t *testing.T) {
	e := mustParseExpr(t, "match x | n when n > 0 => 1 | _ => 0")
	m := e.(*ast.Match)
	require.NotNil(t, m.Cases[0].Guard)
}

func TestParseListLiteral(t *testing.T) {
	e := mustParseExpr(t, "[1, 2, 3]")
	l := e.(*ast.List)
	require.Len(t, l.Elements, 3)
}

func TestParseEmptyListLiteral(t *testing.T) {
	e := mustParseExpr(t, "[]")
	l := e.(*ast.List)
	require.Len(t, l.Elements, 0)
}

func TestParseUnsafeBlock(t *testing.T) {
	e := mustParseExpr(t, "unsafe { 1 }")
	u := e.(*ast.Unsafe)
	_, ok := u.Expr.(*ast.Block)
	require.True(t, ok)
}

func TestParseUnsafeExpression(t *testing.T) {
	e := mustParseExpr(t, "unsafe 1")
	u := e.(*ast.Unsafe)
	require.Equal(t, int64(1), u.Expr.(*ast.IntLit).Value)
}

func TestParseFieldAccessAndCallChain(t *testing.T) {
	e := mustParseExpr(t, "a.b.c(1, 2)")
	app := e.(*ast.App)
	require.Len(t, app.Args, 2)
	access := app.Func.(*ast.RecordAccess)
	require.Equal(t, "c", access.Field)
	inner := access.Record.(*ast.RecordAccess)
	require.Equal(t, "b", inner.Field)
}

func TestParseDerefBang(t *testing.T) {
	e := mustParseExpr(t, "r!")
	u := e.(*ast.UnaryOp)
	require.Equal(t, "deref!", u.Op)
}

func TestParseRefAssignIsRightAssociative(t *testing.T) {
	e := mustParseExpr(t, "a := b := c")
	bin := e.(*ast.BinOp)
	require.Equal(t, ":=", bin.Op)
	inner := bin.Right.(*ast.BinOp)
	require.Equal(t, ":=", inner.Op)
}

func TestParseNewlineAllowedAfterBinaryOperator(t *testing.T) {
	e := mustParseExpr(t, "1 +\n2")
	bin := e.(*ast.BinOp)
	require.Equal(t, int64(2), bin.Right.(*ast.IntLit).Value)
}

func TestParseCallArgsAcrossNewlines(t *testing.T) {
	e := mustParseExpr(t, "foo(\n1,\n2\n)")
	app := e.(*ast.App)
	require.Len(t, app.Args, 2)
}
