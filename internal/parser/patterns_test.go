package parser

import (
	"testing"

	"github.com/fenlang/fenc/internal/ast"
	"github.com/stretchr/testify/require"
)

func mustParsePattern(t *testing.T, src string) ast.Pattern {
	t.Helper()
	stream := newTestStream(src)
	p := New("test.fen", stream)
	pat := p.parsePattern()
	require.Nil(t, p.err)
	require.NotNil(t, pat)
	return pat
}

func TestParseWildcardPattern(t *testing.T) {
	pat := mustParsePattern(t, "_")
	_, ok := pat.(*ast.WildcardPattern)
	require.True(t, ok)
}

func TestParseVarPattern(t *testing.T) {
	pat := mustParsePattern(t, "x")
	v := pat.(*ast.VarPattern)
	require.Equal(t, "x", v.Name)
}

func TestParseNullaryConstructorPattern(t *testing.T) {
	pat := mustParsePattern(t, "None")
	c := pat.(*ast.ConstructorPattern)
	require.Equal(t, "None", c.Constructor)
	require.Nil(t, c.Args)
}

func TestParseAppliedConstructorPattern(t *testing.T) {
	pat := mustParsePattern(t, "Some(x)")
	c := pat.(*ast.ConstructorPattern)
	require.Equal(t, "Some", c.Constructor)
	require.Len(t, c.Args, 1)
	require.Equal(t, "x", c.Args[0].(*ast.VarPattern).Name)
}

func TestParseListPatternWithRest(t *testing.T) {
	pat := mustParsePattern(t, "[a, b, ...rest]")
	l := pat.(*ast.ListPattern)
	require.Len(t, l.Elements, 2)
	require.NotNil(t, l.Rest)
	require.Equal(t, "rest", l.Rest.Name)
}

func TestParseEmptyListPattern(t *testing.T) {
	pat := mustParsePattern(t, "[]")
	l := pat.(*ast.ListPattern)
	require.Len(t, l.Elements, 0)
	require.Nil(t, l.Rest)
}

func TestParseTuplePattern(t *testing.T) {
	pat := mustParsePattern(t, "(a, b)")
	tup := pat.(*ast.TuplePattern)
	require.Len(t, tup.Elements, 2)
}

func TestParseParenthesizedSinglePatternUnwraps(t *testing.T) {
	pat := mustParsePattern(t, "(a)")
	_, ok := pat.(*ast.VarPattern)
	require.True(t, ok)
}

func TestParseRecordPattern(t *testing.T) {
	pat := mustParsePattern(t, "{ x: a, y }")
	rec := pat.(*ast.RecordPattern)
	require.Len(t, rec.Fields, 2)
	require.Equal(t, "x", rec.Fields[0].Name)
	require.Equal(t, "a", rec.Fields[0].Pattern.(*ast.VarPattern).Name)
	// shorthand `y` binds its own name
	require.Equal(t, "y", rec.Fields[1].Name)
	require.Equal(t, "y", rec.Fields[1].Pattern.(*ast.VarPattern).Name)
	require.False(t, rec.HasRest)
}

func TestParseRecordPatternWithRest(t *testing.T) {
	pat := mustParsePattern(t, "{ x: a, _ }")
	rec := pat.(*ast.RecordPattern)
	require.True(t, rec.HasRest)
	require.Len(t, rec.Fields, 1)
}

// A record pattern's `{` disables ASI across its fields just as a
// record literal does (§4.1): without switching context, the newline
// after `a` would synthesize a SEMICOLON and break the field list.
func TestParseMultiLineRecordPatternDisablesASI(t *testing.T) {
	pat := mustParsePattern(t, "{\nx: a\ny: b\n}")
	rec := pat.(*ast.RecordPattern)
	require.Len(t, rec.Fields, 2)
	require.Equal(t, "y", rec.Fields[1].Name)
}

func TestParseLiteralPattern(t *testing.T) {
	pat := mustParsePattern(t, "42")
	lit := pat.(*ast.LiteralPattern)
	require.Equal(t, int64(42), lit.Value)
}
