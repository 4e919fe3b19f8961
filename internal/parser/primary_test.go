package parser

import (
	"testing"

	"github.com/fenlang/fenc/internal/ast"
	"github.com/fenlang/fenc/internal/diagnostics"
	"github.com/stretchr/testify/require"
)

func TestParseBraceDisambiguatesEmptyAsRecord(t *testing.T) {
	e := mustParseExpr(t, "{}")
	_, ok := e.(*ast.Record)
	require.True(t, ok)
}

func TestParseBraceDisambiguatesColonAsRecord(t *testing.T) {
	e := mustParseExpr(t, "{ a: 1 }")
	_, ok := e.(*ast.Record)
	require.True(t, ok)
}

func TestParseBraceDisambiguatesShorthandAsRecord(t *testing.T) {
	e := mustParseExpr(t, "{ a, b }")
	rec := e.(*ast.Record)
	require.Len(t, rec.Fields, 2)
}

func TestParseBraceDisambiguatesBareExpressionAsBlock(t *testing.T) {
	e := mustParseExpr(t, "{ 1 + 2 }")
	blk := e.(*ast.Block)
	require.Len(t, blk.Exprs, 1)
}

func TestParseBraceDisambiguatesMultiStatementAsBlock(t *testing.T) {
	e := mustParseExpr(t, "{ foo(); bar() }")
	_, ok := e.(*ast.Block)
	require.True(t, ok)
}

func TestParseBraceSpreadIsAlwaysRecord(t *testing.T) {
	e := mustParseExpr(t, "{ ...x }")
	upd, ok := e.(*ast.RecordUpdate)
	require.True(t, ok)
	require.Equal(t, "x", upd.Record.(*ast.Var).Name)
	require.Len(t, upd.Updates, 0)
}

// Record disambiguation looks past newlines after `{` (§4.3).
func TestParseBraceDisambiguationSkipsNewlines(t *testing.T) {
	e := mustParseExpr(t, "{\nx: 1\n}")
	_, ok := e.(*ast.Record)
	require.True(t, ok)
}

func TestParseReservedKeywordInShorthandFieldIsError(t *testing.T) {
	_, err := ParseExpression("test.fen", "{ match }")
	require.NotNil(t, err)
	require.Equal(t, diagnostics.ErrReservedKeywordInShorthand, err.Code)
}

func TestParseKeywordAsExplicitFieldNameIsAllowed(t *testing.T) {
	e := mustParseExpr(t, "{ match: 1 }")
	rec := e.(*ast.Record)
	require.Equal(t, "match", rec.Fields[0].(*ast.Field).Name)
}

func TestParseFieldAccessKeywordNameRejected(t *testing.T) {
	// field name after '.' must be a plain identifier (§4.3), so a
	// keyword there is a parse error rather than silently accepted.
	_, err := ParseExpression("test.fen", "r.match")
	require.NotNil(t, err)
}

func TestParseMissingSemicolonBetweenBlockStatementsErrors(t *testing.T) {
	// Two statements on one physical line with no separator and no
	// ASI opportunity is a parse error (§4.1, §7).
	_, err := ParseExpression("test.fen", "{ 1 2 }")
	require.NotNil(t, err)
	require.Equal(t, diagnostics.ErrMissingSemicolon, err.Code)
}
