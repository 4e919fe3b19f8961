package lexer

import (
	"testing"

	"github.com/fenlang/fenc/internal/token"
	"github.com/stretchr/testify/require"
)

func collectStreamKinds(t *testing.T, src string) []token.Type {
	t.Helper()
	s := NewStream("test.fen", src)
	var kinds []token.Type
	for {
		tok := s.Next()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.EOF {
			break
		}
	}
	require.Nil(t, s.Err())
	return kinds
}

// Two statements on separate lines get a synthesized SEMICOLON
// between them (§4.1, §8 scenario 1).
func TestStreamInsertsSemicolonBetweenStatements(t *testing.T) {
	kinds := collectStreamKinds(t, "let a = 1\nlet b = 2")
	require.Equal(t, []token.Type{
		token.LET, token.IDENTIFIER, token.OP_ASSIGN, token.INT_LITERAL, token.SEMICOLON,
		token.LET, token.IDENTIFIER, token.OP_ASSIGN, token.INT_LITERAL, token.EOF,
	}, kinds)
}

// A trailing binary operator suppresses ASI: the expression
// continues onto the next physical line (§4.1, §8 scenario 2).
func TestStreamSuppressesSemicolonAfterTrailingOperator(t *testing.T) {
	kinds := collectStreamKinds(t, "let a = 1 +\n2")
	require.NotContains(t, kinds, token.SEMICOLON)
}

// Inside parentheses ASI never fires, however the line is broken
// (§4.1, §8 scenario 3).
func TestStreamSuppressesSemicolonInsideParens(t *testing.T) {
	kinds := collectStreamKinds(t, "foo(\n1,\n2\n)")
	require.NotContains(t, kinds, token.SEMICOLON)
}

// A lambda whose `=>` is on the next line still parses as one
// expression: ASI must not fire between the parameter and `=>`
// (§4.3, §8 scenario 2 variant).
func TestStreamSuppressesSemicolonBeforeFatArrow(t *testing.T) {
	kinds := collectStreamKinds(t, "x\n=> x + 1")
	require.NotContains(t, kinds, token.SEMICOLON)
}

func TestStreamSwitchTopToRecordContextDisablesASI(t *testing.T) {
	s := NewStream("test.fen", "{\nx: 1\n}")
	require.Equal(t, token.LBRACE, s.Next().Kind)
	s.SwitchTopToRecordContext()
	require.Equal(t, RecordCtx, s.top())

	var kinds []token.Type
	for {
		tok := s.Next()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.EOF {
			break
		}
	}
	require.NotContains(t, kinds, token.SEMICOLON)
}

func TestStreamSplitRshiftSplitsPendingToken(t *testing.T) {
	s := NewStream("test.fen", ">>")
	s.SplitRshift()
	first := s.Next()
	second := s.Next()
	require.Equal(t, token.OP_GT, first.Kind)
	require.Equal(t, token.OP_GT, second.Kind)
}

func TestStreamSplitRshiftNoopWhenNotRshift(t *testing.T) {
	s := NewStream("test.fen", "> x")
	s.SplitRshift()
	require.Equal(t, token.OP_GT, s.Next().Kind)
}
