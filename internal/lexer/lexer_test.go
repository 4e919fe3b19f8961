package lexer

import (
	"testing"

	"github.com/fenlang/fenc/internal/token"
	"github.com/stretchr/testify/require"
)

func collectKinds(t *testing.T, src string) []token.Type {
	t.Helper()
	l := New("test.fen", src)
	var kinds []token.Type
	for {
		tok := l.NextToken()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.EOF {
			break
		}
	}
	require.Nil(t, l.Err())
	return kinds
}

func TestNextTokenKeywordsAndIdentifiers(t *testing.T) {
	kinds := collectKinds(t, "let x = foo")
	require.Equal(t, []token.Type{token.LET, token.IDENTIFIER, token.OP_ASSIGN, token.IDENTIFIER, token.EOF}, kinds)
}

func TestNextTokenUnicodeIdentifier(t *testing.T) {
	l := New("test.fen", "café")
	tok := l.NextToken()
	require.Equal(t, token.IDENTIFIER, tok.Kind)
	require.Equal(t, "café", tok.Text)
}

func TestNextTokenIntegerLiteral(t *testing.T) {
	l := New("test.fen", "42")
	tok := l.NextToken()
	require.Equal(t, token.INT_LITERAL, tok.Kind)
	require.Equal(t, int64(42), tok.Value)
}

func TestNextTokenHexOctalBinary(t *testing.T) {
	for _, tc := range []struct {
		src  string
		want int64
	}{
		{"0xFF", 255},
		{"0o17", 15},
		{"0b101", 5},
		{"1_000_000", 1000000},
	} {
		l := New("test.fen", tc.src)
		tok := l.NextToken()
		require.Equal(t, token.INT_LITERAL, tok.Kind, tc.src)
		require.Equal(t, tc.want, tok.Value, tc.src)
	}
}

func TestNextTokenFloatLiteral(t *testing.T) {
	l := New("test.fen", "3.14e2")
	tok := l.NextToken()
	require.Equal(t, token.FLOAT_LITERAL, tok.Kind)
	require.InDelta(t, 314.0, tok.Value.(float64), 0.0001)
}

func TestNextTokenIntegerOverflowWidensToFloat(t *testing.T) {
	l := New("test.fen", "99999999999999999999999999999")
	tok := l.NextToken()
	require.Equal(t, token.FLOAT_LITERAL, tok.Kind)
}

func TestNextTokenStringEscapes(t *testing.T) {
	l := New("test.fen", `"a\nb\tc\u{48}"`)
	tok := l.NextToken()
	require.Equal(t, token.STRING_LITERAL, tok.Kind)
	require.Equal(t, "a\nb\tcH", tok.Value)
}

func TestNextTokenUnterminatedStringErrors(t *testing.T) {
	l := New("test.fen", `"abc`)
	l.NextToken()
	require.NotNil(t, l.Err())
}

func TestNextTokenNestedBlockComments(t *testing.T) {
	kinds := collectKinds(t, "/* outer /* inner */ still-outer */ x")
	require.Equal(t, []token.Type{token.IDENTIFIER, token.EOF}, kinds)
}

func TestNextTokenOperatorsAndSplitRshiftCandidates(t *testing.T) {
	kinds := collectKinds(t, ":= -> => |> >> << :: & !")
	require.Equal(t, []token.Type{
		token.OP_REF_ASSIGN, token.THIN_ARROW, token.FAT_ARROW,
		token.OP_PIPE_GT, token.OP_GT_GT, token.OP_LT_LT,
		token.OP_CONS, token.OP_AMPERSAND, token.OP_BANG, token.EOF,
	}, kinds)
}
