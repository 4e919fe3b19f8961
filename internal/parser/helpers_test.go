package parser

import (
	"github.com/fenlang/fenc/internal/lexer"
	"github.com/fenlang/fenc/internal/pipeline"
)

// newTestStream builds the same ASI-aware token stream ParseModule and
// ParseExpression use, for tests that need direct Parser access (e.g.
// parsePattern, parseTypeExpr) rather than a full expression/module.
func newTestStream(src string) pipeline.TokenStream {
	return lexer.NewStream("test.fen", src)
}
