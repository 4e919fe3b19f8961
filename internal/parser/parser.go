// Package parser implements the recursive-descent / precedence-
// climbing parser described by §4.2-§4.6: a single cursor shared by
// five cooperating concerns (declarations, expressions, patterns,
// types, primary/literals), grounded on the teacher's
// internal/parser.Parser cursor (curToken/peekToken, registerPrefix-
// style dispatch, ParseProgram's top-level loop) but reorganized from
// the teacher's single flat precedence-map Pratt parser into the
// explicit sixteen-level climbing ladder §4.3 specifies.
//
// The "avoid circular references between five sub-modules" design
// note (§9) is resolved the idiomatic Go way: rather than five
// packages wired by injected function pointers, the five concerns
// live as separate files in this one package, sharing the *Parser
// receiver directly — there is no import cycle to avoid within a
// single package, so the dependency-injection machinery the note
// anticipates has no work left to do (see DESIGN.md).
package parser

import (
	"github.com/fenlang/fenc/internal/ast"
	"github.com/fenlang/fenc/internal/diagnostics"
	"github.com/fenlang/fenc/internal/lexer"
	"github.com/fenlang/fenc/internal/pipeline"
	"github.com/fenlang/fenc/internal/source"
	"github.com/fenlang/fenc/internal/token"
)

// Parser holds the single mutable cursor over a token stream.
type Parser struct {
	stream   pipeline.TokenStream
	fileName string

	cur  token.Token
	peek token.Token

	// pushedBack, when non-nil, is returned by the next advance()
	// instead of pulling from stream — used by expectCloseAngle to
	// requeue the token that was sitting in peek when a `>>` in cur
	// was split into two `>` tokens (§4.1, §4.5).
	pushedBack *token.Token

	err *diagnostics.Error
}

func New(fileName string, stream pipeline.TokenStream) *Parser {
	p := &Parser{stream: stream, fileName: fileName}
	p.cur = p.stream.Next()
	p.peek = p.stream.Next()
	return p
}

// ParseModule is the public entry point (§4.2): a pure function from
// tokens to (Module, error).
func ParseModule(fileName, src string) (*ast.Module, *diagnostics.Error) {
	stream := lexer.NewStream(fileName, src)
	p := New(fileName, stream)
	mod := p.parseModule()
	if p.err == nil {
		if lerr := stream.Err(); lerr != nil {
			p.err = lerr
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	return mod, nil
}

// ParseExpression parses a single expression from src, for tests and
// tooling that don't need a full module.
func ParseExpression(fileName, src string) (ast.Expr, *diagnostics.Error) {
	stream := lexer.NewStream(fileName, src)
	p := New(fileName, stream)
	e := p.parseExpression()
	if p.err != nil {
		return nil, p.err
	}
	return e, nil
}

// Processor adapts Parser to the pipeline.Processor contract, reading
// the token stream a prior lexer stage left on ctx.Stream and handing
// back a parsed Module on ctx.Module, in the manner of the teacher's
// own ParserProcessor stage.
type Processor struct{}

func (proc *Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	p := New(ctx.FileName, ctx.Stream)
	mod := p.parseModule()
	if p.err != nil {
		ctx.Err = p.err
		return ctx
	}
	ctx.Module = mod
	return ctx
}

func (p *Parser) advance() {
	p.cur = p.peek
	if p.pushedBack != nil {
		p.peek = *p.pushedBack
		p.pushedBack = nil
	} else {
		p.peek = p.stream.Next()
	}
}

// peekAt returns the k-th upcoming token without consuming, where
// peekAt(0) is the current peek token (i.e. one past cur).
func (p *Parser) peekAt(k int) token.Token {
	if k <= 0 {
		return p.peek
	}
	toks := p.stream.Peek(k)
	if len(toks) < k {
		return token.Token{Kind: token.EOF}
	}
	return toks[k-1]
}

func (p *Parser) check(kind token.Type) bool {
	return p.cur.Kind == kind
}

// match consumes the current token if it is one of kinds, reporting
// whether it did.
func (p *Parser) match(kinds ...token.Type) bool {
	for _, k := range kinds {
		if p.cur.Kind == k {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes the current token if it is kind, else fails with
// UnexpectedToken (§7).
func (p *Parser) expect(kind token.Type, what string) token.Token {
	if p.err != nil {
		return token.Token{Kind: token.EOF}
	}
	if p.cur.Kind != kind {
		p.fail(diagnostics.ErrUnexpectedToken, p.cur.Loc, what, p.cur.Kind)
		return token.Token{Kind: token.EOF}
	}
	t := p.cur
	p.advance()
	return t
}

func (p *Parser) fail(code diagnostics.Code, loc source.Location, args ...interface{}) {
	if p.err != nil {
		return
	}
	p.err = diagnostics.New(diagnostics.PhaseParser, code, loc, args...)
}

func (p *Parser) failed() bool { return p.err != nil }

// skipNewlines consumes any run of residual NEWLINE tokens. Called
// only at the well-defined points §4.2 lists: after binary operators,
// after `(` `[` `,`, before `.` and `(` in call position, and inside
// record/list/tuple bodies.
//
// In practice lexer.Stream.fillOne never emits a NEWLINE into its
// resolved output — every physical newline is either dropped or folded
// into a SEMICOLON (stream.go) — so this loop never actually runs more
// than zero iterations against the real lexer. It stays as a no-op
// guard rather than being pruned: it costs one field comparison, and
// it is the only thing standing between a future Stream that *does*
// forward NEWLINE tokens (e.g. to support a different ASI strategy)
// and every call site below having to be re-audited.
func (p *Parser) skipNewlines() {
	for p.cur.Kind == token.NEWLINE {
		p.advance()
	}
}

// peekNonNewline reports the first non-NEWLINE token at or after cur,
// without consuming anything: if cur itself isn't a NEWLINE it is
// returned directly, else the lookahead buffer is scanned past the run
// of NEWLINEs. Used where cur has already been advanced past whatever
// token is being disambiguated (e.g. postfix chaining, else-detection).
//
// As with skipNewlines, the NEWLINE branch below is currently dead
// against the real Stream (see that function's comment) — cur is
// simply returned.
func (p *Parser) peekNonNewline() token.Token {
	if p.cur.Kind != token.NEWLINE {
		return p.cur
	}
	for k := 0; ; k++ {
		t := p.peekAt(k)
		if t.Kind != token.NEWLINE {
			return t
		}
	}
}

// peekAheadNonNewline reports the first non-NEWLINE token strictly
// after cur, skipping any run of NEWLINEs, without consuming anything.
// Used where cur itself is the token being tested (e.g. an IDENTIFIER
// or a COLON) and the look-ahead must inspect what follows it.
//
// Against the real Stream, peekAt(0) (i.e. p.peek) is always already
// non-NEWLINE (see skipNewlines' comment), so the loop below always
// returns on its first iteration; it is written as a loop rather than
// a single peekAt(0) so it stays correct if Stream ever starts
// forwarding NEWLINE tokens.
func (p *Parser) peekAheadNonNewline() token.Token {
	for k := 0; ; k++ {
		t := p.peekAt(k)
		if t.Kind != token.NEWLINE {
			return t
		}
	}
}

func unexpected(p *Parser, what string) {
	p.fail(diagnostics.ErrUnexpectedToken, p.cur.Loc, what, p.cur.Kind)
}

// readFieldNameToken consumes a record-field name position, where
// language keywords are permitted as explicit field names (§9
// "Keyword-as-field-name") even though they are never IDENTIFIER
// tokens — the caller decides whether a keyword in shorthand position
// is actually an error.
func (p *Parser) readFieldNameToken() token.Token {
	t := p.cur
	if t.Kind != token.IDENTIFIER && !token.IsKeyword(t.Text) {
		unexpected(p, "field name")
		return t
	}
	p.advance()
	return t
}
