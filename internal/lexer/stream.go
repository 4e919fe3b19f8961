package lexer

import (
	"github.com/fenlang/fenc/internal/diagnostics"
	"github.com/fenlang/fenc/internal/pipeline"
	"github.com/fenlang/fenc/internal/token"
)

// ContextType is one frame of the ASI context stack (§4.1).
type ContextType int

const (
	TopCtx ContextType = iota
	BlockCtx
	RecordCtx
	ParenCtx
	BracketCtx
)

func (c ContextType) asiEnabled() bool {
	return c == TopCtx || c == BlockCtx
}

// Stream layers the ASI context stack on top of the raw Lexer and
// exposes pipeline.TokenStream, in the manner of the teacher's
// bufferedLexer (internal/lexer/processor.go) — a lookahead buffer of
// already-resolved tokens in front of a pull-based scanner — combined
// with the context-stack ASI design of other_examples'
// xjslang/parser.go (contextStack / ExpectSemicolonASI).
type Stream struct {
	raw *Lexer

	contexts []ContextType

	// rawBuf buffers NextToken() results from raw that have not yet
	// been folded into resolved.
	rawBuf []token.Token

	resolved []token.Token
	pos      int

	lastEmitted token.Token
	haveLast    bool

	err *diagnostics.Error
}

const lookaheadBufferSize = 16

func NewStream(fileName, src string) *Stream {
	return &Stream{
		raw:      New(fileName, src),
		contexts: []ContextType{TopCtx},
	}
}

func NewTokenStream(fileName, src string) pipeline.TokenStream {
	return NewStream(fileName, src)
}

func (s *Stream) Err() *diagnostics.Error {
	if s.err != nil {
		return s.err
	}
	return s.raw.Err()
}

func (s *Stream) top() ContextType {
	return s.contexts[len(s.contexts)-1]
}

func (s *Stream) push(c ContextType) {
	s.contexts = append(s.contexts, c)
}

func (s *Stream) pop() {
	if len(s.contexts) > 1 {
		s.contexts = s.contexts[:len(s.contexts)-1]
	}
}

// SwitchTopToRecordContext reclassifies the innermost context from
// BlockCtx to RecordCtx (§4.1 brace disambiguation).
func (s *Stream) SwitchTopToRecordContext() {
	if len(s.contexts) > 0 && s.top() == BlockCtx {
		s.contexts[len(s.contexts)-1] = RecordCtx
	}
}

// SplitRshift rewrites a pending ">>" at the front of resolved (or
// about to be produced) into two ">" tokens. Only correct for a ">>"
// still sitting in the stream's own buffer — once the parser has
// pulled it into cur/peek, this reaches two tokens past it and is a
// no-op; parser.expectCloseAngle splits cur/peek itself instead of
// calling this.
func (s *Stream) SplitRshift() {
	s.ensureResolved(1)
	if s.pos >= len(s.resolved) {
		return
	}
	tok := s.resolved[s.pos]
	if tok.Kind != token.OP_GT_GT {
		return
	}
	half := token.Token{
		Kind: token.OP_GT,
		Text: ">",
		Loc:  tok.Loc,
	}
	secondLoc := tok.Loc
	secondLoc.StartCol++
	secondLoc.StartOffset++
	second := token.Token{Kind: token.OP_GT, Text: ">", Loc: secondLoc}

	rest := append([]token.Token{half, second}, s.resolved[s.pos+1:]...)
	s.resolved = append(append([]token.Token{}, s.resolved[:s.pos]...), rest...)
}

func (s *Stream) nextRaw() token.Token {
	if len(s.rawBuf) > 0 {
		t := s.rawBuf[0]
		s.rawBuf = s.rawBuf[1:]
		return t
	}
	return s.raw.NextToken()
}

func (s *Stream) peekRaw(n int) token.Token {
	for len(s.rawBuf) <= n {
		s.rawBuf = append(s.rawBuf, s.raw.NextToken())
		if s.rawBuf[len(s.rawBuf)-1].Kind == token.EOF {
			break
		}
	}
	if n >= len(s.rawBuf) {
		return s.rawBuf[len(s.rawBuf)-1]
	}
	return s.rawBuf[n]
}

// peekNextNonNewlineRaw looks past any run of raw NEWLINE tokens
// without consuming anything, so the ASI decision can inspect what
// follows a newline (or a run of blank lines) before committing.
func (s *Stream) peekNextNonNewlineRaw() token.Token {
	i := 0
	for {
		t := s.peekRaw(i)
		if t.Kind != token.NEWLINE || t.Kind == token.EOF {
			return t
		}
		i++
	}
}

func (s *Stream) updateContextsOnConsume(t token.Token) {
	switch t.Kind {
	case token.LPAREN:
		s.push(ParenCtx)
	case token.LBRACKET:
		s.push(BracketCtx)
	case token.LBRACE:
		s.push(BlockCtx)
	case token.RPAREN, token.RBRACKET, token.RBRACE:
		s.pop()
	}
}

// fillOne pulls and folds raw tokens until at least one resolved
// token has been appended, or the stream is exhausted.
func (s *Stream) fillOne() {
	for {
		raw := s.nextRaw()

		if s.raw.Err() != nil {
			s.err = s.raw.Err()
			s.resolved = append(s.resolved, token.Token{Kind: token.EOF, Loc: raw.Loc})
			return
		}

		if raw.Kind != token.NEWLINE {
			s.updateContextsOnConsume(raw)
			s.resolved = append(s.resolved, raw)
			s.lastEmitted = raw
			s.haveLast = true
			return
		}

		if !s.top().asiEnabled() {
			continue // dropped: ASI disabled in this context
		}
		if !s.haveLast || !s.lastEmitted.Kind.CanTerminateStatement() {
			continue // dropped: previous token cannot end a statement
		}

		next := s.peekNextNonNewlineRaw()
		if next.Kind.ContinuesExpression() {
			continue // dropped: statement continues on the next line
		}

		semi := token.Token{Kind: token.SEMICOLON, Text: ";", Loc: raw.Loc}
		s.resolved = append(s.resolved, semi)
		s.lastEmitted = semi
		s.haveLast = true
		return
	}
}

func (s *Stream) ensureResolved(n int) {
	for len(s.resolved)-s.pos < n {
		if len(s.resolved) > 0 && s.resolved[len(s.resolved)-1].Kind == token.EOF {
			return
		}
		s.fillOne()
	}
}

func (s *Stream) Next() token.Token {
	s.ensureResolved(1)
	if s.pos >= len(s.resolved) {
		return token.Token{Kind: token.EOF}
	}
	t := s.resolved[s.pos]
	s.pos++
	if s.pos > lookaheadBufferSize {
		s.resolved = s.resolved[s.pos:]
		s.pos = 0
	}
	return t
}

func (s *Stream) Peek(n int) []token.Token {
	if n <= 0 {
		s.ensureResolved(1)
	} else {
		s.ensureResolved(n)
	}
	end := s.pos + n
	if end > len(s.resolved) {
		end = len(s.resolved)
	}
	if s.pos >= len(s.resolved) {
		return nil
	}
	out := make([]token.Token, end-s.pos)
	copy(out, s.resolved[s.pos:end])
	return out
}

var _ pipeline.TokenStream = (*Stream)(nil)

// Processor adapts Stream to the pipeline.Processor contract the
// teacher's LexerProcessor follows (internal/lexer/processor.go).
type Processor struct{}

func (p *Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	ctx.Stream = NewStream(ctx.FileName, ctx.Source)
	return ctx
}
