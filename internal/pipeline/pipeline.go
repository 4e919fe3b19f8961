// Package pipeline wires the lexer and parser stages together, in the
// manner of the teacher's pipeline package (a TokenStream contract
// plus a shared mutable Context passed stage to stage).
package pipeline

import (
	"github.com/fenlang/fenc/internal/ast"
	"github.com/fenlang/fenc/internal/diagnostics"
	"github.com/fenlang/fenc/internal/token"
)

// TokenStream is the contract the parser consumes. A lexer is wrapped
// behind this interface so the parser never touches raw source text.
type TokenStream interface {
	// Next consumes and returns the next token from the stream.
	Next() token.Token

	// Peek returns up to n upcoming tokens without consuming them.
	Peek(n int) []token.Token

	// SwitchTopToRecordContext reclassifies the innermost brace
	// context (pushed by the most recently seen unmatched '{') from
	// block to record. The parser calls this once its bounded
	// look-ahead recognizes a record body (§4.1, §4.3).
	SwitchTopToRecordContext()

	// SplitRshift rewrites a ">>" token sitting at the front of the
	// stream's own (not yet delivered to the parser) lookahead buffer
	// into two standalone ">" tokens. It is a no-op if that token is
	// not ">>". The parser does not call this: by the time it needs to
	// close two nested generic argument lists (`List<List<T>>`, §4.1,
	// §4.5), the ">>" is already sitting in its own cur/peek cursor,
	// two tokens ahead of what this method can reach, so the parser
	// splits cur/peek directly instead (see parser.expectCloseAngle).
	// Kept on the interface and exercised by stream_test.go as a
	// correct, independently useful operation on a stream that hasn't
	// had anything pulled from it yet.
	SplitRshift()
}

// Context carries the state threaded between lexing and parsing.
type Context struct {
	FileName string
	Source   string
	Stream   TokenStream
	Module   *ast.Module
	Err      *diagnostics.Error
}

func NewContext(fileName, src string) *Context {
	return &Context{FileName: fileName, Source: src}
}

// Processor is any stage that can process and hand back a Context, in
// the manner of the teacher's pipeline.Processor.
type Processor interface {
	Process(ctx *Context) *Context
}

// Pipeline runs a sequence of Processors in order.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

func (p *Pipeline) Run(initial *Context) *Context {
	ctx := initial
	for _, proc := range p.processors {
		ctx = proc.Process(ctx)
		if ctx.Err != nil {
			break
		}
	}
	return ctx
}
