// Package source holds the immutable input buffer a parse runs over
// and the Location type threaded through every token and AST node.
package source

import "fmt"

// Location identifies a span of source text. Offsets are byte offsets
// into the originating Buffer; Line and Col are 1-based and measured
// in code points, matching what a human reading the file would count.
type Location struct {
	File       string
	StartOffset int
	EndOffset   int
	StartLine   int
	StartCol    int
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.StartLine, l.StartCol)
}

// IsZero reports whether l was never assigned a real position. Every
// node in a successful parse must have a non-zero Location; this is
// only used defensively in tests.
func (l Location) IsZero() bool {
	return l.File == "" && l.StartLine == 0 && l.StartCol == 0
}

// Buffer is the immutable source text a Location's offsets index into.
// Tokens and AST nodes store offsets rather than substrings so that a
// single Buffer can be shared by the whole tree without copying text.
type Buffer struct {
	Name string
	Text string
}

func NewBuffer(name, text string) *Buffer {
	return &Buffer{Name: name, Text: text}
}

// Slice returns the raw text between two byte offsets. It panics if
// the offsets are out of range, mirroring Go's own slicing semantics;
// callers only ever pass offsets recorded by the lexer against this
// same Buffer.
func (b *Buffer) Slice(start, end int) string {
	return b.Text[start:end]
}
