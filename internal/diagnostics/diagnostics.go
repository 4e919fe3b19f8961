// Package diagnostics defines the structured error type returned by
// the lexer, parser and desugarer, grounded on the teacher's
// diagnostics.DiagnosticError / ErrorCode / errorTemplates design
// (single error-code table, one rendered message format).
package diagnostics

import (
	"fmt"

	"github.com/fenlang/fenc/internal/source"
)

type Phase string

const (
	PhaseLexer    Phase = "lexer"
	PhaseParser   Phase = "parser"
	PhaseDesugar  Phase = "desugar"
)

type Code string

const (
	// Lexer errors
	ErrUnterminatedString      Code = "L001"
	ErrUnterminatedBlockComment Code = "L002"
	ErrInvalidEscape           Code = "L003"
	ErrInvalidNumericLiteral   Code = "L004"
	ErrUnexpectedCharacter     Code = "L005"

	// Parser errors
	ErrUnexpectedToken          Code = "P001"
	ErrReservedKeywordInShorthand Code = "P002"
	ErrMissingSemicolon         Code = "P003"
	ErrUnclosedDelimiter        Code = "P004"
	ErrInvalidPatternInContext  Code = "P005"

	// Desugarer errors
	ErrDesugar Code = "D001"
)

var templates = map[Code]string{
	ErrUnterminatedString:        "unterminated string literal",
	ErrUnterminatedBlockComment:  "unterminated block comment",
	ErrInvalidEscape:             "invalid escape sequence '%s'",
	ErrInvalidNumericLiteral:     "invalid numeric literal '%s'",
	ErrUnexpectedCharacter:       "unexpected character %q",
	ErrUnexpectedToken:           "expected %s, found %s",
	ErrReservedKeywordInShorthand: "cannot use keyword '%s' in field shorthand; use explicit '%s: value' syntax",
	ErrMissingSemicolon:          "missing statement separator",
	ErrUnclosedDelimiter:         "unclosed '%s' opened at %s",
	ErrInvalidPatternInContext:   "pattern not allowed here: %s",
	ErrDesugar:                   "internal desugaring error: %s",
}

// Error is the single structured error type produced by this module.
// Exactly one Error is ever returned from a failed parse (§7:
// "no synchronization, no multi-error accumulation in this version").
type Error struct {
	Code  Code
	Phase Phase
	Loc   source.Location
	Args  []interface{}
	Hint  string
}

func (e *Error) Error() string {
	tmpl, ok := templates[e.Code]
	if !ok {
		tmpl = string(e.Code)
	}
	msg := fmt.Sprintf(tmpl, e.Args...)
	result := fmt.Sprintf("%s: [%s] %s", e.Loc, e.Code, msg)
	if e.Hint != "" {
		result += "\n  hint: " + e.Hint
	}
	return result
}

func New(phase Phase, code Code, loc source.Location, args ...interface{}) *Error {
	return &Error{Phase: phase, Code: code, Loc: loc, Args: args}
}

func (e *Error) WithHint(hint string) *Error {
	e.Hint = hint
	return e
}
