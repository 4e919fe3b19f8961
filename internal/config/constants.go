// Package config is the single-source-of-truth table for the handful
// of front-end-wide constants, in the manner of the teacher's config
// package (which centralizes operator and built-in tables so the
// lexer, parser and docs generator never disagree with each other).
package config

// SourceFileExtensions are the file extensions recognized as source
// for this language by external tooling (file discovery is out of
// scope for this module itself — §1 — but the constant is still
// useful to callers wiring up a build).
var SourceFileExtensions = []string{".fen"}

// MaxBoundedLookahead bounds the parser's brace-classification
// look-ahead (§4.3 primary-braces rule), so a
// malformed file can never force an unbounded scan before a parse
// error is reported.
const MaxBoundedLookahead = 8
