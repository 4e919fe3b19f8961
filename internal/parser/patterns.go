package parser

import (
	"github.com/fenlang/fenc/internal/ast"
	"github.com/fenlang/fenc/internal/diagnostics"
	"github.com/fenlang/fenc/internal/token"
)

// parsePattern parses a pattern at match arms, let-destructuring, and
// lambda parameters (§4.4).
func (p *Parser) parsePattern() ast.Pattern {
	switch p.cur.Kind {
	case token.IDENTIFIER:
		return p.parseIdentOrConstructorPattern()
	case token.INT_LITERAL, token.FLOAT_LITERAL, token.STRING_LITERAL, token.BOOL_LITERAL:
		return p.parseLiteralPattern()
	case token.LBRACKET:
		return p.parseListPattern()
	case token.LPAREN:
		return p.parseTuplePatternOrParen()
	case token.LBRACE:
		return p.parseRecordPattern()
	default:
		unexpected(p, "pattern")
		return nil
	}
}

func (p *Parser) parseIdentOrConstructorPattern() ast.Pattern {
	loc := p.cur.Loc
	name := p.cur.Text
	if name == "_" {
		p.advance()
		return &ast.WildcardPattern{Location: loc}
	}
	p.advance()

	isConstructor := len(name) > 0 && name[0] >= 'A' && name[0] <= 'Z'
	if isConstructor && p.check(token.LPAREN) {
		p.advance()
		var args []ast.Pattern
		p.skipNewlines()
		for !p.check(token.RPAREN) && !p.failed() {
			args = append(args, p.parsePattern())
			p.skipNewlines()
			if !p.match(token.COMMA) {
				break
			}
			p.skipNewlines()
		}
		p.expect(token.RPAREN, "')'")
		return &ast.ConstructorPattern{Constructor: name, Args: args, Location: loc}
	}
	if isConstructor {
		return &ast.ConstructorPattern{Constructor: name, Args: nil, Location: loc}
	}
	return &ast.VarPattern{Name: name, Location: loc}
}

func (p *Parser) parseLiteralPattern() ast.Pattern {
	loc := p.cur.Loc
	tok := p.cur
	p.advance()
	return &ast.LiteralPattern{Value: tok.Value, Location: loc}
}

// parseListPattern: `[p1, p2, ...rest]` (§3.3, §4.4).
func (p *Parser) parseListPattern() ast.Pattern {
	loc := p.cur.Loc
	p.expect(token.LBRACKET, "'['")
	var elems []ast.Pattern
	var rest *ast.VarPattern
	p.skipNewlines()
	for !p.check(token.RBRACKET) && !p.failed() {
		if p.check(token.ELLIPSIS) {
			p.advance()
			name := p.expect(token.IDENTIFIER, "rest binding name").Text
			rest = &ast.VarPattern{Name: name, Location: loc}
			p.skipNewlines()
			break
		}
		elems = append(elems, p.parsePattern())
		p.skipNewlines()
		if !p.match(token.COMMA) {
			break
		}
		p.skipNewlines()
	}
	p.skipNewlines()
	p.expect(token.RBRACKET, "']'")
	return &ast.ListPattern{Elements: elems, Rest: rest, Location: loc}
}

// parseTuplePatternOrParen: `(p1, p2, ...)` is a TuplePattern when it
// contains a top-level comma; a lone parenthesized pattern is
// unwrapped.
func (p *Parser) parseTuplePatternOrParen() ast.Pattern {
	loc := p.cur.Loc
	p.expect(token.LPAREN, "'('")
	p.skipNewlines()
	if p.check(token.RPAREN) {
		p.advance()
		return &ast.TuplePattern{Location: loc}
	}
	var elems []ast.Pattern
	elems = append(elems, p.parsePattern())
	hadComma := false
	p.skipNewlines()
	for p.match(token.COMMA) {
		hadComma = true
		p.skipNewlines()
		if p.check(token.RPAREN) {
			break
		}
		elems = append(elems, p.parsePattern())
		p.skipNewlines()
	}
	p.expect(token.RPAREN, "')'")
	if !hadComma {
		return elems[0]
	}
	return &ast.TuplePattern{Elements: elems, Location: loc}
}

// parseRecordPattern: `{ name: pattern, ..., _ }` with the trailing
// bare `_` recorded as HasRest (§4.4, §9 Open Question c).
func (p *Parser) parseRecordPattern() ast.Pattern {
	loc := p.cur.Loc
	// Record patterns are always RecordCtx, never a block (§4.1).
	p.stream.SwitchTopToRecordContext()
	p.expect(token.LBRACE, "'{'")
	var fields []ast.RecordFieldPattern
	hasRest := false
	p.skipNewlines()
	for !p.check(token.RBRACE) && !p.failed() {
		if p.cur.Kind == token.IDENTIFIER && p.cur.Text == "_" {
			p.advance()
			hasRest = true
			p.skipNewlines()
			break
		}
		fieldLoc := p.cur.Loc
		name := p.readFieldNameToken().Text
		var fieldPattern ast.Pattern
		if p.check(token.COLON) {
			p.advance()
			fieldPattern = p.parsePattern()
		} else if token.IsKeyword(name) {
			p.fail(diagnostics.ErrReservedKeywordInShorthand, fieldLoc, name, name)
			return nil
		} else {
			fieldPattern = &ast.VarPattern{Name: name, Location: fieldLoc}
		}
		fields = append(fields, ast.RecordFieldPattern{Name: name, Pattern: fieldPattern, Location: fieldLoc})
		p.skipNewlines()
		if !p.match(token.COMMA) && !p.check(token.IDENTIFIER) {
			break
		}
		p.skipNewlines()
	}
	p.skipNewlines()
	p.expect(token.RBRACE, "'}'")
	return &ast.RecordPattern{Fields: fields, HasRest: hasRest, Location: loc}
}
