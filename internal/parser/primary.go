package parser

import (
	"github.com/fenlang/fenc/internal/ast"
	"github.com/fenlang/fenc/internal/config"
	"github.com/fenlang/fenc/internal/diagnostics"
	"github.com/fenlang/fenc/internal/source"
	"github.com/fenlang/fenc/internal/token"
)

// parsePrimary: level 15 (§4.3) — literals, identifiers, parenthesized
// expressions/tuples/lambdas, records, lists, tuples, `if`, `match`,
// block expressions, and `unsafe { ... }`.
func (p *Parser) parsePrimary() ast.Expr {
	switch p.cur.Kind {
	case token.INT_LITERAL:
		return p.literalInt()
	case token.FLOAT_LITERAL:
		return p.literalFloat()
	case token.STRING_LITERAL:
		return p.literalString()
	case token.BOOL_LITERAL:
		return p.literalBool()
	case token.IDENTIFIER:
		return p.parseVarOrUnit()
	case token.LPAREN:
		return p.parseParenExprOrLambda()
	case token.LBRACE:
		return p.parseBraceExpr()
	case token.LBRACKET:
		return p.parseListLiteral()
	case token.IF:
		return p.parseIfExpr()
	case token.MATCH:
		return p.parseMatchExpr()
	case token.UNSAFE:
		return p.parseUnsafeExpr()
	default:
		unexpected(p, "expression")
		return nil
	}
}

func (p *Parser) literalInt() ast.Expr {
	t := p.cur
	p.advance()
	v, _ := t.Value.(int64)
	return &ast.IntLit{Value: v, Location: t.Loc}
}

func (p *Parser) literalFloat() ast.Expr {
	t := p.cur
	p.advance()
	v, _ := t.Value.(float64)
	return &ast.FloatLit{Value: v, Location: t.Loc}
}

func (p *Parser) literalString() ast.Expr {
	t := p.cur
	p.advance()
	v, _ := t.Value.(string)
	return &ast.StringLit{Value: v, Location: t.Loc}
}

func (p *Parser) literalBool() ast.Expr {
	t := p.cur
	p.advance()
	v, _ := t.Value.(bool)
	return &ast.BoolLit{Value: v, Location: t.Loc}
}

// parseVarOrUnit: a bare identifier; `()` is handled in
// parseParenExprOrLambda since it starts with LPAREN, not here.
func (p *Parser) parseVarOrUnit() ast.Expr {
	t := p.cur
	p.advance()
	return &ast.Var{Name: t.Text, Location: t.Loc}
}

// parseParenExprOrLambda implements the §4.3 multi-parameter lambda
// detection: parse `(a, b, ...)`, then if FAT_ARROW follows,
// reinterpret as a lambda parameter list; otherwise it's `()` (unit),
// a single parenthesized expression, or — if it contained ≥1
// top-level comma — a Tuple.
func (p *Parser) parseParenExprOrLambda() ast.Expr {
	loc := p.cur.Loc
	p.expect(token.LPAREN, "'('")
	p.skipNewlines()

	if p.check(token.RPAREN) {
		p.advance()
		if p.peekNonNewline().Kind == token.FAT_ARROW {
			p.skipNewlines()
			p.expect(token.FAT_ARROW, "'=>'")
			body := p.parseExpression()
			return &ast.Lambda{Params: nil, Body: body, Location: loc}
		}
		return &ast.UnitLit{Location: loc}
	}

	first := p.parseExpression()
	p.skipNewlines()
	hadComma := false
	elems := []ast.Expr{first}
	for p.match(token.COMMA) {
		hadComma = true
		p.skipNewlines()
		if p.check(token.RPAREN) {
			break
		}
		elems = append(elems, p.parseExpression())
		p.skipNewlines()
	}
	p.expect(token.RPAREN, "')'")

	if p.peekNonNewline().Kind == token.FAT_ARROW {
		params := make([]ast.Pattern, len(elems))
		for i, e := range elems {
			pat, ok := exprToPattern(e)
			if !ok {
				p.fail(diagnostics.ErrInvalidPatternInContext, e.Loc(), "lambda parameter")
				return nil
			}
			params[i] = pat
		}
		p.skipNewlines()
		p.expect(token.FAT_ARROW, "'=>'")
		body := p.parseExpression()
		return &ast.Lambda{Params: params, Body: body, Location: loc}
	}

	if !hadComma {
		return first
	}
	return &ast.Tuple{Elements: elems, Location: loc}
}

// exprToPattern reinterprets an already-parsed expression as a
// pattern, needed because `(a, b)` is parsed speculatively as
// expressions before the FAT_ARROW look-ahead reveals it was really a
// lambda parameter list (mirroring the teacher's
// tupleExprToPattern/exprToPattern helpers).
func exprToPattern(e ast.Expr) (ast.Pattern, bool) {
	switch v := e.(type) {
	case *ast.Var:
		return &ast.VarPattern{Name: v.Name, Location: v.Location}, true
	case *ast.Tuple:
		elems := make([]ast.Pattern, len(v.Elements))
		for i, el := range v.Elements {
			pat, ok := exprToPattern(el)
			if !ok {
				return nil, false
			}
			elems[i] = pat
		}
		return &ast.TuplePattern{Elements: elems, Location: v.Location}, true
	case *ast.UnitLit:
		return &ast.TuplePattern{Location: v.Location}, true
	}
	return nil, false
}

// parseBraceExpr implements the §4.3 brace-disambiguation rule using
// bounded look-ahead: empty `{}`, `IDENT :` / `IDENT ,` (shorthand) /
// `ELLIPSIS` classify as a record (or record update), anything else is
// a block.
func (p *Parser) parseBraceExpr() ast.Expr {
	loc := p.cur.Loc
	if p.looksLikeRecord() {
		p.stream.SwitchTopToRecordContext()
		return p.parseRecordOrUpdate(loc)
	}
	return p.parseBlock(loc)
}

// looksLikeRecord peeks past `{` (and any newlines) with bounded
// look-ahead to decide whether this brace opens a record body. The
// look-ahead is capped at config.MaxBoundedLookahead so a source file
// with an unterminated brace can never force an unbounded scan before
// falling back to "not a record" and letting the block parser report
// the real error.
func (p *Parser) looksLikeRecord() bool {
	// p.cur is LBRACE; look one token beyond it.
	i := 0
	next := p.peekAt(i)
	for next.Kind == token.NEWLINE && i < config.MaxBoundedLookahead {
		i++
		next = p.peekAt(i)
	}
	if next.Kind == token.RBRACE {
		return true
	}
	if next.Kind == token.ELLIPSIS {
		return true
	}
	if next.Kind == token.IDENTIFIER || token.IsKeyword(next.Text) {
		j := i + 1
		after := p.peekAt(j)
		for after.Kind == token.NEWLINE && j < i+config.MaxBoundedLookahead {
			j++
			after = p.peekAt(j)
		}
		switch after.Kind {
		case token.COLON, token.COMMA, token.RBRACE:
			return true
		}
	}
	return false
}

// parseRecordOrUpdate parses the field list following an `{` already
// classified as a record. If the first entry is a spread, the result
// is a RecordUpdate anchored on that spread's expression (§4.3).
func (p *Parser) parseRecordOrUpdate(loc source.Location) ast.Expr {
	p.expect(token.LBRACE, "'{'")
	var fields []ast.RecordField
	p.skipNewlines()
	for !p.check(token.RBRACE) && !p.failed() {
		fields = append(fields, p.parseRecordField())
		p.skipNewlines()
		if !p.match(token.COMMA) && !p.check(token.IDENTIFIER) && !p.check(token.ELLIPSIS) {
			break
		}
		p.skipNewlines()
	}
	p.skipNewlines()
	p.expect(token.RBRACE, "'}'")

	if len(fields) == 0 {
		return &ast.Record{Fields: fields, Location: loc}
	}
	if spread, ok := fields[0].(*ast.Spread); ok {
		return &ast.RecordUpdate{Record: spread.Expr, Updates: fields[1:], Location: loc}
	}
	return &ast.Record{Fields: fields, Location: loc}
}

func (p *Parser) parseRecordField() ast.RecordField {
	if p.check(token.ELLIPSIS) {
		loc := p.cur.Loc
		p.advance()
		expr := p.parseExpression()
		return &ast.Spread{Expr: expr, Location: loc}
	}

	loc := p.cur.Loc
	name := p.readFieldNameToken().Text
	if p.check(token.COLON) {
		p.advance()
		value := p.parseExpression()
		return &ast.Field{Name: name, Value: value, Location: loc}
	}
	if token.IsKeyword(name) {
		p.fail(diagnostics.ErrReservedKeywordInShorthand, loc, name, name)
		return nil
	}
	// Shorthand `{ name }` ≡ `{ name: name }` (§4.3, §4.6) — already
	// normalized here at parse time.
	return &ast.Field{Name: name, Value: &ast.Var{Name: name, Location: loc}, Location: loc}
}

// parseBlock parses a `{ exprs; ... }` block expression: a semicolon-
// separated (subject to ASI, since `{` pushed BlockCtx) list of
// expressions.
func (p *Parser) parseBlock(loc source.Location) ast.Expr {
	p.expect(token.LBRACE, "'{'")
	var exprs []ast.Expr
	p.skipNewlines()
	for !p.check(token.RBRACE) && !p.failed() {
		exprs = append(exprs, p.parseExpression())
		if p.check(token.SEMICOLON) {
			for p.check(token.SEMICOLON) {
				p.advance()
			}
		} else if !p.check(token.RBRACE) {
			p.fail(diagnostics.ErrMissingSemicolon, p.cur.Loc)
			return nil
		}
		p.skipNewlines()
	}
	p.expect(token.RBRACE, "'}'")
	return &ast.Block{Exprs: exprs, Location: loc}
}

// parseListLiteral: `[e1, e2, ...]` (§3.3); desugared into nested
// Cons/Nil by the desugar package (§4.6).
func (p *Parser) parseListLiteral() ast.Expr {
	loc := p.cur.Loc
	p.expect(token.LBRACKET, "'['")
	var elems []ast.ListElement
	p.skipNewlines()
	for !p.check(token.RBRACKET) && !p.failed() {
		elemLoc := p.cur.Loc
		elems = append(elems, ast.ListElement{Expr: p.parseExpression(), Location: elemLoc})
		p.skipNewlines()
		if !p.match(token.COMMA) {
			break
		}
		p.skipNewlines()
	}
	p.skipNewlines()
	p.expect(token.RBRACKET, "']'")
	return &ast.List{Elements: elems, Location: loc}
}

// parseIfExpr materializes a missing `else` branch as a UnitLit
// spanning the if-expression's tail (§4.3, §9 location-propagation
// note).
func (p *Parser) parseIfExpr() ast.Expr {
	loc := p.cur.Loc
	p.expect(token.IF, "'if'")
	cond := p.parseExpression()
	p.skipNewlines()
	p.expect(token.THEN, "'then'")
	thenExpr := p.parseExpression()

	if p.peekNonNewline().Kind == token.ELSE {
		p.skipNewlines()
		p.expect(token.ELSE, "'else'")
		elseExpr := p.parseExpression()
		return &ast.If{Condition: cond, Then: thenExpr, Else: elseExpr, Location: loc}
	}

	tailLoc := thenExpr.Loc()
	return &ast.If{Condition: cond, Then: thenExpr, Else: &ast.UnitLit{Location: tailLoc}, Location: loc}
}

// parseMatchExpr: every case begins with a mandatory `|`. Case bodies
// are parsed at full expression (lambda) precedence, greedily (§4.3).
func (p *Parser) parseMatchExpr() ast.Expr {
	loc := p.cur.Loc
	p.expect(token.MATCH, "'match'")
	scrutinee := p.parseExpression()
	p.skipNewlines()

	var cases []ast.MatchCase
	for p.check(token.PIPE) {
		caseLoc := p.cur.Loc
		p.advance()
		pat := p.parsePattern()
		var guard ast.Expr
		if p.check(token.WHEN) {
			p.advance()
			guard = p.parseExpression()
		}
		p.expect(token.FAT_ARROW, "'=>'")
		body := p.parseExpression()
		cases = append(cases, ast.MatchCase{Pattern: pat, Guard: guard, Body: body, Location: caseLoc})
		p.skipNewlines()
	}
	if len(cases) == 0 {
		unexpected(p, "'|' (match case)")
		return nil
	}
	return &ast.Match{Expr: scrutinee, Cases: cases, Location: loc}
}

func (p *Parser) parseUnsafeExpr() ast.Expr {
	loc := p.cur.Loc
	p.expect(token.UNSAFE, "'unsafe'")
	p.skipNewlines()
	inner := p.parseBraceExprOrExpression()
	return &ast.Unsafe{Expr: inner, Location: loc}
}

func (p *Parser) parseBraceExprOrExpression() ast.Expr {
	if p.check(token.LBRACE) {
		return p.parseBraceExpr()
	}
	return p.parseExpression()
}
