package parser

import (
	"github.com/fenlang/fenc/internal/ast"
	"github.com/fenlang/fenc/internal/token"
)

// binOps maps an infix operator token to its precedence level and
// associativity, encoding the sixteen-level table of §4.3 (levels 3
// through 12; levels 0/1/2/13/14/15 are handled by their own
// functions below since each has parsing behavior a table entry
// can't capture).
type assoc int

const (
	leftAssoc assoc = iota
	rightAssoc
)

type opInfo struct {
	level int
	assoc assoc
}

var binOps = map[token.Type]opInfo{
	token.OP_PIPE_GT:   {3, leftAssoc},
	token.OP_GT_GT:     {4, leftAssoc},
	token.OP_LT_LT:     {4, leftAssoc},
	token.OP_OR:        {5, leftAssoc},
	token.OP_AND:       {6, leftAssoc},
	token.OP_EQ:        {7, leftAssoc},
	token.OP_NEQ:       {7, leftAssoc},
	token.OP_LT:        {8, leftAssoc},
	token.OP_LTE:       {8, leftAssoc},
	token.OP_GT:        {8, leftAssoc},
	token.OP_GTE:       {8, leftAssoc},
	token.OP_CONS:      {9, rightAssoc},
	token.OP_AMPERSAND: {10, leftAssoc},
	token.OP_PLUS:      {11, leftAssoc},
	token.OP_MINUS:     {11, leftAssoc},
	token.OP_STAR:      {12, leftAssoc},
	token.OP_SLASH:     {12, leftAssoc},
	token.OP_PERCENT:   {12, leftAssoc},
}

// parseExpression is the top entry point of the expression grammar,
// level 0 (lambda) downward.
func (p *Parser) parseExpression() ast.Expr {
	if lam := p.tryParseSingleParamLambda(); lam != nil {
		return lam
	}
	return p.parseRefAssign()
}

// tryParseSingleParamLambda implements the §4.3 lambda-detection rule
// at level 0: on a bare IDENTIFIER, skip newlines in look-ahead and
// commit to `x => body` if FAT_ARROW follows.
func (p *Parser) tryParseSingleParamLambda() ast.Expr {
	if p.cur.Kind != token.IDENTIFIER {
		return nil
	}
	next := p.peekAheadNonNewline()
	if next.Kind != token.FAT_ARROW {
		return nil
	}
	loc := p.cur.Loc
	param := &ast.VarPattern{Name: p.cur.Text, Location: p.cur.Loc}
	p.advance()
	p.skipNewlines()
	p.expect(token.FAT_ARROW, "'=>'")
	body := p.parseExpression()
	return &ast.Lambda{Params: []ast.Pattern{param}, Body: body, Location: loc}
}

// parseRefAssign: level 1, `:=`, right-associative.
func (p *Parser) parseRefAssign() ast.Expr {
	left := p.parseAnnotation()
	if p.check(token.OP_REF_ASSIGN) {
		loc := p.cur.Loc
		p.advance()
		p.skipNewlines()
		right := p.parseRefAssign()
		return &ast.BinOp{Op: ":=", Left: left, Right: right, Location: loc}
	}
	return left
}

// parseAnnotation: level 2, gated `:` — only consumed if the
// following token can start a type expression (§4.3).
func (p *Parser) parseAnnotation() ast.Expr {
	left := p.parseBinary(3)
	if p.check(token.COLON) && p.colonStartsType() {
		loc := p.cur.Loc
		p.advance()
		p.skipNewlines()
		typeExpr := p.parseTypeExpr()
		return &ast.TypeAnnotation{Expr: left, TypeExpr: typeExpr, Location: loc}
	}
	return left
}

func (p *Parser) colonStartsType() bool {
	next := p.peekAheadNonNewline()
	switch next.Kind {
	case token.IDENTIFIER, token.LPAREN, token.LBRACE:
		return true
	}
	return false
}

// parseBinary is the precedence-climbing core for levels 3-12.
func (p *Parser) parseBinary(minLevel int) ast.Expr {
	left := p.parseUnary()
	for {
		info, ok := binOps[p.cur.Kind]
		if !ok || info.level < minLevel {
			return left
		}
		op := p.cur
		p.advance()
		p.skipNewlines() // newlines allowed after binary operators (§4.2)

		var right ast.Expr
		if info.assoc == rightAssoc {
			right = p.parseBinary(info.level)
		} else {
			right = p.parseBinary(info.level + 1)
		}
		if op.Kind == token.OP_PIPE_GT {
			left = &ast.Pipe{Expr: left, Func: right, Location: op.Loc}
		} else {
			left = &ast.BinOp{Op: string(op.Kind), Left: left, Right: right, Location: op.Loc}
		}
	}
}

// parseUnary: level 13, prefix `-`/`!`, right-associative and
// stackable (`- - x`). Because prefix and infix parsing live in
// separate functions here rather than one token-keyed dispatch
// table, the "unary minus vs. binary minus" ambiguity the spec
// describes (§4.3) dissolves structurally: parseUnary is only ever
// reached in operand position, so a leading `-` there is always
// negation.
func (p *Parser) parseUnary() ast.Expr {
	if p.cur.Kind == token.OP_MINUS || p.cur.Kind == token.OP_BANG {
		op := p.cur
		p.advance()
		operand := p.parseUnary()
		return &ast.UnaryOp{Op: string(op.Kind), Expr: operand, Location: op.Loc}
	}
	return p.parsePostfix()
}

// parsePostfix: level 14, calls / field access / `!` deref, left-
// associative and chaining. Newlines are allowed before `.` and `(`
// (§4.2, §4.3).
func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parsePrimary()
	for {
		switch p.peekNonNewline().Kind {
		case token.DOT:
			p.skipNewlines()
			loc := p.cur.Loc
			p.advance()
			p.skipNewlines()
			field := p.expect(token.IDENTIFIER, "field name after '.'").Text
			expr = &ast.RecordAccess{Record: expr, Field: field, Location: loc}
		case token.LPAREN:
			p.skipNewlines()
			loc := p.cur.Loc
			args := p.parseArgList()
			expr = &ast.App{Func: expr, Args: args, Location: loc}
		default:
			if p.cur.Kind == token.OP_BANG {
				loc := p.cur.Loc
				p.advance()
				expr = &ast.UnaryOp{Op: "deref!", Expr: expr, Location: loc}
				continue
			}
			return expr
		}
	}
}

func (p *Parser) parseArgList() []ast.Expr {
	p.expect(token.LPAREN, "'('")
	var args []ast.Expr
	p.skipNewlines()
	for !p.check(token.RPAREN) && !p.failed() {
		args = append(args, p.parseExpression())
		p.skipNewlines()
		if !p.match(token.COMMA) {
			break
		}
		p.skipNewlines()
	}
	p.skipNewlines()
	p.expect(token.RPAREN, "')'")
	return args
}
