package parser

import (
	"github.com/fenlang/fenc/internal/ast"
	"github.com/fenlang/fenc/internal/token"
)

// parseTypeExpr implements the §4.5 grammar:
//
//	Type  := FnType
//	FnType := '(' TypeList? ')' '->' Type | App
//	App   := Const ('<' TypeList '>')? | Var | RecordType | '(' Type (',' Type)+ ')'
func (p *Parser) parseTypeExpr() ast.TypeExpr {
	if p.check(token.LPAREN) {
		return p.parseParenOrFunctionType()
	}
	return p.parseAppOrAtomType()
}

// parseParenOrFunctionType handles `(Params) -> Return`, a tuple type
// `(A, B, ...)`, or a single parenthesized type.
func (p *Parser) parseParenOrFunctionType() ast.TypeExpr {
	loc := p.cur.Loc
	p.expect(token.LPAREN, "'('")
	p.skipNewlines()

	var elems []ast.TypeExpr
	if !p.check(token.RPAREN) {
		elems = append(elems, p.parseTypeExpr())
		p.skipNewlines()
		for p.match(token.COMMA) {
			p.skipNewlines()
			if p.check(token.RPAREN) {
				break
			}
			elems = append(elems, p.parseTypeExpr())
			p.skipNewlines()
		}
	}
	p.expect(token.RPAREN, "')'")

	if p.check(token.THIN_ARROW) {
		p.advance()
		ret := p.parseTypeExpr()
		return &ast.FunctionType{Params: elems, Return: ret, Location: loc}
	}
	if len(elems) == 1 {
		return elems[0]
	}
	return &ast.TupleType{Elements: elems, Location: loc}
}

func (p *Parser) parseAppOrAtomType() ast.TypeExpr {
	switch p.cur.Kind {
	case token.LBRACE:
		return p.parseRecordTypeExpr()
	case token.IDENTIFIER:
		return p.parseNamedOrAppType()
	default:
		unexpected(p, "type expression")
		return nil
	}
}

func (p *Parser) parseNamedOrAppType() ast.TypeExpr {
	loc := p.cur.Loc
	name := p.cur.Text
	p.advance()

	if !isUpperIdent(name) {
		return &ast.TypeVar{Name: name, Location: loc}
	}

	if p.check(token.OP_LT) {
		p.advance()
		var args []ast.TypeExpr
		for {
			p.skipNewlines()
			args = append(args, p.parseTypeExpr())
			p.skipNewlines()
			if !p.match(token.COMMA) {
				break
			}
		}
		p.expectCloseAngle()
		return &ast.TypeApp{Constructor: name, Args: args, Location: loc}
	}
	return &ast.TypeConst{Name: name, Location: loc}
}

func (p *Parser) parseRecordTypeExpr() ast.TypeExpr {
	loc := p.cur.Loc
	// Record types are always RecordCtx, never a block (§4.1).
	p.stream.SwitchTopToRecordContext()
	p.expect(token.LBRACE, "'{'")
	var fields []ast.RecordTypeFieldExpr
	p.skipNewlines()
	for !p.check(token.RBRACE) && !p.failed() {
		name := p.readFieldNameToken().Text
		p.expect(token.COLON, "':'")
		ftype := p.parseTypeExpr()
		fields = append(fields, ast.RecordTypeFieldExpr{Name: name, Type: ftype})
		p.skipNewlines()
		if !p.match(token.COMMA) && !p.check(token.IDENTIFIER) {
			break
		}
		p.skipNewlines()
	}
	p.skipNewlines()
	p.expect(token.RBRACE, "'}'")
	return &ast.RecordType{Fields: fields, Location: loc}
}

func isUpperIdent(name string) bool {
	return len(name) > 0 && name[0] >= 'A' && name[0] <= 'Z'
}
