package parser

import (
	"github.com/fenlang/fenc/internal/ast"
	"github.com/fenlang/fenc/internal/diagnostics"
	"github.com/fenlang/fenc/internal/source"
	"github.com/fenlang/fenc/internal/token"
)

// parseModule drives the top-level declaration loop, grounded on the
// teacher's ParseProgram dispatch (internal/parser/parser.go).
func (p *Parser) parseModule() *ast.Module {
	startLoc := p.cur.Loc
	mod := &ast.Module{}

	p.skipNewlines()
	for !p.check(token.EOF) && !p.failed() {
		decl := p.parseTopLevel()
		if p.failed() {
			break
		}
		if imp, ok := decl.(*ast.ImportDecl); ok {
			mod.Imports = append(mod.Imports, imp)
		} else if decl != nil {
			mod.Declarations = append(mod.Declarations, decl)
		}

		// A declaration ends in `;` (explicit or ASI-synthesized) or
		// directly at EOF; residual bare newlines were already folded
		// away by the lexer's TopCtx ASI, so only consume a lone
		// SEMICOLON here.
		for p.check(token.SEMICOLON) {
			p.advance()
		}
		p.skipNewlines()
	}

	mod.Location = startLoc
	return mod
}

func (p *Parser) parseTopLevel() ast.Declaration {
	exported := false
	if p.check(token.EXPORT) {
		exported = true
		p.advance()
		if p.check(token.OP_STAR) {
			return p.parseNamespaceReExport()
		}
		if p.check(token.LBRACE) {
			return p.parseReExportOrImportItems(true)
		}
	}

	switch p.cur.Kind {
	case token.LET:
		return p.parseLetDecl(exported)
	case token.TYPE:
		return p.parseTypeDecl(exported)
	case token.EXTERNAL:
		return p.parseExternal(exported)
	case token.IMPORT:
		if exported {
			unexpected(p, "declaration")
			return nil
		}
		return p.parseImportDecl()
	default:
		unexpected(p, "declaration")
		return nil
	}
}

// parseLetDecl: `let [mut] [rec] pattern [: Type] = expr` (§6.1).
func (p *Parser) parseLetDecl(exported bool) *ast.LetDecl {
	loc := p.cur.Loc
	p.expect(token.LET, "'let'")

	mutable := p.match(token.MUT)
	recursive := p.match(token.REC)

	pat := p.parsePattern()
	if p.failed() {
		return nil
	}

	var typeAnnot ast.TypeExpr
	if p.check(token.COLON) {
		p.advance()
		typeAnnot = p.parseTypeExpr()
	}

	p.expect(token.OP_ASSIGN, "'='")
	value := p.parseExpression()
	if p.failed() {
		return nil
	}

	if recursive {
		if _, ok := value.(*ast.Lambda); !ok {
			p.fail(diagnostics.ErrInvalidPatternInContext, loc, "recursive let must bind a lambda")
			return nil
		}
	}

	return &ast.LetDecl{
		Pattern:   pat,
		TypeAnnot: typeAnnot,
		Value:     value,
		Mutable:   mutable,
		Recursive: recursive,
		Exported:  exported,
		Location:  loc,
	}
}

// parseTypeDecl: `type Name[<Params>] = TypeDef`.
func (p *Parser) parseTypeDecl(exported bool) *ast.TypeDecl {
	loc := p.cur.Loc
	p.expect(token.TYPE, "'type'")
	name := p.expect(token.IDENTIFIER, "type name").Text

	var params []string
	if p.check(token.OP_LT) {
		p.advance()
		for {
			p.skipNewlines()
			params = append(params, p.expect(token.IDENTIFIER, "type parameter").Text)
			p.skipNewlines()
			if !p.match(token.COMMA) {
				break
			}
		}
		p.expectCloseAngle()
	}

	p.expect(token.OP_ASSIGN, "'='")
	def := p.parseTypeDef()
	if p.failed() {
		return nil
	}

	return &ast.TypeDecl{Name: name, Params: params, Definition: def, Exported: exported, Location: loc}
}

// parseTypeDef dispatches on what follows `=` in a type declaration:
// a leading `|` or bare constructor name starts a VariantTypeDef, `{`
// starts a RecordTypeDef, anything else is a type alias.
func (p *Parser) parseTypeDef() ast.TypeDef {
	loc := p.cur.Loc
	p.skipNewlines()

	if p.check(token.PIPE) || p.looksLikeVariant() {
		return p.parseVariantTypeDef(loc)
	}
	if p.check(token.LBRACE) {
		return p.parseRecordTypeDef(loc)
	}
	target := p.parseTypeExpr()
	if p.failed() {
		return nil
	}
	return &ast.AliasType{Target: target, Location: loc}
}

// looksLikeVariant recognizes a bare-first-constructor variant
// definition (no leading `|`): an uppercase identifier immediately
// followed by `(` or a line consisting of only the constructor name.
func (p *Parser) looksLikeVariant() bool {
	if p.cur.Kind != token.IDENTIFIER || len(p.cur.Text) == 0 {
		return false
	}
	if p.cur.Text[0] < 'A' || p.cur.Text[0] > 'Z' {
		return false
	}
	next := p.peekAt(0)
	return next.Kind == token.LPAREN || next.Kind == token.PIPE || next.Kind == token.NEWLINE || next.Kind == token.SEMICOLON
}

// parseVariantTypeDef reads `| Ctor(Args) | Ctor2 | ...`, accepting an
// optional leading `|` and treating newlines between constructors as
// whitespace (§4.5 multi-line variant form).
func (p *Parser) parseVariantTypeDef(loc source.Location) ast.TypeDef {
	var ctors []ast.VariantConstructor
	p.match(token.PIPE)
	for {
		p.skipNewlines()
		name := p.expect(token.IDENTIFIER, "constructor name").Text
		var args []ast.TypeExpr
		if p.check(token.LPAREN) {
			p.advance()
			for !p.check(token.RPAREN) && !p.failed() {
				p.skipNewlines()
				args = append(args, p.parseTypeExpr())
				p.skipNewlines()
				if !p.match(token.COMMA) {
					break
				}
			}
			p.expect(token.RPAREN, "')'")
		}
		ctors = append(ctors, ast.VariantConstructor{Name: name, Args: args})
		p.skipNewlines()
		if !p.check(token.PIPE) {
			break
		}
		p.advance()
	}
	return &ast.VariantTypeDef{Constructors: ctors, Location: loc}
}

func (p *Parser) parseRecordTypeDef(loc source.Location) ast.TypeDef {
	// A record type's `{` is always RecordCtx, never a block (§4.1):
	// switch before consuming it so ASI is disabled for the newlines
	// that separate its fields.
	p.stream.SwitchTopToRecordContext()
	p.expect(token.LBRACE, "'{'")
	var fields []ast.RecordTypeField
	p.skipNewlines()
	for !p.check(token.RBRACE) && !p.failed() {
		fname := p.expect(token.IDENTIFIER, "field name").Text
		p.expect(token.COLON, "':'")
		ftype := p.parseTypeExpr()
		fields = append(fields, ast.RecordTypeField{Name: fname, Type: ftype})
		p.skipNewlines()
		if !p.match(token.COMMA) && !p.check(token.IDENTIFIER) {
			break
		}
		p.skipNewlines()
	}
	p.skipNewlines()
	p.expect(token.RBRACE, "'}'")
	return &ast.RecordTypeDef{Fields: fields, Location: loc}
}

// parseExternal covers both `external Name : Type = "js" [from ...]`
// and the block form `external [from ...] { items }` (§6.1).
func (p *Parser) parseExternal(exported bool) ast.Declaration {
	loc := p.cur.Loc
	p.expect(token.EXTERNAL, "'external'")

	from := ""
	if p.check(token.FROM) {
		p.advance()
		from = p.expectStringLit("module path")
	}

	if p.check(token.LBRACE) {
		return p.parseExternalBlock(loc, from, exported)
	}

	name := p.expect(token.IDENTIFIER, "external name").Text
	var typeParams []string
	if p.check(token.OP_LT) {
		typeParams = p.parseTypeParamList()
	}
	p.expect(token.COLON, "':'")
	typeExpr := p.parseTypeExpr()
	p.expect(token.OP_ASSIGN, "'='")
	jsName := p.expectStringLit("JS binding name")

	return &ast.ExternalDecl{
		Name: name, TypeExpr: typeExpr, JSName: jsName, From: from,
		Exported: exported, TypeParams: typeParams, Location: loc,
	}
}

func (p *Parser) parseTypeParamList() []string {
	var params []string
	p.expect(token.OP_LT, "'<'")
	for {
		p.skipNewlines()
		params = append(params, p.expect(token.IDENTIFIER, "type parameter").Text)
		p.skipNewlines()
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expectCloseAngle()
	return params
}

func (p *Parser) parseExternalBlock(loc source.Location, from string, exported bool) *ast.ExternalBlock {
	p.expect(token.LBRACE, "'{'")
	var items []ast.ExternalItem
	p.skipNewlines()
	for !p.check(token.RBRACE) && !p.failed() {
		items = append(items, p.parseExternalItem())
		for p.check(token.SEMICOLON) {
			p.advance()
		}
		p.skipNewlines()
	}
	p.expect(token.RBRACE, "'}'")
	return &ast.ExternalBlock{From: from, Items: items, Exported: exported, Location: loc}
}

func (p *Parser) parseExternalItem() ast.ExternalItem {
	loc := p.cur.Loc
	if p.check(token.TYPE) {
		p.advance()
		name := p.expect(token.IDENTIFIER, "type name").Text
		p.expect(token.OP_ASSIGN, "'='")
		p.parseTypeExpr() // opaque marker value is discarded (§4.5)
		return &ast.ExternalType{Name: name, Location: loc}
	}
	name := p.expect(token.IDENTIFIER, "external item name").Text
	var typeParams []string
	if p.check(token.OP_LT) {
		typeParams = p.parseTypeParamList()
	}
	p.expect(token.COLON, "':'")
	typeExpr := p.parseTypeExpr()
	p.expect(token.OP_ASSIGN, "'='")
	jsName := p.expectStringLit("JS binding name")
	return &ast.ExternalValue{Name: name, TypeExpr: typeExpr, JSName: jsName, TypeParams: typeParams, Location: loc}
}

// parseImportDecl: `import { a, b as c, type T } from "./path";` or
// `import * as X from "./path";`.
func (p *Parser) parseImportDecl() *ast.ImportDecl {
	loc := p.cur.Loc
	p.expect(token.IMPORT, "'import'")

	var items []ast.ImportItem
	if p.check(token.OP_STAR) {
		p.advance()
		p.expect(token.AS, "'as'")
		alias := p.expect(token.IDENTIFIER, "namespace alias").Text
		items = []ast.ImportItem{{Name: "*", Alias: alias, Location: loc}}
	} else {
		items = p.parseImportItemList()
	}

	p.expect(token.FROM, "'from'")
	from := p.expectStringLit("module path")
	return &ast.ImportDecl{Items: items, From: from, Location: loc}
}

// expectStringLit consumes a STRING_LITERAL and returns its decoded
// contents, without the surrounding quotes.
func (p *Parser) expectStringLit(what string) string {
	s, _ := p.expect(token.STRING_LITERAL, what).Value.(string)
	return s
}

func (p *Parser) parseImportItemList() []ast.ImportItem {
	p.expect(token.LBRACE, "'{'")
	var items []ast.ImportItem
	p.skipNewlines()
	for !p.check(token.RBRACE) && !p.failed() {
		itemLoc := p.cur.Loc
		isType := p.match(token.TYPE)
		name := p.expect(token.IDENTIFIER, "import name").Text
		alias := ""
		if p.match(token.AS) {
			alias = p.expect(token.IDENTIFIER, "import alias").Text
		}
		items = append(items, ast.ImportItem{Name: name, Alias: alias, IsType: isType, Location: itemLoc})
		p.skipNewlines()
		if !p.match(token.COMMA) {
			break
		}
		p.skipNewlines()
	}
	p.skipNewlines()
	p.expect(token.RBRACE, "'}'")
	return items
}

// parseNamespaceReExport: `export * from "./mod";`.
func (p *Parser) parseNamespaceReExport() *ast.ReExportDecl {
	loc := p.cur.Loc
	p.expect(token.OP_STAR, "'*'")
	p.expect(token.FROM, "'from'")
	from := p.expectStringLit("module path")
	return &ast.ReExportDecl{Items: nil, From: from, Location: loc}
}

// parseReExportOrImportItems handles `export { a, type T } from "./mod"`.
func (p *Parser) parseReExportOrImportItems(exported bool) *ast.ReExportDecl {
	loc := p.cur.Loc
	items := p.parseImportItemList()
	p.expect(token.FROM, "'from'")
	from := p.expectStringLit("module path")
	return &ast.ReExportDecl{Items: items, From: from, Location: loc}
}

// expectCloseAngle consumes a `>` that closes a generic parameter or
// argument list, splitting a `>>` in two when it closes a nested list
// (§4.1, §4.5). The split happens on cur/peek directly — by the time
// this runs cur (and possibly peek) already hold the `>>`, two tokens
// ahead of whatever SplitRshift could reach in the stream's own
// lookahead buffer — and the token that was sitting in peek is
// requeued via pushedBack so it isn't lost.
func (p *Parser) expectCloseAngle() {
	if p.cur.Kind == token.OP_GT_GT {
		loc := p.cur.Loc
		firstLoc := loc
		firstLoc.EndOffset = firstLoc.StartOffset + 1
		secondLoc := loc
		secondLoc.StartOffset++
		secondLoc.StartCol++

		old := p.peek
		p.cur = token.Token{Kind: token.OP_GT, Text: ">", Loc: firstLoc}
		p.peek = token.Token{Kind: token.OP_GT, Text: ">", Loc: secondLoc}
		p.pushedBack = &old
	}
	p.expect(token.OP_GT, "'>'")
}
