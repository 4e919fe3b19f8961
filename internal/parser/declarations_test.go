package parser

import (
	"testing"

	"github.com/fenlang/fenc/internal/ast"
	"github.com/stretchr/testify/require"
)

func mustParseModule(t *testing.T, src string) *ast.Module {
	t.Helper()
	mod, err := ParseModule("test.fen", src)
	require.Nil(t, err)
	require.NotNil(t, mod)
	return mod
}

func TestParseLetDeclaration(t *testing.T) {
	mod := mustParseModule(t, "let x = 1")
	require.Len(t, mod.Declarations, 1)
	let := mod.Declarations[0].(*ast.LetDecl)
	require.Equal(t, "x", let.Pattern.(*ast.VarPattern).Name)
	require.False(t, let.Mutable)
	require.False(t, let.Recursive)
}

func TestParseExportedLetDeclaration(t *testing.T) {
	mod := mustParseModule(t, "export let x = 1")
	let := mod.Declarations[0].(*ast.LetDecl)
	require.True(t, let.Exported)
}

func TestParseMutableLetDeclaration(t *testing.T) {
	mod := mustParseModule(t, "let mut x = 1")
	let := mod.Declarations[0].(*ast.LetDecl)
	require.True(t, let.Mutable)
}

func TestParseRecursiveLetRequiresLambda(t *testing.T) {
	mod := mustParseModule(t, "let rec f = x => f(x)")
	let := mod.Declarations[0].(*ast.LetDecl)
	require.True(t, let.Recursive)
	_, ok := let.Value.(*ast.Lambda)
	require.True(t, ok)
}

func TestParseRecursiveLetRejectsNonLambda(t *testing.T) {
	_, err := ParseModule("test.fen", "let rec f = 1")
	require.NotNil(t, err)
}

func TestParseLetWithTypeAnnotation(t *testing.T) {
	mod := mustParseModule(t, "let x : Int = 1")
	let := mod.Declarations[0].(*ast.LetDecl)
	require.NotNil(t, let.TypeAnnot)
}

func TestParseTwoDeclarationsSeparatedByASI(t *testing.T) {
	mod := mustParseModule(t, "let a = 1\nlet b = 2")
	require.Len(t, mod.Declarations, 2)
}

func TestParseTypeAliasDeclaration(t *testing.T) {
	mod := mustParseModule(t, "type UserId = Int")
	decl := mod.Declarations[0].(*ast.TypeDecl)
	require.Equal(t, "UserId", decl.Name)
	_, ok := decl.Definition.(*ast.AliasType)
	require.True(t, ok)
}

func TestParseVariantTypeDeclarationWithLeadingPipe(t *testing.T) {
	mod := mustParseModule(t, "type Option<a> = | None | Some(a)")
	decl := mod.Declarations[0].(*ast.TypeDecl)
	require.Equal(t, []string{"a"}, decl.Params)
	variant := decl.Definition.(*ast.VariantTypeDef)
	require.Len(t, variant.Constructors, 2)
	require.Equal(t, "None", variant.Constructors[0].Name)
	require.Equal(t, "Some", variant.Constructors[1].Name)
	require.Len(t, variant.Constructors[1].Args, 1)
}

func TestParseVariantTypeDeclarationWithoutLeadingPipe(t *testing.T) {
	mod := mustParseModule(t, "type Option<a> = None | Some(a)")
	decl := mod.Declarations[0].(*ast.TypeDecl)
	variant := decl.Definition.(*ast.VariantTypeDef)
	require.Len(t, variant.Constructors, 2)
}

func TestParseVariantTypeDeclarationMultiLine(t *testing.T) {
	mod := mustParseModule(t, "type Shape =\n| Circle(Float)\n| Square(Float)\n| Rect(Float, Float)")
	decl := mod.Declarations[0].(*ast.TypeDecl)
	variant := decl.Definition.(*ast.VariantTypeDef)
	require.Len(t, variant.Constructors, 3)
	require.Equal(t, "Rect", variant.Constructors[2].Name)
	require.Len(t, variant.Constructors[2].Args, 2)
}

func TestParseRecordTypeDeclaration(t *testing.T) {
	mod := mustParseModule(t, "type Point = { x: Int, y: Int }")
	decl := mod.Declarations[0].(*ast.TypeDecl)
	rec := decl.Definition.(*ast.RecordTypeDef)
	require.Len(t, rec.Fields, 2)
	require.Equal(t, "x", rec.Fields[0].Name)
}

// A `type X = { ... }` record body disables ASI across its fields just
// as a record literal does (§4.1): without switching context, the
// newline after `Int` would synthesize a SEMICOLON and break the
// field list.
func TestParseMultiLineRecordTypeDeclarationDisablesASI(t *testing.T) {
	mod := mustParseModule(t, "type Point = {\nx: Int\ny: Int\n}")
	decl := mod.Declarations[0].(*ast.TypeDecl)
	rec := decl.Definition.(*ast.RecordTypeDef)
	require.Len(t, rec.Fields, 2)
	require.Equal(t, "y", rec.Fields[1].Name)
}

func TestParseImportDeclaration(t *testing.T) {
	mod := mustParseModule(t, `import { a, b as c, type T } from "./mod"`)
	require.Len(t, mod.Imports, 1)
	imp := mod.Imports[0]
	require.Equal(t, "./mod", imp.From)
	require.Len(t, imp.Items, 3)
	require.Equal(t, "c", imp.Items[1].Alias)
	require.True(t, imp.Items[2].IsType)
}

func TestParseNamespaceImport(t *testing.T) {
	mod := mustParseModule(t, `import * as M from "./mod"`)
	imp := mod.Imports[0]
	require.Equal(t, "*", imp.Items[0].Name)
	require.Equal(t, "M", imp.Items[0].Alias)
}

func TestParseNamespaceReExport(t *testing.T) {
	mod := mustParseModule(t, `export * from "./mod"`)
	re := mod.Declarations[0].(*ast.ReExportDecl)
	require.Equal(t, "./mod", re.From)
	require.Nil(t, re.Items)
}

func TestParseReExportItems(t *testing.T) {
	mod := mustParseModule(t, `export { a, b } from "./mod"`)
	re := mod.Declarations[0].(*ast.ReExportDecl)
	require.Len(t, re.Items, 2)
}

func TestParseExternalValueDeclaration(t *testing.T) {
	mod := mustParseModule(t, `external log : (String) -> Unit = "console.log"`)
	ext := mod.Declarations[0].(*ast.ExternalDecl)
	require.Equal(t, "log", ext.Name)
	require.Equal(t, "console.log", ext.JSName)
}

func TestParseExternalBlockDeclaration(t *testing.T) {
	mod := mustParseModule(t, "external from \"./math.js\" {\nsqrt : (Float) -> Float = \"sqrt\"\ntype Complex = Type\n}")
	blk := mod.Declarations[0].(*ast.ExternalBlock)
	require.Equal(t, "./math.js", blk.From)
	require.Len(t, blk.Items, 2)
	val := blk.Items[0].(*ast.ExternalValue)
	require.Equal(t, "sqrt", val.Name)
	typ := blk.Items[1].(*ast.ExternalType)
	require.Equal(t, "Complex", typ.Name)
}

func TestParseGenericTypeArgListSplitsNestedRshift(t *testing.T) {
	mod := mustParseModule(t, "type T = List<List<Int>>")
	decl := mod.Declarations[0].(*ast.TypeDecl)
	alias := decl.Definition.(*ast.AliasType)
	outer := alias.Target.(*ast.TypeApp)
	require.Equal(t, "List", outer.Constructor)
	inner := outer.Args[0].(*ast.TypeApp)
	require.Equal(t, "List", inner.Constructor)
	require.Equal(t, "Int", inner.Args[0].(*ast.TypeConst).Name)
}
