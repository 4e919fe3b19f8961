// Package ast defines the surface Abstract Syntax Tree produced by the
// parser: Module, Declaration, Expr, Pattern and TypeExpr as closed
// sum types, each node carrying a required source.Location, in the
// manner of the teacher's ast.Node / Accept(Visitor) design
// (internal/ast/ast.go), generalized from the teacher's single flat
// Expression/Statement hierarchy to this language's richer grammar.
package ast

import "github.com/fenlang/fenc/internal/source"

// Node is implemented by every AST node.
type Node interface {
	Loc() source.Location
	Accept(v Visitor)
}

// Module is the unique root of a parsed file.
type Module struct {
	Imports      []*ImportDecl
	Declarations []Declaration
	Location     source.Location
}

func (m *Module) Loc() source.Location { return m.Location }
func (m *Module) Accept(v Visitor)     { v.VisitModule(m) }

// Declaration is implemented by every top-level declaration kind.
type Declaration interface {
	Node
	declNode()
}
