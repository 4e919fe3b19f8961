package core

import "github.com/fenlang/fenc/internal/source"

type Pattern interface {
	Node
	patternNode()
}

type WildcardPattern struct {
	Location source.Location
}

func (p *WildcardPattern) Loc() source.Location { return p.Location }
func (p *WildcardPattern) Accept(v Visitor)     { v.VisitWildcardPattern(p) }
func (p *WildcardPattern) patternNode()         {}

type VarPattern struct {
	Name     string
	Location source.Location
}

func (p *VarPattern) Loc() source.Location { return p.Location }
func (p *VarPattern) Accept(v Visitor)     { v.VisitVarPattern(p) }
func (p *VarPattern) patternNode()         {}

type LiteralPattern struct {
	Value    interface{}
	Location source.Location
}

func (p *LiteralPattern) Loc() source.Location { return p.Location }
func (p *LiteralPattern) Accept(v Visitor)     { v.VisitLiteralPattern(p) }
func (p *LiteralPattern) patternNode()         {}

// ConstructorPattern matches both ordinary variant constructors and
// the synthetic "Cons"/"Nil" shapes a surface ListPattern lowers into
// (§3.4), mirroring ConstructorApp on the expression side.
type ConstructorPattern struct {
	Constructor string
	Args        []Pattern
	Location    source.Location
}

func (p *ConstructorPattern) Loc() source.Location { return p.Location }
func (p *ConstructorPattern) Accept(v Visitor)     { v.VisitConstructorPattern(p) }
func (p *ConstructorPattern) patternNode()         {}

type RecordFieldPattern struct {
	Name    string
	Pattern Pattern
}

type RecordPattern struct {
	Fields   []RecordFieldPattern
	HasRest  bool
	Location source.Location
}

func (p *RecordPattern) Loc() source.Location { return p.Location }
func (p *RecordPattern) Accept(v Visitor)     { v.VisitRecordPattern(p) }
func (p *RecordPattern) patternNode()         {}

type TuplePattern struct {
	Elements []Pattern
	Location source.Location
}

func (p *TuplePattern) Loc() source.Location { return p.Location }
func (p *TuplePattern) Accept(v Visitor)     { v.VisitTuplePattern(p) }
func (p *TuplePattern) patternNode()         {}
