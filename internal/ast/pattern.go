package ast

import "github.com/fenlang/fenc/internal/source"

// Pattern is implemented by every pattern node (§3.3, §4.4).
type Pattern interface {
	Node
	patternNode()
}

// WildcardPattern: `_`.
type WildcardPattern struct {
	Location source.Location
}

func (p *WildcardPattern) Loc() source.Location { return p.Location }
func (p *WildcardPattern) Accept(v Visitor)     { v.VisitWildcardPattern(p) }
func (p *WildcardPattern) patternNode()         {}

// VarPattern binds the scrutinee (or sub-scrutinee) to Name.
type VarPattern struct {
	Name     string
	Location source.Location
}

func (p *VarPattern) Loc() source.Location { return p.Location }
func (p *VarPattern) Accept(v Visitor)     { v.VisitVarPattern(p) }
func (p *VarPattern) patternNode()         {}

// LiteralPattern matches against an int, float, string, bool, or unit
// literal. Value holds the same Go type IntLit/FloatLit/etc. would.
type LiteralPattern struct {
	Value    interface{}
	Location source.Location
}

func (p *LiteralPattern) Loc() source.Location { return p.Location }
func (p *LiteralPattern) Accept(v Visitor)     { v.VisitLiteralPattern(p) }
func (p *LiteralPattern) patternNode()         {}

// ConstructorPattern matches a variant constructor application, e.g.
// `Some(x)` or the nullary `None`.
type ConstructorPattern struct {
	Constructor string
	Args        []Pattern
	Location    source.Location
}

func (p *ConstructorPattern) Loc() source.Location { return p.Location }
func (p *ConstructorPattern) Accept(v Visitor)     { v.VisitConstructorPattern(p) }
func (p *ConstructorPattern) patternNode()         {}

// RecordFieldPattern is one named entry of a RecordPattern.
type RecordFieldPattern struct {
	Name     string
	Pattern  Pattern
	Location source.Location
}

// RecordPattern: `{ name: pattern, ... }`. When the source wrote a
// trailing bare `_` (a partial-match marker, §4.4 Open Question), it
// is recorded as HasRest with no attached exhaustiveness semantics —
// purely a parse-time acknowledgment that the record is not fully
// destructured.
type RecordPattern struct {
	Fields   []RecordFieldPattern
	HasRest  bool
	Location source.Location
}

func (p *RecordPattern) Loc() source.Location { return p.Location }
func (p *RecordPattern) Accept(v Visitor)     { v.VisitRecordPattern(p) }
func (p *RecordPattern) patternNode()         {}

// ListPattern: `[a, b, ...rest]`. Rest is nil when the source wrote no
// trailing `...name`.
type ListPattern struct {
	Elements []Pattern
	Rest     *VarPattern
	Location source.Location
}

func (p *ListPattern) Loc() source.Location { return p.Location }
func (p *ListPattern) Accept(v Visitor)     { v.VisitListPattern(p) }
func (p *ListPattern) patternNode()         {}

type TuplePattern struct {
	Elements []Pattern
	Location source.Location
}

func (p *TuplePattern) Loc() source.Location { return p.Location }
func (p *TuplePattern) Accept(v Visitor)     { v.VisitTuplePattern(p) }
func (p *TuplePattern) patternNode()         {}
