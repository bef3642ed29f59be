package ast

import (
	"strings"

	"github.com/dws-sandbox/basicscript/internal/token"
)

// Visibility is the Public/Private modifier available on declarations and
// procedure/property/class members; it defaults to Public when unspecified.
type Visibility int

const (
	VisibilityPublic Visibility = iota
	VisibilityPrivate
)

func (v Visibility) String() string {
	if v == VisibilityPrivate {
		return "Private"
	}
	return "Public"
}

// Declarator is one comma-separated entry in a Dim/Const declaration; Dims
// holds declared array bounds (empty for a scalar, one expression per
// dimension for a fixed-size array, exactly matching this dialect's
// `Dim a(10)` / `Dim m(2,3)` forms).
type Declarator struct {
	Name *Identifier
	Dims []Expression
}

func (d *Declarator) String() string {
	if len(d.Dims) == 0 {
		return d.Name.String()
	}
	parts := make([]string, len(d.Dims))
	for i, e := range d.Dims {
		parts[i] = e.String()
	}
	return d.Name.String() + "(" + strings.Join(parts, ", ") + ")"
}

// DimStatement is `[Public|Private] Dim name[, name2(dims)...]`.
type DimStatement struct {
	Token       token.Token
	Declarators []*Declarator
	Visibility  Visibility
}

func (ds *DimStatement) statementNode()       {}
func (ds *DimStatement) TokenLiteral() string { return ds.Token.Literal }
func (ds *DimStatement) Pos() token.Position  { return ds.Token.Pos }
func (ds *DimStatement) String() string {
	parts := make([]string, len(ds.Declarators))
	for i, d := range ds.Declarators {
		parts[i] = d.String()
	}
	return "Dim " + strings.Join(parts, ", ")
}

// ReDimTarget is one target of a ReDim statement: a name plus its new
// dimension-size expressions.
type ReDimTarget struct {
	Name *Identifier
	Dims []Expression
}

func (rt *ReDimTarget) String() string {
	parts := make([]string, len(rt.Dims))
	for i, e := range rt.Dims {
		parts[i] = e.String()
	}
	return rt.Name.String() + "(" + strings.Join(parts, ", ") + ")"
}

// ReDimStatement is `ReDim [Preserve] name(dims)[, name2(dims)...]`.
type ReDimStatement struct {
	Token    token.Token
	Preserve bool
	Targets  []*ReDimTarget
}

func (rs *ReDimStatement) statementNode()       {}
func (rs *ReDimStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReDimStatement) Pos() token.Position  { return rs.Token.Pos }
func (rs *ReDimStatement) String() string {
	prefix := "ReDim "
	if rs.Preserve {
		prefix += "Preserve "
	}
	parts := make([]string, len(rs.Targets))
	for i, t := range rs.Targets {
		parts[i] = t.String()
	}
	return prefix + strings.Join(parts, ", ")
}

// EraseStatement is `Erase name[, name2...]`.
type EraseStatement struct {
	Token token.Token
	Names []*Identifier
}

func (es *EraseStatement) statementNode()       {}
func (es *EraseStatement) TokenLiteral() string { return es.Token.Literal }
func (es *EraseStatement) Pos() token.Position  { return es.Token.Pos }
func (es *EraseStatement) String() string {
	parts := make([]string, len(es.Names))
	for i, n := range es.Names {
		parts[i] = n.String()
	}
	return "Erase " + strings.Join(parts, ", ")
}

// ConstDeclarator is one `name = expr` entry of a Const statement.
type ConstDeclarator struct {
	Name  *Identifier
	Value Expression
}

func (cd *ConstDeclarator) String() string { return cd.Name.String() + " = " + cd.Value.String() }

// ConstStatement is `[Public|Private] Const name = expr[, name2 = expr2...]`.
type ConstStatement struct {
	Token       token.Token
	Declarators []*ConstDeclarator
	Visibility  Visibility
}

func (cs *ConstStatement) statementNode()       {}
func (cs *ConstStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *ConstStatement) Pos() token.Position  { return cs.Token.Pos }
func (cs *ConstStatement) String() string {
	parts := make([]string, len(cs.Declarators))
	for i, d := range cs.Declarators {
		parts[i] = d.String()
	}
	return "Const " + strings.Join(parts, ", ")
}

// OptionExplicitStatement is the top-of-unit `Option Explicit` directive.
type OptionExplicitStatement struct {
	Token token.Token
}

func (oe *OptionExplicitStatement) statementNode()       {}
func (oe *OptionExplicitStatement) TokenLiteral() string { return oe.Token.Literal }
func (oe *OptionExplicitStatement) Pos() token.Position  { return oe.Token.Pos }
func (oe *OptionExplicitStatement) String() string       { return "Option Explicit" }
