package ast

import (
	"github.com/dws-sandbox/basicscript/internal/token"
)

// FieldDecl is a `[Public|Private] field` member declaration inside a Class
// body; fields default to Empty until assigned, per this dialect's instance
// field initialization rule.
type FieldDecl struct {
	Token      token.Token
	Name       *Identifier
	Visibility Visibility
}

func (fd *FieldDecl) statementNode()       {}
func (fd *FieldDecl) TokenLiteral() string { return fd.Token.Literal }
func (fd *FieldDecl) Pos() token.Position  { return fd.Token.Pos }
func (fd *FieldDecl) String() string       { return fd.Visibility.String() + " " + fd.Name.String() }

// ClassDecl is `Class Name ... End Class`. Members retains declaration
// order (fields, methods, property accessors interleaved as written),
// matching the class registry's ordered-member model; Fields/Methods/
// Properties are also indexed separately for cheap lookup by the parser's
// consumer.
type ClassDecl struct {
	Token      token.Token
	Name       *Identifier
	Members    []Statement // FieldDecl | *ProcedureDecl | *PropertyDecl | *ConstStatement, in source order
	Fields     []*FieldDecl
	Methods    []*ProcedureDecl
	Properties []*PropertyDecl
}

func (cd *ClassDecl) statementNode()       {}
func (cd *ClassDecl) TokenLiteral() string { return cd.Token.Literal }
func (cd *ClassDecl) Pos() token.Position  { return cd.Token.Pos }
func (cd *ClassDecl) String() string {
	out := "Class " + cd.Name.String() + "\n"
	for _, m := range cd.Members {
		out += m.String() + "\n"
	}
	out += "End Class"
	return out
}
