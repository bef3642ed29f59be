package ast

import (
	"strings"

	"github.com/dws-sandbox/basicscript/internal/token"
)

// Parameter is one entry of a Sub/Function/Property parameter list.
// ByRef defaults to true at the parser level (this dialect's parameters
// are by-reference unless marked ByVal, the opposite default from a
// Pascal-family language).
type Parameter struct {
	Name         *Identifier
	ByRef        bool
	IsParamArray bool
	Default      Expression // optional default-value expression, nil if none
}

func (p *Parameter) String() string {
	prefix := "ByVal "
	if p.ByRef {
		prefix = "ByRef "
	}
	if p.IsParamArray {
		prefix = "ParamArray "
	}
	s := prefix + p.Name.String()
	if p.Default != nil {
		s += " = " + p.Default.String()
	}
	return s
}

// ProcedureKind distinguishes Sub from Function declarations.
type ProcedureKind int

const (
	ProcSub ProcedureKind = iota
	ProcFunction
)

// ProcedureDecl is a `[Public|Private] Sub|Function Name(params) ... End
// Sub|Function` declaration, at top level or inside a Class body.
type ProcedureDecl struct {
	Token      token.Token
	Name       *Identifier
	Kind       ProcedureKind
	Parameters []*Parameter
	Body       *BlockStatement
	Visibility Visibility
}

func (pd *ProcedureDecl) statementNode()       {}
func (pd *ProcedureDecl) TokenLiteral() string { return pd.Token.Literal }
func (pd *ProcedureDecl) Pos() token.Position  { return pd.Token.Pos }
func (pd *ProcedureDecl) String() string {
	kw := "Sub"
	if pd.Kind == ProcFunction {
		kw = "Function"
	}
	params := make([]string, len(pd.Parameters))
	for i, p := range pd.Parameters {
		params[i] = p.String()
	}
	return kw + " " + pd.Name.String() + "(" + strings.Join(params, ", ") + ")\n" +
		pd.Body.String() + "End " + kw
}

// PropertyAccessorKind identifies Get/Let/Set.
type PropertyAccessorKind int

const (
	PropertyGet PropertyAccessorKind = iota
	PropertyLet
	PropertySet
)

func (k PropertyAccessorKind) String() string {
	switch k {
	case PropertyGet:
		return "Get"
	case PropertyLet:
		return "Let"
	default:
		return "Set"
	}
}

// PropertyDecl is a `Property Get|Let|Set Name(params) ... End Property`
// accessor declaration inside a Class body.
type PropertyDecl struct {
	Token      token.Token
	Name       *Identifier
	Accessor   PropertyAccessorKind
	Parameters []*Parameter
	Body       *BlockStatement
	Visibility Visibility
}

func (pd *PropertyDecl) statementNode()       {}
func (pd *PropertyDecl) TokenLiteral() string { return pd.Token.Literal }
func (pd *PropertyDecl) Pos() token.Position  { return pd.Token.Pos }
func (pd *PropertyDecl) String() string {
	params := make([]string, len(pd.Parameters))
	for i, p := range pd.Parameters {
		params[i] = p.String()
	}
	return "Property " + pd.Accessor.String() + " " + pd.Name.String() + "(" + strings.Join(params, ", ") + ")\n" +
		pd.Body.String() + "End Property"
}
