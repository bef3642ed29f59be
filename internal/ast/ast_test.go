package ast

import (
	"testing"

	"github.com/dws-sandbox/basicscript/internal/token"
)

func ident(name string) *Identifier {
	return &Identifier{Token: token.Token{Type: token.IDENT, Literal: name}, Value: name}
}

func TestProgramString(t *testing.T) {
	program := &Program{
		Statements: []Statement{
			&AssignStatement{
				Token:  token.Token{Type: token.EQ, Literal: "="},
				Target: ident("x"),
				Value:  &IntegerLiteral{Token: token.Token{Type: token.INT, Literal: "5"}, Value: 5},
			},
		},
	}
	want := "x = 5\n"
	if got := program.String(); got != want {
		t.Errorf("Program.String() = %q, want %q", got, want)
	}
}

func TestBinaryExpressionString(t *testing.T) {
	be := &BinaryExpression{
		Left:     ident("a"),
		Operator: "+",
		Right:    ident("b"),
	}
	want := "(a + b)"
	if got := be.String(); got != want {
		t.Errorf("BinaryExpression.String() = %q, want %q", got, want)
	}
}

func TestUnaryExpressionStringWordOperator(t *testing.T) {
	ue := &UnaryExpression{Operator: "not", Right: ident("flag")}
	want := "(not flag)"
	if got := ue.String(); got != want {
		t.Errorf("UnaryExpression.String() = %q, want %q", got, want)
	}
}

func TestUnaryExpressionStringSymbolOperator(t *testing.T) {
	ue := &UnaryExpression{Operator: "-", Right: ident("x")}
	want := "(-x)"
	if got := ue.String(); got != want {
		t.Errorf("UnaryExpression.String() = %q, want %q", got, want)
	}
}

func TestMemberExpressionStringWithAndWithoutObject(t *testing.T) {
	withObj := &MemberExpression{Object: ident("obj"), Property: ident("Name")}
	if got := withObj.String(); got != "obj.Name" {
		t.Errorf("got %q, want %q", got, "obj.Name")
	}
	leadingDot := &MemberExpression{Property: ident("Name")}
	if got := leadingDot.String(); got != ".Name" {
		t.Errorf("got %q, want %q", got, ".Name")
	}
}

func TestCallOrIndexExpressionString(t *testing.T) {
	ce := &CallOrIndexExpression{
		Callee: ident("f"),
		Arguments: []Expression{
			&IntegerLiteral{Token: token.Token{Literal: "1"}, Value: 1},
			&IntegerLiteral{Token: token.Token{Literal: "2"}, Value: 2},
		},
	}
	want := "f(1, 2)"
	if got := ce.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDimStatementStringWithArrayDims(t *testing.T) {
	ds := &DimStatement{
		Token: token.Token{Literal: "dim"},
		Declarators: []*Declarator{
			{Name: ident("a")},
			{Name: ident("m"), Dims: []Expression{
				&IntegerLiteral{Token: token.Token{Literal: "2"}, Value: 2},
				&IntegerLiteral{Token: token.Token{Literal: "3"}, Value: 3},
			}},
		},
	}
	want := "Dim a, m(2, 3)"
	if got := ds.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestIfStatementInlineString(t *testing.T) {
	is := &IfStatement{
		Token:     token.Token{Literal: "if"},
		Condition: ident("cond"),
		Inline:    true,
		Then: &BlockStatement{Statements: []Statement{
			&ExpressionStatement{Expression: ident("doThing")},
		}},
	}
	want := "If cond Then doThing"
	if got := is.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExitStatementString(t *testing.T) {
	es := &ExitStatement{Token: token.Token{Literal: "exit"}, Kind: ExitFor}
	if got := es.String(); got != "Exit For" {
		t.Errorf("got %q, want %q", got, "Exit For")
	}
}

func TestOnErrorStatementStringVariants(t *testing.T) {
	tests := []struct {
		stmt *OnErrorStatement
		want string
	}{
		{&OnErrorStatement{Mode: OnErrorResumeNext}, "On Error Resume Next"},
		{&OnErrorStatement{Mode: OnErrorGotoZero}, "On Error Goto 0"},
		{&OnErrorStatement{Mode: OnErrorGotoLabel, Label: "handler"}, "On Error Goto handler"},
	}
	for _, tt := range tests {
		if got := tt.stmt.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestClassDeclString(t *testing.T) {
	cd := &ClassDecl{
		Token: token.Token{Literal: "class"},
		Name:  ident("C"),
		Members: []Statement{
			&FieldDecl{Name: ident("v"), Visibility: VisibilityPublic},
		},
	}
	want := "Class C\nPublic v\nEnd Class"
	if got := cd.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
