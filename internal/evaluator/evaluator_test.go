package evaluator

import (
	"testing"

	"github.com/dws-sandbox/basicscript/internal/ast"
	"github.com/dws-sandbox/basicscript/internal/lexer"
	"github.com/dws-sandbox/basicscript/internal/parser"
	"github.com/dws-sandbox/basicscript/internal/values"
)

// mustRun parses src, runs it against a fresh Interpreter, and fails the
// test on any parse or run-time error.
func mustRun(t *testing.T, src string) *Interpreter {
	t.Helper()
	p := parser.New(lexer.New(src))
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("parse errors: %v", errs)
	}
	in, ev := NewInterpreter()
	if err := ev.Run(program); err != nil {
		t.Fatalf("run error: %v", err)
	}
	return in
}

func parseOne(t *testing.T, src string) ast.Expression {
	t.Helper()
	p := parser.New(lexer.New("x = " + src))
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("parse errors: %v", errs)
	}
	return program.Statements[0].(*ast.AssignStatement).Value
}

func evalExpr(t *testing.T, src string) values.Value {
	t.Helper()
	_, ev := NewInterpreter()
	v, err := ev.Eval(parseOne(t, src))
	if err != nil {
		t.Fatalf("eval %q: %v", src, err)
	}
	return v
}

func TestArithmeticPromotion(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1 + 2", "3"},
		{"1.5 + 2", "3.5"},
		{"10 / 4", "2.5"},
		{"10 \\ 4", "2"},
		{"10 Mod 3", "1"},
		{"2 ^ 10", "1024"},
	}
	for _, tt := range tests {
		v := evalExpr(t, tt.src)
		if v.String() != tt.want {
			t.Errorf("%s = %s, want %s", tt.src, v.String(), tt.want)
		}
	}
}

func TestConcatVsAdd(t *testing.T) {
	v := evalExpr(t, `"5" & 3`)
	if v.(values.StringValue).Value != "53" {
		t.Errorf(`"5" & 3 = %v, want "53"`, v)
	}
	v = evalExpr(t, `"5" + "3"`)
	if v.String() != "8" {
		t.Errorf(`"5" + "3" = %v, want 8 (both strings add numerically)`, v)
	}
	v = evalExpr(t, `"5" + 3`)
	if v.(values.StringValue).Value != "53" {
		t.Errorf(`"5" + 3 = %v, want "53" (mixed String/non-Null concatenates)`, v)
	}
}

func TestNullPropagation(t *testing.T) {
	for _, src := range []string{"Null + 1", "1 = Null", "1 < Null"} {
		v := evalExpr(t, src)
		if _, ok := v.(values.NullValue); !ok {
			t.Errorf("%s = %v, want Null", src, v)
		}
	}
	// & never propagates Null; it treats it as empty string.
	v := evalExpr(t, `Null & "x"`)
	if v.(values.StringValue).Value != "x" {
		t.Errorf(`Null & "x" = %v, want "x"`, v)
	}
}

func TestLogicalOperatorsAreBooleanOnly(t *testing.T) {
	v := evalExpr(t, "True And False")
	if v.(values.BooleanValue).Value != false {
		t.Errorf("True And False = %v", v)
	}
	v = evalExpr(t, "True Or False")
	if v.(values.BooleanValue).Value != true {
		t.Errorf("True Or False = %v", v)
	}
}

func TestVariableAssignmentAndLookup(t *testing.T) {
	in := mustRun(t, `
x = 10
y = x + 5
`)
	y, ok := in.Global.Get("y")
	if !ok {
		t.Fatal("y not defined")
	}
	if y.String() != "15" {
		t.Errorf("y = %v, want 15", y)
	}
}

func TestOptionExplicitRejectsUndeclaredAssignment(t *testing.T) {
	p := parser.New(lexer.New(`
Option Explicit
x = 1
`))
	program := p.ParseProgram()
	_, ev := NewInterpreter()
	err := ev.Run(program)
	if err == nil {
		t.Fatal("expected VariableNotDefined error under Option Explicit")
	}
}
