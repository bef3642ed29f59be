package parser

import (
	"testing"

	"github.com/dws-sandbox/basicscript/internal/ast"
	"github.com/dws-sandbox/basicscript/internal/lexer"
)

func testParser(input string) *Parser {
	l := lexer.New(input)
	return New(l)
}

func checkParserErrors(t *testing.T, p *Parser) {
	t.Helper()
	errors := p.Errors()
	if len(errors) == 0 {
		return
	}
	t.Errorf("parser has %d errors", len(errors))
	for _, err := range errors {
		t.Errorf("parser error: %s", err.Error())
	}
	t.FailNow()
}

func testIntegerLiteral(t *testing.T, expr ast.Expression, want int64) bool {
	t.Helper()
	il, ok := expr.(*ast.IntegerLiteral)
	if !ok {
		t.Errorf("expr is not *ast.IntegerLiteral. got=%T", expr)
		return false
	}
	if il.Value != want {
		t.Errorf("il.Value = %d, want %d", il.Value, want)
		return false
	}
	return true
}

func testIdentifier(t *testing.T, expr ast.Expression, want string) bool {
	t.Helper()
	id, ok := expr.(*ast.Identifier)
	if !ok {
		t.Errorf("expr is not *ast.Identifier. got=%T", expr)
		return false
	}
	if id.Value != want {
		t.Errorf("id.Value = %q, want %q", id.Value, want)
		return false
	}
	return true
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a & b & c", "((a & b) & c)"},
		{"a Or b And c", "(a or (b and c))"},
		{"a And b = c", "(a and (b = c))"},
		{"1 + 2 = 3", "((1 + 2) = 3)"},
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"10 \\ 3 Mod 2", "(10 \\ (3 mod 2))"},
		{"2 ^ 3 ^ 2", "(2 ^ (3 ^ 2))"},
		{"-x ^ 2", "((-x) ^ 2)"},
		{"y * -x ^ 2", "(y * ((-x) ^ 2))"},
		{"Not a And b", "((not a) and b)"},
		{"Not (a And b)", "(not ((a and b)))"},
		{"-1 + 2", "((-1) + 2)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := testParser(tt.input)
			program := p.ParseProgram()
			checkParserErrors(t, p)

			if len(program.Statements) != 1 {
				t.Fatalf("expected 1 statement, got %d", len(program.Statements))
			}
			stmt, ok := program.Statements[0].(*ast.ExpressionStatement)
			if !ok {
				t.Fatalf("statement is not *ast.ExpressionStatement. got=%T", program.Statements[0])
			}
			if got := stmt.Expression.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCallOrIndexAmbiguityParsesUniformly(t *testing.T) {
	input := "x = f(1, 2)"
	p := testParser(input)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	stmt, ok := program.Statements[0].(*ast.AssignStatement)
	if !ok {
		t.Fatalf("statement is not *ast.AssignStatement. got=%T", program.Statements[0])
	}
	call, ok := stmt.Value.(*ast.CallOrIndexExpression)
	if !ok {
		t.Fatalf("value is not *ast.CallOrIndexExpression. got=%T", stmt.Value)
	}
	if !testIdentifier(t, call.Callee, "f") {
		return
	}
	if len(call.Arguments) != 2 {
		t.Fatalf("expected 2 arguments, got %d", len(call.Arguments))
	}
}

func TestAssignmentVsCallWithoutParens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, stmt ast.Statement)
	}{
		{
			name:  "assignment",
			input: "x = 5",
			check: func(t *testing.T, stmt ast.Statement) {
				as, ok := stmt.(*ast.AssignStatement)
				if !ok {
					t.Fatalf("expected *ast.AssignStatement, got %T", stmt)
				}
				testIdentifier(t, as.Target, "x")
				testIntegerLiteral(t, as.Value, 5)
			},
		},
		{
			name:  "call without parentheses",
			input: "MsgBox \"hi\", 1",
			check: func(t *testing.T, stmt ast.Statement) {
				cs, ok := stmt.(*ast.CallStatement)
				if !ok {
					t.Fatalf("expected *ast.CallStatement, got %T", stmt)
				}
				testIdentifier(t, cs.Callee, "MsgBox")
				if len(cs.Arguments) != 2 {
					t.Fatalf("expected 2 arguments, got %d", len(cs.Arguments))
				}
			},
		},
		{
			name:  "bare expression statement",
			input: "x",
			check: func(t *testing.T, stmt ast.Statement) {
				es, ok := stmt.(*ast.ExpressionStatement)
				if !ok {
					t.Fatalf("expected *ast.ExpressionStatement, got %T", stmt)
				}
				testIdentifier(t, es.Expression, "x")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testParser(tt.input)
			program := p.ParseProgram()
			checkParserErrors(t, p)
			if len(program.Statements) != 1 {
				t.Fatalf("expected 1 statement, got %d", len(program.Statements))
			}
			tt.check(t, program.Statements[0])
		})
	}
}
