package parser

import (
	"testing"

	"github.com/dws-sandbox/basicscript/internal/ast"
)

func TestIfStatementInlineVsBlock(t *testing.T) {
	t.Run("inline without End If", func(t *testing.T) {
		p := testParser("If x > 0 Then y = 1")
		program := p.ParseProgram()
		checkParserErrors(t, p)

		stmt, ok := program.Statements[0].(*ast.IfStatement)
		if !ok {
			t.Fatalf("expected *ast.IfStatement, got %T", program.Statements[0])
		}
		if !stmt.Inline {
			t.Errorf("expected Inline=true")
		}
		if len(stmt.Then.Statements) != 1 {
			t.Fatalf("expected 1 then-statement, got %d", len(stmt.Then.Statements))
		}
	})

	t.Run("inline with Else", func(t *testing.T) {
		p := testParser("If x > 0 Then y = 1 Else y = 2")
		program := p.ParseProgram()
		checkParserErrors(t, p)

		stmt := program.Statements[0].(*ast.IfStatement)
		if !stmt.Inline {
			t.Errorf("expected Inline=true")
		}
		if stmt.Else == nil || len(stmt.Else.Statements) != 1 {
			t.Fatalf("expected 1 else-statement")
		}
	})

	t.Run("block form with ElseIf and Else", func(t *testing.T) {
		input := `
If x > 0 Then
	y = 1
ElseIf x < 0 Then
	y = -1
Else
	y = 0
End If
`
		p := testParser(input)
		program := p.ParseProgram()
		checkParserErrors(t, p)

		stmt, ok := program.Statements[0].(*ast.IfStatement)
		if !ok {
			t.Fatalf("expected *ast.IfStatement, got %T", program.Statements[0])
		}
		if stmt.Inline {
			t.Errorf("expected Inline=false")
		}
		if len(stmt.ElseIfs) != 1 {
			t.Fatalf("expected 1 ElseIf clause, got %d", len(stmt.ElseIfs))
		}
		if stmt.Else == nil {
			t.Fatalf("expected an Else block")
		}
	})
}

func TestForStatementWithStep(t *testing.T) {
	input := `
For i = 1 To 10 Step 2
	x = i
Next
`
	p := testParser(input)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	stmt, ok := program.Statements[0].(*ast.ForStatement)
	if !ok {
		t.Fatalf("expected *ast.ForStatement, got %T", program.Statements[0])
	}
	testIdentifier(t, stmt.Variable, "i")
	testIntegerLiteral(t, stmt.Start, 1)
	testIntegerLiteral(t, stmt.End, 10)
	if stmt.Step == nil {
		t.Fatalf("expected a Step expression")
	}
	testIntegerLiteral(t, stmt.Step, 2)
	if len(stmt.Body.Statements) != 1 {
		t.Fatalf("expected 1 body statement, got %d", len(stmt.Body.Statements))
	}
}

func TestForEachStatement(t *testing.T) {
	input := `
For Each item In coll
	Process item
Next
`
	p := testParser(input)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	stmt, ok := program.Statements[0].(*ast.ForEachStatement)
	if !ok {
		t.Fatalf("expected *ast.ForEachStatement, got %T", program.Statements[0])
	}
	testIdentifier(t, stmt.Variable, "item")
	testIdentifier(t, stmt.Collection, "coll")
}

func TestDoLoopVariants(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantTest ast.DoLoopTest
	}{
		{"pre-while", "Do While x < 10\nx = x + 1\nLoop", ast.DoLoopPreWhile},
		{"pre-until", "Do Until x >= 10\nx = x + 1\nLoop", ast.DoLoopPreUntil},
		{"post-while", "Do\nx = x + 1\nLoop While x < 10", ast.DoLoopPostWhile},
		{"post-until", "Do\nx = x + 1\nLoop Until x >= 10", ast.DoLoopPostUntil},
		{"no test", "Do\nx = x + 1\nLoop", ast.DoLoopNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testParser(tt.input)
			program := p.ParseProgram()
			checkParserErrors(t, p)

			stmt, ok := program.Statements[0].(*ast.DoLoopStatement)
			if !ok {
				t.Fatalf("expected *ast.DoLoopStatement, got %T", program.Statements[0])
			}
			if stmt.Test != tt.wantTest {
				t.Errorf("stmt.Test = %v, want %v", stmt.Test, tt.wantTest)
			}
		})
	}
}

func TestWhileWendStatement(t *testing.T) {
	p := testParser("While x < 10\nx = x + 1\nWend")
	program := p.ParseProgram()
	checkParserErrors(t, p)

	stmt, ok := program.Statements[0].(*ast.WhileWendStatement)
	if !ok {
		t.Fatalf("expected *ast.WhileWendStatement, got %T", program.Statements[0])
	}
	if len(stmt.Body.Statements) != 1 {
		t.Fatalf("expected 1 body statement, got %d", len(stmt.Body.Statements))
	}
}

func TestSelectCaseStatement(t *testing.T) {
	input := `
Select Case x
Case 1, 2
	y = "low"
Case Is > 10
	y = "high"
Case Else
	y = "mid"
End Select
`
	p := testParser(input)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	stmt, ok := program.Statements[0].(*ast.SelectCaseStatement)
	if !ok {
		t.Fatalf("expected *ast.SelectCaseStatement, got %T", program.Statements[0])
	}
	if len(stmt.Cases) != 3 {
		t.Fatalf("expected 3 case clauses, got %d", len(stmt.Cases))
	}
	if len(stmt.Cases[0].Values) != 2 {
		t.Errorf("expected 2 values in first case, got %d", len(stmt.Cases[0].Values))
	}
	if stmt.Cases[1].IsOp != ">" {
		t.Errorf("expected Is operator '>', got %q", stmt.Cases[1].IsOp)
	}
	if !stmt.Cases[2].IsElse {
		t.Errorf("expected third clause to be Case Else")
	}
}

func TestWithStatementLeadingDotMember(t *testing.T) {
	input := `
With obj
	.Name = "x"
End With
`
	p := testParser(input)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	stmt, ok := program.Statements[0].(*ast.WithStatement)
	if !ok {
		t.Fatalf("expected *ast.WithStatement, got %T", program.Statements[0])
	}
	testIdentifier(t, stmt.Target, "obj")
	if len(stmt.Body.Statements) != 1 {
		t.Fatalf("expected 1 body statement, got %d", len(stmt.Body.Statements))
	}
	assign, ok := stmt.Body.Statements[0].(*ast.AssignStatement)
	if !ok {
		t.Fatalf("expected *ast.AssignStatement, got %T", stmt.Body.Statements[0])
	}
	member, ok := assign.Target.(*ast.MemberExpression)
	if !ok {
		t.Fatalf("expected *ast.MemberExpression, got %T", assign.Target)
	}
	if member.Object != nil {
		t.Errorf("expected a leading-dot member with nil Object")
	}
}

func TestOnErrorAndResumeAndGoto(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, stmt ast.Statement)
	}{
		{
			name:  "On Error Resume Next",
			input: "On Error Resume Next",
			check: func(t *testing.T, stmt ast.Statement) {
				oe := stmt.(*ast.OnErrorStatement)
				if oe.Mode != ast.OnErrorResumeNext {
					t.Errorf("expected OnErrorResumeNext, got %v", oe.Mode)
				}
			},
		},
		{
			name:  "On Error Goto 0",
			input: "On Error Goto 0",
			check: func(t *testing.T, stmt ast.Statement) {
				oe := stmt.(*ast.OnErrorStatement)
				if oe.Mode != ast.OnErrorGotoZero {
					t.Errorf("expected OnErrorGotoZero, got %v", oe.Mode)
				}
			},
		},
		{
			name:  "On Error Goto label",
			input: "On Error Goto handler",
			check: func(t *testing.T, stmt ast.Statement) {
				oe := stmt.(*ast.OnErrorStatement)
				if oe.Mode != ast.OnErrorGotoLabel || oe.Label != "handler" {
					t.Errorf("expected Goto label 'handler', got mode=%v label=%q", oe.Mode, oe.Label)
				}
			},
		},
		{
			name:  "Resume Next",
			input: "Resume Next",
			check: func(t *testing.T, stmt ast.Statement) {
				rs := stmt.(*ast.ResumeStatement)
				if !rs.Next {
					t.Errorf("expected Next=true")
				}
			},
		},
		{
			name:  "bare Resume",
			input: "Resume",
			check: func(t *testing.T, stmt ast.Statement) {
				rs := stmt.(*ast.ResumeStatement)
				if rs.Next {
					t.Errorf("expected Next=false")
				}
			},
		},
		{
			name:  "Goto label",
			input: "Goto cleanup",
			check: func(t *testing.T, stmt ast.Statement) {
				gs := stmt.(*ast.GotoStatement)
				if gs.Label != "cleanup" {
					t.Errorf("expected label 'cleanup', got %q", gs.Label)
				}
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

func TestLabelStatement(t *testing.T) {
	input := "cleanup:\nx = 1"
	p := testParser(input)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	if len(program.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(program.Statements))
	}
	label, ok := program.Statements[0].(*ast.LabelStatement)
	if !ok {
		t.Fatalf("expected *ast.LabelStatement, got %T", program.Statements[0])
	}
	if label.Name != "cleanup" {
		t.Errorf("label.Name = %q, want %q", label.Name, "cleanup")
	}
}

func TestExitStatementKinds(t *testing.T) {
	tests := []struct {
		input string
		want  ast.ExitKind
	}{
		{"Exit Sub", ast.ExitSub},
		{"Exit Function", ast.ExitFunction},
		{"Exit Property", ast.ExitProperty},
		{"Exit Do", ast.ExitDo},
		{"Exit For", ast.ExitFor},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := testParser(tt.input)
			program := p.ParseProgram()
			checkParserErrors(t, p)
			es, ok := program.Statements[0].(*ast.ExitStatement)
			if !ok {
				t.Fatalf("expected *ast.ExitStatement, got %T", program.Statements[0])
			}
			if es.Kind != tt.want {
				t.Errorf("es.Kind = %v, want %v", es.Kind, tt.want)
			}
		})
	}
}
