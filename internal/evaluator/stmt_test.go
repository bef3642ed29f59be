package evaluator

import (
	"testing"

	"github.com/dws-sandbox/basicscript/internal/values"
)

func TestIfElseIf(t *testing.T) {
	in := mustRun(t, `
n = 2
If n = 1 Then
  r = "one"
ElseIf n = 2 Then
  r = "two"
Else
  r = "other"
End If
`)
	v, _ := in.Global.Get("r")
	if v.(values.StringValue).Value != "two" {
		t.Errorf("r = %v, want two", v)
	}
}

func TestForLoopAccumulates(t *testing.T) {
	in := mustRun(t, `
total = 0
For i = 1 To 5
  total = total + i
Next
`)
	v, _ := in.Global.Get("total")
	if v.String() != "15" {
		t.Errorf("total = %v, want 15", v)
	}
}

func TestForStepNegative(t *testing.T) {
	in := mustRun(t, `
n = 0
For i = 10 To 1 Step -3
  n = n + 1
Next
`)
	v, _ := in.Global.Get("n")
	if v.String() != "4" {
		t.Errorf("n = %v, want 4 (10, 7, 4, 1)", v)
	}
}

func TestExitForStopsLoopEarly(t *testing.T) {
	in := mustRun(t, `
found = 0
For i = 1 To 10
  If i = 3 Then
    found = i
    Exit For
  End If
Next
`)
	v, _ := in.Global.Get("found")
	if v.String() != "3" {
		t.Errorf("found = %v, want 3", v)
	}
}

func TestDoLoopPreWhile(t *testing.T) {
	in := mustRun(t, `
n = 0
Do While n < 3
  n = n + 1
Loop
`)
	v, _ := in.Global.Get("n")
	if v.String() != "3" {
		t.Errorf("n = %v, want 3", v)
	}
}

func TestDoLoopPostUntilRunsAtLeastOnce(t *testing.T) {
	in := mustRun(t, `
n = 0
Do
  n = n + 1
Loop Until n >= 1
`)
	v, _ := in.Global.Get("n")
	if v.String() != "1" {
		t.Errorf("n = %v, want 1", v)
	}
}

func TestSelectCaseDisjunctionAndIs(t *testing.T) {
	in := mustRun(t, `
n = 7
Select Case n
  Case 1, 2, 3
    r = "low"
  Case Is > 5
    r = "high"
  Case Else
    r = "mid"
End Select
`)
	v, _ := in.Global.Get("r")
	if v.(values.StringValue).Value != "high" {
		t.Errorf("r = %v, want high", v)
	}
}

func TestGotoSkipsToLabel(t *testing.T) {
	in := mustRun(t, `
n = 1
Goto skip
n = 99
skip:
n = n + 1
`)
	v, _ := in.Global.Get("n")
	if v.String() != "2" {
		t.Errorf("n = %v, want 2 (the Goto'd-over assignment must not run)", v)
	}
}

func TestOnErrorResumeNextContinuesPastFailingStatement(t *testing.T) {
	in := mustRun(t, `
On Error Resume Next
x = 1 / 0
y = 5
`)
	v, ok := in.Global.Get("y")
	if !ok || v.String() != "5" {
		t.Errorf("y = %v, ok=%v, want 5 (execution continues after a resumable error)", v, ok)
	}
	if in.Err.Number != 11 {
		t.Errorf("Err.Number = %d, want 11 (division by zero)", in.Err.Number)
	}
}

func TestOnErrorGotoLabelJumpsToHandler(t *testing.T) {
	// Resume Next inside the handler resumes at the statement right after
	// the one that faulted, so y is still reached once the handler runs.
	in := mustRun(t, `
On Error Goto handler
x = 1 / 0
y = "reached"
Goto after
handler:
caught = Err.Number
Resume Next
after:
`)
	v, ok := in.Global.Get("caught")
	if !ok || v.String() != "11" {
		t.Errorf("caught = %v, ok=%v, want 11", v, ok)
	}
	y, ok := in.Global.Get("y")
	if !ok || y.(values.StringValue).Value != "reached" {
		t.Errorf("y = %v, ok=%v, want \"reached\"", y, ok)
	}
}

func TestErrRaiseAndClear(t *testing.T) {
	in := mustRun(t, `
On Error Resume Next
Err.Raise 5, "test", "boom"
code = Err.Number
msg = Err.Description
Err.Clear
afterClear = Err.Number
`)
	code, _ := in.Global.Get("code")
	if code.String() != "5" {
		t.Errorf("code = %v, want 5", code)
	}
	msg, _ := in.Global.Get("msg")
	if msg.(values.StringValue).Value != "boom" {
		t.Errorf("msg = %v, want boom", msg)
	}
	after, _ := in.Global.Get("afterClear")
	if after.String() != "0" {
		t.Errorf("afterClear = %v, want 0", after)
	}
}

func TestForEachOverArray(t *testing.T) {
	in := mustRun(t, `
Dim a(2)
a(0) = 1
a(1) = 2
a(2) = 3
total = 0
For Each x In a
  total = total + x
Next
`)
	v, _ := in.Global.Get("total")
	if v.String() != "6" {
		t.Errorf("total = %v, want 6", v)
	}
}

func TestReDimPreserveKeepsOverlap(t *testing.T) {
	in := mustRun(t, `
Dim a(2)
a(0) = 1
a(1) = 2
a(2) = 3
ReDim Preserve a(4)
a(4) = 5
first = a(0)
last = a(4)
`)
	first, _ := in.Global.Get("first")
	if first.String() != "1" {
		t.Errorf("first = %v, want 1", first)
	}
	last, _ := in.Global.Get("last")
	if last.String() != "5" {
		t.Errorf("last = %v, want 5", last)
	}
}
