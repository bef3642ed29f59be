package langerr

import (
	"strings"
	"testing"

	"github.com/dws-sandbox/basicscript/internal/token"
)

func TestNewUsesDefaultDescription(t *testing.T) {
	e := New(DivisionByZero, token.Position{Line: 1, Column: 1})
	if e.Description != "Division by zero" {
		t.Errorf("Description = %q", e.Description)
	}
	if !e.Resumable {
		t.Errorf("expected DivisionByZero to be resumable")
	}
}

func TestNewfFormatsDescription(t *testing.T) {
	e := Newf(SubscriptOutOfRange, token.Position{}, "index %d out of range", 5)
	if e.Description != "index 5 out of range" {
		t.Errorf("Description = %q", e.Description)
	}
}

func TestErrorStringIncludesCode(t *testing.T) {
	e := New(TypeMismatch, token.Position{})
	if !strings.Contains(e.Error(), "13") {
		t.Errorf("Error() = %q, expected it to mention code 13", e.Error())
	}
}

func TestTimeoutIsNotResumable(t *testing.T) {
	e := NewTimeout(token.Position{Line: 3})
	if e.Resumable {
		t.Errorf("expected Timeout to not be resumable")
	}
	if e.Code != Timeout {
		t.Errorf("Code = %v, want Timeout", e.Code)
	}
}

func TestSyntaxIsNotResumable(t *testing.T) {
	e := NewSyntax("unexpected token", token.Position{Line: 2, Column: 4})
	if e.Resumable {
		t.Errorf("expected Syntax errors to not be resumable")
	}
}

func TestRaiseFallsBackToDefaultDescription(t *testing.T) {
	e := Raise(ObjectRequired, "MyScript", "", token.Position{})
	if e.Description != Description(ObjectRequired) {
		t.Errorf("Description = %q, want default", e.Description)
	}
	if e.Source != "MyScript" {
		t.Errorf("Source = %q", e.Source)
	}
}
