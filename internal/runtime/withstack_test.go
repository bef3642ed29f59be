package runtime

import (
	"testing"

	"github.com/dws-sandbox/basicscript/internal/values"
)

func TestWithStackPushTopPop(t *testing.T) {
	var w WithStack
	if _, ok := w.Top(); ok {
		t.Fatalf("expected empty stack to have no top")
	}
	w.Push(values.IntegerValue{Value: 1})
	w.Push(values.IntegerValue{Value: 2})
	if w.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", w.Depth())
	}
	top, ok := w.Top()
	if !ok || top.(values.IntegerValue).Value != 2 {
		t.Errorf("Top() = %v, %v, want 2, true", top, ok)
	}
	w.Pop()
	top, ok = w.Top()
	if !ok || top.(values.IntegerValue).Value != 1 {
		t.Errorf("Top() after Pop = %v, %v, want 1, true", top, ok)
	}
}

func TestCallStackPushCurrentPop(t *testing.T) {
	var c CallStack
	if c.Current() != "" {
		t.Errorf("expected empty call stack to report an empty current frame")
	}
	c.Push("Outer")
	c.Push("Inner")
	if c.Current() != "Inner" {
		t.Errorf("Current() = %q, want Inner", c.Current())
	}
	if c.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", c.Depth())
	}
	c.Pop()
	if c.Current() != "Outer" {
		t.Errorf("Current() after Pop = %q, want Outer", c.Current())
	}
}
