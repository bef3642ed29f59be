package runtime

import (
	"testing"

	"github.com/dws-sandbox/basicscript/internal/values"
)

func TestDefineAndGetCaseInsensitive(t *testing.T) {
	s := NewScope(nil)
	s.Define("MyVar", values.IntegerValue{Value: 5})

	v, ok := s.Get("myvar")
	if !ok {
		t.Fatalf("expected to find MYVAR under a different case")
	}
	if v.(values.IntegerValue).Value != 5 {
		t.Errorf("Get(\"myvar\") = %v", v)
	}
}

func TestGetWalksToParent(t *testing.T) {
	global := NewScope(nil)
	global.Define("g", values.IntegerValue{Value: 1})
	local := NewScope(global)

	v, ok := local.Get("g")
	if !ok || v.(values.IntegerValue).Value != 1 {
		t.Errorf("expected local scope to see global binding, got %v, %v", v, ok)
	}
}

func TestGetLocalDoesNotWalk(t *testing.T) {
	global := NewScope(nil)
	global.Define("g", values.IntegerValue{Value: 1})
	local := NewScope(global)

	if _, ok := local.GetLocal("g"); ok {
		t.Errorf("expected GetLocal to not see parent bindings")
	}
}

func TestSetWritesExistingBindingInParent(t *testing.T) {
	global := NewScope(nil)
	global.Define("x", values.IntegerValue{Value: 1})
	local := NewScope(global)

	if err := local.Set("x", values.IntegerValue{Value: 2}); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	v, _ := global.Get("x")
	if v.(values.IntegerValue).Value != 2 {
		t.Errorf("expected global x to be updated to 2, got %v", v)
	}
}

func TestSetUndefinedReturnsErrUndefinedVariable(t *testing.T) {
	s := NewScope(nil)
	err := s.Set("nope", values.IntegerValue{Value: 1})
	if err == nil {
		t.Fatalf("expected an error")
	}
	if _, ok := err.(*ErrUndefinedVariable); !ok {
		t.Errorf("expected *ErrUndefinedVariable, got %T", err)
	}
}

func TestSetOrDefineDeclaresWhenMissing(t *testing.T) {
	s := NewScope(nil)
	if err := s.SetOrDefine("x", values.IntegerValue{Value: 7}); err != nil {
		t.Fatalf("SetOrDefine error: %v", err)
	}
	v, ok := s.Get("x")
	if !ok || v.(values.IntegerValue).Value != 7 {
		t.Errorf("expected x to be declared with value 7, got %v, %v", v, ok)
	}
}

func TestSetOnConstRaisesErrAssignToConst(t *testing.T) {
	s := NewScope(nil)
	s.DefineConst("Pi", values.DoubleValue{Value: 3.14})
	err := s.Set("Pi", values.DoubleValue{Value: 3})
	if err == nil {
		t.Fatalf("expected an error assigning to a constant")
	}
	if _, ok := err.(*ErrAssignToConst); !ok {
		t.Errorf("expected *ErrAssignToConst, got %T", err)
	}
}

func TestIsConstAndIsArrayFlags(t *testing.T) {
	s := NewScope(nil)
	s.DefineConst("K", values.IntegerValue{Value: 1})
	s.DefineArray("Arr", values.IntegerValue{Value: 0})

	if !s.IsConst("K") {
		t.Errorf("expected K to be const")
	}
	if s.IsConst("Arr") {
		t.Errorf("expected Arr to not be const")
	}
	if !s.IsArray("Arr") {
		t.Errorf("expected Arr to be an array binding")
	}
}

func TestDefineByRefAndIsByRefIsLocalOnly(t *testing.T) {
	global := NewScope(nil)
	local := NewScope(global)
	local.DefineByRef("n", values.IntegerValue{Value: 1})

	if !local.IsByRef("n") {
		t.Errorf("expected n to be by-ref in the local frame")
	}
	if global.IsByRef("n") {
		t.Errorf("expected IsByRef to not walk to parents")
	}
}

func TestRootReturnsGlobalFrame(t *testing.T) {
	global := NewScope(nil)
	mid := NewScope(global)
	inner := NewScope(mid)

	if inner.Root() != global {
		t.Errorf("expected Root() to return the global frame")
	}
}

func TestRangeVisitsOnlyLocalBindings(t *testing.T) {
	global := NewScope(nil)
	global.Define("g", values.IntegerValue{Value: 1})
	local := NewScope(global)
	local.Define("a", values.IntegerValue{Value: 2})
	local.Define("b", values.IntegerValue{Value: 3})

	seen := map[string]bool{}
	local.Range(func(name string, v values.Value) bool {
		seen[name] = true
		return true
	})
	if len(seen) != 2 || !seen["a"] || !seen["b"] {
		t.Errorf("expected Range to visit exactly a and b, got %v", seen)
	}
}
