package objects

import (
	"testing"

	"github.com/dws-sandbox/basicscript/internal/values"
)

func TestNewInstanceZeroInitializesFields(t *testing.T) {
	cd := NewClassDescriptor(testClassDecl())
	inst := New(cd)

	v, ok := inst.GetField("X")
	if !ok {
		t.Fatalf("expected field X to exist")
	}
	if v != values.Empty {
		t.Errorf("expected field X to be Empty, got %v", v)
	}
}

func TestSetFieldAndGetField(t *testing.T) {
	cd := NewClassDescriptor(testClassDecl())
	inst := New(cd)
	inst.SetField("x", values.IntegerValue{Value: 5})

	v, ok := inst.GetField("X")
	if !ok || v.(values.IntegerValue).Value != 5 {
		t.Errorf("GetField(X) = %v, %v, want 5, true", v, ok)
	}
}

func TestTwoInstancesHaveDistinctIdentity(t *testing.T) {
	cd := NewClassDescriptor(testClassDecl())
	a := New(cd)
	b := New(cd)
	if a == b {
		t.Errorf("expected two New() calls to produce distinct instances")
	}
	if a.ID == b.ID {
		t.Errorf("expected distinct UUIDs")
	}
}

func TestInstanceSatisfiesValuesObject(t *testing.T) {
	var _ values.Object = (*Instance)(nil)
}

func TestAsValueWrapsInstanceAsObjectValue(t *testing.T) {
	cd := NewClassDescriptor(testClassDecl())
	inst := New(cd)
	ov := inst.AsValue()
	if ov.IsNothing() {
		t.Errorf("expected a live instance to not be Nothing")
	}
	if ov.Instance.ClassName() != "Point" {
		t.Errorf("ClassName() = %q, want Point", ov.Instance.ClassName())
	}
}
