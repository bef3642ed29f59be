package procedures

import (
	"testing"

	"github.com/dws-sandbox/basicscript/internal/ast"
	"github.com/dws-sandbox/basicscript/internal/values"
)

func TestDefineAndLookupCaseInsensitive(t *testing.T) {
	r := NewRegistry()
	r.Define(&Descriptor{Name: "DoSomething", Kind: Sub})

	d, ok := r.Lookup("dosomething")
	if !ok {
		t.Fatalf("expected to find DoSomething under a different case")
	}
	if d.Kind != Sub {
		t.Errorf("Kind = %v, want Sub", d.Kind)
	}
}

func TestBuiltinDescriptorIsBuiltin(t *testing.T) {
	d := &Descriptor{Name: "Len", Kind: Function, Fn: func(args []values.Value, refs []*values.Value) (values.Value, error) {
		return values.IntegerValue{Value: 0}, nil
	}}
	if !d.IsBuiltin() {
		t.Errorf("expected a Descriptor with Fn set to report IsBuiltin")
	}
}

func TestUserProcedureIsNotBuiltin(t *testing.T) {
	d := &Descriptor{Name: "Greet", Kind: Sub, Body: &ast.BlockStatement{}}
	if d.IsBuiltin() {
		t.Errorf("expected a Descriptor with a Body to not report IsBuiltin")
	}
}

func TestPropertyAccessorsCoexistByKind(t *testing.T) {
	r := NewRegistry()
	r.Define(&Descriptor{Name: "Length", Kind: PropertyGet})
	r.Define(&Descriptor{Name: "Length", Kind: PropertyLet})

	if _, ok := r.LookupAccessor("Length", PropertyGet); !ok {
		t.Errorf("expected Property Get Length to be registered")
	}
	if _, ok := r.LookupAccessor("Length", PropertyLet); !ok {
		t.Errorf("expected Property Let Length to be registered")
	}
	if _, ok := r.LookupAccessor("Length", PropertySet); ok {
		t.Errorf("expected Property Set Length to not be registered")
	}
}

func TestRedefineOverwritesPreviousEntry(t *testing.T) {
	r := NewRegistry()
	r.Define(&Descriptor{Name: "F", Kind: Function, Body: &ast.BlockStatement{}})
	r.Define(&Descriptor{Name: "F", Kind: Function, Fn: func(args []values.Value, refs []*values.Value) (values.Value, error) {
		return nil, nil
	}})

	d, _ := r.Lookup("F")
	if !d.IsBuiltin() {
		t.Errorf("expected the later definition of F to win")
	}
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		Sub:          "Sub",
		Function:     "Function",
		PropertyGet:  "Property Get",
		PropertyLet:  "Property Let",
		PropertySet:  "Property Set",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", k, got, want)
		}
	}
}
