package values

import "testing"

func TestSingletonStrings(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Empty, ""},
		{Null, "Null"},
		{BooleanValue{true}, "True"},
		{BooleanValue{false}, "False"},
		{Nothing, "Nothing"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("%T.String() = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestTypeNames(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Empty, "Empty"},
		{Null, "Null"},
		{BooleanValue{true}, "Boolean"},
		{ByteValue{1}, "Byte"},
		{IntegerValue{1}, "Integer"},
		{LongValue{1}, "Long"},
		{SingleValue{1}, "Single"},
		{DoubleValue{1}, "Double"},
		{CurrencyValue{10000}, "Currency"},
		{StringValue{"x"}, "String"},
		{ErrorValue{5}, "Error"},
		{Nothing, "Object"},
	}
	for _, tt := range tests {
		if got := tt.v.Type(); got != tt.want {
			t.Errorf("%#v.Type() = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestCurrencyStringFormatsFourDecimals(t *testing.T) {
	got := CurrencyValue{Scaled: 123456}.String()
	if got != "12.3456" {
		t.Errorf("CurrencyValue{123456}.String() = %q, want %q", got, "12.3456")
	}
}

func TestIsNumeric(t *testing.T) {
	numeric := []Value{ByteValue{}, IntegerValue{}, LongValue{}, SingleValue{}, DoubleValue{}, CurrencyValue{}}
	for _, v := range numeric {
		if !IsNumeric(v) {
			t.Errorf("IsNumeric(%T) = false, want true", v)
		}
	}
	notNumeric := []Value{StringValue{}, BooleanValue{}, Empty, Null, Nothing}
	for _, v := range notNumeric {
		if IsNumeric(v) {
			t.Errorf("IsNumeric(%T) = true, want false", v)
		}
	}
}

func TestIsNullish(t *testing.T) {
	if !IsNullish(Empty) || !IsNullish(Null) {
		t.Errorf("expected Empty and Null to be nullish")
	}
	if IsNullish(IntegerValue{0}) || IsNullish(Nothing) {
		t.Errorf("expected Integer(0) and Nothing to not be nullish")
	}
}

func TestObjectValueIsNothing(t *testing.T) {
	if !Nothing.IsNothing() {
		t.Errorf("expected zero-value ObjectValue to be Nothing")
	}
	obj := ObjectValue{Instance: fakeObject{"Thing"}}
	if obj.IsNothing() {
		t.Errorf("expected non-nil Instance to not be Nothing")
	}
	if obj.String() != "Thing instance" {
		t.Errorf("obj.String() = %q", obj.String())
	}
}

type fakeObject struct{ name string }

func (f fakeObject) ClassName() string { return f.name }
func (f fakeObject) String() string    { return f.name + " instance" }
