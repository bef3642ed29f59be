// Package hostbridge implements spec.md §6's value bridge: the
// bidirectional mapping between host (Go) scalars/collections/callables
// and the interpreter's Variant values, used by pkg/script's
// getVariable/setVariable, registerFunction, and addObject.
//
// No direct teacher analogue exists for this package (DWScript's FFI
// bridge lives in the untracked non-test sources of pkg/dwscript); its
// shape is grounded on how pkg/dwscript/ffi_*_test.go exercises
// RegisterFunction against arbitrary Go function signatures and
// arrays/maps, using the same stdlib reflect approach those tests imply.
package hostbridge

import (
	"fmt"
	"reflect"
	"time"

	"github.com/dws-sandbox/basicscript/internal/array"
	"github.com/dws-sandbox/basicscript/internal/values"
)

// ToVariant converts a host Go value to a Variant, per spec.md §6:
// nil/untyped-nil -> Empty, bool -> Boolean, integers in 32-bit range ->
// Long (else Double), floats -> Double, string -> String, time.Time ->
// Date, slices/arrays -> a zero-based one-dimensional Array, maps/structs
// -> an Object backed by reflection, funcs -> an Object whose default
// method invokes the Go callable.
func ToVariant(v any) (values.Value, error) {
	if v == nil {
		return values.Empty, nil
	}
	switch t := v.(type) {
	case values.Value:
		return t, nil
	case bool:
		return values.BooleanValue{Value: t}, nil
	case string:
		return values.StringValue{Value: t}, nil
	case time.Time:
		return values.DateValue{Value: t}, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n >= -2147483648 && n <= 2147483647 {
			return values.LongValue{Value: int32(n)}, nil
		}
		return values.DoubleValue{Value: float64(n)}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n := rv.Uint()
		if n <= 2147483647 {
			return values.LongValue{Value: int32(n)}, nil
		}
		return values.DoubleValue{Value: float64(n)}, nil
	case reflect.Float32, reflect.Float64:
		return values.DoubleValue{Value: rv.Float()}, nil
	case reflect.Slice, reflect.Array:
		return sliceToVariant(rv)
	case reflect.Func:
		return values.ObjectValue{Instance: newHostFunc(rv)}, nil
	case reflect.Map, reflect.Struct:
		return values.ObjectValue{Instance: newHostObject(rv)}, nil
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return values.Nothing, nil
		}
		return ToVariant(rv.Elem().Interface())
	default:
		return nil, fmt.Errorf("hostbridge: cannot convert %T to a variant", v)
	}
}

func sliceToVariant(rv reflect.Value) (values.Value, error) {
	n := rv.Len()
	d := array.New(n)
	for i := 0; i < n; i++ {
		elemVal, err := ToVariant(rv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		if err := d.Set(elemVal, i); err != nil {
			return nil, err
		}
	}
	return values.ArrayValue{Array: d}, nil
}

// elementGetter is the subset of internal/array.Dynamic this package walks
// without importing its concrete type everywhere array elements are read.
type elementGetter interface {
	Get(indices ...int) (values.Value, error)
}

// FromVariant converts a Variant back to a plain Go value: the inverse of
// ToVariant, used when a script value crosses back out to the host (e.g.
// getVariable, or a callback argument reaching a registered Go function).
func FromVariant(v values.Value) (any, error) {
	switch t := v.(type) {
	case values.EmptyValue:
		return nil, nil
	case values.NullValue:
		return nil, nil
	case values.BooleanValue:
		return t.Value, nil
	case values.ByteValue:
		return t.Value, nil
	case values.IntegerValue:
		return t.Value, nil
	case values.LongValue:
		return t.Value, nil
	case values.SingleValue:
		return t.Value, nil
	case values.DoubleValue:
		return t.Value, nil
	case values.CurrencyValue:
		return float64(t.Scaled) / values.CurrencyScale, nil
	case values.StringValue:
		return t.Value, nil
	case values.DateValue:
		return t.Value, nil
	case values.ArrayValue:
		return arrayToSlice(t)
	case values.ObjectValue:
		if t.IsNothing() {
			return nil, nil
		}
		if ho, ok := t.Instance.(*hostObject); ok {
			return ho.target.Interface(), nil
		}
		return t.Instance, nil
	default:
		return nil, fmt.Errorf("hostbridge: cannot convert variant %T to a host value", v)
	}
}

func arrayToSlice(av values.ArrayValue) ([]any, error) {
	if av.Array == nil {
		return nil, nil
	}
	dims := av.Array.Dims()
	if len(dims) != 1 {
		return nil, fmt.Errorf("hostbridge: cannot convert a %d-dimensional array to a Go slice", len(dims))
	}
	getter, ok := av.Array.(elementGetter)
	if !ok {
		return nil, fmt.Errorf("hostbridge: array value does not support element access")
	}
	lo := av.Array.LowerBound(0)
	out := make([]any, dims[0])
	for i := 0; i < dims[0]; i++ {
		ev, err := getter.Get(lo + i)
		if err != nil {
			return nil, err
		}
		goVal, err := FromVariant(ev)
		if err != nil {
			return nil, err
		}
		out[i] = goVal
	}
	return out, nil
}
