package hostbridge

import (
	"fmt"
	"reflect"

	"github.com/dws-sandbox/basicscript/internal/procedures"
	"github.com/dws-sandbox/basicscript/internal/values"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// callReflectFunc invokes fn (a reflect.Value of Kind Func) with args
// converted from Variants to fn's declared parameter types, converting the
// result(s) back to a single Variant. A trailing error return is surfaced
// as a Go error (EHost-style host exception, per pkg/dwscript's
// TestRegisterFunctionWithError) rather than folded into the Variant.
func callReflectFunc(fn reflect.Value, args []values.Value) (values.Value, error) {
	ft := fn.Type()
	variadic := ft.IsVariadic()
	in := make([]reflect.Value, 0, len(args))
	for i, a := range args {
		var pt reflect.Type
		switch {
		case variadic && i >= ft.NumIn()-1:
			pt = ft.In(ft.NumIn() - 1).Elem()
		case i < ft.NumIn():
			pt = ft.In(i)
		default:
			return nil, fmt.Errorf("hostbridge: too many arguments: function accepts %d, got %d", ft.NumIn(), len(args))
		}
		goVal, err := FromVariant(a)
		if err != nil {
			return nil, err
		}
		in = append(in, coerceReflect(goVal, pt))
	}

	out := fn.Call(in)
	return reflectResultsToVariant(out)
}

func reflectResultsToVariant(out []reflect.Value) (values.Value, error) {
	if len(out) == 0 {
		return values.Empty, nil
	}
	last := out[len(out)-1]
	if last.Type() == errorType {
		if !last.IsNil() {
			return nil, last.Interface().(error)
		}
		out = out[:len(out)-1]
	}
	if len(out) == 0 {
		return values.Empty, nil
	}
	return ToVariant(out[0].Interface())
}

// WrapGoFunc adapts an arbitrary Go function value into a
// procedures.Builtin so pkg/script's registerFunction can install it
// directly as a callable global procedure, matching how
// pkg/dwscript_test's RegisterFunction registers plain `func(...)` values
// of arbitrary signature.
func WrapGoFunc(fn any) (procedures.Builtin, error) {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func {
		return nil, fmt.Errorf("hostbridge: RegisterFunction requires a func value, got %T", fn)
	}
	return func(args []values.Value, _ []*values.Value) (values.Value, error) {
		return callReflectFunc(rv, args)
	}, nil
}
