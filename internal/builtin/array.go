package builtin

import (
	"github.com/dws-sandbox/basicscript/internal/array"
	"github.com/dws-sandbox/basicscript/internal/procedures"
	"github.com/dws-sandbox/basicscript/internal/values"
)

// RegisterArray registers the Array category: the Array() literal
// constructor, LBound/UBound and Filter.
func RegisterArray(r *procedures.Registry) {
	def := func(name string, fn procedures.Builtin) {
		r.Define(&procedures.Descriptor{Name: name, Kind: procedures.Function, Fn: fn})
	}
	def("Array", builtinArray)
	def("LBound", builtinLBound)
	def("UBound", builtinUBound)
	def("Filter", builtinFilter)
}

// builtinArray implements Array(...): a zero-based, one-dimensional array
// literal built from however many arguments are passed.
func builtinArray(args []values.Value, _ []*values.Value) (values.Value, error) {
	d := array.New(len(args))
	for i, v := range args {
		if err := d.Set(v, i); err != nil {
			return nil, err
		}
	}
	return values.ArrayValue{Array: d}, nil
}

// indexable is the subset of a concrete array implementation's method set
// this package needs to walk elements without importing internal/array's
// storage type directly everywhere; values.Array itself exposes only
// shape (Dims/LowerBound/UpperBound), not element access.
type indexable interface {
	Get(indices ...int) (values.Value, error)
}

// arrayElements flattens a one-dimensional ArrayValue into a Go slice in
// ascending index order. Multi-dimensional arrays are rejected: the
// built-ins that call this (Join, Filter) only make sense over a vector.
func arrayElements(av values.ArrayValue) ([]values.Value, error) {
	if av.Array == nil {
		return nil, nil
	}
	dims := av.Array.Dims()
	if len(dims) != 1 {
		return nil, invalidCall("expected a one-dimensional array, got %d dimensions", len(dims))
	}
	idx, ok := av.Array.(indexable)
	if !ok {
		return nil, invalidCall("array value does not support element access")
	}
	lo := av.Array.LowerBound(0)
	out := make([]values.Value, dims[0])
	for i := 0; i < dims[0]; i++ {
		v, err := idx.Get(lo + i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// stringArray builds a zero-based one-dimensional Array of String from a Go
// string slice, the shape Split returns.
func stringArray(parts []string) values.ArrayValue {
	d := array.New(len(parts))
	for i, p := range parts {
		d.Set(values.StringValue{Value: p}, i)
	}
	return values.ArrayValue{Array: d}
}

// sliceToValueArray builds a zero-based one-dimensional Array from
// already-constructed Values, the shape Dictionary.Items returns.
func sliceToValueArray(vals []values.Value) values.ArrayValue {
	d := array.New(len(vals))
	for i, v := range vals {
		d.Set(v, i)
	}
	return values.ArrayValue{Array: d}
}

func builtinLBound(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := between("LBound", args, 1, 2); err != nil {
		return nil, err
	}
	av, ok := args[0].(values.ArrayValue)
	if !ok || av.Array == nil {
		return nil, typeMismatch("LBound expects an Array")
	}
	dim, err := optLong(args, 1, 1)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	if dim < 1 || int(dim) > len(av.Array.Dims()) {
		return nil, invalidCall("LBound: dimension %d out of range", dim)
	}
	return values.LongValue{Value: int32(av.Array.LowerBound(int(dim) - 1))}, nil
}

func builtinUBound(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := between("UBound", args, 1, 2); err != nil {
		return nil, err
	}
	av, ok := args[0].(values.ArrayValue)
	if !ok || av.Array == nil {
		return nil, typeMismatch("UBound expects an Array")
	}
	dim, err := optLong(args, 1, 1)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	if dim < 1 || int(dim) > len(av.Array.Dims()) {
		return nil, invalidCall("UBound: dimension %d out of range", dim)
	}
	return values.LongValue{Value: int32(av.Array.UpperBound(int(dim) - 1))}, nil
}

// builtinFilter implements Filter(sourceArray, match[, include[, compare]]):
// a new zero-based array of the elements of sourceArray containing (or, if
// include is False, not containing) match.
func builtinFilter(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := between("Filter", args, 2, 4); err != nil {
		return nil, err
	}
	av, ok := args[0].(values.ArrayValue)
	if !ok {
		return nil, typeMismatch("Filter expects an Array, got %s", args[0].Type())
	}
	match, err := argString(args, 1)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	include, err := optBool(args, 2, true)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	mode, err := compareMode(args, 3)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	elems, err := arrayElements(av)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, v := range elems {
		s, err := values.ToString(v)
		if err != nil {
			return nil, typeMismatch("%s", err.Error())
		}
		found := indexUTF16(toUTF16(s), toUTF16(match), mode) >= 0
		if found == include {
			out = append(out, s)
		}
	}
	return stringArray(out), nil
}
