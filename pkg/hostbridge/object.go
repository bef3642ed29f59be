package hostbridge

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/dws-sandbox/basicscript/internal/langerr"
	"github.com/dws-sandbox/basicscript/internal/token"
	"github.com/dws-sandbox/basicscript/internal/values"
)

// hostObject wraps an arbitrary Go struct or map value as a script Object
// variant: field/key reads and writes go through reflection, and exported
// methods become callable. It satisfies both values.Object and the
// evaluator's structural hostObject interface (Get/Set/Call) without
// either package depending on this one.
type hostObject struct {
	target reflect.Value
}

func newHostObject(rv reflect.Value) *hostObject {
	return &hostObject{target: rv}
}

func (h *hostObject) ClassName() string { return h.target.Type().Name() }
func (h *hostObject) String() string    { return fmt.Sprintf("%v", h.target.Interface()) }

func (h *hostObject) Get(name string) (values.Value, error) {
	switch h.target.Kind() {
	case reflect.Map:
		return h.getMapKey(name)
	case reflect.Struct:
		if fv := h.target.FieldByNameFunc(func(n string) bool { return strings.EqualFold(n, name) }); fv.IsValid() {
			return ToVariant(fv.Interface())
		}
	}
	if mv := h.methodByName(name); mv.IsValid() {
		return values.ObjectValue{Instance: newHostFunc(mv)}, nil
	}
	return nil, hostNoSuchMember(name)
}

func (h *hostObject) getMapKey(name string) (values.Value, error) {
	keyType := h.target.Type().Key()
	if keyType.Kind() != reflect.String {
		return nil, hostNoSuchMember(name)
	}
	mv := h.target.MapIndex(reflect.ValueOf(name).Convert(keyType))
	if !mv.IsValid() {
		return values.Empty, nil
	}
	return ToVariant(mv.Interface())
}

func (h *hostObject) Set(name string, v values.Value) error {
	goVal, err := FromVariant(v)
	if err != nil {
		return err
	}
	switch h.target.Kind() {
	case reflect.Map:
		keyType := h.target.Type().Key()
		if keyType.Kind() != reflect.String {
			return hostNoSuchMember(name)
		}
		elemType := h.target.Type().Elem()
		h.target.SetMapIndex(reflect.ValueOf(name).Convert(keyType), coerceReflect(goVal, elemType))
		return nil
	case reflect.Struct:
		if fv := h.target.FieldByNameFunc(func(n string) bool { return strings.EqualFold(n, name) }); fv.IsValid() && fv.CanSet() {
			fv.Set(coerceReflect(goVal, fv.Type()))
			return nil
		}
	}
	return hostNoSuchMember(name)
}

func (h *hostObject) Call(name string, args []values.Value) (values.Value, error) {
	mv := h.methodByName(name)
	if !mv.IsValid() {
		return nil, hostNoSuchMethod(name)
	}
	return callReflectFunc(mv, args)
}

func (h *hostObject) methodByName(name string) reflect.Value {
	t := h.target
	if mv := t.MethodByName(name); mv.IsValid() {
		return mv
	}
	if t.CanAddr() {
		if mv := t.Addr().MethodByName(name); mv.IsValid() {
			return mv
		}
	}
	// Case-insensitive fallback, matching the dialect's case-insensitive
	// member resolution.
	mt := t.Type()
	for i := 0; i < mt.NumMethod(); i++ {
		if strings.EqualFold(mt.Method(i).Name, name) {
			return t.Method(i)
		}
	}
	return reflect.Value{}
}

// Enumerate lets For Each walk a host map's values in Go's (unspecified)
// map iteration order.
func (h *hostObject) Enumerate() []values.Value {
	if h.target.Kind() != reflect.Map {
		return nil
	}
	out := make([]values.Value, 0, h.target.Len())
	iter := h.target.MapRange()
	for iter.Next() {
		v, err := ToVariant(iter.Value().Interface())
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

// hostFunc wraps a registered Go function (or bound method) as a script
// Object whose "default method" (the evaluator's call-dispatch rule for
// objects, spec.md §4.3) invokes it. registerFunction in pkg/script binds
// these directly as global procedures instead when possible; hostFunc
// exists for callback values crossing the bridge as plain data (e.g. a
// function stored in a host map or returned from another host call).
type hostFunc struct {
	fn reflect.Value
}

func newHostFunc(fn reflect.Value) *hostFunc {
	return &hostFunc{fn: fn}
}

func (f *hostFunc) ClassName() string { return "Function" }
func (f *hostFunc) String() string    { return "[object Function]" }

func (f *hostFunc) Get(name string) (values.Value, error) { return nil, hostNoSuchMember(name) }
func (f *hostFunc) Set(name string, _ values.Value) error { return hostNoSuchMember(name) }

func (f *hostFunc) Call(name string, args []values.Value) (values.Value, error) {
	if !strings.EqualFold(name, "Default") && name != "" {
		return nil, hostNoSuchMethod(name)
	}
	return callReflectFunc(f.fn, args)
}

// CallDefault invokes the wrapped Go function directly; the evaluator's
// "object with a default method" call-dispatch rule resolves to a method
// literally named Default, so WrapGoFunc in funcs.go registers this
// through a Builtin instead for top-level registerFunction calls, and this
// path serves direct `fn()` calls on a bridged callback value.
func (f *hostFunc) CallDefault(args []values.Value) (values.Value, error) {
	return callReflectFunc(f.fn, args)
}

func coerceReflect(goVal any, want reflect.Type) reflect.Value {
	if goVal == nil {
		return reflect.Zero(want)
	}
	rv := reflect.ValueOf(goVal)
	if rv.Type().ConvertibleTo(want) {
		return rv.Convert(want)
	}
	return rv
}

func hostNoSuchMember(name string) error {
	return langerr.Newf(langerr.ObjectDoesntSupportPropertyOrMethod, token.Position{},
		"object doesn't support this property or method: %s", name)
}

func hostNoSuchMethod(name string) error { return hostNoSuchMember(name) }
