package evaluator

import "github.com/dws-sandbox/basicscript/internal/values"

// hostObject is satisfied by built-in collaborators (RegExp, Dictionary,
// Matches, Match) that behave like script objects without being declared
// by a ClassDecl and backed by *objects.Instance. It is consulted
// alongside that type assertion the same way enumerable is consulted for
// For Each: a structural interface, not a concrete type, since
// internal/evaluator cannot import internal/builtin (it would cycle back
// through internal/procedures' Fn signature).
type hostObject interface {
	Get(name string) (values.Value, error)
	Call(name string, args []values.Value) (values.Value, error)
	Set(name string, v values.Value) error
}

func asHostObject(v values.Value) (hostObject, bool) {
	ov, ok := v.(values.ObjectValue)
	if !ok || ov.IsNothing() {
		return nil, false
	}
	h, ok := ov.Instance.(hostObject)
	return h, ok
}
