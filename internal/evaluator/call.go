package evaluator

import (
	"github.com/dws-sandbox/basicscript/internal/array"
	"github.com/dws-sandbox/basicscript/internal/ast"
	"github.com/dws-sandbox/basicscript/internal/langerr"
	"github.com/dws-sandbox/basicscript/internal/objects"
	"github.com/dws-sandbox/basicscript/internal/procedures"
	"github.com/dws-sandbox/basicscript/internal/runtime"
	"github.com/dws-sandbox/basicscript/internal/token"
	"github.com/dws-sandbox/basicscript/internal/values"
)

// evalCallOrIndex implements the call-semantics dispatch: a registered
// procedure wins first, then a variable bound to an Array is indexed, then
// a variable bound to an Object falls through to its default method;
// anything else raises InvalidProcedureCall.
func (e *Evaluator) evalCallOrIndex(n *ast.CallOrIndexExpression) (values.Value, error) {
	return e.evalCallLike(n.Callee, n.Arguments, n.Pos())
}

func (e *Evaluator) evalCallLike(callee ast.Expression, argExprs []ast.Expression, pos token.Position) (values.Value, error) {
	switch c := callee.(type) {
	case *ast.Identifier:
		if desc, ok := e.Procedures.Lookup(c.Value); ok {
			return e.dispatchCall(desc, argExprs, nil, pos)
		}
		v, bound := e.Scope.Get(c.Value)
		if !bound {
			return nil, langerr.Newf(langerr.InvalidProcedureCall, pos, "'%s' is not a procedure, array, or object", c.Value)
		}
		if av, ok := v.(values.ArrayValue); ok {
			return e.indexArray(av, argExprs, pos)
		}
		if ov, ok := v.(values.ObjectValue); ok && !ov.IsNothing() {
			if inst, ok := ov.Instance.(*objects.Instance); ok {
				if m, ok := inst.Class.Method("Default"); ok {
					return e.dispatchCall(m, argExprs, inst, pos)
				}
			}
		}
		return nil, langerr.Newf(langerr.InvalidProcedureCall, pos, "'%s' is not a procedure, array, or object with a default method", c.Value)

	case *ast.MemberExpression:
		if c.Object != nil && e.isErrReceiver(c.Object) {
			return e.errCall(c.Property.Value, argExprs, pos)
		}
		receiver, err := e.resolveReceiver(c)
		if err != nil {
			return nil, err
		}
		ov, ok := receiver.(values.ObjectValue)
		if !ok || ov.IsNothing() {
			return nil, langerr.New(langerr.ObjectRequired, pos)
		}
		inst, ok := ov.Instance.(*objects.Instance)
		if !ok {
			if h, ok := ov.Instance.(hostObject); ok {
				evaled := make([]values.Value, len(argExprs))
				for i, a := range argExprs {
					v, err := e.Eval(a)
					if err != nil {
						return nil, err
					}
					evaled[i] = v
				}
				return h.Call(c.Property.Value, evaled)
			}
			return nil, langerr.New(langerr.ObjectRequired, pos)
		}
		if m, ok := inst.Class.Method(c.Property.Value); ok {
			return e.dispatchCall(m, argExprs, inst, pos)
		}
		if g, ok := inst.Class.Accessor(c.Property.Value, procedures.PropertyGet); ok {
			return e.dispatchCall(g, argExprs, inst, pos)
		}
		return nil, langerr.Newf(langerr.ObjectDoesntSupportPropertyOrMethod, pos,
			"object doesn't support this property or method: %s", c.Property.Value)

	default:
		callable, err := e.Eval(callee)
		if err != nil {
			return nil, err
		}
		if av, ok := callable.(values.ArrayValue); ok {
			return e.indexArray(av, argExprs, pos)
		}
		return nil, langerr.New(langerr.InvalidProcedureCall, pos)
	}
}

func (e *Evaluator) indexArray(av values.ArrayValue, argExprs []ast.Expression, pos token.Position) (values.Value, error) {
	dyn, ok := av.Array.(*array.Dynamic)
	if !ok || dyn == nil {
		return nil, langerr.New(langerr.SubscriptOutOfRange, pos)
	}
	indices := make([]int, len(argExprs))
	for i, a := range argExprs {
		v, err := e.Eval(a)
		if err != nil {
			return nil, err
		}
		idx, err := values.ToLong(v)
		if err != nil {
			return nil, runtimeError(err, pos)
		}
		indices[i] = int(idx)
	}
	v, err := dyn.Get(indices...)
	if err != nil {
		return nil, langerr.SubscriptOutOfRangef(pos, "%s", err.Error())
	}
	return v, nil
}

// dispatchCall evaluates arguments, decides by-reference binding per
// argument via procedures.EffectiveByRef, calls desc, and writes any
// by-reference cells back into the caller's argument expressions.
func (e *Evaluator) dispatchCall(desc *procedures.Descriptor, argExprs []ast.Expression, instance *objects.Instance, pos token.Position) (values.Value, error) {
	args := make([]values.Value, len(argExprs))
	refs := make([]*values.Value, len(argExprs))
	for i, a := range argExprs {
		v, err := e.Eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
		var param *ast.Parameter
		if i < len(desc.Parameters) {
			param = desc.Parameters[i]
		}
		if procedures.EffectiveByRef(param, a) {
			cell := v
			refs[i] = &cell
		}
	}

	var result values.Value
	var err error
	if desc.IsBuiltin() {
		result, err = desc.Fn(args, refs)
	} else {
		result, err = e.callUser(desc, args, refs, instance, pos)
	}
	if err != nil {
		return nil, err
	}

	for i, cell := range refs {
		if cell == nil {
			continue
		}
		if err := e.assignValue(argExprs[i], *cell); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// callWithValues invokes desc with already-evaluated arguments and no
// by-reference binding, used for Property Let/Set accessors where the sole
// argument is a value already on hand, not a caller expression to bind a
// reference cell against.
func (e *Evaluator) callWithValues(desc *procedures.Descriptor, args []values.Value, instance *objects.Instance, pos token.Position) (values.Value, error) {
	refs := make([]*values.Value, len(args))
	if desc.IsBuiltin() {
		return desc.Fn(args, refs)
	}
	return e.callUser(desc, args, refs, instance, pos)
}

// callUser invokes a user-defined Sub/Function/Property accessor: pushes a
// fresh scope parented at the global scope (this dialect has no closures),
// binds parameters and Me, runs the body, and for a Function or Property
// Get reads the return value back out of the slot matching the
// procedure's own name.
func (e *Evaluator) callUser(desc *procedures.Descriptor, args []values.Value, refs []*values.Value, instance *objects.Instance, pos token.Position) (values.Value, error) {
	scope := runtime.NewScope(e.Global)
	if instance != nil {
		scope.Define("me", instance.AsValue())
	}

	for i, p := range desc.Parameters {
		if p.IsParamArray {
			rest := args[i:]
			dyn := array.New(len(rest))
			for j, v := range rest {
				_ = dyn.Set(v, j)
			}
			scope.DefineArray(p.Name.Value, values.ArrayValue{Array: dyn})
			break
		}
		var val values.Value
		switch {
		case i < len(args):
			val = args[i]
		case p.Default != nil:
			v, err := e.Eval(p.Default)
			if err != nil {
				return nil, err
			}
			val = v
		default:
			val = values.Empty
		}
		if i < len(refs) && refs[i] != nil {
			scope.DefineByRef(p.Name.Value, val)
		} else {
			scope.Define(p.Name.Value, val)
		}
	}

	isReturning := desc.Kind == procedures.Function || desc.Kind == procedures.PropertyGet
	if isReturning {
		scope.Define(desc.Name, values.Empty)
	}

	e.Calls.Push(desc.Name)
	prevScope := e.Scope
	e.Scope = scope
	sig, err := e.execBlock(desc.Body)
	e.Scope = prevScope
	e.Calls.Pop()
	if err != nil {
		return nil, err
	}
	if sig != nil && sig.Kind == sigGoto {
		return nil, langerr.Newf(langerr.Syntax, pos, "label not found: %s", sig.Label)
	}

	for i, p := range desc.Parameters {
		if p.IsParamArray {
			break
		}
		if i < len(refs) && refs[i] != nil {
			v, _ := scope.GetLocal(p.Name.Value)
			*refs[i] = v
		}
	}

	if isReturning {
		v, _ := scope.GetLocal(desc.Name)
		return v, nil
	}
	return values.Empty, nil
}
