package evaluator

import (
	"github.com/dws-sandbox/basicscript/internal/ast"
	"github.com/dws-sandbox/basicscript/internal/langerr"
	"github.com/dws-sandbox/basicscript/internal/objects"
	"github.com/dws-sandbox/basicscript/internal/procedures"
	"github.com/dws-sandbox/basicscript/internal/values"
)

// resolveReceiver evaluates a member expression's Object, resolving a
// leading-dot access (Object == nil) against the top of the With stack.
func (e *Evaluator) resolveReceiver(n *ast.MemberExpression) (values.Value, error) {
	if n.Object == nil {
		top, ok := e.With.Top()
		if !ok {
			return nil, langerr.New(langerr.ObjectRequired, n.Pos())
		}
		return top, nil
	}
	return e.Eval(n.Object)
}

// evalMemberRead implements `obj.Property`: a declared Property Get accessor
// wins, otherwise the field is read directly.
func (e *Evaluator) evalMemberRead(n *ast.MemberExpression) (values.Value, error) {
	if n.Object != nil && e.isErrReceiver(n.Object) {
		return e.errGet(n.Property.Value, n.Pos())
	}
	receiver, err := e.resolveReceiver(n)
	if err != nil {
		return nil, err
	}
	ov, ok := receiver.(values.ObjectValue)
	if !ok {
		return nil, langerr.New(langerr.ObjectRequired, n.Pos())
	}
	if ov.IsNothing() {
		return nil, langerr.New(langerr.ObjectRequired, n.Pos())
	}
	inst, ok := ov.Instance.(*objects.Instance)
	if !ok {
		if h, ok := ov.Instance.(hostObject); ok {
			return h.Get(n.Property.Value)
		}
		return nil, langerr.New(langerr.ObjectRequired, n.Pos())
	}
	name := n.Property.Value
	if g, ok := inst.Class.Accessor(name, procedures.PropertyGet); ok {
		return e.dispatchCall(g, nil, inst, n.Pos())
	}
	if v, ok := inst.GetField(name); ok {
		return v, nil
	}
	if m, ok := inst.Class.Method(name); ok {
		return e.dispatchCall(m, nil, inst, n.Pos())
	}
	return nil, langerr.Newf(langerr.ObjectDoesntSupportPropertyOrMethod, n.Pos(),
		"object doesn't support this property or method: %s", name)
}
