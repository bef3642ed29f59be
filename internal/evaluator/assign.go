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

func (e *Evaluator) execAssign(s *ast.AssignStatement) (*Signal, error) {
	v, err := e.Eval(s.Value)
	if err != nil {
		return nil, err
	}
	if s.IsSet {
		return nil, e.assignSet(s.Target, v)
	}
	return nil, e.assignValue(s.Target, v)
}

// assignValue implements plain `lhs = rhs` assignment, and also the
// by-reference write-back step after a procedure call: an identifier
// writes to its resolved slot, a member access invokes a Property Let
// accessor if declared else writes the field directly, and a call-or-index
// expression writes an array element.
func (e *Evaluator) assignValue(target ast.Expression, v values.Value) error {
	switch t := target.(type) {
	case *ast.Identifier:
		return e.assignIdentifier(t.Value, v, t.Pos())
	case *ast.MemberExpression:
		return e.assignMember(t, v, false)
	case *ast.CallOrIndexExpression:
		return e.assignIndexed(t, v)
	default:
		return langerr.Newf(langerr.InvalidProcedureCall, target.Pos(), "expression is not assignable")
	}
}

// assignSet implements `Set lhs = rhs`: the previous value's
// Class_Terminate runs (if declared and not already run) before the
// reference is replaced. This is only attempted for an identifier target,
// the common case — member/array-element Set-targets skip the
// pre-replacement terminate check (see DESIGN.md).
func (e *Evaluator) assignSet(target ast.Expression, v values.Value) error {
	switch t := target.(type) {
	case *ast.Identifier:
		if prev, ok := e.Scope.Get(t.Value); ok {
			if err := e.terminateIfNeeded(prev); err != nil {
				return err
			}
		}
		return e.assignIdentifier(t.Value, v, t.Pos())
	case *ast.MemberExpression:
		return e.assignMember(t, v, true)
	case *ast.CallOrIndexExpression:
		return e.assignIndexed(t, v)
	default:
		return langerr.Newf(langerr.InvalidProcedureCall, target.Pos(), "expression is not assignable")
	}
}

func (e *Evaluator) terminateIfNeeded(prev values.Value) error {
	ov, ok := prev.(values.ObjectValue)
	if !ok || ov.IsNothing() {
		return nil
	}
	inst, ok := ov.Instance.(*objects.Instance)
	if !ok || inst.Destroyed {
		return nil
	}
	if m, ok := inst.Class.Method("Class_Terminate"); ok {
		if _, err := e.callUser(m, nil, nil, inst, token.Position{}); err != nil {
			return err
		}
	}
	inst.Destroyed = true
	return nil
}

func (e *Evaluator) assignIdentifier(name string, v values.Value, pos token.Position) error {
	if e.OptionExplicit {
		if err := e.Scope.Set(name, v); err != nil {
			return translateScopeError(err, name, pos)
		}
		return nil
	}
	if err := e.Scope.SetOrDefine(name, v); err != nil {
		return translateScopeError(err, name, pos)
	}
	return nil
}

func translateScopeError(err error, name string, pos token.Position) error {
	switch err.(type) {
	case *runtime.ErrUndefinedVariable:
		return langerr.Newf(langerr.VariableNotDefined, pos, "variable '%s' is not declared", name)
	case *runtime.ErrAssignToConst:
		return langerr.Newf(langerr.InvalidProcedureCall, pos, "cannot assign to constant '%s'", name)
	default:
		return runtimeError(err, pos)
	}
}

func (e *Evaluator) assignMember(n *ast.MemberExpression, v values.Value, isSet bool) error {
	if n.Object != nil && e.isErrReceiver(n.Object) {
		return langerr.Newf(langerr.ObjectDoesntSupportPropertyOrMethod, n.Pos(),
			"object doesn't support this property or method: %s", n.Property.Value)
	}
	receiver, err := e.resolveReceiver(n)
	if err != nil {
		return err
	}
	ov, ok := receiver.(values.ObjectValue)
	if !ok || ov.IsNothing() {
		return langerr.New(langerr.ObjectRequired, n.Pos())
	}
	inst, ok := ov.Instance.(*objects.Instance)
	if !ok {
		if h, ok := ov.Instance.(hostObject); ok {
			return h.Set(n.Property.Value, v)
		}
		return langerr.New(langerr.ObjectRequired, n.Pos())
	}
	name := n.Property.Value

	if isSet {
		if s, ok := inst.Class.Accessor(name, procedures.PropertySet); ok {
			_, err := e.callWithValues(s, []values.Value{v}, inst, n.Pos())
			return err
		}
		inst.SetField(name, v)
		return nil
	}
	if l, ok := inst.Class.Accessor(name, procedures.PropertyLet); ok {
		_, err := e.callWithValues(l, []values.Value{v}, inst, n.Pos())
		return err
	}
	if !inst.Class.HasField(name) {
		return langerr.Newf(langerr.ObjectDoesntSupportPropertyOrMethod, n.Pos(),
			"object doesn't support this property or method: %s", name)
	}
	inst.SetField(name, v)
	return nil
}

func (e *Evaluator) assignIndexed(n *ast.CallOrIndexExpression, v values.Value) error {
	ident, ok := n.Callee.(*ast.Identifier)
	if !ok {
		return langerr.Newf(langerr.InvalidProcedureCall, n.Pos(), "expression is not an array")
	}
	bound, ok := e.Scope.Get(ident.Value)
	if !ok {
		return langerr.Newf(langerr.InvalidProcedureCall, n.Pos(), "'%s' is not defined", ident.Value)
	}
	av, ok := bound.(values.ArrayValue)
	if !ok {
		return langerr.Newf(langerr.InvalidProcedureCall, n.Pos(), "'%s' is not an array", ident.Value)
	}
	dyn, ok := av.Array.(*array.Dynamic)
	if !ok || dyn == nil {
		return langerr.New(langerr.SubscriptOutOfRange, n.Pos())
	}
	indices := make([]int, len(n.Arguments))
	for i, a := range n.Arguments {
		iv, err := e.Eval(a)
		if err != nil {
			return err
		}
		idx, err := values.ToLong(iv)
		if err != nil {
			return runtimeError(err, n.Pos())
		}
		indices[i] = int(idx)
	}
	if err := dyn.Set(v, indices...); err != nil {
		return langerr.SubscriptOutOfRangef(n.Pos(), "%s", err.Error())
	}
	return nil
}
