package evaluator

import (
	"strings"

	"github.com/dws-sandbox/basicscript/internal/ast"
	"github.com/dws-sandbox/basicscript/internal/langerr"
	"github.com/dws-sandbox/basicscript/internal/token"
	"github.com/dws-sandbox/basicscript/internal/values"
)

// isErrReceiver reports whether expr is a bare reference to the script's
// Err object: the identifier "err", unshadowed by a variable of that name.
// Err is not a real Instance (it has no class, no New), so its property
// reads and method calls are intercepted here rather than routed through
// the general object-member machinery.
func (e *Evaluator) isErrReceiver(expr ast.Expression) bool {
	ident, ok := expr.(*ast.Identifier)
	return ok && strings.EqualFold(ident.Value, "err") && !e.Scope.Has(ident.Value)
}

func (e *Evaluator) errGet(name string, pos token.Position) (values.Value, error) {
	switch strings.ToLower(name) {
	case "number":
		return values.LongValue{Value: e.Err.Number}, nil
	case "description":
		return values.StringValue{Value: e.Err.Description}, nil
	case "source":
		return values.StringValue{Value: e.Err.Source}, nil
	case "clear":
		// Err.Clear is a method, but a bare `Err.Clear` statement with no
		// parentheses and no arguments parses as a member read, not a call.
		e.Err.Clear()
		return values.Empty, nil
	default:
		return nil, langerr.Newf(langerr.ObjectDoesntSupportPropertyOrMethod, pos,
			"object doesn't support this property or method: %s", name)
	}
}

func (e *Evaluator) errCall(name string, argExprs []ast.Expression, pos token.Position) (values.Value, error) {
	args := make([]values.Value, len(argExprs))
	for i, a := range argExprs {
		v, err := e.Eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	switch strings.ToLower(name) {
	case "clear":
		e.Err.Clear()
		return values.Empty, nil
	case "raise":
		if len(args) == 0 {
			return nil, langerr.New(langerr.InvalidProcedureCall, pos)
		}
		code, err := values.ToLong(args[0])
		if err != nil {
			return nil, runtimeError(err, pos)
		}
		var source, description string
		if len(args) > 1 {
			source, _ = values.ToString(args[1])
		}
		if len(args) > 2 {
			description, _ = values.ToString(args[2])
		}
		return nil, langerr.Raise(langerr.Code(code), source, description, pos)
	default:
		return nil, langerr.Newf(langerr.ObjectDoesntSupportPropertyOrMethod, pos,
			"object doesn't support this property or method: %s", name)
	}
}
