package evaluator

import (
	"fmt"

	"github.com/dws-sandbox/basicscript/internal/ast"
	"github.com/dws-sandbox/basicscript/internal/langerr"
	"github.com/dws-sandbox/basicscript/internal/objects"
	"github.com/dws-sandbox/basicscript/internal/token"
	"github.com/dws-sandbox/basicscript/internal/values"
)

// Evaluator walks an AST against an Interpreter's shared state. It is a
// thin wrapper so call sites read `e.Eval(expr)`/`e.Exec(stmt)` rather than
// threading the interpreter through free functions.
type Evaluator struct {
	*Interpreter
}

// NewEvaluator wraps an interpreter for evaluation. Most callers want
// NewInterpreter, which builds both together.
func NewEvaluator(in *Interpreter) *Evaluator {
	return &Evaluator{Interpreter: in}
}

// NewInterpreter builds a fresh Interpreter and its Evaluator together.
func NewInterpreter() (*Interpreter, *Evaluator) {
	in := New()
	return in, NewEvaluator(in)
}

// isNull reports whether v is the explicit-absent Null variant (as opposed
// to the uninitialized Empty variant, which does not propagate the same
// way).
func isNull(v values.Value) bool {
	_, ok := v.(values.NullValue)
	return ok
}

// runtimeError turns a values coercion/comparison error into the dialect's
// numbered RuntimeError, preserving an already-typed RuntimeError as-is.
func runtimeError(err error, pos token.Position) *langerr.RuntimeError {
	if err == nil {
		return nil
	}
	if re, ok := err.(*langerr.RuntimeError); ok {
		return re
	}
	if tm, ok := err.(*values.TypeMismatchError); ok {
		return langerr.TypeMismatchf(pos, "%s", tm.Error())
	}
	return langerr.Newf(langerr.TypeMismatch, pos, "%s", err.Error())
}

// Eval evaluates an expression node to a Variant value.
func (e *Evaluator) Eval(expr ast.Expression) (values.Value, error) {
	switch n := expr.(type) {
	case *ast.IntegerLiteral:
		return evalIntegerLiteral(n), nil
	case *ast.FloatLiteral:
		return values.DoubleValue{Value: n.Value}, nil
	case *ast.StringLiteral:
		return values.StringValue{Value: n.Value}, nil
	case *ast.DateLiteral:
		return e.evalDateLiteral(n)
	case *ast.BooleanLiteral:
		return values.BooleanValue{Value: n.Value}, nil
	case *ast.NothingLiteral:
		return values.Nothing, nil
	case *ast.NullLiteral:
		return values.Null, nil
	case *ast.EmptyLiteral:
		return values.Empty, nil
	case *ast.Identifier:
		return e.evalIdentifier(n)
	case *ast.GroupedExpression:
		return e.Eval(n.Expression)
	case *ast.BinaryExpression:
		return e.evalBinaryExpression(n)
	case *ast.UnaryExpression:
		return e.evalUnaryExpression(n)
	case *ast.MemberExpression:
		return e.evalMemberRead(n)
	case *ast.CallOrIndexExpression:
		return e.evalCallOrIndex(n)
	case *ast.NewExpression:
		return e.evalNewExpression(n)
	case *ast.MeExpression:
		return e.evalMe(n)
	default:
		return nil, fmt.Errorf("evaluator: unhandled expression node %T", expr)
	}
}

// evalIntegerLiteral narrows an integer literal to the smallest variant
// kind that holds it without loss, matching the dialect's literal-typing
// rule (small constants are Integer, not always Long).
func evalIntegerLiteral(n *ast.IntegerLiteral) values.Value {
	if n.Value >= -32768 && n.Value <= 32767 {
		return values.IntegerValue{Value: int16(n.Value)}
	}
	if n.Value >= -2147483648 && n.Value <= 2147483647 {
		return values.LongValue{Value: int32(n.Value)}
	}
	return values.DoubleValue{Value: float64(n.Value)}
}

func (e *Evaluator) evalDateLiteral(n *ast.DateLiteral) (values.Value, error) {
	t, err := values.ToDate(values.StringValue{Value: n.Raw})
	if err != nil {
		return nil, runtimeError(err, n.Pos())
	}
	return values.DateValue{Value: t}, nil
}

func (e *Evaluator) evalIdentifier(n *ast.Identifier) (values.Value, error) {
	if v, ok := e.Scope.Get(n.Value); ok {
		return v, nil
	}
	if e.OptionExplicit {
		return nil, langerr.Newf(langerr.VariableNotDefined, n.Pos(), "variable '%s' is not declared", n.Value)
	}
	return values.Empty, nil
}

func (e *Evaluator) evalMe(n *ast.MeExpression) (values.Value, error) {
	if v, ok := e.Scope.Get("me"); ok {
		return v, nil
	}
	return nil, langerr.New(langerr.ObjectRequired, n.Pos())
}

func (e *Evaluator) evalNewExpression(n *ast.NewExpression) (values.Value, error) {
	if cd, ok := e.Classes.Lookup(n.ClassName.Value); ok {
		inst := objects.New(cd)
		if m, ok := cd.Method("Class_Initialize"); ok {
			if _, err := e.callUser(m, nil, nil, inst, n.Pos()); err != nil {
				return nil, err
			}
		}
		return inst.AsValue(), nil
	}
	if factory, ok := e.lookupBuiltinClass(n.ClassName.Value); ok {
		return factory(), nil
	}
	return nil, langerr.Newf(langerr.InvalidProcedureCall, n.Pos(), "class '%s' is not defined", n.ClassName.Value)
}
