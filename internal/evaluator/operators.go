package evaluator

import (
	"math"
	"strings"

	"github.com/dws-sandbox/basicscript/internal/ast"
	"github.com/dws-sandbox/basicscript/internal/langerr"
	"github.com/dws-sandbox/basicscript/internal/token"
	"github.com/dws-sandbox/basicscript/internal/values"
)

func (e *Evaluator) evalBinaryExpression(n *ast.BinaryExpression) (values.Value, error) {
	// Is compares object identity and must see the raw operands (neither
	// side is coerced), so it is dispatched before the general Null check.
	if strings.EqualFold(n.Operator, "is") {
		return e.evalIsOperator(n)
	}

	left, err := e.Eval(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.Eval(n.Right)
	if err != nil {
		return nil, err
	}
	return e.applyBinaryOp(n.Operator, left, right, n.Pos())
}

func (e *Evaluator) evalIsOperator(n *ast.BinaryExpression) (values.Value, error) {
	left, err := e.Eval(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.Eval(n.Right)
	if err != nil {
		return nil, err
	}
	lo, lok := left.(values.ObjectValue)
	ro, rok := right.(values.ObjectValue)
	if !lok || !rok {
		return nil, langerr.New(langerr.ObjectRequired, n.Pos())
	}
	return values.BooleanValue{Value: lo.Instance == ro.Instance}, nil
}

// applyBinaryOp dispatches every binary operator but Is, which
// evalIsOperator handles before operands would otherwise be coerced.
func (e *Evaluator) applyBinaryOp(op string, left, right values.Value, pos token.Position) (values.Value, error) {
	switch strings.ToLower(op) {
	case "&":
		return evalConcat(left, right), nil
	case "+":
		return evalAdd(left, right, pos)
	case "-":
		return evalNumeric(left, right, pos, func(a, b float64) float64 { return a - b })
	case "*":
		return evalNumeric(left, right, pos, func(a, b float64) float64 { return a * b })
	case "/":
		return evalDivide(left, right, pos)
	case "\\":
		return evalIntDivide(left, right, pos)
	case "mod":
		return evalMod(left, right, pos)
	case "^":
		return evalPow(left, right, pos)
	case "=":
		return evalEquality(left, right, pos, false)
	case "<>":
		return evalEquality(left, right, pos, true)
	case "<", "<=", ">", ">=":
		return evalRelational(op, left, right, pos)
	case "and":
		return evalLogical(left, right, pos, func(a, b bool) bool { return a && b })
	case "or":
		return evalLogical(left, right, pos, func(a, b bool) bool { return a || b })
	case "xor":
		return evalLogical(left, right, pos, func(a, b bool) bool { return a != b })
	case "eqv":
		return evalLogical(left, right, pos, func(a, b bool) bool { return a == b })
	case "imp":
		return evalLogical(left, right, pos, func(a, b bool) bool { return !a || b })
	default:
		return nil, langerr.Newf(langerr.Syntax, pos, "unknown operator %q", op)
	}
}

// evalConcat implements `&`: always stringifies, treating Null as empty
// string rather than propagating it (per the dialect's concatenation rule).
func evalConcat(left, right values.Value) values.Value {
	ls, rs := "", ""
	if !isNull(left) {
		ls, _ = values.ToString(left)
	}
	if !isNull(right) {
		rs, _ = values.ToString(right)
	}
	return values.StringValue{Value: ls + rs}
}

// evalAdd implements `+`. Two strings add numerically (that distinction is
// what `&` exists to cover); a mix of exactly one String operand and
// anything else (neither Null) concatenates; otherwise numeric addition
// with standard promotion. A Null operand on either side yields Null.
func evalAdd(left, right values.Value, pos token.Position) (values.Value, error) {
	if isNull(left) || isNull(right) {
		return values.Null, nil
	}
	_, lStr := left.(values.StringValue)
	_, rStr := right.(values.StringValue)
	switch {
	case lStr && rStr:
		return evalNumeric(left, right, pos, func(a, b float64) float64 { return a + b })
	case lStr != rStr:
		ls, err := values.ToString(left)
		if err != nil {
			return nil, runtimeError(err, pos)
		}
		rs, err := values.ToString(right)
		if err != nil {
			return nil, runtimeError(err, pos)
		}
		return values.StringValue{Value: ls + rs}, nil
	default:
		return evalNumeric(left, right, pos, func(a, b float64) float64 { return a + b })
	}
}

// evalNumeric applies op to the Double representation of both operands and
// re-narrows to Long when both operands were integral and the result fits
// the Long range, widening to Double otherwise, per the dialect's numeric
// promotion rule. Coercion is total here, same as evalDivide below:
// String and Boolean operands coerce through ToDouble rather than being
// rejected, since `+`/`-`/`*` must accept them (spec's coercion totality
// invariant). A Null operand yields Null.
func evalNumeric(left, right values.Value, pos token.Position, op func(a, b float64) float64) (values.Value, error) {
	if isNull(left) || isNull(right) {
		return values.Null, nil
	}
	kind := values.NumericResultKind(left, right)
	fl, err := values.ToDouble(left)
	if err != nil {
		return nil, runtimeError(err, pos)
	}
	fr, err := values.ToDouble(right)
	if err != nil {
		return nil, runtimeError(err, pos)
	}
	result := op(fl, fr)
	if kind == "Long" && result <= math.MaxInt32 && result >= math.MinInt32 {
		return values.LongValue{Value: int32(result)}, nil
	}
	return values.DoubleValue{Value: result}, nil
}

// evalDivide implements `/`, which always produces Double.
func evalDivide(left, right values.Value, pos token.Position) (values.Value, error) {
	if isNull(left) || isNull(right) {
		return values.Null, nil
	}
	fl, err := values.ToDouble(left)
	if err != nil {
		return nil, runtimeError(err, pos)
	}
	fr, err := values.ToDouble(right)
	if err != nil {
		return nil, runtimeError(err, pos)
	}
	if fr == 0 {
		return nil, langerr.New(langerr.DivisionByZero, pos)
	}
	return values.DoubleValue{Value: fl / fr}, nil
}

// evalIntDivide implements `\`: convert both operands to Long, then divide
// with Go's truncate-toward-zero integer division.
func evalIntDivide(left, right values.Value, pos token.Position) (values.Value, error) {
	if isNull(left) || isNull(right) {
		return values.Null, nil
	}
	l, err := values.ToLong(left)
	if err != nil {
		return nil, runtimeError(err, pos)
	}
	r, err := values.ToLong(right)
	if err != nil {
		return nil, runtimeError(err, pos)
	}
	if r == 0 {
		return nil, langerr.New(langerr.DivisionByZero, pos)
	}
	return values.LongValue{Value: l / r}, nil
}

// evalMod implements the signed modulo of Long operands.
func evalMod(left, right values.Value, pos token.Position) (values.Value, error) {
	if isNull(left) || isNull(right) {
		return values.Null, nil
	}
	l, err := values.ToLong(left)
	if err != nil {
		return nil, runtimeError(err, pos)
	}
	r, err := values.ToLong(right)
	if err != nil {
		return nil, runtimeError(err, pos)
	}
	if r == 0 {
		return nil, langerr.New(langerr.DivisionByZero, pos)
	}
	return values.LongValue{Value: l % r}, nil
}

// evalPow implements `^`, which always produces Double.
func evalPow(left, right values.Value, pos token.Position) (values.Value, error) {
	if isNull(left) || isNull(right) {
		return values.Null, nil
	}
	fl, err := values.ToDouble(left)
	if err != nil {
		return nil, runtimeError(err, pos)
	}
	fr, err := values.ToDouble(right)
	if err != nil {
		return nil, runtimeError(err, pos)
	}
	return values.DoubleValue{Value: math.Pow(fl, fr)}, nil
}

func evalEquality(left, right values.Value, pos token.Position, negate bool) (values.Value, error) {
	if isNull(left) || isNull(right) {
		return values.Null, nil
	}
	eq, err := values.Equal(left, right)
	if err != nil {
		return nil, runtimeError(err, pos)
	}
	if negate {
		eq = !eq
	}
	return values.BooleanValue{Value: eq}, nil
}

func evalRelational(op string, left, right values.Value, pos token.Position) (values.Value, error) {
	if isNull(left) || isNull(right) {
		return values.Null, nil
	}
	cmp, err := values.Compare(left, right)
	if err != nil {
		return nil, runtimeError(err, pos)
	}
	var result bool
	switch op {
	case "<":
		result = cmp < 0
	case "<=":
		result = cmp <= 0
	case ">":
		result = cmp > 0
	case ">=":
		result = cmp >= 0
	}
	return values.BooleanValue{Value: result}, nil
}

// evalLogical implements the dialect's restriction of And/Or/Xor/Eqv/Imp to
// boolean semantics (no bitwise-on-integers fallback), per the documented
// decision to preserve that restriction absent a compatibility requirement
// to do otherwise.
func evalLogical(left, right values.Value, pos token.Position, op func(a, b bool) bool) (values.Value, error) {
	lb, err := values.ToBoolean(left)
	if err != nil {
		return nil, runtimeError(err, pos)
	}
	rb, err := values.ToBoolean(right)
	if err != nil {
		return nil, runtimeError(err, pos)
	}
	return values.BooleanValue{Value: op(lb, rb)}, nil
}

func (e *Evaluator) evalUnaryExpression(n *ast.UnaryExpression) (values.Value, error) {
	right, err := e.Eval(n.Right)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(n.Operator) {
	case "-":
		if isNull(right) {
			return values.Null, nil
		}
		f, err := values.ToDouble(right)
		if err != nil {
			return nil, runtimeError(err, n.Pos())
		}
		if values.IsNumeric(right) {
			if _, ok := right.(values.DoubleValue); !ok {
				if _, ok := right.(values.SingleValue); !ok {
					if f == math.Trunc(f) && f >= math.MinInt32 && f <= math.MaxInt32 {
						return values.LongValue{Value: int32(-f)}, nil
					}
				}
			}
		}
		return values.DoubleValue{Value: -f}, nil
	case "+":
		return right, nil
	case "not":
		b, err := values.ToBoolean(right)
		if err != nil {
			return nil, runtimeError(err, n.Pos())
		}
		return values.BooleanValue{Value: !b}, nil
	default:
		return nil, langerr.Newf(langerr.Syntax, n.Pos(), "unknown unary operator %q", n.Operator)
	}
}
