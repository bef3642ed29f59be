package procedures

import "github.com/dws-sandbox/basicscript/internal/ast"

// IsWritableArgument reports whether an argument expression at a call site
// can serve as a by-reference parameter's target: an identifier, a member
// access, or an indexing/call-or-index expression (which the evaluator
// resolves to an array element). Any other expression (a literal, a
// binary expression, ...) is passed by value even against a by-ref
// parameter, matching the dialect's silent by-value fallback for
// non-writable arguments.
func IsWritableArgument(expr ast.Expression) bool {
	switch expr.(type) {
	case *ast.Identifier, *ast.MemberExpression, *ast.CallOrIndexExpression:
		return true
	default:
		return false
	}
}

// EffectiveByRef reports whether the i'th parameter should be bound by
// reference for this call: the parameter itself must be declared ByRef
// (or be the ParamArray tail, which is always by value) and the supplied
// argument must be writable.
func EffectiveByRef(param *ast.Parameter, arg ast.Expression) bool {
	if param == nil || param.IsParamArray || !param.ByRef {
		return false
	}
	return IsWritableArgument(arg)
}
