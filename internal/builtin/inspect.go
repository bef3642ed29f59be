package builtin

import (
	"github.com/dws-sandbox/basicscript/internal/procedures"
	"github.com/dws-sandbox/basicscript/internal/values"
)

// RegisterInspection registers the Inspection category: TypeName, VarType,
// IsEmpty, IsNull, IsNumeric, IsDate, IsObject, IsArray.
func RegisterInspection(r *procedures.Registry) {
	def := func(name string, fn procedures.Builtin) {
		r.Define(&procedures.Descriptor{Name: name, Kind: procedures.Function, Fn: fn})
	}
	def("TypeName", builtinTypeName)
	def("VarType", builtinVarType)
	def("IsEmpty", predicate(func(v values.Value) bool { _, ok := v.(values.EmptyValue); return ok }))
	def("IsNull", predicate(func(v values.Value) bool { _, ok := v.(values.NullValue); return ok }))
	def("IsNumeric", predicate(isNumericValue))
	def("IsDate", predicate(func(v values.Value) bool { _, ok := v.(values.DateValue); return ok }))
	def("IsObject", predicate(func(v values.Value) bool { _, ok := v.(values.ObjectValue); return ok }))
	def("IsArray", predicate(func(v values.Value) bool { _, ok := v.(values.ArrayValue); return ok }))
}

func predicate(fn func(values.Value) bool) procedures.Builtin {
	return func(args []values.Value, _ []*values.Value) (values.Value, error) {
		if err := exactly("inspection function", args, 1); err != nil {
			return nil, err
		}
		return values.BooleanValue{Value: fn(args[0])}, nil
	}
}

// isNumericValue reports whether v is a numeric variant kind, or a string
// that parses entirely as a number, matching IsNumeric's documented
// string-peeking behavior.
func isNumericValue(v values.Value) bool {
	if values.IsNumeric(v) {
		return true
	}
	s, ok := v.(values.StringValue)
	if !ok {
		return false
	}
	_, err := values.ToDouble(s)
	return err == nil
}

func builtinTypeName(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := exactly("TypeName", args, 1); err != nil {
		return nil, err
	}
	if ov, ok := args[0].(values.ObjectValue); ok && ov.IsNothing() {
		return values.StringValue{Value: "Nothing"}, nil
	}
	return values.StringValue{Value: args[0].Type()}, nil
}

// VarType's fixed numeric codes, preserved from the classic dialect for
// source compatibility with scripts that branch on them directly.
const (
	varTypeEmpty    = 0
	varTypeNull     = 1
	varTypeInteger  = 2
	varTypeLong     = 3
	varTypeSingle   = 4
	varTypeDouble   = 5
	varTypeCurrency = 6
	varTypeDate     = 7
	varTypeString   = 8
	varTypeObject   = 9
	varTypeError    = 10
	varTypeBoolean  = 11
	varTypeByte     = 17
	varTypeArray    = 8192
)

func builtinVarType(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := exactly("VarType", args, 1); err != nil {
		return nil, err
	}
	var code int32
	switch args[0].(type) {
	case values.EmptyValue:
		code = varTypeEmpty
	case values.NullValue:
		code = varTypeNull
	case values.IntegerValue:
		code = varTypeInteger
	case values.LongValue:
		code = varTypeLong
	case values.SingleValue:
		code = varTypeSingle
	case values.DoubleValue:
		code = varTypeDouble
	case values.CurrencyValue:
		code = varTypeCurrency
	case values.DateValue:
		code = varTypeDate
	case values.StringValue:
		code = varTypeString
	case values.ObjectValue:
		code = varTypeObject
	case values.ErrorValue:
		code = varTypeError
	case values.BooleanValue:
		code = varTypeBoolean
	case values.ByteValue:
		code = varTypeByte
	case values.ArrayValue:
		code = varTypeArray
	default:
		code = varTypeEmpty
	}
	return values.LongValue{Value: code}, nil
}
