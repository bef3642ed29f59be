package builtin

import (
	"strconv"
	"strings"

	"github.com/dws-sandbox/basicscript/internal/procedures"
	"github.com/dws-sandbox/basicscript/internal/values"
)

// RegisterConversion registers the Conversion category: CBool, CByte, CInt,
// CLng, CSng, CDbl, CStr, CDate, CCur, CVar, CVErr, Val, Str, Hex, Oct.
func RegisterConversion(r *procedures.Registry) {
	def := func(name string, fn procedures.Builtin) {
		r.Define(&procedures.Descriptor{Name: name, Kind: procedures.Function, Fn: fn})
	}
	def("CBool", convertWith1(func(v values.Value) (values.Value, error) {
		b, err := values.ToBoolean(v)
		return values.BooleanValue{Value: b}, err
	}))
	def("CByte", convertWith1(func(v values.Value) (values.Value, error) {
		b, err := values.ToByte(v)
		return values.ByteValue{Value: b}, err
	}))
	def("CInt", convertWith1(func(v values.Value) (values.Value, error) {
		i, err := values.ToInteger(v)
		return values.IntegerValue{Value: i}, err
	}))
	def("CLng", convertWith1(func(v values.Value) (values.Value, error) {
		l, err := values.ToLong(v)
		return values.LongValue{Value: l}, err
	}))
	def("CSng", convertWith1(func(v values.Value) (values.Value, error) {
		f, err := values.ToDouble(v)
		return values.SingleValue{Value: float32(f)}, err
	}))
	def("CDbl", convertWith1(func(v values.Value) (values.Value, error) {
		f, err := values.ToDouble(v)
		return values.DoubleValue{Value: f}, err
	}))
	def("CStr", convertWith1(func(v values.Value) (values.Value, error) {
		s, err := values.ToString(v)
		return values.StringValue{Value: s}, err
	}))
	def("CDate", convertWith1(func(v values.Value) (values.Value, error) {
		t, err := values.ToDate(v)
		return values.DateValue{Value: t}, err
	}))
	def("CCur", convertWith1(func(v values.Value) (values.Value, error) {
		f, err := values.ToDouble(v)
		return values.CurrencyValue{Scaled: int64(f * values.CurrencyScale)}, err
	}))
	def("CVar", convertWith1(func(v values.Value) (values.Value, error) { return v, nil }))
	def("CVErr", builtinCVErr)
	def("Val", builtinVal)
	def("Str", builtinStr)
	def("Hex", builtinHex)
	def("Oct", builtinOct)
}

func convertWith1(fn func(values.Value) (values.Value, error)) procedures.Builtin {
	return func(args []values.Value, _ []*values.Value) (values.Value, error) {
		if err := exactly("conversion function", args, 1); err != nil {
			return nil, err
		}
		v, err := fn(args[0])
		if err != nil {
			return nil, typeMismatch("%s", err.Error())
		}
		return v, nil
	}
}

func builtinCVErr(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := exactly("CVErr", args, 1); err != nil {
		return nil, err
	}
	code, err := argLong(args, 0)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	return values.ErrorValue{Code: code}, nil
}

// builtinVal parses the leading numeric prefix of a string, ignoring
// leading whitespace and stopping at the first character that cannot
// extend a valid number, per Val's documented lenient-prefix contract.
func builtinVal(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := exactly("Val", args, 1); err != nil {
		return nil, err
	}
	s, err := argString(args, 0)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	s = strings.TrimLeft(s, " \t")
	end := 0
	seenDot, seenDigit, seenExp := false, false, false
	for end < len(s) {
		c := s[end]
		switch {
		case c >= '0' && c <= '9':
			seenDigit = true
		case c == '.' && !seenDot && !seenExp:
			seenDot = true
		case (c == '+' || c == '-') && end == 0:
		case (c == 'e' || c == 'E') && seenDigit && !seenExp:
			seenExp = true
		default:
			goto done
		}
		end++
	}
done:
	prefix := strings.TrimRight(s[:end], "eE+-.")
	if prefix == "" {
		return values.DoubleValue{Value: 0}, nil
	}
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return values.DoubleValue{Value: 0}, nil
	}
	return values.DoubleValue{Value: f}, nil
}

// builtinStr implements Str: a number's textual form with a leading space
// reserved for the sign of non-negative numbers, the classic dialect's
// "space instead of plus" convention.
func builtinStr(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := exactly("Str", args, 1); err != nil {
		return nil, err
	}
	f, err := argDouble(args, 0)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if f >= 0 {
		s = " " + s
	}
	return values.StringValue{Value: s}, nil
}

func builtinHex(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := exactly("Hex", args, 1); err != nil {
		return nil, err
	}
	n, err := argLong(args, 0)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	return values.StringValue{Value: strings.ToUpper(strconv.FormatInt(int64(n), 16))}, nil
}

func builtinOct(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := exactly("Oct", args, 1); err != nil {
		return nil, err
	}
	n, err := argLong(args, 0)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	return values.StringValue{Value: strconv.FormatInt(int64(n), 8)}, nil
}
