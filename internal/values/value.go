// Package values implements the variant value model: the tagged union of
// runtime values that every expression in the script language evaluates to,
// plus the total coercions, equality/ordering rules, and numeric promotion
// that the evaluator dispatches through.
package values

import (
	"fmt"
	"strconv"
	"time"
)

// Value is satisfied by every runtime variant kind. It deliberately avoids
// interface{} so the evaluator's type switches stay exhaustive and the
// compiler catches missing cases.
type Value interface {
	// Type returns the canonical variant type name (e.g. "Integer",
	// "String"), used by TypeName/VarType and in error messages.
	Type() string
	// String returns the value's default textual rendering, as produced by
	// CStr/string concatenation.
	String() string
}

// EmptyValue is the uninitialized Variant state: what an unassigned
// variable holds before any value is stored in it.
type EmptyValue struct{}

func (EmptyValue) Type() string   { return "Empty" }
func (EmptyValue) String() string { return "" }

// Empty is the singleton Empty value; all uninitialized variables share it.
var Empty = EmptyValue{}

// NullValue is the explicit "no value" Variant state, distinct from Empty.
type NullValue struct{}

func (NullValue) Type() string   { return "Null" }
func (NullValue) String() string { return "Null" }

// Null is the singleton Null value.
var Null = NullValue{}

// BooleanValue holds a Boolean variant.
type BooleanValue struct {
	Value bool
}

func (b BooleanValue) Type() string { return "Boolean" }
func (b BooleanValue) String() string {
	if b.Value {
		return "True"
	}
	return "False"
}

// ByteValue holds an 8-bit unsigned Byte variant (0..255).
type ByteValue struct {
	Value uint8
}

func (b ByteValue) Type() string   { return "Byte" }
func (b ByteValue) String() string { return strconv.FormatUint(uint64(b.Value), 10) }

// IntegerValue holds a 16-bit signed Integer variant.
type IntegerValue struct {
	Value int16
}

func (i IntegerValue) Type() string   { return "Integer" }
func (i IntegerValue) String() string { return strconv.FormatInt(int64(i.Value), 10) }

// LongValue holds a 32-bit signed Long variant.
type LongValue struct {
	Value int32
}

func (l LongValue) Type() string   { return "Long" }
func (l LongValue) String() string { return strconv.FormatInt(int64(l.Value), 10) }

// SingleValue holds a single-precision floating Variant.
type SingleValue struct {
	Value float32
}

func (s SingleValue) Type() string   { return "Single" }
func (s SingleValue) String() string { return strconv.FormatFloat(float64(s.Value), 'g', -1, 32) }

// DoubleValue holds a double-precision floating Variant.
type DoubleValue struct {
	Value float64
}

func (d DoubleValue) Type() string   { return "Double" }
func (d DoubleValue) String() string { return strconv.FormatFloat(d.Value, 'g', -1, 64) }

// CurrencyValue holds a 64-bit fixed-point Currency variant, scaled by
// CurrencyScale (four decimal places, the classic ten-thousandth unit).
type CurrencyValue struct {
	// Scaled is the value multiplied by CurrencyScale and truncated, so
	// 12.3456 is stored as 123456.
	Scaled int64
}

// CurrencyScale is the fixed-point scale factor for Currency values.
const CurrencyScale = 10000

func (c CurrencyValue) Type() string { return "Currency" }
func (c CurrencyValue) String() string {
	whole := c.Scaled / CurrencyScale
	frac := c.Scaled % CurrencyScale
	if frac < 0 {
		frac = -frac
	}
	return fmt.Sprintf("%d.%04d", whole, frac)
}

// DateValue holds a Date variant: a single instant combining date and time
// of day, matching the dialect's unified Date/Time type.
type DateValue struct {
	Value time.Time
}

func (d DateValue) Type() string   { return "Date" }
func (d DateValue) String() string { return d.Value.Format("1/2/2006 3:04:05 PM") }

// StringValue holds a String variant. Length and indexing operate on UTF-16
// code units per the dialect's string model; the stored Go string is valid
// UTF-8 and recoded on demand by the built-in library's indexing helpers.
type StringValue struct {
	Value string
}

func (s StringValue) Type() string   { return "String" }
func (s StringValue) String() string { return s.Value }

// ErrorValue holds a numeric Error variant, as produced by CVErr.
type ErrorValue struct {
	Code int32
}

func (e ErrorValue) Type() string   { return "Error" }
func (e ErrorValue) String() string { return "Error " + strconv.FormatInt(int64(e.Code), 10) }

// Object is implemented by class instances (internal/objects) so that
// values can hold an object reference without this package importing the
// class/instance machinery.
type Object interface {
	ClassName() string
	String() string
}

// ObjectValue holds an Object variant: either a reference to a live
// instance, or Nothing when Instance is nil.
type ObjectValue struct {
	Instance Object
}

func (o ObjectValue) Type() string { return "Object" }
func (o ObjectValue) String() string {
	if o.Instance == nil {
		return "Nothing"
	}
	return o.Instance.String()
}

// IsNothing reports whether an Object variant is the null reference.
func (o ObjectValue) IsNothing() bool { return o.Instance == nil }

// Nothing is the null Object reference.
var Nothing = ObjectValue{}

// Array is implemented by internal/array's dynamic array type so that
// values can hold an Array variant without this package importing the
// array storage machinery.
type Array interface {
	Value
	Dims() []int
	LowerBound(dim int) int
	UpperBound(dim int) int
}

// ArrayValue holds an Array variant: a handle to dynamic array storage.
type ArrayValue struct {
	Array Array
}

func (a ArrayValue) Type() string { return "Array" }
func (a ArrayValue) String() string {
	if a.Array == nil {
		return "()"
	}
	return a.Array.String()
}

// IsNumeric reports whether v's variant kind participates in arithmetic.
func IsNumeric(v Value) bool {
	switch v.(type) {
	case ByteValue, IntegerValue, LongValue, SingleValue, DoubleValue, CurrencyValue:
		return true
	default:
		return false
	}
}

// IsNullish reports whether v is Empty or Null (but not Nothing, which is
// an Object variant and handled separately by the evaluator).
func IsNullish(v Value) bool {
	switch v.(type) {
	case EmptyValue, NullValue:
		return true
	default:
		return false
	}
}
