package values

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// CompareMode selects binary-vs-text string comparison, as the built-in
// string search/compare functions' optional mode argument documents.
type CompareMode int

const (
	// CompareBinary compares strings by exact code-unit ordering.
	CompareBinary CompareMode = iota
	// CompareText compares strings case-insensitively using the host
	// locale's collation order.
	CompareText
)

// defaultCollator is shared across every case-insensitive comparison; the
// dialect does not expose a way to change the host locale, so English
// collation order is the stable default (matching the classic host's
// en-US-only deployments).
var defaultCollator = collate.New(language.English, collate.IgnoreCase)

// CompareStrings returns -1, 0, or 1 comparing a and b under mode, matching
// StrComp's contract.
func CompareStrings(a, b string, mode CompareMode) int {
	if mode == CompareBinary {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
	an := norm.NFC.String(a)
	bn := norm.NFC.String(b)
	return defaultCollator.CompareString(an, bn)
}

// EqualStringsFold reports whether a and b are equal under the dialect's
// default case-insensitive string comparison (used for `=`/`<>` on
// strings).
func EqualStringsFold(a, b string) bool {
	return strings.EqualFold(a, b)
}

// Equal implements the dialect's `=` for two already-unwrapped,
// already-non-nullish values. Numeric kinds compare by numeric value;
// strings compare case-insensitively; objects compare by reference
// identity by way of their ClassName/pointer equality, delegated to the
// caller (the evaluator uses `Is` for that, not `=`).
func Equal(a, b Value) (bool, error) {
	_, aStr := a.(StringValue)
	_, bStr := b.(StringValue)
	if aStr && bStr {
		return EqualStringsFold(a.(StringValue).Value, b.(StringValue).Value), nil
	}
	if IsNumeric(a) && IsNumeric(b) {
		fa, err := ToDouble(a)
		if err != nil {
			return false, err
		}
		fb, err := ToDouble(b)
		if err != nil {
			return false, err
		}
		return fa == fb, nil
	}
	if ba, ok := a.(BooleanValue); ok {
		if bb, ok := b.(BooleanValue); ok {
			return ba.Value == bb.Value, nil
		}
	}
	if da, ok := a.(DateValue); ok {
		if db, ok := b.(DateValue); ok {
			return da.Value.Equal(db.Value), nil
		}
	}
	// Mixed string/other falls back to numeric coercion of the string, per
	// the dialect's implicit-conversion comparison rule.
	fa, errA := ToDouble(a)
	fb, errB := ToDouble(b)
	if errA == nil && errB == nil {
		return fa == fb, nil
	}
	return false, mismatch(a, b.Type())
}

// Compare implements the dialect's relational operators (`<`, `<=`, `>`,
// `>=`) returning -1, 0, or 1. If either operand is a string, comparison is
// a case-insensitive string compare; otherwise both operands are coerced
// to Double and compared numerically.
func Compare(a, b Value) (int, error) {
	_, aStr := a.(StringValue)
	_, bStr := b.(StringValue)
	if aStr || bStr {
		sa, err := ToString(a)
		if err != nil {
			return 0, err
		}
		sb, err := ToString(b)
		if err != nil {
			return 0, err
		}
		return CompareStrings(sa, sb, CompareText), nil
	}
	fa, err := ToDouble(a)
	if err != nil {
		return 0, err
	}
	fb, err := ToDouble(b)
	if err != nil {
		return 0, err
	}
	switch {
	case fa < fb:
		return -1, nil
	case fa > fb:
		return 1, nil
	default:
		return 0, nil
	}
}
