package builtin

import (
	"strings"

	"github.com/dws-sandbox/basicscript/internal/procedures"
	"github.com/dws-sandbox/basicscript/internal/values"
)

// RegisterStrings registers the String category: length, substring by
// left/right/mid, forward/reverse search with start index and comparison
// mode, case transforms, trim variants, replace, reverse, repeat,
// character<->code, compare, split/join.
func RegisterStrings(r *procedures.Registry) {
	def := func(name string, fn procedures.Builtin) {
		r.Define(&procedures.Descriptor{Name: name, Kind: procedures.Function, Fn: fn})
	}
	def("Len", builtinLen)
	def("Left", builtinLeft)
	def("Right", builtinRight)
	def("Mid", builtinMid)
	def("InStr", builtinInStr)
	def("InStrRev", builtinInStrRev)
	def("UCase", transformString(strings.ToUpper))
	def("LCase", transformString(strings.ToLower))
	def("Trim", transformString(strings.TrimSpace))
	def("LTrim", transformString(func(s string) string { return strings.TrimLeft(s, " \t\n\r") }))
	def("RTrim", transformString(func(s string) string { return strings.TrimRight(s, " \t\n\r") }))
	def("Replace", builtinReplace)
	def("StrReverse", builtinStrReverse)
	def("String", builtinStringRepeat)
	def("Chr", builtinChr)
	def("Asc", builtinAsc)
	def("StrComp", builtinStrComp)
	def("Split", builtinSplit)
	def("Join", builtinJoin)
}

func compareMode(args []values.Value, i int) (values.CompareMode, error) {
	n, err := optLong(args, i, 0)
	if err != nil {
		return values.CompareBinary, err
	}
	if n == 1 {
		return values.CompareText, nil
	}
	return values.CompareBinary, nil
}

func builtinLen(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := exactly("Len", args, 1); err != nil {
		return nil, err
	}
	s, err := argString(args, 0)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	return values.LongValue{Value: int32(len(toUTF16(s)))}, nil
}

func builtinLeft(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := exactly("Left", args, 2); err != nil {
		return nil, err
	}
	s, err := argString(args, 0)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	n, err := argLong(args, 1)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	if n < 0 {
		return nil, invalidCall("Left: negative length %d", n)
	}
	u := toUTF16(s)
	if int(n) > len(u) {
		n = int32(len(u))
	}
	return values.StringValue{Value: fromUTF16(u[:n])}, nil
}

func builtinRight(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := exactly("Right", args, 2); err != nil {
		return nil, err
	}
	s, err := argString(args, 0)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	n, err := argLong(args, 1)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	if n < 0 {
		return nil, invalidCall("Right: negative length %d", n)
	}
	u := toUTF16(s)
	if int(n) > len(u) {
		n = int32(len(u))
	}
	return values.StringValue{Value: fromUTF16(u[len(u)-int(n):])}, nil
}

// builtinMid implements Mid(str, start[, length]): start is 1-based: a
// start beyond the string's length yields an empty string.
func builtinMid(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := between("Mid", args, 2, 3); err != nil {
		return nil, err
	}
	s, err := argString(args, 0)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	start, err := argLong(args, 1)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	if start < 1 {
		return nil, invalidCall("Mid: start must be >= 1, got %d", start)
	}
	u := toUTF16(s)
	from := int(start) - 1
	if from >= len(u) {
		return values.StringValue{Value: ""}, nil
	}
	length := len(u) - from
	if len(args) == 3 {
		n, err := argLong(args, 2)
		if err != nil {
			return nil, typeMismatch("%s", err.Error())
		}
		if n < 0 {
			return nil, invalidCall("Mid: negative length %d", n)
		}
		if int(n) < length {
			length = int(n)
		}
	}
	return values.StringValue{Value: fromUTF16(u[from : from+length])}, nil
}

// builtinInStr implements InStr([start,] str1, str2[, compare]): searching
// forward for str2 within str1, returning a 1-based index or 0 when absent.
func builtinInStr(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := between("InStr", args, 2, 4); err != nil {
		return nil, err
	}
	start := int32(1)
	strIdx := 0
	if _, ok := args[0].(values.StringValue); !ok {
		n, err := argLong(args, 0)
		if err != nil {
			return nil, typeMismatch("%s", err.Error())
		}
		start = n
		strIdx = 1
	}
	if start < 1 {
		return nil, invalidCall("InStr: start must be >= 1, got %d", start)
	}
	haystack, err := argString(args, strIdx)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	needle, err := argString(args, strIdx+1)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	mode, err := compareMode(args, strIdx+2)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	u := toUTF16(haystack)
	n := toUTF16(needle)
	from := int(start) - 1
	if from > len(u) {
		return values.LongValue{Value: 0}, nil
	}
	idx := indexUTF16(u[from:], n, mode)
	if idx < 0 {
		return values.LongValue{Value: 0}, nil
	}
	return values.LongValue{Value: int32(from + idx + 1)}, nil
}

// builtinInStrRev implements InStrRev(str1, str2[, start[, compare]]):
// searching backward from start (1-based, default end of string).
func builtinInStrRev(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := between("InStrRev", args, 2, 4); err != nil {
		return nil, err
	}
	haystack, err := argString(args, 0)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	needle, err := argString(args, 1)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	u := toUTF16(haystack)
	start, err := optLong(args, 2, int32(len(u)))
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	mode, err := compareMode(args, 3)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	if int(start) > len(u) {
		start = int32(len(u))
	}
	n := toUTF16(needle)
	window := u[:start]
	for end := len(window); end >= 0; end-- {
		if end < len(n) {
			break
		}
		if utf16Equal(window[end-len(n):end], n, mode) {
			return values.LongValue{Value: int32(end - len(n) + 1)}, nil
		}
	}
	return values.LongValue{Value: 0}, nil
}

func indexUTF16(haystack, needle []uint16, mode values.CompareMode) int {
	if len(needle) == 0 {
		return 0
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if utf16Equal(haystack[i:i+len(needle)], needle, mode) {
			return i
		}
	}
	return -1
}

func utf16Equal(a, b []uint16, mode values.CompareMode) bool {
	if mode == values.CompareText {
		return values.EqualStringsFold(fromUTF16(a), fromUTF16(b))
	}
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func transformString(fn func(string) string) procedures.Builtin {
	return func(args []values.Value, _ []*values.Value) (values.Value, error) {
		if err := exactly("string transform", args, 1); err != nil {
			return nil, err
		}
		s, err := argString(args, 0)
		if err != nil {
			return nil, typeMismatch("%s", err.Error())
		}
		return values.StringValue{Value: fn(s)}, nil
	}
}

// builtinReplace implements Replace(expr, find, replace[, start[, count[, compare]]]).
func builtinReplace(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := between("Replace", args, 3, 6); err != nil {
		return nil, err
	}
	expr, err := argString(args, 0)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	find, err := argString(args, 1)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	repl, err := argString(args, 2)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	start, err := optLong(args, 3, 1)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	count, err := optLong(args, 4, -1)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	mode, err := compareMode(args, 5)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	if start < 1 {
		return nil, invalidCall("Replace: start must be >= 1, got %d", start)
	}

	u := toUTF16(expr)
	from := int(start) - 1
	if from > len(u) {
		from = len(u)
	}
	head := fromUTF16(u[:from])
	tail := fromUTF16(u[from:])

	if find == "" {
		return values.StringValue{Value: expr}, nil
	}
	limit := -1
	if count >= 0 {
		limit = int(count)
	}
	if mode == values.CompareText {
		tail = replaceFold(tail, find, repl, limit)
	} else {
		tail = strings.Replace(tail, find, repl, limit)
	}
	return values.StringValue{Value: head + tail}, nil
}

// replaceFold is strings.Replace's algorithm under case-insensitive match,
// used when Replace's compare mode argument requests text comparison.
func replaceFold(s, find, repl string, limit int) string {
	if find == "" {
		return s
	}
	var b strings.Builder
	lowerS := strings.ToLower(s)
	lowerFind := strings.ToLower(find)
	count := 0
	for {
		if limit >= 0 && count >= limit {
			b.WriteString(s)
			break
		}
		idx := strings.Index(lowerS, lowerFind)
		if idx < 0 {
			b.WriteString(s)
			break
		}
		b.WriteString(s[:idx])
		b.WriteString(repl)
		s = s[idx+len(find):]
		lowerS = lowerS[idx+len(find):]
		count++
	}
	return b.String()
}

func builtinStrReverse(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := exactly("StrReverse", args, 1); err != nil {
		return nil, err
	}
	s, err := argString(args, 0)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	u := toUTF16(s)
	for i, j := 0, len(u)-1; i < j; i, j = i+1, j-1 {
		u[i], u[j] = u[j], u[i]
	}
	return values.StringValue{Value: fromUTF16(u)}, nil
}

// builtinStringRepeat implements String(count, char): char may be a string
// (its first character is used) or a character code.
func builtinStringRepeat(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := exactly("String", args, 2); err != nil {
		return nil, err
	}
	count, err := argLong(args, 0)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	if count < 0 {
		return nil, invalidCall("String: negative count %d", count)
	}
	var ch rune
	if sv, ok := args[1].(values.StringValue); ok {
		r := []rune(sv.Value)
		if len(r) == 0 {
			return nil, invalidCall("String: empty character argument")
		}
		ch = r[0]
	} else {
		code, err := argLong(args, 1)
		if err != nil {
			return nil, typeMismatch("%s", err.Error())
		}
		ch = rune(code)
	}
	return values.StringValue{Value: strings.Repeat(string(ch), int(count))}, nil
}

func builtinChr(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := exactly("Chr", args, 1); err != nil {
		return nil, err
	}
	code, err := argLong(args, 0)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	if code < 0 || code > 0x10FFFF {
		return nil, invalidCall("Chr: code point out of range: %d", code)
	}
	return values.StringValue{Value: string(rune(code))}, nil
}

func builtinAsc(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := exactly("Asc", args, 1); err != nil {
		return nil, err
	}
	s, err := argString(args, 0)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	r := []rune(s)
	if len(r) == 0 {
		return nil, invalidCall("Asc: empty string")
	}
	return values.LongValue{Value: int32(r[0])}, nil
}

func builtinStrComp(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := between("StrComp", args, 2, 3); err != nil {
		return nil, err
	}
	a, err := argString(args, 0)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	b, err := argString(args, 1)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	mode, err := compareMode(args, 2)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	return values.LongValue{Value: int32(values.CompareStrings(a, b, mode))}, nil
}

// builtinSplit implements Split(expr[, delimiter[, limit[, compare]]]),
// returning a 1-dimensional zero-based Array of String.
func builtinSplit(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := between("Split", args, 1, 4); err != nil {
		return nil, err
	}
	s, err := argString(args, 0)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	delim, err := optString(args, 1, " ")
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	limit, err := optLong(args, 2, -1)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}

	var parts []string
	if limit >= 0 {
		parts = strings.SplitN(s, delim, int(limit))
	} else {
		parts = strings.Split(s, delim)
	}
	return stringArray(parts), nil
}

// builtinJoin implements Join(array[, delimiter]).
func builtinJoin(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := between("Join", args, 1, 2); err != nil {
		return nil, err
	}
	av, ok := args[0].(values.ArrayValue)
	if !ok {
		return nil, typeMismatch("Join expects an Array, got %s", args[0].Type())
	}
	delim, err := optString(args, 1, " ")
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	elems, err := arrayElements(av)
	if err != nil {
		return nil, err
	}
	parts := make([]string, len(elems))
	for i, v := range elems {
		parts[i], _ = values.ToString(v)
	}
	return values.StringValue{Value: strings.Join(parts, delim)}, nil
}
