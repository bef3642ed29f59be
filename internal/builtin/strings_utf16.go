package builtin

import "unicode/utf16"

// toUTF16 and fromUTF16 bridge the dialect's UTF-16-code-unit string model
// (values.StringValue's doc comment) to Go's UTF-8 strings, used by every
// indexing/length built-in below so multi-byte characters outside the BMP
// count as two units, matching the classic host's string representation.
func toUTF16(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

func fromUTF16(u []uint16) string {
	return string(utf16.Decode(u))
}
