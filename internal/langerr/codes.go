// Package langerr implements the dialect's runtime error model: the fixed
// numeric error codes, a message catalog, and constructor functions that
// the evaluator and built-in library raise through.
package langerr

// Code is one of the dialect's numeric error codes, preserved for source
// compatibility with scripts that inspect Err.Number directly.
type Code int

const (
	InvalidProcedureCall                Code = 5
	Overflow                            Code = 6
	OutOfMemory                         Code = 7
	SubscriptOutOfRange                 Code = 9
	DivisionByZero                      Code = 11
	TypeMismatch                        Code = 13
	BadFileNameOrNumber                 Code = 52
	ObjectRequired                      Code = 424
	ObjectDoesntSupportPropertyOrMethod Code = 438
	InvalidQualifier                    Code = 450

	VariableNotDefined Code = 500

	// Timeout is a pseudo-code for the wall-clock deadline condition; it
	// has no counterpart in the historical numbering and bypasses On Error
	// Resume Next entirely (see RuntimeError.Resumable).
	Timeout Code = 1000

	// Syntax is a pseudo-code used by parser/lexer errors, which are never
	// resumable: they abort the unit being compiled.
	Syntax Code = 1001
)

// defaultDescriptions gives every code the message Err.Description carries
// when a constructor below is used without an explicit override.
var defaultDescriptions = map[Code]string{
	InvalidProcedureCall:                "Invalid procedure call or argument",
	Overflow:                            "Overflow",
	OutOfMemory:                         "Out of memory",
	SubscriptOutOfRange:                 "Subscript out of range",
	DivisionByZero:                      "Division by zero",
	TypeMismatch:                        "Type mismatch",
	BadFileNameOrNumber:                 "Bad file name or number",
	ObjectRequired:                      "Object required",
	ObjectDoesntSupportPropertyOrMethod: "Object doesn't support this property or method",
	InvalidQualifier:                    "Invalid qualifier",
	VariableNotDefined:                  "Variable is undefined",
	Timeout:                             "Script execution timed out",
	Syntax:                              "Syntax error",
}

// Description returns the default Err.Description text for a code.
func Description(c Code) string {
	if msg, ok := defaultDescriptions[c]; ok {
		return msg
	}
	return "Unspecified error"
}
