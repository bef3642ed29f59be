package builtin

import (
	"github.com/dws-sandbox/basicscript/internal/procedures"
	"github.com/dws-sandbox/basicscript/internal/values"
)

// RegisterAll wires every built-in category (spec.md §4.4) into r: String,
// Math, Conversion, Inspection, Date, Array, Dialog, and Print (the last two
// bound to host since MsgBox/InputBox/Print delegate to it). RegExp and
// Dictionary are not procedures at all — they are `New`-able host objects,
// registered separately via ClassFactories against an evaluator.Interpreter.
func RegisterAll(r *procedures.Registry, host Host) {
	RegisterStrings(r)
	RegisterMath(r)
	RegisterConversion(r)
	RegisterInspection(r)
	RegisterDateTime(r)
	RegisterArray(r)
	RegisterDialog(r, host)
	RegisterIO(r, host)
}

// ClassFactories returns the `New <name>`-able host object constructors
// this package supplies: RegExp and the Scripting.Dictionary-style
// collaborator. Each entry is a (lower-cased name, constructor) pair meant
// for Interpreter.RegisterBuiltinClass.
func ClassFactories() map[string]func() values.Value {
	return map[string]func() values.Value{
		"regexp": func() values.Value {
			return values.ObjectValue{Instance: NewRegExp()}
		},
		"dictionary": func() values.Value {
			return values.ObjectValue{Instance: NewDictionary()}
		},
	}
}
