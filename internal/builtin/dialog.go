package builtin

import (
	"github.com/dws-sandbox/basicscript/internal/procedures"
	"github.com/dws-sandbox/basicscript/internal/values"
)

// RegisterDialog registers the Dialog category (spec.md §4.4): MsgBox and
// InputBox, both delegating to host. Unlike the other Register* functions
// these close over a collaborator rather than operating purely on
// already-evaluated arguments, since a prompt/alert surface is inherently
// a host capability (spec.md §1's "Out of scope" list names it an external
// collaborator).
func RegisterDialog(r *procedures.Registry, host Host) {
	def := func(name string, kind procedures.Kind, fn procedures.Builtin) {
		r.Define(&procedures.Descriptor{Name: name, Kind: kind, Fn: fn})
	}
	def("MsgBox", procedures.Function, func(args []values.Value, _ []*values.Value) (values.Value, error) {
		if err := between("MsgBox", args, 1, 3); err != nil {
			return nil, err
		}
		prompt, err := argString(args, 0)
		if err != nil {
			return nil, err
		}
		buttons, err := optLong(args, 1, 0)
		if err != nil {
			return nil, typeMismatch("%s", err.Error())
		}
		title, err := optString(args, 2, "")
		if err != nil {
			return nil, err
		}
		result, err := host.MsgBox(prompt, title, buttons)
		if err != nil {
			return nil, invalidCall("MsgBox: %s", err.Error())
		}
		return values.LongValue{Value: result}, nil
	})
	def("InputBox", procedures.Function, func(args []values.Value, _ []*values.Value) (values.Value, error) {
		if err := between("InputBox", args, 1, 3); err != nil {
			return nil, err
		}
		prompt, err := argString(args, 0)
		if err != nil {
			return nil, err
		}
		title, err := optString(args, 1, "")
		if err != nil {
			return nil, err
		}
		def, err := optString(args, 2, "")
		if err != nil {
			return nil, err
		}
		result, err := host.InputBox(prompt, title, def)
		if err != nil {
			return nil, invalidCall("InputBox: %s", err.Error())
		}
		return values.StringValue{Value: result}, nil
	})
}
