package builtin

import (
	"strings"

	"github.com/dws-sandbox/basicscript/internal/procedures"
	"github.com/dws-sandbox/basicscript/internal/values"
)

// RegisterIO registers the one statement-shaped host side effect this
// dialect exposes beyond Dialog: `Print expr, expr, ...`, a Sub (called
// without parentheses, per the call-vs-index ambiguity rule) that joins its
// arguments with a space and writes them followed by a newline through
// host.Write. Every other built-in category is a pure function over
// already-evaluated arguments; this is the one that needs the host
// collaborator, same as MsgBox/InputBox.
func RegisterIO(r *procedures.Registry, host Host) {
	r.Define(&procedures.Descriptor{
		Name: "Print",
		Kind: procedures.Sub,
		Fn: func(args []values.Value, _ []*values.Value) (values.Value, error) {
			parts := make([]string, len(args))
			for i, a := range args {
				s, err := values.ToString(a)
				if err != nil {
					return nil, err
				}
				parts[i] = s
			}
			host.Write(strings.Join(parts, " ") + "\n")
			return values.Empty, nil
		},
	})
}
