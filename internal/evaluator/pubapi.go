package evaluator

import (
	"github.com/dws-sandbox/basicscript/internal/langerr"
	"github.com/dws-sandbox/basicscript/internal/token"
	"github.com/dws-sandbox/basicscript/internal/values"
)

// CallNamed invokes a registered Sub/Function by name with already
// evaluated arguments and no by-reference write-back — the caller holds
// plain Go-bridged values, not script lvalues to write back into.
// pkg/script's `run(procedureName, args...)` embedding entry point
// (spec.md §6) is built directly on this.
func (e *Evaluator) CallNamed(name string, args []values.Value) (values.Value, error) {
	desc, ok := e.Procedures.Lookup(name)
	if !ok {
		return nil, langerr.Newf(langerr.InvalidProcedureCall, token.Position{}, "procedure '%s' is not defined", name)
	}
	return e.callWithValues(desc, args, nil, token.Position{})
}

// HasProcedure reports whether name is registered as a callable Sub or
// Function (built-in or user-defined).
func (e *Evaluator) HasProcedure(name string) bool {
	return e.Procedures.Has(name)
}
