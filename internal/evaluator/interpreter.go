// Package evaluator implements the tree-walking statement executor and
// expression evaluator: operator semantics, assignment dispatch, control
// flow, procedure/property call dispatch, and the On Error Resume Next
// state machine, wired together over internal/values, internal/array,
// internal/runtime, internal/procedures, internal/objects, and
// internal/langerr.
package evaluator

import (
	"strings"
	"time"

	"github.com/dws-sandbox/basicscript/internal/objects"
	"github.com/dws-sandbox/basicscript/internal/procedures"
	"github.com/dws-sandbox/basicscript/internal/runtime"
	"github.com/dws-sandbox/basicscript/internal/values"
)

// Interpreter is the shared, single-threaded execution state described by
// spec.md §3: the global scope, the current scope, the procedure and class
// registries, the With and call stacks, the error handler and Err record,
// and an optional wall-clock deadline.
type Interpreter struct {
	Global *runtime.Scope
	Scope  *runtime.Scope

	Procedures *procedures.Registry
	Classes    *objects.Classes

	With  *runtime.WithStack
	Calls *runtime.CallStack

	Err     ErrRecord
	handler errorHandler
	resume  *resumeState

	// OptionExplicit requires Dim before assignment; set from an `Option
	// Explicit` statement or the host's optionExplicit configuration option.
	OptionExplicit bool

	// Deadline is the wall-clock instant execution must not run past. The
	// zero Time means unlimited, per spec.md §5's single cooperative
	// cancellation mechanism.
	Deadline time.Time

	// builtinClasses holds host-object constructors reachable from `New
	// <Name>` that are not ClassDecl-backed script classes — RegExp and
	// Dictionary, registered by the embedding layer (pkg/script) rather
	// than hardcoded here, so internal/evaluator never imports
	// internal/builtin. Keyed by lower-cased class name.
	builtinClasses map[string]func() values.Value
}

// RegisterBuiltinClass makes `New <name>` construct a host object via
// factory instead of looking it up in the script class registry. A script
// class of the same name always wins, matching how a compilation unit's
// own declarations take precedence over ambient collaborators.
func (in *Interpreter) RegisterBuiltinClass(name string, factory func() values.Value) {
	if in.builtinClasses == nil {
		in.builtinClasses = make(map[string]func() values.Value)
	}
	in.builtinClasses[strings.ToLower(name)] = factory
}

// lookupBuiltinClass finds a host-object factory registered under name.
func (in *Interpreter) lookupBuiltinClass(name string) (func() values.Value, bool) {
	factory, ok := in.builtinClasses[strings.ToLower(name)]
	return factory, ok
}

// New creates an interpreter with a fresh global scope and empty registries.
func New() *Interpreter {
	global := runtime.NewScope(nil)
	return &Interpreter{
		Global:     global,
		Scope:      global,
		Procedures: procedures.NewRegistry(),
		Classes:    objects.NewClasses(),
		With:       &runtime.WithStack{},
		Calls:      &runtime.CallStack{},
	}
}

// hasDeadline reports whether a wall-clock budget is in effect.
func (in *Interpreter) hasDeadline() bool { return !in.Deadline.IsZero() }

// deadlineExceeded reports whether the configured deadline has passed.
func (in *Interpreter) deadlineExceeded() bool {
	return in.hasDeadline() && time.Now().After(in.Deadline)
}
