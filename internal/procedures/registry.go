// Package procedures implements the name-to-descriptor registry the
// evaluator dispatches calls through, plus the by-reference parameter
// binding decision shared by user procedures and built-ins.
package procedures

import (
	"fmt"
	"strings"

	"github.com/dws-sandbox/basicscript/internal/ast"
	"github.com/dws-sandbox/basicscript/internal/values"
)

// Kind distinguishes a registered callable's calling convention.
type Kind int

const (
	Sub Kind = iota
	Function
	PropertyGet
	PropertyLet
	PropertySet
)

func (k Kind) String() string {
	switch k {
	case Sub:
		return "Sub"
	case Function:
		return "Function"
	case PropertyGet:
		return "Property Get"
	case PropertyLet:
		return "Property Let"
	case PropertySet:
		return "Property Set"
	default:
		return "Unknown"
	}
}

// Builtin is a built-in function or statement's Go implementation. args are
// already-evaluated argument values; refs holds a settable cell for every
// by-reference parameter the caller supplied a writable argument for (nil
// entries for parameters that were passed by value or had no matching
// argument), letting built-ins like Mid$ or Swap write back through it.
type Builtin func(args []values.Value, refs []*values.Value) (values.Value, error)

// Descriptor is a single registered callable: a user-defined procedure
// (Body non-nil) or a built-in (Fn non-nil).
type Descriptor struct {
	Name       string
	Kind       Kind
	Visibility ast.Visibility
	Parameters []*ast.Parameter
	Body       *ast.BlockStatement
	Fn         Builtin
}

// IsBuiltin reports whether this descriptor dispatches to Go code rather
// than an interpreted body.
func (d *Descriptor) IsBuiltin() bool { return d.Fn != nil }

func normalize(name string) string { return strings.ToLower(name) }

// Registry is a case-insensitive name -> Descriptor table. A single
// Registry holds both free procedures (global Subs/Functions and
// built-ins) and, separately per class, its methods and property
// accessors (internal/objects keeps one Registry per class descriptor).
type Registry struct {
	entries map[string]*Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Descriptor)}
}

// ErrAlreadyDefined describes a name that collides with an existing
// registration of a different kind (e.g. a Sub and a Function sharing a
// name). Define does not return it: a later Define of the same name
// replaces the earlier entry. Same-name Property Get/Let/Set triples are
// tracked by Accessors.
type ErrAlreadyDefined struct {
	Name string
}

func (e *ErrAlreadyDefined) Error() string {
	return fmt.Sprintf("%s is already defined", e.Name)
}

// Define registers desc under its own Name. Re-registering a
// Sub/Function overwrites the previous entry (the last declaration in a
// unit wins, matching the dialect's single compilation-unit model); a
// Property accessor is stored separately per Kind so Get/Let/Set on the
// same property name coexist.
func (r *Registry) Define(desc *Descriptor) {
	key := registryKey(desc.Name, desc.Kind)
	r.entries[key] = desc
}

// registryKey folds property accessor kinds into the same bucket as their
// property name, but keeps Get/Let/Set distinct from each other.
func registryKey(name string, kind Kind) string {
	switch kind {
	case PropertyGet, PropertyLet, PropertySet:
		return normalize(name) + "#" + kind.String()
	default:
		return normalize(name)
	}
}

// Lookup finds a Sub/Function/built-in by name.
func (r *Registry) Lookup(name string) (*Descriptor, bool) {
	d, ok := r.entries[normalize(name)]
	return d, ok
}

// LookupAccessor finds a specific property accessor by property name and
// kind.
func (r *Registry) LookupAccessor(name string, kind Kind) (*Descriptor, bool) {
	d, ok := r.entries[registryKey(name, kind)]
	return d, ok
}

// Has reports whether name is registered as a Sub/Function/built-in.
func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Names returns the distinct names of every registered user-defined Sub or
// Function (built-ins and Property accessors excluded), for hosts that
// mirror script procedures into an external global namespace (spec.md
// §6's injectGlobals option).
func (r *Registry) Names() []string {
	seen := make(map[string]bool)
	var out []string
	for _, d := range r.entries {
		if d.IsBuiltin() || (d.Kind != Sub && d.Kind != Function) {
			continue
		}
		key := normalize(d.Name)
		if !seen[key] {
			seen[key] = true
			out = append(out, d.Name)
		}
	}
	return out
}
