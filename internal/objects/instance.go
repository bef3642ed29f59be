package objects

import (
	"github.com/google/uuid"

	"github.com/dws-sandbox/basicscript/internal/values"
)

// Instance is a live object: its class descriptor, a field-value map
// zero-initialized to Empty at construction, and a UUID used as an
// auxiliary identity tag (diagnostics, FFI object handles). The `Is`
// operator's primary comparison is still Go pointer identity between two
// *Instance values; the UUID is not consulted by `Is` itself.
type Instance struct {
	Class     *ClassDescriptor
	fields    map[string]values.Value
	ID        uuid.UUID
	Destroyed bool
}

// New creates an instance of cd with every declared field set to Empty.
// The evaluator runs field initializers and Class_Initialize afterward.
func New(cd *ClassDescriptor) *Instance {
	inst := &Instance{
		Class:  cd,
		fields: make(map[string]values.Value, len(cd.Fields)),
		ID:     uuid.New(),
	}
	for _, f := range cd.Fields {
		inst.fields[normalize(f.Name.Value)] = values.Empty
	}
	return inst
}

// ClassName satisfies values.Object.
func (inst *Instance) ClassName() string { return inst.Class.Name }

// String satisfies values.Object and values.Value (by way of
// values.ObjectValue wrapping this Instance).
func (inst *Instance) String() string { return inst.Class.Name }

// GetField reads a field's current value.
func (inst *Instance) GetField(name string) (values.Value, bool) {
	v, ok := inst.fields[normalize(name)]
	return v, ok
}

// SetField writes a field's value; the caller (the evaluator) is
// responsible for having already checked HasField/dispatched to a Let/Set
// accessor first.
func (inst *Instance) SetField(name string, v values.Value) {
	inst.fields[normalize(name)] = v
}

// Fields returns every field name currently set, for inspection/debugging.
func (inst *Instance) Fields() map[string]values.Value {
	return inst.fields
}

// AsValue wraps inst as the Object variant the evaluator stores in a
// scope slot.
func (inst *Instance) AsValue() values.ObjectValue {
	return values.ObjectValue{Instance: inst}
}
