// Package objects implements the class registry and instance model: class
// descriptors built from a parsed ClassDecl, live instances with their
// field maps, and the Class_Initialize/Class_Terminate lifecycle hooks.
package objects

import (
	"strings"

	"github.com/dws-sandbox/basicscript/internal/ast"
	"github.com/dws-sandbox/basicscript/internal/procedures"
)

func normalize(name string) string { return strings.ToLower(name) }

// ClassDescriptor is the compiled shape of a Class ... End Class block:
// its fields (for instance zero-initialization), and a procedures.Registry
// holding its methods and property accessors keyed by name the same way
// the global registry holds free procedures.
type ClassDescriptor struct {
	Name      string
	Decl      *ast.ClassDecl
	Fields    []*ast.FieldDecl
	Members   *procedures.Registry
	fieldsIdx map[string]*ast.FieldDecl
}

// NewClassDescriptor compiles a parsed ClassDecl into a ClassDescriptor,
// registering each method and property accessor into Members.
func NewClassDescriptor(decl *ast.ClassDecl) *ClassDescriptor {
	cd := &ClassDescriptor{
		Name:      decl.Name.Value,
		Decl:      decl,
		Fields:    decl.Fields,
		Members:   procedures.NewRegistry(),
		fieldsIdx: make(map[string]*ast.FieldDecl, len(decl.Fields)),
	}
	for _, f := range decl.Fields {
		cd.fieldsIdx[normalize(f.Name.Value)] = f
	}
	for _, m := range decl.Methods {
		kind := procedures.Sub
		if m.Kind == ast.ProcFunction {
			kind = procedures.Function
		}
		cd.Members.Define(&procedures.Descriptor{
			Name:       m.Name.Value,
			Kind:       kind,
			Visibility: m.Visibility,
			Parameters: m.Parameters,
			Body:       m.Body,
		})
	}
	for _, p := range decl.Properties {
		kind := procedures.PropertyGet
		switch p.Accessor {
		case ast.PropertyLet:
			kind = procedures.PropertyLet
		case ast.PropertySet:
			kind = procedures.PropertySet
		}
		cd.Members.Define(&procedures.Descriptor{
			Name:       p.Name.Value,
			Kind:       kind,
			Visibility: p.Visibility,
			Parameters: p.Parameters,
			Body:       p.Body,
		})
	}
	return cd
}

// HasField reports whether name is a declared field of this class.
func (cd *ClassDescriptor) HasField(name string) bool {
	_, ok := cd.fieldsIdx[normalize(name)]
	return ok
}

// Method looks up a Sub/Function member by name.
func (cd *ClassDescriptor) Method(name string) (*procedures.Descriptor, bool) {
	d, ok := cd.Members.Lookup(name)
	if !ok || (d.Kind != procedures.Sub && d.Kind != procedures.Function) {
		return nil, false
	}
	return d, true
}

// Accessor looks up a specific property accessor by property name and
// kind.
func (cd *ClassDescriptor) Accessor(name string, kind procedures.Kind) (*procedures.Descriptor, bool) {
	return cd.Members.LookupAccessor(name, kind)
}

// HasProperty reports whether name has any Get/Let/Set accessor.
func (cd *ClassDescriptor) HasProperty(name string) bool {
	for _, k := range []procedures.Kind{procedures.PropertyGet, procedures.PropertyLet, procedures.PropertySet} {
		if _, ok := cd.Accessor(name, k); ok {
			return true
		}
	}
	return false
}

// HasClassInitialize reports whether the class declares a Class_Initialize
// Sub, invoked automatically right after a New instance's fields are
// zero-initialized.
func (cd *ClassDescriptor) HasClassInitialize() bool {
	_, ok := cd.Method("Class_Initialize")
	return ok
}

// HasClassTerminate reports whether the class declares a Class_Terminate
// Sub, invoked automatically (at most once per instance) when a Set
// assignment to a variable replaces a reference to the instance; other
// references are not counted, and leaving a scope does not invoke it.
func (cd *ClassDescriptor) HasClassTerminate() bool {
	_, ok := cd.Method("Class_Terminate")
	return ok
}

// Classes is a case-insensitive registry of class descriptors, the class
// equivalent of procedures.Registry.
type Classes struct {
	entries map[string]*ClassDescriptor
}

// NewClasses creates an empty class registry.
func NewClasses() *Classes {
	return &Classes{entries: make(map[string]*ClassDescriptor)}
}

// Define registers cd under its own Name.
func (c *Classes) Define(cd *ClassDescriptor) {
	c.entries[normalize(cd.Name)] = cd
}

// Lookup finds a class descriptor by name.
func (c *Classes) Lookup(name string) (*ClassDescriptor, bool) {
	cd, ok := c.entries[normalize(name)]
	return cd, ok
}
