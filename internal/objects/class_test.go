package objects

import (
	"testing"

	"github.com/dws-sandbox/basicscript/internal/ast"
	"github.com/dws-sandbox/basicscript/internal/procedures"
)

func testClassDecl() *ast.ClassDecl {
	x := &ast.FieldDecl{Name: &ast.Identifier{Value: "X"}, Visibility: ast.VisibilityPublic}
	initMethod := &ast.ProcedureDecl{
		Name: &ast.Identifier{Value: "Class_Initialize"},
		Kind: ast.ProcSub,
		Body: &ast.BlockStatement{},
	}
	getLen := &ast.PropertyDecl{
		Name:     &ast.Identifier{Value: "Length"},
		Accessor: ast.PropertyGet,
		Body:     &ast.BlockStatement{},
	}
	letLen := &ast.PropertyDecl{
		Name:     &ast.Identifier{Value: "Length"},
		Accessor: ast.PropertyLet,
		Body:     &ast.BlockStatement{},
	}
	return &ast.ClassDecl{
		Name:       &ast.Identifier{Value: "Point"},
		Fields:     []*ast.FieldDecl{x},
		Methods:    []*ast.ProcedureDecl{initMethod},
		Properties: []*ast.PropertyDecl{getLen, letLen},
		Members:    []ast.Statement{x, initMethod, getLen, letLen},
	}
}

func TestNewClassDescriptorIndexesMembers(t *testing.T) {
	cd := NewClassDescriptor(testClassDecl())

	if !cd.HasField("x") {
		t.Errorf("expected HasField to be case-insensitive and find X")
	}
	if _, ok := cd.Method("Class_Initialize"); !ok {
		t.Errorf("expected Class_Initialize to be registered as a method")
	}
	if !cd.HasClassInitialize() {
		t.Errorf("expected HasClassInitialize to be true")
	}
	if cd.HasClassTerminate() {
		t.Errorf("expected HasClassTerminate to be false")
	}
	if !cd.HasProperty("Length") {
		t.Errorf("expected HasProperty(Length) to be true")
	}
	if _, ok := cd.Accessor("Length", procedures.PropertySet); ok {
		t.Errorf("expected no Property Set accessor to be registered")
	}
}

func TestClassesRegistryCaseInsensitive(t *testing.T) {
	classes := NewClasses()
	cd := NewClassDescriptor(testClassDecl())
	classes.Define(cd)

	got, ok := classes.Lookup("point")
	if !ok || got.Name != "Point" {
		t.Fatalf("expected to find Point under a different case, got %v, %v", got, ok)
	}
}
