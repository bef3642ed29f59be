package procedures

import (
	"testing"

	"github.com/dws-sandbox/basicscript/internal/ast"
)

func TestIsWritableArgument(t *testing.T) {
	writable := []ast.Expression{
		&ast.Identifier{Value: "x"},
		&ast.MemberExpression{Property: &ast.Identifier{Value: "P"}},
		&ast.CallOrIndexExpression{Callee: &ast.Identifier{Value: "arr"}},
	}
	for _, e := range writable {
		if !IsWritableArgument(e) {
			t.Errorf("expected %T to be writable", e)
		}
	}
	if IsWritableArgument(&ast.IntegerLiteral{Value: 1}) {
		t.Errorf("expected an integer literal to not be writable")
	}
}

func TestEffectiveByRefRequiresByRefParamAndWritableArg(t *testing.T) {
	byRefParam := &ast.Parameter{Name: &ast.Identifier{Value: "n"}, ByRef: true}
	byValParam := &ast.Parameter{Name: &ast.Identifier{Value: "n"}, ByRef: false}
	ident := &ast.Identifier{Value: "x"}
	literal := &ast.IntegerLiteral{Value: 5}

	if !EffectiveByRef(byRefParam, ident) {
		t.Errorf("expected ByRef param with identifier argument to bind by reference")
	}
	if EffectiveByRef(byValParam, ident) {
		t.Errorf("expected ByVal param to never bind by reference")
	}
	if EffectiveByRef(byRefParam, literal) {
		t.Errorf("expected ByRef param with a non-writable argument to fall back to by-value")
	}
}

func TestEffectiveByRefParamArrayIsNeverByRef(t *testing.T) {
	param := &ast.Parameter{Name: &ast.Identifier{Value: "rest"}, ByRef: true, IsParamArray: true}
	ident := &ast.Identifier{Value: "x"}
	if EffectiveByRef(param, ident) {
		t.Errorf("expected a ParamArray parameter to never bind by reference")
	}
}
