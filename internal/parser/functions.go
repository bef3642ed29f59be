package parser

import (
	"github.com/dws-sandbox/basicscript/internal/ast"
	"github.com/dws-sandbox/basicscript/internal/token"
)

// parseParameterList parses a parenthesized `(ByVal|ByRef|ParamArray name [=
// default], ...)` list. curToken must be on the '(' when called; on return
// curToken is the matching ')'.
func (p *Parser) parseParameterList() []*ast.Parameter {
	var params []*ast.Parameter
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}
	p.nextToken()
	for {
		params = append(params, p.parseParameter())
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
		p.nextToken()
	}
	if !p.expectPeek(token.RPAREN) {
		return params
	}
	return params
}

func (p *Parser) parseParameter() *ast.Parameter {
	param := &ast.Parameter{ByRef: true}
	switch p.curToken.Type {
	case token.BYVAL:
		param.ByRef = false
		p.nextToken()
	case token.BYREF:
		param.ByRef = true
		p.nextToken()
	case token.PARAMARRAY:
		param.IsParamArray = true
		param.ByRef = false
		p.nextToken()
	}
	param.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	if p.peekTokenIs(token.EQ) {
		p.nextToken()
		p.nextToken()
		param.Default = p.parseExpression(LOWEST)
	}
	return param
}

// parseProcedureDecl parses `Sub|Function Name(params) ... End Sub|Function`.
func (p *Parser) parseProcedureDecl(vis ast.Visibility) ast.Statement {
	tok := p.curToken
	kind := ast.ProcSub
	if p.curTokenIs(token.FUNCTION) {
		kind = ast.ProcFunction
	}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	var params []*ast.Parameter
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		params = p.parseParameterList()
	}

	p.nextToken()
	endKind := token.SUB
	if kind == ast.ProcFunction {
		endKind = token.FUNCTION
	}
	body := p.parseBlockUntil(token.END)
	if p.curTokenIs(token.END) {
		p.nextToken()
		if !p.curTokenIs(endKind) {
			p.addError("expected End "+tok.Literal, p.curToken.Pos)
		}
	} else {
		p.addError("expected End "+tok.Literal, p.curToken.Pos)
	}

	return &ast.ProcedureDecl{Token: tok, Name: name, Kind: kind, Parameters: params, Body: body, Visibility: vis}
}

// parsePropertyDecl parses `Property Get|Let|Set Name(params) ... End
// Property`.
func (p *Parser) parsePropertyDecl(vis ast.Visibility) ast.Statement {
	tok := p.curToken
	var accessor ast.PropertyAccessorKind
	switch p.peekToken.Type {
	case token.GET:
		accessor = ast.PropertyGet
	case token.LET:
		accessor = ast.PropertyLet
	case token.SET:
		accessor = ast.PropertySet
	default:
		p.addError("expected Get, Let, or Set after Property", p.peekToken.Pos)
		return nil
	}
	p.nextToken()

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	var params []*ast.Parameter
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		params = p.parseParameterList()
	}

	p.nextToken()
	body := p.parseBlockUntil(token.END)
	if p.curTokenIs(token.END) {
		p.nextToken()
		if !p.curTokenIs(token.PROPERTY) {
			p.addError("expected End Property", p.curToken.Pos)
		}
	} else {
		p.addError("expected End Property", p.curToken.Pos)
	}

	return &ast.PropertyDecl{Token: tok, Name: name, Accessor: accessor, Parameters: params, Body: body, Visibility: vis}
}
