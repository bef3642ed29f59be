package parser

import (
	"github.com/dws-sandbox/basicscript/internal/ast"
	"github.com/dws-sandbox/basicscript/internal/token"
)

// parseClassDecl parses `Class Name ... End Class`.
func (p *Parser) parseClassDecl() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	p.nextToken()
	p.skipSeparators()

	cd := &ast.ClassDecl{Token: tok, Name: name}
	for !p.curTokenIs(token.END) && !p.curTokenIs(token.EOF) {
		before := p.curToken
		members := p.parseClassMembers()
		for _, member := range members {
			switch m := member.(type) {
			case *ast.FieldDecl:
				cd.Fields = append(cd.Fields, m)
			case *ast.ProcedureDecl:
				cd.Methods = append(cd.Methods, m)
			case *ast.PropertyDecl:
				cd.Properties = append(cd.Properties, m)
			}
			cd.Members = append(cd.Members, member)
		}
		if len(members) == 0 && p.curToken == before {
			// Parse error already recorded; avoid an infinite loop.
			p.nextToken()
		}
		p.nextToken()
		p.skipSeparators()
	}

	if p.curTokenIs(token.END) {
		p.nextToken()
		if !p.curTokenIs(token.CLASS) {
			p.addError("expected End Class", p.curToken.Pos)
		}
	} else {
		p.addError("expected End Class", p.curToken.Pos)
	}

	return cd
}

// parseClassMembers parses one declaration inside a Class body, returning
// every member it introduces: `[Public|Private] field[, field2...]`, `Dim
// field[, field2...]`, `Const name = expr`, `Sub|Function`, or `Property
// Get|Let|Set`.
func (p *Parser) parseClassMembers() []ast.Statement {
	vis := ast.VisibilityPublic
	switch p.curToken.Type {
	case token.PUBLIC, token.PRIVATE:
		if p.curTokenIs(token.PRIVATE) {
			vis = ast.VisibilityPrivate
		}
		p.nextToken()
	case token.DIM:
		vis = ast.VisibilityPrivate
		p.nextToken()
	}

	switch p.curToken.Type {
	case token.CONST:
		return []ast.Statement{p.parseConstStatement(vis)}
	case token.SUB, token.FUNCTION:
		return []ast.Statement{p.parseProcedureDecl(vis)}
	case token.PROPERTY:
		return []ast.Statement{p.parsePropertyDecl(vis)}
	case token.IDENT:
		fields := p.parseFieldDeclList(vis)
		members := make([]ast.Statement, len(fields))
		for i, f := range fields {
			members[i] = f
		}
		return members
	default:
		p.addError("unexpected token in class body: "+p.curToken.Literal, p.curToken.Pos)
		return nil
	}
}

func (p *Parser) parseFieldDeclList(vis ast.Visibility) []*ast.FieldDecl {
	var fields []*ast.FieldDecl
	tok := p.curToken
	name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	fields = append(fields, &ast.FieldDecl{Token: tok, Name: name, Visibility: vis})
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			break
		}
		fields = append(fields, &ast.FieldDecl{Token: p.curToken, Name: &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}, Visibility: vis})
	}
	return fields
}
