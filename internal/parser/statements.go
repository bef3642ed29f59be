package parser

import (
	"github.com/dws-sandbox/basicscript/internal/ast"
	"github.com/dws-sandbox/basicscript/internal/token"
)

// parseStatement dispatches on the current token to the matching statement
// parser. On return, curToken is the last token of the parsed statement.
func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.OPTION:
		return p.parseOptionExplicit()
	case token.DIM:
		return p.parseDimStatement(ast.VisibilityPublic)
	case token.REDIM:
		return p.parseReDimStatement()
	case token.ERASE:
		return p.parseEraseStatement()
	case token.CONST:
		return p.parseConstStatement(ast.VisibilityPublic)
	case token.PUBLIC, token.PRIVATE:
		return p.parseVisibilityPrefixedStatement()
	case token.SUB, token.FUNCTION:
		return p.parseProcedureDecl(ast.VisibilityPublic)
	case token.PROPERTY:
		return p.parsePropertyDecl(ast.VisibilityPublic)
	case token.CLASS:
		return p.parseClassDecl()
	case token.IF:
		return p.parseIfStatement()
	case token.DO:
		return p.parseDoLoopStatement()
	case token.WHILE:
		return p.parseWhileWendStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.SELECT:
		return p.parseSelectCaseStatement()
	case token.WITH:
		return p.parseWithStatement()
	case token.EXIT:
		return p.parseExitStatement()
	case token.ON:
		return p.parseOnErrorStatement()
	case token.RESUME:
		return p.parseResumeStatement()
	case token.GOTO:
		return p.parseGotoStatement()
	case token.CALL:
		return p.parseCallStatement()
	case token.SET:
		return p.parseSetStatement()
	case token.IDENT:
		if p.peekTokenIs(token.COLON) {
			return p.parseLabelStatement()
		}
		return p.parseSimpleStatement()
	default:
		return p.parseSimpleStatement()
	}
}

func (p *Parser) parseOptionExplicit() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(token.EXPLICIT) {
		return nil
	}
	return &ast.OptionExplicitStatement{Token: tok}
}

func (p *Parser) parseLabelStatement() ast.Statement {
	tok := p.curToken
	name := p.curToken.Literal
	p.nextToken() // consume ':'
	return &ast.LabelStatement{Token: tok, Name: name}
}

// parseSimpleStatement handles assignment, call-without-parentheses, and
// bare expression statements, which share an unavoidably ambiguous prefix
// (they all start by parsing an expression). The candidate is parsed at
// COMPARE precedence rather than LOWEST so that a top-level '=' is left
// for the assignment check below instead of being absorbed as an equality
// operator. Only an identifier, member access or call/index target followed
// by '=' becomes an assignment; for any other left side, and for the
// lower-binding '&', Or, And and comparison operators that the COMPARE cut
// leaves unconsumed, the operators are folded into a bare expression.
func (p *Parser) parseSimpleStatement() ast.Statement {
	startTok := p.curToken
	expr := p.parseExpression(COMPARE)
	if expr == nil {
		return nil
	}

	if p.peekTokenIs(token.EQ) {
		switch expr.(type) {
		case *ast.Identifier, *ast.MemberExpression, *ast.CallOrIndexExpression:
			p.nextToken() // consume '='
			p.nextToken() // move to value
			value := p.parseExpression(LOWEST)
			return &ast.AssignStatement{Token: startTok, Target: expr, Value: value}
		}
	}

	for p.peekPrecedence() > LOWEST && p.peekPrecedence() <= COMPARE {
		p.nextToken()
		expr = p.parseBinaryExpression(expr)
	}

	if !p.peekTokenIs(token.NEWLINE) && !p.peekTokenIs(token.COLON) && !p.peekTokenIs(token.EOF) {
		var args []ast.Expression
		p.nextToken()
		args = append(args, p.parseExpression(LOWEST))
		for p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			args = append(args, p.parseExpression(LOWEST))
		}
		return &ast.CallStatement{Token: startTok, Callee: expr, Arguments: args}
	}

	return &ast.ExpressionStatement{Token: startTok, Expression: expr}
}

func (p *Parser) parseCallStatement() ast.Statement {
	tok := p.curToken
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if coi, ok := expr.(*ast.CallOrIndexExpression); ok {
		return &ast.CallStatement{Token: tok, Callee: coi.Callee, Arguments: coi.Arguments, HasCall: true}
	}
	return &ast.CallStatement{Token: tok, Callee: expr, HasCall: true}
}

func (p *Parser) parseSetStatement() ast.Statement {
	tok := p.curToken
	p.nextToken()
	target := p.parseExpression(COMPARE)
	if !p.expectPeek(token.EQ) {
		return nil
	}
	p.nextToken()
	value := p.parseExpression(LOWEST)
	return &ast.AssignStatement{Token: tok, Target: target, Value: value, IsSet: true}
}

func (p *Parser) parseVisibilityPrefixedStatement() ast.Statement {
	vis := ast.VisibilityPublic
	if p.curTokenIs(token.PRIVATE) {
		vis = ast.VisibilityPrivate
	}
	p.nextToken()
	switch p.curToken.Type {
	case token.DIM:
		return p.parseDimStatement(vis)
	case token.CONST:
		return p.parseConstStatement(vis)
	case token.SUB, token.FUNCTION:
		return p.parseProcedureDecl(vis)
	case token.PROPERTY:
		return p.parsePropertyDecl(vis)
	default:
		p.addError("expected Dim, Const, Sub, Function, or Property after visibility modifier", p.curToken.Pos)
		return nil
	}
}

func (p *Parser) parseDeclaratorDims() []ast.Expression {
	if !p.peekTokenIs(token.LPAREN) {
		return nil
	}
	p.nextToken() // consume '('
	return p.parseExpressionList(token.RPAREN)
}

func (p *Parser) parseDimStatement(vis ast.Visibility) ast.Statement {
	tok := p.curToken
	var declarators []*ast.Declarator
	for {
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
		dims := p.parseDeclaratorDims()
		declarators = append(declarators, &ast.Declarator{Name: name, Dims: dims})
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
	}
	return &ast.DimStatement{Token: tok, Declarators: declarators, Visibility: vis}
}

func (p *Parser) parseReDimStatement() ast.Statement {
	tok := p.curToken
	preserve := false
	if p.peekTokenIs(token.PRESERVE) {
		p.nextToken()
		preserve = true
	}
	var targets []*ast.ReDimTarget
	for {
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
		if !p.expectPeek(token.LPAREN) {
			return nil
		}
		dims := p.parseExpressionList(token.RPAREN)
		targets = append(targets, &ast.ReDimTarget{Name: name, Dims: dims})
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
	}
	return &ast.ReDimStatement{Token: tok, Preserve: preserve, Targets: targets}
}

func (p *Parser) parseEraseStatement() ast.Statement {
	tok := p.curToken
	var names []*ast.Identifier
	for {
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		names = append(names, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
	}
	return &ast.EraseStatement{Token: tok, Names: names}
}

func (p *Parser) parseConstStatement(vis ast.Visibility) ast.Statement {
	tok := p.curToken
	var declarators []*ast.ConstDeclarator
	for {
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
		if !p.expectPeek(token.EQ) {
			return nil
		}
		p.nextToken()
		value := p.parseExpression(LOWEST)
		declarators = append(declarators, &ast.ConstDeclarator{Name: name, Value: value})
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
	}
	return &ast.ConstStatement{Token: tok, Declarators: declarators, Visibility: vis}
}
