package parser

import (
	"github.com/dws-sandbox/basicscript/internal/ast"
	"github.com/dws-sandbox/basicscript/internal/token"
)

// collectInlineStatements parses one or more ':'-separated statements
// starting at curToken, stopping before Else/Newline/EOF. Used for the
// inline form of If, which has no End If terminator.
func (p *Parser) collectInlineStatements() *ast.BlockStatement {
	block := &ast.BlockStatement{}
	for {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		if p.peekTokenIs(token.COLON) {
			p.nextToken()
			p.nextToken()
			continue
		}
		break
	}
	return block
}

func (p *Parser) parseIfStatement() ast.Statement {
	tok := p.curToken
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if !p.expectPeek(token.THEN) {
		return nil
	}

	if p.peekTokenIs(token.NEWLINE) {
		p.nextToken()
		thenBlock := p.parseBlockUntil(token.ELSEIF, token.ELSE, token.END)

		var elseIfs []*ast.ElseIfClause
		for p.curTokenIs(token.ELSEIF) {
			p.nextToken()
			c := p.parseExpression(LOWEST)
			if !p.expectPeek(token.THEN) {
				return nil
			}
			p.nextToken()
			b := p.parseBlockUntil(token.ELSEIF, token.ELSE, token.END)
			elseIfs = append(elseIfs, &ast.ElseIfClause{Condition: c, Then: b})
		}

		var elseBlock *ast.BlockStatement
		if p.curTokenIs(token.ELSE) {
			p.nextToken()
			elseBlock = p.parseBlockUntil(token.END)
		}

		if p.curTokenIs(token.END) {
			p.nextToken()
			if !p.curTokenIs(token.IF) {
				p.addError("expected If after End", p.curToken.Pos)
			}
		} else {
			p.addError("expected End If", p.curToken.Pos)
		}

		return &ast.IfStatement{Token: tok, Condition: cond, Then: thenBlock, ElseIfs: elseIfs, Else: elseBlock}
	}

	p.nextToken()
	thenBlock := p.collectInlineStatements()
	var elseBlock *ast.BlockStatement
	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		p.nextToken()
		elseBlock = p.collectInlineStatements()
	}
	return &ast.IfStatement{Token: tok, Condition: cond, Then: thenBlock, Else: elseBlock, Inline: true}
}

func (p *Parser) parseDoLoopStatement() ast.Statement {
	tok := p.curToken
	test := ast.DoLoopNone
	var cond ast.Expression

	if p.peekTokenIs(token.WHILE) || p.peekTokenIs(token.UNTIL) {
		p.nextToken()
		isWhile := p.curTokenIs(token.WHILE)
		p.nextToken()
		cond = p.parseExpression(LOWEST)
		if isWhile {
			test = ast.DoLoopPreWhile
		} else {
			test = ast.DoLoopPreUntil
		}
	}

	p.nextToken()
	body := p.parseBlockUntil(token.LOOP)

	if !p.curTokenIs(token.LOOP) {
		p.addError("expected Loop", p.curToken.Pos)
		return &ast.DoLoopStatement{Token: tok, Body: body, Test: test, Condition: cond}
	}

	if test == ast.DoLoopNone && (p.peekTokenIs(token.WHILE) || p.peekTokenIs(token.UNTIL)) {
		p.nextToken()
		isWhile := p.curTokenIs(token.WHILE)
		p.nextToken()
		cond = p.parseExpression(LOWEST)
		if isWhile {
			test = ast.DoLoopPostWhile
		} else {
			test = ast.DoLoopPostUntil
		}
	}

	return &ast.DoLoopStatement{Token: tok, Body: body, Test: test, Condition: cond}
}

func (p *Parser) parseWhileWendStatement() ast.Statement {
	tok := p.curToken
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	p.nextToken()
	body := p.parseBlockUntil(token.WEND)
	return &ast.WhileWendStatement{Token: tok, Condition: cond, Body: body}
}

func (p *Parser) parseForStatement() ast.Statement {
	tok := p.curToken

	if p.peekTokenIs(token.EACH) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		variable := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
		if !p.expectPeek(token.IN) {
			return nil
		}
		p.nextToken()
		collection := p.parseExpression(LOWEST)
		p.nextToken()
		body := p.parseBlockUntil(token.NEXT)
		p.consumeOptionalNextVariable()
		return &ast.ForEachStatement{Token: tok, Variable: variable, Collection: collection, Body: body}
	}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	variable := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	if !p.expectPeek(token.EQ) {
		return nil
	}
	p.nextToken()
	start := p.parseExpression(LOWEST)
	if !p.expectPeek(token.TO) {
		return nil
	}
	p.nextToken()
	end := p.parseExpression(LOWEST)

	var step ast.Expression
	if p.peekTokenIs(token.STEP) {
		p.nextToken()
		p.nextToken()
		step = p.parseExpression(LOWEST)
	}

	p.nextToken()
	body := p.parseBlockUntil(token.NEXT)
	p.consumeOptionalNextVariable()

	return &ast.ForStatement{Token: tok, Variable: variable, Start: start, End: end, Step: step, Body: body}
}

// consumeOptionalNextVariable swallows the optional loop-variable echo in
// `Next i`, leaving curToken on the final consumed token.
func (p *Parser) consumeOptionalNextVariable() {
	if p.peekTokenIs(token.IDENT) {
		p.nextToken()
	}
}

func (p *Parser) parseSelectCaseStatement() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(token.CASE) {
		return nil
	}
	p.nextToken()
	discriminant := p.parseExpression(LOWEST)
	p.nextToken()
	p.skipSeparators()

	var cases []*ast.CaseClause
	for p.curTokenIs(token.CASE) {
		clause := &ast.CaseClause{}
		switch {
		case p.peekTokenIs(token.ELSE):
			p.nextToken()
			clause.IsElse = true
		case p.peekTokenIs(token.IS):
			p.nextToken()
			p.nextToken()
			clause.IsOp = p.curToken.Literal
			p.nextToken()
			clause.IsValue = p.parseExpression(LOWEST)
		default:
			p.nextToken()
			clause.Values = append(clause.Values, p.parseExpression(LOWEST))
			for p.peekTokenIs(token.COMMA) {
				p.nextToken()
				p.nextToken()
				clause.Values = append(clause.Values, p.parseExpression(LOWEST))
			}
		}
		p.nextToken()
		clause.Body = p.parseBlockUntil(token.CASE, token.END)
		cases = append(cases, clause)
	}

	if p.curTokenIs(token.END) {
		p.nextToken()
		if !p.curTokenIs(token.SELECT) {
			p.addError("expected Select after End", p.curToken.Pos)
		}
	} else {
		p.addError("expected End Select", p.curToken.Pos)
	}

	return &ast.SelectCaseStatement{Token: tok, Discriminant: discriminant, Cases: cases}
}

func (p *Parser) parseWithStatement() ast.Statement {
	tok := p.curToken
	p.nextToken()
	target := p.parseExpression(LOWEST)
	p.nextToken()
	body := p.parseBlockUntil(token.END)
	if p.curTokenIs(token.END) {
		p.nextToken()
		if !p.curTokenIs(token.WITH) {
			p.addError("expected With after End", p.curToken.Pos)
		}
	} else {
		p.addError("expected End With", p.curToken.Pos)
	}
	return &ast.WithStatement{Token: tok, Target: target, Body: body}
}

func (p *Parser) parseExitStatement() ast.Statement {
	tok := p.curToken
	var kind ast.ExitKind
	switch p.peekToken.Type {
	case token.SUB:
		kind = ast.ExitSub
	case token.FUNCTION:
		kind = ast.ExitFunction
	case token.PROPERTY:
		kind = ast.ExitProperty
	case token.DO:
		kind = ast.ExitDo
	case token.FOR:
		kind = ast.ExitFor
	default:
		p.addError("expected Sub, Function, Property, Do, or For after Exit", p.peekToken.Pos)
		return nil
	}
	p.nextToken()
	return &ast.ExitStatement{Token: tok, Kind: kind}
}

func (p *Parser) parseOnErrorStatement() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(token.ERROR) {
		return nil
	}
	switch {
	case p.peekTokenIs(token.RESUME):
		p.nextToken()
		if !p.expectPeek(token.NEXT) {
			return nil
		}
		return &ast.OnErrorStatement{Token: tok, Mode: ast.OnErrorResumeNext}
	case p.peekTokenIs(token.GOTO):
		p.nextToken()
		if p.peekTokenIs(token.INT) && p.peekToken.Literal == "0" {
			p.nextToken()
			return &ast.OnErrorStatement{Token: tok, Mode: ast.OnErrorGotoZero}
		}
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		return &ast.OnErrorStatement{Token: tok, Mode: ast.OnErrorGotoLabel, Label: p.curToken.Literal}
	default:
		p.addError("expected Resume Next or Goto after On Error", p.peekToken.Pos)
		return nil
	}
}

func (p *Parser) parseResumeStatement() ast.Statement {
	tok := p.curToken
	next := false
	if p.peekTokenIs(token.NEXT) {
		p.nextToken()
		next = true
	}
	return &ast.ResumeStatement{Token: tok, Next: next}
}

func (p *Parser) parseGotoStatement() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	return &ast.GotoStatement{Token: tok, Label: p.curToken.Literal}
}
