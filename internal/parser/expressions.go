package parser

import (
	"strconv"

	"github.com/dws-sandbox/basicscript/internal/ast"
	"github.com/dws-sandbox/basicscript/internal/token"
)

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	tok := p.curToken
	v, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		p.addError("could not parse integer literal: "+tok.Literal, tok.Pos)
		return nil
	}
	return &ast.IntegerLiteral{Token: tok, Value: v}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	tok := p.curToken
	v, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.addError("could not parse float literal: "+tok.Literal, tok.Pos)
		return nil
	}
	return &ast.FloatLiteral{Token: tok, Value: v}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseDateLiteral() ast.Expression {
	return &ast.DateLiteral{Token: p.curToken, Raw: p.curToken.Literal}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parseNothingLiteral() ast.Expression { return &ast.NothingLiteral{Token: p.curToken} }
func (p *Parser) parseNullLiteral() ast.Expression    { return &ast.NullLiteral{Token: p.curToken} }
func (p *Parser) parseEmptyLiteral() ast.Expression   { return &ast.EmptyLiteral{Token: p.curToken} }
func (p *Parser) parseMeExpression() ast.Expression   { return &ast.MeExpression{Token: p.curToken} }

func (p *Parser) parseGroupedExpression() ast.Expression {
	tok := p.curToken
	p.nextToken()
	exp := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return &ast.GroupedExpression{Token: tok, Expression: exp}
}

func (p *Parser) parseUnaryExpression() ast.Expression {
	tok := p.curToken
	op := tok.Literal
	p.nextToken()
	right := p.parseExpression(PREFIX)
	return &ast.UnaryExpression{Token: tok, Operator: op, Right: right}
}

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	op := tok.Literal
	precedence := p.curPrecedence()
	p.nextToken()
	var right ast.Expression
	if tok.Type == token.CARET {
		// Right-associative: x^y^z == x^(y^z).
		right = p.parseExpression(precedence - 1)
	} else {
		right = p.parseExpression(precedence)
	}
	return &ast.BinaryExpression{Token: tok, Left: left, Operator: op, Right: right}
}

func (p *Parser) parseNewExpression() ast.Expression {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	return &ast.NewExpression{Token: tok, ClassName: name}
}

// parseCallOrIndex parses `callee(args...)`; whether this resolves to a
// procedure call or an array index is left to the evaluator, per this
// dialect's call/index ambiguity rule.
func (p *Parser) parseCallOrIndex(callee ast.Expression) ast.Expression {
	tok := p.curToken
	args := p.parseExpressionList(token.RPAREN)
	return &ast.CallOrIndexExpression{Token: tok, Callee: callee, Arguments: args}
}

// parseMemberExpression parses `object.Property` or `object!Property`.
func (p *Parser) parseMemberExpression(object ast.Expression) ast.Expression {
	tok := p.curToken
	bang := tok.Type == token.BANG
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	prop := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	return &ast.MemberExpression{Token: tok, Object: object, Property: prop, Bang: bang}
}

// parseLeadingDotMember parses a leading-dot member access used inside a
// With block, e.g. `.Name`; it resolves against the With stack at
// evaluation time.
func (p *Parser) parseLeadingDotMember() ast.Expression {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	prop := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	return &ast.MemberExpression{Token: tok, Object: nil, Property: prop}
}
