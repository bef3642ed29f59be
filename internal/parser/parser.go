// Package parser implements a recursive-descent, precedence-climbing parser
// that turns a token stream into an AST per the grammar in this dialect's
// language reference: statements separated by Newline or ':', expressions
// with a fixed operator precedence table, and keyword-operator forms
// (Mod/And/Or/Not/Xor/Eqv/Imp/Is) produced by the lexer's identifier path.
package parser

import (
	"fmt"

	"github.com/dws-sandbox/basicscript/internal/ast"
	"github.com/dws-sandbox/basicscript/internal/lexer"
	"github.com/dws-sandbox/basicscript/internal/token"
)

// Precedence levels, lowest to highest binding power. Concatenation (&)
// binds loosest of all binary operators in this dialect, looser even than
// Or/And, matching the explicit precedence ladder in the language reference.
const (
	LOWEST int = iota
	CONCAT     // &
	OR         // Or
	AND        // And
	COMPARE    // = <> < <= > >= Is
	SUM        // + -
	PRODUCT    // * /
	INTDIV     // \
	MODOP      // Mod
	POWER      // ^
	PREFIX     // unary - + Not
	POSTFIX    // call/member/index: f(x), obj.m, obj!m
)

var precedences = map[token.TokenType]int{
	token.AMP:        CONCAT,
	token.OR:         OR,
	token.AND:        AND,
	token.EQ:         COMPARE,
	token.NOT_EQ:     COMPARE,
	token.LESS:       COMPARE,
	token.LESS_EQ:    COMPARE,
	token.GREATER:    COMPARE,
	token.GREATER_EQ: COMPARE,
	token.IS:         COMPARE,
	token.PLUS:       SUM,
	token.MINUS:      SUM,
	token.ASTERISK:   PRODUCT,
	token.SLASH:      PRODUCT,
	token.BACKSLASH:  INTDIV,
	token.MOD:        MODOP,
	token.CARET:      POWER,
	token.LPAREN:     POSTFIX,
	token.DOT:        POSTFIX,
	token.BANG:       POSTFIX,
}

type prefixParseFn func() ast.Expression
type infixParseFn func(ast.Expression) ast.Expression

// ParseError is a single parse diagnostic with source position.
type ParseError struct {
	Message string
	Pos     token.Position
}

func (e *ParseError) Error() string { return fmt.Sprintf("%s at %s", e.Message, e.Pos) }

// Parser consumes tokens from a lexer.Lexer and produces an *ast.Program.
// It accumulates errors rather than aborting on the first one, and supports
// cheap save/restore for disambiguating inline-vs-block If and
// assignment-vs-call-without-parentheses.
type Parser struct {
	l         *lexer.Lexer
	curToken  token.Token
	peekToken token.Token
	errors    []*ParseError

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn
}

// state is a cheap snapshot for speculative parsing.
type state struct {
	lexerState lexer.State
	curToken   token.Token
	peekToken  token.Token
	errCount   int
}

// New creates a Parser over l and primes the two-token lookahead window.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = map[token.TokenType]prefixParseFn{}
	p.infixParseFns = map[token.TokenType]infixParseFn{}

	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.FLOAT, p.parseFloatLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.DATE, p.parseDateLiteral)
	p.registerPrefix(token.TRUE, p.parseBooleanLiteral)
	p.registerPrefix(token.FALSE, p.parseBooleanLiteral)
	p.registerPrefix(token.NOTHING, p.parseNothingLiteral)
	p.registerPrefix(token.NULLKW, p.parseNullLiteral)
	p.registerPrefix(token.EMPTYKW, p.parseEmptyLiteral)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(token.MINUS, p.parseUnaryExpression)
	p.registerPrefix(token.PLUS, p.parseUnaryExpression)
	p.registerPrefix(token.NOT, p.parseUnaryExpression)
	p.registerPrefix(token.NEW, p.parseNewExpression)
	p.registerPrefix(token.ME, p.parseMeExpression)
	p.registerPrefix(token.DOT, p.parseLeadingDotMember)

	p.registerInfix(token.AMP, p.parseBinaryExpression)
	p.registerInfix(token.OR, p.parseBinaryExpression)
	p.registerInfix(token.AND, p.parseBinaryExpression)
	p.registerInfix(token.EQ, p.parseBinaryExpression)
	p.registerInfix(token.NOT_EQ, p.parseBinaryExpression)
	p.registerInfix(token.LESS, p.parseBinaryExpression)
	p.registerInfix(token.LESS_EQ, p.parseBinaryExpression)
	p.registerInfix(token.GREATER, p.parseBinaryExpression)
	p.registerInfix(token.GREATER_EQ, p.parseBinaryExpression)
	p.registerInfix(token.IS, p.parseBinaryExpression)
	p.registerInfix(token.PLUS, p.parseBinaryExpression)
	p.registerInfix(token.MINUS, p.parseBinaryExpression)
	p.registerInfix(token.ASTERISK, p.parseBinaryExpression)
	p.registerInfix(token.SLASH, p.parseBinaryExpression)
	p.registerInfix(token.BACKSLASH, p.parseBinaryExpression)
	p.registerInfix(token.MOD, p.parseBinaryExpression)
	p.registerInfix(token.CARET, p.parseBinaryExpression)
	p.registerInfix(token.LPAREN, p.parseCallOrIndex)
	p.registerInfix(token.DOT, p.parseMemberExpression)
	p.registerInfix(token.BANG, p.parseMemberExpression)

	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns all parse diagnostics accumulated so far.
func (p *Parser) Errors() []*ParseError { return p.errors }

// LexerErrors forwards the underlying lexer's diagnostics.
func (p *Parser) LexerErrors() []lexer.LexerError { return p.l.Errors() }

func (p *Parser) registerPrefix(t token.TokenType, fn prefixParseFn) { p.prefixParseFns[t] = fn }
func (p *Parser) registerInfix(t token.TokenType, fn infixParseFn)   { p.infixParseFns[t] = fn }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.TokenType) {
	p.addError(fmt.Sprintf("expected next token to be %s, got %s instead", t, p.peekToken.Type), p.peekToken.Pos)
}

func (p *Parser) addError(msg string, pos token.Position) {
	p.errors = append(p.errors, &ParseError{Message: msg, Pos: pos})
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// save captures a snapshot for backtracking; restore undoes to it,
// including any errors recorded in between.
func (p *Parser) save() state {
	return state{
		lexerState: p.l.SaveState(),
		curToken:   p.curToken,
		peekToken:  p.peekToken,
		errCount:   len(p.errors),
	}
}

func (p *Parser) restore(s state) {
	p.l.RestoreState(s.lexerState)
	p.curToken = s.curToken
	p.peekToken = s.peekToken
	if len(p.errors) > s.errCount {
		p.errors = p.errors[:s.errCount]
	}
}

// isSeparator reports whether the current token is a statement separator.
func (p *Parser) isSeparator(t token.TokenType) bool {
	return t == token.NEWLINE || t == token.COLON
}

// skipSeparators advances past any run of Newline/':' tokens.
func (p *Parser) skipSeparators() {
	for p.isSeparator(p.curToken.Type) {
		p.nextToken()
	}
}

// ParseProgram parses the full token stream into a Program.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	p.skipSeparators()
	for !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
		p.skipSeparators()
	}
	return program
}

// parseExpression is the Pratt core: parse a prefix expression, then fold
// in infix/postfix operators while the next operator binds tighter than
// precedence.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix, ok := p.prefixParseFns[p.curToken.Type]
	if !ok {
		p.addError(fmt.Sprintf("no prefix parse function for %s found", p.curToken.Type), p.curToken.Pos)
		return nil
	}
	left := prefix()

	for !p.peekTokenIs(token.NEWLINE) && !p.peekTokenIs(token.EOF) && precedence < p.peekPrecedence() {
		infix, ok := p.infixParseFns[p.peekToken.Type]
		if !ok {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

// parseBlockUntil parses statements until the current token's type is in
// terminators or EOF is reached. On return, curToken is the terminator
// token (not consumed) or EOF.
func (p *Parser) parseBlockUntil(terminators ...token.TokenType) *ast.BlockStatement {
	block := &ast.BlockStatement{}
	termSet := make(map[token.TokenType]bool, len(terminators))
	for _, t := range terminators {
		termSet[t] = true
	}
	p.skipSeparators()
	for !p.curTokenIs(token.EOF) && !termSet[p.curToken.Type] {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
		p.skipSeparators()
	}
	return block
}

// parseExpressionList parses a comma-separated list of expressions up to
// (but not consuming) end.
func (p *Parser) parseExpressionList(end token.TokenType) []ast.Expression {
	var list []ast.Expression
	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}
	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(end) {
		return list
	}
	return list
}
