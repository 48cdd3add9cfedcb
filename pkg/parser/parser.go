// Package parser parses the SQL subset appearing in date_part fixture
// queries: FROM-less SELECT statements over constant expressions.
//
// # Grammar Overview
//
//	statement  → SELECT select_list [;]
//	select_list→ item [, item]*
//	item       → expr [[AS] alias]
//	expr       → string | number | ident
//	           | DATE string | TIMESTAMP string
//	           | INTERVAL string interval_range
//	           | CAST ( expr AS type_name )
//	           | EXTRACT ( field FROM expr )
//	           | ident ( expr [, expr]* )
//	           | ( expr )
//
// The parser is a recursive descent parser; Parse returns the first
// error encountered.
package parser

import (
	"fmt"

	"github.com/leapstack-labs/datepart/pkg/token"
)

// Parser parses a fixture query into an AST.
type Parser struct {
	lexer  *Lexer
	token  token.Token // current token
	peek   token.Token // lookahead token
	errors []error
}

// NewParser creates a new parser for the given query input.
func NewParser(input string) *Parser {
	p := &Parser{lexer: NewLexer(input)}
	// Read two tokens to initialize current and peek
	p.nextToken()
	p.nextToken()
	return p
}

// Parse parses the query and returns the AST.
func Parse(input string) (*SelectStmt, error) {
	p := NewParser(input)
	stmt := p.parseStatement()
	if len(p.errors) > 0 {
		return nil, p.errors[0]
	}
	return stmt, nil
}

// ---------- Token Helpers ----------

// nextToken advances to the next token.
func (p *Parser) nextToken() {
	p.token = p.peek
	p.peek = p.lexer.NextToken()
}

// check returns true if the current token is of the given type.
func (p *Parser) check(t token.TokenType) bool {
	return p.token.Type == t
}

// checkPeek returns true if the peek token is of the given type.
func (p *Parser) checkPeek(t token.TokenType) bool {
	return p.peek.Type == t
}

// match consumes the current token if it matches and returns true.
func (p *Parser) match(t token.TokenType) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	return false
}

// expect consumes the current token if it matches, otherwise adds an error.
func (p *Parser) expect(t token.TokenType) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	p.addError(fmt.Sprintf(ErrUnexpectedToken, p.token.Type, t))
	return false
}

// addError adds a parse error at the current token.
func (p *Parser) addError(msg string) {
	p.errors = append(p.errors, &ParseError{
		Pos:     p.token.Pos,
		Message: msg,
	})
}

// ---------- Statement ----------

// parseStatement parses SELECT select_list [;].
func (p *Parser) parseStatement() *SelectStmt {
	if !p.expect(token.SELECT) {
		return nil
	}

	stmt := &SelectStmt{}
	for {
		item := p.parseSelectItem()
		if len(p.errors) > 0 {
			return nil
		}
		stmt.Items = append(stmt.Items, item)
		if !p.match(token.COMMA) {
			break
		}
	}

	p.match(token.SEMI)
	if !p.check(token.EOF) {
		p.addError(fmt.Sprintf(ErrUnexpectedToken, p.token.Type, token.EOF))
		return nil
	}
	return stmt
}

// parseSelectItem parses expr [[AS] alias].
func (p *Parser) parseSelectItem() SelectItem {
	item := SelectItem{Expr: p.parseExpression()}
	if p.match(token.AS) {
		if p.check(token.IDENT) {
			item.Alias = p.token.Literal
			p.nextToken()
		} else {
			p.addError(fmt.Sprintf(ErrUnexpectedToken, p.token.Type, token.IDENT))
		}
	} else if p.check(token.IDENT) {
		item.Alias = p.token.Literal
		p.nextToken()
	}
	return item
}
