package parser

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/datepart/pkg/token"
)

// parseExpression parses a primary expression. The fixture subset has no
// operators, so primaries are the whole expression grammar.
func (p *Parser) parseExpression() Expr {
	switch p.token.Type {
	case token.STRING:
		lit := &StringLit{Value: p.token.Literal}
		p.nextToken()
		return lit

	case token.NUMBER:
		lit := &NumberLit{Literal: p.token.Literal}
		p.nextToken()
		return lit

	case token.MINUS:
		p.nextToken()
		if !p.check(token.NUMBER) {
			p.addError(fmt.Sprintf(ErrUnexpectedToken, p.token.Type, token.NUMBER))
			return nil
		}
		lit := &NumberLit{Literal: "-" + p.token.Literal}
		p.nextToken()
		return lit

	case token.INTERVAL:
		return p.parseIntervalLit()

	case token.CAST:
		return p.parseCast()

	case token.EXTRACT:
		return p.parseExtract()

	case token.LPAREN:
		p.nextToken()
		expr := p.parseExpression()
		p.expect(token.RPAREN)
		return expr

	case token.IDENT:
		return p.parseIdentExpr()

	default:
		p.addError(fmt.Sprintf(ErrUnexpectedToken, p.token.Type, "expression"))
		return nil
	}
}

// parseIdentExpr parses an identifier-led expression: a typed literal
// (DATE '...', TIMESTAMP '...'), a function call, or a bare identifier.
func (p *Parser) parseIdentExpr() Expr {
	name := p.token.Literal

	// DATE / TIMESTAMP typed literals
	if p.checkPeek(token.STRING) {
		switch strings.ToLower(name) {
		case "date":
			p.nextToken()
			lit := &DateLit{Value: p.token.Literal}
			p.nextToken()
			return lit
		case "timestamp":
			p.nextToken()
			lit := &TimestampLit{Value: p.token.Literal}
			p.nextToken()
			return lit
		}
	}

	// Function call
	if p.checkPeek(token.LPAREN) {
		p.nextToken() // onto (
		p.nextToken() // past (
		call := &CallExpr{Name: strings.ToLower(name)}
		if !p.check(token.RPAREN) {
			for {
				call.Args = append(call.Args, p.parseExpression())
				if !p.match(token.COMMA) {
					break
				}
			}
		}
		p.expect(token.RPAREN)
		return call
	}

	// Bare identifier (unquoted field name)
	p.nextToken()
	return &Ident{Name: name}
}

// parseIntervalLit parses INTERVAL '...' YEAR TO MONTH | DAY TO SECOND.
func (p *Parser) parseIntervalLit() Expr {
	p.nextToken() // past INTERVAL
	if !p.check(token.STRING) {
		p.addError(fmt.Sprintf(ErrUnexpectedToken, p.token.Type, token.STRING))
		return nil
	}
	lit := &IntervalLit{Value: p.token.Literal}
	p.nextToken()

	if !p.check(token.IDENT) {
		p.addError(ErrBadIntervalRange)
		return nil
	}
	from := strings.ToLower(p.token.Literal)
	p.nextToken()
	if !p.expect(token.TO) {
		return nil
	}
	if !p.check(token.IDENT) {
		p.addError(ErrBadIntervalRange)
		return nil
	}
	to := strings.ToLower(p.token.Literal)
	p.nextToken()

	switch {
	case from == "year" && to == "month":
		lit.Qualifier = YearToMonth
	case from == "day" && to == "second":
		lit.Qualifier = DayToSecond
	default:
		p.addError(ErrBadIntervalRange)
		return nil
	}
	return lit
}

// parseCast parses CAST ( expr AS type_name ).
func (p *Parser) parseCast() Expr {
	p.nextToken() // past CAST
	if !p.expect(token.LPAREN) {
		return nil
	}
	expr := p.parseExpression()
	if !p.expect(token.AS) {
		return nil
	}
	typeName := p.parseTypeName()
	p.expect(token.RPAREN)
	return &CastExpr{Expr: expr, TypeName: typeName}
}

// parseTypeName reads a possibly multi-word type name, e.g.
// "interval day to second" or "decimal(8,6)". The result is lower-cased
// with single spaces between words.
func (p *Parser) parseTypeName() string {
	var words []string
	for p.check(token.IDENT) || p.check(token.INTERVAL) || p.check(token.TO) {
		words = append(words, strings.ToLower(p.token.Literal))
		p.nextToken()
	}
	if len(words) == 0 {
		p.addError(ErrEmptyTypeName)
		return ""
	}
	name := strings.Join(words, " ")

	// Optional (precision[, scale]) suffix
	if p.check(token.LPAREN) {
		p.nextToken()
		var args []string
		for p.check(token.NUMBER) {
			args = append(args, p.token.Literal)
			p.nextToken()
			if !p.match(token.COMMA) {
				break
			}
		}
		p.expect(token.RPAREN)
		name += "(" + strings.Join(args, ",") + ")"
	}
	return name
}

// parseExtract parses EXTRACT ( field FROM expr ).
func (p *Parser) parseExtract() Expr {
	p.nextToken() // past EXTRACT
	if !p.expect(token.LPAREN) {
		return nil
	}

	var field string
	switch p.token.Type {
	case token.IDENT, token.STRING:
		field = p.token.Literal
		p.nextToken()
	default:
		p.addError(fmt.Sprintf(ErrUnexpectedToken, p.token.Type, token.IDENT))
		return nil
	}

	if !p.expect(token.FROM) {
		return nil
	}
	from := p.parseExpression()
	p.expect(token.RPAREN)
	return &ExtractExpr{Field: field, From: from}
}
