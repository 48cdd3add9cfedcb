package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/datepart/pkg/parser"
	"github.com/leapstack-labs/datepart/pkg/token"
)

func tokenTypes(toks []token.Token) []token.TokenType {
	types := make([]token.TokenType, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
	}
	return types
}

func TestTokenize_DatePartQuery(t *testing.T) {
	toks := parser.Tokenize("SELECT date_part('YEAR', DATE '2019-08-12')")

	assert.Equal(t, []token.TokenType{
		token.SELECT,
		token.IDENT, token.LPAREN, token.STRING, token.COMMA,
		token.IDENT, token.STRING,
		token.RPAREN,
		token.EOF,
	}, tokenTypes(toks))

	assert.Equal(t, "date_part", toks[1].Literal)
	assert.Equal(t, "YEAR", toks[3].Literal)
	assert.Equal(t, "DATE", toks[5].Literal)
	assert.Equal(t, "2019-08-12", toks[6].Literal)
}

func TestTokenize_Keywords(t *testing.T) {
	toks := parser.Tokenize("select cast extract from interval to as")
	assert.Equal(t, []token.TokenType{
		token.SELECT, token.CAST, token.EXTRACT, token.FROM,
		token.INTERVAL, token.TO, token.AS, token.EOF,
	}, tokenTypes(toks))
}

func TestTokenize_Numbers(t *testing.T) {
	toks := parser.Tokenize("1 45.67 -8")
	require.Len(t, toks, 5)
	assert.Equal(t, token.NUMBER, toks[0].Type)
	assert.Equal(t, "1", toks[0].Literal)
	assert.Equal(t, token.NUMBER, toks[1].Type)
	assert.Equal(t, "45.67", toks[1].Literal)
	assert.Equal(t, token.MINUS, toks[2].Type)
	assert.Equal(t, token.NUMBER, toks[3].Type)
}

func TestTokenize_EscapedQuote(t *testing.T) {
	toks := parser.Tokenize("'it''s'")
	require.GreaterOrEqual(t, len(toks), 1)
	assert.Equal(t, token.STRING, toks[0].Type)
	assert.Equal(t, "it's", toks[0].Literal)
}

func TestTokenize_Comments(t *testing.T) {
	toks := parser.Tokenize("SELECT 1 -- trailing comment\n/* block */ , 2")
	assert.Equal(t, []token.TokenType{
		token.SELECT, token.NUMBER, token.COMMA, token.NUMBER, token.EOF,
	}, tokenTypes(toks))
}

func TestTokenize_Positions(t *testing.T) {
	toks := parser.Tokenize("SELECT\n  1")
	require.GreaterOrEqual(t, len(toks), 2)
	assert.Equal(t, 1, toks[0].Pos.Line)
	assert.Equal(t, 2, toks[1].Pos.Line)
	assert.Equal(t, 3, toks[1].Pos.Column)
}
