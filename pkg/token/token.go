// Package token defines the lexical tokens for the fixture query subset
// of SQL.
package token

import "fmt"

// TokenType represents the type of a lexical token.
//
//nolint:revive // token.TokenType reads fine at call sites
type TokenType int32

//nolint:revive // ALL_CAPS follows SQL token conventions
const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Literals
	IDENT  // identifier
	NUMBER // 123, 45.67
	STRING // 'hello'

	// Punctuation
	PLUS   // +
	MINUS  // -
	STAR   // *
	DOT    // .
	COMMA  // ,
	LPAREN // (
	RPAREN // )
	SEMI   // ;

	// Keywords
	AS
	CAST
	EXTRACT
	FROM
	INTERVAL
	SELECT
	TO
)

var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IDENT:  "IDENT",
	NUMBER: "NUMBER",
	STRING: "STRING",

	PLUS:   "+",
	MINUS:  "-",
	STAR:   "*",
	DOT:    ".",
	COMMA:  ",",
	LPAREN: "(",
	RPAREN: ")",
	SEMI:   ";",

	AS:       "AS",
	CAST:     "CAST",
	EXTRACT:  "EXTRACT",
	FROM:     "FROM",
	INTERVAL: "INTERVAL",
	SELECT:   "SELECT",
	TO:       "TO",
}

// keywords maps lower-cased identifiers to keyword tokens.
var keywords = map[string]TokenType{
	"as":       AS,
	"cast":     CAST,
	"extract":  EXTRACT,
	"from":     FROM,
	"interval": INTERVAL,
	"select":   SELECT,
	"to":       TO,
}

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int32(t))
}

// LookupIdent returns the keyword token for a lower-cased identifier, or
// IDENT when the word is not reserved.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// Token is a lexical token with its source position.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}
