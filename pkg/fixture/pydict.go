package fixture

import (
	"fmt"
	"strings"
)

// parsePyDict parses the Python dict literal the reference harness
// records, e.g.
//
//	{'date_part(YEAR, DATE '2019-08-12')': 2019, "typeof(...)": 'int'}
//
// Keys and string values may use single or double quotes with backslash
// escapes. Supported values: strings, integers, floats, booleans, None,
// and Decimal('...') wrappers. Entry order is preserved.
func parsePyDict(s string) ([]Entry, error) {
	p := &pyParser{input: s}
	p.skipSpace()
	if !p.consume('{') {
		return nil, fmt.Errorf("result mapping must start with '{'")
	}

	var entries []Entry
	p.skipSpace()
	if p.consume('}') {
		return entries, nil
	}
	for {
		key, err := p.parseString(":")
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if !p.consume(':') {
			return nil, fmt.Errorf("expected ':' after key %q", key)
		}
		p.skipSpace()
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Key: key, Value: val})

		p.skipSpace()
		if p.consume(',') {
			p.skipSpace()
			continue
		}
		if p.consume('}') {
			return entries, nil
		}
		return nil, fmt.Errorf("expected ',' or '}' at offset %d", p.pos)
	}
}

type pyParser struct {
	input string
	pos   int
}

func (p *pyParser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *pyParser) consume(c byte) bool {
	if p.pos < len(p.input) && p.input[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

// parseString reads a single- or double-quoted string. The recording
// harness does not escape inner quotes (labels regularly embed SQL
// string literals), so a quote only terminates the string when the next
// non-space character is one of the expected terminators or the input
// ends.
func (p *pyParser) parseString(terminators string) (string, error) {
	if p.pos >= len(p.input) {
		return "", fmt.Errorf("unexpected end of result mapping")
	}
	quote := p.input[p.pos]
	if quote != '\'' && quote != '"' {
		return "", fmt.Errorf("expected string at offset %d", p.pos)
	}
	p.pos++

	var b strings.Builder
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		switch c {
		case '\\':
			if p.pos+1 >= len(p.input) {
				return "", fmt.Errorf("dangling escape at offset %d", p.pos)
			}
			b.WriteByte(p.input[p.pos+1])
			p.pos += 2
		case quote:
			if p.terminatesString(p.pos+1, terminators) {
				p.pos++
				return b.String(), nil
			}
			b.WriteByte(c)
			p.pos++
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	return "", fmt.Errorf("unterminated string starting with %c", quote)
}

// terminatesString reports whether the first non-space character at or
// after pos is one of the terminators (or the input ends there).
func (p *pyParser) terminatesString(pos int, terminators string) bool {
	for pos < len(p.input) && (p.input[pos] == ' ' || p.input[pos] == '\t') {
		pos++
	}
	if pos >= len(p.input) {
		return true
	}
	return strings.IndexByte(terminators, p.input[pos]) >= 0
}

// parseValue reads a value and returns its normalized literal form.
func (p *pyParser) parseValue() (string, error) {
	if p.pos >= len(p.input) {
		return "", fmt.Errorf("unexpected end of result mapping")
	}

	switch c := p.input[p.pos]; {
	case c == '\'' || c == '"':
		return p.parseString(",}")

	case c == '-' || (c >= '0' && c <= '9'):
		start := p.pos
		p.pos++
		for p.pos < len(p.input) && (isPyDigit(p.input[p.pos]) || p.input[p.pos] == '.') {
			p.pos++
		}
		return p.input[start:p.pos], nil

	default:
		// Bare word: True/False/None or a Decimal('...') wrapper.
		start := p.pos
		for p.pos < len(p.input) && isPyWord(p.input[p.pos]) {
			p.pos++
		}
		word := p.input[start:p.pos]
		switch word {
		case "True":
			return "true", nil
		case "False":
			return "false", nil
		case "None":
			return "NULL", nil
		case "Decimal":
			if !p.consume('(') {
				return "", fmt.Errorf("malformed Decimal at offset %d", start)
			}
			inner, err := p.parseString(")")
			if err != nil {
				return "", err
			}
			if !p.consume(')') {
				return "", fmt.Errorf("malformed Decimal at offset %d", start)
			}
			return inner, nil
		default:
			return "", fmt.Errorf("unsupported value %q at offset %d", word, start)
		}
	}
}

func isPyDigit(c byte) bool { return c >= '0' && c <= '9' }

func isPyWord(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '.' || c == '_'
}
