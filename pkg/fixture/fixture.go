// Package fixture parses date_part golden-fixture files: sequences of
// commented-out SQL statements paired with recorded reference-engine
// results.
//
// Each case is a block of the form
//
//	## Original Query: SELECT date_part('MINUTE', INTERVAL '123 23:55:59.002001' DAY TO SECOND)
//	## PySpark 3.5.5 Result: {'date_part(MINUTE, ...)': 55, "typeof(date_part(MINUTE, ...))": 'tinyint'}
//	#query
//	#SELECT date_part('MINUTE', CAST('123 23:55:59.002001' AS interval day to second))
//
// The result line is a Python dict literal mapping column labels to
// expected values; typeof(...) entries record the expected runtime type
// names. The statement lines are commented out in the source file; they
// are recorded here uncommented and treated as valid target behavior.
package fixture

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// Entry is one key/value pair from a recorded result mapping, with the
// value normalized to its literal string form.
type Entry struct {
	Key   string
	Value string
}

// IsTypeOf reports whether the entry records a type name rather than a
// value.
func (e Entry) IsTypeOf() bool {
	return strings.HasPrefix(e.Key, "typeof(") && strings.HasSuffix(e.Key, ")")
}

// TypeOfLabel returns the column label a typeof(...) entry refers to.
func (e Entry) TypeOfLabel() string {
	return strings.TrimSuffix(strings.TrimPrefix(e.Key, "typeof("), ")")
}

// Case is one golden test case.
type Case struct {
	OriginalQuery string  // human-readable query from the header
	Engine        string  // reference engine tag, e.g. "PySpark 3.5.5"
	Expected      []Entry // ordered result mapping
	SQL           string  // embedded statement, uncommented
	Line          int     // 1-based line of the block header
}

// File is a parsed fixture file.
type File struct {
	Path  string
	Cases []Case
}

// FormatError reports a malformed fixture file.
type FormatError struct {
	Path    string
	Line    int
	Message string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Message)
}

const originalQueryPrefix = "## Original Query:"

var resultHeader = regexp.MustCompile(`^## (PySpark [0-9.]+) Result:\s*`)

// ParseFile parses the fixture file at path.
func ParseFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, path)
}

// Parse parses fixture content. The path is used in error messages only.
func Parse(r io.Reader, path string) (*File, error) {
	file := &File{Path: path}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var (
		cur    *Case
		inSQL  bool
		sql    []string
		lineNo int
	)

	flush := func() error {
		if cur == nil {
			return nil
		}
		cur.SQL = strings.TrimSpace(strings.Join(sql, "\n"))
		if cur.SQL == "" {
			return &FormatError{Path: path, Line: cur.Line, Message: "case has no #query statement"}
		}
		if len(cur.Expected) == 0 {
			return &FormatError{Path: path, Line: cur.Line, Message: "case has no recorded result"}
		}
		file.Cases = append(file.Cases, *cur)
		cur, inSQL, sql = nil, false, nil
		return nil
	}

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, originalQueryPrefix):
			if err := flush(); err != nil {
				return nil, err
			}
			cur = &Case{
				OriginalQuery: strings.TrimSpace(strings.TrimPrefix(trimmed, originalQueryPrefix)),
				Line:          lineNo,
			}

		case resultHeader.MatchString(trimmed):
			if cur == nil {
				return nil, &FormatError{Path: path, Line: lineNo, Message: "result line outside a case"}
			}
			m := resultHeader.FindStringSubmatch(trimmed)
			cur.Engine = m[1]
			entries, err := parsePyDict(trimmed[len(m[0]):])
			if err != nil {
				return nil, &FormatError{Path: path, Line: lineNo, Message: err.Error()}
			}
			cur.Expected = entries

		case trimmed == "#query":
			if cur == nil {
				return nil, &FormatError{Path: path, Line: lineNo, Message: "#query outside a case"}
			}
			inSQL = true

		case inSQL && strings.HasPrefix(trimmed, "#") && !strings.HasPrefix(trimmed, "##"):
			sql = append(sql, strings.TrimPrefix(strings.TrimPrefix(trimmed, "#"), " "))

		case trimmed == "" || strings.HasPrefix(trimmed, "#"):
			// blank line or free comment; ends an open statement
			if inSQL && len(sql) > 0 {
				inSQL = false
			}

		default:
			return nil, &FormatError{Path: path, Line: lineNo, Message: fmt.Sprintf("unexpected line %q", trimmed)}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return file, nil
}
