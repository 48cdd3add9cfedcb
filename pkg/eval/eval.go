// Package eval evaluates parsed fixture queries into typed columns. Each
// SELECT item produces a column with a label (rendered the way the
// reference engine echoes expression text), a literal value rendering,
// and the runtime type name.
package eval

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/datepart/pkg/datepart"
	"github.com/leapstack-labs/datepart/pkg/parser"
	"github.com/leapstack-labs/datepart/pkg/temporal"
)

// Column is one evaluated SELECT item.
type Column struct {
	Label string
	Value string
	Type  temporal.Type
}

// Query parses and evaluates a fixture query.
func Query(input string) ([]Column, error) {
	stmt, err := parser.Parse(input)
	if err != nil {
		return nil, err
	}
	return Statement(stmt)
}

// Statement evaluates a parsed statement.
func Statement(stmt *parser.SelectStmt) ([]Column, error) {
	cols := make([]Column, 0, len(stmt.Items))
	for _, item := range stmt.Items {
		v, err := evalExpr(item.Expr)
		if err != nil {
			return nil, err
		}
		label := item.Alias
		if label == "" {
			label = renderLabel(item.Expr)
		}
		cols = append(cols, Column{Label: label, Value: v.render(), Type: v.typ})
	}
	return cols, nil
}

// value is an evaluated expression tagged with its runtime type. Exactly
// one payload field is meaningful, selected by the type.
type value struct {
	typ    temporal.Type
	tv     temporal.Value  // date, timestamp, interval payloads
	result datepart.Result // extraction results
	text   string          // string and numeric payloads
}

func (v value) render() string {
	switch {
	case v.tv != nil:
		return v.tv.String()
	case v.typ == v.result.Type:
		return v.result.String()
	default:
		return v.text
	}
}

func evalExpr(expr parser.Expr) (value, error) {
	switch e := expr.(type) {
	case *parser.StringLit:
		return value{typ: temporal.TypeString, text: e.Value}, nil

	case *parser.NumberLit:
		return value{typ: numberType(e.Literal), text: e.Literal}, nil

	case *parser.Ident:
		// Bare identifiers only occur as field-name arguments; treated
		// as strings so date_part(MINUTE, v) and date_part('MINUTE', v)
		// evaluate alike.
		return value{typ: temporal.TypeString, text: e.Name}, nil

	case *parser.DateLit:
		d, err := temporal.ParseDate(e.Value)
		if err != nil {
			return value{}, err
		}
		return value{typ: temporal.TypeDate, tv: d}, nil

	case *parser.TimestampLit:
		ts, err := temporal.ParseTimestamp(e.Value)
		if err != nil {
			return value{}, err
		}
		return value{typ: temporal.TypeTimestamp, tv: ts}, nil

	case *parser.IntervalLit:
		return evalInterval(e)

	case *parser.CastExpr:
		return evalCast(e)

	case *parser.CallExpr:
		return evalCall(e)

	case *parser.ExtractExpr:
		from, err := evalExpr(e.From)
		if err != nil {
			return value{}, err
		}
		return extractField("extract", e.Field, from)

	default:
		return value{}, fmt.Errorf("unsupported expression %T", expr)
	}
}

func evalInterval(e *parser.IntervalLit) (value, error) {
	if e.Qualifier == parser.YearToMonth {
		iv, err := temporal.ParseIntervalYearMonth(e.Value)
		if err != nil {
			return value{}, err
		}
		return value{typ: temporal.TypeIntervalYearMonth, tv: iv}, nil
	}
	iv, err := temporal.ParseIntervalDayTime(e.Value)
	if err != nil {
		return value{}, err
	}
	return value{typ: temporal.TypeIntervalDayTime, tv: iv}, nil
}

func evalCast(e *parser.CastExpr) (value, error) {
	inner, err := evalExpr(e.Expr)
	if err != nil {
		return value{}, err
	}

	// Identity cast
	if inner.typ.String() == e.TypeName {
		return inner, nil
	}

	if inner.typ != temporal.TypeString {
		return value{}, &BadCastError{From: inner.typ.String(), To: e.TypeName}
	}

	switch e.TypeName {
	case "string":
		return inner, nil
	case "date":
		d, err := temporal.ParseDate(inner.text)
		if err != nil {
			return value{}, err
		}
		return value{typ: temporal.TypeDate, tv: d}, nil
	case "timestamp":
		ts, err := temporal.ParseTimestamp(inner.text)
		if err != nil {
			return value{}, err
		}
		return value{typ: temporal.TypeTimestamp, tv: ts}, nil
	case "interval year to month":
		iv, err := temporal.ParseIntervalYearMonth(inner.text)
		if err != nil {
			return value{}, err
		}
		return value{typ: temporal.TypeIntervalYearMonth, tv: iv}, nil
	case "interval day to second":
		iv, err := temporal.ParseIntervalDayTime(inner.text)
		if err != nil {
			return value{}, err
		}
		return value{typ: temporal.TypeIntervalDayTime, tv: iv}, nil
	default:
		return value{}, &BadCastError{From: inner.typ.String(), To: e.TypeName}
	}
}

func evalCall(e *parser.CallExpr) (value, error) {
	switch e.Name {
	case "date_part":
		if len(e.Args) != 2 {
			return value{}, &BadArgumentError{Func: "date_part", Reason: "expected 2 arguments"}
		}
		field, ok := fieldNameArg(e.Args[0])
		if !ok {
			return value{}, &BadArgumentError{Func: "date_part", Reason: "field name must be a string or identifier"}
		}
		v, err := evalExpr(e.Args[1])
		if err != nil {
			return value{}, err
		}
		return extractField("date_part", field, v)

	case "typeof":
		if len(e.Args) != 1 {
			return value{}, &BadArgumentError{Func: "typeof", Reason: "expected 1 argument"}
		}
		v, err := evalExpr(e.Args[0])
		if err != nil {
			return value{}, err
		}
		return value{typ: temporal.TypeString, text: v.typ.String()}, nil

	default:
		return value{}, &UnknownFunctionError{Name: e.Name}
	}
}

func extractField(fn, field string, v value) (value, error) {
	if v.tv == nil {
		return value{}, &BadArgumentError{
			Func:   fn,
			Reason: fmt.Sprintf("cannot extract %s from a %s value", field, v.typ),
		}
	}
	res, err := datepart.ExtractNamed(field, v.tv)
	if err != nil {
		return value{}, err
	}
	return value{typ: res.Type, result: res}, nil
}

// fieldNameArg returns the field name carried by a date_part first
// argument.
func fieldNameArg(expr parser.Expr) (string, bool) {
	switch e := expr.(type) {
	case *parser.StringLit:
		return e.Value, true
	case *parser.Ident:
		return e.Name, true
	default:
		return "", false
	}
}

// numberType mirrors the reference engine's literal typing: plain
// integers are int, fractional literals are decimal(p,s) with the
// written precision.
func numberType(literal string) temporal.Type {
	dot := strings.IndexByte(literal, '.')
	if dot < 0 {
		return temporal.TypeInt
	}
	digits := len(strings.TrimLeft(literal, "-")) - 1
	scale := len(literal) - dot - 1
	return temporal.DecimalType(digits, scale)
}
