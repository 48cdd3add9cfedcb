package eval

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/datepart/pkg/parser"
)

// renderLabel renders an expression the way the reference engine echoes
// it as a column label: string literal content appears unquoted, typed
// literals keep their quoted form, and CAST target types are upper-cased.
// Example: date_part('MINUTE', x) labels as date_part(MINUTE, x).
func renderLabel(expr parser.Expr) string {
	switch e := expr.(type) {
	case *parser.StringLit:
		return e.Value
	case *parser.NumberLit:
		return e.Literal
	case *parser.Ident:
		return e.Name
	case *parser.DateLit:
		return fmt.Sprintf("DATE '%s'", e.Value)
	case *parser.TimestampLit:
		return fmt.Sprintf("TIMESTAMP '%s'", e.Value)
	case *parser.IntervalLit:
		return fmt.Sprintf("INTERVAL '%s' %s", e.Value, e.Qualifier)
	case *parser.CastExpr:
		return fmt.Sprintf("CAST(%s AS %s)", renderLabel(e.Expr), strings.ToUpper(e.TypeName))
	case *parser.CallExpr:
		args := make([]string, len(e.Args))
		for i, a := range e.Args {
			args[i] = renderLabel(a)
		}
		return fmt.Sprintf("%s(%s)", e.Name, strings.Join(args, ", "))
	case *parser.ExtractExpr:
		return fmt.Sprintf("extract(%s FROM %s)", e.Field, renderLabel(e.From))
	default:
		return fmt.Sprintf("%T", expr)
	}
}
