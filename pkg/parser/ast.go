package parser

// Expr represents an expression in a fixture query.
type Expr interface {
	exprNode()
}

// SelectStmt is a FROM-less SELECT over constant expressions, the only
// statement form fixture queries use.
type SelectStmt struct {
	Items []SelectItem
}

// SelectItem is one expression in the SELECT list.
type SelectItem struct {
	Expr  Expr
	Alias string // AS alias, empty when absent
}

// StringLit is a single-quoted string literal.
type StringLit struct {
	Value string
}

func (*StringLit) exprNode() {}

// NumberLit is a numeric literal, kept as written.
type NumberLit struct {
	Literal string
}

func (*NumberLit) exprNode() {}

// Ident is a bare identifier, e.g. an unquoted field name argument.
type Ident struct {
	Name string
}

func (*Ident) exprNode() {}

// DateLit is a DATE '...' literal.
type DateLit struct {
	Value string
}

func (*DateLit) exprNode() {}

// TimestampLit is a TIMESTAMP '...' literal.
type TimestampLit struct {
	Value string
}

func (*TimestampLit) exprNode() {}

// IntervalQualifier is the field range of an interval literal.
type IntervalQualifier int

// Interval qualifiers.
const (
	YearToMonth IntervalQualifier = iota
	DayToSecond
)

// String returns the qualifier as written in SQL.
func (q IntervalQualifier) String() string {
	if q == YearToMonth {
		return "YEAR TO MONTH"
	}
	return "DAY TO SECOND"
}

// IntervalLit is an INTERVAL '...' YEAR TO MONTH / DAY TO SECOND literal.
type IntervalLit struct {
	Value     string
	Qualifier IntervalQualifier
}

func (*IntervalLit) exprNode() {}

// CastExpr is CAST(expr AS type). TypeName is normalized to lower case
// with single spaces, e.g. "interval day to second" or "decimal(8,6)".
type CastExpr struct {
	Expr     Expr
	TypeName string
}

func (*CastExpr) exprNode() {}

// CallExpr is a function call such as date_part('YEAR', v) or typeof(e).
// Name is normalized to lower case.
type CallExpr struct {
	Name string
	Args []Expr
}

func (*CallExpr) exprNode() {}

// ExtractExpr is the ANSI extract(FIELD FROM expr) form.
type ExtractExpr struct {
	Field string
	From  Expr
}

func (*ExtractExpr) exprNode() {}
