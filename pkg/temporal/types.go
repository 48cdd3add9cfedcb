package temporal

import "fmt"

// Type identifies a SQL runtime type using the reference engine's naming
// (tinyint, int, decimal(p,s), interval day to second, ...). A Type is a
// value; compare with ==.
type Type struct {
	name      string
	precision int
	scale     int
}

// Builtin types, in the reference engine's vocabulary.
var (
	TypeString    = Type{name: "string"}
	TypeTinyInt   = Type{name: "tinyint"}
	TypeSmallInt  = Type{name: "smallint"}
	TypeInt       = Type{name: "int"}
	TypeBigInt    = Type{name: "bigint"}
	TypeDate      = Type{name: "date"}
	TypeTimestamp = Type{name: "timestamp"}

	TypeIntervalYearMonth = Type{name: "interval year to month"}
	TypeIntervalDayTime   = Type{name: "interval day to second"}
)

// DecimalType returns the fixed-point decimal type with the given precision
// and scale.
func DecimalType(precision, scale int) Type {
	return Type{name: "decimal", precision: precision, scale: scale}
}

// IsDecimal returns true for decimal(p,s) types.
func (t Type) IsDecimal() bool {
	return t.name == "decimal"
}

// Scale returns the scale of a decimal type, 0 otherwise.
func (t Type) Scale() int {
	return t.scale
}

// String returns the type name as the reference engine reports it.
func (t Type) String() string {
	if t.IsDecimal() {
		return fmt.Sprintf("decimal(%d,%d)", t.precision, t.scale)
	}
	return t.name
}

// Kind classifies a temporal value. Kinds are single bits so field
// applicability can be expressed as a mask.
type Kind uint8

// Value kinds.
const (
	KindDate Kind = 1 << iota
	KindTimestamp
	KindIntervalYearMonth
	KindIntervalDayTime
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindDate:
		return "date"
	case KindTimestamp:
		return "timestamp"
	case KindIntervalYearMonth:
		return "interval year to month"
	case KindIntervalDayTime:
		return "interval day to second"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is a temporal value a field can be extracted from.
type Value interface {
	Kind() Kind
	Type() Type
	String() string
}
