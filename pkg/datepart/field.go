package datepart

import (
	"strings"

	"github.com/leapstack-labs/datepart/pkg/temporal"
)

// Field is one of the extractable date/time fields.
type Field int

// Supported fields.
const (
	FieldYear Field = iota
	FieldQuarter
	FieldMonth
	FieldWeek
	FieldDay
	FieldDayOfWeek
	FieldDayOfYear
	FieldHour
	FieldMinute
	FieldSecond

	numFields
)

// fieldSpec is the static per-field contract: canonical name, the value
// kinds the field is legal on, and the fixed result type. Result widths
// are per-field constants, never inferred from the value.
type fieldSpec struct {
	name      string
	appliesTo temporal.Kind
	result    temporal.Type
}

const (
	calendarKinds = temporal.KindDate | temporal.KindTimestamp
	clockKinds    = temporal.KindTimestamp | temporal.KindIntervalDayTime
)

var fieldSpecs = [numFields]fieldSpec{
	FieldYear:      {"YEAR", calendarKinds | temporal.KindIntervalYearMonth, temporal.TypeInt},
	FieldQuarter:   {"QUARTER", calendarKinds, temporal.TypeTinyInt},
	FieldMonth:     {"MONTH", calendarKinds | temporal.KindIntervalYearMonth, temporal.TypeTinyInt},
	FieldWeek:      {"WEEK", calendarKinds, temporal.TypeInt},
	FieldDay:       {"DAY", calendarKinds | temporal.KindIntervalDayTime, temporal.TypeInt},
	FieldDayOfWeek: {"DAYOFWEEK", calendarKinds, temporal.TypeTinyInt},
	FieldDayOfYear: {"DOY", calendarKinds, temporal.TypeInt},
	FieldHour:      {"HOUR", clockKinds, temporal.TypeTinyInt},
	FieldMinute:    {"MINUTE", clockKinds, temporal.TypeTinyInt},
	FieldSecond:    {"SECOND", clockKinds, temporal.DecimalType(8, 6)},
}

// fieldNames maps upper-cased field names and aliases to fields.
var fieldNames = map[string]Field{
	"YEAR":  FieldYear,
	"YEARS": FieldYear,

	"QUARTER": FieldQuarter,
	"QTR":     FieldQuarter,

	"MONTH":  FieldMonth,
	"MONTHS": FieldMonth,
	"MON":    FieldMonth,
	"MONS":   FieldMonth,

	"WEEK":  FieldWeek,
	"WEEKS": FieldWeek,

	"DAY":  FieldDay,
	"DAYS": FieldDay,
	"D":    FieldDay,

	"DAYOFWEEK": FieldDayOfWeek,
	"DOW":       FieldDayOfWeek,

	"DOY": FieldDayOfYear,

	"HOUR":  FieldHour,
	"HOURS": FieldHour,

	"MINUTE":  FieldMinute,
	"MINUTES": FieldMinute,
	"MIN":     FieldMinute,
	"MINS":    FieldMinute,

	"SECOND":  FieldSecond,
	"SECONDS": FieldSecond,
	"SEC":     FieldSecond,
	"SECS":    FieldSecond,
}

// ParseField resolves a field name, case-insensitively, to its Field.
// Unknown names fail with *UnsupportedFieldError.
func ParseField(name string) (Field, error) {
	f, ok := fieldNames[strings.ToUpper(name)]
	if !ok {
		return 0, &UnsupportedFieldError{Name: name}
	}
	return f, nil
}

// Fields returns all supported fields in declaration order.
func Fields() []Field {
	fields := make([]Field, numFields)
	for i := range fields {
		fields[i] = Field(i)
	}
	return fields
}

// String returns the canonical field name.
func (f Field) String() string {
	if f < 0 || f >= numFields {
		return "FIELD(?)"
	}
	return fieldSpecs[f].name
}

// AppliesTo reports whether the field is legal on the given value kind.
func (f Field) AppliesTo(k temporal.Kind) bool {
	return fieldSpecs[f].appliesTo&k != 0
}

// Kinds returns the mask of value kinds the field is legal on.
func (f Field) Kinds() temporal.Kind {
	return fieldSpecs[f].appliesTo
}

// ResultType returns the fixed result type of the field. The type does
// not depend on the input value.
func (f Field) ResultType() temporal.Type {
	return fieldSpecs[f].result
}
