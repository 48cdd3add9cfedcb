package datepart

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/leapstack-labs/datepart/pkg/temporal"
)

// Result is an extracted field value tagged with its fixed result type.
// Integer-typed fields carry the value in Int; decimal-typed fields in
// Decimal.
type Result struct {
	Type    temporal.Type
	Int     int64
	Decimal decimal.Decimal
}

// String renders the result the way the reference engine prints it:
// plain integers for integer types, fixed-scale notation for decimals
// (e.g. 30.001001).
func (r Result) String() string {
	if r.Type.IsDecimal() {
		return r.Decimal.StringFixed(int32(r.Type.Scale()))
	}
	return strconv.FormatInt(r.Int, 10)
}

// Extract returns the value of field in v, typed per the field's fixed
// result type. It fails with *FieldNotApplicableError when the field is
// not legal on v's kind. Integer fields truncate toward zero; SECOND is
// exact to microsecond precision.
func Extract(field Field, v temporal.Value) (Result, error) {
	if !field.AppliesTo(v.Kind()) {
		return Result{}, &FieldNotApplicableError{Field: field, Kind: v.Kind()}
	}

	switch v := v.(type) {
	case temporal.Date:
		return extractTimestamp(field, temporal.Timestamp{
			Year: v.Year, Month: v.Month, Day: v.Day,
		}), nil
	case temporal.Timestamp:
		return extractTimestamp(field, v), nil
	case temporal.IntervalYearMonth:
		return extractYearMonth(field, v), nil
	case temporal.IntervalDayTime:
		return extractDayTime(field, v), nil
	default:
		return Result{}, &FieldNotApplicableError{Field: field, Kind: v.Kind()}
	}
}

// ExtractNamed resolves the field name and extracts it in one step.
func ExtractNamed(name string, v temporal.Value) (Result, error) {
	field, err := ParseField(name)
	if err != nil {
		return Result{}, err
	}
	return Extract(field, v)
}

func intResult(field Field, n int64) Result {
	return Result{Type: field.ResultType(), Int: n}
}

func secondResult(field Field, micros int64) Result {
	// exp -6 keeps the microsecond fraction exact; no float math involved
	return Result{Type: field.ResultType(), Decimal: decimal.New(micros, -6)}
}

func extractTimestamp(field Field, ts temporal.Timestamp) Result {
	switch field {
	case FieldYear:
		return intResult(field, int64(ts.Year))
	case FieldQuarter:
		return intResult(field, int64((ts.Month-1)/3+1))
	case FieldMonth:
		return intResult(field, int64(ts.Month))
	case FieldWeek:
		_, week := ts.Time().ISOWeek()
		return intResult(field, int64(week))
	case FieldDay:
		return intResult(field, int64(ts.Day))
	case FieldDayOfWeek:
		// 1 = Sunday .. 7 = Saturday
		return intResult(field, int64(ts.Time().Weekday())+1)
	case FieldDayOfYear:
		return intResult(field, int64(ts.Time().YearDay()))
	case FieldHour:
		return intResult(field, int64(ts.Hour))
	case FieldMinute:
		return intResult(field, int64(ts.Minute))
	case FieldSecond:
		return secondResult(field, int64(ts.Second)*temporal.MicrosPerSecond+int64(ts.Micros))
	}
	panic("unreachable: applicability checked in Extract")
}

func extractYearMonth(field Field, iv temporal.IntervalYearMonth) Result {
	switch field {
	case FieldYear:
		return intResult(field, int64(iv.Years()))
	case FieldMonth:
		return intResult(field, int64(iv.MonthsPart()))
	}
	panic("unreachable: applicability checked in Extract")
}

func extractDayTime(field Field, iv temporal.IntervalDayTime) Result {
	switch field {
	case FieldDay:
		return intResult(field, iv.Days())
	case FieldHour:
		return intResult(field, iv.Hours())
	case FieldMinute:
		return intResult(field, iv.Minutes())
	case FieldSecond:
		return secondResult(field, iv.SecondMicros())
	}
	panic("unreachable: applicability checked in Extract")
}
