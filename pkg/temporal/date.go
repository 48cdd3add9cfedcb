package temporal

import (
	"fmt"
	"time"
)

// LiteralError reports a temporal literal that does not match its
// expected form.
type LiteralError struct {
	Literal string
	Want    string // expected form, e.g. "yyyy-MM-dd"
}

func (e *LiteralError) Error() string {
	return fmt.Sprintf("invalid temporal literal %q: want %s", e.Literal, e.Want)
}

// Date is a calendar date with no time component.
type Date struct {
	Year  int
	Month int // 1-12
	Day   int // 1-31
}

// ParseDate parses a yyyy-MM-dd literal.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, &LiteralError{Literal: s, Want: "yyyy-MM-dd"}
	}
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, nil
}

// Kind implements Value.
func (d Date) Kind() Kind { return KindDate }

// Type implements Value.
func (d Date) Type() Type { return TypeDate }

// Time returns the date as a UTC midnight time.Time for calendar math.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}
