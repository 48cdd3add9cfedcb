package temporal

import (
	"fmt"
	"strings"
	"time"
)

// Timestamp is a calendar date plus a time of day with microsecond
// precision. There is no timezone; the value is a plain civil timestamp.
type Timestamp struct {
	Year   int
	Month  int // 1-12
	Day    int // 1-31
	Hour   int // 0-23
	Minute int // 0-59
	Second int // 0-59
	Micros int // 0-999999, sub-second fraction
}

// ParseTimestamp parses a yyyy-MM-dd HH:mm:ss[.SSSSSS] literal. The
// fraction may have 1 to 6 digits; shorter fractions are scaled to
// microseconds.
func ParseTimestamp(s string) (Timestamp, error) {
	base := s
	micros := 0
	if i := strings.IndexByte(s, '.'); i >= 0 {
		base = s[:i]
		frac := s[i+1:]
		if len(frac) == 0 || len(frac) > 6 {
			return Timestamp{}, &LiteralError{Literal: s, Want: "yyyy-MM-dd HH:mm:ss[.SSSSSS]"}
		}
		for _, c := range frac {
			if c < '0' || c > '9' {
				return Timestamp{}, &LiteralError{Literal: s, Want: "yyyy-MM-dd HH:mm:ss[.SSSSSS]"}
			}
			micros = micros*10 + int(c-'0')
		}
		for i := len(frac); i < 6; i++ {
			micros *= 10
		}
	}

	t, err := time.Parse("2006-01-02 15:04:05", base)
	if err != nil {
		return Timestamp{}, &LiteralError{Literal: s, Want: "yyyy-MM-dd HH:mm:ss[.SSSSSS]"}
	}
	return Timestamp{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
		Micros: micros,
	}, nil
}

// Kind implements Value.
func (ts Timestamp) Kind() Kind { return KindTimestamp }

// Type implements Value.
func (ts Timestamp) Type() Type { return TypeTimestamp }

// Date returns the calendar date of the timestamp.
func (ts Timestamp) Date() Date {
	return Date{Year: ts.Year, Month: ts.Month, Day: ts.Day}
}

// Time returns the timestamp as a UTC time.Time for calendar math.
func (ts Timestamp) Time() time.Time {
	return time.Date(ts.Year, time.Month(ts.Month), ts.Day,
		ts.Hour, ts.Minute, ts.Second, ts.Micros*1000, time.UTC)
}

func (ts Timestamp) String() string {
	s := fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		ts.Year, ts.Month, ts.Day, ts.Hour, ts.Minute, ts.Second)
	if ts.Micros != 0 {
		s += strings.TrimRight(fmt.Sprintf(".%06d", ts.Micros), "0")
	}
	return s
}
