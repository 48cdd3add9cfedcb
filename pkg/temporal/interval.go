package temporal

import (
	"fmt"
	"strconv"
	"strings"
)

// Microsecond multipliers for day-time interval math.
const (
	MicrosPerSecond int64 = 1_000_000
	MicrosPerMinute       = 60 * MicrosPerSecond
	MicrosPerHour         = 60 * MicrosPerMinute
	MicrosPerDay          = 24 * MicrosPerHour
)

// MonthsPerYear is the year-to-month decomposition factor.
const MonthsPerYear = 12

// IntervalYearMonth is a year-to-month interval: a signed total number
// of months.
type IntervalYearMonth struct {
	Months int32
}

// ParseIntervalYearMonth parses a [+|-]y-m literal, e.g. "2021-11".
// The month component must be 0-11.
func ParseIntervalYearMonth(s string) (IntervalYearMonth, error) {
	body, neg := trimSign(s)
	dash := strings.IndexByte(body, '-')
	if dash <= 0 || dash == len(body)-1 {
		return IntervalYearMonth{}, &LiteralError{Literal: s, Want: "[+|-]y-m"}
	}
	years, err1 := strconv.ParseInt(body[:dash], 10, 32)
	months, err2 := strconv.ParseInt(body[dash+1:], 10, 32)
	if err1 != nil || err2 != nil || months >= MonthsPerYear {
		return IntervalYearMonth{}, &LiteralError{Literal: s, Want: "[+|-]y-m"}
	}
	total := int32(years)*MonthsPerYear + int32(months)
	if neg {
		total = -total
	}
	return IntervalYearMonth{Months: total}, nil
}

// Kind implements Value.
func (iv IntervalYearMonth) Kind() Kind { return KindIntervalYearMonth }

// Type implements Value.
func (iv IntervalYearMonth) Type() Type { return TypeIntervalYearMonth }

// Years returns the whole-year component, truncated toward zero.
func (iv IntervalYearMonth) Years() int32 { return iv.Months / MonthsPerYear }

// MonthsPart returns the month remainder after removing whole years.
// The sign follows the total.
func (iv IntervalYearMonth) MonthsPart() int32 { return iv.Months % MonthsPerYear }

func (iv IntervalYearMonth) String() string {
	m := iv.Months
	sign := ""
	if m < 0 {
		sign = "-"
		m = -m
	}
	return fmt.Sprintf("INTERVAL '%s%d-%d' YEAR TO MONTH", sign, m/MonthsPerYear, m%MonthsPerYear)
}

// IntervalDayTime is a day-to-second interval: a signed total number of
// microseconds.
type IntervalDayTime struct {
	Micros int64
}

// ParseIntervalDayTime parses a [+|-]d HH:mm:ss[.SSSSSS] literal, e.g.
// "123 23:55:59.002001".
func ParseIntervalDayTime(s string) (IntervalDayTime, error) {
	const want = "[+|-]d HH:mm:ss[.SSSSSS]"
	body, neg := trimSign(s)

	sp := strings.IndexByte(body, ' ')
	if sp <= 0 {
		return IntervalDayTime{}, &LiteralError{Literal: s, Want: want}
	}
	days, err := strconv.ParseInt(body[:sp], 10, 64)
	if err != nil {
		return IntervalDayTime{}, &LiteralError{Literal: s, Want: want}
	}

	clock := body[sp+1:]
	frac := ""
	if i := strings.IndexByte(clock, '.'); i >= 0 {
		clock, frac = clock[:i], clock[i+1:]
	}
	parts := strings.Split(clock, ":")
	if len(parts) != 3 {
		return IntervalDayTime{}, &LiteralError{Literal: s, Want: want}
	}
	hours, err1 := strconv.ParseInt(parts[0], 10, 64)
	minutes, err2 := strconv.ParseInt(parts[1], 10, 64)
	seconds, err3 := strconv.ParseInt(parts[2], 10, 64)
	if err1 != nil || err2 != nil || err3 != nil ||
		hours >= 24 || minutes >= 60 || seconds >= 60 {
		return IntervalDayTime{}, &LiteralError{Literal: s, Want: want}
	}

	var micros int64
	if frac != "" {
		if len(frac) > 6 {
			return IntervalDayTime{}, &LiteralError{Literal: s, Want: want}
		}
		for _, c := range frac {
			if c < '0' || c > '9' {
				return IntervalDayTime{}, &LiteralError{Literal: s, Want: want}
			}
			micros = micros*10 + int64(c-'0')
		}
		for i := len(frac); i < 6; i++ {
			micros *= 10
		}
	}

	total := days*MicrosPerDay + hours*MicrosPerHour + minutes*MicrosPerMinute +
		seconds*MicrosPerSecond + micros
	if neg {
		total = -total
	}
	return IntervalDayTime{Micros: total}, nil
}

// Kind implements Value.
func (iv IntervalDayTime) Kind() Kind { return KindIntervalDayTime }

// Type implements Value.
func (iv IntervalDayTime) Type() Type { return TypeIntervalDayTime }

// Days returns the whole-day component, truncated toward zero.
func (iv IntervalDayTime) Days() int64 { return iv.Micros / MicrosPerDay }

// Hours returns the hour component after removing whole days (-23..23).
func (iv IntervalDayTime) Hours() int64 { return iv.Micros % MicrosPerDay / MicrosPerHour }

// Minutes returns the minute component after removing whole hours (-59..59).
func (iv IntervalDayTime) Minutes() int64 { return iv.Micros % MicrosPerHour / MicrosPerMinute }

// SecondMicros returns the microseconds remaining after removing whole
// minutes: the signed second component at scale 6.
func (iv IntervalDayTime) SecondMicros() int64 { return iv.Micros % MicrosPerMinute }

func (iv IntervalDayTime) String() string {
	m := iv.Micros
	sign := ""
	if m < 0 {
		sign = "-"
		m = -m
	}
	s := fmt.Sprintf("%s%d %02d:%02d:%02d", sign,
		m/MicrosPerDay,
		m%MicrosPerDay/MicrosPerHour,
		m%MicrosPerHour/MicrosPerMinute,
		m%MicrosPerMinute/MicrosPerSecond)
	if us := m % MicrosPerSecond; us != 0 {
		s += strings.TrimRight(fmt.Sprintf(".%06d", us), "0")
	}
	return fmt.Sprintf("INTERVAL '%s' DAY TO SECOND", s)
}

// trimSign strips a leading + or - and reports whether the value was
// negative.
func trimSign(s string) (string, bool) {
	switch {
	case strings.HasPrefix(s, "-"):
		return s[1:], true
	case strings.HasPrefix(s, "+"):
		return s[1:], false
	default:
		return s, false
	}
}
