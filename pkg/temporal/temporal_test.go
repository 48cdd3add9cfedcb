package temporal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/datepart/pkg/temporal"
)

func TestParseDate(t *testing.T) {
	d, err := temporal.ParseDate("2019-08-12")
	require.NoError(t, err)
	assert.Equal(t, temporal.Date{Year: 2019, Month: 8, Day: 12}, d)
	assert.Equal(t, "2019-08-12", d.String())
	assert.Equal(t, temporal.KindDate, d.Kind())
}

func TestParseDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "2019-13-01", "2019-02-30", "12/08/2019", "2019-08-12 01:00:00"} {
		_, err := temporal.ParseDate(input)
		assert.Error(t, err, "input %q", input)
		var lerr *temporal.LiteralError
		assert.ErrorAs(t, err, &lerr)
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   temporal.Timestamp
		render string
	}{
		{
			name:   "full fraction",
			input:  "2019-08-12 01:00:00.123456",
			want:   temporal.Timestamp{Year: 2019, Month: 8, Day: 12, Hour: 1, Micros: 123456},
			render: "2019-08-12 01:00:00.123456",
		},
		{
			name:   "short fraction scales to micros",
			input:  "2019-08-12 01:00:00.1",
			want:   temporal.Timestamp{Year: 2019, Month: 8, Day: 12, Hour: 1, Micros: 100000},
			render: "2019-08-12 01:00:00.1",
		},
		{
			name:   "no fraction",
			input:  "2020-02-29 23:59:59",
			want:   temporal.Timestamp{Year: 2020, Month: 2, Day: 29, Hour: 23, Minute: 59, Second: 59},
			render: "2020-02-29 23:59:59",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := temporal.ParseTimestamp(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ts)
			assert.Equal(t, tt.render, ts.String())
		})
	}
}

func TestParseTimestamp_Invalid(t *testing.T) {
	for _, input := range []string{"", "2019-08-12", "2019-08-12 25:00:00", "2019-08-12 01:00:00.1234567", "2019-08-12 01:00:00."} {
		_, err := temporal.ParseTimestamp(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParseIntervalYearMonth(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		months int32
		years  int32
		part   int32
	}{
		{name: "positive", input: "2021-11", months: 2021*12 + 11, years: 2021, part: 11},
		{name: "explicit plus", input: "+1-0", months: 12, years: 1, part: 0},
		{name: "negative", input: "-1-11", months: -23, years: -1, part: -11},
		{name: "zero", input: "0-0", months: 0, years: 0, part: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv, err := temporal.ParseIntervalYearMonth(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.months, iv.Months)
			assert.Equal(t, tt.years, iv.Years())
			assert.Equal(t, tt.part, iv.MonthsPart())
		})
	}
}

func TestParseIntervalYearMonth_Invalid(t *testing.T) {
	for _, input := range []string{"", "2021", "2021-12", "2021-", "-2021", "a-b"} {
		_, err := temporal.ParseIntervalYearMonth(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParseIntervalDayTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		days    int64
		hours   int64
		minutes int64
		secUS   int64
	}{
		{name: "full", input: "123 23:55:59.002001", days: 123, hours: 23, minutes: 55, secUS: 59002001},
		{name: "no fraction", input: "5 03:07:00", days: 5, hours: 3, minutes: 7, secUS: 0},
		{name: "negative below a minute", input: "-0 00:00:59.123456", days: 0, hours: 0, minutes: 0, secUS: -59123456},
		{name: "negative days", input: "-2 01:00:00", days: -2, hours: -1, minutes: 0, secUS: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv, err := temporal.ParseIntervalDayTime(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.days, iv.Days())
			assert.Equal(t, tt.hours, iv.Hours())
			assert.Equal(t, tt.minutes, iv.Minutes())
			assert.Equal(t, tt.secUS, iv.SecondMicros())
		})
	}
}

func TestParseIntervalDayTime_Invalid(t *testing.T) {
	for _, input := range []string{"", "5", "5 24:00:00", "5 00:60:00", "5 00:00:60", "5 00:00", "5 00:00:00.1234567"} {
		_, err := temporal.ParseIntervalDayTime(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "int", temporal.TypeInt.String())
	assert.Equal(t, "tinyint", temporal.TypeTinyInt.String())
	assert.Equal(t, "decimal(8,6)", temporal.DecimalType(8, 6).String())
	assert.Equal(t, "interval year to month", temporal.TypeIntervalYearMonth.String())
	assert.Equal(t, "interval day to second", temporal.TypeIntervalDayTime.String())
	assert.True(t, temporal.DecimalType(8, 6).IsDecimal())
	assert.Equal(t, 6, temporal.DecimalType(8, 6).Scale())
	assert.False(t, temporal.TypeInt.IsDecimal())
}
