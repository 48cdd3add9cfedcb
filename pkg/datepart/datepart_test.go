package datepart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/datepart/pkg/datepart"
	"github.com/leapstack-labs/datepart/pkg/temporal"
)

func mustDate(t *testing.T, s string) temporal.Date {
	t.Helper()
	d, err := temporal.ParseDate(s)
	require.NoError(t, err)
	return d
}

func mustTimestamp(t *testing.T, s string) temporal.Timestamp {
	t.Helper()
	ts, err := temporal.ParseTimestamp(s)
	require.NoError(t, err)
	return ts
}

func mustYM(t *testing.T, s string) temporal.IntervalYearMonth {
	t.Helper()
	iv, err := temporal.ParseIntervalYearMonth(s)
	require.NoError(t, err)
	return iv
}

func mustDT(t *testing.T, s string) temporal.IntervalDayTime {
	t.Helper()
	iv, err := temporal.ParseIntervalDayTime(s)
	require.NoError(t, err)
	return iv
}

func TestParseField(t *testing.T) {
	tests := []struct {
		name string
		want datepart.Field
	}{
		{"YEAR", datepart.FieldYear},
		{"years", datepart.FieldYear},
		{"QTR", datepart.FieldQuarter},
		{"Mon", datepart.FieldMonth},
		{"week", datepart.FieldWeek},
		{"D", datepart.FieldDay},
		{"dow", datepart.FieldDayOfWeek},
		{"DOY", datepart.FieldDayOfYear},
		{"hours", datepart.FieldHour},
		{"mins", datepart.FieldMinute},
		{"SECS", datepart.FieldSecond},
	}
	for _, tt := range tests {
		f, err := datepart.ParseField(tt.name)
		require.NoError(t, err, "field %q", tt.name)
		assert.Equal(t, tt.want, f, "field %q", tt.name)
	}
}

func TestParseField_Unknown(t *testing.T) {
	_, err := datepart.ParseField("CENTURY")
	require.Error(t, err)
	var uerr *datepart.UnsupportedFieldError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "CENTURY", uerr.Name)
}

func TestFieldResultTypes(t *testing.T) {
	assert.Equal(t, temporal.TypeInt, datepart.FieldYear.ResultType())
	assert.Equal(t, temporal.TypeTinyInt, datepart.FieldQuarter.ResultType())
	assert.Equal(t, temporal.TypeTinyInt, datepart.FieldMonth.ResultType())
	assert.Equal(t, temporal.TypeInt, datepart.FieldWeek.ResultType())
	assert.Equal(t, temporal.TypeInt, datepart.FieldDay.ResultType())
	assert.Equal(t, temporal.TypeTinyInt, datepart.FieldDayOfWeek.ResultType())
	assert.Equal(t, temporal.TypeInt, datepart.FieldDayOfYear.ResultType())
	assert.Equal(t, temporal.TypeTinyInt, datepart.FieldHour.ResultType())
	assert.Equal(t, temporal.TypeTinyInt, datepart.FieldMinute.ResultType())
	assert.Equal(t, temporal.DecimalType(8, 6), datepart.FieldSecond.ResultType())
}

func TestFieldApplicability(t *testing.T) {
	assert.True(t, datepart.FieldYear.AppliesTo(temporal.KindIntervalYearMonth))
	assert.False(t, datepart.FieldYear.AppliesTo(temporal.KindIntervalDayTime))
	assert.True(t, datepart.FieldDay.AppliesTo(temporal.KindIntervalDayTime))
	assert.False(t, datepart.FieldDay.AppliesTo(temporal.KindIntervalYearMonth))
	assert.False(t, datepart.FieldHour.AppliesTo(temporal.KindDate))
	assert.True(t, datepart.FieldHour.AppliesTo(temporal.KindTimestamp))
	assert.False(t, datepart.FieldWeek.AppliesTo(temporal.KindIntervalYearMonth))
}

func TestExtract_Timestamp(t *testing.T) {
	ts := mustTimestamp(t, "2019-08-12 01:30:45.123456")

	tests := []struct {
		field datepart.Field
		value string
		typ   string
	}{
		{datepart.FieldYear, "2019", "int"},
		{datepart.FieldQuarter, "3", "tinyint"},
		{datepart.FieldMonth, "8", "tinyint"},
		{datepart.FieldWeek, "33", "int"},
		{datepart.FieldDay, "12", "int"},
		{datepart.FieldDayOfWeek, "2", "tinyint"}, // Monday
		{datepart.FieldDayOfYear, "224", "int"},
		{datepart.FieldHour, "1", "tinyint"},
		{datepart.FieldMinute, "30", "tinyint"},
		{datepart.FieldSecond, "45.123456", "decimal(8,6)"},
	}

	for _, tt := range tests {
		t.Run(tt.field.String(), func(t *testing.T) {
			res, err := datepart.Extract(tt.field, ts)
			require.NoError(t, err)
			assert.Equal(t, tt.value, res.String())
			assert.Equal(t, tt.typ, res.Type.String())
		})
	}
}

func TestExtract_Date(t *testing.T) {
	tests := []struct {
		name  string
		date  string
		field datepart.Field
		want  string
	}{
		{"leap day doy", "2020-02-29", datepart.FieldDayOfYear, "60"},
		{"leap day week", "2020-02-29", datepart.FieldWeek, "9"},
		{"leap day is saturday", "2020-02-29", datepart.FieldDayOfWeek, "7"},
		{"jan 1 in prior iso year", "2021-01-01", datepart.FieldWeek, "53"},
		{"dec 30 in next iso year", "2019-12-30", datepart.FieldWeek, "1"},
		{"q1", "2021-01-01", datepart.FieldQuarter, "1"},
		{"q4", "2019-12-30", datepart.FieldQuarter, "4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := datepart.Extract(tt.field, mustDate(t, tt.date))
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.String())
		})
	}
}

func TestExtract_IntervalYearMonth(t *testing.T) {
	iv := mustYM(t, "2021-11")

	year, err := datepart.Extract(datepart.FieldYear, iv)
	require.NoError(t, err)
	assert.Equal(t, "2021", year.String())
	assert.Equal(t, temporal.TypeInt, year.Type)

	month, err := datepart.Extract(datepart.FieldMonth, iv)
	require.NoError(t, err)
	assert.Equal(t, "11", month.String())
	assert.Equal(t, temporal.TypeTinyInt, month.Type)
}

func TestExtract_IntervalYearMonth_TruncatesTowardZero(t *testing.T) {
	// 23 months is 1 year 11 months; sign follows the total.
	for _, tt := range []struct {
		input string
		year  string
		month string
	}{
		{"1-11", "1", "11"},
		{"-1-11", "-1", "-11"},
		{"0-11", "0", "11"},
	} {
		iv := mustYM(t, tt.input)
		year, err := datepart.Extract(datepart.FieldYear, iv)
		require.NoError(t, err)
		month, err := datepart.Extract(datepart.FieldMonth, iv)
		require.NoError(t, err)
		assert.Equal(t, tt.year, year.String(), "input %q", tt.input)
		assert.Equal(t, tt.month, month.String(), "input %q", tt.input)
	}
}

func TestExtract_IntervalDayTime(t *testing.T) {
	iv := mustDT(t, "123 23:55:59.002001")

	tests := []struct {
		field datepart.Field
		value string
		typ   string
	}{
		{datepart.FieldDay, "123", "int"},
		{datepart.FieldHour, "23", "tinyint"},
		{datepart.FieldMinute, "55", "tinyint"},
		{datepart.FieldSecond, "59.002001", "decimal(8,6)"},
	}

	for _, tt := range tests {
		t.Run(tt.field.String(), func(t *testing.T) {
			res, err := datepart.Extract(tt.field, iv)
			require.NoError(t, err)
			assert.Equal(t, tt.value, res.String())
			assert.Equal(t, tt.typ, res.Type.String())
		})
	}
}

func TestExtract_IntervalDayTime_SecondsScale(t *testing.T) {
	res, err := datepart.Extract(datepart.FieldSecond, mustDT(t, "0 05:00:30.001001"))
	require.NoError(t, err)
	assert.Equal(t, "30.001001", res.String())

	// always rendered at scale 6
	res, err = datepart.Extract(datepart.FieldSecond, mustDT(t, "0 00:00:07"))
	require.NoError(t, err)
	assert.Equal(t, "7.000000", res.String())
}

func TestExtract_NegativeIntervalDayTime(t *testing.T) {
	iv := mustDT(t, "-0 00:00:59.123456")
	res, err := datepart.Extract(datepart.FieldSecond, iv)
	require.NoError(t, err)
	assert.Equal(t, "-59.123456", res.String())
}

func TestExtract_NotApplicable(t *testing.T) {
	_, err := datepart.Extract(datepart.FieldMonth, mustDT(t, "5 00:00:00"))
	require.Error(t, err)
	var nerr *datepart.FieldNotApplicableError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, datepart.FieldMonth, nerr.Field)
	assert.Equal(t, temporal.KindIntervalDayTime, nerr.Kind)

	_, err = datepart.Extract(datepart.FieldHour, mustDate(t, "2019-08-12"))
	assert.Error(t, err)

	_, err = datepart.Extract(datepart.FieldWeek, mustYM(t, "1-0"))
	assert.Error(t, err)
}

func TestExtractNamed(t *testing.T) {
	res, err := datepart.ExtractNamed("seconds", mustTimestamp(t, "2019-08-12 01:00:00.123456"))
	require.NoError(t, err)
	assert.Equal(t, "0.123456", res.String())

	_, err = datepart.ExtractNamed("EPOCH", mustDate(t, "2019-08-12"))
	var uerr *datepart.UnsupportedFieldError
	require.ErrorAs(t, err, &uerr)
}

func TestFields(t *testing.T) {
	fields := datepart.Fields()
	require.Len(t, fields, 10)
	assert.Equal(t, datepart.FieldYear, fields[0])
	assert.Equal(t, datepart.FieldSecond, fields[len(fields)-1])
}
