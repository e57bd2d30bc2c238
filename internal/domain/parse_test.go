package domain

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"500", 500, true},
		{" 12.5 ", 12.5, true},
		{"1e3", 1000, true},
		{"-4", -4, true},
		{"", 0, false},
		{"abc", 0, false},
		{"$1,000", 0, false},
		{"Inf", 0, false},
		{"NaN", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseNumber(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestParseDate(t *testing.T) {
	d := func(y int, m time.Month, day int) civil.Date { return civil.Date{Year: y, Month: m, Day: day} }
	tests := []struct {
		in   string
		want civil.Date
		ok   bool
	}{
		{"2025-01-15", d(2025, time.January, 15), true},
		{" 2025-02-01 ", d(2025, time.February, 1), true},
		{"2025-03-20T10:30:00.000Z", d(2025, time.March, 20), true},
		{"2025/04/05", d(2025, time.April, 5), true},
		{"04/05/2025", d(2025, time.April, 5), true},
		{"Jan 2, 2025", d(2025, time.January, 2), true},
		{"2025-1-5", d(2025, time.January, 5), true},
		{"2025/4/5", d(2025, time.April, 5), true},
		{"2025", d(2025, time.January, 1), true},
		{"45667", civil.Date{}, false},
		{"1e3", civil.Date{}, false},
		{"", civil.Date{}, false},
		{"not a date", civil.Date{}, false},
		{"2025-13-01", civil.Date{}, false},
		{"0.5", civil.Date{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseDate(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseSerialDate(t *testing.T) {
	d := func(y int, m time.Month, day int) civil.Date { return civil.Date{Year: y, Month: m, Day: day} }
	tests := []struct {
		in   string
		want civil.Date
		ok   bool
	}{
		{"45658", d(2025, time.January, 1), true},
		{" 45667 ", d(2025, time.January, 10), true},
		{"45658.75", d(2025, time.January, 1), true},
		{"1", d(1899, time.December, 31), true},
		{"0.5", civil.Date{}, false},
		{"1e3", civil.Date{}, false},
		{"-5", civil.Date{}, false},
		{"1.2.3", civil.Date{}, false},
		{"2958466", civil.Date{}, false},
		{"2025-01-01", civil.Date{}, false},
		{"", civil.Date{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseSerialDate(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2025-01-05", FormatDate(civil.Date{Year: 2025, Month: time.January, Day: 5}))
	assert.Equal(t, "", FormatDate(civil.Date{}))
}
