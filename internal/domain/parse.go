package domain

import (
	"math"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// ParseNumber parses a decimal value. Empty, invalid and non-finite input
// yields 0 with ok=false.
func ParseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-1-2",
	"2006/01/02",
	"2006/1/2",
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"2006-01",
	"2006",
}

// spreadsheet serial day numbers count from 1899-12-30
var serialEpoch = civil.Date{Year: 1899, Month: time.December, Day: 30}

const maxSerialDay = 2958465 // 9999-12-31

// ParseDate parses a calendar date from ISO dates, timestamps and a handful
// of common layouts. A bare year means January 1 of that year. Numbers are
// not read as serial days; see ParseSerialDate.
func ParseDate(raw string) (civil.Date, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return civil.Date{}, false
	}
	if d, err := civil.ParseDate(s); err == nil {
		return d, true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return civil.DateOf(t), true
		}
	}
	return civil.Date{}, false
}

// ParseSerialDate reads a spreadsheet serial day number such as the raw
// value of a workbook date cell. Only plain decimals are accepted.
func ParseSerialDate(raw string) (civil.Date, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.Count(s, ".") > 1 {
		return civil.Date{}, false
	}
	for _, c := range s {
		if (c < '0' || c > '9') && c != '.' {
			return civil.Date{}, false
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 1 || v > maxSerialDay {
		return civil.Date{}, false
	}
	return serialEpoch.AddDays(int(math.Floor(v))), true
}

// FormatDate renders d as YYYY-MM-DD, or "" when d is not a valid date.
func FormatDate(d civil.Date) string {
	if !d.IsValid() {
		return ""
	}
	return d.String()
}
