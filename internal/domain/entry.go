package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// DateLayout is the layout of an entry's date key.
	DateLayout = "2006-01-02"
	// MonthLayout is the layout of a month key, the first 7 characters of a date key.
	MonthLayout = "2006-01"
)

// Entry is the hours recorded for one calendar day.
type Entry struct {
	Date  string
	Hours float64
}

// Month returns the YYYY-MM prefix of the entry's date key.
func (e Entry) Month() string {
	return MonthOf(e.Date)
}

// MonthOf returns the first 7 characters of a date key, or the whole key if shorter.
func MonthOf(date string) string {
	if len(date) < len(MonthLayout) {
		return date
	}
	return date[:len(MonthLayout)]
}

// DateKey formats t as a YYYY-MM-DD date key.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// MonthKey formats t as a YYYY-MM month key.
func MonthKey(t time.Time) string {
	return t.Format(MonthLayout)
}

// ValidateDate reports whether s is a real calendar day in YYYY-MM-DD form.
func ValidateDate(s string) error {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// ValidateMonth reports whether s is a YYYY-MM month key.
func ValidateMonth(s string) error {
	if _, err := time.Parse(MonthLayout, s); err != nil {
		return ErrInvalidMonth
	}
	return nil
}

// ValidateHours rejects negative, NaN and infinite values.
func ValidateHours(h float64) error {
	if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		return ErrInvalidHours
	}
	return nil
}

// ParseHours parses user input into an hours value. A comma is accepted as
// the decimal separator.
func ParseHours(s string) (float64, error) {
	return ParseStoredHours(strings.Replace(s, ",", ".", 1))
}

// ParseStoredHours parses the hours field of a stored row. Only decimal
// notation is accepted; hexadecimal floats are rejected.
func ParseStoredHours(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "xX") {
		return 0, ErrInvalidHours
	}
	h, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidHours
	}
	if err := ValidateHours(h); err != nil {
		return 0, err
	}
	return h, nil
}

// FormatHours renders h in the shortest form that parses back to the same value.
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
