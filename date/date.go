// Package date implements a day-granular date used for as-of dates and
// maturities.
package date

import (
	"fmt"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// CompactFormat is the 8-digit form expected by the holdings endpoint asOfDate parameter.
const CompactFormat = "20060102"

// displayFormats are the human formatted dates found in holdings "display" values.
var displayFormats = []string{
	"02-Jan-2006",
	"2-Jan-2006",
	"Jan 02, 2006",
	"Jan 2, 2006",
	"01/02/2006",
}

// Date represent a date with no lower than day granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Compact formats the date as YYYYMMDD.
func (d Date) Compact() string { return d.time().Format(CompactFormat) }

// YearsUntil returns the number of years from d to x on an actual/365.25 basis.
// It is negative when x is before d.
func (d Date) YearsUntil(x Date) float64 {
	return x.time().Sub(d.time()).Hours() / 24 / 365.25
}

// Parse parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func Parse(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	// We use a slightly more permisive format for read, to support 2025-7-1 instead of 2025-07-01
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return New(on.Date()), nil
}

// ParseCompact parses an 8-digit YYYYMMDD date.
func ParseCompact(str string) (Date, error) {
	if len(str) != len(CompactFormat) {
		return Date{}, fmt.Errorf("invalid date %q want 8 digits %q", str, CompactFormat)
	}
	on, err := time.Parse(CompactFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, CompactFormat, err)
	}
	return New(on.Date()), nil
}

// ParseAny tries the compact, ISO and display formats in turn.
func ParseAny(str string) (Date, error) {
	str = strings.TrimSpace(str)
	if d, err := ParseCompact(str); err == nil {
		return d, nil
	}
	if d, err := Parse(str); err == nil {
		return d, nil
	}
	for _, layout := range displayFormats {
		if on, err := time.Parse(layout, str); err == nil {
			return New(on.Date()), nil
		}
	}
	return Date{}, fmt.Errorf("unrecognized date %q", str)
}
