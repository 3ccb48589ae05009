// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar provides a calendar abstraction for date values:
// identifier-tagged calendar systems that construct dates from loosely
// typed field sets and derive calendar relative quantities (day of week,
// day of year, ISO week, days in month/year, leap year status) from any
// date bearing value. The package implements the proleptic Gregorian
// rules of the "iso8601" calendar and leaves room for additional
// calendar systems selected by identifier.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Month as an int, 1 for January through 12 for December.
type Month time.Month

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the range 1-12.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > 12 {
		return 0, fmt.Errorf("invalid month: %d", n)
	}
	return Month(n), nil
}

// ParseMonth parses a month name of the form "Jan" to "Dec" or any other longer
// prefixes of "January" to "December" in either lower or upper case.
func ParseMonth(val string) (Month, error) {
	lc := strings.ToLower(val)
	for i := range months {
		if strings.HasPrefix(months[i], lc) {
			return Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("invalid month: %s", val)
}

// Parse parses a month in either numeric or month name format.
func (m *Month) Parse(val string) error {
	if n, err := ParseNumericMonth(val); err == nil {
		*m = n
		return nil
	}
	n, err := ParseMonth(val)
	if err != nil {
		return err
	}
	*m = n
	return nil
}

func (m Month) String() string {
	return time.Month(m).String()
}

// Date represents a year, month and day in a proleptic calendar. The year
// is signed, with zero and negative values denoting the BCE equivalent
// era. A Date is immutable and always valid: it can only be created by
// NewDate, by a calendar's field resolution or by parsing, all of which
// validate the month and day.
type Date struct {
	year  int
	month Month
	day   int
}

// NewDate returns a Date for the given year, month and day, validating
// that the month is in 1-12 and the day is valid for the month and year.
func NewDate(year int, month Month, day int) (Date, error) {
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("month %d: %w", int(month), ErrFieldRange)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, fmt.Errorf("day %d of %v %v: %w", day, month, year, ErrFieldRange)
	}
	return Date{year, month, day}, nil
}

// newDate is used on paths that have already validated the triple.
func newDate(year int, month Month, day int) Date {
	return Date{year, month, day}
}

// Year returns the date's year.
func (d Date) Year() int {
	return d.year
}

// Month returns the date's month.
func (d Date) Month() Month {
	return d.month
}

// Day returns the date's day of the month.
func (d Date) Day() int {
	return d.day
}

// Date implements Dater.
func (d Date) Date() Date {
	return d
}

// YearMonth returns the YearMonth for the date.
func (d Date) YearMonth() YearMonth {
	return YearMonth{d.year, d.month}
}

// MonthDay returns the MonthDay for the date.
func (d Date) MonthDay() MonthDay {
	return MonthDay{d.month, d.day}
}

// Fields returns the date re-extracted as a field set, suitable for
// round-tripping through a calendar's DateFromFields.
func (d Date) Fields() Fields {
	year, month, day := d.year, int(d.month), d.day
	return Fields{Year: &year, Month: &month, Day: &day}
}

func (d Date) String() string {
	return formatDate(d)
}

// Parse parses a date in the ISO 8601 extended format as per String,
// eg. '2024-03-01' or '-000544-07-12'.
func (d *Date) Parse(val string) error {
	date, err := parseDate(val)
	if err != nil {
		return err
	}
	*d = date
	return nil
}

// Compare returns -1 if d is before e, 0 if they are equal and 1 if d
// is after e.
func (d Date) Compare(e Date) int {
	switch {
	case d == e:
		return 0
	case d.year < e.year,
		d.year == e.year && d.month < e.month,
		d.year == e.year && d.month == e.month && d.day < e.day:
		return -1
	}
	return 1
}

// Tomorrow returns the date of the next day. Dec 31 wraps to Jan 1 of
// the following year.
func (d Date) Tomorrow() Date {
	if d.month == 12 && d.day == 31 {
		return Date{d.year + 1, 1, 1}
	}
	if d.day >= daysInMonthForYear(d.year)[d.month-1] {
		return Date{d.year, d.month + 1, 1}
	}
	return Date{d.year, d.month, d.day + 1}
}

// Yesterday returns the date of the previous day. Jan 1 wraps to Dec 31
// of the preceding year.
func (d Date) Yesterday() Date {
	if d.month == 1 && d.day == 1 {
		return Date{d.year - 1, 12, 31}
	}
	if d.day <= 1 {
		return Date{d.year, d.month - 1, daysInMonthForYear(d.year)[d.month-2]}
	}
	return Date{d.year, d.month, d.day - 1}
}

// YearMonth represents a month within a year without reference to a
// particular day.
type YearMonth struct {
	year  int
	month Month
}

// NewYearMonth returns a YearMonth for the given year and month,
// validating that the month is in 1-12.
func NewYearMonth(year int, month Month) (YearMonth, error) {
	if month < 1 || month > 12 {
		return YearMonth{}, fmt.Errorf("month %d: %w", int(month), ErrFieldRange)
	}
	return YearMonth{year, month}, nil
}

// Year returns the year.
func (ym YearMonth) Year() int {
	return ym.year
}

// Month returns the month.
func (ym YearMonth) Month() Month {
	return ym.month
}

// YearMonth implements YearMonther.
func (ym YearMonth) YearMonth() YearMonth {
	return ym
}

func (ym YearMonth) String() string {
	return formatYearMonth(ym.year, ym.month)
}

// MonthDay represents a day within a month without reference to a
// particular year, eg. an anniversary.
type MonthDay struct {
	month Month
	day   int
}

// NewMonthDay returns a MonthDay for the given month and day, validating
// that the day is valid for the month in some year. Feb 29 is accepted.
func NewMonthDay(month Month, day int) (MonthDay, error) {
	if month < 1 || month > 12 {
		return MonthDay{}, fmt.Errorf("month %d: %w", int(month), ErrFieldRange)
	}
	if day < 1 || day > daysInMonthLeap[month-1] {
		return MonthDay{}, fmt.Errorf("day %d of %v: %w", day, month, ErrFieldRange)
	}
	return MonthDay{month, day}, nil
}

// Month returns the month.
func (md MonthDay) Month() Month {
	return md.month
}

// Day returns the day of the month.
func (md MonthDay) Day() int {
	return md.day
}

// MonthDay implements MonthDayer.
func (md MonthDay) MonthDay() MonthDay {
	return md
}

func (md MonthDay) String() string {
	return fmt.Sprintf("%02d-%02d", md.month, md.day)
}

// CalendarDate is a Date bound to the Calendar that produced it, for
// display and round-tripping purposes. The calendar holds no per date
// state; the association is by reference.
type CalendarDate struct {
	date Date
	cal  *Calendar
}

// NewCalendarDate returns a CalendarDate associating the given date
// with the given calendar.
func NewCalendarDate(date Date, cal *Calendar) CalendarDate {
	return CalendarDate{date, cal}
}

// Date implements Dater.
func (cd CalendarDate) Date() Date {
	return cd.date
}

// Calendar returns the calendar the date is associated with.
func (cd CalendarDate) Calendar() *Calendar {
	return cd.cal
}

// Fields returns the date re-extracted as a field set as per Date.Fields.
func (cd CalendarDate) Fields() Fields {
	return cd.date.Fields()
}

func (cd CalendarDate) String() string {
	if cd.cal == nil || cd.cal.ID() == ISO8601 {
		return cd.date.String()
	}
	return fmt.Sprintf("%s[u-ca=%s]", cd.date, cd.cal.ID())
}
