// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrTypeMismatch    = errors.New("value lacks the required date capability")
	ErrUnknownCalendar = errors.New("unknown calendar identifier")
)

// System is the contract a calendar implementation provides: field
// resolution and the per calendar arithmetic. A System must be stateless
// and safe for concurrent use. Implementations for additional calendars
// are installed with Register and selected by identifier with New.
type System interface {
	DateFromFields(f Fields, opts Options) (Date, error)
	DayOfWeek(d Date) int
	DayOfYear(d Date) int
	WeekOfYear(d Date) int
	DaysInWeek() int
	DaysInMonth(year int, month Month) int
	DaysInYear(year int) int
	MonthsInYear(year int) int
	InLeapYear(year int) bool
	MonthCode(month Month) string
}

// isoSystem implements System with the proleptic Gregorian rules of the
// ISO 8601 calendar. All arithmetic delegates to the package level
// functions, which are the single source of truth.
type isoSystem struct{}

func (isoSystem) DateFromFields(f Fields, opts Options) (Date, error) {
	return isoDateFromFields(f, opts)
}

func (isoSystem) DayOfWeek(d Date) int {
	return DayOfWeek(d.year, d.month, d.day)
}

func (isoSystem) DayOfYear(d Date) int {
	return DayOfYear(d.year, d.month, d.day)
}

func (isoSystem) WeekOfYear(d Date) int {
	week, _ := WeekOfYear(d.year, d.month, d.day)
	return week
}

func (isoSystem) DaysInWeek() int {
	return DaysInWeek()
}

func (isoSystem) DaysInMonth(year int, month Month) int {
	return DaysInMonth(year, month)
}

func (isoSystem) DaysInYear(year int) int {
	return DaysInYear(year)
}

func (isoSystem) MonthsInYear(year int) int {
	return MonthsInYear(year)
}

func (isoSystem) InLeapYear(year int) bool {
	return IsLeap(year)
}

func (isoSystem) MonthCode(month Month) string {
	return MonthCode(month)
}

var (
	registryMu sync.RWMutex
	registry   = map[string]System{}

	iso8601 = &Calendar{id: ISO8601, sys: isoSystem{}}
)

func init() {
	Register(ISO8601, isoSystem{})
}

// Register installs a calendar System under the given identifier,
// replacing any existing registration. The built-in "iso8601" calendar
// is registered by default.
func Register(identifier string, sys System) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[identifier] = sys
}

// New returns the Calendar for the given identifier, or
// ErrUnknownCalendar if no System is registered for it.
func New(identifier string) (*Calendar, error) {
	if identifier == ISO8601 {
		return iso8601, nil
	}
	registryMu.RLock()
	defer registryMu.RUnlock()
	sys, ok := registry[identifier]
	if !ok {
		return nil, fmt.Errorf("%q: %w", identifier, ErrUnknownCalendar)
	}
	return &Calendar{id: identifier, sys: sys}, nil
}

// ISO returns the shared ISO 8601 calendar.
func ISO() *Calendar {
	return iso8601
}

// Calendar is an identifier-tagged facade over a calendar System. It is
// immutable and may be shared freely across goroutines. All query
// operations accept an arbitrary date-like value: date bearing values
// pass through, field sets are resolved and strings are parsed, as per
// ToDate; anything else fails with ErrNotCoercible.
type Calendar struct {
	id  string
	sys System
}

// ID returns the calendar's identifier, eg. "iso8601".
func (c *Calendar) ID() string {
	return c.id
}

// String returns the calendar's identifier.
func (c *Calendar) String() string {
	return c.id
}

// MarshalJSON returns the calendar's identifier as a JSON string.
func (c *Calendar) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", c.id)), nil
}

// DateFromFields resolves the field set to a new date bearing value
// associated with this calendar. Field errors are surfaced unchanged
// from the calendar's System.
func (c *Calendar) DateFromFields(f Fields, opts Options) (CalendarDate, error) {
	d, err := c.sys.DateFromFields(f, opts)
	if err != nil {
		return CalendarDate{}, err
	}
	return CalendarDate{date: d, cal: c}, nil
}

// yearMonth returns the year and month for values carrying at least a
// year and month, coercing anything else to a full date first.
func (c *Calendar) yearMonth(v any) (int, Month, error) {
	switch t := v.(type) {
	case Dater:
		d := t.Date()
		return d.year, d.month, nil
	case YearMonther:
		ym := t.YearMonth()
		return ym.year, ym.month, nil
	}
	d, err := ToDate(v, c)
	if err != nil {
		return 0, 0, err
	}
	return d.year, d.month, nil
}

// Year returns the calendar year for a date or year-month bearing value.
func (c *Calendar) Year(v any) (int, error) {
	year, _, err := c.yearMonth(v)
	return year, err
}

// Month returns the 1-based month for a date or year-month bearing
// value. Month-day values are rejected with ErrTypeMismatch: without a
// year they do not identify a month within any particular year.
func (c *Calendar) Month(v any) (int, error) {
	if _, ok := v.(Dater); !ok {
		if _, ok := v.(MonthDayer); ok {
			return 0, fmt.Errorf("month-day value: %w", ErrTypeMismatch)
		}
	}
	_, month, err := c.yearMonth(v)
	return int(month), err
}

// MonthCode returns the month code, eg. "M03", for a date, year-month or
// month-day bearing value.
func (c *Calendar) MonthCode(v any) (string, error) {
	if md, ok := v.(MonthDayer); ok {
		if _, isDate := v.(Dater); !isDate {
			return c.sys.MonthCode(md.MonthDay().month), nil
		}
	}
	_, month, err := c.yearMonth(v)
	if err != nil {
		return "", err
	}
	return c.sys.MonthCode(month), nil
}

// Day returns the day of the month for a date or month-day bearing
// value.
func (c *Calendar) Day(v any) (int, error) {
	switch t := v.(type) {
	case Dater:
		return t.Date().day, nil
	case MonthDayer:
		return t.MonthDay().day, nil
	}
	d, err := ToDate(v, c)
	if err != nil {
		return 0, err
	}
	return d.day, nil
}

// toDate coerces for the day granular operations, which never pass
// partial values through.
func (c *Calendar) toDate(v any) (Date, error) {
	return ToDate(v, c)
}

// DayOfWeek returns the ISO day of the week, 1 for Monday through 7 for
// Sunday, for any date-like value.
func (c *Calendar) DayOfWeek(v any) (int, error) {
	d, err := c.toDate(v)
	if err != nil {
		return 0, err
	}
	return c.sys.DayOfWeek(d), nil
}

// DayOfYear returns the ordinal day of the year for any date-like value.
func (c *Calendar) DayOfYear(v any) (int, error) {
	d, err := c.toDate(v)
	if err != nil {
		return 0, err
	}
	return c.sys.DayOfYear(d), nil
}

// WeekOfYear returns the ISO week number for any date-like value.
// Dates near a year boundary may belong to a week of the neighbouring
// year's week numbering year.
func (c *Calendar) WeekOfYear(v any) (int, error) {
	d, err := c.toDate(v)
	if err != nil {
		return 0, err
	}
	return c.sys.WeekOfYear(d), nil
}

// DaysInWeek returns the number of days in a week for any date-like
// value. The value is coerced, and any coercion failure surfaced, even
// though the result does not depend on it.
func (c *Calendar) DaysInWeek(v any) (int, error) {
	if _, err := c.toDate(v); err != nil {
		return 0, err
	}
	return c.sys.DaysInWeek(), nil
}

// DaysInMonth returns the number of days in the month of a date or
// year-month bearing value.
func (c *Calendar) DaysInMonth(v any) (int, error) {
	year, month, err := c.yearMonth(v)
	if err != nil {
		return 0, err
	}
	return c.sys.DaysInMonth(year, month), nil
}

// DaysInYear returns the number of days in the year of a date or
// year-month bearing value.
func (c *Calendar) DaysInYear(v any) (int, error) {
	year, _, err := c.yearMonth(v)
	if err != nil {
		return 0, err
	}
	return c.sys.DaysInYear(year), nil
}

// MonthsInYear returns the number of months in the year of a date or
// year-month bearing value.
func (c *Calendar) MonthsInYear(v any) (int, error) {
	year, _, err := c.yearMonth(v)
	if err != nil {
		return 0, err
	}
	return c.sys.MonthsInYear(year), nil
}

// InLeapYear returns true if the year of a date or year-month bearing
// value is a leap year.
func (c *Calendar) InLeapYear(v any) (bool, error) {
	year, _, err := c.yearMonth(v)
	if err != nil {
		return false, err
	}
	return c.sys.InLeapYear(year), nil
}
