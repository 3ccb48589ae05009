// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "fmt"

var (
	dayOfYear       []int // per month cumulative days in year so [0, 31, 28 etc]
	dayOfYearLeap   []int // per month cumulative days in leap year [0, 31, 29 etc]
	daysInMonth     []int // days in each month
	daysInMonthLeap []int
	months          = []string{"january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december"}
)

func daysInMonthForYearInit(year int, month int) int {
	switch month {
	case 2:
		return DaysInFeb(year)
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	dayOfYear = make([]int, 12)
	dayOfYearLeap = make([]int, 12)

	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthForYearInit(2023, i+1)
		daysInMonthLeap[i] = daysInMonthForYearInit(2024, i+1)
	}
	for i := 0; i < 11; i++ {
		dayOfYear[i+1] += dayOfYear[i] + daysInMonth[i]
		dayOfYearLeap[i+1] += dayOfYearLeap[i] + daysInMonthLeap[i]
	}
}

// IsLeap returns true if the given year is a leap year in the proleptic
// Gregorian calendar. Zero and negative years are handled per ISO 8601,
// ie. year 0 is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// DaysInMonth returns the number of days in the given month for the given year.
func DaysInMonth(year int, month Month) int {
	if IsLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

// DaysInYear returns the number of days in the given year, 365 or 366
// for leap years.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// MonthsInYear returns the number of months in the given year, always 12.
func MonthsInYear(int) int {
	return 12
}

// DaysInWeek returns the number of days in a week, always 7.
func DaysInWeek() int {
	return 7
}

func daysInMonthForYear(year int) []int {
	if IsLeap(year) {
		return daysInMonthLeap
	}
	return daysInMonth
}

// DayOfYear returns the ordinal day of the year for the given date,
// 1 for Jan 1 and 365/366 for Dec 31. The date is assumed to be valid.
func DayOfYear(year int, month Month, day int) int {
	if IsLeap(year) {
		return dayOfYearLeap[month-1] + day
	}
	return dayOfYear[month-1] + day
}

// epochDays returns the number of days between the given date and the
// Unix epoch (Jan 1 1970) using per era (400 year cycle) arithmetic that
// is exact across the entire proleptic range, including year <= 0.
func epochDays(year int, month Month, day int) int {
	y := year
	if month <= 2 {
		y--
	}
	era := y / 400
	if y < 0 && y%400 != 0 {
		era--
	}
	yoe := y - era*400 // [0, 399]
	mp := (int(month) + 9) % 12
	doy := (153*mp+2)/5 + day - 1          // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy // [0, 146096]
	return era*146097 + doe - 719468
}

// DayOfWeek returns the ISO 8601 day of the week for the given date,
// 1 for Monday through 7 for Sunday, in the proleptic Gregorian calendar.
// The date is assumed to be valid.
func DayOfWeek(year int, month Month, day int) int {
	// The epoch, Jan 1 1970, was a Thursday (ISO day 4).
	d := (epochDays(year, month, day) + 3) % 7
	if d < 0 {
		d += 7
	}
	return d + 1
}

// WeeksInYear returns the number of ISO 8601 weeks in the given year's
// week numbering year, 52 or 53.
func WeeksInYear(year int) int {
	jan1 := DayOfWeek(year, 1, 1)
	if jan1 == 4 || (IsLeap(year) && jan1 == 3) {
		return 53
	}
	return 52
}

// WeekOfYear returns the ISO 8601 week number for the given date together
// with the week numbering year it belongs to. Dates in late December may
// fall in week 1 of the following year and dates in early January in week
// 52 or 53 of the preceding one. The date is assumed to be valid.
func WeekOfYear(year int, month Month, day int) (week, weekYear int) {
	week = (DayOfYear(year, month, day) - DayOfWeek(year, month, day) + 10) / 7
	switch {
	case week < 1:
		return WeeksInYear(year - 1), year - 1
	case week > WeeksInYear(year):
		return 1, year + 1
	}
	return week, year
}

// MonthCode returns the code for the given month in the form "M01"
// through "M12".
func MonthCode(month Month) string {
	return fmt.Sprintf("M%02d", int(month))
}

// ParseMonthCode parses a month code of the form "M01" through "M12".
// Anything else, including codes with a valid prefix such as "M003",
// is rejected as ErrInvalidMonthCode.
func ParseMonthCode(code string) (Month, error) {
	if len(code) != 3 || code[0] != 'M' {
		return 0, fmt.Errorf("%q: %w", code, ErrInvalidMonthCode)
	}
	d1, d2 := code[1], code[2]
	if d1 < '0' || d1 > '9' || d2 < '0' || d2 > '9' {
		return 0, fmt.Errorf("%q: %w", code, ErrInvalidMonthCode)
	}
	m := int(d1-'0')*10 + int(d2-'0')
	if m < 1 || m > 12 {
		return 0, fmt.Errorf("%q: %w", code, ErrInvalidMonthCode)
	}
	return Month(m), nil
}
