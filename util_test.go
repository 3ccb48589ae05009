// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"cloudeng.io/calendar"
)

func newDate(y, m, d int) calendar.Date {
	date, err := calendar.NewDate(y, calendar.Month(m), d)
	if err != nil {
		panic(err)
	}
	return date
}

func newYearMonth(y, m int) calendar.YearMonth {
	ym, err := calendar.NewYearMonth(y, calendar.Month(m))
	if err != nil {
		panic(err)
	}
	return ym
}

func newMonthDay(m, d int) calendar.MonthDay {
	md, err := calendar.NewMonthDay(calendar.Month(m), d)
	if err != nil {
		panic(err)
	}
	return md
}

func intp(v int) *int {
	return &v
}

func newFields(y, m, d int) calendar.Fields {
	return calendar.Fields{Year: intp(y), Month: intp(m), Day: intp(d)}
}

func newDateRange(a, b calendar.Date) calendar.DateRange {
	return calendar.NewDateRange(a, b)
}
