// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"errors"
	"fmt"
)

var ErrNotCoercible = errors.New("not coercible to a date")

// Dater is the capability implemented by values that carry a complete
// calendar date, such as Date and CalendarDate. Operations that accept
// a date bearing value pass such values through without recomputation.
type Dater interface {
	Date() Date
}

// YearMonther is the capability implemented by values that carry a year
// and month but no day, such as YearMonth. Operations whose semantics
// only need a year and month accept such values without forcing a full
// date coercion.
type YearMonther interface {
	YearMonth() YearMonth
}

// MonthDayer is the capability implemented by values that carry a month
// and day but no year, such as MonthDay.
type MonthDayer interface {
	MonthDay() MonthDay
}

// ToDate coerces an arbitrary value to a Date using the given calendar.
// Values with the Dater capability pass through unchanged. Fields values
// are resolved with default options and strings are parsed in the
// ISO 8601 format accepted by Date.Parse. Anything else, including
// partial values such as YearMonth, fails with ErrNotCoercible.
func ToDate(v any, cal *Calendar) (Date, error) {
	switch t := v.(type) {
	case Dater:
		return t.Date(), nil
	case Fields:
		return cal.sys.DateFromFields(t, Options{})
	case *Fields:
		return cal.sys.DateFromFields(*t, Options{})
	case string:
		var d Date
		if err := d.Parse(t); err != nil {
			return Date{}, err
		}
		return d, nil
	}
	return Date{}, fmt.Errorf("%T: %w", v, ErrNotCoercible)
}
