// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"errors"
	"fmt"
)

// ISO8601 is the canonical calendar identifier.
const ISO8601 = "iso8601"

var ErrInvalidISO8601Date = errors.New("invalid ISO8601 date")

// formatDate renders a date in ISO 8601 extended format. Years outside
// 0-9999 use the six digit expanded form with a mandatory sign, as in
// '-000544-07-12'.
func formatDate(d Date) string {
	return formatYearMonth(d.year, d.month) + fmt.Sprintf("-%02d", d.day)
}

func formatYearMonth(year int, month Month) string {
	if year >= 0 && year <= 9999 {
		return fmt.Sprintf("%04d-%02d", year, month)
	}
	sign := byte('+')
	if year < 0 {
		sign, year = '-', -year
	}
	return fmt.Sprintf("%c%06d-%02d", sign, year, month)
}

func consumeDigits(val string, n int) (int, string, error) {
	if len(val) < n {
		return 0, "", fmt.Errorf("truncated: %q: %w", val, ErrInvalidISO8601Date)
	}
	v := 0
	for i := 0; i < n; i++ {
		c := val[i]
		if c < '0' || c > '9' {
			return 0, "", fmt.Errorf("invalid digit %q: %q: %w", c, val, ErrInvalidISO8601Date)
		}
		v = v*10 + int(c-'0')
	}
	return v, val[n:], nil
}

func consumeDash(val string) (string, error) {
	if len(val) == 0 || val[0] != '-' {
		return "", fmt.Errorf("expected '-': %q: %w", val, ErrInvalidISO8601Date)
	}
	return val[1:], nil
}

// parseDate parses the ISO 8601 extended format produced by formatDate:
// YYYY-MM-DD or the six digit expanded year form with a leading sign.
func parseDate(val string) (Date, error) {
	rem := val
	sign, year := 1, 0
	var err error
	switch {
	case len(rem) > 0 && (rem[0] == '+' || rem[0] == '-'):
		if rem[0] == '-' {
			sign = -1
		}
		year, rem, err = consumeDigits(rem[1:], 6)
	default:
		year, rem, err = consumeDigits(rem, 4)
	}
	if err != nil {
		return Date{}, err
	}
	if sign < 0 && year == 0 {
		return Date{}, fmt.Errorf("negative zero year: %q: %w", val, ErrInvalidISO8601Date)
	}
	if rem, err = consumeDash(rem); err != nil {
		return Date{}, err
	}
	month, rem, err := consumeDigits(rem, 2)
	if err != nil {
		return Date{}, err
	}
	if rem, err = consumeDash(rem); err != nil {
		return Date{}, err
	}
	day, rem, err := consumeDigits(rem, 2)
	if err != nil {
		return Date{}, err
	}
	if len(rem) != 0 {
		return Date{}, fmt.Errorf("trailing text %q: %q: %w", rem, val, ErrInvalidISO8601Date)
	}
	d, err := NewDate(sign*year, Month(month), day)
	if err != nil {
		return Date{}, fmt.Errorf("%q: %v: %w", val, err, ErrInvalidISO8601Date)
	}
	return d, nil
}
