// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"strings"

	"cloudeng.io/errors"
)

var (
	ErrMissingField     = errors.New("missing field")
	ErrInvalidMonthCode = errors.New("invalid month code")
	ErrFieldRange       = errors.New("field value out of range")
)

// Fields is a loosely typed set of named date components pending
// validation. Nil pointer fields and an empty MonthCode are absent.
// The month may be supplied numerically, as a code of the form "M01"
// through "M12", or both, in which case they must agree.
// A Fields value is transient: it is consumed by a calendar's
// DateFromFields and plays no further part.
type Fields struct {
	Year      *int
	Month     *int
	MonthCode string
	Day       *int
}

func optInt(v *int) string {
	if v == nil {
		return "?"
	}
	return fmt.Sprintf("%d", *v)
}

func (f Fields) String() string {
	var out strings.Builder
	fmt.Fprintf(&out, "year: %s, month: %s", optInt(f.Year), optInt(f.Month))
	if f.MonthCode != "" {
		fmt.Fprintf(&out, ", monthCode: %s", f.MonthCode)
	}
	fmt.Fprintf(&out, ", day: %s", optInt(f.Day))
	return out.String()
}

// month resolves the numeric month and month code variants, requiring
// them to agree when both are present.
func (f Fields) month() (Month, error) {
	if f.MonthCode == "" {
		if f.Month == nil {
			return 0, fmt.Errorf("month: %w", ErrMissingField)
		}
		return Month(*f.Month), nil
	}
	coded, err := ParseMonthCode(f.MonthCode)
	if err != nil {
		return 0, err
	}
	if f.Month != nil && Month(*f.Month) != coded {
		return 0, fmt.Errorf("month %d does not match %s: %w", *f.Month, f.MonthCode, ErrFieldRange)
	}
	return coded, nil
}

// Overflow determines how out of range field values are handled when
// resolving a Fields value to a date.
type Overflow int

const (
	// Constrain clamps out of range values to the nearest valid value
	// and is the default.
	Constrain Overflow = iota
	// Reject fails with ErrFieldRange instead of clamping.
	Reject
)

func (o Overflow) String() string {
	switch o {
	case Constrain:
		return "constrain"
	case Reject:
		return "reject"
	}
	return fmt.Sprintf("invalid overflow: %d", int(o))
}

// Parse parses "constrain" or "reject". Any other value, including the
// empty string, is an error rather than being silently defaulted.
func (o *Overflow) Parse(val string) error {
	switch val {
	case "constrain":
		*o = Constrain
	case "reject":
		*o = Reject
	default:
		return fmt.Errorf("invalid overflow: %q", val)
	}
	return nil
}

// Options configures field resolution. The zero value selects the
// Constrain overflow behaviour.
type Options struct {
	Overflow Overflow
}

func (o Options) validate() error {
	if o.Overflow != Constrain && o.Overflow != Reject {
		return fmt.Errorf("invalid overflow: %d", int(o.Overflow))
	}
	return nil
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// isoDateFromFields resolves the field set to a date under the given
// options. Year, month (numeric or coded) and day are all required;
// every absent field is reported. The month is resolved and range
// checked before the day since the valid day range depends on it.
func isoDateFromFields(f Fields, opts Options) (Date, error) {
	if err := opts.validate(); err != nil {
		return Date{}, err
	}
	errs := errors.M{}
	if f.Year == nil {
		errs.Append(fmt.Errorf("year: %w", ErrMissingField))
	}
	month, err := f.month()
	errs.Append(err)
	if f.Day == nil {
		errs.Append(fmt.Errorf("day: %w", ErrMissingField))
	}
	if err := errs.Err(); err != nil {
		return Date{}, err
	}
	year, day := *f.Year, *f.Day
	if opts.Overflow == Reject {
		if month < 1 || month > 12 {
			return Date{}, fmt.Errorf("month %d: %w", int(month), ErrFieldRange)
		}
		if day < 1 || day > DaysInMonth(year, month) {
			return Date{}, fmt.Errorf("day %d of %v %v: %w", day, month, year, ErrFieldRange)
		}
		return newDate(year, month, day), nil
	}
	month = Month(clamp(int(month), 1, 12))
	day = clamp(day, 1, DaysInMonth(year, month))
	return newDate(year, month, day), nil
}
