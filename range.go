// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"iter"
	"strings"
)

// DateRange represents a range of dates, inclusive of the start and end
// dates, which may span years.
type DateRange struct {
	from, to Date
}

// NewDateRange returns a DateRange for the from/to dates. If the from
// date is later than the to date then they are swapped.
func NewDateRange(from, to Date) DateRange {
	if from.Compare(to) > 0 {
		from, to = to, from
	}
	return DateRange{from, to}
}

// From returns the start date of the range.
func (dr DateRange) From() Date {
	return dr.from
}

// To returns the end date of the range.
func (dr DateRange) To() Date {
	return dr.to
}

// Include returns true if the specified date is within the range.
func (dr DateRange) Include(d Date) bool {
	return dr.from.Compare(d) <= 0 && dr.to.Compare(d) >= 0
}

func (dr DateRange) String() string {
	return fmt.Sprintf("%s - %s", dr.from, dr.to)
}

// Parse a range in the format '<from>:<to>' where both dates are in the
// format accepted by Date.Parse, eg. '2024-02-01:2024-03-15'. The from
// date must not be later than the to date.
func (dr *DateRange) Parse(val string) error {
	parts := strings.Split(val, ":")
	if len(parts) != 2 {
		return fmt.Errorf("invalid format, %q expected '<from>:<to>'", val)
	}
	var from, to Date
	if err := from.Parse(parts[0]); err != nil {
		return fmt.Errorf("invalid from: %s: %v", parts[0], err)
	}
	if err := to.Parse(parts[1]); err != nil {
		return fmt.Errorf("invalid to: %s: %v", parts[1], err)
	}
	if to.Compare(from) < 0 {
		return fmt.Errorf("from is later than to: %s %s", from, to)
	}
	*dr = DateRange{from, to}
	return nil
}

// Dates returns an iterator that yields each Date in the range.
func (dr DateRange) Dates() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := dr.from; d.Compare(dr.to) <= 0; d = d.Tomorrow() {
			if !yield(d) {
				return
			}
		}
	}
}

// Days returns the number of days in the range, inclusive of both ends.
func (dr DateRange) Days() int {
	return epochDays(dr.to.year, dr.to.month, dr.to.day) -
		epochDays(dr.from.year, dr.from.month, dr.from.day) + 1
}
