// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"cloudeng.io/calendar"
)

func TestDateFromFields(t *testing.T) {
	iso := calendar.ISO()
	for _, tc := range []struct {
		fields   calendar.Fields
		overflow calendar.Overflow
		date     calendar.Date
	}{
		{newFields(2024, 2, 29), calendar.Reject, newDate(2024, 2, 29)},
		{newFields(2024, 2, 29), calendar.Constrain, newDate(2024, 2, 29)},
		{newFields(2021, 2, 30), calendar.Constrain, newDate(2021, 2, 28)},
		{newFields(2021, 13, 5), calendar.Constrain, newDate(2021, 12, 5)},
		{newFields(2021, 0, 5), calendar.Constrain, newDate(2021, 1, 5)},
		{newFields(2021, 4, 0), calendar.Constrain, newDate(2021, 4, 1)},
		{newFields(2021, 4, 99), calendar.Constrain, newDate(2021, 4, 30)},
		{newFields(-544, 7, 12), calendar.Reject, newDate(-544, 7, 12)},
		{calendar.Fields{Year: intp(2021), MonthCode: "M03", Day: intp(4)}, calendar.Reject, newDate(2021, 3, 4)},
		{calendar.Fields{Year: intp(2021), Month: intp(3), MonthCode: "M03", Day: intp(4)}, calendar.Reject, newDate(2021, 3, 4)},
	} {
		cd, err := iso.DateFromFields(tc.fields, calendar.Options{Overflow: tc.overflow})
		if err != nil {
			t.Errorf("%v: %v", tc.fields, err)
			continue
		}
		if got, want := cd.Date(), tc.date; got != want {
			t.Errorf("%v: got %v, want %v", tc.fields, got, want)
		}
		if got, want := cd.Calendar(), iso; got != want {
			t.Errorf("%v: got %v, want %v", tc.fields, got, want)
		}
	}
}

func TestDateFromFieldsErrors(t *testing.T) {
	iso := calendar.ISO()
	for _, tc := range []struct {
		fields   calendar.Fields
		overflow calendar.Overflow
		err      error
	}{
		{calendar.Fields{Month: intp(2), Day: intp(3)}, calendar.Constrain, calendar.ErrMissingField},
		{calendar.Fields{Year: intp(2021), Day: intp(3)}, calendar.Constrain, calendar.ErrMissingField},
		{calendar.Fields{Year: intp(2021), Month: intp(2)}, calendar.Constrain, calendar.ErrMissingField},
		{calendar.Fields{}, calendar.Constrain, calendar.ErrMissingField},
		{calendar.Fields{Year: intp(2021), MonthCode: "M13", Day: intp(3)}, calendar.Constrain, calendar.ErrInvalidMonthCode},
		{calendar.Fields{Year: intp(2021), MonthCode: "MAR", Day: intp(3)}, calendar.Constrain, calendar.ErrInvalidMonthCode},
		{calendar.Fields{Year: intp(2021), Month: intp(4), MonthCode: "M03", Day: intp(3)}, calendar.Constrain, calendar.ErrFieldRange},
		{newFields(2021, 2, 30), calendar.Reject, calendar.ErrFieldRange},
		{newFields(2021, 13, 1), calendar.Reject, calendar.ErrFieldRange},
		{newFields(2021, 1, 0), calendar.Reject, calendar.ErrFieldRange},
	} {
		_, err := iso.DateFromFields(tc.fields, calendar.Options{Overflow: tc.overflow})
		if !errors.Is(err, tc.err) {
			t.Errorf("%v: expected %v, got %v", tc.fields, tc.err, err)
		}
	}

	// Every absent field is reported, not just the first.
	_, err := iso.DateFromFields(calendar.Fields{}, calendar.Options{})
	if err == nil {
		t.Fatalf("expected an error")
	}
	for _, field := range []string{"year", "month", "day"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("missing %q in: %v", field, err)
		}
	}

	if _, err := iso.DateFromFields(newFields(2024, 1, 1), calendar.Options{Overflow: calendar.Overflow(3)}); err == nil {
		t.Errorf("failed to return an error for an invalid overflow")
	}
}

func TestMonthCodeEquivalence(t *testing.T) {
	iso := calendar.ISO()
	for m := 1; m <= 12; m++ {
		numeric, err := iso.DateFromFields(newFields(2021, m, 5), calendar.Options{Overflow: calendar.Reject})
		if err != nil {
			t.Fatalf("%v: %v", m, err)
		}
		coded, err := iso.DateFromFields(calendar.Fields{
			Year:      intp(2021),
			MonthCode: fmt.Sprintf("M%02d", m),
			Day:       intp(5),
		}, calendar.Options{Overflow: calendar.Reject})
		if err != nil {
			t.Fatalf("%v: %v", m, err)
		}
		if got, want := coded.Date(), numeric.Date(); got != want {
			t.Errorf("%v: got %v, want %v", m, got, want)
		}
	}
}

func TestDateFromFieldsIdempotent(t *testing.T) {
	iso := calendar.ISO()
	first, err := iso.DateFromFields(newFields(2021, 2, 30), calendar.Options{})
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	second, err := iso.DateFromFields(first.Fields(), calendar.Options{Overflow: calendar.Reject})
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got, want := second.Date(), first.Date(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOverflowParse(t *testing.T) {
	for _, tc := range []struct {
		val      string
		overflow calendar.Overflow
	}{
		{"constrain", calendar.Constrain},
		{"reject", calendar.Reject},
	} {
		var o calendar.Overflow
		if err := o.Parse(tc.val); err != nil {
			t.Errorf("failed: %v: %v", tc.val, err)
			continue
		}
		if got, want := o, tc.overflow; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
		if got, want := o.String(), tc.val; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	for _, tc := range []string{"", "Constrain", "REJECT", "clamp"} {
		var o calendar.Overflow
		if err := o.Parse(tc); err == nil {
			t.Errorf("failed to return an error: %v", tc)
		}
	}
}
