// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"cloudeng.io/daypicker/calendars"
	"cloudeng.io/daypicker/dates"
)

func TestFormat(t *testing.T) {
	gregorian := calendars.NewGregorian(calendars.WithLocation(time.UTC))
	buddhist := calendars.NewBuddhist(calendars.WithLocation(time.UTC))
	iranian := calendars.NewIranian(calendars.WithLocation(time.UTC))
	// Tuesday.
	ts := utcTimestamp(2024, 10, 15)
	for i, tc := range []struct {
		cal     calendars.Calendar
		pattern string
		out     string
	}{
		{gregorian, "", "2024-10-15"},
		{gregorian, calendars.DefaultFormat, "2024-10-15"},
		{gregorian, "D MMMM YYYY", "15 October 2024"},
		{gregorian, "ddd, MMM D [of] YY", "Tue, Oct 15 of 24"},
		{gregorian, "dddd d", "Tuesday 2"},
		{gregorian, "M/D/YYYY", "10/15/2024"},
		{gregorian, "[YYYY] YYYY", "YYYY 2024"},
		{gregorian, "YYYY [unterminated", "2024 unterminated"},
		{buddhist, "YYYY-M-D", "2567-10-15"},
		{iranian, "YYYY/MM/DD", "1403/07/24"},
		{iranian, "D MMMM YYYY", "24 Mehr 1403"},
		{iranian, "dddd", "Seshanbeh"},
		{iranian, "d", "3"},
	} {
		if got, want := tc.cal.Format(ts, tc.pattern), tc.out; got != want {
			t.Errorf("%v: %v: got %q, want %q", i, tc.cal.Name(), got, want)
		}
	}
	if got, want := gregorian.Format(utcTimestamp(622, 3, 22), "YYYY-MM-DD"), "0622-03-22"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParse(t *testing.T) {
	gregorian := calendars.NewGregorian(calendars.WithLocation(time.UTC))
	iranian := calendars.NewIranian(calendars.WithLocation(time.UTC))
	dp := dates.NewDateParts
	for i, tc := range []struct {
		cal     calendars.Calendar
		text    string
		pattern string
		out     dates.DateParts
	}{
		{gregorian, "2024-10-15", "", dp(2024, 10, 15)},
		{gregorian, " 2024-1-5 ", "YYYY-M-D", dp(2024, 1, 5)},
		{gregorian, "15 October 2024", "D MMMM YYYY", dp(2024, 10, 15)},
		{gregorian, "15 oct 24", "D MMM YY", dp(2024, 10, 15)},
		{gregorian, "Tue, Oct 15 of 24", "ddd, MMM D [of] YY", dp(2024, 10, 15)},
		{gregorian, "2024-02-29", "", dp(2024, 2, 29)},
		{iranian, "1403/07/24", "YYYY/MM/DD", dp(1403, 7, 24)},
		{iranian, "1403/12/30", "YYYY/MM/DD", dp(1403, 12, 30)},
		{iranian, "۱۴۰۳/۰۷/۲۴", "YYYY/MM/DD", dp(1403, 7, 24)},
		{iranian, "24 Mehr 1403", "D MMMM YYYY", dp(1403, 7, 24)},
	} {
		got, err := calendars.Parse(tc.cal, tc.text, tc.pattern)
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if want := tc.out; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}

	for i, tc := range []struct {
		cal     calendars.Calendar
		text    string
		pattern string
	}{
		{gregorian, "2023-02-29", ""},
		{gregorian, "2024-13-01", ""},
		{gregorian, "2024-00-01", ""},
		{gregorian, "2024-01-00", ""},
		{gregorian, "abc", ""},
		{gregorian, "2024-01-01x", ""},
		{gregorian, "2024/01/01", ""},
		{gregorian, "", ""},
		{gregorian, "15 Foo 2024", "D MMMM YYYY"},
		{iranian, "1402/12/30", "YYYY/MM/DD"},
		{iranian, "1403/07/31", "YYYY/MM/DD"},
	} {
		_, err := calendars.Parse(tc.cal, tc.text, tc.pattern)
		if !errors.Is(err, calendars.ErrInvalidDate) {
			t.Errorf("%v: %q: unexpected error: %v", i, tc.text, err)
		}
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, cal := range []calendars.Calendar{
		calendars.NewGregorian(calendars.WithLocation(time.UTC)),
		calendars.NewBuddhist(calendars.WithLocation(time.UTC)),
		calendars.NewIranian(calendars.WithLocation(time.UTC)),
	} {
		for _, pattern := range []string{"", "YYYY/MM/DD", "D MMMM YYYY", "dddd, D MMM YYYY", "YY/MM/DD"} {
			ts := utcTimestamp(2024, 1, 1)
			for i := 0; i < 400; i += 7 {
				day := ts.AddDays(i)
				text := cal.Format(day, pattern)
				dp, err := calendars.Parse(cal, text, pattern)
				if err != nil {
					t.Errorf("%v: %q: %v", cal.Name(), text, err)
					continue
				}
				if got, want := dp, cal.ToDateParts(day); got != want {
					t.Errorf("%v: %q: got %v, want %v", cal.Name(), text, got, want)
				}
			}
		}
	}
}

func TestTwoDigitYears(t *testing.T) {
	gregorian := calendars.NewGregorian(calendars.WithLocation(time.UTC))
	buddhist := calendars.NewBuddhist(calendars.WithLocation(time.UTC))
	iranian := calendars.NewIranian(calendars.WithLocation(time.UTC))
	ref := utcTimestamp(2024, 10, 15)
	for _, tc := range []struct {
		cal  calendars.Calendar
		text string
		want dates.DateParts
	}{
		{gregorian, "24-10-15", dates.NewDateParts(2024, 10, 15)},
		{gregorian, "74-01-01", dates.NewDateParts(2074, 1, 1)},
		{gregorian, "75-01-01", dates.NewDateParts(1975, 1, 1)},
		{gregorian, "99-12-31", dates.NewDateParts(1999, 12, 31)},
		{buddhist, "67-03-01", dates.NewDateParts(2567, 3, 1)},
		{iranian, "03-07-24", dates.NewDateParts(1403, 7, 24)},
		{iranian, "99-12-30", dates.NewDateParts(1399, 12, 30)},
	} {
		got, err := calendars.ParseAt(tc.cal, tc.text, "YY-MM-DD", ref)
		if err != nil {
			t.Errorf("%v: %q: %v", tc.cal.Name(), tc.text, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%v: %q: got %v, want %v", tc.cal.Name(), tc.text, got, tc.want)
		}
	}
	// 1402 is not a leap year.
	if _, err := calendars.ParseAt(iranian, "02-12-30", "YY-MM-DD", ref); !errors.Is(err, calendars.ErrInvalidDate) {
		t.Errorf("unexpected error: %v", err)
	}
	for _, cal := range []calendars.Calendar{gregorian, buddhist, iranian} {
		text := cal.Format(ref, "YY/MM/DD")
		got, err := calendars.ParseAt(cal, text, "YY/MM/DD", ref)
		if err != nil {
			t.Errorf("%v: %q: %v", cal.Name(), text, err)
			continue
		}
		if want := cal.ToDateParts(ref); got != want {
			t.Errorf("%v: %q: got %v, want %v", cal.Name(), text, got, want)
		}
	}
}

func ExampleFormatParts() {
	cal := calendars.NewIranian(calendars.WithLocation(time.UTC))
	ts := dates.TimestampOf(time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC))
	fmt.Println(cal.Format(ts, "dddd D MMMM YYYY"))
	fmt.Println(calendars.Buddhist.Format(calendars.Buddhist.ToTimestamp(dates.NewDateParts(2567, 1, 1)), "YYYY-MM-DD"))
	// Output:
	// Chaharshanbeh 1 Farvardin 1403
	// 2567-01-01
}
