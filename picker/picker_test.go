// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package picker_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"cloudeng.io/daypicker/calendars"
	"cloudeng.io/daypicker/dates"
	"cloudeng.io/daypicker/picker"
)

var (
	utcGregorian = calendars.NewGregorian(calendars.WithLocation(time.UTC))
	utcIranian   = calendars.NewIranian(calendars.WithLocation(time.UTC))
	fixedClock   = dates.ClockFunc(func() time.Time {
		return time.Date(2024, 10, 20, 12, 0, 0, 0, time.UTC)
	})
)

func ts(y, m, d int) dates.Timestamp {
	return dates.TimestampOf(time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC))
}

func newPicker(t *testing.T, opts ...picker.Option) *picker.Picker {
	t.Helper()
	opts = append([]picker.Option{picker.WithClock(fixedClock)}, opts...)
	p, err := picker.New(opts...)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func parts(p *picker.Picker) dates.DateParts {
	return p.Calendar().ToDateParts(p.Value())
}

func displayed(p *picker.Picker) dates.DateParts {
	return p.Calendar().ToDateParts(p.DisplayedValue())
}

func TestNew(t *testing.T) {
	p := newPicker(t, picker.WithLocale("fa"))
	if got, want := p.Calendar().Name(), calendars.IranianName; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := p.Locale(), "fa"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := p.Value(), dates.TimestampOf(fixedClock.Now()); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if p.Visible() {
		t.Errorf("should not be visible")
	}

	p = newPicker(t, picker.WithLocale("fa"), picker.WithCalendar("gregorian"), picker.WithOpen(true))
	if got, want := p.Calendar().Name(), calendars.GregorianName; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !p.Visible() {
		t.Errorf("should be visible")
	}

	p = newPicker(t, picker.WithCustomCalendar(utcGregorian), picker.WithText("2024-03-05"))
	if got, want := p.Value(), ts(2024, 3, 5); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := p.Text(), "2024-03-05"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := p.FormatPattern(), calendars.DefaultFormat; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	p = newPicker(t, picker.WithCustomCalendar(utcGregorian), picker.WithText("not a date"))
	if got, want := p.Value(), dates.TimestampOf(fixedClock.Now()); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	p = newPicker(t, picker.WithCustomCalendar(utcIranian), picker.WithValue(ts(2024, 10, 15)), picker.WithFormat("YYYY/MM/DD"))
	if got, want := p.Text(), "1403/07/24"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	_, err := picker.New(picker.WithMin(ts(2024, 2, 1)), picker.WithMax(ts(2024, 1, 1)))
	if err == nil {
		t.Errorf("expected an error")
	}
}

func TestSetValue(t *testing.T) {
	type change struct{ value, old dates.Timestamp }
	var changes []change
	p := newPicker(t,
		picker.WithCustomCalendar(utcGregorian),
		picker.WithValue(ts(2024, 2, 10)),
		picker.WithMin(ts(2024, 2, 5)),
		picker.WithMax(ts(2024, 3, 5)),
		picker.WithOnValueChange(func(value, old dates.Timestamp) {
			changes = append(changes, change{value, old})
		}))

	if !p.SetValue(ts(2024, 2, 5)) {
		t.Errorf("value at the minimum should be accepted")
	}
	if !p.SetValue(ts(2024, 3, 5)) {
		t.Errorf("value at the maximum should be accepted")
	}
	if p.SetValue(ts(2024, 2, 4)) || p.SetValue(ts(2024, 3, 6)) {
		t.Errorf("values out of range should be rejected")
	}
	if got, want := p.Value(), ts(2024, 3, 5); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := p.Text(), "2024-03-05"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := len(changes), 2; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got, want := changes[0], (change{ts(2024, 2, 5), ts(2024, 2, 10)}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := changes[1], (change{ts(2024, 3, 5), ts(2024, 2, 5)}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := p.DisplayedValue(), ts(2024, 3, 5); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func key(t *testing.T, s string) picker.Key {
	t.Helper()
	k, err := picker.ParseKey(s)
	if err != nil {
		t.Fatal(err)
	}
	return k
}

func TestHandleKey(t *testing.T) {
	dp := dates.NewDateParts
	p := newPicker(t, picker.WithCustomCalendar(utcGregorian), picker.WithValue(ts(2024, 2, 28)), picker.WithOpen(true))
	for i, tc := range []struct {
		key       string
		value     dates.DateParts
		displayed dates.DateParts
	}{
		{"right", dp(2024, 2, 29), dp(2024, 2, 29)},
		{"right", dp(2024, 3, 1), dp(2024, 3, 1)},
		{"left", dp(2024, 2, 29), dp(2024, 2, 29)},
		{"up", dp(2024, 2, 22), dp(2024, 2, 22)},
		{"down", dp(2024, 2, 29), dp(2024, 2, 29)},
		{"shift+right", dp(2024, 2, 29), dp(2024, 3, 1)},
		{"shift+left", dp(2024, 2, 29), dp(2024, 2, 1)},
		{"shift+left", dp(2024, 2, 29), dp(2024, 1, 1)},
		{"shift+left", dp(2024, 2, 29), dp(2023, 12, 1)},
		{"ctrl+shift+right", dp(2024, 2, 29), dp(2024, 12, 1)},
		{"ctrl+shift+left", dp(2024, 2, 29), dp(2023, 12, 1)},
		{"down", dp(2024, 3, 7), dp(2024, 3, 7)},
	} {
		if !p.HandleKey(key(t, tc.key)) {
			t.Errorf("%v: %v: not consumed", i, tc.key)
		}
		if got, want := parts(p), tc.value; got != want {
			t.Errorf("%v: %v: got %v, want %v", i, tc.key, got, want)
		}
		if got, want := displayed(p), tc.displayed; got != want {
			t.Errorf("%v: %v: got %v, want %v", i, tc.key, got, want)
		}
	}
	if !p.Visible() {
		t.Errorf("should be visible")
	}
	if p.HandleKey(picker.Key{Code: picker.KeyOther}) {
		t.Errorf("other keys should not be consumed")
	}
	if !p.HandleKey(key(t, "Enter")) || p.Visible() {
		t.Errorf("enter should hide")
	}
	p.Show()
	if !p.HandleKey(key(t, "esc")) || p.Visible() {
		t.Errorf("escape should hide")
	}
}

func TestSkippedMidnight(t *testing.T) {
	// Daylight saving time began at midnight on 2015-10-18 in Sao Paulo.
	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Fatal(err)
	}
	dp := dates.NewDateParts
	for _, cal := range []calendars.Calendar{
		calendars.NewGregorian(calendars.WithLocation(saoPaulo)),
		calendars.NewIranian(calendars.WithLocation(saoPaulo)),
	} {
		gregorian := calendars.NewGregorian(calendars.WithLocation(saoPaulo))
		start := gregorian.ToTimestamp(dp(2015, 10, 16))
		p := newPicker(t, picker.WithCustomCalendar(cal), picker.WithValue(start))
		forward := key(t, "right")
		if cal.RightToLeft() {
			forward = key(t, "left")
		}
		for _, want := range []dates.DateParts{dp(2015, 10, 17), dp(2015, 10, 18), dp(2015, 10, 19)} {
			p.HandleKey(forward)
			if got := gregorian.ToDateParts(p.Value()); got != want {
				t.Errorf("%v: got %v, want %v", cal.Name(), got, want)
			}
		}
		p.HandleKey(key(t, "up"))
		if got, want := gregorian.ToDateParts(p.Value()), dp(2015, 10, 12); got != want {
			t.Errorf("%v: got %v, want %v", cal.Name(), got, want)
		}
	}

	cal := calendars.NewGregorian(calendars.WithLocation(saoPaulo))
	p := newPicker(t, picker.WithCustomCalendar(cal), picker.WithValue(cal.ToTimestamp(dp(2015, 10, 17))))
	if !p.Select(18) {
		t.Errorf("select failed")
	}
	if got, want := parts(p), dp(2015, 10, 18); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := p.Text(), "2015-10-18"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	view := p.View()
	for _, week := range view.Weeks {
		for _, cell := range week {
			if cell.Day == 0 {
				continue
			}
			if got, want := cal.ToDateParts(cell.Timestamp), dp(2015, 10, cell.Day); got != want {
				t.Errorf("got %v, want %v", got, want)
			}
		}
	}
}

func TestHandleKeyRightToLeft(t *testing.T) {
	dp := dates.NewDateParts
	p := newPicker(t, picker.WithCustomCalendar(utcIranian), picker.WithValue(ts(2024, 3, 20)))
	if got, want := parts(p), dp(1403, 1, 1); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	p.HandleKey(key(t, "left"))
	if got, want := parts(p), dp(1403, 1, 2); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	p.HandleKey(key(t, "right"))
	p.HandleKey(key(t, "right"))
	if got, want := parts(p), dp(1402, 12, 29); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// Month and year navigation is not mirrored.
	p.HandleKey(key(t, "shift+right"))
	if got, want := displayed(p), dp(1403, 1, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSelectAndNavigate(t *testing.T) {
	dp := dates.NewDateParts
	p := newPicker(t,
		picker.WithCustomCalendar(utcGregorian),
		picker.WithValue(ts(2024, 1, 31)),
		picker.WithMin(ts(2024, 2, 5)),
		picker.WithOpen(true))

	p.Navigate(picker.NextMonth)
	if got, want := displayed(p), dp(2024, 2, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, day := range []int{0, 3, 30} {
		if p.Select(day) {
			t.Errorf("%v: should not be selectable", day)
		}
	}
	if !p.Visible() {
		t.Errorf("should still be visible")
	}
	if !p.Select(10) {
		t.Errorf("should be selectable")
	}
	if got, want := parts(p), dp(2024, 2, 10); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if p.Visible() {
		t.Errorf("should be hidden after selection")
	}
	if p.Select(10) {
		t.Errorf("current value should not be selectable")
	}

	p = newPicker(t, picker.WithCustomCalendar(utcGregorian), picker.WithValue(ts(2024, 1, 31)), picker.WithHideOnSelect(false), picker.WithOpen(true))
	if !p.Select(1) || !p.Visible() {
		t.Errorf("should remain visible")
	}
	for _, tc := range []struct {
		nav picker.Nav
		dp  dates.DateParts
	}{
		{picker.PreviousMonth, dp(2023, 12, 1)},
		{picker.PreviousYear, dp(2022, 12, 1)},
		{picker.NextYear, dp(2023, 12, 1)},
		{picker.NextMonth, dp(2024, 1, 1)},
	} {
		p.Navigate(tc.nav)
		if got, want := displayed(p), tc.dp; got != want {
			t.Errorf("%v: got %v, want %v", tc.nav, got, want)
		}
	}
}

func TestType(t *testing.T) {
	p := newPicker(t, picker.WithCustomCalendar(utcGregorian), picker.WithValue(ts(2024, 1, 31)))
	if !p.Type("2024-03-05") {
		t.Errorf("value should change")
	}
	if got, want := p.Value(), ts(2024, 3, 5); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if p.Type("2024-3-5x") {
		t.Errorf("value should not change")
	}
	if got, want := p.Text(), "2024-03-05"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if p.Type("2024-03-05") {
		t.Errorf("value should not change")
	}
}

func TestKeys(t *testing.T) {
	for _, tc := range []struct {
		in  string
		key picker.Key
	}{
		{"left", picker.Key{Code: picker.KeyLeft}},
		{"Shift+Right", picker.Key{Code: picker.KeyRight, Shift: true}},
		{"ctrl+shift+left", picker.Key{Code: picker.KeyLeft, Shift: true, Ctrl: true}},
		{"escape", picker.Key{Code: picker.KeyEscape}},
		{"return", picker.Key{Code: picker.KeyEnter}},
	} {
		k, err := picker.ParseKey(tc.in)
		if err != nil {
			t.Errorf("%v: %v", tc.in, err)
			continue
		}
		if got, want := k, tc.key; got != want {
			t.Errorf("%v: got %v, want %v", tc.in, got, want)
		}
	}
	if got, want := (picker.Key{Code: picker.KeyLeft, Shift: true, Ctrl: true}).String(), "ctrl+shift+left"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, in := range []string{"", "tab", "alt+left", "shift+"} {
		if _, err := picker.ParseKey(in); err == nil {
			t.Errorf("%q: expected an error", in)
		}
	}
	for _, nav := range []picker.Nav{picker.PreviousYear, picker.PreviousMonth, picker.NextMonth, picker.NextYear} {
		n, err := picker.ParseNav(nav.String())
		if err != nil || n != nav {
			t.Errorf("%v: got %v, %v", nav, n, err)
		}
	}
	if _, err := picker.ParseNav("sideways"); err == nil {
		t.Errorf("expected an error")
	}
}
