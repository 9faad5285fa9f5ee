// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendars provides the calendar systems supported by the day
// picker: Gregorian, Buddhist and the astronomical Persian (Iranian)
// calendar. Calendars are immutable and safe for concurrent use.
package calendars

import (
	"time"

	"cloudeng.io/daypicker/dates"
	"cloudeng.io/daypicker/persian"
)

// Calendar represents a calendar system. Months are numbered from 1 and
// weekdays from 0, the meaning of weekday 0 is calendar specific.
type Calendar interface {
	dates.Converter
	// Name returns the name of the calendar, eg. "gregorian".
	Name() string
	// Location returns the time zone used to interpret timestamps.
	Location() *time.Location
	// RightToLeft returns true if the calendar is displayed right to left.
	RightToLeft() bool
	// MonthNames returns the names of the months in order.
	MonthNames() []string
	// WeekdayNames returns the names of the weekdays in order.
	WeekdayNames() []string
	// MonthName returns the name of the specified month, false is
	// returned for a month outside of 1..12.
	MonthName(month int) (string, bool)
	// Weekday returns the weekday, 0..6, of the specified timestamp.
	Weekday(ts dates.Timestamp) int
	// WeekdayName returns the name of the specified weekday, false is
	// returned for a weekday outside of 0..6.
	WeekdayName(weekday int) (string, bool)
	// DaysInMonth returns the number of days in the specified month.
	DaysInMonth(year, month int) int
	// WeekdaysInMonth returns the weekday of every day in the specified
	// month.
	WeekdaysInMonth(year, month int) []int
	// Format formats the specified timestamp, see FormatParts.
	Format(ts dates.Timestamp, pattern string) string
}

type names struct {
	months   [12]string
	weekdays [7]string
}

func (n *names) MonthNames() []string {
	return append([]string(nil), n.months[:]...)
}

func (n *names) WeekdayNames() []string {
	return append([]string(nil), n.weekdays[:]...)
}

func (n *names) MonthName(month int) (string, bool) {
	if month < 1 || month > len(n.months) {
		return "", false
	}
	return n.months[month-1], true
}

func (n *names) WeekdayName(weekday int) (string, bool) {
	if weekday < 0 || weekday >= len(n.weekdays) {
		return "", false
	}
	return n.weekdays[weekday], true
}

// Option represents an option to the calendar constructors.
type Option func(o *options)

type options struct {
	name          string
	loc           *time.Location
	months        []string
	weekdays      []string
	persianScript bool
	searcher      persian.Searcher
}

// WithName overrides the calendar's name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLocation sets the time zone used to interpret timestamps, the
// default is time.Local.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		o.loc = loc
	}
}

// WithMonthNames overrides the month names. Names are applied in order,
// missing names keep their defaults and extra names are ignored.
func WithMonthNames(names ...string) Option {
	return func(o *options) {
		o.months = names
	}
}

// WithWeekdayNames overrides the weekday names, see WithMonthNames.
func WithWeekdayNames(names ...string) Option {
	return func(o *options) {
		o.weekdays = names
	}
}

// WithPersianScript requests month and weekday names in Persian script
// for the Iranian calendar. It is ignored by other calendars.
func WithPersianScript() Option {
	return func(o *options) {
		o.persianScript = true
	}
}

// WithSearcher sets the equinox search used by the Iranian calendar,
// the zero value is used by default. It is ignored by other calendars.
func WithSearcher(s persian.Searcher) Option {
	return func(o *options) {
		o.searcher = s
	}
}

func newOptions(name string, opts []Option) options {
	o := options{name: name, loc: time.Local}
	for _, fn := range opts {
		fn(&o)
	}
	if o.loc == nil {
		o.loc = time.Local
	}
	return o
}

func (o options) names(months [12]string, weekdays [7]string) names {
	n := names{months: months, weekdays: weekdays}
	copy(n.months[:], o.months)
	copy(n.weekdays[:], o.weekdays)
	return n
}

// weekdaysInMonth follows the weekday of the first day of the month
// through the rest of the month.
func weekdaysInMonth(cal Calendar, year, month int) []int {
	n := cal.DaysInMonth(year, month)
	if n <= 0 {
		return nil
	}
	weekdays := make([]int, n)
	wd := cal.Weekday(cal.ToTimestamp(dates.NewDateParts(year, month, 1)))
	for i := range weekdays {
		weekdays[i] = wd
		wd = (wd + 1) % 7
	}
	return weekdays
}

func timestampFor(year, month, day int, loc *time.Location) dates.Timestamp {
	return dates.TimestampOf(dates.StartOfDay(year, month, day, loc))
}
