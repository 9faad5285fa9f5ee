// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"time"

	"cloudeng.io/daypicker/dates"
	"cloudeng.io/datetime"
)

var (
	gregorianMonths = [12]string{
		"January", "February", "March", "April", "May", "June", "July",
		"August", "September", "October", "November", "December",
	}
	gregorianWeekdays = [7]string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	}
)

// GregorianCalendar is the proleptic Gregorian calendar with weekday 0
// being Sunday.
type GregorianCalendar struct {
	names
	name string
	loc  *time.Location
}

// NewGregorian returns a new Gregorian calendar.
func NewGregorian(opts ...Option) *GregorianCalendar {
	o := newOptions(GregorianName, opts)
	return &GregorianCalendar{
		names: o.names(gregorianMonths, gregorianWeekdays),
		name:  o.name,
		loc:   o.loc,
	}
}

// Name implements Calendar.
func (c *GregorianCalendar) Name() string {
	return c.name
}

// Location implements Calendar.
func (c *GregorianCalendar) Location() *time.Location {
	return c.loc
}

// RightToLeft implements Calendar.
func (c *GregorianCalendar) RightToLeft() bool {
	return false
}

// ToDateParts implements Calendar.
func (c *GregorianCalendar) ToDateParts(ts dates.Timestamp) dates.DateParts {
	t := ts.Time(c.loc)
	return dates.NewDateParts(t.Year(), int(t.Month()), t.Day())
}

// ToTimestamp implements Calendar. The timestamp is for the start of the
// day, normally midnight, and out of range months and days are normalized, eg. February 30 is
// March 1 or 2.
func (c *GregorianCalendar) ToTimestamp(dp dates.DateParts) dates.Timestamp {
	return timestampFor(dp.Year, dp.Month, dp.Date, c.loc)
}

// Weekday implements Calendar.
func (c *GregorianCalendar) Weekday(ts dates.Timestamp) int {
	return int(ts.Time(c.loc).Weekday())
}

// DaysInMonth implements Calendar.
// It returns 0 for an invalid month.
func (c *GregorianCalendar) DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	return int(datetime.DaysInMonth(year, datetime.Month(month)))
}

// IsLeap returns true if year is a leap year.
func (c *GregorianCalendar) IsLeap(year int) bool {
	return datetime.IsLeap(year)
}

// WeekdaysInMonth implements Calendar.
func (c *GregorianCalendar) WeekdaysInMonth(year, month int) []int {
	return weekdaysInMonth(c, year, month)
}

// Format implements Calendar.
func (c *GregorianCalendar) Format(ts dates.Timestamp, pattern string) string {
	return FormatParts(c, c.ToDateParts(ts), c.Weekday(ts), pattern)
}
