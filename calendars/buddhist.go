// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"cloudeng.io/daypicker/dates"
)

// BuddhistYearOffset is the difference between a Buddhist Era year and
// the corresponding Gregorian year.
const BuddhistYearOffset = 543

// BuddhistCalendar is the Thai solar calendar, ie. the Gregorian
// calendar with years counted in the Buddhist Era.
type BuddhistCalendar struct {
	*GregorianCalendar
}

// NewBuddhist returns a new Buddhist calendar.
func NewBuddhist(opts ...Option) *BuddhistCalendar {
	opts = append([]Option{WithName(BuddhistName)}, opts...)
	return &BuddhistCalendar{GregorianCalendar: NewGregorian(opts...)}
}

// ToDateParts implements Calendar.
func (c *BuddhistCalendar) ToDateParts(ts dates.Timestamp) dates.DateParts {
	return dates.ChangeYear(c.GregorianCalendar.ToDateParts(ts), BuddhistYearOffset)
}

// ToTimestamp implements Calendar.
func (c *BuddhistCalendar) ToTimestamp(dp dates.DateParts) dates.Timestamp {
	return c.GregorianCalendar.ToTimestamp(dates.ChangeYear(dp, -BuddhistYearOffset))
}

// DaysInMonth implements Calendar.
func (c *BuddhistCalendar) DaysInMonth(year, month int) int {
	return c.GregorianCalendar.DaysInMonth(year-BuddhistYearOffset, month)
}

// IsLeap returns true if the specified Buddhist Era year is a leap year.
func (c *BuddhistCalendar) IsLeap(year int) bool {
	return c.GregorianCalendar.IsLeap(year - BuddhistYearOffset)
}

// WeekdaysInMonth implements Calendar.
func (c *BuddhistCalendar) WeekdaysInMonth(year, month int) []int {
	return weekdaysInMonth(c, year, month)
}

// Format implements Calendar.
func (c *BuddhistCalendar) Format(ts dates.Timestamp, pattern string) string {
	return FormatParts(c, c.ToDateParts(ts), c.Weekday(ts), pattern)
}
