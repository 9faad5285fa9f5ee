// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"time"

	"cloudeng.io/daypicker/astronomy"
	"cloudeng.io/daypicker/dates"
	"cloudeng.io/daypicker/persian"
	ptime "github.com/yaa110/go-persian-calendar"
)

var (
	iranianMonths = [12]string{
		"Farvardin", "Ordibehesht", "Khordad", "Tir", "Mordad", "Shahrivar",
		"Mehr", "Aban", "Azar", "Dey", "Bahman", "Esfand",
	}
	iranianWeekdays = [7]string{
		"Shanbeh", "Yekshanbeh", "Doshanbeh", "Seshanbeh",
		"Chaharshanbeh", "Panjshanbeh", "Jomeh",
	}
)

func persianScriptNames() (months [12]string, weekdays [7]string) {
	for i := range months {
		months[i] = ptime.Month(i + 1).String()
	}
	for i := range weekdays {
		weekdays[i] = ptime.Weekday(i).String()
	}
	return
}

// IranianCalendar is the astronomical Persian (Solar Hijri) calendar.
// Weekday 0 is Saturday and the calendar is displayed right to left.
type IranianCalendar struct {
	names
	name     string
	loc      *time.Location
	searcher persian.Searcher
}

// NewIranian returns a new Iranian calendar.
func NewIranian(opts ...Option) *IranianCalendar {
	o := newOptions(IranianName, opts)
	months, weekdays := iranianMonths, iranianWeekdays
	if o.persianScript {
		months, weekdays = persianScriptNames()
	}
	return &IranianCalendar{
		names:    o.names(months, weekdays),
		name:     o.name,
		loc:      o.loc,
		searcher: o.searcher,
	}
}

// Name implements Calendar.
func (c *IranianCalendar) Name() string {
	return c.name
}

// Location implements Calendar.
func (c *IranianCalendar) Location() *time.Location {
	return c.loc
}

// RightToLeft implements Calendar.
func (c *IranianCalendar) RightToLeft() bool {
	return true
}

func (c *IranianCalendar) jd(ts dates.Timestamp) float64 {
	t := ts.Time(c.loc)
	return astronomy.GregorianToJD(t.Year(), int(t.Month()), t.Day())
}

// DatePartsChecked is like ToDateParts but returns persian.ErrNotConverged
// if the equinox search fails to converge.
func (c *IranianCalendar) DatePartsChecked(ts dates.Timestamp) (dates.DateParts, error) {
	dp, r := c.searcher.FromJD(c.jd(ts))
	return dp, r.Err()
}

// TimestampChecked is like ToTimestamp but returns persian.ErrNotConverged
// if the equinox search fails to converge.
func (c *IranianCalendar) TimestampChecked(dp dates.DateParts) (dates.Timestamp, error) {
	jd, r := c.searcher.ToJD(dp.Year, dp.Month, dp.Date)
	y, m, d := astronomy.JDToGregorian(jd)
	return timestampFor(y, m, d, c.loc), r.Err()
}

// ToDateParts implements Calendar.
func (c *IranianCalendar) ToDateParts(ts dates.Timestamp) dates.DateParts {
	dp, _ := c.DatePartsChecked(ts)
	return dp
}

// ToTimestamp implements Calendar. Days beyond the end of a month run
// on into the following months.
func (c *IranianCalendar) ToTimestamp(dp dates.DateParts) dates.Timestamp {
	ts, _ := c.TimestampChecked(dp)
	return ts
}

// Weekday implements Calendar.
func (c *IranianCalendar) Weekday(ts dates.Timestamp) int {
	return persian.WeekdayNumber(ts.Time(c.loc).Weekday()) - 1
}

// DaysInMonth implements Calendar.
func (c *IranianCalendar) DaysInMonth(year, month int) int {
	return c.searcher.DaysInMonth(year, month)
}

// IsLeap returns true if the specified year has 366 days.
func (c *IranianCalendar) IsLeap(year int) bool {
	return c.searcher.IsLeap(year)
}

// WeekdaysInMonth implements Calendar.
func (c *IranianCalendar) WeekdaysInMonth(year, month int) []int {
	return weekdaysInMonth(c, year, month)
}

// Format implements Calendar.
func (c *IranianCalendar) Format(ts dates.Timestamp, pattern string) string {
	return FormatParts(c, c.ToDateParts(ts), c.Weekday(ts), pattern)
}
