// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package dates provides the calendar independent representations of a
// date used by the day picker, a year/month/day triple and a millisecond
// timestamp, together with the arithmetic performed on them.
package dates

import (
	"fmt"
	"time"
)

// MillisPerDay is the number of milliseconds in a civil day, ignoring
// daylight saving transitions.
const MillisPerDay = 24 * 60 * 60 * 1000

// DateParts is a date decomposed under some calendar. Month and Date
// are 1-based. A DateParts is not validated, a round trip through a
// calendar is the source of truth for normalization.
type DateParts struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Date  int `json:"date"`
}

// NewDateParts returns a DateParts for the specified year, month and date.
func NewDateParts(year, month, date int) DateParts {
	return DateParts{Year: year, Month: month, Date: date}
}

func (dp DateParts) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", dp.Year, dp.Month, dp.Date)
}

// Timestamp is a point in time as milliseconds since the Unix epoch.
type Timestamp int64

// TimestampOf returns the Timestamp for t.
func TimestampOf(t time.Time) Timestamp {
	return Timestamp(t.UnixMilli())
}

// Time returns the timestamp as a time.Time in the specified location,
// time.Local is used if loc is nil.
func (ts Timestamp) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.UnixMilli(int64(ts)).In(loc)
}

// StartOfDay returns the first instant of the specified date in loc,
// time.Local is used if loc is nil. Months and days outside of their
// usual ranges are normalized as for time.Date. On a day where a daylight
// saving transition skips midnight the day begins at the end of the
// transition.
func StartOfDay(year, month, day int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := time.Date(year, time.Month(month), day, 12, 0, 0, 0, loc).Date()
	t := time.Date(y, m, d, 0, 0, 0, 0, loc)
	if ty, tm, td := t.Date(); ty != y || tm != m || td != d {
		if _, end := t.ZoneBounds(); !end.IsZero() {
			t = end
		}
	}
	return t
}

// AddDays returns the timestamp offset by the specified number of days
// of MillisPerDay each.
func (ts Timestamp) AddDays(days int) Timestamp {
	return ts + Timestamp(days)*MillisPerDay
}

func (ts Timestamp) String() string {
	return ts.Time(time.UTC).Format(time.RFC3339)
}

// Converter converts between timestamps and date parts. Every calendar
// implements Converter.
type Converter interface {
	ToTimestamp(DateParts) Timestamp
	ToDateParts(Timestamp) DateParts
}

// Clock is the source of the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc allows a function to be used as a Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock is a Clock that returns time.Now.
var SystemClock Clock = ClockFunc(time.Now)
