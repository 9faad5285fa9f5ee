// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dates

// ChangeYear returns a copy of dp with the year offset by delta. The
// month and date are not adjusted.
func ChangeYear(dp DateParts, delta int) DateParts {
	dp.Year += delta
	return dp
}

// ChangeMonth returns a copy of dp with the month offset by delta, months
// outside of 1..12 carry into the year. The date is not clamped to the
// length of the new month.
func ChangeMonth(dp DateParts, delta int) DateParts {
	m := dp.Month - 1 + delta
	dp.Year += floorDiv(m, 12)
	dp.Month = m - floorDiv(m, 12)*12 + 1
	return dp
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// ChangeDate returns dp offset by delta days. The arithmetic is performed
// on timestamps obtained from conv and hence is correct across month and
// year boundaries for the calendar that conv implements.
func ChangeDate(dp DateParts, delta int, conv Converter) DateParts {
	// Offset into the middle of the day so that daylight saving
	// transitions cannot move the result onto an adjacent date.
	ts := conv.ToTimestamp(dp).AddDays(delta) + MillisPerDay/2
	return conv.ToDateParts(ts)
}

// IsSameDate returns true if a and b have the same year, month and date.
// Both must have been decomposed under the same calendar.
func IsSameDate(a, b DateParts) bool {
	return a.Year == b.Year && a.Month == b.Month && a.Date == b.Date
}

// IsBeforeDate returns true if a is strictly before b.
func IsBeforeDate(a, b Timestamp) bool {
	return a < b
}

// Bounds represents optional minimum and maximum timestamps.
type Bounds struct {
	Min, Max       Timestamp
	HasMin, HasMax bool
}

// WithMin returns a copy of b with the minimum set.
func (b Bounds) WithMin(ts Timestamp) Bounds {
	b.Min, b.HasMin = ts, true
	return b
}

// WithMax returns a copy of b with the maximum set.
func (b Bounds) WithMax(ts Timestamp) Bounds {
	b.Max, b.HasMax = ts, true
	return b
}

// Contains returns true if ts is not before the minimum and the maximum is
// not before ts. Undefined bounds impose no limit.
func (b Bounds) Contains(ts Timestamp) bool {
	if b.HasMin && IsBeforeDate(ts, b.Min) {
		return false
	}
	if b.HasMax && IsBeforeDate(b.Max, ts) {
		return false
	}
	return true
}
