// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dates

// Week is a row of a month grid indexed by weekday. Each slot holds the
// 1-based day of the month or zero for an empty slot.
type Week [7]int

// Days returns the non-empty days in the week.
func (w Week) Days() []int {
	days := make([]int, 0, 7)
	for _, d := range w {
		if d != 0 {
			days = append(days, d)
		}
	}
	return days
}

// ConvertToWeeks groups the days of a month into weeks given the weekday
// index, 0..6, of each day of the month in order. A new week is started
// at the first day and whenever a weekday does not follow its predecessor.
// Weekday indices outside of 0..6 are ignored.
func ConvertToWeeks(weekdays []int) []Week {
	var weeks []Week
	prev := -2
	for i, wd := range weekdays {
		if wd < 0 || wd > 6 {
			continue
		}
		if len(weeks) == 0 || wd != prev+1 {
			weeks = append(weeks, Week{})
		}
		weeks[len(weeks)-1][wd] = i + 1
		prev = wd
	}
	return weeks
}
