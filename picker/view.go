// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package picker

import (
	"fmt"
	"slices"

	"cloudeng.io/daypicker/dates"
)

// DayCell is a single slot in the month grid. Empty slots have a zero
// Day and are disabled.
type DayCell struct {
	Day       int             `json:"day"`
	Timestamp dates.Timestamp `json:"timestamp,omitempty"`
	Disabled  bool            `json:"disabled,omitempty"`
	Current   bool            `json:"current,omitempty"`
	Today     bool            `json:"today,omitempty"`
}

// Navigation holds the values displayed by each header control.
type Navigation struct {
	PreviousYear  dates.Timestamp `json:"previous_year"`
	PreviousMonth dates.Timestamp `json:"previous_month"`
	NextMonth     dates.Timestamp `json:"next_month"`
	NextYear      dates.Timestamp `json:"next_year"`
}

// MonthView is everything required to render the displayed month.
// Weekdays and the days of each week are in display order, ie. reversed
// for right to left calendars.
type MonthView struct {
	Calendar    string      `json:"calendar"`
	Title       string      `json:"title"`
	Year        int         `json:"year"`
	Month       int         `json:"month"`
	RightToLeft bool        `json:"right_to_left"`
	Weekdays    []string    `json:"weekdays"`
	Weeks       [][]DayCell `json:"weeks"`
	Navigation  Navigation  `json:"navigation"`
	Value       string      `json:"value"`
	Visible     bool        `json:"visible"`
}

func abbreviate(s string) string {
	r := []rune(s)
	if len(r) > 3 {
		r = r[:3]
	}
	return string(r)
}

// View returns the view of the displayed month.
func (p *Picker) View() MonthView {
	dm := p.displayedMonth()
	current := p.cal.ToDateParts(p.value)
	today := p.cal.ToDateParts(p.now())
	name, _ := p.cal.MonthName(dm.Month)
	rtl := p.cal.RightToLeft()

	v := MonthView{
		Calendar:    p.cal.Name(),
		Title:       fmt.Sprintf("%s %d", name, dm.Year),
		Year:        dm.Year,
		Month:       dm.Month,
		RightToLeft: rtl,
		Navigation: Navigation{
			PreviousYear:  p.NavigationTarget(PreviousYear),
			PreviousMonth: p.NavigationTarget(PreviousMonth),
			NextMonth:     p.NavigationTarget(NextMonth),
			NextYear:      p.NavigationTarget(NextYear),
		},
		Value:   p.text,
		Visible: p.visible,
	}
	for _, wd := range p.cal.WeekdayNames() {
		v.Weekdays = append(v.Weekdays, abbreviate(wd))
	}
	for _, week := range dates.ConvertToWeeks(p.cal.WeekdaysInMonth(dm.Year, dm.Month)) {
		cells := make([]DayCell, len(week))
		for i, day := range week {
			if day == 0 {
				cells[i] = DayCell{Disabled: true}
				continue
			}
			dp := dm
			dp.Date = day
			ts := p.cal.ToTimestamp(dp)
			cells[i] = DayCell{
				Day:       day,
				Timestamp: ts,
				Disabled:  !p.bounds.Contains(ts),
				Current:   dates.IsSameDate(dp, current),
				Today:     dates.IsSameDate(dp, today),
			}
		}
		if rtl {
			slices.Reverse(cells)
		}
		v.Weeks = append(v.Weeks, cells)
	}
	if rtl {
		slices.Reverse(v.Weekdays)
	}
	return v
}
