// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package picker provides a headless day picker: the state and behaviour
// of an inline calendar bound to a date input, independent of how it is
// rendered. A Picker is not safe for concurrent use.
package picker

import (
	"fmt"
	"log/slog"

	"cloudeng.io/daypicker/calendars"
	"cloudeng.io/daypicker/dates"
)

// Picker represents the state of a day picker: the selected value, the
// month being displayed, the text of the bound input and whether the
// calendar is visible.
type Picker struct {
	cal          calendars.Calendar
	locale       string
	format       string
	bounds       dates.Bounds
	hideOnSelect bool
	visible      bool
	value        dates.Timestamp
	displayed    dates.Timestamp
	text         string
	onChange     func(value, old dates.Timestamp)
	clock        dates.Clock
	logger       *slog.Logger
}

// New returns a new Picker. The initial value is, in order of
// precedence, that specified by WithValue, the parsed value of
// WithText or the current time.
func New(opts ...Option) (*Picker, error) {
	o := options{hideOnSelect: true}
	for _, fn := range opts {
		fn(&o)
	}
	p := &Picker{
		locale:       o.locale,
		format:       o.format,
		bounds:       o.bounds,
		hideOnSelect: o.hideOnSelect,
		visible:      o.open,
		onChange:     o.onChange,
		clock:        o.clock,
		logger:       o.logger,
	}
	if p.format == "" {
		p.format = calendars.DefaultFormat
	}
	if p.clock == nil {
		p.clock = dates.SystemClock
	}
	if p.logger == nil {
		p.logger = slog.New(slog.DiscardHandler)
	}
	p.cal = o.calendar
	if p.cal == nil {
		p.cal = calendars.Resolve(o.calendarName, o.locale)
	}
	if p.bounds.HasMin && p.bounds.HasMax && dates.IsBeforeDate(p.bounds.Max, p.bounds.Min) {
		return nil, fmt.Errorf("max %v is before min %v", p.bounds.Max, p.bounds.Min)
	}
	switch {
	case o.hasValue:
		p.value = o.value
	case len(o.text) > 0:
		dp, err := calendars.ParseAt(p.cal, o.text, p.format, p.now())
		if err != nil {
			p.logger.Debug("ignoring initial text", "text", o.text, "error", err)
			p.value = p.now()
		} else {
			p.value = p.cal.ToTimestamp(dp)
		}
	default:
		p.value = p.now()
	}
	p.displayed = p.value
	p.text = p.cal.Format(p.value, p.format)
	return p, nil
}

func (p *Picker) now() dates.Timestamp {
	return dates.TimestampOf(p.clock.Now())
}

// Calendar returns the calendar in use.
func (p *Picker) Calendar() calendars.Calendar {
	return p.cal
}

// Locale returns the locale specified when the picker was created.
func (p *Picker) Locale() string {
	return p.locale
}

// FormatPattern returns the pattern used to format and parse dates.
func (p *Picker) FormatPattern() string {
	return p.format
}

// Bounds returns the selectable range.
func (p *Picker) Bounds() dates.Bounds {
	return p.bounds
}

// Value returns the selected value.
func (p *Picker) Value() dates.Timestamp {
	return p.value
}

// DisplayedValue returns a timestamp within the displayed month.
func (p *Picker) DisplayedValue() dates.Timestamp {
	return p.displayed
}

// Text returns the text of the bound input, ie. the formatted value.
func (p *Picker) Text() string {
	return p.text
}

// Visible returns true if the calendar is visible.
func (p *Picker) Visible() bool {
	return p.visible
}

// Show makes the calendar visible.
func (p *Picker) Show() {
	p.visible = true
}

// Hide hides the calendar.
func (p *Picker) Hide() {
	p.visible = false
}

// SetValue sets the selected value and displays its month. A value
// outside of the bounds is rejected, the text is restored and false is
// returned.
func (p *Picker) SetValue(ts dates.Timestamp) bool {
	if !p.bounds.Contains(ts) {
		p.logger.Debug("value out of range", "value", ts, "calendar", p.cal.Name())
		p.text = p.cal.Format(p.value, p.format)
		return false
	}
	if p.onChange != nil {
		p.onChange(ts, p.value)
	}
	p.value = ts
	p.text = p.cal.Format(p.value, p.format)
	p.SetDisplayedValue(ts)
	return true
}

// SetDisplayedValue displays the month containing ts.
func (p *Picker) SetDisplayedValue(ts dates.Timestamp) {
	p.displayed = ts
}

func (p *Picker) displayedMonth() dates.DateParts {
	dp := p.cal.ToDateParts(p.displayed)
	dp.Date = 1
	return dp
}

// NavigationTarget returns the value that the specified header control
// displays. The first day of the month is used so that moving between
// months of different lengths never skips a month.
func (p *Picker) NavigationTarget(n Nav) dates.Timestamp {
	dp := p.displayedMonth()
	switch n {
	case PreviousYear:
		dp = dates.ChangeYear(dp, -1)
	case PreviousMonth:
		dp = dates.ChangeMonth(dp, -1)
	case NextMonth:
		dp = dates.ChangeMonth(dp, 1)
	case NextYear:
		dp = dates.ChangeYear(dp, 1)
	}
	return p.cal.ToTimestamp(dp)
}

// Navigate displays the month selected by the specified header control.
func (p *Picker) Navigate(n Nav) {
	p.SetDisplayedValue(p.NavigationTarget(n))
}

func (p *Picker) moveValue(days int) {
	dp := dates.ChangeDate(p.cal.ToDateParts(p.value), days, p.cal)
	p.SetValue(p.cal.ToTimestamp(dp))
}

// HandleKey handles a key press and returns true if the key was
// consumed. Enter and escape hide the calendar. Left and right move
// the value by a day, mirrored for right to left calendars, or with
// shift the displayed month, or with ctrl and shift the displayed year.
// Up and down move the value by a week.
func (p *Picker) HandleKey(k Key) bool {
	dir := 1
	if p.cal.RightToLeft() {
		dir = -1
	}
	switch k.Code {
	case KeyEnter, KeyEscape:
		p.Hide()
	case KeyLeft, KeyRight:
		back := k.Code == KeyLeft
		switch {
		case k.Ctrl && k.Shift && back:
			p.Navigate(PreviousYear)
		case k.Ctrl && k.Shift:
			p.Navigate(NextYear)
		case k.Shift && back:
			p.Navigate(PreviousMonth)
		case k.Shift:
			p.Navigate(NextMonth)
		case back:
			p.moveValue(-dir)
		default:
			p.moveValue(dir)
		}
	case KeyUp:
		p.moveValue(-7)
	case KeyDown:
		p.moveValue(7)
	default:
		return false
	}
	return true
}

// Type handles text typed into the bound input. Text that parses to a
// date other than the current value becomes the value, text that cannot
// be parsed is replaced by the formatted value. It returns true if the
// value changed.
func (p *Picker) Type(text string) bool {
	dp, err := calendars.ParseAt(p.cal, text, p.format, p.now())
	if err != nil {
		p.logger.Debug("ignoring typed text", "text", text, "error", err)
		p.text = p.cal.Format(p.value, p.format)
		return false
	}
	if dates.IsSameDate(dp, p.cal.ToDateParts(p.value)) {
		p.text = text
		return false
	}
	return p.SetValue(p.cal.ToTimestamp(dp))
}

// Select handles a click on the specified day of the displayed month.
// Days outside of the bounds and the current value are ignored. It
// returns true if the value changed.
func (p *Picker) Select(day int) bool {
	dp := p.displayedMonth()
	if day < 1 || day > p.cal.DaysInMonth(dp.Year, dp.Month) {
		return false
	}
	dp.Date = day
	ts := p.cal.ToTimestamp(dp)
	if !p.bounds.Contains(ts) || dates.IsSameDate(dp, p.cal.ToDateParts(p.value)) {
		return false
	}
	if !p.SetValue(ts) {
		return false
	}
	if p.hideOnSelect {
		p.Hide()
	}
	return true
}
