// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package picker

import (
	"log/slog"

	"cloudeng.io/daypicker/calendars"
	"cloudeng.io/daypicker/dates"
)

// Option represents an option to New.
type Option func(o *options)

type options struct {
	locale       string
	calendarName string
	calendar     calendars.Calendar
	format       string
	value        dates.Timestamp
	hasValue     bool
	text         string
	bounds       dates.Bounds
	hideOnSelect bool
	open         bool
	onChange     func(value, old dates.Timestamp)
	clock        dates.Clock
	logger       *slog.Logger
}

// WithLocale sets the locale used to select a calendar when none is
// specified with WithCalendar.
func WithLocale(locale string) Option {
	return func(o *options) {
		o.locale = locale
	}
}

// WithCalendar selects a calendar by name, an unsupported name is
// ignored in favour of the locale's calendar.
func WithCalendar(name string) Option {
	return func(o *options) {
		o.calendarName = name
	}
}

// WithCustomCalendar specifies the calendar to use, it takes precedence
// over WithCalendar and WithLocale.
func WithCustomCalendar(cal calendars.Calendar) Option {
	return func(o *options) {
		o.calendar = cal
	}
}

// WithFormat sets the pattern used to format and parse dates, the
// default is calendars.DefaultFormat.
func WithFormat(pattern string) Option {
	return func(o *options) {
		o.format = pattern
	}
}

// WithValue sets the initial value.
func WithValue(ts dates.Timestamp) Option {
	return func(o *options) {
		o.value, o.hasValue = ts, true
	}
}

// WithText sets the initial text of the bound input. It is parsed to
// obtain the initial value if WithValue is not specified.
func WithText(text string) Option {
	return func(o *options) {
		o.text = text
	}
}

// WithMin sets the earliest selectable date.
func WithMin(ts dates.Timestamp) Option {
	return func(o *options) {
		o.bounds = o.bounds.WithMin(ts)
	}
}

// WithMax sets the latest selectable date.
func WithMax(ts dates.Timestamp) Option {
	return func(o *options) {
		o.bounds = o.bounds.WithMax(ts)
	}
}

// WithHideOnSelect controls whether the picker is hidden when a day is
// selected, the default is true.
func WithHideOnSelect(v bool) Option {
	return func(o *options) {
		o.hideOnSelect = v
	}
}

// WithOpen controls whether the picker is initially visible.
func WithOpen(v bool) Option {
	return func(o *options) {
		o.open = v
	}
}

// WithOnValueChange registers a function that is called with the new
// and old values before every accepted change of value.
func WithOnValueChange(fn func(value, old dates.Timestamp)) Option {
	return func(o *options) {
		o.onChange = fn
	}
}

// WithClock sets the clock used for the default value and for today.
func WithClock(clock dates.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithLogger sets the logger used to report rejected values and
// unparsable text.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
