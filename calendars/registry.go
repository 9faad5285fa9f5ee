// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"errors"
	"fmt"
	"strings"
)

// Names of the supported calendars.
const (
	GregorianName = "gregorian"
	BuddhistName  = "buddhist"
	IranianName   = "iranian"
)

// ErrUnknownCalendar is returned by Lookup for an unsupported name.
var ErrUnknownCalendar = errors.New("unknown calendar")

// Shared instances of each calendar using the local time zone.
var (
	Gregorian = NewGregorian()
	Buddhist  = NewBuddhist()
	Iranian   = NewIranian()
)

var aliases = map[string]string{
	GregorianName: GregorianName,
	BuddhistName:  BuddhistName,
	"thai":        BuddhistName,
	IranianName:   IranianName,
	"persian":     IranianName,
	"jalali":      IranianName,
	"jalaali":     IranianName,
}

// Names returns the names of the supported calendars.
func Names() []string {
	return []string{GregorianName, BuddhistName, IranianName}
}

// All returns the shared instance of every supported calendar.
func All() []Calendar {
	return []Calendar{Gregorian, Buddhist, Iranian}
}

// Lookup returns the shared calendar with the specified name or alias.
func Lookup(name string) (Calendar, error) {
	switch aliases[strings.ToLower(strings.TrimSpace(name))] {
	case GregorianName:
		return Gregorian, nil
	case BuddhistName:
		return Buddhist, nil
	case IranianName:
		return Iranian, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCalendar, name)
}

// New is like Lookup but returns a new instance created with the
// supplied options.
func New(name string, opts ...Option) (Calendar, error) {
	switch aliases[strings.ToLower(strings.TrimSpace(name))] {
	case GregorianName:
		return NewGregorian(opts...), nil
	case BuddhistName:
		return NewBuddhist(opts...), nil
	case IranianName:
		return NewIranian(opts...), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCalendar, name)
}

// LocaleCalendar returns the name of the calendar used for a locale: fa
// uses the Iranian calendar, th the Buddhist calendar and all others
// the Gregorian calendar. Region and script subtags are ignored.
func LocaleCalendar(locale string) string {
	lang := strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(lang, "-_"); i >= 0 {
		lang = lang[:i]
	}
	switch lang {
	case "fa":
		return IranianName
	case "th":
		return BuddhistName
	}
	return GregorianName
}

// ForLocale returns the shared calendar for the specified locale.
func ForLocale(locale string) Calendar {
	cal, _ := Lookup(LocaleCalendar(locale))
	return cal
}

// Resolve returns the named calendar if name is supported and the
// calendar for locale otherwise.
func Resolve(name, locale string) Calendar {
	if cal, err := Lookup(name); err == nil {
		return cal
	}
	return ForLocale(locale)
}
