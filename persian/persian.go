// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package persian implements the astronomical Persian (Solar Hijri)
// calendar. A year begins at the civil midnight that follows the March
// equinox as observed in apparent solar time on the Iran standard
// meridian, or on the same day if the equinox occurs before noon.
package persian

import (
	"errors"
	"fmt"
	"math"
	"time"

	"cloudeng.io/daypicker/astronomy"
	"cloudeng.io/daypicker/dates"
)

const (
	// Epoch is the Julian day of 1 Farvardin 1, 622-03-22 in the
	// proleptic Gregorian calendar.
	Epoch = 1948320.5
	// TropicalYear is the mean length of the tropical year in days.
	TropicalYear = 365.24219878
	// StandardMeridian is the longitude, in degrees east, used to
	// observe the equinox.
	StandardMeridian = 52.5
	// MaxSearchSteps bounds the equinox search.
	MaxSearchSteps = 1000
)

// ErrNotConverged is returned when the equinox search exceeds its step
// bound.
var ErrNotConverged = errors.New("persian: equinox search did not converge")

// Search is the result of locating the Persian year that contains a
// Julian day.
type Search struct {
	Year      int     // Persian year.
	Start     float64 // Julian day of the midnight starting 1 Farvardin.
	Converged bool    // False if the step bound was exceeded.
	Steps     int     // Number of equinoxes evaluated after the first.
}

// Err returns ErrNotConverged if the search did not converge.
func (s Search) Err() error {
	if s.Converged {
		return nil
	}
	return fmt.Errorf("year %v after %v steps: %w", s.Year, s.Steps, ErrNotConverged)
}

// EquinoxJD returns the Julian day, truncated with floor, of the March
// equinox of the specified Gregorian year in apparent solar time on the
// Iran standard meridian. The Persian year begins at EquinoxJD + 0.5.
func EquinoxJD(gregorianYear int) float64 {
	return math.Floor(astronomy.LocalApparentEquinox(gregorianYear, StandardMeridian))
}

// Searcher performs the bounded equinox search. The zero value uses
// EquinoxJD and MaxSearchSteps.
type Searcher struct {
	MaxSteps int
	Equinox  func(gregorianYear int) float64
}

func (s Searcher) maxSteps() int {
	if s.MaxSteps <= 0 {
		return MaxSearchSteps
	}
	return s.MaxSteps
}

func (s Searcher) equinox(year int) float64 {
	if s.Equinox == nil {
		return EquinoxJD(year)
	}
	return s.Equinox(year)
}

// YearOf returns the Persian year containing jd by walking forward
// through consecutive equinoxes until jd falls between two of them.
func (s Searcher) YearOf(jd float64) Search {
	gy, _, _ := astronomy.JDToGregorian(jd)
	limit := s.maxSteps()
	guess := gy - 2
	last := s.equinox(guess)
	steps := 0
	for last > jd && steps < limit {
		guess--
		last = s.equinox(guess)
		steps++
	}
	next := s.equinox(guess + 1)
	for (jd < last || jd >= next) && steps < limit {
		guess++
		last, next = next, s.equinox(guess+1)
		steps++
	}
	return Search{
		Year:      int(math.Round((last-Epoch)/TropicalYear)) + 1,
		Start:     last + 0.5,
		Converged: last <= jd && jd < next,
		Steps:     steps,
	}
}

// ToJD returns the Julian day of the specified Persian date.
func (s Searcher) ToJD(year, month, day int) (float64, Search) {
	guess := (Epoch - 1) + TropicalYear*float64(year-2)
	var r Search
	for i := 0; i < s.maxSteps(); i++ {
		r = s.YearOf(guess)
		if r.Year >= year || !r.Converged {
			break
		}
		guess = (r.Start - 0.5) + TropicalYear + 2
	}
	r.Converged = r.Converged && r.Year == year
	return r.Start + float64(MonthOffset(month)+day-1), r
}

// FromJD returns the Persian date containing jd.
func (s Searcher) FromJD(jd float64) (dates.DateParts, Search) {
	jd = math.Floor(jd-0.5) + 0.5
	r := s.YearOf(jd)
	yday := int(jd-r.Start) + 1
	var month int
	if yday <= 186 {
		month = (yday + 30) / 31
	} else {
		month = (yday - 6 + 29) / 30
	}
	return dates.NewDateParts(r.Year, month, yday-MonthOffset(month)), r
}

// MonthOffset returns the number of days in the year that precede the
// first day of the specified month.
func MonthOffset(month int) int {
	if month <= 7 {
		return (month - 1) * 31
	}
	return (month-1)*30 + 6
}

var defaultSearcher Searcher

// YearOf calls Searcher.YearOf with default settings.
func YearOf(jd float64) Search {
	return defaultSearcher.YearOf(jd)
}

// ToJD returns the Julian day of the specified Persian date. If the
// search does not converge the closest value found is returned.
func ToJD(year, month, day int) float64 {
	jd, _ := defaultSearcher.ToJD(year, month, day)
	return jd
}

// ToJDChecked is like ToJD but returns ErrNotConverged if the search
// does not converge.
func ToJDChecked(year, month, day int) (float64, error) {
	jd, r := defaultSearcher.ToJD(year, month, day)
	return jd, r.Err()
}

// FromJD returns the Persian date containing jd. If the search does
// not converge the closest value found is returned.
func FromJD(jd float64) dates.DateParts {
	dp, _ := defaultSearcher.FromJD(jd)
	return dp
}

// FromJDChecked is like FromJD but returns ErrNotConverged if the search
// does not converge.
func FromJDChecked(jd float64) (dates.DateParts, error) {
	dp, r := defaultSearcher.FromJD(jd)
	return dp, r.Err()
}

// IsLeap returns true if the specified Persian year has 366 days.
func (s Searcher) IsLeap(year int) bool {
	start, _ := s.ToJD(year, 1, 1)
	next, _ := s.ToJD(year+1, 1, 1)
	return next-start > 365
}

// DaysInMonth returns the number of days in the specified month, or
// zero for a month outside of 1..12.
func (s Searcher) DaysInMonth(year, month int) int {
	switch {
	case month >= 1 && month <= 6:
		return 31
	case month >= 7 && month <= 11:
		return 30
	case month == 12:
		if s.IsLeap(year) {
			return 30
		}
		return 29
	}
	return 0
}

// IsLeap returns true if the specified Persian year has 366 days.
func IsLeap(year int) bool {
	return defaultSearcher.IsLeap(year)
}

// DaysInMonth returns the number of days in the specified month, or
// zero for a month outside of 1..12.
func DaysInMonth(year, month int) int {
	return defaultSearcher.DaysInMonth(year, month)
}

// WeekdayNumber returns the traditional Persian day number, 1 for
// Saturday through 7 for Friday.
func WeekdayNumber(wd time.Weekday) int {
	if wd == time.Saturday {
		return 1
	}
	return int(wd) + 2
}
