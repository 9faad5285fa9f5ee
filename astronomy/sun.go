// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// Place is a named location.
type Place struct {
	Name      string
	Latitude  float64
	Longitude float64
	Location  *time.Location
}

// Tehran is the reference location for the Persian calendar, times are
// reported in Iran Standard Time.
var Tehran = Place{
	Name:      "Tehran",
	Latitude:  35.6892,
	Longitude: 51.3890,
	Location:  time.FixedZone("IRST", 3*3600+1800),
}

func (p Place) location() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}

// SunriseSunset returns the times of sunrise and sunset at place for
// the specified Gregorian date. The times are in the place's location.
func SunriseSunset(place Place, year, month, day int) (rise, set time.Time) {
	rise, set = sunrise.SunriseSunset(
		place.Latitude, place.Longitude,
		year, time.Month(month), day)
	loc := place.location()
	return rise.In(loc), set.In(loc)
}

// ApparentSolarNoon returns the midpoint of sunrise and sunset at place
// for the specified Gregorian date.
func ApparentSolarNoon(place Place, year, month, day int) time.Time {
	rise, set := SunriseSunset(place, year, month, day)
	return rise.Add(set.Sub(rise) / 2)
}
