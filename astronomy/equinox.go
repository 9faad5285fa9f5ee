// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"math"
	"time"

	"github.com/mooncaker816/learnmeeus/v3/eqtime"
	"github.com/mooncaker816/learnmeeus/v3/solstice"
)

// MarchEquinox returns the March (vernal) equinox for the specified
// year as a Julian ephemeris day, ie. in dynamical time.
func MarchEquinox(year int) float64 {
	return solstice.March(year)
}

// MarchEquinoxTime returns the instant of the March equinox in UTC.
func MarchEquinoxTime(year int) time.Time {
	jde := MarchEquinox(year)
	return JDToTime(jde - DeltaT(float64(year))/86400)
}

// EquationOfTime returns the difference between apparent and mean solar
// time, in days, at the specified Julian ephemeris day.
func EquationOfTime(jde float64) float64 {
	return eqtime.ESmart(jde).Rad() / (2 * math.Pi)
}

// LocalApparentEquinox returns the March equinox for the specified year
// as a Julian day in apparent solar time at the specified longitude,
// in degrees east of Greenwich.
func LocalApparentEquinox(year int, longitude float64) float64 {
	jde := MarchEquinox(year)
	jd := jde - DeltaT(float64(year))/86400
	return jd + EquationOfTime(jde) + longitude/360
}

// SpringEquinox returns the date of the March equinox in UTC.
func SpringEquinox(year int) (y, m, d int) {
	t := MarchEquinoxTime(year)
	return t.Year(), int(t.Month()), t.Day()
}
