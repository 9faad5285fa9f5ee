// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package astronomy provides the Julian day conversions and the March
// equinox calculations needed by the equinox based Persian calendar.
package astronomy

import (
	"math"
	"time"

	"github.com/mooncaker816/learnmeeus/v3/julian"
)

// JDUnixEpoch is the Julian day of 1970-01-01T00:00:00Z.
const JDUnixEpoch = 2440587.5

// GregorianToJD returns the Julian day at the start (midnight) of the
// specified date in the proleptic Gregorian calendar.
func GregorianToJD(year, month, day int) float64 {
	return julian.CalendarGregorianToJD(year, month, float64(day))
}

// JDToGregorian returns the proleptic Gregorian date containing jd.
func JDToGregorian(jd float64) (year, month, day int) {
	t := dayStart(jd)
	return t.Year(), int(t.Month()), t.Day()
}

// JDToTime returns jd as a UTC time.
func JDToTime(jd float64) time.Time {
	ms := math.Round((jd - JDUnixEpoch) * 86400 * 1000)
	return time.UnixMilli(int64(ms)).UTC()
}

// TimeToJD returns the Julian day for t.
func TimeToJD(t time.Time) float64 {
	return JDUnixEpoch + float64(t.UnixMilli())/(86400*1000)
}

func dayStart(jd float64) time.Time {
	days := int(math.Floor(jd-0.5) + 0.5 - JDUnixEpoch)
	return time.Date(1970, 1, 1+days, 0, 0, 0, 0, time.UTC)
}
