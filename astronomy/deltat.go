// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

// deltaTTable holds the observed difference between dynamical and
// universal time, in seconds, for every second year starting in 1620.
var deltaTTable = []float64{
	121, 112, 103, 95, 88, 82, 77, 72, 68, 63, 60, 56, 53, 51, 48, 46,
	44, 42, 40, 38, 35, 33, 31, 29, 26, 24, 22, 20, 18, 16, 14, 12,
	11, 10, 9, 8, 7, 7, 7, 7, 7, 7, 8, 8, 9, 9, 9, 9, 9, 10, 10, 10,
	10, 10, 10, 10, 10, 11, 11, 11, 11, 11, 12, 12, 12, 12, 13, 13,
	13, 14, 14, 14, 14, 15, 15, 15, 15, 15, 16, 16, 16, 16, 16, 16,
	16, 16, 15, 15, 14, 13, 13.1, 12.5, 12.2, 12, 12, 12, 12, 12, 12,
	11.9, 11.6, 11, 10.2, 9.2, 8.2, 7.1, 6.2, 5.6, 5.4, 5.3, 5.4, 5.6,
	5.9, 6.2, 6.5, 6.8, 7.1, 7.3, 7.5, 7.6, 7.7, 7.3, 6.2, 5.2, 2.7,
	1.4, -1.2, -2.8, -3.8, -4.8, -5.5, -5.3, -5.6, -5.7, -5.9, -6,
	-6.3, -6.5, -6.2, -4.7, -2.8, -0.1, 2.6, 5.3, 7.7, 10.4, 13.3, 16,
	18.2, 20.2, 21.1, 22.4, 23.5, 23.8, 24.3, 24, 23.9, 23.9, 23.7, 24,
	24.3, 25.3, 26.2, 27.3, 28.2, 29.1, 30, 30.7, 31.4, 32.2, 33.1, 34,
	35, 36.5, 38.3, 40.2, 42.2, 44.5, 46.5, 48.5, 50.5, 52.2, 53.8,
	54.9, 55.8, 56.9, 58.3, 60, 61.6, 63, 65, 66.6,
}

const (
	deltaTFirstYear = 1620
	deltaTLastYear  = 2000
)

// DeltaT returns the difference, in seconds, between dynamical time
// and universal time for the specified (possibly fractional) year.
// Years from 1620 to 2000 are interpolated from observations, other
// years use the polynomial fits of Chapront, Chapront-Touze and
// Francou as given by Meeus.
func DeltaT(year float64) float64 {
	if year >= deltaTFirstYear && year <= deltaTLastYear {
		pos := (year - deltaTFirstYear) / 2
		i := int(pos)
		if i >= len(deltaTTable)-1 {
			return deltaTTable[len(deltaTTable)-1]
		}
		f := pos - float64(i)
		return deltaTTable[i] + (deltaTTable[i+1]-deltaTTable[i])*f
	}
	t := (year - 2000) / 100
	if year < 948 {
		return 2177 + 497*t + 44.1*t*t
	}
	dt := 102 + 102*t + 25.3*t*t
	if year > 2000 && year < 2100 {
		dt += 0.37 * (year - 2100)
	}
	return dt
}
