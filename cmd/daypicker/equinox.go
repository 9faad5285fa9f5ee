// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"cloudeng.io/daypicker/astronomy"
	"cloudeng.io/daypicker/dates"
	"cloudeng.io/daypicker/persian"
	"github.com/charmbracelet/lipgloss"
)

var labelStyle = lipgloss.NewStyle().
	Bold(true).
	Width(20)

// equinoxReport describes the March equinox of a Gregorian year and the
// Persian year that it begins.
type equinoxReport struct {
	Year         int
	Equinox      time.Time
	Apparent     float64
	Nowruz       dates.DateParts
	PersianYear  int
	Leap         bool
	Sunrise      time.Time
	Sunset       time.Time
	ApparentNoon time.Time
}

func newEquinoxReport(year int) (equinoxReport, error) {
	start := persian.EquinoxJD(year) + 0.5
	r := persian.YearOf(start)
	if err := r.Err(); err != nil {
		return equinoxReport{}, err
	}
	gy, gm, gd := astronomy.JDToGregorian(start)
	rise, set := astronomy.SunriseSunset(astronomy.Tehran, gy, gm, gd)
	return equinoxReport{
		Year:         year,
		Equinox:      astronomy.MarchEquinoxTime(year),
		Apparent:     astronomy.LocalApparentEquinox(year, persian.StandardMeridian),
		Nowruz:       dates.NewDateParts(gy, gm, gd),
		PersianYear:  r.Year,
		Leap:         persian.IsLeap(r.Year),
		Sunrise:      rise,
		Sunset:       set,
		ApparentNoon: astronomy.ApparentSolarNoon(astronomy.Tehran, gy, gm, gd),
	}, nil
}

func (r equinoxReport) write(out io.Writer) {
	line := func(label string, format string, args ...any) {
		fmt.Fprintf(out, "%s%s\n", labelStyle.Render(label), fmt.Sprintf(format, args...))
	}
	tehran := astronomy.Tehran.Location
	line("equinox (UTC)", "%s", r.Equinox.Format(time.DateTime))
	line("equinox (Tehran)", "%s", r.Equinox.In(tehran).Format(time.DateTime))
	line("apparent solar JD", "%.5f", r.Apparent)
	line("1 Farvardin", "%v (%04d/01/01)", r.Nowruz, r.PersianYear)
	line("leap year", "%v", r.Leap)
	line("Tehran sunrise", "%s", r.Sunrise.Format(time.TimeOnly))
	line("Tehran solar noon", "%s", r.ApparentNoon.Format(time.TimeOnly))
	line("Tehran sunset", "%s", r.Sunset.Format(time.TimeOnly))
}

func equinox(ctx context.Context, values any, args []string) error {
	cl := values.(*EquinoxFlags)
	_, cleanup, _, err := setup(ctx, &cl.CommonFlags)
	if err != nil {
		return err
	}
	defer cleanup()
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid year %q: %w", args[0], err)
	}
	r, err := newEquinoxReport(year)
	if err != nil {
		return err
	}
	r.write(os.Stdout)
	return nil
}
