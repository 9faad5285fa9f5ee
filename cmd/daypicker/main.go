// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command daypicker displays and converts dates in the Gregorian, Buddhist
// and Iranian calendars and serves the day picker API.
package main

import (
	"context"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/daypicker/config"
	"cloudeng.io/logging/ctxlog"
)

type CommonFlags struct {
	cmdutil.LoggingFlags
	Config string `subcmd:"config,,'yaml configuration file'"`
}

type MonthFlags struct {
	CommonFlags
	Calendar string `subcmd:"calendar,,'calendar to display: gregorian, buddhist or iranian, defaults to that of the locale'"`
	Locale   string `subcmd:"locale,,'locale used to select the calendar'"`
	Year     int    `subcmd:"year,0,'year to display, defaults to that of the value'"`
	Month    int    `subcmd:"month,0,'month to display, defaults to that of the value'"`
	Value    string `subcmd:"value,,'selected date in the configured format, defaults to today'"`
	JSON     bool   `subcmd:"json,false,'print the month view as json'"`
}

type ConvertFlags struct {
	CommonFlags
	From   string `subcmd:"from,gregorian,'calendar of the date to be converted'"`
	To     string `subcmd:"to,iranian,'calendar to convert to'"`
	Format string `subcmd:"format,YYYY-MM-DD,'format used to parse and print dates'"`
}

type EquinoxFlags struct {
	CommonFlags
}

type ServeFlags struct {
	CommonFlags
	Address string `subcmd:"address,,'address to listen on, overrides the configuration'"`
}

var cmdSet *subcmd.CommandSet

func init() {
	monthCmd := subcmd.NewCommand("month",
		subcmd.MustRegisterFlagStruct(&MonthFlags{}, nil, nil),
		month, subcmd.ExactlyNumArguments(0))
	monthCmd.Document(`display a month of the configured calendar.`)

	convertCmd := subcmd.NewCommand("convert",
		subcmd.MustRegisterFlagStruct(&ConvertFlags{}, nil, nil),
		convert, subcmd.ExactlyNumArguments(1))
	convertCmd.Document(`convert a date from one calendar to another.`, `<date>`)

	equinoxCmd := subcmd.NewCommand("equinox",
		subcmd.MustRegisterFlagStruct(&EquinoxFlags{}, nil, nil),
		equinox, subcmd.ExactlyNumArguments(1))
	equinoxCmd.Document(`display the March equinox, as observed in Tehran, and the resulting start of the Persian year.`, `<gregorian-year>`)

	serveCmd := subcmd.NewCommand("serve",
		subcmd.MustRegisterFlagStruct(&ServeFlags{}, nil, nil),
		serve, subcmd.ExactlyNumArguments(0))
	serveCmd.Document(`run the day picker API server until interrupted.`)

	cmdSet = subcmd.NewCommandSet(monthCmd, convertCmd, equinoxCmd, serveCmd)
	cmdSet.Document(`display, convert and serve dates in the Gregorian, Buddhist and Iranian calendars.

The Iranian calendar is computed astronomically: each year begins on the
day of the March equinox as observed on the Iran standard meridian.`)
}

func main() {
	cmdSet.MustDispatch(context.Background())
}

// setup returns a context carrying the logger configured by the flags
// and the configuration file, if any.
func setup(ctx context.Context, cl *CommonFlags) (context.Context, func(), config.Config, error) {
	logger, err := cl.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, func() {}, config.Config{}, err
	}
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	cleanup := func() { logger.Close() }
	if len(cl.Config) == 0 {
		return ctx, cleanup, config.Default(), nil
	}
	cfg, err := config.Load(ctx, cl.Config)
	if err != nil {
		return ctx, cleanup, config.Config{}, err
	}
	ctxlog.Logger(ctx).Info("loaded configuration", "file", cl.Config)
	return ctx, cleanup, cfg, nil
}
