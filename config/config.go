// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package config provides YAML configuration for day pickers and the
// day picker server.
package config

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/daypicker/calendars"
	"cloudeng.io/daypicker/dates"
	"cloudeng.io/daypicker/picker"
	"cloudeng.io/errors"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultConfig []byte

// Date is a Gregorian date in time.DateOnly format, eg. 2024-03-20.
type Date struct {
	dates.DateParts
	Set bool
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	t, err := time.Parse(time.DateOnly, node.Value)
	if err != nil {
		return fmt.Errorf("line %v: %w", node.Line, err)
	}
	d.DateParts = dates.NewDateParts(t.Year(), int(t.Month()), t.Day())
	d.Set = true
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (any, error) {
	if !d.Set {
		return nil, nil
	}
	return d.DateParts.String(), nil
}

// Timestamp returns the timestamp of the start of the date in the
// specified location.
func (d Date) Timestamp(loc *time.Location) dates.Timestamp {
	return dates.TimestampOf(dates.StartOfDay(d.Year, d.Month, d.Date, loc))
}

// Server represents the configuration of the day picker server.
type Server struct {
	Address       string        `yaml:"address"`
	ShutdownGrace time.Duration `yaml:"shutdown_grace"`
}

// Config represents the configuration of a day picker.
type Config struct {
	Locale        string `yaml:"locale"`
	Calendar      string `yaml:"calendar"`
	Format        string `yaml:"format"`
	PersianScript bool   `yaml:"persian_script"`
	TimeZone      string `yaml:"time_zone"`
	Min           Date   `yaml:"min"`
	Max           Date   `yaml:"max"`
	HideOnSelect  *bool  `yaml:"hide_on_select"`
	Server        Server `yaml:"server"`
}

// Default returns the default configuration.
func Default() Config {
	var cfg Config
	if err := cmdyaml.ParseConfigStrict(defaultConfig, &cfg); err != nil {
		panic(fmt.Sprintf("invalid default configuration: %v", err))
	}
	return cfg
}

// Parse parses and validates a YAML configuration. Unknown fields are
// reported as errors.
func Parse(spec []byte) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigStrict(spec, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Load reads, parses and validates a YAML configuration file. The file
// is read using file.FSReadFile and hence may be read from any
// fs.ReadFileFS stored in ctx using file.ContextWithFS.
func Load(ctx context.Context, filename string) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%v: %w", filename, err)
	}
	return cfg, nil
}

// Location returns the configured time zone, time.Local if none is set.
func (c Config) Location() (*time.Location, error) {
	if len(c.TimeZone) == 0 {
		return time.Local, nil
	}
	return time.LoadLocation(c.TimeZone)
}

// CalendarName returns the name of the configured calendar, falling back
// to the calendar for the configured locale.
func (c Config) CalendarName() string {
	if _, err := calendars.Lookup(c.Calendar); err == nil {
		return c.Calendar
	}
	return calendars.LocaleCalendar(c.Locale)
}

// NewCalendar returns a new instance of the configured calendar.
func (c Config) NewCalendar() (calendars.Calendar, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, err
	}
	opts := []calendars.Option{calendars.WithLocation(loc)}
	if c.PersianScript {
		opts = append(opts, calendars.WithPersianScript())
	}
	return calendars.New(c.CalendarName(), opts...)
}

// Validate returns all of the problems found in the configuration.
func (c Config) Validate() error {
	var errs errors.M
	if len(c.Calendar) > 0 {
		if _, err := calendars.Lookup(c.Calendar); err != nil {
			errs.Append(err)
		}
	}
	loc, err := c.Location()
	if err != nil {
		errs.Append(fmt.Errorf("time_zone: %w", err))
		loc = time.UTC
	}
	if len(c.Format) > 0 {
		cal := calendars.ForLocale(c.Locale)
		if named, err := calendars.Lookup(c.Calendar); err == nil {
			cal = named
		}
		sample := dates.TimestampOf(time.Date(2025, 3, 19, 12, 0, 0, 0, time.UTC))
		text := cal.Format(sample, c.Format)
		got, err := calendars.ParseAt(cal, text, c.Format, sample)
		switch {
		case err != nil:
			errs.Append(fmt.Errorf("format %q cannot be parsed: %w", c.Format, err))
		case got != cal.ToDateParts(sample):
			errs.Append(fmt.Errorf("format %q: %q parses as %v, not %v", c.Format, text, got, cal.ToDateParts(sample)))
		}
	}
	if c.Min.Set && c.Max.Set && dates.IsBeforeDate(c.Max.Timestamp(loc), c.Min.Timestamp(loc)) {
		errs.Append(fmt.Errorf("max %v is before min %v", c.Max.DateParts, c.Min.DateParts))
	}
	if c.Server.ShutdownGrace < 0 {
		errs.Append(fmt.Errorf("shutdown_grace: negative duration %v", c.Server.ShutdownGrace))
	}
	return errs.Err()
}

// PickerOptions returns the picker options for the configuration.
func (c Config) PickerOptions() ([]picker.Option, error) {
	cal, err := c.NewCalendar()
	if err != nil {
		return nil, err
	}
	opts := []picker.Option{
		picker.WithLocale(c.Locale),
		picker.WithCustomCalendar(cal),
	}
	if len(c.Format) > 0 {
		opts = append(opts, picker.WithFormat(c.Format))
	}
	if c.Min.Set {
		opts = append(opts, picker.WithMin(c.Min.Timestamp(cal.Location())))
	}
	if c.Max.Set {
		opts = append(opts, picker.WithMax(c.Max.Timestamp(cal.Location())))
	}
	if c.HideOnSelect != nil {
		opts = append(opts, picker.WithHideOnSelect(*c.HideOnSelect))
	}
	return opts, nil
}
