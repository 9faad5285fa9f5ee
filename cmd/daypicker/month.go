// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"cloudeng.io/daypicker/picker"
	"cloudeng.io/logging/ctxlog"
	"github.com/charmbracelet/lipgloss"
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("5")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("3")).
			Align(lipgloss.Center)

	cellStyle = lipgloss.NewStyle().
			Width(4).
			Align(lipgloss.Right)

	weekdayStyle = cellStyle.
			Foreground(lipgloss.Color("8")).
			Bold(true)

	todayStyle = cellStyle.
			Foreground(lipgloss.Color("4")).
			Bold(true)

	currentStyle = cellStyle.
			Background(lipgloss.Color("3")).
			Foreground(lipgloss.Color("0")).
			Bold(true)

	disabledStyle = cellStyle.
			Faint(true)
)

func month(ctx context.Context, values any, _ []string) error {
	cl := values.(*MonthFlags)
	ctx, cleanup, cfg, err := setup(ctx, &cl.CommonFlags)
	if err != nil {
		return err
	}
	defer cleanup()
	if len(cl.Calendar) > 0 {
		cfg.Calendar = cl.Calendar
	}
	if len(cl.Locale) > 0 {
		cfg.Locale = cl.Locale
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	opts, err := cfg.PickerOptions()
	if err != nil {
		return err
	}
	opts = append(opts, picker.WithLogger(ctxlog.Logger(ctx)), picker.WithOpen(true))
	if len(cl.Value) > 0 {
		opts = append(opts, picker.WithText(cl.Value))
	}
	p, err := picker.New(opts...)
	if err != nil {
		return err
	}
	if err := display(p, cl.Year, cl.Month); err != nil {
		return err
	}
	view := p.View()
	if cl.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}
	fmt.Println(renderMonth(view))
	return nil
}

// display changes the displayed month of p, a zero year or month
// leaves that of the current value unchanged.
func display(p *picker.Picker, year, month int) error {
	if year == 0 && month == 0 {
		return nil
	}
	cal := p.Calendar()
	dp := cal.ToDateParts(p.Value())
	if year != 0 {
		dp.Year = year
	}
	if month != 0 {
		if month < 1 || month > 12 {
			return fmt.Errorf("invalid month: %v", month)
		}
		dp.Month = month
	}
	dp.Date = 1
	p.SetDisplayedValue(cal.ToTimestamp(dp))
	return nil
}

func renderCell(cell picker.DayCell) string {
	if cell.Day == 0 {
		return cellStyle.Render("")
	}
	day := strconv.Itoa(cell.Day)
	switch {
	case cell.Current:
		return currentStyle.Render(day)
	case cell.Disabled:
		return disabledStyle.Render(day)
	case cell.Today:
		return todayStyle.Render(day)
	}
	return cellStyle.Render(day)
}

// renderMonth renders view as a grid of days with the weekday names
// as column headings.
func renderMonth(view picker.MonthView) string {
	header := make([]string, len(view.Weekdays))
	for i, wd := range view.Weekdays {
		header[i] = weekdayStyle.Render(wd)
	}
	rows := []string{
		titleStyle.Width(4 * len(header)).Render(view.Title),
		lipgloss.JoinHorizontal(lipgloss.Top, header...),
	}
	for _, week := range view.Weeks {
		cells := make([]string, len(week))
		for i, cell := range week {
			cells[i] = renderCell(cell)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	if len(view.Value) > 0 {
		rows = append(rows, view.Value)
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
