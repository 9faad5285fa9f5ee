// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/daypicker/calendars"
	"cloudeng.io/logging/ctxlog"
)

func convert(ctx context.Context, values any, args []string) error {
	cl := values.(*ConvertFlags)
	ctx, cleanup, _, err := setup(ctx, &cl.CommonFlags)
	if err != nil {
		return err
	}
	defer cleanup()
	out, err := convertDate(cl.From, cl.To, args[0], cl.Format)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("converted", "from", cl.From, "to", cl.To, "date", args[0], "result", out)
	fmt.Println(out)
	return nil
}

// convertDate converts text, a date in the from calendar, to the to
// calendar. Both dates use pattern. Conversions are performed in UTC so
// that they are independent of the local time zone.
func convertDate(from, to, text, pattern string) (string, error) {
	src, err := calendars.New(from, calendars.WithLocation(time.UTC))
	if err != nil {
		return "", err
	}
	dst, err := calendars.New(to, calendars.WithLocation(time.UTC))
	if err != nil {
		return "", err
	}
	dp, err := calendars.Parse(src, text, pattern)
	if err != nil {
		return "", err
	}
	ts := src.ToTimestamp(dp)
	if ir, ok := src.(*calendars.IranianCalendar); ok {
		if ts, err = ir.TimestampChecked(dp); err != nil {
			return "", err
		}
	}
	if ir, ok := dst.(*calendars.IranianCalendar); ok {
		if _, err := ir.DatePartsChecked(ts); err != nil {
			return "", err
		}
	}
	return dst.Format(ts, pattern), nil
}
