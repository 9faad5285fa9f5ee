// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"os/signal"

	"cloudeng.io/daypicker/api"
	"cloudeng.io/daypicker/config"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/webapp"
)

func serve(ctx context.Context, values any, _ []string) error {
	ctx, done := signal.NotifyContext(ctx, os.Interrupt)
	defer done()
	cl := values.(*ServeFlags)
	ctx, cleanup, cfg, err := setup(ctx, &cl.CommonFlags)
	if err != nil {
		return err
	}
	defer cleanup()
	if len(cl.Address) > 0 {
		cfg.Server.Address = cl.Address
	}
	if len(cfg.Server.Address) == 0 {
		cfg.Server.Address = config.Default().Server.Address
	}
	logger := ctxlog.Logger(ctx)
	srv, err := api.NewServer(cfg, api.WithLogger(logger))
	if err != nil {
		return err
	}
	ln, hs, err := webapp.NewHTTPServer(ctx, cfg.Server.Address, srv.Handler())
	if err != nil {
		return err
	}
	logger.Info("serving", "address", ln.Addr().String(), "calendar", cfg.CalendarName())
	return webapp.ServeWithShutdown(ctx, ln, hs, cfg.Server.ShutdownGrace)
}
