// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package api provides a JSON HTTP API for the day picker calendars and
// for driving a headless picker.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"cloudeng.io/daypicker/calendars"
	"cloudeng.io/daypicker/config"
	"cloudeng.io/daypicker/dates"
	"cloudeng.io/daypicker/picker"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/webapp/jsonapi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server implements the day picker API.
type Server struct {
	cfg       config.Config
	calendars map[string]calendars.Calendar
	clock     dates.Clock
	logger    *slog.Logger
}

// Option represents an option to NewServer.
type Option func(s *Server)

// WithClock sets the clock used for default values and for today.
func WithClock(clock dates.Clock) Option {
	return func(s *Server) {
		s.clock = clock
	}
}

// WithLogger sets the logger used for requests.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer returns a new Server. The calendars are created using the
// configured time zone and names.
func NewServer(cfg config.Config, opts ...Option) (*Server, error) {
	s := &Server{
		cfg:       cfg,
		calendars: map[string]calendars.Calendar{},
		clock:     dates.SystemClock,
	}
	for _, fn := range opts {
		fn(s)
	}
	if s.logger == nil {
		s.logger = ctxlog.Logger(context.Background())
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	copts := []calendars.Option{calendars.WithLocation(loc)}
	if cfg.PersianScript {
		copts = append(copts, calendars.WithPersianScript())
	}
	for _, name := range calendars.Names() {
		cal, err := calendars.New(name, copts...)
		if err != nil {
			return nil, err
		}
		s.calendars[name] = cal
	}
	return s, nil
}

// Handler returns an http.Handler for the API.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID, middleware.Recoverer, s.withLogger)
	s.Routes(router)
	return router
}

// Routes registers the API endpoints with router.
func (s *Server) Routes(router chi.Router) {
	router.Route("/api/calendars", func(r chi.Router) {
		r.Get("/", s.listCalendars)
		r.Route("/{calendar}", func(r chi.Router) {
			r.Get("/months/{year}/{month}", s.month)
			r.Get("/dates/{timestamp}", s.date)
			r.Post("/navigate", s.navigate)
			r.Post("/arithmetic", s.arithmetic)
		})
	})
}

func (s *Server) withLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		ctx := ctxlog.WithLogger(r.Context(), s.logger)
		ctx = ctxlog.WithAttributes(ctx, "request_id", middleware.GetReqID(ctx), "path", r.URL.Path)
		next.ServeHTTP(rw, r.WithContext(ctx))
	})
}

func (s *Server) lookup(rw http.ResponseWriter, r *http.Request) (calendars.Calendar, bool) {
	name := chi.URLParam(r, "calendar")
	cal, err := calendars.Lookup(name)
	if err != nil {
		jsonapi.WriteErrorMsg(rw, err.Error(), http.StatusNotFound)
		return nil, false
	}
	return s.calendars[cal.Name()], true
}

func badRequest(rw http.ResponseWriter, r *http.Request, err error) {
	ctxlog.Logger(r.Context()).Info("bad request", "error", err)
	jsonapi.WriteErrorMsg(rw, err.Error(), http.StatusBadRequest)
}

func parseTimestamp(s string) (dates.Timestamp, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp %q", s)
	}
	return dates.Timestamp(v), nil
}

// optionalTimestamp returns the named query parameter as a timestamp, if
// it is present.
func optionalTimestamp(r *http.Request, name string) (dates.Timestamp, bool, error) {
	v := r.URL.Query().Get(name)
	if len(v) == 0 {
		return 0, false, nil
	}
	ts, err := parseTimestamp(v)
	if err != nil {
		return 0, false, fmt.Errorf("%v: %w", name, err)
	}
	return ts, true, nil
}

func (s *Server) format(r *http.Request) string {
	if f := r.URL.Query().Get("format"); len(f) > 0 {
		return f
	}
	if len(s.cfg.Format) > 0 {
		return s.cfg.Format
	}
	return calendars.DefaultFormat
}

// newPicker creates a picker for a single request. The configured bounds
// apply unless overridden by the request.
func (s *Server) newPicker(cal calendars.Calendar, r *http.Request, extra ...picker.Option) (*picker.Picker, error) {
	opts := []picker.Option{
		picker.WithCustomCalendar(cal),
		picker.WithClock(s.clock),
		picker.WithFormat(s.format(r)),
		picker.WithLocale(s.cfg.Locale),
		picker.WithLogger(ctxlog.Logger(r.Context())),
	}
	if s.cfg.HideOnSelect != nil {
		opts = append(opts, picker.WithHideOnSelect(*s.cfg.HideOnSelect))
	}
	if s.cfg.Min.Set {
		opts = append(opts, picker.WithMin(s.cfg.Min.Timestamp(cal.Location())))
	}
	if s.cfg.Max.Set {
		opts = append(opts, picker.WithMax(s.cfg.Max.Timestamp(cal.Location())))
	}
	for _, name := range []string{"min", "max"} {
		ts, ok, err := optionalTimestamp(r, name)
		if err != nil {
			return nil, err
		}
		if ok && name == "min" {
			opts = append(opts, picker.WithMin(ts))
		}
		if ok && name == "max" {
			opts = append(opts, picker.WithMax(ts))
		}
	}
	return picker.New(append(opts, extra...)...)
}
