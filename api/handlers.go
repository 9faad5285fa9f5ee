// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package api

import (
	"fmt"
	"net/http"
	"strconv"

	"cloudeng.io/daypicker/calendars"
	"cloudeng.io/daypicker/dates"
	"cloudeng.io/daypicker/picker"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/webapp/jsonapi"
	"github.com/go-chi/chi/v5"
)

// CalendarInfo describes a supported calendar.
type CalendarInfo struct {
	Name         string   `json:"name"`
	RightToLeft  bool     `json:"right_to_left"`
	MonthNames   []string `json:"month_names"`
	WeekdayNames []string `json:"weekday_names"`
}

// CalendarsResponse is the response for GET /api/calendars.
type CalendarsResponse struct {
	Calendars []CalendarInfo `json:"calendars"`
}

// DateResponse is the response for GET /api/calendars/{calendar}/dates/{timestamp}.
type DateResponse struct {
	Calendar  string          `json:"calendar"`
	Timestamp dates.Timestamp `json:"timestamp"`
	Parts     dates.DateParts `json:"parts"`
	Weekday   int             `json:"weekday"`
	Text      string          `json:"text"`
}

// NavigateRequest is the request for POST /api/calendars/{calendar}/navigate.
// Value defaults to the current time and Displayed to Value. At most one of
// Key, Nav, Text and Select is acted upon, in that order.
type NavigateRequest struct {
	Value     *dates.Timestamp `json:"value,omitempty"`
	Displayed *dates.Timestamp `json:"displayed,omitempty"`
	Visible   bool             `json:"visible,omitempty"`
	Key       string           `json:"key,omitempty"`
	Nav       string           `json:"nav,omitempty"`
	Text      *string          `json:"text,omitempty"`
	Select    int              `json:"select,omitempty"`
}

// NavigateResponse is the response for POST /api/calendars/{calendar}/navigate.
type NavigateResponse struct {
	Value     dates.Timestamp  `json:"value"`
	Displayed dates.Timestamp  `json:"displayed"`
	Text      string           `json:"text"`
	Visible   bool             `json:"visible"`
	Changed   bool             `json:"changed"`
	View      picker.MonthView `json:"view"`
}

// ArithmeticRequest is the request for POST /api/calendars/{calendar}/arithmetic.
// Years, months and days are applied in that order.
type ArithmeticRequest struct {
	Parts  dates.DateParts `json:"parts"`
	Years  int             `json:"years,omitempty"`
	Months int             `json:"months,omitempty"`
	Days   int             `json:"days,omitempty"`
}

// ArithmeticResponse is the response for POST /api/calendars/{calendar}/arithmetic.
type ArithmeticResponse struct {
	Parts     dates.DateParts `json:"parts"`
	Timestamp dates.Timestamp `json:"timestamp"`
	Text      string          `json:"text"`
}

func (s *Server) listCalendars(rw http.ResponseWriter, r *http.Request) {
	var resp CalendarsResponse
	for _, name := range calendars.Names() {
		cal := s.calendars[name]
		resp.Calendars = append(resp.Calendars, CalendarInfo{
			Name:         cal.Name(),
			RightToLeft:  cal.RightToLeft(),
			MonthNames:   cal.MonthNames(),
			WeekdayNames: cal.WeekdayNames(),
		})
	}
	s.write(rw, r, jsonapi.Endpoint[struct{}, CalendarsResponse]{}.WriteResponse(rw, resp))
}

func (s *Server) write(_ http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		ctxlog.Logger(r.Context()).Error("failed to write response", "error", err)
	}
}

func (s *Server) month(rw http.ResponseWriter, r *http.Request) {
	cal, ok := s.lookup(rw, r)
	if !ok {
		return
	}
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		badRequest(rw, r, fmt.Errorf("invalid year %q", chi.URLParam(r, "year")))
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		badRequest(rw, r, fmt.Errorf("invalid month %q", chi.URLParam(r, "month")))
		return
	}
	var extra []picker.Option
	value, hasValue, err := optionalTimestamp(r, "value")
	if err != nil {
		badRequest(rw, r, err)
		return
	}
	if hasValue {
		extra = append(extra, picker.WithValue(value))
	}
	p, err := s.newPicker(cal, r, extra...)
	if err != nil {
		badRequest(rw, r, err)
		return
	}
	p.SetDisplayedValue(cal.ToTimestamp(dates.NewDateParts(year, month, 1)))
	s.write(rw, r, jsonapi.Endpoint[struct{}, picker.MonthView]{}.WriteResponse(rw, p.View()))
}

func (s *Server) date(rw http.ResponseWriter, r *http.Request) {
	cal, ok := s.lookup(rw, r)
	if !ok {
		return
	}
	ts, err := parseTimestamp(chi.URLParam(r, "timestamp"))
	if err != nil {
		badRequest(rw, r, err)
		return
	}
	resp := DateResponse{
		Calendar:  cal.Name(),
		Timestamp: ts,
		Parts:     cal.ToDateParts(ts),
		Weekday:   cal.Weekday(ts),
		Text:      cal.Format(ts, s.format(r)),
	}
	s.write(rw, r, jsonapi.Endpoint[struct{}, DateResponse]{}.WriteResponse(rw, resp))
}

func (s *Server) navigate(rw http.ResponseWriter, r *http.Request) {
	cal, ok := s.lookup(rw, r)
	if !ok {
		return
	}
	var ep jsonapi.Endpoint[NavigateRequest, NavigateResponse]
	var req NavigateRequest
	if err := ep.ParseRequest(rw, r, &req); err != nil {
		ctxlog.Logger(r.Context()).Info("bad request", "error", err)
		return
	}
	var extra []picker.Option
	if req.Value != nil {
		extra = append(extra, picker.WithValue(*req.Value))
	}
	extra = append(extra, picker.WithOpen(req.Visible))
	p, err := s.newPicker(cal, r, extra...)
	if err != nil {
		badRequest(rw, r, err)
		return
	}
	if req.Displayed != nil {
		p.SetDisplayedValue(*req.Displayed)
	}
	before := p.Value()
	switch {
	case len(req.Key) > 0:
		key, err := picker.ParseKey(req.Key)
		if err != nil {
			badRequest(rw, r, err)
			return
		}
		p.HandleKey(key)
	case len(req.Nav) > 0:
		nav, err := picker.ParseNav(req.Nav)
		if err != nil {
			badRequest(rw, r, err)
			return
		}
		p.Navigate(nav)
	case req.Text != nil:
		p.Type(*req.Text)
	case req.Select != 0:
		p.Select(req.Select)
	}
	resp := NavigateResponse{
		Value:     p.Value(),
		Displayed: p.DisplayedValue(),
		Text:      p.Text(),
		Visible:   p.Visible(),
		Changed:   p.Value() != before,
		View:      p.View(),
	}
	s.write(rw, r, ep.WriteResponse(rw, resp))
}

func (s *Server) arithmetic(rw http.ResponseWriter, r *http.Request) {
	cal, ok := s.lookup(rw, r)
	if !ok {
		return
	}
	var ep jsonapi.Endpoint[ArithmeticRequest, ArithmeticResponse]
	var req ArithmeticRequest
	if err := ep.ParseRequest(rw, r, &req); err != nil {
		ctxlog.Logger(r.Context()).Info("bad request", "error", err)
		return
	}
	dp := req.Parts
	if dp.Month < 1 || dp.Month > 12 || dp.Date < 1 || dp.Date > cal.DaysInMonth(dp.Year, dp.Month) {
		badRequest(rw, r, fmt.Errorf("%w: %v", calendars.ErrInvalidDate, dp))
		return
	}
	dp = dates.ChangeYear(dp, req.Years)
	dp = dates.ChangeMonth(dp, req.Months)
	if req.Days != 0 {
		dp = dates.ChangeDate(dp, req.Days, cal)
	}
	ts := cal.ToTimestamp(dp)
	resp := ArithmeticResponse{
		Parts:     dp,
		Timestamp: ts,
		Text:      cal.Format(ts, s.format(r)),
	}
	s.write(rw, r, ep.WriteResponse(rw, resp))
}
