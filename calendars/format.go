// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"time"
	"unicode/utf8"

	"cloudeng.io/daypicker/dates"
)

// DefaultFormat is the pattern used when none is specified.
const DefaultFormat = "YYYY-MM-DD"

// ErrInvalidDate is returned when text cannot be parsed as a date.
var ErrInvalidDate = errors.New("invalid date")

// tokens are ordered so that longer tokens are matched first.
var tokens = []string{
	"YYYY", "YY",
	"MMMM", "MMM", "MM", "M",
	"DD", "D",
	"dddd", "ddd", "d",
}

func nextToken(pattern string) string {
	for _, tok := range tokens {
		if strings.HasPrefix(pattern, tok) {
			return tok
		}
	}
	return ""
}

// literal returns the text of a [...] literal at the start of pattern
// and the number of bytes it occupies. An unterminated literal extends
// to the end of the pattern.
func literal(pattern string) (string, int) {
	end := strings.IndexByte(pattern[1:], ']')
	if end < 0 {
		return pattern[1:], len(pattern)
	}
	return pattern[1 : end+1], end + 2
}

func prefix(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}

// FormatParts formats dp, which must have been obtained from cal, and
// its weekday according to pattern. The supported tokens are:
//
//	YYYY  year, at least four digits
//	YY    last two digits of the year
//	MMMM  month name
//	MMM   first three characters of the month name
//	MM    two digit month
//	M     month
//	DD    two digit day of the month
//	D     day of the month
//	dddd  weekday name
//	ddd   first three characters of the weekday name
//	d     weekday number
//
// Text enclosed in square brackets is copied verbatim, as is any text
// that is not a token. An empty pattern is treated as DefaultFormat.
func FormatParts(cal Calendar, dp dates.DateParts, weekday int, pattern string) string {
	if len(pattern) == 0 {
		pattern = DefaultFormat
	}
	var out strings.Builder
	for i := 0; i < len(pattern); {
		if pattern[i] == '[' {
			text, n := literal(pattern[i:])
			out.WriteString(text)
			i += n
			continue
		}
		tok := nextToken(pattern[i:])
		if len(tok) == 0 {
			out.WriteByte(pattern[i])
			i++
			continue
		}
		i += len(tok)
		switch tok {
		case "YYYY":
			fmt.Fprintf(&out, "%04d", dp.Year)
		case "YY":
			y := dp.Year % 100
			if y < 0 {
				y = -y
			}
			fmt.Fprintf(&out, "%02d", y)
		case "MMMM":
			name, _ := cal.MonthName(dp.Month)
			out.WriteString(name)
		case "MMM":
			name, _ := cal.MonthName(dp.Month)
			out.WriteString(prefix(name, 3))
		case "MM":
			fmt.Fprintf(&out, "%02d", dp.Month)
		case "M":
			out.WriteString(strconv.Itoa(dp.Month))
		case "DD":
			fmt.Fprintf(&out, "%02d", dp.Date)
		case "D":
			out.WriteString(strconv.Itoa(dp.Date))
		case "dddd":
			name, _ := cal.WeekdayName(weekday)
			out.WriteString(name)
		case "ddd":
			name, _ := cal.WeekdayName(weekday)
			out.WriteString(prefix(name, 3))
		case "d":
			out.WriteString(strconv.Itoa(weekday))
		}
	}
	return out.String()
}

// normalizeDigits maps Persian and Arabic-Indic digits to ASCII.
func normalizeDigits(r rune) rune {
	switch {
	case r >= '۰' && r <= '۹':
		return '0' + (r - '۰')
	case r >= '٠' && r <= '٩':
		return '0' + (r - '٠')
	}
	return r
}

func digits(text string, maxDigits int) (int, int, error) {
	n := 0
	for n < len(text) && n < maxDigits && text[n] >= '0' && text[n] <= '9' {
		n++
	}
	if n == 0 {
		return 0, 0, fmt.Errorf("expected a number at %q", text)
	}
	v, err := strconv.Atoi(text[:n])
	return v, n, err
}

func matchName(text string, names []string, abbrev bool) (int, int, error) {
	for i, name := range names {
		if abbrev {
			name = prefix(name, 3)
		}
		if len(name) > 0 && len(text) >= len(name) && strings.EqualFold(text[:len(name)], name) {
			return i, len(name), nil
		}
	}
	return 0, 0, fmt.Errorf("expected a name at %q", text)
}

func skipWord(text string) int {
	n := 0
	for n < len(text) {
		r, size := utf8.DecodeRuneInString(text[n:])
		if !unicode.IsLetter(r) {
			break
		}
		n += size
	}
	return n
}

// Parse parses text according to pattern, see FormatParts, returning the
// date parts for cal. Weekday tokens are accepted but ignored. The month
// and day are validated against cal and errors wrap ErrInvalidDate.
// Two digit years are expanded relative to the current year, see
// ParseAt.
func Parse(cal Calendar, text, pattern string) (dates.DateParts, error) {
	return ParseAt(cal, text, pattern, dates.TimestampOf(time.Now()))
}

// ParseAt is like Parse except that two digit years are expanded to the
// year of cal that is closest to the year containing ref, ie. within 50
// years of it.
func ParseAt(cal Calendar, text, pattern string, ref dates.Timestamp) (dates.DateParts, error) {
	dp, err := parse(cal, strings.Map(normalizeDigits, strings.TrimSpace(text)), pattern)
	if err != nil {
		return dates.DateParts{}, fmt.Errorf("%w: %q: %w", ErrInvalidDate, text, err)
	}
	if dp.century {
		dp.Year = expandYear(dp.Year, cal.ToDateParts(ref).Year)
	}
	if dp.Month < 1 || dp.Month > 12 {
		return dates.DateParts{}, fmt.Errorf("%w: %q: month %v out of range", ErrInvalidDate, text, dp.Month)
	}
	if n := cal.DaysInMonth(dp.Year, dp.Month); dp.Date < 1 || dp.Date > n {
		return dates.DateParts{}, fmt.Errorf("%w: %q: day %v out of range 1..%v", ErrInvalidDate, text, dp.Date, n)
	}
	return dp.DateParts, nil
}

// expandYear returns the year ending in the two digits yy that is
// closest to ref.
func expandYear(yy, ref int) int {
	year := ref - ref%100 + yy
	switch {
	case year > ref+50:
		year -= 100
	case year <= ref-50:
		year += 100
	}
	return year
}

// parsed is the result of parse, century is set for a two digit year.
type parsed struct {
	dates.DateParts
	century bool
}

func parse(cal Calendar, text, pattern string) (parsed, error) {
	if len(pattern) == 0 {
		pattern = DefaultFormat
	}
	var dp parsed
	var err error
	for i := 0; i < len(pattern); {
		if pattern[i] == '[' {
			lit, n := literal(pattern[i:])
			if !strings.HasPrefix(text, lit) {
				return dp, fmt.Errorf("expected %q at %q", lit, text)
			}
			text = text[len(lit):]
			i += n
			continue
		}
		tok := nextToken(pattern[i:])
		if len(tok) == 0 {
			if len(text) == 0 || text[0] != pattern[i] {
				return dp, fmt.Errorf("expected %q at %q", pattern[i], text)
			}
			text = text[1:]
			i++
			continue
		}
		i += len(tok)
		var n int
		switch tok {
		case "YYYY":
			dp.Year, n, err = digits(text, 6)
		case "YY":
			dp.Year, n, err = digits(text, 2)
			dp.century = true
		case "MMMM":
			dp.Month, n, err = matchName(text, cal.MonthNames(), false)
			dp.Month++
		case "MMM":
			dp.Month, n, err = matchName(text, cal.MonthNames(), true)
			dp.Month++
		case "MM", "M":
			dp.Month, n, err = digits(text, 2)
		case "DD", "D":
			dp.Date, n, err = digits(text, 2)
		case "dddd", "ddd":
			n = skipWord(text)
		case "d":
			_, n, err = digits(text, 1)
		}
		if err != nil {
			return dp, err
		}
		text = text[n:]
	}
	if len(text) > 0 {
		return dp, fmt.Errorf("unexpected trailing text %q", text)
	}
	return dp, nil
}
