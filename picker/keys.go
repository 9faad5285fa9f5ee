// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package picker

import (
	"fmt"
	"strings"
)

// KeyCode identifies a key handled by the picker.
type KeyCode int

// The keys handled by the picker, all others are reported as KeyOther.
const (
	KeyOther KeyCode = iota
	KeyEnter
	KeyEscape
	KeyLeft
	KeyUp
	KeyRight
	KeyDown
)

var keyNames = map[string]KeyCode{
	"enter":  KeyEnter,
	"return": KeyEnter,
	"esc":    KeyEscape,
	"escape": KeyEscape,
	"left":   KeyLeft,
	"up":     KeyUp,
	"right":  KeyRight,
	"down":   KeyDown,
}

func (k KeyCode) String() string {
	switch k {
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "escape"
	case KeyLeft:
		return "left"
	case KeyUp:
		return "up"
	case KeyRight:
		return "right"
	case KeyDown:
		return "down"
	}
	return "other"
}

// Key is a key press with its modifiers.
type Key struct {
	Code  KeyCode
	Shift bool
	Ctrl  bool
}

func (k Key) String() string {
	var out strings.Builder
	if k.Ctrl {
		out.WriteString("ctrl+")
	}
	if k.Shift {
		out.WriteString("shift+")
	}
	out.WriteString(k.Code.String())
	return out.String()
}

// ParseKey parses a key description of the form [ctrl+][shift+]<key>,
// eg. "ctrl+shift+left". Key and modifier names are case insensitive.
func ParseKey(s string) (Key, error) {
	var k Key
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "+")
	for _, mod := range parts[:len(parts)-1] {
		switch strings.TrimSpace(mod) {
		case "ctrl", "control":
			k.Ctrl = true
		case "shift":
			k.Shift = true
		default:
			return Key{}, fmt.Errorf("unsupported modifier %q in %q", mod, s)
		}
	}
	code, ok := keyNames[strings.TrimSpace(parts[len(parts)-1])]
	if !ok {
		return Key{}, fmt.Errorf("unsupported key %q", s)
	}
	k.Code = code
	return k, nil
}

// Nav identifies one of the header navigation controls.
type Nav int

// The header navigation controls.
const (
	PreviousYear Nav = iota
	PreviousMonth
	NextMonth
	NextYear
)

var navNames = []string{"previous-year", "previous-month", "next-month", "next-year"}

func (n Nav) String() string {
	if n < 0 || int(n) >= len(navNames) {
		return fmt.Sprintf("Nav(%d)", int(n))
	}
	return navNames[n]
}

// ParseNav parses the string form of a Nav.
func ParseNav(s string) (Nav, error) {
	for i, name := range navNames {
		if strings.EqualFold(s, name) {
			return Nav(i), nil
		}
	}
	return 0, fmt.Errorf("unsupported navigation %q", s)
}
