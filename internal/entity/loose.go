package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrNotNumeric = errors.New("value is not numeric")

// Loose is a raw JSON request value. Clients send rating and price both as
// numbers and as strings, so decoding is deferred until the value is used.
type Loose json.RawMessage

func (l *Loose) UnmarshalJSON(b []byte) error {
	*l = append((*l)[:0], b...)
	return nil
}

func (l Loose) MarshalJSON() ([]byte, error) {
	if len(l) == 0 {
		return []byte("null"), nil
	}
	return l, nil
}

func (l Loose) raw() []byte {
	return bytes.TrimSpace(l)
}

func (l Loose) isString() bool {
	r := l.raw()
	return len(r) > 0 && r[0] == '"'
}

// Truthy reports whether the value counts as present: missing, null, false,
// "" and numeric zero do not.
func (l Loose) Truthy() bool {
	r := l.raw()
	if len(r) == 0 {
		return false
	}
	switch r[0] {
	case 'n', 'f':
		return false
	case '"':
		return l.String() != ""
	case 't', '{', '[':
		return true
	}
	f, err := strconv.ParseFloat(string(r), 64)
	return err == nil && f != 0
}

// String returns a JSON string unquoted, any other value as its JSON text,
// and "" for missing or null.
func (l Loose) String() string {
	r := l.raw()
	if len(r) == 0 || string(r) == "null" {
		return ""
	}
	if l.isString() {
		var s string
		if err := json.Unmarshal(r, &s); err != nil {
			return string(r)
		}
		return s
	}
	return string(r)
}

// Float coerces the value to a number. Strings are trimmed and parsed,
// true is 1. Anything that does not give a finite number is ErrNotNumeric.
func (l Loose) Float() (float64, error) {
	r := l.raw()
	var (
		f   float64
		err error
	)
	switch {
	case len(r) == 0 || string(r) == "null" || string(r) == "false":
		return 0, nil
	case string(r) == "true":
		return 1, nil
	case l.isString():
		s := strings.TrimSpace(l.String())
		if s == "" {
			return 0, nil
		}
		f, err = strconv.ParseFloat(s, 64)
	default:
		f, err = strconv.ParseFloat(string(r), 64)
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %s", ErrNotNumeric, r)
	}
	return f, nil
}
