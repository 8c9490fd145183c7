package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Kind discriminates the variants a table cell can hold.
type Kind int

const (
	KindNumber Kind = iota
	KindString
	KindDate
)

// DateLayout is the wire format for date cells (ISO calendar date).
const DateLayout = "2006-01-02"

// Value is a single table cell: a number, a string, or a date.
//
// The zero Value is the empty string. Values are immutable after
// construction; all stages of the chart pipeline treat them as read-only.
type Value struct {
	kind Kind
	num  float64
	str  string
	date time.Time
}

// Number builds a numeric Value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// String builds a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Date builds a date Value.
func Date(t time.Time) Value { return Value{kind: KindDate, date: t} }

// Kind reports which variant the value holds.
func (v Value) Kind() Kind { return v.kind }

// Num returns the numeric payload and whether the value is a number.
func (v Value) Num() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// Str returns the string payload (empty for other kinds).
func (v Value) Str() string { return v.str }

// Time returns the date payload and whether the value is a date.
func (v Value) Time() (time.Time, bool) {
	return v.date, v.kind == KindDate
}

// Label renders the value for display: numbers without trailing zeros,
// dates in DateLayout, strings verbatim.
func (v Value) Label() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindDate:
		return v.date.Format(DateLayout)
	default:
		return v.str
	}
}

// Key returns a string that is unique per distinct value, usable as a
// partition key. Kinds are prefixed so Number(2020) and String("2020")
// stay distinct.
func (v Value) Key() string {
	switch v.kind {
	case KindNumber:
		return "n:" + strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindDate:
		return "d:" + v.date.UTC().Format(time.RFC3339)
	default:
		return "s:" + v.str
	}
}

// Less orders two values of the same kind. Numbers and dates order
// naturally; strings order lexically. Mixed kinds order by kind.
func (v Value) Less(o Value) bool {
	if v.kind != o.kind {
		return v.kind < o.kind
	}
	switch v.kind {
	case KindNumber:
		return v.num < o.num
	case KindDate:
		return v.date.Before(o.date)
	default:
		return v.str < o.str
	}
}

// Sortable reports whether the value participates in axis ordering.
// Strings are categorical and keep their input order.
func (v Value) Sortable() bool {
	return v.kind == KindNumber || v.kind == KindDate
}

// MarshalJSON encodes numbers as JSON numbers, dates as "YYYY-MM-DD"
// strings, and strings verbatim.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		return json.Marshal(v.num)
	case KindDate:
		return json.Marshal(v.date.Format(DateLayout))
	default:
		return json.Marshal(v.str)
	}
}

// UnmarshalJSON accepts JSON numbers and strings; strings matching
// DateLayout or RFC 3339 become dates.
func (v *Value) UnmarshalJSON(b []byte) error {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	parsed, err := FromAny(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// FromAny converts a decoded JSON scalar into a Value.
//
// Accepted inputs:
//   - json.Number / float64 / int / int64 → number
//   - string matching DateLayout or RFC 3339 → date
//   - any other string → string
//   - bool → string ("true"/"false")
func FromAny(raw any) (Value, error) {
	switch t := raw.(type) {
	case nil:
		return String(""), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("invalid number %q: %w", t.String(), err)
		}
		return Number(f), nil
	case float64:
		return Number(t), nil
	case int:
		return Number(float64(t)), nil
	case int64:
		return Number(float64(t)), nil
	case bool:
		return String(strconv.FormatBool(t)), nil
	case string:
		if d, err := time.Parse(DateLayout, t); err == nil {
			return Date(d), nil
		}
		if d, err := time.Parse(time.RFC3339, t); err == nil {
			return Date(d), nil
		}
		return String(t), nil
	case time.Time:
		return Date(t), nil
	default:
		return Value{}, fmt.Errorf("unsupported cell type %T", raw)
	}
}
