package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestValue_Kinds(t *testing.T) {
	n := Number(42.5)
	if f, ok := n.Num(); !ok || f != 42.5 || n.Kind() != KindNumber {
		t.Fatalf("unexpected number value: %+v", n)
	}

	s := String("USA")
	if s.Str() != "USA" || s.Kind() != KindString {
		t.Fatalf("unexpected string value: %+v", s)
	}

	d := Date(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	if ts, ok := d.Time(); !ok || ts.Month() != time.March || d.Kind() != KindDate {
		t.Fatalf("unexpected date value: %+v", d)
	}
}

func TestValue_KeyDistinguishesKinds(t *testing.T) {
	if Number(2020).Key() == String("2020").Key() {
		t.Fatalf("number and string keys must not collide")
	}
	if Number(7).Key() != Number(7).Key() {
		t.Fatalf("equal values must share a key")
	}
}

func TestValue_Less(t *testing.T) {
	if !Number(1).Less(Number(2)) || Number(2).Less(Number(1)) {
		t.Fatalf("numeric ordering broken")
	}
	a := Date(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	b := Date(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC))
	if !a.Less(b) {
		t.Fatalf("date ordering broken")
	}
	if !String("ARG").Less(String("BRA")) {
		t.Fatalf("lexical ordering broken")
	}
	if String("x").Sortable() || !Number(1).Sortable() || !a.Sortable() {
		t.Fatalf("sortable kinds: numbers and dates only")
	}
}

func TestValue_JSON(t *testing.T) {
	cases := []struct {
		name string
		in   Value
		want string
	}{
		{"number", Number(1300000), "1300000"},
		{"string", String("USA"), `"USA"`},
		{"date", Date(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)), `"2024-03-01"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(tc.in)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(b) != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, b)
			}

			var back Value
			if err := json.Unmarshal(b, &back); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if back.Kind() != tc.in.Kind() || back.Key() != tc.in.Key() {
				t.Fatalf("round trip changed the value: %+v -> %+v", tc.in, back)
			}
		})
	}
}

func TestFromAny(t *testing.T) {
	v, err := FromAny(json.Number("12.5"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f, ok := v.Num(); !ok || f != 12.5 {
		t.Fatalf("json.Number should become a number, got %+v", v)
	}

	v, _ = FromAny("2023-06-30")
	if v.Kind() != KindDate {
		t.Fatalf("ISO dates should become dates, got %+v", v)
	}

	v, _ = FromAny("Mercosur")
	if v.Kind() != KindString {
		t.Fatalf("plain strings stay strings, got %+v", v)
	}

	v, _ = FromAny(nil)
	if v.Kind() != KindString || v.Str() != "" {
		t.Fatalf("nil cells become empty strings, got %+v", v)
	}

	if _, err := FromAny([]int{1}); err == nil {
		t.Fatalf("composite cells must be rejected")
	}
}

func TestValue_Label(t *testing.T) {
	if Number(1300000).Label() != "1300000" {
		t.Fatalf("unexpected number label: %q", Number(1300000).Label())
	}
	if Number(0.25).Label() != "0.25" {
		t.Fatalf("unexpected fraction label: %q", Number(0.25).Label())
	}
	if Date(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)).Label() != "2024-03-01" {
		t.Fatalf("unexpected date label")
	}
}
