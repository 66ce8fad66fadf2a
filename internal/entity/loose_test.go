package entity

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestLooseTruthy(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{``, false},
		{`null`, false},
		{`false`, false},
		{`""`, false},
		{`0`, false},
		{`0.0`, false},
		{`-0`, false},
		{`"0"`, true},
		{`" "`, true},
		{`4.5`, true},
		{`-1`, true},
		{`true`, true},
		{`"Hades"`, true},
		{`{}`, true},
		{`[]`, true},
	}
	for _, tc := range cases {
		if got := Loose(tc.raw).Truthy(); got != tc.want {
			t.Errorf("Loose(%s).Truthy() = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestLooseFloat(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{`4.5`, 4.5},
		{`"4.5"`, 4.5},
		{`" 12 "`, 12},
		{`"0"`, 0},
		{`true`, 1},
		{`59.99`, 59.99},
	}
	for _, tc := range cases {
		got, err := Loose(tc.raw).Float()
		if err != nil {
			t.Fatalf("Loose(%s).Float() error: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Errorf("Loose(%s).Float() = %v, want %v", tc.raw, got, tc.want)
		}
	}

	for _, raw := range []string{`"cheap"`, `{}`, `"Infinity"`, `"NaN"`} {
		if _, err := Loose(raw).Float(); !errors.Is(err, ErrNotNumeric) {
			t.Errorf("Loose(%s).Float() error = %v, want ErrNotNumeric", raw, err)
		}
	}
}

func TestLooseString(t *testing.T) {
	if got := Loose(`"Celeste"`).String(); got != "Celeste" {
		t.Errorf("got %q", got)
	}
	if got := Loose(`null`).String(); got != "" {
		t.Errorf("null should be empty, got %q", got)
	}
	if got := Loose(`42`).String(); got != "42" {
		t.Errorf("number should keep its text, got %q", got)
	}
}

func TestGameRequestDecode(t *testing.T) {
	body := `{"title":"Hades","rating":"4.8","price":0,"userEmail":null}`
	var req GameRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatal(err)
	}
	if !req.Title.Truthy() || !req.Rating.Truthy() {
		t.Error("title and rating should be truthy")
	}
	if req.Price.Truthy() {
		t.Error("price 0 should not be truthy")
	}
	if req.UserEmail.Truthy() || req.Genre.Truthy() {
		t.Error("null and missing values should not be truthy")
	}
}
