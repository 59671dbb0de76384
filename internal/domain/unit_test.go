package domain_test

import (
	"encoding/json"
	"errors"
	"testing"

	"unitconv/internal/domain"
)

func TestParseUnit(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Unit
	}{
		{in: "Meters", want: domain.Meters},
		{in: "meters", want: domain.Meters},
		{in: " M ", want: domain.Meters},
		{in: "metre", want: domain.Meters},
		{in: "mm", want: domain.Millimeters},
		{in: "Centimetres", want: domain.Centimeters},
		{in: "KM", want: domain.Kilometers},
		{in: "foot", want: domain.Feet},
		{in: "ft", want: domain.Feet},
	}
	for _, tt := range tests {
		got, err := domain.ParseUnit(tt.in)
		if err != nil {
			t.Fatalf("ParseUnit(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseUnit(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseUnit_Unknown(t *testing.T) {
	for _, in := range []string{"", "inches", "Select", "unselected"} {
		if _, err := domain.ParseUnit(in); !errors.Is(err, domain.ErrUnknownUnit) {
			t.Errorf("ParseUnit(%q): err = %v, want ErrUnknownUnit", in, err)
		}
	}
}

func TestUnit_Valid(t *testing.T) {
	for _, u := range domain.AllUnits() {
		if !u.Valid() {
			t.Errorf("%s should be valid", u)
		}
	}
	for _, u := range []domain.Unit{domain.Unselected, domain.Unit(-1), domain.Unit(99)} {
		if u.Valid() {
			t.Errorf("%s should not be valid", u)
		}
	}
	if got := domain.Unit(99).String(); got != "Unit(99)" {
		t.Errorf("String() = %q", got)
	}
}

func TestUnit_JSON(t *testing.T) {
	var v struct {
		From domain.Unit `json:"from"`
	}
	if err := json.Unmarshal([]byte(`{"from":"km"}`), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v.From != domain.Kilometers {
		t.Fatalf("From = %s, want Kilometers", v.From)
	}
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"from":"Kilometers"}` {
		t.Fatalf("marshal = %s", b)
	}
	if _, err := json.Marshal(struct{ U domain.Unit }{}); err == nil {
		t.Fatal("expected error marshalling Unselected")
	}
}
