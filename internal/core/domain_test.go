package core

import (
	"errors"
	"testing"
	"time"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"12.50", "12.5", true},
		{" 30 ", "30", true},
		{"0.01", "0.01", true},
		{"0", "", false},
		{"-5", "", false},
		{"abc", "", false},
		{"", "", false},
		{"  ", "", false},
		{"1.2.3", "", false},
	}
	for i, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("case %d (%q) expected ok, got %v", i, tc.in, err)
			}
			if got.String() != tc.want {
				t.Fatalf("case %d (%q) expected %s, got %s", i, tc.in, tc.want, got)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("case %d (%q) expected ErrInvalidAmount, got %v", i, tc.in, err)
		}
	}
}

func TestDraftResolve(t *testing.T) {
	today := time.Date(2024, 1, 16, 15, 4, 5, 0, time.Local)

	e, err := Draft{Amount: "12.50", Category: " Food ", Note: "  lunch ", Date: "2024-01-10"}.Resolve(today)
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if e.Category != "Food" {
		t.Fatalf("expected trimmed category, got %q", e.Category)
	}
	if e.Note != "lunch" {
		t.Fatalf("expected trimmed note, got %q", e.Note)
	}
	if e.Date != "2024-01-10" {
		t.Fatalf("expected explicit date kept, got %q", e.Date)
	}
	if e.ID != 0 {
		t.Fatalf("resolve must not assign an id, got %d", e.ID)
	}
}

func TestDraftResolveDefaultsDate(t *testing.T) {
	today := time.Date(2024, 1, 16, 23, 59, 0, 0, time.Local)
	e, err := Draft{Amount: "1", Category: "Misc"}.Resolve(today)
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if e.Date != "2024-01-16" {
		t.Fatalf("expected today's date, got %q", e.Date)
	}
}

func TestDraftResolveBlankNoteIsAbsent(t *testing.T) {
	e, err := Draft{Amount: "1", Category: "Misc", Note: "   "}.Resolve(time.Now())
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if e.Note != "" {
		t.Fatalf("expected absent note, got %q", e.Note)
	}
}

func TestDraftResolveRejections(t *testing.T) {
	cases := []struct {
		d    Draft
		want error
	}{
		{Draft{Amount: "nope", Category: "Food"}, ErrInvalidAmount},
		{Draft{Amount: "-3", Category: "Food"}, ErrInvalidAmount},
		{Draft{Amount: "0", Category: "Food"}, ErrInvalidAmount},
		{Draft{Amount: "5", Category: ""}, ErrMissingCategory},
		{Draft{Amount: "5", Category: "   "}, ErrMissingCategory},
		{Draft{Amount: "5", Category: "Food", Date: "10/01/2024"}, ErrInvalidDate},
		{Draft{Amount: "5", Category: "Food", Date: "2024-1-2"}, ErrInvalidDate},
	}
	for i, tc := range cases {
		if _, err := tc.d.Resolve(time.Now()); !errors.Is(err, tc.want) {
			t.Fatalf("case %d expected %v, got %v", i, tc.want, err)
		}
	}
}
