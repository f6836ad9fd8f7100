package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if !s.Total.IsZero() {
		t.Fatalf("expected zero total, got %s", s.Total)
	}
	if len(s.Categories) != 0 {
		t.Fatalf("expected no categories, got %v", s.Categories)
	}
}

func TestSummarizeGroupsByFirstAppearance(t *testing.T) {
	records := []Expense{
		{Amount: dec(t, "12.5"), Category: "Food"},
		{Amount: dec(t, "30"), Category: "Books"},
		{Amount: dec(t, "7.5"), Category: "Food"},
	}
	s := Summarize(records)

	if s.Total.String() != "50" {
		t.Fatalf("expected total 50, got %s", s.Total)
	}
	if len(s.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(s.Categories))
	}
	if s.Categories[0].Name != "Food" || s.Categories[0].Amount.String() != "20" {
		t.Fatalf("unexpected first category: %+v", s.Categories[0])
	}
	if s.Categories[1].Name != "Books" || s.Categories[1].Amount.String() != "30" {
		t.Fatalf("unexpected second category: %+v", s.Categories[1])
	}
}

func TestSummarizeCategorySumsMatchTotal(t *testing.T) {
	records := []Expense{
		{Amount: dec(t, "0.1"), Category: "a"},
		{Amount: dec(t, "0.2"), Category: "b"},
		{Amount: dec(t, "0.3"), Category: "a"},
		{Amount: dec(t, "99.99"), Category: "c"},
	}
	s := Summarize(records)

	sum := decimal.Zero
	for _, c := range s.Categories {
		sum = sum.Add(c.Amount)
	}
	if !sum.Equal(s.Total) {
		t.Fatalf("category sums %s != total %s", sum, s.Total)
	}
}
