package core

import "github.com/shopspring/decimal"

// CategoryTotal is an amount aggregated by category name.
type CategoryTotal struct {
	Name   string
	Amount decimal.Decimal
}

// Summary holds the derived aggregates for a filtered record set. Both
// fields are recomputed from scratch on every derivation, never stored.
type Summary struct {
	Total      decimal.Decimal
	Categories []CategoryTotal
}

// Summarize computes the running total and the per-category breakdown
// over the given records. Categories appear in order of first appearance
// and only when present; an empty input yields a zero total and no
// categories.
func Summarize(records []Expense) Summary {
	s := Summary{Total: decimal.Zero}
	index := make(map[string]int, len(records))
	for _, e := range records {
		s.Total = s.Total.Add(e.Amount)
		if i, ok := index[e.Category]; ok {
			s.Categories[i].Amount = s.Categories[i].Amount.Add(e.Amount)
			continue
		}
		index[e.Category] = len(s.Categories)
		s.Categories = append(s.Categories, CategoryTotal{Name: e.Category, Amount: e.Amount})
	}
	return s
}
