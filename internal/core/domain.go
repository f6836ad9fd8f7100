package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire and storage form of every expense date.
// Fixed-width zero-padded ISO dates compare correctly as plain strings,
// which the filter engine relies on.
const DateLayout = "2006-01-02"

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrMissingCategory = errors.New("missing category")
	ErrInvalidDate     = errors.New("invalid date")
)

// Expense is one persisted ledger record. ID is assigned by the store
// and never reused. Note is "" when the stored value is NULL.
type Expense struct {
	ID       int64
	Amount   decimal.Decimal
	Category string
	Note     string
	Date     string
}

// Draft carries unvalidated user input for add and update operations.
// Amount is the raw string exactly as the form produced it.
type Draft struct {
	Amount   string
	Category string
	Note     string
	Date     string // optional; YYYY-MM-DD when set
}

// ParseAmount parses a user-supplied amount string, accepting only a
// positive decimal value.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	if !d.IsPositive() {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return d, nil
}

// Resolve validates a draft and produces the expense fields to persist.
// The returned expense has no ID; the store assigns one on insert.
// An empty draft date resolves to today, which the caller supplies so
// "today" stays injectable.
func (d Draft) Resolve(today time.Time) (Expense, error) {
	amount, err := ParseAmount(d.Amount)
	if err != nil {
		return Expense{}, err
	}

	category := strings.TrimSpace(d.Category)
	if category == "" {
		return Expense{}, ErrMissingCategory
	}

	date := strings.TrimSpace(d.Date)
	if date == "" {
		date = today.Format(DateLayout)
	} else if _, err := time.Parse(DateLayout, date); err != nil {
		return Expense{}, ErrInvalidDate
	}

	return Expense{
		Amount:   amount,
		Category: category,
		Note:     strings.TrimSpace(d.Note),
		Date:     date,
	}, nil
}
