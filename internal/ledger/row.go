package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"spendbook/internal/core"
	"spendbook/internal/storage"
)

// expenseFromRow decodes one store row into a domain record. The driver
// hands back whatever SQLite's column affinity produced, so amounts may
// arrive as integers, floats or text.
func expenseFromRow(row storage.Row) (core.Expense, error) {
	id, err := int64Value(row["id"])
	if err != nil {
		return core.Expense{}, fmt.Errorf("column id: %w", err)
	}
	amount, err := decimalValue(row["amount"])
	if err != nil {
		return core.Expense{}, fmt.Errorf("column amount: %w", err)
	}
	category, err := textValue(row["category"])
	if err != nil {
		return core.Expense{}, fmt.Errorf("column category: %w", err)
	}
	date, err := textValue(row["date"])
	if err != nil {
		return core.Expense{}, fmt.Errorf("column date: %w", err)
	}

	e := core.Expense{
		ID:       id,
		Amount:   amount,
		Category: category,
		Date:     date,
	}
	if row["note"] != nil {
		if e.Note, err = textValue(row["note"]); err != nil {
			return core.Expense{}, fmt.Errorf("column note: %w", err)
		}
	}
	return e, nil
}

func int64Value(v any) (int64, error) {
	switch x := v.(type) {
	case int64:
		return x, nil
	case int:
		return int64(x), nil
	default:
		return 0, fmt.Errorf("unexpected value %v (%T)", v, v)
	}
}

func textValue(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	default:
		return "", fmt.Errorf("unexpected value %v (%T)", v, v)
	}
}

func decimalValue(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case int64:
		return decimal.NewFromInt(x), nil
	case float64:
		return decimal.NewFromFloat(x), nil
	case string:
		return decimal.NewFromString(x)
	case []byte:
		return decimal.NewFromString(string(x))
	default:
		return decimal.Decimal{}, fmt.Errorf("unexpected value %v (%T)", v, v)
	}
}
