package entity

import (
	"bytes"
	"encoding/json"
)

// Transaction is one user-supplied spending record. Decoding never fails:
// a record that is not an object simply has no fields set, and the
// original bytes are kept so prompts can show what the user sent.
type Transaction struct {
	Amount   Text
	Category Text
	Date     Text

	raw json.RawMessage
}

func (t *Transaction) UnmarshalJSON(b []byte) error {
	*t = Transaction{raw: append(json.RawMessage(nil), bytes.TrimSpace(b)...)}

	var fields struct {
		Amount   Text `json:"amount"`
		Category Text `json:"category"`
		Date     Text `json:"date"`
	}
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil
	}
	t.Amount, t.Category, t.Date = fields.Amount, fields.Category, fields.Date
	return nil
}

func (t Transaction) MarshalJSON() ([]byte, error) {
	if len(t.raw) > 0 {
		return t.raw, nil
	}

	out := make(map[string]string, 3)
	if t.Amount.Set {
		out["amount"] = t.Amount.Value
	}
	if t.Category.Set {
		out["category"] = t.Category.Value
	}
	if t.Date.Set {
		out["date"] = t.Date.Value
	}
	return json.Marshal(out)
}

// CategoryTotal serialises as a [category, amount] pair.
type CategoryTotal struct {
	Category string
	Amount   float64
}

func (c CategoryTotal) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{c.Category, c.Amount})
}

type SpendingAnalysis struct {
	TotalSpent         float64            `json:"total_spent"`
	CategoryBreakdown  map[string]float64 `json:"category_breakdown"`
	TransactionCount   int                `json:"transaction_count"`
	AverageTransaction float64            `json:"average_transaction"`
	TopCategories      []CategoryTotal    `json:"top_categories"`
}
