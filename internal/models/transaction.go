package models

import (
	"encoding/json"
	"fmt"
)

// Transaction is a single reported expenditure: the display form of its
// amount and the category resolved at ingestion. Records are appended
// in submission order and never edited, only cleared by a reset.
//
// The wire form is a two-element array, e.g. ["$1.23","Dining"].
type Transaction struct {
	Amount   string
	Category Category
}

// MarshalJSON encodes the record as the [amount, category] pair.
func (t Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{t.Amount, t.Category})
}

// UnmarshalJSON decodes the [amount, category] pair form.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("transaction: expected [amount, category] pair, got %d elements", len(pair))
	}
	if err := json.Unmarshal(pair[0], &t.Amount); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &t.Category)
}
