package domain

import "encoding/json"

// Purchase owns exactly one Expenditure plus a free-form list of line items.
// A purchase is never persisted without its owning expenditure; both are
// written in one database transaction.
type Purchase struct {
	Base
	ExpenditureID string          `json:"expenditureID"`
	Expenditure   *Expenditure    `json:"expenditure,omitempty"`
	Items         json.RawMessage `json:"items"`
}
