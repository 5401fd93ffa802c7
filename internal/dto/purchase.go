package dto

import (
	"encoding/json"
	"time"
)

// SavePurchaseRequest is the body for purchase create and update. The
// non-item fields describe the owning expenditure; items are detached and
// stored on the purchase itself.
type SavePurchaseRequest struct {
	Date        time.Time       `json:"date" binding:"required"`
	Place       string          `json:"place" binding:"required"`
	Purpose     string          `json:"purpose" binding:"required"`
	Description string          `json:"description,omitempty"`
	Items       json.RawMessage `json:"items" binding:"required"`
	Payment     *PaymentInput   `json:"payment,omitempty"`
}
