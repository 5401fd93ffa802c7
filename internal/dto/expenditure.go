package dto

import "time"

// PaymentInput is the payment sub-object of expenditure and purchase writes.
// When ID is set on update, the existing payment is updated in place;
// otherwise a new payment is created and attached.
type PaymentInput struct {
	ID      string  `json:"id,omitempty"`
	Amount  float64 `json:"amount" binding:"required"`
	Method  string  `json:"method" binding:"required"`
	Status  string  `json:"status" binding:"required"`
	Purpose string  `json:"purpose,omitempty"`
}

// SaveExpenditureRequest is the body for expenditure create and update.
type SaveExpenditureRequest struct {
	Date        time.Time     `json:"date" binding:"required"`
	Place       string        `json:"place" binding:"required"`
	Purpose     string        `json:"purpose" binding:"required"`
	Description string        `json:"description,omitempty"`
	Payment     *PaymentInput `json:"payment,omitempty"`
}
