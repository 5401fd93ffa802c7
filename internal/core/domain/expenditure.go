package domain

import "time"

// Payment records how an expenditure was settled.
type Payment struct {
	Base
	Amount  float64 `json:"amount"`
	Method  string  `json:"method"`
	Status  string  `json:"status"`
	Purpose string  `json:"purpose,omitempty"`
}

// Expenditure is a single spend record. A paid expenditure references the
// Payment that settled it; the reference is optional for unpaid records.
// Payment is filled in when listings expand the reference.
type Expenditure struct {
	Base
	Date        time.Time `json:"date"`
	Place       string    `json:"place"`
	Purpose     string    `json:"purpose"`
	Description string    `json:"description,omitempty"`
	PaymentID   *string   `json:"paymentID,omitempty"`
	Payment     *Payment  `json:"payment,omitempty"`
}
