package domain

import "time"

// Returning tracks money lent out or borrowed and its expected return date.
type Returning struct {
	Base
	Date               time.Time `json:"date"`
	Amount             float64   `json:"amount"`
	ExpectedReturnDate time.Time `json:"expectedReturnDate"`
	PaymentMethod      string    `json:"paymentMethod"`
	Person             string    `json:"person,omitempty"`
	Purpose            string    `json:"purpose,omitempty"`
	Type               string    `json:"type"`
}
