package domain

import "time"

// Event is a calendar entry. MonthLoop marks events recurring monthly on the
// same date and time.
type Event struct {
	Base
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	StartTime   *time.Time `json:"startTime,omitempty"`
	EndTime     *time.Time `json:"endTime,omitempty"`
	MonthLoop   bool       `json:"monthLoop"`
	AllDay      bool       `json:"allDay"`
}
