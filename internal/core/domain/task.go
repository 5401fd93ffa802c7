package domain

import (
	"encoding/json"
	"time"
)

// Task is a personal todo item. Schedule and labels are free-form documents
// owned by the client.
type Task struct {
	Base
	Title     string          `json:"title"`
	Notes     string          `json:"notes,omitempty"`
	Schedule  json.RawMessage `json:"schedule,omitempty"`
	Labels    json.RawMessage `json:"labels,omitempty"`
	Starred   bool            `json:"isStarred"`
	Important bool            `json:"isImportant"`
	Done      bool            `json:"isDone"`
}

// Timesheet groups tasks worked on a given date.
type Timesheet struct {
	Base
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	TaskIDs     []string  `json:"tasks"`
}
