package domain

import "encoding/json"

// Survey is a CRM site survey. The section payloads are free-form documents
// owned by the surveying client.
type Survey struct {
	Base
	SurveyorID string          `json:"surveyor"`
	Property   json.RawMessage `json:"property,omitempty"`
	Water      json.RawMessage `json:"water,omitempty"`
	Solar      json.RawMessage `json:"solar,omitempty"`
	Plumber    json.RawMessage `json:"plumber,omitempty"`
	Engineer   json.RawMessage `json:"engineer,omitempty"`
}
