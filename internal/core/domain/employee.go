package domain

import "time"

// EmployeeArea is the geographic area an employee operates in.
type EmployeeArea struct {
	Base
	Name   string `json:"name"`
	Region string `json:"region,omitempty"`
	State  string `json:"state,omitempty"`
}

// EmployeeProfile holds the professional details of an employee.
type EmployeeProfile struct {
	Base
	Department    string     `json:"department"`
	Designation   string     `json:"designation"`
	DateOfJoining *time.Time `json:"dateOfJoining,omitempty"`
	Supervisor    string     `json:"supervisor,omitempty"`
	AreaID        string     `json:"area"`
}

// EmployeeAuthorization carries an employee's application credentials.
type EmployeeAuthorization struct {
	Base
	Role         string `json:"role"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// Employee is a CRM employee record. Profile and authorization are owned
// sub-documents persisted together with the employee in one transaction.
type Employee struct {
	Base
	Name            string                 `json:"name"`
	Gender          string                 `json:"gender,omitempty"`
	Birthday        *time.Time             `json:"birthday,omitempty"`
	Email           string                 `json:"email"`
	PrimaryPhone    string                 `json:"primaryPhone"`
	AlternatePhone  string                 `json:"alternatePhone,omitempty"`
	ProfileID       string                 `json:"professional"`
	AuthorizationID string                 `json:"authorization"`
	Profile         *EmployeeProfile       `json:"profile,omitempty"`
	Authorization   *EmployeeAuthorization `json:"-"`
}
