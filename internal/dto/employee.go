package dto

import "time"

// EmployeePhone groups an employee's contact numbers.
type EmployeePhone struct {
	Primary   string `json:"primary" binding:"required"`
	Alternate string `json:"alternate,omitempty"`
}

// EmployeePersonal is the personal section of an employee write.
type EmployeePersonal struct {
	Name     string        `json:"name" binding:"required"`
	Gender   string        `json:"gender,omitempty"`
	Birthday *time.Time    `json:"birthday,omitempty"`
	Email    string        `json:"email" binding:"required,email"`
	Phone    EmployeePhone `json:"phone" binding:"required"`
}

// EmployeeAreaInput describes the area an employee operates in.
type EmployeeAreaInput struct {
	Name   string `json:"name" binding:"required"`
	Region string `json:"region,omitempty"`
	State  string `json:"state,omitempty"`
}

// EmployeeProfessional is the professional section of an employee write.
type EmployeeProfessional struct {
	Department    string            `json:"department" binding:"required"`
	Designation   string            `json:"designation" binding:"required"`
	DateOfJoining *time.Time        `json:"dateOfJoining,omitempty"`
	Supervisor    string            `json:"supervisor,omitempty"`
	Area          EmployeeAreaInput `json:"area" binding:"required"`
}

// EmployeeCredentials is the credentials section of an employee write.
type EmployeeCredentials struct {
	Role     string `json:"role" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateEmployeeRequest is the body for CRM employee creation. The area,
// profile, authorization and employee records are persisted together in one
// transaction.
type CreateEmployeeRequest struct {
	Personal     EmployeePersonal     `json:"personal" binding:"required"`
	Professional EmployeeProfessional `json:"professional" binding:"required"`
	Credentials  EmployeeCredentials  `json:"credentials" binding:"required"`
}
