package repositories

import (
	"context"

	"github.com/pmapp/personal_management_app/internal/core/domain"
)

// EmployeeRepository persists CRM employees and their owned sub-records.
type EmployeeRepository interface {
	ResourceRepository[domain.Employee]

	// FindActiveByIdentity returns nil, nil when no active employee matches
	// the name+email+primary phone combination.
	FindActiveByIdentity(ctx context.Context, name, email, primaryPhone string) (*domain.Employee, error)

	// SaveEmployeeGraph inserts area, profile, authorization and employee in
	// one transaction.
	SaveEmployeeGraph(ctx context.Context, area *domain.EmployeeArea, profile *domain.EmployeeProfile, authorization *domain.EmployeeAuthorization, employee *domain.Employee) error
}
