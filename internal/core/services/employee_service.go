package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pmapp/personal_management_app/internal/apperrors"
	"github.com/pmapp/personal_management_app/internal/core/domain"
	portsrepo "github.com/pmapp/personal_management_app/internal/core/ports/repositories"
	ports "github.com/pmapp/personal_management_app/internal/core/ports/services"
	"github.com/pmapp/personal_management_app/internal/dto"
	"github.com/pmapp/personal_management_app/internal/middleware"
	"github.com/pmapp/personal_management_app/internal/utils"
)

type employeeService struct {
	repo portsrepo.EmployeeRepository
}

// NewEmployeeService creates the CRM employee service.
func NewEmployeeService(repo portsrepo.EmployeeRepository) ports.EmployeeSvcFacade {
	return &employeeService{repo: repo}
}

var _ ports.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) List(ctx context.Context, params dto.ListParams) (*dto.Page[domain.Employee], error) {
	params.Normalize()
	docs, total, err := s.repo.List(ctx, params)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("failed to list employees", "error", err)
		return nil, err
	}
	return dto.NewPage(docs, total, params.Page, params.Limit), nil
}

func (s *employeeService) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperrors.ErrNotFound
	}
	return employee, nil
}

// Create persists the area, profile, authorization and employee records in
// one transaction. A second active employee with the same name, email and
// primary phone yields apperrors.ErrDuplicate.
func (s *employeeService) Create(ctx context.Context, req dto.CreateEmployeeRequest, creatorUserID string) (*domain.Employee, error) {
	existing, err := s.repo.FindActiveByIdentity(ctx, req.Personal.Name, req.Personal.Email, req.Personal.Phone.Primary)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("failed to check for existing employee", "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicate
	}

	hash, err := utils.HashPassword(req.Credentials.Password)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to hash employee password", err)
	}

	now := time.Now()

	area := &domain.EmployeeArea{
		Name:   req.Professional.Area.Name,
		Region: req.Professional.Area.Region,
		State:  req.Professional.Area.State,
	}
	area.ID = uuid.NewString()
	area.StampCreated(creatorUserID, now)

	profile := &domain.EmployeeProfile{
		Department:    req.Professional.Department,
		Designation:   req.Professional.Designation,
		DateOfJoining: req.Professional.DateOfJoining,
		Supervisor:    req.Professional.Supervisor,
		AreaID:        area.ID,
	}
	profile.ID = uuid.NewString()
	profile.StampCreated(creatorUserID, now)

	authorization := &domain.EmployeeAuthorization{
		Role:         req.Credentials.Role,
		Username:     req.Credentials.Username,
		PasswordHash: hash,
	}
	authorization.ID = uuid.NewString()
	authorization.StampCreated(creatorUserID, now)

	employee := &domain.Employee{
		Name:            req.Personal.Name,
		Gender:          req.Personal.Gender,
		Birthday:        req.Personal.Birthday,
		Email:           req.Personal.Email,
		PrimaryPhone:    req.Personal.Phone.Primary,
		AlternatePhone:  req.Personal.Phone.Alternate,
		ProfileID:       profile.ID,
		AuthorizationID: authorization.ID,
	}
	employee.ID = uuid.NewString()
	employee.StampCreated(creatorUserID, now)

	if err := s.repo.SaveEmployeeGraph(ctx, area, profile, authorization, employee); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("failed to save employee graph", "error", err)
		return nil, err
	}
	employee.Profile = profile
	return employee, nil
}

// Update rewrites the employee's personal fields and restamps the audit
// columns. Profile and authorization records are untouched; the updated
// employee is re-read so the response carries the joined profile.
func (s *employeeService) Update(ctx context.Context, id string, req dto.EmployeePersonal, updaterUserID string) (*domain.Employee, error) {
	employee := &domain.Employee{
		Name:           req.Name,
		Gender:         req.Gender,
		Birthday:       req.Birthday,
		Email:          req.Email,
		PrimaryPhone:   req.Phone.Primary,
		AlternatePhone: req.Phone.Alternate,
	}
	employee.ID = id
	employee.StampUpdated(updaterUserID, time.Now())

	if err := s.repo.Update(ctx, employee); err != nil {
		if err != apperrors.ErrNotFound {
			middleware.GetLoggerFromCtx(ctx).Error("failed to update employee", "id", id, "error", err)
		}
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *employeeService) Delete(ctx context.Context, id string, deleterUserID string) error {
	return s.repo.MarkDeleted(ctx, id, time.Now(), deleterUserID)
}
