package services

import (
	"context"

	"github.com/pmapp/personal_management_app/internal/core/domain"
	"github.com/pmapp/personal_management_app/internal/dto"
)

// EmployeeSvcFacade coordinates the CRM employee graph write.
type EmployeeSvcFacade interface {
	List(ctx context.Context, params dto.ListParams) (*dto.Page[domain.Employee], error)
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	Create(ctx context.Context, req dto.CreateEmployeeRequest, creatorUserID string) (*domain.Employee, error)
	Update(ctx context.Context, id string, req dto.EmployeePersonal, updaterUserID string) (*domain.Employee, error)
	Delete(ctx context.Context, id string, deleterUserID string) error
}

// DeviceSvcFacade registers client devices for push notifications.
type DeviceSvcFacade interface {
	Register(ctx context.Context, req dto.SaveDeviceRequest, creatorUserID string) (*domain.Device, *domain.User, error)
}
