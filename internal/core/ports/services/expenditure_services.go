package services

import (
	"context"

	"github.com/pmapp/personal_management_app/internal/core/domain"
	"github.com/pmapp/personal_management_app/internal/dto"
)

// ExpenditureSvcFacade coordinates the Payment→Expenditure composite write.
type ExpenditureSvcFacade interface {
	List(ctx context.Context, params dto.ListParams) (*dto.Page[domain.Expenditure], error)
	GetByID(ctx context.Context, id string) (*domain.Expenditure, error)
	Create(ctx context.Context, req dto.SaveExpenditureRequest, creatorUserID string) (*domain.Expenditure, error)
	Update(ctx context.Context, id string, req dto.SaveExpenditureRequest, updaterUserID string) (*domain.Expenditure, error)
	Delete(ctx context.Context, id string, deleterUserID string) error
}

// PurchaseSvcFacade coordinates the Expenditure→Purchase composite write.
type PurchaseSvcFacade interface {
	List(ctx context.Context, params dto.ListParams) (*dto.Page[domain.Purchase], error)
	GetByID(ctx context.Context, id string) (*domain.Purchase, error)
	Create(ctx context.Context, req dto.SavePurchaseRequest, creatorUserID string) (*domain.Purchase, error)
	Update(ctx context.Context, id string, req dto.SavePurchaseRequest, updaterUserID string) (*domain.Purchase, error)
	Delete(ctx context.Context, id string, deleterUserID string) error
}
