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
)

type purchaseService struct {
	repo portsrepo.PurchaseRepository
}

// NewPurchaseService creates the purchase service.
func NewPurchaseService(repo portsrepo.PurchaseRepository) ports.PurchaseSvcFacade {
	return &purchaseService{repo: repo}
}

var _ ports.PurchaseSvcFacade = (*purchaseService)(nil)

func (s *purchaseService) List(ctx context.Context, params dto.ListParams) (*dto.Page[domain.Purchase], error) {
	params.Normalize()
	docs, total, err := s.repo.List(ctx, params)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("failed to list purchases", "error", err)
		return nil, err
	}
	return dto.NewPage(docs, total, params.Page, params.Limit), nil
}

func (s *purchaseService) GetByID(ctx context.Context, id string) (*domain.Purchase, error) {
	purchase, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, apperrors.ErrNotFound
	}
	return purchase, nil
}

func (s *purchaseService) Create(ctx context.Context, req dto.SavePurchaseRequest, creatorUserID string) (*domain.Purchase, error) {
	now := time.Now()
	payment := buildNewPayment(req.Payment, creatorUserID, now)

	expenditure := &domain.Expenditure{
		Date:        req.Date,
		Place:       req.Place,
		Purpose:     req.Purpose,
		Description: req.Description,
	}
	expenditure.ID = uuid.NewString()
	expenditure.StampCreated(creatorUserID, now)
	if payment != nil {
		expenditure.PaymentID = &payment.ID
		expenditure.Payment = payment
	}

	purchase := &domain.Purchase{
		ExpenditureID: expenditure.ID,
		Items:         req.Items,
	}
	purchase.ID = uuid.NewString()
	purchase.StampCreated(creatorUserID, now)

	if err := s.repo.SaveWithExpenditure(ctx, purchase, expenditure); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("failed to save purchase", "error", err)
		return nil, err
	}
	purchase.Expenditure = expenditure
	return purchase, nil
}

func (s *purchaseService) Update(ctx context.Context, id string, req dto.SavePurchaseRequest, updaterUserID string) (*domain.Purchase, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	payment, createPayment := buildPayment(req.Payment, updaterUserID, now)

	expenditure := &domain.Expenditure{
		Date:        req.Date,
		Place:       req.Place,
		Purpose:     req.Purpose,
		Description: req.Description,
		PaymentID:   existing.Expenditure.PaymentID,
	}
	expenditure.ID = existing.ExpenditureID
	expenditure.StampUpdated(updaterUserID, now)
	if payment != nil {
		expenditure.PaymentID = &payment.ID
	}

	purchase := &domain.Purchase{
		ExpenditureID: existing.ExpenditureID,
		Items:         req.Items,
	}
	purchase.ID = id
	purchase.StampUpdated(updaterUserID, now)

	if err := s.repo.UpdateWithExpenditure(ctx, purchase, expenditure, payment, createPayment); err != nil {
		if err != apperrors.ErrNotFound {
			middleware.GetLoggerFromCtx(ctx).Error("failed to update purchase", "id", id, "error", err)
		}
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *purchaseService) Delete(ctx context.Context, id string, deleterUserID string) error {
	return s.repo.MarkDeleted(ctx, id, time.Now(), deleterUserID)
}
