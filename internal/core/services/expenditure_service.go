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

type expenditureService struct {
	repo portsrepo.ExpenditureRepository
}

// NewExpenditureService creates the expenditure service.
func NewExpenditureService(repo portsrepo.ExpenditureRepository) ports.ExpenditureSvcFacade {
	return &expenditureService{repo: repo}
}

var _ ports.ExpenditureSvcFacade = (*expenditureService)(nil)

// buildPayment shapes a payment sub-object for persistence. The returned flag
// reports whether the payment is new rather than an update of an existing row.
func buildPayment(input *dto.PaymentInput, userID string, now time.Time) (*domain.Payment, bool) {
	if input == nil {
		return nil, false
	}
	payment := &domain.Payment{
		Amount:  input.Amount,
		Method:  input.Method,
		Status:  input.Status,
		Purpose: input.Purpose,
	}
	if input.ID != "" {
		payment.ID = input.ID
		payment.StampUpdated(userID, now)
		return payment, false
	}
	payment.ID = uuid.NewString()
	payment.StampCreated(userID, now)
	return payment, true
}

// buildNewPayment shapes a payment for a composite create. A caller-supplied
// id is ignored so the insert always runs under a server-minted id with full
// audit columns.
func buildNewPayment(input *dto.PaymentInput, userID string, now time.Time) *domain.Payment {
	if input == nil {
		return nil
	}
	fresh := *input
	fresh.ID = ""
	payment, _ := buildPayment(&fresh, userID, now)
	return payment
}

func (s *expenditureService) List(ctx context.Context, params dto.ListParams) (*dto.Page[domain.Expenditure], error) {
	params.Normalize()
	docs, total, err := s.repo.List(ctx, params)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("failed to list expenditures", "error", err)
		return nil, err
	}
	return dto.NewPage(docs, total, params.Page, params.Limit), nil
}

func (s *expenditureService) GetByID(ctx context.Context, id string) (*domain.Expenditure, error) {
	expenditure, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expenditure == nil {
		return nil, apperrors.ErrNotFound
	}
	return expenditure, nil
}

func (s *expenditureService) Create(ctx context.Context, req dto.SaveExpenditureRequest, creatorUserID string) (*domain.Expenditure, error) {
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

	if err := s.repo.SaveWithPayment(ctx, expenditure, payment); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("failed to save expenditure", "error", err)
		return nil, err
	}
	return expenditure, nil
}

func (s *expenditureService) Update(ctx context.Context, id string, req dto.SaveExpenditureRequest, updaterUserID string) (*domain.Expenditure, error) {
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
		PaymentID:   existing.PaymentID,
	}
	expenditure.ID = id
	expenditure.StampUpdated(updaterUserID, now)
	if payment != nil {
		expenditure.PaymentID = &payment.ID
	}

	if err := s.repo.UpdateWithPayment(ctx, expenditure, payment, createPayment); err != nil {
		if err != apperrors.ErrNotFound {
			middleware.GetLoggerFromCtx(ctx).Error("failed to update expenditure", "id", id, "error", err)
		}
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *expenditureService) Delete(ctx context.Context, id string, deleterUserID string) error {
	return s.repo.MarkDeleted(ctx, id, time.Now(), deleterUserID)
}
