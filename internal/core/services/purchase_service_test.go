package services_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pmapp/personal_management_app/internal/apperrors"
	"github.com/pmapp/personal_management_app/internal/core/domain"
	portsrepo "github.com/pmapp/personal_management_app/internal/core/ports/repositories"
	portssvc "github.com/pmapp/personal_management_app/internal/core/ports/services"
	"github.com/pmapp/personal_management_app/internal/core/services"
	"github.com/pmapp/personal_management_app/internal/dto"
)

// --- Mock PurchaseRepository ---
type MockPurchaseRepository struct {
	mock.Mock
}

var _ portsrepo.PurchaseRepository = (*MockPurchaseRepository)(nil)

func (m *MockPurchaseRepository) List(ctx context.Context, params dto.ListParams) ([]domain.Purchase, int64, error) {
	args := m.Called(ctx, params)
	var docs []domain.Purchase
	if args.Get(0) != nil {
		docs = args.Get(0).([]domain.Purchase)
	}
	return docs, args.Get(1).(int64), args.Error(2)
}

func (m *MockPurchaseRepository) FindByID(ctx context.Context, id string) (*domain.Purchase, error) {
	args := m.Called(ctx, id)
	var doc *domain.Purchase
	if args.Get(0) != nil {
		doc = args.Get(0).(*domain.Purchase)
	}
	return doc, args.Error(1)
}

func (m *MockPurchaseRepository) Save(ctx context.Context, entity *domain.Purchase) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockPurchaseRepository) Update(ctx context.Context, entity *domain.Purchase) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockPurchaseRepository) MarkDeleted(ctx context.Context, id string, deletedAt time.Time, deleterUserID string) error {
	args := m.Called(ctx, id, deletedAt, deleterUserID)
	return args.Error(0)
}

func (m *MockPurchaseRepository) SaveWithExpenditure(ctx context.Context, purchase *domain.Purchase, expenditure *domain.Expenditure) error {
	args := m.Called(ctx, purchase, expenditure)
	return args.Error(0)
}

func (m *MockPurchaseRepository) UpdateWithExpenditure(ctx context.Context, purchase *domain.Purchase, expenditure *domain.Expenditure, payment *domain.Payment, createPayment bool) error {
	args := m.Called(ctx, purchase, expenditure, payment, createPayment)
	return args.Error(0)
}

// --- Test Suite ---
type PurchaseServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPurchaseRepository
	service  portssvc.PurchaseSvcFacade
}

func (suite *PurchaseServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPurchaseRepository)
	suite.service = services.NewPurchaseService(suite.mockRepo)
}

func (suite *PurchaseServiceTestSuite) TestCreate_WiresExpenditureAndPayment() {
	ctx := context.Background()
	items := json.RawMessage(`[{"name":"milk","qty":2}]`)
	req := dto.SavePurchaseRequest{
		Date:    time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Place:   "Supermarket",
		Purpose: "Groceries",
		Items:   items,
		Payment: &dto.PaymentInput{Amount: 34.20, Method: "card", Status: "paid"},
	}

	suite.mockRepo.On("SaveWithExpenditure", ctx,
		mock.MatchedBy(func(pu *domain.Purchase) bool {
			return pu.ID != "" && pu.ExpenditureID != "" && pu.Active && pu.CreatedBy == "user-1"
		}),
		mock.MatchedBy(func(e *domain.Expenditure) bool {
			return e.ID != "" && e.Purpose == "Groceries" && e.PaymentID != nil && e.Payment != nil
		}),
	).Return(nil).Once()

	purchase, err := suite.service.Create(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(purchase.Expenditure)
	suite.Equal(purchase.ExpenditureID, purchase.Expenditure.ID)
	suite.Equal(items, purchase.Items)
	suite.NotNil(purchase.Expenditure.Payment)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestCreate_WithoutPayment() {
	ctx := context.Background()
	req := dto.SavePurchaseRequest{
		Date:    time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Place:   "Bakery",
		Purpose: "Bread",
		Items:   json.RawMessage(`[]`),
	}

	suite.mockRepo.On("SaveWithExpenditure", ctx,
		mock.Anything,
		mock.MatchedBy(func(e *domain.Expenditure) bool {
			return e.PaymentID == nil && e.Payment == nil
		}),
	).Return(nil).Once()

	purchase, err := suite.service.Create(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Nil(purchase.Expenditure.PaymentID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestCreate_IgnoresClientSuppliedPaymentID() {
	ctx := context.Background()
	clientID := uuid.NewString()
	req := dto.SavePurchaseRequest{
		Date:    time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Place:   "Supermarket",
		Purpose: "Groceries",
		Items:   json.RawMessage(`[]`),
		Payment: &dto.PaymentInput{ID: clientID, Amount: 34.20, Method: "card", Status: "paid"},
	}

	suite.mockRepo.On("SaveWithExpenditure", ctx,
		mock.Anything,
		mock.MatchedBy(func(e *domain.Expenditure) bool {
			return e.Payment != nil && e.Payment.ID != clientID &&
				e.Payment.Active && e.Payment.CreatedBy == "user-1"
		}),
	).Return(nil).Once()

	purchase, err := suite.service.Create(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.NotEqual(clientID, purchase.Expenditure.Payment.ID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestUpdate_ReusesExistingExpenditure() {
	ctx := context.Background()
	existing := &domain.Purchase{ExpenditureID: "exp-1", Expenditure: &domain.Expenditure{}}
	existing.ID = "pur-1"
	existing.Expenditure.ID = "exp-1"

	req := dto.SavePurchaseRequest{
		Date:    time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
		Place:   "Supermarket",
		Purpose: "Groceries",
		Items:   json.RawMessage(`[{"name":"eggs"}]`),
	}

	suite.mockRepo.On("FindByID", ctx, "pur-1").Return(existing, nil).Twice()
	suite.mockRepo.On("UpdateWithExpenditure", ctx,
		mock.MatchedBy(func(pu *domain.Purchase) bool {
			return pu.ID == "pur-1" && pu.ExpenditureID == "exp-1" && pu.LastUpdatedBy == "user-2"
		}),
		mock.MatchedBy(func(e *domain.Expenditure) bool {
			return e.ID == "exp-1" && e.Place == "Supermarket"
		}),
		(*domain.Payment)(nil),
		false,
	).Return(nil).Once()

	_, err := suite.service.Update(ctx, "pur-1", req, "user-2")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindByID", ctx, "missing-id").Return(nil, nil).Once()

	purchase, err := suite.service.Update(ctx, "missing-id", dto.SavePurchaseRequest{}, "user-2")

	suite.Require().Error(err)
	suite.Nil(purchase)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateWithExpenditure",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PurchaseServiceTestSuite) TestDelete_Delegates() {
	ctx := context.Background()
	suite.mockRepo.On("MarkDeleted", ctx, "pur-1", mock.AnythingOfType("time.Time"), "user-3").Return(nil).Once()

	err := suite.service.Delete(ctx, "pur-1", "user-3")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestPurchaseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PurchaseServiceTestSuite))
}
