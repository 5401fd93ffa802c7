package handlers_test

import (
	"context"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"google.golang.org/api/idtoken"

	"github.com/pmapp/personal_management_app/internal/core/domain"
	portssvc "github.com/pmapp/personal_management_app/internal/core/ports/services"
	"github.com/pmapp/personal_management_app/internal/dto"
	"github.com/pmapp/personal_management_app/internal/handlers"
	"github.com/pmapp/personal_management_app/internal/platform/config"
	"github.com/pmapp/personal_management_app/internal/utils"
)

const (
	testJWTSecret = "test-secret-key"
	testUserID    = "11111111-1111-1111-1111-111111111111"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- Mock UserSvcFacade ---
type MockUserService struct {
	mock.Mock
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserService) Register(ctx context.Context, req dto.SignupRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserService) GetOrProvisionByEmail(ctx context.Context, email, name string) (*domain.User, error) {
	args := m.Called(ctx, email, name)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

// --- Mock TokenSvcFacade ---
type MockTokenService struct {
	mock.Mock
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

// --- Mock GoogleAuthSvcFacade ---
type MockGoogleAuthService struct {
	mock.Mock
}

var _ portssvc.GoogleAuthSvcFacade = (*MockGoogleAuthService)(nil)

func (m *MockGoogleAuthService) ValidateIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	args := m.Called(ctx, idTokenString)
	var payload *idtoken.Payload
	if args.Get(0) != nil {
		payload = args.Get(0).(*idtoken.Payload)
	}
	return payload, args.Error(1)
}

// --- Mock ResourceSvcFacade ---
type MockResourceService[T any] struct {
	mock.Mock
}

func (m *MockResourceService[T]) List(ctx context.Context, params dto.ListParams) (*dto.Page[T], error) {
	args := m.Called(ctx, params)
	var page *dto.Page[T]
	if args.Get(0) != nil {
		page = args.Get(0).(*dto.Page[T])
	}
	return page, args.Error(1)
}

func (m *MockResourceService[T]) GetByID(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	var entity *T
	if args.Get(0) != nil {
		entity = args.Get(0).(*T)
	}
	return entity, args.Error(1)
}

func (m *MockResourceService[T]) Create(ctx context.Context, entity *T, creatorUserID string) (*T, error) {
	args := m.Called(ctx, entity, creatorUserID)
	var created *T
	if args.Get(0) != nil {
		created = args.Get(0).(*T)
	}
	return created, args.Error(1)
}

func (m *MockResourceService[T]) Update(ctx context.Context, id string, entity *T, updaterUserID string) (*T, error) {
	args := m.Called(ctx, id, entity, updaterUserID)
	var updated *T
	if args.Get(0) != nil {
		updated = args.Get(0).(*T)
	}
	return updated, args.Error(1)
}

func (m *MockResourceService[T]) Delete(ctx context.Context, id string, deleterUserID string) error {
	args := m.Called(ctx, id, deleterUserID)
	return args.Error(0)
}

// --- Mock ExpenditureSvcFacade ---
type MockExpenditureService struct {
	mock.Mock
}

var _ portssvc.ExpenditureSvcFacade = (*MockExpenditureService)(nil)

func (m *MockExpenditureService) List(ctx context.Context, params dto.ListParams) (*dto.Page[domain.Expenditure], error) {
	args := m.Called(ctx, params)
	var page *dto.Page[domain.Expenditure]
	if args.Get(0) != nil {
		page = args.Get(0).(*dto.Page[domain.Expenditure])
	}
	return page, args.Error(1)
}

func (m *MockExpenditureService) GetByID(ctx context.Context, id string) (*domain.Expenditure, error) {
	args := m.Called(ctx, id)
	var doc *domain.Expenditure
	if args.Get(0) != nil {
		doc = args.Get(0).(*domain.Expenditure)
	}
	return doc, args.Error(1)
}

func (m *MockExpenditureService) Create(ctx context.Context, req dto.SaveExpenditureRequest, creatorUserID string) (*domain.Expenditure, error) {
	args := m.Called(ctx, req, creatorUserID)
	var doc *domain.Expenditure
	if args.Get(0) != nil {
		doc = args.Get(0).(*domain.Expenditure)
	}
	return doc, args.Error(1)
}

func (m *MockExpenditureService) Update(ctx context.Context, id string, req dto.SaveExpenditureRequest, updaterUserID string) (*domain.Expenditure, error) {
	args := m.Called(ctx, id, req, updaterUserID)
	var doc *domain.Expenditure
	if args.Get(0) != nil {
		doc = args.Get(0).(*domain.Expenditure)
	}
	return doc, args.Error(1)
}

func (m *MockExpenditureService) Delete(ctx context.Context, id string, deleterUserID string) error {
	args := m.Called(ctx, id, deleterUserID)
	return args.Error(0)
}

// --- Mock PurchaseSvcFacade ---
type MockPurchaseService struct {
	mock.Mock
}

var _ portssvc.PurchaseSvcFacade = (*MockPurchaseService)(nil)

func (m *MockPurchaseService) List(ctx context.Context, params dto.ListParams) (*dto.Page[domain.Purchase], error) {
	args := m.Called(ctx, params)
	var page *dto.Page[domain.Purchase]
	if args.Get(0) != nil {
		page = args.Get(0).(*dto.Page[domain.Purchase])
	}
	return page, args.Error(1)
}

func (m *MockPurchaseService) GetByID(ctx context.Context, id string) (*domain.Purchase, error) {
	args := m.Called(ctx, id)
	var doc *domain.Purchase
	if args.Get(0) != nil {
		doc = args.Get(0).(*domain.Purchase)
	}
	return doc, args.Error(1)
}

func (m *MockPurchaseService) Create(ctx context.Context, req dto.SavePurchaseRequest, creatorUserID string) (*domain.Purchase, error) {
	args := m.Called(ctx, req, creatorUserID)
	var doc *domain.Purchase
	if args.Get(0) != nil {
		doc = args.Get(0).(*domain.Purchase)
	}
	return doc, args.Error(1)
}

func (m *MockPurchaseService) Update(ctx context.Context, id string, req dto.SavePurchaseRequest, updaterUserID string) (*domain.Purchase, error) {
	args := m.Called(ctx, id, req, updaterUserID)
	var doc *domain.Purchase
	if args.Get(0) != nil {
		doc = args.Get(0).(*domain.Purchase)
	}
	return doc, args.Error(1)
}

func (m *MockPurchaseService) Delete(ctx context.Context, id string, deleterUserID string) error {
	args := m.Called(ctx, id, deleterUserID)
	return args.Error(0)
}

// --- Mock EmployeeSvcFacade ---
type MockEmployeeService struct {
	mock.Mock
}

var _ portssvc.EmployeeSvcFacade = (*MockEmployeeService)(nil)

func (m *MockEmployeeService) List(ctx context.Context, params dto.ListParams) (*dto.Page[domain.Employee], error) {
	args := m.Called(ctx, params)
	var page *dto.Page[domain.Employee]
	if args.Get(0) != nil {
		page = args.Get(0).(*dto.Page[domain.Employee])
	}
	return page, args.Error(1)
}

func (m *MockEmployeeService) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	var doc *domain.Employee
	if args.Get(0) != nil {
		doc = args.Get(0).(*domain.Employee)
	}
	return doc, args.Error(1)
}

func (m *MockEmployeeService) Create(ctx context.Context, req dto.CreateEmployeeRequest, creatorUserID string) (*domain.Employee, error) {
	args := m.Called(ctx, req, creatorUserID)
	var doc *domain.Employee
	if args.Get(0) != nil {
		doc = args.Get(0).(*domain.Employee)
	}
	return doc, args.Error(1)
}

func (m *MockEmployeeService) Update(ctx context.Context, id string, req dto.EmployeePersonal, updaterUserID string) (*domain.Employee, error) {
	args := m.Called(ctx, id, req, updaterUserID)
	var doc *domain.Employee
	if args.Get(0) != nil {
		doc = args.Get(0).(*domain.Employee)
	}
	return doc, args.Error(1)
}

func (m *MockEmployeeService) Delete(ctx context.Context, id string, deleterUserID string) error {
	args := m.Called(ctx, id, deleterUserID)
	return args.Error(0)
}

// --- Mock DeviceSvcFacade ---
type MockDeviceService struct {
	mock.Mock
}

var _ portssvc.DeviceSvcFacade = (*MockDeviceService)(nil)

func (m *MockDeviceService) Register(ctx context.Context, req dto.SaveDeviceRequest, creatorUserID string) (*domain.Device, *domain.User, error) {
	args := m.Called(ctx, req, creatorUserID)
	var device *domain.Device
	if args.Get(0) != nil {
		device = args.Get(0).(*domain.Device)
	}
	var user *domain.User
	if args.Get(1) != nil {
		user = args.Get(1).(*domain.User)
	}
	return device, user, args.Error(2)
}

// testServices bundles the mocks wired into the test router.
type testServices struct {
	User         *MockUserService
	Token        *MockTokenService
	GoogleAuth   *MockGoogleAuthService
	Tasks        *MockResourceService[domain.Task]
	Contacts     *MockResourceService[domain.Contact]
	Events       *MockResourceService[domain.Event]
	Timesheets   *MockResourceService[domain.Timesheet]
	Returnings   *MockResourceService[domain.Returning]
	Surveys      *MockResourceService[domain.Survey]
	Expenditures *MockExpenditureService
	Purchases    *MockPurchaseService
	Employees    *MockEmployeeService
	Devices      *MockDeviceService
}

// newTestRouter builds a router with the full route table over mock services.
// Production mode keeps the swagger routes out of the table.
func newTestRouter(t *testing.T) (*gin.Engine, *testServices) {
	t.Helper()

	mocks := &testServices{
		User:         new(MockUserService),
		Token:        new(MockTokenService),
		GoogleAuth:   new(MockGoogleAuthService),
		Tasks:        new(MockResourceService[domain.Task]),
		Contacts:     new(MockResourceService[domain.Contact]),
		Events:       new(MockResourceService[domain.Event]),
		Timesheets:   new(MockResourceService[domain.Timesheet]),
		Returnings:   new(MockResourceService[domain.Returning]),
		Surveys:      new(MockResourceService[domain.Survey]),
		Expenditures: new(MockExpenditureService),
		Purchases:    new(MockPurchaseService),
		Employees:    new(MockEmployeeService),
		Devices:      new(MockDeviceService),
	}

	container := &portssvc.ServiceContainer{
		User:         mocks.User,
		Token:        mocks.Token,
		GoogleAuth:   mocks.GoogleAuth,
		Contacts:     mocks.Contacts,
		Tasks:        mocks.Tasks,
		Timesheets:   mocks.Timesheets,
		Events:       mocks.Events,
		Returnings:   mocks.Returnings,
		Surveys:      mocks.Surveys,
		Expenditures: mocks.Expenditures,
		Purchases:    mocks.Purchases,
		Employees:    mocks.Employees,
		Devices:      mocks.Devices,
	}

	cfg := &config.Config{
		JWTSecret:    testJWTSecret,
		IsProduction: true,
	}

	r := gin.New()
	handlers.RegisterRoutes(r, cfg, container)
	return r, mocks
}

// bearerToken issues a token the auth middleware accepts for testUserID.
func bearerToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateJWT(testUserID, "tester@example.com", testJWTSecret, time.Hour, "test")
	if err != nil {
		t.Fatalf("failed to generate test token: %v", err)
	}
	return "Bearer " + token
}
