package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pmapp/personal_management_app/internal/apperrors"
	"github.com/pmapp/personal_management_app/internal/core/domain"
	portsrepo "github.com/pmapp/personal_management_app/internal/core/ports/repositories"
	portssvc "github.com/pmapp/personal_management_app/internal/core/ports/services"
	"github.com/pmapp/personal_management_app/internal/core/services"
	"github.com/pmapp/personal_management_app/internal/dto"
)

// --- Mock EmployeeRepository ---
type MockEmployeeRepository struct {
	mock.Mock
}

var _ portsrepo.EmployeeRepository = (*MockEmployeeRepository)(nil)

func (m *MockEmployeeRepository) List(ctx context.Context, params dto.ListParams) ([]domain.Employee, int64, error) {
	args := m.Called(ctx, params)
	var employees []domain.Employee
	if args.Get(0) != nil {
		employees = args.Get(0).([]domain.Employee)
	}
	return employees, args.Get(1).(int64), args.Error(2)
}

func (m *MockEmployeeRepository) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	var employee *domain.Employee
	if args.Get(0) != nil {
		employee = args.Get(0).(*domain.Employee)
	}
	return employee, args.Error(1)
}

func (m *MockEmployeeRepository) Save(ctx context.Context, entity *domain.Employee) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, entity *domain.Employee) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockEmployeeRepository) MarkDeleted(ctx context.Context, id string, deletedAt time.Time, deleterUserID string) error {
	args := m.Called(ctx, id, deletedAt, deleterUserID)
	return args.Error(0)
}

func (m *MockEmployeeRepository) FindActiveByIdentity(ctx context.Context, name, email, primaryPhone string) (*domain.Employee, error) {
	args := m.Called(ctx, name, email, primaryPhone)
	var employee *domain.Employee
	if args.Get(0) != nil {
		employee = args.Get(0).(*domain.Employee)
	}
	return employee, args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployeeGraph(ctx context.Context, area *domain.EmployeeArea, profile *domain.EmployeeProfile, authorization *domain.EmployeeAuthorization, employee *domain.Employee) error {
	args := m.Called(ctx, area, profile, authorization, employee)
	return args.Error(0)
}

// --- Test Suite ---
type EmployeeServiceTestSuite struct {
	suite.Suite
	mockRepo *MockEmployeeRepository
	service  portssvc.EmployeeSvcFacade
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockEmployeeRepository)
	suite.service = services.NewEmployeeService(suite.mockRepo)
}

func employeeRequest() dto.CreateEmployeeRequest {
	return dto.CreateEmployeeRequest{
		Personal: dto.EmployeePersonal{
			Name:  "Asha Rao",
			Email: "asha@example.com",
			Phone: dto.EmployeePhone{Primary: "9876543210"},
		},
		Professional: dto.EmployeeProfessional{
			Department:  "Field Operations",
			Designation: "Surveyor",
			Area:        dto.EmployeeAreaInput{Name: "North Zone", Region: "North", State: "KA"},
		},
		Credentials: dto.EmployeeCredentials{
			Role:     "surveyor",
			Username: "asha.rao",
			Password: "s3cret",
		},
	}
}

func (suite *EmployeeServiceTestSuite) TestCreate_PersistsWholeGraph() {
	ctx := context.Background()
	req := employeeRequest()

	suite.mockRepo.On("FindActiveByIdentity", ctx, "Asha Rao", "asha@example.com", "9876543210").
		Return(nil, nil).Once()
	suite.mockRepo.On("SaveEmployeeGraph", ctx,
		mock.MatchedBy(func(area *domain.EmployeeArea) bool {
			return area.ID != "" && area.Name == "North Zone" && area.Active
		}),
		mock.MatchedBy(func(profile *domain.EmployeeProfile) bool {
			return profile.ID != "" && profile.Department == "Field Operations" && profile.AreaID != ""
		}),
		mock.MatchedBy(func(auth *domain.EmployeeAuthorization) bool {
			return auth.ID != "" && auth.Username == "asha.rao" && auth.PasswordHash != "s3cret"
		}),
		mock.MatchedBy(func(employee *domain.Employee) bool {
			return employee.ID != "" && employee.ProfileID != "" && employee.AuthorizationID != "" &&
				employee.CreatedBy == "user-1"
		}),
	).Return(nil).Once()

	employee, err := suite.service.Create(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(employee.Profile)
	suite.Equal(employee.ProfileID, employee.Profile.ID)
	suite.NotEmpty(employee.Profile.AreaID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestCreate_DuplicateIdentity() {
	ctx := context.Background()
	existing := &domain.Employee{Name: "Asha Rao"}
	existing.ID = "emp-1"

	suite.mockRepo.On("FindActiveByIdentity", ctx, "Asha Rao", "asha@example.com", "9876543210").
		Return(existing, nil).Once()

	employee, err := suite.service.Create(ctx, employeeRequest(), "user-1")

	suite.Require().Error(err)
	suite.Nil(employee)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEmployeeGraph",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestGetByID_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindByID", ctx, "missing-id").Return(nil, nil).Once()

	employee, err := suite.service.GetByID(ctx, "missing-id")

	suite.Require().Error(err)
	suite.Nil(employee)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *EmployeeServiceTestSuite) TestUpdate_RestampsAndRefetches() {
	ctx := context.Background()
	req := dto.EmployeePersonal{
		Name:  "Asha R",
		Email: "asha.r@example.com",
		Phone: dto.EmployeePhone{Primary: "9876543210", Alternate: "080-1234"},
	}
	refreshed := &domain.Employee{Name: "Asha R", Email: "asha.r@example.com"}
	refreshed.ID = "emp-1"

	suite.mockRepo.On("Update", ctx, mock.MatchedBy(func(employee *domain.Employee) bool {
		return employee.ID == "emp-1" && employee.Name == "Asha R" &&
			employee.AlternatePhone == "080-1234" && employee.LastUpdatedBy == "user-2"
	})).Return(nil).Once()
	suite.mockRepo.On("FindByID", ctx, "emp-1").Return(refreshed, nil).Once()

	employee, err := suite.service.Update(ctx, "emp-1", req, "user-2")

	suite.Require().NoError(err)
	suite.Equal(refreshed, employee)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()
	req := dto.EmployeePersonal{
		Name:  "Nobody",
		Email: "nobody@example.com",
		Phone: dto.EmployeePhone{Primary: "0000000000"},
	}

	suite.mockRepo.On("Update", ctx, mock.Anything).Return(apperrors.ErrNotFound).Once()

	employee, err := suite.service.Update(ctx, "missing-id", req, "user-2")

	suite.Require().Error(err)
	suite.Nil(employee)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindByID", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestDelete_Delegates() {
	ctx := context.Background()
	suite.mockRepo.On("MarkDeleted", ctx, "emp-1", mock.AnythingOfType("time.Time"), "user-2").Return(nil).Once()

	err := suite.service.Delete(ctx, "emp-1", "user-2")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
