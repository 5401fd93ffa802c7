package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pmapp/personal_management_app/internal/apperrors"
	"github.com/pmapp/personal_management_app/internal/core/domain"
	portsrepo "github.com/pmapp/personal_management_app/internal/core/ports/repositories"
	portssvc "github.com/pmapp/personal_management_app/internal/core/ports/services"
	"github.com/pmapp/personal_management_app/internal/core/services"
	"github.com/pmapp/personal_management_app/internal/dto"
	"github.com/pmapp/personal_management_app/internal/utils"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) List(ctx context.Context, params dto.ListParams) ([]domain.User, int64, error) {
	args := m.Called(ctx, params)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindActiveByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkDeleted(ctx context.Context, userID string, deletedAt time.Time, deleterUserID string) error {
	args := m.Called(ctx, userID, deletedAt, deleterUserID)
	return args.Error(0)
}

// --- Mock Mailer ---
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo, nil)
}

// --- Authenticate ---
func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	password := "correct-horse"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)

	user := &domain.User{Name: "Asha", Email: "asha@example.com", PasswordHash: hash}
	user.ID = uuid.NewString()

	suite.mockRepo.On("FindActiveByEmail", ctx, "asha@example.com").Return(user, nil).Once()

	got, err := suite.service.Authenticate(ctx, "asha@example.com", password)

	suite.Require().NoError(err)
	suite.Equal(user.ID, got.ID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownEmail() {
	ctx := context.Background()
	suite.mockRepo.On("FindActiveByEmail", ctx, "nobody@example.com").Return(nil, nil).Once()

	got, err := suite.service.Authenticate(ctx, "nobody@example.com", "whatever")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("the-real-password")
	suite.Require().NoError(err)

	user := &domain.User{Email: "asha@example.com", PasswordHash: hash}
	suite.mockRepo.On("FindActiveByEmail", ctx, "asha@example.com").Return(user, nil).Once()

	got, err := suite.service.Authenticate(ctx, "asha@example.com", "a-guess")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

// --- Register ---
func (suite *UserServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := dto.SignupRequest{Name: "Asha", Email: "asha@example.com", Password: "s3cret"}

	suite.mockRepo.On("FindActiveByEmail", ctx, req.Email).Return(nil, nil).Once()
	suite.mockRepo.On("Save", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == req.Email && u.PasswordHash != req.Password && u.Active
	})).Return(nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(user.ID)
	suite.Equal(req.Name, user.Name)
	suite.NotEqual(req.Password, user.PasswordHash)
	suite.True(user.Active)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()
	existing := &domain.User{Email: "asha@example.com"}
	suite.mockRepo.On("FindActiveByEmail", ctx, "asha@example.com").Return(existing, nil).Once()

	user, err := suite.service.Register(ctx, dto.SignupRequest{Name: "Asha", Email: "asha@example.com", Password: "pw"})

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestRegister_SendsWelcomeMail() {
	ctx := context.Background()
	mailer := new(MockMailer)
	service := services.NewUserService(suite.mockRepo, mailer)

	suite.mockRepo.On("FindActiveByEmail", ctx, "asha@example.com").Return(nil, nil).Once()
	suite.mockRepo.On("Save", ctx, mock.Anything).Return(nil).Once()
	mailer.On("Send", ctx, "asha@example.com", mock.Anything, mock.Anything).Return(nil).Once()

	_, err := service.Register(ctx, dto.SignupRequest{Name: "Asha", Email: "asha@example.com", Password: "pw"})

	suite.Require().NoError(err)
	mailer.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_MailFailureDoesNotFailSignup() {
	ctx := context.Background()
	mailer := new(MockMailer)
	service := services.NewUserService(suite.mockRepo, mailer)

	suite.mockRepo.On("FindActiveByEmail", ctx, "asha@example.com").Return(nil, nil).Once()
	suite.mockRepo.On("Save", ctx, mock.Anything).Return(nil).Once()
	mailer.On("Send", ctx, "asha@example.com", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	user, err := service.Register(ctx, dto.SignupRequest{Name: "Asha", Email: "asha@example.com", Password: "pw"})

	suite.Require().NoError(err)
	suite.NotNil(user)
}

// --- GetOrProvisionByEmail ---
func (suite *UserServiceTestSuite) TestGetOrProvision_ExistingAccount() {
	ctx := context.Background()
	user := &domain.User{Name: "Asha", Email: "asha@example.com"}
	user.ID = uuid.NewString()

	suite.mockRepo.On("FindActiveByEmail", ctx, "asha@example.com").Return(user, nil).Once()

	got, err := suite.service.GetOrProvisionByEmail(ctx, "asha@example.com", "Asha")

	suite.Require().NoError(err)
	suite.Equal(user.ID, got.ID)
	suite.mockRepo.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestGetOrProvision_CreatesAccount() {
	ctx := context.Background()
	// First lookup for the provision check, second inside Register.
	suite.mockRepo.On("FindActiveByEmail", ctx, "new@example.com").Return(nil, nil).Twice()
	suite.mockRepo.On("Save", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "new@example.com" && u.Name == "New Person" && u.PasswordHash != ""
	})).Return(nil).Once()

	got, err := suite.service.GetOrProvisionByEmail(ctx, "new@example.com", "New Person")

	suite.Require().NoError(err)
	suite.NotEmpty(got.ID)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- GetUserByID ---
func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	suite.mockRepo.On("FindByID", ctx, userID).Return(nil, nil).Once()

	user, err := suite.service.GetUserByID(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
