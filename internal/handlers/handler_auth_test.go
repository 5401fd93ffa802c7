package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pmapp/personal_management_app/internal/apperrors"
	"github.com/pmapp/personal_management_app/internal/core/domain"
	"github.com/pmapp/personal_management_app/internal/dto"
)

type AuthHandlerTestSuite struct {
	suite.Suite
}

func (suite *AuthHandlerTestSuite) postJSON(path string, body any) *httptest.ResponseRecorder {
	router, _ := newTestRouter(suite.T())
	return suite.postJSONTo(router, path, body)
}

func (suite *AuthHandlerTestSuite) postJSONTo(router http.Handler, path string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	router, mocks := newTestRouter(suite.T())

	user := &domain.User{Name: "Asha", Email: "asha@example.com"}
	user.ID = testUserID

	mocks.User.On("Authenticate", mock.Anything, "asha@example.com", "pw").Return(user, nil).Once()
	mocks.Token.On("GenerateAccessToken", mock.Anything, user).Return("signed-token", nil).Once()

	w := suite.postJSONTo(router, "/auth/login", dto.LoginRequest{Email: "asha@example.com", Password: "pw"})

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.AuthResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("signed-token", resp.Token)
	suite.Equal(testUserID, resp.User.ID)
	suite.Equal("asha@example.com", resp.User.Email)
	suite.NotNil(resp.User.Devices)
	mocks.User.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestLogin_InvalidCredentials() {
	router, mocks := newTestRouter(suite.T())

	mocks.User.On("Authenticate", mock.Anything, "asha@example.com", "wrong").
		Return(nil, apperrors.ErrUnauthorized).Once()

	w := suite.postJSONTo(router, "/auth/login", dto.LoginRequest{Email: "asha@example.com", Password: "wrong"})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Invalid email or password")
}

func (suite *AuthHandlerTestSuite) TestLogin_MalformedBody() {
	w := suite.postJSON("/auth/login", map[string]string{"email": "not-an-email"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *AuthHandlerTestSuite) TestSignup_Success() {
	router, mocks := newTestRouter(suite.T())

	user := &domain.User{Name: "Asha", Email: "asha@example.com"}
	user.ID = testUserID

	mocks.User.On("Register", mock.Anything, mock.MatchedBy(func(req dto.SignupRequest) bool {
		return req.Email == "asha@example.com" && req.Name == "Asha"
	})).Return(user, nil).Once()
	mocks.Token.On("GenerateAccessToken", mock.Anything, user).Return("signed-token", nil).Once()

	w := suite.postJSONTo(router, "/auth/signup", dto.SignupRequest{
		Name: "Asha", Email: "asha@example.com", Password: "pw",
	})

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.AuthResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Account created successfully", resp.Message)
	suite.Equal("signed-token", resp.Token)
	mocks.User.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestSignup_DuplicateEmail() {
	router, mocks := newTestRouter(suite.T())

	mocks.User.On("Register", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.postJSONTo(router, "/auth/signup", dto.SignupRequest{
		Name: "Asha", Email: "asha@example.com", Password: "pw",
	})

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "already exists")
}

func (suite *AuthHandlerTestSuite) TestUnknownRoute() {
	router, _ := newTestRouter(suite.T())

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "Route not found")
}

func (suite *AuthHandlerTestSuite) TestHome_Public() {
	router, _ := newTestRouter(suite.T())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Personal Manager APIs working..!")
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
