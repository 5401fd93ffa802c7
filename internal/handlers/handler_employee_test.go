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

type EmployeeHandlerTestSuite struct {
	suite.Suite
}

func (suite *EmployeeHandlerTestSuite) authorizedRequest(router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(suite.T()))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func employeePersonal() dto.EmployeePersonal {
	return dto.EmployeePersonal{
		Name:  "Asha Rao",
		Email: "asha@example.com",
		Phone: dto.EmployeePhone{Primary: "9876543210"},
	}
}

func (suite *EmployeeHandlerTestSuite) TestUpdate_Success() {
	router, mocks := newTestRouter(suite.T())

	updated := &domain.Employee{Name: "Asha Rao", Email: "asha@example.com"}
	updated.ID = "emp-1"

	mocks.Employees.On("Update", mock.Anything, "emp-1", mock.MatchedBy(func(req dto.EmployeePersonal) bool {
		return req.Name == "Asha Rao" && req.Phone.Primary == "9876543210"
	}), testUserID).Return(updated, nil).Once()

	w := suite.authorizedRequest(router, http.MethodPut, "/crm/employees/emp-1", employeePersonal())

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Employee information updated successfully")
	mocks.Employees.AssertExpectations(suite.T())
}

func (suite *EmployeeHandlerTestSuite) TestUpdate_NotFound() {
	router, mocks := newTestRouter(suite.T())

	mocks.Employees.On("Update", mock.Anything, "missing-id", mock.Anything, testUserID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.authorizedRequest(router, http.MethodPut, "/crm/employees/missing-id", employeePersonal())

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "Employee not found")
}

func (suite *EmployeeHandlerTestSuite) TestUpdate_RequiresAuth() {
	router, mocks := newTestRouter(suite.T())

	payload, err := json.Marshal(employeePersonal())
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPut, "/crm/employees/emp-1", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	mocks.Employees.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EmployeeHandlerTestSuite) TestUpdate_MissingRequiredFields() {
	router, mocks := newTestRouter(suite.T())

	w := suite.authorizedRequest(router, http.MethodPut, "/crm/employees/emp-1", map[string]string{"name": "Asha"})

	suite.Equal(http.StatusBadRequest, w.Code)
	mocks.Employees.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EmployeeHandlerTestSuite) TestDelete_NotFound() {
	router, mocks := newTestRouter(suite.T())

	mocks.Employees.On("Delete", mock.Anything, "missing-id", testUserID).
		Return(apperrors.ErrNotFound).Once()

	w := suite.authorizedRequest(router, http.MethodDelete, "/crm/employees/missing-id", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "Employee not found")
}

func TestEmployeeHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeHandlerTestSuite))
}
