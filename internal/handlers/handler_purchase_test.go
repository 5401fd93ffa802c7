package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pmapp/personal_management_app/internal/apperrors"
	"github.com/pmapp/personal_management_app/internal/core/domain"
	"github.com/pmapp/personal_management_app/internal/dto"
)

type PurchaseHandlerTestSuite struct {
	suite.Suite
}

func (suite *PurchaseHandlerTestSuite) authorizedRequest(router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
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

func (suite *PurchaseHandlerTestSuite) TestCreate_MessageCarriesPurpose() {
	router, mocks := newTestRouter(suite.T())

	saved := &domain.Purchase{ExpenditureID: "exp-1", Items: json.RawMessage(`[]`)}
	saved.ID = "pur-1"

	mocks.Purchases.On("Create", mock.Anything, mock.MatchedBy(func(req dto.SavePurchaseRequest) bool {
		return req.Purpose == "Groceries"
	}), testUserID).Return(saved, nil).Once()

	w := suite.authorizedRequest(router, http.MethodPost, "/purchases", dto.SavePurchaseRequest{
		Date:    time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Place:   "Supermarket",
		Purpose: "Groceries",
		Items:   json.RawMessage(`[{"name":"milk"}]`),
	})

	suite.Equal(http.StatusCreated, w.Code)
	suite.Contains(w.Body.String(), "Groceries information saved successfully")
	mocks.Purchases.AssertExpectations(suite.T())
}

func (suite *PurchaseHandlerTestSuite) TestList_RequiresAuth() {
	router, mocks := newTestRouter(suite.T())

	req := httptest.NewRequest(http.MethodGet, "/purchases", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	mocks.Purchases.AssertNotCalled(suite.T(), "List", mock.Anything, mock.Anything)
}

func (suite *PurchaseHandlerTestSuite) TestGetByID_NotFound() {
	router, mocks := newTestRouter(suite.T())

	mocks.Purchases.On("GetByID", mock.Anything, "missing-id").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.authorizedRequest(router, http.MethodGet, "/purchases/missing-id", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "Purchase not found")
}

func (suite *PurchaseHandlerTestSuite) TestUpdate_MessageCarriesPurpose() {
	router, mocks := newTestRouter(suite.T())

	updated := &domain.Purchase{ExpenditureID: "exp-1", Items: json.RawMessage(`[]`)}
	updated.ID = "pur-1"

	mocks.Purchases.On("Update", mock.Anything, "pur-1", mock.Anything, testUserID).Return(updated, nil).Once()

	w := suite.authorizedRequest(router, http.MethodPut, "/purchases/pur-1", dto.SavePurchaseRequest{
		Date:    time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
		Place:   "Supermarket",
		Purpose: "Groceries",
		Items:   json.RawMessage(`[]`),
	})

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Groceries information updated successfully")
}

func (suite *PurchaseHandlerTestSuite) TestDelete_Success() {
	router, mocks := newTestRouter(suite.T())

	mocks.Purchases.On("Delete", mock.Anything, "pur-1", testUserID).Return(nil).Once()

	w := suite.authorizedRequest(router, http.MethodDelete, "/purchases/pur-1", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Purchase deleted successfully")
}

func TestPurchaseHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PurchaseHandlerTestSuite))
}
