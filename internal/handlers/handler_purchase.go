package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pmapp/personal_management_app/internal/apperrors"
	"github.com/pmapp/personal_management_app/internal/core/domain"
	portssvc "github.com/pmapp/personal_management_app/internal/core/ports/services"
	"github.com/pmapp/personal_management_app/internal/dto"
	"github.com/pmapp/personal_management_app/internal/middleware"
)

type purchaseHandler struct {
	svc portssvc.PurchaseSvcFacade
}

var purchaseFilters = []filterField{
	{param: "place", column: "e.place", substring: true},
	{param: "purpose", column: "e.purpose", substring: true},
}

func registerPurchaseRoutes(rg *gin.RouterGroup, svc portssvc.PurchaseSvcFacade) {
	h := &purchaseHandler{svc: svc}

	purchases := rg.Group("/purchases")
	{
		purchases.GET("", h.list)
		purchases.GET("/:id", h.getByID)
		purchases.POST("", h.create)
		purchases.PUT("/:id", h.update)
		purchases.DELETE("/:id", h.remove)
	}
}

func (h *purchaseHandler) bindListParams(c *gin.Context) (dto.ListParams, error) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return params, err
	}
	for _, f := range purchaseFilters {
		if value := c.Query(f.param); value != "" {
			if params.Substring == nil {
				params.Substring = map[string]string{}
			}
			params.Substring[f.column] = value
		}
	}
	return params, nil
}

// list godoc
// @Summary List purchases
// @Description Returns a page of purchases with their expenditures expanded.
// @Tags purchases
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Param place query string false "Substring filter on the expenditure place"
// @Param purpose query string false "Substring filter on the expenditure purpose"
// @Success 200 {object} dto.Page[domain.Purchase]
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /purchases [get]
func (h *purchaseHandler) list(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, err := h.bindListParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list purchases", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list purchases"})
		return
	}
	c.JSON(http.StatusOK, page)
}

// getByID godoc
// @Summary Get a purchase
// @Tags purchases
// @Produce json
// @Param id path string true "Purchase ID"
// @Success 200 {object} domain.Purchase
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /purchases/{id} [get]
func (h *purchaseHandler) getByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	purchase, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Purchase not found"})
			return
		}
		logger.Error("Failed to get purchase", slog.String("id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve purchase"})
		return
	}
	c.JSON(http.StatusOK, purchase)
}

// create godoc
// @Summary Record a purchase
// @Description Persists the purchase, its expenditure and the payment in one transaction.
// @Tags purchases
// @Accept json
// @Produce json
// @Param purchase body dto.SavePurchaseRequest true "Purchase details"
// @Success 201 {object} dto.ResultResponse[domain.Purchase]
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /purchases [post]
func (h *purchaseHandler) create(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SavePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	purchase, err := h.svc.Create(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Error("Failed to create purchase", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save purchase"})
		return
	}
	c.JSON(http.StatusCreated, dto.ResultResponse[*domain.Purchase]{
		Message: req.Purpose + " information saved successfully",
		Result:  purchase,
	})
}

// update godoc
// @Summary Update a purchase
// @Tags purchases
// @Accept json
// @Produce json
// @Param id path string true "Purchase ID"
// @Param purchase body dto.SavePurchaseRequest true "Purchase details"
// @Success 200 {object} dto.ResultResponse[domain.Purchase]
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /purchases/{id} [put]
func (h *purchaseHandler) update(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	var req dto.SavePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	purchase, err := h.svc.Update(c.Request.Context(), id, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Purchase not found"})
			return
		}
		logger.Error("Failed to update purchase", slog.String("id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update purchase"})
		return
	}
	c.JSON(http.StatusOK, dto.ResultResponse[*domain.Purchase]{
		Message: req.Purpose + " information updated successfully",
		Result:  purchase,
	})
}

// remove godoc
// @Summary Delete a purchase
// @Description Soft-deletes the purchase along with its expenditure and payment.
// @Tags purchases
// @Produce json
// @Param id path string true "Purchase ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /purchases/{id} [delete]
func (h *purchaseHandler) remove(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	deleterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id, deleterUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Purchase not found"})
			return
		}
		logger.Error("Failed to delete purchase", slog.String("id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete purchase"})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Purchase deleted successfully"})
}
