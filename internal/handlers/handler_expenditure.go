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

// expenditureHandler handles the expenditure routes. Listing is the one
// public browse endpoint; all writes require authentication.
type expenditureHandler struct {
	svc portssvc.ExpenditureSvcFacade
}

var expenditureFilters = []filterField{
	{param: "place", column: "e.place", substring: true},
	{param: "purpose", column: "e.purpose", substring: true},
}

// registerExpenditureRoutes mounts the public listing on the root engine and
// the remaining routes behind the authenticated group.
func registerExpenditureRoutes(public *gin.Engine, protected *gin.RouterGroup, svc portssvc.ExpenditureSvcFacade) {
	h := &expenditureHandler{svc: svc}

	public.GET("/expenditures", h.list)

	expenditures := protected.Group("/expenditures")
	{
		expenditures.GET("/:id", h.getByID)
		expenditures.POST("", h.create)
		expenditures.PUT("/:id", h.update)
		expenditures.DELETE("/:id", h.remove)
	}
}

func (h *expenditureHandler) bindListParams(c *gin.Context) (dto.ListParams, error) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return params, err
	}
	for _, f := range expenditureFilters {
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
// @Summary List expenditures
// @Description Returns a page of paid expenditures with payments expanded. This endpoint is public.
// @Tags expenditures
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Param place query string false "Substring filter on place"
// @Param purpose query string false "Substring filter on purpose"
// @Success 200 {object} dto.Page[domain.Expenditure]
// @Failure 500 {object} ErrorResponse
// @Router /expenditures [get]
func (h *expenditureHandler) list(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, err := h.bindListParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list expenditures", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list expenditures"})
		return
	}
	c.JSON(http.StatusOK, page)
}

// getByID godoc
// @Summary Get an expenditure
// @Tags expenditures
// @Produce json
// @Param id path string true "Expenditure ID"
// @Success 200 {object} domain.Expenditure
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenditures/{id} [get]
func (h *expenditureHandler) getByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	expenditure, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Expenditure not found"})
			return
		}
		logger.Error("Failed to get expenditure", slog.String("id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve expenditure"})
		return
	}
	c.JSON(http.StatusOK, expenditure)
}

// create godoc
// @Summary Record an expenditure
// @Description Persists the expenditure and its payment in one transaction.
// @Tags expenditures
// @Accept json
// @Produce json
// @Param expenditure body dto.SaveExpenditureRequest true "Expenditure details"
// @Success 201 {object} dto.ResultResponse[domain.Expenditure]
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenditures [post]
func (h *expenditureHandler) create(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveExpenditureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	expenditure, err := h.svc.Create(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Error("Failed to create expenditure", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save expenditure"})
		return
	}
	c.JSON(http.StatusCreated, dto.ResultResponse[*domain.Expenditure]{
		Message: "Expenditure information saved successfully",
		Result:  expenditure,
	})
}

// update godoc
// @Summary Update an expenditure
// @Tags expenditures
// @Accept json
// @Produce json
// @Param id path string true "Expenditure ID"
// @Param expenditure body dto.SaveExpenditureRequest true "Expenditure details"
// @Success 200 {object} dto.ResultResponse[domain.Expenditure]
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenditures/{id} [put]
func (h *expenditureHandler) update(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	var req dto.SaveExpenditureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	expenditure, err := h.svc.Update(c.Request.Context(), id, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Expenditure not found"})
			return
		}
		logger.Error("Failed to update expenditure", slog.String("id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update expenditure"})
		return
	}
	c.JSON(http.StatusOK, dto.ResultResponse[*domain.Expenditure]{
		Message: "Expenditure information updated successfully",
		Result:  expenditure,
	})
}

// remove godoc
// @Summary Delete an expenditure
// @Description Soft-deletes the expenditure together with its payment.
// @Tags expenditures
// @Produce json
// @Param id path string true "Expenditure ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenditures/{id} [delete]
func (h *expenditureHandler) remove(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	deleterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id, deleterUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Expenditure not found"})
			return
		}
		logger.Error("Failed to delete expenditure", slog.String("id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete expenditure"})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Expenditure deleted successfully"})
}
