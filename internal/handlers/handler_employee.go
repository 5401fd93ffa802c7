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

type employeeHandler struct {
	svc portssvc.EmployeeSvcFacade
}

var employeeFilters = []filterField{
	{param: "name", column: "em.name", substring: true},
	{param: "email", column: "em.email", substring: true},
	{param: "department", column: "pr.department", substring: true},
}

func registerEmployeeRoutes(rg *gin.RouterGroup, svc portssvc.EmployeeSvcFacade) {
	h := &employeeHandler{svc: svc}

	employees := rg.Group("/crm/employees")
	{
		employees.GET("", h.list)
		employees.GET("/:id", h.getByID)
		employees.POST("", h.create)
		employees.PUT("/:id", h.update)
		employees.DELETE("/:id", h.remove)
	}
}

func (h *employeeHandler) bindListParams(c *gin.Context) (dto.ListParams, error) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return params, err
	}
	for _, f := range employeeFilters {
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
// @Summary List employees
// @Description Returns a page of employees with their profiles expanded.
// @Tags employees
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Param name query string false "Substring filter on name"
// @Param email query string false "Substring filter on email"
// @Param department query string false "Substring filter on department"
// @Success 200 {object} dto.Page[domain.Employee]
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /crm/employees [get]
func (h *employeeHandler) list(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, err := h.bindListParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list employees", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list employees"})
		return
	}
	c.JSON(http.StatusOK, page)
}

// getByID godoc
// @Summary Get an employee
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} domain.Employee
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /crm/employees/{id} [get]
func (h *employeeHandler) getByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	employee, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Employee not found"})
			return
		}
		logger.Error("Failed to get employee", slog.String("id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve employee"})
		return
	}
	c.JSON(http.StatusOK, employee)
}

// create godoc
// @Summary Create an employee
// @Description Persists the area, profile, authorization and employee records in one transaction.
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.ResultResponse[domain.Employee]
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "An active employee with this identity already exists"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /crm/employees [post]
func (h *employeeHandler) create(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	employee, err := h.svc.Create(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Employee already exists"})
			return
		}
		logger.Error("Failed to create employee", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save employee"})
		return
	}
	c.JSON(http.StatusCreated, dto.ResultResponse[*domain.Employee]{
		Message: "Employee information saved successfully",
		Result:  employee,
	})
}

// update godoc
// @Summary Update an employee
// @Description Rewrites the employee's personal details; profile and authorization are managed separately.
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param employee body dto.EmployeePersonal true "Personal details"
// @Success 200 {object} dto.ResultResponse[domain.Employee]
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /crm/employees/{id} [put]
func (h *employeeHandler) update(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	var req dto.EmployeePersonal
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	employee, err := h.svc.Update(c.Request.Context(), id, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Employee not found"})
			return
		}
		logger.Error("Failed to update employee", slog.String("id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update employee"})
		return
	}
	c.JSON(http.StatusOK, dto.ResultResponse[*domain.Employee]{
		Message: "Employee information updated successfully",
		Result:  employee,
	})
}

// remove godoc
// @Summary Delete an employee
// @Description Soft-deletes the employee together with its profile and authorization.
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /crm/employees/{id} [delete]
func (h *employeeHandler) remove(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	deleterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id, deleterUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Employee not found"})
			return
		}
		logger.Error("Failed to delete employee", slog.String("id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete employee"})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Employee deleted successfully"})
}
