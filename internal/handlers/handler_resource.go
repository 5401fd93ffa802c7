package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pmapp/personal_management_app/internal/apperrors"
	portssvc "github.com/pmapp/personal_management_app/internal/core/ports/services"
	"github.com/pmapp/personal_management_app/internal/dto"
	"github.com/pmapp/personal_management_app/internal/middleware"
)

// filterField maps a query parameter onto a database column. Substring
// filters match case-insensitively anywhere in the column value.
type filterField struct {
	param     string
	column    string
	substring bool
}

// resourceHandler serves the uniform list/get/create/update/delete routes for
// a plain resource. Composite resources (expenditures, purchases, employees)
// have dedicated handlers instead.
type resourceHandler[T any] struct {
	svc     portssvc.ResourceSvcFacade[T]
	name    string
	filters []filterField
}

// registerResourceRoutes mounts the standard CRUD routes for one resource
// under path. name is the display name used in confirmation messages.
func registerResourceRoutes[T any](rg *gin.RouterGroup, path, name string, svc portssvc.ResourceSvcFacade[T], filters []filterField) {
	h := &resourceHandler[T]{svc: svc, name: name, filters: filters}

	group := rg.Group(path)
	{
		group.GET("", h.list)
		group.GET("/:id", h.getByID)
		group.POST("", h.create)
		group.PUT("/:id", h.update)
		group.DELETE("/:id", h.remove)
	}
}

// bindListParams collects pagination plus the resource's declared filter
// parameters from the query string.
func (h *resourceHandler[T]) bindListParams(c *gin.Context) (dto.ListParams, error) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return params, err
	}
	for _, f := range h.filters {
		value := c.Query(f.param)
		if value == "" {
			continue
		}
		if f.substring {
			if params.Substring == nil {
				params.Substring = map[string]string{}
			}
			params.Substring[f.column] = value
		} else {
			if params.Exact == nil {
				params.Exact = map[string]string{}
			}
			params.Exact[f.column] = value
		}
	}
	return params, nil
}

func (h *resourceHandler[T]) list(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, err := h.bindListParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list resources", slog.String("resource", h.name), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list " + h.name})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *resourceHandler[T]) getByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	entity, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": h.name + " not found"})
			return
		}
		logger.Error("Failed to get resource", slog.String("resource", h.name), slog.String("id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve " + h.name})
		return
	}
	c.JSON(http.StatusOK, entity)
}

func (h *resourceHandler[T]) create(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var entity T
	if err := c.ShouldBindJSON(&entity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.svc.Create(c.Request.Context(), &entity, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": h.name + " already exists"})
			return
		}
		logger.Error("Failed to create resource", slog.String("resource", h.name), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create " + h.name})
		return
	}
	c.JSON(http.StatusCreated, dto.ResultResponse[*T]{
		Message: h.name + " created successfully",
		Result:  created,
	})
}

func (h *resourceHandler[T]) update(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	var entity T
	if err := c.ShouldBindJSON(&entity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), id, &entity, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": h.name + " not found"})
			return
		}
		logger.Error("Failed to update resource", slog.String("resource", h.name), slog.String("id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update " + h.name})
		return
	}
	c.JSON(http.StatusOK, dto.ResultResponse[*T]{
		Message: h.name + " updated successfully",
		Result:  updated,
	})
}

func (h *resourceHandler[T]) remove(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	deleterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id, deleterUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": h.name + " not found"})
			return
		}
		logger.Error("Failed to delete resource", slog.String("resource", h.name), slog.String("id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete " + h.name})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: h.name + " deleted successfully"})
}
