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

type pushHandler struct {
	svc portssvc.DeviceSvcFacade
}

func registerPushRoutes(rg *gin.RouterGroup, svc portssvc.DeviceSvcFacade) {
	h := &pushHandler{svc: svc}
	rg.POST("/push/save-device-information", h.saveDevice)
}

// saveDevice godoc
// @Summary Register a device
// @Description Stores a client device against an account so event notifications can reach it.
// @Tags push
// @Accept json
// @Produce json
// @Param device body dto.SaveDeviceRequest true "Device details"
// @Success 201 {object} dto.SaveDeviceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Owning account not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /push/save-device-information [post]
func (h *pushHandler) saveDevice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	_, user, err := h.svc.Register(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
			return
		}
		logger.Error("Failed to register device", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save device information"})
		return
	}

	c.JSON(http.StatusCreated, dto.SaveDeviceResponse{
		Message: "Device information saved successfully",
		User: dto.DeviceOwner{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	})
}
