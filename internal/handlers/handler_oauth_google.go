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

// googleAuthHandler handles social login with Google-issued ID tokens.
type googleAuthHandler struct {
	userService   portssvc.UserSvcFacade
	tokenService  portssvc.TokenSvcFacade
	googleService portssvc.GoogleAuthSvcFacade
}

func registerGoogleAuthRoutes(rg *gin.Engine, limit gin.HandlerFunc, userService portssvc.UserSvcFacade, tokenService portssvc.TokenSvcFacade, googleService portssvc.GoogleAuthSvcFacade) {
	h := &googleAuthHandler{
		userService:   userService,
		tokenService:  tokenService,
		googleService: googleService,
	}
	rg.POST("/crm/auth/google", limit, h.googleLogin)
}

// googleLogin godoc
// @Summary Log in with a Google account
// @Description Verifies a Google ID token, provisioning an account on first login, and returns a signed access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.GoogleLoginRequest true "Google ID token"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "ID token rejected"
// @Failure 500 {object} ErrorResponse
// @Router /crm/auth/google [post]
func (h *googleAuthHandler) googleLogin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	payload, err := h.googleService.ValidateIDToken(c.Request.Context(), req.IDToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid Google ID token"})
			return
		}
		logger.Error("Google token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to verify Google token"})
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Google token carries no email"})
		return
	}

	user, err := h.userService.GetOrProvisionByEmail(c.Request.Context(), email, name)
	if err != nil {
		logger.Error("Failed to resolve account for Google login", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to log in"})
		return
	}

	token, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		User:  dto.ToAuthUser(user),
		Token: token,
	})
}
