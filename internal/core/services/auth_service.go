package services

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/idtoken"

	"github.com/pmapp/personal_management_app/internal/apperrors"
	"github.com/pmapp/personal_management_app/internal/core/domain"
	ports "github.com/pmapp/personal_management_app/internal/core/ports/services"
	"github.com/pmapp/personal_management_app/internal/utils"
)

type tokenService struct {
	secret string
	expiry time.Duration
	issuer string
}

// NewTokenService creates the access token issuer.
func NewTokenService(secret string, expiry time.Duration, issuer string) ports.TokenSvcFacade {
	return &tokenService{secret: secret, expiry: expiry, issuer: issuer}
}

func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, error) {
	token, err := utils.GenerateJWT(user.ID, user.Email, s.secret, s.expiry, s.issuer)
	if err != nil {
		return "", apperrors.NewAppError(500, "failed to generate access token", err)
	}
	return token, nil
}

type googleAuthService struct {
	clientID string
}

// NewGoogleAuthService creates the Google ID token verifier. The audience is
// the application's OAuth client ID.
func NewGoogleAuthService(clientID string) ports.GoogleAuthSvcFacade {
	return &googleAuthService{clientID: clientID}
}

func (s *googleAuthService) ValidateIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	payload, err := idtoken.Validate(ctx, idTokenString, s.clientID)
	if err != nil {
		return nil, fmt.Errorf("invalid Google ID token: %w", apperrors.ErrUnauthorized)
	}
	return payload, nil
}
