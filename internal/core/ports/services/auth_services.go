package services

import (
	"context"

	"github.com/pmapp/personal_management_app/internal/core/domain"
	"google.golang.org/api/idtoken"
)

// TokenSvcFacade issues signed access tokens.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, error)
}

// GoogleAuthSvcFacade verifies Google-issued identity tokens.
type GoogleAuthSvcFacade interface {
	ValidateIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
