package services

import (
	"context"

	"github.com/pmapp/personal_management_app/internal/core/domain"
	"github.com/pmapp/personal_management_app/internal/dto"
)

// UserSvcFacade manages application accounts.
type UserSvcFacade interface {
	// Authenticate verifies email+password against the stored hash. Any
	// mismatch, including an unknown email, yields apperrors.ErrUnauthorized.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)

	// Register creates an account, hashing the password. A second active
	// account with the same email yields apperrors.ErrDuplicate.
	Register(ctx context.Context, req dto.SignupRequest) (*domain.User, error)

	// GetOrProvisionByEmail returns the active account for email, creating
	// one with a random secret when absent (social-login auto-provisioning).
	GetOrProvisionByEmail(ctx context.Context, email, name string) (*domain.User, error)

	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
