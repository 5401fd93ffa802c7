package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pmapp/personal_management_app/internal/apperrors"
	"github.com/pmapp/personal_management_app/internal/core/domain"
	portsrepo "github.com/pmapp/personal_management_app/internal/core/ports/repositories"
	ports "github.com/pmapp/personal_management_app/internal/core/ports/services"
	"github.com/pmapp/personal_management_app/internal/dto"
	"github.com/pmapp/personal_management_app/internal/middleware"
	"github.com/pmapp/personal_management_app/internal/utils"
)

type userService struct {
	repo   portsrepo.UserRepository
	mailer ports.Mailer
}

// NewUserService creates the account management service. mailer may be nil
// when outbound mail is not configured.
func NewUserService(repo portsrepo.UserRepository, mailer ports.Mailer) ports.UserSvcFacade {
	return &userService{repo: repo, mailer: mailer}
}

var _ ports.UserSvcFacade = (*userService)(nil)

func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.repo.FindActiveByEmail(ctx, email)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("failed to look up account for login", "error", err)
		return nil, err
	}
	// Unknown email and wrong password are indistinguishable to the caller.
	if user == nil || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func (s *userService) Register(ctx context.Context, req dto.SignupRequest) (*domain.User, error) {
	existing, err := s.repo.FindActiveByEmail(ctx, req.Email)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("failed to check for existing account", "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicate
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to hash password", err)
	}

	user := &domain.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Photo:        req.Photo,
		DeviceIDs:    []string{},
	}
	user.ID = uuid.NewString()
	user.StampCreated(user.ID, time.Now())

	if err := s.repo.Save(ctx, user); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("failed to save new account", "error", err)
		return nil, err
	}

	s.sendWelcomeMail(ctx, user)
	return user, nil
}

// sendWelcomeMail is best effort; a mail failure never fails the signup.
func (s *userService) sendWelcomeMail(ctx context.Context, user *domain.User) {
	if s.mailer == nil {
		return
	}
	body := "Hi " + user.Name + ",\n\nYour Personal Manager account is ready.\n"
	if err := s.mailer.Send(ctx, user.Email, "Welcome to Personal Manager", body); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("failed to send welcome mail", "error", err)
	}
}

// GetOrProvisionByEmail backs social login. A verified identity without an
// account gets one with a random secret; the secret is never disclosed, so
// the account is only reachable through social login until a password reset.
func (s *userService) GetOrProvisionByEmail(ctx context.Context, email, name string) (*domain.User, error) {
	user, err := s.repo.FindActiveByEmail(ctx, email)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("failed to look up account for social login", "error", err)
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	secret, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to generate account secret", err)
	}
	return s.Register(ctx, dto.SignupRequest{
		Name:     name,
		Email:    email,
		Password: secret,
	})
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}
