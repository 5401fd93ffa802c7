package services

import (
	"context"

	"github.com/pmapp/personal_management_app/internal/apperrors"
	"github.com/pmapp/personal_management_app/internal/core/domain"
	portsrepo "github.com/pmapp/personal_management_app/internal/core/ports/repositories"
	ports "github.com/pmapp/personal_management_app/internal/core/ports/services"
	"github.com/pmapp/personal_management_app/internal/middleware"
)

// contactService layers a duplicate check over the generic resource service:
// two active contacts may not share the same name and mobile number.
type contactService struct {
	ports.ResourceSvcFacade[domain.Contact]
	repo portsrepo.ContactRepository
}

// NewContactService creates the contact resource service.
func NewContactService(repo portsrepo.ContactRepository) ports.ResourceSvcFacade[domain.Contact] {
	return &contactService{
		ResourceSvcFacade: NewResourceService[domain.Contact, *domain.Contact](repo),
		repo:              repo,
	}
}

func (s *contactService) Create(ctx context.Context, contact *domain.Contact, creatorUserID string) (*domain.Contact, error) {
	existing, err := s.repo.FindActiveByNameAndMobile(ctx, contact.Firstname, contact.Lastname, contact.Mobile)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("failed to check for existing contact", "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicate
	}
	return s.ResourceSvcFacade.Create(ctx, contact, creatorUserID)
}
