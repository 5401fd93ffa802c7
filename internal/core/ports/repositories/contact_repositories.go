package repositories

import (
	"context"

	"github.com/pmapp/personal_management_app/internal/core/domain"
)

// ContactRepository persists address-book contacts.
type ContactRepository interface {
	ResourceRepository[domain.Contact]

	// FindActiveByNameAndMobile returns nil, nil when no active contact
	// matches the firstname+lastname+mobile combination.
	FindActiveByNameAndMobile(ctx context.Context, firstname, lastname, mobile string) (*domain.Contact, error)
}
