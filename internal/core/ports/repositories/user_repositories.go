package repositories

import (
	"context"

	"github.com/pmapp/personal_management_app/internal/core/domain"
)

// UserRepository persists application accounts. Lookups fill DeviceIDs so
// auth responses can echo the registered devices.
type UserRepository interface {
	ResourceRepository[domain.User]

	// FindActiveByEmail returns nil, nil when no active account matches.
	FindActiveByEmail(ctx context.Context, email string) (*domain.User, error)
}

// DeviceRepository persists registered client devices.
type DeviceRepository interface {
	Save(ctx context.Context, device *domain.Device) error
	FindDevicesByUserID(ctx context.Context, userID string) ([]domain.Device, error)
}
