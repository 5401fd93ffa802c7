package repositories

import (
	"context"
	"time"

	"github.com/pmapp/personal_management_app/internal/dto"
)

// Auditable is satisfied by pointers to entities embedding domain.Base. The
// generic resource service uses it to assign identifiers and stamp audit
// fields without knowing the concrete entity type.
type Auditable interface {
	EntityID() string
	SetEntityID(id string)
	StampCreated(userID string, now time.Time)
	StampUpdated(userID string, now time.Time)
}

// ResourceRepository is the uniform persistence contract behind the generic
// paginated resource service. List returns the page slice plus the total
// count matching the filter. FindByID returns nil, nil when absent.
type ResourceRepository[T any] interface {
	List(ctx context.Context, params dto.ListParams) ([]T, int64, error)
	FindByID(ctx context.Context, id string) (*T, error)
	Save(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	MarkDeleted(ctx context.Context, id string, deletedAt time.Time, deleterUserID string) error
}
