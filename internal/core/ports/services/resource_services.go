package services

import (
	"context"

	"github.com/pmapp/personal_management_app/internal/dto"
)

// ResourceSvcFacade is the uniform list/get/create/update/delete contract
// exposed by every plain resource service. Entities with composite write
// behaviour get their own facade instead of special cases inside a shared
// one.
type ResourceSvcFacade[T any] interface {
	List(ctx context.Context, params dto.ListParams) (*dto.Page[T], error)
	GetByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, entity *T, creatorUserID string) (*T, error)
	Update(ctx context.Context, id string, entity *T, updaterUserID string) (*T, error)
	Delete(ctx context.Context, id string, deleterUserID string) error
}
