package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pmapp/personal_management_app/internal/apperrors"
	portsrepo "github.com/pmapp/personal_management_app/internal/core/ports/repositories"
	ports "github.com/pmapp/personal_management_app/internal/core/ports/services"
	"github.com/pmapp/personal_management_app/internal/dto"
	"github.com/pmapp/personal_management_app/internal/middleware"
)

// resourceService is the shared implementation behind every plain resource
// facade. PT constrains the entity pointer to the audit-stamping interface so
// identifier assignment and stamping need no per-entity code.
type resourceService[T any, PT interface {
	*T
	portsrepo.Auditable
}] struct {
	repo portsrepo.ResourceRepository[T]
}

// NewResourceService wires a repository into the uniform resource facade.
func NewResourceService[T any, PT interface {
	*T
	portsrepo.Auditable
}](repo portsrepo.ResourceRepository[T]) ports.ResourceSvcFacade[T] {
	return &resourceService[T, PT]{repo: repo}
}

func (s *resourceService[T, PT]) List(ctx context.Context, params dto.ListParams) (*dto.Page[T], error) {
	params.Normalize()
	docs, total, err := s.repo.List(ctx, params)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("failed to list resources", "error", err)
		return nil, err
	}
	return dto.NewPage(docs, total, params.Page, params.Limit), nil
}

func (s *resourceService[T, PT]) GetByID(ctx context.Context, id string) (*T, error) {
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("failed to fetch resource", "id", id, "error", err)
		return nil, err
	}
	if entity == nil {
		return nil, apperrors.ErrNotFound
	}
	return entity, nil
}

func (s *resourceService[T, PT]) Create(ctx context.Context, entity *T, creatorUserID string) (*T, error) {
	ptr := PT(entity)
	ptr.SetEntityID(uuid.NewString())
	ptr.StampCreated(creatorUserID, time.Now())

	if err := s.repo.Save(ctx, entity); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("failed to create resource", "error", err)
		return nil, err
	}
	return entity, nil
}

func (s *resourceService[T, PT]) Update(ctx context.Context, id string, entity *T, updaterUserID string) (*T, error) {
	ptr := PT(entity)
	ptr.SetEntityID(id)
	ptr.StampUpdated(updaterUserID, time.Now())

	if err := s.repo.Update(ctx, entity); err != nil {
		if err != apperrors.ErrNotFound {
			middleware.GetLoggerFromCtx(ctx).Error("failed to update resource", "id", id, "error", err)
		}
		return nil, err
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperrors.ErrNotFound
	}
	return updated, nil
}

func (s *resourceService[T, PT]) Delete(ctx context.Context, id string, deleterUserID string) error {
	if err := s.repo.MarkDeleted(ctx, id, time.Now(), deleterUserID); err != nil {
		if err != apperrors.ErrNotFound {
			middleware.GetLoggerFromCtx(ctx).Error("failed to delete resource", "id", id, "error", err)
		}
		return err
	}
	return nil
}
