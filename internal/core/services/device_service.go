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
)

type deviceService struct {
	devices portsrepo.DeviceRepository
	users   portsrepo.UserRepository
}

// NewDeviceService creates the device registration service.
func NewDeviceService(devices portsrepo.DeviceRepository, users portsrepo.UserRepository) ports.DeviceSvcFacade {
	return &deviceService{devices: devices, users: users}
}

var _ ports.DeviceSvcFacade = (*deviceService)(nil)

// Register stores a client device against an existing account and returns
// both so the handler can echo the owner.
func (s *deviceService) Register(ctx context.Context, req dto.SaveDeviceRequest, creatorUserID string) (*domain.Device, *domain.User, error) {
	user, err := s.users.FindByID(ctx, req.User)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("failed to look up device owner", "error", err)
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, apperrors.ErrNotFound
	}

	device := &domain.Device{
		UserID:       user.ID,
		Model:        req.Model,
		Platform:     req.Platform,
		UUID:         req.UUID,
		Version:      req.Version,
		Manufacturer: req.Manufacturer,
		Serial:       req.Serial,
		PushToken:    req.PushToken,
	}
	device.ID = uuid.NewString()
	device.StampCreated(creatorUserID, time.Now())

	if err := s.devices.Save(ctx, device); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("failed to save device", "error", err)
		return nil, nil, err
	}
	return device, user, nil
}
