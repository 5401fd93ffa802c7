package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pmapp/personal_management_app/internal/core/domain"
	portsrepo "github.com/pmapp/personal_management_app/internal/core/ports/repositories"
	ports "github.com/pmapp/personal_management_app/internal/core/ports/services"
)

type notifierService struct {
	events  portsrepo.EventRepository
	devices portsrepo.DeviceRepository
	sender  ports.PushSender
	lead    time.Duration
	logger  *slog.Logger
	now     func() time.Time
}

// NewNotifierService creates the event notification dispatcher. lead is the
// advance warning window; each pass picks up events starting between one and
// two lead intervals from now, so a pass scheduled every lead interval sees
// each event exactly once.
func NewNotifierService(events portsrepo.EventRepository, devices portsrepo.DeviceRepository, sender ports.PushSender, lead time.Duration, logger *slog.Logger) ports.NotifierSvcFacade {
	return &notifierService{
		events:  events,
		devices: devices,
		sender:  sender,
		lead:    lead,
		logger:  logger,
		now:     time.Now,
	}
}

var _ ports.NotifierSvcFacade = (*notifierService)(nil)

func (s *notifierService) DispatchUpcoming(ctx context.Context) error {
	now := s.now()
	from := now.Add(s.lead)
	to := now.Add(2 * s.lead)

	events, err := s.events.FindStartingBetween(ctx, from, to)
	if err != nil {
		s.logger.Error("failed to query upcoming events", "error", err)
		return err
	}
	if len(events) == 0 {
		return nil
	}

	for _, event := range events {
		if err := s.notifyEvent(ctx, event); err != nil {
			// Delivery is best effort; one broken event must not block the rest.
			s.logger.Error("failed to notify event", "event_id", event.ID, "error", err)
		}
	}
	return nil
}

func (s *notifierService) notifyEvent(ctx context.Context, event domain.Event) error {
	devices, err := s.devices.FindDevicesByUserID(ctx, event.CreatedBy)
	if err != nil {
		return err
	}

	body := fmt.Sprintf("%s starts at %s", event.Name, event.StartTime.Local().Format("15:04"))
	for _, device := range devices {
		if device.PushToken == "" {
			continue
		}
		if err := s.sender.Send(ctx, device.PushToken, "Upcoming event", body); err != nil {
			s.logger.Error("failed to send push notification",
				"event_id", event.ID, "device_id", device.ID, "error", err)
		}
	}
	return nil
}
