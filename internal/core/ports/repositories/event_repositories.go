package repositories

import (
	"context"
	"time"

	"github.com/pmapp/personal_management_app/internal/core/domain"
)

// EventRepository persists calendar events and serves the notification
// dispatcher's time-window query.
type EventRepository interface {
	ResourceRepository[domain.Event]

	// FindStartingBetween returns active events with a start time in
	// [from, to).
	FindStartingBetween(ctx context.Context, from, to time.Time) ([]domain.Event, error)
}
