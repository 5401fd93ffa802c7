package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pmapp/personal_management_app/internal/apperrors"
	"github.com/pmapp/personal_management_app/internal/core/domain"
	portsrepo "github.com/pmapp/personal_management_app/internal/core/ports/repositories"
	"github.com/pmapp/personal_management_app/internal/dto"
)

const eventColumns = `event_id, name, description, start_time, end_time, month_loop, all_day, is_active, created_at, created_by, last_updated_at, last_updated_by`

var eventSortable = map[string]string{
	"name":       "name",
	"start_time": "start_time",
	"created_at": "created_at",
}

type EventRepository struct {
	BaseRepository
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EventRepository = (*EventRepository)(nil)

func scanEvent(row pgx.Row) (domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Description,
		&e.StartTime,
		&e.EndTime,
		&e.MonthLoop,
		&e.AllDay,
		&e.Active,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	return e, err
}

func (r *EventRepository) Save(ctx context.Context, event *domain.Event) error {
	query := `
        INSERT INTO events (` + eventColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err := r.Pool.Exec(ctx, query,
		event.ID,
		event.Name,
		event.Description,
		event.StartTime,
		event.EndTime,
		event.MonthLoop,
		event.AllDay,
		event.Active,
		event.CreatedAt,
		event.CreatedBy,
		event.LastUpdatedAt,
		event.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, eventID string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE event_id = $1;`
	event, err := scanEvent(r.Pool.QueryRow(ctx, query, eventID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find event by ID: %w", err)
	}
	return &event, nil
}

// FindStartingBetween returns active events whose start time falls in
// [from, to). The notifier uses this to pick up events about to begin.
func (r *EventRepository) FindStartingBetween(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	query := `
        SELECT ` + eventColumns + ` FROM events
        WHERE is_active = true AND start_time >= $1 AND start_time < $2
        ORDER BY start_time;
    `
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming events: %w", err)
	}
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", rows.Err())
	}
	return events, nil
}

func (r *EventRepository) List(ctx context.Context, params dto.ListParams) ([]domain.Event, int64, error) {
	return listRows(ctx, r.Pool, "events", eventColumns, params, eventSortable, "start_time",
		func(rows pgx.Rows) (domain.Event, error) { return scanEvent(rows) })
}

func (r *EventRepository) Update(ctx context.Context, event *domain.Event) error {
	query := `
        UPDATE events
        SET name = $1, description = $2, start_time = $3, end_time = $4, month_loop = $5,
            all_day = $6, last_updated_at = $7, last_updated_by = $8
        WHERE event_id = $9 AND is_active = true;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		event.Name,
		event.Description,
		event.StartTime,
		event.EndTime,
		event.MonthLoop,
		event.AllDay,
		event.LastUpdatedAt,
		event.LastUpdatedBy,
		event.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EventRepository) MarkDeleted(ctx context.Context, eventID string, deletedAt time.Time, deleterUserID string) error {
	query := `
        UPDATE events
        SET is_active = false, last_updated_at = $1, last_updated_by = $2
        WHERE event_id = $3 AND is_active = true;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, deletedAt, deleterUserID, eventID)
	if err != nil {
		return fmt.Errorf("failed to mark event as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
