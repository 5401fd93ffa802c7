package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pmapp/personal_management_app/internal/core/domain"
	portsrepo "github.com/pmapp/personal_management_app/internal/core/ports/repositories"
)

const deviceColumns = `device_id, user_id, model, platform, uuid, version, manufacturer, serial, push_token, is_active, created_at, created_by, last_updated_at, last_updated_by`

type DeviceRepository struct {
	BaseRepository
}

func NewDeviceRepository(pool *pgxpool.Pool) *DeviceRepository {
	return &DeviceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DeviceRepository = (*DeviceRepository)(nil)

func scanDevice(row pgx.Row) (domain.Device, error) {
	var d domain.Device
	err := row.Scan(
		&d.ID,
		&d.UserID,
		&d.Model,
		&d.Platform,
		&d.UUID,
		&d.Version,
		&d.Manufacturer,
		&d.Serial,
		&d.PushToken,
		&d.Active,
		&d.CreatedAt,
		&d.CreatedBy,
		&d.LastUpdatedAt,
		&d.LastUpdatedBy,
	)
	return d, err
}

func (r *DeviceRepository) Save(ctx context.Context, device *domain.Device) error {
	query := `
        INSERT INTO devices (` + deviceColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
    `
	_, err := r.Pool.Exec(ctx, query,
		device.ID,
		device.UserID,
		device.Model,
		device.Platform,
		device.UUID,
		device.Version,
		device.Manufacturer,
		device.Serial,
		device.PushToken,
		device.Active,
		device.CreatedAt,
		device.CreatedBy,
		device.LastUpdatedAt,
		device.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save device: %w", err)
	}
	return nil
}

func (r *DeviceRepository) FindDevicesByUserID(ctx context.Context, userID string) ([]domain.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices WHERE user_id = $1 AND is_active = true ORDER BY created_at;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query devices: %w", err)
	}
	defer rows.Close()

	devices := []domain.Device{}
	for rows.Next() {
		d, err := scanDevice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan device row: %w", err)
		}
		devices = append(devices, d)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating device rows: %w", rows.Err())
	}
	return devices, nil
}
