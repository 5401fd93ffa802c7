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

const timesheetColumns = `timesheet_id, description, date, task_ids, is_active, created_at, created_by, last_updated_at, last_updated_by`

var timesheetSortable = map[string]string{
	"date":       "date",
	"created_at": "created_at",
}

type TimesheetRepository struct {
	BaseRepository
}

func NewTimesheetRepository(pool *pgxpool.Pool) *TimesheetRepository {
	return &TimesheetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ResourceRepository[domain.Timesheet] = (*TimesheetRepository)(nil)

func scanTimesheet(row pgx.Row) (domain.Timesheet, error) {
	var t domain.Timesheet
	err := row.Scan(
		&t.ID,
		&t.Description,
		&t.Date,
		&t.TaskIDs,
		&t.Active,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	if t.TaskIDs == nil {
		t.TaskIDs = []string{}
	}
	return t, err
}

func (r *TimesheetRepository) Save(ctx context.Context, sheet *domain.Timesheet) error {
	query := `
        INSERT INTO timesheets (` + timesheetColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.Pool.Exec(ctx, query,
		sheet.ID,
		sheet.Description,
		sheet.Date,
		sheet.TaskIDs,
		sheet.Active,
		sheet.CreatedAt,
		sheet.CreatedBy,
		sheet.LastUpdatedAt,
		sheet.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save timesheet: %w", err)
	}
	return nil
}

func (r *TimesheetRepository) FindByID(ctx context.Context, timesheetID string) (*domain.Timesheet, error) {
	query := `SELECT ` + timesheetColumns + ` FROM timesheets WHERE timesheet_id = $1;`
	sheet, err := scanTimesheet(r.Pool.QueryRow(ctx, query, timesheetID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find timesheet by ID: %w", err)
	}
	return &sheet, nil
}

func (r *TimesheetRepository) List(ctx context.Context, params dto.ListParams) ([]domain.Timesheet, int64, error) {
	return listRows(ctx, r.Pool, "timesheets", timesheetColumns, params, timesheetSortable, "date",
		func(rows pgx.Rows) (domain.Timesheet, error) { return scanTimesheet(rows) })
}

func (r *TimesheetRepository) Update(ctx context.Context, sheet *domain.Timesheet) error {
	query := `
        UPDATE timesheets
        SET description = $1, date = $2, task_ids = $3, last_updated_at = $4, last_updated_by = $5
        WHERE timesheet_id = $6 AND is_active = true;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		sheet.Description,
		sheet.Date,
		sheet.TaskIDs,
		sheet.LastUpdatedAt,
		sheet.LastUpdatedBy,
		sheet.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update timesheet: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *TimesheetRepository) MarkDeleted(ctx context.Context, timesheetID string, deletedAt time.Time, deleterUserID string) error {
	query := `
        UPDATE timesheets
        SET is_active = false, last_updated_at = $1, last_updated_by = $2
        WHERE timesheet_id = $3 AND is_active = true;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, deletedAt, deleterUserID, timesheetID)
	if err != nil {
		return fmt.Errorf("failed to mark timesheet as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
