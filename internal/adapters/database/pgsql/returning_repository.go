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

const returningColumns = `returning_id, date, amount, expected_return_date, payment_method, person, purpose, type, is_active, created_at, created_by, last_updated_at, last_updated_by`

var returningSortable = map[string]string{
	"date":                 "date",
	"expected_return_date": "expected_return_date",
	"amount":               "amount",
	"created_at":           "created_at",
}

type ReturningRepository struct {
	BaseRepository
}

func NewReturningRepository(pool *pgxpool.Pool) *ReturningRepository {
	return &ReturningRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ResourceRepository[domain.Returning] = (*ReturningRepository)(nil)

func scanReturning(row pgx.Row) (domain.Returning, error) {
	var ret domain.Returning
	err := row.Scan(
		&ret.ID,
		&ret.Date,
		&ret.Amount,
		&ret.ExpectedReturnDate,
		&ret.PaymentMethod,
		&ret.Person,
		&ret.Purpose,
		&ret.Type,
		&ret.Active,
		&ret.CreatedAt,
		&ret.CreatedBy,
		&ret.LastUpdatedAt,
		&ret.LastUpdatedBy,
	)
	return ret, err
}

func (r *ReturningRepository) Save(ctx context.Context, ret *domain.Returning) error {
	query := `
        INSERT INTO returnings (` + returningColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
    `
	_, err := r.Pool.Exec(ctx, query,
		ret.ID,
		ret.Date,
		ret.Amount,
		ret.ExpectedReturnDate,
		ret.PaymentMethod,
		ret.Person,
		ret.Purpose,
		ret.Type,
		ret.Active,
		ret.CreatedAt,
		ret.CreatedBy,
		ret.LastUpdatedAt,
		ret.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save returning: %w", err)
	}
	return nil
}

func (r *ReturningRepository) FindByID(ctx context.Context, returningID string) (*domain.Returning, error) {
	query := `SELECT ` + returningColumns + ` FROM returnings WHERE returning_id = $1;`
	ret, err := scanReturning(r.Pool.QueryRow(ctx, query, returningID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find returning by ID: %w", err)
	}
	return &ret, nil
}

func (r *ReturningRepository) List(ctx context.Context, params dto.ListParams) ([]domain.Returning, int64, error) {
	return listRows(ctx, r.Pool, "returnings", returningColumns, params, returningSortable, "date",
		func(rows pgx.Rows) (domain.Returning, error) { return scanReturning(rows) })
}

func (r *ReturningRepository) Update(ctx context.Context, ret *domain.Returning) error {
	query := `
        UPDATE returnings
        SET date = $1, amount = $2, expected_return_date = $3, payment_method = $4,
            person = $5, purpose = $6, type = $7, last_updated_at = $8, last_updated_by = $9
        WHERE returning_id = $10 AND is_active = true;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		ret.Date,
		ret.Amount,
		ret.ExpectedReturnDate,
		ret.PaymentMethod,
		ret.Person,
		ret.Purpose,
		ret.Type,
		ret.LastUpdatedAt,
		ret.LastUpdatedBy,
		ret.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update returning: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ReturningRepository) MarkDeleted(ctx context.Context, returningID string, deletedAt time.Time, deleterUserID string) error {
	query := `
        UPDATE returnings
        SET is_active = false, last_updated_at = $1, last_updated_by = $2
        WHERE returning_id = $3 AND is_active = true;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, deletedAt, deleterUserID, returningID)
	if err != nil {
		return fmt.Errorf("failed to mark returning as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
