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

const userColumns = `user_id, name, email, password_hash, photo, is_active, created_at, created_by, last_updated_at, last_updated_by`

var userSortable = map[string]string{
	"name":       "name",
	"email":      "email",
	"created_at": "created_at",
}

type UserRepository struct {
	BaseRepository
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure UserRepository implements ports.UserRepository
var _ portsrepo.UserRepository = (*UserRepository)(nil)

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Photo,
		&u.Active,
		&u.CreatedAt,
		&u.CreatedBy,
		&u.LastUpdatedAt,
		&u.LastUpdatedBy,
	)
	return u, err
}

func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	query := `
        INSERT INTO users (` + userColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.Pool.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Photo,
		user.Active,
		user.CreatedAt,
		user.CreatedBy,
		user.LastUpdatedAt,
		user.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	user, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // Indicate not found explicitly
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	if err := r.attachDeviceIDs(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindActiveByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1) AND is_active = true;`
	user, err := scanUser(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	if err := r.attachDeviceIDs(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) attachDeviceIDs(ctx context.Context, user *domain.User) error {
	rows, err := r.Pool.Query(ctx,
		`SELECT device_id FROM devices WHERE user_id = $1 AND is_active = true ORDER BY created_at;`,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to query user devices: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("failed to scan device id: %w", err)
		}
		ids = append(ids, id)
	}
	if rows.Err() != nil {
		return fmt.Errorf("error iterating device ids: %w", rows.Err())
	}
	user.DeviceIDs = ids
	return nil
}

func (r *UserRepository) List(ctx context.Context, params dto.ListParams) ([]domain.User, int64, error) {
	return listRows(ctx, r.Pool, "users", userColumns, params, userSortable, "created_at",
		func(rows pgx.Rows) (domain.User, error) { return scanUser(rows) })
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	query := `
        UPDATE users
        SET name = $1, email = $2, photo = $3, last_updated_at = $4, last_updated_by = $5
        WHERE user_id = $6 AND is_active = true;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		user.Name,
		user.Email,
		user.Photo,
		user.LastUpdatedAt,
		user.LastUpdatedBy,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) MarkDeleted(ctx context.Context, userID string, deletedAt time.Time, deleterUserID string) error {
	query := `
        UPDATE users
        SET is_active = false, last_updated_at = $1, last_updated_by = $2
        WHERE user_id = $3 AND is_active = true;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, deletedAt, deleterUserID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark user as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
