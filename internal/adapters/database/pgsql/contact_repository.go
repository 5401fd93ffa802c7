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

const contactColumns = `contact_id, firstname, lastname, gender, mobile, phone, email, company, designation, is_active, created_at, created_by, last_updated_at, last_updated_by`

var contactSortable = map[string]string{
	"firstname":  "firstname",
	"lastname":   "lastname",
	"company":    "company",
	"created_at": "created_at",
}

type ContactRepository struct {
	BaseRepository
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ContactRepository = (*ContactRepository)(nil)

func scanContact(row pgx.Row) (domain.Contact, error) {
	var c domain.Contact
	err := row.Scan(
		&c.ID,
		&c.Firstname,
		&c.Lastname,
		&c.Gender,
		&c.Mobile,
		&c.Phone,
		&c.Email,
		&c.Company,
		&c.Designation,
		&c.Active,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	return c, err
}

func (r *ContactRepository) Save(ctx context.Context, contact *domain.Contact) error {
	query := `
        INSERT INTO contacts (` + contactColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
    `
	_, err := r.Pool.Exec(ctx, query,
		contact.ID,
		contact.Firstname,
		contact.Lastname,
		contact.Gender,
		contact.Mobile,
		contact.Phone,
		contact.Email,
		contact.Company,
		contact.Designation,
		contact.Active,
		contact.CreatedAt,
		contact.CreatedBy,
		contact.LastUpdatedAt,
		contact.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save contact: %w", err)
	}
	return nil
}

func (r *ContactRepository) FindByID(ctx context.Context, contactID string) (*domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE contact_id = $1;`
	contact, err := scanContact(r.Pool.QueryRow(ctx, query, contactID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find contact by ID: %w", err)
	}
	return &contact, nil
}

func (r *ContactRepository) FindActiveByNameAndMobile(ctx context.Context, firstname, lastname, mobile string) (*domain.Contact, error) {
	query := `
        SELECT ` + contactColumns + ` FROM contacts
        WHERE firstname = $1 AND lastname = $2 AND mobile = $3 AND is_active = true
        LIMIT 1;
    `
	contact, err := scanContact(r.Pool.QueryRow(ctx, query, firstname, lastname, mobile))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find contact by name and mobile: %w", err)
	}
	return &contact, nil
}

func (r *ContactRepository) List(ctx context.Context, params dto.ListParams) ([]domain.Contact, int64, error) {
	return listRows(ctx, r.Pool, "contacts", contactColumns, params, contactSortable, "created_at",
		func(rows pgx.Rows) (domain.Contact, error) { return scanContact(rows) })
}

func (r *ContactRepository) Update(ctx context.Context, contact *domain.Contact) error {
	query := `
        UPDATE contacts
        SET firstname = $1, lastname = $2, gender = $3, mobile = $4, phone = $5, email = $6,
            company = $7, designation = $8, last_updated_at = $9, last_updated_by = $10
        WHERE contact_id = $11 AND is_active = true;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		contact.Firstname,
		contact.Lastname,
		contact.Gender,
		contact.Mobile,
		contact.Phone,
		contact.Email,
		contact.Company,
		contact.Designation,
		contact.LastUpdatedAt,
		contact.LastUpdatedBy,
		contact.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ContactRepository) MarkDeleted(ctx context.Context, contactID string, deletedAt time.Time, deleterUserID string) error {
	query := `
        UPDATE contacts
        SET is_active = false, last_updated_at = $1, last_updated_by = $2
        WHERE contact_id = $3 AND is_active = true;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, deletedAt, deleterUserID, contactID)
	if err != nil {
		return fmt.Errorf("failed to mark contact as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
