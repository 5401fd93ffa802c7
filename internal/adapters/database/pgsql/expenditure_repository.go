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

const expenditureColumns = `e.expenditure_id, e.date, e.place, e.purpose, e.description, e.payment_id, e.is_active, e.created_at, e.created_by, e.last_updated_at, e.last_updated_by`

const paymentColumns = `p.payment_id, p.amount, p.method, p.status, p.purpose, p.is_active, p.created_at, p.created_by, p.last_updated_at, p.last_updated_by`

var expenditureSortable = map[string]string{
	"date":       "e.date",
	"place":      "e.place",
	"purpose":    "e.purpose",
	"created_at": "e.created_at",
}

type ExpenditureRepository struct {
	BaseRepository
}

func NewExpenditureRepository(pool *pgxpool.Pool) *ExpenditureRepository {
	return &ExpenditureRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenditureRepository = (*ExpenditureRepository)(nil)

// scanExpenditureWithPayment reads an expenditure row left-joined against
// payments. Payment stays nil when the expenditure has no payment reference.
func scanExpenditureWithPayment(row pgx.Row) (domain.Expenditure, error) {
	var e domain.Expenditure
	var p domain.Payment
	var paymentID *string
	var amount *float64
	var method, status, purpose *string
	var pActive *bool
	var pCreatedAt, pUpdatedAt *time.Time
	var pCreatedBy, pUpdatedBy *string

	err := row.Scan(
		&e.ID,
		&e.Date,
		&e.Place,
		&e.Purpose,
		&e.Description,
		&e.PaymentID,
		&e.Active,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
		&paymentID,
		&amount,
		&method,
		&status,
		&purpose,
		&pActive,
		&pCreatedAt,
		&pCreatedBy,
		&pUpdatedAt,
		&pUpdatedBy,
	)
	if err != nil {
		return e, err
	}
	if paymentID != nil {
		p.ID = *paymentID
		p.Amount = *amount
		p.Method = *method
		p.Status = *status
		if purpose != nil {
			p.Purpose = *purpose
		}
		p.Active = *pActive
		p.CreatedAt = *pCreatedAt
		p.CreatedBy = *pCreatedBy
		p.LastUpdatedAt = *pUpdatedAt
		p.LastUpdatedBy = *pUpdatedBy
		e.Payment = &p
	}
	return e, nil
}

func insertPayment(ctx context.Context, tx pgx.Tx, payment *domain.Payment) error {
	query := `
        INSERT INTO payments (payment_id, amount, method, status, purpose, is_active, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := tx.Exec(ctx, query,
		payment.ID,
		payment.Amount,
		payment.Method,
		payment.Status,
		payment.Purpose,
		payment.Active,
		payment.CreatedAt,
		payment.CreatedBy,
		payment.LastUpdatedAt,
		payment.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save payment: %w", err)
	}
	return nil
}

func updatePayment(ctx context.Context, tx pgx.Tx, payment *domain.Payment) error {
	query := `
        UPDATE payments
        SET amount = $1, method = $2, status = $3, purpose = $4, last_updated_at = $5, last_updated_by = $6
        WHERE payment_id = $7 AND is_active = true;
    `
	cmdTag, err := tx.Exec(ctx, query,
		payment.Amount,
		payment.Method,
		payment.Status,
		payment.Purpose,
		payment.LastUpdatedAt,
		payment.LastUpdatedBy,
		payment.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func insertExpenditure(ctx context.Context, tx pgx.Tx, expenditure *domain.Expenditure) error {
	query := `
        INSERT INTO expenditures (expenditure_id, date, place, purpose, description, payment_id, is_active, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := tx.Exec(ctx, query,
		expenditure.ID,
		expenditure.Date,
		expenditure.Place,
		expenditure.Purpose,
		expenditure.Description,
		expenditure.PaymentID,
		expenditure.Active,
		expenditure.CreatedAt,
		expenditure.CreatedBy,
		expenditure.LastUpdatedAt,
		expenditure.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save expenditure: %w", err)
	}
	return nil
}

func updateExpenditure(ctx context.Context, tx pgx.Tx, expenditure *domain.Expenditure) error {
	query := `
        UPDATE expenditures
        SET date = $1, place = $2, purpose = $3, description = $4, payment_id = $5,
            last_updated_at = $6, last_updated_by = $7
        WHERE expenditure_id = $8 AND is_active = true;
    `
	cmdTag, err := tx.Exec(ctx, query,
		expenditure.Date,
		expenditure.Place,
		expenditure.Purpose,
		expenditure.Description,
		expenditure.PaymentID,
		expenditure.LastUpdatedAt,
		expenditure.LastUpdatedBy,
		expenditure.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expenditure: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ExpenditureRepository) Save(ctx context.Context, expenditure *domain.Expenditure) error {
	return r.SaveWithPayment(ctx, expenditure, nil)
}

func (r *ExpenditureRepository) SaveWithPayment(ctx context.Context, expenditure *domain.Expenditure, payment *domain.Payment) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if payment != nil {
		if err := insertPayment(ctx, tx, payment); err != nil {
			return err
		}
	}
	if err := insertExpenditure(ctx, tx, expenditure); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *ExpenditureRepository) UpdateWithPayment(ctx context.Context, expenditure *domain.Expenditure, payment *domain.Payment, createPayment bool) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if payment != nil {
		if createPayment {
			if err := insertPayment(ctx, tx, payment); err != nil {
				return err
			}
		} else if err := updatePayment(ctx, tx, payment); err != nil {
			return err
		}
	}
	if err := updateExpenditure(ctx, tx, expenditure); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *ExpenditureRepository) FindByID(ctx context.Context, expenditureID string) (*domain.Expenditure, error) {
	query := `
        SELECT ` + expenditureColumns + `, ` + paymentColumns + `
        FROM expenditures e
        LEFT JOIN payments p ON p.payment_id = e.payment_id
        WHERE e.expenditure_id = $1;
    `
	expenditure, err := scanExpenditureWithPayment(r.Pool.QueryRow(ctx, query, expenditureID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find expenditure by ID: %w", err)
	}
	return &expenditure, nil
}

// List returns paid expenditures with their payments expanded. Unpaid rows
// are excluded from listings; they remain reachable by ID.
func (r *ExpenditureRepository) List(ctx context.Context, params dto.ListParams) ([]domain.Expenditure, int64, error) {
	params.Normalize()
	where, args := buildListFilter(params, "e.is_active")
	where += " AND e.payment_id IS NOT NULL"

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM expenditures e WHERE %s", where)
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count expenditures: %w", err)
	}

	orderLimit, pageArgs := buildOrderLimit(params, expenditureSortable, "e.date", len(args))
	query := fmt.Sprintf(`
        SELECT %s, %s
        FROM expenditures e
        LEFT JOIN payments p ON p.payment_id = e.payment_id
        WHERE %s %s`,
		expenditureColumns, paymentColumns, where, orderLimit)

	rows, err := r.Pool.Query(ctx, query, append(args, pageArgs...)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query expenditures: %w", err)
	}
	defer rows.Close()

	items := []domain.Expenditure{}
	for rows.Next() {
		e, err := scanExpenditureWithPayment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan expenditure row: %w", err)
		}
		items = append(items, e)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating expenditure rows: %w", rows.Err())
	}
	return items, total, nil
}

func (r *ExpenditureRepository) Update(ctx context.Context, expenditure *domain.Expenditure) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := updateExpenditure(ctx, tx, expenditure); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// MarkDeleted soft-deletes the expenditure together with its payment.
func (r *ExpenditureRepository) MarkDeleted(ctx context.Context, expenditureID string, deletedAt time.Time, deleterUserID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
        UPDATE expenditures
        SET is_active = false, last_updated_at = $1, last_updated_by = $2
        WHERE expenditure_id = $3 AND is_active = true
        RETURNING payment_id;
    `
	var paymentID *string
	if err := tx.QueryRow(ctx, query, deletedAt, deleterUserID, expenditureID).Scan(&paymentID); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to mark expenditure as deleted: %w", err)
	}
	if paymentID != nil {
		_, err := tx.Exec(ctx, `
            UPDATE payments
            SET is_active = false, last_updated_at = $1, last_updated_by = $2
            WHERE payment_id = $3 AND is_active = true;`,
			deletedAt, deleterUserID, *paymentID)
		if err != nil {
			return fmt.Errorf("failed to mark payment as deleted: %w", err)
		}
	}
	return r.Commit(ctx, tx)
}
