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

const purchaseColumns = `pu.purchase_id, pu.expenditure_id, pu.items, pu.is_active, pu.created_at, pu.created_by, pu.last_updated_at, pu.last_updated_by`

var purchaseSortable = map[string]string{
	"date":       "e.date",
	"place":      "e.place",
	"purpose":    "e.purpose",
	"created_at": "pu.created_at",
}

type PurchaseRepository struct {
	BaseRepository
}

func NewPurchaseRepository(pool *pgxpool.Pool) *PurchaseRepository {
	return &PurchaseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PurchaseRepository = (*PurchaseRepository)(nil)

// scanPurchaseRow reads a purchase row joined against its expenditure and the
// expenditure's payment.
func scanPurchaseRow(row pgx.Row) (domain.Purchase, error) {
	var pu domain.Purchase
	var e domain.Expenditure
	var p domain.Payment
	var paymentID *string
	var amount *float64
	var method, status, purpose *string
	var pActive *bool
	var pCreatedAt, pUpdatedAt *time.Time
	var pCreatedBy, pUpdatedBy *string

	err := row.Scan(
		&pu.ID,
		&pu.ExpenditureID,
		&pu.Items,
		&pu.Active,
		&pu.CreatedAt,
		&pu.CreatedBy,
		&pu.LastUpdatedAt,
		&pu.LastUpdatedBy,
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
		return pu, err
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
	pu.Expenditure = &e
	return pu, nil
}

func insertPurchase(ctx context.Context, tx pgx.Tx, purchase *domain.Purchase) error {
	query := `
        INSERT INTO purchases (purchase_id, expenditure_id, items, is_active, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := tx.Exec(ctx, query,
		purchase.ID,
		purchase.ExpenditureID,
		purchase.Items,
		purchase.Active,
		purchase.CreatedAt,
		purchase.CreatedBy,
		purchase.LastUpdatedAt,
		purchase.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save purchase: %w", err)
	}
	return nil
}

func (r *PurchaseRepository) Save(ctx context.Context, purchase *domain.Purchase) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertPurchase(ctx, tx, purchase); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PurchaseRepository) SaveWithExpenditure(ctx context.Context, purchase *domain.Purchase, expenditure *domain.Expenditure) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if expenditure.Payment != nil {
		if err := insertPayment(ctx, tx, expenditure.Payment); err != nil {
			return err
		}
	}
	if err := insertExpenditure(ctx, tx, expenditure); err != nil {
		return err
	}
	if err := insertPurchase(ctx, tx, purchase); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PurchaseRepository) UpdateWithExpenditure(ctx context.Context, purchase *domain.Purchase, expenditure *domain.Expenditure, payment *domain.Payment, createPayment bool) error {
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
	if err := r.updatePurchase(ctx, tx, purchase); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PurchaseRepository) updatePurchase(ctx context.Context, tx pgx.Tx, purchase *domain.Purchase) error {
	query := `
        UPDATE purchases
        SET items = $1, last_updated_at = $2, last_updated_by = $3
        WHERE purchase_id = $4 AND is_active = true;
    `
	cmdTag, err := tx.Exec(ctx, query,
		purchase.Items,
		purchase.LastUpdatedAt,
		purchase.LastUpdatedBy,
		purchase.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update purchase: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PurchaseRepository) FindByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	query := `
        SELECT ` + purchaseColumns + `, ` + expenditureColumns + `, ` + paymentColumns + `
        FROM purchases pu
        JOIN expenditures e ON e.expenditure_id = pu.expenditure_id
        LEFT JOIN payments p ON p.payment_id = e.payment_id
        WHERE pu.purchase_id = $1;
    `
	purchase, err := scanPurchaseRow(r.Pool.QueryRow(ctx, query, purchaseID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find purchase by ID: %w", err)
	}
	return &purchase, nil
}

// List returns purchases with their expenditures expanded. Substring filters
// address the joined expenditure columns (place, purpose).
func (r *PurchaseRepository) List(ctx context.Context, params dto.ListParams) ([]domain.Purchase, int64, error) {
	params.Normalize()
	where, args := buildListFilter(params, "pu.is_active")

	var total int64
	countQuery := fmt.Sprintf(`
        SELECT COUNT(*)
        FROM purchases pu
        JOIN expenditures e ON e.expenditure_id = pu.expenditure_id
        WHERE %s`, where)
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count purchases: %w", err)
	}

	orderLimit, pageArgs := buildOrderLimit(params, purchaseSortable, "e.date", len(args))
	query := fmt.Sprintf(`
        SELECT %s, %s, %s
        FROM purchases pu
        JOIN expenditures e ON e.expenditure_id = pu.expenditure_id
        LEFT JOIN payments p ON p.payment_id = e.payment_id
        WHERE %s %s`,
		purchaseColumns, expenditureColumns, paymentColumns, where, orderLimit)

	rows, err := r.Pool.Query(ctx, query, append(args, pageArgs...)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query purchases: %w", err)
	}
	defer rows.Close()

	items := []domain.Purchase{}
	for rows.Next() {
		pu, err := scanPurchaseRow(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan purchase row: %w", err)
		}
		items = append(items, pu)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating purchase rows: %w", rows.Err())
	}
	return items, total, nil
}

func (r *PurchaseRepository) Update(ctx context.Context, purchase *domain.Purchase) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.updatePurchase(ctx, tx, purchase); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// MarkDeleted soft-deletes the purchase along with its expenditure and the
// expenditure's payment.
func (r *PurchaseRepository) MarkDeleted(ctx context.Context, purchaseID string, deletedAt time.Time, deleterUserID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var expenditureID string
	err = tx.QueryRow(ctx, `
        UPDATE purchases
        SET is_active = false, last_updated_at = $1, last_updated_by = $2
        WHERE purchase_id = $3 AND is_active = true
        RETURNING expenditure_id;`,
		deletedAt, deleterUserID, purchaseID).Scan(&expenditureID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to mark purchase as deleted: %w", err)
	}

	var paymentID *string
	err = tx.QueryRow(ctx, `
        UPDATE expenditures
        SET is_active = false, last_updated_at = $1, last_updated_by = $2
        WHERE expenditure_id = $3 AND is_active = true
        RETURNING payment_id;`,
		deletedAt, deleterUserID, expenditureID).Scan(&paymentID)
	if err != nil && err != pgx.ErrNoRows {
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
