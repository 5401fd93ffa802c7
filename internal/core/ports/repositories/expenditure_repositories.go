package repositories

import (
	"context"

	"github.com/pmapp/personal_management_app/internal/core/domain"
)

// ExpenditureRepository persists expenditures and their owning payments.
// The composite methods run both writes in one database transaction so a
// failure cannot leave an orphaned payment or expenditure behind.
type ExpenditureRepository interface {
	ResourceRepository[domain.Expenditure]

	// SaveWithPayment inserts the payment (when non-nil) and the expenditure
	// referencing it, atomically.
	SaveWithPayment(ctx context.Context, expenditure *domain.Expenditure, payment *domain.Payment) error

	// UpdateWithPayment updates the expenditure and creates or updates its
	// payment in the same transaction. createPayment selects insert over
	// update for the payment row.
	UpdateWithPayment(ctx context.Context, expenditure *domain.Expenditure, payment *domain.Payment, createPayment bool) error
}

// PurchaseRepository persists purchases and their owning expenditures.
type PurchaseRepository interface {
	ResourceRepository[domain.Purchase]

	// SaveWithExpenditure inserts the expenditure and the purchase
	// referencing it, atomically.
	SaveWithExpenditure(ctx context.Context, purchase *domain.Purchase, expenditure *domain.Expenditure) error

	// UpdateWithExpenditure updates purchase, expenditure and (optionally)
	// payment in one transaction.
	UpdateWithExpenditure(ctx context.Context, purchase *domain.Purchase, expenditure *domain.Expenditure, payment *domain.Payment, createPayment bool) error
}
