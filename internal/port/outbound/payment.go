package outbound

import (
	"context"

	"github.com/alurafood/payments/internal/model"
)

// PaymentDatabasePort defines payment persistence operations.
type PaymentDatabasePort interface {
	// FindByID finds a payment by ID. Returns nil, nil when the payment does not exist.
	FindByID(ctx context.Context, id uint64) (*model.Payment, error)

	// ExistsByID reports whether a payment with the given ID is stored.
	ExistsByID(ctx context.Context, id uint64) (bool, error)

	// Save inserts the payment when its ID is zero, otherwise overwrites it.
	// The assigned ID is written back to payment.
	Save(ctx context.Context, payment *model.Payment) error

	// DeleteByID removes a payment.
	DeleteByID(ctx context.Context, id uint64) error

	// FindAll returns one page of payments ordered by ID and the total count.
	FindAll(ctx context.Context, page model.PaginationRequest) ([]*model.Payment, int64, error)
}
