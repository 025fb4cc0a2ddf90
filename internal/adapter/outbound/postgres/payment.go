package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/alurafood/payments/internal/model"
	"github.com/alurafood/payments/internal/port/outbound"
	"gorm.io/gorm"
)

// paymentAdapter implements outbound.PaymentDatabasePort on top of gorm.
// It only uses portable queries, so it serves both the postgres and mysql dialects.
type paymentAdapter struct {
	db *gorm.DB
}

// NewPaymentAdapter creates a new payment database adapter.
func NewPaymentAdapter(db *gorm.DB) outbound.PaymentDatabasePort {
	return &paymentAdapter{db: db}
}

func (a *paymentAdapter) FindByID(ctx context.Context, id uint64) (*model.Payment, error) {
	var payment model.Payment
	err := a.db.WithContext(ctx).First(&payment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find payment by id: %w", err)
	}
	return &payment, nil
}

func (a *paymentAdapter) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	var count int64
	err := a.db.WithContext(ctx).Model(&model.Payment{}).Where("id = ?", id).Limit(1).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check payment exists: %w", err)
	}
	return count > 0, nil
}

func (a *paymentAdapter) Save(ctx context.Context, payment *model.Payment) error {
	db := a.db.WithContext(ctx)
	if payment.ID == 0 {
		if err := db.Create(payment).Error; err != nil {
			return fmt.Errorf("create payment: %w", err)
		}
		return nil
	}
	if err := db.Save(payment).Error; err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	return nil
}

func (a *paymentAdapter) DeleteByID(ctx context.Context, id uint64) error {
	if err := a.db.WithContext(ctx).Delete(&model.Payment{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	return nil
}

func (a *paymentAdapter) FindAll(ctx context.Context, page model.PaginationRequest) ([]*model.Payment, int64, error) {
	var payments []*model.Payment
	var total int64

	query := a.db.WithContext(ctx).Model(&model.Payment{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count payments: %w", err)
	}

	if err := query.Order("id ASC").
		Offset(page.Offset()).
		Limit(page.PageSize).
		Find(&payments).Error; err != nil {
		return nil, 0, fmt.Errorf("find payments: %w", err)
	}

	return payments, total, nil
}

// Compile-time interface assertion.
var _ outbound.PaymentDatabasePort = (*paymentAdapter)(nil)
