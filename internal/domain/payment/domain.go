package payment

import (
	"context"

	"github.com/alurafood/payments/internal/model"
	"github.com/alurafood/payments/internal/port/outbound"
	apperrors "github.com/alurafood/payments/internal/utils/errors"
	"go.uber.org/zap"
)

// PaymentDomain defines payment domain service interface.
type PaymentDomain interface {
	// List returns one page of payments ordered by ID.
	List(ctx context.Context, page model.PaginationRequest) ([]*model.Payment, int64, error)

	// Get returns a payment by ID.
	Get(ctx context.Context, id uint64) (*model.Payment, error)

	// Create stores a new payment. The status is always CREATED.
	Create(ctx context.Context, req *model.CreatePaymentRequest) (*model.Payment, error)

	// Update overlays the present fields of req onto a stored payment.
	Update(ctx context.Context, id uint64, req *model.UpdatePaymentRequest) (*model.Payment, error)

	// Delete removes a payment.
	Delete(ctx context.Context, id uint64) error

	// ConfirmWithIntegration marks the payment CONFIRMED and notifies the order service.
	ConfirmWithIntegration(ctx context.Context, id uint64) (*model.Payment, error)

	// ConfirmWithoutIntegration marks the payment CONFIRMED_WITHOUT_INTEGRATION.
	ConfirmWithoutIntegration(ctx context.Context, id uint64) (*model.Payment, error)

	// ForceConfirmedWithoutIntegration sets CONFIRMED_WITHOUT_INTEGRATION from any status.
	ForceConfirmedWithoutIntegration(ctx context.Context, id uint64) (*model.Payment, error)
}

// paymentDomain implements PaymentDomain.
type paymentDomain struct {
	paymentDB     outbound.PaymentDatabasePort
	orderNotifier outbound.OrderNotifierPort
	logger        *zap.Logger
}

// NewPaymentDomain creates a new payment domain service.
func NewPaymentDomain(
	paymentDB outbound.PaymentDatabasePort,
	orderNotifier outbound.OrderNotifierPort,
	logger *zap.Logger,
) PaymentDomain {
	return &paymentDomain{
		paymentDB:     paymentDB,
		orderNotifier: orderNotifier,
		logger:        logger,
	}
}

func (d *paymentDomain) List(ctx context.Context, page model.PaginationRequest) ([]*model.Payment, int64, error) {
	page.DefaultPagination()
	return d.paymentDB.FindAll(ctx, page)
}

func (d *paymentDomain) Get(ctx context.Context, id uint64) (*model.Payment, error) {
	return d.load(ctx, id)
}

func (d *paymentDomain) Create(ctx context.Context, req *model.CreatePaymentRequest) (*model.Payment, error) {
	payment := model.NewPayment(req)

	if err := d.paymentDB.Save(ctx, payment); err != nil {
		return nil, err
	}

	d.logger.Info("payment created",
		zap.Uint64("payment_id", payment.ID),
		zap.Uint64("order_id", payment.OrderID),
	)
	return payment, nil
}

func (d *paymentDomain) Update(ctx context.Context, id uint64, req *model.UpdatePaymentRequest) (*model.Payment, error) {
	payment, err := d.load(ctx, id)
	if err != nil {
		return nil, err
	}

	model.ApplyUpdate(payment, req)

	if err := d.paymentDB.Save(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (d *paymentDomain) Delete(ctx context.Context, id uint64) error {
	exists, err := d.paymentDB.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return paymentNotFound(id)
	}

	if err := d.paymentDB.DeleteByID(ctx, id); err != nil {
		return err
	}

	d.logger.Info("payment deleted", zap.Uint64("payment_id", id))
	return nil
}

func (d *paymentDomain) ConfirmWithIntegration(ctx context.Context, id uint64) (*model.Payment, error) {
	payment, err := d.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := d.setStatus(ctx, payment, model.PaymentStatusConfirmed); err != nil {
		return nil, err
	}

	// The status change stays committed when the notification fails.
	if err := d.orderNotifier.NotifyPaymentUpdated(ctx, payment.OrderID); err != nil {
		d.logger.Warn("order service notification failed after confirmation",
			zap.Uint64("payment_id", payment.ID),
			zap.Uint64("order_id", payment.OrderID),
			zap.Error(err),
		)
		return nil, err
	}

	return payment, nil
}

func (d *paymentDomain) ConfirmWithoutIntegration(ctx context.Context, id uint64) (*model.Payment, error) {
	payment, err := d.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := d.setStatus(ctx, payment, model.PaymentStatusConfirmedWithoutIntegration); err != nil {
		return nil, err
	}
	return payment, nil
}

func (d *paymentDomain) ForceConfirmedWithoutIntegration(ctx context.Context, id uint64) (*model.Payment, error) {
	payment, err := d.paymentDB.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperrors.NotFound("")
	}

	previous := payment.Status
	payment.Status = model.PaymentStatusConfirmedWithoutIntegration
	if err := d.paymentDB.Save(ctx, payment); err != nil {
		return nil, err
	}

	d.logger.Info("payment status forced",
		zap.Uint64("payment_id", payment.ID),
		zap.String("from", string(previous)),
		zap.String("status", string(payment.Status)),
	)
	return payment, nil
}

// load fetches a payment, turning absence into the not-found domain error.
func (d *paymentDomain) load(ctx context.Context, id uint64) (*model.Payment, error) {
	payment, err := d.paymentDB.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, paymentNotFound(id)
	}
	return payment, nil
}

func (d *paymentDomain) setStatus(ctx context.Context, payment *model.Payment, status model.PaymentStatus) error {
	if !payment.Status.CanTransitionTo(status) {
		d.logger.Warn("confirming payment outside the CREATED status",
			zap.Uint64("payment_id", payment.ID),
			zap.String("from", string(payment.Status)),
			zap.String("to", string(status)),
		)
	}

	payment.Status = status
	if err := d.paymentDB.Save(ctx, payment); err != nil {
		return err
	}

	d.logger.Info("payment confirmed",
		zap.Uint64("payment_id", payment.ID),
		zap.Uint64("order_id", payment.OrderID),
		zap.String("status", string(status)),
	)
	return nil
}
