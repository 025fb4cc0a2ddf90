package gin

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alurafood/payments/internal/domain/payment"
	"github.com/alurafood/payments/internal/model"
	"github.com/alurafood/payments/internal/port/inbound"
	apperrors "github.com/alurafood/payments/internal/utils/errors"
	"github.com/alurafood/payments/internal/utils/metrics"
	"github.com/alurafood/payments/internal/utils/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	opList                      = "list"
	opGet                       = "get"
	opCreate                    = "create"
	opUpdate                    = "update"
	opDelete                    = "delete"
	opConfirm                   = "confirm"
	opConfirmWithoutIntegration = "confirm_without_integration"
	opForceConfirm              = "force_confirm"
)

// paymentAdapter implements inbound.PaymentHttpPort.
type paymentAdapter struct {
	domain  payment.PaymentDomain
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewPaymentAdapter creates a new payment HTTP adapter.
func NewPaymentAdapter(domain payment.PaymentDomain, m *metrics.Metrics, logger *zap.Logger) inbound.PaymentHttpPort {
	RegisterValidation()
	return &paymentAdapter{
		domain:  domain,
		metrics: m,
		logger:  logger,
	}
}

// RegisterPaymentRoutes registers payment routes. The admin handlers guard
// the forced confirmation endpoint.
func RegisterPaymentRoutes(r *gin.RouterGroup, adapter inbound.PaymentHttpPort, admin ...gin.HandlerFunc) {
	payments := r.Group("/payments")
	{
		payments.GET("", adapter.ListPayments)
		payments.GET("/:id", adapter.GetPayment)
		payments.POST("", adapter.CreatePayment)
		payments.PUT("/:id", adapter.UpdatePayment)
		payments.DELETE("/:id", adapter.DeletePayment)
		payments.PATCH("/:id/confirm", adapter.ConfirmPayment)
		payments.PATCH("/:id/confirm-without-integration", adapter.ConfirmWithoutIntegration)
		payments.PATCH("/:id/force-confirm", append(admin, adapter.ForceConfirm)...)
	}
}

// ListPayments returns one page of payments.
//
//	@Summary		List payments
//	@Tags			Payment
//	@Produce		json
//	@Param			page		query		int	false	"Page number"	default(1)
//	@Param			page_size	query		int	false	"Page size"		default(20)
//	@Success		200			{object}	model.PaginatedResponse[model.Payment]
//	@Failure		400			{object}	apperrors.ErrorDocument
//	@Router			/payments [get]
func (a *paymentAdapter) ListPayments(c *gin.Context) {
	var page model.PaginationRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		a.fail(c, opList, apperrors.BindError(err))
		return
	}
	page.DefaultPagination()

	payments, total, err := a.domain.List(c.Request.Context(), page)
	if err != nil {
		a.fail(c, opList, err)
		return
	}

	a.metrics.RecordPaymentOperation(opList, nil)
	response.OK(c, model.NewPaginatedResponse(payments, total, page.Page, page.PageSize))
}

// GetPayment returns a payment by ID.
//
//	@Summary		Get payment
//	@Tags			Payment
//	@Produce		json
//	@Param			id	path		int	true	"Payment ID"
//	@Success		200	{object}	model.Payment
//	@Failure		400	{object}	apperrors.ErrorDocument
//	@Failure		404	{object}	apperrors.ErrorDocument
//	@Router			/payments/{id} [get]
func (a *paymentAdapter) GetPayment(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		a.fail(c, opGet, err)
		return
	}

	p, err := a.domain.Get(c.Request.Context(), id)
	if err != nil {
		a.fail(c, opGet, err)
		return
	}

	a.metrics.RecordPaymentOperation(opGet, nil)
	response.OK(c, p)
}

// CreatePayment registers a new payment in the CREATED status.
//
//	@Summary		Create payment
//	@Description	Registers a payment for an order. Any status in the body is ignored.
//	@Tags			Payment
//	@Accept			json
//	@Produce		json
//	@Param			Idempotency-Key	header		string						false	"Replay protection key"
//	@Param			request			body		model.CreatePaymentRequest	true	"Payment"
//	@Success		201				{object}	model.Payment
//	@Failure		400				{object}	apperrors.ErrorDocument
//	@Router			/payments [post]
func (a *paymentAdapter) CreatePayment(c *gin.Context) {
	var req model.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.fail(c, opCreate, apperrors.BindError(err))
		return
	}

	p, err := a.domain.Create(c.Request.Context(), &req)
	if err != nil {
		a.fail(c, opCreate, err)
		return
	}

	a.metrics.RecordPaymentOperation(opCreate, nil)
	response.Created(c, fmt.Sprintf("%s/%d", c.Request.URL.Path, p.ID), p)
}

// UpdatePayment changes the fields present in the body.
//
//	@Summary		Update payment
//	@Tags			Payment
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Payment ID"
//	@Param			request	body		model.UpdatePaymentRequest	true	"Fields to change"
//	@Success		200		{object}	model.Payment
//	@Failure		400		{object}	apperrors.ErrorDocument
//	@Failure		404		{object}	apperrors.ErrorDocument
//	@Router			/payments/{id} [put]
func (a *paymentAdapter) UpdatePayment(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		a.fail(c, opUpdate, err)
		return
	}

	var req model.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.fail(c, opUpdate, apperrors.BindError(err))
		return
	}

	p, err := a.domain.Update(c.Request.Context(), id, &req)
	if err != nil {
		a.fail(c, opUpdate, err)
		return
	}

	a.metrics.RecordPaymentOperation(opUpdate, nil)
	response.OK(c, p)
}

// DeletePayment removes a payment.
//
//	@Summary	Delete payment
//	@Tags		Payment
//	@Param		id	path	int	true	"Payment ID"
//	@Success	204
//	@Failure	404	{object}	apperrors.ErrorDocument
//	@Router		/payments/{id} [delete]
func (a *paymentAdapter) DeletePayment(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		a.fail(c, opDelete, err)
		return
	}

	if err := a.domain.Delete(c.Request.Context(), id); err != nil {
		a.fail(c, opDelete, err)
		return
	}

	a.metrics.RecordPaymentOperation(opDelete, nil)
	response.NoContent(c)
}

// ConfirmPayment confirms a payment and notifies the order service.
//
//	@Summary		Confirm payment
//	@Description	Marks the payment CONFIRMED, then tells the order service the order is paid.
//	@Tags			Payment
//	@Produce		json
//	@Param			id	path		int	true	"Payment ID"
//	@Success		200	{object}	model.PaymentStatusResponse
//	@Failure		404	{object}	apperrors.ErrorDocument
//	@Failure		500	{object}	apperrors.ErrorDocument
//	@Router			/payments/{id}/confirm [patch]
func (a *paymentAdapter) ConfirmPayment(c *gin.Context) {
	a.confirm(c, opConfirm, "payment confirmed", a.domain.ConfirmWithIntegration)
}

// ConfirmWithoutIntegration confirms a payment without notifying the order service.
//
//	@Summary	Confirm payment without integration
//	@Tags		Payment
//	@Produce	json
//	@Param		id	path		int	true	"Payment ID"
//	@Success	200	{object}	model.PaymentStatusResponse
//	@Failure	404	{object}	apperrors.ErrorDocument
//	@Router		/payments/{id}/confirm-without-integration [patch]
func (a *paymentAdapter) ConfirmWithoutIntegration(c *gin.Context) {
	a.confirm(c, opConfirmWithoutIntegration, "payment confirmed without integration", a.domain.ConfirmWithoutIntegration)
}

// ForceConfirm sets CONFIRMED_WITHOUT_INTEGRATION regardless of the current status.
//
//	@Summary	Force confirmation without integration
//	@Tags		Payment
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"Payment ID"
//	@Success	200	{object}	model.PaymentStatusResponse
//	@Failure	401	{object}	apperrors.ErrorDocument
//	@Failure	403	{object}	apperrors.ErrorDocument
//	@Failure	404	{object}	apperrors.ErrorDocument
//	@Router		/payments/{id}/force-confirm [patch]
func (a *paymentAdapter) ForceConfirm(c *gin.Context) {
	a.confirm(c, opForceConfirm, "payment status forced", a.domain.ForceConfirmedWithoutIntegration)
}

func (a *paymentAdapter) confirm(
	c *gin.Context,
	op, message string,
	fn func(ctx context.Context, id uint64) (*model.Payment, error),
) {
	id, err := parseID(c)
	if err != nil {
		a.fail(c, op, err)
		return
	}

	p, err := fn(c.Request.Context(), id)
	if err != nil {
		a.fail(c, op, err)
		return
	}

	a.metrics.RecordPaymentOperation(op, nil)
	response.OK(c, model.PaymentStatusResponse{
		ID:      p.ID,
		Status:  p.Status,
		Message: message,
	})
}

// fail records the failed operation and renders err through the classifier.
func (a *paymentAdapter) fail(c *gin.Context, op string, err error) {
	a.metrics.RecordPaymentOperation(op, err)

	if apperrors.GetStatusCode(err) >= 500 {
		a.logger.Error("payment operation failed",
			zap.String("operation", op),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}
	response.Error(c, err)
}

// parseID reads the :id path parameter as a positive integer.
func parseID(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.Validation("id: must be a positive integer")
	}
	return id, nil
}

// Compile-time check
var _ inbound.PaymentHttpPort = (*paymentAdapter)(nil)
