package inbound

import "github.com/gin-gonic/gin"

// PaymentHttpPort defines HTTP handler interface for payment operations.
type PaymentHttpPort interface {
	// ListPayments handles GET /payments
	ListPayments(c *gin.Context)

	// GetPayment handles GET /payments/:id
	GetPayment(c *gin.Context)

	// CreatePayment handles POST /payments
	// The stored payment always starts as CREATED.
	CreatePayment(c *gin.Context)

	// UpdatePayment handles PUT /payments/:id
	// Only the fields present in the body are changed.
	UpdatePayment(c *gin.Context)

	// DeletePayment handles DELETE /payments/:id
	DeletePayment(c *gin.Context)

	// ConfirmPayment handles PATCH /payments/:id/confirm
	// Confirms the payment and notifies the order service.
	ConfirmPayment(c *gin.Context)

	// ConfirmWithoutIntegration handles PATCH /payments/:id/confirm-without-integration
	ConfirmWithoutIntegration(c *gin.Context)

	// ForceConfirm handles PATCH /payments/:id/force-confirm
	// Sets CONFIRMED_WITHOUT_INTEGRATION regardless of the current status (admin only).
	ForceConfirm(c *gin.Context)
}
