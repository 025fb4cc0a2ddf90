package domain

import (
	"github.com/alurafood/payments/internal/domain/payment"
	"github.com/alurafood/payments/internal/port/outbound"
	"go.uber.org/zap"
)

// Domain holds all domain services.
type Domain struct {
	// Payment handles payment records and their confirmation.
	Payment payment.PaymentDomain
}

// NewDomain creates domain services with dependencies.
func NewDomain(ports outbound.OutboundPorts, logger *zap.Logger) *Domain {
	return &Domain{
		Payment: payment.NewPaymentDomain(
			ports.PaymentDB,
			ports.OrderNotifier,
			logger.Named("payment"),
		),
	}
}
