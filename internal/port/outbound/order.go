package outbound

import "context"

// OrderNotifierPort tells the order service that an order's payment was confirmed.
type OrderNotifierPort interface {
	// NotifyPaymentUpdated marks the order as paid on the order service side.
	NotifyPaymentUpdated(ctx context.Context, orderID uint64) error
}
