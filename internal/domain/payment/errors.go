package payment

import (
	"errors"
	"fmt"
	"net/http"

	apperrors "github.com/alurafood/payments/internal/utils/errors"
)

// ErrPaymentNotFound is the sentinel wrapped by the not-found domain error.
var ErrPaymentNotFound = errors.New("payment not found")

const codePaymentNotFound = "PAYMENT_NOT_FOUND"

// paymentNotFound is raised by every operation except the forced confirmation.
// It renders with its own message and a /payments/{id} path.
func paymentNotFound(id uint64) error {
	return apperrors.NewDomainError(
		codePaymentNotFound,
		ErrPaymentNotFound.Error(),
		http.StatusNotFound,
		fmt.Sprintf("/payments/%d", id),
	).WithError(ErrPaymentNotFound)
}
