package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts travel as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// PaymentStatus represents the status of a payment.
type PaymentStatus string

const (
	PaymentStatusCreated                     PaymentStatus = "CREATED"
	PaymentStatusConfirmed                   PaymentStatus = "CONFIRMED"
	PaymentStatusConfirmedWithoutIntegration PaymentStatus = "CONFIRMED_WITHOUT_INTEGRATION"
)

// IsValid returns true if the status is one of the known statuses.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusCreated, PaymentStatusConfirmed, PaymentStatusConfirmedWithoutIntegration:
		return true
	default:
		return false
	}
}

// IsConfirmed returns true if the status is one of the confirmed states.
func (s PaymentStatus) IsConfirmed() bool {
	return s == PaymentStatusConfirmed || s == PaymentStatusConfirmedWithoutIntegration
}

// CanTransitionTo returns true if the guarded lifecycle allows moving to target.
// Forced confirmation bypasses this check.
func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	switch s {
	case PaymentStatusCreated:
		return target == PaymentStatusConfirmed || target == PaymentStatusConfirmedWithoutIntegration
	default:
		return false
	}
}

// Amount limits imposed by the numeric(19,2) column.
const (
	AmountScale         = 2
	AmountIntegerDigits = 17
)

var amountLimit = decimal.New(1, AmountIntegerDigits)

// AmountFitsScale reports whether d has at most AmountScale decimal places.
func AmountFitsScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(AmountScale))
}

// AmountFitsPrecision reports whether the integer part of d has at most
// AmountIntegerDigits digits.
func AmountFitsPrecision(d decimal.Decimal) bool {
	return d.Abs().LessThan(amountLimit)
}

// Payment represents a stored payment attempt tied to an order.
type Payment struct {
	ID              uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	Amount          decimal.Decimal `json:"amount" gorm:"type:numeric(19,2);not null"`
	HolderName      string          `json:"holder_name" gorm:"size:100;not null"`
	CardNumber      string          `json:"card_number" gorm:"size:19;not null"`
	Expiry          string          `json:"expiry" gorm:"size:7;not null"`
	SecurityCode    string          `json:"security_code" gorm:"size:3;not null"`
	Status          PaymentStatus   `json:"status" gorm:"size:32;not null;index"`
	PaymentMethodID uint64          `json:"payment_method_id" gorm:"not null"`
	OrderID         uint64          `json:"order_id" gorm:"not null;index"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// TableName returns the table name for Payment.
func (Payment) TableName() string {
	return "payments"
}

// Clone returns a copy of the payment.
func (p *Payment) Clone() *Payment {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

// ===== Request/Response Types =====

// CreatePaymentRequest represents a request to register a payment.
// Status is accepted for compatibility but always ignored.
type CreatePaymentRequest struct {
	Amount          *decimal.Decimal `json:"amount" binding:"required,gt=0"`
	HolderName      string           `json:"holder_name" binding:"required,notblank,max=100"`
	CardNumber      string           `json:"card_number" binding:"required,notblank,max=19"`
	Expiry          string           `json:"expiry" binding:"required,notblank,max=7"`
	SecurityCode    string           `json:"security_code" binding:"required,notblank,len=3"`
	Status          PaymentStatus    `json:"status,omitempty"`
	PaymentMethodID *uint64          `json:"payment_method_id" binding:"required"`
	OrderID         *uint64          `json:"order_id" binding:"required"`
}

// UpdatePaymentRequest represents a partial update. Absent fields keep their stored value.
type UpdatePaymentRequest struct {
	Amount          *decimal.Decimal `json:"amount" binding:"omitempty,gt=0"`
	HolderName      string           `json:"holder_name" binding:"omitempty,notblank,max=100"`
	CardNumber      string           `json:"card_number" binding:"omitempty,notblank,max=19"`
	Expiry          string           `json:"expiry" binding:"omitempty,notblank,max=7"`
	SecurityCode    string           `json:"security_code" binding:"omitempty,notblank,len=3"`
	Status          PaymentStatus    `json:"status,omitempty"`
	PaymentMethodID *uint64          `json:"payment_method_id"`
	OrderID         *uint64          `json:"order_id"`
}

// NewPayment builds a fresh record from a create request. The status is always CREATED.
func NewPayment(req *CreatePaymentRequest) *Payment {
	p := &Payment{
		HolderName:   req.HolderName,
		CardNumber:   req.CardNumber,
		Expiry:       req.Expiry,
		SecurityCode: req.SecurityCode,
		Status:       PaymentStatusCreated,
	}
	if req.Amount != nil {
		p.Amount = *req.Amount
	}
	if req.PaymentMethodID != nil {
		p.PaymentMethodID = *req.PaymentMethodID
	}
	if req.OrderID != nil {
		p.OrderID = *req.OrderID
	}
	return p
}

// ApplyUpdate overlays the present fields of req onto p.
// Nil pointers and empty strings are absent. Status is never copied.
func ApplyUpdate(p *Payment, req *UpdatePaymentRequest) {
	if req == nil {
		return
	}
	if req.Amount != nil {
		p.Amount = *req.Amount
	}
	if req.HolderName != "" {
		p.HolderName = req.HolderName
	}
	if req.CardNumber != "" {
		p.CardNumber = req.CardNumber
	}
	if req.Expiry != "" {
		p.Expiry = req.Expiry
	}
	if req.SecurityCode != "" {
		p.SecurityCode = req.SecurityCode
	}
	if req.PaymentMethodID != nil {
		p.PaymentMethodID = *req.PaymentMethodID
	}
	if req.OrderID != nil {
		p.OrderID = *req.OrderID
	}
}

// PaymentStatusResponse is returned by the confirmation endpoints.
type PaymentStatusResponse struct {
	ID      uint64        `json:"id"`
	Status  PaymentStatus `json:"status"`
	Message string        `json:"message"`
}
