package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus represents the state of a payment record
type PaymentStatus string

const (
	PaymentStatusPending           PaymentStatus = "pending"
	PaymentStatusCompleted         PaymentStatus = "completed"
	PaymentStatusAdvancePaid       PaymentStatus = "advance_paid"
	PaymentStatusFailed            PaymentStatus = "failed"
	PaymentStatusRefunded          PaymentStatus = "refunded"
	PaymentStatusPartiallyRefunded PaymentStatus = "partially_refunded"
)

// IsPaid reports whether money has been captured against the payment
func (s PaymentStatus) IsPaid() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusAdvancePaid
}

// PaymentMethod represents how the customer pays
type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "cash"
	PaymentMethodCard       PaymentMethod = "card"
	PaymentMethodUPI        PaymentMethod = "upi"
	PaymentMethodWallet     PaymentMethod = "wallet"
	PaymentMethodNetBanking PaymentMethod = "net_banking"
)

// IsValid reports whether m is a known payment method
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodUPI, PaymentMethodWallet, PaymentMethodNetBanking:
		return true
	}
	return false
}

// IsOnline reports whether the method settles through the payment gateway
func (m PaymentMethod) IsOnline() bool {
	return m != PaymentMethodCash
}

// Payment is the payment record paired 1:1 with a booking. It is created in
// pending state atomically with the booking and mutated only by the payment
// reconciler.
type Payment struct {
	ID               uuid.UUID     `json:"id" db:"id"`
	BookingID        *uuid.UUID    `json:"booking_id,omitempty" db:"booking_id"`
	Amount           int           `json:"amount" db:"amount"`
	Currency         string        `json:"currency" db:"currency"`
	Status           PaymentStatus `json:"status" db:"status"`
	Method           PaymentMethod `json:"method" db:"method"`
	GatewayOrderID   string        `json:"gateway_order_id,omitempty" db:"gateway_order_id"`
	GatewayPaymentID string        `json:"gateway_payment_id,omitempty" db:"gateway_payment_id"`
	GatewaySignature string        `json:"-" db:"gateway_signature"`
	FailureReason    string        `json:"failure_reason,omitempty" db:"failure_reason"`
	RefundID         string        `json:"refund_id,omitempty" db:"refund_id"`
	RefundAmount     int           `json:"refund_amount,omitempty" db:"refund_amount"`
	PaidAmount       int           `json:"paid_amount,omitempty" db:"paid_amount"`
	CreatedAt        time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at" db:"updated_at"`
}

// AmountMinor returns the payment amount in minor currency units, the unit
// the gateway API speaks
func (p *Payment) AmountMinor() int64 {
	return int64(p.Amount) * 100
}
