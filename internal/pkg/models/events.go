package models

import (
	"time"

	"github.com/google/uuid"
)

// Event subjects published to NATS. Delivery to devices is an external
// concern; the service only emits the domain events.
const (
	SubjectBookingConfirmed = "booking.confirmed"
	SubjectBookingCancelled = "booking.cancelled"
	SubjectBookingCompleted = "booking.completed"
	SubjectBookingRejected  = "booking.rejected"
	SubjectPaymentCompleted = "payment.completed"
	SubjectPaymentFailed    = "payment.failed"
	SubjectPaymentRefunded  = "payment.refunded"
)

// BookingEvent is the payload published on booking lifecycle subjects
type BookingEvent struct {
	BookingID   uuid.UUID     `json:"booking_id"`
	BookingCode string        `json:"booking_code"`
	UserID      uuid.UUID     `json:"user_id"`
	Status      BookingStatus `json:"status"`
	TripType    TripType      `json:"trip_type"`
	FinalAmount int           `json:"final_amount"`
	Timestamp   time.Time     `json:"timestamp"`
}

// PaymentEvent is the payload published on payment subjects
type PaymentEvent struct {
	PaymentID        uuid.UUID     `json:"payment_id"`
	BookingID        uuid.UUID     `json:"booking_id"`
	Status           PaymentStatus `json:"status"`
	Amount           int           `json:"amount"`
	GatewayOrderID   string        `json:"gateway_order_id,omitempty"`
	GatewayPaymentID string        `json:"gateway_payment_id,omitempty"`
	FailureReason    string        `json:"failure_reason,omitempty"`
	Timestamp        time.Time     `json:"timestamp"`
}
