package models

import (
	"time"

	"github.com/google/uuid"
)

// SearchRequest asks for priced vehicle options on a route
type SearchRequest struct {
	TripType    TripType   `json:"trip_type"`
	From        Location   `json:"from"`
	To          Location   `json:"to"`
	Via         []Location `json:"via,omitempty"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	PackageCode string     `json:"package_code,omitempty"`
}

// SearchResponse carries the priced options plus a short-lived search id the
// client echoes back at booking time
type SearchResponse struct {
	SearchID    string          `json:"search_id"`
	TripType    TripType        `json:"trip_type"`
	DistanceKm  float64         `json:"distance_km"`
	DurationMin int             `json:"duration_min"`
	Options     []VehicleOption `json:"options"`
	ExpiresAt   time.Time       `json:"expires_at"`
}

// EstimateFareRequest prices a single trip type + vehicle class combination.
// Distance may be supplied directly or resolved from the route.
type EstimateFareRequest struct {
	TripType     TripType     `json:"trip_type"`
	VehicleClass VehicleClass `json:"vehicle_class"`
	DistanceKm   *float64     `json:"distance_km,omitempty"`
	From         *Location    `json:"from,omitempty"`
	To           *Location    `json:"to,omitempty"`
	StartTime    time.Time    `json:"start_time"`
	PackageCode  string       `json:"package_code,omitempty"`
	ExtraKm      float64      `json:"extra_km,omitempty"`
	ExtraHours   float64      `json:"extra_hours,omitempty"`
}

// CreateBookingRequest creates a booking and its paired payment record
type CreateBookingRequest struct {
	TripType      TripType      `json:"trip_type"`
	VehicleClass  VehicleClass  `json:"vehicle_class"`
	Pickup        Location      `json:"pickup"`
	Drop          Location      `json:"drop"`
	Via           []Location    `json:"via,omitempty"`
	StartTime     time.Time     `json:"start_time"`
	EndTime       *time.Time    `json:"end_time,omitempty"`
	PackageCode   string        `json:"package_code,omitempty"`
	Passenger     *Passenger    `json:"passenger,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}

// PaymentInit is the client-side widget prefill returned for online bookings
type PaymentInit struct {
	GatewayOrderID string    `json:"gateway_order_id"`
	AmountMinor    int64     `json:"amount_minor"`
	Currency       string    `json:"currency"`
	KeyID          string    `json:"key_id"`
	Prefill        Passenger `json:"prefill"`
}

// CreateBookingResponse differs by payment method: cash bookings come back
// confirmed, online bookings carry the gateway order for the client widget
type CreateBookingResponse struct {
	Booking *Booking     `json:"booking"`
	Payment *PaymentInit `json:"payment,omitempty"`
}

// VerifyPaymentRequest is the client-verify confirmation path
type VerifyPaymentRequest struct {
	BookingID        uuid.UUID `json:"booking_id"`
	GatewayOrderID   string    `json:"gateway_order_id"`
	GatewayPaymentID string    `json:"gateway_payment_id"`
	GatewaySignature string    `json:"gateway_signature"`
}

// UpdateStatusRequest drives the generic (driver/admin) status transition.
// DriverID is required when entering the assigned state.
type UpdateStatusRequest struct {
	Status   BookingStatus `json:"status"`
	DriverID *uuid.UUID    `json:"driver_id,omitempty"`
}

// CancelBookingRequest cancels a booking through the dedicated cancel path
type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// CancellationQuote is the preview and the applied arithmetic of a
// cancellation; both paths share it so the preview is trustworthy
type CancellationQuote struct {
	Cancellable     bool    `json:"cancellable"`
	Charge          int     `json:"charge"`
	RefundAmount    int     `json:"refund_amount"`
	HoursUntilStart float64 `json:"hours_until_start"`
}

// CancelBookingResponse reports the outcome of a cancellation, including
// whether an online refund needs manual intervention
type CancelBookingResponse struct {
	Booking              *Booking `json:"booking"`
	Charge               int      `json:"charge"`
	RefundAmount         int      `json:"refund_amount"`
	RefundID             string   `json:"refund_id,omitempty"`
	RefundRequiresManual bool     `json:"refund_requires_manual,omitempty"`
}

// RatingRequest rates a completed booking
type RatingRequest struct {
	Value   int    `json:"value"`
	Comment string `json:"comment,omitempty"`
}

// ApplyDiscountRequest applies a flat discount to a booking's fare; GST and
// the final amount are recomputed in place
type ApplyDiscountRequest struct {
	Code   string `json:"code"`
	Amount int    `json:"amount"`
}
