package fare

import (
	"time"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
)

// CancellationInput is the state the cancellation policy works from
type CancellationInput struct {
	FinalAmount   int
	BookingStatus models.BookingStatus
	PaymentStatus models.PaymentStatus
	PaidAmount    int
	StartTime     time.Time
	Now           time.Time
}

// CancellationQuote computes the charge and refund for cancelling a booking.
// The preview endpoint and the actual cancellation share this arithmetic so
// the preview is trustworthy.
//
// Rules: pending bookings cancel free regardless of timing; otherwise a
// percentage charge applies inside the cancellation window; a trip whose
// start time has passed is not cancellable. A monetary refund is computed
// only when the payment was captured.
func (c *Calculator) CancellationQuote(in CancellationInput) models.CancellationQuote {
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	hoursUntilStart := in.StartTime.Sub(now).Hours()

	quote := models.CancellationQuote{
		HoursUntilStart: hoursUntilStart,
	}

	if hoursUntilStart < 0 {
		return quote
	}
	if !in.BookingStatus.IsCancellable() {
		return quote
	}

	quote.Cancellable = true

	switch {
	case in.BookingStatus == models.BookingStatusPending:
		// The customer has not committed via confirmation; no charge.
	case hoursUntilStart < c.rates.CancellationWindowHours:
		quote.Charge = roundINR(float64(in.FinalAmount) * c.rates.CancellationChargePercent)
	}

	if in.PaymentStatus.IsPaid() {
		refund := in.PaidAmount - quote.Charge
		if refund < 0 {
			refund = 0
		}
		quote.RefundAmount = refund
	}

	return quote
}
