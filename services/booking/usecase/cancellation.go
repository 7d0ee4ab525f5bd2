package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/apperr"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/fare"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/logger"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
)

// CancellationCharges previews what cancelling a booking would cost right
// now. It runs the same arithmetic the cancel path applies.
func (uc *bookingUC) CancellationCharges(ctx context.Context, actor models.Actor, bookingID uuid.UUID) (*models.CancellationQuote, error) {
	bk, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := authorizeBookingAccess(actor, bk); err != nil {
		return nil, err
	}

	quote, err := uc.quoteCancellation(ctx, bk)
	if err != nil {
		return nil, err
	}
	return quote, nil
}

// CancelBooking cancels a booking through the dedicated cancel path and
// refunds captured online payments. A refund failure does not undo the
// cancellation; it is flagged for manual follow-up instead.
func (uc *bookingUC) CancelBooking(ctx context.Context, actor models.Actor, bookingID uuid.UUID, req *models.CancelBookingRequest) (*models.CancelBookingResponse, error) {
	bk, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := authorizeBookingAccess(actor, bk); err != nil {
		return nil, err
	}

	quote, err := uc.quoteCancellation(ctx, bk)
	if err != nil {
		return nil, err
	}
	if !quote.Cancellable {
		return nil, apperr.Conflictf("booking in status %s can no longer be cancelled", bk.Status)
	}

	cancellation := &models.Cancellation{
		CancelledBy: actor.Role,
		Reason:      req.Reason,
		Charge:      quote.Charge,
		CancelledAt: nowUTC(),
	}
	cancelled, err := uc.bookingRepo.CancelBooking(ctx, bookingID, cancellation)
	if err != nil {
		return nil, err
	}
	if !cancelled {
		return nil, apperr.Conflict("booking state changed concurrently, reload and retry")
	}

	bk.Status = models.BookingStatusCancelled
	bk.Cancellation = cancellation

	resp := &models.CancelBookingResponse{
		Booking:      bk,
		Charge:       quote.Charge,
		RefundAmount: quote.RefundAmount,
	}

	if quote.RefundAmount > 0 {
		pay, err := uc.paymentRepo.GetPayment(ctx, bk.PaymentID)
		if err == nil && pay.Method.IsOnline() {
			refunded, refundErr := uc.paymentUC.RefundPayment(ctx, pay, quote.RefundAmount)
			if refundErr != nil {
				logger.Error("refund failed after cancellation, needs manual follow-up",
					logger.Err(refundErr),
					logger.String("booking_id", bk.ID.String()),
					logger.String("payment_id", pay.ID.String()))
				resp.RefundRequiresManual = true
			} else {
				resp.RefundID = refunded.RefundID
			}
		}
	}

	logger.Info("booking cancelled",
		logger.String("booking_id", bk.ID.String()),
		logger.String("cancelled_by", string(actor.Role)),
		logger.Int("charge", quote.Charge),
		logger.Int("refund", quote.RefundAmount))

	if err := uc.bookingGW.PublishBookingCancelled(ctx, bk); err != nil {
		logger.Warn("failed to publish booking cancelled event", logger.Err(err))
	}

	return resp, nil
}

func (uc *bookingUC) quoteCancellation(ctx context.Context, bk *models.Booking) (*models.CancellationQuote, error) {
	pay, err := uc.paymentRepo.GetPayment(ctx, bk.PaymentID)
	if err != nil {
		return nil, err
	}

	quote := uc.calc.CancellationQuote(fare.CancellationInput{
		FinalAmount:   bk.Fare.FinalAmount,
		BookingStatus: bk.Status,
		PaymentStatus: pay.Status,
		PaidAmount:    pay.PaidAmount,
		StartTime:     bk.StartTime,
		Now:           time.Now(),
	})
	return &quote, nil
}
