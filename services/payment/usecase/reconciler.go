package usecase

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/apperr"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/logger"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
)

// Webhook event names as the gateway sends them
const (
	webhookPaymentCaptured = "payment.captured"
	webhookPaymentFailed   = "payment.failed"
)

// webhookEvent mirrors the gateway's webhook envelope
type webhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID               string `json:"id"`
				OrderID          string `json:"order_id"`
				Amount           int64  `json:"amount"`
				ErrorDescription string `json:"error_description"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// VerifyPayment settles a payment from the client-side checkout callback.
// The webhook path may already have settled the same payment; replaying the
// same capture is reported as success without re-running any side effects.
func (uc *paymentUC) VerifyPayment(ctx context.Context, actor models.Actor, req *models.VerifyPaymentRequest) (*models.Payment, error) {
	if req.GatewayOrderID == "" || req.GatewayPaymentID == "" || req.GatewaySignature == "" {
		return nil, apperr.BadRequest("gateway order, payment and signature are required")
	}

	bk, err := uc.bookingRepo.GetBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if bk.UserID != actor.UserID && !actor.IsElevated() {
		return nil, apperr.Forbidden("you do not have access to this booking")
	}

	pay, err := uc.paymentRepo.GetPaymentByOrderID(ctx, req.GatewayOrderID)
	if err != nil {
		if apperr.IsCode(err, 404) {
			return nil, apperr.BadRequest("order does not belong to this booking")
		}
		return nil, err
	}
	if pay.ID != bk.PaymentID {
		return nil, apperr.BadRequest("order does not belong to this booking")
	}

	// Idempotent replay of an already-settled capture
	if pay.Status.IsPaid() {
		if pay.GatewayPaymentID == req.GatewayPaymentID {
			return pay, nil
		}
		return nil, apperr.Conflict("payment already settled with a different capture")
	}
	if pay.Status != models.PaymentStatusPending {
		return nil, apperr.Conflictf("payment in status %s cannot be verified", pay.Status)
	}

	if !uc.paymentGW.VerifyCheckoutSignature(req.GatewayOrderID, req.GatewayPaymentID, req.GatewaySignature) {
		logger.Warn("checkout signature mismatch",
			logger.String("payment_id", pay.ID.String()),
			logger.String("order_id", req.GatewayOrderID))
		if err := uc.settleFailure(ctx, pay, "checkout signature mismatch"); err != nil {
			logger.Error("failed to record signature failure", logger.Err(err),
				logger.String("payment_id", pay.ID.String()))
		}
		return nil, apperr.BadRequest("invalid payment signature")
	}

	won, err := uc.paymentRepo.CompletePayment(ctx, pay.ID, req.GatewayPaymentID, req.GatewaySignature, pay.Amount)
	if err != nil {
		return nil, err
	}
	if !won {
		// The webhook got there first; report the settled record.
		settled, err := uc.paymentRepo.GetPayment(ctx, pay.ID)
		if err != nil {
			return nil, err
		}
		if settled.Status.IsPaid() && settled.GatewayPaymentID == req.GatewayPaymentID {
			return settled, nil
		}
		return nil, apperr.Conflict("payment already settled with a different capture")
	}

	pay.Status = models.PaymentStatusCompleted
	pay.GatewayPaymentID = req.GatewayPaymentID
	pay.PaidAmount = pay.Amount
	uc.onPaymentSettled(ctx, pay, bk.ID)
	return pay, nil
}

// HandleWebhook settles a payment from a gateway webhook delivery. Only an
// invalid signature is reported as an error; once the signature checks out
// every delivery is acknowledged, so the gateway never retries events we
// cannot act on.
func (uc *paymentUC) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	if !uc.paymentGW.VerifyWebhookSignature(body, signature) {
		return apperr.Unauthorized("invalid webhook signature")
	}

	if err := uc.processWebhook(ctx, body); err != nil {
		logger.Error("webhook processing failed, acknowledging delivery", logger.Err(err))
	}
	return nil
}

// processWebhook applies a signature-verified webhook event. Unknown orders
// and already-settled payments are skipped without error.
func (uc *paymentUC) processWebhook(ctx context.Context, body []byte) error {
	var event webhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return apperr.BadRequest("malformed webhook payload")
	}
	entity := event.Payload.Payment.Entity
	if entity.OrderID == "" {
		return apperr.BadRequest("webhook payload carries no order")
	}

	pay, err := uc.paymentRepo.GetPaymentByOrderID(ctx, entity.OrderID)
	if err != nil {
		if apperr.IsCode(err, 404) {
			logger.Warn("webhook for unknown order acknowledged",
				logger.String("order_id", entity.OrderID),
				logger.String("event", event.Event))
			return nil
		}
		return err
	}
	if pay.Status != models.PaymentStatusPending {
		// Verify path or an earlier delivery already settled it.
		return nil
	}

	switch event.Event {
	case webhookPaymentCaptured:
		return uc.settleCapture(ctx, pay, entity.ID, entity.Amount)
	case webhookPaymentFailed:
		return uc.settleFailure(ctx, pay, entity.ErrorDescription)
	default:
		logger.Debug("ignoring webhook event", logger.String("event", event.Event))
		return nil
	}
}

// settleCapture records a captured webhook payment. A capture below the full
// amount is an advance; either way the booking confirms.
func (uc *paymentUC) settleCapture(ctx context.Context, pay *models.Payment, gatewayPaymentID string, amountMinor int64) error {
	paid := int(amountMinor / 100)

	var (
		won bool
		err error
	)
	if amountMinor < pay.AmountMinor() {
		won, err = uc.paymentRepo.MarkAdvancePaid(ctx, pay.ID, gatewayPaymentID, paid)
		pay.Status = models.PaymentStatusAdvancePaid
	} else {
		won, err = uc.paymentRepo.CompletePayment(ctx, pay.ID, gatewayPaymentID, "", paid)
		pay.Status = models.PaymentStatusCompleted
	}
	if err != nil {
		return err
	}
	if !won {
		// Lost the race against the verify path.
		return nil
	}

	pay.GatewayPaymentID = gatewayPaymentID
	pay.PaidAmount = paid
	if pay.BookingID != nil {
		uc.onPaymentSettled(ctx, pay, *pay.BookingID)
	}
	return nil
}

// settleFailure records a failed webhook payment and rejects the booking
func (uc *paymentUC) settleFailure(ctx context.Context, pay *models.Payment, reason string) error {
	ok, err := uc.paymentRepo.FailPayment(ctx, pay.ID, reason)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	pay.Status = models.PaymentStatusFailed
	pay.FailureReason = reason

	logger.Info("payment failed",
		logger.String("payment_id", pay.ID.String()),
		logger.String("reason", reason))

	if err := uc.paymentGW.PublishPaymentFailed(ctx, pay); err != nil {
		logger.Warn("failed to publish payment failed event", logger.Err(err))
	}

	if pay.BookingID != nil {
		rejected, err := uc.bookingRepo.UpdateStatus(ctx, *pay.BookingID,
			models.BookingStatusPending, models.BookingStatusRejected, nil)
		if err != nil {
			logger.Error("failed to reject booking after payment failure", logger.Err(err),
				logger.String("booking_id", pay.BookingID.String()))
			return nil
		}
		if rejected {
			if bk, err := uc.bookingRepo.GetBooking(ctx, *pay.BookingID); err == nil {
				if err := uc.bookingGW.PublishBookingRejected(ctx, bk); err != nil {
					logger.Warn("failed to publish booking rejected event", logger.Err(err))
				}
			}
		}
	}
	return nil
}

// onPaymentSettled runs the side effects of winning the settlement race:
// confirm the booking and publish events. Only the CAS winner reaches here,
// so notifications go out exactly once per settlement.
func (uc *paymentUC) onPaymentSettled(ctx context.Context, pay *models.Payment, bookingID uuid.UUID) {
	logger.Info("payment settled",
		logger.String("payment_id", pay.ID.String()),
		logger.String("status", string(pay.Status)),
		logger.Int("paid_amount", pay.PaidAmount))

	if err := uc.paymentGW.PublishPaymentCompleted(ctx, pay); err != nil {
		logger.Warn("failed to publish payment completed event", logger.Err(err))
	}

	confirmed, err := uc.bookingRepo.UpdateStatus(ctx, bookingID,
		models.BookingStatusPending, models.BookingStatusConfirmed, nil)
	if err != nil {
		logger.Error("failed to confirm booking after settlement", logger.Err(err),
			logger.String("payment_id", pay.ID.String()))
		return
	}
	if !confirmed {
		return
	}
	if bk, err := uc.bookingRepo.GetBooking(ctx, bookingID); err == nil {
		if err := uc.bookingGW.PublishBookingConfirmed(ctx, bk); err != nil {
			logger.Warn("failed to publish booking confirmed event", logger.Err(err))
		}
	}
}
