package usecase

import (
	"context"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/apperr"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/logger"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
	"github.com/cabBazarApp/cabbazar-backend-sub000/services/booking"
	"github.com/cabBazarApp/cabbazar-backend-sub000/services/payment"
)

// paymentUC implements the payment.PaymentUC interface
type paymentUC struct {
	cfg         *models.Config
	paymentRepo payment.PaymentRepo
	paymentGW   payment.PaymentGW
	bookingRepo booking.BookingRepo
	bookingGW   booking.BookingGW
}

// NewPaymentUC creates a new payment use case
func NewPaymentUC(
	cfg *models.Config,
	paymentRepo payment.PaymentRepo,
	paymentGW payment.PaymentGW,
	bookingRepo booking.BookingRepo,
	bookingGW booking.BookingGW,
) (payment.PaymentUC, error) {
	return &paymentUC{
		cfg:         cfg,
		paymentRepo: paymentRepo,
		paymentGW:   paymentGW,
		bookingRepo: bookingRepo,
		bookingGW:   bookingGW,
	}, nil
}

// PrepareOrder creates the gateway order for an online payment and fills in
// the client widget parameters. The order ID is written onto the payment
// record in place; persisting it is the caller's job.
func (uc *paymentUC) PrepareOrder(ctx context.Context, pay *models.Payment) (*models.PaymentInit, error) {
	if !pay.Method.IsOnline() {
		return nil, apperr.BadRequest("cash payments do not use the payment gateway")
	}

	orderID, err := uc.paymentGW.CreateOrder(ctx, pay.AmountMinor(), pay.Currency, pay.ID.String())
	if err != nil {
		logger.Error("gateway order creation failed", logger.Err(err),
			logger.String("payment_id", pay.ID.String()))
		return nil, apperr.Unavailable("payment gateway unavailable, try again shortly").WithErr(err)
	}
	pay.GatewayOrderID = orderID

	return &models.PaymentInit{
		GatewayOrderID: orderID,
		AmountMinor:    pay.AmountMinor(),
		Currency:       pay.Currency,
		KeyID:          uc.cfg.Gateway.KeyID,
	}, nil
}

// RefundPayment issues a gateway refund against a captured payment and
// records it. A refund covering everything captured marks the payment
// refunded; anything less marks it partially refunded.
func (uc *paymentUC) RefundPayment(ctx context.Context, pay *models.Payment, amount int) (*models.Payment, error) {
	if !pay.Status.IsPaid() {
		return nil, apperr.Conflictf("payment in status %s cannot be refunded", pay.Status)
	}
	if !pay.Method.IsOnline() || pay.GatewayPaymentID == "" {
		return nil, apperr.BadRequest("payment has no gateway capture to refund")
	}
	if amount <= 0 || amount > pay.PaidAmount {
		return nil, apperr.BadRequestf("refund amount must be between 1 and %d", pay.PaidAmount)
	}

	refundID, err := uc.paymentGW.CreateRefund(ctx, pay.GatewayPaymentID, int64(amount)*100)
	if err != nil {
		return nil, apperr.Unavailable("payment gateway unavailable, try again shortly").WithErr(err)
	}

	status := models.PaymentStatusPartiallyRefunded
	if amount == pay.PaidAmount {
		status = models.PaymentStatusRefunded
	}
	if err := uc.paymentRepo.MarkRefunded(ctx, pay.ID, refundID, amount, status); err != nil {
		return nil, err
	}

	pay.Status = status
	pay.RefundID = refundID
	pay.RefundAmount = amount

	logger.Info("payment refunded",
		logger.String("payment_id", pay.ID.String()),
		logger.String("refund_id", refundID),
		logger.Int("amount", amount))

	if err := uc.paymentGW.PublishPaymentRefunded(ctx, pay); err != nil {
		logger.Warn("failed to publish payment refunded event", logger.Err(err))
	}
	return pay, nil
}
