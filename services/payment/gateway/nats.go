package gateway

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
)

// PublishPaymentCompleted publishes a payment completed event to NATS
func (g *PaymentGW) PublishPaymentCompleted(ctx context.Context, payment *models.Payment) error {
	return g.publishPaymentEvent(models.SubjectPaymentCompleted, payment)
}

// PublishPaymentFailed publishes a payment failed event to NATS
func (g *PaymentGW) PublishPaymentFailed(ctx context.Context, payment *models.Payment) error {
	return g.publishPaymentEvent(models.SubjectPaymentFailed, payment)
}

// PublishPaymentRefunded publishes a payment refunded event to NATS
func (g *PaymentGW) PublishPaymentRefunded(ctx context.Context, payment *models.Payment) error {
	return g.publishPaymentEvent(models.SubjectPaymentRefunded, payment)
}

func (g *PaymentGW) publishPaymentEvent(subject string, payment *models.Payment) error {
	var bookingID uuid.UUID
	if payment.BookingID != nil {
		bookingID = *payment.BookingID
	}
	event := models.PaymentEvent{
		PaymentID:        payment.ID,
		BookingID:        bookingID,
		Status:           payment.Status,
		Amount:           payment.Amount,
		GatewayOrderID:   payment.GatewayOrderID,
		GatewayPaymentID: payment.GatewayPaymentID,
		FailureReason:    payment.FailureReason,
		Timestamp:        time.Now(),
	}
	return g.natsClient.PublishJSON(subject, event)
}
