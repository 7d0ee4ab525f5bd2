package payment

import (
	"context"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
)

// PaymentUC defines the interface for payment business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/cabBazarApp/cabbazar-backend-sub000/services/payment PaymentUC
type PaymentUC interface {
	// PrepareOrder creates a gateway order for an online payment and sets
	// the order ID on the payment record in place.
	PrepareOrder(ctx context.Context, payment *models.Payment) (*models.PaymentInit, error)

	// VerifyPayment settles a payment from the client-side callback.
	VerifyPayment(ctx context.Context, actor models.Actor, req *models.VerifyPaymentRequest) (*models.Payment, error)

	// HandleWebhook settles a payment from a gateway webhook delivery.
	HandleWebhook(ctx context.Context, body []byte, signature string) error

	// RefundPayment issues a gateway refund for a settled payment.
	RefundPayment(ctx context.Context, payment *models.Payment, amount int) (*models.Payment, error)
}
