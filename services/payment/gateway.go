package payment

import (
	"context"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
)

// PaymentGW defines the interface for payment gateway operations
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/cabBazarApp/cabbazar-backend-sub000/services/payment PaymentGW
type PaymentGW interface {
	// Razorpay order and refund API calls
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (string, error)
	CreateRefund(ctx context.Context, gatewayPaymentID string, amountMinor int64) (string, error)

	// Signature checks. VerifyCheckoutSignature covers the client callback
	// signature over "orderID|paymentID"; VerifyWebhookSignature covers the
	// raw webhook body with the webhook secret.
	VerifyCheckoutSignature(orderID, paymentID, signature string) bool
	VerifyWebhookSignature(body []byte, signature string) bool

	// Payment lifecycle events
	PublishPaymentCompleted(ctx context.Context, payment *models.Payment) error
	PublishPaymentFailed(ctx context.Context, payment *models.Payment) error
	PublishPaymentRefunded(ctx context.Context, payment *models.Payment) error
}
