package payment

import (
	"context"

	"github.com/google/uuid"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
)

// PaymentRepo defines the interface for payment data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/cabBazarApp/cabbazar-backend-sub000/services/payment PaymentRepo
type PaymentRepo interface {
	GetPayment(ctx context.Context, paymentID uuid.UUID) (*models.Payment, error)
	GetPaymentByOrderID(ctx context.Context, gatewayOrderID string) (*models.Payment, error)

	// Compare-and-set settlement operations. Each flips the row only when it
	// is still pending and reports whether this caller won the transition.
	CompletePayment(ctx context.Context, paymentID uuid.UUID, gatewayPaymentID, signature string, paidAmount int) (bool, error)
	MarkAdvancePaid(ctx context.Context, paymentID uuid.UUID, gatewayPaymentID string, paidAmount int) (bool, error)
	FailPayment(ctx context.Context, paymentID uuid.UUID, reason string) (bool, error)

	MarkRefunded(ctx context.Context, paymentID uuid.UUID, refundID string, refundAmount int, status models.PaymentStatus) error
}
