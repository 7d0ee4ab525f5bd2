package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/apperr"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
)

// PaymentRepo persists payment records in Postgres
type PaymentRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(cfg *models.Config, db *sqlx.DB) *PaymentRepo {
	return &PaymentRepo{
		cfg: cfg,
		db:  db,
	}
}

const paymentColumns = `
	id, booking_id, amount, currency, status, method,
	gateway_order_id, gateway_payment_id, gateway_signature,
	failure_reason, refund_id, refund_amount, paid_amount,
	created_at, updated_at`

// GetPayment retrieves a payment by ID
func (r *PaymentRepo) GetPayment(ctx context.Context, paymentID uuid.UUID) (*models.Payment, error) {
	var payment models.Payment
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	err := r.db.GetContext(ctx, &payment, query, paymentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NotFound("payment not found")
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &payment, nil
}

// GetPaymentByOrderID retrieves a payment by its gateway order ID
func (r *PaymentRepo) GetPaymentByOrderID(ctx context.Context, gatewayOrderID string) (*models.Payment, error) {
	var payment models.Payment
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE gateway_order_id = $1`

	err := r.db.GetContext(ctx, &payment, query, gatewayOrderID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NotFound("payment not found for order")
		}
		return nil, fmt.Errorf("failed to get payment by order: %w", err)
	}
	return &payment, nil
}

// CompletePayment flips a pending payment to completed. The status guard in
// the WHERE clause makes the settlement idempotent: when the verify path and
// the webhook race, exactly one caller sees affected=1.
func (r *PaymentRepo) CompletePayment(ctx context.Context, paymentID uuid.UUID, gatewayPaymentID, signature string, paidAmount int) (bool, error) {
	query := `
		UPDATE payments
		SET status = $1, gateway_payment_id = $2, gateway_signature = $3,
			paid_amount = $4, updated_at = $5
		WHERE id = $6 AND status = $7
	`
	result, err := r.db.ExecContext(ctx, query,
		models.PaymentStatusCompleted,
		gatewayPaymentID,
		signature,
		paidAmount,
		time.Now(),
		paymentID,
		models.PaymentStatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("failed to complete payment: %w", err)
	}
	return oneRowAffected(result)
}

// MarkAdvancePaid records a partial capture against a pending payment
func (r *PaymentRepo) MarkAdvancePaid(ctx context.Context, paymentID uuid.UUID, gatewayPaymentID string, paidAmount int) (bool, error) {
	query := `
		UPDATE payments
		SET status = $1, gateway_payment_id = $2, paid_amount = $3, updated_at = $4
		WHERE id = $5 AND status = $6
	`
	result, err := r.db.ExecContext(ctx, query,
		models.PaymentStatusAdvancePaid,
		gatewayPaymentID,
		paidAmount,
		time.Now(),
		paymentID,
		models.PaymentStatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("failed to mark advance paid: %w", err)
	}
	return oneRowAffected(result)
}

// FailPayment flips a pending payment to failed with the gateway's reason
func (r *PaymentRepo) FailPayment(ctx context.Context, paymentID uuid.UUID, reason string) (bool, error) {
	query := `
		UPDATE payments
		SET status = $1, failure_reason = $2, updated_at = $3
		WHERE id = $4 AND status = $5
	`
	result, err := r.db.ExecContext(ctx, query,
		models.PaymentStatusFailed,
		reason,
		time.Now(),
		paymentID,
		models.PaymentStatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("failed to fail payment: %w", err)
	}
	return oneRowAffected(result)
}

// MarkRefunded records the gateway refund against a settled payment
func (r *PaymentRepo) MarkRefunded(ctx context.Context, paymentID uuid.UUID, refundID string, refundAmount int, status models.PaymentStatus) error {
	query := `
		UPDATE payments
		SET status = $1, refund_id = $2, refund_amount = $3, updated_at = $4
		WHERE id = $5
	`
	result, err := r.db.ExecContext(ctx, query, status, refundID, refundAmount, time.Now(), paymentID)
	if err != nil {
		return fmt.Errorf("failed to mark refunded: %w", err)
	}
	affected, err := oneRowAffected(result)
	if err != nil {
		return err
	}
	if !affected {
		return apperr.NotFound("payment not found")
	}
	return nil
}

func oneRowAffected(result sql.Result) (bool, error) {
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}
