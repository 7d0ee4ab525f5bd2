package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/apperr"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/database"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
)

// BookingRepo persists bookings in Postgres and search sessions in Redis
type BookingRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	redis *database.RedisClient
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redis *database.RedisClient,
) *BookingRepo {
	return &BookingRepo{
		cfg:   cfg,
		db:    db,
		redis: redis,
	}
}

const bookingColumns = `
	id, code, user_id, driver_id, trip_type, vehicle_class, package_code,
	pickup, drop_location, via, start_time, end_time, passenger, fare,
	status, payment_id,
	cancelled_by, cancellation_reason, cancellation_charge, cancelled_at,
	rating_value, rating_comment, rated_at,
	actual_start, actual_end, created_at, updated_at`

// CreateBookingWithPayment inserts the payment and booking rows in one
// transaction. The payment row is written first so the booking can carry a
// foreign key to it, then the payment is backfilled with the booking ID.
// Either both rows exist afterwards or neither does.
func (r *BookingRepo) CreateBookingWithPayment(ctx context.Context, booking *models.Booking, payment *models.Payment) error {
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	payment.CreatedAt = now
	payment.UpdatedAt = now

	pickup, err := json.Marshal(booking.Pickup)
	if err != nil {
		return fmt.Errorf("failed to marshal pickup: %w", err)
	}
	drop, err := json.Marshal(booking.Drop)
	if err != nil {
		return fmt.Errorf("failed to marshal drop: %w", err)
	}
	via, err := json.Marshal(booking.Via)
	if err != nil {
		return fmt.Errorf("failed to marshal via stops: %w", err)
	}
	passenger, err := json.Marshal(booking.Passenger)
	if err != nil {
		return fmt.Errorf("failed to marshal passenger: %w", err)
	}
	fare, err := json.Marshal(booking.Fare)
	if err != nil {
		return fmt.Errorf("failed to marshal fare: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO payments (
			id, booking_id, amount, currency, status, method,
			gateway_order_id, gateway_payment_id, gateway_signature,
			failure_reason, refund_id, refund_amount, paid_amount,
			created_at, updated_at
		) VALUES ($1, NULL, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`,
		payment.ID,
		payment.Amount,
		payment.Currency,
		payment.Status,
		payment.Method,
		payment.GatewayOrderID,
		payment.GatewayPaymentID,
		payment.GatewaySignature,
		payment.FailureReason,
		payment.RefundID,
		payment.RefundAmount,
		payment.PaidAmount,
		payment.CreatedAt,
		payment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO bookings (
			id, code, user_id, driver_id, trip_type, vehicle_class, package_code,
			pickup, drop_location, via, start_time, end_time, passenger, fare,
			status, payment_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`,
		booking.ID,
		booking.Code,
		booking.UserID,
		booking.DriverID,
		booking.TripType,
		booking.VehicleClass,
		booking.PackageCode,
		pickup,
		drop,
		via,
		booking.StartTime,
		booking.EndTime,
		passenger,
		fare,
		booking.Status,
		booking.PaymentID,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE payments SET booking_id = $1, updated_at = $2 WHERE id = $3
	`, booking.ID, now, payment.ID)
	if err != nil {
		return fmt.Errorf("failed to link payment to booking: %w", err)
	}
	payment.BookingID = &booking.ID

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetBooking retrieves a booking by ID
func (r *BookingRepo) GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, bookingID)
	booking, err := scanBooking(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NotFound("booking not found")
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return booking, nil
}

// ListBookingsByUser retrieves all bookings for a user, newest first
func (r *BookingRepo) ListBookingsByUser(ctx context.Context, userID uuid.UUID) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

// ListBookings retrieves the most recent bookings across all users
func (r *BookingRepo) ListBookings(ctx context.Context, limit int) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

// UpdateStatus moves a booking from one status to another, optionally
// assigning a driver. The WHERE clause pins the prior status so concurrent
// updaters cannot both win.
func (r *BookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, from, to models.BookingStatus, driverID *uuid.UUID) (bool, error) {
	query := `
		UPDATE bookings
		SET status = $1, driver_id = COALESCE($2, driver_id), updated_at = $3
		WHERE id = $4 AND status = $5
	`
	result, err := r.db.ExecContext(ctx, query, to, driverID, time.Now(), bookingID, from)
	if err != nil {
		return false, fmt.Errorf("failed to update booking status: %w", err)
	}
	return oneRowAffected(result)
}

// MarkTripStarted stamps the actual trip start time once
func (r *BookingRepo) MarkTripStarted(ctx context.Context, bookingID uuid.UUID, at time.Time) (bool, error) {
	query := `
		UPDATE bookings SET actual_start = $1, updated_at = $2
		WHERE id = $3 AND actual_start IS NULL
	`
	result, err := r.db.ExecContext(ctx, query, at, time.Now(), bookingID)
	if err != nil {
		return false, fmt.Errorf("failed to mark trip started: %w", err)
	}
	return oneRowAffected(result)
}

// CompleteTrip stamps the actual trip end time once
func (r *BookingRepo) CompleteTrip(ctx context.Context, bookingID uuid.UUID, at time.Time) (bool, error) {
	query := `
		UPDATE bookings SET actual_end = $1, updated_at = $2
		WHERE id = $3 AND actual_end IS NULL
	`
	result, err := r.db.ExecContext(ctx, query, at, time.Now(), bookingID)
	if err != nil {
		return false, fmt.Errorf("failed to complete trip: %w", err)
	}
	return oneRowAffected(result)
}

// CancelBooking moves a booking to cancelled and writes the cancellation
// record, only when the booking is still in a cancellable state and has not
// been cancelled before
func (r *BookingRepo) CancelBooking(ctx context.Context, bookingID uuid.UUID, cancellation *models.Cancellation) (bool, error) {
	query := `
		UPDATE bookings
		SET status = $1,
			cancelled_by = $2, cancellation_reason = $3,
			cancellation_charge = $4, cancelled_at = $5,
			updated_at = $6
		WHERE id = $7
		  AND status IN ($8, $9, $10)
		  AND cancelled_at IS NULL
	`
	result, err := r.db.ExecContext(ctx, query,
		models.BookingStatusCancelled,
		cancellation.CancelledBy,
		cancellation.Reason,
		cancellation.Charge,
		cancellation.CancelledAt,
		time.Now(),
		bookingID,
		models.BookingStatusPending,
		models.BookingStatusConfirmed,
		models.BookingStatusAssigned,
	)
	if err != nil {
		return false, fmt.Errorf("failed to cancel booking: %w", err)
	}
	return oneRowAffected(result)
}

// SetRating writes the customer rating once on a completed booking
func (r *BookingRepo) SetRating(ctx context.Context, bookingID uuid.UUID, rating *models.Rating) (bool, error) {
	query := `
		UPDATE bookings
		SET rating_value = $1, rating_comment = $2, rated_at = $3, updated_at = $4
		WHERE id = $5 AND status = $6 AND rating_value IS NULL
	`
	result, err := r.db.ExecContext(ctx, query,
		rating.Value,
		rating.Comment,
		rating.RatedAt,
		time.Now(),
		bookingID,
		models.BookingStatusCompleted,
	)
	if err != nil {
		return false, fmt.Errorf("failed to set rating: %w", err)
	}
	return oneRowAffected(result)
}

// UpdateFare replaces the fare breakdown and keeps the payment amount in
// step. Allowed only while the booking is still pending payment.
func (r *BookingRepo) UpdateFare(ctx context.Context, bookingID uuid.UUID, fare *models.FareBreakdown) (bool, error) {
	fareJSON, err := json.Marshal(fare)
	if err != nil {
		return false, fmt.Errorf("failed to marshal fare: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	result, err := tx.ExecContext(ctx, `
		UPDATE bookings SET fare = $1, updated_at = $2
		WHERE id = $3 AND status = $4
	`, fareJSON, now, bookingID, models.BookingStatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to update booking fare: %w", err)
	}
	updated, err := oneRowAffected(result)
	if err != nil || !updated {
		return updated, err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE payments SET amount = $1, updated_at = $2
		WHERE booking_id = $3 AND status = $4
	`, fare.FinalAmount, now, bookingID, models.PaymentStatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to update payment amount: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return true, nil
}

// GetDriver retrieves a driver by ID
func (r *BookingRepo) GetDriver(ctx context.Context, driverID uuid.UUID) (*models.Driver, error) {
	var driver models.Driver
	query := `SELECT id, name, phone, vehicle_class, completed_rides, active, created_at FROM drivers WHERE id = $1`

	err := r.db.GetContext(ctx, &driver, query, driverID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NotFound("driver not found")
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	return &driver, nil
}

// IncrementDriverRides bumps the driver's completed ride counter
func (r *BookingRepo) IncrementDriverRides(ctx context.Context, driverID uuid.UUID) error {
	query := `UPDATE drivers SET completed_rides = completed_rides + 1 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, driverID)
	if err != nil {
		return fmt.Errorf("failed to increment driver rides: %w", err)
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

// scannable covers *sql.Row and *sql.Rows
type scannable interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row scannable) (*models.Booking, error) {
	booking := &models.Booking{}
	var (
		driverID           uuid.NullUUID
		packageCode        sql.NullString
		pickup, drop, via  []byte
		endTime            sql.NullTime
		passenger, fare    []byte
		cancelledBy        sql.NullString
		cancellationReason sql.NullString
		cancellationCharge sql.NullInt64
		cancelledAt        sql.NullTime
		ratingValue        sql.NullInt64
		ratingComment      sql.NullString
		ratedAt            sql.NullTime
		actualStart        sql.NullTime
		actualEnd          sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.Code,
		&booking.UserID,
		&driverID,
		&booking.TripType,
		&booking.VehicleClass,
		&packageCode,
		&pickup,
		&drop,
		&via,
		&booking.StartTime,
		&endTime,
		&passenger,
		&fare,
		&booking.Status,
		&booking.PaymentID,
		&cancelledBy,
		&cancellationReason,
		&cancellationCharge,
		&cancelledAt,
		&ratingValue,
		&ratingComment,
		&ratedAt,
		&actualStart,
		&actualEnd,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if driverID.Valid {
		booking.DriverID = &driverID.UUID
	}
	if packageCode.Valid {
		booking.PackageCode = packageCode.String
	}
	if endTime.Valid {
		booking.EndTime = &endTime.Time
	}
	if err := json.Unmarshal(pickup, &booking.Pickup); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pickup: %w", err)
	}
	if err := json.Unmarshal(drop, &booking.Drop); err != nil {
		return nil, fmt.Errorf("failed to unmarshal drop: %w", err)
	}
	if len(via) > 0 {
		if err := json.Unmarshal(via, &booking.Via); err != nil {
			return nil, fmt.Errorf("failed to unmarshal via stops: %w", err)
		}
	}
	if err := json.Unmarshal(passenger, &booking.Passenger); err != nil {
		return nil, fmt.Errorf("failed to unmarshal passenger: %w", err)
	}
	if err := json.Unmarshal(fare, &booking.Fare); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fare: %w", err)
	}
	if cancelledAt.Valid {
		booking.Cancellation = &models.Cancellation{
			CancelledBy: models.Role(cancelledBy.String),
			Reason:      cancellationReason.String,
			Charge:      int(cancellationCharge.Int64),
			CancelledAt: cancelledAt.Time,
		}
	}
	if ratingValue.Valid {
		booking.Rating = &models.Rating{
			Value:   int(ratingValue.Int64),
			Comment: ratingComment.String,
			RatedAt: ratedAt.Time,
		}
	}
	if actualStart.Valid {
		booking.Trip.ActualStart = &actualStart.Time
	}
	if actualEnd.Valid {
		booking.Trip.ActualEnd = &actualEnd.Time
	}
	return booking, nil
}

func collectBookings(rows *sql.Rows) ([]*models.Booking, error) {
	bookings := []*models.Booking{}
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookings: %w", err)
	}
	return bookings, nil
}
