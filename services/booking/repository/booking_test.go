package repository_test

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/apperr"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
	"github.com/cabBazarApp/cabbazar-backend-sub000/services/booking/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

var bookingCols = []string{
	"id", "code", "user_id", "driver_id", "trip_type", "vehicle_class", "package_code",
	"pickup", "drop_location", "via", "start_time", "end_time", "passenger", "fare",
	"status", "payment_id",
	"cancelled_by", "cancellation_reason", "cancellation_charge", "cancelled_at",
	"rating_value", "rating_comment", "rated_at",
	"actual_start", "actual_end", "created_at", "updated_at",
}

func mustJSON(t *testing.T, v interface{}) []byte {
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestCreateBookingWithPayment_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db, nil)

	bk := &models.Booking{
		ID:           uuid.New(),
		Code:         "CB3FK92QX1",
		UserID:       uuid.New(),
		TripType:     models.TripTypeOneWay,
		VehicleClass: models.VehicleSedan,
		Pickup:       models.Location{City: "Delhi"},
		Drop:         models.Location{City: "Jaipur"},
		StartTime:    time.Now().Add(48 * time.Hour),
		Status:       models.BookingStatusPending,
	}
	pay := &models.Payment{
		ID:       uuid.New(),
		Amount:   3623,
		Currency: "INR",
		Status:   models.PaymentStatusPending,
		Method:   models.PaymentMethodUPI,
	}
	bk.PaymentID = pay.ID

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payments")).
		WithArgs(pay.ID, pay.Amount, pay.Currency, pay.Status, pay.Method,
			pay.GatewayOrderID, pay.GatewayPaymentID, pay.GatewaySignature,
			pay.FailureReason, pay.RefundID, pay.RefundAmount, pay.PaidAmount,
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).
		WithArgs(bk.ID, bk.Code, bk.UserID, bk.DriverID, bk.TripType, bk.VehicleClass,
			bk.PackageCode, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), bk.EndTime, sqlmock.AnyArg(), sqlmock.AnyArg(),
			bk.Status, bk.PaymentID, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE payments SET booking_id")).
		WithArgs(bk.ID, sqlmock.AnyArg(), pay.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CreateBookingWithPayment(context.Background(), bk, pay)

	assert.NoError(t, err)
	require.NotNil(t, pay.BookingID)
	assert.Equal(t, bk.ID, *pay.BookingID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingWithPayment_RollsBackOnBookingInsert(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db, nil)

	bk := &models.Booking{ID: uuid.New(), Code: "CB3FK92QX1", UserID: uuid.New(),
		TripType: models.TripTypeOneWay, VehicleClass: models.VehicleSedan,
		StartTime: time.Now(), Status: models.BookingStatusPending}
	pay := &models.Payment{ID: uuid.New(), Amount: 3623, Currency: "INR",
		Status: models.PaymentStatusPending, Method: models.PaymentMethodUPI}
	bk.PaymentID = pay.ID

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payments")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.CreateBookingWithPayment(context.Background(), bk, pay)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBooking_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db, nil)

	bookingID := uuid.New()
	userID := uuid.New()
	paymentID := uuid.New()
	now := time.Now()

	pickup := mustJSON(t, models.Location{City: "Delhi"})
	drop := mustJSON(t, models.Location{City: "Jaipur"})
	passenger := mustJSON(t, models.Passenger{Name: "Asha", Phone: "9876543210"})
	fare := mustJSON(t, models.FareBreakdown{BaseFare: 3450, GST: 173, FinalAmount: 3623})

	rows := sqlmock.NewRows(bookingCols).AddRow(
		bookingID.String(), "CB3FK92QX1", userID.String(), nil, "one_way", "sedan", nil,
		pickup, drop, nil, now.Add(48*time.Hour), nil, passenger, fare,
		"confirmed", paymentID.String(),
		nil, nil, nil, nil,
		nil, nil, nil,
		nil, nil, now, now,
	)

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).
		WithArgs(bookingID).
		WillReturnRows(rows)

	bk, err := repo.GetBooking(context.Background(), bookingID)

	require.NoError(t, err)
	assert.Equal(t, bookingID, bk.ID)
	assert.Equal(t, "Delhi", bk.Pickup.City)
	assert.Equal(t, 3623, bk.Fare.FinalAmount)
	assert.Nil(t, bk.DriverID)
	assert.Nil(t, bk.Cancellation)
	assert.Nil(t, bk.Rating)
}

func TestGetBooking_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db, nil)

	bookingID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).
		WithArgs(bookingID).
		WillReturnRows(sqlmock.NewRows(bookingCols))

	_, err := repo.GetBooking(context.Background(), bookingID)

	assert.True(t, apperr.IsCode(err, 404))
}

func TestUpdateStatus_WinnerAndLoser(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db, nil)

	bookingID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings")).
		WithArgs(models.BookingStatusConfirmed, nil, sqlmock.AnyArg(), bookingID, models.BookingStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	won, err := repo.UpdateStatus(context.Background(), bookingID,
		models.BookingStatusPending, models.BookingStatusConfirmed, nil)
	assert.NoError(t, err)
	assert.True(t, won)

	// concurrent caller already moved it; zero rows affected
	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings")).
		WithArgs(models.BookingStatusConfirmed, nil, sqlmock.AnyArg(), bookingID, models.BookingStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))

	won, err = repo.UpdateStatus(context.Background(), bookingID,
		models.BookingStatusPending, models.BookingStatusConfirmed, nil)
	assert.NoError(t, err)
	assert.False(t, won)
}

func TestCancelBooking_SecondAttemptLoses(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db, nil)

	bookingID := uuid.New()
	cancellation := &models.Cancellation{
		CancelledBy: models.RoleCustomer,
		Reason:      "change of plans",
		Charge:      725,
		CancelledAt: time.Now(),
	}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings")).
		WithArgs(models.BookingStatusCancelled, cancellation.CancelledBy, cancellation.Reason,
			cancellation.Charge, cancellation.CancelledAt, sqlmock.AnyArg(), bookingID,
			models.BookingStatusPending, models.BookingStatusConfirmed, models.BookingStatusAssigned).
		WillReturnResult(sqlmock.NewResult(0, 1))

	won, err := repo.CancelBooking(context.Background(), bookingID, cancellation)
	assert.NoError(t, err)
	assert.True(t, won)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	won, err = repo.CancelBooking(context.Background(), bookingID, cancellation)
	assert.NoError(t, err)
	assert.False(t, won)
}

func TestSetRating_OnlyOnce(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db, nil)

	bookingID := uuid.New()
	rating := &models.Rating{Value: 5, Comment: "smooth trip", RatedAt: time.Now()}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings")).
		WithArgs(rating.Value, rating.Comment, rating.RatedAt, sqlmock.AnyArg(),
			bookingID, models.BookingStatusCompleted).
		WillReturnResult(sqlmock.NewResult(0, 0))

	won, err := repo.SetRating(context.Background(), bookingID, rating)
	assert.NoError(t, err)
	assert.False(t, won)
}

func TestUpdateFare_UpdatesBookingAndPayment(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db, nil)

	bookingID := uuid.New()
	fare := &models.FareBreakdown{BaseFare: 3450, DiscountAmount: 200, GST: 163, FinalAmount: 3413}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET fare")).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), bookingID, models.BookingStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE payments SET amount")).
		WithArgs(fare.FinalAmount, sqlmock.AnyArg(), bookingID, models.PaymentStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	won, err := repo.UpdateFare(context.Background(), bookingID, fare)
	assert.NoError(t, err)
	assert.True(t, won)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateFare_NotPendingLoses(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db, nil)

	bookingID := uuid.New()
	fare := &models.FareBreakdown{FinalAmount: 3413}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET fare")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	won, err := repo.UpdateFare(context.Background(), bookingID, fare)
	assert.NoError(t, err)
	assert.False(t, won)
}

func TestGetDriver_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db, nil)

	driverID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM drivers WHERE id = $1")).
		WithArgs(driverID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "vehicle_class", "completed_rides", "active", "created_at"}))

	_, err := repo.GetDriver(context.Background(), driverID)

	assert.True(t, apperr.IsCode(err, 404))
}

func TestIncrementDriverRides_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db, nil)

	driverID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE drivers SET completed_rides")).
		WithArgs(driverID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.IncrementDriverRides(context.Background(), driverID)
	assert.NoError(t, err)
}
