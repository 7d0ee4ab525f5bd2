package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/apperr"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
)

func TestUpdateStatus_CustomerForbidden(t *testing.T) {
	f := newBookingUCFixture(t)
	actor := customerActor()

	_, err := f.uc.UpdateStatus(context.Background(), actor, uuid.New(),
		&models.UpdateStatusRequest{Status: models.BookingStatusConfirmed})

	assert.True(t, apperr.IsCode(err, 403))
}

func TestUpdateStatus_DriverCannotConfirm(t *testing.T) {
	f := newBookingUCFixture(t)
	driver := models.Actor{UserID: uuid.New(), Role: models.RoleDriver}

	_, err := f.uc.UpdateStatus(context.Background(), driver, uuid.New(),
		&models.UpdateStatusRequest{Status: models.BookingStatusConfirmed})

	assert.True(t, apperr.IsCode(err, 403))
}

func TestUpdateStatus_IllegalTransitionConflicts(t *testing.T) {
	f := newBookingUCFixture(t)
	admin := models.Actor{UserID: uuid.New(), Role: models.RoleAdmin}
	bookingID := uuid.New()

	f.repo.EXPECT().GetBooking(gomock.Any(), bookingID).
		Return(&models.Booking{ID: bookingID, Status: models.BookingStatusPending}, nil)

	_, err := f.uc.UpdateStatus(context.Background(), admin, bookingID,
		&models.UpdateStatusRequest{Status: models.BookingStatusInProgress})

	assert.True(t, apperr.IsCode(err, 409))
}

func TestUpdateStatus_TerminalStateBadRequest(t *testing.T) {
	f := newBookingUCFixture(t)
	admin := models.Actor{UserID: uuid.New(), Role: models.RoleAdmin}
	bookingID := uuid.New()

	f.repo.EXPECT().GetBooking(gomock.Any(), bookingID).
		Return(&models.Booking{ID: bookingID, Status: models.BookingStatusCompleted}, nil)

	_, err := f.uc.UpdateStatus(context.Background(), admin, bookingID,
		&models.UpdateStatusRequest{Status: models.BookingStatusCancelled})

	assert.True(t, apperr.IsCode(err, 400))
	assert.Contains(t, apperr.MessageOf(err), "final state")
}

func TestUpdateStatus_DriverMustOwnBooking(t *testing.T) {
	f := newBookingUCFixture(t)
	driver := models.Actor{UserID: uuid.New(), Role: models.RoleDriver}
	bookingID := uuid.New()
	otherDriverID := uuid.New()

	f.repo.EXPECT().GetBooking(gomock.Any(), bookingID).
		Return(&models.Booking{ID: bookingID, Status: models.BookingStatusAssigned, DriverID: &otherDriverID}, nil)

	_, err := f.uc.UpdateStatus(context.Background(), driver, bookingID,
		&models.UpdateStatusRequest{Status: models.BookingStatusInProgress})

	assert.True(t, apperr.IsCode(err, 403))
}

func TestUpdateStatus_DriverWithoutAssignmentForbidden(t *testing.T) {
	f := newBookingUCFixture(t)
	driver := models.Actor{UserID: uuid.New(), Role: models.RoleDriver}
	bookingID := uuid.New()

	f.repo.EXPECT().GetBooking(gomock.Any(), bookingID).
		Return(&models.Booking{ID: bookingID, Status: models.BookingStatusConfirmed}, nil)

	_, err := f.uc.UpdateStatus(context.Background(), driver, bookingID,
		&models.UpdateStatusRequest{Status: models.BookingStatusCancelled})

	assert.True(t, apperr.IsCode(err, 403))
}

func TestUpdateStatus_AssignRequiresMatchingDriver(t *testing.T) {
	f := newBookingUCFixture(t)
	admin := models.Actor{UserID: uuid.New(), Role: models.RoleAdmin}
	bookingID := uuid.New()
	driverID := uuid.New()

	f.repo.EXPECT().GetBooking(gomock.Any(), bookingID).
		Return(&models.Booking{ID: bookingID, Status: models.BookingStatusConfirmed, VehicleClass: models.VehicleSedan}, nil)
	f.repo.EXPECT().GetDriver(gomock.Any(), driverID).
		Return(&models.Driver{ID: driverID, VehicleClass: models.VehicleSUV, Active: true}, nil)

	_, err := f.uc.UpdateStatus(context.Background(), admin, bookingID,
		&models.UpdateStatusRequest{Status: models.BookingStatusAssigned, DriverID: &driverID})

	assert.True(t, apperr.IsCode(err, 409))
}

func TestUpdateStatus_AssignSetsDriver(t *testing.T) {
	f := newBookingUCFixture(t)
	admin := models.Actor{UserID: uuid.New(), Role: models.RoleAdmin}
	bookingID := uuid.New()
	driverID := uuid.New()

	pending := &models.Booking{ID: bookingID, Status: models.BookingStatusConfirmed, VehicleClass: models.VehicleSedan}
	assigned := &models.Booking{ID: bookingID, Status: models.BookingStatusAssigned, VehicleClass: models.VehicleSedan, DriverID: &driverID}

	f.repo.EXPECT().GetBooking(gomock.Any(), bookingID).Return(pending, nil)
	f.repo.EXPECT().GetDriver(gomock.Any(), driverID).
		Return(&models.Driver{ID: driverID, VehicleClass: models.VehicleSedan, Active: true}, nil)
	f.repo.EXPECT().UpdateStatus(gomock.Any(), bookingID, models.BookingStatusConfirmed, models.BookingStatusAssigned, &driverID).
		Return(true, nil)
	f.repo.EXPECT().GetBooking(gomock.Any(), bookingID).Return(assigned, nil)

	bk, err := f.uc.UpdateStatus(context.Background(), admin, bookingID,
		&models.UpdateStatusRequest{Status: models.BookingStatusAssigned, DriverID: &driverID})

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusAssigned, bk.Status)
	assert.Equal(t, &driverID, bk.DriverID)
}

func TestUpdateStatus_CompletionStampsTripAndCounters(t *testing.T) {
	f := newBookingUCFixture(t)
	driver := models.Actor{UserID: uuid.New(), Role: models.RoleDriver}
	bookingID := uuid.New()
	driverID := driver.UserID

	inProgress := &models.Booking{ID: bookingID, Status: models.BookingStatusInProgress, DriverID: &driverID}
	completed := &models.Booking{ID: bookingID, Status: models.BookingStatusCompleted, DriverID: &driverID}

	f.repo.EXPECT().GetBooking(gomock.Any(), bookingID).Return(inProgress, nil)
	f.repo.EXPECT().UpdateStatus(gomock.Any(), bookingID, models.BookingStatusInProgress, models.BookingStatusCompleted, nil).
		Return(true, nil)
	f.repo.EXPECT().CompleteTrip(gomock.Any(), bookingID, gomock.Any()).Return(true, nil)
	f.repo.EXPECT().IncrementDriverRides(gomock.Any(), driverID).Return(nil)
	f.gw.EXPECT().PublishBookingCompleted(gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().GetBooking(gomock.Any(), bookingID).Return(completed, nil)

	bk, err := f.uc.UpdateStatus(context.Background(), driver, bookingID,
		&models.UpdateStatusRequest{Status: models.BookingStatusCompleted})

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCompleted, bk.Status)
}

func TestUpdateStatus_ConcurrentLoserConflicts(t *testing.T) {
	f := newBookingUCFixture(t)
	admin := models.Actor{UserID: uuid.New(), Role: models.RoleAdmin}
	bookingID := uuid.New()

	f.repo.EXPECT().GetBooking(gomock.Any(), bookingID).
		Return(&models.Booking{ID: bookingID, Status: models.BookingStatusPending}, nil)
	f.repo.EXPECT().UpdateStatus(gomock.Any(), bookingID, models.BookingStatusPending, models.BookingStatusConfirmed, nil).
		Return(false, nil)

	_, err := f.uc.UpdateStatus(context.Background(), admin, bookingID,
		&models.UpdateStatusRequest{Status: models.BookingStatusConfirmed})

	assert.True(t, apperr.IsCode(err, 409))
}
