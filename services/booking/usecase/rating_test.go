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

func TestRateBooking_Success(t *testing.T) {
	f := newBookingUCFixture(t)
	actor := customerActor()
	bookingID := uuid.New()

	f.repo.EXPECT().GetBooking(gomock.Any(), bookingID).
		Return(&models.Booking{ID: bookingID, UserID: actor.UserID, Status: models.BookingStatusCompleted}, nil)
	f.repo.EXPECT().SetRating(gomock.Any(), bookingID, gomock.Any()).Return(true, nil)

	bk, err := f.uc.RateBooking(context.Background(), actor, bookingID,
		&models.RatingRequest{Value: 5, Comment: "smooth ride"})

	require.NoError(t, err)
	require.NotNil(t, bk.Rating)
	assert.Equal(t, 5, bk.Rating.Value)
}

func TestRateBooking_ValueOutOfRange(t *testing.T) {
	f := newBookingUCFixture(t)

	_, err := f.uc.RateBooking(context.Background(), customerActor(), uuid.New(),
		&models.RatingRequest{Value: 6})

	assert.True(t, apperr.IsCode(err, 400))
}

func TestRateBooking_NotCompletedConflicts(t *testing.T) {
	f := newBookingUCFixture(t)
	actor := customerActor()
	bookingID := uuid.New()

	f.repo.EXPECT().GetBooking(gomock.Any(), bookingID).
		Return(&models.Booking{ID: bookingID, UserID: actor.UserID, Status: models.BookingStatusAssigned}, nil)

	_, err := f.uc.RateBooking(context.Background(), actor, bookingID, &models.RatingRequest{Value: 4})

	assert.True(t, apperr.IsCode(err, 409))
}

func TestRateBooking_SecondRatingConflicts(t *testing.T) {
	f := newBookingUCFixture(t)
	actor := customerActor()
	bookingID := uuid.New()

	f.repo.EXPECT().GetBooking(gomock.Any(), bookingID).
		Return(&models.Booking{ID: bookingID, UserID: actor.UserID, Status: models.BookingStatusCompleted}, nil)
	f.repo.EXPECT().SetRating(gomock.Any(), bookingID, gomock.Any()).Return(false, nil)

	_, err := f.uc.RateBooking(context.Background(), actor, bookingID, &models.RatingRequest{Value: 4})

	assert.True(t, apperr.IsCode(err, 409))
}

func TestApplyDiscount_AdminOnly(t *testing.T) {
	f := newBookingUCFixture(t)

	_, err := f.uc.ApplyDiscount(context.Background(), customerActor(), uuid.New(),
		&models.ApplyDiscountRequest{Code: "FESTIVE200", Amount: 200})

	assert.True(t, apperr.IsCode(err, 403))
}

func TestApplyDiscount_RepricesFare(t *testing.T) {
	f := newBookingUCFixture(t)
	admin := models.Actor{UserID: uuid.New(), Role: models.RoleAdmin}
	bookingID := uuid.New()

	bk := &models.Booking{
		ID:     bookingID,
		Status: models.BookingStatusPending,
		Fare: models.FareBreakdown{
			BaseFare:    3450,
			GST:         173,
			FinalAmount: 3623,
			Currency:    "INR",
		},
	}
	f.repo.EXPECT().GetBooking(gomock.Any(), bookingID).Return(bk, nil)
	f.repo.EXPECT().UpdateFare(gomock.Any(), bookingID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, fb *models.FareBreakdown) (bool, error) {
			assert.Equal(t, "FESTIVE200", fb.DiscountCode)
			assert.Equal(t, 200, fb.DiscountAmount)
			assert.Equal(t, 163, fb.GST)
			assert.Equal(t, 3413, fb.FinalAmount)
			return true, nil
		})

	updated, err := f.uc.ApplyDiscount(context.Background(), admin, bookingID,
		&models.ApplyDiscountRequest{Code: "FESTIVE200", Amount: 200})

	require.NoError(t, err)
	assert.Equal(t, 3413, updated.Fare.FinalAmount)
}

func TestApplyDiscount_SecondDiscountConflicts(t *testing.T) {
	f := newBookingUCFixture(t)
	admin := models.Actor{UserID: uuid.New(), Role: models.RoleAdmin}
	bookingID := uuid.New()

	f.repo.EXPECT().GetBooking(gomock.Any(), bookingID).
		Return(&models.Booking{
			ID:     bookingID,
			Status: models.BookingStatusPending,
			Fare:   models.FareBreakdown{BaseFare: 3450, DiscountAmount: 200},
		}, nil)

	_, err := f.uc.ApplyDiscount(context.Background(), admin, bookingID,
		&models.ApplyDiscountRequest{Code: "FESTIVE300", Amount: 300})

	assert.True(t, apperr.IsCode(err, 409))
}

func TestApplyDiscount_ExceedingFareRejected(t *testing.T) {
	f := newBookingUCFixture(t)
	admin := models.Actor{UserID: uuid.New(), Role: models.RoleAdmin}
	bookingID := uuid.New()

	f.repo.EXPECT().GetBooking(gomock.Any(), bookingID).
		Return(&models.Booking{
			ID:     bookingID,
			Status: models.BookingStatusPending,
			Fare:   models.FareBreakdown{BaseFare: 3450},
		}, nil)

	_, err := f.uc.ApplyDiscount(context.Background(), admin, bookingID,
		&models.ApplyDiscountRequest{Code: "EVERYTHING", Amount: 4000})

	assert.True(t, apperr.IsCode(err, 400))
}
