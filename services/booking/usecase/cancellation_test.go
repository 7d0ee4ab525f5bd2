package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/apperr"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
)

func paidBooking(owner models.Actor, start time.Time) (*models.Booking, *models.Payment) {
	paymentID := uuid.New()
	bookingID := uuid.New()
	bk := &models.Booking{
		ID:        bookingID,
		UserID:    owner.UserID,
		Status:    models.BookingStatusConfirmed,
		StartTime: start,
		PaymentID: paymentID,
		Fare:      models.FareBreakdown{FinalAmount: 3623},
	}
	pay := &models.Payment{
		ID:               paymentID,
		BookingID:        &bookingID,
		Amount:           3623,
		PaidAmount:       3623,
		Status:           models.PaymentStatusCompleted,
		Method:           models.PaymentMethodUPI,
		GatewayPaymentID: "pay_abc",
	}
	return bk, pay
}

func TestCancellationCharges_PendingIsFree(t *testing.T) {
	f := newBookingUCFixture(t)
	actor := customerActor()
	bk, pay := paidBooking(actor, time.Now().Add(10*time.Hour))
	bk.Status = models.BookingStatusPending
	pay.Status = models.PaymentStatusPending
	pay.PaidAmount = 0

	f.repo.EXPECT().GetBooking(gomock.Any(), bk.ID).Return(bk, nil)
	f.paymentRepo.EXPECT().GetPayment(gomock.Any(), pay.ID).Return(pay, nil)

	quote, err := f.uc.CancellationCharges(context.Background(), actor, bk.ID)

	require.NoError(t, err)
	assert.True(t, quote.Cancellable)
	assert.Equal(t, 0, quote.Charge)
	assert.Equal(t, 0, quote.RefundAmount)
}

func TestCancelBooking_InsideWindowChargesAndRefunds(t *testing.T) {
	f := newBookingUCFixture(t)
	actor := customerActor()
	bk, pay := paidBooking(actor, time.Now().Add(10*time.Hour))

	f.repo.EXPECT().GetBooking(gomock.Any(), bk.ID).Return(bk, nil)
	f.paymentRepo.EXPECT().GetPayment(gomock.Any(), pay.ID).Return(pay, nil)
	f.repo.EXPECT().CancelBooking(gomock.Any(), bk.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, c *models.Cancellation) (bool, error) {
			assert.Equal(t, models.RoleCustomer, c.CancelledBy)
			assert.Equal(t, 725, c.Charge)
			return true, nil
		})
	f.paymentRepo.EXPECT().GetPayment(gomock.Any(), pay.ID).Return(pay, nil)
	f.paymentUC.EXPECT().RefundPayment(gomock.Any(), pay, 2898).
		DoAndReturn(func(_ context.Context, p *models.Payment, amount int) (*models.Payment, error) {
			p.RefundID = "rfnd_123"
			p.RefundAmount = amount
			p.Status = models.PaymentStatusPartiallyRefunded
			return p, nil
		})
	f.gw.EXPECT().PublishBookingCancelled(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := f.uc.CancelBooking(context.Background(), actor, bk.ID, &models.CancelBookingRequest{Reason: "plans changed"})

	require.NoError(t, err)
	assert.Equal(t, 725, resp.Charge)
	assert.Equal(t, 2898, resp.RefundAmount)
	assert.Equal(t, "rfnd_123", resp.RefundID)
	assert.False(t, resp.RefundRequiresManual)
	assert.Equal(t, models.BookingStatusCancelled, resp.Booking.Status)
}

func TestCancelBooking_OutsideWindowFreeFullRefund(t *testing.T) {
	f := newBookingUCFixture(t)
	actor := customerActor()
	bk, pay := paidBooking(actor, time.Now().Add(72*time.Hour))

	f.repo.EXPECT().GetBooking(gomock.Any(), bk.ID).Return(bk, nil)
	f.paymentRepo.EXPECT().GetPayment(gomock.Any(), pay.ID).Return(pay, nil)
	f.repo.EXPECT().CancelBooking(gomock.Any(), bk.ID, gomock.Any()).Return(true, nil)
	f.paymentRepo.EXPECT().GetPayment(gomock.Any(), pay.ID).Return(pay, nil)
	f.paymentUC.EXPECT().RefundPayment(gomock.Any(), pay, 3623).Return(pay, nil)
	f.gw.EXPECT().PublishBookingCancelled(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := f.uc.CancelBooking(context.Background(), actor, bk.ID, &models.CancelBookingRequest{Reason: "found another ride"})

	require.NoError(t, err)
	assert.Equal(t, 0, resp.Charge)
	assert.Equal(t, 3623, resp.RefundAmount)
}

func TestCancelBooking_AfterStartNotCancellable(t *testing.T) {
	f := newBookingUCFixture(t)
	actor := customerActor()
	bk, pay := paidBooking(actor, time.Now().Add(-1*time.Hour))

	f.repo.EXPECT().GetBooking(gomock.Any(), bk.ID).Return(bk, nil)
	f.paymentRepo.EXPECT().GetPayment(gomock.Any(), pay.ID).Return(pay, nil)

	_, err := f.uc.CancelBooking(context.Background(), actor, bk.ID, &models.CancelBookingRequest{Reason: "too late"})

	assert.True(t, apperr.IsCode(err, 409))
}

func TestCancelBooking_RefundFailureFlagsManual(t *testing.T) {
	f := newBookingUCFixture(t)
	actor := customerActor()
	bk, pay := paidBooking(actor, time.Now().Add(72*time.Hour))

	f.repo.EXPECT().GetBooking(gomock.Any(), bk.ID).Return(bk, nil)
	f.paymentRepo.EXPECT().GetPayment(gomock.Any(), pay.ID).Return(pay, nil)
	f.repo.EXPECT().CancelBooking(gomock.Any(), bk.ID, gomock.Any()).Return(true, nil)
	f.paymentRepo.EXPECT().GetPayment(gomock.Any(), pay.ID).Return(pay, nil)
	f.paymentUC.EXPECT().RefundPayment(gomock.Any(), pay, 3623).
		Return(nil, errors.New("gateway timeout"))
	f.gw.EXPECT().PublishBookingCancelled(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := f.uc.CancelBooking(context.Background(), actor, bk.ID, &models.CancelBookingRequest{Reason: "plans changed"})

	require.NoError(t, err)
	assert.True(t, resp.RefundRequiresManual)
	assert.Equal(t, models.BookingStatusCancelled, resp.Booking.Status)
}

func TestCancelBooking_CashNoRefundCall(t *testing.T) {
	f := newBookingUCFixture(t)
	actor := customerActor()
	bk, pay := paidBooking(actor, time.Now().Add(72*time.Hour))
	pay.Status = models.PaymentStatusPending
	pay.PaidAmount = 0
	pay.Method = models.PaymentMethodCash

	f.repo.EXPECT().GetBooking(gomock.Any(), bk.ID).Return(bk, nil)
	f.paymentRepo.EXPECT().GetPayment(gomock.Any(), pay.ID).Return(pay, nil)
	f.repo.EXPECT().CancelBooking(gomock.Any(), bk.ID, gomock.Any()).Return(true, nil)
	f.gw.EXPECT().PublishBookingCancelled(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := f.uc.CancelBooking(context.Background(), actor, bk.ID, &models.CancelBookingRequest{Reason: "plans changed"})

	require.NoError(t, err)
	assert.Equal(t, 0, resp.RefundAmount)
	assert.Empty(t, resp.RefundID)
}
