package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/apperr"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/fare"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/logger"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/utils"
	"github.com/cabBazarApp/cabbazar-backend-sub000/services/booking"
	"github.com/cabBazarApp/cabbazar-backend-sub000/services/payment"
)

const adminListLimit = 100

// bookingUC implements the booking.BookingUC interface
type bookingUC struct {
	cfg         *models.Config
	calc        *fare.Calculator
	bookingRepo booking.BookingRepo
	bookingGW   booking.BookingGW
	paymentUC   payment.PaymentUC
	paymentRepo payment.PaymentRepo
}

// NewBookingUC creates a new booking use case
func NewBookingUC(
	cfg *models.Config,
	calc *fare.Calculator,
	bookingRepo booking.BookingRepo,
	bookingGW booking.BookingGW,
	paymentUC payment.PaymentUC,
	paymentRepo payment.PaymentRepo,
) (booking.BookingUC, error) {
	return &bookingUC{
		cfg:         cfg,
		calc:        calc,
		bookingRepo: bookingRepo,
		bookingGW:   bookingGW,
		paymentUC:   paymentUC,
		paymentRepo: paymentRepo,
	}, nil
}

// CreateBooking prices the trip server-side, then creates the booking and
// its payment record atomically. Cash bookings come back confirmed; online
// bookings stay pending until the payment settles.
func (uc *bookingUC) CreateBooking(ctx context.Context, actor models.Actor, req *models.CreateBookingRequest) (*models.CreateBookingResponse, error) {
	if !req.PaymentMethod.IsValid() {
		return nil, apperr.BadRequestf("unknown payment method %q", req.PaymentMethod)
	}
	if req.Pickup.City == "" || req.Drop.City == "" {
		return nil, apperr.BadRequest("pickup and drop are required")
	}
	if req.EndTime != nil {
		if req.TripType != models.TripTypeRoundTrip {
			return nil, apperr.BadRequest("end_time is only valid for round trips")
		}
		if !req.EndTime.After(req.StartTime) {
			return nil, apperr.BadRequest("end_time must be after start_time")
		}
	}

	passenger, err := uc.resolvePassenger(actor, req.Passenger)
	if err != nil {
		return nil, err
	}

	distance, err := uc.resolveDistance(ctx, req.TripType, &req.Pickup, &req.Drop)
	if err != nil {
		return nil, err
	}

	breakdown, err := uc.calc.Price(fare.Input{
		TripType:     req.TripType,
		VehicleClass: req.VehicleClass,
		DistanceKm:   distance,
		StartTime:    req.StartTime,
		PackageCode:  req.PackageCode,
	})
	if err != nil {
		return nil, err
	}

	status := models.BookingStatusPending
	if req.PaymentMethod == models.PaymentMethodCash {
		status = models.BookingStatusConfirmed
	}

	code, err := utils.GenerateBookingCode()
	if err != nil {
		return nil, err
	}

	pay := &models.Payment{
		ID:       uuid.New(),
		Amount:   breakdown.FinalAmount,
		Currency: breakdown.Currency,
		Status:   models.PaymentStatusPending,
		Method:   req.PaymentMethod,
	}

	bk := &models.Booking{
		ID:           uuid.New(),
		Code:         code,
		UserID:       actor.UserID,
		TripType:     req.TripType,
		VehicleClass: req.VehicleClass,
		PackageCode:  req.PackageCode,
		Pickup:       req.Pickup,
		Drop:         req.Drop,
		Via:          req.Via,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Passenger:    *passenger,
		Fare:         *breakdown,
		Status:       status,
		PaymentID:    pay.ID,
	}

	var init *models.PaymentInit
	if req.PaymentMethod.IsOnline() {
		init, err = uc.paymentUC.PrepareOrder(ctx, pay)
		if err != nil {
			return nil, err
		}
		init.Prefill = *passenger
	}

	if err := uc.bookingRepo.CreateBookingWithPayment(ctx, bk, pay); err != nil {
		return nil, err
	}

	logger.Info("booking created",
		logger.String("booking_id", bk.ID.String()),
		logger.String("code", bk.Code),
		logger.String("trip_type", string(bk.TripType)),
		logger.String("status", string(bk.Status)))

	if bk.Status == models.BookingStatusConfirmed {
		if err := uc.bookingGW.PublishBookingConfirmed(ctx, bk); err != nil {
			logger.Warn("failed to publish booking confirmed event", logger.Err(err))
		}
	}

	return &models.CreateBookingResponse{Booking: bk, Payment: init}, nil
}

// GetBooking retrieves a booking, enforcing that only the owner or an
// elevated actor may read it
func (uc *bookingUC) GetBooking(ctx context.Context, actor models.Actor, bookingID uuid.UUID) (*models.Booking, error) {
	bk, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := authorizeBookingAccess(actor, bk); err != nil {
		return nil, err
	}
	return bk, nil
}

// ListBookings returns the caller's bookings, or the most recent bookings
// across users for admins
func (uc *bookingUC) ListBookings(ctx context.Context, actor models.Actor) ([]*models.Booking, error) {
	if actor.Role == models.RoleAdmin {
		return uc.bookingRepo.ListBookings(ctx, adminListLimit)
	}
	return uc.bookingRepo.ListBookingsByUser(ctx, actor.UserID)
}

// resolvePassenger fills passenger details from the actor when the request
// leaves them out
func (uc *bookingUC) resolvePassenger(actor models.Actor, p *models.Passenger) (*models.Passenger, error) {
	passenger := models.Passenger{
		Name:  actor.Name,
		Phone: actor.Phone,
		Email: actor.Email,
	}
	if p != nil {
		passenger = *p
	}
	if passenger.Name == "" || passenger.Phone == "" {
		return nil, apperr.BadRequest("passenger name and phone are required")
	}
	if !utils.IsValidPhoneNumber(passenger.Phone) {
		return nil, apperr.BadRequest("passenger phone number is not a valid Indian mobile number")
	}
	if passenger.Email != "" && !utils.IsValidEmail(passenger.Email) {
		return nil, apperr.BadRequest("passenger email is not valid")
	}
	return &passenger, nil
}

// resolveDistance fetches road distance for trips priced by distance.
// Package trips are priced by the package definition alone.
func (uc *bookingUC) resolveDistance(ctx context.Context, tripType models.TripType, pickup, drop *models.Location) (float64, error) {
	if tripType == models.TripTypeLocalPackage {
		return 0, nil
	}
	result, err := uc.bookingGW.GetDistance(ctx, pickup, drop)
	if err != nil {
		return 0, err
	}
	return result.DistanceKm, nil
}

func authorizeBookingAccess(actor models.Actor, bk *models.Booking) error {
	if actor.UserID == bk.UserID || actor.IsElevated() {
		return nil
	}
	return apperr.Forbidden("you do not have access to this booking")
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
