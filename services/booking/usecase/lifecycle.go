package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/apperr"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/logger"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
)

// UpdateStatus drives the generic lifecycle transition used by operations
// staff and drivers. The repository pins the prior status, so two concurrent
// updates cannot both win.
func (uc *bookingUC) UpdateStatus(ctx context.Context, actor models.Actor, bookingID uuid.UUID, req *models.UpdateStatusRequest) (*models.Booking, error) {
	if !req.Status.IsValid() {
		return nil, apperr.BadRequestf("unknown booking status %q", req.Status)
	}
	if !actor.IsElevated() {
		return nil, apperr.Forbidden("only drivers and admins may update booking status")
	}
	// Confirming and rejecting a pending booking is an operations decision
	if (req.Status == models.BookingStatusConfirmed || req.Status == models.BookingStatusRejected) &&
		actor.Role != models.RoleAdmin {
		return nil, apperr.Forbidden("only admins may confirm or reject bookings")
	}

	bk, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if actor.Role == models.RoleDriver && (bk.DriverID == nil || *bk.DriverID != actor.UserID) {
		return nil, apperr.Forbidden("booking is not assigned to this driver")
	}
	if bk.Status.IsTerminal() {
		return nil, apperr.BadRequestf("booking in status %s is already in a final state", bk.Status)
	}
	if !bk.Status.CanTransitionTo(req.Status) {
		return nil, apperr.Conflictf("cannot move booking from %s to %s", bk.Status, req.Status)
	}

	var driverID *uuid.UUID
	if req.Status == models.BookingStatusAssigned {
		if req.DriverID == nil {
			return nil, apperr.BadRequest("driver_id is required to assign a booking")
		}
		driver, err := uc.bookingRepo.GetDriver(ctx, *req.DriverID)
		if err != nil {
			return nil, err
		}
		if !driver.Active {
			return nil, apperr.Conflict("driver is not active")
		}
		if driver.VehicleClass != bk.VehicleClass {
			return nil, apperr.Conflictf("driver vehicle class %s does not match booking class %s",
				driver.VehicleClass, bk.VehicleClass)
		}
		driverID = req.DriverID
	}

	updated, err := uc.bookingRepo.UpdateStatus(ctx, bookingID, bk.Status, req.Status, driverID)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apperr.Conflict("booking state changed concurrently, reload and retry")
	}

	uc.applyTransitionEffects(ctx, bk, req.Status)

	return uc.bookingRepo.GetBooking(ctx, bookingID)
}

// applyTransitionEffects runs the side effects a transition carries: trip
// timestamps, driver counters and lifecycle events. Effects are best-effort
// once the status row has flipped.
func (uc *bookingUC) applyTransitionEffects(ctx context.Context, bk *models.Booking, to models.BookingStatus) {
	switch to {
	case models.BookingStatusConfirmed:
		bk.Status = to
		if err := uc.bookingGW.PublishBookingConfirmed(ctx, bk); err != nil {
			logger.Warn("failed to publish booking confirmed event", logger.Err(err))
		}
	case models.BookingStatusRejected:
		bk.Status = to
		if err := uc.bookingGW.PublishBookingRejected(ctx, bk); err != nil {
			logger.Warn("failed to publish booking rejected event", logger.Err(err))
		}
	case models.BookingStatusInProgress:
		if _, err := uc.bookingRepo.MarkTripStarted(ctx, bk.ID, nowUTC()); err != nil {
			logger.Error("failed to stamp trip start", logger.Err(err),
				logger.String("booking_id", bk.ID.String()))
		}
	case models.BookingStatusCompleted:
		if _, err := uc.bookingRepo.CompleteTrip(ctx, bk.ID, nowUTC()); err != nil {
			logger.Error("failed to stamp trip end", logger.Err(err),
				logger.String("booking_id", bk.ID.String()))
		}
		if bk.DriverID != nil {
			if err := uc.bookingRepo.IncrementDriverRides(ctx, *bk.DriverID); err != nil {
				logger.Error("failed to increment driver rides", logger.Err(err),
					logger.String("driver_id", bk.DriverID.String()))
			}
		}
		bk.Status = to
		if err := uc.bookingGW.PublishBookingCompleted(ctx, bk); err != nil {
			logger.Warn("failed to publish booking completed event", logger.Err(err))
		}
	}
}
