package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/apperr"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
)

// RateBooking records the customer's post-trip rating. The repository only
// writes a rating onto a completed, unrated booking, so a second attempt
// comes back as a conflict.
func (uc *bookingUC) RateBooking(ctx context.Context, actor models.Actor, bookingID uuid.UUID, req *models.RatingRequest) (*models.Booking, error) {
	if req.Value < 1 || req.Value > 5 {
		return nil, apperr.BadRequest("rating must be between 1 and 5")
	}

	bk, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if bk.UserID != actor.UserID {
		return nil, apperr.Forbidden("only the booking owner may rate the trip")
	}
	if bk.Status != models.BookingStatusCompleted {
		return nil, apperr.Conflict("only a completed booking can be rated")
	}

	rating := &models.Rating{
		Value:   req.Value,
		Comment: req.Comment,
		RatedAt: nowUTC(),
	}
	set, err := uc.bookingRepo.SetRating(ctx, bookingID, rating)
	if err != nil {
		return nil, err
	}
	if !set {
		return nil, apperr.Conflict("booking has already been rated")
	}

	bk.Rating = rating
	return bk, nil
}

// ApplyDiscount applies a flat discount to a pending booking's fare and
// recomputes tax and the final amount. The paired payment amount moves with
// the fare.
func (uc *bookingUC) ApplyDiscount(ctx context.Context, actor models.Actor, bookingID uuid.UUID, req *models.ApplyDiscountRequest) (*models.Booking, error) {
	if actor.Role != models.RoleAdmin {
		return nil, apperr.Forbidden("only admins may apply discounts")
	}
	if req.Code == "" {
		return nil, apperr.BadRequest("discount code is required")
	}
	if req.Amount <= 0 {
		return nil, apperr.BadRequest("discount amount must be positive")
	}

	bk, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if bk.Status != models.BookingStatusPending {
		return nil, apperr.Conflict("discounts apply only to pending bookings")
	}
	if bk.Fare.DiscountAmount > 0 {
		return nil, apperr.Conflict("booking already carries a discount")
	}

	updated := bk.Fare
	updated.DiscountCode = req.Code
	updated.DiscountAmount = req.Amount
	if updated.Subtotal() <= 0 {
		return nil, apperr.BadRequest("discount exceeds the fare")
	}
	uc.calc.Reprice(&updated)

	ok, err := uc.bookingRepo.UpdateFare(ctx, bookingID, &updated)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Conflict("booking state changed concurrently, reload and retry")
	}

	bk.Fare = updated
	return bk, nil
}
