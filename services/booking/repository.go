package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
)

// BookingRepo defines the interface for booking data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/cabBazarApp/cabbazar-backend-sub000/services/booking BookingRepo
type BookingRepo interface {
	// Booking CRUD operations
	CreateBookingWithPayment(ctx context.Context, booking *models.Booking, payment *models.Payment) error
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)
	ListBookingsByUser(ctx context.Context, userID uuid.UUID) ([]*models.Booking, error)
	ListBookings(ctx context.Context, limit int) ([]*models.Booking, error)

	// Guarded state updates, each returns false when the row was not in the
	// expected prior state
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, from, to models.BookingStatus, driverID *uuid.UUID) (bool, error)
	MarkTripStarted(ctx context.Context, bookingID uuid.UUID, at time.Time) (bool, error)
	CompleteTrip(ctx context.Context, bookingID uuid.UUID, at time.Time) (bool, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID, cancellation *models.Cancellation) (bool, error)
	SetRating(ctx context.Context, bookingID uuid.UUID, rating *models.Rating) (bool, error)
	UpdateFare(ctx context.Context, bookingID uuid.UUID, fare *models.FareBreakdown) (bool, error)

	// Driver operations
	GetDriver(ctx context.Context, driverID uuid.UUID) (*models.Driver, error)
	IncrementDriverRides(ctx context.Context, driverID uuid.UUID) error

	// Redis search session operations
	StoreSearchResult(ctx context.Context, searchID string, resp *models.SearchResponse, ttl time.Duration) error
	GetSearchResult(ctx context.Context, searchID string) (*models.SearchResponse, error)
}
