package gateway

import (
	"context"
	"time"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
)

// PublishBookingConfirmed publishes a booking confirmed event to NATS
func (g *BookingGW) PublishBookingConfirmed(ctx context.Context, booking *models.Booking) error {
	return g.publishBookingEvent(models.SubjectBookingConfirmed, booking)
}

// PublishBookingCancelled publishes a booking cancelled event to NATS
func (g *BookingGW) PublishBookingCancelled(ctx context.Context, booking *models.Booking) error {
	return g.publishBookingEvent(models.SubjectBookingCancelled, booking)
}

// PublishBookingCompleted publishes a booking completed event to NATS
func (g *BookingGW) PublishBookingCompleted(ctx context.Context, booking *models.Booking) error {
	return g.publishBookingEvent(models.SubjectBookingCompleted, booking)
}

// PublishBookingRejected publishes a booking rejected event to NATS
func (g *BookingGW) PublishBookingRejected(ctx context.Context, booking *models.Booking) error {
	return g.publishBookingEvent(models.SubjectBookingRejected, booking)
}

func (g *BookingGW) publishBookingEvent(subject string, booking *models.Booking) error {
	event := models.BookingEvent{
		BookingID:   booking.ID,
		BookingCode: booking.Code,
		UserID:      booking.UserID,
		Status:      booking.Status,
		TripType:    booking.TripType,
		FinalAmount: booking.Fare.FinalAmount,
		Timestamp:   time.Now(),
	}
	return g.natsClient.PublishJSON(subject, event)
}
