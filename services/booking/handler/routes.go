package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/database"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/middleware"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
	"github.com/cabBazarApp/cabbazar-backend-sub000/services/booking"
	httpHandler "github.com/cabBazarApp/cabbazar-backend-sub000/services/booking/handler/http"
)

// Handler combines all handlers for the booking service
type Handler struct {
	bookingHTTP *httpHandler.BookingHandler
	cfg         *models.Config
	redis       *database.RedisClient
}

// NewHandler creates a new combined handler
func NewHandler(
	bookingUC booking.BookingUC,
	cfg *models.Config,
	redis *database.RedisClient,
) *Handler {
	return &Handler{
		bookingHTTP: httpHandler.NewBookingHandler(bookingUC),
		cfg:         cfg,
		redis:       redis,
	}
}

// RegisterRoutes registers all HTTP routes. Pricing endpoints are public but
// rate limited; everything touching a booking requires authentication.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	pricingLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: h.redis.GetClient(),
		Key:         "ratelimit:pricing",
		Limit:       60,
		Period:      time.Minute,
	})

	v1 := e.Group("/v1")
	v1.POST("/search", h.bookingHTTP.SearchVehicles, pricingLimiter)
	v1.POST("/estimate-fare", h.bookingHTTP.EstimateFare, pricingLimiter)

	auth := v1.Group("/bookings", middleware.JWTAuthMiddleware(h.cfg.JWT))
	auth.POST("", h.bookingHTTP.CreateBooking)
	auth.GET("", h.bookingHTTP.ListBookings)
	auth.GET("/:bookingID", h.bookingHTTP.GetBooking)
	auth.PATCH("/:bookingID/status", h.bookingHTTP.UpdateStatus)
	auth.GET("/:bookingID/cancellation-charges", h.bookingHTTP.CancellationCharges)
	auth.PATCH("/:bookingID/cancel", h.bookingHTTP.CancelBooking)
	auth.POST("/:bookingID/rating", h.bookingHTTP.RateBooking)
	auth.POST("/:bookingID/apply-discount", h.bookingHTTP.ApplyDiscount)
}
