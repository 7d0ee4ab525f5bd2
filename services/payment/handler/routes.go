package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/middleware"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
	"github.com/cabBazarApp/cabbazar-backend-sub000/services/payment"
	httpHandler "github.com/cabBazarApp/cabbazar-backend-sub000/services/payment/handler/http"
)

// Handler combines all handlers for the payment service
type Handler struct {
	paymentHTTP *httpHandler.PaymentHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(paymentUC payment.PaymentUC, cfg *models.Config) *Handler {
	return &Handler{
		paymentHTTP: httpHandler.NewPaymentHandler(paymentUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes. The webhook carries no JWT; the
// body signature authenticates it instead.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/v1")
	v1.POST("/bookings/verify-payment", h.paymentHTTP.VerifyPayment, middleware.JWTAuthMiddleware(h.cfg.JWT))
	v1.POST("/payments/webhook", h.paymentHTTP.HandleWebhook)
}
