package http

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/middleware"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
	nrpkg "github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/newrelic"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/utils"
	"github.com/cabBazarApp/cabbazar-backend-sub000/services/payment"
)

// The gateway sends its webhook signature in this header
const webhookSignatureHeader = "X-Razorpay-Signature"

// PaymentHandler handles HTTP requests for payment operations
type PaymentHandler struct {
	paymentUC payment.PaymentUC
}

// NewPaymentHandler creates a new payment HTTP handler
func NewPaymentHandler(paymentUC payment.PaymentUC) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
	}
}

// VerifyPayment handles the client-side checkout confirmation
func (h *PaymentHandler) VerifyPayment(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payment.VerifyPayment")

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	var req models.VerifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	nrpkg.AddTransactionAttribute(txn, "payment.order_id", req.GatewayOrderID)

	pay, err := h.paymentUC.VerifyPayment(c.Request().Context(), actor, &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment verified", pay)
}

// HandleWebhook handles gateway webhook deliveries. The raw body is read
// before any parsing because the signature covers the exact bytes sent.
func (h *PaymentHandler) HandleWebhook(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payment.HandleWebhook")

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Failed to read webhook body")
	}
	signature := c.Request().Header.Get(webhookSignatureHeader)

	if err := h.paymentUC.HandleWebhook(c.Request().Context(), body, signature); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Webhook processed", nil)
}
