package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/middleware"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
	nrpkg "github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/newrelic"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/utils"
	"github.com/cabBazarApp/cabbazar-backend-sub000/services/booking"
)

// BookingHandler handles HTTP requests for booking operations
type BookingHandler struct {
	bookingUC booking.BookingUC
}

// NewBookingHandler creates a new booking HTTP handler
func NewBookingHandler(bookingUC booking.BookingUC) *BookingHandler {
	return &BookingHandler{
		bookingUC: bookingUC,
	}
}

// SearchVehicles handles the vehicle search request
func (h *BookingHandler) SearchVehicles(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Booking.SearchVehicles")

	var req models.SearchRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	resp, err := h.bookingUC.SearchVehicles(c.Request().Context(), &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Vehicle options priced", resp)
}

// EstimateFare handles the single-option fare estimate request
func (h *BookingHandler) EstimateFare(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Booking.EstimateFare")

	var req models.EstimateFareRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	breakdown, err := h.bookingUC.EstimateFare(c.Request().Context(), &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Fare estimated", breakdown)
}

// CreateBooking handles the booking creation request
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Booking.CreateBooking")

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	var req models.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	resp, err := h.bookingUC.CreateBooking(c.Request().Context(), actor, &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	// Cash bookings come back confirmed; online bookings return the gateway
	// order for the client payment widget and stay pending.
	status := http.StatusCreated
	if resp.Payment != nil {
		status = http.StatusOK
	}
	return utils.SuccessResponse(c, status, "Booking created", resp)
}

// GetBooking handles the booking detail request
func (h *BookingHandler) GetBooking(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Booking.GetBooking")

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}
	bookingID, err := parseBookingID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}
	nrpkg.AddTransactionAttribute(txn, "booking.id", bookingID.String())

	bk, err := h.bookingUC.GetBooking(c.Request().Context(), actor, bookingID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Booking retrieved", bk)
}

// ListBookings handles the booking list request
func (h *BookingHandler) ListBookings(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Booking.ListBookings")

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	bookings, err := h.bookingUC.ListBookings(c.Request().Context(), actor)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved", bookings)
}

// UpdateStatus handles the generic lifecycle transition request
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Booking.UpdateStatus")

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}
	bookingID, err := parseBookingID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req models.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	nrpkg.AddTransactionAttribute(txn, "booking.id", bookingID.String())
	nrpkg.AddTransactionAttribute(txn, "booking.target_status", string(req.Status))

	bk, err := h.bookingUC.UpdateStatus(c.Request().Context(), actor, bookingID, &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Booking status updated", bk)
}

// CancellationCharges handles the cancellation preview request
func (h *BookingHandler) CancellationCharges(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Booking.CancellationCharges")

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}
	bookingID, err := parseBookingID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	quote, err := h.bookingUC.CancellationCharges(c.Request().Context(), actor, bookingID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Cancellation charges computed", quote)
}

// CancelBooking handles the booking cancellation request
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Booking.CancelBooking")

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}
	bookingID, err := parseBookingID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req models.CancelBookingRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	nrpkg.AddTransactionAttribute(txn, "booking.id", bookingID.String())

	resp, err := h.bookingUC.CancelBooking(c.Request().Context(), actor, bookingID, &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Booking cancelled", resp)
}

// RateBooking handles the post-trip rating request
func (h *BookingHandler) RateBooking(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Booking.RateBooking")

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}
	bookingID, err := parseBookingID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req models.RatingRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	bk, err := h.bookingUC.RateBooking(c.Request().Context(), actor, bookingID, &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Booking rated", bk)
}

// ApplyDiscount handles the discount application request
func (h *BookingHandler) ApplyDiscount(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Booking.ApplyDiscount")

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}
	bookingID, err := parseBookingID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req models.ApplyDiscountRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	bk, err := h.bookingUC.ApplyDiscount(c.Request().Context(), actor, bookingID, &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Discount applied", bk)
}

func parseBookingID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("bookingID"))
}
