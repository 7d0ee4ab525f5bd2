package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/apperr"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
	"github.com/cabBazarApp/cabbazar-backend-sub000/services/payment/mocks"
)

func TestVerifyPayment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	actor := models.Actor{UserID: uuid.New(), Role: models.RoleCustomer}
	bookingID := uuid.New()
	requestBody := `{
		"booking_id": "` + bookingID.String() + `",
		"gateway_order_id": "order_abc",
		"gateway_payment_id": "pay_xyz",
		"gateway_signature": "sig"
	}`

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/bookings/verify-payment", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("actor", actor)

	mockUC.EXPECT().
		VerifyPayment(gomock.Any(), actor, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ models.Actor, req *models.VerifyPaymentRequest) (*models.Payment, error) {
			assert.Equal(t, bookingID, req.BookingID)
			assert.Equal(t, "order_abc", req.GatewayOrderID)
			return &models.Payment{ID: uuid.New(), Status: models.PaymentStatusCompleted}, nil
		})

	err := handler.VerifyPayment(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
}

func TestVerifyPayment_NoActor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/bookings/verify-payment", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.VerifyPayment(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleWebhook_PassesRawBodyAndHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	body := `{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_xyz","order_id":"order_abc","amount":362300}}}}`

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("X-Razorpay-Signature", "webhook-sig")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		HandleWebhook(gomock.Any(), []byte(body), "webhook-sig").
		Return(nil)

	err := handler.HandleWebhook(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleWebhook_BadSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", strings.NewReader(`{}`))
	req.Header.Set("X-Razorpay-Signature", "forged")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		HandleWebhook(gomock.Any(), gomock.Any(), "forged").
		Return(apperr.Unauthorized("invalid webhook signature"))

	err := handler.HandleWebhook(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
