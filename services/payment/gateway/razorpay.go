package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
	natspkg "github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/nats"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/retry"
)

// PaymentGW talks to the Razorpay API and publishes payment events to NATS
type PaymentGW struct {
	cfg        *models.Config
	httpClient *http.Client
	natsClient *natspkg.Client
	retrier    *retry.Retrier
}

// NewPaymentGW creates a new payment gateway
func NewPaymentGW(cfg *models.Config, natsClient *natspkg.Client) *PaymentGW {
	timeout := time.Duration(cfg.Gateway.TimeoutSec) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &PaymentGW{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		natsClient: natsClient,
		retrier:    retry.NewWithDefaults(),
	}
}

type orderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type orderResponse struct {
	ID string `json:"id"`
}

type refundRequest struct {
	Amount int64 `json:"amount"`
}

type refundResponse struct {
	ID string `json:"id"`
}

// CreateOrder creates a gateway order for the given amount in minor units
// and returns the order ID
func (g *PaymentGW) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (string, error) {
	var resp orderResponse
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.post(ctx, "/v1/orders", orderRequest{
			Amount:   amountMinor,
			Currency: currency,
			Receipt:  receipt,
		}, &resp)
	})
	if err != nil {
		return "", fmt.Errorf("failed to create gateway order: %w", err)
	}
	return resp.ID, nil
}

// CreateRefund issues a refund against a captured gateway payment and
// returns the refund ID
func (g *PaymentGW) CreateRefund(ctx context.Context, gatewayPaymentID string, amountMinor int64) (string, error) {
	var resp refundResponse
	path := fmt.Sprintf("/v1/payments/%s/refund", gatewayPaymentID)
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.post(ctx, path, refundRequest{Amount: amountMinor}, &resp)
	})
	if err != nil {
		return "", fmt.Errorf("failed to create refund: %w", err)
	}
	return resp.ID, nil
}

func (g *PaymentGW) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := strings.TrimRight(g.cfg.Gateway.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(g.cfg.Gateway.KeyID, g.cfg.Gateway.KeySecret)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("gateway returned status %d: %s", resp.StatusCode, string(errBody))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode gateway response: %w", err)
	}
	return nil
}

// VerifyCheckoutSignature checks the client callback signature, an
// HMAC-SHA256 of "orderID|paymentID" under the API key secret
func (g *PaymentGW) VerifyCheckoutSignature(orderID, paymentID, signature string) bool {
	expected := hmacHex(g.cfg.Gateway.KeySecret, []byte(orderID+"|"+paymentID))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifyWebhookSignature checks the webhook signature, an HMAC-SHA256 of the
// raw request body under the webhook secret
func (g *PaymentGW) VerifyWebhookSignature(body []byte, signature string) bool {
	expected := hmacHex(g.cfg.Gateway.WebhookSecret, body)
	return hmac.Equal([]byte(expected), []byte(signature))
}

func hmacHex(secret string, data []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(data)
	return hex.EncodeToString(mac.Sum(nil))
}
