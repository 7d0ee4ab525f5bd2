package gateway

import (
	"net/http"
	"time"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/database"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
	natspkg "github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/nats"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/retry"
)

// BookingGW talks to the geocoder service and publishes booking lifecycle
// events to NATS
type BookingGW struct {
	cfg        *models.Config
	httpClient *http.Client
	redis      *database.RedisClient
	natsClient *natspkg.Client
	retrier    *retry.Retrier
}

// NewBookingGW creates a new booking gateway
func NewBookingGW(
	cfg *models.Config,
	redis *database.RedisClient,
	natsClient *natspkg.Client,
) *BookingGW {
	timeout := time.Duration(cfg.Geocoder.TimeoutSec) * time.Second
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &BookingGW{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		redis:      redis,
		natsClient: natsClient,
		retrier:    retry.NewWithDefaults(),
	}
}
