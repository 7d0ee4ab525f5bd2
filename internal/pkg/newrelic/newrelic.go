package newrelic

import (
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/logger"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
)

// InitNewRelic initializes New Relic application based on configuration
func InitNewRelic(configs *models.Config) *newrelic.Application {
	if !configs.NewRelic.Enabled || configs.NewRelic.LicenseKey == "" {
		logger.Info("New Relic is disabled or license key not provided")
		return nil
	}

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(configs.NewRelic.AppName),
		newrelic.ConfigLicense(configs.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogForwardingEnabled(configs.NewRelic.ForwardLogs),
	)
	if err != nil {
		logger.Warn("Failed to initialize New Relic, continuing without New Relic",
			logger.Err(err))
		return nil
	}

	return nrApp
}
