package http

import (
	"time"

	"github.com/MKhiriev/go-customer-service/internal/config"
	"github.com/MKhiriev/go-customer-service/internal/logger"
	"github.com/MKhiriev/go-customer-service/internal/service"
	"github.com/MKhiriev/go-customer-service/internal/utils"
)

type Handler struct {
	services *service.Services

	// traceIDs generates ids for requests arriving without X-Trace-ID.
	traceIDs *utils.TraceIDGenerator

	// metrics holds the request collectors exposed on /metrics.
	metrics *httpMetrics

	// loginLimiters throttle POST /auth/login per client; nil disables throttling.
	loginLimiters *loginLimiters

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	var limiters *loginLimiters
	if cfg.LoginRateLimit >= 0 {
		limiters = newLoginLimiters(cfg.LoginRateLimit, cfg.LoginRateBurst)
	}

	logger.Info().
		Float64("login_rate_limit", cfg.LoginRateLimit).
		Dur("request_timeout", cfg.RequestTimeout).
		Msg("http handler created")

	return &Handler{
		services:       services,
		traceIDs:       utils.NewTraceIDGenerator(),
		metrics:        newHTTPMetrics(),
		loginLimiters:  limiters,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
