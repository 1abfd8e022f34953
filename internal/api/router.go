package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"event-hotels-backend/config"
	"event-hotels-backend/internal/mw"
	"event-hotels-backend/internal/observability"
	"event-hotels-backend/internal/service"
	"event-hotels-backend/internal/store"
)

// NewLimiter builds the per-IP limiter described by the server config.
func NewLimiter(cfg *config.ServerConfig) *mw.IPRateLimiter {
	return mw.NewIPRateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)
}

// NewRouter creates and configures a new Gin router. A nil registry leaves /metrics unmounted.
func NewRouter(cfg *config.Config, s store.Store, limiter *mw.IPRateLimiter, logger zerolog.Logger, reg *prometheus.Registry) *gin.Engine {
	r := gin.New()

	hotelService := service.NewHotelService(s, s, s)
	handler := NewHandler(hotelService, DefaultStatusTable())

	r.Use(gin.Recovery(), mw.RequestLogger(logger), mw.Metrics(), mw.RateLimiter(limiter))

	r.GET("/health", GetHealth(s))
	if reg != nil {
		r.GET("/metrics", gin.WrapH(observability.MetricsHandler(reg)))
	}

	// Hotels group
	hotels := r.Group("/hotels")
	hotels.Use(mw.Authenticate(cfg.Auth.JWTSecret, s))
	{
		// GET /hotels
		hotels.GET("", handler.GetHotels)

		// GET /hotels/{hotelId}
		hotels.GET("/:hotelId", handler.GetHotelsByHotelID)
	}

	return r
}
