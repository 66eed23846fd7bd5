package router

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinician-api/internal/handler"
	"github.com/jwalitptl/clinician-api/internal/middleware"
	"github.com/jwalitptl/clinician-api/pkg/metrics"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Config struct {
	RateLimitEnabled bool
	RateLimitRPS     float64
	RateLimitBurst   int
}

type Router struct {
	engine        *gin.Engine
	auth          *middleware.AuthMiddleware
	authH         Handler
	scheduleH     Handler
	patientH      Handler
	notificationH Handler
	analyticsH    Handler
	h             *handler.Handler
	metrics       *metrics.Metrics
}

func NewRouter(
	auth *middleware.AuthMiddleware,
	authH Handler,
	scheduleH Handler,
	patientH Handler,
	notificationH Handler,
	analyticsH Handler,
	h *handler.Handler,
	m *metrics.Metrics,
	cfg Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	r := &Router{
		engine:        engine,
		auth:          auth,
		authH:         authH,
		scheduleH:     scheduleH,
		patientH:      patientH,
		notificationH: notificationH,
		analyticsH:    analyticsH,
		h:             h,
		metrics:       m,
	}

	engine.Use(
		gin.Recovery(),
		middleware.Logger(),
		r.metricsMiddleware(),
	)

	if cfg.RateLimitEnabled {
		engine.Use(middleware.RateLimit(middleware.RateLimiterConfig{
			RPS:   cfg.RateLimitRPS,
			Burst: cfg.RateLimitBurst,
		}))
	}

	return r
}

func (r *Router) Setup() {
	api := r.engine.Group("/api/v1")

	api.Use(func(c *gin.Context) {
		c.Header("X-API-Version", "1.0")
		c.Next()
	})

	r.setupHealthCheck(api)

	// Public routes: login and the session probe must work while anonymous.
	r.authH.RegisterRoutes(api)
	r.analyticsH.RegisterRoutes(api)

	// Everything the screens render behind the login gate.
	protected := api.Group("")
	protected.Use(r.auth.Authenticate())
	r.scheduleH.RegisterRoutes(protected)
	r.patientH.RegisterRoutes(protected)
	r.notificationH.RegisterRoutes(protected)
}

func (r *Router) setupHealthCheck(rg *gin.RouterGroup) {
	health := rg.Group("/health")
	{
		health.GET("/live", r.h.LivenessCheck)
		health.GET("/ready", r.h.ReadinessCheck)
	}
	rg.GET("/metrics", r.h.MetricsHandler)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()

		c.Next()

		status := fmt.Sprintf("%d", c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.RequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.RequestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			r.metrics.ErrorTotal.WithLabelValues(c.Request.Method, path, "http").Inc()
		}
	}
}
