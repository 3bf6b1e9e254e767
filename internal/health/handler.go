// Package health reports whether the server and its dependencies are usable.
package health

import (
	"context"
	"net/http"
	"shop-admin/internal/observability"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"

	degradedLatency = time.Second
	checkTimeout    = 3 * time.Second
)

// Pinger is anything whose connectivity can be checked.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StripeConfig reports whether payment calls can be made.
type StripeConfig interface {
	Configured() bool
}

type Check struct {
	Name      string `json:"name"`
	Status    string `json:"status"`
	LatencyMs *int64 `json:"latency,omitempty"`
	Error     string `json:"error,omitempty"`
}

type Report struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	UptimeSec float64   `json:"uptime"`
	LatencyMs int64     `json:"latency"`
	Checks    []Check   `json:"checks"`
}

type Handler struct {
	db        Pinger
	redis     Pinger
	stripe    StripeConfig
	version   string
	startedAt time.Time
	logger    *observability.Logger
}

// New creates a health handler. redis may be nil when Redis is disabled.
func New(db Pinger, redis Pinger, stripe StripeConfig, version string, logger *observability.Logger) *Handler {
	return &Handler{
		db:        db,
		redis:     redis,
		stripe:    stripe,
		version:   version,
		startedAt: time.Now(),
		logger:    logger,
	}
}

// HandleHealth handles GET /health. Degraded still answers 200.
func (h *Handler) HandleHealth(c *gin.Context) {
	report := h.Check(c.Request.Context())

	status := http.StatusOK
	if report.Status == StatusUnhealthy {
		status = http.StatusServiceUnavailable
	}

	c.Header("Cache-Control", "no-store, no-cache, must-revalidate")
	c.JSON(status, report)
}

// Check runs every dependency check.
func (h *Handler) Check(ctx context.Context) Report {
	start := time.Now()
	checks := []Check{{Name: "application", Status: StatusHealthy}}

	checks = append(checks, h.ping(ctx, "database", h.db, StatusUnhealthy))
	if h.redis != nil {
		// The rate limiter falls back to memory, so Redis is never fatal.
		checks = append(checks, h.ping(ctx, "redis", h.redis, StatusDegraded))
	}

	stripeCheck := Check{Name: "stripe", Status: StatusHealthy}
	if !h.stripe.Configured() {
		stripeCheck.Status = StatusDegraded
		stripeCheck.Error = "Stripe not configured"
	}
	checks = append(checks, stripeCheck)

	overall := StatusHealthy
	for _, check := range checks {
		if check.Status == StatusUnhealthy {
			overall = StatusUnhealthy
			break
		}
		if check.Status == StatusDegraded {
			overall = StatusDegraded
		}
	}

	if overall != StatusHealthy {
		h.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "checks", Value: checks}), "health check not healthy")
	}

	return Report{
		Status:    overall,
		Timestamp: time.Now().UTC(),
		Version:   h.version,
		UptimeSec: time.Since(h.startedAt).Seconds(),
		LatencyMs: time.Since(start).Milliseconds(),
		Checks:    checks,
	}
}

func (h *Handler) ping(ctx context.Context, name string, target Pinger, failStatus string) Check {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	start := time.Now()
	err := target.Ping(ctx)
	latency := time.Since(start)

	if err != nil {
		return Check{Name: name, Status: failStatus, Error: err.Error()}
	}

	ms := latency.Milliseconds()
	check := Check{Name: name, Status: StatusHealthy, LatencyMs: &ms}
	if latency > degradedLatency {
		check.Status = StatusDegraded
	}
	return check
}
