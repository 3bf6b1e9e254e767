package ratelimit

import (
	"context"
	"fmt"
	"shop-admin/internal/observability"
	"sync"
	"time"
)

// sweepThreshold is the number of in-memory windows kept before expired ones
// are pruned.
const sweepThreshold = 1000

// Policy describes a fixed-window budget.
type Policy struct {
	Prefix string
	Limit  int
	Window time.Duration
}

// AuthPolicy throttles login attempts.
func AuthPolicy(perMinute int) Policy {
	return Policy{Prefix: "auth", Limit: perMinute, Window: time.Minute}
}

// AdminPolicy throttles the admin API.
func AdminPolicy(perMinute int) Policy {
	return Policy{Prefix: "admin", Limit: perMinute, Window: time.Minute}
}

// ChatPolicy throttles the chat assistant.
func ChatPolicy(perMinute int) Policy {
	return Policy{Prefix: "chat", Limit: perMinute, Window: time.Minute}
}

// PublicPolicy throttles the API-key read API.
func PublicPolicy(perMinute int) Policy {
	return Policy{Prefix: "public", Limit: perMinute, Window: time.Minute}
}

// RateLimitResult represents the result of a rate limit check
type RateLimitResult struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// WindowCounter counts hits in a shared fixed window.
type WindowCounter interface {
	IsEnabled() bool
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

type window struct {
	count   int
	resetAt time.Time
}

// Service checks request budgets against Redis, or against process memory
// when Redis is disabled or failing.
type Service struct {
	counter WindowCounter
	logger  *observability.Logger
	now     func() time.Time

	mu      sync.Mutex
	windows map[string]*window
}

// NewService creates a new rate limiting service. counter may be nil.
func NewService(counter WindowCounter, logger *observability.Logger) *Service {
	return &Service{
		counter: counter,
		logger:  logger,
		now:     time.Now,
		windows: make(map[string]*window),
	}
}

// CheckRateLimit records a hit for identifier under policy.
func (s *Service) CheckRateLimit(ctx context.Context, identifier string, policy Policy) RateLimitResult {
	key := fmt.Sprintf("rl:%s:%s", policy.Prefix, identifier)

	if s.counter != nil && s.counter.IsEnabled() {
		result, err := s.checkRedis(ctx, key, policy)
		if err == nil {
			return result
		}
		ctx = observability.WithFields(ctx, observability.Field{Key: "rate_limit_key", Value: key})
		s.logger.WarnWithError(ctx, "Redis rate limit check failed, falling back to memory", err)
	}

	return s.checkMemory(key, policy)
}

func (s *Service) checkRedis(ctx context.Context, key string, policy Policy) (RateLimitResult, error) {
	count, ttl, err := s.counter.IncrWindow(ctx, key, policy.Window)
	if err != nil {
		return RateLimitResult{}, err
	}
	return buildResult(int(count), policy.Limit, s.now().Add(ttl), s.now()), nil
}

func (s *Service) checkMemory(key string, policy Policy) RateLimitResult {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.windows) > sweepThreshold {
		for k, w := range s.windows {
			if !w.resetAt.After(now) {
				delete(s.windows, k)
			}
		}
	}

	w, ok := s.windows[key]
	if !ok || !w.resetAt.After(now) {
		w = &window{resetAt: now.Add(policy.Window)}
		s.windows[key] = w
	}
	if w.count < policy.Limit {
		w.count++
		return buildResult(w.count, policy.Limit, w.resetAt, now)
	}
	return buildResult(w.count+1, policy.Limit, w.resetAt, now)
}

// buildResult maps a hit count within a window to a decision. count includes
// the current hit.
func buildResult(count, limit int, resetAt, now time.Time) RateLimitResult {
	if count > limit {
		retryAfter := resetAt.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return RateLimitResult{
			Allowed:      false,
			Limit:        limit,
			Remaining:    0,
			ResetAt:      resetAt,
			RetryAfterMs: int(retryAfter.Milliseconds()),
		}
	}
	return RateLimitResult{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - count,
		ResetAt:   resetAt,
	}
}
