package middleware

import (
	"sync"
	"time"

	"fintrack/internal/errors"
	"fintrack/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// OWASP-recommended ceiling for unauthenticated endpoints.
const (
	defaultRequestsPerSecond = 5
	defaultBurst             = 10

	clientIdleTimeout = 3 * time.Minute
	pruneInterval     = time.Minute
)

// clientRegistry hands out one token bucket per client address and
// forgets addresses that have gone quiet.
type clientRegistry struct {
	mu      sync.Mutex
	clients map[string]*clientBucket
	rps     rate.Limit
	burst   int
}

type clientBucket struct {
	limiter *rate.Limiter
	seen    time.Time
}

func newClientRegistry(rps, burst int) *clientRegistry {
	return &clientRegistry{
		clients: make(map[string]*clientBucket),
		rps:     rate.Limit(rps),
		burst:   burst,
	}
}

func (r *clientRegistry) allow(addr string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.clients[addr]
	if !ok {
		b = &clientBucket{limiter: rate.NewLimiter(r.rps, r.burst)}
		r.clients[addr] = b
	}
	b.seen = time.Now()
	return b.limiter.Allow()
}

func (r *clientRegistry) prune(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for addr, b := range r.clients {
		if time.Since(b.seen) > maxIdle {
			delete(r.clients, addr)
			removed++
		}
	}
	return removed
}

func (r *clientRegistry) pruneLoop() {
	for {
		time.Sleep(pruneInterval)
		r.prune(clientIdleTimeout)
	}
}

// RateLimiter throttles requests per client IP using the default limits.
func RateLimiter() echo.MiddlewareFunc {
	return RateLimiterWithConfig(defaultRequestsPerSecond, defaultBurst)
}

// RateLimiterWithConfig throttles requests per client IP at rps sustained
// requests per second with the given burst allowance. Each middleware
// instance keeps its own client table.
func RateLimiterWithConfig(rps, burst int) echo.MiddlewareFunc {
	registry := newClientRegistry(rps, burst)
	go registry.pruneLoop()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !registry.allow(clientAddr(c)) {
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}
			return next(c)
		}
	}
}

// clientAddr resolves the address used as the throttling key. Proxy
// headers win over the socket address so limits apply to the real
// client behind a load balancer.
func clientAddr(c echo.Context) string {
	if fwd := c.Request().Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	if real := c.Request().Header.Get("X-Real-IP"); real != "" {
		return real
	}
	return c.RealIP()
}
