package middleware

import (
	"net/http"
	"sync"
	"time"

	"sensor-api/internal/apierror"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// staleAfter is how long an idle client keeps its limiter before eviction.
const staleAfter = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter hands out one token bucket per client IP. Buckets for idle
// clients are evicted by a background sweep so the map stays bounded by the
// set of recently active clients.
type IPRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	rps     rate.Limit
	burst   int
}

// NewIPRateLimiter creates a limiter allowing rps sustained requests per
// second with the given burst per client IP, and starts the eviction sweep.
func NewIPRateLimiter(rps float64, burst int) *IPRateLimiter {
	l := &IPRateLimiter{
		clients: make(map[string]*clientLimiter),
		rps:     rate.Limit(rps),
		burst:   burst,
	}
	go l.sweep()
	return l
}

// Allow reports whether a request from the given IP is admitted.
func (l *IPRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	cl, ok := l.clients[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clients[ip] = cl
	}
	cl.lastSeen = time.Now()
	l.mu.Unlock()

	return cl.limiter.Allow()
}

func (l *IPRateLimiter) sweep() {
	ticker := time.NewTicker(staleAfter / 2)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := time.Now().Add(-staleAfter)
		l.mu.Lock()
		for ip, cl := range l.clients {
			if cl.lastSeen.Before(cutoff) {
				delete(l.clients, ip)
			}
		}
		l.mu.Unlock()
	}
}

// RateLimit rejects requests from clients that exhausted their quota with
// 429 before the handler runs.
func RateLimit(limiter *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.Response{
				Code:    apierror.CodeRateLimited,
				Message: "Request quota exceeded. Try again later.",
			})
			return
		}
		c.Next()
	}
}
