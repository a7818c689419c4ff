package middleware

import (
	"errors"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/doarbem/donation-api/internal/api/handler/v1/response"
)

var errTooManyRequests = errors.New("too many requests")

// RateLimit is a global token bucket shared by all clients.
func RateLimit(rps rate.Limit, burst int) gin.HandlerFunc {
	lim := rate.NewLimiter(rps, burst)

	return func(ctx *gin.Context) {
		if !lim.Allow() {
			response.RenderErr(ctx, response.ErrTooManyRequests(errTooManyRequests))
			return
		}

		ctx.Next()
	}
}

const (
	ipBucketTTL   = 10 * time.Minute
	ipSweepPeriod = time.Minute
)

type ipBucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// ipLimiter keeps one token bucket per client IP. Buckets idle for
// ipBucketTTL are swept out so the map does not grow with every address
// ever seen.
type ipLimiter struct {
	rps   rate.Limit
	burst int
	now   func() time.Time

	mu        sync.Mutex
	buckets   map[string]*ipBucket
	lastSweep time.Time
}

func newIPLimiter(rps rate.Limit, burst int) *ipLimiter {
	return &ipLimiter{
		rps:       rps,
		burst:     burst,
		now:       time.Now,
		buckets:   make(map[string]*ipBucket),
		lastSweep: time.Now(),
	}
}

func (l *ipLimiter) allow(ip string) bool {
	now := l.now()

	l.mu.Lock()
	if now.Sub(l.lastSweep) >= ipSweepPeriod {
		for key, b := range l.buckets {
			if now.Sub(b.lastSeen) >= ipBucketTTL {
				delete(l.buckets, key)
			}
		}
		l.lastSweep = now
	}

	b, ok := l.buckets[ip]
	if !ok {
		b = &ipBucket{lim: rate.NewLimiter(l.rps, l.burst)}
		l.buckets[ip] = b
	}
	b.lastSeen = now
	l.mu.Unlock()

	return b.lim.Allow()
}

// RateLimitPerIP limits each client IP independently. Used on the password
// reset endpoints so a single client cannot brute-force codes.
func RateLimitPerIP(rps rate.Limit, burst int) gin.HandlerFunc {
	lim := newIPLimiter(rps, burst)

	return func(ctx *gin.Context) {
		if !lim.allow(ctx.ClientIP()) {
			response.RenderErr(ctx, response.ErrTooManyRequests(errTooManyRequests))
			return
		}

		ctx.Next()
	}
}
