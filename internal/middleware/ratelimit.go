package middleware

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// minIdle bounds how often idle buckets are swept.
const minIdle = time.Minute

// RateLimitPerIP applies a token bucket per client IP.
func RateLimitPerIP(rps rate.Limit, burst int) fiber.Handler {
	limits := newIPLimiter(rps, burst, time.Now)
	return func(c *fiber.Ctx) error {
		if !limits.allow(c.IP()) {
			return fiber.NewError(fiber.StatusTooManyRequests, "Too many requests")
		}
		return c.Next()
	}
}

type ipBucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// ipLimiter keeps one limiter per IP. A bucket idle for longer than a full
// refill behaves like a new one, so it is dropped on the next sweep.
type ipLimiter struct {
	mu        sync.Mutex
	rps       rate.Limit
	burst     int
	idle      time.Duration
	now       func() time.Time
	lastSweep time.Time
	buckets   map[string]*ipBucket
}

func newIPLimiter(rps rate.Limit, burst int, now func() time.Time) *ipLimiter {
	idle := minIdle
	if rps > 0 && rps != rate.Inf {
		if refill := time.Duration(float64(burst) / float64(rps) * float64(time.Second)); refill > idle {
			idle = refill
		}
	}
	return &ipLimiter{
		rps:       rps,
		burst:     burst,
		idle:      idle,
		now:       now,
		lastSweep: now(),
		buckets:   make(map[string]*ipBucket),
	}
}

func (l *ipLimiter) allow(ip string) bool {
	now := l.now()
	l.mu.Lock()
	if now.Sub(l.lastSweep) >= l.idle {
		l.sweep(now)
	}
	b, ok := l.buckets[ip]
	if !ok {
		b = &ipBucket{lim: rate.NewLimiter(l.rps, l.burst)}
		l.buckets[ip] = b
	}
	b.lastSeen = now
	l.mu.Unlock()
	return b.lim.AllowN(now, 1)
}

// sweep runs with mu held.
func (l *ipLimiter) sweep(now time.Time) {
	for ip, b := range l.buckets {
		if now.Sub(b.lastSeen) >= l.idle {
			delete(l.buckets, ip)
		}
	}
	l.lastSweep = now
}

func (l *ipLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}
