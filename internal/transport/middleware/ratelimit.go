package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/today-record-backend/pkg/ctxutil"
)

// idleTTL is how long an unused client limiter is kept.
const idleTTL = 10 * time.Minute

// RateLimiter applies a token bucket per client. Authenticated requests are
// keyed by user ID, anonymous ones by the client IP resolved by ClientIP,
// or the socket address when ClientIP is not installed.
type RateLimiter struct {
	clients sync.Map // map[string]*clientLimiter
	limit   rate.Limit
	burst   int
	stop    chan struct{}
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

// NewRateLimiter creates a rate limiter with background cleanup.
// Call Stop() on shutdown.
func NewRateLimiter(requestsPerMinute, burst int, cleanupInterval time.Duration) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	rl := &RateLimiter{
		limit: rate.Limit(float64(requestsPerMinute) / 60.0),
		burst: burst,
		stop:  make(chan struct{}),
	}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

// Limit returns middleware that rejects requests over the client's budget
// with 429 and a Retry-After header.
func (rl *RateLimiter) Limit() Middleware {
	retryAfter := strconv.Itoa(int(math.Ceil(1 / float64(rl.limit))))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.get(clientKey(r)).Allow() {
				w.Header().Set("Retry-After", retryAfter)
				writeError(w, http.StatusTooManyRequests, "RATE_LIMITED", "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return "user:" + userID.String()
	}
	if ip := ctxutil.ClientIPFromCtx(r.Context()); ip != "" {
		return "ip:" + ip
	}
	return "ip:" + remoteHost(r)
}

func (rl *RateLimiter) get(key string) *rate.Limiter {
	val, ok := rl.clients.Load(key)
	if !ok {
		val, _ = rl.clients.LoadOrStore(key, &clientLimiter{
			limiter: rate.NewLimiter(rl.limit, rl.burst),
		})
	}
	cl := val.(*clientLimiter)
	cl.lastSeen.Store(time.Now().UnixNano())
	return cl.limiter
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.clients.Range(func(key, value any) bool {
				idle := now.Sub(time.Unix(0, value.(*clientLimiter).lastSeen.Load()))
				if idle > idleTTL {
					rl.clients.Delete(key)
				}
				return true
			})
		}
	}
}
